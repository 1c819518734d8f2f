// Package domain holds DTOs for the admin surface
package domain

// Stats is a coarse activity snapshot for operators
type Stats struct {
	Topics  int64 `json:"topics"`
	Reasons int64 `json:"reasons"`
	Votes   int64 `json:"votes"`
	Actors  int64 `json:"actors"`
}
