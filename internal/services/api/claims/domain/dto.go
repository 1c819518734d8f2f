// Package domain contains types and contracts for claiming anonymous contributions
package domain

// Result reports what a claim attached to the account
type Result struct {
	MovedReasons int64 `json:"moved_reasons"`
	MergedVotes  int64 `json:"merged_votes"`
}
