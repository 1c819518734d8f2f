// Package domain holds DTOs for votes http and service contracts
package domain

// CastInput is the input for casting or changing a vote
type CastInput struct {
	ReasonID string `json:"reason_id" validate:"required,uuid"`
	Value    int    `json:"value" validate:"min=-1,max=1"`
}

// Score is the derived standing of one reason
type Score struct {
	ReasonID string `json:"reason_id"`
	Score    int    `json:"score"`
	Up       int    `json:"up"`
	Neutral  int    `json:"neutral"`
	Down     int    `json:"down"`
}
