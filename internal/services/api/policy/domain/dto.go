// Package domain holds DTOs for the content policy service
package domain

import "time"

// BannedWord is one entry of the moderation word list
type BannedWord struct {
	ID        string    `json:"id"`
	Word      string    `json:"word"`
	CreatedAt time.Time `json:"created_at"`
}

// AddInput is the input for adding a banned word
type AddInput struct {
	Word string `json:"word" validate:"required,min=1,max=100"`
}

// RemoveInput is the input for removing a banned word
type RemoveInput struct {
	Word string `json:"word" validate:"required,min=1,max=100"`
}
