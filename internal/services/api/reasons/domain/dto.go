// Package domain holds DTOs for reasons http and service contracts
package domain

import "time"

// Sides of the debate
const (
	SidePro = "pro"
	SideCon = "con"
)

// CreateInput is the input for posting a reason or a reply
type CreateInput struct {
	Side     string `json:"side" validate:"required,oneof=pro con"`
	Body     string `json:"body" validate:"required,min=2,max=500"`
	Slug     string `json:"slug,omitempty" validate:"omitempty,max=200"`
	ParentID string `json:"parent_id,omitempty" validate:"omitempty,uuid"`
}

// Created is returned after a successful post
type Created struct {
	ID      string `json:"id"`
	TopicID string `json:"topic_id"`
}

// Node is one reason with its vote standing and replies
type Node struct {
	ID         string    `json:"id"`
	Side       string    `json:"side"`
	Body       string    `json:"body"`
	ParentID   string    `json:"parent_id,omitempty"`
	IsFeatured bool      `json:"is_featured"`
	Score      int       `json:"score"`
	Up         int       `json:"up"`
	Neutral    int       `json:"neutral"`
	Down       int       `json:"down"`
	YourVote   *int      `json:"your_vote,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
	Children   []*Node   `json:"children,omitempty"`
}

// Board is the full two-sided listing for a topic
type Board struct {
	TopicID string  `json:"topic_id"`
	Pro     []*Node `json:"pro"`
	Con     []*Node `json:"con"`
}

// ModerateInput is the admin toggle payload
type ModerateInput struct {
	Deleted  *bool `json:"deleted,omitempty"`
	Featured *bool `json:"featured,omitempty"`
}
