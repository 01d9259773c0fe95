package vote

import (
	"time"

	"github.com/google/uuid"
)

// Status is the direction of a vote.
type Status string

const (
	StatusUp   Status = "UP"
	StatusDown Status = "DOWN"
)

// Vote is a user's vote on a comment. A user has at most one vote per
// comment; re-voting changes its status.
type Vote struct {
	UserID    uuid.UUID `json:"userId"`
	CommentID uuid.UUID `json:"commentId"`
	Status    Status    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
}
