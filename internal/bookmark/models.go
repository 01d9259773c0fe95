package bookmark

import (
	"time"

	"github.com/google/uuid"
)

// Bookmark marks a company as saved by a user.
type Bookmark struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"userId"`
	CompanyID uuid.UUID `json:"companyId"`
	CreatedAt time.Time `json:"createdAt"`
}
