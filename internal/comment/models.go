package comment

import (
	"time"

	"github.com/google/uuid"
)

// Comment is a user comment on a company, optionally replying to another
// comment.
type Comment struct {
	ID        uuid.UUID  `json:"id"`
	Message   string     `json:"message"`
	UserID    uuid.UUID  `json:"userId"`
	CompanyID uuid.UUID  `json:"companyId"`
	ParentID  *uuid.UUID `json:"parentId,omitempty"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt"`
}
