package company

import (
	"time"

	"github.com/google/uuid"
)

// SponsorshipSupport describes whether a company sponsors work visas.
type SponsorshipSupport string

const (
	SponsorshipYes     SponsorshipSupport = "YES"
	SponsorshipNo      SponsorshipSupport = "NO"
	SponsorshipUnknown SponsorshipSupport = "UNKNOWN"
)

// Company represents a submitted company.
type Company struct {
	ID                  uuid.UUID          `json:"id"`
	Name                string             `json:"name"`
	Description         string             `json:"description"`
	Country             string             `json:"country"`
	Website             string             `json:"website"`
	Linkedin            *string            `json:"linkedin,omitempty"`
	SupportsSponsorship SponsorshipSupport `json:"supportsSponsorshipProgram"`
	UserID              uuid.UUID          `json:"userId"`
	CreatedAt           time.Time          `json:"createdAt"`
	UpdatedAt           time.Time          `json:"updatedAt"`
}
