package bookmark

import "github.com/sponsvisa/sponsvisa-api/internal/apperr"

var (
	// ErrCompanyNotFound indicates the target company does not exist.
	ErrCompanyNotFound = apperr.BadRequest("company not found")
	// ErrBookmarkNotFound indicates the bookmark does not exist or belongs
	// to another user.
	ErrBookmarkNotFound = apperr.BadRequest("bookmark not found")
)
