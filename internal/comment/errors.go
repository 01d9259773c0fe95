package comment

import "github.com/sponsvisa/sponsvisa-api/internal/apperr"

var (
	// ErrCommentNotFound indicates the comment (or parent) does not exist.
	ErrCommentNotFound = apperr.BadRequest("comment not found")
	// ErrCompanyNotFound indicates the target company does not exist.
	ErrCompanyNotFound = apperr.BadRequest("company not found")
)
