package vote

import "github.com/sponsvisa/sponsvisa-api/internal/apperr"

var (
	// ErrCommentNotFound indicates the target comment does not exist.
	ErrCommentNotFound = apperr.BadRequest("comment not found")
	// ErrVoteNotFound indicates the user has no vote on the comment.
	ErrVoteNotFound = apperr.BadRequest("vote not found")
)
