package auth

import (
	"errors"
	"net/http"

	"github.com/sponsvisa/sponsvisa-api/internal/apperr"
)

var (
	// ErrUserAlreadyExists indicates the email is already registered.
	ErrUserAlreadyExists = apperr.BadRequest("a user with this email already exists")
	// ErrIncorrectCredentials is returned for both unknown emails and wrong
	// passwords so the response never reveals which one it was.
	ErrIncorrectCredentials = apperr.BadRequest("incorrect email or password")
	// ErrInvalidToken covers missing, malformed, and expired access tokens.
	ErrInvalidToken = apperr.Unauthorized("invalid token")
	// ErrUnauthorized is returned when refresh token validation fails.
	ErrUnauthorized = apperr.Unauthorized("unauthorized")
	// ErrForbidden is returned to authenticated users lacking the required role.
	ErrForbidden = apperr.Forbidden("you are not allowed to perform this action")
	// ErrNotVerified blocks users who have not confirmed their email address.
	ErrNotVerified = apperr.Forbidden("you need to verify your account first")
	// ErrAlreadyVerified rejects verification attempts for verified accounts.
	ErrAlreadyVerified = apperr.BadRequest("your account is already verified")
	// ErrCodeInvalid is deliberately identical for absent and expired codes.
	ErrCodeInvalid = apperr.BadRequest("the verification code is expired or does not exist")

	// ErrUserNotFound signals that the user could not be located. Internal;
	// callers translate it before it reaches a response.
	ErrUserNotFound = errors.New("user not found")
	// ErrVerificationNotFound signals that no verification row matched.
	ErrVerificationNotFound = errors.New("verification not found")
	// ErrVerificationExists signals the unique user_id constraint fired on
	// insert, i.e. a concurrent request created a code first.
	ErrVerificationExists = errors.New("verification already exists")
)

func errWaitForNextCode(minutes int) *apperr.Error {
	return apperr.Newf(http.StatusBadRequest,
		"please wait %d minute(s) before requesting a new verification code", minutes)
}
