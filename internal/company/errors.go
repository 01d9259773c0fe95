package company

import "github.com/sponsvisa/sponsvisa-api/internal/apperr"

// ErrCompanyNotFound indicates the company does not exist.
var ErrCompanyNotFound = apperr.BadRequest("company not found")
