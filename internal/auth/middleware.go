package auth

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

const (
	userContextKey = "sponsvisaUser"

	// AccessTokenCookie and RefreshTokenCookie are the cookie names used by
	// the cookie deployment variant.
	AccessTokenCookie  = "access_token"
	RefreshTokenCookie = "refresh_token"
)

// Guard is the single, fail-closed authentication gate. Routes registered
// without a guard middleware are public; everything else must present a
// valid access token and satisfy the route's role policy.
type Guard struct {
	tokens *TokenService
	store  userStore
}

// NewGuard creates a Guard.
func NewGuard(tokens *TokenService, store userStore) *Guard {
	return &Guard{tokens: tokens, store: store}
}

// RequireRoles returns middleware enforcing the given role policy. An empty
// list or RoleAny admits any authenticated user; otherwise the principal's
// role must be in the list. The resolved principal is attached to the
// request context for downstream handlers.
func (g *Guard) RequireRoles(roles ...Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := ExtractToken(c)
		if token == "" {
			abortInvalidToken(c)
			return
		}

		userID, ok := g.tokens.VerifyAccessToken(token)
		if !ok {
			abortInvalidToken(c)
			return
		}

		user, err := g.store.FindUserByID(c.Request.Context(), userID)
		if err != nil {
			abortInvalidToken(c)
			return
		}

		if len(roles) > 0 && !roleAllowed(roles, user.Role) {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"success": false,
				"errors":  []string{ErrForbidden.Message},
			})
			return
		}

		c.Set(userContextKey, Principal{
			ID:         user.ID,
			Name:       user.Name,
			Email:      user.Email,
			Role:       user.Role,
			IsVerified: user.IsVerified,
		})

		c.Next()
	}
}

// CurrentUser extracts the authenticated principal from the context.
func CurrentUser(c *gin.Context) (Principal, bool) {
	value, exists := c.Get(userContextKey)
	if !exists {
		return Principal{}, false
	}
	principal, ok := value.(Principal)
	return principal, ok
}

// ExtractToken pulls the access token from the Authorization header
// ("Bearer <token>", first segment exactly "Bearer") or, failing that, from
// the access token cookie.
func ExtractToken(c *gin.Context) string {
	if header := c.GetHeader("Authorization"); header != "" {
		parts := strings.Fields(header)
		if len(parts) == 2 && parts[0] == "Bearer" {
			return parts[1]
		}
		return ""
	}

	cookie, err := c.Cookie(AccessTokenCookie)
	if err != nil {
		return ""
	}
	return cookie
}

func roleAllowed(roles []Role, role Role) bool {
	for _, r := range roles {
		if r == RoleAny || r == role {
			return true
		}
	}
	return false
}

func abortInvalidToken(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
		"success": false,
		"errors":  []string{ErrInvalidToken.Message},
	})
}
