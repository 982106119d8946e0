package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/rawatanuj07/eventease/internal/domain"
)

const (
	identityKey = "identity"
	tokenCookie = "token"
)

// Claims is the token payload issued by the identity provider.
type Claims struct {
	ID   string `json:"id"`
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// Auth verifies an HS256 token from the Authorization header or the token
// cookie and stores the caller's identity on the request.
func Auth(secret string) gin.HandlerFunc {
	key := []byte(secret)
	parser := jwt.NewParser(jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))

	return func(c *gin.Context) {
		raw := bearerToken(c)
		if raw == "" {
			abort(c, http.StatusUnauthorized, domain.ErrUnauthenticated.Error(), domain.KindUnauthenticated)
			return
		}

		var claims Claims
		tok, err := parser.ParseWithClaims(raw, &claims, func(*jwt.Token) (any, error) {
			return key, nil
		})
		if err != nil || !tok.Valid || claims.ID == "" {
			abort(c, http.StatusUnauthorized, "invalid or expired token", domain.KindUnauthenticated)
			return
		}

		role := domain.Role(claims.Role)
		if role != domain.RoleAdmin {
			role = domain.RoleUser
		}

		SetIdentity(c, domain.Identity{UserID: claims.ID, Role: role})
		c.Next()
	}
}

func RequireRole(role domain.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := IdentityFrom(c)
		if !ok {
			abort(c, http.StatusUnauthorized, domain.ErrUnauthenticated.Error(), domain.KindUnauthenticated)
			return
		}
		if id.Role != role {
			abort(c, http.StatusForbidden, "insufficient role", domain.KindForbidden)
			return
		}
		c.Next()
	}
}

func SetIdentity(c *gin.Context, id domain.Identity) {
	c.Set(identityKey, id)
}

func IdentityFrom(c *gin.Context) (domain.Identity, bool) {
	v, ok := c.Get(identityKey)
	if !ok {
		return domain.Identity{}, false
	}
	id, ok := v.(domain.Identity)
	return id, ok
}

func bearerToken(c *gin.Context) string {
	if h := c.GetHeader("Authorization"); h != "" {
		scheme, token, ok := strings.Cut(h, " ")
		if ok && strings.EqualFold(scheme, "Bearer") {
			return strings.TrimSpace(token)
		}
		return ""
	}

	if cookie, err := c.Cookie(tokenCookie); err == nil {
		return cookie
	}
	return ""
}

func abort(c *gin.Context, status int, msg string, kind domain.Kind) {
	c.Set(ErrorKey, msg)
	c.AbortWithStatusJSON(status, gin.H{"error": msg, "kind": kind})
}
