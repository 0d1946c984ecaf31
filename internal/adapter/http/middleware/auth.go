package middleware

import (
	"fmt"
	"mutual_cartera/pkg"
	"net/http"
	"slices"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const (
	RoleSuperAdmin     = "super_admin"
	RoleAdmin          = "admin"
	RoleAdministrativo = "administrativo"
	RoleAsistente      = "asistente"

	// ContextRoleKey holds the caller's role once the token is verified.
	ContextRoleKey = "role"
)

// ImportRoles may upload spreadsheets.
var ImportRoles = []string{RoleSuperAdmin, RoleAdmin, RoleAdministrativo}

var (
	errUnauthorized = pkg.NewDomainErrorSimple("UNAUTHORIZED", "Missing or invalid bearer token", http.StatusUnauthorized)
	errForbidden    = pkg.NewDomainErrorSimple("FORBIDDEN", "Your role cannot access this resource", http.StatusForbidden)
)

// Authenticator verifies HS256 bearer tokens carrying a "role" claim.
// With an empty secret every request is let through.
type Authenticator struct {
	secret []byte
}

func NewAuthenticator(secret string) *Authenticator {
	return &Authenticator{secret: []byte(secret)}
}

func (a *Authenticator) Enabled() bool {
	return len(a.secret) > 0
}

// RequireRoles rejects requests whose token role is not in roles. With no
// roles any valid token is accepted.
func (a *Authenticator) RequireRoles(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !a.Enabled() {
			c.Next()
			return
		}

		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			c.AbortWithStatusJSON(errUnauthorized.HTTPStatus, errUnauthorized.ToHTTPError())
			return
		}

		role, err := a.roleFromToken(strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			c.AbortWithStatusJSON(errUnauthorized.HTTPStatus, errUnauthorized.ToHTTPError())
			return
		}
		if len(roles) > 0 && !slices.Contains(roles, role) {
			c.AbortWithStatusJSON(errForbidden.HTTPStatus, errForbidden.ToHTTPError())
			return
		}

		c.Set(ContextRoleKey, role)
		c.Next()
	}
}

func (a *Authenticator) roleFromToken(tokenString string) (string, error) {
	claims := jwt.MapClaims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return a.secret, nil
	})
	if err != nil {
		return "", err
	}

	role, _ := claims["role"].(string)
	if role == "" {
		return "", fmt.Errorf("token has no role claim")
	}
	return role, nil
}
