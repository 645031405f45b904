package api

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/vendrahq/vendra/ent"
	"github.com/vendrahq/vendra/pkg/services"
)

// Principal roles carried in the JWT role claim. Tokens are issued by the
// external auth service; this layer only verifies and scopes.
const (
	roleAdmin    = "admin"
	roleBusiness = "business"
	roleBranch   = "branch"
	roleEmployee = "employee"
)

const principalKey = "api.principal"

// Principal is the authenticated caller extracted from the bearer token.
type Principal struct {
	UserID string
	Role   string
}

// IsAdmin reports whether the principal bypasses tenant scoping.
func (p Principal) IsAdmin() bool {
	return p.Role == roleAdmin
}

// authClaims is the expected JWT payload: standard claims plus a role.
type authClaims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// parseToken verifies an HS256 bearer token and returns the principal.
func parseToken(tokenString string, secret []byte) (Principal, error) {
	claims := &authClaims{}
	_, err := jwt.ParseWithClaims(tokenString, claims,
		func(*jwt.Token) (any, error) { return secret, nil },
		jwt.WithValidMethods([]string{"HS256"}),
	)
	if err != nil {
		return Principal{}, err
	}
	p := Principal{UserID: claims.Subject, Role: normalizeRole(claims.Role)}
	if p.UserID == "" {
		return Principal{}, errors.New("token missing subject")
	}
	if !validRole(p.Role) {
		return Principal{}, fmt.Errorf("unknown role %q", claims.Role)
	}
	return p, nil
}

// normalizeRole maps the stored business_owner role onto the wire name.
func normalizeRole(role string) string {
	if role == "business_owner" {
		return roleBusiness
	}
	return role
}

func validRole(role string) bool {
	switch role {
	case roleAdmin, roleBusiness, roleBranch, roleEmployee:
		return true
	}
	return false
}

// bearerToken pulls the token from the Authorization header, falling back to
// the token query parameter for WebSocket clients that cannot set headers.
func bearerToken(c *gin.Context) string {
	if h := c.GetHeader("Authorization"); h != "" {
		if after, ok := strings.CutPrefix(h, "Bearer "); ok {
			return after
		}
		return ""
	}
	return c.Query("token")
}

// authRequired rejects requests without a valid bearer token and stores the
// principal in the request context.
func (s *Server) authRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			respondError(c, http.StatusUnauthorized, codeUnauthorized, "missing bearer token")
			return
		}
		p, err := parseToken(token, s.jwtSecret)
		if err != nil {
			respondError(c, http.StatusUnauthorized, codeUnauthorized, "invalid token")
			return
		}
		c.Set(principalKey, p)
		c.Next()
	}
}

// requireRoles gates a route group to the given roles. Runs after authRequired.
func requireRoles(roles ...string) gin.HandlerFunc {
	allowed := make(map[string]bool, len(roles))
	for _, r := range roles {
		allowed[r] = true
	}
	return func(c *gin.Context) {
		p := currentPrincipal(c)
		if !allowed[p.Role] {
			respondError(c, http.StatusForbidden, codeNotAllowed, "insufficient role")
			return
		}
		c.Next()
	}
}

// currentPrincipal returns the principal stored by authRequired.
func currentPrincipal(c *gin.Context) Principal {
	if v, ok := c.Get(principalKey); ok {
		if p, ok := v.(Principal); ok {
			return p
		}
	}
	return Principal{}
}

// resolveTenant returns the business the request is scoped to. Admins may
// select any tenant with ?business_id (empty means unscoped); everyone else
// is pinned to their own business.
func (s *Server) resolveTenant(c *gin.Context) (string, error) {
	p := currentPrincipal(c)
	if p.IsAdmin() {
		return c.Query("business_id"), nil
	}
	biz, err := s.users.ResolveBusiness(c.Request.Context(), p.UserID)
	if err != nil {
		return "", err
	}
	return biz.ID, nil
}

// resolveTenantUser is resolveTenant returning the business row, for
// handlers that need the tenant's timezone.
func (s *Server) resolveTenantUser(c *gin.Context) (*ent.User, error) {
	p := currentPrincipal(c)
	if p.IsAdmin() {
		bizID := c.Query("business_id")
		if bizID == "" {
			return nil, services.NewValidationError("business_id", "business_id is required")
		}
		return s.users.GetUser(c.Request.Context(), bizID)
	}
	return s.users.ResolveBusiness(c.Request.Context(), p.UserID)
}
