package middleware

import (
	"fmt"
	"net/http"

	"linderopos/internal/session"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

// Access classifies a route for the session gate. Every registered route
// must carry a classification — there is no implicit default for known
// routes. Unmatched paths (404s) stay open by design.
type Access int

const (
	AccessOpen Access = iota
	AccessProtected
)

// RouteTable maps registered route paths to their Access classification.
type RouteTable struct {
	access map[string]Access
}

func NewRouteTable() *RouteTable {
	return &RouteTable{access: make(map[string]Access)}
}

// Register records the classification for a route path (gin template form,
// e.g. "/panel" or "/static/*filepath").
func (t *RouteTable) Register(path string, a Access) {
	t.access[path] = a
}

// Classify returns the access level for a matched route path. Unknown paths
// — including the empty path gin reports for unmatched requests — are open,
// so 404s never redirect.
func (t *RouteTable) Classify(path string) Access {
	if a, ok := t.access[path]; ok {
		return a
	}
	return AccessOpen
}

// Verify checks that every route registered on the engine has an explicit
// classification. Run at startup to catch routes added without one.
func (t *RouteTable) Verify(routes gin.RoutesInfo) error {
	for _, r := range routes {
		if _, ok := t.access[r.Path]; !ok {
			return fmt.Errorf("route %s %s has no access classification", r.Method, r.Path)
		}
	}
	return nil
}

// SessionGate intercepts every request before its handler. Protected routes
// require the session marker; without it the request is redirected to the
// login page and the handler never runs. The gate never mutates session
// state itself.
func SessionGate(routes *RouteTable) gin.HandlerFunc {
	return func(c *gin.Context) {
		if routes.Classify(c.FullPath()) == AccessProtected {
			if sessions.Default(c).Get(session.UserKey) == nil {
				c.Redirect(http.StatusFound, "/")
				c.Abort()
				return
			}
		}
		c.Next()
	}
}
