package middleware

import (
	"net/http"

	"homegate/pkg/logger"
	"homegate/pkg/model"
	"homegate/pkg/session"

	"github.com/julienschmidt/httprouter"
)

// Sessions is the slice of the session store the guard needs.
type Sessions interface {
	State() session.State
	CanAccess(required model.Role) bool
}

// Guard gates protected routes on session state. While the session is still
// loading it renders nothing at all: a loading session is never treated as
// authorized and protected content must not flash before the check resolves.
type Guard struct {
	sessions Sessions
	log      *logger.Logger
}

func NewGuard(sessions Sessions, log *logger.Logger) *Guard {
	return &Guard{sessions: sessions, log: log}
}

// RequireAuth admits any authenticated session.
func (g *Guard) RequireAuth(next httprouter.Handle) httprouter.Handle {
	return g.require("", next)
}

// RequireRole admits only sessions whose role matches exactly. No hierarchy:
// a route open to both admin and agent must be registered with both.
func (g *Guard) RequireRole(role model.Role, next httprouter.Handle) httprouter.Handle {
	return g.require(role, next)
}

// RequireAnyRole admits a session matching any of the listed roles. This is
// the explicit spelling for "admin or agent" routes; CanAccess itself stays
// a flat equality check.
func (g *Guard) RequireAnyRole(roles []model.Role, next httprouter.Handle) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
		if g.holdOrRedirect(w, r) {
			return
		}
		for _, role := range roles {
			if g.sessions.CanAccess(role) {
				next(w, r, ps)
				return
			}
		}
		g.log.Warn("Role check failed, redirecting", "path", r.URL.Path)
		http.Redirect(w, r, "/", http.StatusFound)
	}
}

func (g *Guard) require(role model.Role, next httprouter.Handle) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
		if g.holdOrRedirect(w, r) {
			return
		}
		if !g.sessions.CanAccess(role) {
			g.log.Warn("Role check failed, redirecting", "path", r.URL.Path, "required_role", role)
			http.Redirect(w, r, "/", http.StatusFound)
			return
		}
		next(w, r, ps)
	}
}

// holdOrRedirect handles the two states in which no protected content may be
// produced. It reports true when the request has been answered.
func (g *Guard) holdOrRedirect(w http.ResponseWriter, r *http.Request) bool {
	switch g.sessions.State() {
	case session.StateAuthenticated:
		return false
	case session.StateUnauthenticated:
		http.Redirect(w, r, "/login", http.StatusFound)
		return true
	default:
		// uninitialized or still loading: hold everything back
		w.Header().Set("Retry-After", "1")
		w.WriteHeader(http.StatusServiceUnavailable)
		return true
	}
}
