package middleware

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"homegate/pkg/logger"
	"homegate/pkg/model"
	"homegate/pkg/session"

	"github.com/julienschmidt/httprouter"
)

type fakeSessions struct {
	state session.State
	role  model.Role
}

func (f *fakeSessions) State() session.State { return f.state }

func (f *fakeSessions) CanAccess(required model.Role) bool {
	if f.state != session.StateAuthenticated {
		return false
	}
	if required == "" {
		return true
	}
	return f.role == required
}

func testLogger() *logger.Logger {
	return logger.New(logger.Config{Level: logger.ERROR, Output: io.Discard})
}

func protected(t *testing.T) (httprouter.Handle, *bool) {
	served := false
	return func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
		served = true
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("secret dashboard")); err != nil {
			t.Errorf("write failed: %v", err)
		}
	}, &served
}

func TestGuard_LoadingRendersNothingProtected(t *testing.T) {
	for _, state := range []session.State{session.StateUninitialized, session.StateLoading} {
		guard := NewGuard(&fakeSessions{state: state}, testLogger())
		handle, served := protected(t)

		rec := httptest.NewRecorder()
		guard.RequireAuth(handle)(rec, httptest.NewRequest(http.MethodGet, "/dashboard", nil), nil)

		if *served {
			t.Errorf("state %v: protected handler must not run before bootstrap settles", state)
		}
		if rec.Code != http.StatusServiceUnavailable {
			t.Errorf("state %v: expected 503, got %d", state, rec.Code)
		}
		if body := rec.Body.String(); body != "" {
			t.Errorf("state %v: expected empty body, got %q", state, body)
		}
	}
}

func TestGuard_UnauthenticatedRedirectsToLogin(t *testing.T) {
	guard := NewGuard(&fakeSessions{state: session.StateUnauthenticated}, testLogger())
	handle, served := protected(t)

	rec := httptest.NewRecorder()
	guard.RequireAuth(handle)(rec, httptest.NewRequest(http.MethodGet, "/dashboard", nil), nil)

	if *served {
		t.Error("protected handler must not run unauthenticated")
	}
	if rec.Code != http.StatusFound {
		t.Fatalf("expected 302, got %d", rec.Code)
	}
	if loc := rec.Header().Get("Location"); loc != "/login" {
		t.Errorf("expected redirect to /login, got %q", loc)
	}
}

func TestGuard_RoleMismatchRedirectsHome(t *testing.T) {
	guard := NewGuard(&fakeSessions{state: session.StateAuthenticated, role: model.RoleAgent}, testLogger())
	handle, served := protected(t)

	rec := httptest.NewRecorder()
	guard.RequireRole(model.RoleAdmin, handle)(rec, httptest.NewRequest(http.MethodGet, "/admin", nil), nil)

	if *served {
		t.Error("agent must not reach an admin-only route, no implicit hierarchy")
	}
	if rec.Code != http.StatusFound {
		t.Fatalf("expected 302, got %d", rec.Code)
	}
	if loc := rec.Header().Get("Location"); loc != "/" {
		t.Errorf("expected redirect to /, got %q", loc)
	}
}

func TestGuard_MatchingRolePasses(t *testing.T) {
	guard := NewGuard(&fakeSessions{state: session.StateAuthenticated, role: model.RoleAgent}, testLogger())
	handle, served := protected(t)

	rec := httptest.NewRecorder()
	guard.RequireRole(model.RoleAgent, handle)(rec, httptest.NewRequest(http.MethodGet, "/agent", nil), nil)

	if !*served {
		t.Error("matching role should reach the handler")
	}
	if rec.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", rec.Code)
	}
}

func TestGuard_RequireAnyRole(t *testing.T) {
	roles := []model.Role{model.RoleAgent, model.RoleAdmin}

	for _, tt := range []struct {
		role model.Role
		want bool
	}{
		{model.RoleAgent, true},
		{model.RoleAdmin, true},
		{model.RoleUser, false},
	} {
		guard := NewGuard(&fakeSessions{state: session.StateAuthenticated, role: tt.role}, testLogger())
		handle, served := protected(t)

		rec := httptest.NewRecorder()
		guard.RequireAnyRole(roles, handle)(rec, httptest.NewRequest(http.MethodGet, "/agent/bookings", nil), nil)

		if *served != tt.want {
			t.Errorf("role %s: served = %v, want %v", tt.role, *served, tt.want)
		}
	}
}
