package handler

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"homegate/internal/gateway/service"
	"homegate/internal/gateway/validator"
	"homegate/pkg/cache"
	"homegate/pkg/client"
	"homegate/pkg/logger"
	"homegate/pkg/middleware"
	"homegate/pkg/session"

	"github.com/julienschmidt/httprouter"
)

// fakeRemote answers just enough of the remote API for session flows.
func fakeRemote(t *testing.T) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userJSON := `{"_id":"u1","name":"Ada","email":"ada@example.com","role":"user"}`
		switch r.URL.Path {
		case "/users/login":
			var creds struct {
				Password string `json:"password"`
			}
			json.NewDecoder(r.Body).Decode(&creds)
			if creds.Password != "secret123" {
				w.WriteHeader(http.StatusUnauthorized)
				io.WriteString(w, `{"message":"Incorrect email or password"}`)
				return
			}
			io.WriteString(w, `{"token":"jwt-1","data":{"user":`+userJSON+`}}`)
		case "/users/me":
			if r.Header.Get("Authorization") != "Bearer jwt-1" {
				w.WriteHeader(http.StatusUnauthorized)
				return
			}
			io.WriteString(w, `{"data":{"user":`+userJSON+`}}`)
		case "/users/logout":
			w.WriteHeader(http.StatusNoContent)
		default:
			w.WriteHeader(http.StatusNotFound)
			io.WriteString(w, `{"message":"not found"}`)
		}
	}))
	t.Cleanup(server.Close)
	return server
}

func newTestHandler(t *testing.T, remoteURL string) (*Handler, *session.Store, *httprouter.Router) {
	t.Helper()

	log := logger.New(logger.Config{Level: logger.ERROR, Format: logger.TEXT, Output: io.Discard})

	tokens, err := session.NewTokenStore(filepath.Join(t.TempDir(), "token"))
	if err != nil {
		t.Fatal(err)
	}

	core := client.New(remoteURL, tokens, 5*time.Second)
	api := client.NewAPI(core)

	sessions := session.NewStore(api.Auth, tokens, log)
	core.SetUnauthorizedHook(sessions.Invalidate)

	cacheStore := cache.New(30 * time.Second)
	forms := validator.New(log)
	guard := middleware.NewGuard(sessions, log)

	bookings := service.NewBookings(api, sessions, cacheStore, forms, log)
	payments := service.NewPayments(api, sessions, cacheStore, "pk_test", log)
	dashboard := service.NewDashboard(api, bookings, sessions, cacheStore, log)

	h := New(sessions, guard, api, bookings, payments, dashboard, forms, cacheStore, log)
	router := httprouter.New()
	h.RegisterRoutes(router)
	return h, sessions, router
}

// Until the session bootstrap resolves, protected routes answer 503 and
// render absolutely nothing.
func TestProtectedRoutes_HeldBeforeBootstrap(t *testing.T) {
	remote := fakeRemote(t)
	_, _, router := newTestHandler(t, remote.URL)

	for _, path := range []string{"/dashboard", "/me", "/payments/history"} {
		t.Run(path, func(t *testing.T) {
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))

			if rec.Code != http.StatusServiceUnavailable {
				t.Errorf("status = %d, want 503", rec.Code)
			}
			if rec.Header().Get("Retry-After") == "" {
				t.Error("missing Retry-After header")
			}
			if rec.Body.Len() != 0 {
				t.Errorf("body = %q, want empty", rec.Body.String())
			}
		})
	}
}

func TestProtectedRoutes_RedirectWhenUnauthenticated(t *testing.T) {
	remote := fakeRemote(t)
	_, sessions, router := newTestHandler(t, remote.URL)
	sessions.Bootstrap(context.Background())

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/me", nil))

	if rec.Code != http.StatusFound {
		t.Fatalf("status = %d, want 302", rec.Code)
	}
	if loc := rec.Header().Get("Location"); loc != "/login" {
		t.Errorf("Location = %q, want /login", loc)
	}
}

func TestLoginThenMe(t *testing.T) {
	remote := fakeRemote(t)
	_, sessions, router := newTestHandler(t, remote.URL)
	sessions.Bootstrap(context.Background())

	rec := httptest.NewRecorder()
	body := strings.NewReader(`{"email":"ada@example.com","password":"secret123"}`)
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/login", body))

	if rec.Code != http.StatusOK {
		t.Fatalf("login status = %d, body = %s", rec.Code, rec.Body.String())
	}
	if sessions.State() != session.StateAuthenticated {
		t.Fatalf("State = %v, want authenticated", sessions.State())
	}

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/me", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("me status = %d", rec.Code)
	}

	var resp struct {
		Data struct {
			ID string `json:"_id"`
		} `json:"data"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatal(err)
	}
	if resp.Data.ID != "u1" {
		t.Errorf("user ID = %q", resp.Data.ID)
	}
}

func TestLogin_BadCredentialsPassThrough(t *testing.T) {
	remote := fakeRemote(t)
	_, sessions, router := newTestHandler(t, remote.URL)
	sessions.Bootstrap(context.Background())

	rec := httptest.NewRecorder()
	body := strings.NewReader(`{"email":"ada@example.com","password":"wrongpassword"}`)
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/login", body))

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Incorrect email or password") {
		t.Errorf("body = %s, want server message preserved", rec.Body.String())
	}
}

func TestAdminRoute_RoleMismatchRedirectsHome(t *testing.T) {
	remote := fakeRemote(t)
	_, sessions, router := newTestHandler(t, remote.URL)
	sessions.Bootstrap(context.Background())

	rec := httptest.NewRecorder()
	body := strings.NewReader(`{"email":"ada@example.com","password":"secret123"}`)
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/login", body))
	if rec.Code != http.StatusOK {
		t.Fatal("login failed")
	}

	// a plain user is signed in, not an admin
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/admin/agent-applications", nil))
	if rec.Code != http.StatusFound {
		t.Fatalf("status = %d, want 302", rec.Code)
	}
	if loc := rec.Header().Get("Location"); loc != "/" {
		t.Errorf("Location = %q, want /", loc)
	}
}

func TestLogout_ClearsSessionAndRedirects(t *testing.T) {
	remote := fakeRemote(t)
	_, sessions, router := newTestHandler(t, remote.URL)
	sessions.Bootstrap(context.Background())

	rec := httptest.NewRecorder()
	body := strings.NewReader(`{"email":"ada@example.com","password":"secret123"}`)
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/login", body))
	if rec.Code != http.StatusOK {
		t.Fatal("login failed")
	}

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/logout", nil))

	if rec.Code != http.StatusFound {
		t.Fatalf("status = %d, want 302", rec.Code)
	}
	if loc := rec.Header().Get("Location"); loc != "/login" {
		t.Errorf("Location = %q", loc)
	}
	if sessions.State() != session.StateUnauthenticated {
		t.Errorf("State = %v, want unauthenticated", sessions.State())
	}
	sessions.Wait()
}
