package client

import (
	"context"
	"net/http"
	"testing"

	"homegate/pkg/model"
)

func TestLogin_DecodesTokenAndUser(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/users/login" {
			t.Errorf("path = %q", r.URL.Path)
		}
		w.Write([]byte(`{"token":"jwt-abc","data":{"user":{"_id":"u1","name":"Ada","email":"ada@example.com","role":"user"}}}`))
	}, "")

	auth, err := NewAuthClient(c).Login(context.Background(), model.LoginRequest{
		Email:    "ada@example.com",
		Password: "secret123",
	})
	if err != nil {
		t.Fatalf("Login failed: %v", err)
	}
	if auth.Token != "jwt-abc" {
		t.Errorf("Token = %q", auth.Token)
	}
	if auth.User == nil || auth.User.ID != "u1" || auth.User.Role != model.RoleUser {
		t.Errorf("User = %+v", auth.User)
	}
}

func TestMe_UnwrapsUser(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer tok" {
			t.Errorf("Authorization = %q", r.Header.Get("Authorization"))
		}
		w.Write([]byte(`{"data":{"user":{"_id":"u1","name":"Ada","email":"ada@example.com","role":"agent"}}}`))
	}, "tok")

	user, err := NewAuthClient(c).Me(context.Background())
	if err != nil {
		t.Fatalf("Me failed: %v", err)
	}
	if user.Role != model.RoleAgent {
		t.Errorf("Role = %q", user.Role)
	}
}
