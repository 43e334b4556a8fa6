package handler

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/translata/translata/internal/auth"
	"github.com/translata/translata/internal/handler/dto"
	"github.com/translata/translata/internal/model"
	"github.com/translata/translata/internal/repository"
	"github.com/translata/translata/internal/service"
)

type fakeUserStore struct {
	users map[string]*model.User
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{users: make(map[string]*model.User)}
}

func (f *fakeUserStore) CreateUser(_ context.Context, user *model.User) error {
	if _, exists := f.users[user.Username]; exists {
		return repository.ErrUsernameExists
	}
	f.users[user.Username] = user
	return nil
}

func (f *fakeUserStore) GetUserByUsername(_ context.Context, username string) (*model.User, error) {
	user, ok := f.users[username]
	if !ok {
		return nil, repository.ErrUserNotFound
	}
	return user, nil
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newAuthHandler(store service.UserStore) *AuthHandler {
	tokens := auth.NewTokenService([]byte("test-secret"), time.Hour)
	svc := service.NewAccountService(store, tokens, nil)
	return NewAuthHandler(svc, discardLogger())
}

func registerRequest(body string) *http.Request {
	req := httptest.NewRequest(http.MethodPost, "/api/register", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func loginRequest(username, password string) *http.Request {
	form := url.Values{}
	form.Set("username", username)
	form.Set("password", password)
	req := httptest.NewRequest(http.MethodPost, "/api/login", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

func TestAuthHandler_Register(t *testing.T) {
	h := newAuthHandler(newFakeUserStore())

	rec := httptest.NewRecorder()
	h.Register(rec, registerRequest(`{"name":"Alice","username":"alice","password":"s3cret-password"}`))

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d: %s", rec.Code, rec.Body.String())
	}

	var response dto.RegisterResponse
	if err := json.NewDecoder(rec.Body).Decode(&response); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	if response.Message != "User registered successfully" {
		t.Errorf("unexpected message: %s", response.Message)
	}
}

func TestAuthHandler_Register_DuplicateUsername(t *testing.T) {
	h := newAuthHandler(newFakeUserStore())

	rec := httptest.NewRecorder()
	h.Register(rec, registerRequest(`{"name":"Alice","username":"alice","password":"s3cret-password"}`))
	if rec.Code != http.StatusCreated {
		t.Fatalf("first registration failed: %d", rec.Code)
	}

	rec = httptest.NewRecorder()
	h.Register(rec, registerRequest(`{"name":"Other","username":"alice","password":"another-password"}`))

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", rec.Code)
	}

	var response dto.ErrorResponse
	if err := json.NewDecoder(rec.Body).Decode(&response); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	if response.Error.Code != "DUPLICATE_USERNAME" {
		t.Errorf("unexpected error code: %s", response.Error.Code)
	}
	if response.Error.Message != "Username already registered" {
		t.Errorf("unexpected error message: %s", response.Error.Message)
	}
}

func TestAuthHandler_Register_BadRequests(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		wantCode string
	}{
		{"invalid json", `{not json`, "INVALID_JSON"},
		{"missing name", `{"username":"alice","password":"s3cret-password"}`, "INVALID_INPUT"},
		{"short password", `{"name":"Alice","username":"alice","password":"short"}`, "INVALID_INPUT"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newAuthHandler(newFakeUserStore())

			rec := httptest.NewRecorder()
			h.Register(rec, registerRequest(tt.body))

			if rec.Code != http.StatusBadRequest {
				t.Fatalf("expected status 400, got %d", rec.Code)
			}

			var response dto.ErrorResponse
			if err := json.NewDecoder(rec.Body).Decode(&response); err != nil {
				t.Fatalf("failed to decode response: %v", err)
			}
			if response.Error.Code != tt.wantCode {
				t.Errorf("expected code %s, got %s", tt.wantCode, response.Error.Code)
			}
		})
	}
}

func TestAuthHandler_Login(t *testing.T) {
	h := newAuthHandler(newFakeUserStore())

	rec := httptest.NewRecorder()
	h.Register(rec, registerRequest(`{"name":"Alice","username":"alice","password":"s3cret-password"}`))
	if rec.Code != http.StatusCreated {
		t.Fatalf("registration failed: %d", rec.Code)
	}

	rec = httptest.NewRecorder()
	h.Login(rec, loginRequest("alice", "s3cret-password"))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var response dto.LoginResponse
	if err := json.NewDecoder(rec.Body).Decode(&response); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	if response.AccessToken == "" {
		t.Error("expected a non-empty access token")
	}
	if response.TokenType != "bearer" {
		t.Errorf("expected token type 'bearer', got %s", response.TokenType)
	}
	if response.User.Username != "alice" || response.User.Name != "Alice" {
		t.Errorf("unexpected user info: %+v", response.User)
	}
}

func TestAuthHandler_Login_BadCredentials(t *testing.T) {
	store := newFakeUserStore()
	h := newAuthHandler(store)

	rec := httptest.NewRecorder()
	h.Register(rec, registerRequest(`{"name":"Alice","username":"alice","password":"s3cret-password"}`))
	if rec.Code != http.StatusCreated {
		t.Fatalf("registration failed: %d", rec.Code)
	}

	tests := []struct {
		name     string
		username string
		password string
	}{
		{"wrong password", "alice", "wrong-password"},
		{"unknown user", "nobody", "whatever-pass"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			h.Login(rec, loginRequest(tt.username, tt.password))

			if rec.Code != http.StatusUnauthorized {
				t.Fatalf("expected status 401, got %d", rec.Code)
			}
			if got := rec.Header().Get("WWW-Authenticate"); got != "Bearer" {
				t.Errorf("expected WWW-Authenticate Bearer, got %q", got)
			}

			var response dto.ErrorResponse
			if err := json.NewDecoder(rec.Body).Decode(&response); err != nil {
				t.Fatalf("failed to decode response: %v", err)
			}
			if response.Error.Message != "Incorrect username or password" {
				t.Errorf("unexpected error message: %s", response.Error.Message)
			}
		})
	}
}

func TestAuthHandler_Login_MissingFields(t *testing.T) {
	h := newAuthHandler(newFakeUserStore())

	rec := httptest.NewRecorder()
	h.Login(rec, loginRequest("alice", ""))

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", rec.Code)
	}

	var response dto.ErrorResponse
	if err := json.NewDecoder(rec.Body).Decode(&response); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if response.Error.Code != "MISSING_FIELDS" {
		t.Errorf("unexpected error code: %s", response.Error.Code)
	}
}
