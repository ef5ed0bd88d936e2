package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/mflix/catalog-api/internal/core/domain"
)

func TestUserHandler_Get_Success(t *testing.T) {
	e := newTestEcho()
	stub := &stubUserService{
		getFn: func(ctx context.Context, email string) (*domain.User, error) {
			return &domain.User{Name: "Alice", Email: email}, nil
		},
	}
	handler := NewUserHandler(stub)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/user", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("email", "alice@example.com")

	if err := handler.Get(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestUserHandler_UpdatePreferences_NullBodyRejected(t *testing.T) {
	e := newTestEcho()
	stub := &stubUserService{
		prefsFn: func(ctx context.Context, email string, preferences map[string]any) error {
			if preferences != nil {
				t.Fatalf("expected nil preferences from null body, got %+v", preferences)
			}
			return domain.NewInvalidOperation("user preferences cannot be set to null")
		},
	}
	handler := NewUserHandler(stub)

	body := strings.NewReader(`{"preferences":null}`)
	req := httptest.NewRequest(http.MethodPut, "/api/v1/user/preferences", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("email", "alice@example.com")

	err := handler.UpdatePreferences(c)
	if !domain.IsInvalidOperation(err) {
		t.Fatalf("expected InvalidOperationError, got %v", err)
	}
}

func TestUserHandler_UpdatePreferences_Success(t *testing.T) {
	e := newTestEcho()
	stub := &stubUserService{
		prefsFn: func(ctx context.Context, email string, preferences map[string]any) error {
			if preferences["lang"] != "en" {
				t.Fatalf("unexpected preferences: %+v", preferences)
			}
			return nil
		},
	}
	handler := NewUserHandler(stub)

	body := strings.NewReader(`{"preferences":{"lang":"en"}}`)
	req := httptest.NewRequest(http.MethodPut, "/api/v1/user/preferences", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("email", "alice@example.com")

	if err := handler.UpdatePreferences(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rec.Code)
	}
}

func TestUserHandler_DeleteAccount_Success(t *testing.T) {
	e := newTestEcho()
	called := false
	stub := &stubUserService{
		deleteFn: func(ctx context.Context, email, password string) error {
			called = true
			if email != "alice@example.com" || password != "secret123" {
				t.Fatalf("unexpected args: %s %s", email, password)
			}
			return nil
		},
	}
	handler := NewUserHandler(stub)

	body := strings.NewReader(`{"password":"secret123"}`)
	req := httptest.NewRequest(http.MethodDelete, "/api/v1/user", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("email", "alice@example.com")

	if err := handler.DeleteAccount(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called {
		t.Fatalf("delete not invoked")
	}
	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rec.Code)
	}
}
