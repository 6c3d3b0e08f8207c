package jwt

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/akulinev/inventory/pkg/auth"
)

const (
	testSecret = "test-secret"
	testIssuer = "inventory-service"
)

func newProtectedApp() *fiber.App {
	app := fiber.New()
	app.Get("/protected", NewAuthMiddleware(testSecret, testIssuer), func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"userId": c.Locals("userId")})
	})
	return app
}

func issueToken(t *testing.T, secret, issuer string, ttl time.Duration) (string, uuid.UUID) {
	t.Helper()
	uid := uuid.New()
	tok, err := NewGenerator(secret, issuer, ttl).Generate(context.Background(), auth.User{ID: uid})
	if err != nil {
		t.Fatalf("Generate error: %v", err)
	}
	return tok, uid
}

func TestAuthMiddleware(t *testing.T) {
	validToken, _ := issueToken(t, testSecret, testIssuer, time.Hour)
	expiredToken, _ := issueToken(t, testSecret, testIssuer, -time.Minute)
	wrongKeyToken, _ := issueToken(t, "another-secret", testIssuer, time.Hour)
	wrongIssuerToken, _ := issueToken(t, testSecret, "someone-else", time.Hour)

	tests := []struct {
		name       string
		authHeader string
		wantStatus int
	}{
		{name: "missing header", authHeader: "", wantStatus: http.StatusUnauthorized},
		{name: "malformed token", authHeader: "Bearer not.a.jwt", wantStatus: http.StatusUnauthorized},
		{name: "wrong signature", authHeader: "Bearer " + wrongKeyToken, wantStatus: http.StatusUnauthorized},
		{name: "expired token", authHeader: "Bearer " + expiredToken, wantStatus: http.StatusUnauthorized},
		{name: "wrong issuer", authHeader: "Bearer " + wrongIssuerToken, wantStatus: http.StatusUnauthorized},
		{name: "valid bearer token", authHeader: "Bearer " + validToken, wantStatus: http.StatusOK},
		{name: "bare token without prefix", authHeader: validToken, wantStatus: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := newProtectedApp()
			req := httptest.NewRequest(http.MethodGet, "/protected", nil)
			if tt.authHeader != "" {
				req.Header.Set("Authorization", tt.authHeader)
			}
			resp, err := app.Test(req)
			if err != nil {
				t.Fatalf("app.Test error: %v", err)
			}
			defer resp.Body.Close()
			if resp.StatusCode != tt.wantStatus {
				t.Errorf("status = %d, want %d", resp.StatusCode, tt.wantStatus)
			}
		})
	}
}

func TestAuthMiddleware_SetsSubjectInLocals(t *testing.T) {
	tok, uid := issueToken(t, testSecret, testIssuer, time.Hour)

	app := fiber.New()
	var gotUserID string
	app.Get("/protected", NewAuthMiddleware(testSecret, testIssuer), func(c *fiber.Ctx) error {
		gotUserID, _ = c.Locals("userId").(string)
		return c.SendStatus(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+tok)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test error: %v", err)
	}
	defer resp.Body.Close()

	if gotUserID != uid.String() {
		t.Fatalf("userId in locals = %q, want %q", gotUserID, uid)
	}
}
