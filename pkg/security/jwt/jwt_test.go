package jwt

import (
	"context"
	"testing"
	"time"

	jwtlib "github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/akulinev/inventory/pkg/auth"
)

func TestGenerator_SubjectAndIssuer(t *testing.T) {
	t.Parallel()

	gen := NewGenerator("super-secret", "inventory-service", time.Hour)
	user := auth.User{ID: uuid.New()}

	tok, err := gen.Generate(context.Background(), user)
	if err != nil {
		t.Fatalf("Generate error: %v", err)
	}

	parsed, err := jwtlib.ParseWithClaims(tok, &Claims{}, func(t *jwtlib.Token) (any, error) {
		return []byte("super-secret"), nil
	})
	if err != nil {
		t.Fatalf("ParseWithClaims error: %v", err)
	}
	claims := parsed.Claims.(*Claims)
	if claims.Subject != user.ID.String() {
		t.Fatalf("subject mismatch: got %q want %q", claims.Subject, user.ID)
	}
	if claims.Issuer != "inventory-service" {
		t.Fatalf("issuer mismatch: got %q", claims.Issuer)
	}
	if claims.ExpiresAt == nil || !claims.ExpiresAt.After(time.Now()) {
		t.Fatalf("expected a future expiry, got %v", claims.ExpiresAt)
	}
}

func TestGenerator_WrongSecretRejected(t *testing.T) {
	t.Parallel()

	gen := NewGenerator("right-secret", "inventory-service", time.Hour)
	tok, err := gen.Generate(context.Background(), auth.User{ID: uuid.New()})
	if err != nil {
		t.Fatalf("Generate error: %v", err)
	}

	_, err = jwtlib.ParseWithClaims(tok, &Claims{}, func(t *jwtlib.Token) (any, error) {
		return []byte("wrong-secret"), nil
	})
	if err == nil {
		t.Fatal("expected error for wrong secret, got nil")
	}
}

func TestGenerator_ExpiredTokenRejected(t *testing.T) {
	t.Parallel()

	gen := NewGenerator("secret", "inventory-service", -time.Minute)
	tok, err := gen.Generate(context.Background(), auth.User{ID: uuid.New()})
	if err != nil {
		t.Fatalf("Generate error: %v", err)
	}

	_, err = jwtlib.ParseWithClaims(tok, &Claims{}, func(t *jwtlib.Token) (any, error) {
		return []byte("secret"), nil
	})
	if err == nil {
		t.Fatal("expected error for expired token, got nil")
	}
}
