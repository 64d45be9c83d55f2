package auth

import (
	"testing"
)

func TestPasswordHashRoundTrip(t *testing.T) {
	hash, err := HashPassword("s3cret-password")
	if err != nil {
		t.Fatal(err)
	}
	if !CheckPasswordHash("s3cret-password", hash) {
		t.Error("correct password rejected")
	}
	if CheckPasswordHash("wrong-password", hash) {
		t.Error("wrong password accepted")
	}
}

func TestTokenManager_RoundTrip(t *testing.T) {
	tokens, err := NewTokenManager("test-secret", "1h")
	if err != nil {
		t.Fatal(err)
	}

	tokenString, err := tokens.Generate("emp-1", "admin@pharmafactory.local", "admin")
	if err != nil {
		t.Fatal(err)
	}

	claims, err := tokens.Parse(tokenString)
	if err != nil {
		t.Fatal(err)
	}
	if claims.EmployeeID != "emp-1" || claims.Email != "admin@pharmafactory.local" || claims.Role != "admin" {
		t.Errorf("claims = %+v, want the identity that was signed", claims)
	}
}

func TestTokenManager_RejectsForeignToken(t *testing.T) {
	issuer, _ := NewTokenManager("secret-a", "1h")
	verifier, _ := NewTokenManager("secret-b", "1h")

	tokenString, err := issuer.Generate("emp-1", "a@b.c", "staff")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := verifier.Parse(tokenString); err == nil {
		t.Error("token signed with a different secret was accepted")
	}
}

func TestNewTokenManager_RequiresSecret(t *testing.T) {
	if _, err := NewTokenManager("", "1h"); err == nil {
		t.Error("empty secret accepted")
	}
	if _, err := NewTokenManager("x", "not-a-duration"); err == nil {
		t.Error("malformed expiration accepted")
	}
}
