package auth

import "testing"

func TestAccessTokenRoundTrip(t *testing.T) {
	token, err := SignAccessToken("secret", "admin", true)
	if err != nil {
		t.Fatalf("sign failed: %v", err)
	}

	claims, err := ParseAccessToken("secret", token)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if claims.Username != "admin" || !claims.IsAdmin {
		t.Fatalf("claims = %+v", claims)
	}
	if claims.Subject != "operator" {
		t.Fatalf("subject = %q", claims.Subject)
	}
}

func TestParseAccessTokenRejectsWrongSecret(t *testing.T) {
	token, err := SignAccessToken("secret", "admin", false)
	if err != nil {
		t.Fatalf("sign failed: %v", err)
	}
	if _, err := ParseAccessToken("other", token); err == nil {
		t.Fatal("expected error for wrong secret")
	}
}
