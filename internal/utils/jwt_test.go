package utils

import "testing"

const secret = "test-secret"

func TestAccessTokenRoundTrip(t *testing.T) {
	tok, err := NewAccessToken(secret, "u-1", 30)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	sub, err := VerifyToken(secret, tok, TokenAccess)
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if sub != "u-1" {
		t.Errorf("sub = %q, want u-1", sub)
	}
}

func TestTokenTypeMismatchRejected(t *testing.T) {
	access, _ := NewAccessToken(secret, "u-1", 30)
	refresh, _ := NewRefreshToken(secret, "u-1", 7)
	csrf, _ := NewCSRFToken(secret, "u-1")

	cases := []struct {
		name     string
		raw      string
		wantType string
	}{
		{"access as refresh", access, TokenRefresh},
		{"access as csrf", access, TokenCSRF},
		{"refresh as access", refresh, TokenAccess},
		{"csrf as access", csrf, TokenAccess},
	}
	for _, tc := range cases {
		if _, err := VerifyToken(secret, tc.raw, tc.wantType); err == nil {
			t.Errorf("%s: verify succeeded, want rejection", tc.name)
		}
	}
}

func TestExpiredAccessTokenRejected(t *testing.T) {
	tok, err := NewAccessToken(secret, "u-1", -1)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	if _, err := VerifyToken(secret, tok, TokenAccess); err == nil {
		t.Error("expired token verified")
	}
}

func TestWrongSecretRejected(t *testing.T) {
	tok, _ := NewAccessToken(secret, "u-1", 30)
	if _, err := VerifyToken("other-secret", tok, TokenAccess); err == nil {
		t.Error("token verified under wrong secret")
	}
}

func TestGarbageTokenRejected(t *testing.T) {
	if _, err := VerifyToken(secret, "not.a.jwt", TokenAccess); err == nil {
		t.Error("garbage token verified")
	}
}

func TestCSRFTokenBinding(t *testing.T) {
	csrf, err := NewCSRFToken(secret, "u-1")
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	if !VerifyCSRFToken(secret, csrf, "u-1") {
		t.Error("csrf token rejected for its own user")
	}
	if VerifyCSRFToken(secret, csrf, "u-2") {
		t.Error("csrf token accepted for a different user")
	}
	access, _ := NewAccessToken(secret, "u-1", 30)
	if VerifyCSRFToken(secret, access, "u-1") {
		t.Error("access token accepted as csrf")
	}
}
