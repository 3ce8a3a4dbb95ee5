package security

import (
	"net/http/httptest"
	"testing"
	"time"
)

func TestSignAndParseSessionToken(t *testing.T) {
	const secret = "test-secret"

	token, err := SignSessionToken("abc-123", secret, time.Hour)
	if err != nil {
		t.Fatalf("SignSessionToken: %v", err)
	}

	id, err := ParseSessionToken(token, secret)
	if err != nil {
		t.Fatalf("ParseSessionToken: %v", err)
	}
	if id != "abc-123" {
		t.Errorf("subject = %q, want abc-123", id)
	}
}

func TestParseSessionTokenRejectsWrongSecret(t *testing.T) {
	token, err := SignSessionToken("abc-123", "secret-a", time.Hour)
	if err != nil {
		t.Fatalf("SignSessionToken: %v", err)
	}
	if _, err := ParseSessionToken(token, "secret-b"); err == nil {
		t.Error("token signed with another secret was accepted")
	}
}

func TestParseSessionTokenRejectsExpired(t *testing.T) {
	token, err := SignSessionToken("abc-123", "secret", -time.Minute)
	if err != nil {
		t.Fatalf("SignSessionToken: %v", err)
	}
	if _, err := ParseSessionToken(token, "secret"); err == nil {
		t.Error("expired token was accepted")
	}
}

func TestSignSessionTokenRequiresID(t *testing.T) {
	if _, err := SignSessionToken("", "secret", time.Hour); err == nil {
		t.Error("empty session id was accepted")
	}
}

func TestCSRFTokens(t *testing.T) {
	gen := NewCSRFGenerator("csrf-secret")

	token, err := gen.GenerateToken("session-1")
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}
	if !gen.ValidateToken("session-1", token) {
		t.Error("valid token rejected")
	}
	if gen.ValidateToken("session-2", token) {
		t.Error("token accepted for a different session")
	}
	if gen.ValidateToken("session-1", "") {
		t.Error("empty token accepted")
	}

	other := NewCSRFGenerator("other-secret")
	if other.ValidateToken("session-1", token) {
		t.Error("token accepted under a different secret")
	}
}

func TestRateLimiter(t *testing.T) {
	rl := NewRateLimiter(2, time.Hour)

	if !rl.Allow("1.2.3.4") || !rl.Allow("1.2.3.4") {
		t.Fatal("requests within the budget were denied")
	}
	if rl.Allow("1.2.3.4") {
		t.Error("request over the budget was allowed")
	}
	if !rl.Allow("5.6.7.8") {
		t.Error("a different client was throttled")
	}
}

func TestRateLimiterRefills(t *testing.T) {
	rl := NewRateLimiter(1, 10*time.Millisecond)

	if !rl.Allow("1.2.3.4") {
		t.Fatal("first request denied")
	}
	if rl.Allow("1.2.3.4") {
		t.Fatal("second request allowed before refill")
	}
	time.Sleep(15 * time.Millisecond)
	if !rl.Allow("1.2.3.4") {
		t.Error("request denied after the window elapsed")
	}
}

func TestIsSecureRequest(t *testing.T) {
	plain := httptest.NewRequest("GET", "http://example.com/", nil)
	if IsSecureRequest(plain) {
		t.Error("plain request reported secure")
	}

	proxied := httptest.NewRequest("GET", "http://example.com/", nil)
	proxied.Header.Set("X-Forwarded-Proto", "https")
	if !IsSecureRequest(proxied) {
		t.Error("proxied https request reported insecure")
	}
}

func TestSessionCookieFlags(t *testing.T) {
	r := httptest.NewRequest("GET", "http://example.com/", nil)
	cookie := CreateSessionCookie(r, "lesson_session", "value", time.Now().Add(time.Hour))

	if !cookie.HttpOnly {
		t.Error("session cookie is not HttpOnly")
	}
	if cookie.Path != "/" {
		t.Errorf("cookie path = %q, want /", cookie.Path)
	}

	del := CreateDeleteCookie(r, "lesson_session")
	if del.MaxAge != -1 || del.Value != "" {
		t.Error("delete cookie does not clear the value")
	}
}
