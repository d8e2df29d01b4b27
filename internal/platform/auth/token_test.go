package auth

import (
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
)

func newTestTokenService() *TokenService {
	return NewTokenService([]byte("test-secret"), 30*time.Minute, 168*time.Hour)
}

func TestIssuePair_VerifyAccess(t *testing.T) {
	svc := newTestTokenService()
	userID := uuid.New()

	pair, err := svc.IssuePair(userID, "alice")
	if err != nil {
		t.Fatalf("IssuePair() error: %v", err)
	}
	if pair.Access == "" || pair.Refresh == "" {
		t.Fatal("expected non-empty access and refresh tokens")
	}

	claims, err := svc.Verify(pair.Access, TokenTypeAccess)
	if err != nil {
		t.Fatalf("Verify() error: %v", err)
	}
	if claims.Subject != userID.String() {
		t.Errorf("expected subject %s, got %s", userID, claims.Subject)
	}
	if claims.Username != "alice" {
		t.Errorf("expected username alice, got %s", claims.Username)
	}
}

func TestVerify_RejectsWrongTokenType(t *testing.T) {
	svc := newTestTokenService()
	pair, err := svc.IssuePair(uuid.New(), "alice")
	if err != nil {
		t.Fatalf("IssuePair() error: %v", err)
	}

	if _, err := svc.Verify(pair.Refresh, TokenTypeAccess); err == nil {
		t.Error("expected refresh token to be rejected as access token")
	}
	if _, err := svc.Verify(pair.Access, TokenTypeRefresh); err == nil {
		t.Error("expected access token to be rejected as refresh token")
	}
}

func TestVerify_RejectsTamperedToken(t *testing.T) {
	svc := newTestTokenService()
	pair, err := svc.IssuePair(uuid.New(), "alice")
	if err != nil {
		t.Fatalf("IssuePair() error: %v", err)
	}

	// Flip a character in the signature segment.
	parts := strings.Split(pair.Access, ".")
	sig := []byte(parts[2])
	if sig[0] == 'A' {
		sig[0] = 'B'
	} else {
		sig[0] = 'A'
	}
	tampered := parts[0] + "." + parts[1] + "." + string(sig)

	if _, err := svc.Verify(tampered, TokenTypeAccess); err == nil {
		t.Error("expected tampered token to be rejected")
	}
}

func TestVerify_RejectsWrongSecret(t *testing.T) {
	svc := newTestTokenService()
	pair, err := svc.IssuePair(uuid.New(), "alice")
	if err != nil {
		t.Fatalf("IssuePair() error: %v", err)
	}

	other := NewTokenService([]byte("other-secret"), 30*time.Minute, 168*time.Hour)
	if _, err := other.Verify(pair.Access, TokenTypeAccess); err == nil {
		t.Error("expected token signed with a different secret to be rejected")
	}
}

func TestVerify_RejectsExpiredToken(t *testing.T) {
	svc := NewTokenService([]byte("test-secret"), -time.Minute, time.Hour)
	pair, err := svc.IssuePair(uuid.New(), "alice")
	if err != nil {
		t.Fatalf("IssuePair() error: %v", err)
	}

	if _, err := svc.Verify(pair.Access, TokenTypeAccess); err == nil {
		t.Error("expected expired token to be rejected")
	}
}

func TestVerify_RejectsMalformedToken(t *testing.T) {
	svc := newTestTokenService()
	if _, err := svc.Verify("not-a-jwt", TokenTypeAccess); err == nil {
		t.Error("expected malformed token to be rejected")
	}
}

func TestRefresh_IssuesNewAccessToken(t *testing.T) {
	svc := newTestTokenService()
	userID := uuid.New()
	pair, err := svc.IssuePair(userID, "alice")
	if err != nil {
		t.Fatalf("IssuePair() error: %v", err)
	}

	access, err := svc.Refresh(pair.Refresh)
	if err != nil {
		t.Fatalf("Refresh() error: %v", err)
	}

	claims, err := svc.Verify(access, TokenTypeAccess)
	if err != nil {
		t.Fatalf("Verify() error: %v", err)
	}
	if claims.Subject != userID.String() {
		t.Errorf("expected refreshed token subject %s, got %s", userID, claims.Subject)
	}
}

func TestRefresh_RejectsAccessToken(t *testing.T) {
	svc := newTestTokenService()
	pair, err := svc.IssuePair(uuid.New(), "alice")
	if err != nil {
		t.Fatalf("IssuePair() error: %v", err)
	}

	if _, err := svc.Refresh(pair.Access); err == nil {
		t.Error("expected Refresh() to reject an access token")
	}
}
