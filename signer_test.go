package goSession

import (
	"errors"
	"strings"
	"testing"
)

func TestSignerRoundTrip(t *testing.T) {
	s, err := NewSigner([]byte("top-secret"))
	if err != nil {
		t.Fatalf("new signer: %v", err)
	}

	token := s.Sign("abc-123")
	if !strings.HasPrefix(token, "abc-123.") {
		t.Fatalf("token does not embed the raw id: %q", token)
	}

	raw, err := s.Verify(token)
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if raw != "abc-123" {
		t.Fatalf("expected abc-123, got %q", raw)
	}
}

func TestSignerRejectsTampering(t *testing.T) {
	s, err := NewSigner([]byte("top-secret"))
	if err != nil {
		t.Fatalf("new signer: %v", err)
	}
	token := s.Sign("abc-123")

	for name, mangled := range map[string]string{
		"swapped id":    "xyz-999" + token[strings.LastIndexByte(token, '.'):],
		"truncated sig": token[:len(token)-2],
		"no separator":  strings.ReplaceAll(token, ".", ""),
		"empty":         "",
		"only dot":      ".",
		"trailing dot":  "abc-123.",
	} {
		if _, err := s.Verify(mangled); !errors.Is(err, ErrBadSignature) {
			t.Fatalf("%s: expected ErrBadSignature, got %v", name, err)
		}
	}
}

func TestSignerNotPortableAcrossSecrets(t *testing.T) {
	a, err := NewSigner([]byte("secret-a"))
	if err != nil {
		t.Fatalf("new signer: %v", err)
	}
	b, err := NewSigner([]byte("secret-b"))
	if err != nil {
		t.Fatalf("new signer: %v", err)
	}

	if _, err := b.Verify(a.Sign("abc-123")); !errors.Is(err, ErrBadSignature) {
		t.Fatalf("expected cross-secret rejection, got %v", err)
	}
}

func TestSignerRequiresSecret(t *testing.T) {
	if _, err := NewSigner(nil); !errors.Is(err, ErrMissingSecretKey) {
		t.Fatalf("expected ErrMissingSecretKey, got %v", err)
	}
}
