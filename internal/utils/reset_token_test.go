package utils

import (
	"errors"
	"testing"
	"time"
)

func TestResetTokenRoundTrip(t *testing.T) {
	tok, err := NewResetToken("s3cret", time.Minute, time.Now())
	if err != nil {
		t.Fatal(err)
	}
	if err := VerifyResetToken("s3cret", tok); err != nil {
		t.Fatalf("Verify: %v", err)
	}
}

func TestResetTokenRejected(t *testing.T) {
	good, _ := NewResetToken("s3cret", time.Minute, time.Now())
	expired, _ := NewResetToken("s3cret", time.Minute, time.Now().Add(-time.Hour))

	tests := map[string]struct{ secret, raw string }{
		"empty":        {"s3cret", ""},
		"garbage":      {"s3cret", "not-a-jwt"},
		"wrong secret": {"other", good},
		"expired":      {"s3cret", expired},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if err := VerifyResetToken(tt.secret, tt.raw); !errors.Is(err, ErrInvalidResetToken) {
				t.Fatalf("err = %v, want ErrInvalidResetToken", err)
			}
		})
	}
}
