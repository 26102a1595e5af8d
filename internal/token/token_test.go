package token_test

import (
	"encoding/hex"
	"testing"

	"github.com/campbellhoskins/chore-bot/internal/token"
)

func TestGenerate_Length(t *testing.T) {
	generated, err := token.Generate()
	if err != nil {
		t.Fatalf("generating token: %v", err)
	}
	if len(generated) != 32 {
		t.Errorf("expected 32 hex characters, got %d", len(generated))
	}
	if _, err := hex.DecodeString(generated); err != nil {
		t.Errorf("token is not valid hex: %v", err)
	}
}

func TestGenerate_Distinct(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		generated, err := token.Generate()
		if err != nil {
			t.Fatalf("generating token: %v", err)
		}
		if seen[generated] {
			t.Fatalf("duplicate token generated: %s", generated)
		}
		seen[generated] = true
	}
}
