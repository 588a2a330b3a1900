package backoff

import (
	"testing"
	"time"
)

func TestNextGrowsAndCaps(t *testing.T) {
	b := New(time.Second, 4*time.Second)

	expected := []time.Duration{
		time.Second,
		2 * time.Second,
		4 * time.Second,
		4 * time.Second,
	}
	for i, want := range expected {
		if got := b.Next(); got != want {
			t.Errorf("call %d: expected %v, got %v", i, want, got)
		}
	}
}

func TestResetRestartsSequence(t *testing.T) {
	b := New(time.Second, 8*time.Second)
	b.Next()
	b.Next()
	b.Reset()

	if got := b.Next(); got != time.Second {
		t.Errorf("expected base delay after reset, got %v", got)
	}
}

func TestNewAppliesSaneDefaults(t *testing.T) {
	b := New(0, -time.Second)
	if got := b.Next(); got != time.Second {
		t.Errorf("expected default base of 1s, got %v", got)
	}
}
