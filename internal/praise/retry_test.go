package praise

import (
	"testing"
	"time"
)

func TestPolicyDelayDoubles(t *testing.T) {
	p := DefaultPolicy
	want := []time.Duration{2 * time.Second, 4 * time.Second, 8 * time.Second}
	for attempt, d := range want {
		if got := p.Delay(attempt); got != d {
			t.Fatalf("Delay(%d) = %s, want %s", attempt, got, d)
		}
	}
}

func TestPolicyDefaults(t *testing.T) {
	if DefaultPolicy.MaxAttempts != 3 {
		t.Fatalf("expected 3 attempts, got %d", DefaultPolicy.MaxAttempts)
	}
	if DefaultPolicy.BaseDelay != 2*time.Second {
		t.Fatalf("expected 2s base delay, got %s", DefaultPolicy.BaseDelay)
	}
}
