package playback

import "testing"

func TestRemarkStrategyString(t *testing.T) {
	tests := []struct {
		strategy RemarkStrategy
		want     string
	}{
		{StrategyRoundRobin, "round-robin"},
		{StrategyRandom, "random"},
		{RemarkStrategy(99), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.strategy.String(); got != tt.want {
			t.Errorf("String(%d) = %q, want %q", tt.strategy, got, tt.want)
		}
	}
}

func TestRoundRobinCyclesInOrder(t *testing.T) {
	pool := NewRemarkPool(StrategyRoundRobin)

	for i := 0; i < len(closingRemarks); i++ {
		if got := pool.Next(); got != closingRemarks[i] {
			t.Fatalf("Next #%d = %q, want %q", i, got, closingRemarks[i])
		}
	}
	// One full cycle done; it should wrap back to the start.
	if got := pool.Next(); got != closingRemarks[0] {
		t.Errorf("Next after a full cycle = %q, want the pool to wrap", got)
	}
}

func TestRandomStaysInPool(t *testing.T) {
	pool := NewRemarkPool(StrategyRandom)
	members := make(map[string]bool, len(closingRemarks))
	for _, r := range closingRemarks {
		members[r] = true
	}

	for i := 0; i < 50; i++ {
		if got := pool.Next(); !members[got] {
			t.Fatalf("Next returned %q, which is not in the pool", got)
		}
	}
}

func TestEmptyPool(t *testing.T) {
	pool := &RemarkPool{}
	if got := pool.Next(); got != "" {
		t.Errorf("Next on an empty pool = %q, want empty", got)
	}
}
