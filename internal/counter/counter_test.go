package counter

import "testing"

func TestCounterNeverNegative(t *testing.T) {
	c := New(0)
	if got := c.Decrement(); got != 0 {
		t.Fatalf("Decrement() at zero = %d, want 0", got)
	}
	c.Increment()
	c.Increment()
	if got := c.Decrement(); got != 1 {
		t.Fatalf("Decrement() = %d, want 1", got)
	}
}

func TestCounterSetClamps(t *testing.T) {
	tests := []struct {
		in   int
		want int
	}{
		{-5, 0},
		{0, 0},
		{42, 42},
	}
	for _, tt := range tests {
		if got := New(tt.in).Value(); got != tt.want {
			t.Errorf("New(%d).Value() = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestCounterReset(t *testing.T) {
	c := New(7)
	c.Reset()
	if c.Value() != 0 {
		t.Fatalf("Value() after Reset = %d", c.Value())
	}
}
