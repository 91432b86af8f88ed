package mathx

import "testing"

func TestAdd(t *testing.T) {
	t.Parallel()

	cases := []struct {
		a, b, want int
	}{
		{0, 0, 0},
		{1, 2, 3},
		{-1, 1, 0},
		{-3, -4, -7},
	}
	for i, c := range cases {
		if got := Add(c.a, c.b); got != c.want {
			t.Fatalf("case %d: Add(%d,%d)=%d want %d", i, c.a, c.b, got, c.want)
		}
	}
}

func TestSubtract(t *testing.T) {
	t.Parallel()

	cases := []struct {
		a, b, want int
	}{
		{0, 0, 0},
		{5, 2, 3},
		{2, 5, -3},
		{-3, -4, 1},
	}
	for i, c := range cases {
		if got := Subtract(c.a, c.b); got != c.want {
			t.Fatalf("case %d: Subtract(%d,%d)=%d want %d", i, c.a, c.b, got, c.want)
		}
	}
}
