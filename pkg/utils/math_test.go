package utils

import "testing"

func TestFloorDiv(t *testing.T) {
	cases := []struct{ a, b, want int }{
		{7, 2, 3}, {-7, 2, -4}, {-8, 2, -4}, {0, 3, 0}, {-1, 3, -1},
	}
	for _, c := range cases {
		if got := FloorDiv(c.a, c.b); got != c.want {
			t.Errorf("FloorDiv(%d, %d) = %d, want %d", c.a, c.b, got, c.want)
		}
	}
}

func TestCeilHalf(t *testing.T) {
	cases := map[int]int{-3: -1, -2: -1, -1: 0, 0: 0, 1: 1, 2: 1, 3: 2, 4: 2}
	for n, want := range cases {
		if got := CeilHalf(n); got != want {
			t.Errorf("CeilHalf(%d) = %d, want %d", n, got, want)
		}
	}
}
