package server

import "testing"

func TestClampPage(t *testing.T) {
	tests := []struct{ in, want int }{
		{-1, 1},
		{0, 1},
		{1, 1},
		{3, 3},
	}
	for _, tt := range tests {
		if got := clampPage(tt.in); got != tt.want {
			t.Errorf("clampPage(%d) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestClampLimit(t *testing.T) {
	tests := []struct{ in, want int }{
		{-5, 1},
		{0, 1},
		{1, 1},
		{10, 10},
		{100, 100},
		{101, 100},
		{1000, 100},
	}
	for _, tt := range tests {
		if got := clampLimit(tt.in); got != tt.want {
			t.Errorf("clampLimit(%d) = %d, want %d", tt.in, got, tt.want)
		}
	}
}
