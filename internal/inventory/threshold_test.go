package inventory

import "testing"

func TestCrossedLow(t *testing.T) {
	tests := []struct {
		name      string
		oldStock  int
		newStock  int
		threshold int
		want      bool
	}{
		{"drops below threshold", 15, 4, 5, true},
		{"drops exactly to threshold", 10, 5, 5, true},
		{"stays above threshold", 15, 10, 5, false},
		{"stays below threshold", 4, 2, 5, false},
		{"rises above threshold", 2, 10, 5, false},
		{"rises but still below", 1, 3, 5, false},
		{"unchanged above", 10, 10, 5, false},
		{"unchanged below", 3, 3, 5, false},
		{"unchanged at threshold", 5, 5, 5, false},
		{"zero threshold hit", 1, 0, 0, true},
		{"new item lands below threshold", NeverStocked, 2, 5, true},
		{"new item lands above threshold", NeverStocked, 10, 5, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CrossedLow(tt.oldStock, tt.newStock, tt.threshold); got != tt.want {
				t.Errorf("CrossedLow(%d, %d, %d) = %v, want %v", tt.oldStock, tt.newStock, tt.threshold, got, tt.want)
			}
		})
	}
}
