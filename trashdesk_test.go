package trashdesk

import "testing"

func TestRectContains(t *testing.T) {
	r := DefaultConfig().SpawnArea() // (-300,-200) 600x400
	tests := []struct {
		name   string
		x, y   float64
		expect bool
	}{
		{"center", 0, 0, true},
		{"min corner", -300, -200, true},
		{"max corner", 300, 200, true},
		{"left edge", -300, 50, true},
		{"outside left", -300.5, 0, false},
		{"outside right", 300.5, 0, false},
		{"outside below", 0, -200.5, false},
		{"outside above", 0, 200.5, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := r.Contains(tt.x, tt.y); got != tt.expect {
				t.Errorf("Rect%v.Contains(%v, %v) = %v, want %v", r, tt.x, tt.y, got, tt.expect)
			}
		})
	}
}
