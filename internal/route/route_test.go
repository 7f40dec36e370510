package route

import (
	"math"
	"testing"
)

func TestBuildValidation(t *testing.T) {
	tests := []struct {
		name      string
		waypoints []Cell
		wantErr   bool
	}{
		{"empty", nil, true},
		{"single", []Cell{{0, 0}}, true},
		{"diagonal", []Cell{{0, 0}, {3, 3}}, true},
		{"zero length segment", []Cell{{0, 0}, {5, 0}, {5, 0}}, true},
		{"straight", []Cell{{0, 0}, {5, 0}}, false},
		{"l-shape", []Cell{{0, 0}, {5, 0}, {5, 4}}, false},
		{"backtrack turn", []Cell{{0, 2}, {6, 2}, {6, 5}, {2, 5}}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Build(tt.waypoints)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Build(%v) error = %v, wantErr %v", tt.waypoints, err, tt.wantErr)
			}
		})
	}
}

func TestTotal(t *testing.T) {
	r, err := Build([]Cell{{0, 0}, {5, 0}, {5, 4}})
	if err != nil {
		t.Fatal(err)
	}
	if got := r.Total(); got != 9 {
		t.Fatalf("Total() = %v, want 9", got)
	}
}

func TestSampleClamps(t *testing.T) {
	r, err := Build([]Cell{{0, 0}, {5, 0}, {5, 4}})
	if err != nil {
		t.Fatal(err)
	}
	if got := r.Sample(-5); got != r.Start() {
		t.Errorf("Sample(-5) = %v, want start %v", got, r.Start())
	}
	if got := r.Sample(r.Total() + 100); got != r.End() {
		t.Errorf("Sample(past end) = %v, want end %v", got, r.End())
	}
}

func TestSampleInterpolates(t *testing.T) {
	r, err := Build([]Cell{{0, 0}, {4, 0}, {4, 3}})
	if err != nil {
		t.Fatal(err)
	}
	tests := []struct {
		d    float64
		want Vec
	}{
		{0, Vec{0.5, 0.5}},
		{2, Vec{2.5, 0.5}},
		{4, Vec{4.5, 0.5}},      // first corner
		{4 + 1.5, Vec{4.5, 2.0}}, // halfway down the second segment
		{7, Vec{4.5, 3.5}},
	}
	for _, tt := range tests {
		got := r.Sample(tt.d)
		if math.Abs(got.X-tt.want.X) > 1e-9 || math.Abs(got.Y-tt.want.Y) > 1e-9 {
			t.Errorf("Sample(%v) = %v, want %v", tt.d, got, tt.want)
		}
	}
}

// Walking the route in fixed steps must move strictly forward with hops
// bounded by the step size.
func TestSampleMonotonic(t *testing.T) {
	r, err := Build([]Cell{{0, 2}, {6, 2}, {6, 7}, {1, 7}})
	if err != nil {
		t.Fatal(err)
	}
	const step = 0.05
	prev := r.Sample(0)
	traveled := 0.0
	for d := step; d <= r.Total(); d += step {
		cur := r.Sample(d)
		hop := math.Sqrt(prev.DistSq(cur))
		if hop > step+1e-9 {
			t.Fatalf("hop at d=%v is %v, exceeds step %v", d, hop, step)
		}
		traveled += hop
		prev = cur
	}
	if math.Abs(traveled-r.Total()) > step {
		t.Errorf("cumulative travel %v, want about %v", traveled, r.Total())
	}
}

func TestExpandToCells(t *testing.T) {
	got := ExpandToCells([]Cell{{0, 0}, {2, 0}, {2, 2}})
	want := []Cell{{0, 0}, {1, 0}, {2, 0}, {2, 1}, {2, 2}}
	if len(got) != len(want) {
		t.Fatalf("ExpandToCells = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("ExpandToCells[%d] = %v, want %v", i, got[i], want[i])
		}
	}
	// Corner cells must not repeat.
	seen := make(map[Cell]bool)
	for _, c := range got {
		if seen[c] {
			t.Fatalf("duplicate cell %v", c)
		}
		seen[c] = true
	}
}
