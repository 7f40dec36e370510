// Package route models the enemy path as continuous geometry over a grid
// of square cells. A route is an axis-aligned polyline through cell
// centers; positions along it are addressed by arc length, so movement is
// a single scalar per enemy and sampling is where geometry happens.
package route

import (
	"fmt"
	"math"
)

// Vec is a 2D point or displacement in world units (one cell = one unit).
type Vec struct {
	X, Y float64
}

func (v Vec) Add(o Vec) Vec      { return Vec{v.X + o.X, v.Y + o.Y} }
func (v Vec) Sub(o Vec) Vec      { return Vec{v.X - o.X, v.Y - o.Y} }
func (v Vec) Scale(k float64) Vec { return Vec{v.X * k, v.Y * k} }

// Len returns the vector's euclidean length.
func (v Vec) Len() float64 { return math.Sqrt(v.X*v.X + v.Y*v.Y) }

// DistSq returns the squared distance to another point. Range checks
// compare squared distances to avoid the sqrt.
func (v Vec) DistSq(o Vec) float64 {
	dx := v.X - o.X
	dy := v.Y - o.Y
	return dx*dx + dy*dy
}

// Cell is a grid coordinate. Col grows rightward, Row grows downward.
type Cell struct {
	Col, Row int
}

// Center returns the cell's center in world units.
func (c Cell) Center() Vec {
	return Vec{X: float64(c.Col) + 0.5, Y: float64(c.Row) + 0.5}
}

// Route is an immutable polyline through cell centers with precomputed
// per-segment and cumulative lengths, built once per map.
type Route struct {
	points  []Vec
	lengths []float64 // cumulative arc length at each point; lengths[0] == 0
	total   float64
}

// Build validates the waypoint list and constructs the route. Waypoints
// must number at least two, each segment must be axis-aligned, and no
// segment may have zero length.
func Build(waypoints []Cell) (*Route, error) {
	if len(waypoints) < 2 {
		return nil, fmt.Errorf("route: need at least 2 waypoints, got %d", len(waypoints))
	}

	points := make([]Vec, len(waypoints))
	for i, w := range waypoints {
		points[i] = w.Center()
	}

	lengths := make([]float64, len(points))
	for i := 1; i < len(points); i++ {
		seg := points[i].Sub(points[i-1])
		if seg.X != 0 && seg.Y != 0 {
			return nil, fmt.Errorf("route: segment %d is not axis-aligned (%v -> %v)", i-1, waypoints[i-1], waypoints[i])
		}
		l := seg.Len()
		if l == 0 {
			return nil, fmt.Errorf("route: segment %d has zero length at %v", i-1, waypoints[i-1])
		}
		lengths[i] = lengths[i-1] + l
	}

	return &Route{
		points:  points,
		lengths: lengths,
		total:   lengths[len(lengths)-1],
	}, nil
}

// Total returns the route's full arc length.
func (r *Route) Total() float64 { return r.total }

// Start returns the route's entry point.
func (r *Route) Start() Vec { return r.points[0] }

// End returns the route's exit point (the core).
func (r *Route) End() Vec { return r.points[len(r.points)-1] }

// Sample returns the world position at arc length d from the start.
// Distances outside [0, Total] clamp to the endpoints.
func (r *Route) Sample(d float64) Vec {
	if d <= 0 {
		return r.points[0]
	}
	if d >= r.total {
		return r.points[len(r.points)-1]
	}
	// Linear scan: routes have a handful of segments.
	for i := 1; i < len(r.lengths); i++ {
		if d <= r.lengths[i] {
			segLen := r.lengths[i] - r.lengths[i-1]
			t := (d - r.lengths[i-1]) / segLen
			dir := r.points[i].Sub(r.points[i-1])
			return r.points[i-1].Add(dir.Scale(t))
		}
	}
	return r.points[len(r.points)-1]
}

// ExpandToCells returns every grid cell the route passes through, in
// travel order, each cell listed once. Corner cells are shared between
// consecutive segments and deduplicated.
func ExpandToCells(waypoints []Cell) []Cell {
	var out []Cell
	seen := make(map[Cell]bool)
	add := func(c Cell) {
		if !seen[c] {
			seen[c] = true
			out = append(out, c)
		}
	}
	for i := 1; i < len(waypoints); i++ {
		a, b := waypoints[i-1], waypoints[i]
		dc := sign(b.Col - a.Col)
		dr := sign(b.Row - a.Row)
		c := a
		add(c)
		for c != b {
			c.Col += dc
			c.Row += dr
			add(c)
		}
	}
	return out
}

func sign(n int) int {
	switch {
	case n > 0:
		return 1
	case n < 0:
		return -1
	default:
		return 0
	}
}
