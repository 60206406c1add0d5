package advanced

// Andrew's monotone chain. Points are sorted lexicographically, then scanned
// once forward and once backward. Each scan keeps only counterclockwise turns,
// so the forward scan yields the chain below the point set and the backward
// scan the chain above it. Sorting dominates at O(n log n); each scan pushes
// every point once and pops it at most once.

type PointStack []Point

func (s *PointStack) Push(p Point) {
	*s = append(*s, p)
}

// Pop the top point. Popping an empty stack returns the zero point.
func (s *PointStack) Pop() Point {
	if len(*s) == 0 {
		return Point{}
	}
	p := (*s)[len(*s)-1]
	*s = (*s)[:len(*s)-1]
	return p
}

func (s *PointStack) Peek() Point {
	if len(*s) == 0 {
		return Point{}
	}
	return (*s)[len(*s)-1]
}

func (s *PointStack) Empty() bool {
	return len(*s) == 0
}

// Scan lexicographically sorted points and keep the chain that only turns
// counterclockwise. Whenever the last three points on the stack fail to make a
// strict left turn, the middle one is dropped. Collinear and duplicate points
// never make a strict turn, so they are dropped too.
func HalfHull(points []Point) []Point {
	hull := make(PointStack, 0, len(points))
	hull.Push(points[0])
	hull.Push(points[1])
	for _, p := range points[2:] {
		hull.Push(p)
		for len(hull) > 2 {
			n := len(hull)
			if Orientation2d(hull[n-3], hull[n-2], hull[n-1]) == Positive {
				break
			}
			// Remove the middle of the last three points
			last := hull.Pop()
			hull.Pop()
			hull.Push(last)
		}
	}
	return hull
}

// Compute the convex hull of a set of at least two points. The input is not
// modified. The result lists every hull vertex once, counterclockwise,
// starting from the lexicographically smallest point. Collinear input
// degenerates to its two extreme points, and input where every point
// coincides gives a single point.
func ConvexHull2D(points []Point) []Point {
	if len(points) < 2 {
		fatalf("convex hull requires at least two points, got %d", len(points))
	}

	sorted := make([]Point, len(points))
	copy(sorted, points)
	LexicographicOrder(sorted)
	forward := HalfHull(sorted)

	reversePoints(sorted)
	backward := HalfHull(sorted)

	if Equal(forward[0], forward[len(forward)-1]) {
		return forward[:1]
	}

	// Both chains run between the same two extreme points. Keep them once.
	return append(forward, backward[1:len(backward)-1]...)
}

// Check whether p is inside or on the boundary of a counterclockwise convex
// polygon, such as the output of ConvexHull2D.
func HullContains(hull []Point, p Point) bool {
	switch len(hull) {
	case 0:
		return false
	case 1:
		return Equal(hull[0], p)
	case 2:
		segment, err := NewSegment(hull[0], hull[1])
		if err != nil {
			return Equal(hull[0], p)
		}
		return segment.Contains(p)
	}

	for i, a := range hull {
		b := hull[CircularIndex(i+1, len(hull))]
		if Orientation2d(a, b, p) == Negative {
			return false
		}
	}
	return true
}

func reversePoints(points []Point) {
	for left, right := 0, len(points)-1; left < right; left, right = left+1, right-1 {
		points[left], points[right] = points[right], points[left]
	}
}
