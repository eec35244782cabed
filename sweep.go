package curvepath

import "golang.org/x/exp/slices"

// axisInterval is a closed interval along one axis, tagged with an
// arbitrary index identifying which item it came from. Used by
// sweepOverlaps to find candidate pairs for the broad phase of curve/
// curve collision detection without an all-pairs scan.
type axisInterval struct {
	lo, hi float64
	index  int
}

// sweepOverlaps sorts intervals by their low endpoint and returns every
// pair of indices whose intervals overlap, using a classic sweep-line:
// keep a set of intervals still "active" (whose hi hasn't passed) and
// test the current interval against all of them.
func sweepOverlaps(intervals []axisInterval) [][2]int {
	sorted := make([]axisInterval, len(intervals))
	copy(sorted, intervals)
	slices.SortFunc(sorted, func(a, b axisInterval) int {
		switch {
		case a.lo < b.lo:
			return -1
		case a.lo > b.lo:
			return 1
		default:
			return 0
		}
	})

	var pairs [][2]int
	var active []axisInterval
	for _, cur := range sorted {
		kept := active[:0]
		for _, a := range active {
			if a.hi < cur.lo {
				continue
			}
			kept = append(kept, a)
			lo, hi := a.index, cur.index
			if lo > hi {
				lo, hi = hi, lo
			}
			pairs = append(pairs, [2]int{lo, hi})
		}
		active = append(kept, cur)
	}
	return pairs
}

// rectsForSweep projects a slice of bounding boxes onto the X axis,
// producing the axisInterval inputs sweepOverlaps expects.
func rectsForSweep(boxes []Rect) []axisInterval {
	out := make([]axisInterval, len(boxes))
	for i, b := range boxes {
		out[i] = axisInterval{lo: b.Min.X, hi: b.Max.X, index: i}
	}
	return out
}

// candidatePairs returns every pair of indices (i, j) with i < j whose
// bounding boxes overlap on the X axis, as a cheap broad-phase filter
// before the exact (and far more expensive) curve/curve intersection
// test is run on each candidate pair.
func candidatePairs(boxes []Rect) [][2]int {
	raw := sweepOverlaps(rectsForSweep(boxes))
	seen := make(map[[2]int]bool, len(raw))
	var out [][2]int
	for _, p := range raw {
		if p[0] == p[1] {
			continue
		}
		if !seen[p] {
			seen[p] = true
			out = append(out, p)
		}
	}
	slices.SortFunc(out, func(a, b [2]int) int {
		if a[0] != b[0] {
			return a[0] - b[0]
		}
		return a[1] - b[1]
	})
	return out
}
