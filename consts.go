package curvepath

// Numeric tolerances shared across the curve, intersection, and graph-path
// layers. Values match the constants of record for this engine; changing
// them changes the corner cases the pipeline resolves correctly.
const (
	// smallDistance is the positional closeness used to decide vertex
	// identity (snapping a root to an existing endpoint).
	smallDistance = 1e-6

	// closeDistance is the positional closeness used for coalescing
	// vertices and removing very short edges.
	closeDistance = 1e-4

	// closeEnough is the acceptance tolerance for SolveCurveForT and
	// SolveCurveForTAlongAxis.
	closeEnough = 5e-5

	// clipDegeneracyThreshold is the leading-coefficient magnitude below
	// which curveIntersectsRay degrades cubic -> quadratic -> linear.
	clipDegeneracyThreshold = 1e-8

	// fatLineShrinkThreshold is the fraction of its previous parameter
	// width that each curve's range must shrink to in a clip step; if
	// either range stays wider, clipRecursive subdivides and recurses.
	// Control-polygon lengths are not measured.
	fatLineShrinkThreshold = 0.8

	// healGapMaxDepth bounds the breadth-first search used to bridge
	// missed exterior edges.
	healGapMaxDepth = 3

	// defaultAccuracy is used when WithAccuracy is not supplied.
	defaultAccuracy = 0.01
)
