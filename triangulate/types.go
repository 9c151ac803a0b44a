package triangulate

import (
	"math"

	"github.com/katalvlaran/polynav/cdt"
)

// Options configures the boundary+obstacles -> Layer pipeline. The zero
// value is not meant to be used directly; call DefaultOptions and
// override fields, matching the teacher's functional-options-with-
// sensible-defaults construction idiom (realized here as a plain struct
// since every field is independently meaningful, unlike polyanya's
// Option functions which gate optional behavior).
type Options struct {
	// AgentRadius inflates every obstacle outward by this amount before
	// triangulation. Zero disables inflation.
	AgentRadius float64
	// AgentRadiusSegments is the number of arc vertices inserted per
	// corner when rounding an inflated obstacle's corners.
	AgentRadiusSegments int
	// AgentRadiusSimplification is the Visvalingam-Whyatt area epsilon
	// applied to an obstacle's outline after inflation. Zero disables
	// simplification.
	AgentRadiusSimplification float64

	// Refine, if non-nil, is applied to the CDT before face
	// classification.
	Refine *cdt.RefineOptions
}

// DefaultOptions returns the spec's documented defaults: no inflation,
// 5-segment corner rounding (used only once AgentRadius > 0), no
// simplification, no refinement pass.
func DefaultOptions() Options {
	return Options{
		AgentRadius:               0.0,
		AgentRadiusSegments:       5,
		AgentRadiusSimplification: 0.0,
		Refine:                    nil,
	}
}

const fullCircle = 2 * math.Pi
