package screen

import "github.com/arloliu/xcbalance/types"

// Cutoff screens shells by the distance from their center to the batch box.
//
// A shell survives when that distance does not exceed its cutoff radius.
// Shells with a non-positive radius never survive.
type Cutoff struct {
	// scale multiplies every cutoff radius.
	scale float64
}

var _ types.Screener = (*Cutoff)(nil)

// CutoffOption configures a Cutoff screener.
type CutoffOption func(*Cutoff)

// WithRadiusScale multiplies every shell cutoff radius by scale.
// Values above 1 keep more shells; values at or below 0 are ignored.
func WithRadiusScale(scale float64) CutoffOption {
	return func(c *Cutoff) {
		if scale > 0 {
			c.scale = scale
		}
	}
}

// NewCutoff creates a distance-cutoff screener.
//
// Example:
//
//	screener := screen.NewCutoff(screen.WithRadiusScale(1.2))
//	lb, err := xcbalance.NewLoadBalancer(&cfg, comm, mol, grid, basis, xcbalance.WithScreener(screener))
func NewCutoff(opts ...CutoffOption) *Cutoff {
	c := &Cutoff{scale: 1}
	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Screen returns the shells of basis reaching into [lower, upper], in basis order.
func (c *Cutoff) Screen(basis types.Basis, lower, upper types.Point) types.Screening {
	var s types.Screening
	for i := range basis.NumShells() {
		sh := basis.Shell(i)
		if sh.CutoffRadius <= 0 {
			continue
		}
		if types.BoxDistance(sh.Center, lower, upper) > sh.CutoffRadius*c.scale {
			continue
		}

		s.ShellList = append(s.ShellList, int32(i)) //nolint:gosec // shell counts fit in int32
		s.NBE += sh.NumFunctions
	}

	return s
}
