package source

import "github.com/arloliu/xcbalance/types"

// NewCubeGrid returns the batches of a uniform cube grid centered on the origin.
//
// The cube [-half, half]^3 is sampled at n^3 cell centers, each weighted by
// the cell volume, and split into div^3 equal sub-boxes that become batches
// in x-major order. A sub-box holding no cell center yields an empty batch.
//
// Parameters:
//   - half: Half edge length of the cube (must be positive)
//   - n: Points per axis
//   - div: Sub-boxes per axis
//
// Returns:
//   - []types.Batch: div^3 batches, or nil for non-positive arguments
func NewCubeGrid(half float64, n, div int) []types.Batch {
	if half <= 0 || n < 1 || div < 1 {
		return nil
	}

	h := 2 * half / float64(n)
	box := 2 * half / float64(div)
	weight := h * h * h

	batches := make([]types.Batch, div*div*div)
	for ix := range div {
		for iy := range div {
			for iz := range div {
				b := &batches[(ix*div+iy)*div+iz]
				b.Lower = types.Point{-half + float64(ix)*box, -half + float64(iy)*box, -half + float64(iz)*box}
				b.Upper = types.Point{b.Lower[0] + box, b.Lower[1] + box, b.Lower[2] + box}
			}
		}
	}

	cell := func(c float64) int {
		return min(int((c+half)/box), div-1)
	}

	for i := range n {
		for j := range n {
			for k := range n {
				p := types.Point{
					-half + (float64(i)+0.5)*h,
					-half + (float64(j)+0.5)*h,
					-half + (float64(k)+0.5)*h,
				}
				b := &batches[(cell(p[0])*div+cell(p[1]))*div+cell(p[2])]
				b.Points = append(b.Points, p)
				b.Weights = append(b.Weights, weight)
			}
		}
	}

	return batches
}
