package chain

//go:generate hwygen -input $GOFILE -output . -targets avx2,fallback

import (
	"github.com/ajroetker/go-highway/hwy"
)

// BaseBatchCross2D computes the z-component of the 2D cross product for two
// sets of vectors (SoA layout): out = ax*by - ay*bx. Summing half of it over
// a triangle fan yields the signed area of a planar polygon.
func BaseBatchCross2D[T hwy.Floats](
	ax, ay []T,
	bx, by []T,
	out []T,
) {
	size := min(len(ax), len(ay), len(bx), len(by), len(out))

	hwy.ProcessWithTail[T](size,
		func(offset int) {
			vAx := hwy.Load(ax[offset:])
			vAy := hwy.Load(ay[offset:])
			vBx := hwy.Load(bx[offset:])
			vBy := hwy.Load(by[offset:])

			v := hwy.Sub(hwy.Mul(vAx, vBy), hwy.Mul(vAy, vBx))

			hwy.Store(v, out[offset:])
		},
		func(offset, count int) {
			mask := hwy.TailMask[T](count)

			vAx := hwy.MaskLoad(mask, ax[offset:])
			vAy := hwy.MaskLoad(mask, ay[offset:])
			vBx := hwy.MaskLoad(mask, bx[offset:])
			vBy := hwy.MaskLoad(mask, by[offset:])

			v := hwy.Sub(hwy.Mul(vAx, vBy), hwy.Mul(vAy, vBx))

			hwy.MaskStore(mask, v, out[offset:])
		},
	)
}
