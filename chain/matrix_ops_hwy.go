package chain

//go:generate hwygen -input $GOFILE -output . -targets avx2,fallback

import (
	"github.com/ajroetker/go-highway/hwy"
)

// BaseMatrixMulBatch applies the 3x3 basis m to a set of 3D vectors in SoA
// layout: dst = m · src. The face triangulator feeds it a plane basis as
// rows, rotating face vertices so the third output coordinate becomes the
// constant offset along the plane normal.
func BaseMatrixMulBatch[T hwy.Floats](
	m [3][3]T,
	srcX, srcY, srcZ []T,
	dstX, dstY, dstZ []T,
) {
	size := min(len(srcX), len(srcY), len(srcZ), len(dstX), len(dstY), len(dstZ))

	// One broadcast per basis entry, reused across every block.
	r00, r01, r02 := hwy.Set(m[0][0]), hwy.Set(m[0][1]), hwy.Set(m[0][2])
	r10, r11, r12 := hwy.Set(m[1][0]), hwy.Set(m[1][1]), hwy.Set(m[1][2])
	r20, r21, r22 := hwy.Set(m[2][0]), hwy.Set(m[2][1]), hwy.Set(m[2][2])

	hwy.ProcessWithTail[T](size,
		func(offset int) {
			x := hwy.Load(srcX[offset:])
			y := hwy.Load(srcY[offset:])
			z := hwy.Load(srcZ[offset:])

			// Each output row is a dot product with the matching basis row,
			// accumulated with fused multiply-adds.
			outX := hwy.FMA(z, r02, hwy.FMA(y, r01, hwy.Mul(x, r00)))
			outY := hwy.FMA(z, r12, hwy.FMA(y, r11, hwy.Mul(x, r10)))
			outZ := hwy.FMA(z, r22, hwy.FMA(y, r21, hwy.Mul(x, r20)))

			hwy.Store(outX, dstX[offset:])
			hwy.Store(outY, dstY[offset:])
			hwy.Store(outZ, dstZ[offset:])
		},
		func(offset, count int) {
			mask := hwy.TailMask[T](count)

			x := hwy.MaskLoad(mask, srcX[offset:])
			y := hwy.MaskLoad(mask, srcY[offset:])
			z := hwy.MaskLoad(mask, srcZ[offset:])

			outX := hwy.FMA(z, r02, hwy.FMA(y, r01, hwy.Mul(x, r00)))
			outY := hwy.FMA(z, r12, hwy.FMA(y, r11, hwy.Mul(x, r10)))
			outZ := hwy.FMA(z, r22, hwy.FMA(y, r21, hwy.Mul(x, r20)))

			hwy.MaskStore(mask, outX, dstX[offset:])
			hwy.MaskStore(mask, outY, dstY[offset:])
			hwy.MaskStore(mask, outZ, dstZ[offset:])
		},
	)
}
