package chain

//go:generate hwygen -input $GOFILE -output . -targets avx2,fallback

import (
	"github.com/ajroetker/go-highway/hwy"
)

// BaseBatchMinMax computes the minimum and maximum of one coordinate axis.
// BBox feeds it the axes of a vertex set one at a time (SoA layout).
func BaseBatchMinMax[T hwy.Floats](data []T) (minVal, maxVal T) {
	if len(data) == 0 {
		return 0, 0
	}

	// Seed both accumulators with the first element broadcast, so inputs
	// holding Infs or NaNs reduce the same way a scalar scan would.
	accMin := hwy.Set(data[0])
	accMax := hwy.Set(data[0])

	hwy.ProcessWithTail[T](len(data),
		func(offset int) {
			v := hwy.Load(data[offset:])
			accMin = hwy.Min(accMin, v)
			accMax = hwy.Max(accMax, v)
		},
		func(offset, count int) {
			// MaskLoad zero-fills the dead lanes; substitute the running
			// accumulator there so the padding never wins the reduction.
			mask := hwy.TailMask[T](count)
			v := hwy.MaskLoad(mask, data[offset:])
			accMin = hwy.Min(accMin, hwy.IfThenElse(mask, v, accMin))
			accMax = hwy.Max(accMax, hwy.IfThenElse(mask, v, accMax))
		},
	)

	return hwy.ReduceMin(accMin), hwy.ReduceMax(accMax)
}
