package orbit

// wheelStep is the fraction of the average extent one wheel notch moves the camera
const wheelStep = 0.1

type zoomState struct {
	current float64
	min     float64
	max     float64
}

func (z *zoomState) set(v float64) {
	z.current = v
	z.clamp()
}

// clamp applies the lower bound first so a reversed range settles on max
func (z *zoomState) clamp() {
	if z.current < z.min {
		z.current = z.min
	}
	if z.current > z.max {
		z.current = z.max
	}
}

// step moves the camera one wheel notch towards (-1) or away from (+1) the pivot
func (z *zoomState) step(sign float64, m BoundingMetrics, falloff bool) {
	factor := 1.0
	if falloff {
		factor = ZoomFalloff(z.current, z.min, m.RecommendedDistance)
	}
	z.set(z.current + m.AvgExtent*wheelStep*factor*sign)
}

// pinch scales the zoom at gesture start by the change of the inter-touch distance
func (z *zoomState) pinch(anchor, ratio float64) {
	z.set(anchor - (ratio-1)*anchor)
}
