package orbit

// PanFalloff damps panning once the pivot is further than maxExtent from the origin.
// Beyond twice maxExtent the factor turns negative.
func PanFalloff(distance, maxExtent float64) float64 {
	if maxExtent <= 0 || distance <= maxExtent {
		return 1
	}
	return (2*maxExtent - distance) / maxExtent
}

// ZoomFalloff scales wheel steps by how far the camera is from the zoom minimum
func ZoomFalloff(current, min, recommended float64) float64 {
	if recommended <= 0 {
		return 1
	}
	return (current - min) / recommended
}
