package models

// Detection is a single bounding-box finding from the image classifier,
// in image-pixel units.
type Detection struct {
	X          float64
	Y          float64
	Width      float64
	Height     float64
	Confidence float64
}

// Area returns the bounding-box area in square pixels.
func (d Detection) Area() float64 {
	return d.Width * d.Height
}

// ClassifierResult is one classifier response: zero or more detections plus
// the dimensions of the analyzed image. Zero detections is a valid,
// non-error result.
type ClassifierResult struct {
	Detections  []Detection
	ImageWidth  float64
	ImageHeight float64
}

// ImageArea returns the total area of the analyzed image, or 0 when the
// classifier did not report dimensions.
func (r *ClassifierResult) ImageArea() float64 {
	return r.ImageWidth * r.ImageHeight
}
