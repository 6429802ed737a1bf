package render

import "math"

// FillFieldRGBA converts continuous cell values in [0, 1] into RGBA pixels
// using a dark-blue-to-yellow ramp with a gamma curve for contrast. Values
// that are NaN or out of range render as empty cells.
func FillFieldRGBA(buf []byte, values []float64) {
	for i, v := range values {
		if math.IsNaN(v) || v < 0 {
			v = 0
		}
		if v > 1 {
			v = 1
		}
		intensity := math.Sqrt(v)
		r := 255 * math.Min(1, 1.5*intensity)
		g := 255 * intensity
		b := 255 * math.Max(0, 1-intensity)

		base := i * 4
		buf[base+0] = uint8(r)
		buf[base+1] = uint8(g)
		buf[base+2] = uint8(b)
		buf[base+3] = 255
	}
}

// FillHeatRGBA converts values in [0, 1] into a translucent single-tint
// heat layer for diagnostic overlays. Zero values are fully transparent.
func FillHeatRGBA(buf []byte, values []float64, tintR, tintG, tintB uint8) {
	const maxAlpha = 150.0
	for i, v := range values {
		base := i * 4
		if math.IsNaN(v) || v <= 0 {
			buf[base+0] = 0
			buf[base+1] = 0
			buf[base+2] = 0
			buf[base+3] = 0
			continue
		}
		if v > 1 {
			v = 1
		}
		glow := 0.35 + 0.65*math.Sqrt(v)
		buf[base+0] = scaleComponent(tintR, glow)
		buf[base+1] = scaleComponent(tintG, glow)
		buf[base+2] = scaleComponent(tintB, glow)
		buf[base+3] = uint8(math.Round(maxAlpha * v))
	}
}

func scaleComponent(value uint8, factor float64) uint8 {
	scaled := math.Round(float64(value) * factor)
	if scaled < 0 {
		return 0
	}
	if scaled > 255 {
		return 255
	}
	return uint8(scaled)
}
