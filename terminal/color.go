package terminal

import "github.com/muesli/termenv"

// ColorMode indicates terminal color capability
type ColorMode uint8

const (
	ColorMode256       ColorMode = iota // xterm-256 palette
	ColorModeTrueColor                  // 24-bit RGB
)

// RGB represents a 24-bit color
type RGB struct {
	R, G, B uint8
}

// RGBBlack is the zero value black color
var RGBBlack = RGB{0, 0, 0}

// DetectColorMode maps the termenv color profile onto the two modes the
// renderer distinguishes. Anything below 256 colors is still driven
// through the 256 palette; approximation is the terminal's problem.
func DetectColorMode() ColorMode {
	if termenv.ColorProfile() == termenv.TrueColor {
		return ColorModeTrueColor
	}
	return ColorMode256
}

// Color cube levels for the 6x6x6 palette (indices 16-231)
var cubeValues = [6]uint8{0, 95, 135, 175, 215, 255}

// grayscaleStart is the first grayscale index (232-255 = 24 shades)
const grayscaleStart = 232

// RGBTo256 maps a 24-bit color to the nearest xterm-256 index
func RGBTo256(c RGB) uint8 {
	// Grayscale ramp when channels are close together
	if isGray(c) {
		avg := (int(c.R) + int(c.G) + int(c.B)) / 3
		if avg < 8 {
			return 16 // Cube black
		}
		if avg > 238 {
			return 231 // Cube white
		}
		return uint8(grayscaleStart + (avg-8)/10)
	}

	ri := nearestCube(c.R)
	gi := nearestCube(c.G)
	bi := nearestCube(c.B)
	return uint8(16 + 36*ri + 6*gi + bi)
}

func isGray(c RGB) bool {
	max := c.R
	min := c.R
	for _, v := range [2]uint8{c.G, c.B} {
		if v > max {
			max = v
		}
		if v < min {
			min = v
		}
	}
	return max-min < 12
}

func nearestCube(v uint8) int {
	best := 0
	bestDist := absInt(int(v) - int(cubeValues[0]))
	for i := 1; i < 6; i++ {
		d := absInt(int(v) - int(cubeValues[i]))
		if d < bestDist {
			bestDist = d
			best = i
		}
	}
	return best
}

func absInt(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
