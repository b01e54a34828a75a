package core

import (
	"fmt"
	"strings"
)

// RGB stores explicit 8-bit color channels, decoupled from tcell
type RGB struct {
	R, G, B uint8
}

// Predefined colors
var (
	RGBBlack = RGB{0, 0, 0}
	RGBWhite = RGB{255, 255, 255}
)

// HexRGB unpacks a 24-bit 0xRRGGBB value
func HexRGB(v uint32) RGB {
	return RGB{
		R: uint8(v >> 16),
		G: uint8(v >> 8),
		B: uint8(v),
	}
}

// ParseHexRGB parses "#RRGGBB" or "RRGGBB" strings (config files)
func ParseHexRGB(s string) (RGB, error) {
	s = strings.TrimPrefix(s, "#")
	if len(s) != 6 {
		return RGBBlack, fmt.Errorf("invalid hex color %q: want 6 hex digits", s)
	}
	var v uint32
	if _, err := fmt.Sscanf(s, "%06x", &v); err != nil {
		return RGBBlack, fmt.Errorf("invalid hex color %q: %w", s, err)
	}
	return HexRGB(v), nil
}

// Hex returns the packed 24-bit 0xRRGGBB value
func (c RGB) Hex() uint32 {
	return uint32(c.R)<<16 | uint32(c.G)<<8 | uint32(c.B)
}

// Blend performs alpha blending: result = src*alpha + dst*(1-alpha)
func (c RGB) Blend(src RGB, alpha float64) RGB {
	if alpha <= 0 {
		return c
	}
	if alpha >= 1 {
		return src
	}
	inv := 1.0 - alpha
	return RGB{
		R: uint8(float64(src.R)*alpha + float64(c.R)*inv),
		G: uint8(float64(src.G)*alpha + float64(c.G)*inv),
		B: uint8(float64(src.B)*alpha + float64(c.B)*inv),
	}
}

// Scale multiplies each channel by factor (for fading effects)
func (c RGB) Scale(factor float64) RGB {
	if factor <= 0 {
		return RGBBlack
	}
	if factor >= 1 {
		return c
	}
	return RGB{
		R: uint8(float64(c.R) * factor),
		G: uint8(float64(c.G) * factor),
		B: uint8(float64(c.B) * factor),
	}
}
