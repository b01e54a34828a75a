package engine

import (
	"github.com/lixenwraith/blockfall/core"
)

// Kind identifies one of the seven tetromino variants
type Kind uint8

const (
	KindI Kind = iota
	KindO
	KindT
	KindS
	KindZ
	KindJ
	KindL

	kindCount
)

// String returns the conventional single-letter name
func (k Kind) String() string {
	if k >= kindCount {
		return "?"
	}
	return string("IOTSZJL"[k])
}

// Color returns the stable 24-bit presentation color for the variant
func (k Kind) Color() core.RGB {
	return kindColors[k]
}

// ParseKind resolves a single-letter variant name, for config keys
func ParseKind(s string) (Kind, bool) {
	if len(s) != 1 {
		return 0, false
	}
	for k := KindI; k < kindCount; k++ {
		if k.String() == s {
			return k, true
		}
	}
	return 0, false
}

// offset is a cell position relative to the piece pivot
type offset struct {
	dx, dy int
}

// shapeTable holds each variant's ordered rotation states as four
// pivot-relative offsets. The tables are immutable; rotation numbers
// index them cyclically modulo the variant's rotation count.
var shapeTable = [kindCount][][4]offset{
	KindI: {
		{{-1, 0}, {0, 0}, {1, 0}, {2, 0}},
	},
	KindO: {
		{{0, 0}, {1, 0}, {0, 1}, {1, 1}},
	},
	KindT: {
		{{0, -1}, {-1, 0}, {0, 0}, {1, 0}},
		{{0, -1}, {0, 0}, {0, 1}, {1, 0}},
		{{0, -1}, {-1, 0}, {0, 0}, {0, 1}},
		{{0, -1}, {-1, 0}, {0, 0}, {1, 0}},
	},
	KindS: {
		{{-1, 0}, {0, 0}, {0, -1}, {1, -1}},
		{{0, -1}, {0, 0}, {1, 0}, {1, 1}},
		{{-1, 0}, {0, 0}, {0, -1}, {1, -1}},
		{{0, -1}, {0, 0}, {1, 0}, {1, 1}},
	},
	KindZ: {
		{{-1, -1}, {0, -1}, {0, 0}, {1, 0}},
		{{0, 0}, {1, -1}, {0, -1}, {1, 0}},
		{{-1, -1}, {0, -1}, {0, 0}, {1, 0}},
		{{0, 0}, {1, -1}, {0, -1}, {1, 0}},
	},
	KindJ: {
		{{-1, -1}, {-1, 0}, {0, 0}, {1, 0}},
		{{0, -1}, {1, -1}, {0, 0}, {0, 1}},
		{{-1, 0}, {0, 0}, {1, 0}, {1, 1}},
		{{0, -1}, {0, 0}, {-1, 1}, {0, 1}},
	},
	KindL: {
		{{1, -1}, {-1, 0}, {0, 0}, {1, 0}},
		{{0, -1}, {0, 0}, {0, 1}, {1, 1}},
		{{-1, 0}, {0, 0}, {1, 0}, {-1, 1}},
		{{-1, -1}, {0, -1}, {0, 0}, {0, 1}},
	},
}

// kindColors assigns one fixed color per variant
var kindColors = [kindCount]core.RGB{
	KindI: core.HexRGB(0x00FFFF),
	KindO: core.HexRGB(0xFFFF00),
	KindT: core.HexRGB(0x800080),
	KindS: core.HexRGB(0x00FF00),
	KindZ: core.HexRGB(0xFF0000),
	KindJ: core.HexRGB(0x0000FF),
	KindL: core.HexRGB(0xFFA500),
}

// rotations returns the variant's rotation states
func (k Kind) rotations() [][4]offset {
	return shapeTable[k]
}

// activePiece is the falling piece: variant, pivot position in board
// coordinates and rotation index. It exists only while falling; lock
// discards it and only board colors remain.
type activePiece struct {
	kind     Kind
	x, y     int
	rotation int
}

// shape resolves the piece's current rotation state
func (p *activePiece) shape() [4]offset {
	states := p.kind.rotations()
	return states[p.rotation%len(states)]
}
