package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/blockfall/core"
)

// Chrome colors for everything around the well
var (
	RgbBackground = tcell.NewRGBColor(26, 27, 38)    // Tokyo Night background
	RgbBorder     = tcell.NewRGBColor(86, 95, 137)   // Muted slate for the well frame
	RgbTitle      = tcell.NewRGBColor(122, 162, 247) // Accent blue
	RgbScore      = tcell.NewRGBColor(224, 175, 104) // Warm amber
	RgbLegend     = tcell.NewRGBColor(120, 124, 153) // Dim gray for key hints
	RgbGameOver   = tcell.NewRGBColor(247, 118, 142) // Alarm red
	RgbMuted      = tcell.NewRGBColor(120, 124, 153)
	RgbEmptyCell  = tcell.NewRGBColor(40, 42, 58) // Barely-there well interior
)

// gameOverDim fades locked cells behind the game over banner
const gameOverDim = 0.35

// toTcell converts an engine color to a terminal color
func toTcell(c core.RGB) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}
