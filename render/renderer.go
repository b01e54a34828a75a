package render

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/blockfall/engine"
)

// Each board cell covers two terminal columns so blocks look square
const cellWidth = 2

// Renderer draws engine snapshots onto a tcell screen
type Renderer struct {
	screen tcell.Screen
}

// NewRenderer creates a renderer over an initialized screen
func NewRenderer(screen tcell.Screen) *Renderer {
	return &Renderer{screen: screen}
}

// Frame renders one complete frame from a snapshot
func (r *Renderer) Frame(snap engine.Snapshot, muted bool) {
	r.screen.Clear()
	defaultStyle := tcell.StyleDefault.Background(RgbBackground)

	r.drawHeader(snap, muted, defaultStyle)
	r.drawWellFrame(snap, defaultStyle)
	r.drawCells(snap, defaultStyle)
	r.drawLegend(snap, defaultStyle)

	if snap.GameOver {
		r.drawGameOverBanner(snap, defaultStyle)
	}

	r.screen.Show()
}

// wellOrigin returns the top-left screen position of the well interior
func (r *Renderer) wellOrigin() (int, int) {
	return 1, 2
}

func (r *Renderer) drawHeader(snap engine.Snapshot, muted bool, defaultStyle tcell.Style) {
	r.drawText(0, 0, "BLOCKFALL", defaultStyle.Foreground(RgbTitle).Bold(true))

	score := fmt.Sprintf("SCORE %6d", snap.Score)
	scoreX := snap.Width*cellWidth + 2 - len(score)
	if scoreX < 10 {
		scoreX = 10
	}
	r.drawText(scoreX, 0, score, defaultStyle.Foreground(RgbScore))

	if muted {
		r.drawText(scoreX-7, 0, "[MUTE]", defaultStyle.Foreground(RgbMuted))
	}
}

func (r *Renderer) drawWellFrame(snap engine.Snapshot, defaultStyle tcell.Style) {
	ox, oy := r.wellOrigin()
	innerWidth := snap.Width * cellWidth
	style := defaultStyle.Foreground(RgbBorder)

	r.screen.SetContent(ox-1, oy-1, '┌', nil, style)
	r.screen.SetContent(ox+innerWidth, oy-1, '┐', nil, style)
	r.screen.SetContent(ox-1, oy+snap.Height, '└', nil, style)
	r.screen.SetContent(ox+innerWidth, oy+snap.Height, '┘', nil, style)

	for x := 0; x < innerWidth; x++ {
		r.screen.SetContent(ox+x, oy-1, '─', nil, style)
		r.screen.SetContent(ox+x, oy+snap.Height, '─', nil, style)
	}
	for y := 0; y < snap.Height; y++ {
		r.screen.SetContent(ox-1, oy+y, '│', nil, style)
		r.screen.SetContent(ox+innerWidth, oy+y, '│', nil, style)
	}
}

func (r *Renderer) drawCells(snap engine.Snapshot, defaultStyle tcell.Style) {
	ox, oy := r.wellOrigin()

	for y := 0; y < snap.Height; y++ {
		for x := 0; x < snap.Width; x++ {
			cell := snap.Cells[y][x]
			if !cell.Occupied {
				r.drawBlock(ox+x*cellWidth, oy+y, '·', defaultStyle.Foreground(RgbEmptyCell))
				continue
			}
			color := cell.Color
			if snap.GameOver {
				color = color.Scale(gameOverDim)
			}
			r.drawBlock(ox+x*cellWidth, oy+y, '█', defaultStyle.Foreground(toTcell(color)))
		}
	}

	activeColor := snap.ActiveColor
	if snap.GameOver {
		activeColor = activeColor.Scale(gameOverDim)
	}
	activeStyle := defaultStyle.Foreground(toTcell(activeColor))
	for _, p := range snap.Active {
		r.drawBlock(ox+p.X*cellWidth, oy+p.Y, '█', activeStyle)
	}
}

// drawBlock fills one board cell. The dot marker only occupies the
// left column so the empty grid stays sparse.
func (r *Renderer) drawBlock(x, y int, ch rune, style tcell.Style) {
	if ch == '·' {
		r.screen.SetContent(x, y, ch, nil, style)
		r.screen.SetContent(x+1, y, ' ', nil, style)
		return
	}
	for i := 0; i < cellWidth; i++ {
		r.screen.SetContent(x+i, y, ch, nil, style)
	}
}

func (r *Renderer) drawLegend(snap engine.Snapshot, defaultStyle tcell.Style) {
	_, oy := r.wellOrigin()
	legend := "←→↓/hjl move  ↑/k rotate  r restart  m mute  q quit"
	r.drawText(0, oy+snap.Height+1, legend, defaultStyle.Foreground(RgbLegend))
}

func (r *Renderer) drawGameOverBanner(snap engine.Snapshot, defaultStyle tcell.Style) {
	ox, oy := r.wellOrigin()
	innerWidth := snap.Width * cellWidth

	banner := " GAME OVER "
	hint := " press r to restart "

	bannerY := oy + snap.Height/2
	style := defaultStyle.Foreground(RgbGameOver).Bold(true)
	r.drawText(ox+(innerWidth-len(banner))/2, bannerY, banner, style)
	if bannerY+1 < oy+snap.Height {
		r.drawText(ox+(innerWidth-len(hint))/2, bannerY+1, hint, defaultStyle.Foreground(RgbLegend))
	}
}

func (r *Renderer) drawText(x, y int, text string, style tcell.Style) {
	for i, ch := range text {
		r.screen.SetContent(x+i, y, ch, nil, style)
	}
}
