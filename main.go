package main

import (
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/blockfall/audio"
	"github.com/lixenwraith/blockfall/config"
	"github.com/lixenwraith/blockfall/core"
	"github.com/lixenwraith/blockfall/engine"
	"github.com/lixenwraith/blockfall/input"
	"github.com/lixenwraith/blockfall/parameter"
	"github.com/lixenwraith/blockfall/render"
)

// Game owns the terminal, the engine and everything between them
type Game struct {
	screen   tcell.Screen
	engine   *engine.Engine
	renderer *render.Renderer
	sounds   *audio.SoundManager
	keys     *input.KeyTable

	// One command per tick; later key presses in the same frame win
	pendingCmd engine.Command
	lastTick   time.Time

	// Previous frame state, diffed to drive audio cues
	prevScore    int
	prevOccupied int
	prevGameOver bool
}

// NewGame wires the full stack from a loaded configuration
func NewGame(cfg *config.Config) (*Game, error) {
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	eng, err := engine.NewEngine(cfg.BoardWidth, cfg.BoardHeight, cfg.FallInterval(), rng)
	if err != nil {
		return nil, fmt.Errorf("engine: %w", err)
	}
	for kind, color := range cfg.PieceColors() {
		eng.SetKindColor(kind, color)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("screen init: %w", err)
	}

	g := &Game{
		screen:   screen,
		engine:   eng,
		renderer: render.NewRenderer(screen),
		sounds:   audio.NewSoundManager(),
		keys:     input.DefaultKeyTable(),
		lastTick: time.Now(),
	}
	g.sounds.SetMuted(cfg.Muted)

	// Non-fatal, game can run without sound
	if err := g.sounds.Initialize(); err != nil {
		log.Printf("Audio initialization failed: %v", err)
	}

	return g, nil
}

// handleEvent translates one terminal event. Returns false to quit.
func (g *Game) handleEvent(ev tcell.Event) bool {
	if _, ok := ev.(*tcell.EventResize); ok {
		g.screen.Sync()
		return true
	}

	intent := g.keys.Translate(ev)
	switch intent {
	case input.IntentQuit:
		return false
	case input.IntentToggleMute:
		g.sounds.ToggleMute()
		return true
	}

	if cmd := intent.Command(); cmd != engine.CommandNone {
		g.pendingCmd = cmd
	}
	return true
}

// tick advances the engine by real elapsed time and plays cues for
// whatever changed
func (g *Game) tick() {
	now := time.Now()
	elapsed := now.Sub(g.lastTick)
	g.lastTick = now

	cmd := g.pendingCmd
	g.pendingCmd = engine.CommandNone

	g.engine.Tick(elapsed, cmd)

	snap := g.engine.Snapshot()
	g.playCues(cmd, snap)
	g.renderer.Frame(snap, g.sounds.Muted())

	g.prevScore = snap.Score
	g.prevOccupied = countOccupied(snap)
	g.prevGameOver = snap.GameOver
}

// playCues diffs the snapshot against the previous frame. Score only
// moves on line clears, so the deltas are unambiguous.
func (g *Game) playCues(cmd engine.Command, snap engine.Snapshot) {
	if snap.GameOver && !g.prevGameOver {
		g.sounds.PlayGameOver()
		return
	}
	if g.prevGameOver && !snap.GameOver {
		// Fresh board after a restart, nothing to compare against
		return
	}
	if snap.GameOver {
		return
	}

	if delta := snap.Score - g.prevScore; delta > 0 {
		g.sounds.PlayLineClear(delta / parameter.LineBonus)
		return
	}
	if countOccupied(snap) > g.prevOccupied {
		g.sounds.PlayLock()
		return
	}

	switch cmd {
	case engine.CommandMoveLeft, engine.CommandMoveRight, engine.CommandMoveDown:
		g.sounds.PlayMove()
	case engine.CommandRotate:
		g.sounds.PlayRotate()
	}
}

func countOccupied(snap engine.Snapshot) int {
	count := 0
	for _, row := range snap.Cells {
		for _, cell := range row {
			if cell.Occupied {
				count++
			}
		}
	}
	return count
}

func (g *Game) run() {
	ticker := time.NewTicker(parameter.FrameInterval)
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	core.Go(func() {
		for {
			eventChan <- g.screen.PollEvent()
		}
	})

	for {
		select {
		case ev := <-eventChan:
			if !g.handleEvent(ev) {
				return
			}

		case <-ticker.C:
			g.tick()
		}
	}
}

func (g *Game) cleanup() {
	g.sounds.Cleanup()
	g.screen.Fini()
}

func main() {
	configPath := flag.String("config", "blockfall.yaml", "path to config file")
	seed := flag.Int64("seed", 0, "piece sequence seed (0 = random)")
	mute := flag.Bool("mute", false, "start with sound off")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}
	if *seed != 0 {
		cfg.Seed = *seed
	}
	if *mute {
		cfg.Muted = true
	}

	game, err := NewGame(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}

	// Restores the terminal before the crash report prints
	core.SetCrashCleanup(func() {
		game.screen.Fini()
	})
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()
	defer game.cleanup()

	game.run()
}
