package main

import (
	"flag"
	"fmt"
	"image/color"
	"io/fs"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/younwookim/lair/internal/application/game"
	"github.com/younwookim/lair/internal/application/state"
	"github.com/younwookim/lair/internal/application/system"
	"github.com/younwookim/lair/internal/domain/entity"
	"github.com/younwookim/lair/internal/infrastructure/config"
)

// Colors for rendering
var (
	colorBG          = color.RGBA{26, 26, 46, 255}
	colorWall        = color.RGBA{80, 80, 100, 255}
	colorPlayer      = color.RGBA{100, 200, 100, 255}
	colorShieldUp    = color.RGBA{120, 180, 255, 255}
	colorShieldDown  = color.RGBA{70, 70, 90, 255}
	colorDragon      = color.RGBA{200, 100, 100, 255}
	colorDragonAlert = color.RGBA{255, 60, 60, 255}
	colorFlame       = color.RGBA{255, 160, 60, 255}
	colorBarBG       = color.RGBA{60, 60, 60, 255}
	colorStamina     = color.RGBA{220, 220, 100, 255}
	colorShieldBar   = color.RGBA{120, 180, 255, 255}
)

// App implements ebiten.Game interface
type App struct {
	cfg    *config.GameConfig
	sim    *game.Simulation
	input  *system.InputSystem
	paused bool
	dt     float64

	screenW int
	screenH int

	// Recording / playback
	recorder       *Recorder
	replayer       *Replayer
	recordFilename string
	arenaName      string
	savedOnEnd     bool
}

// NewApp creates the application shell around a simulation.
func NewApp(cfg *config.GameConfig, sim *game.Simulation, arenaName, recordFilename string, replayer *Replayer, seed int64) *App {
	app := &App{
		cfg:            cfg,
		sim:            sim,
		input:          system.NewInputSystem(),
		dt:             1.0 / float64(cfg.Display.Framerate),
		screenW:        int(sim.Arena().Width),
		screenH:        int(sim.Arena().Height),
		recordFilename: recordFilename,
		arenaName:      arenaName,
		replayer:       replayer,
	}

	if recordFilename != "" {
		app.recorder = NewRecorder(seed, arenaName)
		log.Printf("Recording enabled: %s (seed: %d)", recordFilename, seed)
	}

	return app
}

// Update proceeds the simulation by one frame
func (a *App) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		a.paused = !a.paused
	}
	if a.paused {
		return nil
	}

	if a.sim.Round() != state.RoundRunning {
		if a.recorder != nil && !a.savedOnEnd {
			a.saveRecording()
			a.savedOnEnd = true
		}
		if inpututil.IsKeyJustPressed(ebiten.KeyR) {
			a.restart()
		}
		return nil
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyF5) && a.recorder != nil {
		a.saveRecording()
	}

	var in system.Intent
	if a.replayer != nil {
		replayed, ok := a.replayer.GetIntent()
		if !ok {
			// Replay exhausted; hand control back to the keyboard.
			a.replayer = nil
		} else {
			in = replayed
		}
	}
	if a.replayer == nil {
		in = a.input.GetIntent()
	}

	if a.recorder != nil {
		a.recorder.RecordFrame(in)
	}

	a.sim.Step(in, a.dt)
	return nil
}

func (a *App) restart() {
	a.sim.Reseed(time.Now().UnixNano())
	a.sim.Reset()
	a.savedOnEnd = false

	if a.replayer != nil {
		a.replayer.Reset()
	}
	if a.recordFilename != "" {
		a.recorder = NewRecorder(time.Now().UnixNano(), a.arenaName)
		log.Printf("Recording restarted")
	}
}

func (a *App) saveRecording() {
	if a.recorder == nil {
		return
	}

	filename := a.recordFilename
	if filename == "" {
		filename = GenerateFilename()
	}

	if err := a.recorder.Save(filename); err != nil {
		log.Printf("Failed to save recording: %v", err)
	} else {
		log.Printf("Recording saved: %s (%d frames)", filename, a.recorder.FrameCount())
	}
}

// Draw renders the current frame
func (a *App) Draw(screen *ebiten.Image) {
	screen.Fill(colorBG)

	for _, w := range a.sim.Arena().Walls {
		ebitenutil.DrawRect(screen, w.X, w.Y, w.W, w.H, colorWall)
	}

	for _, f := range a.sim.Flames() {
		p := f.Probe()
		ebitenutil.DrawRect(screen, p.X, p.Y, p.W, p.H, colorFlame)
	}

	a.drawDragon(screen)
	a.drawPlayer(screen)
	a.drawHUD(screen)

	switch {
	case a.paused:
		a.drawOverlay(screen, color.RGBA{0, 0, 0, 128}, "PAUSED\n\nPress ESC to resume")
	case a.sim.Round() == state.RoundWon:
		a.drawOverlay(screen, color.RGBA{0, 80, 0, 180}, "YOU SURVIVED\n\nPress R to restart")
	case a.sim.Round() == state.RoundLost:
		msg := fmt.Sprintf("YOU DIED\n%s\n\nPress R to restart", a.sim.Cause())
		a.drawOverlay(screen, color.RGBA{100, 0, 0, 180}, msg)
	}
}

func (a *App) drawPlayer(screen *ebiten.Image) {
	p := a.sim.Player()
	ebitenutil.DrawRect(screen, p.X, p.Y, p.W, p.H, colorPlayer)

	// Shield ring: a thin frame around the player while raised.
	if p.Shield.Raised {
		c := colorShieldUp
		if p.Shield.Broken(a.sim.Clock()) {
			c = colorShieldDown
		}
		ebitenutil.DrawRect(screen, p.X-3, p.Y-3, p.W+6, 2, c)
		ebitenutil.DrawRect(screen, p.X-3, p.Y+p.H+1, p.W+6, 2, c)
		ebitenutil.DrawRect(screen, p.X-3, p.Y-3, 2, p.H+6, c)
		ebitenutil.DrawRect(screen, p.X+p.W+1, p.Y-3, 2, p.H+6, c)
	}
}

func (a *App) drawDragon(screen *ebiten.Image) {
	d := a.sim.Dragon()
	c := colorDragon
	if d.State == entity.StatePursue {
		c = colorDragonAlert
	}
	ebitenutil.DrawRect(screen, d.X, d.Y, d.W, d.H, c)
}

func (a *App) drawHUD(screen *ebiten.Image) {
	p := a.sim.Player()
	barX, barW, barH := 10.0, 120.0, 8.0

	// Stamina
	staminaY := float64(a.screenH - 36)
	ebitenutil.DrawRect(screen, barX, staminaY, barW, barH, colorBarBG)
	ratio := p.Stamina / p.MaxStamina
	ebitenutil.DrawRect(screen, barX, staminaY, barW*ratio, barH, colorStamina)

	// Shield durability
	shieldY := float64(a.screenH - 22)
	ebitenutil.DrawRect(screen, barX, shieldY, barW, barH, colorBarBG)
	ratio = p.Shield.Durability / p.Shield.Max
	c := colorShieldBar
	if p.Shield.Broken(a.sim.Clock()) {
		c = colorShieldDown
	}
	ebitenutil.DrawRect(screen, barX, shieldY, barW*ratio, barH, c)

	remaining := a.cfg.Round.GoalSeconds - a.sim.Clock()
	if remaining < 0 {
		remaining = 0
	}
	hud := fmt.Sprintf("Survive: %4.1fs | Dragon: %s", remaining, a.sim.Dragon().State)
	ebitenutil.DebugPrintAt(screen, hud, 10, a.screenH-56)

	controls := "WASD/Arrows: Move | Shift: Sprint | Space: Shield | ESC: Pause"
	ebitenutil.DebugPrint(screen, controls)
}

func (a *App) drawOverlay(screen *ebiten.Image, c color.RGBA, text string) {
	ebitenutil.DrawRect(screen, 0, 0, float64(a.screenW), float64(a.screenH), c)
	ebitenutil.DebugPrintAt(screen, text, a.screenW/2-70, a.screenH/2-20)
}

// Layout returns the game's logical screen dimensions
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return a.screenW, a.screenH
}

func main() {
	recordFlag := flag.String("record", "", "Record intents to file (e.g., -record replay.json)")
	replayFlag := flag.String("replay", "", "Play back a recorded replay file")
	arenaFlag := flag.String("arena", "lair", "Arena name to load")
	flag.Parse()

	fsys, err := fs.Sub(configFS, "configs")
	if err != nil {
		log.Fatalf("Failed to get config subfs: %v", err)
	}
	loader := config.NewFSLoader(fsys)
	cfgs, err := loader.LoadAll(*arenaFlag)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	arena := system.BuildArena(cfgs.Arena)

	seed := time.Now().UnixNano()
	var replayer *Replayer
	if *replayFlag != "" {
		data, err := LoadReplay(*replayFlag)
		if err != nil {
			log.Fatalf("Failed to load replay: %v", err)
		}
		replayer = NewReplayer(*data)
		seed = replayer.Seed()
		log.Printf("Replaying %s (%d frames, seed %d)", *replayFlag, replayer.TotalFrames(), seed)
	}

	sim := game.NewSimulation(cfgs.Game, arena, seed)
	app := NewApp(cfgs.Game, sim, *arenaFlag, *recordFlag, replayer, seed)

	ebiten.SetWindowSize(int(arena.Width)*cfgs.Game.Display.Scale, int(arena.Height)*cfgs.Game.Display.Scale)
	ebiten.SetWindowTitle("Lair")
	ebiten.SetTPS(cfgs.Game.Display.Framerate)

	if err := ebiten.RunGame(app); err != nil {
		log.Fatal(err)
	}
}
