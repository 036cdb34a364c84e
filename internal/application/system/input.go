package system

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// Intent is the resolved player intent for one tick: an 8-directional (or
// zero) movement vector plus the sprint and shield flags. The simulation
// consumes Intents; only this file knows about the keyboard.
type Intent struct {
	MoveX  float64
	MoveY  float64
	Sprint bool
	Shield bool
}

// InputSystem reads the keyboard into an Intent.
type InputSystem struct{}

// NewInputSystem creates a new input system
func NewInputSystem() *InputSystem {
	return &InputSystem{}
}

// GetIntent reads the current input state. WASD and arrow keys move,
// shift sprints, space raises the shield.
func (s *InputSystem) GetIntent() Intent {
	var in Intent
	if ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyArrowLeft) {
		in.MoveX -= 1
	}
	if ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyArrowRight) {
		in.MoveX += 1
	}
	if ebiten.IsKeyPressed(ebiten.KeyW) || ebiten.IsKeyPressed(ebiten.KeyArrowUp) {
		in.MoveY -= 1
	}
	if ebiten.IsKeyPressed(ebiten.KeyS) || ebiten.IsKeyPressed(ebiten.KeyArrowDown) {
		in.MoveY += 1
	}
	in.Sprint = ebiten.IsKeyPressed(ebiten.KeyShiftLeft) || ebiten.IsKeyPressed(ebiten.KeyShiftRight)
	in.Shield = ebiten.IsKeyPressed(ebiten.KeySpace)
	return in
}
