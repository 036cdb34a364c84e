package system

import (
	"github.com/younwookim/lair/internal/domain/entity"
	"github.com/younwookim/lair/internal/infrastructure/config"
)

// BuildArena converts an ArenaConfig into an Arena entity: four border
// walls of the configured thickness plus the interior obstacle rectangles,
// in config order.
func BuildArena(cfg *config.ArenaConfig) *entity.Arena {
	walls := make([]entity.Rect, 0, len(cfg.Walls)+4)

	if cfg.Border > 0 {
		b := cfg.Border
		walls = append(walls,
			entity.Rect{X: 0, Y: 0, W: cfg.Width, H: b},
			entity.Rect{X: 0, Y: cfg.Height - b, W: cfg.Width, H: b},
			entity.Rect{X: 0, Y: b, W: b, H: cfg.Height - 2*b},
			entity.Rect{X: cfg.Width - b, Y: b, W: b, H: cfg.Height - 2*b},
		)
	}

	for _, w := range cfg.Walls {
		walls = append(walls, entity.Rect{X: w.X, Y: w.Y, W: w.W, H: w.H})
	}

	return &entity.Arena{
		Width:       cfg.Width,
		Height:      cfg.Height,
		Walls:       walls,
		PlayerSpawn: entity.Point{X: cfg.PlayerSpawn.X, Y: cfg.PlayerSpawn.Y},
		DragonSpawn: entity.Point{X: cfg.DragonSpawn.X, Y: cfg.DragonSpawn.Y},
	}
}
