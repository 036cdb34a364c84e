package config

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
)

// Configs bundles all loaded configuration.
type Configs struct {
	Game  *GameConfig
	Arena *ArenaConfig
}

// Loader loads game configuration from JSON files using fs.FS interface
type Loader struct {
	fsys fs.FS
}

// NewLoader creates a new config loader from filesystem path
func NewLoader(basePath string) *Loader {
	return &Loader{fsys: os.DirFS(basePath)}
}

// NewFSLoader creates a new config loader from fs.FS
func NewFSLoader(fsys fs.FS) *Loader {
	return &Loader{fsys: fsys}
}

// LoadGame loads game.json
func (l *Loader) LoadGame() (*GameConfig, error) {
	data, err := fs.ReadFile(l.fsys, "game.json")
	if err != nil {
		return nil, fmt.Errorf("failed to read game.json: %w", err)
	}

	var cfg GameConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse game.json: %w", err)
	}

	return &cfg, nil
}

// LoadArena loads an arena JSON file
func (l *Loader) LoadArena(name string) (*ArenaConfig, error) {
	path := "arenas/" + name + ".json"
	data, err := fs.ReadFile(l.fsys, path)
	if err != nil {
		return nil, fmt.Errorf("failed to read arena %s: %w", name, err)
	}

	var cfg ArenaConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse arena %s: %w", name, err)
	}

	return &cfg, nil
}

// LoadAll loads the game config plus the named arena.
func (l *Loader) LoadAll(arena string) (*Configs, error) {
	game, err := l.LoadGame()
	if err != nil {
		return nil, err
	}

	arenaCfg, err := l.LoadArena(arena)
	if err != nil {
		return nil, err
	}

	return &Configs{
		Game:  game,
		Arena: arenaCfg,
	}, nil
}
