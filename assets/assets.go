// Package assets embeds the level maps.
package assets

import (
	"embed"
	"fmt"
	"io/fs"

	"github.com/automoto/capsulerun/shared/leveldata"
)

const levelsDir = "levels"

//go:embed levels/*.tmx
var levelFS embed.FS

// FS exposes the embedded files for tools that parse levels themselves.
func FS() fs.FS {
	return levelFS
}

// LevelLoader caches parsed levels.
type LevelLoader struct {
	levels map[string]*leveldata.Level
	names  []string
}

func NewLevelLoader() *LevelLoader {
	return &LevelLoader{}
}

// Load parses every embedded level once.
func (l *LevelLoader) Load() error {
	if l.levels != nil {
		return nil
	}
	levels, names, err := leveldata.LoadAllLevels(levelFS, levelsDir)
	if err != nil {
		return fmt.Errorf("load embedded levels: %w", err)
	}
	l.levels = levels
	l.names = names
	return nil
}

// MustLoadLevels returns all levels in name order and panics if any embedded
// map is broken.
func (l *LevelLoader) MustLoadLevels() []*leveldata.Level {
	if err := l.Load(); err != nil {
		panic(err)
	}
	out := make([]*leveldata.Level, 0, len(l.names))
	for _, name := range l.names {
		out = append(out, l.levels[name])
	}
	return out
}

// MustLoadLevel returns one level by name.
func (l *LevelLoader) MustLoadLevel(name string) *leveldata.Level {
	if err := l.Load(); err != nil {
		panic(err)
	}
	level, ok := l.levels[name]
	if !ok {
		panic(fmt.Sprintf("level %q is not embedded", name))
	}
	return level
}

// Level returns a level by name.
func (l *LevelLoader) Level(name string) (*leveldata.Level, bool) {
	if err := l.Load(); err != nil {
		return nil, false
	}
	level, ok := l.levels[name]
	return level, ok
}

// Names lists the embedded level names in order.
func (l *LevelLoader) Names() []string {
	if err := l.Load(); err != nil {
		return nil
	}
	return l.names
}
