// Package leveldata parses TMX level layouts into 3D collision geometry.
// Tiled's top-down object layers give the XZ footprint of each solid; custom
// properties give the vertical extent. It has no dependencies on ebitengine.
package leveldata

import (
	"errors"

	"github.com/automoto/capsulerun/shared/collision"
	"github.com/go-gl/mathgl/mgl64"
)

const (
	// UnitsPerPixel converts Tiled pixel coordinates to world units.
	UnitsPerPixel = 1.0 / 16

	// DefaultOutOfBoundsY is recorded when a map does not set outOfBoundsY.
	// Callers with their own default go through Level.OutOfBounds.
	DefaultOutOfBoundsY = -25.0

	groupSolids      = "Solids"
	groupPlayerSpawn = "PlayerSpawn"
)

// ErrNoSpawn is returned for maps without a PlayerSpawn object.
var ErrNoSpawn = errors.New("level has no player spawn")

// Level is one parsed map.
type Level struct {
	Name         string
	Title        string
	Boxes        []collision.Box
	Ramps        []collision.Ramp
	Spawn        Spawn
	OutOfBoundsY float64
	// HasOutOfBoundsY is set when the map carries its own outOfBoundsY.
	HasOutOfBoundsY bool
	// Width and Depth are the map extent along X and Z.
	Width float64
	Depth float64
}

// Spawn is where the player's feet are placed on load and reset.
type Spawn struct {
	Position mgl64.Vec3
	// Facing is a horizontal unit vector.
	Facing mgl64.Vec3
}

// SpawnCapsule returns the canonical collider for a capsule of the given
// radius and total height standing on the spawn point.
func (l *Level) SpawnCapsule(radius, height float64) collision.Capsule {
	feet := l.Spawn.Position
	return collision.Capsule{
		Start:  feet.Add(mgl64.Vec3{0, radius, 0}),
		End:    feet.Add(mgl64.Vec3{0, height - radius, 0}),
		Radius: radius,
	}
}

// BuildWorld returns the collision world for the level.
func (l *Level) BuildWorld(cellSize float64) *collision.World {
	w := collision.NewWorld(cellSize)
	for _, b := range l.Boxes {
		w.AddBox(b)
	}
	for _, r := range l.Ramps {
		w.AddRamp(r)
	}
	return w
}

// OutOfBounds returns the map's reset threshold, or fallback when the map
// does not set one.
func (l *Level) OutOfBounds(fallback float64) float64 {
	if l.HasOutOfBoundsY {
		return l.OutOfBoundsY
	}
	return fallback
}
