package leveldata

import (
	"fmt"
	"io/fs"
	"math"
	"path"
	"sort"
	"strconv"
	"strings"

	"github.com/automoto/capsulerun/shared/collision"
	"github.com/automoto/capsulerun/shared/gamemath"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/lafriks/go-tiled"
)

// LoadLevel parses a TMX file. It takes an fs.FS so callers can pass the
// embedded assets or os.DirFS.
func LoadLevel(fsys fs.FS, tmxPath string) (*Level, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	level := &Level{
		Name:         strings.TrimSuffix(path.Base(tmxPath), ".tmx"),
		OutOfBoundsY: DefaultOutOfBoundsY,
		Width:        float64(levelMap.Width*levelMap.TileWidth) * UnitsPerPixel,
		Depth:        float64(levelMap.Height*levelMap.TileHeight) * UnitsPerPixel,
	}
	level.Title = level.Name

	if levelMap.Properties != nil {
		if title := levelMap.Properties.GetString("title"); title != "" {
			level.Title = title
		}
		if raw := levelMap.Properties.GetString("outOfBoundsY"); raw != "" {
			y, err := strconv.ParseFloat(raw, 64)
			if err != nil {
				return nil, fmt.Errorf("%s: outOfBoundsY: %w", tmxPath, err)
			}
			level.OutOfBoundsY = y
			level.HasOutOfBoundsY = true
		}
	}

	spawned := false
	for _, og := range levelMap.ObjectGroups {
		switch og.Name {
		case groupSolids:
			for _, o := range og.Objects {
				if err := level.addSolid(o); err != nil {
					return nil, fmt.Errorf("%s: %w", tmxPath, err)
				}
			}
		case groupPlayerSpawn:
			if len(og.Objects) == 0 {
				continue
			}
			// Multiple spawns are allowed in the editor; the left-most wins.
			objs := append([]*tiled.Object(nil), og.Objects...)
			sort.Slice(objs, func(i, j int) bool { return objs[i].X < objs[j].X })
			level.Spawn = spawnFromObject(objs[0])
			spawned = true
		}
	}

	if !spawned {
		return nil, fmt.Errorf("%s: %w", tmxPath, ErrNoSpawn)
	}
	return level, nil
}

func (l *Level) addSolid(o *tiled.Object) error {
	bottom := o.Properties.GetFloat("bottom")
	top := o.Properties.GetFloat("top")
	if top <= bottom {
		return fmt.Errorf("solid %d: top %.2f must be above bottom %.2f", o.ID, top, bottom)
	}

	min := mgl64.Vec3{o.X * UnitsPerPixel, bottom, o.Y * UnitsPerPixel}
	max := mgl64.Vec3{(o.X + o.Width) * UnitsPerPixel, top, (o.Y + o.Height) * UnitsPerPixel}

	class := o.Class
	if class == "" {
		class = o.Type //nolint:staticcheck // older TMX files use type=
	}
	if class != "ramp" {
		l.Boxes = append(l.Boxes, collision.Box{Min: min, Max: max})
		return nil
	}

	ramp := collision.Ramp{Min: min, Max: max, Rise: o.Properties.GetFloat("rise")}
	switch axis := o.Properties.GetString("axis"); axis {
	case "", "x":
		ramp.Axis = collision.RampAlongX
	case "z":
		ramp.Axis = collision.RampAlongZ
	default:
		return fmt.Errorf("ramp %d: unknown axis %q", o.ID, axis)
	}
	if ramp.Rise == 0 || math.Abs(ramp.Rise) > top-bottom {
		ramp.Rise = math.Copysign(top-bottom, ramp.Rise)
	}
	l.Ramps = append(l.Ramps, ramp)
	return nil
}

func spawnFromObject(o *tiled.Object) Spawn {
	yaw := gamemath.DegToRad(o.Properties.GetFloat("facing"))
	return Spawn{
		Position: mgl64.Vec3{o.X * UnitsPerPixel, o.Properties.GetFloat("elevation"), o.Y * UnitsPerPixel},
		Facing:   mgl64.Vec3{math.Sin(yaw), 0, math.Cos(yaw)},
	}
}

// LoadAllLevels discovers all .tmx files in levelsDir within fsys and returns
// them keyed by file stem plus the sorted list of names.
func LoadAllLevels(fsys fs.FS, levelsDir string) (map[string]*Level, []string, error) {
	pattern := levelsDir + "/*.tmx"
	matches, err := fs.Glob(fsys, pattern)
	if err != nil {
		return nil, nil, fmt.Errorf("glob %s: %w", pattern, err)
	}
	if len(matches) == 0 {
		return nil, nil, fmt.Errorf("no .tmx files found in %s", levelsDir)
	}

	levels := make(map[string]*Level, len(matches))
	names := make([]string, 0, len(matches))
	for _, p := range matches {
		level, err := LoadLevel(fsys, p)
		if err != nil {
			return nil, nil, err
		}
		levels[level.Name] = level
		names = append(names, level.Name)
	}

	sort.Strings(names)
	return levels, names, nil
}
