package leveldata

import (
	"errors"
	"math"
	"testing"
	"testing/fstest"

	"github.com/automoto/capsulerun/shared/collision"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testMap = `<?xml version="1.0" encoding="UTF-8"?>
<map version="1.10" tiledversion="1.10.2" orientation="orthogonal" renderorder="right-down" width="20" height="10" tilewidth="16" tileheight="16" infinite="0" nextlayerid="3" nextobjectid="6">
 <properties>
  <property name="title" value="Test Yard"/>
  <property name="outOfBoundsY" type="float" value="-12"/>
 </properties>
 <objectgroup id="1" name="Solids">
  <object id="1" x="0" y="0" width="320" height="160">
   <properties>
    <property name="bottom" type="float" value="-1"/>
    <property name="top" type="float" value="0"/>
   </properties>
  </object>
  <object id="2" class="ramp" x="32" y="32" width="64" height="32">
   <properties>
    <property name="axis" value="z"/>
    <property name="bottom" type="float" value="0"/>
    <property name="top" type="float" value="2"/>
    <property name="rise" type="float" value="-1.5"/>
   </properties>
  </object>
 </objectgroup>
 <objectgroup id="2" name="PlayerSpawn">
  <object id="4" x="200" y="80">
   <properties>
    <property name="elevation" type="float" value="0.5"/>
    <property name="facing" type="float" value="90"/>
   </properties>
   <point/>
  </object>
  <object id="5" x="160" y="48">
   <point/>
  </object>
 </objectgroup>
</map>
`

const noSpawnMap = `<?xml version="1.0" encoding="UTF-8"?>
<map version="1.10" orientation="orthogonal" renderorder="right-down" width="4" height="4" tilewidth="16" tileheight="16" infinite="0">
 <objectgroup id="1" name="Solids">
  <object id="1" x="0" y="0" width="64" height="64">
   <properties>
    <property name="top" type="float" value="1"/>
   </properties>
  </object>
 </objectgroup>
</map>
`

const flatSolidMap = `<?xml version="1.0" encoding="UTF-8"?>
<map version="1.10" orientation="orthogonal" renderorder="right-down" width="4" height="4" tilewidth="16" tileheight="16" infinite="0">
 <objectgroup id="1" name="Solids">
  <object id="7" x="0" y="0" width="64" height="64"/>
 </objectgroup>
 <objectgroup id="2" name="PlayerSpawn">
  <object id="8" x="8" y="8"><point/></object>
 </objectgroup>
</map>
`

const openMap = `<?xml version="1.0" encoding="UTF-8"?>
<map version="1.10" orientation="orthogonal" renderorder="right-down" width="4" height="4" tilewidth="16" tileheight="16" infinite="0">
 <objectgroup id="1" name="PlayerSpawn">
  <object id="1" x="8" y="8"><point/></object>
 </objectgroup>
</map>
`

func testFS() fstest.MapFS {
	return fstest.MapFS{
		"levels/yard.tmx":    {Data: []byte(testMap)},
		"levels/empty.tmx":   {Data: []byte(noSpawnMap)},
		"broken/flat.tmx":    {Data: []byte(flatSolidMap)},
		"levels/readme.txt":  {Data: []byte("not a level")},
		"single/yard.tmx":    {Data: []byte(testMap)},
		"plain/open.tmx":     {Data: []byte(openMap)},
		"single/notes.txt":   {Data: []byte("")},
		"nothing/readme.txt": {Data: []byte("")},
	}
}

func TestLoadLevel(t *testing.T) {
	level, err := LoadLevel(testFS(), "levels/yard.tmx")
	require.NoError(t, err)

	assert.Equal(t, "yard", level.Name)
	assert.Equal(t, "Test Yard", level.Title)
	assert.Equal(t, -12.0, level.OutOfBoundsY)
	assert.True(t, level.HasOutOfBoundsY)
	assert.Equal(t, -12.0, level.OutOfBounds(-40))
	assert.Equal(t, 20.0, level.Width)
	assert.Equal(t, 10.0, level.Depth)

	require.Len(t, level.Boxes, 1)
	assert.Equal(t, collision.Box{Min: mgl64.Vec3{0, -1, 0}, Max: mgl64.Vec3{20, 0, 10}}, level.Boxes[0])

	require.Len(t, level.Ramps, 1)
	r := level.Ramps[0]
	assert.Equal(t, collision.RampAlongZ, r.Axis)
	assert.Equal(t, -1.5, r.Rise)
	assert.Equal(t, mgl64.Vec3{2, 0, 2}, r.Min)
	assert.Equal(t, mgl64.Vec3{6, 2, 4}, r.Max)

	// Left-most spawn wins and has no properties.
	assert.Equal(t, mgl64.Vec3{10, 0, 3}, level.Spawn.Position)
	assert.True(t, level.Spawn.Facing.ApproxEqual(mgl64.Vec3{0, 0, 1}))
}

func TestLoadLevelWithoutSpawn(t *testing.T) {
	_, err := LoadLevel(testFS(), "levels/empty.tmx")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNoSpawn))
}

func TestLoadLevelRejectsFlatSolid(t *testing.T) {
	_, err := LoadLevel(testFS(), "broken/flat.tmx")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "solid 7")
}

func TestLoadLevelMissingFile(t *testing.T) {
	_, err := LoadLevel(testFS(), "levels/nope.tmx")
	assert.Error(t, err)
}

func TestLoadAllLevels(t *testing.T) {
	levels, names, err := LoadAllLevels(testFS(), "single")
	require.NoError(t, err)
	assert.Equal(t, []string{"yard"}, names)
	assert.Contains(t, levels, "yard")

	_, _, err = LoadAllLevels(testFS(), "levels")
	assert.True(t, errors.Is(err, ErrNoSpawn), "one bad map fails the batch")

	_, _, err = LoadAllLevels(testFS(), "nothing")
	assert.Error(t, err)
}

func TestSpawnCapsuleAndWorld(t *testing.T) {
	level, err := LoadLevel(testFS(), "single/yard.tmx")
	require.NoError(t, err)

	c := level.SpawnCapsule(0.35, 1.35)
	assert.True(t, c.Start.ApproxEqual(mgl64.Vec3{10, 0.35, 3}))
	assert.True(t, c.End.ApproxEqual(mgl64.Vec3{10, 1, 3}))
	assert.Equal(t, 0.35, c.Radius)

	w := level.BuildWorld(2)
	assert.NotEmpty(t, w.Triangles())
	b := w.Bounds()
	assert.Equal(t, -1.0, b.Min.Y())
	assert.Equal(t, 2.0, b.Max.Y())

	_, hit := w.Intersect(&collision.Capsule{Start: c.Start.Sub(mgl64.Vec3{0, 0.1, 0}), End: c.End, Radius: c.Radius})
	assert.True(t, hit)
}

func TestFacingFromDegrees(t *testing.T) {
	level, err := LoadLevel(fstestSingle(`<property name="facing" type="float" value="90"/>`), "m.tmx")
	require.NoError(t, err)
	assert.InDelta(t, 1.0, level.Spawn.Facing.X(), 1e-12)
	assert.InDelta(t, 0.0, level.Spawn.Facing.Z(), 1e-12)
	assert.False(t, math.IsNaN(level.Spawn.Facing.Len()))
}

func fstestSingle(spawnProps string) fstest.MapFS {
	m := `<?xml version="1.0" encoding="UTF-8"?>
<map version="1.10" orientation="orthogonal" renderorder="right-down" width="4" height="4" tilewidth="16" tileheight="16" infinite="0">
 <objectgroup id="1" name="PlayerSpawn">
  <object id="1" x="16" y="16"><properties>` + spawnProps + `</properties><point/></object>
 </objectgroup>
</map>
`
	return fstest.MapFS{"m.tmx": {Data: []byte(m)}}
}

func TestLoadLevelWithoutOutOfBounds(t *testing.T) {
	level, err := LoadLevel(testFS(), "plain/open.tmx")
	require.NoError(t, err)

	assert.False(t, level.HasOutOfBoundsY)
	assert.Equal(t, DefaultOutOfBoundsY, level.OutOfBoundsY)
	assert.Equal(t, -40.0, level.OutOfBounds(-40))
}
