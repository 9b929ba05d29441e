package leveldata

import (
	"testing"
	"testing/fstest"

	"github.com/spindleworks/ridgerun/shared/gamemath"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const demoTMX = `<?xml version="1.0" encoding="UTF-8"?>
<map version="1.10" tiledversion="1.10.2" orientation="orthogonal" renderorder="right-down" width="6" height="4" tilewidth="16" tileheight="16" infinite="0" nextlayerid="7" nextobjectid="20">
 <tileset firstgid="1" name="terrain" tilewidth="16" tileheight="16" tilecount="3" columns="0">
  <tile id="1">
   <properties>
    <property name="slope" value="45_up_right"/>
   </properties>
  </tile>
  <tile id="2">
   <properties>
    <property name="slope" value="45_up_left"/>
   </properties>
  </tile>
 </tileset>
 <layer id="1" name="terrain" width="6" height="4">
  <data encoding="csv">
0,0,0,0,0,0,
0,0,3,0,2,0,
1,1,0,0,1,0,
1,1,1,1,1,1
  </data>
 </layer>
 <objectgroup id="2" name="OneWay">
  <object id="1" x="16" y="24" width="32" height="4"/>
 </objectgroup>
 <objectgroup id="3" name="Platforms">
  <object id="10" name="lift" x="16" y="40" width="32" height="8">
   <properties>
    <property name="speed" type="float" value="40"/>
    <property name="waitTime" type="float" value="0.4"/>
    <property name="ease" type="float" value="1"/>
    <property name="cyclic" type="bool" value="true"/>
    <property name="path" value="lift-path"/>
   </properties>
  </object>
  <object id="11" name="lift-path" x="16" y="40">
   <polyline points="0,0 32,0 32,-24"/>
  </object>
 </objectgroup>
 <objectgroup id="4" name="Spawns">
  <object id="12" x="60" y="20">
   <properties>
    <property name="index" type="int" value="1"/>
   </properties>
  </object>
  <object id="13" x="8" y="20">
   <properties>
    <property name="index" type="int" value="0"/>
   </properties>
  </object>
 </objectgroup>
 <objectgroup id="5" name="Zones">
  <object id="14" type="deadzone" x="0" y="60" width="96" height="16"/>
  <object id="15" type="checkpoint" name="mid" x="40" y="10" width="8" height="20"/>
 </objectgroup>
</map>
`

const tinyTMX = `<?xml version="1.0" encoding="UTF-8"?>
<map version="1.10" orientation="orthogonal" renderorder="right-down" width="2" height="2" tilewidth="16" tileheight="16" infinite="0">
 <layer id="1" name="terrain" width="2" height="2">
  <data encoding="csv">
0,0,
0,0
  </data>
 </layer>
</map>
`

func demoFS() fstest.MapFS {
	return fstest.MapFS{
		"levels/demo.tmx":  &fstest.MapFile{Data: []byte(demoTMX)},
		"levels/alpha.tmx": &fstest.MapFile{Data: []byte(tinyTMX)},
	}
}

func TestLoadParsesTerrain(t *testing.T) {
	lvl, err := Load(demoFS(), "levels/demo.tmx")
	require.NoError(t, err)

	assert.Equal(t, "demo", lvl.Name)
	assert.Equal(t, 96, lvl.PixelWidth)
	assert.Equal(t, 64, lvl.PixelHeight)
	assert.Equal(t, 16, lvl.TileSize)

	// Solid tiles collapse into four boxes: the 2x2 block bottom left,
	// the 1x2 column under the right slope, and the two row remnants.
	assert.ElementsMatch(t, []Box{
		{X: 0, Y: 32, W: 32, H: 32},
		{X: 64, Y: 32, W: 16, H: 32},
		{X: 32, Y: 48, W: 32, H: 16},
		{X: 80, Y: 48, W: 16, H: 16},
	}, lvl.Solids)

	require.Len(t, lvl.Slopes, 2)
	assert.Equal(t, Triangle{
		A: gamemath.Vec2{X: 32, Y: 16},
		B: gamemath.Vec2{X: 32, Y: 32},
		C: gamemath.Vec2{X: 48, Y: 32},
	}, lvl.Slopes[0])
	assert.Equal(t, Triangle{
		A: gamemath.Vec2{X: 64, Y: 32},
		B: gamemath.Vec2{X: 80, Y: 32},
		C: gamemath.Vec2{X: 80, Y: 16},
	}, lvl.Slopes[1])
}

func TestLoadParsesObjects(t *testing.T) {
	lvl, err := Load(demoFS(), "levels/demo.tmx")
	require.NoError(t, err)

	require.Len(t, lvl.OneWays, 1)
	assert.Equal(t, Box{X: 16, Y: 24, W: 32, H: 4}, lvl.OneWays[0])

	require.Len(t, lvl.Platforms, 1)
	p := lvl.Platforms[0]
	assert.Equal(t, "lift", p.Name)
	assert.Equal(t, Box{X: 16, Y: 40, W: 32, H: 8}, p.Box)
	assert.Equal(t, 40.0, p.Speed)
	assert.True(t, p.Cyclic)
	assert.Equal(t, 0.4, p.WaitTime)
	assert.Equal(t, 1.0, p.Ease)
	assert.Equal(t, []gamemath.Vec2{{X: 0, Y: 0}, {X: 32, Y: 0}, {X: 32, Y: -24}}, p.Waypoints)

	require.Len(t, lvl.Spawns, 2)
	assert.Equal(t, Spawn{X: 8, Y: 20, Index: 0}, lvl.Spawns[0])
	assert.Equal(t, Spawn{X: 60, Y: 20, Index: 1}, lvl.Spawns[1])

	require.Len(t, lvl.Zones, 2)
	assert.Equal(t, Zone{Kind: ZoneDeadly, Box: Box{X: 0, Y: 60, W: 96, H: 16}}, lvl.Zones[0])
	assert.Equal(t, Zone{Kind: ZoneCheckpoint, Name: "mid", Box: Box{X: 40, Y: 10, W: 8, H: 20}}, lvl.Zones[1])
}

func TestLoadAllSortsByName(t *testing.T) {
	levels, names, err := LoadAll(demoFS(), "levels")
	require.NoError(t, err)
	assert.Equal(t, []string{"alpha", "demo"}, names)
	assert.Contains(t, levels, "demo")
	assert.Empty(t, levels["alpha"].Solids)

	_, _, err = LoadAll(fstest.MapFS{}, "levels")
	assert.Error(t, err)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(demoFS(), "levels/absent.tmx")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "load TMX")
}

func TestMergeTilesGreedy(t *testing.T) {
	grid := []bool{
		true, true, false,
		true, true, false,
		true, false, true,
	}
	boxes := mergeTiles(grid, 3, 3, 10, 10)
	assert.ElementsMatch(t, []Box{
		{X: 0, Y: 0, W: 20, H: 20},
		{X: 0, Y: 20, W: 10, H: 10},
		{X: 20, Y: 20, W: 10, H: 10},
	}, boxes)
}
