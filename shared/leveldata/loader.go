package leveldata

import (
	"fmt"
	"io/fs"
	"path"
	"path/filepath"
	"sort"
	"strings"

	"github.com/lafriks/go-tiled"
	"github.com/spindleworks/ridgerun/shared/gamemath"
)

// Load parses a TMX file into a Level. It takes an fs.FS so callers can
// pass embed.FS (game) or os.DirFS (tools and tests).
func Load(fsys fs.FS, tmxPath string) (*Level, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	lvl := &Level{
		Name:        strings.TrimSuffix(filepath.Base(tmxPath), ".tmx"),
		PixelWidth:  levelMap.Width * levelMap.TileWidth,
		PixelHeight: levelMap.Height * levelMap.TileHeight,
		TileSize:    levelMap.TileWidth,
	}

	parseTerrain(lvl, levelMap)

	for _, og := range levelMap.ObjectGroups {
		switch og.Name {
		case "OneWay":
			for _, o := range og.Objects {
				lvl.OneWays = append(lvl.OneWays, Box{X: o.X, Y: o.Y, W: o.Width, H: o.Height})
			}
		case "Platforms":
			parsePlatforms(lvl, og)
		case "Spawns":
			for _, o := range og.Objects {
				lvl.Spawns = append(lvl.Spawns, Spawn{
					X:     o.X,
					Y:     o.Y,
					Index: o.Properties.GetInt("index"),
				})
			}
		case "Zones":
			for _, o := range og.Objects {
				kind := o.Class
				if kind == "" {
					kind = o.Type //nolint:staticcheck // older TMX files use the type= attribute
				}
				lvl.Zones = append(lvl.Zones, Zone{
					Kind: kind,
					Name: o.Name,
					Box:  Box{X: o.X, Y: o.Y, W: o.Width, H: o.Height},
				})
			}
		}
	}

	// Sort spawns by index, ties left to right, for consistent respawn
	// assignment.
	sort.Slice(lvl.Spawns, func(i, j int) bool {
		if lvl.Spawns[i].Index != lvl.Spawns[j].Index {
			return lvl.Spawns[i].Index < lvl.Spawns[j].Index
		}
		return lvl.Spawns[i].X < lvl.Spawns[j].X
	})

	return lvl, nil
}

// LoadAll discovers all .tmx files in levelsDir within fsys, loads each,
// and returns a map keyed by stem name plus a sorted list of names.
func LoadAll(fsys fs.FS, levelsDir string) (map[string]*Level, []string, error) {
	pattern := path.Join(levelsDir, "*.tmx")
	matches, err := fs.Glob(fsys, pattern)
	if err != nil {
		return nil, nil, fmt.Errorf("glob %s: %w", pattern, err)
	}
	if len(matches) == 0 {
		return nil, nil, fmt.Errorf("no .tmx files found in %s", levelsDir)
	}

	levels := make(map[string]*Level, len(matches))
	names := make([]string, 0, len(matches))
	for _, match := range matches {
		lvl, err := Load(fsys, match)
		if err != nil {
			return nil, nil, fmt.Errorf("load %s: %w", match, err)
		}
		levels[lvl.Name] = lvl
		names = append(names, lvl.Name)
	}

	sort.Strings(names)
	return levels, names, nil
}

// parseTerrain reads the terrain tile layer. Tiles whose tileset entry
// carries a slope property become triangles; the rest are merged into
// as few solid boxes as possible so the collision space stays small.
func parseTerrain(lvl *Level, levelMap *tiled.Map) {
	tileW := float64(levelMap.TileWidth)
	tileH := float64(levelMap.TileHeight)
	for _, layer := range levelMap.Layers {
		if layer.Name != "terrain" {
			continue
		}
		solid := make([]bool, levelMap.Width*levelMap.Height)
		for y := 0; y < levelMap.Height; y++ {
			for x := 0; x < levelMap.Width; x++ {
				tile := layer.Tiles[y*levelMap.Width+x]
				if tile.IsNil() {
					continue
				}

				var slope string
				if tilesetTile, err := tile.Tileset.GetTilesetTile(tile.ID); err == nil {
					slope = tilesetTile.Properties.GetString("slope")
				}

				px, py := float64(x)*tileW, float64(y)*tileH
				switch slope {
				case "45_up_right":
					lvl.Slopes = append(lvl.Slopes, Triangle{
						A: gamemath.Vec2{X: px, Y: py + tileH},
						B: gamemath.Vec2{X: px + tileW, Y: py + tileH},
						C: gamemath.Vec2{X: px + tileW, Y: py},
					})
				case "45_up_left":
					lvl.Slopes = append(lvl.Slopes, Triangle{
						A: gamemath.Vec2{X: px, Y: py},
						B: gamemath.Vec2{X: px, Y: py + tileH},
						C: gamemath.Vec2{X: px + tileW, Y: py + tileH},
					})
				default:
					solid[y*levelMap.Width+x] = true
				}
			}
		}
		lvl.Solids = mergeTiles(solid, levelMap.Width, levelMap.Height, tileW, tileH)
		break
	}
}

// parsePlatforms reads the Platforms object group. Rectangle objects
// are platforms; polyline objects are their paths, referenced by the
// platform's path property and resolved to offsets from the platform's
// top-left corner.
func parsePlatforms(lvl *Level, og *tiled.ObjectGroup) {
	paths := make(map[string][]gamemath.Vec2)
	for _, o := range og.Objects {
		if len(o.PolyLines) == 0 {
			continue
		}
		polyline := o.PolyLines[0]
		if polyline.Points == nil || len(*polyline.Points) < 2 {
			continue
		}
		pts := make([]gamemath.Vec2, len(*polyline.Points))
		for i, point := range *polyline.Points {
			pts[i] = gamemath.Vec2{X: o.X + point.X, Y: o.Y + point.Y}
		}
		paths[o.Name] = pts
	}

	for _, o := range og.Objects {
		if len(o.PolyLines) > 0 {
			continue
		}
		p := Platform{
			Name:     o.Name,
			Box:      Box{X: o.X, Y: o.Y, W: o.Width, H: o.Height},
			Speed:    o.Properties.GetFloat("speed"),
			Cyclic:   o.Properties.GetBool("cyclic"),
			WaitTime: o.Properties.GetFloat("waitTime"),
			Ease:     o.Properties.GetFloat("ease"),
		}
		if pts, ok := paths[o.Properties.GetString("path")]; ok {
			p.Waypoints = make([]gamemath.Vec2, len(pts))
			for i, pt := range pts {
				p.Waypoints[i] = gamemath.Vec2{X: pt.X - o.X, Y: pt.Y - o.Y}
			}
		}
		lvl.Platforms = append(lvl.Platforms, p)
	}
}

// mergeTiles greedily packs marked cells into rectangles: each unclaimed
// cell grows a run rightward, then the run claims full rows downward.
func mergeTiles(solid []bool, w, h int, tileW, tileH float64) []Box {
	used := make([]bool, len(solid))
	var out []Box
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			i := y*w + x
			if !solid[i] || used[i] {
				continue
			}
			runW := 1
			for x+runW < w && solid[i+runW] && !used[i+runW] {
				runW++
			}
			runH := 1
		grow:
			for y+runH < h {
				for k := 0; k < runW; k++ {
					j := (y+runH)*w + x + k
					if !solid[j] || used[j] {
						break grow
					}
				}
				runH++
			}
			for yy := 0; yy < runH; yy++ {
				for xx := 0; xx < runW; xx++ {
					used[(y+yy)*w+x+xx] = true
				}
			}
			out = append(out, Box{
				X: float64(x) * tileW,
				Y: float64(y) * tileH,
				W: float64(runW) * tileW,
				H: float64(runH) * tileH,
			})
		}
	}
	return out
}
