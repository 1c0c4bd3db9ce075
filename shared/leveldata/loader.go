package leveldata

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"github.com/lafriks/go-tiled"
)

const (
	wallLayer     = "wg-tiles"
	gimmickGroup  = "Gimmicks"
	triggerGroup  = "Triggers"
	spawnGroup    = "PlayerSpawn"
	defaultDepth  = 16.0
	directionProp = "direction"
)

// LoadRoomData parses a TMX file. It takes an fs.FS so callers can pass
// embed.FS or os.DirFS.
func LoadRoomData(fsys fs.FS, tmxPath string) (*RoomData, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	data := &RoomData{
		MapWidth:  levelMap.Width * levelMap.TileWidth,
		MapHeight: levelMap.Height * levelMap.TileHeight,
	}

	for _, layer := range levelMap.Layers {
		if layer.Name != wallLayer {
			continue
		}
		solid := make([]bool, levelMap.Width*levelMap.Height)
		for i, tile := range layer.Tiles {
			if i < len(solid) && !tile.IsNil() {
				solid[i] = true
			}
		}
		data.Walls = mergeTiles(solid, levelMap.Width, levelMap.Height,
			float64(levelMap.TileWidth), float64(levelMap.TileHeight))
		break
	}

	for _, og := range levelMap.ObjectGroups {
		switch og.Name {
		case gimmickGroup:
			for _, o := range og.Objects {
				kind := o.Class
				if kind == "" {
					kind = o.Type //nolint:staticcheck // TMX uses type= attribute
				}
				if kind == "" {
					return nil, fmt.Errorf("gimmick %d in %s has no class", o.ID, tmxPath)
				}
				data.Gimmicks = append(data.Gimmicks, GimmickSpawn{
					Kind:      strings.ToLower(kind),
					Name:      o.Name,
					X:         o.X,
					Y:         o.Y,
					W:         o.Width,
					H:         o.Height,
					Z:         o.Properties.GetFloat("z"),
					Direction: o.Properties.GetString(directionProp),
					Travel:    o.Properties.GetFloat("travel"),
					Period:    o.Properties.GetFloat("period"),
					Speed:     o.Properties.GetFloat("speed"),
				})
			}
		case triggerGroup:
			for _, o := range og.Objects {
				depth := o.Properties.GetFloat("depth")
				if depth <= 0 {
					depth = defaultDepth
				}
				data.Triggers = append(data.Triggers, TriggerVolume{
					Name:  o.Name,
					X:     o.X,
					Y:     o.Y,
					W:     o.Width,
					H:     o.Height,
					Z:     o.Properties.GetFloat("z"),
					Depth: depth,
				})
			}
		case spawnGroup:
			for _, o := range og.Objects {
				data.SpawnPoints = append(data.SpawnPoints, SpawnPoint{
					X:     o.X,
					Y:     o.Y,
					Index: o.Properties.GetInt("spawnIndex"),
				})
			}
		}
	}

	// Sort spawns left-to-right for consistent assignment
	sort.Slice(data.SpawnPoints, func(i, j int) bool {
		return data.SpawnPoints[i].X < data.SpawnPoints[j].X
	})

	return data, nil
}

// mergeTiles turns a solid tile grid into rectangles: horizontal runs first,
// then runs with the same span on consecutive rows are stacked. Bodies sliding
// along a merged surface never catch on tile seams.
func mergeTiles(solid []bool, width, height int, tileW, tileH float64) []SolidRect {
	type run struct{ x0, x1, y0, y1 int }

	var open []run
	var done []run
	for y := 0; y < height; y++ {
		var row []run
		for x := 0; x < width; x++ {
			if !solid[y*width+x] {
				continue
			}
			if n := len(row); n > 0 && row[n-1].x1 == x {
				row[n-1].x1 = x + 1
				continue
			}
			row = append(row, run{x0: x, x1: x + 1, y0: y, y1: y + 1})
		}

		var next []run
		for _, r := range row {
			extended := false
			for i := range open {
				if open[i].x0 == r.x0 && open[i].x1 == r.x1 && open[i].y1 == y {
					open[i].y1 = y + 1
					next = append(next, open[i])
					open[i].y1 = -1
					extended = true
					break
				}
			}
			if !extended {
				next = append(next, r)
			}
		}
		for _, o := range open {
			if o.y1 != -1 {
				done = append(done, o)
			}
		}
		open = next
	}
	done = append(done, open...)

	rects := make([]SolidRect, 0, len(done))
	for _, r := range done {
		rects = append(rects, SolidRect{
			X: float64(r.x0) * tileW,
			Y: float64(r.y0) * tileH,
			W: float64(r.x1-r.x0) * tileW,
			H: float64(r.y1-r.y0) * tileH,
		})
	}
	sort.Slice(rects, func(i, j int) bool {
		if rects[i].Y != rects[j].Y {
			return rects[i].Y < rects[j].Y
		}
		return rects[i].X < rects[j].X
	})
	return rects
}

// LoadAllRooms discovers all .tmx files in levelsDir within fsys, loads each,
// and returns a map keyed by stem name plus a sorted list of names.
func LoadAllRooms(fsys fs.FS, levelsDir string) (map[string]*RoomData, []string, error) {
	pattern := levelsDir + "/*.tmx"
	matches, err := fs.Glob(fsys, pattern)
	if err != nil {
		return nil, nil, fmt.Errorf("glob %s: %w", pattern, err)
	}
	if len(matches) == 0 {
		return nil, nil, fmt.Errorf("no .tmx files found in %s", levelsDir)
	}

	rooms := make(map[string]*RoomData, len(matches))
	names := make([]string, 0, len(matches))

	for _, path := range matches {
		data, err := LoadRoomData(fsys, path)
		if err != nil {
			return nil, nil, fmt.Errorf("load %s: %w", path, err)
		}
		stem := strings.TrimSuffix(filepath.Base(path), ".tmx")
		rooms[stem] = data
		names = append(names, stem)
	}

	sort.Strings(names)
	return rooms, names, nil
}
