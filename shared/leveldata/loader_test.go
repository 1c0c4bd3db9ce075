package leveldata

import (
	"os"
	"path/filepath"
	"testing"
)

const roomTMX = `<?xml version="1.0" encoding="UTF-8"?>
<map version="1.10" tiledversion="1.10.2" orientation="orthogonal" renderorder="right-down" width="4" height="3" tilewidth="16" tileheight="16" infinite="0" nextlayerid="5" nextobjectid="10">
 <tileset firstgid="1" name="walls" tilewidth="16" tileheight="16" tilecount="1" columns="1"/>
 <layer id="1" name="wg-tiles" width="4" height="3">
  <data encoding="csv">
1,0,0,1,
1,0,0,1,
1,1,1,1
</data>
 </layer>
 <objectgroup id="2" name="Gimmicks">
  <object id="1" name="lift-a" class="lift" x="16" y="16" width="32" height="8">
   <properties>
    <property name="direction" value="up"/>
    <property name="travel" type="float" value="24"/>
   </properties>
  </object>
  <object id="2" class="Conveyor" x="16" y="28" width="32" height="4">
   <properties>
    <property name="speed" type="float" value="-1.5"/>
   </properties>
  </object>
 </objectgroup>
 <objectgroup id="3" name="Triggers">
  <object id="3" name="exit" x="48" y="0" width="16" height="32">
   <properties>
    <property name="z" type="float" value="2"/>
   </properties>
  </object>
 </objectgroup>
 <objectgroup id="4" name="PlayerSpawn">
  <object id="4" x="40" y="20">
   <properties>
    <property name="spawnIndex" type="int" value="1"/>
   </properties>
  </object>
  <object id="5" x="20" y="20">
   <properties>
    <property name="spawnIndex" type="int" value="0"/>
   </properties>
  </object>
 </objectgroup>
</map>
`

func writeRoom(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
}

func TestLoadRoomData(t *testing.T) {
	dir := t.TempDir()
	writeRoom(t, dir, "room.tmx", roomTMX)

	data, err := LoadRoomData(os.DirFS(dir), "room.tmx")
	if err != nil {
		t.Fatalf("LoadRoomData: %v", err)
	}

	if data.MapWidth != 64 || data.MapHeight != 48 {
		t.Errorf("map size = %dx%d, want 64x48", data.MapWidth, data.MapHeight)
	}

	wantWalls := []SolidRect{
		{X: 0, Y: 0, W: 16, H: 32},
		{X: 48, Y: 0, W: 16, H: 32},
		{X: 0, Y: 32, W: 64, H: 16},
	}
	if len(data.Walls) != len(wantWalls) {
		t.Fatalf("walls = %+v, want %+v", data.Walls, wantWalls)
	}
	for i, w := range wantWalls {
		if data.Walls[i] != w {
			t.Errorf("wall %d = %+v, want %+v", i, data.Walls[i], w)
		}
	}

	if len(data.Gimmicks) != 2 {
		t.Fatalf("gimmicks = %+v, want 2", data.Gimmicks)
	}
	lift := data.Gimmicks[0]
	if lift.Kind != "lift" || lift.Name != "lift-a" || lift.Direction != "up" || lift.Travel != 24 {
		t.Errorf("lift = %+v", lift)
	}
	if lift.W != 32 || lift.H != 8 || lift.Period != 0 {
		t.Errorf("lift geometry = %+v", lift)
	}
	belt := data.Gimmicks[1]
	if belt.Kind != "conveyor" || belt.Speed != -1.5 {
		t.Errorf("conveyor = %+v", belt)
	}

	if len(data.Triggers) != 1 {
		t.Fatalf("triggers = %+v, want 1", data.Triggers)
	}
	if tr := data.Triggers[0]; tr.Name != "exit" || tr.Z != 2 || tr.Depth != defaultDepth {
		t.Errorf("trigger = %+v", tr)
	}

	if len(data.SpawnPoints) != 2 || data.SpawnPoints[0].X != 20 || data.SpawnPoints[0].Index != 0 {
		t.Errorf("spawn points = %+v, want sorted left to right", data.SpawnPoints)
	}
}

func TestLoadRoomDataMissingFile(t *testing.T) {
	if _, err := LoadRoomData(os.DirFS(t.TempDir()), "nope.tmx"); err == nil {
		t.Fatal("expected an error")
	}
}

func TestLoadAllRooms(t *testing.T) {
	dir := t.TempDir()
	if err := os.Mkdir(filepath.Join(dir, "rooms"), 0o755); err != nil {
		t.Fatal(err)
	}
	writeRoom(t, filepath.Join(dir, "rooms"), "b.tmx", roomTMX)
	writeRoom(t, filepath.Join(dir, "rooms"), "a.tmx", roomTMX)

	rooms, names, err := LoadAllRooms(os.DirFS(dir), "rooms")
	if err != nil {
		t.Fatalf("LoadAllRooms: %v", err)
	}
	if len(names) != 2 || names[0] != "a" || names[1] != "b" {
		t.Errorf("names = %v", names)
	}
	if rooms["a"] == nil || len(rooms["a"].Walls) != 3 {
		t.Errorf("room a = %+v", rooms["a"])
	}

	if _, _, err := LoadAllRooms(os.DirFS(dir), "empty"); err == nil {
		t.Error("expected an error for a directory without rooms")
	}
}

func TestMergeTiles(t *testing.T) {
	tests := []struct {
		name  string
		grid  []bool
		w, h  int
		wantN int
	}{
		{"empty", []bool{false, false, false, false}, 2, 2, 0},
		{"full block", []bool{true, true, true, true}, 2, 2, 1},
		{"two columns", []bool{true, false, true, true, false, true}, 3, 2, 2},
		{"L shape", []bool{true, false, true, true}, 2, 2, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := mergeTiles(tt.grid, tt.w, tt.h, 1, 1)
			if len(got) != tt.wantN {
				t.Fatalf("mergeTiles() = %+v, want %d rects", got, tt.wantN)
			}
			var area float64
			for _, r := range got {
				area += r.W * r.H
			}
			var solid float64
			for _, s := range tt.grid {
				if s {
					solid++
				}
			}
			if area != solid {
				t.Errorf("merged area = %v, want %v", area, solid)
			}
		})
	}
}
