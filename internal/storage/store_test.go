package storage

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/san-kum/strikeball/internal/ball"
	"github.com/san-kum/strikeball/internal/config"
	"github.com/san-kum/strikeball/internal/sim"
)

func testResult() *sim.Result {
	return &sim.Result{
		Frames: []sim.Frame{
			{
				Time: 0,
				Ball: ball.State{Position: mgl64.Vec3{0, 0, 0}, Velocity: mgl64.Vec3{3, 0, 4}, MaxSpeed: 20},
				Entities: []sim.EntityFrame{
					{Name: "player", Position: mgl64.Vec3{0, 0, -7}},
					{Name: "enemy", Position: mgl64.Vec3{1, 0, 7}, Heading: 180, Moving: true},
				},
			},
			{
				Time: 0.02,
				Ball: ball.State{Position: mgl64.Vec3{0.06, 0, 0.08}, Velocity: mgl64.Vec3{3, 0, 4}, MaxSpeed: 20},
				Entities: []sim.EntityFrame{
					{Name: "player", Position: mgl64.Vec3{0.5, 0, -7}},
					{Name: "enemy", Position: mgl64.Vec3{1.12, 0, 7}, Heading: 180, Moving: true},
				},
				Hits: []sim.HitEvent{{Entity: "enemy"}},
			},
		},
		Metrics:    map[string]float64{"ball_speed": 5},
		Hits:       map[string]int{"player": 0, "enemy": 1},
		Kicks:      map[string]int{"player": 0, "enemy": 0},
		EndHits:    [2]int{1, 2},
		StepsTaken: 1,
	}
}

func TestStoreSaveLoad(t *testing.T) {
	st := New(t.TempDir())
	if err := st.Init(); err != nil {
		t.Fatalf("init failed: %v", err)
	}

	runID, err := st.Save("classic", 0.02, 1.0, 42, testResult())
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}
	if !strings.HasPrefix(runID, "classic_") {
		t.Errorf("unexpected run id %s", runID)
	}

	meta, err := st.Load(runID)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if meta.Preset != "classic" || meta.Seed != 42 {
		t.Errorf("unexpected metadata %+v", meta)
	}
	if meta.Metrics["ball_speed"] != 5 || meta.Hits["enemy"] != 1 || meta.EndHits != [2]int{1, 2} {
		t.Errorf("metadata lost run totals: %+v", meta)
	}

	table, err := st.LoadFrames(runID)
	if err != nil {
		t.Fatalf("load frames failed: %v", err)
	}
	if len(table.Rows) != 2 || len(table.Times) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(table.Rows))
	}

	speed, ok := table.Column("ball_speed")
	if !ok || speed[0] != 5 {
		t.Errorf("expected ball speed 5, got %v", speed)
	}
	x, ok := table.Column("enemy_x")
	if !ok || x[1] != 1.12 {
		t.Errorf("expected enemy x 1.12, got %v", x)
	}
	moving, _ := table.Column("enemy_moving")
	if moving[0] != 1 {
		t.Errorf("expected moving flag 1, got %v", moving)
	}
	hits, _ := table.Column("hits")
	if hits[1] != 1 {
		t.Errorf("expected one hit on tick 1, got %v", hits)
	}
}

func TestStoreList(t *testing.T) {
	st := New(t.TempDir())
	if err := st.Init(); err != nil {
		t.Fatalf("init failed: %v", err)
	}

	runs, err := st.List()
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(runs) != 0 {
		t.Errorf("expected 0 runs, got %d", len(runs))
	}

	if _, err := st.Save("classic", 0.02, 1.0, 42, testResult()); err != nil {
		t.Fatalf("save failed: %v", err)
	}
	if _, err := st.Save("pro", 0.02, 1.0, 43, testResult()); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	runs, err = st.List()
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(runs) != 2 {
		t.Errorf("expected 2 runs, got %d", len(runs))
	}
}

func TestListMissingDir(t *testing.T) {
	st := New(filepath.Join(t.TempDir(), "nope"))
	runs, err := st.List()
	if err != nil || len(runs) != 0 {
		t.Errorf("expected empty list, got %v, %v", runs, err)
	}
}

func TestStoreFileStructure(t *testing.T) {
	tmpDir := t.TempDir()
	st := New(tmpDir)

	runID, err := st.Save("classic", 0.02, 1.0, 42, testResult())
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}

	for _, name := range []string{"metadata.json", "frames.csv"} {
		if _, err := os.Stat(filepath.Join(tmpDir, runID, name)); os.IsNotExist(err) {
			t.Errorf("%s not created", name)
		}
	}
}

func TestTableCSV(t *testing.T) {
	var buf bytes.Buffer
	if err := TableOf(testResult()).WriteCSV(&buf); err != nil {
		t.Fatalf("write failed: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected header + 2 rows, got %d lines", len(lines))
	}
	if !strings.HasPrefix(lines[0], "time,ball_x,ball_z") || !strings.HasSuffix(lines[0], "enemy_moving,hits") {
		t.Errorf("unexpected header %q", lines[0])
	}
}

func TestExportJSON(t *testing.T) {
	st := New(t.TempDir())
	runID, err := st.Save("classic", 0.02, 1.0, 42, testResult())
	if err != nil {
		t.Fatal(err)
	}
	meta, err := st.Load(runID)
	if err != nil {
		t.Fatal(err)
	}
	table, err := st.LoadFrames(runID)
	if err != nil {
		t.Fatal(err)
	}

	path := filepath.Join(t.TempDir(), "run.json")
	if err := ExportJSON(path, meta, table); err != nil {
		t.Fatalf("export failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	var out ExportData
	if err := json.Unmarshal(data, &out); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if out.ID != runID || len(out.Rows) != 2 || out.Kicks["enemy"] != 0 {
		t.Errorf("unexpected export %+v", out)
	}
}

func TestSaveRealRun(t *testing.T) {
	game, err := sim.NewGame(config.DefaultConfig(), nil, nil)
	if err != nil {
		t.Fatal(err)
	}
	defer game.Close()
	result, err := game.Run(context.Background(), sim.Config{Dt: 0.02, Duration: 0.5})
	if err != nil {
		t.Fatal(err)
	}

	st := New(t.TempDir())
	runID, err := st.Save("classic", 0.02, 0.5, 1, result)
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}
	table, err := st.LoadFrames(runID)
	if err != nil {
		t.Fatal(err)
	}
	if len(table.Rows) != len(result.Frames) {
		t.Errorf("expected %d rows, got %d", len(result.Frames), len(table.Rows))
	}
	if _, ok := table.Column("player_heading"); !ok {
		t.Error("expected player columns")
	}
}
