package export

import (
	"strings"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/san-kum/strikeball/internal/storage"
)

func sampleTable() *storage.Table {
	return &storage.Table{
		Columns: []string{"ball_x", "ball_z", "player_x", "player_z"},
		Times:   []float64{0, 0.02, 0.04},
		Rows: [][]float64{
			{0, 0, 0, -7},
			{0.1, 0.2, 0.1, -7},
			{0.2, 0.4, 0.2, -7},
		},
	}
}

func TestTracesFromTable(t *testing.T) {
	traces, err := TracesFromTable(sampleTable(), []string{"ball", "player"})
	if err != nil {
		t.Fatal(err)
	}
	if len(traces) != 2 {
		t.Fatalf("traces = %d", len(traces))
	}
	if got := traces[0].Points[2]; got != (mgl64.Vec2{0.2, 0.4}) {
		t.Errorf("ball point = %v", got)
	}
	if traces[1].Color != "#00ffff" {
		t.Errorf("player color = %s", traces[1].Color)
	}

	if _, err := TracesFromTable(sampleTable(), []string{"enemy"}); err == nil {
		t.Error("expected error for missing trace")
	}
}

func TestLaneViewOrientation(t *testing.T) {
	v := newLaneView(4, 9, 200)

	_, far := v.point(mgl64.Vec2{0, 9})
	_, near := v.point(mgl64.Vec2{0, -9})
	if far != padding {
		t.Errorf("far end y = %v, want %v", far, padding)
	}
	if near != 200-padding {
		t.Errorf("near end y = %v, want %v", near, 200-padding)
	}

	left, _ := v.point(mgl64.Vec2{-4, 0})
	right, _ := v.point(mgl64.Vec2{4, 0})
	if left >= right {
		t.Errorf("x should grow to the right: %v >= %v", left, right)
	}
}

func TestLaneSVG(t *testing.T) {
	traces, err := TracesFromTable(sampleTable(), []string{"ball", "player"})
	if err != nil {
		t.Fatal(err)
	}
	traces = append(traces, Trace{Name: "dot", Points: []mgl64.Vec2{{0, 0}}})

	svg := LaneSVG(traces, 4, 9, 200)
	if !strings.HasPrefix(svg, "<?xml") || !strings.HasSuffix(svg, "</svg>") {
		t.Error("not an svg document")
	}
	if n := strings.Count(svg, "<path"); n != 2 {
		t.Errorf("paths = %d, want 2", n)
	}
	if !strings.Contains(svg, `id="ball"`) {
		t.Error("missing ball path")
	}
}
