package export

import (
	"fmt"
	"strings"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/san-kum/strikeball/internal/storage"
)

const padding = 10.0

// Trace is the top-down path of one body over a run.
type Trace struct {
	Name   string
	Color  string
	Points []mgl64.Vec2 // (x, z)
}

var traceColors = map[string]string{
	"ball":   "#ffffff",
	"player": "#00ffff",
	"enemy":  "#ff88ff",
}

// TracesFromTable reads the <name>_x and <name>_z columns for each name.
func TracesFromTable(t *storage.Table, names []string) ([]Trace, error) {
	traces := make([]Trace, 0, len(names))
	for _, name := range names {
		xs, ok := t.Column(name + "_x")
		if !ok {
			return nil, fmt.Errorf("no trace for %q", name)
		}
		zs, ok := t.Column(name + "_z")
		if !ok {
			return nil, fmt.Errorf("no trace for %q", name)
		}

		color, ok := traceColors[name]
		if !ok {
			color = "#00ff00"
		}
		tr := Trace{Name: name, Color: color, Points: make([]mgl64.Vec2, len(xs))}
		for i := range xs {
			tr.Points[i] = mgl64.Vec2{xs[i], zs[i]}
		}
		traces = append(traces, tr)
	}
	return traces, nil
}

// laneView maps lane coordinates to SVG pixels with the far end (+z) at the
// top.
type laneView struct {
	halfWidth, halfLength float64
	scale                 float64
	width, height         int
}

func newLaneView(halfWidth, halfLength float64, height int) laneView {
	scale := (float64(height) - 2*padding) / (2 * halfLength)
	return laneView{
		halfWidth:  halfWidth,
		halfLength: halfLength,
		scale:      scale,
		width:      int(2*halfWidth*scale + 2*padding + 0.5),
		height:     height,
	}
}

func (v laneView) point(p mgl64.Vec2) (float64, float64) {
	return padding + (p.X()+v.halfWidth)*v.scale, padding + (v.halfLength-p.Y())*v.scale
}

// LaneSVG draws the lane outline, the centre line and one polyline per
// trace. The image is height pixels tall; width follows the lane aspect.
func LaneSVG(traces []Trace, halfWidth, halfLength float64, height int) string {
	v := newLaneView(halfWidth, halfLength, height)

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="#0a0a0a"/>
`, v.width, v.height, v.width, v.height))

	x0, y0 := v.point(mgl64.Vec2{-halfWidth, halfLength})
	x1, y1 := v.point(mgl64.Vec2{halfWidth, -halfLength})
	_, my := v.point(mgl64.Vec2{})
	sb.WriteString(fmt.Sprintf(`<rect x="%.1f" y="%.1f" width="%.1f" height="%.1f" fill="none" stroke="#444466"/>
`, x0, y0, x1-x0, y1-y0))
	sb.WriteString(fmt.Sprintf(`<line x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f" stroke="#444466" stroke-dasharray="4 4"/>
`, x0, my, x1, my))

	for _, tr := range traces {
		if len(tr.Points) < 2 {
			continue
		}
		sb.WriteString(fmt.Sprintf(`<path id="%s" fill="none" stroke="%s" stroke-width="1.5" d="M`, tr.Name, tr.Color))
		for i, p := range tr.Points {
			x, y := v.point(p)
			if i == 0 {
				sb.WriteString(fmt.Sprintf("%.1f,%.1f", x, y))
			} else {
				sb.WriteString(fmt.Sprintf(" L%.1f,%.1f", x, y))
			}
		}
		sb.WriteString("\"/>\n")
	}

	sb.WriteString("</svg>")
	return sb.String()
}
