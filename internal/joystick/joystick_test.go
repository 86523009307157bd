package joystick

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/san-kum/strikeball/internal/events"
	"github.com/san-kum/strikeball/internal/input"
)

var testCfg = Config{MaxDistance: 100, RelocateThreshold: 120, InputDeadZone: 0.01}

func TestLocateClampsToMaxDistance(t *testing.T) {
	offsets := []mgl64.Vec2{
		{10, 0},
		{100, 0},
		{110, 0},
		{119, 30},
		{500, -300},
		{-1000, 0},
	}

	for _, off := range offsets {
		m := NewModel(testCfg)
		m.SetOriginal(mgl64.Vec2{200, 200})
		handle := m.Locate(mgl64.Vec2{200, 200}.Add(off))
		if handle.Len() > testCfg.MaxDistance+1e-9 {
			t.Errorf("offset %v: handle length %f exceeds max distance", off, handle.Len())
		}
	}
}

func TestLocateRelocatesAnchor(t *testing.T) {
	m := NewModel(testCfg)
	m.SetOriginal(mgl64.Vec2{0, 0})

	handle := m.Locate(mgl64.Vec2{300, 0})

	// anchor moves by 300-100 along +x, leaving the pointer exactly max distance away
	if math.Abs(m.Anchor.X()-200) > 1e-9 || m.Anchor.Y() != 0 {
		t.Errorf("expected anchor (200,0), got %v", m.Anchor)
	}
	if math.Abs(handle.X()-100) > 1e-9 {
		t.Errorf("expected handle (100,0), got %v", handle)
	}
}

func TestLocateBelowThresholdKeepsAnchor(t *testing.T) {
	m := NewModel(testCfg)
	m.SetOriginal(mgl64.Vec2{0, 0})

	handle := m.Locate(mgl64.Vec2{115, 0})

	if m.Anchor != (mgl64.Vec2{0, 0}) {
		t.Errorf("anchor should stay, got %v", m.Anchor)
	}
	if handle.X() != 100 {
		t.Errorf("expected clamped handle 100, got %f", handle.X())
	}
}

func TestUpdateInputDeadZone(t *testing.T) {
	tests := []struct {
		handle mgl64.Vec2
		active bool
	}{
		{mgl64.Vec2{0, 0}, false},
		{mgl64.Vec2{0.5, 0}, false},
		{mgl64.Vec2{0.9, 0}, false},
		{mgl64.Vec2{2, 0}, true},
		{mgl64.Vec2{0, -100}, true},
	}

	for _, tt := range tests {
		m := NewModel(testCfg)
		m.UpdateInput(tt.handle)
		if m.Active != (m.Magnitude > testCfg.InputDeadZone) {
			t.Errorf("handle %v: active flag disagrees with magnitude", tt.handle)
		}
		if m.Active != tt.active {
			t.Errorf("handle %v: expected active=%v, got %v", tt.handle, tt.active, m.Active)
		}
	}
}

func TestUpdateInputNormalizes(t *testing.T) {
	m := NewModel(testCfg)
	m.UpdateInput(mgl64.Vec2{30, 40})

	if math.Abs(m.Magnitude-0.5) > 1e-9 {
		t.Errorf("expected magnitude 0.5, got %f", m.Magnitude)
	}
	if math.Abs(m.Direction.Len()-1) > 1e-9 {
		t.Errorf("expected unit direction, got %v", m.Direction)
	}
}

type fakeView struct {
	anchor, handle mgl64.Vec2
}

func (v *fakeView) SetPosition(a mgl64.Vec2)       { v.anchor = a }
func (v *fakeView) SetHandlePosition(h mgl64.Vec2) { v.handle = h }

func TestJoystickPublishesOnlyWhileActive(t *testing.T) {
	script := input.NewScript([]input.Sample{
		{Position: mgl64.Vec2{50, 50}, JustPressed: true, Held: true},
		{Position: mgl64.Vec2{50.1, 50}, Held: true}, // inside dead zone
		{Position: mgl64.Vec2{150, 50}, Held: true},
		{Position: mgl64.Vec2{150, 50}, JustReleased: true},
		{},
	})
	bus := events.NewBus()
	view := &fakeView{}
	model := NewModel(testCfg)
	model.SetOriginal(mgl64.Vec2{10, 10})
	js := New(model, input.NewMachine(script), bus, view)

	var drags []events.Drag
	pressed, released := 0, 0
	bus.Drag.Subscribe(func(d events.Drag) { drags = append(drags, d) })
	bus.Pressed.Subscribe(func(events.Pressed) { pressed++ })
	bus.Released.Subscribe(func(events.Released) { released++ })

	for i := 0; i < 5; i++ {
		js.Tick()
	}

	if pressed != 1 || released != 1 {
		t.Errorf("expected 1 press and 1 release, got %d/%d", pressed, released)
	}
	if len(drags) != 1 {
		t.Fatalf("expected 1 drag event, got %d", len(drags))
	}
	if math.Abs(drags[0].Magnitude-1) > 1e-9 || math.Abs(drags[0].Direction.X()-1) > 1e-9 {
		t.Errorf("expected full right drag, got %+v", drags[0])
	}
	if model.Active || model.Dragging || model.Magnitude != 0 {
		t.Error("expected model reset after release")
	}
	if view.anchor != (mgl64.Vec2{10, 10}) {
		t.Errorf("expected view anchor restored, got %v", view.anchor)
	}
}
