package input

// Machine is the Idle/Dragging state machine.
type Machine struct {
	provider  Provider
	listeners []Listener
}

func NewMachine(provider Provider) *Machine {
	return &Machine{provider: provider}
}

// AddListener registers l. Listeners are notified in registration order.
func (m *Machine) AddListener(l Listener) {
	m.listeners = append(m.listeners, l)
}

// Handle polls the provider once and returns the new dragging flag.
func (m *Machine) Handle(dragging bool) bool {
	if da, ok := m.provider.(DragAware); ok {
		da.SetDragging(dragging)
	}
	s := m.provider.Poll()

	if !dragging {
		if s.JustPressed {
			for _, l := range m.listeners {
				l.TouchStarted(s.Position)
			}
			return true
		}
		return false
	}

	if s.JustReleased {
		for _, l := range m.listeners {
			l.TouchEnded()
		}
		return false
	}
	if s.Held {
		for _, l := range m.listeners {
			l.TouchMoved(s.Position)
		}
	}
	return true
}
