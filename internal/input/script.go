package input

// Script replays a fixed list of samples, one per Poll, then idles.
type Script struct {
	samples []Sample
	next    int
}

func NewScript(samples []Sample) *Script {
	return &Script{samples: samples}
}

func (s *Script) Poll() Sample {
	if s.next >= len(s.samples) {
		return Sample{}
	}
	out := s.samples[s.next]
	s.next++
	return out
}

// Done reports whether every sample has been replayed.
func (s *Script) Done() bool { return s.next >= len(s.samples) }
