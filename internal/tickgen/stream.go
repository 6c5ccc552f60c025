package tickgen

import "sync/atomic"

// Stream is a cursor over a generator: one tick per Next call, with
// timestamps paced by the target interval the same way FillBatch paces a
// batch. Stop is terminal — after it, Next never yields again.
//
// Stop may be called from another goroutine; Next itself follows the
// generator's single-writer discipline.
type Stream struct {
	gen     *Generator
	lastNs  int64
	started bool
	stopped atomic.Bool
}

// Stream creates a cursor over the generator.
func (g *Generator) Stream() *Stream {
	return &Stream{gen: g}
}

// Next produces the next paced tick. It returns ok=false once the stream is
// stopped or the generator cannot produce (empty universe).
func (s *Stream) Next() (MarketTick, bool) {
	if s.stopped.Load() {
		return MarketTick{}, false
	}

	tick, err := s.gen.Generate()
	if err != nil {
		return MarketTick{}, false
	}

	if s.started {
		jitter, jerr := s.gen.rng.UintRange(0, uint32(s.gen.targetIntervalNs/10))
		if jerr != nil {
			return MarketTick{}, false
		}
		tick.TimestampNs = s.lastNs + s.gen.targetIntervalNs + int64(jitter)
	}
	s.lastNs = tick.TimestampNs
	s.started = true

	return tick, true
}

// Stop moves the stream to its terminal state.
func (s *Stream) Stop() {
	s.stopped.Store(true)
}
