// Package bridge is the lifetime-managed handle surface for external
// callers: opaque create/use/destroy over generators and processors, with
// null-safe, idempotent destruction and ok/not-ok call results instead of
// faults.
package bridge

import (
	"sync"

	"github.com/tickforge/tickforge/internal/domain/features"
	"github.com/tickforge/tickforge/internal/tickgen"
	"github.com/tickforge/tickforge/internal/universe"
)

// Handle is an opaque reference to a bridge-owned instance. The zero Handle
// is the null handle: every operation on it is a safe no-op.
type Handle uint64

type registry struct {
	mu         sync.Mutex
	nextID     uint64
	generators map[Handle]*tickgen.Generator
	processors map[Handle]*features.Extractor
}

var reg = &registry{
	generators: make(map[Handle]*tickgen.Generator),
	processors: make(map[Handle]*features.Extractor),
}

func (r *registry) next() Handle {
	r.nextID++
	return Handle(r.nextID)
}

// CreateTickGenerator allocates a generator targeting the given tick rate
// and returns its handle.
func CreateTickGenerator(ticksPerSecond uint32) Handle {
	reg.mu.Lock()
	defer reg.mu.Unlock()

	h := reg.next()
	reg.generators[h] = tickgen.NewGenerator(ticksPerSecond)
	return h
}

// DestroyTickGenerator releases the generator behind h. Destroying the null
// handle or an already-destroyed handle is a no-op, never a fault.
func DestroyTickGenerator(h Handle) {
	reg.mu.Lock()
	defer reg.mu.Unlock()
	delete(reg.generators, h)
}

// GenerateTick produces one tick from the generator behind h. ok is false
// for a null or destroyed handle, or when the generator cannot produce.
func GenerateTick(h Handle) (tick tickgen.MarketTick, ok bool) {
	reg.mu.Lock()
	gen := reg.generators[h]
	reg.mu.Unlock()

	if gen == nil {
		return tickgen.MarketTick{}, false
	}
	tick, err := gen.Generate()
	if err != nil {
		return tickgen.MarketTick{}, false
	}
	return tick, true
}

// InitializeSymbols replaces the generator's symbol universe with the given
// names over the default venue table. ok is false for a null/destroyed
// handle or an empty name list.
func InitializeSymbols(h Handle, names []string) bool {
	reg.mu.Lock()
	gen := reg.generators[h]
	reg.mu.Unlock()

	if gen == nil || names == nil {
		return false
	}
	cfg := universe.DefaultConfig()
	cfg.Symbols = names
	gen.Initialize(cfg)
	return true
}

// CreateProcessor allocates a feature extractor and returns its handle.
func CreateProcessor() Handle {
	reg.mu.Lock()
	defer reg.mu.Unlock()

	h := reg.next()
	reg.processors[h] = features.NewExtractor()
	return h
}

// DestroyProcessor releases the extractor behind h; idempotent and
// null-safe like DestroyTickGenerator.
func DestroyProcessor(h Handle) {
	reg.mu.Lock()
	defer reg.mu.Unlock()
	delete(reg.processors, h)
}

// ProcessTick extracts features for a single tick in history-less mode.
// ok is false for a null or destroyed handle.
func ProcessTick(h Handle, tick tickgen.MarketTick) (features.MLFeatures, bool) {
	reg.mu.Lock()
	proc := reg.processors[h]
	reg.mu.Unlock()

	if proc == nil {
		return features.MLFeatures{}, false
	}
	return proc.Process(tick, nil), true
}
