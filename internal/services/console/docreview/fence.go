package docreview

import "sync"

type fenceKey struct {
	kind Kind
	id   string
}

// Fence tracks decisions in flight so one document never has two
// submissions outstanding at once.
type Fence struct {
	mu       sync.Mutex
	inFlight map[fenceKey]struct{}
}

// NewFence returns an empty fence.
func NewFence() *Fence {
	return &Fence{inFlight: make(map[fenceKey]struct{})}
}

// Acquire claims kind+id. When ok is false another submission holds it.
// release is idempotent.
func (f *Fence) Acquire(kind Kind, id string) (release func(), ok bool) {
	key := fenceKey{kind: kind, id: id}
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, busy := f.inFlight[key]; busy {
		return func() {}, false
	}
	f.inFlight[key] = struct{}{}
	var once sync.Once
	return func() {
		once.Do(func() {
			f.mu.Lock()
			delete(f.inFlight, key)
			f.mu.Unlock()
		})
	}, true
}

// InFlight reports whether kind+id is currently claimed.
func (f *Fence) InFlight(kind Kind, id string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	_, busy := f.inFlight[fenceKey{kind: kind, id: id}]
	return busy
}
