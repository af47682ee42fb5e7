package singleton

import "sync"

// Instance lazily builds a single T and returns it to every caller.
// Get is safe for concurrent use; construction runs at most once per Reset.
type Instance[T any] struct {
	mu    sync.Mutex
	once  *sync.Once
	value T
	newFn func() T
}

// New returns an Instance that builds its value with newFn on first Get.
func New[T any](newFn func() T) *Instance[T] {
	return &Instance[T]{once: new(sync.Once), newFn: newFn}
}

// Get returns the single value, building it on the first call.
func (i *Instance[T]) Get() T {
	i.mu.Lock()
	once := i.once
	i.mu.Unlock()
	once.Do(func() {
		v := i.newFn()
		i.mu.Lock()
		i.value = v
		i.mu.Unlock()
	})
	i.mu.Lock()
	defer i.mu.Unlock()
	return i.value
}

// Reset forgets the value so the next Get builds a new one. Meant for tests.
func (i *Instance[T]) Reset() {
	i.mu.Lock()
	defer i.mu.Unlock()
	var zero T
	i.value = zero
	i.once = new(sync.Once)
}
