// Package assets loads the game's images and font and tracks ownership of
// the renderer resources created from them. It is independent of the
// renderer: callers supply functions that upload and free resources.
package assets

// Handle owns one renderer resource. The zero value is an unset handle.
//
// Set releases any resource already held before taking the new one, and
// Release frees at most once, so reload and teardown cannot leak or
// double-free.
type Handle[T any] struct {
	res    T
	width  int
	height int
	free   func(T)
	live   bool
}

// Set takes ownership of res, releasing the previous resource first.
// free may be nil for resources that need no explicit release.
func (h *Handle[T]) Set(res T, width, height int, free func(T)) {
	h.Release()
	h.res = res
	h.width = width
	h.height = height
	h.free = free
	h.live = true
}

// Get returns the resource and whether the handle is set.
func (h *Handle[T]) Get() (T, bool) {
	return h.res, h.live
}

// Loaded reports whether the handle holds a resource.
func (h *Handle[T]) Loaded() bool {
	return h.live
}

// Size returns the resource dimensions, 0x0 when unset.
func (h *Handle[T]) Size() (width, height int) {
	return h.width, h.height
}

// Release frees the resource. Safe to call on an unset or released handle.
func (h *Handle[T]) Release() {
	if !h.live {
		return
	}
	if h.free != nil {
		h.free(h.res)
	}
	*h = Handle[T]{}
}

// Set of named handles owned together and released together.
type Set[T any] struct {
	handles map[string]*Handle[T]
	order   []string
}

// NewSet creates an empty set.
func NewSet[T any]() *Set[T] {
	return &Set[T]{handles: make(map[string]*Handle[T])}
}

// Handle returns the handle for name, creating an unset one if needed.
func (s *Set[T]) Handle(name string) *Handle[T] {
	h, ok := s.handles[name]
	if !ok {
		h = &Handle[T]{}
		s.handles[name] = h
		s.order = append(s.order, name)
	}
	return h
}

// Get returns the handle for name if it is loaded.
func (s *Set[T]) Get(name string) (*Handle[T], bool) {
	h, ok := s.handles[name]
	if !ok || !h.Loaded() {
		return nil, false
	}
	return h, true
}

// ReleaseAll releases every handle in reverse creation order.
func (s *Set[T]) ReleaseAll() {
	for i := len(s.order) - 1; i >= 0; i-- {
		s.handles[s.order[i]].Release()
	}
}
