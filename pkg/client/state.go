package client

import "sync"

// Status tracks the lifecycle of a fetched resource.
type Status int

const (
	StatusIdle Status = iota
	StatusLoading
	StatusLoaded
	StatusFailed
)

func (s Status) String() string {
	switch s {
	case StatusIdle:
		return "idle"
	case StatusLoading:
		return "loading"
	case StatusLoaded:
		return "loaded"
	case StatusFailed:
		return "failed"
	}
	return "unknown"
}

// Resource holds the loading state, data and error of a single fetched
// resource. It only changes through Start, Succeed and Fail, mirroring the
// request/success/fail action triple the UI dispatches per operation.
type Resource[T any] struct {
	mu     sync.Mutex
	status Status
	data   T
	err    error
}

// Start marks the resource as loading and clears any previous error.
func (r *Resource[T]) Start() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.status = StatusLoading
	r.err = nil
}

// Succeed stores the fetched data and marks the resource loaded.
func (r *Resource[T]) Succeed(data T) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.status = StatusLoaded
	r.data = data
	r.err = nil
}

// Fail records the error and marks the resource failed. Previously loaded
// data is kept so the UI can keep rendering stale content next to the error.
func (r *Resource[T]) Fail(err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.status = StatusFailed
	r.err = err
}

// Snapshot returns the current status, data and error.
func (r *Resource[T]) Snapshot() (Status, T, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.status, r.data, r.err
}

// Status returns the current lifecycle state.
func (r *Resource[T]) Status() Status {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.status
}

// Err returns the stored error, if any.
func (r *Resource[T]) Err() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.err
}
