//go:build !freebsd

package sandbox

// Noop is the reducer for platforms without a capability mechanism
type Noop struct{}

// newPlatformReducer creates a no-op reducer
func newPlatformReducer() Reducer {
	return &Noop{}
}

// Restrict does nothing and returns nil
func (n *Noop) Restrict(fds []uintptr, ioctls []uint) error {
	return nil
}

// Enforcing returns false
func (n *Noop) Enforcing() bool {
	return false
}
