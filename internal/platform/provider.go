package platform

import (
	"fmt"
	"runtime"
)

// Provider bundles the live-tree backends for the current toolkit.
// Resolver may be nil; capture then keeps numeric ids unresolved.
type Provider struct {
	Reader   Reader
	Resolver Resolver
}

// ErrUnsupported is returned when no backend is registered for this build.
var ErrUnsupported = fmt.Errorf("no element tree backend registered for %s/%s", runtime.GOOS, runtime.GOARCH)

// NewProviderFunc is set by backend packages via init(). Host programs
// embedding this module register their toolkit bridge here.
var NewProviderFunc func() (*Provider, error)

// NewProvider returns the registered Provider, or ErrUnsupported.
func NewProvider() (*Provider, error) {
	if NewProviderFunc == nil {
		return nil, ErrUnsupported
	}
	return NewProviderFunc()
}
