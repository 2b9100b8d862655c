package platform

import (
	"errors"
	"testing"
)

func TestNewProviderUnregistered(t *testing.T) {
	prev := NewProviderFunc
	NewProviderFunc = nil
	defer func() { NewProviderFunc = prev }()

	if _, err := NewProvider(); !errors.Is(err, ErrUnsupported) {
		t.Errorf("expected ErrUnsupported, got %v", err)
	}
}

func TestNewProviderRegistered(t *testing.T) {
	prev := NewProviderFunc
	want := &Provider{}
	NewProviderFunc = func() (*Provider, error) { return want, nil }
	defer func() { NewProviderFunc = prev }()

	got, err := NewProvider()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != want {
		t.Error("provider not returned from registered func")
	}
}
