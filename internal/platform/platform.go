// Package platform abstracts the OS identity query used for the client
// identifier string.
package platform

import "runtime"

// Info identifies the running platform.
type Info struct {
	Name    string
	Release string
}

// Provider reports platform identity. Implementations must be cheap to
// call; the dispatcher queries one per request.
type Provider interface {
	Info() Info
}

type runtimeProvider struct{}

// Default returns a Provider backed by the Go runtime.
func Default() Provider {
	return runtimeProvider{}
}

func (runtimeProvider) Info() Info {
	return Info{
		Name:    runtime.GOOS,
		Release: runtime.GOARCH,
	}
}

// Fake is an injectable Provider for tests.
type Fake struct {
	Name    string
	Release string
}

func (f Fake) Info() Info {
	return Info{Name: f.Name, Release: f.Release}
}
