package noise

import (
	"errors"
	"fmt"
	"sort"
)

// DefaultSource names the backend used when a config leaves it empty.
const DefaultSource = "simplex"

// ErrUnknownSource is returned by New for names nothing registered.
var ErrUnknownSource = errors.New("noise: unknown source")

// Factory constructs a Source from a seed.
type Factory func(seed int64) Source

var sources = map[string]Factory{}

// Register adds a noise backend under the provided name.
func Register(name string, f Factory) {
	if name == "" || f == nil {
		return
	}
	sources[name] = f
}

// Lookup returns the factory registered under name.
func Lookup(name string) (Factory, bool) {
	f, ok := sources[name]
	return f, ok
}

// Names lists the registered backends in sorted order.
func Names() []string {
	names := make([]string, 0, len(sources))
	for name := range sources {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// New builds the named backend. An empty name selects DefaultSource.
func New(name string, seed int64) (Source, error) {
	if name == "" {
		name = DefaultSource
	}
	f, ok := Lookup(name)
	if !ok {
		return nil, fmt.Errorf("%w %q (have %v)", ErrUnknownSource, name, Names())
	}
	return f(seed), nil
}
