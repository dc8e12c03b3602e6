package scenario

import (
	"fmt"
	"sort"

	"github.com/san-kum/boxdiff/internal/lattice"
)

// Builder constructs an initial distribution for n boxes. gap is only
// meaningful for the frap scenario and is ignored by the others.
type Builder func(n, gap int) (lattice.Dist, error)

type Registry struct {
	builders map[string]Builder
}

func NewRegistry() *Registry {
	r := &Registry{builders: make(map[string]Builder)}

	r.builders["spread"] = func(n, _ int) (lattice.Dist, error) { return Point(n) }
	r.builders["uniform"] = func(n, _ int) (lattice.Dist, error) { return Uniform(n) }
	r.builders["frap"] = func(n, gap int) (lattice.Dist, error) { return FRAP(n, gap) }

	return r
}

func (r *Registry) Get(name string) (Builder, error) {
	b, ok := r.builders[name]
	if !ok {
		return nil, fmt.Errorf("unknown scenario: %s", name)
	}
	return b, nil
}

func (r *Registry) List() []string {
	names := make([]string, 0, len(r.builders))
	for name := range r.builders {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
