package rule

import (
	"errors"
	"fmt"
	"sort"
)

var (
	// ErrUnknownRule indicates a rule name with no registered factory.
	ErrUnknownRule = errors.New("rule: unknown rule")

	// ErrInvalidParam indicates a rule parameter outside its valid range.
	ErrInvalidParam = errors.New("rule: invalid parameter")
)

// Params carries construction parameters by name.
type Params map[string]float64

// Factory builds a rule from parameters and a shared random source.
type Factory func(p Params, src Source) (Rule, error)

type Registry struct {
	rules map[string]Factory
}

// NewRegistry returns a registry with random, circular and demo registered.
func NewRegistry() *Registry {
	r := &Registry{rules: make(map[string]Factory)}

	r.rules["random"] = func(p Params, src Source) (Rule, error) {
		return NewRandom(src), nil
	}
	r.rules["circular"] = func(p Params, src Source) (Rule, error) {
		radius, tolerance := p["radius"], p["tolerance"]
		if radius < 0 {
			return nil, fmt.Errorf("%w: radius %f", ErrInvalidParam, radius)
		}
		if tolerance < 0 {
			return nil, fmt.Errorf("%w: tolerance %f", ErrInvalidParam, tolerance)
		}
		return NewCircular(radius, tolerance, src), nil
	}
	r.rules["demo"] = func(p Params, src Source) (Rule, error) {
		return NewDemo(int(p["selector"])), nil
	}

	return r
}

// Register adds or replaces a factory.
func (r *Registry) Register(name string, f Factory) {
	r.rules[name] = f
}

func (r *Registry) Get(name string, p Params, src Source) (Rule, error) {
	fn, ok := r.rules[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownRule, name)
	}
	return fn(p, src)
}

func (r *Registry) List() []string {
	names := make([]string, 0, len(r.rules))
	for name := range r.rules {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
