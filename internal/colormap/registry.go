package colormap

import (
	"fmt"
	"sort"
	"strings"
)

// TestColormaps lists the gradients rendered by test mode, in output order.
var TestColormaps = []string{"viridis", "plasma", "inferno", "magma", "cividis"}

// Registry is an immutable set of named colormaps.
type Registry struct {
	maps  map[string]*Colormap
	names []string
}

// NewRegistry creates a registry holding the given colormaps.
//
// Returns an error if a colormap is nil or two colormaps share a name.
func NewRegistry(maps ...*Colormap) (*Registry, error) {
	r := &Registry{
		maps:  make(map[string]*Colormap, len(maps)),
		names: make([]string, 0, len(maps)),
	}
	for i, cm := range maps {
		if cm == nil {
			return nil, fmt.Errorf("colormap %d is nil", i)
		}
		if _, dup := r.maps[cm.name]; dup {
			return nil, fmt.Errorf("duplicate colormap name: %s", cm.name)
		}
		r.maps[cm.name] = cm
		r.names = append(r.names, cm.name)
	}
	sort.Strings(r.names)
	return r, nil
}

// Lookup resolves a colormap by name.
//
// A registered name followed by "_r" resolves to the reversed gradient, unless
// the full name is itself registered. Unknown names return
// *InvalidColormapError.
func (r *Registry) Lookup(name string) (*Colormap, error) {
	if cm, ok := r.maps[name]; ok {
		return cm, nil
	}
	if base, ok := strings.CutSuffix(name, "_r"); ok {
		if cm, ok := r.maps[base]; ok {
			return cm.Reversed(), nil
		}
	}
	return nil, &InvalidColormapError{Name: name}
}

// Names returns the registered colormap names in sorted order.
// Reversed variants are not listed.
func (r *Registry) Names() []string {
	out := make([]string, len(r.names))
	copy(out, r.names)
	return out
}

// Len returns the number of registered colormaps.
func (r *Registry) Len() int {
	return len(r.names)
}
