package colormap

import "fmt"

// InvalidColormapError reports a colormap name that is not registered.
type InvalidColormapError struct {
	Name string
}

func (e *InvalidColormapError) Error() string {
	return fmt.Sprintf("invalid colormap name %q: please enter a valid colormap name", e.Name)
}
