package configs

import (
	"errors"
)

// First decodes the first value found under any of paths, trying paths in
// order. It returns the zero value when no path is set, and panics on
// invalid config.
func First[T any](loader Loader, paths ...string) T {
	var value T
	for _, path := range paths {
		err := loader.AssignFirst(path, &value)
		if err == nil {
			return value
		}
		if !errors.Is(err, ErrValueNotFound) {
			panic(err)
		}
	}
	return value
}
