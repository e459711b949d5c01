// Package driver loads a user-supplied metric descriptor, compiled as
// a Go plugin, from a caller-specified location.
//
// A custom metric is built with `go build -buildmode=plugin` and must
// export a symbol named Driver holding a value that implements
// metric.Descriptor.
package driver

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"plugin"

	"github.com/jnelson16/quantgov/internal/metric"
)

// EntryPoint is the plugin file name looked up inside a driver
// directory.
const EntryPoint = "driver.so"

// SymbolName is the exported symbol a driver plugin must provide.
const SymbolName = "Driver"

// ErrDriverNotFound reports that no importable driver exists at the
// given location.
var ErrDriverNotFound = errors.New("driver not found")

// Load resolves path to a driver plugin and returns the loaded
// descriptor. Path may be the plugin file itself or a directory
// containing one named "driver.so". Failures to locate, open, or
// resolve the Driver symbol wrap ErrDriverNotFound.
func Load(path string) (metric.Descriptor, error) {
	entry, err := resolveEntry(path)
	if err != nil {
		return nil, err
	}

	p, err := plugin.Open(entry)
	if err != nil {
		return nil, fmt.Errorf("%w: opening %s: %v", ErrDriverNotFound, entry, err)
	}

	sym, err := p.Lookup(SymbolName)
	if err != nil {
		return nil, fmt.Errorf("%w: %s exports no %s symbol", ErrDriverNotFound, entry, SymbolName)
	}

	switch d := sym.(type) {
	case metric.Descriptor:
		return d, nil
	case *metric.Descriptor:
		return *d, nil
	default:
		return nil, fmt.Errorf(
			"%w: %s symbol in %s has type %T, which is not a metric descriptor",
			ErrDriverNotFound, SymbolName, entry, sym,
		)
	}
}

// resolveEntry maps a directory to its driver.so and verifies the
// final path exists. The returned path is absolute, so later opens are
// independent of the working directory.
func resolveEntry(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("resolving driver path %q: %w", path, err)
	}

	info, err := os.Stat(abs)
	if err != nil {
		return "", fmt.Errorf("%w: %s", ErrDriverNotFound, abs)
	}
	if info.IsDir() {
		abs = filepath.Join(abs, EntryPoint)
		if _, err := os.Stat(abs); err != nil {
			return "", fmt.Errorf("%w: %s", ErrDriverNotFound, abs)
		}
	}
	return abs, nil
}
