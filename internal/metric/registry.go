package metric

import (
	"fmt"
	"sort"
	"strings"
)

var registry []Descriptor

// Register adds a metric to the global registry. Registering a second
// metric under an existing name panics: names are the CLI dispatch key
// and collisions are programmer error.
func Register(d Descriptor) {
	for _, existing := range registry {
		if existing.Name() == d.Name() {
			panic(fmt.Sprintf("metric %q registered twice", d.Name()))
		}
	}
	registry = append(registry, d)
}

// All returns a copy of all registered metrics sorted by name.
func All() []Descriptor {
	result := make([]Descriptor, len(registry))
	copy(result, registry)
	sort.Slice(result, func(i, j int) bool {
		return result[i].Name() < result[j].Name()
	})
	return result
}

// Lookup returns the metric registered under name. Unknown names
// produce an error listing the available metrics.
func Lookup(name string) (Descriptor, error) {
	for _, d := range registry {
		if d.Name() == name {
			return d, nil
		}
	}
	return nil, fmt.Errorf(
		"unknown metric %q (available: %s)",
		name,
		strings.Join(registeredNames(), ", "),
	)
}

// Reset clears the registry. Used for testing.
func Reset() {
	registry = nil
}

func registeredNames() []string {
	names := make([]string, 0, len(registry))
	for _, d := range registry {
		names = append(names, d.Name())
	}
	sort.Strings(names)
	return names
}
