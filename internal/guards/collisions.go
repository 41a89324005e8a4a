package guards

import (
	"slices"
	"strings"
	"sync"
)

// Collision is a guard claimed by more than one header.
type Collision struct {
	Guard string
	Paths []string
}

// Collisions records which headers claim which guard during one run.
// Create one per run and pass it to whoever checks headers; it is safe for
// concurrent Observe calls.
type Collisions struct {
	mu     sync.Mutex
	claims map[string][]string
}

func NewCollisions() *Collisions {
	return &Collisions{claims: make(map[string][]string)}
}

// Observe records that path expects guard. Repeated observations of the same
// pair are ignored.
func (c *Collisions) Observe(guard, path string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if slices.Contains(c.claims[guard], path) {
		return
	}
	c.claims[guard] = append(c.claims[guard], path)
}

// Report returns every guard claimed by two or more paths, sorted by guard,
// each with its paths sorted.
func (c *Collisions) Report() []Collision {
	c.mu.Lock()
	defer c.mu.Unlock()

	var out []Collision
	for guard, paths := range c.claims {
		if len(paths) < 2 {
			continue
		}
		sorted := slices.Clone(paths)
		slices.Sort(sorted)
		out = append(out, Collision{Guard: guard, Paths: sorted})
	}
	slices.SortFunc(out, func(a, b Collision) int {
		return strings.Compare(a.Guard, b.Guard)
	})
	return out
}
