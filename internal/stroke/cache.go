package stroke

import "sync"

// Cache memoizes the path of one stroke. It is rebuilt only when the number
// of points or the stroke size changes, so a point set that did not grow is
// never re-outlined between frames.
type Cache struct {
	mu   sync.Mutex
	n    int
	size float64
	path Path
	ok   bool
}

// Path returns the cached path for points, computing it when stale.
func (c *Cache) Path(points []Point, o Options) Path {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.ok && c.n == len(points) && c.size == o.Size {
		return c.path
	}
	c.path = StrokeToPath(points, o)
	c.n = len(points)
	c.size = o.Size
	c.ok = true
	return c.path
}
