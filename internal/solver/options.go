package solver

import (
	"io"
	"log"
	"time"

	"github.com/rybkr/keymaze/internal/grid"
)

// Options configures solver behavior.
type Options struct {
	Agents  int           // Number of start markers the grid must hold
	Timeout time.Duration // Timeout limits search time (0 = no limit)
	Logger  *log.Logger   // Logger receives diagnostics (nil = discard)
}

// DefaultOptions returns standard solver options.
func DefaultOptions() *Options {
	return &Options{
		Agents:  grid.DefaultAgents,
		Timeout: 0,
		Logger:  nil, // nil → discard inside New
	}
}

// discardLogger drops everything written to it.
var discardLogger = log.New(io.Discard, "", 0)
