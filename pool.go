package pdf2md

import "runtime"

// Worker sizing constants for batch conversion.
const (
	// MinPoolSize ensures at least one worker is available.
	MinPoolSize = 1

	// MaxPoolSize caps workers; each holds a whole PDF in memory.
	MaxPoolSize = 8
)

// ResolvePoolSize determines how many documents to convert in parallel.
// Priority: explicit workers > GOMAXPROCS-based calculation.
// Pages of a single document are always read sequentially.
func ResolvePoolSize(workers int) int {
	if workers > 0 {
		return workers
	}

	// GOMAXPROCS is adjusted by automaxprocs for containers
	n := runtime.GOMAXPROCS(0)

	if n < MinPoolSize {
		return MinPoolSize
	}
	if n > MaxPoolSize {
		return MaxPoolSize
	}
	return n
}
