package ports

import "context"

// Port: a boundary for reading the most recent records of a log.
type TailReader interface {
	// Return up to limit most recent records, oldest first.
	ReadTail(ctx context.Context, limit int) ([]string, error)
}
