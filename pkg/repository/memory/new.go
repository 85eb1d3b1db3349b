package memory

import (
	"sync"

	"play-economy/pkg/repository"
)

type record struct {
	doc map[string]any
}

type implRepository[T repository.Entity] struct {
	mu      sync.RWMutex
	records map[string]record
}

// New creates an in-process Repository. Each operation holds the collection lock for its
// whole duration, which makes Increment atomic with respect to every other call.
func New[T repository.Entity]() repository.Repository[T] {
	return &implRepository[T]{records: make(map[string]record)}
}
