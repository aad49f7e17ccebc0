// internal/repository/message_repo.go
package repository

import (
	"context"
	"sync"

	"vitalis-server/internal/models"
)

// MessageRepository is get/put over the named outbound-message collection.
// The whole sequence is serialized to storage as one unit, matching the
// original client-side log: a save is a read-modify-write of the full list.
// Single writer is assumed; interleaved writers can lose updates.
type MessageRepository interface {
	// Load returns the stored sequence, newest first. A missing collection
	// yields an empty slice, not an error.
	Load(ctx context.Context) ([]models.Message, error)
	// Store replaces the whole stored sequence.
	Store(ctx context.Context, messages []models.Message) error
}

// MemoryMessageRepository keeps the collection in process memory. Used in
// tests and in deployments without a Redis backend.
type MemoryMessageRepository struct {
	mu       sync.RWMutex
	messages []models.Message
}

func NewMemoryMessageRepository() *MemoryMessageRepository {
	return &MemoryMessageRepository{}
}

func (r *MemoryMessageRepository) Load(_ context.Context) ([]models.Message, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]models.Message, len(r.messages))
	copy(out, r.messages)
	return out, nil
}

func (r *MemoryMessageRepository) Store(_ context.Context, messages []models.Message) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.messages = make([]models.Message, len(messages))
	copy(r.messages, messages)
	return nil
}
