// internal/service/messages/service.go
package messages

import (
	"context"
	"time"

	"vitalis-server/internal/common/logger"
	"vitalis-server/internal/common/metrics"
	"vitalis-server/internal/models"
	"vitalis-server/internal/repository"
	"vitalis-server/internal/service/mailer"

	"github.com/google/uuid"
)

// EmailRelay is the slice of the mailer the message store uses.
type EmailRelay interface {
	Send(ctx context.Context, to, subject, content string) (*mailer.SendResult, error)
}

// SaveDraft is the caller-supplied part of a new outbound message.
type SaveDraft struct {
	Type    models.MessageType
	Subject string
	Content string
	To      string
}

// SaveResult reports what happened to a save. Message is always populated;
// Relayed distinguishes persisted-only from persisted-and-relayed so callers
// and tests can observe delivery outcome. The user-facing flow ignores it.
type SaveResult struct {
	Message models.Message
	Relayed bool
}

// Service is the outbound message store: it records every communication the
// system represents as sent and triggers a best-effort real dispatch. The log
// is a record of what was promised, not of what was delivered.
type Service struct {
	repo   repository.MessageRepository
	relay  EmailRelay
	logger logger.Logger
	now    func() time.Time
}

func New(repo repository.MessageRepository, relay EmailRelay, log logger.Logger) *Service {
	return &Service{
		repo:   repo,
		relay:  relay,
		logger: log.WithFields(map[string]interface{}{"component": "messages"}),
		now:    time.Now,
	}
}

// List returns all persisted messages, newest first.
func (s *Service) List(ctx context.Context) ([]models.Message, error) {
	return s.repo.Load(ctx)
}

// Save constructs the full record, persists it by prepending to the stored
// collection, then attempts the relay send. Persistence strictly precedes the
// relay attempt, and relay failure never surfaces to the caller: the returned
// record is identical regardless of delivery outcome.
func (s *Service) Save(ctx context.Context, draft SaveDraft) SaveResult {
	msg := models.Message{
		ID:        uuid.New().String(),
		Type:      draft.Type,
		Subject:   draft.Subject,
		Content:   draft.Content,
		To:        draft.To,
		Timestamp: s.now().UTC().Format(time.RFC3339),
	}

	existing, err := s.repo.Load(ctx)
	if err != nil {
		s.logger.Error("failed to load message log, starting fresh", map[string]interface{}{
			"error": err,
		})
		existing = nil
	}

	// Whole-collection read-modify-write, matching the original storage
	// contract. Single writer assumed.
	updated := make([]models.Message, 0, len(existing)+1)
	updated = append(updated, msg)
	updated = append(updated, existing...)

	if err := s.repo.Store(ctx, updated); err != nil {
		s.logger.Error("failed to persist message log", map[string]interface{}{
			"error":     err,
			"messageId": msg.ID,
		})
	}
	metrics.MessagesSaved.WithLabelValues(string(msg.Type)).Inc()

	relayed := false
	if s.relay != nil {
		if _, err := s.relay.Send(ctx, msg.To, msg.Subject, msg.Content); err != nil {
			s.logger.Warn("email relay failed, message kept in log", map[string]interface{}{
				"error":     err,
				"messageId": msg.ID,
			})
		} else {
			relayed = true
		}
	}

	return SaveResult{Message: msg, Relayed: relayed}
}
