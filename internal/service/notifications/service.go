// internal/service/notifications/service.go
package notifications

import (
	"sort"
	"sync"
	"time"

	"vitalis-server/internal/common/metrics"
	"vitalis-server/internal/models"

	"github.com/google/uuid"
)

// Draft is the caller-supplied part of a new notification.
type Draft struct {
	Title   string
	Message string
	Type    models.NotificationType
}

// Service is the notification center: a session-scoped, mutable list of
// user-facing event notifications. State lives in memory only and resets
// with the process. Construct one instance per session owner and inject it;
// there is no package-level singleton.
type Service struct {
	mu            sync.RWMutex
	notifications []models.Notification
	now           func() time.Time
}

// New creates an empty notification center.
func New() *Service {
	return &Service{now: time.Now}
}

// NewWithSeed creates a notification center pre-populated with the sample
// notifications the dashboard shows on first load.
func NewWithSeed() *Service {
	s := New()
	now := s.now()

	s.notifications = []models.Notification{
		{
			ID:        uuid.New().String(),
			Title:     "Appointment Confirmed",
			Message:   "Your appointment with Dr. Sarah Johnson has been confirmed for June 15th.",
			Type:      models.NotificationSuccess,
			Timestamp: now.Add(-2 * time.Hour),
			Read:      false,
		},
		{
			ID:        uuid.New().String(),
			Title:     "New Lab Results",
			Message:   "Your blood test results from June 10th are now available for review.",
			Type:      models.NotificationInfo,
			Timestamp: now.Add(-24 * time.Hour),
			Read:      false,
		},
		{
			ID:        uuid.New().String(),
			Title:     "Health Tip",
			Message:   "Remember to stay hydrated! Aim for at least 8 glasses of water today.",
			Type:      models.NotificationInfo,
			Timestamp: now.Add(-5 * time.Hour),
			Read:      true,
		},
	}
	return s
}

// List returns all notifications sorted descending by timestamp. The sort is
// recomputed on every call; insertion order is not the source of truth.
func (s *Service) List() []models.Notification {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Notification, len(s.notifications))
	copy(out, s.notifications)

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Timestamp.After(out[j].Timestamp)
	})
	return out
}

// Add inserts a new unread notification with a fresh id and timestamp.
func (s *Service) Add(draft Draft) models.Notification {
	s.mu.Lock()
	defer s.mu.Unlock()

	n := models.Notification{
		ID:        uuid.New().String(),
		Title:     draft.Title,
		Message:   draft.Message,
		Type:      draft.Type,
		Timestamp: s.now(),
		Read:      false,
	}

	// Prepended for parity with the original; display order is governed by
	// the timestamp sort in List.
	s.notifications = append([]models.Notification{n}, s.notifications...)
	metrics.NotificationsCreated.WithLabelValues(string(n.Type)).Inc()
	return n
}

// MarkAsRead sets read on the matching record. Unknown ids are a no-op, not
// an error, and the operation is idempotent.
func (s *Service) MarkAsRead(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.notifications {
		if s.notifications[i].ID == id {
			s.notifications[i].Read = true
			return
		}
	}
}

// MarkAllAsRead sets read on every record.
func (s *Service) MarkAllAsRead() {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.notifications {
		s.notifications[i].Read = true
	}
}

// UnreadCount returns the number of unread notifications.
func (s *Service) UnreadCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	count := 0
	for i := range s.notifications {
		if !s.notifications[i].Read {
			count++
		}
	}
	return count
}
