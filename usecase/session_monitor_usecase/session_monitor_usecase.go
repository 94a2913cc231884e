// Package session_monitor_usecase consumes session events on a single
// goroutine and keeps per-user cached state consistent with session
// lifecycle: whatever ends or invalidates a session also evicts that
// user's library snapshot.
package session_monitor_usecase

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"scholarly/domain"
)

// SnapshotEvictor drops cached per-user state.
type SnapshotEvictor interface {
	Evict(userID uuid.UUID)
}

type SessionMonitorUsecase struct {
	events  <-chan domain.SessionEvent
	evictor SnapshotEvictor
	logger  *slog.Logger
}

func NewSessionMonitorUsecase(events <-chan domain.SessionEvent, evictor SnapshotEvictor) *SessionMonitorUsecase {
	return &SessionMonitorUsecase{
		events:  events,
		evictor: evictor,
		logger:  slog.Default(),
	}
}

// Run processes events until the context is cancelled or the channel
// closes. All event types funnel through the one handler, so login,
// logout and validation cannot race each other's state changes.
func (m *SessionMonitorUsecase) Run(ctx context.Context) {
	m.logger.Info("session monitor started")
	for {
		select {
		case <-ctx.Done():
			m.logger.Info("session monitor stopped", "reason", ctx.Err())
			return
		case event, ok := <-m.events:
			if !ok {
				m.logger.Info("session monitor stopped", "reason", "event channel closed")
				return
			}
			m.handle(event)
		}
	}
}

func (m *SessionMonitorUsecase) handle(event domain.SessionEvent) {
	switch event.Type {
	case domain.SessionEventLogout, domain.SessionEventRejected:
		if event.UserID != uuid.Nil {
			m.evictor.Evict(event.UserID)
		}
		m.logger.Info("session ended, cached state evicted",
			"type", string(event.Type), "user_id", event.UserID)
	case domain.SessionEventLogin:
		// A new login starts from a clean snapshot; stale state from a
		// previous session of the same user must not survive.
		if event.UserID != uuid.Nil {
			m.evictor.Evict(event.UserID)
		}
	case domain.SessionEventValidated:
		// Confirmed and already cached state stays valid.
	default:
		m.logger.Warn("unknown session event type", "type", string(event.Type))
	}
}
