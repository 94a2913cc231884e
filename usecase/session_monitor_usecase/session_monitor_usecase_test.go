package session_monitor_usecase

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"

	"scholarly/domain"
)

type recordingEvictor struct {
	mu      sync.Mutex
	evicted []uuid.UUID
}

func (r *recordingEvictor) Evict(userID uuid.UUID) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.evicted = append(r.evicted, userID)
}

func (r *recordingEvictor) snapshot() []uuid.UUID {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]uuid.UUID(nil), r.evicted...)
}

func runMonitor(t *testing.T, events chan domain.SessionEvent, evictor *recordingEvictor) func() {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	monitor := NewSessionMonitorUsecase(events, evictor)
	go func() {
		defer close(done)
		monitor.Run(ctx)
	}()
	return func() {
		cancel()
		select {
		case <-done:
		case <-time.After(time.Second):
			t.Fatal("monitor did not stop on context cancel")
		}
	}
}

func TestRun_EvictsOnSessionEnd(t *testing.T) {
	events := make(chan domain.SessionEvent)
	evictor := &recordingEvictor{}
	stop := runMonitor(t, events, evictor)
	defer stop()

	loggedOut := uuid.New()
	rejected := uuid.New()

	events <- domain.SessionEvent{Type: domain.SessionEventLogout, UserID: loggedOut}
	events <- domain.SessionEvent{Type: domain.SessionEventRejected, UserID: rejected}
	// Unbuffered sends above have been received once this one is taken.
	events <- domain.SessionEvent{Type: domain.SessionEventValidated, UserID: uuid.New()}

	waitFor(t, func() bool { return len(evictor.snapshot()) == 2 })

	got := evictor.snapshot()
	if got[0] != loggedOut || got[1] != rejected {
		t.Errorf("evictions out of order: %v", got)
	}
}

func TestRun_LoginStartsFromCleanSnapshot(t *testing.T) {
	events := make(chan domain.SessionEvent)
	evictor := &recordingEvictor{}
	stop := runMonitor(t, events, evictor)
	defer stop()

	userID := uuid.New()
	events <- domain.SessionEvent{Type: domain.SessionEventLogin, UserID: userID, Confirmed: true}

	waitFor(t, func() bool {
		got := evictor.snapshot()
		return len(got) == 1 && got[0] == userID
	})
}

func TestRun_ValidatedLeavesSnapshotAlone(t *testing.T) {
	events := make(chan domain.SessionEvent)
	evictor := &recordingEvictor{}
	stop := runMonitor(t, events, evictor)
	defer stop()

	events <- domain.SessionEvent{Type: domain.SessionEventValidated, UserID: uuid.New()}
	events <- domain.SessionEvent{Type: domain.SessionEventLogout, UserID: uuid.New()}

	waitFor(t, func() bool { return len(evictor.snapshot()) == 1 })
}

func TestRun_StopsWhenChannelCloses(t *testing.T) {
	events := make(chan domain.SessionEvent)
	monitor := NewSessionMonitorUsecase(events, &recordingEvictor{})

	done := make(chan struct{})
	go func() {
		defer close(done)
		monitor.Run(context.Background())
	}()

	close(events)
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("monitor did not stop on channel close")
	}
}

func TestHandle_IgnoresNilUser(t *testing.T) {
	evictor := &recordingEvictor{}
	monitor := NewSessionMonitorUsecase(nil, evictor)

	monitor.handle(domain.SessionEvent{Type: domain.SessionEventLogout, UserID: uuid.Nil})
	monitor.handle(domain.SessionEvent{Type: "unknown", UserID: uuid.New()})

	if got := evictor.snapshot(); len(got) != 0 {
		t.Errorf("expected no evictions, got %v", got)
	}
}

func waitFor(t *testing.T, condition func() bool) {
	t.Helper()
	deadline := time.Now().Add(time.Second)
	for time.Now().Before(deadline) {
		if condition() {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatal("condition not met within deadline")
}
