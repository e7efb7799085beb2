package runtime

import (
	"database/sql"
	"errors"
	"regexp"
	"sync"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
)

// captureObserver collects events for assertions.
type captureObserver struct {
	mu     sync.Mutex
	events []Event
}

func (o *captureObserver) Observe(ev Event) {
	o.mu.Lock()
	o.events = append(o.events, ev)
	o.mu.Unlock()
}

func TestObserver_ReceivesStatementFailures(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	defer db.Close()

	eng := &fakeEngine{}
	eng.AddModel(newMeta("User"))

	capture := &captureObserver{}
	conn := NewConnection(
		WithRegistry(NewRegistry()),
		WithEngine(eng),
		WithObserver(capture),
	)
	if err := conn.Open(db); err != nil {
		t.Fatalf("Open() error: %v", err)
	}

	mock.ExpectQuery(regexp.QuoteMeta("name='User'")).WillReturnError(sql.ErrNoRows)
	mock.ExpectExec(regexp.QuoteMeta("CREATE TABLE IF NOT EXISTS User")).
		WillReturnError(errors.New("disk full"))

	if err := conn.CreateTables(); err == nil {
		t.Fatal("CreateTables() should fail")
	}

	if len(capture.events) != 1 {
		t.Fatalf("expected 1 event, got %d", len(capture.events))
	}
	ev := capture.events[0]
	if ev.Level != LevelError {
		t.Errorf("event level = %v, want LevelError", ev.Level)
	}
	if ev.Model != "User" {
		t.Errorf("event model = %q", ev.Model)
	}
	if ev.Err == nil {
		t.Error("event should carry the underlying error")
	}
}

func TestObserverFunc_Adapter(t *testing.T) {
	var got Event
	ObserverFunc(func(ev Event) { got = ev }).Observe(Event{Message: "ping"})
	if got.Message != "ping" {
		t.Errorf("ObserverFunc did not forward the event: %+v", got)
	}
}
