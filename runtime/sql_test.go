package runtime

import (
	"database/sql"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"

	"github.com/yeajay0001/dquest/schema"
)

// seedRow is a minimal Model used to exercise initial-data seeding.
type seedRow struct {
	conn Connection
	name string
	fail bool
}

func (m *seedRow) SetConnection(conn Connection) { m.conn = conn }

func (m *seedRow) Save() error {
	if m.fail {
		return errors.New("seed failed")
	}
	stmt := m.conn.SQL().Builder().InsertInto(newMeta("User"), false)
	_, err := m.conn.SQL().Exec(stmt, sql.Named("name", m.name))
	return err
}

func openConn(t *testing.T) (Connection, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	conn := NewConnection(WithRegistry(NewRegistry()), WithEngine(&fakeEngine{}))
	if err := conn.Open(db); err != nil {
		t.Fatalf("Open() error: %v", err)
	}
	return conn, mock
}

func TestSQL_ExecRecordsLastQuery(t *testing.T) {
	conn, mock := openConn(t)

	stmt := "INSERT INTO User (name) values (:name);"
	mock.ExpectExec(regexp.QuoteMeta(stmt)).WillReturnResult(sqlmock.NewResult(1, 1))

	if _, err := conn.SQL().Exec(stmt, sql.Named("name", "alice")); err != nil {
		t.Fatalf("Exec() error: %v", err)
	}
	if got := conn.LastQuery(); got != stmt {
		t.Errorf("LastQuery() = %q, want %q", got, stmt)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Error(err)
	}
}

func TestSQL_ExecWrapsDriverError(t *testing.T) {
	conn, mock := openConn(t)

	stmt := "drop table User;"
	driverErr := errors.New("no such table: User")
	mock.ExpectExec(regexp.QuoteMeta(stmt)).WillReturnError(driverErr)

	_, err := conn.SQL().Exec(stmt)
	var stmtErr *StatementError
	if !errors.As(err, &stmtErr) {
		t.Fatalf("Exec() = %v, want *StatementError", err)
	}
	if stmtErr.Statement != stmt {
		t.Errorf("StatementError.Statement = %q", stmtErr.Statement)
	}
	if !errors.Is(err, driverErr) {
		t.Error("StatementError should unwrap to the driver error")
	}
	// The failing statement stays visible as the last query.
	if got := conn.LastQuery(); got != stmt {
		t.Errorf("LastQuery() = %q, want %q", got, stmt)
	}
}

func TestSQL_Exists(t *testing.T) {
	conn, mock := openConn(t)
	user := newMeta("User")
	probe := regexp.QuoteMeta("SELECT name FROM sqlite_master WHERE type='table' AND name='User';")

	mock.ExpectQuery(probe).
		WillReturnRows(sqlmock.NewRows([]string{"name"}).AddRow("User"))
	if !conn.SQL().Exists(user) {
		t.Error("Exists() should report true when the probe returns a row")
	}

	mock.ExpectQuery(probe).WillReturnError(sql.ErrNoRows)
	if conn.SQL().Exists(user) {
		t.Error("Exists() should report false when the probe returns no row")
	}
}

func TestCreateTables_CreatesAndSeeds(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	defer db.Close()

	user := newMeta("User")
	saved := &seedRow{name: "admin"}
	user.Seed = func() []any { return []any{saved} }
	existing := newMeta("Post")

	eng := &fakeEngine{}
	eng.AddModel(user)
	eng.AddModel(existing)

	conn := NewConnection(WithRegistry(NewRegistry()), WithEngine(eng))
	if err := conn.Open(db); err != nil {
		t.Fatalf("Open() error: %v", err)
	}

	// User: missing, created, seeded. Post: present, skipped.
	mock.ExpectQuery(regexp.QuoteMeta("name='User'")).WillReturnError(sql.ErrNoRows)
	mock.ExpectExec(regexp.QuoteMeta("CREATE TABLE IF NOT EXISTS User")).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO User (name) values (:name);")).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectQuery(regexp.QuoteMeta("name='Post'")).
		WillReturnRows(sqlmock.NewRows([]string{"name"}).AddRow("Post"))

	if err := conn.CreateTables(); err != nil {
		t.Fatalf("CreateTables() error: %v", err)
	}
	if saved.conn != conn {
		t.Error("seeded model should be bound to the creating connection")
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Error(err)
	}
}

func TestCreateTables_StopsAtFirstFailure(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	defer db.Close()

	eng := &fakeEngine{}
	eng.AddModel(newMeta("User"))
	eng.AddModel(newMeta("Post"))

	conn := NewConnection(WithRegistry(NewRegistry()), WithEngine(eng))
	if err := conn.Open(db); err != nil {
		t.Fatalf("Open() error: %v", err)
	}

	mock.ExpectQuery(regexp.QuoteMeta("name='User'")).WillReturnError(sql.ErrNoRows)
	mock.ExpectExec(regexp.QuoteMeta("CREATE TABLE IF NOT EXISTS User")).
		WillReturnError(errors.New("disk full"))

	err = conn.CreateTables()
	if err == nil {
		t.Fatal("CreateTables() should fail")
	}
	// Fail fast: Post is never probed, and the failing statement is
	// recorded as the last query.
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Error(err)
	}
	if got := conn.LastQuery(); !regexp.MustCompile("CREATE TABLE IF NOT EXISTS User").MatchString(got) {
		t.Errorf("LastQuery() = %q, want the failing create statement", got)
	}
}

func TestCreateTables_SeedFailureStops(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	defer db.Close()

	user := newMeta("User")
	user.Seed = func() []any { return []any{&seedRow{fail: true}} }

	eng := &fakeEngine{}
	eng.AddModel(user)

	conn := NewConnection(WithRegistry(NewRegistry()), WithEngine(eng))
	if err := conn.Open(db); err != nil {
		t.Fatalf("Open() error: %v", err)
	}

	mock.ExpectQuery(regexp.QuoteMeta("name='User'")).WillReturnError(sql.ErrNoRows)
	mock.ExpectExec(regexp.QuoteMeta("CREATE TABLE IF NOT EXISTS User")).
		WillReturnResult(sqlmock.NewResult(0, 0))

	if err := conn.CreateTables(); err == nil {
		t.Fatal("CreateTables() should propagate the seeding failure")
	}
}

func TestDropTables(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	defer db.Close()

	eng := &fakeEngine{}
	eng.AddModel(newMeta("User"))
	eng.AddModel(newMeta("Post"))

	conn := NewConnection(WithRegistry(NewRegistry()), WithEngine(eng))
	if err := conn.Open(db); err != nil {
		t.Fatalf("Open() error: %v", err)
	}

	// User exists and is dropped; Post does not and is skipped.
	mock.ExpectQuery(regexp.QuoteMeta("name='User'")).
		WillReturnRows(sqlmock.NewRows([]string{"name"}).AddRow("User"))
	mock.ExpectExec(regexp.QuoteMeta("drop table User;")).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery(regexp.QuoteMeta("name='Post'")).WillReturnError(sql.ErrNoRows)

	if err := conn.DropTables(); err != nil {
		t.Fatalf("DropTables() error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Error(err)
	}
}

func TestIndexLifecycle(t *testing.T) {
	conn, mock := openConn(t)
	idx := schema.NewIndex("idx_user_name", newMeta("User"), "name")

	mock.ExpectExec(regexp.QuoteMeta("CREATE INDEX IF NOT EXISTS idx_user_name ON User (name);")).
		WillReturnResult(sqlmock.NewResult(0, 0))
	if err := conn.CreateIndex(idx); err != nil {
		t.Fatalf("CreateIndex() error: %v", err)
	}

	mock.ExpectExec(regexp.QuoteMeta("DROP INDEX IF EXISTS idx_user_name;")).
		WillReturnResult(sqlmock.NewResult(0, 0))
	if err := conn.DropIndex("idx_user_name"); err != nil {
		t.Fatalf("DropIndex() error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Error(err)
	}
}
