package runtime

import (
	"database/sql"

	"github.com/yeajay0001/dquest/query/sqlgen"
	"github.com/yeajay0001/dquest/schema"
)

// SQL executes rendered statements against the live database handle.
// It pairs the handle with the engine's dialect statement builder and
// records every executed statement in the connection's last-query slot.
type SQL struct {
	db      *sql.DB
	builder sqlgen.StatementBuilder
	state   *connState
}

func newSQL(db *sql.DB, builder sqlgen.StatementBuilder, state *connState) *SQL {
	return &SQL{db: db, builder: builder, state: state}
}

// DB returns the underlying database handle, nil after detach.
func (s *SQL) DB() *sql.DB { return s.db }

// Builder returns the dialect statement builder.
func (s *SQL) Builder() sqlgen.StatementBuilder { return s.builder }

// detach drops the database handle reference. Called on Close; the
// handle itself stays open and owned by the caller.
func (s *SQL) detach() { s.db = nil }

// Exec executes a statement, recording it as the connection's last
// query. Named arguments bind to the :field placeholders of generated
// insert and replace statements.
func (s *SQL) Exec(stmt string, args ...any) (sql.Result, error) {
	if s.db == nil {
		return nil, ErrNotOpen
	}

	s.state.storeLastQuery(stmt)

	res, err := s.db.Exec(stmt, args...)
	if err != nil {
		return nil, &StatementError{Statement: stmt, Cause: err}
	}
	return res, nil
}

// run executes a statement for its side effect only.
func (s *SQL) run(stmt string) error {
	_, err := s.Exec(stmt)
	return err
}

// CreateTableIfNotExists creates the model's table.
func (s *SQL) CreateTableIfNotExists(info schema.MetaInfo) error {
	return s.run(s.builder.CreateTableIfNotExists(info))
}

// DropTable drops the model's table unconditionally.
func (s *SQL) DropTable(info schema.MetaInfo) error {
	return s.run(s.builder.DropTable(info))
}

// Exists reports whether the model's table exists. Probe failures count
// as "does not exist".
func (s *SQL) Exists(info schema.MetaInfo) bool {
	if s.db == nil {
		return false
	}

	stmt := s.builder.TableExists(info)
	s.state.storeLastQuery(stmt)

	var name sql.NullString
	if err := s.db.QueryRow(stmt).Scan(&name); err != nil {
		return false
	}
	return name.Valid
}

// CreateIndexIfNotExists creates the index.
func (s *SQL) CreateIndexIfNotExists(idx schema.Index) error {
	return s.run(s.builder.CreateIndexIfNotExists(idx))
}

// DropIndexIfExists drops the index.
func (s *SQL) DropIndexIfExists(name string) error {
	return s.run(s.builder.DropIndexIfExists(name))
}
