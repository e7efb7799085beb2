package engine

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/hashicorp/go-version"

	"github.com/yeajay0001/dquest/internal/debug"
	"github.com/yeajay0001/dquest/query/sqlgen"
	"github.com/yeajay0001/dquest/schema"
)

// sqlEngine is the shared implementation behind the per-provider
// engines. It tracks the physical handle and the bound model list; the
// embedding engine contributes the provider name, the dialect builder
// and the server version gate.
type sqlEngine struct {
	name         string
	builder      sqlgen.StatementBuilder
	versionQuery string
	minVersion   string

	db     *sql.DB
	models []schema.MetaInfo
}

// Name returns the provider name.
func (e *sqlEngine) Name() string { return e.name }

// Builder returns the dialect statement builder.
func (e *sqlEngine) Builder() sqlgen.StatementBuilder { return e.builder }

// Open binds the engine to a live database handle after checking the
// server version against the engine's minimum.
func (e *sqlEngine) Open(db *sql.DB) error {
	if db == nil {
		return fmt.Errorf("open %s engine: nil database handle", e.name)
	}
	if err := e.checkVersion(db); err != nil {
		return err
	}
	e.db = db
	return nil
}

// Close releases the physical handle. The handle itself is owned by the
// caller and is not closed here; bound models are kept.
func (e *sqlEngine) Close() error {
	e.db = nil
	return nil
}

// IsOpen reports whether the engine holds a physical handle.
func (e *sqlEngine) IsOpen() bool { return e.db != nil }

// AddModel binds a model type to the engine.
func (e *sqlEngine) AddModel(info schema.MetaInfo) error {
	if info == nil {
		return ErrNilModel
	}
	for _, m := range e.models {
		if m == info {
			return nil
		}
	}
	e.models = append(e.models, info)
	return nil
}

// Models returns the bound model types in binding order.
func (e *sqlEngine) Models() []schema.MetaInfo {
	models := make([]schema.MetaInfo, len(e.models))
	copy(models, e.models)
	return models
}

// checkVersion queries the server version and compares it against the
// engine's minimum. An unparseable version is logged and waved through;
// only a confirmed older server is rejected.
func (e *sqlEngine) checkVersion(db *sql.DB) error {
	if e.versionQuery == "" || e.minVersion == "" {
		return nil
	}

	var raw string
	if err := db.QueryRow(e.versionQuery).Scan(&raw); err != nil {
		return fmt.Errorf("query %s server version: %w", e.name, err)
	}

	fields := strings.Fields(raw)
	if len(fields) == 0 {
		debug.Warn("empty server version", "engine", e.name)
		return nil
	}

	current, err := version.NewVersion(fields[0])
	if err != nil {
		debug.Warn("cannot parse server version", "engine", e.name, "version", raw)
		return nil
	}

	minimum := version.Must(version.NewVersion(e.minVersion))
	if current.LessThan(minimum) {
		return fmt.Errorf("%s server %s is older than %s: %w",
			e.name, current, minimum, ErrUnsupportedVersion)
	}
	return nil
}
