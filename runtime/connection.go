package runtime

import (
	"database/sql"
	"fmt"
	"sync"

	"github.com/yeajay0001/dquest/engine"
	"github.com/yeajay0001/dquest/schema"
)

// Model is the contract a model instance has to fulfil so the runtime
// can seed it on table creation.
type Model interface {
	SetConnection(conn Connection)
	Save() error
}

// Connection is a shared handle over one storage engine plus
// last-executed-statement tracking. Copying a Connection aliases the
// same underlying state; two handles are equal (==) exactly when they
// alias the same state.
//
// The zero value is the null connection: no state is allocated until
// the first mutating operation. Null is a legitimate pre-allocation
// state, distinct from "allocated but not open" and from "open".
type Connection struct {
	d *connState
}

// connState is the state shared by all aliasing handles. The mutex
// guards the engine pointer and the last-query slot only; it is never
// held across statement execution, so concurrent executions on one
// connection interleave arbitrarily.
type connState struct {
	registry *Registry
	observer Observer

	mu        sync.Mutex
	engine    engine.Engine
	lastQuery string
	sql       *SQL
}

// Option configures a new connection.
type Option func(*connState)

// WithRegistry makes the connection register model defaults in the
// given registry instead of the process-wide one.
func WithRegistry(r *Registry) Option {
	return func(s *connState) { s.registry = r }
}

// WithObserver routes the connection's diagnostic events to the given
// observer.
func WithObserver(o Observer) Option {
	return func(s *connState) { s.observer = o }
}

// WithEngine installs the storage engine up front instead of the
// default SQLite engine.
func WithEngine(e engine.Engine) Option {
	return func(s *connState) { s.engine = e }
}

// NewConnection creates an unopened connection.
func NewConnection(opts ...Option) Connection {
	s := newConnState()
	for _, opt := range opts {
		opt(s)
	}
	return Connection{d: s}
}

func newConnState() *connState {
	return &connState{
		registry: globalRegistry,
		observer: ObserverFunc(logObserver),
	}
}

// ensureState lazily allocates the shared state. Mutating operations
// never no-op because of a null handle.
func (c *Connection) ensureState() {
	if c.d == nil {
		c.d = newConnState()
	}
}

// ensureEngine installs the default SQLite engine if none is set.
func (c *Connection) ensureEngine() {
	c.ensureState()
	c.d.mu.Lock()
	if c.d.engine == nil {
		c.d.engine = engine.NewSQLiteEngine()
	}
	c.d.mu.Unlock()
}

// IsNull reports whether the handle has no underlying state.
func (c Connection) IsNull() bool { return c.d == nil }

// IsOpen reports whether the connection's engine holds a physical
// database handle.
func (c Connection) IsOpen() bool {
	if c.d == nil {
		return false
	}
	c.d.mu.Lock()
	eng := c.d.engine
	c.d.mu.Unlock()
	if eng == nil {
		return false
	}
	return eng.IsOpen()
}

// Open binds the connection to a live database handle. The handle must
// already be connected; passing a nil handle is a programming error and
// panics. The engine's open error is propagated.
func (c *Connection) Open(db *sql.DB) error {
	if db == nil {
		panic("dquest: Connection.Open requires a live database handle")
	}

	c.ensureEngine()

	c.d.mu.Lock()
	eng := c.d.engine
	c.d.mu.Unlock()

	if err := eng.Open(db); err != nil {
		return fmt.Errorf("open connection: %w", err)
	}

	c.d.mu.Lock()
	c.d.sql = newSQL(db, eng.Builder(), c.d)
	c.d.mu.Unlock()
	return nil
}

// Close releases the engine's physical handle and removes every model
// the engine had bound from the default-connection registry. Closing a
// null connection is a no-op. Bound models stay on the engine, so the
// connection can be reopened.
func (c Connection) Close() {
	if c.d == nil {
		return
	}

	c.d.mu.Lock()
	eng := c.d.engine
	if c.d.sql != nil {
		c.d.sql.detach()
	}
	c.d.mu.Unlock()

	if eng == nil {
		return
	}
	eng.Close()

	for _, info := range eng.Models() {
		c.d.registry.remove(info, c)
	}
}

// AddModel binds a model type to the connection's engine. The first
// connection a model is bound to becomes its default; later bindings
// leave the default untouched unless SetDefaultConnection is called.
func (c *Connection) AddModel(info schema.MetaInfo) error {
	if info == nil {
		return ErrNilModel
	}

	c.ensureEngine()

	c.d.mu.Lock()
	eng := c.d.engine
	c.d.mu.Unlock()

	if err := eng.AddModel(info); err != nil {
		return err
	}
	c.d.registry.bind(info, *c, false)
	return nil
}

// DefaultConnection returns the connection the model defaults to,
// looked up in the process-wide registry. A model that was never bound
// yields a null Connection.
func DefaultConnection(info schema.MetaInfo) Connection {
	return globalRegistry.DefaultConnection(info)
}

// SetDefaultConnection makes this connection the model's default,
// overriding any existing mapping.
func (c *Connection) SetDefaultConnection(info schema.MetaInfo) {
	if info == nil {
		return
	}
	c.ensureState()
	c.d.registry.bind(info, *c, true)
}

// CreateTables creates the table of every model bound to the engine,
// skipping tables that already exist. Freshly created tables are seeded
// with the model's initial data, saved through this connection. The
// first failure stops the run; tables already created are not rolled
// back.
func (c Connection) CreateTables() error {
	if !c.IsOpen() {
		return ErrNotOpen
	}

	s := c.SQL()
	for _, info := range c.Engine().Models() {
		if s.Exists(info) {
			continue
		}

		if err := s.CreateTableIfNotExists(info); err != nil {
			c.d.observer.Observe(Event{
				Level:     LevelError,
				Model:     info.ClassName(),
				Message:   "failed to create table",
				Statement: c.LastQuery(),
				Err:       err,
			})
			return err
		}

		if err := c.seedModel(info); err != nil {
			return err
		}
	}
	return nil
}

// seedModel saves the model's initial data rows through this
// connection.
func (c Connection) seedModel(info schema.MetaInfo) error {
	for _, raw := range info.InitialData() {
		model, ok := raw.(Model)
		if !ok {
			c.d.observer.Observe(Event{
				Level:   LevelWarn,
				Model:   info.ClassName(),
				Message: "initial data row does not implement Model, skipped",
			})
			continue
		}

		model.SetConnection(c)
		if err := model.Save(); err != nil {
			c.d.observer.Observe(Event{
				Level:   LevelError,
				Model:   info.ClassName(),
				Message: "failed to save initial data",
				Err:     err,
			})
			return err
		}
	}
	return nil
}

// DropTables drops the table of every bound model that exists. The
// first failure stops the run without rolling back prior drops.
func (c Connection) DropTables() error {
	if !c.IsOpen() {
		return ErrNotOpen
	}

	s := c.SQL()
	for _, info := range c.Engine().Models() {
		if !s.Exists(info) {
			continue
		}
		if err := s.DropTable(info); err != nil {
			c.d.observer.Observe(Event{
				Level:     LevelError,
				Model:     info.ClassName(),
				Message:   "failed to drop table",
				Statement: c.LastQuery(),
				Err:       err,
			})
			return err
		}
	}
	return nil
}

// CreateIndex creates the index if it does not exist yet.
func (c Connection) CreateIndex(idx schema.Index) error {
	if !c.IsOpen() {
		return ErrNotOpen
	}
	return c.SQL().CreateIndexIfNotExists(idx)
}

// DropIndex drops the index if it exists.
func (c Connection) DropIndex(name string) error {
	if !c.IsOpen() {
		return ErrNotOpen
	}
	return c.SQL().DropIndexIfExists(name)
}

// SetEngine installs a new storage engine, closing the previous one.
// It fails with ErrEngineOpen while the connection is open: engines
// cannot be hot-swapped on a live connection.
func (c *Connection) SetEngine(e engine.Engine) error {
	if e == nil {
		return ErrNilEngine
	}
	if c.IsOpen() {
		return ErrEngineOpen
	}

	c.ensureState()

	c.d.mu.Lock()
	if c.d.engine != nil {
		c.d.engine.Close()
	}
	c.d.engine = e
	c.d.mu.Unlock()
	return nil
}

// Engine returns the connection's storage engine, or nil for a null
// connection.
func (c Connection) Engine() engine.Engine {
	if c.d == nil {
		return nil
	}
	c.d.mu.Lock()
	defer c.d.mu.Unlock()
	return c.d.engine
}

// SQL returns the statement executor, or nil before the connection is
// opened.
func (c Connection) SQL() *SQL {
	if c.d == nil {
		return nil
	}
	c.d.mu.Lock()
	defer c.d.mu.Unlock()
	return c.d.sql
}

// LastQuery returns the text of the last statement executed on this
// connection. The slot is shared, not per-goroutine: concurrent callers
// can observe each other's statements, last write wins.
func (c Connection) LastQuery() string {
	if !c.IsOpen() {
		return ""
	}
	c.d.mu.Lock()
	defer c.d.mu.Unlock()
	return c.d.lastQuery
}

// SetLastQuery overwrites the shared last-query slot.
func (c Connection) SetLastQuery(stmt string) {
	if !c.IsOpen() {
		return
	}
	c.d.storeLastQuery(stmt)
}

func (s *connState) storeLastQuery(stmt string) {
	s.mu.Lock()
	s.lastQuery = stmt
	s.mu.Unlock()
}
