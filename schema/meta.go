// Package schema describes model metadata: the table a model maps to,
// its typed field list and the rows seeded when the table is created.
package schema

// FieldType is the abstract column type of a model field. Each SQL
// dialect maps it to a concrete column type.
type FieldType string

const (
	TypeInt      FieldType = "int"
	TypeString   FieldType = "string"
	TypeFloat    FieldType = "float"
	TypeBool     FieldType = "bool"
	TypeBytes    FieldType = "bytes"
	TypeDateTime FieldType = "datetime"
)

// Valid reports whether t is one of the known field types.
func (t FieldType) Valid() bool {
	switch t {
	case TypeInt, TypeString, TypeFloat, TypeBool, TypeBytes, TypeDateTime:
		return true
	}
	return false
}

// Field is a single column of a model table.
type Field struct {
	Name    string
	Type    FieldType
	NotNull bool
	Unique  bool
}

// PrimaryKeyField is the conventional name of the auto-increment
// primary key. Insert and replace statements exclude it unless the
// caller asks for it explicitly.
const PrimaryKeyField = "id"

// MetaInfo describes a model type. Implementations must be comparable;
// the connection registry uses MetaInfo values as map keys.
type MetaInfo interface {
	// Name returns the table name.
	Name() string

	// ClassName returns the model's type name, used in diagnostics.
	ClassName() string

	// Fields returns the ordered field list.
	Fields() []Field

	// FieldNames returns the ordered field names.
	FieldNames() []string

	// InitialData returns model instances to be saved right after the
	// table is created. The returned values are expected to implement
	// the runtime's Model interface.
	InitialData() []any
}

// StaticMeta is a MetaInfo declared by hand or produced by the schema
// parser.
type StaticMeta struct {
	Table     string
	Class     string
	FieldList []Field

	// Seed, when set, produces the initial rows for CreateTables.
	Seed func() []any
}

// NewStaticMeta creates a StaticMeta for the given table with the given
// fields. The class name defaults to the table name.
func NewStaticMeta(table string, fields ...Field) *StaticMeta {
	return &StaticMeta{
		Table:     table,
		Class:     table,
		FieldList: fields,
	}
}

// Name returns the table name.
func (m *StaticMeta) Name() string { return m.Table }

// ClassName returns the model type name.
func (m *StaticMeta) ClassName() string {
	if m.Class == "" {
		return m.Table
	}
	return m.Class
}

// Fields returns the ordered field list.
func (m *StaticMeta) Fields() []Field { return m.FieldList }

// FieldNames returns the ordered field names.
func (m *StaticMeta) FieldNames() []string {
	names := make([]string, len(m.FieldList))
	for i, f := range m.FieldList {
		names[i] = f.Name
	}
	return names
}

// InitialData returns the seed rows, if any.
func (m *StaticMeta) InitialData() []any {
	if m.Seed == nil {
		return nil
	}
	return m.Seed()
}

// Field looks up a field by name.
func (m *StaticMeta) Field(name string) (Field, bool) {
	for _, f := range m.FieldList {
		if f.Name == name {
			return f, true
		}
	}
	return Field{}, false
}
