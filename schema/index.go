package schema

// Index describes a secondary index over one table.
type Index struct {
	IndexName string
	Meta      MetaInfo
	Columns   []string
	Unique    bool
}

// NewIndex creates an index specification on the given model columns.
func NewIndex(name string, meta MetaInfo, columns ...string) Index {
	return Index{
		IndexName: name,
		Meta:      meta,
		Columns:   columns,
	}
}

// NewUniqueIndex creates a unique index specification.
func NewUniqueIndex(name string, meta MetaInfo, columns ...string) Index {
	idx := NewIndex(name, meta, columns...)
	idx.Unique = true
	return idx
}

// Name returns the index name.
func (i Index) Name() string { return i.IndexName }
