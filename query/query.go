// Package query builds abstract queries and normalizes them into the
// rules consumed by the SQL statement generators.
package query

import (
	"github.com/yeajay0001/dquest/schema"
)

// Rules is the normalized, immutable description of one query: target
// model, projected fields, optional aggregate function, filter and
// limit/offset. A zero limit means unlimited; the offset is only
// meaningful when the limit is positive.
type Rules struct {
	meta   schema.MetaInfo
	fields []string
	fn     string
	expr   Expression
	limit  int
	offset int
}

// MetaInfo returns the target model metadata.
func (r Rules) MetaInfo() schema.MetaInfo { return r.meta }

// Fields returns the projected field names. Empty means all fields.
func (r Rules) Fields() []string { return r.fields }

// Func returns the aggregate function name, or "" for none.
func (r Rules) Func() string { return r.fn }

// Expression returns the filter expression.
func (r Rules) Expression() Expression { return r.expr }

// Limit returns the result limit. Zero or negative means unlimited.
func (r Rules) Limit() int { return r.limit }

// Offset returns the result offset.
func (r Rules) Offset() int { return r.offset }

// Query is the fluent front end that accumulates query intent and
// converts it into Rules. Methods return the receiver for chaining.
type Query struct {
	rules Rules
}

// New creates a query targeting the given model.
func New(meta schema.MetaInfo) *Query {
	return &Query{rules: Rules{meta: meta}}
}

// Fields sets the projected fields. Calling with no arguments resets
// the projection to all fields.
func (q *Query) Fields(fields ...string) *Query {
	q.rules.fields = fields
	return q
}

// Func sets the aggregate function wrapped around the result columns,
// e.g. "count" or "max".
func (q *Query) Func(name string) *Query {
	q.rules.fn = name
	return q
}

// Filter sets the WHERE expression.
func (q *Query) Filter(expr Expression) *Query {
	q.rules.expr = expr
	return q
}

// Limit caps the number of results. Zero or negative removes the cap.
func (q *Query) Limit(n int) *Query {
	q.rules.limit = n
	return q
}

// Offset skips the first n results. Only honored when a limit is set.
func (q *Query) Offset(n int) *Query {
	q.rules.offset = n
	return q
}

// Rules returns the normalized query rules.
func (q *Query) Rules() Rules { return q.rules }
