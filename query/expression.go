package query

import (
	"fmt"
	"strings"
	"time"
)

// Expression is a boolean predicate tree used in WHERE clauses. The
// zero value is the null expression, meaning "no filter"; statement
// generators emit no WHERE clause for it. Expressions are immutable
// and rendering is pure: the same tree always renders the same text.
type Expression struct {
	node *exprNode
}

type exprKind int

const (
	exprCompare exprKind = iota
	exprIn
	exprGroup
	exprNot
)

type exprNode struct {
	kind     exprKind
	field    string
	op       string
	value    any
	values   []any
	junction string
	operands []*exprNode
}

// IsNull reports whether the expression denotes "no filter".
func (e Expression) IsNull() bool { return e.node == nil }

// Render produces the WHERE-clause fragment, without the WHERE keyword.
// A null expression renders to the empty string.
func (e Expression) Render() string {
	if e.node == nil {
		return ""
	}
	return e.node.render()
}

func (n *exprNode) render() string {
	switch n.kind {
	case exprCompare:
		return fmt.Sprintf("%s %s %s", n.field, n.op, formatValue(n.value))
	case exprIn:
		parts := make([]string, len(n.values))
		for i, v := range n.values {
			parts[i] = formatValue(v)
		}
		return fmt.Sprintf("%s IN (%s)", n.field, strings.Join(parts, ","))
	case exprNot:
		return fmt.Sprintf("NOT (%s)", n.operands[0].render())
	case exprGroup:
		parts := make([]string, len(n.operands))
		for i, op := range n.operands {
			if op.kind == exprGroup {
				parts[i] = "(" + op.render() + ")"
			} else {
				parts[i] = op.render()
			}
		}
		return strings.Join(parts, " "+n.junction+" ")
	}
	return ""
}

func compare(field, op string, value any) Expression {
	return Expression{node: &exprNode{kind: exprCompare, field: field, op: op, value: value}}
}

// Eq builds a `field = value` predicate.
func Eq(field string, value any) Expression { return compare(field, "=", value) }

// Ne builds a `field <> value` predicate.
func Ne(field string, value any) Expression { return compare(field, "<>", value) }

// Gt builds a `field > value` predicate.
func Gt(field string, value any) Expression { return compare(field, ">", value) }

// Ge builds a `field >= value` predicate.
func Ge(field string, value any) Expression { return compare(field, ">=", value) }

// Lt builds a `field < value` predicate.
func Lt(field string, value any) Expression { return compare(field, "<", value) }

// Le builds a `field <= value` predicate.
func Le(field string, value any) Expression { return compare(field, "<=", value) }

// Like builds a `field LIKE pattern` predicate.
func Like(field, pattern string) Expression { return compare(field, "LIKE", pattern) }

// In builds a `field IN (...)` predicate.
func In(field string, values ...any) Expression {
	return Expression{node: &exprNode{kind: exprIn, field: field, values: values}}
}

// And joins the non-null expressions with AND. With zero or one
// non-null operand it returns the null expression or the operand
// itself, never a degenerate group.
func And(exprs ...Expression) Expression { return junction("AND", exprs) }

// Or joins the non-null expressions with OR.
func Or(exprs ...Expression) Expression { return junction("OR", exprs) }

// Not negates the expression. Negating a null expression is null.
func Not(expr Expression) Expression {
	if expr.IsNull() {
		return Expression{}
	}
	return Expression{node: &exprNode{kind: exprNot, operands: []*exprNode{expr.node}}}
}

func junction(op string, exprs []Expression) Expression {
	nodes := make([]*exprNode, 0, len(exprs))
	for _, e := range exprs {
		if e.node != nil {
			nodes = append(nodes, e.node)
		}
	}
	switch len(nodes) {
	case 0:
		return Expression{}
	case 1:
		return Expression{node: nodes[0]}
	}
	return Expression{node: &exprNode{kind: exprGroup, junction: op, operands: nodes}}
}

// formatValue renders a Go value as a SQL literal. Strings are quoted
// with single quotes doubled; booleans map to 1/0; times use the
// `2006-01-02 15:04:05` layout; nil renders as NULL.
func formatValue(v any) string {
	switch val := v.(type) {
	case nil:
		return "NULL"
	case string:
		return "'" + strings.ReplaceAll(val, "'", "''") + "'"
	case bool:
		if val {
			return "1"
		}
		return "0"
	case time.Time:
		return "'" + val.Format("2006-01-02 15:04:05") + "'"
	case fmt.Stringer:
		return "'" + strings.ReplaceAll(val.String(), "'", "''") + "'"
	default:
		return fmt.Sprintf("%v", val)
	}
}
