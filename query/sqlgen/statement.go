package sqlgen

import (
	"fmt"
	"strings"

	"github.com/yeajay0001/dquest/query"
	"github.com/yeajay0001/dquest/schema"
)

// statement implements the dialect-independent statement grammar. The
// exact clause order and keywords are load-bearing: generated text must
// stay drop-in compatible across reimplementations.
type statement struct{}

// DropTable renders `drop table <table>;`.
func (statement) DropTable(info schema.MetaInfo) string {
	return fmt.Sprintf("drop table %s;", info.Name())
}

// InsertInto renders `INSERT INTO <t> (<cols>) values (<:names>);`.
func (statement) InsertInto(info schema.MetaInfo, withID bool) string {
	return insertInto(info, "INSERT", withID)
}

// ReplaceInto renders `REPLACE INTO <t> (<cols>) values (<:names>);`.
func (statement) ReplaceInto(info schema.MetaInfo, withID bool) string {
	return insertInto(info, "REPLACE", withID)
}

func insertInto(info schema.MetaInfo, keyword string, withID bool) string {
	fields := info.FieldNames()
	if !withID {
		fields = withoutID(fields)
	}

	placeholders := make([]string, len(fields))
	for i, f := range fields {
		placeholders[i] = ":" + f
	}

	return fmt.Sprintf("%s INTO %s (%s) values (%s);",
		keyword, info.Name(),
		strings.Join(fields, ","),
		strings.Join(placeholders, ","))
}

// withoutID drops every field named "id", preserving order.
func withoutID(fields []string) []string {
	kept := make([]string, 0, len(fields))
	for _, f := range fields {
		if f == schema.PrimaryKeyField {
			continue
		}
		kept = append(kept, f)
	}
	return kept
}

// Select renders `SELECT ALL <cols> FROM <t> [WHERE <e>] [LIMIT n
// [OFFSET m]];`. The ALL keyword is emitted unconditionally to keep
// statement text identical to prior versions.
func (statement) Select(rules query.Rules) string {
	parts := []string{selectCore(rules)}
	if rules.Limit() > 0 {
		parts = append(parts, limitAndOffset(rules.Limit(), rules.Offset()))
	}
	return strings.Join(parts, " ") + ";"
}

// DeleteFrom renders `DELETE FROM <t> [WHERE <e>] [LIMIT n [OFFSET m]];`.
func (statement) DeleteFrom(rules query.Rules) string {
	parts := []string{fmt.Sprintf("DELETE FROM %s", rules.MetaInfo().Name())}

	if expr := rules.Expression(); !expr.IsNull() {
		parts = append(parts, fmt.Sprintf("WHERE %s", expr.Render()))
	}
	if rules.Limit() > 0 {
		parts = append(parts, limitAndOffset(rules.Limit(), rules.Offset()))
	}
	return strings.Join(parts, " ") + ";"
}

func selectCore(rules query.Rules) string {
	parts := []string{
		fmt.Sprintf("SELECT ALL %s FROM %s", selectResultColumn(rules), rules.MetaInfo().Name()),
	}
	if expr := rules.Expression(); !expr.IsNull() {
		parts = append(parts, fmt.Sprintf("WHERE %s", expr.Render()))
	}
	return strings.Join(parts, " ")
}

// selectResultColumn renders the column clause. An empty field list
// always means all columns, never zero columns. A non-empty aggregate
// function wraps the clause as func(columns).
func selectResultColumn(rules query.Rules) string {
	var cols string
	if fields := rules.Fields(); len(fields) == 0 {
		cols = "*"
	} else {
		cols = strings.Join(fields, ",")
	}

	if fn := rules.Func(); fn != "" {
		cols = fmt.Sprintf("%s(%s)", fn, cols)
	}
	return cols
}

// limitAndOffset renders `LIMIT n`, appending `OFFSET m` only when the
// offset is positive.
func limitAndOffset(limit, offset int) string {
	res := fmt.Sprintf("LIMIT %d", limit)
	if offset > 0 {
		res += fmt.Sprintf(" OFFSET %d", offset)
	}
	return res
}

// columnDefs renders the column definition list of a create-table
// statement, delegating type mapping and primary-key form to the
// dialect.
func columnDefs(info schema.MetaInfo, typeOf func(schema.Field) string, idColumn string) string {
	defs := make([]string, 0, len(info.Fields()))
	for _, f := range info.Fields() {
		if f.Name == schema.PrimaryKeyField {
			defs = append(defs, fmt.Sprintf("%s %s", f.Name, idColumn))
			continue
		}
		def := fmt.Sprintf("%s %s", f.Name, typeOf(f))
		if f.NotNull {
			def += " NOT NULL"
		}
		if f.Unique {
			def += " UNIQUE"
		}
		defs = append(defs, def)
	}
	return strings.Join(defs, ",")
}

// createIndex renders the guarded create-index statement shared by the
// dialects that support IF NOT EXISTS on indexes.
func createIndex(idx schema.Index) string {
	keyword := "INDEX"
	if idx.Unique {
		keyword = "UNIQUE INDEX"
	}
	return fmt.Sprintf("CREATE %s IF NOT EXISTS %s ON %s (%s);",
		keyword, idx.Name(), idx.Meta.Name(), strings.Join(idx.Columns, ","))
}
