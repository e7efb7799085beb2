package query

import (
	"testing"

	"github.com/yeajay0001/dquest/schema"
)

func TestQuery_AccumulatesRules(t *testing.T) {
	meta := schema.NewStaticMeta("User",
		schema.Field{Name: "id", Type: schema.TypeInt},
		schema.Field{Name: "name", Type: schema.TypeString},
	)

	rules := New(meta).
		Fields("id", "name").
		Func("count").
		Filter(Eq("name", "alice")).
		Limit(5).
		Offset(10).
		Rules()

	if rules.MetaInfo() != schema.MetaInfo(meta) {
		t.Error("MetaInfo() does not return the target model")
	}
	if got := rules.Fields(); len(got) != 2 || got[0] != "id" || got[1] != "name" {
		t.Errorf("Fields() = %v", got)
	}
	if rules.Func() != "count" {
		t.Errorf("Func() = %q", rules.Func())
	}
	if rules.Expression().IsNull() {
		t.Error("Expression() should not be null")
	}
	if rules.Limit() != 5 || rules.Offset() != 10 {
		t.Errorf("Limit/Offset = %d/%d", rules.Limit(), rules.Offset())
	}
}

func TestQuery_Defaults(t *testing.T) {
	meta := schema.NewStaticMeta("User", schema.Field{Name: "id", Type: schema.TypeInt})
	rules := New(meta).Rules()

	if len(rules.Fields()) != 0 {
		t.Error("default projection should be empty (all fields)")
	}
	if rules.Func() != "" {
		t.Error("default aggregate function should be empty")
	}
	if !rules.Expression().IsNull() {
		t.Error("default expression should be null")
	}
	if rules.Limit() != 0 || rules.Offset() != 0 {
		t.Error("default limit/offset should be zero")
	}
}
