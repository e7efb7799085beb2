// Package parsing parses model definition files into schema metadata.
//
// The language is a flat list of model blocks:
//
//	model User {
//	    id      int
//	    name    string  @unique @notnull
//	    karma   float
//	    created datetime
//	}
//
// Field types are the abstract schema types (int, string, float, bool,
// bytes, datetime). Supported field attributes are @unique, @notnull
// and @table("name") on the model line to override the table name.
package parsing

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"

	"github.com/yeajay0001/dquest/schema"
)

// File is the raw parse tree for one model definition file.
type File struct {
	Pos    lexer.Position
	Models []*ModelDecl `parser:"@@*"`
}

// ModelDecl is a single model block.
type ModelDecl struct {
	Pos    lexer.Position
	Name   string       `parser:"'model' @Ident"`
	Attrs  []*AttrDecl  `parser:"@@*"`
	Fields []*FieldDecl `parser:"'{' @@* '}'"`
}

// FieldDecl is one field line inside a model block.
type FieldDecl struct {
	Pos   lexer.Position
	Name  string      `parser:"@Ident"`
	Type  string      `parser:"@Ident"`
	Attrs []*AttrDecl `parser:"@@*"`
}

// AttrDecl is an @attribute, optionally with a single string argument.
type AttrDecl struct {
	Pos  lexer.Position
	Name string  `parser:"Attr @Ident"`
	Arg  *string `parser:"('(' @String ')')?"`
}

var parser = participle.MustBuild[File](
	participle.Lexer(modelLexer),
	participle.Elide("Whitespace", "Newline", "Comment"),
	participle.Unquote("String"),
)

// Parse parses a model definition from an io.Reader.
func Parse(filename string, r io.Reader) ([]*schema.StaticMeta, error) {
	file, err := parser.Parse(filename, r)
	if err != nil {
		return nil, err
	}
	return convert(file)
}

// ParseString parses a model definition from a string.
func ParseString(filename, input string) ([]*schema.StaticMeta, error) {
	return Parse(filename, strings.NewReader(input))
}

// ParseFile parses a model definition file from disk.
func ParseFile(path string) ([]*schema.StaticMeta, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Parse(path, f)
}

func convert(file *File) ([]*schema.StaticMeta, error) {
	metas := make([]*schema.StaticMeta, 0, len(file.Models))
	seen := make(map[string]bool)

	for _, decl := range file.Models {
		meta, err := convertModel(decl)
		if err != nil {
			return nil, err
		}
		if seen[meta.Table] {
			return nil, fmt.Errorf("%s: duplicate model table %q", decl.Pos, meta.Table)
		}
		seen[meta.Table] = true
		metas = append(metas, meta)
	}
	return metas, nil
}

func convertModel(decl *ModelDecl) (*schema.StaticMeta, error) {
	meta := &schema.StaticMeta{
		Table: decl.Name,
		Class: decl.Name,
	}

	for _, attr := range decl.Attrs {
		switch attr.Name {
		case "table":
			if attr.Arg == nil {
				return nil, fmt.Errorf("%s: @table requires a name argument", attr.Pos)
			}
			meta.Table = *attr.Arg
		default:
			return nil, fmt.Errorf("%s: unknown model attribute @%s", attr.Pos, attr.Name)
		}
	}

	names := make(map[string]bool)
	for _, fd := range decl.Fields {
		field, err := convertField(fd)
		if err != nil {
			return nil, err
		}
		if names[field.Name] {
			return nil, fmt.Errorf("%s: duplicate field %q in model %s", fd.Pos, field.Name, decl.Name)
		}
		names[field.Name] = true
		meta.FieldList = append(meta.FieldList, field)
	}

	if len(meta.FieldList) == 0 {
		return nil, fmt.Errorf("%s: model %s has no fields", decl.Pos, decl.Name)
	}
	return meta, nil
}

func convertField(decl *FieldDecl) (schema.Field, error) {
	field := schema.Field{
		Name: decl.Name,
		Type: schema.FieldType(decl.Type),
	}
	if !field.Type.Valid() {
		return schema.Field{}, fmt.Errorf("%s: unknown field type %q", decl.Pos, decl.Type)
	}

	for _, attr := range decl.Attrs {
		switch attr.Name {
		case "unique":
			field.Unique = true
		case "notnull":
			field.NotNull = true
		default:
			return schema.Field{}, fmt.Errorf("%s: unknown field attribute @%s", attr.Pos, attr.Name)
		}
	}
	return field, nil
}
