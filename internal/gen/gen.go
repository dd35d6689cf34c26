// Package gen generates entity registrations and row types from a
// declarative YAML description. The emitted files match the shape of
// the hand-written entity package: one file per entity holding the
// struct, its schema registration and a collection constructor.
package gen

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/dave/jennifer/jen"
	"github.com/go-openapi/inflect"
	"gopkg.in/yaml.v3"
)

const (
	runtimePkg = "github.com/inhq/netsuite"
	schemaPkg  = "github.com/inhq/netsuite/schema"
	fieldPkg   = "github.com/inhq/netsuite/schema/field"
)

// Config holds the generator settings.
type Config struct {
	// Package is the package name of the generated files.
	Package string
	// Target is the directory the files are written to.
	Target string
}

// Option configures the generator.
type Option func(*Config) error

// WithPackage sets the package name of the generated files.
func WithPackage(pkg string) Option {
	return func(c *Config) error {
		if pkg == "" {
			return fmt.Errorf("gen: empty package name")
		}
		c.Package = pkg
		return nil
	}
}

// WithTarget sets the output directory.
func WithTarget(dir string) Option {
	return func(c *Config) error {
		if dir == "" {
			return fmt.Errorf("gen: empty target directory")
		}
		c.Target = dir
		return nil
	}
}

// NewConfig builds a Config from the given options.
func NewConfig(opts ...Option) (*Config, error) {
	c := &Config{Package: "entity", Target: "."}
	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// Spec is the root of a YAML entity description.
type Spec struct {
	Entities []*EntitySpec `yaml:"entities"`
}

// EntitySpec describes one entity to generate.
type EntitySpec struct {
	// Name is the entity name in PascalCase.
	Name string `yaml:"name"`
	// Table overrides the backing table name.
	Table string `yaml:"table,omitempty"`
	// Derives names another entity in the same spec whose fields are
	// inherited.
	Derives string       `yaml:"derives,omitempty"`
	Fields  []*FieldSpec `yaml:"fields"`
}

// FieldSpec describes one attribute of an entity.
type FieldSpec struct {
	// Name is the canonical snake_case attribute name.
	Name string `yaml:"name"`
	// Type is one of string, int, float, bool, date, ref.
	Type string `yaml:"type"`
	// Alias overrides the record-service attribute name.
	Alias string `yaml:"alias,omitempty"`
	// QLAlias overrides the query-service column name.
	QLAlias string `yaml:"ql_alias,omitempty"`
	// Context restricts the field to one service: "ql" or "rest".
	Context string `yaml:"context,omitempty"`
	// Fixed pins the field to a constant, marking it a subtype
	// discriminator.
	Fixed string `yaml:"fixed,omitempty"`
	// Ref names the row type a "ref" field resolves to. It defaults
	// to GenericItem.
	Ref string `yaml:"ref,omitempty"`
}

// Load reads and validates a YAML entity description.
func Load(path string) (*Spec, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("gen: read spec: %w", err)
	}
	spec := &Spec{}
	if err := yaml.Unmarshal(b, spec); err != nil {
		return nil, fmt.Errorf("gen: parse spec: %w", err)
	}
	if err := spec.validate(); err != nil {
		return nil, err
	}
	return spec, nil
}

func (s *Spec) validate() error {
	if len(s.Entities) == 0 {
		return fmt.Errorf("gen: spec declares no entities")
	}
	names := make(map[string]bool, len(s.Entities))
	for _, e := range s.Entities {
		if e.Name == "" {
			return fmt.Errorf("gen: entity with empty name")
		}
		if names[e.Name] {
			return fmt.Errorf("gen: duplicate entity %q", e.Name)
		}
		names[e.Name] = true
	}
	for _, e := range s.Entities {
		if e.Derives != "" && !names[e.Derives] {
			return fmt.Errorf("gen: entity %s derives from unknown entity %q", e.Name, e.Derives)
		}
		seen := make(map[string]bool, len(e.Fields))
		for _, f := range e.Fields {
			if f.Name == "" {
				return fmt.Errorf("gen: entity %s: field with empty name", e.Name)
			}
			if seen[f.Name] {
				return fmt.Errorf("gen: entity %s: duplicate field %q", e.Name, f.Name)
			}
			seen[f.Name] = true
			if _, ok := fieldKinds[f.Type]; !ok {
				return fmt.Errorf("gen: entity %s: field %s has unknown type %q", e.Name, f.Name, f.Type)
			}
			switch f.Context {
			case "", "ql", "rest":
			default:
				return fmt.Errorf("gen: entity %s: field %s has unknown context %q", e.Name, f.Name, f.Context)
			}
		}
	}
	return nil
}

// fieldKinds maps spec types to the field package constructor and the
// Go type of the struct field.
var fieldKinds = map[string]struct {
	ctor   string
	goType func(f *FieldSpec) jen.Code
}{
	"string": {"String", func(*FieldSpec) jen.Code { return jen.String() }},
	"int":    {"Int", func(*FieldSpec) jen.Code { return jen.Int() }},
	"float":  {"Float", func(*FieldSpec) jen.Code { return jen.Float64() }},
	"bool":   {"Bool", func(*FieldSpec) jen.Code { return jen.Bool() }},
	"date":   {"Date", func(*FieldSpec) jen.Code { return jen.String() }},
	"ref": {"Ref", func(f *FieldSpec) jen.Code {
		target := f.Ref
		if target == "" {
			target = "GenericItem"
		}
		return jen.Qual(runtimePkg, "Ref").Index(jen.Id(target))
	}},
}

// Generate writes one file per entity into the target directory.
func Generate(spec *Spec, cfg *Config) error {
	if err := os.MkdirAll(cfg.Target, 0o755); err != nil {
		return fmt.Errorf("gen: create target directory: %w", err)
	}
	for _, e := range spec.Entities {
		f, err := entityFile(e, cfg.Package)
		if err != nil {
			return err
		}
		name := filepath.Join(cfg.Target, fileName(e.Name))
		if err := f.Save(name); err != nil {
			return fmt.Errorf("gen: write %s: %w", name, err)
		}
	}
	return nil
}

// entityFile renders the struct, schema registration and collection
// constructor for one entity.
func entityFile(e *EntitySpec, pkg string) (*jen.File, error) {
	f := jen.NewFile(pkg)
	f.HeaderComment("Code generated by nsgen. DO NOT EDIT.")

	fields := make([]jen.Code, 0, len(e.Fields))
	for _, fs := range e.Fields {
		if fs.Context == "ql" && fs.Fixed != "" {
			continue // discriminators never surface on the row type
		}
		fields = append(fields, jen.Id(pascal(fs.Name)).Add(fieldKinds[fs.Type].goType(fs)).
			Tag(map[string]string{"json": fs.Name + ",omitempty"}))
	}
	f.Commentf("%s is a NetSuite %s record.", e.Name, inflect.Humanize(fileBase(e.Name)))
	f.Type().Id(e.Name).Struct(fields...)

	decls := make([]jen.Code, 0, len(e.Fields))
	for _, fs := range e.Fields {
		decls = append(decls, fieldDecl(fs))
	}
	schemaVar := e.Name + "Schema"
	f.Commentf("%s registers the %s record.", schemaVar, inflect.Humanize(fileBase(e.Name)))
	decl := f.Var().Id(schemaVar).Op("=")
	switch {
	case e.Derives != "":
		decl.Id(e.Derives + "Schema").Dot("Derive").Call(append([]jen.Code{jen.Lit(e.Name)}, decls...)...)
	default:
		decl.Qual(schemaPkg, "New").Call(append([]jen.Code{jen.Lit(e.Name)}, decls...)...)
	}
	if e.Table != "" {
		decl.Dot("Table").Call(jen.Lit(e.Table))
	}

	plural := inflect.Pluralize(e.Name)
	f.Commentf("%s returns the %s collection for the given client.", plural, inflect.Humanize(fileBase(e.Name)))
	f.Func().Id(plural).
		Params(jen.Id("c").Op("*").Qual(runtimePkg, "Client")).
		Op("*").Qual(runtimePkg, "Collection").Index(jen.Id(e.Name)).
		Block(jen.Return(
			jen.Qual(runtimePkg, "NewCollection").Index(jen.Id(e.Name)).
				Call(jen.Id("c"), jen.Id(schemaVar)),
		))
	return f, nil
}

// fieldDecl renders one field constructor chain, e.g.
// field.String("record_type").Alias("recordType").QLOnly().Fixed("invoice").
func fieldDecl(fs *FieldSpec) jen.Code {
	stmt := jen.Qual(fieldPkg, fieldKinds[fs.Type].ctor).Call(jen.Lit(fs.Name))
	if fs.Alias != "" {
		stmt = stmt.Dot("Alias").Call(jen.Lit(fs.Alias))
	}
	if fs.QLAlias != "" {
		stmt = stmt.Dot("QLAliasOverride").Call(jen.Lit(fs.QLAlias))
	}
	switch fs.Context {
	case "ql":
		stmt = stmt.Dot("QLOnly").Call()
	case "rest":
		stmt = stmt.Dot("RestOnly").Call()
	}
	if fs.Fixed != "" {
		stmt = stmt.Dot("Fixed").Call(jen.Lit(fs.Fixed))
	}
	return stmt
}

// pascal converts a snake_case attribute name to an exported Go
// identifier, keeping initialisms like id upper-cased.
func pascal(name string) string {
	s := inflect.Camelize(name)
	for _, init := range []string{"Id", "Url", "Api", "Json"} {
		if strings.HasSuffix(s, init) {
			s = s[:len(s)-len(init)] + strings.ToUpper(init)
		}
	}
	return s
}

// fileBase converts an entity name to its snake_case stem.
func fileBase(name string) string {
	return inflect.Underscore(name)
}

// fileName returns the output file name for an entity.
func fileName(name string) string {
	return fileBase(name) + ".go"
}
