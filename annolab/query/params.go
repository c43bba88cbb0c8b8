package query

import (
	"fmt"
	"strings"

	"github.com/annolab/annolab-go/annolab/comparison"
	"github.com/annolab/annolab-go/annolab/schema"
)

// Param is one bound query variable together with the attribute it
// originated from. The attribute decides the declared GraphQL type.
type Param struct {
	Name  string
	Value any
	Attr  comparison.Attribute
}

// Params collects variables in insertion order while a query is being
// formatted. Insertion order drives both the textual declaration order
// and the uniqueness of generated names: a single Params instance is
// shared across nested sub-queries, so "param_<n>" never collides.
type Params struct {
	entries []Param
}

// Add allocates the next generated parameter name for value and returns it.
func (p *Params) Add(value any, attr comparison.Attribute) string {
	name := fmt.Sprintf("param_%d", len(p.entries))
	p.AddNamed(name, value, attr)
	return name
}

// AddNamed records a parameter under an explicit name. Used by mutation
// constructors whose parameter names mirror the field wire names.
func (p *Params) AddNamed(name string, value any, attr comparison.Attribute) {
	p.entries = append(p.entries, Param{Name: name, Value: value, Attr: attr})
}

func (p *Params) Len() int {
	return len(p.entries)
}

func (p *Params) Entries() []Param {
	return p.entries
}

// Declaration renders the parameter declaration prefix,
// "($name: Type!, ...)", or "" when no parameters were bound. Fields
// declare their own scalar type; relationship-derived parameters are IDs.
func (p *Params) Declaration() string {
	if len(p.entries) == 0 {
		return ""
	}
	decls := make([]string, 0, len(p.entries))
	for _, e := range p.entries {
		decls = append(decls, fmt.Sprintf("$%s: %s!", e.Name, paramType(e.Attr)))
	}
	return "(" + strings.Join(decls, ", ") + ")"
}

// Values flattens the table to the name-to-value mapping sent alongside
// the query text.
func (p *Params) Values() map[string]any {
	values := make(map[string]any, len(p.entries))
	for _, e := range p.entries {
		values[e.Name] = e.Value
	}
	return values
}

func paramType(attr comparison.Attribute) string {
	if f, ok := attr.(*schema.Field); ok {
		return string(f.Type())
	}
	return string(schema.TypeID)
}
