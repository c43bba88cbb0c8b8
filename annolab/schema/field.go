// Package schema describes the entity types exposed by the labeling
// service: their scalar fields, their relationships and the static
// catalog of known entities. All descriptors are built during package
// initialization and are read-only afterwards, so concurrent readers
// need no synchronization.
package schema

import (
	"github.com/annolab/annolab-go/annolab/comparison"
	"github.com/annolab/annolab-go/annolab/utils"
)

// FieldType tags the scalar type of a field. The value is the GraphQL
// type name used in parameter declarations.
type FieldType string

const (
	TypeID       FieldType = "ID"
	TypeString   FieldType = "String"
	TypeInt      FieldType = "Int"
	TypeFloat    FieldType = "Float"
	TypeBoolean  FieldType = "Boolean"
	TypeDateTime FieldType = "DateTime"
	TypeEnum     FieldType = "Enum"
)

// Field identifies one scalar attribute of an entity type.
type Field struct {
	name        string
	graphqlName string
	fieldType   FieldType
}

func newField(t FieldType, name string, graphqlName []string) *Field {
	gql := utils.CamelCase(name)
	if len(graphqlName) > 0 {
		gql = graphqlName[0]
	}
	return &Field{
		name:        name,
		graphqlName: gql,
		fieldType:   t,
	}
}

// ID declares an ID field. The wire name defaults to the camelCased
// logical name; pass an explicit one to override.
func ID(name string, graphqlName ...string) *Field {
	return newField(TypeID, name, graphqlName)
}

func String(name string, graphqlName ...string) *Field {
	return newField(TypeString, name, graphqlName)
}

func Int(name string, graphqlName ...string) *Field {
	return newField(TypeInt, name, graphqlName)
}

func Float(name string, graphqlName ...string) *Field {
	return newField(TypeFloat, name, graphqlName)
}

func Boolean(name string, graphqlName ...string) *Field {
	return newField(TypeBoolean, name, graphqlName)
}

func DateTime(name string, graphqlName ...string) *Field {
	return newField(TypeDateTime, name, graphqlName)
}

func Enum(name string, graphqlName ...string) *Field {
	return newField(TypeEnum, name, graphqlName)
}

func (f *Field) Name() string {
	return f.name
}

func (f *Field) GraphQLName() string {
	return f.graphqlName
}

func (f *Field) Type() FieldType {
	return f.fieldType
}

// Comparison constructors.

func (f *Field) Eq(value any) comparison.Comparison {
	return comparison.NewComparison(f, comparison.OpEq, value)
}

func (f *Field) Ne(value any) comparison.Comparison {
	return comparison.NewComparison(f, comparison.OpNe, value)
}

func (f *Field) Lt(value any) comparison.Comparison {
	return comparison.NewComparison(f, comparison.OpLt, value)
}

func (f *Field) Gt(value any) comparison.Comparison {
	return comparison.NewComparison(f, comparison.OpGt, value)
}

func (f *Field) Le(value any) comparison.Comparison {
	return comparison.NewComparison(f, comparison.OpLe, value)
}

func (f *Field) Ge(value any) comparison.Comparison {
	return comparison.NewComparison(f, comparison.OpGe, value)
}

// Order is a sort direction. The value is the wire spelling appended to
// the field name in an orderBy clause.
type Order string

const (
	OrderAsc  Order = "ASC"
	OrderDesc Order = "DESC"
)

// OrderBy pairs a field with a sort direction.
type OrderBy struct {
	Field *Field
	Order Order
}

func (f *Field) Asc() *OrderBy {
	return &OrderBy{Field: f, Order: OrderAsc}
}

func (f *Field) Desc() *OrderBy {
	return &OrderBy{Field: f, Order: OrderDesc}
}
