package query

import (
	"fmt"

	"github.com/annolab/annolab-go/annolab/comparison"
	"github.com/annolab/annolab-go/annolab/schema"
)

// CheckWhere verifies a filter tree against an entity type: every
// comparison must reference a declared field (the shared soft-delete
// marker is always permitted), no field may appear in more than one
// comparison, and AND is the only logical operator the backend accepts.
// A nil filter is legal.
func CheckWhere(entity *schema.Entity, where comparison.Visitable) error {
	if where == nil {
		return nil
	}

	var attrs []comparison.Attribute
	for _, a := range comparison.Fields(where) {
		if a == comparison.Attribute(schema.Deleted) {
			continue // soft-delete marker, always permitted
		}
		attrs = append(attrs, a)
	}

	var invalid []string
	for _, a := range attrs {
		f, ok := a.(*schema.Field)
		if !ok || !entity.HasField(f) {
			invalid = append(invalid, a.GraphQLName())
		}
	}
	if len(invalid) > 0 {
		return &InvalidFieldError{Entity: entity.Name(), Fields: invalid}
	}

	seen := make(map[comparison.Attribute]bool, len(attrs))
	for _, a := range attrs {
		if seen[a] {
			return &InvalidQueryError{Reason: fmt.Sprintf(
				"where clause contains multiple comparisons for field %q", a.GraphQLName())}
		}
		seen[a] = true
	}

	for _, op := range comparison.Operators(where) {
		if op != comparison.LogicalAnd {
			return &InvalidQueryError{Reason: fmt.Sprintf(
				"only AND logical ops are allowed in a where clause, found %s", op)}
		}
	}
	return nil
}

// CheckOrderBy verifies that the ordering field is declared on the
// entity type. A nil ordering is legal.
func CheckOrderBy(entity *schema.Entity, orderBy *schema.OrderBy) error {
	if orderBy == nil {
		return nil
	}
	if !entity.HasField(orderBy.Field) {
		return &InvalidFieldError{Entity: entity.Name(), Fields: []string{orderBy.Field.GraphQLName()}}
	}
	return nil
}
