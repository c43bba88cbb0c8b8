package query

import (
	"fmt"
	"strings"
)

// InvalidFieldError reports a filter or ordering clause referencing
// fields that are not declared on the target entity type.
type InvalidFieldError struct {
	Entity string
	Fields []string
}

func (e *InvalidFieldError) Error() string {
	return fmt.Sprintf("fields [%s] not valid for entity type %s",
		strings.Join(e.Fields, ", "), e.Entity)
}

// InvalidQueryError reports a structurally legal filter the backend
// rejects: duplicate comparisons on one field, or a logical operator
// other than AND.
type InvalidQueryError struct {
	Reason string
}

func (e *InvalidQueryError) Error() string {
	return e.Reason
}

// MalformedSelectionError reports a sub-selection that is neither a
// nested Query nor an entity type. Always a defect in the caller.
type MalformedSelectionError struct {
	Sub any
}

func (e *MalformedSelectionError) Error() string {
	return fmt.Sprintf("sub-selection must be a *Query or *schema.Entity, got %T", e.Sub)
}
