// Package query turns typed selections, filter trees and orderings into
// GraphQL request text with bound parameters, validates them against the
// entity catalog, and provides a constructor per service operation.
package query

import (
	"strings"

	"github.com/annolab/annolab-go/annolab/comparison"
	"github.com/annolab/annolab-go/annolab/schema"
)

// opSuffix tags every operation name; the backend routes and meters SDK
// traffic by it.
const opSuffix = "PyApi"

// comparisonSuffix maps a comparison operator to the suffix appended to
// the field wire name in a where clause.
var comparisonSuffix = map[comparison.Op]string{
	comparison.OpEq: "",
	comparison.OpNe: "_not",
	comparison.OpLt: "_lt",
	comparison.OpGt: "_gt",
	comparison.OpLe: "_lte",
	comparison.OpGe: "_gte",
}

// Query is the transient build-time structure describing one selection.
// Sub is either a nested *Query or a *schema.Entity, in which case all
// of the entity's fields are selected. A Query is created per request,
// formatted once, and discarded.
type Query struct {
	What     string
	Sub      any
	Where    comparison.Visitable
	Paginate bool
	OrderBy  *schema.OrderBy
}

// Results renders the space-joined selection of every field of the entity.
func Results(entity *schema.Entity) string {
	fields := entity.Fields()
	names := make([]string, 0, len(fields))
	for _, f := range fields {
		names = append(names, f.GraphQLName())
	}
	return strings.Join(names, " ")
}

// Format renders the query body without the operation wrapper and
// returns it with the accumulated parameter table.
func (q *Query) Format() (string, *Params, error) {
	params := &Params{}
	text, err := q.format(params)
	if err != nil {
		return "", nil, err
	}
	return text, params, nil
}

// FormatTop renders the complete operation: the "query" keyword, the
// suffixed operation name, the parameter declaration and the body. The
// parameter table is flattened to the plain name-to-value mapping handed
// to the transport.
func (q *Query) FormatTop(name string) (string, map[string]any, error) {
	body, params, err := q.Format()
	if err != nil {
		return "", nil, err
	}
	text := "query " + name + opSuffix + params.Declaration() + "{" + body + "}"
	return text, params.Values(), nil
}

func (q *Query) format(params *Params) (string, error) {
	sub, err := q.formatSub(params)
	if err != nil {
		return "", err
	}
	clauses, err := q.formatClauses(params)
	if err != nil {
		return "", err
	}
	return q.What + clauses + "{" + sub + "}", nil
}

func (q *Query) formatSub(params *Params) (string, error) {
	switch sub := q.Sub.(type) {
	case *Query:
		return sub.format(params)
	case *schema.Entity:
		return Results(sub), nil
	default:
		return "", &MalformedSelectionError{Sub: q.Sub}
	}
}

// formatClauses renders the parenthesized clause list: filter, then
// pagination, then ordering, empty clauses omitted. Pagination renders
// printf int placeholders; the caller fills them at execution time.
func (q *Query) formatClauses(params *Params) (string, error) {
	var clauses []string
	if q.Where != nil {
		v := &whereVisitor{params: params}
		if err := q.Where.Accept(v); err != nil {
			return "", err
		}
		clauses = append(clauses, "where: "+v.text)
	}
	if q.Paginate {
		clauses = append(clauses, "skip: %d first: %d")
	}
	if q.OrderBy != nil {
		clauses = append(clauses, "orderBy: "+q.OrderBy.Field.GraphQLName()+"_"+string(q.OrderBy.Order))
	}
	if len(clauses) == 0 {
		return "", nil
	}
	return "(" + strings.Join(clauses, " ") + ")", nil
}

// whereVisitor walks a filter tree depth-first, accumulating wire text
// and binding one parameter per Comparison leaf.
type whereVisitor struct {
	text   string
	params *Params
}

func (v *whereVisitor) VisitComparison(n comparison.Comparison) error {
	name := v.params.Add(n.Value(), n.Attribute())
	v.text += "{" + n.Attribute().GraphQLName() + comparisonSuffix[n.Op()] + ": $" + name + "}"
	return nil
}

func (v *whereVisitor) VisitLogical(n comparison.LogicalExpression) error {
	if n.Op() == comparison.LogicalNot {
		v.text += "{NOT: ["
		if err := n.First().Accept(v); err != nil {
			return err
		}
		v.text += "]}"
		return nil
	}
	v.text += "{" + string(n.Op()) + ": ["
	if err := n.First().Accept(v); err != nil {
		return err
	}
	v.text += ", "
	if err := n.Second().Accept(v); err != nil {
		return err
	}
	v.text += "]}"
	return nil
}
