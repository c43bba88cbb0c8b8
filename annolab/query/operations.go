package query

import (
	"github.com/jinzhu/inflection"
	"github.com/pkg/errors"

	"github.com/annolab/annolab-go/annolab/comparison"
	"github.com/annolab/annolab-go/annolab/schema"
	"github.com/annolab/annolab-go/annolab/utils"
)

// GetSingle builds the query fetching a single object of the entity
// type. uid may be empty for types with a default object (User and
// Organization), in which case no filter is attached.
func GetSingle(entity *schema.Entity, uid string) (string, map[string]any, error) {
	var where comparison.Visitable
	if uid != "" {
		where = schema.UID.Eq(uid)
	}
	q := &Query{
		What:  utils.CamelCase(entity.Name()),
		Sub:   entity,
		Where: where,
	}
	return q.FormatTop("Get" + entity.Name())
}

// GetAll builds the paginated query fetching every object of the entity
// type that matches the filter. The returned text carries the skip/first
// printf placeholders for the pagination layer.
func GetAll(entity *schema.Entity, where comparison.Visitable) (string, map[string]any, error) {
	if err := CheckWhere(entity, where); err != nil {
		return "", nil, err
	}
	q := &Query{
		What:     inflection.Plural(utils.CamelCase(entity.Name())),
		Sub:      entity,
		Where:    where,
		Paginate: true,
	}
	return q.FormatTop("Get" + inflection.Plural(entity.Name()))
}

// GetRelated builds the query fetching objects reachable from one source
// object through a relationship. The related selection is filterable and
// orderable against the destination type and, for to-many relationships,
// paginated; the whole thing nests under an identity filter on the
// source object.
func GetRelated(
	source *schema.Entity,
	sourceUID string,
	rel *schema.Relationship,
	where comparison.Visitable,
	orderBy *schema.OrderBy,
) (string, map[string]any, error) {
	dest, err := rel.Destination()
	if err != nil {
		return "", nil, errors.Wrap(err, "resolve relationship destination")
	}
	if err := CheckWhere(dest, where); err != nil {
		return "", nil, err
	}
	if err := CheckOrderBy(dest, orderBy); err != nil {
		return "", nil, err
	}
	sub := &Query{
		What:     rel.GraphQLName(),
		Sub:      dest,
		Where:    where,
		Paginate: rel.Cardinality() == schema.ToMany,
		OrderBy:  orderBy,
	}
	q := &Query{
		What:  utils.CamelCase(source.Name()),
		Sub:   sub,
		Where: schema.UID.Eq(sourceUID),
	}
	return q.FormatTop("Get" + source.Name() + utils.TitleCase(rel.GraphQLName()))
}
