package schema

import (
	"github.com/jinzhu/inflection"
	"github.com/pkg/errors"

	"github.com/annolab/annolab-go/annolab/utils"
)

// Cardinality distinguishes to-one from to-many relationships.
type Cardinality string

const (
	ToOne  Cardinality = "ToOne"
	ToMany Cardinality = "ToMany"
)

// Relationship identifies a link from one entity type to another. The
// destination is referenced by entity name so mutually related entities
// can be declared in any order; it is resolved through the catalog on
// first use.
type Relationship struct {
	graphqlName string
	cardinality Cardinality
	destination string
	cache       bool
}

// RelToOne declares a to-one relationship to the named entity type. The
// wire name defaults to the camelCased destination name.
func RelToOne(destination string, graphqlName ...string) *Relationship {
	gql := utils.CamelCase(destination)
	if len(graphqlName) > 0 {
		gql = graphqlName[0]
	}
	return &Relationship{
		graphqlName: gql,
		cardinality: ToOne,
		destination: destination,
	}
}

// RelToMany declares a to-many relationship to the named entity type.
// The wire name defaults to the pluralized camelCased destination name.
func RelToMany(destination string, graphqlName ...string) *Relationship {
	gql := inflection.Plural(utils.CamelCase(destination))
	if len(graphqlName) > 0 {
		gql = graphqlName[0]
	}
	return &Relationship{
		graphqlName: gql,
		cardinality: ToMany,
		destination: destination,
	}
}

// Cached marks the related object as safe to cache client-side. Only
// meaningful for immutable destinations (e.g. a label's data row).
func (r *Relationship) Cached() *Relationship {
	r.cache = true
	return r
}

func (r *Relationship) GraphQLName() string {
	return r.graphqlName
}

func (r *Relationship) Cardinality() Cardinality {
	return r.cardinality
}

func (r *Relationship) Cache() bool {
	return r.cache
}

// Destination resolves the destination entity type through the catalog.
func (r *Relationship) Destination() (*Entity, error) {
	dest, err := Named(r.destination)
	if err != nil {
		return nil, errors.Wrapf(err, "relationship %q", r.graphqlName)
	}
	return dest, nil
}
