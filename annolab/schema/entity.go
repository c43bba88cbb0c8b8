package schema

import "github.com/pkg/errors"

// Fields shared by every entity type. UID maps to the server-side "id"
// attribute. Deleted is the soft-delete marker; it is not part of any
// entity's declared field set but filters may always reference it.
var (
	UID     = ID("uid", "id")
	Deleted = Boolean("deleted")
)

// Entity describes one queryable entity type: its name as known to the
// service and its ordered field and relationship sets.
type Entity struct {
	name          string
	fields        []*Field
	relationships []*Relationship
}

var catalog = map[string]*Entity{}

// Declare registers an entity type with the catalog. Every entity
// carries the shared UID field first, followed by its declared fields.
// Declare is only called from package initialization; the catalog is
// read-only afterwards.
func Declare(name string, fields []*Field, relationships ...*Relationship) *Entity {
	e := &Entity{
		name:          name,
		fields:        append([]*Field{UID}, fields...),
		relationships: relationships,
	}
	catalog[name] = e
	return e
}

// Named looks up an entity type by name.
func Named(name string) (*Entity, error) {
	e, ok := catalog[name]
	if !ok {
		return nil, errors.Errorf("unknown entity type %q", name)
	}
	return e, nil
}

func (e *Entity) Name() string {
	return e.name
}

// Fields returns the entity's declared fields, UID included, in
// declaration order. Callers must not mutate the returned slice.
func (e *Entity) Fields() []*Field {
	return e.fields
}

func (e *Entity) Relationships() []*Relationship {
	return e.relationships
}

// Field looks up a declared field by its logical name.
func (e *Entity) Field(name string) (*Field, bool) {
	for _, f := range e.fields {
		if f.Name() == name {
			return f, true
		}
	}
	return nil, false
}

// Relationship looks up a declared relationship by its wire name.
func (e *Entity) Relationship(graphqlName string) (*Relationship, bool) {
	for _, r := range e.relationships {
		if r.GraphQLName() == graphqlName {
			return r, true
		}
	}
	return nil, false
}

// HasField reports whether f is one of the entity's declared fields.
// Descriptor identity, not name equality, is what counts: two entities
// may both declare a "name" field without sharing it.
func (e *Entity) HasField(f *Field) bool {
	for _, candidate := range e.fields {
		if candidate == f {
			return true
		}
	}
	return false
}
