package query

import (
	"errors"
	"testing"

	"github.com/annolab/annolab-go/annolab/comparison"
	"github.com/annolab/annolab-go/annolab/schema"
)

func datasetField(t *testing.T, name string) *schema.Field {
	t.Helper()
	f, ok := schema.Dataset.Field(name)
	if !ok {
		t.Fatalf("Dataset has no field %q", name)
	}
	return f
}

func TestFormatTopNoFilter(t *testing.T) {
	text, values, err := GetSingle(schema.Project, "")
	if err != nil {
		t.Fatalf("GetSingle failed: %v", err)
	}

	expected := "query GetProjectPyApi{project{id name description updatedAt createdAt setupComplete lastActivityTime autoAuditNumberOfLabels autoAuditPercentage}}"
	if text != expected {
		t.Errorf("Expected query: %s, got: %s", expected, text)
	}
	if len(values) != 0 {
		t.Errorf("Expected empty variables, got %v", values)
	}
}

func TestFormatTopWithIDFilter(t *testing.T) {
	text, values, err := GetAll(schema.Dataset, schema.UID.Eq("abc"))
	if err != nil {
		t.Fatalf("GetAll failed: %v", err)
	}

	expected := "query GetDatasetsPyApi($param_0: ID!){datasets(where: {id: $param_0} skip: %d first: %d){id name description updatedAt createdAt}}"
	if text != expected {
		t.Errorf("Expected query: %s, got: %s", expected, text)
	}
	if values["param_0"] != "abc" {
		t.Errorf("Expected param_0=abc, got %v", values)
	}
}

func TestComparisonOperatorSuffixes(t *testing.T) {
	created := datasetField(t, "created_at")

	cases := []struct {
		node comparison.Comparison
		want string
	}{
		{created.Eq("v"), "{createdAt: $param_0}"},
		{created.Ne("v"), "{createdAt_not: $param_0}"},
		{created.Lt("v"), "{createdAt_lt: $param_0}"},
		{created.Gt("v"), "{createdAt_gt: $param_0}"},
		{created.Le("v"), "{createdAt_lte: $param_0}"},
		{created.Ge("v"), "{createdAt_gte: $param_0}"},
	}
	for _, c := range cases {
		q := &Query{What: "datasets", Sub: schema.Dataset, Where: c.node}
		text, _, err := q.Format()
		if err != nil {
			t.Fatalf("Format failed: %v", err)
		}
		expected := "datasets(where: " + c.want + "){id name description updatedAt createdAt}"
		if text != expected {
			t.Errorf("Expected %s, got %s", expected, text)
		}
	}
}

func TestCompositeWhereRendering(t *testing.T) {
	name := datasetField(t, "name")
	description := datasetField(t, "description")

	cases := []struct {
		where comparison.Visitable
		want  string
	}{
		{
			comparison.And(name.Eq("a"), description.Eq("b")),
			"where: {AND: [{name: $param_0}, {description: $param_1}]}",
		},
		{
			comparison.Or(name.Eq("a"), description.Eq("b")),
			"where: {OR: [{name: $param_0}, {description: $param_1}]}",
		},
		{
			comparison.Not(name.Eq("a")),
			"where: {NOT: [{name: $param_0}]}",
		},
	}
	for _, c := range cases {
		q := &Query{What: "datasets", Sub: schema.Dataset, Where: c.where}
		text, _, err := q.Format()
		if err != nil {
			t.Fatalf("Format failed: %v", err)
		}
		expected := "datasets(" + c.want + "){id name description updatedAt createdAt}"
		if text != expected {
			t.Errorf("Expected %s, got %s", expected, text)
		}
	}
}

func TestClauseOrderingAndOmission(t *testing.T) {
	name := datasetField(t, "name")
	created := datasetField(t, "created_at")

	q := &Query{
		What:     "datasets",
		Sub:      schema.Dataset,
		Where:    name.Eq("a"),
		Paginate: true,
		OrderBy:  created.Desc(),
	}
	text, _, err := q.Format()
	if err != nil {
		t.Fatalf("Format failed: %v", err)
	}
	expected := "datasets(where: {name: $param_0} skip: %d first: %d orderBy: createdAt_DESC){id name description updatedAt createdAt}"
	if text != expected {
		t.Errorf("Expected %s, got %s", expected, text)
	}

	bare := &Query{What: "datasets", Sub: schema.Dataset}
	text, _, err = bare.Format()
	if err != nil {
		t.Fatalf("Format failed: %v", err)
	}
	expected = "datasets{id name description updatedAt createdAt}"
	if text != expected {
		t.Errorf("Expected no clause parenthesis, got %s", text)
	}
}

func TestMalformedSelection(t *testing.T) {
	q := &Query{What: "datasets", Sub: 42}
	_, _, err := q.Format()

	var malformed *MalformedSelectionError
	if !errors.As(err, &malformed) {
		t.Fatalf("Expected MalformedSelectionError, got %v", err)
	}
}

func TestNestedParamNamesNeverCollide(t *testing.T) {
	name := datasetField(t, "name")
	rel, ok := schema.Project.Relationship("datasets")
	if !ok {
		t.Fatal("Project has no datasets relationship")
	}

	text, values, err := GetRelated(schema.Project, "proj_1", rel, name.Eq("training"), nil)
	if err != nil {
		t.Fatalf("GetRelated failed: %v", err)
	}

	// The sub-selection binds param_0; the parent identity filter binds
	// param_1 from the same shared table.
	if values["param_0"] != "training" || values["param_1"] != "proj_1" {
		t.Errorf("Expected param_0=training param_1=proj_1, got %v", values)
	}
	expected := "query GetProjectDatasetsPyApi($param_0: String!, $param_1: ID!){project(where: {id: $param_1}){datasets(where: {name: $param_0} skip: %d first: %d){id name description updatedAt createdAt}}}"
	if text != expected {
		t.Errorf("Expected %s, got %s", expected, text)
	}
}

func TestRoundTripOneParamPerLeaf(t *testing.T) {
	name := datasetField(t, "name")
	description := datasetField(t, "description")
	where := comparison.And(name.Eq("a"), description.Eq("b"))

	if err := CheckWhere(schema.Dataset, where); err != nil {
		t.Fatalf("CheckWhere failed: %v", err)
	}

	q := &Query{What: "datasets", Sub: schema.Dataset, Where: where}
	_, params, err := q.Format()
	if err != nil {
		t.Fatalf("Format failed: %v", err)
	}

	leaves := comparison.Fields(where)
	if params.Len() != len(leaves) {
		t.Fatalf("Expected %d params, got %d", len(leaves), params.Len())
	}
	values := params.Values()
	for _, e := range params.Entries() {
		if values[e.Name] != e.Value {
			t.Errorf("Flattened value mismatch for %s: %v != %v", e.Name, values[e.Name], e.Value)
		}
	}
}

func TestParamDeclarationTypes(t *testing.T) {
	p := &Params{}
	p.Add("abc", schema.UID)
	p.Add("x", datasetField(t, "name"))
	rel, _ := schema.Project.Relationship("datasets")
	p.Add("ds_1", rel)

	expected := "($param_0: ID!, $param_1: String!, $param_2: ID!)"
	if got := p.Declaration(); got != expected {
		t.Errorf("Expected %s, got %s", expected, got)
	}
}
