package query

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/annolab/annolab-go/annolab/comparison"
	"github.com/annolab/annolab-go/annolab/schema"
)

func TestCheckWhereNilIsLegal(t *testing.T) {
	assert.NoError(t, CheckWhere(schema.Project, nil))
}

func TestCheckWhereForeignField(t *testing.T) {
	datasetName, ok := schema.Dataset.Field("name")
	require.True(t, ok)

	err := CheckWhere(schema.Project, datasetName.Eq("x"))

	var invalid *InvalidFieldError
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, "Project", invalid.Entity)
	assert.Equal(t, []string{"name"}, invalid.Fields)
}

func TestCheckWhereRejectsOrAndNot(t *testing.T) {
	name, _ := schema.Dataset.Field("name")
	description, _ := schema.Dataset.Field("description")

	var invalid *InvalidQueryError
	err := CheckWhere(schema.Dataset, comparison.Or(name.Eq("a"), description.Eq("b")))
	require.ErrorAs(t, err, &invalid)

	err = CheckWhere(schema.Dataset, comparison.Not(name.Eq("a")))
	require.ErrorAs(t, err, &invalid)
}

func TestCheckWhereAcceptsAnd(t *testing.T) {
	name, _ := schema.Dataset.Field("name")
	description, _ := schema.Dataset.Field("description")
	created, _ := schema.Dataset.Field("created_at")

	where := comparison.And(name.Eq("a"), description.Eq("b"), created.Gt("2024-01-01"))
	assert.NoError(t, CheckWhere(schema.Dataset, where))
}

func TestCheckWhereRejectsDuplicateField(t *testing.T) {
	name, _ := schema.Dataset.Field("name")

	err := CheckWhere(schema.Dataset, comparison.And(name.Eq("a"), name.Ne("b")))

	var invalid *InvalidQueryError
	require.ErrorAs(t, err, &invalid)
	assert.Contains(t, invalid.Reason, "multiple comparisons")
}

func TestCheckWhereAlwaysPermitsDeletedMarker(t *testing.T) {
	name, _ := schema.Dataset.Field("name")

	assert.NoError(t, CheckWhere(schema.Dataset, schema.Deleted.Eq(false)))
	assert.NoError(t, CheckWhere(schema.Dataset,
		comparison.And(name.Eq("a"), schema.Deleted.Eq(false))))
}

func TestCheckOrderBy(t *testing.T) {
	assert.NoError(t, CheckOrderBy(schema.Dataset, nil))

	created, _ := schema.Dataset.Field("created_at")
	assert.NoError(t, CheckOrderBy(schema.Dataset, created.Asc()))

	score, ok := schema.Review.Field("score")
	require.True(t, ok)
	err := CheckOrderBy(schema.Dataset, score.Desc())

	var invalid *InvalidFieldError
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, "Dataset", invalid.Entity)
}
