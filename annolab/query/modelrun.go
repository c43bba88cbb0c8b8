package query

import (
	"fmt"

	"github.com/pkg/errors"

	"github.com/annolab/annolab-go/annolab/schema"
)

// RegisterModelRunLabelsMutation is the selection name of the label
// registration task mutation; the transport layer polls on it.
const RegisterModelRunLabelsMutation = "createMEAModelRunLabelRegistrationTask"

// RegisterModelRunLabels builds the mutation starting the asynchronous
// label registration task for a model run.
func RegisterModelRunLabels(modelRunUID string, labelIDs []string) (string, map[string]any, error) {
	if len(labelIDs) == 0 {
		return "", nil, errors.New("must provide at least one label id")
	}
	text := fmt.Sprintf("mutation %sByApi($modelRunId: ID!, $labelIds: [ID!]!){%s(where: {id: $modelRunId}, data: {labelIds: $labelIds})}",
		RegisterModelRunLabelsMutation, RegisterModelRunLabelsMutation)
	return text, map[string]any{
		"modelRunId": modelRunUID,
		"labelIds":   labelIDs,
	}, nil
}

// AnnotationGroups builds the cursor-paginated query fetching a model
// run's annotation groups. The $from and $first variables are bound by
// the pagination layer page by page.
func AnnotationGroups(modelRunUID string) (string, map[string]any) {
	text := fmt.Sprintf("query modelRun%s($modelRunId: ID!, $from: String, $first: Int){"+
		"annotationGroups(where: {modelRunId: {id: $modelRunId}}, after: $from, first: $first)"+
		"{nodes{%s},pageInfo{endCursor}}}",
		opSuffix, Results(schema.AnnotationGroup))
	return text, map[string]any{"modelRunId": modelRunUID}
}

// DeleteModelRun builds the mutation deleting one model run.
func DeleteModelRun(modelRunUID string) (string, map[string]any) {
	text := fmt.Sprintf("mutation DeleteModelRun%s($ids: ID!){deleteModelRuns(where: {ids: [$ids]})}", opSuffix)
	return text, map[string]any{"ids": modelRunUID}
}

// DeleteAnnotationGroups builds the mutation removing a model run's
// annotation groups for the given data rows.
func DeleteAnnotationGroups(modelRunUID string, dataRowIDs []string) (string, map[string]any) {
	text := fmt.Sprintf("mutation DeleteModelRunDataRows%s($modelRunId: ID!, $dataRowIds: [ID!]!){"+
		"deleteModelRunDataRows(where: {modelRunId: $modelRunId, dataRowIds: $dataRowIds})}", opSuffix)
	return text, map[string]any{
		"modelRunId": modelRunUID,
		"dataRowIds": dataRowIDs,
	}
}
