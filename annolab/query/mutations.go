package query

import (
	"fmt"
	"strings"

	"github.com/jinzhu/inflection"

	"github.com/annolab/annolab-go/annolab/comparison"
	"github.com/annolab/annolab-go/annolab/schema"
	"github.com/annolab/annolab-go/annolab/utils"
)

// Value binds a field or relationship to a value for a create mutation.
// Relationship values are object IDs, connected by id in the payload.
type Value struct {
	Attr  comparison.Attribute
	Value any
}

// FieldValue binds a field to its new value for an update mutation.
type FieldValue struct {
	Field *schema.Field
	Value any
}

// Create builds the mutation creating a new object from field and
// relationship values. Field values are parameterized under their wire
// names; relationship values become connect-by-id blocks.
func Create(entity *schema.Entity, data []Value) (string, map[string]any, error) {
	params := &Params{}
	assigns := make([]string, 0, len(data))
	for _, d := range data {
		switch attr := d.Attr.(type) {
		case *schema.Field:
			params.AddNamed(attr.GraphQLName(), d.Value, attr)
			assigns = append(assigns, attr.GraphQLName()+": $"+attr.GraphQLName())
		case *schema.Relationship:
			params.AddNamed(attr.GraphQLName(), d.Value, attr)
			assigns = append(assigns, utils.CamelCase(attr.GraphQLName())+": {connect: {id: $"+attr.GraphQLName()+"}}")
		default:
			return "", nil, &InvalidQueryError{Reason: fmt.Sprintf(
				"create data must bind fields or relationships, got %T", d.Attr)}
		}
	}
	text := fmt.Sprintf("mutation Create%s%s%s{create%s(data: {%s}) {%s}}",
		entity.Name(), opSuffix, params.Declaration(),
		entity.Name(), strings.Join(assigns, " "), Results(entity))
	return text, params.Values(), nil
}

// UpdateFields builds the partial-update mutation setting the given
// field values on the object identified by uid.
func UpdateFields(entity *schema.Entity, uid string, values []FieldValue) (string, map[string]any, error) {
	params := &Params{}
	assigns := make([]string, 0, len(values))
	for _, v := range values {
		if !entity.HasField(v.Field) {
			return "", nil, &InvalidFieldError{Entity: entity.Name(), Fields: []string{v.Field.GraphQLName()}}
		}
		params.AddNamed(v.Field.GraphQLName(), v.Value, v.Field)
		assigns = append(assigns, v.Field.GraphQLName()+": $"+v.Field.GraphQLName())
	}
	idParam := entity.Name() + "Id"
	params.AddNamed(idParam, uid, schema.UID)
	text := fmt.Sprintf("mutation update%s%s%s{update%s(where: {id: $%s} data: {%s}) {%s}}",
		utils.TitleCase(entity.Name()), opSuffix, params.Declaration(),
		entity.Name(), idParam, strings.Join(assigns, " "), Results(entity))
	return text, params.Values(), nil
}

// RelationshipUpdate is the kind of change applied to a relationship.
type RelationshipUpdate string

const (
	Connect    RelationshipUpdate = "connect"
	Disconnect RelationshipUpdate = "disconnect"
)

// UpdateRelationship builds the mutation connecting or disconnecting the
// target object on a relationship of the source object. Disconnecting a
// to-one relationship takes no target id; the payload is the literal
// true.
func UpdateRelationship(
	source *schema.Entity, sourceUID string,
	target *schema.Entity, targetUID string,
	rel *schema.Relationship, update RelationshipUpdate,
) (string, map[string]any) {
	toOneDisconnect := update == Disconnect && rel.Cardinality() == schema.ToOne

	sourceParam := utils.CamelCase(source.Name()) + "Id"
	values := map[string]any{sourceParam: sourceUID}

	var declaration, targetText string
	if toOneDisconnect {
		declaration = fmt.Sprintf("($%s: ID!)", sourceParam)
		targetText = "true"
	} else {
		targetParam := utils.CamelCase(target.Name()) + "Id"
		declaration = fmt.Sprintf("($%s: ID!, $%s: ID!)", sourceParam, targetParam)
		targetText = "{id: $" + targetParam + "}"
		values[targetParam] = targetUID
	}

	text := fmt.Sprintf("mutation %s%sAnd%s%s%s{update%s(where: {id: $%s} data: {%s: {%s: %s}}) {id}}",
		utils.TitleCase(string(update)), source.Name(), target.Name(), opSuffix, declaration,
		utils.TitleCase(source.Name()), sourceParam, rel.GraphQLName(), update, targetText)
	return text, values
}

// Delete builds the soft-delete mutation: the object's deleted flag is
// set, the row is never physically removed.
func Delete(entity *schema.Entity, uid string) (string, map[string]any) {
	idParam := entity.Name() + "Id"
	text := fmt.Sprintf("mutation delete%s%s($%s: ID!){update%s(where: {id: $%s} data: {deleted: true}) {id}}",
		entity.Name(), opSuffix, idParam, entity.Name(), idParam)
	return text, map[string]any{idParam: uid}
}

// BulkDelete builds the hard-delete mutation removing every object in
// uids. The ID list is inlined; useWhereClause switches between the two
// mutation shapes the service exposes.
func BulkDelete(entity *schema.Entity, uids []string, useWhereClause bool) (string, map[string]any) {
	plural := inflection.Plural(utils.TitleCase(entity.Name()))
	quoted := make([]string, 0, len(uids))
	for _, uid := range uids {
		quoted = append(quoted, `"`+uid+`"`)
	}
	ids := utils.CamelCase(entity.Name()) + "Ids: [" + strings.Join(quoted, ", ") + "]"
	if useWhereClause {
		ids = "where: {" + ids + "}"
	}
	text := fmt.Sprintf("mutation delete%s%s{delete%s(%s){id}}", plural, opSuffix, plural, ids)
	return text, map[string]any{}
}

// CreateDataRows builds the bulk-append mutation attaching the rows
// described by the file at jsonFileURL to a dataset. The resulting task
// runs asynchronously server-side.
func CreateDataRows(datasetUID, jsonFileURL string) (string, map[string]any) {
	text := "mutation AppendRowsToDataset" + opSuffix +
		"($dataSetId: ID!, $jsonURL: String!){appendRowsToDataset(data:{datasetId: $dataSetId, jsonFileUrl: $jsonURL}){taskId accepted}}"
	return text, map[string]any{"dataSetId": datasetUID, "jsonURL": jsonFileURL}
}

// LabelingParameterOverride prioritizes one data row in the labeling queue.
type LabelingParameterOverride struct {
	DataRowUID string
	Priority   int
	NumLabels  int
}

// SetLabelingParameterOverrides builds the mutation installing the given
// overrides on a project. Values are inlined, not parameterized.
func SetLabelingParameterOverrides(projectUID string, overrides []LabelingParameterOverride) (string, map[string]any) {
	entries := make([]string, 0, len(overrides))
	for _, o := range overrides {
		entries = append(entries, fmt.Sprintf(`{dataRow: {id: "%s"}, priority: %d, numLabels: %d}`,
			o.DataRowUID, o.Priority, o.NumLabels))
	}
	text := fmt.Sprintf(`mutation setLabelingParameterOverrides%s{project(where: {id: "%s"}){setLabelingParameterOverrides(data: [%s]){success}}}`,
		opSuffix, projectUID, strings.Join(entries, ", "))
	return text, map[string]any{}
}

// UnsetLabelingParameterOverrides builds the mutation removing overrides
// for the given data rows from a project.
func UnsetLabelingParameterOverrides(projectUID string, dataRowUIDs []string) (string, map[string]any) {
	entries := make([]string, 0, len(dataRowUIDs))
	for _, uid := range dataRowUIDs {
		entries = append(entries, fmt.Sprintf(`{dataRowId: "%s"}`, uid))
	}
	text := fmt.Sprintf(`mutation unsetLabelingParameterOverrides%s{project(where: {id: "%s"}){unsetLabelingParameterOverrides(data: [%s]){success}}}`,
		opSuffix, projectUID, strings.Join(entries, ", "))
	return text, map[string]any{}
}

// CreateMetadata builds the mutation attaching one asset-metadata record
// to a data row.
func CreateMetadata(metaType, metaValue, dataRowUID string) (string, map[string]any) {
	text := fmt.Sprintf("mutation CreateAssetMetadata%s($metaType: MetadataType!, $metaValue: String!, $dataRowId: ID!){"+
		"createAssetMetadata(data: {metaType: $metaType metaValue: $metaValue dataRowId: $dataRowId}) {%s}}",
		opSuffix, Results(schema.AssetMetadata))
	return text, map[string]any{
		"metaType":  metaType,
		"metaValue": metaValue,
		"dataRowId": dataRowUID,
	}
}

// ProjectLabels builds the query fetching a project's labels. It is a
// non-standard relationship query so results can be narrowed to a set of
// datasets; a nil datasetUIDs slice skips that filter. The text carries
// the skip/first printf placeholders for the pagination layer.
func ProjectLabels(projectUID string, datasetUIDs []string, orderBy *schema.OrderBy) (string, map[string]any, error) {
	clauses := []string{"skip: %d first: %d"}
	if datasetUIDs != nil {
		quoted := make([]string, 0, len(datasetUIDs))
		for _, uid := range datasetUIDs {
			quoted = append(quoted, `"`+uid+`"`)
		}
		clauses = append(clauses, "where: {dataRow: {dataset: {id_in: ["+strings.Join(quoted, ", ")+"]}}}")
	}
	if orderBy != nil {
		if err := CheckOrderBy(schema.Label, orderBy); err != nil {
			return "", nil, err
		}
		clauses = append(clauses, "orderBy: "+orderBy.Field.GraphQLName()+"_"+string(orderBy.Order))
	}
	text := fmt.Sprintf("query GetProjectLabels%s($projectId: ID!){project(where: {id: $projectId}){labels(%s){%s}}}",
		opSuffix, strings.Join(clauses, " "), Results(schema.Label))
	return text, map[string]any{"projectId": projectUID}, nil
}

// ExportLabels builds the mutation requesting a label export for a
// project. It returns the mutation text and the name of the project-id
// parameter the caller must bind.
func ExportLabels() (string, string) {
	const idParam = "projectId"
	text := fmt.Sprintf("mutation GetLabelExportUrl%s($%s: ID!){exportLabels(data: {projectId: $%s}){downloadUrl createdAt shouldPoll}}",
		opSuffix, idParam, idParam)
	return text, idParam
}

// ExportParams flattens a project export filter into the params object
// sent alongside an export mutation. Nil toggles are omitted so the
// server defaults apply.
func ExportParams(f schema.ProjectExportFilter) map[string]any {
	params := dataRowExportParams(f.DataRowExportFilter)
	setToggle(params, "projectDetails", f.ProjectDetails)
	setToggle(params, "labelDetails", f.LabelDetails)
	setToggle(params, "performanceDetails", f.PerformanceDetails)
	return params
}

// ModelRunExportParams is the model-run counterpart of ExportParams.
func ModelRunExportParams(f schema.ModelRunExportFilter) map[string]any {
	return dataRowExportParams(f.DataRowExportFilter)
}

func dataRowExportParams(f schema.DataRowExportFilter) map[string]any {
	params := map[string]any{}
	setToggle(params, "dataRowDetails", f.DataRowDetails)
	setToggle(params, "mediaAttributes", f.MediaAttributes)
	setToggle(params, "metadataFields", f.MetadataFields)
	setToggle(params, "attachments", f.Attachments)
	return params
}

func setToggle(params map[string]any, name string, value *bool) {
	if value != nil {
		params[name] = *value
	}
}

// CreateWebhook builds the mutation registering a webhook for the given
// topics. projectUID may be empty for organization-wide webhooks.
func CreateWebhook(topics []string, url, secret, projectUID string) (string, map[string]any) {
	var project string
	if projectUID != "" {
		project = fmt.Sprintf(`project: {id: "%s"}, `, projectUID)
	}
	text := fmt.Sprintf(`mutation CreateWebhook%s{createWebhook(data: {%stopics: {set: [%s]}, url: "%s", secret: "%s"}){%s}}`,
		opSuffix, project, strings.Join(topics, " "), url, secret, Results(schema.Webhook))
	return text, map[string]any{}
}

// EditWebhook builds the mutation updating a webhook. Nil arguments
// leave the corresponding attribute unchanged.
func EditWebhook(webhookUID string, topics []string, url, status *string) (string, map[string]any) {
	var changes []string
	if topics != nil {
		changes = append(changes, "topics: {set: ["+strings.Join(topics, " ")+"]}")
	}
	if url != nil {
		changes = append(changes, fmt.Sprintf(`url: "%s"`, *url))
	}
	if status != nil {
		changes = append(changes, "status: "+*status)
	}
	text := fmt.Sprintf(`mutation UpdateWebhook%s{updateWebhook(where: {id: "%s"} data: {%s}){%s}}`,
		opSuffix, webhookUID, strings.Join(changes, ", "), Results(schema.Webhook))
	return text, map[string]any{}
}
