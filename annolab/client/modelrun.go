package client

import (
	"context"
	"encoding/json"
	"time"

	"github.com/pkg/errors"

	"github.com/annolab/annolab-go/annolab/query"
)

// registrationPollInterval spaces out polls of the label registration
// mutation while the server-side task spins up.
const registrationPollInterval = 5 * time.Second

// AnnotationGroups returns a model run's annotation groups as a
// cursor-paginated collection.
func (c *Client) AnnotationGroups(modelRunUID string) *PaginatedCollection {
	text, vars := query.AnnotationGroups(modelRunUID)
	return NewCursorCollection(c, text, vars,
		[]string{"annotationGroups", "nodes"},
		[]string{"annotationGroups", "pageInfo", "endCursor"})
}

// RegisterModelRunLabels starts the label registration task for a model
// run and polls until the server reports the task id or ctx expires.
// Expiry is surfaced as an error wrapping ctx.Err(), never as a silent
// empty result.
func (c *Client) RegisterModelRunLabels(ctx context.Context, modelRunUID string, labelIDs []string) (string, error) {
	text, vars, err := query.RegisterModelRunLabels(modelRunUID, labelIDs)
	if err != nil {
		return "", err
	}
	for {
		data, err := c.Execute(ctx, text, vars)
		if err != nil {
			return "", err
		}
		var taskID string
		if raw, ok := data[query.RegisterModelRunLabelsMutation]; ok {
			if err := json.Unmarshal(raw, &taskID); err != nil {
				return "", errors.Wrap(err, "decode registration task id")
			}
		}
		if taskID != "" {
			return taskID, nil
		}
		select {
		case <-ctx.Done():
			return "", errors.Wrap(ctx.Err(), "label registration did not complete")
		case <-time.After(registrationPollInterval):
		}
	}
}
