package client

import (
	"context"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/annolab/annolab-go/annolab/query"
)

func TestRegisterModelRunLabelsReturnsTaskID(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprintf(w, `{"data": {"%s": "task_42"}}`, query.RegisterModelRunLabelsMutation)
	})

	taskID, err := c.RegisterModelRunLabels(context.Background(), "mr_1", []string{"l1"})
	require.NoError(t, err)
	assert.Equal(t, "task_42", taskID)
}

func TestRegisterModelRunLabelsTimesOut(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		// The task never materializes server-side.
		w.Write([]byte(`{"data": {}}`))
	})

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	_, err := c.RegisterModelRunLabels(ctx, "mr_1", []string{"l1"})
	require.Error(t, err)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.ErrorContains(t, err, "label registration did not complete")
}

func TestRegisterModelRunLabelsRejectsEmptyLabels(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		t.Error("no request expected")
	})

	_, err := c.RegisterModelRunLabels(context.Background(), "mr_1", nil)
	assert.Error(t, err)
}
