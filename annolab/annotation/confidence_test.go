package annotation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func score(v float64) *float64 {
	return &v
}

func TestHasConfidenceEmpty(t *testing.T) {
	found, err := HasConfidence(nil)
	require.NoError(t, err)
	assert.False(t, found)

	found, err = HasConfidence([]Label{{UID: "l1"}})
	require.NoError(t, err)
	assert.False(t, found)
}

func TestHasConfidenceDirectScore(t *testing.T) {
	for _, kind := range []Kind{
		KindClassification, KindObject,
		KindVideoClassification, KindVideoObject,
		KindScalarMetric, KindConfusionMatrixMetric,
	} {
		labels := []Label{{UID: "l1", Annotations: []Annotation{
			{Kind: kind, Confidence: score(0.9)},
		}}}
		found, err := HasConfidence(labels)
		require.NoError(t, err, "kind %s", kind)
		assert.True(t, found, "kind %s", kind)
	}
}

func TestHasConfidenceOnAnswer(t *testing.T) {
	labels := []Label{{UID: "l1", Annotations: []Annotation{
		{
			Kind: KindClassification,
			Value: &Classification{
				Kind: ClassificationChecklist,
				Answers: []Answer{
					{Name: "cat"},
					{Name: "dog", Confidence: score(0.7)},
				},
			},
		},
	}}}

	found, err := HasConfidence(labels)
	require.NoError(t, err)
	assert.True(t, found)
}

func TestHasConfidenceNestedUnderObject(t *testing.T) {
	labels := []Label{{UID: "l1", Annotations: []Annotation{
		{
			Kind: KindObject,
			Classifications: []Annotation{
				{
					Kind: KindClassification,
					Value: &Classification{
						Kind:    ClassificationRadio,
						Answers: []Answer{{Name: "yes", Confidence: score(0.5)}},
					},
				},
			},
		},
	}}}

	found, err := HasConfidence(labels)
	require.NoError(t, err)
	assert.True(t, found)
}

func TestTextClassificationNeverHasConfidence(t *testing.T) {
	labels := []Label{{UID: "l1", Annotations: []Annotation{
		{
			Kind:  KindClassification,
			Value: &Classification{Kind: ClassificationText, Text: "free form"},
		},
	}}}

	found, err := HasConfidence(labels)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestHasConfidenceAllUnscored(t *testing.T) {
	labels := []Label{{UID: "l1", Annotations: []Annotation{
		{Kind: KindScalarMetric},
		{
			Kind: KindObject,
			Classifications: []Annotation{
				{
					Kind: KindClassification,
					Value: &Classification{
						Kind:    ClassificationDropdown,
						Answers: []Answer{{Name: "a"}, {Name: "b"}},
					},
				},
			},
		},
	}}}

	found, err := HasConfidence(labels)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestHasConfidenceUnknownKind(t *testing.T) {
	labels := []Label{{UID: "l1", Annotations: []Annotation{
		{Kind: Kind("polygonish")},
	}}}

	_, err := HasConfidence(labels)
	assert.ErrorContains(t, err, `unknown annotation kind "polygonish"`)
}

func TestHasConfidenceUnknownClassificationKind(t *testing.T) {
	labels := []Label{{UID: "l1", Annotations: []Annotation{
		{
			Kind:  KindClassification,
			Value: &Classification{Kind: ClassificationKind("slider")},
		},
	}}}

	_, err := HasConfidence(labels)
	assert.ErrorContains(t, err, `unknown classification kind "slider"`)
}
