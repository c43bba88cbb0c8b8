// Package annotation models the annotation payloads attached to labels
// as an explicit tagged-variant enumeration. Each kind exposes a fixed,
// typed accessor for its optional confidence score, so confidence
// checks are exhaustive over kinds instead of probing attributes at
// runtime.
package annotation

import "github.com/pkg/errors"

// Kind discriminates annotation variants.
type Kind string

const (
	KindClassification        Kind = "classification"
	KindObject                Kind = "object"
	KindVideoClassification   Kind = "video_classification"
	KindVideoObject           Kind = "video_object"
	KindScalarMetric          Kind = "scalar_metric"
	KindConfusionMatrixMetric Kind = "confusion_matrix_metric"
)

// ClassificationKind discriminates classification value variants.
type ClassificationKind string

const (
	ClassificationRadio     ClassificationKind = "radio"
	ClassificationChecklist ClassificationKind = "checklist"
	ClassificationDropdown  ClassificationKind = "dropdown"
	ClassificationText      ClassificationKind = "text"
)

// Answer is one selected classification option.
type Answer struct {
	Name       string
	Confidence *float64
}

// Classification is the value of a classification annotation. Radio
// carries exactly one answer; checklist and dropdown carry several;
// text carries the free-form Text payload and never a confidence.
type Classification struct {
	Kind    ClassificationKind
	Answers []Answer
	Text    string
}

// Annotation is one annotation on a label. Value is set for the
// classification kinds; Classifications holds nested classification
// annotations on object and classification kinds; metrics carry only
// Confidence.
type Annotation struct {
	Kind            Kind
	Confidence      *float64
	Value           *Classification
	Classifications []Annotation
}

// Label is one labeled example with its annotations.
type Label struct {
	UID         string
	Annotations []Annotation
}

// TextSelection points at a span of tokens on one page of a document.
// Pages are numbered from 1.
type TextSelection struct {
	TokenIDs []string
	GroupID  string
	Page     int
}

// NewTextSelection builds a selection after checking the page number.
func NewTextSelection(tokenIDs []string, groupID string, page int) (TextSelection, error) {
	if page < 1 {
		return TextSelection{}, errors.Errorf("page must be greater than or equal to 1, got %d", page)
	}
	return TextSelection{
		TokenIDs: tokenIDs,
		GroupID:  groupID,
		Page:     page,
	}, nil
}

// DocumentEntity is a named-entity annotation spanning one or more text
// selections of a document.
type DocumentEntity struct {
	TextSelections []TextSelection
}
