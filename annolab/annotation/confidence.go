package annotation

import "github.com/pkg/errors"

// HasConfidence reports whether any annotation across the labels
// carries a confidence score, including scores on nested classification
// answers. An unknown kind is an error: the switch below must list
// every variant.
func HasConfidence(labels []Label) (bool, error) {
	for _, label := range labels {
		for _, a := range label.Annotations {
			found, err := annotationHasConfidence(a)
			if err != nil {
				return false, err
			}
			if found {
				return true, nil
			}
		}
	}
	return false, nil
}

func annotationHasConfidence(a Annotation) (bool, error) {
	switch a.Kind {
	case KindClassification, KindVideoClassification:
		if a.Confidence != nil {
			return true, nil
		}
		if a.Value != nil {
			found, err := classificationHasConfidence(*a.Value)
			if err != nil || found {
				return found, err
			}
		}
		return nestedHaveConfidence(a.Classifications)
	case KindObject, KindVideoObject:
		if a.Confidence != nil {
			return true, nil
		}
		return nestedHaveConfidence(a.Classifications)
	case KindScalarMetric, KindConfusionMatrixMetric:
		return a.Confidence != nil, nil
	default:
		return false, errors.Errorf("unknown annotation kind %q", a.Kind)
	}
}

func nestedHaveConfidence(nested []Annotation) (bool, error) {
	for _, a := range nested {
		found, err := annotationHasConfidence(a)
		if err != nil || found {
			return found, err
		}
	}
	return false, nil
}

func classificationHasConfidence(c Classification) (bool, error) {
	switch c.Kind {
	case ClassificationRadio, ClassificationChecklist, ClassificationDropdown:
		for _, answer := range c.Answers {
			if answer.Confidence != nil {
				return true, nil
			}
		}
		return false, nil
	case ClassificationText:
		return false, nil
	default:
		return false, errors.Errorf("unknown classification kind %q", c.Kind)
	}
}
