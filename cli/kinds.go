package cli

import (
	"randomwalk/estimator"
	"slices"
)

// parseKinds resolves the --kind flag. An empty name selects both estimators.
func parseKinds(name string) ([]estimator.Kind, error) {
	if name == "" {
		return []estimator.Kind{estimator.TD, estimator.MC}, nil
	}
	kind, err := estimator.ParseKind(name)
	if err != nil {
		return nil, err
	}
	return []estimator.Kind{kind}, nil
}

func selected(kinds []estimator.Kind, kind estimator.Kind) bool {
	return slices.Contains(kinds, kind)
}
