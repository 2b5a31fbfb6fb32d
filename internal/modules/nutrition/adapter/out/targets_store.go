package out

import (
	"context"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"vitalog/internal/modules/nutrition/domain"
	nutritionout "vitalog/internal/modules/nutrition/port/out"
)

// YAMLTargetsStore reads daily macro targets from a user-editable YAML
// file. A missing file yields the built-in defaults; a malformed one is
// an error, since the user wrote it by hand and silently ignoring it
// would hide the typo.
type YAMLTargetsStore struct {
	path string
}

func NewYAMLTargetsStore(path string) nutritionout.TargetsStore {
	return &YAMLTargetsStore{path: path}
}

func (s *YAMLTargetsStore) Load(_ context.Context) (domain.Targets, error) {
	payload, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return domain.DefaultTargets(), nil
		}
		return domain.Targets{}, fmt.Errorf("read targets file: %w", err)
	}
	targets := domain.DefaultTargets()
	if err := yaml.Unmarshal(payload, &targets); err != nil {
		return domain.Targets{}, fmt.Errorf("decode targets file: %w", err)
	}
	return targets, nil
}
