package out_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	nutritionout "vitalog/internal/modules/nutrition/adapter/out"
)

func TestMissingFileYieldsDefaults(t *testing.T) {
	t.Parallel()
	store := nutritionout.NewYAMLTargetsStore(filepath.Join(t.TempDir(), "targets.yaml"))

	targets, err := store.Load(context.Background())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if targets.Calories != 2000 || targets.Protein != 150 || targets.Carbs != 250 || targets.Fat != 65 {
		t.Fatalf("expected default targets, got %+v", targets)
	}
}

func TestPartialFileOverridesOnlyNamedFields(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "targets.yaml")
	if err := os.WriteFile(path, []byte("calories: 2400\nprotein: 180\n"), 0o644); err != nil {
		t.Fatalf("write targets: %v", err)
	}
	store := nutritionout.NewYAMLTargetsStore(path)

	targets, err := store.Load(context.Background())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if targets.Calories != 2400 || targets.Protein != 180 {
		t.Fatalf("overrides not applied: %+v", targets)
	}
	if targets.Carbs != 250 || targets.Fat != 65 {
		t.Fatalf("unnamed fields must keep defaults: %+v", targets)
	}
}

func TestMalformedFileIsAnError(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "targets.yaml")
	if err := os.WriteFile(path, []byte("calories: [not a number"), 0o644); err != nil {
		t.Fatalf("write targets: %v", err)
	}
	store := nutritionout.NewYAMLTargetsStore(path)

	if _, err := store.Load(context.Background()); err == nil {
		t.Fatalf("malformed user-authored file must surface an error")
	}
}
