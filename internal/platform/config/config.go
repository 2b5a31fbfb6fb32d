package config

import (
	"fmt"
	"path/filepath"
)

type Config struct {
	RootPath    string
	StateDir    string
	DBPath      string
	TargetsPath string
}

func New(rootPath string) (Config, error) {
	if rootPath == "" {
		return Config{}, fmt.Errorf("root path is required")
	}
	return Config{
		RootPath:    rootPath,
		StateDir:    filepath.Join(rootPath, ".vitalog", "state"),
		DBPath:      filepath.Join(rootPath, ".vitalog", "vitalog.db"),
		TargetsPath: filepath.Join(rootPath, ".vitalog", "targets.yaml"),
	}, nil
}
