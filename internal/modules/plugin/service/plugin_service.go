package service

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"vitalog/internal/modules/plugin/domain"
	"vitalog/internal/modules/plugin/dto"
	pluginout "vitalog/internal/modules/plugin/port/out"
)

// PluginService gates every plugin invocation behind manifest validation,
// a checksum check of the binary on disk, and a lifecycle probe.
type PluginService struct {
	store pluginout.ManifestStore
	host  pluginout.Host
}

func NewPluginService(store pluginout.ManifestStore, host pluginout.Host) *PluginService {
	return &PluginService{store: store, host: host}
}

func (s *PluginService) List(ctx context.Context) ([]dto.PluginInfo, error) {
	manifests, err := s.validManifests(ctx)
	if err != nil {
		return nil, err
	}
	infos := make([]dto.PluginInfo, 0, len(manifests))
	for _, m := range manifests {
		info := dto.PluginInfo{Name: m.Name, Version: m.Version, Enabled: m.Enabled, Binary: m.Binary}
		for _, capability := range m.Capabilities {
			info.Capabilities = append(info.Capabilities, string(capability))
		}
		infos = append(infos, info)
	}
	return infos, nil
}

// Doctor checks each configured plugin without short-circuiting, so a
// broken manifest never hides the state of its neighbours.
func (s *PluginService) Doctor(ctx context.Context) ([]dto.DoctorResult, error) {
	manifests, err := s.store.Load(ctx)
	if err != nil {
		return nil, err
	}
	results := make([]dto.DoctorResult, 0, len(manifests))
	for _, m := range manifests {
		results = append(results, s.diagnose(ctx, m))
	}
	return results, nil
}

func (s *PluginService) diagnose(ctx context.Context, m domain.Manifest) dto.DoctorResult {
	result := dto.DoctorResult{Name: m.Name}
	if err := m.Validate(); err != nil {
		result.Error = err.Error()
		return result
	}
	if _, err := os.Stat(m.Binary); err != nil {
		result.Error = fmt.Sprintf("binary does not exist: %s", m.Binary)
		return result
	}
	result.BinaryReachable = true
	if err := verifyChecksum(m.Binary, m.SHA256); err != nil {
		result.Error = "checksum mismatch"
		return result
	}
	result.ChecksumValid = true
	if !m.Enabled || s.host == nil {
		return result
	}
	if err := s.host.CheckLifecycle(ctx, m); err != nil {
		result.Error = err.Error()
		return result
	}
	result.LifecycleOK = true
	return result
}

func (s *PluginService) ListCommands(ctx context.Context, pluginName string) ([]dto.CommandInfo, error) {
	manifest, err := s.runnable(ctx, pluginName, "")
	if err != nil {
		return nil, err
	}
	descriptors, err := s.host.ListCommands(ctx, manifest)
	if err != nil {
		return nil, err
	}
	infos := make([]dto.CommandInfo, 0, len(descriptors))
	for _, d := range descriptors {
		infos = append(infos, dto.CommandInfo{
			ID:              d.ID,
			Title:           d.Title,
			Description:     d.Description,
			Kind:            string(d.Kind),
			InputSchemaJSON: d.InputSchemaJSON,
			TimeoutMS:       d.TimeoutMS,
		})
	}
	return infos, nil
}

func (s *PluginService) Execute(ctx context.Context, input dto.ExecuteInput) (dto.ExecuteOutput, error) {
	return s.run(ctx, input, domain.CapabilityCommand, domain.CommandKindCommand)
}

// RunImport executes an import-kind command and returns the raw result.
// Decoding the sample payload and recording it belongs to the caller.
func (s *PluginService) RunImport(ctx context.Context, input dto.ExecuteInput) (dto.ExecuteOutput, error) {
	return s.run(ctx, input, domain.CapabilityImport, domain.CommandKindImport)
}

func (s *PluginService) run(ctx context.Context, input dto.ExecuteInput, capability domain.Capability, kind domain.CommandKind) (dto.ExecuteOutput, error) {
	manifest, err := s.runnable(ctx, input.PluginName, capability)
	if err != nil {
		return dto.ExecuteOutput{}, err
	}
	if input.InputJSON != "" && !json.Valid([]byte(input.InputJSON)) {
		return dto.ExecuteOutput{}, fmt.Errorf("input-json must be valid JSON")
	}
	req := domain.ExecuteRequest{
		CommandID: input.CommandID,
		InputJSON: input.InputJSON,
		Context: domain.ExecuteContext{
			RootPath: input.RootPath,
			GoalID:   input.GoalID,
			Cwd:      input.Cwd,
			Env:      input.Env,
		},
	}
	if err := req.Validate(); err != nil {
		return dto.ExecuteOutput{}, err
	}
	descriptors, err := s.host.ListCommands(ctx, manifest)
	if err != nil {
		return dto.ExecuteOutput{}, err
	}
	if _, err := findCommand(descriptors, input.CommandID, kind); err != nil {
		return dto.ExecuteOutput{}, err
	}

	result, err := s.host.Execute(ctx, manifest, req)
	if err != nil {
		return dto.ExecuteOutput{}, err
	}
	return dto.ExecuteOutput{
		PluginName: input.PluginName,
		CommandID:  input.CommandID,
		Stdout:     result.Stdout,
		Stderr:     result.Stderr,
		OutputJSON: result.OutputJSON,
		ExitCode:   result.ExitCode,
	}, nil
}

func (s *PluginService) validManifests(ctx context.Context) ([]domain.Manifest, error) {
	manifests, err := s.store.Load(ctx)
	if err != nil {
		return nil, err
	}
	seen := map[string]struct{}{}
	for _, m := range manifests {
		if err := m.Validate(); err != nil {
			return nil, err
		}
		if _, dup := seen[m.Name]; dup {
			return nil, fmt.Errorf("duplicate plugin name: %s", m.Name)
		}
		seen[m.Name] = struct{}{}
	}
	return manifests, nil
}

// runnable resolves a plugin by name and refuses to hand it back unless
// it is enabled, carries the required capability, matches its checksum,
// and answers a lifecycle probe.
func (s *PluginService) runnable(ctx context.Context, pluginName string, capability domain.Capability) (domain.Manifest, error) {
	manifests, err := s.validManifests(ctx)
	if err != nil {
		return domain.Manifest{}, err
	}
	idx := -1
	for i := range manifests {
		if manifests[i].Name == pluginName {
			idx = i
			break
		}
	}
	if idx < 0 {
		return domain.Manifest{}, fmt.Errorf("plugin %q not found", pluginName)
	}
	manifest := manifests[idx]
	if !manifest.Enabled {
		return domain.Manifest{}, fmt.Errorf("%w: %s", domain.ErrPluginDisabled, pluginName)
	}
	if capability != "" && !manifest.HasCapability(capability) {
		return domain.Manifest{}, fmt.Errorf("%w: %s", domain.ErrCapabilityMissing, capability)
	}
	if err := verifyChecksum(manifest.Binary, manifest.SHA256); err != nil {
		return domain.Manifest{}, err
	}
	if s.host != nil {
		if err := s.host.CheckLifecycle(ctx, manifest); err != nil {
			if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
				return domain.Manifest{}, fmt.Errorf("%w: %s", domain.ErrPluginTimeout, pluginName)
			}
			return domain.Manifest{}, err
		}
	}
	return manifest, nil
}

func findCommand(descriptors []domain.CommandDescriptor, commandID string, kind domain.CommandKind) (domain.CommandDescriptor, error) {
	for _, d := range descriptors {
		if err := d.Validate(); err != nil {
			return domain.CommandDescriptor{}, err
		}
		if d.ID != commandID {
			continue
		}
		if kind != "" && d.Kind != kind {
			return domain.CommandDescriptor{}, fmt.Errorf("command kind mismatch: want=%s got=%s", kind, d.Kind)
		}
		return d, nil
	}
	return domain.CommandDescriptor{}, fmt.Errorf("%w: %s", domain.ErrCommandNotFound, commandID)
}

func verifyChecksum(path string, expected string) error {
	payload, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read plugin binary: %w", err)
	}
	sum := sha256.Sum256(payload)
	if hex.EncodeToString(sum[:]) != expected {
		return fmt.Errorf("%w: %s", domain.ErrChecksumMismatch, filepath.Base(path))
	}
	return nil
}
