package out_test

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	pluginout "vitalog/internal/modules/plugin/adapter/out"
	"vitalog/internal/modules/plugin/domain"
)

func TestGRPCHostIntegrationReferencePlugin(t *testing.T) {
	binPath, checksum := buildReferencePlugin(t)
	manifest := domain.Manifest{
		Name:         "csv-steps",
		Version:      "1.0.0",
		Binary:       binPath,
		SHA256:       checksum,
		Enabled:      true,
		Capabilities: []domain.Capability{domain.CapabilityCommand, domain.CapabilityImport},
	}

	host := pluginout.NewGRPCHost()
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := host.CheckLifecycle(ctx, manifest); err != nil {
		t.Fatalf("check lifecycle: %v", err)
	}
	metadata, err := host.GetMetadata(ctx, manifest)
	if err != nil {
		t.Fatalf("get metadata: %v", err)
	}
	if metadata.Name != "csv-steps" {
		t.Fatalf("unexpected metadata name: %s", metadata.Name)
	}
	commands, err := host.ListCommands(ctx, manifest)
	if err != nil {
		t.Fatalf("list commands: %v", err)
	}
	if len(commands) != 2 {
		t.Fatalf("expected 2 commands, got %d", len(commands))
	}

	csvPath := filepath.Join(t.TempDir(), "steps.csv")
	csvBody := "date,value\n2026-03-01,8000\n2026-03-02,9500\n"
	if err := os.WriteFile(csvPath, []byte(csvBody), 0o644); err != nil {
		t.Fatalf("write csv: %v", err)
	}

	execOut, err := host.Execute(ctx, manifest, domain.ExecuteRequest{
		CommandID: "pull-steps",
		InputJSON: fmt.Sprintf(`{"file":%q}`, csvPath),
		Context: domain.ExecuteContext{
			RootPath: t.TempDir(),
			GoalID:   "g-1",
			Cwd:      t.TempDir(),
		},
	})
	if err != nil {
		t.Fatalf("execute import command: %v", err)
	}
	if execOut.ExitCode != 0 {
		t.Fatalf("expected exit code 0, got %d (stderr %q)", execOut.ExitCode, execOut.Stderr)
	}
	var payload struct {
		Samples []struct {
			Date  string  `json:"date"`
			Value float64 `json:"value"`
		} `json:"samples"`
	}
	if err := json.Unmarshal([]byte(execOut.OutputJSON), &payload); err != nil {
		t.Fatalf("decode output json: %v", err)
	}
	if len(payload.Samples) != 2 || payload.Samples[1].Value != 9500 {
		t.Fatalf("unexpected samples: %+v", payload.Samples)
	}
}

func buildReferencePlugin(t *testing.T) (string, string) {
	t.Helper()
	tmp := t.TempDir()
	binPath := filepath.Join(tmp, "csv-steps-plugin")
	cmd := exec.Command("go", "build", "-o", binPath, "./plugins/reference")
	cmd.Dir = repositoryRoot(t)
	if out, err := cmd.CombinedOutput(); err != nil {
		t.Fatalf("build reference plugin: %v\n%s", err, string(out))
	}
	payload, err := os.ReadFile(binPath)
	if err != nil {
		t.Fatalf("read built plugin: %v", err)
	}
	hash := sha256.Sum256(payload)
	return binPath, hex.EncodeToString(hash[:])
}

func repositoryRoot(t *testing.T) string {
	t.Helper()
	_, file, _, ok := runtime.Caller(0)
	if !ok {
		t.Fatalf("runtime caller failed")
	}
	return filepath.Clean(filepath.Join(filepath.Dir(file), "../../../../../"))
}
