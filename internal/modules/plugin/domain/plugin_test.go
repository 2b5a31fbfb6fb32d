package domain_test

import (
	"strings"
	"testing"

	"vitalog/internal/modules/plugin/domain"
)

func validManifest() domain.Manifest {
	return domain.Manifest{
		Name:         "health-sync",
		Version:      "1.0.0",
		Binary:       "/usr/local/bin/health-sync",
		SHA256:       strings.Repeat("ab", 32),
		Enabled:      true,
		Capabilities: []domain.Capability{domain.CapabilityCommand, domain.CapabilityImport},
	}
}

func TestManifestValidate(t *testing.T) {
	t.Parallel()
	if err := validManifest().Validate(); err != nil {
		t.Fatalf("valid manifest rejected: %v", err)
	}

	m := validManifest()
	m.SHA256 = "NOT-A-HASH"
	if err := m.Validate(); err == nil {
		t.Fatalf("bad checksum format must be rejected")
	}

	m = validManifest()
	m.Capabilities = nil
	if err := m.Validate(); err == nil {
		t.Fatalf("empty capabilities must be rejected")
	}

	m = validManifest()
	m.Capabilities = []domain.Capability{domain.CapabilityCommand, domain.CapabilityCommand}
	if err := m.Validate(); err == nil {
		t.Fatalf("duplicate capabilities must be rejected")
	}

	m = validManifest()
	m.Capabilities = []domain.Capability{"telepathy"}
	if err := m.Validate(); err == nil {
		t.Fatalf("unknown capability must be rejected")
	}
}

func TestParseImportPayload(t *testing.T) {
	t.Parallel()
	samples, err := domain.ParseImportPayload(`{"samples":[{"date":"2026-03-01","value":8000},{"date":"2026-03-02","value":9500}]}`)
	if err != nil {
		t.Fatalf("parse payload: %v", err)
	}
	if len(samples) != 2 || samples[1].Day != "2026-03-02" || samples[1].Value != 9500 {
		t.Fatalf("unexpected samples: %+v", samples)
	}

	if _, err := domain.ParseImportPayload(""); err == nil {
		t.Fatalf("empty output must be rejected")
	}
	if _, err := domain.ParseImportPayload(`{"samples":[{"date":"03/01/2026","value":1}]}`); err == nil {
		t.Fatalf("malformed date must be rejected")
	}
	if _, err := domain.ParseImportPayload(`{"samples":[{"date":"2026-03-01","value":-5}]}`); err == nil {
		t.Fatalf("negative value must be rejected")
	}
}
