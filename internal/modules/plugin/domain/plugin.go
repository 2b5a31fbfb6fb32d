package domain

import (
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"time"
)

type Capability string

const (
	CapabilityCommand Capability = "command"
	CapabilityImport  Capability = "import"
)

var (
	ErrPluginDisabled    = errors.New("plugin is disabled")
	ErrChecksumMismatch  = errors.New("plugin checksum mismatch")
	ErrCapabilityMissing = errors.New("plugin capability missing")
	ErrCommandNotFound   = errors.New("plugin command not found")
	ErrPluginTimeout     = errors.New("plugin timeout")
)

var sha256Pattern = regexp.MustCompile(`^[a-f0-9]{64}$`)

type Manifest struct {
	Name         string       `json:"name"`
	Version      string       `json:"version"`
	Binary       string       `json:"binary"`
	SHA256       string       `json:"sha256"`
	Enabled      bool         `json:"enabled"`
	Capabilities []Capability `json:"capabilities"`
}

func (m Manifest) Validate() error {
	if m.Name == "" {
		return fmt.Errorf("plugin name is required")
	}
	if m.Version == "" {
		return fmt.Errorf("plugin version is required")
	}
	if m.Binary == "" {
		return fmt.Errorf("plugin binary path is required")
	}
	if !sha256Pattern.MatchString(m.SHA256) {
		return fmt.Errorf("plugin sha256 must be lowercase 64-char hex")
	}
	if len(m.Capabilities) == 0 {
		return fmt.Errorf("plugin capabilities are required")
	}
	seen := map[Capability]struct{}{}
	for _, capability := range m.Capabilities {
		if err := capability.Validate(); err != nil {
			return err
		}
		if _, ok := seen[capability]; ok {
			return fmt.Errorf("duplicate capability: %s", capability)
		}
		seen[capability] = struct{}{}
	}
	return nil
}

func (c Capability) Validate() error {
	switch c {
	case CapabilityCommand, CapabilityImport:
		return nil
	default:
		return fmt.Errorf("unknown capability: %s", c)
	}
}

func (m Manifest) HasCapability(capability Capability) bool {
	for _, c := range m.Capabilities {
		if c == capability {
			return true
		}
	}
	return false
}

type CommandKind string

const (
	CommandKindCommand CommandKind = "command"
	CommandKindImport  CommandKind = "import"
)

func (k CommandKind) Validate() error {
	switch k {
	case CommandKindCommand, CommandKindImport:
		return nil
	default:
		return fmt.Errorf("unknown command kind: %s", k)
	}
}

type CommandDescriptor struct {
	ID              string
	Title           string
	Description     string
	Kind            CommandKind
	InputSchemaJSON string
	TimeoutMS       int
}

func (d CommandDescriptor) Validate() error {
	if d.ID == "" {
		return fmt.Errorf("command id is required")
	}
	return d.Kind.Validate()
}

type Metadata struct {
	Name         string
	Version      string
	Capabilities []Capability
}

type ExecuteContext struct {
	RootPath string
	GoalID   string
	Cwd      string
	Env      map[string]string
}

func (c ExecuteContext) Validate() error {
	if c.RootPath == "" {
		return fmt.Errorf("root path is required")
	}
	if c.Cwd == "" {
		return fmt.Errorf("cwd is required")
	}
	return nil
}

type ExecuteRequest struct {
	CommandID string
	InputJSON string
	Context   ExecuteContext
}

func (r ExecuteRequest) Validate() error {
	if r.CommandID == "" {
		return fmt.Errorf("command id is required")
	}
	return r.Context.Validate()
}

type ExecuteResult struct {
	Stdout     string
	Stderr     string
	OutputJSON string
	ExitCode   int
}

// ImportSample is one dated value an importer hands back for a goal.
type ImportSample struct {
	Day   string  `json:"date"`
	Value float64 `json:"value"`
}

func (s ImportSample) Validate() error {
	if _, err := time.Parse("2006-01-02", s.Day); err != nil {
		return fmt.Errorf("sample date must be YYYY-MM-DD: %q", s.Day)
	}
	if s.Value < 0 {
		return fmt.Errorf("sample value must be non-negative")
	}
	return nil
}

type importPayload struct {
	Samples []ImportSample `json:"samples"`
}

// ParseImportPayload decodes the output_json an import command emits,
// a JSON object of the form {"samples":[{"date":"...","value":n}]}.
func ParseImportPayload(outputJSON string) ([]ImportSample, error) {
	if outputJSON == "" {
		return nil, fmt.Errorf("import command produced no output")
	}
	var payload importPayload
	if err := json.Unmarshal([]byte(outputJSON), &payload); err != nil {
		return nil, fmt.Errorf("decode import payload: %w", err)
	}
	for _, sample := range payload.Samples {
		if err := sample.Validate(); err != nil {
			return nil, err
		}
	}
	return payload.Samples, nil
}
