// Reference plugin: imports step counts from a date,value CSV file.
// It doubles as the conformance target for the plugin host tests.
package main

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	pluginrpc "vitalog/internal/modules/plugin/adapter/out/rpc"

	"github.com/hashicorp/go-plugin"
)

type server struct{}

func (s *server) GetMetadata(_ context.Context, _ *pluginrpc.Empty) (*pluginrpc.Metadata, error) {
	return &pluginrpc.Metadata{
		Name:         "csv-steps",
		Version:      "1.0.0",
		Capabilities: []string{"command", "import"},
	}, nil
}

func (s *server) ListCommands(_ context.Context, _ *pluginrpc.Empty) (*pluginrpc.ListCommandsResponse, error) {
	return &pluginrpc.ListCommandsResponse{Commands: []pluginrpc.CommandDescriptor{
		{ID: "echo", Title: "Echo", Description: "Echoes provided input", Kind: "command", TimeoutMS: 2000},
		{
			ID:              "pull-steps",
			Title:           "Pull Steps",
			Description:     "Reads daily step counts from a date,value CSV file",
			Kind:            "import",
			InputSchemaJSON: `{"type":"object","properties":{"file":{"type":"string"}},"required":["file"]}`,
			TimeoutMS:       5000,
		},
	}}, nil
}

func (s *server) Execute(_ context.Context, in *pluginrpc.ExecuteRequest) (*pluginrpc.ExecuteResponse, error) {
	switch in.CommandID {
	case "echo":
		if strings.TrimSpace(in.InputJSON) == "" {
			return &pluginrpc.ExecuteResponse{Stdout: "echo", OutputJSON: `{"echo":""}`, ExitCode: 0}, nil
		}
		return &pluginrpc.ExecuteResponse{Stdout: in.InputJSON, OutputJSON: fmt.Sprintf(`{"echo":%q}`, in.InputJSON), ExitCode: 0}, nil
	case "pull-steps":
		return pullSteps(in)
	default:
		return nil, fmt.Errorf("unknown command: %s", in.CommandID)
	}
}

type pullStepsInput struct {
	File string `json:"file"`
}

type sample struct {
	Date  string  `json:"date"`
	Value float64 `json:"value"`
}

func pullSteps(in *pluginrpc.ExecuteRequest) (*pluginrpc.ExecuteResponse, error) {
	var input pullStepsInput
	if err := json.Unmarshal([]byte(in.InputJSON), &input); err != nil || input.File == "" {
		return &pluginrpc.ExecuteResponse{Stderr: "input must be {\"file\":\"path\"}", ExitCode: 1}, nil
	}

	f, err := os.Open(input.File)
	if err != nil {
		return &pluginrpc.ExecuteResponse{Stderr: fmt.Sprintf("open csv: %v", err), ExitCode: 1}, nil
	}
	defer func() { _ = f.Close() }()

	rows, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return &pluginrpc.ExecuteResponse{Stderr: fmt.Sprintf("read csv: %v", err), ExitCode: 1}, nil
	}

	samples := make([]sample, 0, len(rows))
	for i, row := range rows {
		if len(row) != 2 {
			return &pluginrpc.ExecuteResponse{Stderr: fmt.Sprintf("row %d: want date,value", i+1), ExitCode: 1}, nil
		}
		day := strings.TrimSpace(row[0])
		if i == 0 && strings.EqualFold(day, "date") {
			continue
		}
		if _, err := time.Parse("2006-01-02", day); err != nil {
			return &pluginrpc.ExecuteResponse{Stderr: fmt.Sprintf("row %d: bad date %q", i+1, day), ExitCode: 1}, nil
		}
		value, err := strconv.ParseFloat(strings.TrimSpace(row[1]), 64)
		if err != nil {
			return &pluginrpc.ExecuteResponse{Stderr: fmt.Sprintf("row %d: bad value %q", i+1, row[1]), ExitCode: 1}, nil
		}
		samples = append(samples, sample{Date: day, Value: value})
	}

	payload, err := json.Marshal(map[string]any{"samples": samples})
	if err != nil {
		return &pluginrpc.ExecuteResponse{Stderr: fmt.Sprintf("encode payload: %v", err), ExitCode: 1}, nil
	}
	return &pluginrpc.ExecuteResponse{
		Stdout:     fmt.Sprintf("imported %d samples", len(samples)),
		OutputJSON: string(payload),
		ExitCode:   0,
	}, nil
}

func main() {
	plugin.Serve(&plugin.ServeConfig{
		HandshakeConfig: pluginrpc.HandshakeConfig,
		Plugins:         pluginrpc.PluginMap(&server{}),
		GRPCServer:      plugin.DefaultGRPCServer,
	})
}
