package lsp

import (
	"encoding/json"
	"testing"
)

func TestRawCapabilityLookup(t *testing.T) {
	s := NewServer(ServerConfig{Command: "test-server"}, "go")
	s.rawCapabilities = `{
		"hoverProvider": true,
		"semanticTokensProvider": {
			"legend": {"tokenTypes": ["keyword", "string"]}
		},
		"experimental": {"serverStatus": true}
	}`

	value, ok := s.RawCapability("hoverProvider")
	if !ok || value != "true" {
		t.Fatalf("hoverProvider = (%q, %v), want (true, true)", value, ok)
	}

	value, ok = s.RawCapability("semanticTokensProvider.legend.tokenTypes")
	if !ok {
		t.Fatal("expected nested token types path to resolve")
	}
	var types []string
	if err := json.Unmarshal([]byte(value), &types); err != nil {
		t.Fatalf("unmarshal token types: %v", err)
	}
	if len(types) != 2 || types[0] != "keyword" {
		t.Fatalf("token types = %v", types)
	}

	if _, ok := s.RawCapability("experimental.missing"); ok {
		t.Fatal("expected absent path to report ok=false")
	}
}

func TestRawCapabilityBeforeInitialize(t *testing.T) {
	s := NewServer(ServerConfig{Command: "test-server"}, "go")
	if _, ok := s.RawCapability("hoverProvider"); ok {
		t.Fatal("expected no capabilities before initialize")
	}
}

func TestServerConfigWithInitializationOption(t *testing.T) {
	cfg := ServerConfig{Command: "gopls"}
	cfg = cfg.WithInitializationOption("usePlaceholders", true)
	cfg = cfg.WithInitializationOption("hints.assignVariableTypes", true)

	raw, ok := cfg.InitializationOptions.(json.RawMessage)
	if !ok {
		t.Fatalf("InitializationOptions has type %T, want json.RawMessage", cfg.InitializationOptions)
	}

	var opts struct {
		UsePlaceholders bool `json:"usePlaceholders"`
		Hints           struct {
			AssignVariableTypes bool `json:"assignVariableTypes"`
		} `json:"hints"`
	}
	if err := json.Unmarshal(raw, &opts); err != nil {
		t.Fatalf("unmarshal options: %v", err)
	}
	if !opts.UsePlaceholders || !opts.Hints.AssignVariableTypes {
		t.Fatalf("options not applied: %s", raw)
	}
}
