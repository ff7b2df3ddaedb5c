package main

import (
	"testing"

	"github.com/goliatone/go-binsize/pkg/symbol"
)

func TestResolveToolFlagWinsOverConfig(t *testing.T) {
	cases := []struct {
		name        string
		flagValue   string
		configValue string
		flagSet     bool
		want        string
	}{
		{"default flag, no config", "nm", "", false, "nm"},
		{"default flag, config set", "nm", "arm-none-eabi-nm", false, "arm-none-eabi-nm"},
		{"explicit flag, config set", "llvm-nm", "arm-none-eabi-nm", true, "llvm-nm"},
		{"explicit flag repeating the default", "nm", "arm-none-eabi-nm", true, "nm"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := resolveTool(tc.flagValue, tc.configValue, tc.flagSet); got != tc.want {
				t.Fatalf("resolveTool(%q, %q, %v) = %q, want %q",
					tc.flagValue, tc.configValue, tc.flagSet, got, tc.want)
			}
		})
	}
}

func TestResolveSource(t *testing.T) {
	if src := resolveSource("dump.nm", "", "nm"); src == nil || src.Kind() != symbol.SourceKindFile {
		t.Fatalf("file source not resolved: %v", src)
	}

	src := resolveSource("", "/bin/app", "llvm-nm")
	tool, ok := src.(symbol.ToolSource)
	if !ok {
		t.Fatalf("tool source not resolved: %v", src)
	}
	if tool.Tool() != "llvm-nm" || tool.Binary() != "/bin/app" {
		t.Fatalf("tool source fields: %q %q", tool.Tool(), tool.Binary())
	}

	if src := resolveSource("", "", "nm"); src != nil {
		t.Fatalf("expected nil source without inputs, got %v", src)
	}
}
