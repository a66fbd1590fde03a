package mcp

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/ziadkadry99/ai-heroes/internal/catalog"
	"github.com/ziadkadry99/ai-heroes/internal/generator"
)

// immediate runs the completion as soon as it is scheduled.
func immediate(_ time.Duration, f func()) { f() }

func resultText(t *testing.T, result *mcp.CallToolResult) string {
	t.Helper()
	var b strings.Builder
	for _, c := range result.Content {
		if tc, ok := c.(mcp.TextContent); ok {
			b.WriteString(tc.Text)
		}
	}
	return b.String()
}

func TestToolDefinitions(t *testing.T) {
	// Verify tool names and required properties.
	tests := []struct {
		name     string
		tool     mcp.Tool
		wantName string
	}{
		{"list_characters", listCharactersTool, "list_characters"},
		{"get_character", getCharacterTool, "get_character"},
		{"generate_character", generateCharacterTool, "generate_character"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.tool.Name != tt.wantName {
				t.Errorf("tool name = %q, want %q", tt.tool.Name, tt.wantName)
			}
			if tt.tool.Description == "" {
				t.Error("tool description should not be empty")
			}
		})
	}

	if len(getCharacterTool.InputSchema.Required) != 1 || getCharacterTool.InputSchema.Required[0] != "id" {
		t.Errorf("get_character should require id, got %v", getCharacterTool.InputSchema.Required)
	}
}

func TestNewServer(t *testing.T) {
	cat := catalog.Default()
	srv := NewServer(cat, generator.New(cat))

	if srv == nil {
		t.Fatal("NewServer returned nil")
	}
	if srv.mcp == nil {
		t.Fatal("MCP server not initialized")
	}
	if srv.cat != cat {
		t.Error("catalog not set correctly")
	}
}

func TestHandleListCharacters(t *testing.T) {
	cat := catalog.Default()
	srv := NewServer(cat, generator.New(cat))

	result, err := srv.handleListCharacters(context.Background(), mcp.CallToolRequest{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.IsError {
		t.Fatalf("unexpected tool error: %v", result.Content)
	}
	text := resultText(t, result)
	for _, c := range cat.All() {
		if !strings.Contains(text, c.Name) {
			t.Errorf("listing is missing %q", c.Name)
		}
	}
	if !strings.Contains(text, "(6)") {
		t.Errorf("expected count in heading, got %q", text)
	}
}

func TestHandleGetCharacter(t *testing.T) {
	cat := catalog.Default()
	srv := NewServer(cat, generator.New(cat))
	ctx := context.Background()

	t.Run("known id", func(t *testing.T) {
		req := mcp.CallToolRequest{}
		req.Params.Arguments = map[string]any{"id": float64(2)}

		result, err := srv.handleGetCharacter(ctx, req)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if result.IsError {
			t.Fatalf("unexpected tool error: %v", result.Content)
		}
		text := resultText(t, result)
		for _, want := range []string{"Sayuki Mizuki", "Aquatic Hybrid", "「"} {
			if !strings.Contains(text, want) {
				t.Errorf("expected %q in %q", want, text)
			}
		}
	})

	t.Run("unknown id", func(t *testing.T) {
		req := mcp.CallToolRequest{}
		req.Params.Arguments = map[string]any{"id": float64(999)}

		result, err := srv.handleGetCharacter(ctx, req)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !result.IsError {
			t.Error("expected error for unknown id")
		}
	})

	t.Run("missing id", func(t *testing.T) {
		req := mcp.CallToolRequest{}
		req.Params.Arguments = map[string]any{}

		result, err := srv.handleGetCharacter(ctx, req)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !result.IsError {
			t.Error("expected error for missing id")
		}
	})
}

func TestHandleGenerateCharacter(t *testing.T) {
	cat := catalog.Default()
	srv := NewServer(cat, generator.New(cat, generator.WithAfterFunc(immediate)))

	result, err := srv.handleGenerateCharacter(context.Background(), mcp.CallToolRequest{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.IsError {
		t.Fatalf("unexpected tool error: %v", result.Content)
	}

	text := resultText(t, result)
	found := false
	for _, c := range cat.All() {
		if strings.Contains(text, c.Name) {
			found = true
		}
	}
	if !found {
		t.Errorf("result does not name a catalog character: %q", text)
	}
}

func TestHandleGenerateCharacterBusy(t *testing.T) {
	cat := catalog.Default()
	hold := func(time.Duration, func()) {}
	sim := generator.New(cat, generator.WithAfterFunc(hold))
	srv := NewServer(cat, sim)

	if _, err := sim.Trigger(); err != nil {
		t.Fatalf("Trigger: %v", err)
	}

	result, err := srv.handleGenerateCharacter(context.Background(), mcp.CallToolRequest{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !result.IsError {
		t.Error("expected busy error")
	}
}

func TestHandleGenerateCharacterCancelled(t *testing.T) {
	cat := catalog.Default()
	hold := func(time.Duration, func()) {}
	srv := NewServer(cat, generator.New(cat, generator.WithAfterFunc(hold)))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	result, err := srv.handleGenerateCharacter(ctx, mcp.CallToolRequest{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !result.IsError {
		t.Error("expected error when the caller gives up")
	}
}
