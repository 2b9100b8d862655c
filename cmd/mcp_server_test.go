package cmd

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/HullComputing/uisnap/internal/model"
)

func TestStringParam(t *testing.T) {
	params := map[string]interface{}{"component": "com.example/Main", "count": float64(3)}
	if got := stringParam(params, "component", ""); got != "com.example/Main" {
		t.Errorf("expected component, got %q", got)
	}
	if got := stringParam(params, "missing", "fallback"); got != "fallback" {
		t.Errorf("expected fallback, got %q", got)
	}
	if got := stringParam(params, "count", "def"); got != "def" {
		t.Errorf("non-string param should fall back, got %q", got)
	}
}

func TestHandleDump(t *testing.T) {
	snap := &model.Snapshot{
		Component: "com.example/Main",
		Windows: []model.WindowNode{{
			Width: 100, Height: 50,
			Root: model.ElementNode{ClassName: "android.widget.Button"},
		}},
	}
	data, err := snap.Encode()
	if err != nil {
		t.Fatalf("encode failed: %v", err)
	}
	file := filepath.Join(t.TempDir(), "ui.snapshot")
	if err := os.WriteFile(file, data, 0644); err != nil {
		t.Fatalf("write failed: %v", err)
	}

	s, err := newMCPServer()
	if err != nil {
		t.Fatalf("server init failed: %v", err)
	}
	request := mcp.CallToolRequest{}
	request.Params.Arguments = map[string]interface{}{"file": file}

	result, err := s.handleDump(nil, request)
	if err != nil {
		t.Fatalf("handler failed: %v", err)
	}
	if result.IsError {
		t.Fatalf("unexpected tool error: %+v", result.Content)
	}
	text := result.Content[0].(mcp.TextContent).Text
	if !strings.Contains(text, "android.widget.Button") {
		t.Errorf("dump output missing element class:\n%s", text)
	}
	if !strings.Contains(text, "Component: com.example/Main") {
		t.Errorf("dump output missing component:\n%s", text)
	}
}

func TestHandleDumpCorruptFile(t *testing.T) {
	file := filepath.Join(t.TempDir(), "bad.snapshot")
	if err := os.WriteFile(file, []byte{0xee, 0x01, 0x02}, 0644); err != nil {
		t.Fatalf("write failed: %v", err)
	}
	s, err := newMCPServer()
	if err != nil {
		t.Fatalf("server init failed: %v", err)
	}
	request := mcp.CallToolRequest{}
	request.Params.Arguments = map[string]interface{}{"file": file}

	result, err := s.handleDump(nil, request)
	if err != nil {
		t.Fatalf("handler failed: %v", err)
	}
	if !result.IsError {
		t.Error("expected tool error for corrupt stream")
	}
}

func TestHandleCaptureMissingComponent(t *testing.T) {
	s, err := newMCPServer()
	if err != nil {
		t.Fatalf("server init failed: %v", err)
	}
	request := mcp.CallToolRequest{}
	request.Params.Arguments = map[string]interface{}{}

	result, err := s.handleCapture(nil, request)
	if err != nil {
		t.Fatalf("handler failed: %v", err)
	}
	if !result.IsError {
		t.Error("expected tool error for missing component")
	}
}
