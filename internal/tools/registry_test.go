package tools

import (
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func testTool(name string) *ServerTool {
	return &ServerTool{
		Tool:         &mcp.Tool{Name: name, Description: "test tool"},
		RegisterFunc: func(server *mcp.Server) {},
	}
}

func TestRegistryRegister(t *testing.T) {
	r := NewRegistry()

	if err := r.Register(testTool("alpha")); err != nil {
		t.Fatalf("Register failed: %v", err)
	}
	if err := r.Register(testTool("alpha")); err == nil {
		t.Error("expected error for duplicate registration")
	}
	if err := r.Register(testTool("")); err == nil {
		t.Error("expected error for empty tool name")
	}
	if err := r.Register(nil); err == nil {
		t.Error("expected error for nil tool")
	}

	if r.Count() != 1 {
		t.Errorf("Count() = %d, want 1", r.Count())
	}
	if _, ok := r.Get("alpha"); !ok {
		t.Error("Get failed to find registered tool")
	}
}

func TestRegistryListSorted(t *testing.T) {
	r := NewRegistry()
	for _, name := range []string{"write_to_today", "get_page_content", "write_to_page"} {
		if err := r.Register(testTool(name)); err != nil {
			t.Fatalf("Register(%s) failed: %v", name, err)
		}
	}

	names := r.List()
	expected := []string{"get_page_content", "write_to_page", "write_to_today"}
	if len(names) != len(expected) {
		t.Fatalf("List() = %v, want %v", names, expected)
	}
	for i := range expected {
		if names[i] != expected[i] {
			t.Errorf("List()[%d] = %q, want %q", i, names[i], expected[i])
		}
	}
}

func TestRegistryValidate(t *testing.T) {
	r := NewRegistry()
	if err := r.Register(testTool("ok")); err != nil {
		t.Fatal(err)
	}
	if err := r.Validate(); err != nil {
		t.Errorf("Validate() = %v, want nil", err)
	}

	bad := NewRegistry()
	if err := bad.Register(&ServerTool{
		Tool:         &mcp.Tool{Name: "no-description"},
		RegisterFunc: func(server *mcp.Server) {},
	}); err != nil {
		t.Fatal(err)
	}
	if err := bad.Validate(); err == nil {
		t.Error("expected validation error for empty description")
	}
}
