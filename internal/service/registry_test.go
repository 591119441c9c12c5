package service

import (
	"context"
	"testing"

	"github.com/sudoguy/kibitzr/internal/types"
)

type mockProvider struct {
	id string
}

func (m *mockProvider) Definition() types.Service {
	return types.Service{
		ID:           m.id,
		Name:         "Mock Service",
		Description:  "A mock service for testing",
		Category:     types.CategoryTransform,
		Capabilities: []string{"render"},
		Tools: []types.Tool{
			{
				ID:          m.id + ".test",
				Name:        "Test Tool",
				Description: "A test tool",
				Returns:     "string",
			},
		},
	}
}

func (m *mockProvider) Execute(ctx context.Context, toolID string, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	return &types.Result{
		Success: true,
		Data:    map[string]interface{}{"tool": toolID},
	}, nil
}

func TestRegister(t *testing.T) {
	r := NewRegistry()
	p := &mockProvider{id: "test"}

	if err := r.Register(p); err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	if _, ok := r.Get("test"); !ok {
		t.Error("Service should be registered")
	}

	if err := r.Register(&mockProvider{id: "test"}); err == nil {
		t.Error("Duplicate registration should fail")
	}

	if err := r.Register(&mockProvider{}); err == nil {
		t.Error("Empty service ID should fail")
	}
}

func TestList(t *testing.T) {
	r := NewRegistry()
	r.Register(&mockProvider{id: "test2"})
	r.Register(&mockProvider{id: "test1"})

	services := r.List(nil)
	if len(services) != 2 {
		t.Fatalf("Expected 2 services, got %d", len(services))
	}
	if services[0].ID != "test1" {
		t.Errorf("Expected sorted services, got %s first", services[0].ID)
	}

	cat := types.CategoryTransform
	filtered := r.List(&cat)
	if len(filtered) != 2 {
		t.Errorf("Expected 2 transform services, got %d", len(filtered))
	}

	other := types.Category("other")
	if len(r.List(&other)) != 0 {
		t.Error("Expected no services in unknown category")
	}
}

func TestTools(t *testing.T) {
	r := NewRegistry()
	r.Register(&mockProvider{id: "b"})
	r.Register(&mockProvider{id: "a"})

	tools := r.Tools()
	if len(tools) != 2 || tools[0] != "a.test" || tools[1] != "b.test" {
		t.Errorf("Unexpected tools: %v", tools)
	}
}

func TestExecute(t *testing.T) {
	r := NewRegistry()
	r.Register(&mockProvider{id: "test"})

	result, err := r.Execute(context.Background(), "test.test", nil, nil)
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}
	if !result.Success || result.Data["tool"] != "test.test" {
		t.Errorf("Unexpected result: %+v", result)
	}

	result, err = r.Execute(context.Background(), "missing.tool", nil, nil)
	if err == nil || result.Success {
		t.Error("Unknown service should fail")
	}

	result, err = r.Execute(context.Background(), "notool", nil, nil)
	if err == nil || result.Success {
		t.Error("Invalid tool ID should fail")
	}
}

func TestStats(t *testing.T) {
	r := NewRegistry()
	r.Register(&mockProvider{id: "test1"})
	r.Register(&mockProvider{id: "test2"})

	stats := r.Stats()
	if stats["total_services"] != 2 {
		t.Errorf("Expected 2 services, got %v", stats["total_services"])
	}
	if stats["total_tools"] != 2 {
		t.Errorf("Expected 2 tools, got %v", stats["total_tools"])
	}
}
