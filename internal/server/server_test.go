package server

import (
	"context"
	"errors"
	"testing"

	"github.com/roamkit/roam-mcp/internal/config"
	"github.com/roamkit/roam-mcp/internal/logging"
	"github.com/roamkit/roam-mcp/internal/roam"
	"github.com/roamkit/roam-mcp/internal/roamerr"
)

// stubGateway satisfies tools.Gateway without touching the network.
type stubGateway struct{}

func (stubGateway) PageContent(ctx context.Context, title string) ([]roam.BlockContent, error) {
	return nil, nil
}

func (stubGateway) PageReferences(ctx context.Context, title string, limit int, cursor *int64) (*roam.ReferencePage, error) {
	return &roam.ReferencePage{}, nil
}

func (stubGateway) AppendToPage(ctx context.Context, title, content string) (string, error) {
	return "uid", nil
}

func (stubGateway) AppendToToday(ctx context.Context, content string) (string, error) {
	return "uid", nil
}

func TestNewRegistersNotebookTools(t *testing.T) {
	srv, err := New(&Options{
		Logger:  logging.NewLogger("error"),
		Gateway: stubGateway{},
	})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	registry := srv.GetRegistry()
	if registry.Count() != 4 {
		t.Errorf("registered tools = %d, want 4", registry.Count())
	}
	for _, name := range []string{"get_page_content", "get_page_references", "write_to_page", "write_to_today"} {
		if _, ok := registry.Get(name); !ok {
			t.Errorf("tool %q not registered", name)
		}
	}

	if err := srv.Start(context.Background()); err != nil {
		t.Errorf("Start failed: %v", err)
	}
	if err := srv.Stop(context.Background()); err != nil {
		t.Errorf("Stop failed: %v", err)
	}
}

func TestNewFailsOnInvalidConfiguration(t *testing.T) {
	_, err := New(&Options{
		Logger: logging.NewLogger("error"),
		Config: &config.Config{Graph: "g"}, // no token
	})
	if err == nil {
		t.Fatal("expected configuration error")
	}
	if !errors.Is(err, roamerr.ErrConfiguration) {
		t.Errorf("error %v is not a configuration error", err)
	}
}
