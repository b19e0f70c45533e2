package mcp

import (
	"context"
	"strings"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/easylandingweb/easylanding/internal/db"
	"github.com/easylandingweb/easylanding/internal/drafts"
	"github.com/easylandingweb/easylanding/internal/history"
	"github.com/easylandingweb/easylanding/internal/page"
	"github.com/easylandingweb/easylanding/internal/restaurant"
)

func setupServer(t *testing.T) (*Server, *drafts.Store, *history.Store) {
	t.Helper()
	database, err := db.OpenMemory()
	if err != nil {
		t.Fatalf("OpenMemory: %v", err)
	}
	t.Cleanup(func() { database.Close() })

	ds := drafts.NewStore(database)
	hs := history.NewStore(database)
	return NewServer(ds, hs, page.Options{}), ds, hs
}

// resultText extracts the text of a single-content tool result.
func resultText(t *testing.T, result *mcp.CallToolResult) string {
	t.Helper()
	if len(result.Content) == 0 {
		t.Fatal("empty result content")
	}
	tc, ok := result.Content[0].(mcp.TextContent)
	if !ok {
		t.Fatalf("content type = %T, want TextContent", result.Content[0])
	}
	return tc.Text
}

func TestToolDefinitions(t *testing.T) {
	tests := []struct {
		name     string
		tool     mcp.Tool
		wantName string
	}{
		{"generate_landing_page", generateLandingPageTool, "generate_landing_page"},
		{"resolve_style", resolveStyleTool, "resolve_style"},
		{"list_templates", listTemplatesTool, "list_templates"},
		{"list_drafts", listDraftsTool, "list_drafts"},
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
}

func TestNewServer(t *testing.T) {
	srv, ds, _ := setupServer(t)
	if srv.mcp == nil {
		t.Fatal("MCP server not initialized")
	}
	if srv.drafts != ds {
		t.Error("drafts store not set correctly")
	}

	bare := NewServer(nil, nil, page.Options{})
	if bare.mcp == nil {
		t.Fatal("MCP server without stores not initialized")
	}
}

func TestHandleGenerateLandingPage(t *testing.T) {
	srv, ds, hs := setupServer(t)
	ctx := context.Background()

	t.Run("inline record", func(t *testing.T) {
		req := mcp.CallToolRequest{}
		req.Params.Arguments = map[string]any{
			"record": map[string]any{
				"nom":      "Le Petit Bistrot",
				"accroche": "Cuisine maison",
				"images":   []any{"https://example.com/a.jpg", ""},
			},
		}

		result, err := srv.handleGenerateLandingPage(ctx, req)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if result.IsError {
			t.Fatalf("unexpected tool error: %v", result.Content)
		}

		want := restaurant.New()
		want.Name = "Le Petit Bistrot"
		want.Tagline = "Cuisine maison"
		want.Images = []string{"https://example.com/a.jpg", ""}
		if got := resultText(t, result); got != page.Generate(want, page.Options{}) {
			t.Error("tool output differs from page.Generate")
		}
	})

	t.Run("draft key", func(t *testing.T) {
		rec := restaurant.New()
		rec.Name = "Chez Marie"
		if _, err := ds.Save(ctx, "marie", rec); err != nil {
			t.Fatalf("Save: %v", err)
		}

		req := mcp.CallToolRequest{}
		req.Params.Arguments = map[string]any{"draft_key": "marie"}

		result, err := srv.handleGenerateLandingPage(ctx, req)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if result.IsError {
			t.Fatalf("unexpected tool error: %v", result.Content)
		}
		if !strings.Contains(resultText(t, result), "<title>Chez Marie</title>") {
			t.Error("expected draft name in title")
		}

		entries, _ := hs.Query(ctx, history.QueryFilter{DraftKey: "marie"})
		if len(entries) != 1 || entries[0].Target != "mcp" {
			t.Errorf("history = %+v", entries)
		}
	})

	t.Run("missing draft", func(t *testing.T) {
		req := mcp.CallToolRequest{}
		req.Params.Arguments = map[string]any{"draft_key": "nope"}

		result, err := srv.handleGenerateLandingPage(ctx, req)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !result.IsError {
			t.Error("expected error for missing draft")
		}
	})

	t.Run("no input", func(t *testing.T) {
		req := mcp.CallToolRequest{}
		req.Params.Arguments = map[string]any{}

		result, err := srv.handleGenerateLandingPage(ctx, req)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !result.IsError {
			t.Error("expected error when neither record nor draft_key is given")
		}
	})
}

func TestHandleResolveStyle(t *testing.T) {
	srv, _, _ := setupServer(t)
	ctx := context.Background()

	tests := []struct {
		name string
		args map[string]any
		want []string
	}{
		{
			"description implies ai",
			map[string]any{"description": "Un restaurant rouge et chaleureux"},
			[]string{"Mode: AI customization", "Palette: red", "Mood rules: warm", "Custom CSS:"},
		},
		{
			"unmatched description",
			map[string]any{"description": "quelque chose"},
			[]string{"Palette: none matched", "No custom CSS"},
		},
		{
			"template dark",
			map[string]any{"template": "rustic", "dark_mode": true, "ai": false},
			[]string{"Mode: template rustic (dark)"},
		},
		{
			"no arguments",
			map[string]any{},
			[]string{"Mode: template simple (light)"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := mcp.CallToolRequest{}
			req.Params.Arguments = tt.args

			result, err := srv.handleResolveStyle(ctx, req)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			text := resultText(t, result)
			for _, w := range tt.want {
				if !strings.Contains(text, w) {
					t.Errorf("output missing %q:\n%s", w, text)
				}
			}
		})
	}
}

func TestHandleListTemplates(t *testing.T) {
	srv, _, _ := setupServer(t)

	result, err := srv.handleListTemplates(context.Background(), mcp.CallToolRequest{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	text := resultText(t, result)
	for _, w := range []string{"- simple", "- elegant", "- modern", "- rustic", "red:", "warm:", "Instagram"} {
		if !strings.Contains(text, w) {
			t.Errorf("output missing %q", w)
		}
	}
}

func TestHandleListDrafts(t *testing.T) {
	srv, ds, _ := setupServer(t)
	ctx := context.Background()

	result, err := srv.handleListDrafts(ctx, mcp.CallToolRequest{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(resultText(t, result), "No drafts") {
		t.Error("expected empty-store message")
	}

	rec := restaurant.New()
	rec.Name = "Sushi Bar"
	ds.Save(ctx, "sushi", rec)

	result, _ = srv.handleListDrafts(ctx, mcp.CallToolRequest{})
	if text := resultText(t, result); !strings.Contains(text, "sushi: Sushi Bar") {
		t.Errorf("output = %s", text)
	}
}
