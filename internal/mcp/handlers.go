package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/easylandingweb/easylanding/internal/drafts"
	"github.com/easylandingweb/easylanding/internal/history"
	"github.com/easylandingweb/easylanding/internal/page"
	"github.com/easylandingweb/easylanding/internal/restaurant"
	"github.com/easylandingweb/easylanding/internal/style"
)

// handleGenerateLandingPage renders an inline record or a stored draft.
func (s *Server) handleGenerateLandingPage(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.GetArguments()
	key := request.GetString("draft_key", "")

	var rec restaurant.Record
	switch {
	case args["record"] != nil:
		data, err := json.Marshal(args["record"])
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("invalid record: %v", err)), nil
		}
		if rec, err = restaurant.Decode(strings.NewReader(string(data)), restaurant.FormatJSON); err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("invalid record: %v", err)), nil
		}
	case key != "":
		if s.drafts == nil {
			return mcp.NewToolResultError("no draft store configured"), nil
		}
		d, err := s.drafts.Load(ctx, key)
		if err != nil {
			if errors.Is(err, drafts.ErrNotFound) {
				return mcp.NewToolResultError(fmt.Sprintf("No draft named %q. Use list_drafts to see saved drafts.", key)), nil
			}
			return mcp.NewToolResultError(fmt.Sprintf("failed to load draft: %v", err)), nil
		}
		rec = d.Record
	default:
		return mcp.NewToolResultError("provide either record or draft_key"), nil
	}

	html := page.Generate(rec, s.opts)
	if s.history != nil {
		if err := s.history.LogPage(ctx, history.ActionGenerate, key, rec, html, "mcp"); err != nil {
			log.Printf("mcp: logging generate: %v", err)
		}
	}
	return mcp.NewToolResultText(html), nil
}

// handleResolveStyle explains the style a request resolves to.
func (s *Server) handleResolveStyle(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	desc := request.GetString("description", "")
	req := style.Request{
		Template:      request.GetString("template", ""),
		DarkMode:      request.GetBool("dark_mode", false),
		AIEnabled:     request.GetBool("ai", desc != ""),
		Customization: desc,
	}
	if !req.AIEnabled && req.Template == "" {
		req.Template = restaurant.DefaultTemplate
	}
	return mcp.NewToolResultText(formatStyle(req)), nil
}

// handleListTemplates lists everything a record can choose from.
func (s *Server) handleListTemplates(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var sb strings.Builder
	sb.WriteString("Templates (each has a light and a dark variant):\n")
	for _, t := range style.Templates() {
		sb.WriteString(fmt.Sprintf("- %s (%s): %s\n", t.ID, t.Name, t.Description))
	}

	sb.WriteString("\nColor groups, first match wins:\n")
	for _, r := range style.PaletteKeywords() {
		sb.WriteString(fmt.Sprintf("- %s: %s\n", r.Name, strings.Join(r.Keywords, ", ")))
	}

	sb.WriteString("\nMood groups, all matches apply in this order:\n")
	for _, r := range style.Rules() {
		sb.WriteString(fmt.Sprintf("- %s: %s\n", r.Name, strings.Join(r.Keywords, ", ")))
	}

	sb.WriteString(fmt.Sprintf("\nSocial networks with icons: %s (anything else uses the %s icon)\n",
		strings.Join(page.SocialPlatforms, ", "), page.FallbackIcon))
	return mcp.NewToolResultText(sb.String()), nil
}

// handleListDrafts lists saved drafts.
func (s *Server) handleListDrafts(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	list, err := s.drafts.List(ctx)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to list drafts: %v", err)), nil
	}
	if len(list) == 0 {
		return mcp.NewToolResultText("No drafts saved yet. Run `easylanding new` or `easylanding import` to create one."), nil
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Found %d draft(s):\n", len(list)))
	for _, d := range list {
		name := d.Name
		if name == "" {
			name = "(unnamed)"
		}
		sb.WriteString(fmt.Sprintf("- %s: %s, updated %s\n", d.Key, name, d.UpdatedAt.Format("2006-01-02 15:04")))
	}
	return mcp.NewToolResultText(sb.String()), nil
}

// formatStyle summarises a resolved style for an agent.
func formatStyle(req style.Request) string {
	var sb strings.Builder
	if !req.AIEnabled {
		id := style.ParseTemplateID(req.Template)
		variant := "light"
		if req.DarkMode {
			variant = "dark"
		}
		st := style.ForTemplate(id, req.DarkMode)
		sb.WriteString(fmt.Sprintf("Mode: template %s (%s)\n", id, variant))
		sb.WriteString(fmt.Sprintf("Background: %s\nText: %s\nPrimary: %s\nTitle font: %s\n",
			st.BackgroundColor, st.TextColor, st.PrimaryColor, st.TitleFont))
		return sb.String()
	}

	a := style.Analyze(req.Customization)
	sb.WriteString("Mode: AI customization\n")
	if a.Palette.Matched {
		sb.WriteString(fmt.Sprintf("Palette: %s (primary %s, accent %s)\n", a.Palette.Name, a.Palette.Primary, a.Palette.Accent))
	} else {
		sb.WriteString("Palette: none matched, base colors kept\n")
	}
	if len(a.Rules) > 0 {
		sb.WriteString(fmt.Sprintf("Mood rules: %s\n", strings.Join(a.Rules, ", ")))
	} else {
		sb.WriteString("Mood rules: none\n")
	}
	if a.FontImports != "" {
		sb.WriteString("\nFont imports:\n")
		sb.WriteString(a.FontImports)
	}
	if a.CSS != "" {
		sb.WriteString("\nCustom CSS:\n")
		sb.WriteString(a.CSS)
	} else {
		sb.WriteString("\nNo custom CSS: the description matched no keyword.\n")
	}
	return sb.String()
}
