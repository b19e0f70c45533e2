package mcp

import "github.com/mark3labs/mcp-go/mcp"

// generateLandingPageTool defines the generate_landing_page MCP tool.
var generateLandingPageTool = mcp.NewTool("generate_landing_page",
	mcp.WithDescription("Generate a complete, self-contained restaurant landing page (index.html) from a restaurant record or a saved draft."),
	mcp.WithObject("record",
		mcp.Description("Restaurant record using the form export keys: nom, accroche, banniere_url, images, adresse, maps_url, telephone, horaires, socials [{nom, url}], template, darkMode, customization, aiCustomizationEnabled"),
	),
	mcp.WithString("draft_key",
		mcp.Description("Render the draft saved under this key instead of an inline record"),
	),
)

// resolveStyleTool defines the resolve_style MCP tool.
var resolveStyleTool = mcp.NewTool("resolve_style",
	mcp.WithDescription("Show how a template choice or a free-text mood description is turned into page styles: palette, rule groups, font imports and the generated CSS."),
	mcp.WithString("description",
		mcp.Description("Free-text description of the desired look, e.g. \"rouge et chaleureux\""),
	),
	mcp.WithString("template",
		mcp.Description("Template id used when ai is false"),
		mcp.Enum("simple", "elegant", "modern", "rustic"),
	),
	mcp.WithBoolean("dark_mode",
		mcp.Description("Use the dark variant of the template"),
	),
	mcp.WithBoolean("ai",
		mcp.Description("Resolve from the description instead of the template (default true when a description is given)"),
	),
)

// listTemplatesTool defines the list_templates MCP tool.
var listTemplatesTool = mcp.NewTool("list_templates",
	mcp.WithDescription("List the built-in templates, color keyword groups, mood keyword groups and recognised social networks."),
)

// listDraftsTool defines the list_drafts MCP tool.
var listDraftsTool = mcp.NewTool("list_drafts",
	mcp.WithDescription("List the saved restaurant drafts."),
)
