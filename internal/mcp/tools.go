package mcp

import "github.com/mark3labs/mcp-go/mcp"

// listCharactersTool defines the list_characters MCP tool.
var listCharactersTool = mcp.NewTool("list_characters",
	mcp.WithDescription("List every character in the gallery with id, name, role and tags."),
)

// getCharacterTool defines the get_character MCP tool.
var getCharacterTool = mcp.NewTool("get_character",
	mcp.WithDescription("Get the full profile of one character: quote, profile text, age, gender, species, role, ability and wants."),
	mcp.WithNumber("id",
		mcp.Required(),
		mcp.Description("Character id as shown by list_characters"),
	),
)

// generateCharacterTool defines the generate_character MCP tool.
var generateCharacterTool = mcp.NewTool("generate_character",
	mcp.WithDescription("Run one simulated character generation and return the generated character. Fails while another generation is in progress."),
)
