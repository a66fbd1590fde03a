package mcp

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/ziadkadry99/ai-heroes/internal/catalog"
	"github.com/ziadkadry99/ai-heroes/internal/generator"
	"github.com/ziadkadry99/ai-heroes/internal/views"
)

// handleListCharacters returns one line per catalog entry.
func (s *Server) handleListCharacters(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var b strings.Builder
	fmt.Fprintf(&b, "# Characters (%d)\n\n", s.cat.Len())
	for _, c := range s.cat.All() {
		fmt.Fprintf(&b, "- [%d] %s %s, %s (%s)\n", c.ID, c.Icon, c.Name, c.Role, strings.Join(c.Tags(), " / "))
	}
	return mcp.NewToolResultText(b.String()), nil
}

// handleGetCharacter returns the detail fields of one character.
func (s *Server) handleGetCharacter(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, err := request.RequireInt("id")
	if err != nil {
		return mcp.NewToolResultError("missing required parameter: id"), nil
	}

	c, err := s.cat.ByID(id)
	if errors.Is(err, catalog.ErrNotFound) {
		return mcp.NewToolResultError(fmt.Sprintf("No character with id %d. Use list_characters to see valid ids.", id)), nil
	}
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("lookup failed: %v", err)), nil
	}

	return mcp.NewToolResultText(formatCharacter(c)), nil
}

// handleGenerateCharacter triggers a generation and waits for its result.
func (s *Server) handleGenerateCharacter(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	job, err := s.sim.Trigger()
	if errors.Is(err, generator.ErrBusy) {
		return mcp.NewToolResultError("A generation is already in progress. Try again shortly."), nil
	}
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("generation failed: %v", err)), nil
	}

	res, err := generator.Wait(ctx, job)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("waiting for generation %s: %v", job.ID, err)), nil
	}

	took := res.FinishedAt.Sub(res.StartedAt)
	return mcp.NewToolResultText(fmt.Sprintf("Generated in %s (job %s)\n\n%s", took.Round(time.Millisecond), job.ID, formatCharacter(res.Character))), nil
}

// formatCharacter renders a character as Markdown.
func formatCharacter(c catalog.Character) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s %s\n\n", c.Icon, c.Name)
	fmt.Fprintf(&b, "> %s\n\n", views.QuoteText(c.Quote))
	fmt.Fprintf(&b, "%s\n\n", c.Profile)
	fmt.Fprintf(&b, "- **Age:** %s\n", c.Age)
	fmt.Fprintf(&b, "- **Gender:** %s\n", c.Gender)
	fmt.Fprintf(&b, "- **Species:** %s\n", c.Species)
	fmt.Fprintf(&b, "- **Role:** %s\n", c.Role)
	fmt.Fprintf(&b, "- **Ability:** %s\n", c.Ability)
	fmt.Fprintf(&b, "- **Wants:** %s\n", c.Wants)
	return b.String()
}
