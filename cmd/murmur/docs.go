package main

import (
	_ "embed"
	"fmt"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"
)

//go:embed docs/usage.md
var usageGuide string

// newDocsCmd creates the docs command
func newDocsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "docs",
		Short: MsgDocsShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprint(cmd.OutOrStdout(), renderMarkdown(usageGuide))
			return nil
		},
	}
}

// renderMarkdown converts markdown to styled terminal output, falling
// back to the raw text when the renderer cannot be used.
func renderMarkdown(content string) string {
	renderer, err := glamour.NewTermRenderer(glamour.WithAutoStyle())
	if err != nil {
		return content
	}

	rendered, err := renderer.Render(content)
	if err != nil {
		return content
	}
	return rendered
}
