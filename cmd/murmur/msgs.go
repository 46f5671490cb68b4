package main

import (
	_ "embed"
	"strings"
)

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort    = "Colored terminal messages with semantic icons"
	MsgIconsShort   = "List the available icons"
	MsgIconsLong    = "List every icon kind with its glyph and default color. Any kind here can be passed to --icon."
	MsgDocsShort    = "Show the usage guide"
	MsgVersionShort = "Print version information"

	// Flag descriptions
	MsgFlagVerbose = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagIcon    = "Icon kind to prefix the first line with (see 'murmur icons')"
	MsgFlagColor   = "Color override applied to every line"
	MsgFlagOutput  = "Output mode: auto, term, or text"
	MsgFlagTheme   = "Path to a theme file overriding icon glyphs and colors"

	// Error messages
	MsgErrLoadTheme  = "failed to load theme: %w"
	MsgErrApplyTheme = "failed to apply theme: %w"
	MsgErrBadIcon    = "invalid --icon: %w"
	MsgErrBadColor   = "unknown --color '%s'"
	MsgErrBadOutput  = "invalid --output: %w"
	MsgErrRender     = "failed to render message: %w"
	MsgErrListIcons  = "failed to render icon table: %w"
)

// Longer messages embedded from text files
var (
	//go:embed msgs/usage-template.txt
	msgUsageTemplateRaw string
	MsgUsageTemplate    = strings.TrimSpace(msgUsageTemplateRaw)
)
