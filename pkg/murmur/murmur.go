package murmur

import (
	"bufio"
	"io"
	"os"

	"github.com/quietfmt/murmur/pkg/colors"
	"github.com/quietfmt/murmur/pkg/errors"
	"github.com/quietfmt/murmur/pkg/icons"
	"github.com/quietfmt/murmur/pkg/logging"
)

// bufferSize is the capacity of the buffer in front of the sink.
const bufferSize = 8192

// continuationIndent prefixes every line after the first, visually
// subordinating it under the leading icon or message.
const continuationIndent = "  "

// Line is a single unit of text with an optional color override.
// When Color is empty the line inherits the icon's default color, or
// renders uncolored if no icon is set.
type Line struct {
	Text  string
	Color string
}

// Whisper accumulates an optional icon and an ordered sequence of
// lines, then renders them to its sink. A Whisper belongs to one call
// site and is consumed by the terminal Whisper call; it must not be
// shared across goroutines.
type Whisper struct {
	kind     icons.Kind
	hasIcon  bool
	lines    []Line
	out      io.Writer
	consumed bool
}

// New returns an empty builder writing to stdout.
func New() *Whisper {
	return &Whisper{out: os.Stdout}
}

// Icon sets the builder's icon, replacing any prior one. The registry
// lookup is deferred to render time.
func (w *Whisper) Icon(kind icons.Kind) *Whisper {
	w.kind = kind
	w.hasIcon = true
	return w
}

// Message appends one line, preserving call order. An empty string is
// valid and produces a blank rendered line.
func (w *Whisper) Message(text string) *Whisper {
	w.lines = append(w.lines, Line{Text: text})
	return w
}

// ColoredMessage appends one line with an explicit color override,
// which takes precedence over the icon's default color.
func (w *Whisper) ColoredMessage(text string, color string) *Whisper {
	w.lines = append(w.lines, Line{Text: text, Color: color})
	return w
}

// Messages appends each text as a line with no color override, in
// argument order.
func (w *Whisper) Messages(texts ...string) *Whisper {
	for _, text := range texts {
		w.lines = append(w.lines, Line{Text: text})
	}
	return w
}

// ToWriter redirects rendering from stdout to the given sink.
func (w *Whisper) ToWriter(out io.Writer) *Whisper {
	w.out = out
	return w
}

// Whisper renders the accumulated state and consumes the builder.
//
// Rendering rules: the first line carries the icon glyph as prefix
// (when an icon is set); every later line carries a two-space indent
// and no glyph. Each line's effective color is its own override, else
// the icon's default, else none. An icon with no lines renders the
// bare glyph line; no icon and no lines renders nothing. The first
// sink failure aborts the remaining lines; output already written is
// not retracted.
//
// After a successful or failed render the builder is spent: further
// Whisper calls fail with the CONSUMED code and write nothing.
func (w *Whisper) Whisper() error {
	if w.consumed {
		return errors.New(errors.ErrConsumed, "whisper already rendered")
	}
	w.consumed = true

	lines := w.lines
	w.lines = nil

	if !w.hasIcon && len(lines) == 0 {
		return nil
	}

	var glyph, defaultColor string
	if w.hasIcon {
		icon := icons.Lookup(w.kind)
		glyph, defaultColor = icon.Glyph, icon.Color
	}

	renderLogger := logging.GetLogger("murmur")
	renderLogger.Trace().
		Str("icon", string(w.kind)).
		Int("lines", len(lines)).
		Msg("Rendering whisper")

	sink := bufio.NewWriterSize(w.out, bufferSize)

	if len(lines) == 0 {
		return emit(sink, 0, colors.Colorize(glyph, defaultColor))
	}

	for i, line := range lines {
		var prefix string
		switch {
		case i > 0:
			prefix = continuationIndent
		case w.hasIcon:
			prefix = glyph + " "
		}

		color := line.Color
		if color == "" {
			color = defaultColor
		}

		if err := emit(sink, i, colors.Colorize(prefix+line.Text, color)); err != nil {
			return err
		}
	}
	return nil
}

// emit writes one terminated line through the buffer and flushes it,
// so the sink sees exactly one write per rendered line.
func emit(sink *bufio.Writer, index int, text string) error {
	if _, err := sink.WriteString(text + "\n"); err != nil {
		return errors.Wrap(err, errors.ErrWrite, "failed to write message").WithDetail("line", index)
	}
	if err := sink.Flush(); err != nil {
		return errors.Wrap(err, errors.ErrFlush, "failed to flush output").WithDetail("line", index)
	}
	return nil
}
