// Package murmur composes short runs of terminal output: an optional
// semantic icon followed by one or more lines, each optionally
// colored.
//
// A Whisper is built fluently and rendered once:
//
//	err := murmur.New().
//		Icon(icons.Check).
//		Message("packages installed").
//		Message("3 skipped").
//		Whisper()
//
// The first line carries the icon glyph; continuation lines are
// indented two spaces beneath it. Colors come from the icon's default
// unless a line overrides them. Rendering failures surface as coded
// errors (see pkg/errors); callers decide whether to propagate,
// convert, or ignore them. The package never retries or swallows a
// failure itself.
package murmur
