package main

import (
	"os"

	"github.com/quietfmt/murmur/pkg/icons"
	"github.com/quietfmt/murmur/pkg/murmur"
)

func main() {
	if err := Execute(); err != nil {
		// Report our own failures with our own output.
		_ = murmur.New().
			ToWriter(os.Stderr).
			Icon(icons.Cross).
			Message(err.Error()).
			Whisper()
		os.Exit(1)
	}
}
