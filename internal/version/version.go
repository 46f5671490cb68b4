package version

// Build information set by ldflags
var (
	Version = "dev"     // Set by goreleaser: -X github.com/quietfmt/murmur/internal/version.Version={{.Version}}
	Commit  = "unknown" // Set by goreleaser: -X github.com/quietfmt/murmur/internal/version.Commit={{.Commit}}
	Date    = "unknown" // Set by goreleaser: -X github.com/quietfmt/murmur/internal/version.Date={{.Date}}
)
