// Package cmd holds the folio build metadata, injected via ldflags:
//
//	go build -ldflags "-X github.com/nahidreza/folio/cmd.Version=v1.2.0" ./cmd/folio
package cmd

var (
	// Version is the semantic version of the build.
	Version = "dev"
	// Commit is the git commit SHA of the build.
	Commit = "none"
	// Date is the build date.
	Date = "unknown"
)
