// Command dossierpdf renders arbitration dossiers to PDF.
//
// Usage:
//
//	dossierpdf <command> [options] <args>
//
// Commands:
//
//	render        Render a dossier (YAML or JSON) to PDF
//	inspect-font  Show the metrics and glyph mapping of a font
//	version       Show version information
//	help          Show help message
//
// Examples:
//
//	# Render next to the working directory, named after the case
//	dossierpdf render dossier.yaml
//
//	# Use a configuration file and write into a directory
//	dossierpdf render -config dossierpdf.yaml -o out/ dossier.json
//
//	# Check how a font maps Vietnamese text
//	dossierpdf inspect-font -chars "Hồ sơ" LiberationSans-Regular.ttf
package main

import (
	"os"

	"github.com/Anhcodervuive/Freelancer-Client-matching-platform-be-sub000/cli"
)

// These variables are set at build time using ldflags:
//
//	go build -ldflags "-X main.version=1.0.0 -X main.buildTime=$(date -u +%Y-%m-%dT%H:%M:%SZ)" ./cmd/dossierpdf
var (
	version   = "dev"
	buildTime = "unknown"
)

func main() {
	cli.Version = version
	cli.BuildTime = buildTime

	cli.Run(os.Args)
}
