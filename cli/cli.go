// Package cli provides the command-line interface for rendering dossiers
// and inspecting fonts.
package cli

import (
	"fmt"
	"os"
)

// Version information
var (
	Version   = "dev"
	BuildTime = "unknown"
)

// osExit is a variable for os.Exit to allow testing
var osExit = os.Exit

// Run executes the CLI with the given arguments.
// This is the main entry point for the CLI.
func Run(args []string) {
	if len(args) < 2 {
		Usage()
		return
	}

	command := args[1]

	switch command {
	case "render":
		RenderCommand(args)
	case "inspect-font":
		InspectFontCommand(args)
	case "version":
		VersionCommand()
	case "help", "-h", "--help":
		Usage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", command)
		Usage()
		osExit(2)
	}
}

// Usage prints the CLI usage information.
func Usage() {
	fmt.Printf("dossierpdf - arbitration dossier to PDF renderer\n\n")
	fmt.Printf("Usage: %s <command> [options] <args>\n\n", os.Args[0])
	fmt.Println("Commands:")
	fmt.Println("  render        Render a dossier (YAML or JSON) to PDF")
	fmt.Println("  inspect-font  Show the metrics and glyph mapping of a font")
	fmt.Println("  version       Show version information")
	fmt.Println("  help          Show this help message")
	fmt.Println("")
	fmt.Printf("Use '%s <command> -h' for command-specific help\n", os.Args[0])
	fmt.Println("")
	fmt.Println("Examples:")
	fmt.Printf("  %s render dossier.yaml\n", os.Args[0])
	fmt.Printf("  %s render -config dossierpdf.yaml -o out/ dossier.json\n", os.Args[0])
	fmt.Printf("  %s inspect-font -chars \"Hồ sơ\" LiberationSans-Regular.ttf\n", os.Args[0])
}

// VersionCommand prints version information.
func VersionCommand() {
	fmt.Printf("dossierpdf version %s\n", Version)
	fmt.Printf("Build time: %s\n", BuildTime)
}
