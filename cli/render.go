package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"golang.org/x/term"

	"github.com/Anhcodervuive/Freelancer-Client-matching-platform-be-sub000/config"
	"github.com/Anhcodervuive/Freelancer-Client-matching-platform-be-sub000/dossier"
	"github.com/Anhcodervuive/Freelancer-Client-matching-platform-be-sub000/pdf"
)

// ErrTerminalOutput is returned when PDF bytes would be written to an
// interactive terminal.
var ErrTerminalOutput = errors.New("refusing to write PDF data to a terminal (use -force)")

// RenderOptions contains options for the render command.
type RenderOptions struct {
	ConfigPath string
	Output     string
	Verbose    bool
	Force      bool
}

// isTerminal reports whether w is an interactive terminal.
var isTerminal = func(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// RenderCommand implements the 'render' command.
func RenderCommand(args []string) {
	renderFlags := flag.NewFlagSet("render", flag.ExitOnError)

	var opts RenderOptions

	renderFlags.StringVar(&opts.ConfigPath, "config", "", "Configuration file (YAML)")
	renderFlags.StringVar(&opts.Output, "o", "", "Output file or directory; '-' writes to stdout (default: the dossier's file name)")
	renderFlags.BoolVar(&opts.Verbose, "v", false, "Log at debug level")
	renderFlags.BoolVar(&opts.Force, "force", false, "Write to stdout even when it is a terminal")

	renderFlags.Usage = func() {
		fmt.Printf("Usage: %s render [options] <dossier.yaml>\n\n", os.Args[0])
		fmt.Println("Render an arbitration dossier to PDF.")
		fmt.Println("")
		fmt.Println("Arguments:")
		fmt.Println("  dossier.yaml  Dossier description in YAML or JSON")
		fmt.Println("")
		fmt.Println("Options:")
		renderFlags.PrintDefaults()
		fmt.Println("")
		fmt.Println("Examples:")
		fmt.Printf("  %s render dossier.yaml\n", os.Args[0])
		fmt.Printf("  %s render -o case.pdf dossier.yaml\n", os.Args[0])
		fmt.Printf("  %s render -o - dossier.json | lpr\n", os.Args[0])
	}

	if err := renderFlags.Parse(args[2:]); err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing flags: %v\n", err)
		osExit(1)
	}

	if len(renderFlags.Args()) < 1 {
		renderFlags.Usage()
		osExit(1)
	}

	path, res, err := renderDossier(renderFlags.Arg(0), &opts, os.Stdout)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		osExit(1)
	}
	if path != "" {
		fmt.Printf("Rendered %d page(s) to %s\n", res.Pages, path)
	}
}

// loadConfig reads the configuration file, or the defaults without one.
func loadConfig(path string, verbose bool) (*config.Config, error) {
	cfg := config.Default()
	if path != "" {
		var err error
		if cfg, err = config.LoadConfig(path); err != nil {
			return nil, err
		}
	}
	if verbose {
		cfg.Logging.Level = "debug"
	}
	return cfg, nil
}

// renderDossier renders inputPath and writes the PDF. It returns the path
// written, or "" when the PDF went to stdout.
func renderDossier(inputPath string, opts *RenderOptions, stdout io.Writer) (string, *dossier.Result, error) {
	cfg, err := loadConfig(opts.ConfigPath, opts.Verbose)
	if err != nil {
		return "", nil, err
	}

	logger, closer, err := cfg.Logging.NewLogger()
	if err != nil {
		return "", nil, err
	}
	defer closer.Close()
	pdf.SetLogger(logger)
	defer pdf.SetLogger(nil)

	d, err := dossier.Load(inputPath)
	if err != nil {
		return "", nil, err
	}
	copts, err := cfg.ComposerOptions()
	if err != nil {
		return "", nil, err
	}
	res, err := dossier.Render(d, copts)
	if err != nil {
		return "", nil, err
	}

	if opts.Output == "-" {
		if isTerminal(stdout) && !opts.Force {
			return "", nil, ErrTerminalOutput
		}
		if _, err := stdout.Write(res.Data); err != nil {
			return "", nil, fmt.Errorf("failed to write PDF: %w", err)
		}
		return "", res, nil
	}

	path := outputPath(opts.Output, res.FileName)
	if err := os.WriteFile(path, res.Data, 0o644); err != nil {
		return "", nil, fmt.Errorf("failed to write PDF: %w", err)
	}
	logger.Info("dossier written", "path", path, "pages", res.Pages, "bytes", len(res.Data))
	return path, res, nil
}

// outputPath resolves the -o flag: empty means the dossier's own file name
// in the working directory, and a directory receives that name inside it.
func outputPath(output, fileName string) string {
	if output == "" {
		return fileName
	}
	if fi, err := os.Stat(output); err == nil && fi.IsDir() {
		return filepath.Join(output, fileName)
	}
	return output
}
