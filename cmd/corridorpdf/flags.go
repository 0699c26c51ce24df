package main

import (
	"io"

	flag "github.com/spf13/pflag"
)

// maxPagesUnset detects if --max-pages was explicitly set.
// Since 0 is a valid value (unlimited), we use an out-of-range sentinel.
const maxPagesUnset = -1

// commonFlags holds flags shared across commands.
type commonFlags struct {
	config  string
	quiet   bool
	verbose bool
	logFile string
}

// documentFlags holds header band and metadata flags.
type documentFlags struct {
	title    string
	subtitle string
	date     string
}

// layoutFlags holds page geometry and decoration flags.
type layoutFlags struct {
	pageSize    string
	orientation string
	margin      float64
	footerText  string
	titleColor  string
}

// themeFlags holds style registry flags.
type themeFlags struct {
	name string
	path string
}

// renderFlags holds backend flags.
type renderFlags struct {
	backend  string
	maxPages int
	timeout  string
}

// outputFlags holds output mode flags.
type outputFlags struct {
	html      bool // Output HTML alongside PDF
	datedName bool // {Document-Title}_{YYYY-MM-DD}.pdf
}

// convertFlags holds all flags for the convert command.
type convertFlags struct {
	common      commonFlags
	output      string
	workers     int
	document    documentFlags
	layout      layoutFlags
	theme       themeFlags
	render      renderFlags
	outputMode  outputFlags
	version     bool
	printConfig bool
}

// addCommonFlags adds common flags to a FlagSet.
func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show detailed timing")
	fs.StringVar(&f.logFile, "log-file", "", "write JSON logs to a rotating file")
}

// addDocumentFlags adds document flags to a FlagSet.
func addDocumentFlags(fs *flag.FlagSet, f *documentFlags) {
	fs.StringVar(&f.title, "title", "", "header title (\"\" = auto from H1)")
	fs.StringVar(&f.subtitle, "subtitle", "", "header subtitle")
	fs.StringVar(&f.date, "date", "", "document date (\"auto\" = today)")
}

// addLayoutFlags adds page layout flags to a FlagSet.
func addLayoutFlags(fs *flag.FlagSet, f *layoutFlags) {
	fs.StringVarP(&f.pageSize, "page-size", "p", "", "page size: letter, a4, legal")
	fs.StringVar(&f.orientation, "orientation", "", "page orientation: portrait, landscape")
	fs.Float64Var(&f.margin, "margin", 0, "page margin in points (0 = theme margin)")
	fs.StringVar(&f.footerText, "footer-text", "", "footer text on every page")
	fs.StringVar(&f.titleColor, "title-color", "", "palette color of the header band")
}

// addThemeFlags adds theme flags to a FlagSet.
func addThemeFlags(fs *flag.FlagSet, f *themeFlags) {
	fs.StringVar(&f.name, "theme", "", "theme name or file path")
	fs.StringVar(&f.path, "theme-path", "", "directory with custom themes")
}

// addRenderFlags adds backend flags to a FlagSet.
func addRenderFlags(fs *flag.FlagSet, f *renderFlags) {
	fs.StringVar(&f.backend, "backend", "", "rendering backend: fpdf, chrome")
	fs.IntVar(&f.maxPages, "max-pages", maxPagesUnset, "fail documents longer than n pages (0 = unlimited)")
	fs.StringVarP(&f.timeout, "timeout", "t", "", "chrome rendering timeout (e.g., 30s, 2m)")
}

// addOutputFlags adds output mode flags to a FlagSet.
func addOutputFlags(fs *flag.FlagSet, f *outputFlags) {
	fs.BoolVar(&f.html, "html", false, "output HTML alongside PDF")
	fs.BoolVar(&f.datedName, "dated-name", false, "name outputs {Title}_{YYYY-MM-DD}.pdf")
}

// parseFlags parses convert flags and returns positional args.
// Usage and parse errors are written to w.
func parseFlags(args []string, w io.Writer) (*convertFlags, []string, error) {
	fs := flag.NewFlagSet("corridorpdf", flag.ContinueOnError)
	fs.SetOutput(w)
	f := &convertFlags{}

	// I/O flags
	fs.StringVarP(&f.output, "output", "o", "", "output file or directory")
	fs.IntVarP(&f.workers, "workers", "w", 0, "parallel workers (0 = auto)")

	// Flag groups
	addCommonFlags(fs, &f.common)
	addDocumentFlags(fs, &f.document)
	addLayoutFlags(fs, &f.layout)
	addThemeFlags(fs, &f.theme)
	addRenderFlags(fs, &f.render)
	addOutputFlags(fs, &f.outputMode)

	fs.BoolVar(&f.version, "version", false, "show version information")
	fs.BoolVar(&f.printConfig, "print-config", false, "print the effective configuration and exit")

	fs.Usage = func() { printUsage(w) }

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}

	return f, fs.Args(), nil
}
