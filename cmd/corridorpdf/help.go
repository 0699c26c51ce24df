package main

import (
	"fmt"
	"io"
)

// printUsage prints the main usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: corridorpdf [flags] <file.md|dir>")
	fmt.Fprintln(w, "       corridorpdf doctor [--json]")
	fmt.Fprintln(w, "       corridorpdf version")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Convert markdown files to paginated PDF documents.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Arguments:")
	fmt.Fprintln(w, "  input    Markdown file or directory (optional if config has input.defaultDir)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Input/Output:")
	fmt.Fprintln(w, "  -o, --output <path>       Output file or directory")
	fmt.Fprintln(w, "  -c, --config <name>       Config file name or path")
	fmt.Fprintln(w, "  -w, --workers <n>         Parallel workers (0 = auto)")
	fmt.Fprintln(w, "      --html                Also write the HTML rendering")
	fmt.Fprintln(w, "      --dated-name          Name outputs {Title}_{YYYY-MM-DD}.pdf")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Document:")
	fmt.Fprintln(w, "      --title <s>           Header title (\"\" = auto from H1, then file name)")
	fmt.Fprintln(w, "      --subtitle <s>        Header subtitle")
	fmt.Fprintln(w, "      --date <s>            Date: \"auto\", \"auto:FORMAT\", YYYY-MM-DD or literal")
	fmt.Fprintln(w, "                            Tokens: YYYY, YY, MMMM, MMM, MM, M, DD, D")
	fmt.Fprintln(w, "                            Presets (case-insensitive): iso, european, us, long")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Layout:")
	fmt.Fprintln(w, "  -p, --page-size <s>       Page size: letter, a4, legal")
	fmt.Fprintln(w, "      --orientation <s>     Orientation: portrait, landscape")
	fmt.Fprintln(w, "      --margin <f>          Margin in points (0 = theme margin)")
	fmt.Fprintln(w, "      --footer-text <s>     Footer text on every page")
	fmt.Fprintln(w, "      --title-color <s>     Palette color of the header band")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Theme:")
	fmt.Fprintln(w, "      --theme <name>        Theme name or file path (default, corridor, monochrome)")
	fmt.Fprintln(w, "      --theme-path <dir>    Directory with custom themes/*.yaml")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Rendering:")
	fmt.Fprintln(w, "      --backend <s>         Backend: fpdf (default), chrome")
	fmt.Fprintln(w, "      --max-pages <n>       Fail documents longer than n pages (0 = unlimited)")
	fmt.Fprintln(w, "  -t, --timeout <d>         Chrome rendering timeout (e.g., 30s, 2m)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Output control:")
	fmt.Fprintln(w, "  -q, --quiet               Only show errors")
	fmt.Fprintln(w, "  -v, --verbose             Show debug logs and timings")
	fmt.Fprintln(w, "      --log-file <path>     Write JSON logs to a rotating file")
	fmt.Fprintln(w, "      --print-config        Print the effective configuration and exit")
	fmt.Fprintln(w, "      --version             Show version information")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Environment:")
	fmt.Fprintln(w, "  CORRIDORPDF_CONFIG, CORRIDORPDF_THEME, CORRIDORPDF_BACKEND, CORRIDORPDF_TIMEOUT,")
	fmt.Fprintln(w, "  CORRIDORPDF_INPUT_DIR, CORRIDORPDF_OUTPUT_DIR, CORRIDORPDF_PAGE_SIZE,")
	fmt.Fprintln(w, "  CORRIDORPDF_FOOTER_TEXT, CORRIDORPDF_WORKERS")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Examples:")
	fmt.Fprintln(w, "  corridorpdf report.md")
	fmt.Fprintln(w, "  corridorpdf -o out/ --theme corridor --dated-name docs/")
	fmt.Fprintln(w, "  corridorpdf --backend chrome --timeout 1m --html notes.md")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Exit codes:")
	fmt.Fprintln(w, "  0 success, 1 general error, 2 usage or config error, 3 I/O error, 4 backend error")
}
