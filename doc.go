// Package corridorpdf renders a small markdown subset into paginated PDF
// reports: a colored header band, headings, paragraphs with bold and code
// spans, bullet lists, tables, badges, stat cards and code blocks, with a
// "Page N of M" footer on every page.
//
// # Quick Start
//
// Create a converter, convert markdown, and close when done:
//
//	conv, err := corridorpdf.NewConverter()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer conv.Close()
//
//	result, err := conv.Convert(ctx, corridorpdf.Input{
//	    Title:    "I-80 Corridor",
//	    Markdown: "# Closures\n\nLane **2** closed",
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	os.WriteFile("report.pdf", result.PDF, 0644)
//
// # Conversion Pipeline
//
// The conversion process follows these stages:
//
//  1. Normalization of the markdown subset into blocks (package block)
//  2. Layout: every block is placed on pages by a cursor that breaks pages,
//     keeps headings with what follows and repeats table headers
//  3. Rendering of the draw operations by a backend: pure Go (fpdf, the
//     default) or headless Chrome (go-rod)
//
// Callers that already hold structured data can skip the first stage and
// pass Input.Blocks, including block.Badge and block.StatsCard values that
// have no markdown syntax.
//
// # Configuration
//
// Use functional options to customize the converter:
//
//	conv, err := corridorpdf.NewConverter(
//	    corridorpdf.WithTheme("corridor"),
//	    corridorpdf.WithAssetPath("/path/to/custom/assets"),
//	    corridorpdf.WithMaxPages(50),
//	    corridorpdf.WithLogger(logger),
//	)
//
// Per-document settings are passed via Input:
//
//	result, err := conv.Convert(ctx, corridorpdf.Input{
//	    Title:   "Weekly Report",
//	    Blocks:  blocks,
//	    Page:    &corridorpdf.PageSettings{Size: "a4", Orientation: "landscape"},
//	    Options: corridorpdf.Options{TitleColor: "accent", FooterText: "Internal"},
//	})
//
// Invalid page settings, margins and palette keys never fail a conversion:
// they fall back to defaults and are reported through the logger.
//
// # Parallel Processing
//
// For batch conversion, use ConverterPool:
//
//	pool, err := corridorpdf.NewConverterPool(4, corridorpdf.WithBackend("chrome"))
//	defer pool.Close()
//
//	conv, err := pool.Acquire()
//	defer pool.Release(conv)
//	result, err := conv.Convert(ctx, input)
//
// # Themes
//
// Themes are YAML files naming a palette, fonts and sizes. Built-in themes
// are embedded; WithAssetPath adds a directory whose themes/ entries take
// precedence:
//
//	assets/
//	└── themes/
//	    └── brand.yaml
package corridorpdf
