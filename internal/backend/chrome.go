package backend

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"

	"github.com/alnah/go-corridorpdf/internal/fileutil"
	"github.com/alnah/go-corridorpdf/internal/layout"
	"github.com/alnah/go-corridorpdf/internal/process"
)

// pointsPerInch converts layout points to the inches Chrome prints in.
const pointsPerInch = 72.0

// DefaultTimeout bounds page loads when the context has no deadline.
const DefaultTimeout = 30 * time.Second

// pageRenderer prints a local HTML file to PDF. It exists so the Chrome
// backend can be tested without a browser.
type pageRenderer interface {
	RenderFromFile(ctx context.Context, filePath string, opts *proto.PagePrintToPDF) ([]byte, error)
	Close() error
}

// Chrome renders the HTML form of a document through headless Chrome.
// Rod downloads Chromium on first use if no browser is found. Calls are
// serialized on one browser instance.
type Chrome struct {
	mu       sync.Mutex
	renderer pageRenderer
}

// NewChrome creates a Chrome backend. The browser starts lazily.
func NewChrome(timeout time.Duration) *Chrome {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Chrome{renderer: &rodRenderer{timeout: timeout}}
}

// Render prints doc through the browser.
func (c *Chrome) Render(ctx context.Context, doc *layout.Document, meta Metadata) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	tmpPath, cleanup, err := fileutil.WriteTempFile(RenderHTML(doc, meta), "html")
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPDFGeneration, err)
	}
	defer cleanup()

	c.mu.Lock()
	defer c.mu.Unlock()
	return c.renderer.RenderFromFile(ctx, tmpPath, printOptions(doc))
}

// Close releases browser resources.
func (c *Chrome) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.renderer.Close()
}

// printOptions sizes the paper to the document with zero margins; the
// layout already carries its own margins.
func printOptions(doc *layout.Document) *proto.PagePrintToPDF {
	return &proto.PagePrintToPDF{
		PaperWidth:        floatPtr(doc.Width / pointsPerInch),
		PaperHeight:       floatPtr(doc.Height / pointsPerInch),
		MarginTop:         floatPtr(0),
		MarginBottom:      floatPtr(0),
		MarginLeft:        floatPtr(0),
		MarginRight:       floatPtr(0),
		PrintBackground:   true,
		PreferCSSPageSize: true,
	}
}

// rodRenderer implements pageRenderer using go-rod.
type rodRenderer struct {
	launcher *launcher.Launcher
	browser  *rod.Browser
	timeout  time.Duration
}

// ensureBrowser lazily launches and connects to the browser.
func (r *rodRenderer) ensureBrowser() error {
	if r.browser != nil {
		return nil
	}

	l := launcher.New()

	// Use pre-installed browser if specified (Docker/containerized environments)
	if bin := os.Getenv("ROD_BROWSER_BIN"); bin != "" {
		l = l.Bin(bin)
	}

	// NoSandbox required for CI and containerized environments
	if os.Getenv("CI") == "true" || os.Getenv("ROD_NO_SANDBOX") == "1" || os.Getenv("ROD_BROWSER_BIN") != "" {
		l = l.NoSandbox(true)
	}
	u, err := l.Launch()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrBrowserConnect, err)
	}

	browser := rod.New().ControlURL(u)
	if err := browser.Connect(); err != nil {
		l.Kill()
		return fmt.Errorf("%w: %v", ErrBrowserConnect, err)
	}
	r.launcher, r.browser = l, browser
	return nil
}

// Close closes the browser and kills its process group.
func (r *rodRenderer) Close() error {
	var err error
	if r.browser != nil {
		err = r.browser.Close()
		r.browser = nil
	}
	if r.launcher != nil {
		if pid := r.launcher.PID(); pid > 0 {
			if kerr := process.KillProcessGroup(pid); kerr != nil {
				err = errors.Join(err, fmt.Errorf("killing browser processes: %w", kerr))
			}
		}
		r.launcher.Kill()
		r.launcher.Cleanup()
		r.launcher = nil
	}
	return err
}

// RenderFromFile opens a local HTML file in headless Chrome and renders it
// to PDF.
func (r *rodRenderer) RenderFromFile(ctx context.Context, filePath string, opts *proto.PagePrintToPDF) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if err := r.ensureBrowser(); err != nil {
		return nil, err
	}

	page, err := r.browser.Page(proto.TargetCreateTarget{URL: "file://" + filePath})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPageCreate, err)
	}
	defer func() { _ = page.Close() }()

	timeout := r.timeout
	if deadline, ok := ctx.Deadline(); ok {
		timeout = time.Until(deadline)
		if timeout <= 0 {
			return nil, context.DeadlineExceeded
		}
	}

	if err := page.Timeout(timeout).WaitLoad(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPageLoad, err)
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	reader, err := page.PDF(opts)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPDFGeneration, err)
	}

	buf, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("%w: reading PDF stream: %v", ErrPDFGeneration, err)
	}
	return buf, nil
}

// floatPtr returns a pointer to a float64 value.
func floatPtr(v float64) *float64 {
	return &v
}

var _ Backend = (*Chrome)(nil)
