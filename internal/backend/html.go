package backend

import (
	"fmt"
	"html"
	"strings"

	"golang.org/x/text/language"

	"github.com/alnah/go-corridorpdf/internal/layout"
	"github.com/alnah/go-corridorpdf/internal/style"
)

const defaultLanguage = "en"

// RenderHTML renders doc as a standalone HTML document with one absolutely
// positioned box per page. Coordinates are kept in points so that printing
// at the page size reproduces the PDF layout.
func RenderHTML(doc *layout.Document, meta Metadata) string {
	var buf strings.Builder

	fmt.Fprintf(&buf, "<!DOCTYPE html>\n<html lang=\"%s\">\n<head>\n<meta charset=\"utf-8\">\n", htmlLang(meta.Language))
	fmt.Fprintf(&buf, "<title>%s</title>\n", html.EscapeString(meta.Title))
	writeMeta(&buf, "description", meta.Subject)
	writeMeta(&buf, "author", meta.Author)
	writeMeta(&buf, "keywords", meta.Keywords)
	writeMeta(&buf, "generator", meta.Creator)
	fmt.Fprintf(&buf, "<style>\n%s</style>\n</head>\n<body>\n", pageCSS(doc.Width, doc.Height))

	for _, p := range doc.Pages {
		fmt.Fprintf(&buf, "<div class=\"page\" data-page=\"%d\">\n", p.Number)
		for _, op := range p.Ops {
			writeOp(&buf, op, doc.Width, doc.Height)
		}
		buf.WriteString("</div>\n")
	}

	buf.WriteString("</body>\n</html>\n")
	return buf.String()
}

// htmlLang returns a canonical BCP 47 tag, falling back to English.
func htmlLang(tag string) string {
	if tag == "" {
		return defaultLanguage
	}
	t, err := language.Parse(tag)
	if err != nil {
		return defaultLanguage
	}
	return t.String()
}

func writeMeta(buf *strings.Builder, name, content string) {
	if content == "" {
		return
	}
	fmt.Fprintf(buf, "<meta name=\"%s\" content=\"%s\">\n", name, html.EscapeString(content))
}

func pageCSS(w, h float64) string {
	return fmt.Sprintf(`@page { size: %[1]spt %[2]spt; margin: 0; }
html, body { margin: 0; padding: 0; }
body { -webkit-print-color-adjust: exact; print-color-adjust: exact; }
.page { position: relative; width: %[1]spt; height: %[2]spt; overflow: hidden; break-after: page; }
.page:last-child { break-after: auto; }
.op { position: absolute; margin: 0; box-sizing: border-box; }
.text { white-space: pre; line-height: 1; }
table.op { border-collapse: collapse; table-layout: fixed; }
table.op td { overflow: hidden; vertical-align: top; line-height: 1; }
`, pt(w), pt(h))
}

func writeOp(buf *strings.Builder, op layout.Op, w, h float64) {
	role := string(op.Kind())
	switch o := op.(type) {
	case layout.TextOp:
		fmt.Fprintf(buf, "<span class=\"op text %s\" data-block=\"%d\" style=\"left:%spt;top:%spt;%s\">%s</span>\n",
			role, o.Source(), pt(o.X), pt(o.Y-o.Font.Size*textAscent), fontCSS(o.Font, o.Color), html.EscapeString(o.Text))
	case layout.RectOp:
		var paint []string
		if o.Filled {
			paint = append(paint, "background:"+o.Fill.Hex())
		}
		if o.Stroked {
			paint = append(paint, fmt.Sprintf("border:%spt solid %s", pt(o.LineWidth), o.Stroke.Hex()))
		}
		fmt.Fprintf(buf, "<div class=\"op rect %s\" data-block=\"%d\" style=\"left:%spt;top:%spt;width:%spt;height:%spt;%s\"></div>\n",
			role, o.Source(), pt(o.X), pt(o.Y), pt(o.W), pt(o.H), strings.Join(paint, ";"))
	case layout.LineOp:
		fmt.Fprintf(buf, "<svg class=\"op line %s\" data-block=\"%d\" style=\"left:0;top:0\" width=\"%spt\" height=\"%spt\" viewBox=\"0 0 %s %s\">"+
			"<line x1=\"%s\" y1=\"%s\" x2=\"%s\" y2=\"%s\" stroke=\"%s\" stroke-width=\"%s\"/></svg>\n",
			role, o.Source(), pt(w), pt(h), pt(w), pt(h), pt(o.X1), pt(o.Y1), pt(o.X2), pt(o.Y2), o.Color.Hex(), pt(o.Width))
	case layout.TableOp:
		writeTable(buf, o)
	}
}

// textAscent matches layout.Baseline so HTML text sits on the PDF baseline.
const textAscent = 0.8

func writeTable(buf *strings.Builder, t layout.TableOp) {
	cont := ""
	if t.Continued {
		cont = " continued"
	}
	fmt.Fprintf(buf, "<table class=\"op %s%s\" data-block=\"%d\" style=\"left:%spt;top:%spt;width:%spt\">\n<colgroup>",
		t.Kind(), cont, t.Source(), pt(t.X), pt(t.Y), pt(t.Width()))
	for _, w := range t.Widths {
		fmt.Fprintf(buf, "<col style=\"width:%spt\">", pt(w))
	}
	buf.WriteString("</colgroup>\n")

	row := func(r layout.TableRow, font style.Font, color style.Color, tag string) {
		fmt.Fprintf(buf, "<tr style=\"height:%spt;background:%s\">", pt(r.Height), r.Fill.Hex())
		for _, lines := range r.Cells {
			escaped := make([]string, len(lines))
			for i, l := range lines {
				escaped[i] = html.EscapeString(l)
			}
			fmt.Fprintf(buf, "<%s style=\"padding:%spt;border:%spt solid %s;%s;line-height:%spt\">%s</%s>",
				tag, pt(t.Padding), pt(tableLineWidth), t.Border.Hex(), fontCSS(font, color), pt(t.LineHeight),
				strings.Join(escaped, "<br>"), tag)
		}
		buf.WriteString("</tr>\n")
	}

	buf.WriteString("<thead>")
	row(t.Header, t.HeaderFont, t.HeaderText, "th")
	buf.WriteString("</thead>\n<tbody>\n")
	for _, r := range t.Rows {
		row(r, t.BodyFont, t.BodyText, "td")
	}
	buf.WriteString("</tbody>\n</table>\n")
}

func fontCSS(f style.Font, c style.Color) string {
	weight := "normal"
	if f.Bold {
		weight = "bold"
	}
	return fmt.Sprintf("font-family:%s;font-size:%spt;font-weight:%s;color:%s", cssFamily(f.Family), pt(f.Size), weight, c.Hex())
}

func cssFamily(family string) string {
	switch style.CoreFamily(family) {
	case style.FamilySerif:
		return "'Times New Roman', Times, serif"
	case style.FamilyMono:
		return "'Courier New', Courier, monospace"
	}
	return "Helvetica, Arial, sans-serif"
}

// pt formats a length with at most two decimals.
func pt(v float64) string {
	s := strings.TrimRight(fmt.Sprintf("%.2f", v), "0")
	return strings.TrimSuffix(s, ".")
}
