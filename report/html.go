package report

import (
	"fmt"
	"io"
	"math"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// HTML renders a report as an HTML fragment: a <section> with a heading,
// a table of anchors and a table of intervals.
func HTML(r *Report, w io.Writer) error {
	section := element(atom.Section, "class", "treeslicer")
	h := element(atom.H2)
	h.AppendChild(text(r.ID))
	section.AppendChild(h)
	p := element(atom.P)
	p.AppendChild(text(fmt.Sprintf("%s slices up to %s, inclusive=%v", criterionName(r), r.To, r.Inclusive)))
	section.AppendChild(p)
	//
	anchors := element(atom.Table, "class", "anchors")
	anchors.AppendChild(row(atom.Th, "anchor", "height", "date"))
	for _, a := range r.anchorRows() {
		anchors.AppendChild(row(atom.Td, a.Name, number(a.Time.Height), number(a.Time.Date)))
	}
	section.AppendChild(anchors)
	//
	intervals := element(atom.Table, "class", "intervals")
	intervals.AppendChild(row(atom.Th, "#", "from", "to", "length"))
	for _, iv := range r.Intervals() {
		intervals.AppendChild(row(atom.Td, fmt.Sprint(iv.Index), number(iv.From), number(iv.To),
			number(iv.Length())))
	}
	section.AppendChild(intervals)
	if err := html.Render(w, section); err != nil {
		tracer().Errorf("HTML report: %s", err.Error())
		return err
	}
	return nil
}

func element(a atom.Atom, attrs ...string) *html.Node {
	n := &html.Node{Type: html.ElementNode, DataAtom: a, Data: a.String()}
	for i := 0; i+1 < len(attrs); i += 2 {
		n.Attr = append(n.Attr, html.Attribute{Key: attrs[i], Val: attrs[i+1]})
	}
	return n
}

func text(s string) *html.Node {
	return &html.Node{Type: html.TextNode, Data: s}
}

func row(cell atom.Atom, values ...string) *html.Node {
	tr := element(atom.Tr)
	for _, v := range values {
		c := element(cell)
		c.AppendChild(text(v))
		tr.AppendChild(c)
	}
	return tr
}

func number(x float64) string {
	if math.IsInf(x, 1) {
		return "∞"
	}
	return fmt.Sprintf("%.7g", x)
}
