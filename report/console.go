package report

import (
	"fmt"
	"io"
	"math"
	"os"
	"strings"
	"sync"

	"github.com/fatih/color"
	"github.com/npillmayer/uax/grapheme"
	"github.com/npillmayer/uax/uax11"
	"golang.org/x/term"
)

// Palette holds the colors a console uses for the parts of a report.
type Palette struct {
	Title  *color.Color
	Header *color.Color
	Anchor *color.Color
	Bar    *color.Color
}

// DefaultPalette is used for consoles created without a palette.
func DefaultPalette() *Palette {
	return &Palette{
		Title:  color.New(color.FgRed, color.Bold),
		Header: color.New(color.FgBlue),
		Anchor: color.New(color.FgGreen),
		Bar:    color.New(color.FgCyan),
	}
}

// Console outputs reports to a terminal with a fixed width font.
// Every interval is drawn as a bar proportional to its length.
type Console struct {
	LineWidth int            // in ‘en’s
	Context   *uax11.Context // for measuring labels
	colors    *Palette
}

var setupGraphemes sync.Once

// NewConsole creates a console output. If palette is nil, DefaultPalette is
// used. If linewidth is 0, the width is taken from the terminal.
func NewConsole(palette *Palette, linewidth int) *Console {
	setupGraphemes.Do(grapheme.SetupGraphemeClasses)
	c := &Console{
		LineWidth: linewidth,
		Context:   uax11.LatinContext,
		colors:    palette,
	}
	if palette == nil {
		c.colors = DefaultPalette()
	}
	if linewidth <= 0 {
		c.LineWidth = LineWidthFromTerminal()
		c.Context = uax11.ContextFromEnvironment()
	}
	return c
}

// LineWidthFromTerminal checks wether stdout is a terminal, and if so it
// reads the terminal's width. Otherwise it returns a default width of 65.
func LineWidthFromTerminal() int {
	width := 65
	fd := int(os.Stdout.Fd())
	if term.IsTerminal(fd) {
		if w, _, err := term.GetSize(fd); err == nil {
			if w > 65 {
				width = w - 10
			} else if w > 30 {
				width = w - 5
			} else if w > 10 {
				width = w
			} else {
				width = 10
			}
		}
	}
	tracer().P("format", "console").Infof("setting line length to %d en", width)
	return width
}

func (c *Console) width(s string) int {
	return uax11.StringWidth(grapheme.StringFromString(s), c.Context)
}

// pad right-pads s to w ‘en’s.
func (c *Console) pad(s string, w int) string {
	if n := w - c.width(s); n > 0 {
		return s + strings.Repeat(" ", n)
	}
	return s
}

// Print outputs a report to w.
func (c *Console) Print(r *Report, w io.Writer) error {
	var err error
	printf := func(col *color.Color, format string, args ...interface{}) {
		if err != nil {
			return
		}
		if col != nil {
			_, err = col.Fprintf(w, format, args...)
		} else {
			_, err = fmt.Fprintf(w, format, args...)
		}
	}
	printf(c.colors.Title, "%s", r.ID)
	printf(nil, " (%s slices up to %s, inclusive=%v)\n", criterionName(r), r.To, r.Inclusive)
	//
	rows := r.anchorRows()
	labelWidth := 0
	for _, row := range rows {
		labelWidth = max(labelWidth, c.width(row.Name))
	}
	for _, row := range rows {
		printf(c.colors.Anchor, "  %s", c.pad(row.Name, labelWidth))
		printf(nil, "  height %-12.7g date %.7g\n", row.Time.Height, row.Time.Date)
	}
	//
	printf(c.colors.Header, "  %4s %12s %12s\n", "#", "from", "to")
	ivs := r.Intervals()
	barWidth := c.LineWidth - 34
	scale := 0.0
	for _, iv := range ivs {
		if !math.IsInf(iv.To, 1) {
			scale = max(scale, iv.Length())
		}
	}
	for _, iv := range ivs {
		printf(nil, "  %4d %12.6g %12.6g  ", iv.Index, iv.From, iv.To)
		if barWidth > 0 && scale > 0 {
			n := barWidth
			if !math.IsInf(iv.To, 1) {
				n = int(math.Round(iv.Length() / scale * float64(barWidth)))
			}
			bar := strings.Repeat("=", n)
			if math.IsInf(iv.To, 1) {
				bar = strings.Repeat("-", n) + ">"
			}
			printf(c.colors.Bar, "%s", bar)
		}
		printf(nil, "\n")
	}
	if err != nil {
		tracer().Errorf("console report: %s", err.Error())
	}
	return err
}

func criterionName(r *Report) string {
	if r.BreakAt.IsEventBased() {
		return "event (" + r.BreakAt.String() + ")"
	}
	return "equidistant"
}
