package report

import (
	"bytes"
	"math"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/testconfig"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/treeslicer"
	"github.com/npillmayer/treeslicer/phylo"
	"golang.org/x/net/html"
)

func makeReport(t *testing.T, inclusive bool) *Report {
	t.Helper()
	tree, err := phylo.ParseNewick("(((((((G:1,F:2):1,E:4):1,D:6):1,C:8):1,B:10):1,A:12):1);")
	if err != nil {
		t.Fatal(err)
	}
	cfg := treeslicer.DefaultConfig()
	cfg.ID = "skyline"
	cfg.Dimension = 4
	cfg.Inclusive = inclusive
	cfg.BreakAt = treeslicer.Samples
	s, err := treeslicer.New(tree, cfg)
	if err != nil {
		t.Fatal(err)
	}
	r, err := FromSlicer(s)
	if err != nil {
		t.Fatal(err)
	}
	return r
}

func TestIntervals(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	r := makeReport(t, true)
	ivs := r.Intervals()
	if len(ivs) != 3 {
		t.Fatalf("expected 3 intervals, have %d", len(ivs))
	}
	if ivs[0].From != 0 || ivs[0].To != 3.5 || ivs[2].To != 13 {
		t.Errorf("unexpected intervals %v", ivs)
	}
	r = makeReport(t, false)
	ivs = r.Intervals()
	if len(ivs) != 4 {
		t.Fatalf("expected 4 intervals for exclusive slices, have %d", len(ivs))
	}
	if !math.IsInf(ivs[3].Length(), 1) {
		t.Errorf("expected last exclusive interval to be open-ended, is %v", ivs[3])
	}
}

func TestConsolePrint(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelInfo)
	//
	color.NoColor = true
	r := makeReport(t, true)
	var out bytes.Buffer
	if err := NewConsole(nil, 80).Print(r, &out); err != nil {
		t.Fatal(err)
	}
	t.Logf("\n%s", out.String())
	lines := strings.Split(strings.TrimRight(out.String(), "\n"), "\n")
	if len(lines) != 1+3+1+3 {
		t.Fatalf("expected 8 lines of output, have %d", len(lines))
	}
	if !strings.HasPrefix(lines[0], "skyline (event (samples) slices up to tmrca") {
		t.Errorf("unexpected title line %q", lines[0])
	}
	if !strings.HasPrefix(lines[1], "  present"+strings.Repeat(" ", 8)+"height 0") {
		t.Errorf("expected aligned anchor labels, got %q", lines[1])
	}
	if strings.Count(lines[7], "=") != 46 {
		t.Errorf("expected longest interval to span the full bar, got %q", lines[7])
	}
	if strings.Count(lines[5], "=") != 23 {
		t.Errorf("expected first interval to span half the bar, got %q", lines[5])
	}
}

func TestConsolePrintOpenInterval(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	color.NoColor = true
	var out bytes.Buffer
	if err := NewConsole(nil, 60).Print(makeReport(t, false), &out); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out.String(), "->") || !strings.Contains(out.String(), "+Inf") {
		t.Errorf("expected open-ended last interval, got\n%s", out.String())
	}
}

func TestHTML(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	var out bytes.Buffer
	if err := HTML(makeReport(t, true), &out); err != nil {
		t.Fatal(err)
	}
	t.Logf("%s", out.String())
	doc, err := html.Parse(&out)
	if err != nil {
		t.Fatal(err)
	}
	var rows, tables int
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			switch n.Data {
			case "tr":
				rows++
			case "table":
				tables++
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)
	if tables != 2 {
		t.Errorf("expected 2 tables, have %d", tables)
	}
	if rows != 4+4 {
		t.Errorf("expected 8 table rows, have %d", rows)
	}
}
