package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/treeslicer"
	"github.com/npillmayer/treeslicer/phylo"
	"github.com/npillmayer/treeslicer/report"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

type options struct {
	to          string
	inclusive   bool
	dimension   int
	breakAt     string
	minorStride int
	scale       float64
	format      string
	config      string
	trace       string
	dot         string
}

// fileConfig is the layout of a YAML configuration file.
type fileConfig struct {
	Tree    string               `yaml:"tree"`
	Scale   float64              `yaml:"scale"`
	Slicers []treeslicer.Options `yaml:"slicers"`
}

func newRootCommand() *cobra.Command {
	opts := &options{}
	cmd := &cobra.Command{
		Use:   "treeslice [flags] [newick-file | -]",
		Short: "Compute slice times over a phylogenetic tree",
		Long: `treeslice computes vectors of slice times for skyline models.

Slices run from the present (most recent sample) to an anchor point of the tree,
either equidistantly or at events (branchings, samples, or both).`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, opts, args)
		},
	}
	flags := cmd.Flags()
	flags.StringVar(&opts.to, "to", "tmrca", "anchor point to end slices at (present/oldestsample/tmrca)")
	flags.BoolVar(&opts.inclusive, "inclusive", true, "include the anchor point as last slice time")
	flags.IntVarP(&opts.dimension, "dimension", "d", 0, "number of slice times")
	flags.StringVarP(&opts.breakAt, "break-at", "b", "", "break at events (branches/samples/branchsamples); equidistant if empty")
	flags.IntVar(&opts.minorStride, "minor-stride", 0, "minor dimension stride; must divide dimension")
	flags.Float64Var(&opts.scale, "scale", 1, "scale internal node heights before slicing")
	flags.StringVarP(&opts.format, "format", "f", "console", "output format (console/html/plain)")
	flags.StringVarP(&opts.config, "config", "c", "", "YAML file with slicer configurations")
	flags.StringVar(&opts.trace, "trace", "error", "trace level (debug/info/error)")
	flags.StringVar(&opts.dot, "dot", "", "write the tree in Graphviz DOT format to this file")
	return cmd
}

func run(cmd *cobra.Command, opts *options, args []string) error {
	gtrace.CoreTracer = gologadapter.New()
	level, err := traceLevel(opts.trace)
	if err != nil {
		return err
	}
	gtrace.CoreTracer.SetTraceLevel(level)
	//
	var fc fileConfig
	if opts.config != "" {
		if fc, err = loadConfig(opts.config); err != nil {
			return err
		}
	}
	source := fc.Tree
	if len(args) > 0 {
		source = args[0]
	}
	if source == "" {
		return fmt.Errorf("no tree given; pass a Newick file or '-' for stdin")
	}
	tree, err := readTree(source, cmd.InOrStdin())
	if err != nil {
		return err
	}
	scale := opts.scale
	if fc.Scale != 0 && !cmd.Flags().Changed("scale") {
		scale = fc.Scale
	}
	if scale != 1 {
		if err := tree.Scale(scale); err != nil {
			return err
		}
	}
	if opts.dot != "" {
		if err := writeDot(tree, opts.dot); err != nil {
			return err
		}
	}
	slicers, err := makeSlicers(tree, opts, fc)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	for _, s := range slicers {
		if err := output(s, opts.format, out); err != nil {
			return err
		}
	}
	return nil
}

func traceLevel(s string) (tracing.TraceLevel, error) {
	switch strings.ToLower(s) {
	case "debug":
		return tracing.LevelDebug, nil
	case "info":
		return tracing.LevelInfo, nil
	case "error", "":
		return tracing.LevelError, nil
	}
	return tracing.LevelError, fmt.Errorf("unknown trace level %q", s)
}

func loadConfig(path string) (fileConfig, error) {
	var fc fileConfig
	data, err := os.ReadFile(path)
	if err != nil {
		return fc, err
	}
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return fc, fmt.Errorf("config %s: %w", path, err)
	}
	if len(fc.Slicers) == 0 {
		return fc, fmt.Errorf("config %s: no slicers configured", path)
	}
	return fc, nil
}

func readTree(source string, stdin io.Reader) (*phylo.Tree, error) {
	var data []byte
	var err error
	if source == "-" {
		data, err = io.ReadAll(stdin)
	} else {
		data, err = os.ReadFile(source)
	}
	if err != nil {
		return nil, err
	}
	return phylo.ParseNewick(string(data))
}

func writeDot(tree *phylo.Tree, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := phylo.Tree2Dot(tree, f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// makeSlicers creates slicers from the config file, if present, or from
// command line flags otherwise.
func makeSlicers(tree *phylo.Tree, opts *options, fc fileConfig) ([]*treeslicer.Slicer, error) {
	optionSets := fc.Slicers
	if len(optionSets) == 0 {
		optionSets = []treeslicer.Options{{
			treeslicer.OptID:             "treeslicer",
			treeslicer.OptTo:             opts.to,
			treeslicer.OptInclusive:      strconv.FormatBool(opts.inclusive),
			treeslicer.OptDimension:      strconv.Itoa(opts.dimension),
			treeslicer.OptBreakAt:        opts.breakAt,
			treeslicer.OptMinorDimension: strconv.Itoa(opts.minorStride),
		}}
	}
	var slicers []*treeslicer.Slicer
	for i, o := range optionSets {
		cfg, err := treeslicer.ConfigFromOptions(o)
		if err != nil {
			return nil, fmt.Errorf("slicer #%d: %w", i+1, err)
		}
		s, err := treeslicer.New(tree, cfg)
		if err != nil {
			return nil, err
		}
		tree.Watch(s)
		slicers = append(slicers, s)
	}
	return slicers, nil
}

func output(s *treeslicer.Slicer, format string, w io.Writer) error {
	switch strings.ToLower(format) {
	case "plain":
		values, err := s.Values()
		if err != nil {
			return err
		}
		strs := make([]string, len(values))
		for i, v := range values {
			strs[i] = strconv.FormatFloat(v, 'g', -1, 64)
		}
		_, err = fmt.Fprintf(w, "%s: %s\n", s.ID(), strings.Join(strs, " "))
		return err
	case "console", "html":
		r, err := report.FromSlicer(s)
		if err != nil {
			return err
		}
		if strings.EqualFold(format, "html") {
			return report.HTML(r, w)
		}
		return report.NewConsole(nil, 0).Print(r, w)
	}
	return fmt.Errorf("unknown output format %q", format)
}
