package treeslicer

import (
	"errors"
	"strings"
	"testing"
)

func TestParseBreakCriterion(t *testing.T) {
	for s, c := range map[string]BreakCriterion{
		"":               None,
		"branches":       Branches,
		"Branch":         Branches,
		"samples":        Samples,
		"sample":         Samples,
		" BranchSamples": BranchSamples,
		"branchsample":   BranchSamples,
	} {
		got, err := ParseBreakCriterion(s)
		if err != nil || got != c {
			t.Errorf("ParseBreakCriterion(%q) = %v, %v; expected %v", s, got, err, c)
		}
	}
	if _, err := ParseBreakCriterion("leaves"); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("expected ErrInvalidConfig for unknown criterion, got %v", err)
	}
}

func TestConfigValidation(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Dimension = 1
	if err := cfg.validate(); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("expected inclusive dimension 1 to be rejected, got %v", err)
	}
	cfg.Inclusive = false
	if err := cfg.validate(); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("expected exclusive dimension 1 to be rejected, got %v", err)
	}
	cfg.Dimension = 2
	if err := cfg.validate(); err != nil {
		t.Errorf("expected exclusive dimension 2 to be accepted, got %v", err)
	}
	cfg.Dimension = 6
	cfg.MinorDimension = 4
	err := cfg.validate()
	if !errors.Is(err, ErrInvalidConfig) {
		t.Fatalf("expected dimension 6 with stride 4 to be rejected, got %v", err)
	}
	if !strings.Contains(err.Error(), "stride 4") {
		t.Errorf("expected error message to name the stride, is %q", err.Error())
	}
	cfg.MinorDimension = 3
	if err := cfg.validate(); err != nil {
		t.Errorf("expected dimension 6 with stride 3 to be accepted, got %v", err)
	}
	cfg.To = Anchor(7)
	if err := cfg.validate(); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("expected unknown anchor to be rejected, got %v", err)
	}
}

func TestConfigFromOptions(t *testing.T) {
	cfg, err := ConfigFromOptions(Options{
		"to":                   "OLDESTSAMPLE",
		"inclusive":            "false",
		"Dimension":            "8",
		"breakAt":              "branchsamples",
		"minorDimensionStride": "4",
		"id":                   "births",
	})
	if err != nil {
		t.Fatal(err)
	}
	expected := Config{ID: "births", Dimension: 8, Inclusive: false, To: OldestSample,
		BreakAt: BranchSamples, MinorDimension: 4}
	if cfg != expected {
		t.Errorf("expected %+v, got %+v", expected, cfg)
	}
	cfg, err = ConfigFromOptions(Options{"dimension": "3"})
	if err != nil {
		t.Fatal(err)
	}
	if !cfg.Inclusive || cfg.To != TMRCA || cfg.BreakAt != None || cfg.ID != "treeslicer" {
		t.Errorf("expected defaults, got %+v", cfg)
	}
	for _, opts := range []Options{
		{},
		{"dimension": "x"},
		{"dimension": "4", "inclusive": "maybe"},
		{"dimension": "4", "to": "root"},
		{"dimension": "4", "breakAt": "leaves"},
		{"dimension": "4", "colour": "red"},
		{"dimension": "5", "minorDimensionStride": "2"},
	} {
		if _, err := ConfigFromOptions(opts); !errors.Is(err, ErrInvalidConfig) {
			t.Errorf("expected ErrInvalidConfig for %v, got %v", opts, err)
		}
	}
}
