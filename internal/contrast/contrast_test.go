package contrast

import (
	"math"
	"testing"
)

func TestHSLToRGB(t *testing.T) {
	tests := []struct {
		name    string
		h, s, l float64
		want    RGB
	}{
		{"white", 0, 0, 100, RGB{255, 255, 255}},
		{"black", 0, 0, 0, RGB{0, 0, 0}},
		{"pure red", 0, 100, 50, RGB{255, 0, 0}},
		{"pure green", 120, 100, 50, RGB{0, 255, 0}},
		{"pure blue", 240, 100, 50, RGB{0, 0, 255}},
		{"mid gray", 0, 0, 50, RGB{128, 128, 128}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := HSLToRGB(tt.h, tt.s, tt.l); got != tt.want {
				t.Errorf("HSLToRGB(%v, %v, %v) = %v, want %v", tt.h, tt.s, tt.l, got, tt.want)
			}
		})
	}
}

func TestRatio(t *testing.T) {
	// Black on white is the maximum possible contrast, 21:1.
	ratio := Ratio(RGB{0, 0, 0}, RGB{255, 255, 255})
	if math.Abs(ratio-21) > 0.01 {
		t.Errorf("black/white ratio = %v, want 21", ratio)
	}

	// Identical colors give 1:1.
	if r := Ratio(RGB{100, 100, 100}, RGB{100, 100, 100}); math.Abs(r-1) > 0.001 {
		t.Errorf("identical colors ratio = %v, want 1", r)
	}

	// Order must not matter.
	a, b := RGB{30, 60, 90}, RGB{200, 220, 240}
	if Ratio(a, b) != Ratio(b, a) {
		t.Error("ratio should be symmetric")
	}
}

func TestMeetsWCAG(t *testing.T) {
	tests := []struct {
		name      string
		ratio     float64
		level     Level
		largeText bool
		want      bool
	}{
		{"AA normal text at threshold", 4.5, LevelAA, false, true},
		{"AA normal text below threshold", 4.4, LevelAA, false, false},
		{"AA large text relaxed", 3.0, LevelAA, true, true},
		{"AAA normal text needs 7", 6.9, LevelAAA, false, false},
		{"AAA normal text at 7", 7.0, LevelAAA, false, true},
		{"AAA large text needs 4.5", 4.5, LevelAAA, true, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MeetsWCAG(tt.ratio, tt.level, tt.largeText); got != tt.want {
				t.Errorf("MeetsWCAG(%v, %v, %v) = %v, want %v", tt.ratio, tt.level, tt.largeText, got, tt.want)
			}
		})
	}
}

func TestParseHSL(t *testing.T) {
	got, err := ParseHSL("0 0% 100%")
	if err != nil {
		t.Fatalf("ParseHSL: %v", err)
	}
	if got != (RGB{255, 255, 255}) {
		t.Errorf("ParseHSL white = %v", got)
	}

	if _, err := ParseHSL("#ffffff"); err == nil {
		t.Error("expected error for hex input")
	}
}

func TestAudit_LightTheme(t *testing.T) {
	results, err := Audit(LightThemePairings)
	if err != nil {
		t.Fatalf("Audit: %v", err)
	}
	if len(results) != len(LightThemePairings) {
		t.Fatalf("expected %d results, got %d", len(LightThemePairings), len(results))
	}

	// The shipped palette must pass AA across the board.
	for _, r := range results {
		if !r.Passes {
			t.Errorf("pairing %s fails AA with ratio %.2f", r.Name, r.Ratio)
		}
	}
}
