// Command audit checks the design-system color pairings against WCAG AA
// contrast requirements. It exits non-zero if any pairing fails, so it can
// gate CI when the palette tokens change.
package main

import (
	"fmt"
	"os"

	"github.com/mediweb/website/internal/contrast"
)

func run() error {
	results, err := contrast.Audit(contrast.LightThemePairings)
	if err != nil {
		return err
	}

	failures := 0
	for _, r := range results {
		status := "PASS"
		if !r.Passes {
			status = "FAIL"
			failures++
		}
		fmt.Printf("%-4s %-20s %.2f:1\n", status, r.Name, r.Ratio)
	}

	if failures > 0 {
		return fmt.Errorf("%d pairing(s) below WCAG AA", failures)
	}
	return nil
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "audit:", err)
		os.Exit(1)
	}
}
