package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	fircorr "github.com/tphakala/go-fir-correlator"
)

const (
	demoTaps = 16
	demoNum  = 4096
)

func listVariants(w io.Writer) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "VARIANT\tDOMAIN\tWIDTH")
	for _, v := range fircorr.Variants() {
		fmt.Fprintf(tw, "%s\t%s\t%d\n", v, v.Domain(), v.Width())
	}
	tw.Flush()
}

func runDemo(seed uint64) error {
	fmt.Println("=== FIR Correlation Demo ===")
	fmt.Printf("%d taps, %d outputs, float32\n\n", demoTaps, demoNum)

	for _, v := range fircorr.Variants() {
		cfg := runConfig{
			variant:   v,
			numCoeffs: demoTaps,
			num:       demoNum,
			iters:     1,
			workers:   1,
			seed:      seed,
		}
		res, err := run[float32](cfg)
		if err != nil {
			return fmt.Errorf("%s: %w", v, err)
		}
		fmt.Printf("  %-20s max error %.3g, checksum %.4f\n", v, res.maxError, res.checksum)
	}

	fmt.Println("\n=== Demo Complete ===")
	return nil
}
