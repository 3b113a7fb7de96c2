// Command fircorr runs a FIR correlation kernel over a synthetic signal, checks it
// against the scalar reference and reports throughput.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	fircorr "github.com/tphakala/go-fir-correlator"
)

func main() {
	var (
		variant   = flag.String("variant", "auto", "Kernel variant, or \"auto\" to select for -domain")
		domain    = flag.String("domain", "real", "Domain used with -variant=auto: real, symmetric, complex")
		taps      = flag.Int("taps", defaultTaps, "Number of coefficients (half-length for symmetric)")
		num       = flag.Int("num", defaultNum, "Output samples per iteration")
		iters     = flag.Int("iters", defaultIterations, "Timed iterations")
		precision = flag.Int("precision", defaultPrecision, "Sample precision: 32 or 64")
		workers   = flag.Int("workers", 1, "Goroutines sharing each iteration")
		seed      = flag.Uint64("seed", defaultSeed, "Random seed for the noise component")
		list      = flag.Bool("list", false, "List kernel variants and exit")
		demo      = flag.Bool("demo", false, "Run every variant on a short signal")
	)
	flag.Parse()

	info := fircorr.GetInfo()
	fmt.Printf("Architecture: %s, hardware width %d, dispatch width %d (%s)\n",
		info.Architecture, info.HardwareWidth, info.Width, info.SIMDType)

	if *list {
		listVariants(os.Stdout)
		return
	}

	if *demo {
		if err := runDemo(*seed); err != nil {
			log.Fatalf("Demo failed: %v", err)
		}
		return
	}

	v, err := resolveVariant(*variant, *domain, *taps)
	if err != nil {
		log.Fatalf("Invalid variant: %v", err)
	}

	cfg := runConfig{
		variant:   v,
		numCoeffs: *taps,
		num:       *num,
		iters:     *iters,
		workers:   *workers,
		seed:      *seed,
	}

	var res result
	switch *precision {
	case 32:
		res, err = run[float32](cfg)
	case 64:
		res, err = run[float64](cfg)
	default:
		log.Fatalf("Invalid precision %d: must be 32 or 64", *precision)
	}
	if err != nil {
		log.Fatalf("Run failed: %v", err)
	}

	res.print(os.Stdout, cfg)
}

// resolveVariant parses name, or selects a variant for domain when name is "auto".
func resolveVariant(name, domain string, numCoeffs int) (fircorr.Variant, error) {
	if !strings.EqualFold(name, "auto") {
		return fircorr.ParseVariant(name)
	}
	switch strings.ToLower(domain) {
	case "real":
		return fircorr.Select(fircorr.DomainReal, numCoeffs), nil
	case "symmetric":
		return fircorr.Select(fircorr.DomainSymmetric, numCoeffs), nil
	case "complex":
		return fircorr.Select(fircorr.DomainComplex, numCoeffs), nil
	default:
		return 0, fmt.Errorf("unknown domain %q", domain)
	}
}
