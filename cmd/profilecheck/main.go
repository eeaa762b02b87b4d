// profilecheck validates an invoice profile JSON file against the embedded
// schema and prints the effective values.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/invoice-kit/invoice-archiver/internal/profile"
)

func main() {
	path := flag.String("profile", "", "profile JSON file to validate (required)")
	flag.Parse()

	if *path == "" {
		fmt.Fprintln(os.Stderr, "Error: --profile is required")
		os.Exit(1)
	}

	prof, err := profile.Load(*path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "profile invalid: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("profile ok\n")
	fmt.Printf("- buyer:  %s (%s)\n", prof.BuyerName, prof.BuyerTaxNo)
	fmt.Printf("- seller: %s (%s)\n", prof.SellerName, prof.SellerTaxNo)
	fmt.Printf("- drawer fallback: %s\n", prof.DefaultDrawer)
	fmt.Printf("- totals marker: %s, output suffix: %s\n", prof.TotalsMarker, prof.OutputSuffix)
}
