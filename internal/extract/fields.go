package extract

import (
	"fmt"
	"math"
	"regexp"
	"sort"
	"strconv"
	"strings"
)

var (
	// A fully-digitalized e-invoice number is a standalone run of exactly
	// 20 digits.
	reInvoiceNo = regexp.MustCompile(`\b\d{20}\b`)
	reDate      = regexp.MustCompile(`(\d{4})年(\d{1,2})月(\d{1,2})日`)
	// Currency-marked decimal with exactly two fraction digits; thousands
	// separators allowed on input, stripped on output.
	reAmount = regexp.MustCompile(`[¥￥]\s*([\d,]+\.\d{2})`)
)

func extractInvoiceNo(text string) string {
	return reInvoiceNo.FindString(text)
}

// extractDate reformats the first <year>年<month>月<day>日 occurrence to a
// zero-padded YYYY-MM-DD. No match yields "".
func extractDate(text string) string {
	m := reDate.FindStringSubmatch(text)
	if m == nil {
		return ""
	}
	month, _ := strconv.Atoi(m[2])
	day, _ := strconv.Atoi(m[3])
	return fmt.Sprintf("%s-%02d-%02d", m[1], month, day)
}

// extractSeller captures the span between the buyer's and the seller's tax
// numbers; that span, with embedded line breaks removed, is the seller name.
// The seller tax number is always the profile literal, match or not.
func (e *Extractor) extractSeller(text string) (name, taxNo string) {
	if m := e.sellerRe.FindStringSubmatch(text); m != nil {
		name = strings.TrimSpace(strings.ReplaceAll(m[1], "\n", ""))
		return name, e.prof.SellerTaxNo
	}
	return e.prof.SellerName, e.prof.SellerTaxNo
}

// extractAmounts collects every distinct currency-marked amount and assigns
// the three largest, descending, to total/amount/tax. Tax is a fraction of
// the amount and the total is their sum, so the order holds in this domain.
// Fewer than three distinct amounts leaves all three fields empty.
func extractAmounts(text string) (total, amount, tax string, warnings []string) {
	type cand struct {
		val float64
		str string
	}
	seen := map[string]struct{}{}
	var cands []cand
	for _, m := range reAmount.FindAllStringSubmatch(text, -1) {
		s := strings.ReplaceAll(m[1], ",", "")
		if _, dup := seen[s]; dup {
			continue
		}
		seen[s] = struct{}{}
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			continue
		}
		cands = append(cands, cand{val: v, str: s})
	}
	if len(cands) < 3 {
		return "", "", "", nil
	}
	sort.Slice(cands, func(i, j int) bool { return cands[i].val > cands[j].val })

	// The sort-order assignment is trusted, but suspicious shapes are
	// surfaced rather than silently mis-assigned.
	if cands[0].val == cands[1].val {
		warnings = append(warnings, fmt.Sprintf("top two amounts tie at %s", cands[0].str))
	}
	if math.Abs(cands[0].val-(cands[1].val+cands[2].val)) > 0.01 {
		warnings = append(warnings,
			fmt.Sprintf("total %s != amount %s + tax %s", cands[0].str, cands[1].str, cands[2].str))
	}
	return cands[0].str, cands[1].str, cands[2].str, warnings
}

func (e *Extractor) extractItem(text string) string {
	if m := e.itemRe.FindString(text); m != "" {
		return m
	}
	return e.prof.DefaultItem
}
