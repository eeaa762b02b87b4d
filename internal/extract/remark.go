package extract

import (
	"regexp"
	"strings"
)

var (
	// Billing period with an explicit year: 2025年3月 or 2025年3-5月 / 3~5月.
	reFullPeriod = regexp.MustCompile(`\d{4}年\d{1,2}[-~]\d{1,2}月|\d{4}年\d{1,2}月`)
	// Bare month or month range without a year.
	reBarePeriod = regexp.MustCompile(`\d{1,2}[-~]\d{1,2}月|\d{1,2}月`)
)

// extractRemark scans lines bottom-up for the billing-period description.
// Invoices place it near the bottom, interleaved with boilerplate whose exact
// position varies, so the scan excludes known noise first and only then
// applies the inclusion check. The predicates are deliberately separate so
// each exclusion reason stays testable on its own.
func (e *Extractor) extractRemark(lines []string, drawer string) string {
	for i := len(lines) - 1; i >= 0; i-- {
		line := lines[i]
		if e.containsIdentityToken(line, drawer) {
			continue
		}
		if e.containsBoilerplate(line) {
			continue
		}
		if describesBillingPeriod(line) {
			return line
		}
	}
	return ""
}

// containsIdentityToken rejects lines carrying the drawer, counterparty name
// fragments, tax-number prefixes or the issuance-year literal.
func (e *Extractor) containsIdentityToken(line, drawer string) bool {
	if strings.Contains(line, e.prof.DrawerKeyword) {
		return true
	}
	if drawer != "" && strings.Contains(line, drawer) {
		return true
	}
	for _, tok := range e.prof.RemarkSkipTokens {
		if strings.Contains(line, tok) {
			return true
		}
	}
	return false
}

// containsBoilerplate rejects currency-marked lines and invoice-type labels.
func (e *Extractor) containsBoilerplate(line string) bool {
	if strings.ContainsAny(line, "¥￥") {
		return true
	}
	for _, label := range e.prof.InvoiceTypeLabels {
		if strings.Contains(line, label) {
			return true
		}
	}
	return false
}

// describesBillingPeriod accepts lines naming a month together with a fee or
// service word.
func describesBillingPeriod(line string) bool {
	if !strings.Contains(line, "月") {
		return false
	}
	return strings.Contains(line, "费") ||
		strings.Contains(line, "服务") ||
		strings.Contains(line, "项目")
}

// deriveMonth normalizes the billing-period label out of the remark. A full
// <year>年<months>月 token is used verbatim with the 月份 suffix; a bare
// month token borrows the year from the already-extracted date when one is
// available. An empty remark yields an empty month.
func deriveMonth(remark, date string) string {
	if remark == "" {
		return ""
	}
	if m := reFullPeriod.FindString(remark); m != "" {
		return strings.ReplaceAll(m, "月", "月份")
	}
	if m := reBarePeriod.FindString(remark); m != "" {
		part := strings.ReplaceAll(m, "月", "月份")
		if len(date) >= 4 {
			return date[:4] + "年" + part
		}
		return part
	}
	return ""
}
