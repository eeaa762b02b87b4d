// Package extract locates invoice fields inside loosely formatted page text.
// Field order, line breaks and whitespace in the source are unreliable, so
// each field has its own heuristic; a heuristic either returns a fully valid
// value or the field's documented fallback, never a partial match.
package extract

import (
	"log/slog"
	"regexp"
	"strings"

	"github.com/invoice-kit/invoice-archiver/internal/common"
	"github.com/invoice-kit/invoice-archiver/internal/entity"
	"github.com/invoice-kit/invoice-archiver/internal/profile"
)

// Extractor runs the per-field heuristics against one document's page text.
type Extractor struct {
	prof     *profile.Profile
	itemRe   *regexp.Regexp
	sellerRe *regexp.Regexp
	logger   *slog.Logger
}

// NewExtractor compiles the profile-derived patterns once per batch.
func NewExtractor(prof *profile.Profile, logger *slog.Logger) (*Extractor, error) {
	if logger == nil {
		logger = slog.Default()
	}
	if err := prof.Validate(); err != nil {
		return nil, err
	}
	itemRe, err := regexp.Compile("(" + prof.ItemPattern + ")")
	if err != nil {
		return nil, common.WrapError(err, "compile item pattern")
	}
	// The buyer's tax number appears first in document order and anchors the
	// start of the seller span; the seller's tax number terminates it.
	sellerRe := regexp.MustCompile(
		regexp.QuoteMeta(prof.BuyerTaxNo) + `\s*([\s\S]*?)\s*` + regexp.QuoteMeta(prof.SellerTaxNo),
	)
	return &Extractor{prof: prof, itemRe: itemRe, sellerRe: sellerRe, logger: logger}, nil
}

// Extract produces a fresh InvoiceRecord from raw page text.
// Empty or whitespace-only text (a scanned document) yields ErrNoText.
func (e *Extractor) Extract(text string) (*entity.InvoiceRecord, error) {
	if strings.TrimSpace(text) == "" {
		return nil, common.ErrNoText
	}
	lines := Lines(text)

	rec := &entity.InvoiceRecord{
		BuyerName:  e.prof.BuyerName,
		BuyerTaxNo: e.prof.BuyerTaxNo,
	}
	rec.InvoiceNo = extractInvoiceNo(text)
	rec.Date = extractDate(text)
	rec.SellerName, rec.SellerTaxNo = e.extractSeller(text)

	total, amount, tax, warns := extractAmounts(text)
	rec.Total, rec.Amount, rec.Tax = total, amount, tax
	for _, w := range warns {
		e.logger.Warn("extract.amounts.suspect", "detail", w)
	}

	rec.Drawer = e.extractDrawer(lines)
	rec.ItemName = e.extractItem(text)
	rec.Remark = e.extractRemark(lines, rec.Drawer)
	rec.Month = deriveMonth(rec.Remark, rec.Date)

	e.logger.Debug("extract.ok",
		"invoice_no", rec.InvoiceNo,
		"date", rec.Date,
		"total", rec.Total,
		"drawer", rec.Drawer,
	)
	return rec, nil
}
