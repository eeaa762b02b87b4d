package export

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/invoice-kit/invoice-archiver/internal/common"
	"github.com/invoice-kit/invoice-archiver/internal/entity"
	"github.com/invoice-kit/invoice-archiver/internal/profile"
)

// Service projects extracted records into the destination XLSX template.
type Service struct {
	prof   *profile.Profile
	logger *slog.Logger
}

func NewService(prof *profile.Profile, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{prof: prof, logger: logger}
}

// WriteWorkbook opens the template, inserts one row per record above the
// totals row, and saves to a new file named <template><suffix>.xlsx,
// disambiguated with a numeric counter on collision. The template itself is
// never modified. A failure here is fatal for the batch.
func (s *Service) WriteWorkbook(templatePath string, records []*entity.InvoiceRecord) (string, error) {
	start := time.Now()

	f, err := excelize.OpenFile(templatePath)
	if err != nil {
		return "", common.WrapError(err, "open template")
	}
	defer func() {
		if cerr := f.Close(); cerr != nil {
			s.logger.Warn("export.close", "error", cerr)
		}
	}()

	if err := s.ProjectInto(f, records); err != nil {
		return "", common.WrapError(err, "project rows")
	}

	outputPath := suffixedPath(templatePath, s.prof.OutputSuffix)
	if err := f.SaveAs(outputPath); err != nil {
		return "", common.WrapError(err, "xlsx save")
	}

	s.logger.Info("export.xlsx.ok",
		"template", templatePath,
		"output", outputPath,
		"rows", len(records),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return outputPath, nil
}

// ProjectInto writes the batch into the workbook's active sheet, shifting
// the totals row and anything below it down rather than overwriting. Without
// a totals row, rows are appended from the fixed default row.
func (s *Service) ProjectInto(f *excelize.File, records []*entity.InvoiceRecord) error {
	sheet := f.GetSheetName(f.GetActiveSheetIndex())

	start, found, err := s.findTotalsRow(f, sheet)
	if err != nil {
		return err
	}
	if found {
		if err := f.InsertRows(sheet, start, len(records)); err != nil {
			return fmt.Errorf("insert %d rows at %d: %w", len(records), start, err)
		}
		s.logger.Debug("export.insert", "totals_row", start, "rows", len(records))
	} else {
		start = defaultStartRow
		s.logger.Debug("export.append", "start_row", start)
	}

	styles, err := newCellStyles(f)
	if err != nil {
		return err
	}

	for i, rec := range records {
		row := start + i
		vals := rowValues(i+1, rec, s.prof)
		for idx, v := range vals {
			col := idx + 1
			cell, err := excelize.CoordinatesToCellName(col, row)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return fmt.Errorf("set %s: %w", cell, err)
			}
			if err := f.SetCellStyle(sheet, cell, cell, styles.forColumn(col)); err != nil {
				return fmt.Errorf("style %s: %w", cell, err)
			}
		}
	}
	return nil
}

// findTotalsRow locates the first row whose first-column value contains the
// totals marker.
func (s *Service) findTotalsRow(f *excelize.File, sheet string) (int, bool, error) {
	rows, err := f.GetRows(sheet)
	if err != nil {
		return 0, false, fmt.Errorf("read sheet %q: %w", sheet, err)
	}
	for i, row := range rows {
		if len(row) > 0 && strings.Contains(row[0], s.prof.TotalsMarker) {
			return i + 1, true, nil
		}
	}
	return 0, false, nil
}

// cellStyles are immutable style descriptors created once per workbook and
// applied per cell.
type cellStyles struct {
	amount int // bordered, centered, #,##0.00
	center int // bordered, centered
	text   int // bordered, left-aligned
}

func (cs cellStyles) forColumn(col int) int {
	if _, ok := amountColumns[col]; ok {
		return cs.amount
	}
	if _, ok := centeredColumns[col]; ok {
		return cs.center
	}
	return cs.text
}

func newCellStyles(f *excelize.File) (cellStyles, error) {
	border := []excelize.Border{
		{Type: "left", Style: 1, Color: "000000"},
		{Type: "right", Style: 1, Color: "000000"},
		{Type: "top", Style: 1, Color: "000000"},
		{Type: "bottom", Style: 1, Color: "000000"},
	}
	numFmt := "#,##0.00"

	amount, err := f.NewStyle(&excelize.Style{
		Border:       border,
		Alignment:    &excelize.Alignment{Horizontal: "center", Vertical: "center"},
		CustomNumFmt: &numFmt,
	})
	if err != nil {
		return cellStyles{}, err
	}
	center, err := f.NewStyle(&excelize.Style{
		Border:    border,
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	if err != nil {
		return cellStyles{}, err
	}
	text, err := f.NewStyle(&excelize.Style{
		Border:    border,
		Alignment: &excelize.Alignment{Horizontal: "left", Vertical: "center"},
	})
	if err != nil {
		return cellStyles{}, err
	}
	return cellStyles{amount: amount, center: center, text: text}, nil
}

// suffixedPath appends the output suffix before the extension and bumps a
// numeric counter until the name is free.
func suffixedPath(templatePath, suffix string) string {
	ext := filepath.Ext(templatePath)
	base := strings.TrimSuffix(templatePath, ext)
	candidate := base + suffix + ext
	for counter := 1; ; counter++ {
		if _, err := os.Stat(candidate); os.IsNotExist(err) {
			return candidate
		}
		candidate = fmt.Sprintf("%s%s_%d%s", base, suffix, counter, ext)
	}
}
