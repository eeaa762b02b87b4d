package export

import (
	"strconv"

	"github.com/invoice-kit/invoice-archiver/internal/entity"
	"github.com/invoice-kit/invoice-archiver/internal/profile"
)

// The destination template is a fixed 22-column layout:
// 序号, 发票代码, 发票号码, 数电发票号码, 销方识别号, 销方名称, 购方识别号,
// 购买方名称, 开票日期, 货物或应税劳务名称, 金额, 税额, 价税合计, 发票来源,
// 发票票种, 发票状态, 是否正数发票, 发票风险等级, 开票人, 备注, 对应月份,
// 项目名称.
const columnCount = 22

// defaultStartRow is used when the template carries no totals row.
const defaultStartRow = 2

// amountColumns get the 2-decimal grouped number format.
var amountColumns = map[int]struct{}{11: {}, 12: {}, 13: {}}

// centeredColumns are numeric presentation columns (sequence + amounts).
var centeredColumns = map[int]struct{}{1: {}, 11: {}, 12: {}, 13: {}}

// rowValues projects one record onto the destination column order.
// Columns 2 and 3 are legacy invoice code/number slots left blank for
// fully-digitalized invoices; the trailing project-name column stays blank.
func rowValues(seq int, rec *entity.InvoiceRecord, prof *profile.Profile) []any {
	return []any{
		seq,
		"",
		"",
		rec.InvoiceNo,
		rec.SellerTaxNo,
		rec.SellerName,
		rec.BuyerTaxNo,
		rec.BuyerName,
		rec.Date,
		rec.ItemName,
		amountCell(rec.Amount),
		amountCell(rec.Tax),
		amountCell(rec.Total),
		prof.SourcePlatform,
		prof.InvoiceCategory,
		prof.StatusLabel,
		prof.PolarityLabel,
		prof.RiskLabel,
		rec.Drawer,
		rec.Remark,
		rec.Month,
		"",
	}
}

// amountCell coerces the extracted decimal string to a number; an empty
// string maps to a blank cell, never zero.
func amountCell(s string) any {
	if s == "" {
		return ""
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return s
	}
	return f
}
