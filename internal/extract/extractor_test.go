package extract

import (
	"io"
	"log/slog"
	"testing"

	"github.com/invoice-kit/invoice-archiver/internal/common"
	"github.com/invoice-kit/invoice-archiver/internal/profile"
)

const sampleText = `电子发票（增值税专用发票）
发票号码：24442000000123456789
开票日期：2025年3月5日
购买方名称：湖南新飞创不良资产处置有限公司
统一社会信用代码：91430100MA4TCG0Q2E
鼎越数科（深圳）
信息技术有限公司
91440300MA5H2BG470
项目名称：*信息系统服务*技术服务费
金额：¥500.00
税额：¥100.00
价税合计：￥600.00
2025年3月服务费
开票人：高健铭
`

func newTestExtractor(t *testing.T) *Extractor {
	t.Helper()
	e, err := NewExtractor(profile.Default(), slog.New(slog.NewTextHandler(io.Discard, nil)))
	if err != nil {
		t.Fatalf("NewExtractor: %v", err)
	}
	return e
}

func TestExtractFullDocument(t *testing.T) {
	e := newTestExtractor(t)

	rec, err := e.Extract(sampleText)
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}

	if got, want := rec.InvoiceNo, "24442000000123456789"; got != want {
		t.Errorf("InvoiceNo = %q, want %q", got, want)
	}
	if got, want := rec.Date, "2025-03-05"; got != want {
		t.Errorf("Date = %q, want %q", got, want)
	}
	if got, want := rec.SellerName, "鼎越数科（深圳）信息技术有限公司"; got != want {
		t.Errorf("SellerName = %q, want %q", got, want)
	}
	if got, want := rec.SellerTaxNo, "91440300MA5H2BG470"; got != want {
		t.Errorf("SellerTaxNo = %q, want %q", got, want)
	}
	if got, want := rec.BuyerName, "湖南新飞创不良资产处置有限公司"; got != want {
		t.Errorf("BuyerName = %q, want %q", got, want)
	}
	if rec.Total != "600.00" || rec.Amount != "500.00" || rec.Tax != "100.00" {
		t.Errorf("amounts = total %q amount %q tax %q, want 600.00/500.00/100.00",
			rec.Total, rec.Amount, rec.Tax)
	}
	if got, want := rec.Drawer, "高健铭"; got != want {
		t.Errorf("Drawer = %q, want %q", got, want)
	}
	if got, want := rec.ItemName, "*信息系统服务*技术服务费"; got != want {
		t.Errorf("ItemName = %q, want %q", got, want)
	}
	if got, want := rec.Remark, "2025年3月服务费"; got != want {
		t.Errorf("Remark = %q, want %q", got, want)
	}
	if got, want := rec.Month, "2025年3月份"; got != want {
		t.Errorf("Month = %q, want %q", got, want)
	}
}

func TestExtractEmptyText(t *testing.T) {
	e := newTestExtractor(t)
	for _, text := range []string{"", "   \n\t\n"} {
		if _, err := e.Extract(text); err != common.ErrNoText {
			t.Errorf("Extract(%q) err = %v, want ErrNoText", text, err)
		}
	}
}

func TestExtractFallbacksOnBareText(t *testing.T) {
	e := newTestExtractor(t)

	rec, err := e.Extract("这是一段没有任何发票特征的文本")
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	if rec.InvoiceNo != "" || rec.Date != "" {
		t.Errorf("InvoiceNo/Date = %q/%q, want empty", rec.InvoiceNo, rec.Date)
	}
	if rec.Total != "" || rec.Amount != "" || rec.Tax != "" {
		t.Errorf("amounts should be empty, got %q/%q/%q", rec.Total, rec.Amount, rec.Tax)
	}
	// Seller and drawer fall back to the profile constants.
	if got, want := rec.SellerName, "鼎越数科（深圳）信息技术有限公司"; got != want {
		t.Errorf("SellerName fallback = %q, want %q", got, want)
	}
	if got, want := rec.Drawer, "高健铭"; got != want {
		t.Errorf("Drawer fallback = %q, want %q", got, want)
	}
	if got, want := rec.ItemName, "*信息系统服务*技术服务费"; got != want {
		t.Errorf("ItemName fallback = %q, want %q", got, want)
	}
	if rec.Remark != "" || rec.Month != "" {
		t.Errorf("Remark/Month = %q/%q, want empty", rec.Remark, rec.Month)
	}
}

func TestLines(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []string
	}{
		{"empty", "", nil},
		{"blank lines dropped", "a\n\n  \nb\n", []string{"a", "b"}},
		{"trimmed", "  开票人  \n\t高健铭\t\n", []string{"开票人", "高健铭"}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := Lines(tc.in)
			if len(got) != len(tc.want) {
				t.Fatalf("Lines(%q) = %v, want %v", tc.in, got, tc.want)
			}
			for i := range got {
				if got[i] != tc.want[i] {
					t.Errorf("line %d = %q, want %q", i, got[i], tc.want[i])
				}
			}
		})
	}
}
