package extract

import "testing"

func TestExtractRemark(t *testing.T) {
	e := newTestExtractor(t)

	tests := []struct {
		name   string
		lines  []string
		drawer string
		want   string
	}{
		{
			name:  "billing period line found bottom-up",
			lines: []string{"电子发票（增值税专用发票）", "2025年3月服务费", "开票人：高健铭"},
			want:  "2025年3月服务费",
		},
		{
			name:  "lowest matching line wins",
			lines: []string{"1月服务费", "3月项目费"},
			want:  "3月项目费",
		},
		{
			name:   "drawer line excluded",
			lines:  []string{"3月技术服务费", "高健铭 3月服务费"},
			drawer: "高健铭",
			want:   "3月技术服务费",
		},
		{
			name:  "currency marked line excluded",
			lines: []string{"3月服务费", "3月服务费 ¥600.00"},
			want:  "3月服务费",
		},
		{
			name:  "counterparty fragment excluded",
			lines: []string{"3月服务费", "鼎越3月服务费"},
			want:  "3月服务费",
		},
		{
			name:  "tax prefix excluded",
			lines: []string{"3月服务费", "9144 3月服务费"},
			want:  "3月服务费",
		},
		{
			name:  "year literal excluded",
			lines: []string{"3月服务费", "2026年3月服务费"},
			want:  "3月服务费",
		},
		{
			name:  "invoice type label excluded",
			lines: []string{"3月服务费", "增值税专用发票 3月服务费"},
			want:  "3月服务费",
		},
		{
			name:  "month without fee word not a remark",
			lines: []string{"3月之后"},
			want:  "",
		},
		{
			name:  "fee word without month not a remark",
			lines: []string{"技术服务"},
			want:  "",
		},
		{name: "empty", lines: nil, want: ""},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := e.extractRemark(tc.lines, tc.drawer); got != tc.want {
				t.Errorf("extractRemark(%v) = %q, want %q", tc.lines, got, tc.want)
			}
		})
	}
}

func TestDeriveMonth(t *testing.T) {
	tests := []struct {
		name   string
		remark string
		date   string
		want   string
	}{
		{"full period verbatim", "2025年3月服务费", "", "2025年3月份"},
		{"full range verbatim", "2025年3-5月服务费", "", "2025年3-5月份"},
		{"bare month borrows year from date", "3月服务费", "2025-03-05", "2025年3月份"},
		{"bare range borrows year from date", "3~5月项目费", "2025-03-05", "2025年3~5月份"},
		{"bare month without date stays bare", "3月服务费", "", "3月份"},
		{"no period token", "技术服务费", "2025-03-05", ""},
		{"empty remark", "", "2025-03-05", ""},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := deriveMonth(tc.remark, tc.date); got != tc.want {
				t.Errorf("deriveMonth(%q, %q) = %q, want %q", tc.remark, tc.date, got, tc.want)
			}
		})
	}
}
