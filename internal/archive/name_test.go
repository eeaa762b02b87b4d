package archive

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/invoice-kit/invoice-archiver/internal/entity"
)

func TestFilename(t *testing.T) {
	tests := []struct {
		name string
		rec  entity.InvoiceRecord
		ext  string
		want string
	}{
		{
			name: "remark plus total plus date",
			rec:  entity.InvoiceRecord{Remark: "2025年3月服务费", Total: "600.00", Date: "2025-03-05"},
			ext:  ".pdf",
			want: "2025年3月服务费+600.00+2025-03-05.pdf",
		},
		{
			name: "no remark drops the leading segment",
			rec:  entity.InvoiceRecord{Total: "600.00", Date: "2025-03-05"},
			ext:  ".pdf",
			want: "600.00+2025-03-05.pdf",
		},
		{
			name: "reserved characters replaced",
			rec:  entity.InvoiceRecord{Remark: `a/b\c:d*e?f"g<h>i|j`, Total: "1.00", Date: "2025-01-01"},
			ext:  ".pdf",
			want: "a_b_c_d_e_f_g_h_i_j+1.00+2025-01-01.pdf",
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := Filename(&tc.rec, tc.ext); got != tc.want {
				t.Errorf("Filename = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestDisambiguate(t *testing.T) {
	taken := map[string]bool{
		filepath.Join("d", "x.pdf"):   true,
		filepath.Join("d", "x_1.pdf"): true,
	}
	exists := func(p string) bool { return taken[p] }

	if got, want := disambiguate("d", "y.pdf", exists), filepath.Join("d", "y.pdf"); got != want {
		t.Errorf("no collision: got %q, want %q", got, want)
	}
	if got, want := disambiguate("d", "x.pdf", exists), filepath.Join("d", "x_2.pdf"); got != want {
		t.Errorf("double collision: got %q, want %q", got, want)
	}
}

func TestTargetPath(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "original.pdf")
	rec := &entity.InvoiceRecord{Remark: "2025年3月服务费", Total: "600.00", Date: "2025-03-05"}

	got := TargetPath(src, rec)
	want := filepath.Join(dir, "2025年3月服务费+600.00+2025-03-05.pdf")
	if got != want {
		t.Fatalf("TargetPath = %q, want %q", got, want)
	}

	// Occupy the target; the next candidate gets a numeric suffix.
	if err := os.WriteFile(want, nil, 0o644); err != nil {
		t.Fatal(err)
	}
	got = TargetPath(src, rec)
	want = filepath.Join(dir, "2025年3月服务费+600.00+2025-03-05_1.pdf")
	if got != want {
		t.Fatalf("TargetPath after collision = %q, want %q", got, want)
	}
}
