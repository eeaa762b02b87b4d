package profile

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultIsValid(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Fatalf("default profile invalid: %v", err)
	}
}

func writeProfile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "profile.json")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadOverridesSubset(t *testing.T) {
	path := writeProfile(t, `{
		"seller_name": "测试科技有限公司",
		"seller_tax_no": "91440300TEST00000X",
		"default_drawer": "李雷"
	}`)

	p, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if p.SellerName != "测试科技有限公司" {
		t.Errorf("SellerName = %q", p.SellerName)
	}
	if p.SellerTaxNo != "91440300TEST00000X" {
		t.Errorf("SellerTaxNo = %q", p.SellerTaxNo)
	}
	if p.DefaultDrawer != "李雷" {
		t.Errorf("DefaultDrawer = %q", p.DefaultDrawer)
	}
	// Untouched keys keep their defaults.
	if p.BuyerTaxNo != Default().BuyerTaxNo {
		t.Errorf("BuyerTaxNo = %q, want default", p.BuyerTaxNo)
	}
	if p.TotalsMarker != "合计" {
		t.Errorf("TotalsMarker = %q, want 合计", p.TotalsMarker)
	}
}

func TestLoadRejectsBadProfiles(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"malformed json", `{`},
		{"short tax number", `{"buyer_tax_no": "123"}`},
		{"lowercase tax number", `{"seller_tax_no": "91440300ma5h2bg470"}`},
		{"unknown key", `{"tax_rate": "0.06"}`},
		{"wrong type", `{"name_deny_tokens": "¥"}`},
		{"empty totals marker", `{"totals_marker": ""}`},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			path := writeProfile(t, tc.body)
			if _, err := Load(path); err == nil {
				t.Errorf("Load accepted %s", tc.name)
			}
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.json")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestValidateRejectsBadItemPattern(t *testing.T) {
	p := Default()
	p.ItemPattern = `*broken(`
	if err := p.Validate(); err == nil {
		t.Fatal("expected error for invalid item pattern")
	}
}
