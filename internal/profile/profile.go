// Package profile carries the counterparty identities, fallbacks and
// presentation labels the extraction engine is targeted at. Everything the
// engine treats as "known" about a billing relationship lives here, so the
// same heuristics can be pointed at a different seller/buyer pair by swapping
// the profile file.
package profile

import (
	"encoding/json"
	"fmt"
	"os"
	"regexp"

	"github.com/invoice-kit/invoice-archiver/internal/common"
)

// Profile holds the fixed domain constants consumed by the extraction engine,
// the row projector and the identifier builder.
type Profile struct {
	BuyerName   string `json:"buyer_name"`
	BuyerTaxNo  string `json:"buyer_tax_no"`
	SellerName  string `json:"seller_name"`
	SellerTaxNo string `json:"seller_tax_no"`

	DrawerKeyword string `json:"drawer_keyword"`
	DefaultDrawer string `json:"default_drawer"`
	ItemPattern   string `json:"item_pattern"`
	DefaultItem   string `json:"default_item"`

	// NameDenyTokens mark a candidate drawer line as boilerplate.
	NameDenyTokens []string `json:"name_deny_tokens"`
	// RemarkSkipTokens mark a line as identity/boilerplate noise during the
	// bottom-up remark scan.
	RemarkSkipTokens  []string `json:"remark_skip_tokens"`
	InvoiceTypeLabels []string `json:"invoice_type_labels"`

	SourcePlatform  string `json:"source_platform"`
	InvoiceCategory string `json:"invoice_category"`
	StatusLabel     string `json:"status_label"`
	PolarityLabel   string `json:"polarity_label"`
	RiskLabel       string `json:"risk_label"`

	TotalsMarker string `json:"totals_marker"`
	OutputSuffix string `json:"output_suffix"`
}

// Default returns the profile for the counterparty pair this tool ships
// configured for. A profile file overrides any subset of these values.
func Default() *Profile {
	return &Profile{
		BuyerName:   "湖南新飞创不良资产处置有限公司",
		BuyerTaxNo:  "91430100MA4TCG0Q2E",
		SellerName:  "鼎越数科（深圳）信息技术有限公司",
		SellerTaxNo: "91440300MA5H2BG470",

		DrawerKeyword: "开票人",
		DefaultDrawer: "高健铭",
		ItemPattern:   `\*信息系统服务\*技术服务费?`,
		DefaultItem:   "*信息系统服务*技术服务费",

		NameDenyTokens:    []string{"¥", "公司", "电子", "发票", "号码", "2026", "9144"},
		RemarkSkipTokens:  []string{"鼎越", "新飞创", "9144", "2026年"},
		InvoiceTypeLabels: []string{"电子发票", "增值税专用发票"},

		SourcePlatform:  "电子发票服务平台",
		InvoiceCategory: "数电发票（增值税专用发票）",
		StatusLabel:     "正常",
		PolarityLabel:   "是",
		RiskLabel:       "正常",

		TotalsMarker: "合计",
		OutputSuffix: "_已填写",
	}
}

// Load reads a profile JSON file, validates it against the embedded schema,
// and applies it on top of the defaults.
func Load(path string) (*Profile, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, common.WrapError(err, "read profile")
	}
	if err := ValidateJSONAgainstSchema(BuildProfileJSONSchema(), raw); err != nil {
		return nil, common.NewAppError("PROFILE_INVALID", path, err)
	}
	p := Default()
	if err := json.Unmarshal(raw, p); err != nil {
		return nil, common.WrapError(err, "decode profile")
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return p, nil
}

// Validate checks the invariants the extraction engine relies on.
func (p *Profile) Validate() error {
	if p.BuyerTaxNo == "" {
		return common.NewAppError("PROFILE_INVALID", "buyer_tax_no is required", common.ErrInvalidInput)
	}
	if p.SellerTaxNo == "" {
		return common.NewAppError("PROFILE_INVALID", "seller_tax_no is required", common.ErrInvalidInput)
	}
	if _, err := regexp.Compile(p.ItemPattern); err != nil {
		return common.NewAppError("PROFILE_INVALID", fmt.Sprintf("item_pattern %q", p.ItemPattern), err)
	}
	return nil
}
