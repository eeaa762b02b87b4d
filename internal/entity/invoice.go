package entity

// InvoiceRecord holds the fields extracted from one invoice document.
// Every field carries either a validated value or its documented default;
// extractors never surface a partially-matched value.
type InvoiceRecord struct {
	InvoiceNo   string `json:"invoice_no"` // 20-digit e-invoice number, "" when absent
	Date        string `json:"date"`       // YYYY-MM-DD, "" when absent
	SellerName  string `json:"seller_name"`
	SellerTaxNo string `json:"seller_tax_no"`
	BuyerName   string `json:"buyer_name"`
	BuyerTaxNo  string `json:"buyer_tax_no"`
	Amount      string `json:"amount"` // 2-decimal string, no thousands separators
	Tax         string `json:"tax"`
	Total       string `json:"total"`
	Drawer      string `json:"drawer"`
	ItemName    string `json:"item_name"`
	Remark      string `json:"remark"`
	Month       string `json:"month"` // normalized billing-period label
}
