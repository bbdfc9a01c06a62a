package ocr

import (
	"regexp"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

var (
	invoiceNumberPattern = regexp.MustCompile(`(?i)invoice\s*(?:no\.?|number|num|#)\s*[:#]?\s*([A-Z0-9][A-Z0-9\-/]*)`)
	vendorPattern        = regexp.MustCompile(`(?im)^\s*(?:vendor|seller|supplier|from|bill\s+from)\s*:\s*(.+?)\s*$`)
	datePattern          = regexp.MustCompile(`(?i)(?:invoice\s+)?date\s*:?\s*(\d{4}-\d{2}-\d{2}|\d{1,2}[./]\d{1,2}[./]\d{4})`)
	totalPattern         = regexp.MustCompile(`(?im)^[ \t]*(?:grand[ \t]+)?total\b(?:[ \t]+amount)?(?:[ \t]+due)?[ \t]*:?[ \t]*([A-Z]{3}\b|[$€£])?[ \t]*(\d[\d,]*(?:\.\d+)?)(?:[ \t]*([A-Z]{3})\b)?`)
	currencyPattern      = regexp.MustCompile(`(?i)currency\s*:\s*([A-Z]{3})\b`)
)

var currencySymbols = map[string]string{
	"$": "USD",
	"€": "EUR",
	"£": "GBP",
}

var currencyCodes = map[string]bool{
	"USD": true, "EUR": true, "GBP": true, "CHF": true, "PLN": true, "CZK": true,
	"SEK": true, "NOK": true, "DKK": true, "CAD": true, "AUD": true, "JPY": true,
	"CNY": true, "INR": true, "AED": true, "TRY": true, "BRL": true, "MXN": true,
}

var dateLayouts = []string{"2006-01-02", "02.01.2006", "01/02/2006", "2.1.2006", "1/2/2006"}

// extractable is the number of fields Parse tries to find.
const extractable = 5

// Parse pulls invoice fields out of document text. Confidence is the share of
// fields found.
func Parse(text string) *Result {
	result := &Result{Text: text}
	found := 0

	if m := invoiceNumberPattern.FindStringSubmatch(text); m != nil {
		result.InvoiceNumber = strings.ToUpper(m[1])
		found++
	}

	if m := vendorPattern.FindStringSubmatch(text); m != nil {
		result.VendorName = m[1]
		found++
	}

	if m := datePattern.FindStringSubmatch(text); m != nil {
		if d, ok := parseDate(m[1]); ok {
			result.InvoiceDate = &d
			found++
		}
	}

	// The last total line wins; earlier ones are usually carried-over sums.
	if all := totalPattern.FindAllStringSubmatch(text, -1); all != nil {
		m := all[len(all)-1]
		amount, err := decimal.NewFromString(strings.ReplaceAll(m[2], ",", ""))
		if err == nil {
			result.Total = decimal.NewNullDecimal(amount)
			found++
		}
		result.Currency = currencyCode(m[1])
		if result.Currency == "" {
			result.Currency = currencyCode(m[3])
		}
	}

	if result.Currency == "" {
		if m := currencyPattern.FindStringSubmatch(text); m != nil {
			result.Currency = currencyCode(m[1])
		}
	}
	if result.Currency != "" {
		found++
	}

	result.Confidence = float64(found) / extractable
	return result
}

func parseDate(raw string) (time.Time, bool) {
	for _, layout := range dateLayouts {
		if d, err := time.Parse(layout, raw); err == nil {
			return d, true
		}
	}
	return time.Time{}, false
}

func currencyCode(token string) string {
	if token == "" {
		return ""
	}
	if code, ok := currencySymbols[token]; ok {
		return code
	}
	if code := strings.ToUpper(token); currencyCodes[code] {
		return code
	}
	return ""
}
