package billing

import "regexp"

var (
	cardNumberPattern = regexp.MustCompile(`^\d{16}$`)
	expirationPattern = regexp.MustCompile(`^\d{2}/\d{2}$`)
	cvvPattern        = regexp.MustCompile(`^\d{3,4}$`)
)

// Info holds the billing form fields for one checkout attempt. It is
// transient: never persisted, discarded when the form goes away, and
// never transmitted to a payment network - validation is for shape
// only.
type Info struct {
	CardholderName string `json:"cardholder_name"`
	CardNumber     string `json:"card_number"`
	ExpirationDate string `json:"expiration_date"`
	CVV            string `json:"cvv"`
}

// Validate reports whether every field passes its format rule. The
// checkout form's submit control is driven by this boolean on every
// keystroke, and the checkout orchestrator re-checks it on submit.
//
// The rules reproduce the legacy storefront behaviour: the cardholder
// name is only checked for being non-empty (an all-whitespace name
// passes) and the expiration date is checked for shape only (a month
// of 13-99 passes). Do not tighten without a spec change.
func (i Info) Validate() bool {
	return i.ValidCardholderName() &&
		i.ValidCardNumber() &&
		i.ValidExpirationDate() &&
		i.ValidCVV()
}

// ValidCardholderName reports whether the cardholder name is non-empty.
// No trimming is performed.
func (i Info) ValidCardholderName() bool {
	return i.CardholderName != ""
}

// ValidCardNumber reports whether the card number is exactly 16 ASCII
// digits with no separators.
func (i Info) ValidCardNumber() bool {
	return cardNumberPattern.MatchString(i.CardNumber)
}

// ValidExpirationDate reports whether the expiration date matches
// DD/DD - two digits, a slash, two digits.
func (i Info) ValidExpirationDate() bool {
	return expirationPattern.MatchString(i.ExpirationDate)
}

// ValidCVV reports whether the CVV is 3 or 4 ASCII digits.
func (i Info) ValidCVV() bool {
	return cvvPattern.MatchString(i.CVV)
}
