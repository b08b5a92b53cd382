package field

import (
	"regexp"
	"strconv"
	"strings"
)

// A ValidateFunc checks one raw input string and, on success, returns the
// normalized value to store. Validators that only gate the input return the
// trimmed raw string unchanged.
type ValidateFunc func(raw string) (string, bool)

var (
	nameRe        = regexp.MustCompile(`^[A-Za-z .'-]{2,50}$`)
	namePhraseRe  = regexp.MustCompile(`(?:my name is|i am|this is)\s+([A-Za-z .'-]{2,50})`)
	mobileRe      = regexp.MustCompile(`^[6-9][0-9]{9}$`)
	panRe         = regexp.MustCompile(`^[A-Z]{5}[0-9]{4}[A-Z]$`)
	aadharRe      = regexp.MustCompile(`^[0-9]{12}$`)
	accountRe     = regexp.MustCompile(`^[0-9]{9,18}$`)
	transactionRe = regexp.MustCompile(`^[A-Za-z0-9\-]{5,30}$`)
	dateTimeRe    = regexp.MustCompile(`^(\d{1,2}[/-]\d{1,2}[/-]\d{2,4}|\d{4}-\d{1,2}-\d{1,2})$`)
)

var knownBanks = []string{
	"sbi", "hdfc", "icici", "axis", "kotak", "bob", "pnb", "canara", "union",
	"idbi", "yes bank", "indusind", "uco", "bandhan", "federal", "rbl",
	"bank of india", "bank of baroda",
}

// ValidateName accepts a bare name, or extracts one from phrases like
// "my name is X" and title-cases the captured group.
func ValidateName(raw string) (string, bool) {
	trimmed := strings.TrimSpace(raw)
	if nameRe.MatchString(trimmed) {
		return trimmed, true
	}
	if m := namePhraseRe.FindStringSubmatch(strings.ToLower(raw)); m != nil {
		return titleCase(m[1]), true
	}
	return "", false
}

// ValidateMobile accepts a 10-digit Indian mobile number starting with 6-9.
func ValidateMobile(raw string) (string, bool) {
	trimmed := strings.TrimSpace(raw)
	return trimmed, mobileRe.MatchString(trimmed)
}

// ValidateAge accepts an integer age in [1,120].
func ValidateAge(raw string) (string, bool) {
	trimmed := strings.TrimSpace(raw)
	n, err := strconv.Atoi(trimmed)
	if err != nil || n < 1 || n > 120 {
		return "", false
	}
	return trimmed, true
}

// ValidatePANOrAadhar accepts a PAN (ABCDE1234F, case-insensitive) or a
// 12-digit Aadhar number.
func ValidatePANOrAadhar(raw string) (string, bool) {
	trimmed := strings.TrimSpace(raw)
	if panRe.MatchString(strings.ToUpper(trimmed)) || aadharRe.MatchString(trimmed) {
		return trimmed, true
	}
	return "", false
}

// ValidateAddress accepts any address longer than 5 characters.
func ValidateAddress(raw string) (string, bool) {
	trimmed := strings.TrimSpace(raw)
	return trimmed, len(trimmed) > 5
}

// ValidateDescription accepts any description longer than 10 characters.
func ValidateDescription(raw string) (string, bool) {
	trimmed := strings.TrimSpace(raw)
	return trimmed, len(trimmed) > 10
}

// ValidateBankName accepts known Indian bank name fragments, or any value
// longer than 2 characters.
func ValidateBankName(raw string) (string, bool) {
	trimmed := strings.TrimSpace(raw)
	lower := strings.ToLower(trimmed)
	for _, b := range knownBanks {
		if strings.Contains(lower, b) {
			return trimmed, true
		}
	}
	return trimmed, len(trimmed) > 2
}

// ValidateAccountNumber accepts a 9-18 digit account number.
func ValidateAccountNumber(raw string) (string, bool) {
	trimmed := strings.TrimSpace(raw)
	return trimmed, accountRe.MatchString(trimmed)
}

// ValidateTransactionID accepts blank input or "don't know" verbatim, and
// otherwise requires a 5-30 character alphanumeric-plus-hyphen reference.
func ValidateTransactionID(raw string) (string, bool) {
	trimmed := strings.TrimSpace(raw)
	lower := strings.ToLower(trimmed)
	if trimmed == "" || lower == "don't know" || lower == "dont know" {
		return trimmed, true
	}
	return trimmed, transactionRe.MatchString(trimmed)
}

// ValidateDateTime accepts D/M/Y with slash or hyphen separators (2 or 4
// digit year) or ISO YYYY-M-D.
func ValidateDateTime(raw string) (string, bool) {
	trimmed := strings.TrimSpace(raw)
	return trimmed, dateTimeRe.MatchString(trimmed)
}

// ValidateRecipientName applies the same rule as ValidateName.
func ValidateRecipientName(raw string) (string, bool) {
	return ValidateName(raw)
}

func titleCase(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
