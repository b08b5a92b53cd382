// Package field defines the complaint form fields: per-field validators,
// prompts, the ordered base registry and the rule that derives extra
// transaction fields from the fraud description.
package field

import "strings"

// Canonical field names.
const (
	Name          = "name"
	MobileNumber  = "mobile_number"
	Age           = "age"
	PANOrAadhar   = "pan_or_aadhar"
	Address       = "address"
	Description   = "description"
	BankName      = "bank_name"
	AccountNumber = "account_number"
	TransactionID = "transaction_id"
	DateTime      = "date_time"
	RecipientName = "recipient_name"
)

// ExtraDetails is the synthetic terminal pseudo-field that follows the
// collected field list. It has no validator.
const ExtraDetails = "extra_details"

// ExtraDetailsPrompt is emitted once every registered field is collected.
const ExtraDetailsPrompt = "Is there any other detail you'd like to provide about the fraud (e.g., suspicious link, email, or other information)? If not, type 'no'."

// NoExtraDetails is stored when the user declines the extra-details prompt.
const NoExtraDetails = "No extra details provided."

// Field binds a name to its validator and prompt. Immutable once defined.
type Field struct {
	Name     string
	Validate ValidateFunc
	Prompt   string
}

// Registry holds the fixed, ordered set of field definitions.
type Registry struct {
	order  []string
	fields map[string]Field
}

// descriptionTriggers are the description keywords that pull the five
// transaction fields into the collection list.
var descriptionTriggers = []string{"link", "clicked", "debited", "transferred"}

// NewRegistry builds the base registry of the eleven complaint fields.
func NewRegistry() *Registry {
	defs := []Field{
		{Name, ValidateName, "Please enter your full name (e.g., Neel Patel):"},
		{MobileNumber, ValidateMobile, "Please enter a valid 10-digit Indian mobile number (starting with 6-9):"},
		{Age, ValidateAge, "Please enter your age (1-120):"},
		{PANOrAadhar, ValidatePANOrAadhar, "Please enter a valid PAN (ABCDE1234F) or 12-digit Aadhar number:"},
		{Address, ValidateAddress, "Please enter your address (at least 6 characters):"},
		{Description, ValidateDescription, "Please briefly describe the fraud (at least 10 characters):"},
		{BankName, ValidateBankName, "Please enter your bank name (e.g., SBI, HDFC, ICICI, etc.):"},
		{AccountNumber, ValidateAccountNumber, "Please enter your bank account number (9-18 digits):"},
		{TransactionID, ValidateTransactionID, "Please enter your transaction ID (if available). If you don't know, type 'don't know':"},
		{DateTime, ValidateDateTime, "Please enter the date of the incident (e.g., 01/01/2023):"},
		{RecipientName, ValidateRecipientName, "Please enter the recipient's name (if known):"},
	}
	r := &Registry{fields: make(map[string]Field, len(defs))}
	for _, f := range defs {
		r.order = append(r.order, f.Name)
		r.fields[f.Name] = f
	}
	return r
}

// Lookup returns the definition for name.
func (r *Registry) Lookup(name string) (Field, bool) {
	f, ok := r.fields[name]
	return f, ok
}

// Prompt returns the prompt for name, falling back to a generic request for
// names without a registered definition.
func (r *Registry) Prompt(name string) string {
	if f, ok := r.fields[name]; ok && f.Prompt != "" {
		return f.Prompt
	}
	return "Please provide your " + strings.ReplaceAll(name, "_", " ") + ":"
}

// CollectSeed returns the fields every complaint collects, in order, up to
// and including the description. Transaction fields join the list only when
// the description triggers them.
func (r *Registry) CollectSeed() []string {
	return []string{Name, MobileNumber, Age, PANOrAadhar, Address, Description}
}

// TransactionFields returns the five transaction-related fields, in order.
func (r *Registry) TransactionFields() []string {
	return []string{BankName, AccountNumber, TransactionID, DateTime, RecipientName}
}

// DerivedFields inspects an accepted description and returns the transaction
// fields when it mentions a money-movement keyword, nil otherwise.
func (r *Registry) DerivedFields(description string) []string {
	lower := strings.ToLower(description)
	for _, kw := range descriptionTriggers {
		if strings.Contains(lower, kw) {
			return r.TransactionFields()
		}
	}
	return nil
}

// NormalizeExtraDetails maps declining answers to the NoExtraDetails
// sentinel and stores anything else verbatim.
func NormalizeExtraDetails(raw string) string {
	trimmed := strings.TrimSpace(raw)
	switch strings.ToLower(trimmed) {
	case "no", "nothing else", "none":
		return NoExtraDetails
	}
	return trimmed
}
