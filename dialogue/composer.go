package dialogue

import (
	"strings"

	"github.com/neelpatel/fraudintake/field"
)

// missingValue stands in for any field the record should show but has no
// value for. Once a section is rendered, none of its lines are omitted.
const missingValue = "N/A"

var summaryLines = []struct {
	label string
	name  string
}{
	{"Name", field.Name},
	{"Mobile Number", field.MobileNumber},
	{"Age", field.Age},
	{"PAN/Aadhar Number", field.PANOrAadhar},
	{"Address", field.Address},
	{"Description of Fraud", field.Description},
}

var transactionLines = []struct {
	label string
	name  string
}{
	{"Bank Name", field.BankName},
	{"Account Number", field.AccountNumber},
	{"Transaction ID", field.TransactionID},
	{"Date and Time", field.DateTime},
	{"Recipient Name", field.RecipientName},
}

// ComposeSummary renders a completed record for the user. The transaction
// block appears only when a bank name was collected; the extra-details line
// only when present.
func ComposeSummary(collected map[string]string) string {
	var b strings.Builder
	b.WriteString("Complaint Summary:\n")
	for _, line := range summaryLines {
		writeLine(&b, line.label, collected, line.name)
	}
	if _, ok := collected[field.BankName]; ok {
		for _, line := range transactionLines {
			writeLine(&b, line.label, collected, line.name)
		}
	}
	if _, ok := collected[field.ExtraDetails]; ok {
		writeLine(&b, "Extra Details", collected, field.ExtraDetails)
	}
	return b.String()
}

func writeLine(b *strings.Builder, label string, collected map[string]string, name string) {
	value, ok := collected[name]
	if !ok || value == "" {
		value = missingValue
	}
	b.WriteString(label)
	b.WriteString(": ")
	b.WriteString(value)
	b.WriteString("\n")
}
