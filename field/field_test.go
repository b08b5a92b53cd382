package field

import (
	"reflect"
	"testing"
)

func TestRegistryLookupAndPrompt(t *testing.T) {
	r := NewRegistry()

	f, ok := r.Lookup(MobileNumber)
	if !ok {
		t.Fatal("mobile_number not registered")
	}
	if f.Prompt == "" || f.Validate == nil {
		t.Error("mobile_number definition incomplete")
	}

	if got := r.Prompt("some_new_field"); got != "Please provide your some new field:" {
		t.Errorf("fallback prompt = %q", got)
	}
}

func TestCollectSeedStopsAtDescription(t *testing.T) {
	r := NewRegistry()
	want := []string{Name, MobileNumber, Age, PANOrAadhar, Address, Description}
	if got := r.CollectSeed(); !reflect.DeepEqual(got, want) {
		t.Errorf("CollectSeed() = %v, want %v", got, want)
	}
}

func TestDerivedFields(t *testing.T) {
	r := NewRegistry()
	txn := r.TransactionFields()

	tests := []struct {
		desc string
		want []string
	}{
		{"I clicked a suspicious link in an SMS", txn},
		{"Money was DEBITED from my account", txn},
		{"funds were transferred without consent", txn},
		{"Someone called pretending to be my relative", nil},
	}
	for _, tt := range tests {
		if got := r.DerivedFields(tt.desc); !reflect.DeepEqual(got, tt.want) {
			t.Errorf("DerivedFields(%q) = %v, want %v", tt.desc, got, tt.want)
		}
	}
}

func TestNormalizeExtraDetails(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"no", NoExtraDetails},
		{"  NO  ", NoExtraDetails},
		{"Nothing Else", NoExtraDetails},
		{"none", NoExtraDetails},
		{"the scammer used number 9876543210", "the scammer used number 9876543210"},
	}
	for _, tt := range tests {
		if got := NormalizeExtraDetails(tt.in); got != tt.want {
			t.Errorf("NormalizeExtraDetails(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
