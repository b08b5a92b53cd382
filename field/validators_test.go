package field

import "testing"

func TestValidateName(t *testing.T) {
	tests := []struct {
		in   string
		want string
		ok   bool
	}{
		{"Neel Patel", "Neel Patel", true},
		{"  Neel Patel  ", "Neel Patel", true},
		{"O'Brien-Smith Jr.", "O'Brien-Smith Jr.", true},
		{"my name is neel patel", "Neel Patel", true},
		{"My Name Is Asha Rao", "Asha Rao", true},
		{"i am ravi kumar", "Ravi Kumar", true},
		{"this is deepa", "Deepa", true},
		{"X", "", false},
		{"name with digits 123", "", false},
		{"", "", false},
	}
	for _, tt := range tests {
		got, ok := ValidateName(tt.in)
		if ok != tt.ok {
			t.Errorf("ValidateName(%q) ok = %v, want %v", tt.in, ok, tt.ok)
			continue
		}
		if ok && got != tt.want {
			t.Errorf("ValidateName(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestValidateMobile(t *testing.T) {
	tests := []struct {
		in string
		ok bool
	}{
		{"9876543210", true},
		{"6000000000", true},
		{" 7876543210 ", true},
		{"1234567890", false},
		{"98765432", false},
		{"98765432101", false},
		{"98765abc10", false},
		{"", false},
	}
	for _, tt := range tests {
		if _, ok := ValidateMobile(tt.in); ok != tt.ok {
			t.Errorf("ValidateMobile(%q) = %v, want %v", tt.in, ok, tt.ok)
		}
	}
}

func TestValidateAge(t *testing.T) {
	tests := []struct {
		in string
		ok bool
	}{
		{"1", true},
		{"35", true},
		{"120", true},
		{"0", false},
		{"121", false},
		{"-3", false},
		{"thirty", false},
		{"", false},
	}
	for _, tt := range tests {
		if _, ok := ValidateAge(tt.in); ok != tt.ok {
			t.Errorf("ValidateAge(%q) = %v, want %v", tt.in, ok, tt.ok)
		}
	}
}

func TestValidatePANOrAadhar(t *testing.T) {
	tests := []struct {
		in string
		ok bool
	}{
		{"ABCDE1234F", true},
		{"abcde1234f", true},
		{"123456789012", true},
		{"ABCDE12345", false},
		{"12345678901", false},
		{"1234567890123", false},
		{"", false},
	}
	for _, tt := range tests {
		if _, ok := ValidatePANOrAadhar(tt.in); ok != tt.ok {
			t.Errorf("ValidatePANOrAadhar(%q) = %v, want %v", tt.in, ok, tt.ok)
		}
	}
}

func TestValidateAddressAndDescription(t *testing.T) {
	if _, ok := ValidateAddress("12 MG Road"); !ok {
		t.Error("expected address accepted")
	}
	if _, ok := ValidateAddress("short"); ok {
		t.Error("expected 5-char address rejected")
	}
	if _, ok := ValidateDescription("I was phished online"); !ok {
		t.Error("expected description accepted")
	}
	if _, ok := ValidateDescription("too short"); ok {
		t.Error("expected short description rejected")
	}
}

func TestValidateBankName(t *testing.T) {
	tests := []struct {
		in string
		ok bool
	}{
		{"SBI", true},
		{"State hdfc branch", true},
		{"Bank of Baroda", true},
		{"XY", false},
		{"Some Credit Union", true},
	}
	for _, tt := range tests {
		if _, ok := ValidateBankName(tt.in); ok != tt.ok {
			t.Errorf("ValidateBankName(%q) = %v, want %v", tt.in, ok, tt.ok)
		}
	}
}

func TestValidateAccountNumber(t *testing.T) {
	tests := []struct {
		in string
		ok bool
	}{
		{"123456789", true},
		{"123456789012345678", true},
		{"12345678", false},
		{"1234567890123456789", false},
		{"12345678a", false},
	}
	for _, tt := range tests {
		if _, ok := ValidateAccountNumber(tt.in); ok != tt.ok {
			t.Errorf("ValidateAccountNumber(%q) = %v, want %v", tt.in, ok, tt.ok)
		}
	}
}

func TestValidateTransactionID(t *testing.T) {
	tests := []struct {
		in string
		ok bool
	}{
		{"", true},
		{"   ", true},
		{"don't know", true},
		{"DONT KNOW", true},
		{"TXN-12345", true},
		{"abc1", false},
		{"has space 123", false},
	}
	for _, tt := range tests {
		if _, ok := ValidateTransactionID(tt.in); ok != tt.ok {
			t.Errorf("ValidateTransactionID(%q) = %v, want %v", tt.in, ok, tt.ok)
		}
	}
}

func TestValidateDateTime(t *testing.T) {
	tests := []struct {
		in string
		ok bool
	}{
		{"01/01/2023", true},
		{"1-1-23", true},
		{"2023-1-5", true},
		{"31/12/2022", true},
		{"January 1st", false},
		{"2023/01/05x", false},
		{"", false},
	}
	for _, tt := range tests {
		if _, ok := ValidateDateTime(tt.in); ok != tt.ok {
			t.Errorf("ValidateDateTime(%q) = %v, want %v", tt.in, ok, tt.ok)
		}
	}
}
