package intent

import "testing"

func TestComplaintStart(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"I want to report a scam", true},
		{"please help me file a complaint", true},
		{"I got scammed, how do I register a complaint", true},
		{"Lodge a Complaint", true},
		{"what's the weather today", false},
		{"tell me about phishing", false},
	}
	for _, tt := range tests {
		if got := ComplaintStart(tt.in); got != tt.want {
			t.Errorf("ComplaintStart(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestCancel(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"exit", true},
		{"CANCEL", true},
		{"please stop", true},
		{"i dont want to register", true},
		{"my name is Neel", false},
	}
	for _, tt := range tests {
		if got := Cancel(tt.in); got != tt.want {
			t.Errorf("Cancel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestFraudTopicAndInfo(t *testing.T) {
	if !FraudTopic("my money was stolen yesterday") {
		t.Error("expected fraud topic match for stolen money")
	}
	if FraudTopic("how do trains work") {
		t.Error("unexpected fraud topic match")
	}
	if !FraudInfo("what is a phishing scam") {
		t.Error("expected fraud info match")
	}
	if FraudInfo("what is the capital of France") {
		t.Error("unexpected fraud info match")
	}
}

func TestPostCompletionMatchers(t *testing.T) {
	if !Thanks("thank you so much") {
		t.Error("expected thanks match")
	}
	if Thanks("that is all") {
		t.Error("unexpected thanks match")
	}
	if !NextSteps("how do I get my money back") {
		t.Error("expected next-steps match")
	}
	if NextSteps("goodbye") {
		t.Error("unexpected next-steps match")
	}
}

func TestDetailPreference(t *testing.T) {
	if !WantsDetail("tell me more") {
		t.Error("expected detail request match")
	}
	if WantsDetail("tell me more about cats") {
		t.Error("detail phrases must match the whole input")
	}
	if !WantsBrief("in short") {
		t.Error("expected brief request match")
	}
	if WantsBrief("shortly after") {
		t.Error("brief phrases must match the whole input")
	}
}
