// Package intent classifies user utterances into coarse categories via
// fixed pattern lists. The lists are data: extending coverage never touches
// the dialogue state machine.
package intent

import (
	"regexp"
	"strings"
)

var fraudTopicPatterns = compile(
	`scam`, `fraud`, `cheated`, `complaint`, `report`,
	`money.*(stolen|debited|lost)`, `link.*clicked`, `phished`,
)

var complaintStartPatterns = compile(
	`file a complaint`, `register a complaint`, `report fraud`, `report a scam`,
	`register fraud`, `lodge a complaint`, `submit a complaint`, `want to complain`,
	`want to report`, `register a case`,
	`start.*complaint`, `begin.*complaint`, `complaint.*fraud`, `scammed.*register`,
	`scammed.*complaint`, `i got scammed.*complaint`, `i want.*complaint`,
	`i need.*complaint`, `i wish.*complaint`, `help.*complaint`,
	`help.*register.*fraud`, `help.*report.*fraud`, `i want to file.*complaint`,
	`i want to register.*complaint`, `i want to report.*fraud`,
	`i want to lodge.*complaint`, `i want to submit.*complaint`,
	`i want to make.*complaint`, `register.*fraud.*complaint`,
	`report.*fraud.*complaint`, `file.*fraud.*complaint`,
	`scammed.*register.*complaint`, `scammed.*file.*complaint`,
)

var fraudInfoPatterns = compile(
	`what is fraud`, `types of fraud`, `phishing`, `scam`, `fraud information`,
	`explain fraud`, `how to avoid fraud`, `what is a phishing scam`,
	`fraudulent`, `identity theft`,
)

var cancelPatterns = compile(
	`exit`, `cancel`, `stop`, `quit`,
	`no i don't want`, `no i dont want`,
	`don't want to register`, `dont want to register`,
)

var thanksPhrases = []string{"thank you", "thanks", "thankyou", "thx"}

var nextStepsPhrases = []string{
	"money back", "next step", "what should i do", "what to do", "how to recover",
	"how do i get my money", "how to get my money", "how can i get my money back",
	"what should i do to get my money back", "how to get my money back",
	"recover my money", "get my money back", "how can i recover my money",
	"how do i recover my money", "help me get my money back",
	"help to get my money back", "help recover my money", "help me recover my money",
	"can you help me get my money back", "can you help recover my money",
	"can you help me recover my money", "can you help me with my money back",
	"can you help with my money back",
}

var detailPhrases = []string{"yes", "more", "tell me more", "details", "explain more"}

var briefPhrases = []string{"short", "in short", "brief", "summary"}

func compile(patterns ...string) []*regexp.Regexp {
	out := make([]*regexp.Regexp, 0, len(patterns))
	for _, p := range patterns {
		out = append(out, regexp.MustCompile(p))
	}
	return out
}

func matchAny(patterns []*regexp.Regexp, input string) bool {
	lower := strings.ToLower(input)
	for _, re := range patterns {
		if re.MatchString(lower) {
			return true
		}
	}
	return false
}

func containsAny(phrases []string, input string) bool {
	lower := strings.ToLower(input)
	for _, p := range phrases {
		if strings.Contains(lower, p) {
			return true
		}
	}
	return false
}

func equalsAny(phrases []string, input string) bool {
	lower := strings.ToLower(strings.TrimSpace(input))
	for _, p := range phrases {
		if lower == p {
			return true
		}
	}
	return false
}

// FraudTopic reports whether the input touches a fraud-related topic.
func FraudTopic(input string) bool { return matchAny(fraudTopicPatterns, input) }

// ComplaintStart reports whether the user wants to register a complaint.
func ComplaintStart(input string) bool { return matchAny(complaintStartPatterns, input) }

// FraudInfo reports whether the user is asking for fraud information.
func FraudInfo(input string) bool { return matchAny(fraudInfoPatterns, input) }

// Cancel reports whether the user wants to abandon the registration flow.
func Cancel(input string) bool { return matchAny(cancelPatterns, input) }

// Thanks matches post-completion gratitude.
func Thanks(input string) bool { return containsAny(thanksPhrases, input) }

// NextSteps matches post-completion "what now / recover my money" questions.
func NextSteps(input string) bool { return containsAny(nextStepsPhrases, input) }

// WantsDetail reports whether the input asks for a longer general answer.
func WantsDetail(input string) bool { return equalsAny(detailPhrases, input) }

// WantsBrief reports whether the input asks for a shorter general answer.
func WantsBrief(input string) bool { return equalsAny(briefPhrases, input) }
