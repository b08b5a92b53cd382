// Package session holds the mutable state of one conversation and the keyed
// manager that serializes access to it.
package session

import (
	"github.com/cloudwego/eino/schema"
)

// Mode is the dialogue state-machine mode. Exactly one holds at any time.
type Mode string

const (
	// ModeIdle means no complaint flow is active.
	ModeIdle Mode = "idle"
	// ModeAwaitingStart means the assistant asked for a yes/no confirmation
	// before starting collection.
	ModeAwaitingStart Mode = "awaiting_start_confirmation"
	// ModeCollecting means a complaint record is being collected field by field.
	ModeCollecting Mode = "collecting"
	// ModePostCompletion means a complaint was just finalized; follow-up
	// utterances get special routing until the mode decays back to idle.
	ModePostCompletion Mode = "post_completion"
)

// DefaultTranscriptCap bounds the stored transcript. Only a short window of
// it is ever fed to the language model.
const DefaultTranscriptCap = 50

// Session is the full mutable state of one conversation. It is mutated only
// by the dialogue controller, under the manager's per-key lock.
type Session struct {
	Mode Mode

	// FieldsToCollect is seeded when collection starts and may grow once,
	// right after the description is accepted. Entries are never removed
	// or reordered.
	FieldsToCollect []string

	// Cursor indexes FieldsToCollect. Cursor == len(FieldsToCollect) means
	// the terminal extra-details pseudo-field is active.
	Cursor int

	// Collected maps field name to normalized value, append-only until reset.
	Collected map[string]string

	// Transcript is a bounded rolling window of the conversation, used only
	// as language-model context.
	Transcript []*schema.Message

	// WantsDetail is a sticky preference applied to general answers.
	WantsDetail bool

	// JustCompleted is set when a complaint was finalized and no
	// post-completion follow-up has consumed it yet. It holds exactly when
	// Mode == ModePostCompletion.
	JustCompleted bool

	transcriptCap int
}

// New returns an empty idle session.
func New() *Session {
	return &Session{
		Mode:          ModeIdle,
		Collected:     map[string]string{},
		transcriptCap: DefaultTranscriptCap,
	}
}

// BeginCollecting seeds the field list and moves the session into the
// collecting mode with a fresh record.
func (s *Session) BeginCollecting(fields []string) {
	s.Mode = ModeCollecting
	s.FieldsToCollect = append([]string(nil), fields...)
	s.Cursor = 0
	s.Collected = map[string]string{}
	s.JustCompleted = false
}

// AtExtraDetails reports whether the terminal pseudo-field is active.
func (s *Session) AtExtraDetails() bool {
	return s.Mode == ModeCollecting && s.Cursor == len(s.FieldsToCollect)
}

// CurrentField returns the field under the cursor, or false at the terminal
// pseudo-field.
func (s *Session) CurrentField() (string, bool) {
	if s.Mode != ModeCollecting || s.Cursor >= len(s.FieldsToCollect) {
		return "", false
	}
	return s.FieldsToCollect[s.Cursor], true
}

// Reset abandons any in-progress collection and returns to idle. The sticky
// detail preference and the transcript survive a reset.
func (s *Session) Reset() {
	s.Mode = ModeIdle
	s.FieldsToCollect = nil
	s.Cursor = 0
	s.Collected = map[string]string{}
	s.JustCompleted = false
}

// Complete finalizes the active record: collection state is cleared and the
// session enters the post-completion mode.
func (s *Session) Complete() {
	s.Reset()
	s.Mode = ModePostCompletion
	s.JustCompleted = true
}

// LeavePostCompletion decays the post-completion mode back to idle.
func (s *Session) LeavePostCompletion() {
	if s.Mode == ModePostCompletion {
		s.Mode = ModeIdle
	}
	s.JustCompleted = false
}

// AppendTranscript adds messages to the rolling transcript, skipping an
// entry that exactly repeats the previous role and content, and trims to
// the transcript cap.
func (s *Session) AppendTranscript(msgs ...*schema.Message) {
	for _, msg := range msgs {
		if msg == nil {
			continue
		}
		if n := len(s.Transcript); n > 0 {
			last := s.Transcript[n-1]
			if last.Role == msg.Role && last.Content == msg.Content {
				continue
			}
		}
		s.Transcript = append(s.Transcript, msg)
	}
	limit := s.transcriptCap
	if limit <= 0 {
		limit = DefaultTranscriptCap
	}
	if len(s.Transcript) > limit {
		s.Transcript = s.Transcript[len(s.Transcript)-limit:]
	}
}

// ClearTranscript drops the rolling transcript, e.g. when the chat UI is
// reloaded.
func (s *Session) ClearTranscript() {
	s.Transcript = nil
}

// TranscriptWindow returns the last n transcript entries.
func (s *Session) TranscriptWindow(n int) []*schema.Message {
	if n <= 0 || len(s.Transcript) <= n {
		return s.Transcript
	}
	return s.Transcript[len(s.Transcript)-n:]
}
