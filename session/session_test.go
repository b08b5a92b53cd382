package session

import (
	"context"
	"sync"
	"testing"

	"github.com/cloudwego/eino/schema"
)

func TestBeginCollectingSeedsState(t *testing.T) {
	s := New()
	s.JustCompleted = true
	s.BeginCollecting([]string{"name", "age"})

	if s.Mode != ModeCollecting {
		t.Errorf("mode = %q, want collecting", s.Mode)
	}
	if s.Cursor != 0 || len(s.Collected) != 0 {
		t.Error("expected fresh cursor and collected map")
	}
	if s.JustCompleted {
		t.Error("starting collection must clear the completion flag")
	}

	name, ok := s.CurrentField()
	if !ok || name != "name" {
		t.Errorf("CurrentField() = %q, %v", name, ok)
	}
}

func TestAtExtraDetails(t *testing.T) {
	s := New()
	s.BeginCollecting([]string{"name"})
	if s.AtExtraDetails() {
		t.Error("not at extra details with fields pending")
	}
	s.Cursor = 1
	if !s.AtExtraDetails() {
		t.Error("cursor == len(fields) must mean extra details")
	}
	if _, ok := s.CurrentField(); ok {
		t.Error("no current field at the terminal step")
	}
}

func TestCompleteAndLeave(t *testing.T) {
	s := New()
	s.BeginCollecting([]string{"name"})
	s.Collected["name"] = "Neel"

	s.Complete()
	if s.Mode != ModePostCompletion || !s.JustCompleted {
		t.Errorf("after Complete: mode=%q justCompleted=%v", s.Mode, s.JustCompleted)
	}
	if len(s.Collected) != 0 {
		t.Error("completion must clear the collected record")
	}

	s.LeavePostCompletion()
	if s.Mode != ModeIdle || s.JustCompleted {
		t.Errorf("after LeavePostCompletion: mode=%q justCompleted=%v", s.Mode, s.JustCompleted)
	}
}

func TestTranscriptDedupeAndWindow(t *testing.T) {
	s := New()
	s.AppendTranscript(schema.UserMessage("hello"))
	s.AppendTranscript(schema.UserMessage("hello"))
	s.AppendTranscript(schema.AssistantMessage("hi", nil))
	if len(s.Transcript) != 2 {
		t.Fatalf("transcript length = %d, want 2 after dedupe", len(s.Transcript))
	}

	for i := 0; i < DefaultTranscriptCap+10; i++ {
		s.AppendTranscript(schema.UserMessage(string(rune('a' + i%26))))
		s.AppendTranscript(schema.AssistantMessage(string(rune('A'+i%26)), nil))
	}
	if len(s.Transcript) != DefaultTranscriptCap {
		t.Errorf("transcript length = %d, want cap %d", len(s.Transcript), DefaultTranscriptCap)
	}

	win := s.TranscriptWindow(5)
	if len(win) != 5 {
		t.Errorf("window length = %d, want 5", len(win))
	}
	if win[4] != s.Transcript[len(s.Transcript)-1] {
		t.Error("window must end at the latest entry")
	}
}

func TestManagerKeysSessionsByConversation(t *testing.T) {
	m := NewManager()

	ctxA := WithConversationID(context.Background(), "a")
	ctxB := WithConversationID(context.Background(), "b")

	sa, release := m.Acquire(ctxA)
	sa.WantsDetail = true
	release()

	sb, release := m.Acquire(ctxB)
	if sb.WantsDetail {
		t.Error("conversations must not share session state")
	}
	release()

	sa2, release := m.Acquire(ctxA)
	if !sa2.WantsDetail {
		t.Error("session state must persist per conversation")
	}
	release()
}

func TestManagerDefaultKey(t *testing.T) {
	m := NewManager()

	s1, release := m.Acquire(context.Background())
	s1.WantsDetail = true
	release()

	s2, release := m.Acquire(WithConversationID(context.Background(), ""))
	defer release()
	if !s2.WantsDetail {
		t.Error("empty key must route to the default conversation")
	}
}

func TestManagerSerializesPerKey(t *testing.T) {
	m := NewManager()
	ctx := WithConversationID(context.Background(), "serial")

	const turns = 100
	var wg sync.WaitGroup
	for i := 0; i < turns; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			s, release := m.Acquire(ctx)
			s.Cursor++
			release()
		}()
	}
	wg.Wait()

	s, release := m.Acquire(ctx)
	defer release()
	if s.Cursor != turns {
		t.Errorf("cursor = %d, want %d: turns interleaved", s.Cursor, turns)
	}
}
