// Package dialogue implements the intake state machine: one utterance in,
// one assistant message out, with all session mutation in between.
package dialogue

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/cloudwego/eino/schema"
	"github.com/google/uuid"

	"github.com/neelpatel/fraudintake/field"
	"github.com/neelpatel/fraudintake/gateway"
	"github.com/neelpatel/fraudintake/intent"
	"github.com/neelpatel/fraudintake/record"
	"github.com/neelpatel/fraudintake/session"
)

// TranscriptPromptWindow is how many recent transcript turns are fed to the
// language model on the general-question path.
const TranscriptPromptWindow = 5

const (
	cancelledReply = "Complaint registration has been cancelled. If you need help with anything else, just let me know!"

	confirmReprompt = "Please reply 'yes' to proceed with registering your complaint, or 'no' to cancel."

	startInstructions = "Before we begin registering your fraud complaint, please note:\n" +
		"- Only provide the specific information requested at each step.\n" +
		"- Answer in a clear and concise manner (e.g., for 'name', just type your full name).\n" +
		"- If at any point you wish to stop the registration process, simply type 'exit', 'cancel', or 'stop'.\n" +
		"Would you like to proceed with registering your complaint? (yes/no)"

	registeredClosing = "\nYour complaint has been registered. How else can I assist you?"

	thanksReply = "You're welcome! If you need any further help or guidance, please let me know."

	nextStepsReply = "Please promptly report the incident to your bank and keep all evidence safe. " +
		"For further assistance, you may also visit your local police station. " +
		"If you need more guidance, let me know."

	systemPrompt = "You are Siri, a helpful assistant who specializes in fraud registration and fraud-related topics, but you can also answer general questions if asked. " +
		"For general questions, first provide a concise summary. Then ask: 'Would you like to know more about this topic?' If the user says yes, provide a detailed answer. If the user says 'short', always provide a brief answer. " +
		"If the user wants to register a complaint, guide them through the process. If they ask about fraud or general knowledge, answer helpfully.\n" +
		"Do not use emoticons, asterisks, or describe actions like *smiles* or *waves* in your responses. Keep your answers professional and to the point."

	fraudTopicHint = "The user's question touches a fraud-related topic. Answer with practical fraud-safety guidance where relevant."

	detailedAnswerHint = "Please provide a detailed answer."
)

// Controller drives the dialogue state machine. It owns no state itself;
// every call mutates the session passed in, which the session manager keeps
// serialized per conversation.
type Controller struct {
	registry *field.Registry
	gateway  gateway.Generator
	records  record.Store
}

// NewController wires the state machine to its collaborators.
func NewController(registry *field.Registry, gw gateway.Generator, records record.Store) *Controller {
	return &Controller{
		registry: registry,
		gateway:  gw,
		records:  records,
	}
}

// Handle processes one user utterance against the session and returns the
// next assistant message. A non-nil error means the completed record could
// not be persisted; the session is left at the terminal step so the user can
// resubmit the final answer to retry.
func (c *Controller) Handle(ctx context.Context, sess *session.Session, input string) (string, error) {
	sess.AppendTranscript(schema.UserMessage(input))

	// 1. Cancellation wins over everything while collecting.
	if sess.Mode == session.ModeCollecting && intent.Cancel(input) {
		sess.Reset()
		slog.Info("complaint registration cancelled")
		return c.reply(sess, cancelledReply), nil
	}

	// 2. The start confirmation is a strict yes/no gate.
	if sess.Mode == session.ModeAwaitingStart {
		return c.reply(sess, c.handleStartConfirmation(sess, input)), nil
	}

	// 3. Mid-collection input never reaches the language model.
	if sess.Mode == session.ModeCollecting {
		msg, err := c.handleCollectStep(ctx, sess, input)
		if err != nil {
			return "", err
		}
		return c.reply(sess, msg), nil
	}

	// 4. A fresh complaint intent preempts any lingering post-completion state.
	if intent.ComplaintStart(input) {
		sess.LeavePostCompletion()
		sess.Mode = session.ModeAwaitingStart
		return c.reply(sess, startInstructions), nil
	}

	// 5. Post-completion follow-ups. An unmatched utterance falls through to
	// the general path with the flag intact (grace window).
	if sess.JustCompleted {
		if intent.Thanks(input) {
			sess.LeavePostCompletion()
			return c.reply(sess, thanksReply), nil
		}
		if intent.NextSteps(input) {
			sess.LeavePostCompletion()
			return c.reply(sess, nextStepsReply), nil
		}
	}

	// 6. Everything else is a general question for the language model.
	return c.reply(sess, c.handleGeneral(ctx, sess, input)), nil
}

func (c *Controller) handleStartConfirmation(sess *session.Session, input string) string {
	switch strings.ToLower(strings.TrimSpace(input)) {
	case "yes", "y":
		sess.BeginCollecting(c.registry.CollectSeed())
		first, _ := sess.CurrentField()
		return c.registry.Prompt(first)
	case "no", "n":
		sess.Reset()
		return cancelledReply
	default:
		return confirmReprompt
	}
}

func (c *Controller) handleCollectStep(ctx context.Context, sess *session.Session, input string) (string, error) {
	if sess.AtExtraDetails() {
		return c.finalize(ctx, sess, input)
	}

	name, _ := sess.CurrentField()
	def, ok := c.registry.Lookup(name)

	normalized := strings.TrimSpace(input)
	accepted := true
	if ok && def.Validate != nil {
		normalized, accepted = def.Validate(input)
	}
	if !accepted {
		// Rejection leaves cursor and collected values untouched.
		slog.Info("field input rejected", "field", name)
		return c.registry.Prompt(name), nil
	}

	sess.Collected[name] = normalized

	// The accepted description decides, once, whether the transaction
	// fields join the list. Appending is idempotent so a list that already
	// carries them is left alone.
	if name == field.Description {
		for _, extra := range c.registry.DerivedFields(input) {
			if !containsField(sess.FieldsToCollect, extra) {
				sess.FieldsToCollect = append(sess.FieldsToCollect, extra)
			}
		}
	}

	sess.Cursor++
	if sess.AtExtraDetails() {
		return field.ExtraDetailsPrompt, nil
	}
	next, _ := sess.CurrentField()
	return c.registry.Prompt(next), nil
}

func (c *Controller) finalize(ctx context.Context, sess *session.Session, input string) (string, error) {
	sess.Collected[field.ExtraDetails] = field.NormalizeExtraDetails(input)

	rec := record.Complaint{
		ID:        uuid.NewString(),
		CreatedAt: time.Now().UTC(),
		Fields:    copyFields(sess.Collected),
	}
	if err := c.records.Append(ctx, rec); err != nil {
		// Keep the session at the terminal step: no record is silently
		// dropped, and resubmitting the last answer retries persistence.
		slog.Error("failed to save complaint", "error", err)
		return "", fmt.Errorf("save complaint: %w", err)
	}

	summary := ComposeSummary(sess.Collected)
	sess.Complete()
	slog.Info("complaint registered", "id", rec.ID)
	return summary + registeredClosing, nil
}

func (c *Controller) handleGeneral(ctx context.Context, sess *session.Session, input string) string {
	if intent.WantsDetail(input) {
		sess.WantsDetail = true
	} else if intent.WantsBrief(input) {
		sess.WantsDetail = false
	}

	msgs := []*schema.Message{schema.SystemMessage(systemPrompt)}
	if intent.FraudTopic(input) || intent.FraudInfo(input) {
		msgs = append(msgs, schema.SystemMessage(fraudTopicHint))
	}
	msgs = append(msgs, sess.TranscriptWindow(TranscriptPromptWindow)...)
	if sess.WantsDetail {
		msgs = append(msgs, schema.SystemMessage(detailedAnswerHint))
	}

	text, err := c.gateway.Generate(ctx, msgs)
	if err != nil {
		// A gateway failure is a message, not an error: the session is
		// untouched and the conversation continues next turn.
		slog.Error("language model call failed", "error", err)
		return fmt.Sprintf("Error communicating with the language model: %s", err)
	}
	return text
}

// reply records the assistant message in the transcript and returns it.
func (c *Controller) reply(sess *session.Session, msg string) string {
	sess.AppendTranscript(schema.AssistantMessage(msg, nil))
	return msg
}

func containsField(fields []string, name string) bool {
	for _, f := range fields {
		if f == name {
			return true
		}
	}
	return false
}

func copyFields(m map[string]string) map[string]string {
	out := make(map[string]string, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}
