// Package server exposes the dialogue controller over HTTP: a JSON chat
// endpoint, an audio endpoint that transcribes and re-enters the same path,
// and the static chat UI.
package server

import (
	"html/template"
	"log/slog"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/bytedance/sonic"
	"github.com/cloudwego/eino/schema"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/neelpatel/fraudintake/dialogue"
	"github.com/neelpatel/fraudintake/session"
	"github.com/neelpatel/fraudintake/transcribe"
)

// Greeting opens every fresh conversation on the chat UI.
const Greeting = "Hey there! I'm Siri, your friendly Fraud Registration Assistant. Ready to help—what's on your mind?"

const (
	errNoPayload    = "Error: No JSON payload received. Please send a valid JSON payload."
	errMissingText  = "Error: Invalid input. Please send a valid JSON payload with a 'message' or 'text' field."
	errNoAudio      = "Error: No audio file provided."
	errNoTranscribe = "Error: Audio transcription is not configured."
)

// Server routes HTTP requests into the dialogue controller.
type Server struct {
	sessions     *session.Manager
	controller   *dialogue.Controller
	transcriber  transcribe.Transcriber
	staticDir    string
	templatesDir string
	router       chi.Router
}

// NewServer builds the router. transcriber may be nil, which disables the
// audio endpoint.
func NewServer(sessions *session.Manager, controller *dialogue.Controller, transcriber transcribe.Transcriber, staticDir, templatesDir string) *Server {
	s := &Server{
		sessions:     sessions,
		controller:   controller,
		transcriber:  transcriber,
		staticDir:    staticDir,
		templatesDir: templatesDir,
	}

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(middleware.RealIP)

	r.Get("/", s.handleIndex)
	r.Post("/chat", s.handleChat)
	r.Post("/process", s.handleChat)
	r.Post("/process_audio", s.handleAudio)
	r.Get("/api/v1/health", s.handleHealth)
	r.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(http.Dir(staticDir))))

	s.router = r
	return s
}

// Router returns the HTTP handler, for serving and for tests.
func (s *Server) Router() http.Handler {
	return s.router
}

type chatRequest struct {
	Message   string `json:"message"`
	Text      string `json:"text"`
	SessionID string `json:"session_id"`
}

type chatResponse struct {
	Response string `json:"response"`
}

type audioResponse struct {
	Transcription string `json:"transcription"`
	Response      string `json:"response"`
}

func (s *Server) handleChat(w http.ResponseWriter, r *http.Request) {
	req, ok := s.decodeChatRequest(w, r)
	if !ok {
		return
	}
	input := firstNonEmpty(req.Message, req.Text)
	if input == "" {
		writeJSON(w, http.StatusBadRequest, chatResponse{Response: errMissingText})
		return
	}

	reply, err := s.runTurn(r, req.SessionID, input)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, chatResponse{Response: "Error saving complaint: " + err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, chatResponse{Response: reply})
}

func (s *Server) handleAudio(w http.ResponseWriter, r *http.Request) {
	if s.transcriber == nil {
		writeJSON(w, http.StatusServiceUnavailable, audioResponse{Response: errNoTranscribe})
		return
	}

	file, header, err := r.FormFile("audio")
	if err != nil {
		slog.Error("no audio file in request", "error", err)
		writeJSON(w, http.StatusBadRequest, audioResponse{Response: errNoAudio})
		return
	}
	defer file.Close()

	text, err := s.transcriber.Transcribe(r.Context(), file, header.Filename)
	if err != nil {
		slog.Error("transcription failed", "error", err)
		writeJSON(w, http.StatusInternalServerError, audioResponse{Response: "Error processing audio: " + err.Error()})
		return
	}
	slog.Info("audio transcribed", "text", truncate(text, 200))
	if strings.TrimSpace(text) == "" {
		writeJSON(w, http.StatusBadRequest, audioResponse{Transcription: text, Response: errMissingText})
		return
	}

	reply, err := s.runTurn(r, r.FormValue("session_id"), text)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, audioResponse{Transcription: text, Response: "Error saving complaint: " + err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, audioResponse{Transcription: text, Response: reply})
}

// runTurn routes one utterance through the controller under the session
// manager's per-conversation lock.
func (s *Server) runTurn(r *http.Request, sessionID, input string) (string, error) {
	ctx := r.Context()
	if key := firstNonEmpty(sessionID, r.Header.Get("X-Session-ID")); key != "" {
		ctx = session.WithConversationID(ctx, key)
	}

	sess, release := s.sessions.Acquire(ctx)
	defer release()

	slog.Debug("incoming utterance", "text", truncate(input, 200))
	reply, err := s.controller.Handle(ctx, sess, input)
	if err != nil {
		return "", err
	}
	slog.Info("outgoing response", "text", truncate(reply, 200))
	return reply, nil
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	tmpl, err := template.ParseFiles(filepath.Join(s.templatesDir, "index.html"))
	if err != nil {
		slog.Error("index template missing", "error", err)
		http.Error(w, "index.html not found in templates folder", http.StatusInternalServerError)
		return
	}

	// A page load starts the conversation over.
	ctx := r.Context()
	if key := r.Header.Get("X-Session-ID"); key != "" {
		ctx = session.WithConversationID(ctx, key)
	}
	sess, release := s.sessions.Acquire(ctx)
	sess.ClearTranscript()
	sess.AppendTranscript(schema.AssistantMessage(Greeting, nil))
	release()

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := tmpl.Execute(w, map[string]string{"InitialMessage": Greeting}); err != nil {
		slog.Error("render index failed", "error", err)
	}
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":  "ok",
		"service": "fraudintake",
	})
}

// decodeChatRequest parses the JSON body, answering the fixed 400 itself
// when the payload is absent or malformed.
func (s *Server) decodeChatRequest(w http.ResponseWriter, r *http.Request) (chatRequest, bool) {
	var req chatRequest
	dec := sonic.ConfigDefault.NewDecoder(r.Body)
	if err := dec.Decode(&req); err != nil {
		slog.Error("malformed chat request", "error", err)
		writeJSON(w, http.StatusBadRequest, chatResponse{Response: errNoPayload})
		return chatRequest{}, false
	}
	return req, true
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := sonic.ConfigDefault.NewEncoder(w).Encode(v); err != nil {
		slog.Error("encode response failed", "error", err)
	}
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if trimmed := strings.TrimSpace(v); trimmed != "" {
			return trimmed
		}
	}
	return ""
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
