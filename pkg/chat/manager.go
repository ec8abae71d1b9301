// Package chat manages the conversational session attached to a single
// career. One conversation exists at a time; opening a new one discards
// the old.
package chat

import (
	"context"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/nikogura/career-compass/pkg/career"
	"github.com/nikogura/career-compass/pkg/gateway"
	"github.com/nikogura/career-compass/pkg/prompt"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

const apologyMessage = "Sorry, I encountered an error. Please try again."

// PresetQuestions are the canned follow-ups offered alongside the input.
//
//nolint:gochecknoglobals // Static catalog.
var PresetQuestions = []string{
	"What's a typical day like?",
	"What are the pros and cons?",
	"What is the average salary?",
}

// Manager holds at most one live conversation and its transcript.
type Manager struct {
	mu         sync.Mutex
	gw         gateway.Gateway
	logger     *zap.Logger
	id         string
	subject    *career.Career
	session    gateway.ChatSession
	messages   []career.ChatMessage
	responding bool
}

// NewManager creates a chat manager over the given gateway.
func NewManager(gw gateway.Gateway, logger *zap.Logger) (manager *Manager) {
	if logger == nil {
		logger = zap.NewNop()
	}
	manager = &Manager{
		gw:     gw,
		logger: logger,
	}
	return manager
}

// Open starts a conversation about the given career, discarding any
// existing one. The transcript is seeded with a model greeting.
func (m *Manager) Open(ctx context.Context, subject career.Career) (err error) {
	session, err := m.gw.NewChatSession(ctx, prompt.ChatSystemInstruction(subject.Title))
	if err != nil {
		err = errors.Wrap(err, "starting chat session")
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	m.id = uuid.New().String()
	owned := subject
	m.subject = &owned
	m.session = session
	m.responding = false
	m.messages = []career.ChatMessage{
		{
			Role:    career.RoleModel,
			Content: prompt.ChatGreeting(subject.Title),
		},
	}
	return err
}

// OpenForTitle starts a conversation from just a career title, building
// a minimal career entity around it. Used by views that never ran a full
// discovery.
func (m *Manager) OpenForTitle(ctx context.Context, title string) (err error) {
	subject := career.Career{
		ID:      strings.ToLower(strings.Join(strings.Fields(title), "-")),
		Title:   title,
		Emoji:   "✨",
		Summary: "A professional in the " + title + " field.",
	}
	err = m.Open(ctx, subject)
	return err
}

// Close discards the conversation and its transcript.
func (m *Manager) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.id = ""
	m.subject = nil
	m.session = nil
	m.messages = nil
	m.responding = false
}

// Active reports whether a conversation is open.
func (m *Manager) Active() (active bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	active = m.session != nil
	return active
}

// Responding reports whether a reply stream is in flight.
func (m *Manager) Responding() (responding bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	responding = m.responding
	return responding
}

// ID returns the identifier of the current conversation, or empty if
// none is open.
func (m *Manager) ID() (id string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	id = m.id
	return id
}

// Subject returns the career the conversation is about.
func (m *Manager) Subject() (subject *career.Career) {
	m.mu.Lock()
	defer m.mu.Unlock()
	subject = m.subject
	return subject
}

// Messages returns a copy of the transcript.
func (m *Manager) Messages() (messages []career.ChatMessage) {
	m.mu.Lock()
	defer m.mu.Unlock()
	messages = append([]career.ChatMessage{}, m.messages...)
	return messages
}

// Send submits a user message and streams the model reply into the
// transcript, invoking onDelta for each chunk as it arrives. Sends are
// rejected while a reply is already streaming. A streaming failure
// replaces the partial reply with an apology instead of surfacing the
// error to the transcript.
func (m *Manager) Send(ctx context.Context, text string, onDelta func(delta string)) (err error) {
	if strings.TrimSpace(text) == "" {
		return err
	}

	m.mu.Lock()
	if m.session == nil {
		m.mu.Unlock()
		err = errors.New("no chat session open")
		return err
	}
	if m.responding {
		m.mu.Unlock()
		err = errors.New("a reply is already in progress")
		return err
	}

	m.responding = true
	m.messages = append(m.messages,
		career.ChatMessage{Role: career.RoleUser, Content: text},
		career.ChatMessage{Role: career.RoleModel, Content: ""},
	)
	session := m.session
	m.mu.Unlock()

	streamErr := session.SendMessageStream(ctx, text, func(delta string) {
		m.mu.Lock()
		if last := len(m.messages) - 1; last >= 0 && m.messages[last].Role == career.RoleModel {
			m.messages[last].Content += delta
		}
		m.mu.Unlock()
		if onDelta != nil {
			onDelta(delta)
		}
	})

	m.mu.Lock()
	defer m.mu.Unlock()
	m.responding = false

	if streamErr != nil {
		m.logger.Error("chat reply failed", zap.Error(streamErr))
		if last := len(m.messages) - 1; last >= 0 && m.messages[last].Role == career.RoleModel {
			m.messages[last].Content = apologyMessage
		} else {
			m.messages = append(m.messages, career.ChatMessage{Role: career.RoleModel, Content: apologyMessage})
		}
	}
	return err
}
