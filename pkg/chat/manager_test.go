package chat

import (
	"context"
	"encoding/json"
	"sync"
	"testing"
	"time"

	"github.com/nikogura/career-compass/pkg/career"
	"github.com/nikogura/career-compass/pkg/gateway"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genai"
)

// stubSession replays scripted deltas, optionally failing partway through.
type stubSession struct {
	deltas  []string
	failure error
	block   chan struct{}
}

func (s *stubSession) SendMessageStream(ctx context.Context, message string, onDelta func(delta string)) error {
	if s.block != nil {
		<-s.block
	}
	for _, delta := range s.deltas {
		onDelta(delta)
	}
	return s.failure
}

type stubGateway struct {
	mu       sync.Mutex
	sessions int
	session  gateway.ChatSession
	openErr  error
}

func (s *stubGateway) GenerateStructured(ctx context.Context, prompt string, schema *genai.Schema) (json.RawMessage, error) {
	return nil, errors.New("not scripted")
}

func (s *stubGateway) GenerateGrounded(ctx context.Context, prompt string) (string, []career.Source, error) {
	return "", nil, errors.New("not scripted")
}

func (s *stubGateway) NewChatSession(ctx context.Context, systemInstruction string) (gateway.ChatSession, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions++
	if s.openErr != nil {
		return nil, s.openErr
	}
	return s.session, nil
}

func TestOpenSeedsGreeting(t *testing.T) {
	gw := &stubGateway{session: &stubSession{}}
	manager := NewManager(gw, nil)

	err := manager.Open(context.Background(), career.Career{ID: "astronaut", Title: "Astronaut"})
	require.NoError(t, err)

	messages := manager.Messages()
	require.Len(t, messages, 1)
	assert.Equal(t, career.RoleModel, messages[0].Role)
	assert.Contains(t, messages[0].Content, "Let's talk about being a Astronaut")
	assert.True(t, manager.Active())
	assert.NotEmpty(t, manager.ID())
}

func TestOpenForTitleBuildsPartialCareer(t *testing.T) {
	gw := &stubGateway{session: &stubSession{}}
	manager := NewManager(gw, nil)

	err := manager.OpenForTitle(context.Background(), "Food Stylist")
	require.NoError(t, err)

	subject := manager.Subject()
	require.NotNil(t, subject)
	assert.Equal(t, "food-stylist", subject.ID)
	assert.Equal(t, "✨", subject.Emoji)
	assert.Equal(t, "A professional in the Food Stylist field.", subject.Summary)
}

func TestReopenDiscardsTranscript(t *testing.T) {
	gw := &stubGateway{session: &stubSession{deltas: []string{"Hello!"}}}
	manager := NewManager(gw, nil)

	require.NoError(t, manager.Open(context.Background(), career.Career{ID: "a", Title: "Astronaut"}))
	require.NoError(t, manager.Send(context.Background(), "hi", nil))
	require.Len(t, manager.Messages(), 3)
	firstID := manager.ID()

	require.NoError(t, manager.Open(context.Background(), career.Career{ID: "b", Title: "Botanist"}))

	messages := manager.Messages()
	require.Len(t, messages, 1, "reopening starts a fresh transcript")
	assert.Contains(t, messages[0].Content, "Botanist")
	assert.NotEqual(t, firstID, manager.ID())
	assert.Equal(t, 2, gw.sessions)
}

func TestSendFoldsDeltas(t *testing.T) {
	gw := &stubGateway{session: &stubSession{deltas: []string{"Astronauts ", "train ", "for years."}}}
	manager := NewManager(gw, nil)
	require.NoError(t, manager.Open(context.Background(), career.Career{ID: "a", Title: "Astronaut"}))

	var streamed string
	err := manager.Send(context.Background(), "How long is training?", func(delta string) {
		streamed += delta
	})
	require.NoError(t, err)

	messages := manager.Messages()
	require.Len(t, messages, 3)
	assert.Equal(t, career.RoleUser, messages[1].Role)
	assert.Equal(t, "How long is training?", messages[1].Content)
	assert.Equal(t, career.RoleModel, messages[2].Role)
	assert.Equal(t, "Astronauts train for years.", messages[2].Content)
	assert.Equal(t, "Astronauts train for years.", streamed)
	assert.False(t, manager.Responding())
}

func TestSendFailureLeavesApology(t *testing.T) {
	gw := &stubGateway{session: &stubSession{deltas: []string{"Astro"}, failure: errors.New("stream cut")}}
	manager := NewManager(gw, nil)
	require.NoError(t, manager.Open(context.Background(), career.Career{ID: "a", Title: "Astronaut"}))

	err := manager.Send(context.Background(), "hi", nil)
	require.NoError(t, err, "stream failures surface in the transcript, not as errors")

	messages := manager.Messages()
	require.Len(t, messages, 3)
	assert.Equal(t, "Sorry, I encountered an error. Please try again.", messages[2].Content)
}

func TestSendRejectedWhileResponding(t *testing.T) {
	block := make(chan struct{})
	gw := &stubGateway{session: &stubSession{deltas: []string{"ok"}, block: block}}
	manager := NewManager(gw, nil)
	require.NoError(t, manager.Open(context.Background(), career.Career{ID: "a", Title: "Astronaut"}))

	done := make(chan struct{})
	go func() {
		_ = manager.Send(context.Background(), "first", nil)
		close(done)
	}()

	// Wait for the first send to be in flight.
	deadline := time.After(2 * time.Second)
	for !manager.Responding() {
		select {
		case <-deadline:
			t.Fatal("first send never started")
		default:
			time.Sleep(10 * time.Millisecond)
		}
	}

	err := manager.Send(context.Background(), "second", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already in progress")

	close(block)
	<-done
}

func TestSendWithoutSession(t *testing.T) {
	manager := NewManager(&stubGateway{}, nil)

	err := manager.Send(context.Background(), "hi", nil)
	require.Error(t, err)
}

func TestSendEmptyMessageIsNoOp(t *testing.T) {
	gw := &stubGateway{session: &stubSession{deltas: []string{"ok"}}}
	manager := NewManager(gw, nil)
	require.NoError(t, manager.Open(context.Background(), career.Career{ID: "a", Title: "Astronaut"}))

	err := manager.Send(context.Background(), "   ", nil)
	require.NoError(t, err)
	assert.Len(t, manager.Messages(), 1)
}

func TestClose(t *testing.T) {
	gw := &stubGateway{session: &stubSession{}}
	manager := NewManager(gw, nil)
	require.NoError(t, manager.Open(context.Background(), career.Career{ID: "a", Title: "Astronaut"}))

	manager.Close()

	assert.False(t, manager.Active())
	assert.Empty(t, manager.ID())
	assert.Nil(t, manager.Subject())
	assert.Empty(t, manager.Messages())
}
