package explorer

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
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

// stubGateway scripts gateway responses per prompt and records every call.
type stubGateway struct {
	mu              sync.Mutex
	structuredCalls []string
	groundedCalls   []string
	structuredFn    func(prompt string) (json.RawMessage, error)
	groundedFn      func(prompt string) (string, []career.Source, error)
}

func (s *stubGateway) GenerateStructured(ctx context.Context, prompt string, schema *genai.Schema) (json.RawMessage, error) {
	s.mu.Lock()
	s.structuredCalls = append(s.structuredCalls, prompt)
	fn := s.structuredFn
	s.mu.Unlock()

	if fn == nil {
		return nil, errors.New("unexpected structured call")
	}
	return fn(prompt)
}

func (s *stubGateway) GenerateGrounded(ctx context.Context, prompt string) (string, []career.Source, error) {
	s.mu.Lock()
	s.groundedCalls = append(s.groundedCalls, prompt)
	fn := s.groundedFn
	s.mu.Unlock()

	if fn == nil {
		return "", nil, errors.New("unexpected grounded call")
	}
	return fn(prompt)
}

func (s *stubGateway) NewChatSession(ctx context.Context, systemInstruction string) (gateway.ChatSession, error) {
	return nil, errors.New("chat not scripted")
}

func (s *stubGateway) structuredCallCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.structuredCalls)
}

func skeletonsJSON(count int) json.RawMessage {
	skeletons := make([]career.Career, 0, count)
	for i := 0; i < count; i++ {
		skeletons = append(skeletons, career.Career{
			ID:    fmt.Sprintf("career-%d", i),
			Title: fmt.Sprintf("Career %d", i),
			Emoji: "🚀",
		})
	}
	raw, _ := json.Marshal(skeletons)
	return raw
}

func TestSearchProducesSkeletons(t *testing.T) {
	gw := &stubGateway{
		structuredFn: func(prompt string) (json.RawMessage, error) {
			return skeletonsJSON(10), nil
		},
	}
	session := NewSession(gw, nil)

	session.Search(context.Background(), "space exploration")

	snap := session.Snapshot()
	assert.Equal(t, ViewResults, snap.View)
	assert.Empty(t, snap.Error)
	assert.False(t, snap.Loading)
	require.Len(t, snap.Results, 10)
	for _, c := range snap.Results {
		assert.False(t, c.Hydrated(), "fresh results must be skeletons")
	}
}

func TestSearchEmptyInterestsIsLocal(t *testing.T) {
	gw := &stubGateway{}
	session := NewSession(gw, nil)

	session.Search(context.Background(), "   ")

	snap := session.Snapshot()
	assert.Equal(t, ViewHome, snap.View, "validation failure stays on the home view")
	assert.Equal(t, "Please describe your interests before discovering careers.", snap.Error)
	assert.Zero(t, gw.structuredCallCount(), "no remote call for an empty input")
}

func TestSearchFailure(t *testing.T) {
	gw := &stubGateway{
		structuredFn: func(prompt string) (json.RawMessage, error) {
			return nil, errors.New("boom")
		},
	}
	session := NewSession(gw, nil)

	session.Search(context.Background(), "space")

	snap := session.Snapshot()
	assert.Equal(t, "Sorry, something went wrong while discovering careers. Please try again.", snap.Error)
	assert.False(t, snap.Loading)
	assert.Empty(t, snap.Results)
}

func TestLoadMoreExcludesAndPaginates(t *testing.T) {
	gw := &stubGateway{}
	gw.structuredFn = func(prompt string) (json.RawMessage, error) {
		return skeletonsJSON(10), nil
	}
	session := NewSession(gw, nil)
	session.Search(context.Background(), "space")

	// Full page: one duplicate id plus four fresh ones.
	gw.mu.Lock()
	gw.structuredFn = func(prompt string) (json.RawMessage, error) {
		assert.Contains(t, prompt, "- career-0", "existing ids must be excluded")
		page := []career.Career{
			{ID: "career-0", Title: "Career 0", Emoji: "🚀"},
			{ID: "career-10", Title: "Career 10", Emoji: "🛰️"},
			{ID: "career-11", Title: "Career 11", Emoji: "🛰️"},
			{ID: "career-12", Title: "Career 12", Emoji: "🛰️"},
		}
		raw, _ := json.Marshal(page)
		return raw, nil
	}
	gw.mu.Unlock()

	session.LoadMore(context.Background())

	snap := session.Snapshot()
	assert.Len(t, snap.Results, 13, "duplicate ids are dropped on merge")
	assert.True(t, snap.CanLoadMore, "a full page keeps pagination open")

	// Short page: supply exhausted.
	gw.mu.Lock()
	gw.structuredFn = func(prompt string) (json.RawMessage, error) {
		page := []career.Career{{ID: "career-13", Title: "Career 13", Emoji: "🛰️"}}
		raw, _ := json.Marshal(page)
		return raw, nil
	}
	gw.mu.Unlock()

	session.LoadMore(context.Background())

	snap = session.Snapshot()
	assert.Len(t, snap.Results, 14)
	assert.False(t, snap.CanLoadMore, "a short page marks the results exhausted")

	session.LoadMore(context.Background())
	assert.Len(t, session.Snapshot().Results, 14, "further load-more calls are no-ops")
}

func TestLoadMoreFailureKeepsResults(t *testing.T) {
	gw := &stubGateway{}
	gw.structuredFn = func(prompt string) (json.RawMessage, error) {
		return skeletonsJSON(10), nil
	}
	session := NewSession(gw, nil)
	session.Search(context.Background(), "space")

	gw.mu.Lock()
	gw.structuredFn = func(prompt string) (json.RawMessage, error) {
		return nil, errors.New("boom")
	}
	gw.mu.Unlock()

	session.LoadMore(context.Background())

	snap := session.Snapshot()
	assert.Equal(t, "Sorry, something went wrong while loading more careers. Please try again.", snap.Error)
	assert.Len(t, snap.Results, 10, "existing results survive a pagination failure")
}

func TestHydrateCareer(t *testing.T) {
	quickLook := `{"summary": "Explores space.", "automationRisk": "Low", "demandGrowth": "High", "isEmerging": false, "whoThisIsFor": ["Curious"], "relatedCareers": ["Engineer"]}`

	gw := &stubGateway{}
	gw.structuredFn = func(prompt string) (json.RawMessage, error) {
		return skeletonsJSON(3), nil
	}
	session := NewSession(gw, nil)
	session.Search(context.Background(), "space")

	gw.mu.Lock()
	gw.structuredFn = func(prompt string) (json.RawMessage, error) {
		return json.RawMessage(quickLook), nil
	}
	gw.mu.Unlock()
	callsBefore := gw.structuredCallCount()

	session.HydrateCareer(context.Background(), "career-1")

	snap := session.Snapshot()
	var hydrated career.Career
	for _, c := range snap.Results {
		if c.ID == "career-1" {
			hydrated = c
		}
	}
	assert.True(t, hydrated.Hydrated())
	assert.Equal(t, "Explores space.", hydrated.Summary)
	assert.Equal(t, "Career 1", hydrated.Title, "skeleton fields survive hydration")

	// A hydrated card is never re-fetched.
	session.HydrateCareer(context.Background(), "career-1")
	assert.Equal(t, callsBefore+1, gw.structuredCallCount())

	// An unknown id is a no-op.
	session.HydrateCareer(context.Background(), "missing")
	assert.Equal(t, callsBefore+1, gw.structuredCallCount())
}

func TestHydrateFailureIsIsolated(t *testing.T) {
	gw := &stubGateway{}
	gw.structuredFn = func(prompt string) (json.RawMessage, error) {
		return skeletonsJSON(3), nil
	}
	session := NewSession(gw, nil)
	session.Search(context.Background(), "space")

	gw.mu.Lock()
	gw.structuredFn = func(prompt string) (json.RawMessage, error) {
		if strings.Contains(prompt, `"Career 1"`) {
			return nil, errors.New("boom")
		}
		return json.RawMessage(`{"summary": "Fine.", "automationRisk": "Low", "demandGrowth": "High", "isEmerging": false, "whoThisIsFor": [], "relatedCareers": []}`), nil
	}
	gw.mu.Unlock()

	session.HydrateCareer(context.Background(), "career-0")
	session.HydrateCareer(context.Background(), "career-1")
	session.HydrateCareer(context.Background(), "career-2")

	snap := session.Snapshot()
	assert.Empty(t, snap.Error, "a hydration failure never raises a view error")
	for _, c := range snap.Results {
		if c.ID == "career-1" {
			assert.False(t, c.Hydrated(), "the failed card stays skeletal")
		} else {
			assert.True(t, c.Hydrated(), "other cards hydrate normally")
		}
	}

	// The failed card can be retried.
	session.HydrateCareer(context.Background(), "career-1")
	for _, c := range session.Snapshot().Results {
		if c.ID == "career-1" {
			assert.False(t, c.Hydrated())
		}
	}
}

func TestConcurrentHydrationSingleFlight(t *testing.T) {
	gw := &stubGateway{}
	gw.structuredFn = func(prompt string) (json.RawMessage, error) {
		return skeletonsJSON(1), nil
	}
	session := NewSession(gw, nil)
	session.Search(context.Background(), "space")

	release := make(chan struct{})
	gw.mu.Lock()
	gw.structuredFn = func(prompt string) (json.RawMessage, error) {
		<-release
		return json.RawMessage(`{"summary": "Done.", "automationRisk": "Low", "demandGrowth": "Low", "isEmerging": false, "whoThisIsFor": [], "relatedCareers": []}`), nil
	}
	gw.mu.Unlock()
	callsBefore := gw.structuredCallCount()

	var wg sync.WaitGroup
	for i := 0; i < 5; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			session.HydrateCareer(context.Background(), "career-0")
		}()
	}

	// Give the racers time to hit the in-flight guard, then release.
	time.Sleep(50 * time.Millisecond)
	close(release)
	wg.Wait()

	assert.Equal(t, callsBefore+1, gw.structuredCallCount(), "only one hydration call per id")
}

func TestUnpackFailureClearsResult(t *testing.T) {
	gw := &stubGateway{}
	gw.structuredFn = func(prompt string) (json.RawMessage, error) {
		return json.RawMessage(`{"objectName": "sneaker", "lifecycle": [{"stageName": "Design", "emoji": "✏️", "description": "d", "careers": ["Designer"]}]}`), nil
	}
	session := NewSession(gw, nil)

	session.Unpack(context.Background(), "sneaker")
	snap := session.Snapshot()
	require.NotNil(t, snap.Unpacked)
	assert.Equal(t, ViewUnpackResults, snap.View)

	gw.mu.Lock()
	gw.structuredFn = func(prompt string) (json.RawMessage, error) {
		return nil, errors.New("boom")
	}
	gw.mu.Unlock()

	session.Unpack(context.Background(), "guitar")
	snap = session.Snapshot()
	assert.Nil(t, snap.Unpacked, "a failed unpack never shows the previous object's result")
	assert.Equal(t, "Sorry, something went wrong while unpacking the object. Please try again.", snap.Error)
}

func TestSelectPersonaFetchesProblems(t *testing.T) {
	gw := &stubGateway{
		structuredFn: func(prompt string) (json.RawMessage, error) {
			return json.RawMessage(`{"personaTitle": "The Street Musician", "problems": [{"problemTitle": "Getting heard", "description": "d", "solvingCareers": ["Audio Engineer"]}]}`), nil
		},
	}
	session := NewSession(gw, nil)

	persona := career.BuiltinPersonas()[0]
	session.SelectPersona(context.Background(), persona)

	snap := session.Snapshot()
	assert.Equal(t, ViewProblemExplorer, snap.View)
	require.NotNil(t, snap.PersonaProblems)
	assert.Len(t, snap.PersonaProblems.Problems, 1)
	require.NotNil(t, snap.SelectedPersona)
	assert.Equal(t, persona.Title, snap.SelectedPersona.Title)
}

func TestGeneratePersonaAutoAdvances(t *testing.T) {
	gw := &stubGateway{
		structuredFn: func(prompt string) (json.RawMessage, error) {
			if strings.Contains(prompt, "user persona") {
				return json.RawMessage(`{"title": "The Night Gardener", "tagline": "Grows after dark", "description": "d", "imageQuery": "garden night"}`), nil
			}
			return json.RawMessage(`{"personaTitle": "The Night Gardener", "problems": [{"problemTitle": "Low light", "description": "d", "solvingCareers": ["Botanist"]}]}`), nil
		},
	}
	session := NewSession(gw, nil)

	session.GeneratePersona(context.Background(), "a gardener who works at night")

	snap := session.Snapshot()
	assert.Equal(t, ViewProblemExplorer, snap.View, "generation advances straight into the problem explorer")
	require.NotNil(t, snap.SelectedPersona)
	assert.Equal(t, "The Night Gardener", snap.SelectedPersona.Title)
	assert.Equal(t, "sparkles", snap.SelectedPersona.Icon)
	assert.Contains(t, snap.SelectedPersona.Image, "source.unsplash.com")
	require.NotNil(t, snap.PersonaProblems)

	// The generated persona joins the gallery ahead of the built-ins.
	personas := session.Personas()
	assert.Equal(t, "The Night Gardener", personas[0].Title)
	assert.Len(t, personas, len(career.BuiltinPersonas())+1)
}

func TestGeneratePersonaFailureReturnsToGallery(t *testing.T) {
	gw := &stubGateway{
		structuredFn: func(prompt string) (json.RawMessage, error) {
			return nil, errors.New("boom")
		},
	}
	session := NewSession(gw, nil)

	session.GeneratePersona(context.Background(), "anything")

	snap := session.Snapshot()
	assert.Equal(t, ViewPersonaGallery, snap.View)
	assert.Equal(t, "Sorry, we couldn't generate a persona from that description. Please try again.", snap.GenerationError)
	assert.Len(t, session.Personas(), len(career.BuiltinPersonas()))
}

func TestGoHomeDiscardsInFlightSearch(t *testing.T) {
	release := make(chan struct{})
	gw := &stubGateway{
		structuredFn: func(prompt string) (json.RawMessage, error) {
			<-release
			return skeletonsJSON(10), nil
		},
	}
	session := NewSession(gw, nil)

	done := make(chan struct{})
	go func() {
		session.Search(context.Background(), "space")
		close(done)
	}()

	time.Sleep(50 * time.Millisecond)
	session.GoHome()
	close(release)
	<-done

	snap := session.Snapshot()
	assert.Equal(t, ViewHome, snap.View)
	assert.Empty(t, snap.Results, "a result landing after reset is discarded")
	assert.Empty(t, snap.Error)
}
