package explorer

import (
	"context"
	"fmt"
	"math/rand"
	"net/url"
	"strings"

	"github.com/nikogura/career-compass/pkg/career"
	"github.com/nikogura/career-compass/pkg/normalize"
	"github.com/nikogura/career-compass/pkg/prompt"
	"go.uber.org/zap"
)

// Search starts a fresh career discovery for the given interests. It
// blocks until the discovery completes or fails; hydration of the
// individual cards is kicked off separately via HydrateCareer.
func (s *Session) Search(ctx context.Context, interests string) {
	s.mu.Lock()
	if strings.TrimSpace(interests) == "" {
		s.errMsg = msgEmptyInterests
		s.mu.Unlock()
		return
	}

	s.interests = interests
	s.results = nil
	s.hydrating = make(map[string]bool)
	s.loading = true
	s.loadingMore = false
	s.canLoadMore = true
	s.errMsg = ""
	s.view = ViewResults
	s.searchGen++
	gen := s.searchGen
	s.mu.Unlock()

	raw, err := s.gw.GenerateStructured(ctx, prompt.BuildDiscoverPrompt(interests), prompt.CareerSkeletonSchema())

	var skeletons []career.Career
	if err == nil {
		skeletons, err = normalize.DecodeSkeletons(raw)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if gen != s.searchGen {
		// A newer search or a reset superseded this one.
		return
	}

	s.loading = false
	if err != nil {
		s.logger.Error("career discovery failed", zap.Error(err))
		s.errMsg = msgDiscoverFailed
		return
	}

	s.results = skeletons
}

// LoadMore appends another page of careers for the current interests,
// excluding ids already shown. A short page marks the result set
// exhausted.
func (s *Session) LoadMore(ctx context.Context) {
	s.mu.Lock()
	if s.interests == "" || s.loading || s.loadingMore || !s.canLoadMore {
		s.mu.Unlock()
		return
	}

	excludeIDs := make([]string, 0, len(s.results))
	for _, c := range s.results {
		excludeIDs = append(excludeIDs, c.ID)
	}

	s.loadingMore = true
	s.errMsg = ""
	interests := s.interests
	gen := s.searchGen
	s.mu.Unlock()

	raw, err := s.gw.GenerateStructured(ctx, prompt.BuildDiscoverMorePrompt(interests, excludeIDs), prompt.CareerSkeletonSchema())

	var skeletons []career.Career
	if err == nil {
		skeletons, err = normalize.DecodeSkeletons(raw)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if gen != s.searchGen {
		return
	}

	s.loadingMore = false
	if err != nil {
		s.logger.Error("loading more careers failed", zap.Error(err))
		s.errMsg = msgLoadMoreFailed
		return
	}

	seen := make(map[string]bool, len(s.results))
	for _, c := range s.results {
		seen[c.ID] = true
	}
	for _, c := range skeletons {
		if !seen[c.ID] {
			s.results = append(s.results, c)
		}
	}

	if len(skeletons) < prompt.MoreDiscoverCount {
		s.canLoadMore = false
	}
}

// HydrateCareer fills in the detail fields of a single discovered career.
// It is safe to call concurrently for different ids; repeat calls for a
// card that is hydrated or already in flight are no-ops. A hydration
// failure leaves the card skeletal without disturbing the rest.
func (s *Session) HydrateCareer(ctx context.Context, id string) {
	s.mu.Lock()

	var title string
	found := false
	for i := range s.results {
		if s.results[i].ID == id {
			if s.results[i].Hydrated() {
				s.mu.Unlock()
				return
			}
			title = s.results[i].Title
			found = true
			break
		}
	}
	if !found || s.hydrating[id] {
		s.mu.Unlock()
		return
	}

	s.hydrating[id] = true
	gen := s.searchGen
	s.mu.Unlock()

	raw, err := s.gw.GenerateStructured(ctx, prompt.BuildHydratePrompt(title), prompt.QuickLookSchema())

	var look career.QuickLook
	if err == nil {
		look, err = normalize.DecodeQuickLook(raw)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.hydrating, id)

	if gen != s.searchGen {
		return
	}
	if err != nil {
		s.logger.Warn("career hydration failed", zap.String("id", id), zap.Error(err))
		return
	}

	for i := range s.results {
		if s.results[i].ID == id {
			look.Apply(&s.results[i])
			return
		}
	}
}

// Unpack resolves a physical object into the careers behind its
// lifecycle. A failure clears any previously shown result.
func (s *Session) Unpack(ctx context.Context, objectName string) {
	s.mu.Lock()
	if strings.TrimSpace(objectName) == "" {
		s.errMsg = msgEmptyUnpack
		s.mu.Unlock()
		return
	}

	s.unpackInput = objectName
	s.unpacked = nil
	s.loading = true
	s.errMsg = ""
	s.view = ViewUnpackResults
	s.unpackGen++
	gen := s.unpackGen
	s.mu.Unlock()

	raw, err := s.gw.GenerateStructured(ctx, prompt.BuildUnpackPrompt(objectName), prompt.UnpackedObjectSchema())

	var unpacked career.UnpackedObject
	if err == nil {
		unpacked, err = normalize.DecodeUnpacked(raw)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if gen != s.unpackGen {
		return
	}

	s.loading = false
	if err != nil {
		s.logger.Error("object unpack failed", zap.String("object", objectName), zap.Error(err))
		s.errMsg = msgUnpackFailed
		return
	}

	s.unpacked = &unpacked
}

// SelectPersona enters the problem explorer for a persona and fetches the
// problems that persona cares about. On failure the view stays on the
// problem explorer with an error message.
func (s *Session) SelectPersona(ctx context.Context, persona career.Persona) {
	s.mu.Lock()
	selected := persona
	s.selectedPersona = &selected
	s.personaProblems = nil
	s.loading = true
	s.errMsg = ""
	s.view = ViewProblemExplorer
	s.problemsGen++
	gen := s.problemsGen
	s.mu.Unlock()

	raw, err := s.gw.GenerateStructured(ctx, prompt.BuildPersonaProblemsPrompt(persona.Title, persona.Tagline), prompt.PersonaProblemsSchema())

	var problems career.PersonaProblemSet
	if err == nil {
		problems, err = normalize.DecodeProblemSet(raw)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if gen != s.problemsGen {
		return
	}

	s.loading = false
	if err != nil {
		s.logger.Error("persona problems failed", zap.String("persona", persona.Title), zap.Error(err))
		s.errMsg = msgProblemsFailed
		return
	}

	s.personaProblems = &problems
}

// GeneratePersona creates a custom persona from a free-text description,
// adds it to the gallery, and advances straight into its problem
// explorer. On failure the user is returned to the gallery.
func (s *Session) GeneratePersona(ctx context.Context, description string) {
	s.mu.Lock()
	if strings.TrimSpace(description) == "" {
		s.generationErr = msgEmptyPersona
		s.mu.Unlock()
		return
	}

	s.generatingPersona = true
	s.generationErr = ""
	s.mu.Unlock()

	raw, err := s.gw.GenerateStructured(ctx, prompt.BuildGeneratePersonaPrompt(description), prompt.PersonaSchema())

	var draft career.PersonaDraft
	if err == nil {
		draft, err = normalize.DecodePersonaDraft(raw)
	}

	if err != nil {
		s.logger.Error("persona generation failed", zap.Error(err))
		s.mu.Lock()
		s.generatingPersona = false
		s.generationErr = msgPersonaFailed
		s.view = ViewPersonaGallery
		s.mu.Unlock()
		return
	}

	persona := career.Persona{
		Title:       draft.Title,
		Tagline:     draft.Tagline,
		Description: draft.Description,
		Image:       personaImageURL(draft.ImageQuery),
		Icon:        "sparkles",
	}

	s.mu.Lock()
	s.generatedPersonas = append(s.generatedPersonas, persona)
	s.generatingPersona = false
	s.mu.Unlock()

	s.SelectPersona(ctx, persona)
}

// personaImageURL builds a themed stock-photo URL for a generated
// persona. The random signature defeats URL-level caching so repeated
// queries get distinct images.
func personaImageURL(query string) (imageURL string) {
	imageURL = fmt.Sprintf("https://source.unsplash.com/500x500/?%s&sig=%d", url.QueryEscape(query), rand.Intn(1000))
	return imageURL
}
