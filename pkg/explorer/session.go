// Package explorer owns the view state of a career-exploration session and
// coordinates every asynchronous flow against the AI gateway. All state
// lives in one Session updated only through named transitions; callers read
// it through snapshots.
package explorer

import (
	"context"
	"sync"

	"github.com/nikogura/career-compass/pkg/career"
	"github.com/nikogura/career-compass/pkg/chat"
	"github.com/nikogura/career-compass/pkg/gateway"
	"go.uber.org/zap"
)

// View identifies the current screen.
type View string

// The named view modes. Transitions between them happen only on explicit
// user actions, except the auto-advance from persona generation into the
// problem explorer.
const (
	ViewHome            View = "HOME"
	ViewResults         View = "RESULTS"
	ViewPersonaGallery  View = "PERSONA_GALLERY"
	ViewProblemExplorer View = "PROBLEM_EXPLORER"
	ViewUnpackHome      View = "UNPACK_HOME"
	ViewUnpackResults   View = "UNPACK_RESULTS"
	ViewContact         View = "CONTACT"
)

// User-facing messages. Remote and parse failures collapse into these; the
// underlying detail goes to the diagnostic log only.
const (
	msgEmptyInterests  = "Please describe your interests before discovering careers."
	msgEmptyUnpack     = "Please enter an object to unpack."
	msgEmptyPersona    = "Please enter a description to generate a persona."
	msgDiscoverFailed  = "Sorry, something went wrong while discovering careers. Please try again."
	msgLoadMoreFailed  = "Sorry, something went wrong while loading more careers. Please try again."
	msgUnpackFailed    = "Sorry, something went wrong while unpacking the object. Please try again."
	msgProblemsFailed  = "Sorry, we couldn't generate problems for this persona. Please try again."
	msgPersonaFailed   = "Sorry, we couldn't generate a persona from that description. Please try again."
	msgReportFailed    = "Sorry, we couldn't generate the report. It might be a network issue or the topic is too niche. Please try again later."
	msgReportFormError = "Please fill in your age and country."
)

// Session is the view state orchestrator. One Session corresponds to one
// user sitting in front of the app; entities it owns are discarded on
// navigation back to a base view, never persisted.
type Session struct {
	mu     sync.Mutex
	gw     gateway.Gateway
	chat   *chat.Manager
	logger *zap.Logger

	view View

	// Discovery flow.
	interests   string
	results     []career.Career
	hydrating   map[string]bool
	loading     bool
	loadingMore bool
	canLoadMore bool
	errMsg      string
	searchGen   uint64

	// Unpack flow.
	unpackInput string
	unpacked    *career.UnpackedObject
	unpackGen   uint64

	// Persona flow.
	selectedPersona   *career.Persona
	personaProblems   *career.PersonaProblemSet
	generatedPersonas []career.Persona
	generatingPersona bool
	generationErr     string
	problemsGen       uint64

	// Report flow.
	report reportState
}

// Snapshot is a read-only copy of the session state for rendering.
type Snapshot struct {
	View              View
	Interests         string
	Results           []career.Career
	HydratingIDs      []string
	Loading           bool
	LoadingMore       bool
	CanLoadMore       bool
	Error             string
	UnpackInput       string
	Unpacked          *career.UnpackedObject
	SelectedPersona   *career.Persona
	PersonaProblems   *career.PersonaProblemSet
	GeneratingPersona bool
	GenerationError   string
	Report            ReportSnapshot
}

// NewSession creates an orchestrator over the given gateway.
func NewSession(gw gateway.Gateway, logger *zap.Logger) (session *Session) {
	if logger == nil {
		logger = zap.NewNop()
	}
	session = &Session{
		gw:          gw,
		chat:        chat.NewManager(gw, logger),
		logger:      logger,
		view:        ViewHome,
		hydrating:   make(map[string]bool),
		canLoadMore: true,
	}
	return session
}

// Chat returns the chat session manager.
func (s *Session) Chat() (manager *chat.Manager) {
	manager = s.chat
	return manager
}

// OpenChat starts a conversation about a career. Any report left over
// from a previous conversation is discarded first so it can never show
// against the wrong career.
func (s *Session) OpenChat(ctx context.Context, subject career.Career) (err error) {
	s.ResetReport()
	err = s.chat.Open(ctx, subject)
	return err
}

// OpenChatForTitle starts a conversation from just a career title.
func (s *Session) OpenChatForTitle(ctx context.Context, title string) (err error) {
	s.ResetReport()
	err = s.chat.OpenForTitle(ctx, title)
	return err
}

// CloseChat ends the conversation and discards its report.
func (s *Session) CloseChat() {
	s.chat.Close()
	s.ResetReport()
}

// View returns the current view mode.
func (s *Session) View() (view View) {
	s.mu.Lock()
	defer s.mu.Unlock()
	view = s.view
	return view
}

// Snapshot returns a copy of the current state.
func (s *Session) Snapshot() (snap Snapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap = Snapshot{
		View:              s.view,
		Interests:         s.interests,
		Results:           append([]career.Career{}, s.results...),
		Loading:           s.loading,
		LoadingMore:       s.loadingMore,
		CanLoadMore:       s.canLoadMore,
		Error:             s.errMsg,
		UnpackInput:       s.unpackInput,
		Unpacked:          s.unpacked,
		SelectedPersona:   s.selectedPersona,
		PersonaProblems:   s.personaProblems,
		GeneratingPersona: s.generatingPersona,
		GenerationError:   s.generationErr,
		Report:            s.report.snapshot(),
	}
	for id := range s.hydrating {
		snap.HydratingIDs = append(snap.HydratingIDs, id)
	}
	return snap
}

// Personas returns the gallery contents: session-generated personas first,
// then the built-in catalog.
func (s *Session) Personas() (personas []career.Persona) {
	s.mu.Lock()
	defer s.mu.Unlock()
	personas = append(append([]career.Persona{}, s.generatedPersonas...), career.BuiltinPersonas()...)
	return personas
}

// InFlight reports whether any remote flow is still running.
func (s *Session) InFlight() (busy bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	busy = s.loading || s.loadingMore || s.generatingPersona || s.report.generating || len(s.hydrating) > 0
	return busy
}

// GoHome resets to the home view, discarding all flow results. In-flight
// remote calls keep running but their results are discarded via the
// generation stamps.
func (s *Session) GoHome() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.view = ViewHome
	s.interests = ""
	s.results = nil
	s.hydrating = make(map[string]bool)
	s.loading = false
	s.loadingMore = false
	s.canLoadMore = true
	s.errMsg = ""
	s.unpackInput = ""
	s.unpacked = nil
	s.selectedPersona = nil
	s.personaProblems = nil
	s.searchGen++
	s.unpackGen++
	s.problemsGen++
}

// ShowPersonaGallery navigates to the persona gallery.
func (s *Session) ShowPersonaGallery() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.view = ViewPersonaGallery
}

// BackToPersonaGallery leaves the problem explorer, clearing its error.
func (s *Session) BackToPersonaGallery() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.errMsg = ""
	s.view = ViewPersonaGallery
}

// ShowUnpackHome navigates to the unpack entry view.
func (s *Session) ShowUnpackHome() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.view = ViewUnpackHome
}

// ShowContact navigates to the contact view.
func (s *Session) ShowContact() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.view = ViewContact
}
