package explorer

import (
	"context"
	"fmt"
	"math"
	"math/rand"
	"time"

	"github.com/nikogura/career-compass/pkg/career"
	"github.com/nikogura/career-compass/pkg/normalize"
	"github.com/nikogura/career-compass/pkg/prompt"
	"go.uber.org/zap"
)

const (
	progressTickInterval = 800 * time.Millisecond
	messageTickInterval  = 2500 * time.Millisecond
	revealDelay          = 500 * time.Millisecond
	progressCap          = 95.0
)

// reportState tracks the deep-report flow. Progress is synthetic: the
// remote call gives no feedback, so a ticker advances a bar to keep the
// wait legible, capped below completion until the result actually lands.
type reportState struct {
	visible    bool
	generating bool
	progress   float64
	message    string
	formErr    string
	errMsg     string
	report     *career.CareerReport
	gen        uint64
}

// ReportSnapshot is a read-only copy of the report flow state.
type ReportSnapshot struct {
	Visible    bool
	Generating bool
	Progress   float64
	Message    string
	FormError  string
	Error      string
	Report     *career.CareerReport
}

func (r *reportState) snapshot() (snap ReportSnapshot) {
	snap = ReportSnapshot{
		Visible:    r.visible,
		Generating: r.generating,
		Progress:   r.progress,
		Message:    r.message,
		FormError:  r.formErr,
		Error:      r.errMsg,
		Report:     r.report,
	}
	return snap
}

// Report returns the current report flow state.
func (s *Session) Report() (snap ReportSnapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()
	snap = s.report.snapshot()
	return snap
}

// ResetReport discards all report state. Called when a new chat session
// opens so a stale report never shows against a different career.
func (s *Session) ResetReport() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.report.gen++
	s.report = reportState{gen: s.report.gen}
}

// HideReport dismisses the report overlay without discarding the report,
// so the user can flip back to it from the chat.
func (s *Session) HideReport() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.report.visible = false
}

// ShowReport re-opens a previously generated report.
func (s *Session) ShowReport() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.report.visible = true
}

// GenerateReport produces the personalized deep-dive report for a career.
// Personalization is validated locally first; an incomplete form sets a
// form error and never reaches the gateway. The call blocks until the
// report is ready or failed, animating progress the whole way.
func (s *Session) GenerateReport(ctx context.Context, subject career.Career, personalization career.PersonalizationData) {
	if err := personalization.Validate(); err != nil {
		s.mu.Lock()
		s.report.formErr = msgReportFormError
		s.mu.Unlock()
		return
	}

	messages := []string{
		fmt.Sprintf("Crafting your personalized report for a %s...", subject.Title),
		"Consulting real-time job market data...",
		fmt.Sprintf("Analyzing salary databases for %s...", personalization.Country),
		"Assessing future growth and AI impact...",
		"Compiling actionable first steps based on your profile...",
		"Finalizing your comprehensive report...",
	}

	s.mu.Lock()
	s.report.gen++
	gen := s.report.gen
	s.report = reportState{
		visible:    true,
		generating: true,
		message:    messages[0],
		gen:        gen,
	}
	s.mu.Unlock()

	stop := make(chan struct{})
	go s.advanceProgress(stop, gen)
	go s.cycleMessages(stop, gen, messages)

	text, grounding, err := s.gw.GenerateGrounded(ctx, prompt.BuildReportPrompt(subject.Title, personalization))

	var report career.CareerReport
	if err == nil {
		report, err = normalize.NormalizeReport(text, grounding)
	}

	close(stop)

	if err != nil {
		s.logger.Error("report generation failed", zap.String("career", subject.Title), zap.Error(err))
		s.mu.Lock()
		defer s.mu.Unlock()
		if gen != s.report.gen {
			return
		}
		s.report.generating = false
		s.report.errMsg = msgReportFailed
		return
	}

	s.mu.Lock()
	if gen != s.report.gen {
		s.mu.Unlock()
		return
	}
	s.report.progress = 100
	s.report.message = "Success! Your report is ready."
	s.mu.Unlock()

	// Let the full bar register before the reveal.
	time.Sleep(revealDelay)

	s.mu.Lock()
	defer s.mu.Unlock()
	if gen != s.report.gen {
		return
	}
	s.report.report = &report
	s.report.generating = false
}

func (s *Session) advanceProgress(stop <-chan struct{}, gen uint64) {
	ticker := time.NewTicker(progressTickInterval)
	defer ticker.Stop()

	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			s.mu.Lock()
			if gen == s.report.gen && s.report.generating {
				s.report.progress = math.Min(s.report.progress+rand.Float64()*10, progressCap)
			}
			s.mu.Unlock()
		}
	}
}

func (s *Session) cycleMessages(stop <-chan struct{}, gen uint64, messages []string) {
	ticker := time.NewTicker(messageTickInterval)
	defer ticker.Stop()

	index := 0
	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			index = (index + 1) % len(messages)
			s.mu.Lock()
			if gen == s.report.gen && s.report.generating {
				s.report.message = messages[index]
			}
			s.mu.Unlock()
		}
	}
}
