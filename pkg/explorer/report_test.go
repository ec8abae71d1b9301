package explorer

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/nikogura/career-compass/pkg/career"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func reportPayload() string {
	return `Here is your report:
{"careerTitle": "Marine Biologist", "executiveSummary": {"careerDefinition": "Studies ocean life."}, "sources": [{"title": "Declared", "uri": "https://a.example"}]}`
}

func TestGenerateReportValidatesLocally(t *testing.T) {
	gw := &stubGateway{}
	session := NewSession(gw, nil)

	session.GenerateReport(context.Background(), career.Career{Title: "Marine Biologist"}, career.PersonalizationData{})

	snap := session.Report()
	assert.Equal(t, "Please fill in your age and country.", snap.FormError)
	assert.False(t, snap.Generating)

	gw.mu.Lock()
	groundedCalls := len(gw.groundedCalls)
	gw.mu.Unlock()
	assert.Zero(t, groundedCalls, "an invalid form never reaches the gateway")
}

func TestGenerateReportSuccess(t *testing.T) {
	gw := &stubGateway{
		groundedFn: func(prompt string) (string, []career.Source, error) {
			return reportPayload(), []career.Source{{Title: "Grounded", URI: "https://b.example"}}, nil
		},
	}
	session := NewSession(gw, nil)

	personalization := career.PersonalizationData{Age: 17, Country: "United States"}
	session.GenerateReport(context.Background(), career.Career{Title: "Marine Biologist"}, personalization)

	snap := session.Report()
	assert.False(t, snap.Generating)
	assert.True(t, snap.Visible)
	assert.Empty(t, snap.Error)
	assert.Equal(t, 100.0, snap.Progress, "progress snaps to completion")
	require.NotNil(t, snap.Report)
	assert.Equal(t, "Marine Biologist", snap.Report.CareerTitle)
	assert.Len(t, snap.Report.Sources, 2, "grounding sources are merged in")
}

func TestGenerateReportProgressCappedWhileRunning(t *testing.T) {
	release := make(chan struct{})
	gw := &stubGateway{
		groundedFn: func(prompt string) (string, []career.Source, error) {
			<-release
			return reportPayload(), nil, nil
		},
	}
	session := NewSession(gw, nil)

	done := make(chan struct{})
	go func() {
		session.GenerateReport(context.Background(), career.Career{Title: "X"}, career.PersonalizationData{Age: 17, Country: "US"})
		close(done)
	}()

	// Let a couple of progress ticks land.
	deadline := time.After(3 * time.Second)
	for {
		snap := session.Report()
		if snap.Progress > 0 {
			assert.LessOrEqual(t, snap.Progress, 95.0, "progress never reaches completion while the call is in flight")
			assert.True(t, snap.Generating)
			assert.NotEmpty(t, snap.Message)
			break
		}
		select {
		case <-deadline:
			t.Fatal("progress never advanced")
		default:
			time.Sleep(100 * time.Millisecond)
		}
	}

	close(release)
	<-done

	snap := session.Report()
	assert.Equal(t, 100.0, snap.Progress)
	assert.False(t, snap.Generating)
}

func TestGenerateReportFailure(t *testing.T) {
	gw := &stubGateway{
		groundedFn: func(prompt string) (string, []career.Source, error) {
			return "", nil, errors.New("boom")
		},
	}
	session := NewSession(gw, nil)

	session.GenerateReport(context.Background(), career.Career{Title: "X"}, career.PersonalizationData{Age: 17, Country: "US"})

	snap := session.Report()
	assert.False(t, snap.Generating)
	assert.True(t, snap.Visible, "the overlay stays up to show the error")
	assert.Nil(t, snap.Report)
	assert.Equal(t, "Sorry, we couldn't generate the report. It might be a network issue or the topic is too niche. Please try again later.", snap.Error)
}

func TestGenerateReportFirstMessageIsPersonalized(t *testing.T) {
	release := make(chan struct{})
	gw := &stubGateway{
		groundedFn: func(prompt string) (string, []career.Source, error) {
			<-release
			return reportPayload(), nil, nil
		},
	}
	session := NewSession(gw, nil)

	done := make(chan struct{})
	go func() {
		session.GenerateReport(context.Background(), career.Career{Title: "Marine Biologist"}, career.PersonalizationData{Age: 17, Country: "US"})
		close(done)
	}()

	// The first status message is set synchronously before any tick.
	deadline := time.After(2 * time.Second)
	for session.Report().Message == "" {
		select {
		case <-deadline:
			t.Fatal("status message never set")
		default:
			time.Sleep(10 * time.Millisecond)
		}
	}
	assert.Equal(t, fmt.Sprintf("Crafting your personalized report for a %s...", "Marine Biologist"), session.Report().Message)

	close(release)
	<-done
}

func TestResetReportDiscardsState(t *testing.T) {
	gw := &stubGateway{
		groundedFn: func(prompt string) (string, []career.Source, error) {
			return reportPayload(), nil, nil
		},
	}
	session := NewSession(gw, nil)

	session.GenerateReport(context.Background(), career.Career{Title: "X"}, career.PersonalizationData{Age: 17, Country: "US"})
	require.NotNil(t, session.Report().Report)

	session.ResetReport()

	snap := session.Report()
	assert.Nil(t, snap.Report)
	assert.False(t, snap.Visible)
	assert.Empty(t, snap.Error)
}

func TestHideAndShowReport(t *testing.T) {
	gw := &stubGateway{
		groundedFn: func(prompt string) (string, []career.Source, error) {
			return reportPayload(), nil, nil
		},
	}
	session := NewSession(gw, nil)

	session.GenerateReport(context.Background(), career.Career{Title: "X"}, career.PersonalizationData{Age: 17, Country: "US"})

	session.HideReport()
	assert.False(t, session.Report().Visible)
	assert.NotNil(t, session.Report().Report, "hiding keeps the report for later")

	session.ShowReport()
	assert.True(t, session.Report().Visible)
}
