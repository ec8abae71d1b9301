package normalize

import (
	"strings"
	"testing"

	"github.com/nikogura/career-compass/pkg/career"
)

func TestNormalizeReportProseWrapped(t *testing.T) {
	raw := `Based on my research, here is the report:

{"careerTitle": "Marine Biologist", "executiveSummary": {"careerDefinition": "Studies ocean life."}}

I hope this helps with your decision!`

	report, err := NormalizeReport(raw, nil)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if report.CareerTitle != "Marine Biologist" {
		t.Errorf("Unexpected career title: %q", report.CareerTitle)
	}
	if report.ExecutiveSummary.CareerDefinition != "Studies ocean life." {
		t.Errorf("Unexpected definition: %q", report.ExecutiveSummary.CareerDefinition)
	}
}

func TestNormalizeReportDefaults(t *testing.T) {
	report, err := NormalizeReport(`{"careerTitle": "Marine Biologist"}`, nil)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if report.ExecutiveSummary.WhyItMatters != "N/A" {
		t.Errorf("Expected placeholder for missing text field, got %q", report.ExecutiveSummary.WhyItMatters)
	}
	if report.MarketDemand.AIDisruptionAndAutomationRisk.AutomationRiskScore != career.RiskMedium {
		t.Errorf("Expected Medium default risk score, got %q", report.MarketDemand.AIDisruptionAndAutomationRisk.AutomationRiskScore)
	}
	if report.DayInTheLife.HardSkills == nil || report.IsThisForYou.Pros == nil {
		t.Error("Expected empty slices instead of nil")
	}
	if report.ActionablePath.SkillFirstPathways.TopOnlineCourses == nil {
		t.Error("Expected empty course list instead of nil")
	}
	if report.Sources == nil {
		t.Error("Expected empty sources instead of nil")
	}
}

func TestNormalizeReportEmptyAstrologyDropped(t *testing.T) {
	report, err := NormalizeReport(`{"careerTitle": "X", "astrologicalInsight": {"insight": ""}}`, nil)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if report.AstrologicalInsight != nil {
		t.Error("Expected empty astrology section to be dropped")
	}

	report, err = NormalizeReport(`{"careerTitle": "X", "astrologicalInsight": {"insight": "Stars align.", "compatibilityScore": 8.5}}`, nil)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if report.AstrologicalInsight == nil || report.AstrologicalInsight.CompatibilityScore != 8.5 {
		t.Errorf("Expected astrology section kept, got %+v", report.AstrologicalInsight)
	}
}

func TestNormalizeReportMergesGrounding(t *testing.T) {
	raw := `{"careerTitle": "X", "sources": [{"title": "Declared", "uri": "https://a.example"}]}`
	grounding := []career.Source{
		{Title: "Grounded A", URI: "https://a.example"},
		{Title: "Grounded B", URI: "https://b.example"},
	}

	report, err := NormalizeReport(raw, grounding)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if len(report.Sources) != 2 {
		t.Fatalf("Expected 2 deduplicated sources, got %d", len(report.Sources))
	}
	if report.Sources[0].Title != "Grounded A" {
		t.Errorf("Expected grounding entry to win for duplicate URI, got %+v", report.Sources[0])
	}
}

func TestNormalizeReportNoJSON(t *testing.T) {
	_, err := NormalizeReport("I'm sorry, that topic is too niche for me to research.", nil)
	if err == nil {
		t.Fatal("Expected error for payload without JSON, got nil")
	}
	if !strings.Contains(err.Error(), "no balanced JSON object") {
		t.Errorf("Unexpected error: %v", err)
	}
}
