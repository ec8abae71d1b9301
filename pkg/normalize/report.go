package normalize

import (
	"encoding/json"

	"github.com/nikogura/career-compass/pkg/career"
)

// placeholder stands in for any text field the model left empty.
const placeholder = "N/A"

// NormalizeReport parses a (possibly prose-wrapped) report payload into a
// fully-defaulted CareerReport and merges grounding citations into its
// source list. Every nested optional field is defaulted so rendering never
// sees a missing value; the only failure is a payload with no JSON object.
func NormalizeReport(raw string, grounding []career.Source) (report career.CareerReport, err error) {
	var extracted string
	extracted, err = ExtractJSONObject(raw)
	if err != nil {
		return report, err
	}

	err = json.Unmarshal([]byte(extracted), &report)
	if err != nil {
		err = &ParseError{Op: "failed to parse career report", Cause: err}
		return report, err
	}

	applyReportDefaults(&report)
	report.Sources = career.MergeSources(report.Sources, grounding)

	return report, err
}

// applyReportDefaults fills every optional field with a safe placeholder so
// the report is total: empty lists instead of nil, placeholder strings
// instead of empties.
func applyReportDefaults(r *career.CareerReport) {
	defaultString(&r.CareerTitle)

	defaultString(&r.ExecutiveSummary.CareerDefinition)
	defaultString(&r.ExecutiveSummary.WhyItMatters)
	defaultString(&r.ExecutiveSummary.KeyVitals.AverageExperienceLevel)
	defaultString(&r.ExecutiveSummary.KeyVitals.WorkEnvironment)
	defaultString(&r.ExecutiveSummary.KeyVitals.TypicalWorkHours)
	defaultString(&r.ExecutiveSummary.KeyVitals.RequiredEducationLevel)

	demand := &r.MarketDemand.CareerGrowthAndDemand
	defaultString(&demand.CurrentDemandAnalysis)
	defaultString(&demand.Projected10YearGrowth.Description)
	if demand.JobPostingTrendsGraphData == nil {
		demand.JobPostingTrendsGraphData = []career.TrendPoint{}
	}

	risk := &r.MarketDemand.AIDisruptionAndAutomationRisk
	defaultString(&risk.Analysis)
	defaultString(&risk.Rationale)
	if risk.AutomationRiskScore == "" {
		risk.AutomationRiskScore = career.RiskMedium
	}

	fin := &r.FinancialInsights
	defaultString(&fin.CompensationDetails)
	defaultString(&fin.GeographicVariance)
	defaultString(&fin.SalaryData.EntryLevel.Currency)
	defaultString(&fin.SalaryData.MidLevel.Currency)
	defaultString(&fin.SalaryData.SeniorLevel.Currency)
	if fin.TopPayingCompanies == nil {
		fin.TopPayingCompanies = []string{}
	}

	day := &r.DayInTheLife
	defaultString(&day.TypicalDay)
	if day.HardSkills == nil {
		day.HardSkills = []string{}
	}
	if day.SoftSkills == nil {
		day.SoftSkills = []string{}
	}

	fit := &r.IsThisForYou
	defaultString(&fit.PersonalityProfile)
	if fit.Pros == nil {
		fit.Pros = []string{}
	}
	if fit.Cons == nil {
		fit.Cons = []string{}
	}

	path := &r.ActionablePath
	if path.EducationalPathways.DegreePaths == nil {
		path.EducationalPathways.DegreePaths = []string{}
	}
	if path.EducationalPathways.TopTierUniversities == nil {
		path.EducationalPathways.TopTierUniversities = []career.UniversityInfo{}
	}
	if path.EducationalPathways.AccessiblePublicUniversities == nil {
		path.EducationalPathways.AccessiblePublicUniversities = []career.UniversityInfo{}
	}
	if path.SkillFirstPathways.RecognizedCertifications == nil {
		path.SkillFirstPathways.RecognizedCertifications = []career.CertificationInfo{}
	}
	if path.SkillFirstPathways.TopOnlineCourses == nil {
		path.SkillFirstPathways.TopOnlineCourses = []career.OnlineCourseInfo{}
	}
	if path.FirstStepsForBeginner == nil {
		path.FirstStepsForBeginner = []string{}
	}

	// An empty astrology section is omitted rather than defaulted.
	if r.AstrologicalInsight != nil && r.AstrologicalInsight.Insight == "" {
		r.AstrologicalInsight = nil
	}

	if r.Sources == nil {
		r.Sources = []career.Source{}
	}
}

func defaultString(s *string) {
	if *s == "" {
		*s = placeholder
	}
}
