package career

// Source is a citation backing a report data point. Sources are deduplicated
// by URI when model-declared and grounding sources are merged.
type Source struct {
	Title string `json:"title"`
	URI   string `json:"uri"`
}

// KeyVitals summarizes the basic shape of a career.
type KeyVitals struct {
	AverageExperienceLevel string `json:"averageExperienceLevel"`
	WorkEnvironment        string `json:"workEnvironment"`
	TypicalWorkHours       string `json:"typicalWorkHours"`
	RequiredEducationLevel string `json:"requiredEducationLevel"`
}

// ExecutiveSummary opens the report.
type ExecutiveSummary struct {
	CareerDefinition string    `json:"careerDefinition"`
	WhyItMatters     string    `json:"whyItMatters"`
	KeyVitals        KeyVitals `json:"keyVitals"`
}

// GrowthProjection describes projected demand over the next decade.
type GrowthProjection struct {
	Percentage  float64 `json:"percentage"`
	Description string  `json:"description"`
}

// TrendPoint is one year of job-posting trend data, trend in 0-100.
type TrendPoint struct {
	Year  int     `json:"year"`
	Trend float64 `json:"trend"`
}

// GrowthAndDemand covers current and projected market demand.
type GrowthAndDemand struct {
	CurrentDemandAnalysis     string           `json:"currentDemandAnalysis"`
	Projected10YearGrowth     GrowthProjection `json:"projected10YearGrowth"`
	JobPostingTrendsGraphData []TrendPoint     `json:"jobPostingTrendsGraphData"`
}

// AutomationRisk covers AI disruption exposure.
type AutomationRisk struct {
	Analysis            string    `json:"analysis"`
	AutomationRiskScore RiskLevel `json:"automationRiskScore"`
	Rationale           string    `json:"rationale"`
}

// MarketDemand groups the demand sections.
type MarketDemand struct {
	CareerGrowthAndDemand         GrowthAndDemand `json:"careerGrowthAndDemand"`
	AIDisruptionAndAutomationRisk AutomationRisk  `json:"aiDisruptionAndAutomationRisk"`
}

// SalaryBand is a low/high salary range in a local currency.
type SalaryBand struct {
	Low      float64 `json:"low"`
	High     float64 `json:"high"`
	Currency string  `json:"currency"`
}

// SalaryData covers the three experience tiers.
type SalaryData struct {
	EntryLevel  SalaryBand `json:"entryLevel"`
	MidLevel    SalaryBand `json:"midLevel"`
	SeniorLevel SalaryBand `json:"seniorLevel"`
}

// FinancialInsights covers compensation, localized to the user's country.
type FinancialInsights struct {
	SalaryData          SalaryData `json:"salaryData"`
	CompensationDetails string     `json:"compensationDetails"`
	TopPayingCompanies  []string   `json:"topPayingCompanies"`
	GeographicVariance  string     `json:"geographicVariance"`
}

// DayInTheLife describes typical work and the skills it takes.
type DayInTheLife struct {
	TypicalDay string   `json:"typicalDay"`
	HardSkills []string `json:"hardSkills"`
	SoftSkills []string `json:"softSkills"`
}

// IsThisForYou lists pros, cons, and the personality profile that fits.
type IsThisForYou struct {
	Pros               []string `json:"pros"`
	Cons               []string `json:"cons"`
	PersonalityProfile string   `json:"personalityProfile"`
}

// UniversityInfo describes one university option.
type UniversityInfo struct {
	Name                   string `json:"name"`
	EstimatedAnnualTuition string `json:"estimatedAnnualTuition"`
	Rank                   int    `json:"rank,omitempty"`
	URL                    string `json:"url,omitempty"`
}

// CertificationInfo describes an industry-recognized certification.
type CertificationInfo struct {
	Name           string `json:"name"`
	IssuingBody    string `json:"issuingBody"`
	EstimatedCost  string `json:"estimatedCost"`
	TimeToComplete string `json:"timeToComplete"`
	URL            string `json:"url,omitempty"`
}

// OnlineCourseInfo describes a course or bootcamp option.
type OnlineCourseInfo struct {
	Name           string `json:"name"`
	Platform       string `json:"platform"`
	EstimatedCost  string `json:"estimatedCost"`
	TimeToComplete string `json:"timeToComplete"`
	URL            string `json:"url"`
}

// EducationalPathways is the degree-based tier of the actionable path.
type EducationalPathways struct {
	DegreePaths                  []string         `json:"degreePaths"`
	TopTierUniversities          []UniversityInfo `json:"topTierUniversities"`
	AccessiblePublicUniversities []UniversityInfo `json:"accessiblePublicUniversities"`
}

// SkillFirstPathways is the certification/course tier of the actionable path.
type SkillFirstPathways struct {
	RecognizedCertifications []CertificationInfo `json:"recognizedCertifications"`
	TopOnlineCourses         []OnlineCourseInfo  `json:"topOnlineCourses"`
}

// ActionablePath lays out how to get started.
type ActionablePath struct {
	EducationalPathways   EducationalPathways `json:"educationalPathways"`
	SkillFirstPathways    SkillFirstPathways  `json:"skillFirstPathways"`
	FirstStepsForBeginner []string            `json:"firstStepsForBeginner"`
}

// AstrologicalInsight is the optional astrology section. CompatibilityScore
// is only set when birth details were provided.
type AstrologicalInsight struct {
	Insight            string  `json:"insight"`
	CompatibilityScore float64 `json:"compatibilityScore,omitempty"`
}

// CareerReport is the full market report for one career.
type CareerReport struct {
	CareerTitle         string               `json:"careerTitle"`
	PersonalizedNotes   string               `json:"personalizedNotes,omitempty"`
	ExecutiveSummary    ExecutiveSummary     `json:"executiveSummary"`
	MarketDemand        MarketDemand         `json:"marketDemand"`
	FinancialInsights   FinancialInsights    `json:"financialInsights"`
	DayInTheLife        DayInTheLife         `json:"dayInTheLife"`
	IsThisForYou        IsThisForYou         `json:"isThisForYou"`
	ActionablePath      ActionablePath       `json:"actionablePath"`
	AstrologicalInsight *AstrologicalInsight `json:"astrologicalInsight,omitempty"`
	Sources             []Source             `json:"sources"`
}

// MergeSources combines model-declared sources with grounding sources,
// deduplicating by URI. Later entries win on a duplicate URI; first-seen
// order is otherwise preserved.
func MergeSources(declared, grounding []Source) (merged []Source) {
	merged = make([]Source, 0, len(declared)+len(grounding))
	index := make(map[string]int)

	for _, s := range append(append([]Source{}, declared...), grounding...) {
		if s.URI == "" {
			continue
		}
		if i, ok := index[s.URI]; ok {
			merged[i] = s
			continue
		}
		index[s.URI] = len(merged)
		merged = append(merged, s)
	}

	return merged
}
