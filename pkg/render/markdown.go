// Package render turns career reports into markdown documents on disk.
package render

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/nikogura/career-compass/pkg/career"
	"github.com/pkg/errors"
)

// ReportMarkdown renders a career report as a markdown document.
//
//nolint:funlen // The document walks every report section in order.
func ReportMarkdown(report career.CareerReport) (doc string) {
	var b strings.Builder

	fmt.Fprintf(&b, "# Career Report: %s\n\n", report.CareerTitle)
	if report.PersonalizedNotes != "" {
		fmt.Fprintf(&b, "> %s\n\n", report.PersonalizedNotes)
	}

	b.WriteString("## Executive Summary\n\n")
	fmt.Fprintf(&b, "%s\n\n", report.ExecutiveSummary.CareerDefinition)
	fmt.Fprintf(&b, "**Why it matters:** %s\n\n", report.ExecutiveSummary.WhyItMatters)

	vitals := report.ExecutiveSummary.KeyVitals
	b.WriteString("| Vital | Value |\n|---|---|\n")
	fmt.Fprintf(&b, "| Experience level | %s |\n", vitals.AverageExperienceLevel)
	fmt.Fprintf(&b, "| Work environment | %s |\n", vitals.WorkEnvironment)
	fmt.Fprintf(&b, "| Typical hours | %s |\n", vitals.TypicalWorkHours)
	fmt.Fprintf(&b, "| Education | %s |\n\n", vitals.RequiredEducationLevel)

	b.WriteString("## Market Demand\n\n")
	growth := report.MarketDemand.CareerGrowthAndDemand
	fmt.Fprintf(&b, "%s\n\n", growth.CurrentDemandAnalysis)
	fmt.Fprintf(&b, "**Projected 10-year growth:** %.1f%% — %s\n\n",
		growth.Projected10YearGrowth.Percentage, growth.Projected10YearGrowth.Description)
	if len(growth.JobPostingTrendsGraphData) > 0 {
		b.WriteString("| Year | Posting trend |\n|---|---|\n")
		for _, point := range growth.JobPostingTrendsGraphData {
			fmt.Fprintf(&b, "| %d | %.0f |\n", point.Year, point.Trend)
		}
		b.WriteString("\n")
	}

	risk := report.MarketDemand.AIDisruptionAndAutomationRisk
	b.WriteString("### AI Disruption & Automation Risk\n\n")
	fmt.Fprintf(&b, "%s\n\n", risk.Analysis)
	fmt.Fprintf(&b, "**Risk score:** %s. %s\n\n", risk.AutomationRiskScore, risk.Rationale)

	b.WriteString("## Financial Insights\n\n")
	salary := report.FinancialInsights.SalaryData
	b.WriteString("| Level | Range |\n|---|---|\n")
	fmt.Fprintf(&b, "| Entry | %s |\n", salaryBand(salary.EntryLevel))
	fmt.Fprintf(&b, "| Mid | %s |\n", salaryBand(salary.MidLevel))
	fmt.Fprintf(&b, "| Senior | %s |\n\n", salaryBand(salary.SeniorLevel))
	fmt.Fprintf(&b, "%s\n\n", report.FinancialInsights.CompensationDetails)
	writeList(&b, "Top paying companies", report.FinancialInsights.TopPayingCompanies)
	fmt.Fprintf(&b, "**Geographic variance:** %s\n\n", report.FinancialInsights.GeographicVariance)

	b.WriteString("## A Day in the Life\n\n")
	fmt.Fprintf(&b, "%s\n\n", report.DayInTheLife.TypicalDay)
	writeList(&b, "Hard skills", report.DayInTheLife.HardSkills)
	writeList(&b, "Soft skills", report.DayInTheLife.SoftSkills)

	b.WriteString("## Is This For You?\n\n")
	writeList(&b, "Pros", report.IsThisForYou.Pros)
	writeList(&b, "Cons", report.IsThisForYou.Cons)
	fmt.Fprintf(&b, "**Personality profile:** %s\n\n", report.IsThisForYou.PersonalityProfile)

	b.WriteString("## Actionable Path\n\n")
	path := report.ActionablePath
	writeList(&b, "Degree paths", path.EducationalPathways.DegreePaths)
	writeUniversities(&b, "Top-tier universities", path.EducationalPathways.TopTierUniversities)
	writeUniversities(&b, "Accessible public universities", path.EducationalPathways.AccessiblePublicUniversities)
	if len(path.SkillFirstPathways.RecognizedCertifications) > 0 {
		b.WriteString("**Recognized certifications:**\n\n")
		for _, cert := range path.SkillFirstPathways.RecognizedCertifications {
			fmt.Fprintf(&b, "- %s (%s) — %s, %s\n", cert.Name, cert.IssuingBody, cert.EstimatedCost, cert.TimeToComplete)
		}
		b.WriteString("\n")
	}
	if len(path.SkillFirstPathways.TopOnlineCourses) > 0 {
		b.WriteString("**Top online courses:**\n\n")
		for _, course := range path.SkillFirstPathways.TopOnlineCourses {
			fmt.Fprintf(&b, "- [%s](%s) on %s — %s, %s\n", course.Name, course.URL, course.Platform, course.EstimatedCost, course.TimeToComplete)
		}
		b.WriteString("\n")
	}
	writeList(&b, "First steps for a beginner", path.FirstStepsForBeginner)

	if report.AstrologicalInsight != nil {
		b.WriteString("## Astrological Insight\n\n")
		fmt.Fprintf(&b, "%s\n\n", report.AstrologicalInsight.Insight)
		if report.AstrologicalInsight.CompatibilityScore > 0 {
			fmt.Fprintf(&b, "**Compatibility score:** %.1f/10\n\n", report.AstrologicalInsight.CompatibilityScore)
		}
	}

	if len(report.Sources) > 0 {
		b.WriteString("## Sources\n\n")
		for _, source := range report.Sources {
			title := source.Title
			if title == "" {
				title = source.URI
			}
			fmt.Fprintf(&b, "- [%s](%s)\n", title, source.URI)
		}
		b.WriteString("\n")
	}

	doc = b.String()
	return doc
}

func salaryBand(band career.SalaryBand) (formatted string) {
	formatted = fmt.Sprintf("%.0f – %.0f %s", band.Low, band.High, band.Currency)
	return formatted
}

func writeList(b *strings.Builder, heading string, items []string) {
	if len(items) == 0 {
		return
	}
	fmt.Fprintf(b, "**%s:**\n\n", heading)
	for _, item := range items {
		fmt.Fprintf(b, "- %s\n", item)
	}
	b.WriteString("\n")
}

func writeUniversities(b *strings.Builder, heading string, universities []career.UniversityInfo) {
	if len(universities) == 0 {
		return
	}
	fmt.Fprintf(b, "**%s:**\n\n", heading)
	for _, u := range universities {
		fmt.Fprintf(b, "- %s — %s/year\n", u.Name, u.EstimatedAnnualTuition)
	}
	b.WriteString("\n")
}

// WriteReport renders the report and writes it under outputDir, returning
// the path written. The filename is derived from the career title and the
// current date.
func WriteReport(report career.CareerReport, outputDir string) (outputPath string, err error) {
	err = os.MkdirAll(outputDir, 0750)
	if err != nil {
		err = errors.Wrapf(err, "failed to create output directory: %s", outputDir)
		return outputPath, err
	}

	slug := strings.ToLower(strings.Join(strings.Fields(report.CareerTitle), "-"))
	if slug == "" {
		slug = "career"
	}
	filename := fmt.Sprintf("%s-report-%s.md", slug, time.Now().Format("2006-01-02"))
	outputPath = filepath.Join(outputDir, filename)

	err = os.WriteFile(outputPath, []byte(ReportMarkdown(report)), 0600)
	if err != nil {
		err = errors.Wrapf(err, "failed to write report file: %s", outputPath)
		return outputPath, err
	}

	return outputPath, err
}
