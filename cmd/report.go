package cmd

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/nikogura/career-compass/pkg/career"
	"github.com/nikogura/career-compass/pkg/explorer"
	"github.com/nikogura/career-compass/pkg/render"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

//nolint:gochecknoglobals // Cobra boilerplate
var reportAge int

//nolint:gochecknoglobals // Cobra boilerplate
var reportCountry string

//nolint:gochecknoglobals // Cobra boilerplate
var reportAbroad bool

//nolint:gochecknoglobals // Cobra boilerplate
var reportBirthDate string

//nolint:gochecknoglobals // Cobra boilerplate
var reportBirthTime string

//nolint:gochecknoglobals // Cobra boilerplate
var reportBirthPlace string

//nolint:gochecknoglobals // Cobra boilerplate
var reportOutputDir string

//nolint:gochecknoglobals // Cobra boilerplate
var reportCmd = &cobra.Command{
	Use:   "report <career title>",
	Short: "Generate a personalized deep-dive market report",
	Long: `Generate a personalized market report for a career, grounded in live
search data: demand outlook, salaries for your country, automation risk,
education pathways, and first steps.

Providing all three birth details adds an astrological insight section.

Example:
  career-compass report "Marine Biologist" --age 17 --country "United States"
  career-compass report "Game Designer" --age 21 --country India --abroad \
    --birth-date 2004-06-12 --birth-time 08:30 --birth-place "Pune, India"`,
	Args: cobra.MinimumNArgs(1),
	RunE: runReport,
}

//nolint:gochecknoinits // Cobra boilerplate
func init() {
	rootCmd.AddCommand(reportCmd)
	reportCmd.Flags().IntVar(&reportAge, "age", 0, "Your current age (required)")
	reportCmd.Flags().StringVar(&reportCountry, "country", "", "Country you live in (required)")
	reportCmd.Flags().BoolVar(&reportAbroad, "abroad", false, "Open to studying or working abroad")
	reportCmd.Flags().StringVar(&reportBirthDate, "birth-date", "", "Date of birth for the astrology section (optional)")
	reportCmd.Flags().StringVar(&reportBirthTime, "birth-time", "", "Time of birth for the astrology section (optional)")
	reportCmd.Flags().StringVar(&reportBirthPlace, "birth-place", "", "Place of birth for the astrology section (optional)")
	reportCmd.Flags().StringVar(&reportOutputDir, "output-dir", "", "Output directory (default from config)")
}

func runReport(cmd *cobra.Command, args []string) (err error) {
	ctx := context.Background()

	session, cfg, _, err := newSession(ctx)
	if err != nil {
		return err
	}

	title := strings.Join(args, " ")
	subject := career.Career{
		ID:    strings.ToLower(strings.Join(strings.Fields(title), "-")),
		Title: title,
	}

	personalization := career.PersonalizationData{
		Age:            reportAge,
		Country:        reportCountry,
		IsOpenToAbroad: reportAbroad,
	}
	if reportBirthDate != "" && reportBirthTime != "" && reportBirthPlace != "" {
		personalization.Astrology = &career.Astrology{
			DateOfBirth:  reportBirthDate,
			TimeOfBirth:  reportBirthTime,
			PlaceOfBirth: reportBirthPlace,
		}
	}

	done := make(chan struct{})
	go func() {
		session.GenerateReport(ctx, subject, personalization)
		close(done)
	}()

	showReportProgress(session, done)

	snap := session.Report()
	if snap.FormError != "" {
		err = errors.New(snap.FormError)
		return err
	}
	if snap.Error != "" {
		err = errors.New(snap.Error)
		return err
	}

	outputDir := reportOutputDir
	if outputDir == "" {
		outputDir = cfg.Defaults.OutputDir
	}

	outputPath, err := render.WriteReport(*snap.Report, outputDir)
	if err != nil {
		return err
	}

	fmt.Printf("Report written to %s\n", outputPath)
	return err
}

// showReportProgress repaints a one-line progress bar until generation
// finishes.
func showReportProgress(session *explorer.Session, done <-chan struct{}) {
	ticker := time.NewTicker(200 * time.Millisecond)
	defer ticker.Stop()

	for {
		select {
		case <-done:
			fmt.Print("\r\033[K")
			return
		case <-ticker.C:
			snap := session.Report()
			fmt.Printf("\r\033[K[%3.0f%%] %s", snap.Progress, snap.Message)
		}
	}
}
