package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/nikogura/career-compass/pkg/career"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

//nolint:gochecknoglobals // Cobra boilerplate
var personaGenerate string

//nolint:gochecknoglobals // Cobra boilerplate
var personaCmd = &cobra.Command{
	Use:   "persona [title]",
	Short: "Explore problems through a persona's eyes",
	Long: `Explore the problems a persona cares about and the careers that solve
them. With no arguments, lists the persona gallery. With a title, picks
that persona and generates their problems. With --generate, creates a
custom persona from a description first.

Example:
  career-compass persona
  career-compass persona "The Indie Game Developer"
  career-compass persona --generate "a beekeeper worried about colony collapse"`,
	RunE: runPersona,
}

//nolint:gochecknoinits // Cobra boilerplate
func init() {
	rootCmd.AddCommand(personaCmd)
	personaCmd.Flags().StringVar(&personaGenerate, "generate", "", "Generate a custom persona from a description")
}

func runPersona(cmd *cobra.Command, args []string) (err error) {
	ctx := context.Background()

	session, _, _, err := newSession(ctx)
	if err != nil {
		return err
	}

	if personaGenerate != "" {
		fmt.Printf("Generating a persona from %q...\n\n", personaGenerate)
		session.GeneratePersona(ctx, personaGenerate)

		snap := session.Snapshot()
		if snap.GenerationError != "" {
			err = errors.New(snap.GenerationError)
			return err
		}
		if snap.Error != "" {
			err = errors.New(snap.Error)
			return err
		}

		printProblemSet(*snap.SelectedPersona, snap.PersonaProblems)
		return err
	}

	if len(args) == 0 {
		fmt.Println("Personas:")
		fmt.Println()
		for _, p := range session.Personas() {
			fmt.Printf("  %s\n    %s\n", p.Title, p.Tagline)
		}
		fmt.Println()
		fmt.Println("Pick one with: career-compass persona \"<title>\"")
		return err
	}

	title := strings.Join(args, " ")
	var selected *career.Persona
	for _, p := range session.Personas() {
		if strings.EqualFold(p.Title, title) {
			chosen := p
			selected = &chosen
			break
		}
	}
	if selected == nil {
		err = errors.Errorf("no persona named %q (run 'career-compass persona' to list them)", title)
		return err
	}

	fmt.Printf("Exploring problems for %s...\n\n", selected.Title)
	session.SelectPersona(ctx, *selected)

	snap := session.Snapshot()
	if snap.Error != "" {
		err = errors.New(snap.Error)
		return err
	}

	printProblemSet(*selected, snap.PersonaProblems)
	return err
}

func printProblemSet(persona career.Persona, problems *career.PersonaProblemSet) {
	fmt.Printf("%s — %s\n", persona.Title, persona.Tagline)
	fmt.Printf("%s\n\n", persona.Description)

	if problems == nil {
		return
	}
	for _, problem := range problems.Problems {
		fmt.Printf("Problem: %s\n", problem.ProblemTitle)
		fmt.Printf("  %s\n", problem.Description)
		if len(problem.SolvingCareers) > 0 {
			fmt.Printf("  Careers on it: %s\n", strings.Join(problem.SolvingCareers, ", "))
		}
		fmt.Println()
	}
}
