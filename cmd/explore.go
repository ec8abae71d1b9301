package cmd

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/nikogura/career-compass/pkg/explorer"
	"github.com/spf13/cobra"
)

//nolint:gochecknoglobals // Cobra boilerplate
var exploreCmd = &cobra.Command{
	Use:   "explore",
	Short: "Interactively explore careers, objects, and personas",
	Long: `Start an interactive exploration session. Discover careers from your
interests, unpack objects, browse personas, and drill into any result.

Commands inside the session:
  search <interests>     discover careers
  more                   load more results
  show <n>               quick-look details for result n
  unpack <object>        unpack an object into careers
  personas               browse the persona gallery
  pick <n>               explore a persona's problems
  invent <description>   generate a custom persona
  home                   back to the start
  quit                   leave`,
	RunE: runExplore,
}

//nolint:gochecknoinits // Cobra boilerplate
func init() {
	rootCmd.AddCommand(exploreCmd)
}

//nolint:funlen,gocognit // Command dispatch loop.
func runExplore(cmd *cobra.Command, args []string) (err error) {
	ctx := context.Background()

	session, _, _, err := newSession(ctx)
	if err != nil {
		return err
	}

	fmt.Println("What do you love doing? Let's find out where it leads.")

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			break
		}

		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		verb, rest, _ := strings.Cut(line, " ")
		rest = strings.TrimSpace(rest)

		switch verb {
		case "quit", "exit":
			if session.InFlight() {
				fmt.Println("Still working on something, but leaving anyway.")
			}
			return err

		case "home":
			session.GoHome()
			fmt.Println("Back at the start. What do you love doing?")

		case "search":
			session.Search(ctx, rest)
			printResults(session)

		case "more":
			session.LoadMore(ctx)
			printResults(session)

		case "show":
			showResult(ctx, session, rest)

		case "unpack":
			session.Unpack(ctx, rest)
			printUnpacked(session)

		case "personas":
			session.ShowPersonaGallery()
			for i, p := range session.Personas() {
				fmt.Printf("  %d. %s — %s\n", i+1, p.Title, p.Tagline)
			}

		case "pick":
			pickPersona(ctx, session, rest)

		case "invent":
			session.GeneratePersona(ctx, rest)
			snap := session.Snapshot()
			if snap.GenerationError != "" {
				fmt.Println(snap.GenerationError)
				continue
			}
			printProblems(session)

		default:
			fmt.Println("Try: search, more, show, unpack, personas, pick, invent, home, quit")
		}
	}

	return err
}

func printResults(session *explorer.Session) {
	snap := session.Snapshot()
	if snap.Error != "" {
		fmt.Println(snap.Error)
		return
	}
	for i, c := range snap.Results {
		fmt.Printf("  %d. %s %s\n", i+1, c.Emoji, c.Title)
	}
	if !snap.CanLoadMore {
		fmt.Println("That's everything we could find.")
	}
}

func showResult(ctx context.Context, session *explorer.Session, arg string) {
	snap := session.Snapshot()
	n, err := strconv.Atoi(arg)
	if err != nil || n < 1 || n > len(snap.Results) {
		fmt.Println("Pick a result number from the list.")
		return
	}

	id := snap.Results[n-1].ID
	session.HydrateCareer(ctx, id)

	for _, c := range session.Snapshot().Results {
		if c.ID == id {
			printCareer(c)
			return
		}
	}
}

func printUnpacked(session *explorer.Session) {
	snap := session.Snapshot()
	if snap.Error != "" {
		fmt.Println(snap.Error)
		return
	}
	if snap.Unpacked == nil {
		return
	}
	for _, stage := range snap.Unpacked.Lifecycle {
		fmt.Printf("  %s %s: %s\n", stage.Emoji, stage.StageName, strings.Join(stage.Careers, ", "))
	}
}

func pickPersona(ctx context.Context, session *explorer.Session, arg string) {
	personas := session.Personas()
	n, err := strconv.Atoi(arg)
	if err != nil || n < 1 || n > len(personas) {
		fmt.Println("Pick a persona number from the list.")
		return
	}

	session.SelectPersona(ctx, personas[n-1])
	printProblems(session)
}

func printProblems(session *explorer.Session) {
	snap := session.Snapshot()
	if snap.Error != "" {
		fmt.Println(snap.Error)
		return
	}
	if snap.SelectedPersona == nil || snap.PersonaProblems == nil {
		return
	}

	persona := *snap.SelectedPersona
	fmt.Printf("%s — %s\n", persona.Title, persona.Tagline)
	for _, problem := range snap.PersonaProblems.Problems {
		fmt.Printf("  %s\n    %s\n", problem.ProblemTitle, problem.Description)
		if len(problem.SolvingCareers) > 0 {
			fmt.Printf("    Careers: %s\n", strings.Join(problem.SolvingCareers, ", "))
		}
	}
}
