package cmd

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/nikogura/career-compass/pkg/career"
	"github.com/nikogura/career-compass/pkg/explorer"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

//nolint:gochecknoglobals // Cobra boilerplate
var discoverDetails bool

//nolint:gochecknoglobals // Cobra boilerplate
var discoverPages int

//nolint:gochecknoglobals // Cobra boilerplate
var discoverCmd = &cobra.Command{
	Use:   "discover <interests>",
	Short: "Discover careers matching your interests",
	Long: `Discover careers matching a free-text description of your interests.

Example:
  career-compass discover "space exploration"
  career-compass discover "marine biology and photography" --details
  career-compass discover "music production" --pages 3`,
	Args: cobra.MinimumNArgs(1),
	RunE: runDiscover,
}

//nolint:gochecknoinits // Cobra boilerplate
func init() {
	rootCmd.AddCommand(discoverCmd)
	discoverCmd.Flags().BoolVar(&discoverDetails, "details", false, "Fetch the quick-look details for every career found")
	discoverCmd.Flags().IntVar(&discoverPages, "pages", 1, "Number of result pages to fetch")
}

func runDiscover(cmd *cobra.Command, args []string) (err error) {
	ctx := context.Background()

	session, _, _, err := newSession(ctx)
	if err != nil {
		return err
	}

	interests := strings.Join(args, " ")
	fmt.Printf("Discovering careers for %q...\n\n", interests)

	session.Search(ctx, interests)

	for page := 1; page < discoverPages; page++ {
		snap := session.Snapshot()
		if snap.Error != "" || !snap.CanLoadMore {
			break
		}
		session.LoadMore(ctx)
	}

	snap := session.Snapshot()
	if snap.Error != "" {
		err = errors.New(snap.Error)
		return err
	}

	if discoverDetails {
		hydrateAll(ctx, session)
		snap = session.Snapshot()
	}

	for _, c := range snap.Results {
		printCareer(c)
	}
	fmt.Printf("%d careers found.\n", len(snap.Results))

	return err
}

// hydrateAll fetches the quick-look details for every result in parallel.
func hydrateAll(ctx context.Context, session *explorer.Session) {
	var wg sync.WaitGroup
	for _, c := range session.Snapshot().Results {
		wg.Add(1)
		go func(id string) {
			defer wg.Done()
			session.HydrateCareer(ctx, id)
		}(c.ID)
	}
	wg.Wait()
}

func printCareer(c career.Career) {
	fmt.Printf("%s  %s  (%s)\n", c.Emoji, c.Title, c.ID)
	if !c.Hydrated() {
		fmt.Println()
		return
	}

	fmt.Printf("  %s\n", c.Summary)
	fmt.Printf("  Automation risk: %s  |  Demand growth: %s", c.AutomationRisk, c.DemandGrowth)
	if c.IsEmerging {
		fmt.Print("  |  Emerging field")
	}
	fmt.Println()
	if len(c.WhoThisIsFor) > 0 {
		fmt.Printf("  Who this is for: %s\n", strings.Join(c.WhoThisIsFor, ", "))
	}
	if len(c.RelatedCareers) > 0 {
		fmt.Printf("  Related: %s\n", strings.Join(c.RelatedCareers, ", "))
	}
	fmt.Println()
}
