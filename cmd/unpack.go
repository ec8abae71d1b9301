package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

//nolint:gochecknoglobals // Cobra boilerplate
var unpackCmd = &cobra.Command{
	Use:   "unpack <object>",
	Short: "Unpack an everyday object into the careers behind it",
	Long: `Unpack an everyday object into its lifecycle and the careers that
make each stage happen.

Example:
  career-compass unpack "sneaker"
  career-compass unpack "electric guitar"`,
	Args: cobra.MinimumNArgs(1),
	RunE: runUnpack,
}

//nolint:gochecknoinits // Cobra boilerplate
func init() {
	rootCmd.AddCommand(unpackCmd)
}

func runUnpack(cmd *cobra.Command, args []string) (err error) {
	ctx := context.Background()

	session, _, _, err := newSession(ctx)
	if err != nil {
		return err
	}

	objectName := strings.Join(args, " ")
	fmt.Printf("Unpacking %q...\n\n", objectName)

	session.Unpack(ctx, objectName)

	snap := session.Snapshot()
	if snap.Error != "" {
		err = errors.New(snap.Error)
		return err
	}

	unpacked := snap.Unpacked
	fmt.Printf("The lifecycle of a %s:\n\n", unpacked.ObjectName)
	for _, stage := range unpacked.Lifecycle {
		fmt.Printf("%s  %s\n", stage.Emoji, stage.StageName)
		fmt.Printf("  %s\n", stage.Description)
		if len(stage.Careers) > 0 {
			fmt.Printf("  Careers: %s\n", strings.Join(stage.Careers, ", "))
		}
		fmt.Println()
	}

	return err
}
