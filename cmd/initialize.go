package cmd

import (
	"fmt"

	"github.com/nikogura/career-compass/pkg/config"
	"github.com/spf13/cobra"
)

//nolint:gochecknoglobals // Cobra boilerplate
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a starter configuration file",
	Long: `Create a starter configuration file at $HOME/.career-compass/config.json.

Edit the file afterwards to set your Gemini API key, or export it as
GEMINI_API_KEY instead.`,
	RunE: runInit,
}

//nolint:gochecknoinits // Cobra boilerplate
func init() {
	rootCmd.AddCommand(initCmd)
}

func runInit(cmd *cobra.Command, args []string) (err error) {
	err = config.InitConfig(configFile)
	if err != nil {
		return err
	}

	fmt.Println("Config file created. Set your Gemini API key before running other commands.")
	return err
}
