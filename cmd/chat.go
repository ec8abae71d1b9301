package cmd

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/nikogura/career-compass/pkg/career"
	"github.com/nikogura/career-compass/pkg/chat"
	"github.com/spf13/cobra"
)

//nolint:gochecknoglobals // Cobra boilerplate
var chatCmd = &cobra.Command{
	Use:   "chat <career title>",
	Short: "Chat with an AI career companion about a career",
	Long: `Start an interactive conversation about a career. Replies stream in as
they are generated.

Type a question, or a number to use a preset one. Type 'quit' to leave.

Example:
  career-compass chat "Astronaut"
  career-compass chat "Food Stylist"`,
	Args: cobra.MinimumNArgs(1),
	RunE: runChat,
}

//nolint:gochecknoinits // Cobra boilerplate
func init() {
	rootCmd.AddCommand(chatCmd)
}

func runChat(cmd *cobra.Command, args []string) (err error) {
	ctx := context.Background()

	session, _, _, err := newSession(ctx)
	if err != nil {
		return err
	}

	title := strings.Join(args, " ")
	err = session.OpenChatForTitle(ctx, title)
	if err != nil {
		return err
	}
	defer session.CloseChat()

	manager := session.Chat()
	messages := manager.Messages()
	fmt.Printf("\n%s\n\n", messages[len(messages)-1].Content)

	for i, question := range chat.PresetQuestions {
		fmt.Printf("  %d. %s\n", i+1, question)
	}
	fmt.Println()

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			break
		}

		input := strings.TrimSpace(scanner.Text())
		if input == "" {
			continue
		}
		if input == "quit" || input == "exit" {
			break
		}

		// A bare number picks the matching preset question.
		if n, convErr := strconv.Atoi(input); convErr == nil && n >= 1 && n <= len(chat.PresetQuestions) {
			input = chat.PresetQuestions[n-1]
			fmt.Printf("(%s)\n", input)
		}

		fmt.Println()
		sendErr := manager.Send(ctx, input, func(delta string) {
			fmt.Print(delta)
		})
		if sendErr != nil {
			fmt.Println(sendErr)
			continue
		}

		// Streaming failures land in the transcript as an apology rather
		// than on the console, so surface the final entry if nothing
		// streamed.
		transcript := manager.Messages()
		if last := transcript[len(transcript)-1]; last.Role == career.RoleModel && last.Content == "Sorry, I encountered an error. Please try again." {
			fmt.Print(last.Content)
		}
		fmt.Println()
		fmt.Println()
	}

	return err
}
