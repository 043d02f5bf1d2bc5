package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func NewAskCmd(deps *Dependencies) *cobra.Command {
	var voice string

	cmd := &cobra.Command{
		Use:   "ask <question>",
		Short: "Ask a follow-up question about submitted content",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a := deps.App
			f := a.Formatter

			if voice == "" {
				voice = a.Config.Defaults.Voice
			}

			answer, err := a.Client.AskQuestion(cmd.Context(), args[0], voice)
			if err != nil {
				f.Error(err.Error())
				return err
			}

			f.Answer(answer.Answer)
			if answer.AudioURL != "" {
				f.AudioReady(answer.AudioURL)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&voice, "voice", "", fmt.Sprintf("voice for the spoken answer (default %q)", "nova"))
	return cmd
}
