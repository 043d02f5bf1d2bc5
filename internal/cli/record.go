package cli

import (
	"bufio"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/danghoanglong/briefcast/internal/recorder"
)

func NewRecordCmd(deps *Dependencies) *cobra.Command {
	var (
		play   bool
		submit bool
		level  string
		voice  string
	)

	cmd := &cobra.Command{
		Use:   "record",
		Short: "Record a voice question and transcribe it",
		Long: "Records from the microphone until Enter is pressed, then offers\n" +
			"playback, re-record, and transcription. With --submit the transcript\n" +
			"is sent for analysis as a text input.",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			a := deps.App
			f := a.Formatter
			stdin := bufio.NewReader(cmd.InOrStdin())

			if err := a.Recorder.Start(ctx); err != nil {
				f.Error(err.Error())
				return err
			}

		record:
			for {
				f.Recording()
				stdin.ReadString('\n')

				if err := a.Recorder.Stop(ctx); err != nil {
					if errors.Is(err, recorder.ErrEmptyRecording) {
						f.Warning("No audio was captured. Try recording again.")
						return nil
					}
					f.Error(err.Error())
					return err
				}

				if play {
					if err := a.Recorder.Play(ctx); err != nil {
						f.Warning("Playback failed: " + err.Error())
					}
				}

				for {
					fmt.Fprint(cmd.OutOrStdout(), "[a]ccept, [r]e-record, or [d]iscard? ")
					choice, _ := stdin.ReadString('\n')

					switch strings.ToLower(strings.TrimSpace(choice)) {
					case "r":
						if err := a.Recorder.ReRecord(ctx); err != nil {
							f.Error(err.Error())
							return err
						}
						continue record
					case "d":
						a.Recorder.Discard(ctx)
						f.Info("Recording discarded.")
						return nil
					}

					text, err := a.Recorder.AcceptForTranscription(ctx)
					if err != nil {
						// The artifact is kept; offer the same choices again so
						// the user can retry, re-record, or discard.
						f.Error("Transcription failed: " + err.Error())
						continue
					}
					f.Transcript(text)

					if !submit {
						return nil
					}
					if _, err := a.Aggregator.AddText(text); err != nil {
						f.Error("Transcript not submittable: " + err.Error())
						return err
					}
					return runSubmission(ctx, deps, level, voice, false)
				}
			}
		},
	}

	cmd.Flags().BoolVar(&play, "play", false, "play the recording back before accepting")
	cmd.Flags().BoolVar(&submit, "submit", false, "submit the transcript for analysis")
	cmd.Flags().StringVar(&level, "level", "", "summary level when submitting")
	cmd.Flags().StringVar(&voice, "voice", "", "voice for synthesized audio")

	return cmd
}
