package cli

import (
	"github.com/spf13/cobra"

	"github.com/danghoanglong/briefcast/internal/app"
)

type Dependencies struct {
	App *app.App
}

func NewRootCmd(deps *Dependencies) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "briefcast",
		Short: "Submit text, files, media, and links for analysis",
		Long: "A terminal client for the content-analysis service: batch up to five\n" +
			"inputs (pasted text, documents, audio/video, URLs) or record a voice\n" +
			"question, and receive a summary with optional speech audio.",
		SilenceUsage: true,
	}

	rootCmd.AddCommand(NewSubmitCmd(deps))
	rootCmd.AddCommand(NewRecordCmd(deps))
	rootCmd.AddCommand(NewAskCmd(deps))
	rootCmd.AddCommand(NewWatchCmd(deps))
	rootCmd.AddCommand(NewDocsCmd(deps))
	rootCmd.AddCommand(NewDoctorCmd(deps))

	return rootCmd
}
