package cli

import (
	"context"
	"os/exec"
	"time"

	"github.com/spf13/cobra"
)

func NewDoctorCmd(deps *Dependencies) *cobra.Command {
	return &cobra.Command{
		Use:   "doctor",
		Short: "Check prerequisites",
		RunE: func(cmd *cobra.Command, args []string) error {
			a := deps.App
			f := a.Formatter
			ok := true

			if _, err := exec.LookPath("ffmpeg"); err != nil {
				f.SetupCheck("ffmpeg", false, "not found; recording and playback need it")
				ok = false
			} else {
				f.SetupCheck("ffmpeg", true, "installed")
			}

			if a.Config.Recording.Device != "" {
				f.SetupCheck("Capture device", true, a.Config.Recording.InputFormat+" / "+a.Config.Recording.Device)
			} else {
				f.SetupCheck("Capture device", false, "recording.device is not configured")
				ok = false
			}

			ctx, cancel := context.WithTimeout(cmd.Context(), 5*time.Second)
			defer cancel()
			if _, err := a.Client.ListDocuments(ctx); err != nil {
				f.SetupCheck("Backend", false, a.Config.Server.BaseURL+" unreachable: "+err.Error())
				ok = false
			} else {
				f.SetupCheck("Backend", true, a.Config.Server.BaseURL)
			}

			f.SetupCheck("Inbox directory", true, a.Config.Paths.Inbox)
			f.SetupCheck("Output directory", true, a.Config.Paths.Output)

			if ok {
				f.Success("All prerequisites met.")
			} else {
				f.Warning("Some prerequisites are missing.")
			}
			return nil
		},
	}
}
