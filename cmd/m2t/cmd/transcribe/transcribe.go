package transcribe

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"m2t/internal/app"
	"m2t/internal/app/common"
	"m2t/internal/app/model"
	"m2t/internal/config"
)

var (
	filePath string
	mediaURL string
	device   string
)

// Cmd represents the transcribe command
var Cmd = &cobra.Command{
	Use:   "transcribe",
	Short: "Transcribe a local media file or a remote media URL",
	Example: `  m2t transcribe --file talk.mp4
  m2t transcribe --url https://youtu.be/xxxx --device 1`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		if device == "" {
			device = cfg.DefaultDevice
		}

		source, err := buildSource()
		if err != nil {
			return err
		}

		logger := common.MustNewLogger(true)
		defer logger.Sync()

		controller := app.InitializePipeline(cfg, logger, prometheus.NewRegistry())
		result := controller.Run(cmd.Context(), source, device)
		if !result.OK() {
			return fmt.Errorf("transcription failed at %s: %s", result.Failure.Stage, result.Failure.Message)
		}

		fmt.Println(result.Text)
		return nil
	},
}

func buildSource() (model.MediaSource, error) {
	switch {
	case filePath != "" && mediaURL != "":
		return model.MediaSource{}, fmt.Errorf("--file and --url are mutually exclusive")
	case filePath != "":
		data, err := os.ReadFile(filePath)
		if err != nil {
			return model.MediaSource{}, fmt.Errorf("cannot read %s: %w", filePath, err)
		}
		return model.UploadSource(filepath.Base(filePath), data), nil
	case mediaURL != "":
		return model.RemoteSource(mediaURL), nil
	default:
		return model.MediaSource{}, fmt.Errorf("one of --file or --url is required")
	}
}

func init() {
	Cmd.Flags().StringVarP(&filePath, "file", "f", "", "local media file to transcribe")
	Cmd.Flags().StringVarP(&mediaURL, "url", "u", "", "remote media URL to transcribe")
	Cmd.Flags().StringVarP(&device, "device", "d", "", "accelerator device selector (default from M2T_DEVICE)")
}
