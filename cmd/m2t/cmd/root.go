package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"m2t/cmd/m2t/cmd/serve"
	"m2t/cmd/m2t/cmd/transcribe"
	"m2t/cmd/m2t/cmd/version"
)

var Verbose bool

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "m2t",
	Short: "Transcribe local or remote media to text with a local speech engine",
	Long: `m2t turns an audio/video file or a remote media URL into plain text.
Media is normalized to wav with an external transcoder, then fed to a local
whisper.cpp style engine. Set WHISPER_CLI and WHISPER_MODEL (optionally via a
.env file) before running.`,
	TraverseChildren: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(transcribe.Cmd)
	rootCmd.AddCommand(serve.Cmd)
	rootCmd.AddCommand(version.Cmd)

	rootCmd.PersistentFlags().BoolVarP(&Verbose, "verbose", "V", false, "verbose output")
}
