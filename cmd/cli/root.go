package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "layerforge",
	Short: "build, package, upload and publish AWS Lambda artifacts",
	Long: `layerforge automates Lambda deployment artifacts: it builds layer
dependencies with pip, poetry or uv (locally or in a runtime-matched
container), packages them into layer.zip, stages the archive in S3 and
publishes a new immutable layer version only when the dependency lock
state actually changed.`,
	SilenceUsage: true,
}

func SetVersionInfo(version, commit, date string) {
	rootCmd.Version = fmt.Sprintf("%s (%s, built %s)", version, commit, date)
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "path to layerforge.yaml (default ./layerforge.yaml)")
}

// newContext returns a context carrying the CLI logger. Log level comes
// from the LAYERFORGE_LOG env var.
func newContext() context.Context {
	logger := hclog.Default()
	logLevel := hclog.LevelFromString(os.Getenv("LAYERFORGE_LOG"))
	if logLevel != hclog.NoLevel {
		logger.SetLevel(logLevel)
	}

	return hclog.WithContext(context.Background(), logger)
}
