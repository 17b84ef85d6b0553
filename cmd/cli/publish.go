package cli

import (
	"fmt"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/layerforge/layerforge/internal/command"
	"github.com/layerforge/layerforge/internal/forgeconfig"
	"github.com/layerforge/layerforge/internal/publish"
)

// exitNoChange is returned when no new version was needed. It is non-zero
// so pipelines can distinguish "skipped" from "published", but distinct
// from the generic failure code 1.
const exitNoChange = 3

func init() {
	rootCmd.AddCommand(publishCmd)
}

var publishCmd = &cobra.Command{
	Use:   "publish",
	Short: "publish a new layer version if dependencies changed",
	Long: `The publish command compares the fingerprint of the current dependency
manifest against the one recorded for the last published version. A new
immutable layer version is created only when they differ; an unchanged
manifest reports "no change detected" and exits with code 3 so calling
pipelines can treat it as skipped rather than failed.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx := newContext()

		cfgPath, err := cmd.Flags().GetString("config")
		if err != nil {
			return errors.Wrap(err, "fail to get --config flag, this is a bug in layerforge")
		}

		cfg, err := forgeconfig.Load(cfgPath)
		if err != nil {
			return errors.Wrap(err, "fail to load config")
		}

		store, err := cfg.GetStorage()
		if err != nil {
			return errors.Wrap(err, "fail to get storage")
		}

		lambdaClient, err := cfg.GetLambdaClient()
		if err != nil {
			return errors.Wrap(err, "fail to get lambda client")
		}

		publishCmd := command.NewPublish(
			cfg.LayerName, cfg.Tool, cfg.Runtime, cfg.Arch,
			cfg.Layout(), store, lambdaClient,
		)

		deployment, err := publishCmd.Run(ctx)
		if err != nil {
			return err
		}

		reportDeployment(deployment)

		return nil
	},
}

func reportDeployment(deployment *publish.Deployment) {
	if deployment.Skipped {
		fmt.Printf("no change detected: %s\n", deployment.Reason)
		os.Exit(exitNoChange)
	}

	fmt.Printf("published %s version %d\n", deployment.LayerName, deployment.Version)
	fmt.Printf("arn: %s\n", deployment.VersionARN)
	fmt.Printf("manifest backup: %s\n", deployment.ManifestKey)
}
