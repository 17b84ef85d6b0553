package cli

import (
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/layerforge/layerforge/internal/command"
	"github.com/layerforge/layerforge/internal/forgeconfig"
)

func init() {
	rootCmd.AddCommand(deployCmd)
}

var deployCmd = &cobra.Command{
	Use:   "deploy",
	Short: "package, upload and publish in one run",
	Long: `The deploy command composes package, upload and publish as one
workflow, each step fully completing before the next begins. Artifacts
must have been built beforehand with the build command. Exits with code
3 when no change was detected.`,
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

		deployCmd := command.NewDeploy(
			cfg.LayerName, cfg.Tool, cfg.Runtime, cfg.Arch, cfg.IgnorePackages,
			cfg.Layout(), store, lambdaClient,
		)

		deployment, err := deployCmd.Run(ctx)
		if err != nil {
			return err
		}

		reportDeployment(deployment)

		return nil
	},
}
