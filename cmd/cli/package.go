package cli

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/layerforge/layerforge/internal/command"
	"github.com/layerforge/layerforge/internal/forgeconfig"
)

func init() {
	rootCmd.AddCommand(packageCmd)
}

var packageCmd = &cobra.Command{
	Use:   "package",
	Short: "zip built artifacts into layer.zip",
	Long: `The package command compresses build/lambda/layer/artifacts into
layer.zip, excluding packages the Lambda runtime already provides, and
stamps the archive with the fingerprint of the dependency manifest it
was built from.`,
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

		packCmd := command.NewPack(cfg.Layout(), cfg.Tool, cfg.Runtime, cfg.Arch, cfg.IgnorePackages)

		fingerprint, err := packCmd.Run(ctx)
		if err != nil {
			return err
		}

		fmt.Printf("packaged %s (fingerprint %s)\n", cfg.Layout().LayerZipPath(), fingerprint)

		return nil
	},
}
