package cli

import (
	"fmt"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/layerforge/layerforge/internal/cmdexec"
	"github.com/layerforge/layerforge/internal/command"
	"github.com/layerforge/layerforge/internal/forgeconfig"
)

func init() {
	sourceCmd.Flags().String("pip", "", "pip executable used to install the project (default pip)")
	rootCmd.AddCommand(sourceCmd)
}

var sourceCmd = &cobra.Command{
	Use:   "source <version>",
	Short: "build and upload the Lambda source package",
	Long: `The source command installs the project itself (without dependencies)
into a staging directory, zips it and uploads it under a semantic
version-numbered key, e.g. source/0.1.3/source.zip. The sha256 of the
built tree travels along as object metadata.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := newContext()

		cfgPath, err := cmd.Flags().GetString("config")
		if err != nil {
			return errors.Wrap(err, "fail to get --config flag, this is a bug in layerforge")
		}

		pipBin, err := cmd.Flags().GetString("pip")
		if err != nil {
			return errors.Wrap(err, "fail to get --pip flag, this is a bug in layerforge")
		}

		cfg, err := forgeconfig.Load(cfgPath)
		if err != nil {
			return errors.Wrap(err, "fail to load config")
		}

		store, err := cfg.GetStorage()
		if err != nil {
			return errors.Wrap(err, "fail to get storage")
		}

		exec := &cmdexec.OSCommandExecutor{
			Stdin:  os.Stdin,
			Stdout: os.Stdout,
			Stderr: os.Stderr,
		}

		key, err := command.NewSource(cfg.Layout(), exec, pipBin, store).Run(ctx, args[0])
		if err != nil {
			return err
		}

		fmt.Printf("uploaded source package to %s\n", key)

		return nil
	},
}
