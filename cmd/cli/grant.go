package cli

import (
	"fmt"
	"strconv"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/layerforge/layerforge/internal/command"
	"github.com/layerforge/layerforge/internal/forgeconfig"
)

func init() {
	rootCmd.AddCommand(grantCmd)
}

var grantCmd = &cobra.Command{
	Use:   "grant <version> <account-id>",
	Short: "grant another AWS account usage of a layer version",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := newContext()

		cfgPath, err := cmd.Flags().GetString("config")
		if err != nil {
			return errors.Wrap(err, "fail to get --config flag, this is a bug in layerforge")
		}

		version, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return errors.Wrapf(err, "invalid layer version %q", args[0])
		}

		cfg, err := forgeconfig.Load(cfgPath)
		if err != nil {
			return errors.Wrap(err, "fail to load config")
		}

		lambdaClient, err := cfg.GetLambdaClient()
		if err != nil {
			return errors.Wrap(err, "fail to get lambda client")
		}

		statement, err := command.NewGrant(cfg.LayerName, lambdaClient).Run(ctx, version, args[1])
		if err != nil {
			return err
		}

		fmt.Println(statement)

		return nil
	},
}
