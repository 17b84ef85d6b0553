package cli

import (
	"fmt"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/layerforge/layerforge/internal/command"
	"github.com/layerforge/layerforge/internal/forgeconfig"
)

func init() {
	pruneCmd.Flags().Int("keep", 3, "number of most recent versions to keep")
	pruneCmd.Flags().Duration("older-than", 0, "only delete versions older than this, e.g. 720h")
	rootCmd.AddCommand(pruneCmd)
}

var pruneCmd = &cobra.Command{
	Use:   "prune",
	Short: "delete superseded layer versions beyond the retention bound",
	Long: `The prune command deletes old layer versions and their manifest
backups. The most recent --keep versions always survive, and
--older-than additionally protects anything younger than the cutoff.
The latest version is never deleted.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx := newContext()

		cfgPath, err := cmd.Flags().GetString("config")
		if err != nil {
			return errors.Wrap(err, "fail to get --config flag, this is a bug in layerforge")
		}

		keep, err := cmd.Flags().GetInt("keep")
		if err != nil {
			return errors.Wrap(err, "fail to get --keep flag, this is a bug in layerforge")
		}

		olderThan, err := cmd.Flags().GetDuration("older-than")
		if err != nil {
			return errors.Wrap(err, "fail to get --older-than flag, this is a bug in layerforge")
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

		deleted, err := command.NewPrune(
			cfg.LayerName, cfg.Tool, keep, time.Duration(olderThan), store, lambdaClient,
		).Run(ctx)
		if err != nil {
			return err
		}

		if len(deleted) == 0 {
			fmt.Println("nothing to prune")
			return nil
		}

		for _, v := range deleted {
			fmt.Printf("deleted version %d\n", v)
		}

		return nil
	},
}
