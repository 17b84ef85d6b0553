package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/layerforge/layerforge/internal/command"
	"github.com/layerforge/layerforge/internal/forgeconfig"
)

func init() {
	rootCmd.AddCommand(versionsCmd)
}

var versionsCmd = &cobra.Command{
	Use:   "versions",
	Short: "list published versions of the configured layer",
	Args:  cobra.NoArgs,
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

		lambdaClient, err := cfg.GetLambdaClient()
		if err != nil {
			return errors.Wrap(err, "fail to get lambda client")
		}

		versions, err := command.NewVersions(cfg.LayerName, lambdaClient).Run(ctx)
		if err != nil {
			return err
		}

		if len(versions) == 0 {
			fmt.Printf("layer %s has no published versions\n", cfg.LayerName)
			return nil
		}

		fmt.Printf("%-10s %-24s %s\n", "VERSION", "CREATED", "RUNTIMES")
		for _, v := range versions {
			created := ""
			if !v.CreatedAt.IsZero() {
				created = v.CreatedAt.Format(time.RFC3339)
			}

			fmt.Printf("%-10d %-24s %s\n", v.Version, created, strings.Join(v.Runtimes, ","))
		}

		return nil
	},
}
