package cli

import (
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/layerforge/layerforge/internal/command"
	"github.com/layerforge/layerforge/internal/forgeconfig"
)

func init() {
	rootCmd.AddCommand(uploadCmd)
}

var uploadCmd = &cobra.Command{
	Use:   "upload",
	Short: "stage layer.zip in the object store",
	Long: `The upload command stages the packaged layer.zip at the staging key of
the configured object store, carrying the manifest fingerprint as object
metadata for the publish-time consistency check. It refuses to stage an
archive packaged from a manifest state that no longer matches the lock
file on disk.`,
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

		return command.NewUpload(store, cfg.Layout(), cfg.Tool, cfg.Runtime, cfg.Arch).Run(ctx)
	},
}
