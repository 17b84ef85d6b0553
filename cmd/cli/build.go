package cli

import (
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/layerforge/layerforge/internal/build"
	"github.com/layerforge/layerforge/internal/cmdexec"
	"github.com/layerforge/layerforge/internal/command"
	"github.com/layerforge/layerforge/internal/forgeconfig"
)

func init() {
	buildCmd.Flags().Bool("container", false, "build inside an AWS SAM image matching the target runtime")
	rootCmd.AddCommand(buildCmd)
}

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "install layer dependencies into the artifacts directory",
	Long: `The build command installs the locked dependency set with the configured
tool (pip, poetry or uv) into build/lambda/layer/artifacts/python, the
directory structure Lambda layers require. With --container the install
runs inside the matching AWS SAM build image so artifacts are
binary-compatible with the target runtime and architecture.`,
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

		inContainer, err := cmd.Flags().GetBool("container")
		if err != nil {
			return errors.Wrap(err, "fail to get --container flag, this is a bug in layerforge")
		}

		params := build.Params{
			Layout:      cfg.Layout(),
			Runtime:     cfg.Runtime,
			Arch:        cfg.Arch,
			Credentials: cfg.GetCredentials(),
			Exec: &cmdexec.OSCommandExecutor{
				Stdin:  os.Stdin,
				Stdout: os.Stdout,
				Stderr: os.Stderr,
			},
		}

		builder, err := build.New(cfg.Tool, params, cfg.Bin, inContainer || cfg.Container)
		if err != nil {
			return err
		}

		return command.NewBuild(builder).Run(ctx)
	},
}
