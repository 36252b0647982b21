package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aalvaropc/lumen/internal/infra/fsworkspace"
	"github.com/aalvaropc/lumen/internal/usecase"
)

func initCmd(opts *rootOptions) *cobra.Command {
	var path string
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create lumen.yaml and .gitignore entries in a directory",
		RunE: func(cmd *cobra.Command, _ []string) error {
			target := path
			if target == "" {
				target = opts.workspace
			}
			if target == "" {
				target = "."
			}
			uc := usecase.NewInitWorkspace(fsworkspace.NewInitializer())
			root, err := uc.Execute(target, force)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Initialized lumen workspace in %s\n", root)
			return nil
		},
	}

	cmd.Flags().StringVar(&path, "path", "", "Directory to initialize (defaults to --workspace or the current directory)")
	cmd.Flags().BoolVar(&force, "force", false, "Overwrite existing lumen.yaml")
	return cmd
}
