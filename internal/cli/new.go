package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/divinelang/divinepl/internal/render"
	"github.com/divinelang/divinepl/internal/scaffold"
)

var newTemplate string

// newCmd represents the new command
var newCmd = &cobra.Command{
	Use:   "new <name>",
	Short: "Bless a new DivinePL project into existence",
	Long: `New scaffolds a fresh DivinePL project with a genesis script and a
commandments configuration. The miracle and prophet templates add the
Holy Trinity module directory.

Example:
  divinepl new ark
  divinepl new ark --template miracle`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := buildConfig()

		project, err := scaffold.Create(args[0], newTemplate)
		if err != nil {
			return err
		}

		console := render.NewConsole(os.Stdout, render.NewStyles(cfg.Output.Color), cfg.Output.Verbose, false)
		console.ProjectCreated(project.Name, project.HasTrinity)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(newCmd)

	newCmd.Flags().StringVar(&newTemplate, "template", scaffold.TemplateDefault, "project template (default, miracle, prophet)")
}
