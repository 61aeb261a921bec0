package cli

import (
	"github.com/kvesta/cvssbase/internal"
	"github.com/spf13/cobra"
)

func template() {
	templateCmd := &cobra.Command{
		Use:   "template [NAME]",
		Short: "List the preset vectors of common vulnerability classes",
		Long: `Examples:
  # List every preset with its score
  $ cvssbase template

  # Show the metrics of a preset
  $ cvssbase template sql_injection`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := ""
			if len(args) > 0 {
				name = args[0]
			}
			return internal.DoTemplate(newContext(), name)
		},
	}

	templateCmd.Flags().BoolVar(&asJson, "json", false, "print json instead of a table")

	rootCmd.AddCommand(templateCmd)
}
