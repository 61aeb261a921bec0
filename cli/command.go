package cli

import (
	"context"
	"fmt"

	"github.com/kvesta/cvssbase/config"
	"github.com/spf13/cobra"
)

var (
	rootCmd = &cobra.Command{
		Use:   "cvssbase [OPTIONS]",
		Short: "CVSS v3.1 base score calculator",
		Long: `Cvssbase scores CVSS v3.1 base vectors and checks published scores against them
Tutorial is available at https://github.com/kvesta/cvssbase`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			settings, err = config.Load(configFile)
			return err
		},
	}

	configFile string
	outfile    string
	asJson     bool
	detail     bool
	upgradeall bool
	pages      int
	cveID      string

	settings *config.Settings
)

func Execute() error {
	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Print version information and quit",
		Args:  NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println(versions)
		},
	}

	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "settings file, default ~/.cvssbase/config.yaml")

	calc()
	template()
	feed()
	verifyRecords()

	rootCmd.AddCommand(versionCmd)
	return rootCmd.Execute()
}

// newContext carries the flags to the internal handlers
func newContext() context.Context {
	ctx := config.Ctx
	ctx = context.WithValue(ctx, "settings", settings)
	ctx = context.WithValue(ctx, "output", outfile)
	ctx = context.WithValue(ctx, "json", asJson)
	ctx = context.WithValue(ctx, "detail", detail)
	ctx = context.WithValue(ctx, "reset", upgradeall)
	ctx = context.WithValue(ctx, "pages", pages)
	ctx = context.WithValue(ctx, "cve", cveID)
	return ctx
}
