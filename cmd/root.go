package cmd

import "github.com/spf13/cobra"

var rootCmd = &cobra.Command{
	Use:   "finance-tracker",
	Short: "Personal finance tracker API and tooling",
}

func Execute() error {
	rootCmd.AddCommand(startCmd)
	rootCmd.AddCommand(migrateCmd)
	rootCmd.AddCommand(fetchCmd)
	return rootCmd.Execute()
}
