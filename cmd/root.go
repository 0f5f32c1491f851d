package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "scaledrill",
	Short: "Scale spelling practice",
	Long:  `Loads a scale catalogue and quizzes you on correctly spelled scales.`,
}

func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}
