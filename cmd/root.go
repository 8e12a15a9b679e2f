package cmd

import (
	"github.com/spf13/cobra"
)

var (
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "paybot",
	Short: "Conversational assistant for ChainPay payroll dashboards",
	Long: `Paybot answers natural-language questions about a company's payroll:
headcount, salaries, departments, on-chain payments, and the prices of
the crypto assets salaries are denominated in. It serves an HTTP API,
a terminal chat, and MCP tools for AI agents.`,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", ".paybot.yml", "config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}
