package cmd

import (
	"github.com/spf13/cobra"
)

var (
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "productpage",
	Short: "Product landing page server and static site builder",
	Long: `productpage serves a single-product marketing site from one content
document: an offerings carousel driven by live websocket sessions, pricing,
a project showcase with per-project landing pages, and a contact form that
stores leads in SQLite. It can also build the same site as static files.`,
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "productpage.yml", "config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}
