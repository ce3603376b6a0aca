package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/manishpatil55/demo-product-page/internal/config"
	"github.com/manishpatil55/demo-product-page/internal/content"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize productpage configuration with an interactive wizard",
	Long: `Runs an interactive wizard that writes the config file and, when the
chosen content file does not exist yet, seeds it with the sample document.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.RunWizard(cfgFile)
		if err != nil {
			return err
		}
		if cfg.ContentFile == "" {
			return nil
		}
		if _, err := os.Stat(cfg.ContentFile); err == nil {
			fmt.Printf("Keeping existing content file %s\n", cfg.ContentFile)
			return nil
		}
		if err := writeSampleContent(cfg.ContentFile); err != nil {
			return err
		}
		fmt.Printf("Sample content written to %s\n", cfg.ContentFile)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}

// writeSampleContent writes the sample document at path in the format its
// extension names.
func writeSampleContent(path string) error {
	format, err := content.FormatFromPath(path)
	if err != nil {
		return err
	}
	data := content.DefaultDocument()
	if format != content.FormatYAML {
		doc, err := content.Decode(data, content.FormatYAML)
		if err != nil {
			return err
		}
		if data, err = content.Encode(doc, format); err != nil {
			return fmt.Errorf("encoding sample content: %w", err)
		}
	}
	return os.WriteFile(path, data, 0o644)
}
