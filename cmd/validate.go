package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/manishpatil55/demo-product-page/internal/content"
)

var validateCmd = &cobra.Command{
	Use:   "validate [file]",
	Short: "Check a content document",
	Long: `Loads, normalizes and validates a content document (the configured one
when no file is given) and prints a summary. With --print the normalized
document is written to stdout in the given format.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runValidate,
}

func init() {
	validateCmd.Flags().String("print", "", "print the normalized document as yaml, toml or json")
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, args []string) error {
	var (
		doc  *content.Site
		name string
		err  error
	)
	if len(args) == 1 {
		name = args[0]
		doc, err = content.Load(name)
	} else {
		cfg, cfgErr := loadConfig()
		if cfgErr != nil {
			return cfgErr
		}
		name = contentName(cfg)
		doc, err = loadContent(cfg)
	}
	if err != nil {
		return err
	}

	if format, _ := cmd.Flags().GetString("print"); format != "" {
		data, err := content.Encode(doc, content.Format(format))
		if err != nil {
			return fmt.Errorf("encoding %s: %w", format, err)
		}
		_, err = os.Stdout.Write(data)
		return err
	}

	fmt.Printf("%s is valid\n", name)
	fmt.Printf("  Brand:       %s\n", doc.Brand.Name)
	fmt.Printf("  Offerings:   %d\n", len(doc.Offerings))
	fmt.Printf("  Plans:       %d\n", len(doc.Pricing.Plans))
	fmt.Printf("  Projects:    %d\n", len(doc.Showcase.Projects))
	fmt.Printf("  FAQ entries: %d\n", len(doc.FAQ))
	for _, slug := range doc.Slugs() {
		fmt.Printf("    /project/%s\n", slug)
	}
	return nil
}
