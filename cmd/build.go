package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/manishpatil55/demo-product-page/internal/progress"
	"github.com/manishpatil55/demo-product-page/internal/site"
)

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Build the site as static files",
	Long: `Renders the root page, one page per showcase project, the stylesheet,
script and search index into the output directory, and copies the selected
assets. The static carousel runs in the browser without a server session.`,
	RunE: runBuild,
}

func init() {
	buildCmd.Flags().String("output", "", "override output directory")
	buildCmd.Flags().String("contact-action", "", "URL the contact form posts to (no form when empty)")
	buildCmd.Flags().Int("concurrency", 0, "parallel page renders and asset copies (0 = number of CPUs)")
	rootCmd.AddCommand(buildCmd)
}

func runBuild(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	logger, err := newLogger(cfg)
	if err != nil {
		return err
	}
	defer logger.Sync()

	doc, err := loadContent(cfg)
	if err != nil {
		return err
	}

	outputDir, _ := cmd.Flags().GetString("output")
	if outputDir == "" {
		outputDir = cfg.OutputDir
	}
	action, _ := cmd.Flags().GetString("contact-action")
	concurrency, _ := cmd.Flags().GetInt("concurrency")

	g := site.NewGenerator(doc, outputDir)
	g.AssetsDir = cfg.AssetsDir
	g.AssetsInclude = cfg.AssetsInclude
	g.Options = site.Options{
		AutoplayInterval: cfg.AutoplayInterval(),
		ScrollCycle:      cfg.ScrollCycle(),
		ContactAction:    action,
	}
	g.Reporter = progress.NewReporter()
	g.Logger = logger
	g.Concurrency = concurrency

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	result, err := g.Generate(ctx)
	if err != nil {
		return fmt.Errorf("building site: %w", err)
	}

	fmt.Printf("Static site built: %s (%d pages, %d assets, %d bytes)\n",
		outputDir, result.Pages, result.Assets, result.Bytes)
	return nil
}
