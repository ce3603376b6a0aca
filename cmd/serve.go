package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/manishpatil55/demo-product-page/internal/contact"
	"github.com/manishpatil55/demo-product-page/internal/content"
	"github.com/manishpatil55/demo-product-page/internal/db"
	"github.com/manishpatil55/demo-product-page/internal/server"
	"github.com/manishpatil55/demo-product-page/internal/site"
)

const shutdownTimeout = 10 * time.Second

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the product page",
	Long: `Starts the HTTP server: the pages, the live carousel websocket at
/ws/carousel, the search and content APIs, and the contact API that stores
leads in the data directory.`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().Int("port", 0, "port to listen on (overrides config)")
	serveCmd.Flags().Bool("open", false, "open the browser once listening")
	serveCmd.Flags().Bool("watch", false, "reload the content file when it changes (overrides config)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if port, _ := cmd.Flags().GetInt("port"); port > 0 {
		cfg.Port = port
	}
	if cmd.Flags().Changed("watch") {
		cfg.Watch, _ = cmd.Flags().GetBool("watch")
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
	holder := content.NewHolder(doc)

	database, err := db.Open(cfg.DBPath())
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	notifier := contact.NewNotifier(cfg.WebhookURL, logger.Named("webhook"))
	srv := server.New(server.Config{
		Addr:             cfg.Addr(),
		AssetsDir:        cfg.AssetsDir,
		AllowAll:         cfg.AllowAllOrigins,
		AdminToken:       cfg.AdminToken,
		AutoplayInterval: cfg.AutoplayInterval(),
		ScrollCycle:      cfg.ScrollCycle(),
	}, holder, contact.NewStore(database), notifier, logger)

	// Graceful shutdown.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	g, gctx := errgroup.WithContext(ctx)

	g.Go(srv.Start)
	g.Go(func() error {
		<-gctx.Done()
		fmt.Fprintln(os.Stderr, "\nShutting down server...")
		sctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(sctx)
	})
	if cfg.Watch && cfg.ContentFile != "" {
		g.Go(func() error {
			return holder.Watch(gctx, cfg.ContentFile, logger.Named("content"))
		})
	}

	url := fmt.Sprintf("http://localhost:%d", cfg.Port)
	fmt.Fprintf(os.Stderr, "productpage %s serving %s\n", Version, url)
	fmt.Fprintf(os.Stderr, "  Content: %s\n", contentName(cfg))
	fmt.Fprintf(os.Stderr, "  Leads: %s\n", cfg.DBPath())
	if cfg.AdminToken == "" {
		fmt.Fprintln(os.Stderr, "  Lead API: disabled (set admin_token or use `productpage leads`)")
	}
	logger.Debug("serving", zap.Int("offerings", len(doc.Offerings)), zap.Int("projects", len(doc.Showcase.Projects)))

	if open, _ := cmd.Flags().GetBool("open"); open {
		site.OpenBrowser(url)
	}

	return g.Wait()
}
