package site

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sync"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/manishpatil55/demo-product-page/internal/content"
	"github.com/manishpatil55/demo-product-page/internal/progress"
	"github.com/manishpatil55/demo-product-page/internal/walker"
)

// Generator builds the site into a directory of static files.
type Generator struct {
	Site          *content.Site
	OutputDir     string
	AssetsDir     string
	AssetsInclude []string
	Options       Options
	Reporter      progress.Reporter
	Logger        *zap.Logger
	// Concurrency bounds parallel page renders and asset copies. Zero uses
	// GOMAXPROCS.
	Concurrency int
}

// BuildResult summarizes a build.
type BuildResult struct {
	Pages  int
	Assets int
	Bytes  int64
}

// NewGenerator creates a Generator with a discarding reporter and logger.
func NewGenerator(s *content.Site, outputDir string) *Generator {
	return &Generator{
		Site:      s,
		OutputDir: outputDir,
		Reporter:  progress.Discard{},
		Logger:    zap.NewNop(),
	}
}

// Generate writes index.html, one page per project, the stylesheet, script,
// search index and the selected assets.
func (g *Generator) Generate(ctx context.Context) (*BuildResult, error) {
	if g.Site == nil {
		return nil, fmt.Errorf("no content to build")
	}
	reporter := g.Reporter
	if reporter == nil {
		reporter = progress.Discard{}
	}
	logger := g.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	var assets []walker.Asset
	if g.AssetsDir != "" {
		var err error
		assets, err = walker.Walk(walker.Config{Root: g.AssetsDir, Include: g.AssetsInclude})
		if err != nil {
			return nil, fmt.Errorf("scanning assets: %w", err)
		}
	}

	if err := os.MkdirAll(g.OutputDir, 0o755); err != nil {
		return nil, err
	}

	projects := g.Site.Showcase.Projects
	total := 1 + len(projects) + len(assets)
	reporter.Start(total)
	defer reporter.Finish()

	var (
		mu     sync.Mutex
		result BuildResult
		done   int
	)
	step := func(msg string, pages, copied int, n int64) {
		mu.Lock()
		defer mu.Unlock()
		done++
		result.Pages += pages
		result.Assets += copied
		result.Bytes += n
		reporter.Update(done, msg)
	}

	// Write static assets.
	if err := os.WriteFile(filepath.Join(g.OutputDir, "style.css"), []byte(cssContent), 0o644); err != nil {
		return nil, err
	}
	if err := os.WriteFile(filepath.Join(g.OutputDir, "script.js"), []byte(jsContent), 0o644); err != nil {
		return nil, err
	}
	entries := BuildSearchIndex(g.Site, StaticLinks(0))
	if err := WriteSearchIndex(entries, filepath.Join(g.OutputDir, "search-index.json")); err != nil {
		return nil, fmt.Errorf("writing search index: %w", err)
	}

	renderer := NewRenderer(g.Site, g.Options)

	var home bytes.Buffer
	if err := renderer.WithLinks(StaticLinks(0)).RenderHome(&home, HomeOptions{}); err != nil {
		return nil, err
	}
	n, err := writeFile(filepath.Join(g.OutputDir, "index.html"), home.Bytes())
	if err != nil {
		return nil, err
	}
	step("index.html", 1, 0, n)

	limit := g.Concurrency
	if limit <= 0 {
		limit = runtime.GOMAXPROCS(0)
	}
	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(limit)

	projectRenderer := renderer.WithLinks(StaticLinks(2))
	for _, p := range projects {
		slug := p.Slug
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			var buf bytes.Buffer
			if _, err := projectRenderer.RenderProject(&buf, slug); err != nil {
				return err
			}
			rel := filepath.Join("project", slug, "index.html")
			n, err := writeFile(filepath.Join(g.OutputDir, rel), buf.Bytes())
			if err != nil {
				return fmt.Errorf("writing %s: %w", rel, err)
			}
			step(filepath.ToSlash(rel), 1, 0, n)
			return nil
		})
	}

	assetsDir := filepath.Join(g.OutputDir, "assets")
	for _, f := range assets {
		f := f
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			if err := f.CopyTo(assetsDir); err != nil {
				return err
			}
			step("assets/"+f.Rel, 0, 1, f.Size)
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return nil, err
	}

	if len(assets) > 0 {
		if err := writeAssetManifest(filepath.Join(assetsDir, "manifest.json"), assets); err != nil {
			return nil, err
		}
	}

	logger.Info("site built",
		zap.String("output", g.OutputDir),
		zap.Int("pages", result.Pages),
		zap.Int("assets", result.Assets),
		zap.Int64("bytes", result.Bytes))
	return &result, nil
}

// assetEntry records one copied asset so deploy tooling can skip
// unchanged files.
type assetEntry struct {
	Path string      `json:"path"`
	Kind walker.Kind `json:"kind"`
	Size int64       `json:"size"`
	Hash string      `json:"sha256"`
}

func writeAssetManifest(path string, assets []walker.Asset) error {
	entries := make([]assetEntry, 0, len(assets))
	for _, f := range assets {
		entries = append(entries, assetEntry{Path: f.Rel, Kind: f.Kind, Size: f.Size, Hash: f.Hash})
	}
	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

func writeFile(path string, data []byte) (int64, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return 0, err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return 0, err
	}
	return int64(len(data)), nil
}
