// Package walker finds the static assets (images, fonts, icons) that a site
// build copies into its output directory.
package walker

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
)

// DefaultMaxSize is the largest asset copied (10 MB).
const DefaultMaxSize int64 = 10 << 20

// Asset is one publishable file under the asset root.
type Asset struct {
	Path string // absolute
	Rel  string // slash separated, relative to the root
	Size int64
	Kind Kind
	Hash string // SHA-256, hex
}

// Config selects the assets Walk returns.
type Config struct {
	Root    string
	Include []string // globs; empty means everything
	Exclude []string
	MaxSize int64 // larger files are skipped; 0 selects DefaultMaxSize
}

// Walk returns the assets under cfg.Root in lexical order. Unreadable
// entries are skipped. A missing root yields no assets.
func Walk(cfg Config) ([]Asset, error) {
	root, err := filepath.Abs(cfg.Root)
	if err != nil {
		return nil, fmt.Errorf("walker: resolve root: %w", err)
	}
	st, err := os.Stat(root)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return nil, nil
	case err != nil:
		return nil, fmt.Errorf("walker: %w", err)
	case !st.IsDir():
		return nil, fmt.Errorf("walker: %s is not a directory", root)
	}

	maxSize := cfg.MaxSize
	if maxSize <= 0 {
		maxSize = DefaultMaxSize
	}

	fsys := os.DirFS(root)
	filter, err := NewFilter(fsys, cfg.Include, cfg.Exclude)
	if err != nil {
		return nil, err
	}

	var assets []Asset
	err = fs.WalkDir(fsys, ".", func(rel string, d fs.DirEntry, err error) error {
		switch {
		case err != nil:
			if d != nil && d.IsDir() && rel != "." {
				return fs.SkipDir
			}
			return nil
		case rel == ".":
			return nil
		case d.IsDir():
			if filter.SkipDir(rel) {
				return fs.SkipDir
			}
			return nil
		case !d.Type().IsRegular() || !filter.Keep(rel):
			return nil
		}

		info, err := d.Info()
		if err != nil || info.Size() > maxSize {
			return nil
		}
		sum, err := hashFS(fsys, rel)
		if err != nil {
			return nil
		}
		assets = append(assets, Asset{
			Path: filepath.Join(root, filepath.FromSlash(rel)),
			Rel:  rel,
			Size: info.Size(),
			Kind: DetectKind(rel),
			Hash: sum,
		})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walker: %w", err)
	}
	return assets, nil
}

// CopyTo writes a under dst at its relative path.
func (a Asset) CopyTo(dst string) error {
	out := filepath.Join(dst, filepath.FromSlash(a.Rel))
	if err := os.MkdirAll(filepath.Dir(out), 0o755); err != nil {
		return err
	}
	src, err := os.Open(a.Path)
	if err != nil {
		return err
	}
	defer src.Close()

	w, err := os.Create(out)
	if err != nil {
		return err
	}
	if _, err := io.Copy(w, src); err != nil {
		w.Close()
		return fmt.Errorf("copying %s: %w", a.Rel, err)
	}
	return w.Close()
}

func hashFS(fsys fs.FS, rel string) (string, error) {
	f, err := fsys.Open(rel)
	if err != nil {
		return "", err
	}
	defer f.Close()

	h := sha256.New()
	if _, err := io.Copy(h, f); err != nil {
		return "", err
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}
