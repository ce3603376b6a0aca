package walker

import (
	"fmt"
	"io/fs"
	"path"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// IgnoreFiles are read from the asset root, in order, when present. Both use
// .gitignore syntax.
var IgnoreFiles = []string{".gitignore", ".assetignore"}

// skippedDirs are never published: version control, package managers and
// tool caches.
var skippedDirs = map[string]bool{
	".git":         true,
	".hg":          true,
	".svn":         true,
	"node_modules": true,
	".productpage": true,
	".cache":       true,
	"__MACOSX":     true,
}

// junkFiles are working files that end up next to exported assets but are
// never served.
var junkFiles = []string{
	"Thumbs.db",
	"desktop.ini",
	"*.psd",
	"*.sketch",
	"*.fig",
	"*.xcf",
	"*.map",
	"*~",
}

// Filter decides which paths under an asset root are published. Paths are
// relative to the root and slash separated.
type Filter struct {
	include []string
	exclude []string
	rules   []ignoreRule
}

// NewFilter validates the include and exclude globs and loads the ignore
// files at the top of fsys.
func NewFilter(fsys fs.FS, include, exclude []string) (*Filter, error) {
	for _, g := range append(append([]string{}, include...), exclude...) {
		if !doublestar.ValidatePattern(g) {
			return nil, fmt.Errorf("walker: bad pattern %q", g)
		}
	}
	f := &Filter{include: include, exclude: exclude}
	for _, name := range IgnoreFiles {
		data, err := fs.ReadFile(fsys, name)
		if err != nil {
			continue
		}
		f.rules = append(f.rules, parseIgnore(string(data))...)
	}
	return f, nil
}

// SkipDir reports whether the directory at rel should not be entered.
// .well-known is the one hidden directory a site serves.
func (f *Filter) SkipDir(rel string) bool {
	name := path.Base(rel)
	if skippedDirs[name] {
		return true
	}
	if strings.HasPrefix(name, ".") && name != ".well-known" {
		return true
	}
	return f.ignored(rel, true)
}

// Keep reports whether the file at rel is published.
func (f *Filter) Keep(rel string) bool {
	name := path.Base(rel)
	if strings.HasPrefix(name, ".") || isJunk(name) {
		return false
	}
	if f.ignored(rel, false) {
		return false
	}
	return MatchesInclude(rel, f.include) && !MatchesExclude(rel, f.exclude)
}

// MatchesInclude reports whether rel passes the include globs. An empty
// list lets everything through.
func MatchesInclude(rel string, globs []string) bool {
	return len(globs) == 0 || matchAny(globs, rel)
}

// MatchesExclude reports whether rel is removed by the exclude globs.
func MatchesExclude(rel string, globs []string) bool {
	return matchAny(globs, rel)
}

func (f *Filter) ignored(rel string, dir bool) bool {
	// The last matching rule decides, so "!keep.png" can undo "*.png".
	ignored := false
	for _, r := range f.rules {
		if r.match(rel, dir) {
			ignored = !r.negate
		}
	}
	return ignored
}

func isJunk(name string) bool {
	for _, g := range junkFiles {
		if ok, _ := doublestar.Match(g, name); ok {
			return true
		}
	}
	return false
}

// matchAny applies globs the way asset config is written: a glob without a
// slash names a file anywhere in the tree, one with a slash is a path from
// the root.
func matchAny(globs []string, rel string) bool {
	name := path.Base(rel)
	for _, g := range globs {
		target := rel
		if !strings.Contains(g, "/") {
			target = name
		}
		if ok, _ := doublestar.Match(strings.TrimPrefix(g, "/"), target); ok {
			return true
		}
	}
	return false
}

// ignoreRule is one line of an ignore file.
type ignoreRule struct {
	glob     string
	negate   bool
	dirOnly  bool
	anchored bool
}

func parseIgnore(data string) []ignoreRule {
	var rules []ignoreRule
	for _, line := range strings.Split(data, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || line[0] == '#' {
			continue
		}
		var r ignoreRule
		if line[0] == '!' {
			r.negate = true
			line = line[1:]
		}
		if strings.HasSuffix(line, "/") {
			r.dirOnly = true
			line = strings.TrimRight(line, "/")
		}
		if strings.Contains(line, "/") {
			r.anchored = true
			line = strings.TrimPrefix(line, "/")
		}
		if line == "" {
			continue
		}
		r.glob = line
		rules = append(rules, r)
	}
	return rules
}

// match tests rel and each of its parent directories against the rule. A
// file is never matched by a directory-only rule on its own name.
func (r ignoreRule) match(rel string, dir bool) bool {
	parts := strings.Split(rel, "/")
	n := len(parts)
	if r.dirOnly && !dir {
		n--
	}
	for i := 0; i < n; i++ {
		target := parts[i]
		if r.anchored {
			target = strings.Join(parts[:i+1], "/")
		}
		if ok, _ := doublestar.Match(r.glob, target); ok {
			return true
		}
	}
	return false
}
