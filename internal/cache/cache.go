// Package cache locates pages in an extracted tldr page archive laid out as
// <dir>/pages[.<lang>]/<platform>/<name>.md.
package cache

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"slices"
	"sort"
	"strings"
)

// CommonPlatform holds pages that apply to every platform.
const CommonPlatform = "common"

// ErrPageNotFound is returned when no language has the requested page.
var ErrPageNotFound = errors.New("page not found")

// Cache is a page archive on disk.
type Cache struct {
	Dir string
	// Languages in order of preference; English is always tried last.
	Languages []string
}

// New returns a Cache rooted at dir.
func New(dir string, languages []string) *Cache {
	return &Cache{Dir: dir, Languages: languages}
}

// PageFileName normalizes a page name given as one or more words:
// "git", "checkout" becomes "git-checkout.md".
func PageFileName(words ...string) string {
	name := strings.ToLower(strings.Join(words, "-"))
	name = strings.ReplaceAll(name, " ", "-")
	return name + ".md"
}

// CurrentPlatform maps the running OS to a page platform directory.
func CurrentPlatform() string {
	switch runtime.GOOS {
	case "darwin", "ios":
		return "osx"
	case "linux", "android":
		return "linux"
	case "windows":
		return "windows"
	case "freebsd", "openbsd", "netbsd":
		return runtime.GOOS
	case "solaris", "illumos":
		return "sunos"
	default:
		return CommonPlatform
	}
}

// Find returns every existing page file for name. Candidates of the first
// language that has any are ordered: platform, common, then the remaining
// platforms alphabetically.
func (c *Cache) Find(name, platform string) ([]string, error) {
	if _, err := os.Stat(c.Dir); err != nil {
		return nil, fmt.Errorf("page cache %s: %w", c.Dir, err)
	}
	if platform == "" {
		platform = CurrentPlatform()
	}
	file := PageFileName(name)
	for _, dir := range c.languageDirs() {
		platforms, err := c.platformsIn(dir)
		if err != nil {
			return nil, err
		}
		var found []string
		for _, p := range orderPlatforms(platforms, platform) {
			path := filepath.Join(c.Dir, dir, p, file)
			if fileExists(path) {
				found = append(found, path)
			}
		}
		if len(found) > 0 {
			return found, nil
		}
	}
	return nil, fmt.Errorf("%s: %w", strings.TrimSuffix(file, ".md"), ErrPageNotFound)
}

// Platforms lists the platform directories of the English pages.
func (c *Cache) Platforms() ([]string, error) {
	return c.platformsIn("pages")
}

// List returns the page names available for platform and common, sorted.
func (c *Cache) List(platform string) ([]string, error) {
	if platform == "" {
		platform = CurrentPlatform()
	}
	seen := make(map[string]struct{})
	for _, p := range []string{platform, CommonPlatform} {
		entries, err := os.ReadDir(filepath.Join(c.Dir, "pages", p))
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return nil, err
		}
		for _, e := range entries {
			if e.IsDir() || !strings.HasSuffix(e.Name(), ".md") {
				continue
			}
			seen[strings.TrimSuffix(e.Name(), ".md")] = struct{}{}
		}
	}
	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}

func (c *Cache) languageDirs() []string {
	dirs := make([]string, 0, len(c.Languages)+1)
	for _, lang := range c.Languages {
		if lang == "" || lang == "en" {
			continue
		}
		dirs = append(dirs, "pages."+lang)
	}
	return append(dirs, "pages")
}

func (c *Cache) platformsIn(dir string) ([]string, error) {
	entries, err := os.ReadDir(filepath.Join(c.Dir, dir))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}
	out := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() {
			out = append(out, e.Name())
		}
	}
	sort.Strings(out)
	return out, nil
}

func orderPlatforms(available []string, preferred string) []string {
	out := make([]string, 0, len(available))
	if slices.Contains(available, preferred) {
		out = append(out, preferred)
	}
	if preferred != CommonPlatform && slices.Contains(available, CommonPlatform) {
		out = append(out, CommonPlatform)
	}
	for _, p := range available {
		if p != preferred && p != CommonPlatform {
			out = append(out, p)
		}
	}
	return out
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
