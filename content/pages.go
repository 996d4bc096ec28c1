package content

import (
	"bytes"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"

	"github.com/adrg/frontmatter"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
)

type Page struct {
	Source      string
	Route       string
	Title       string
	Description string
	Links       []string
}

type pageMeta struct {
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
}

// Scan walks dir for Markdown pages. Hidden directories (such as the
// generator's own .vitepress) and node_modules are skipped.
func Scan(dir string) ([]Page, error) {
	var pages []Page
	err := filepath.WalkDir(dir, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			name := d.Name()
			if p != dir && (strings.HasPrefix(name, ".") || name == "node_modules") {
				return filepath.SkipDir
			}
			return nil
		}
		if !strings.EqualFold(filepath.Ext(p), ".md") {
			return nil
		}

		rel, err := filepath.Rel(dir, p)
		if err != nil {
			return errors.WithStack(err)
		}
		page, err := parsePage(p, filepath.ToSlash(rel))
		if err != nil {
			return err
		}
		pages = append(pages, page)
		return nil
	})
	if err != nil {
		return nil, errors.Wrapf(err, "error scanning content in %s", dir)
	}

	sort.Slice(pages, func(i, j int) bool { return pages[i].Route < pages[j].Route })
	log.Logger.Debug().Str("dir", dir).Int("pages", len(pages)).Msg("content scanned")
	return pages, nil
}

func parsePage(filename, rel string) (Page, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return Page{}, errors.WithStack(err)
	}

	var meta pageMeta
	body, err := frontmatter.Parse(bytes.NewReader(data), &meta)
	if err != nil {
		log.Logger.Warn().Str("page", rel).Err(err).Msg("could not parse front matter, treating as plain markdown")
		body = data
	}

	route := RouteFor(rel)
	return Page{
		Source:      rel,
		Route:       route,
		Title:       meta.Title,
		Description: meta.Description,
		Links:       ExtractLinks(route, body),
	}, nil
}

// RouteFor maps a content path relative to the content root onto the route
// the generator serves it at: guide/index.md is /guide/, guide/setup.md is
// /guide/setup.
func RouteFor(rel string) string {
	rel = strings.TrimSuffix(filepath.ToSlash(rel), path.Ext(rel))
	if rel == "index" {
		return "/"
	}
	if strings.HasSuffix(rel, "/index") {
		return "/" + strings.TrimSuffix(rel, "index")
	}
	return "/" + rel
}

// Routes returns every page route and every internal link found in pages.
func Routes(pages []Page) []string {
	seen := make(map[string]bool)
	var out []string
	add := func(s string) {
		if !seen[s] {
			seen[s] = true
			out = append(out, s)
		}
	}
	for _, p := range pages {
		add(p.Route)
		for _, l := range p.Links {
			add(l)
		}
	}
	return out
}
