package config

import (
	"net/url"
	"strings"
)

// LinkRef is a navigable link together with the field path it was declared at.
type LinkRef struct {
	Path string
	Link string
}

// IsExternal reports whether link carries its own scheme and is therefore
// left untouched by the base path.
func IsExternal(link string) bool {
	u, err := url.Parse(link)
	if err != nil {
		return false
	}
	return u.Scheme != ""
}

func IsRootRelative(link string) bool {
	return strings.HasPrefix(link, "/") && !strings.HasPrefix(link, "//")
}

// ResolveLink joins a root-relative link onto base the way the generator does.
// External and relative links are returned unchanged.
func ResolveLink(base, link string) string {
	if !IsRootRelative(link) {
		return link
	}
	if !strings.HasSuffix(base, "/") {
		base += "/"
	}
	return base + strings.TrimPrefix(link, "/")
}

func hasDotSegment(link string) bool {
	p := link
	if i := strings.IndexAny(p, "?#"); i >= 0 {
		p = p[:i]
	}
	for _, seg := range strings.Split(p, "/") {
		if seg == ".." || seg == "." {
			return true
		}
	}
	return false
}

// Links returns every link declared under nav and sidebar, in declaration
// order. Sidebar prefixes are walked in sorted order.
func (c *SiteConfig) Links() []LinkRef {
	var refs []LinkRef
	refs = collectNavLinks(refs, "themeConfig.nav", c.Theme.Nav)
	for _, prefix := range c.Theme.Sidebar.Prefixes() {
		sp := keyPath("themeConfig.sidebar", prefix)
		for i, section := range c.Theme.Sidebar[prefix] {
			refs = collectNavLinks(refs, fieldPath(indexPath(sp, i), "items"), section.Items)
		}
	}
	return refs
}

// InternalLinks returns the distinct root-relative links, in first-seen order.
func (c *SiteConfig) InternalLinks() []string {
	seen := make(map[string]bool)
	var out []string
	for _, ref := range c.Links() {
		if !IsRootRelative(ref.Link) || seen[ref.Link] {
			continue
		}
		seen[ref.Link] = true
		out = append(out, ref.Link)
	}
	return out
}

func collectNavLinks(refs []LinkRef, path string, items []NavItem) []LinkRef {
	for i, item := range items {
		p := indexPath(path, i)
		if item.Link != "" {
			refs = append(refs, LinkRef{Path: fieldPath(p, "link"), Link: item.Link})
		}
		refs = collectNavLinks(refs, fieldPath(p, "items"), item.Items)
	}
	return refs
}
