package config

import (
	"github.com/rs/zerolog/log"
)

// New validates cfg and returns a private copy of it. The returned value is
// never modified by this package; callers must treat it as read-only.
func New(cfg SiteConfig) (*SiteConfig, error) {
	out := cfg.Clone()
	if err := out.Validate(); err != nil {
		return nil, err
	}
	log.Logger.Debug().
		Str("title", out.Title).
		Str("base", out.BasePath).
		Int("head", len(out.Head)).
		Int("sidebars", len(out.Theme.Sidebar)).
		Msg("site configuration validated")
	return out, nil
}

// Clone returns a deep copy. Empty head, nav, sidebar and social link
// collections come back nil so that every codec reproduces the copy exactly.
func (c *SiteConfig) Clone() *SiteConfig {
	out := *c
	out.Head = nil
	if len(c.Head) > 0 {
		out.Head = make([]HeadTag, len(c.Head))
		for i, tag := range c.Head {
			out.Head[i] = tag.clone()
		}
	}
	out.Theme.Nav = nil
	if len(c.Theme.Nav) > 0 {
		out.Theme.Nav = cloneNavItems(c.Theme.Nav)
	}
	out.Theme.Sidebar = c.Theme.Sidebar.clone()
	out.Theme.SocialLinks = nil
	if len(c.Theme.SocialLinks) > 0 {
		out.Theme.SocialLinks = append([]SocialLink(nil), c.Theme.SocialLinks...)
	}
	if c.Theme.Search.Algolia != nil {
		a := *c.Theme.Search.Algolia
		out.Theme.Search.Algolia = &a
	}
	if c.Theme.EditLink != nil {
		e := *c.Theme.EditLink
		out.Theme.EditLink = &e
	}
	if c.Theme.Footer != nil {
		f := *c.Theme.Footer
		out.Theme.Footer = &f
	}
	return &out
}

// SidebarFor returns the prefix and sections shown on pagePath.
func (c *SiteConfig) SidebarFor(pagePath string) (string, []SidebarSection, bool) {
	return c.Theme.Sidebar.Resolve(pagePath)
}

// Resolve applies the base path to a root-relative link.
func (c *SiteConfig) Resolve(link string) string {
	return ResolveLink(c.BasePath, link)
}
