package config

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

var (
	requiredRule  = validation.Required.Error("is required")
	pathPrefixRe  = regexp.MustCompile(`^/([^/\s]+/)*$`)
	absoluteURLRe = regexp.MustCompile(`^https?://[^/\s]+`)
)

func check(v *ValidationErrors, path string, value any, rules ...validation.Rule) bool {
	if err := validation.Validate(value, rules...); err != nil {
		v.Add(path, value, err.Error())
		return false
	}
	return true
}

func oneOf[T comparable](allowed []T) validation.Rule {
	elements := make([]interface{}, len(allowed))
	names := make([]string, len(allowed))
	for i, a := range allowed {
		elements[i] = a
		names[i] = fmt.Sprint(a)
	}
	return validation.In(elements...).Error("must be one of " + strings.Join(names, ", "))
}

// Validate checks every structural rule and returns *ValidationErrors listing
// all violations, or nil.
func (c *SiteConfig) Validate() error {
	var verr ValidationErrors

	c.SiteMeta.validate(&verr)
	c.Markdown.validate(&verr, "markdown")
	validateHead(&verr, "head", c.Head)
	c.Theme.validate(&verr, "themeConfig", c.BasePath)

	if verr.HasErrors() {
		return &verr
	}
	return nil
}

func (m *SiteMeta) validate(v *ValidationErrors) {
	check(v, "title", m.Title, requiredRule)
	check(v, "basePath", m.BasePath,
		requiredRule,
		validation.Match(pathPrefixRe).Error("must start and end with '/'"),
	)
}

func (m *MarkdownOptions) validate(v *ValidationErrors, path string) {
	known := oneOf(KnownSyntaxThemes)
	check(v, fieldPath(path, "theme.dark"), m.Theme.Dark, requiredRule, known)
	check(v, fieldPath(path, "theme.light"), m.Theme.Light, requiredRule, known)
}

func validateHead(v *ValidationErrors, path string, head []HeadTag) {
	preconnected := make(map[string]int)
	for i, tag := range head {
		p := indexPath(path, i)
		switch tag.Kind {
		case HeadLink:
			check(v, fieldPath(p, "rel"), tag.Rel(), requiredRule)
			check(v, fieldPath(p, "href"), tag.Href(), requiredRule)
			host := tag.Host()
			switch tag.Rel() {
			case "preconnect", "dns-prefetch":
				if host == "" {
					v.Add(fieldPath(p, "href"), tag.Href(), "preconnect hint must name an absolute URL")
				} else if _, ok := preconnected[host]; !ok {
					preconnected[host] = i
				}
			}
		case HeadMeta:
			check(v, fieldPath(p, "content"), tag.Attrs["content"], requiredRule)
			if tag.Attrs["name"] == "" && tag.Attrs["property"] == "" && tag.Attrs["http-equiv"] == "" {
				v.Add(p, tag.Attrs, "meta tag needs a name, property or http-equiv attribute")
			}
		default:
			v.Add(fieldPath(p, "kind"), tag.Kind, fmt.Sprintf("must be one of %s, %s", HeadLink, HeadMeta))
		}
	}

	// A stylesheet must never load before the preconnect hint for its host.
	for i, tag := range head {
		if tag.Kind != HeadLink || tag.Rel() != "stylesheet" {
			continue
		}
		first, ok := preconnected[tag.Host()]
		if !ok || first < i {
			continue
		}
		v.Add(indexPath(path, first), head[first].Href(),
			fmt.Sprintf("preconnect for %s must precede the stylesheet at %s", tag.Host(), indexPath(path, i)))
	}
}

func (t *ThemeConfig) validate(v *ValidationErrors, path, base string) {
	if t.Logo != "" {
		validateLink(v, fieldPath(path, "logo"), base, t.Logo)
	}
	validateNav(v, fieldPath(path, "nav"), base, t.Nav)
	validateSidebar(v, fieldPath(path, "sidebar"), base, t.Sidebar)

	for i, s := range t.SocialLinks {
		p := indexPath(fieldPath(path, "socialLinks"), i)
		check(v, fieldPath(p, "icon"), s.Icon, requiredRule, oneOf(KnownSocialIcons))
		check(v, fieldPath(p, "link"), s.Link, requiredRule,
			validation.Match(absoluteURLRe).Error("must be an absolute http(s) URL"))
	}

	t.Search.validate(v, fieldPath(path, "search"))

	if t.EditLink != nil {
		p := fieldPath(path, "editLink.pattern")
		if check(v, p, t.EditLink.Pattern, requiredRule) && !strings.Contains(t.EditLink.Pattern, ":path") {
			v.Add(p, t.EditLink.Pattern, "must contain the :path placeholder")
		}
	}
}

func (s *SearchConfig) validate(v *ValidationErrors, path string) {
	if !check(v, fieldPath(path, "provider"), s.Provider, requiredRule, oneOf(KnownSearchProviders)) {
		return
	}
	if s.Provider != SearchAlgolia {
		if s.Algolia != nil {
			v.Add(fieldPath(path, "options"), s.Algolia, "options are only used by the algolia provider")
		}
		return
	}
	if s.Algolia == nil {
		v.Add(fieldPath(path, "options"), nil, "algolia provider requires appId, apiKey and indexName")
		return
	}
	check(v, fieldPath(path, "options.appId"), s.Algolia.AppID, requiredRule)
	check(v, fieldPath(path, "options.apiKey"), s.Algolia.APIKey, requiredRule)
	check(v, fieldPath(path, "options.indexName"), s.Algolia.IndexName, requiredRule)
}

func validateNav(v *ValidationErrors, path, base string, items []NavItem) {
	for i, item := range items {
		validateNavItem(v, indexPath(path, i), base, item)
	}
}

func validateNavItem(v *ValidationErrors, path, base string, item NavItem) {
	check(v, fieldPath(path, "text"), item.Text, requiredRule)
	switch {
	case item.Link != "" && item.Items != nil:
		v.Add(path, item.Text, "nav item must carry either a link or items, not both")
	case item.Link == "" && item.Items == nil:
		v.Add(path, item.Text, "nav item must carry a link or items")
	case item.Items != nil && len(item.Items) == 0:
		v.Add(fieldPath(path, "items"), item.Text, "nav group must not be empty")
	case item.Link != "":
		validateLink(v, fieldPath(path, "link"), base, item.Link)
	}
	if item.ActiveMatch != "" {
		if _, err := regexp.Compile(item.ActiveMatch); err != nil {
			v.Add(fieldPath(path, "activeMatch"), item.ActiveMatch, err.Error())
		}
	}
	validateNav(v, fieldPath(path, "items"), base, item.Items)
}

func validateSidebar(v *ValidationErrors, path, base string, sidebar SidebarMap) {
	for _, prefix := range sidebar.Prefixes() {
		p := keyPath(path, prefix)
		if !pathPrefixRe.MatchString(prefix) {
			reason := fmt.Sprintf("sidebar prefix '%s' must start and end with '/'", prefix)
			if strings.HasPrefix(prefix, "/") {
				reason = fmt.Sprintf("sidebar prefix '%s' not terminated with trailing slash", prefix)
			}
			v.Add(p, prefix, reason)
		}
		sections := sidebar[prefix]
		if len(sections) == 0 {
			v.Add(p, prefix, "sidebar must declare at least one section")
		}
		for i, section := range sections {
			sp := indexPath(p, i)
			check(v, fieldPath(sp, "text"), section.Text, requiredRule)
			if len(section.Items) == 0 {
				v.Add(fieldPath(sp, "items"), section.Text, "sidebar section must not be empty")
			}
			validateNav(v, fieldPath(sp, "items"), base, section.Items)
		}
	}
}

// validateLink checks a nav, sidebar or logo link. Root-relative links are
// written from the site root; the generator prepends base itself.
func validateLink(v *ValidationErrors, path, base, link string) {
	switch {
	case IsRootRelative(link):
		if hasDotSegment(link) {
			v.Add(path, link, "root-relative link must not contain '.' or '..' segments")
		}
		if carriesBase(base, link) {
			v.Add(path, link, fmt.Sprintf("link must not repeat the base path '%s'; write it relative to the site root", base))
		}
	case IsExternal(link):
		u, err := url.Parse(link)
		if err != nil {
			v.Add(path, link, err.Error())
			return
		}
		switch u.Scheme {
		case "http", "https":
			if u.Host == "" {
				v.Add(path, link, "external link must name a host")
			}
		case "mailto":
		default:
			v.Add(path, link, fmt.Sprintf("unsupported link scheme %q", u.Scheme))
		}
	default:
		v.Add(path, link, "link must be root-relative ('/guide/') or an absolute URL")
	}
}

// carriesBase reports whether link already starts with base, which would make
// the generator apply it twice.
func carriesBase(base, link string) bool {
	if base == "" || base == "/" {
		return false
	}
	return strings.HasPrefix(link, base) || link == strings.TrimSuffix(base, "/")
}
