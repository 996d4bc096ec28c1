package config

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"
)

type Severity string

const (
	SeverityWarning Severity = "warning"
	SeverityError   Severity = "error"
)

// Finding is a configuration smell: something legal that is probably a
// mistake.
type Finding struct {
	Severity Severity `json:"severity"`
	Path     string   `json:"path"`
	Message  string   `json:"message"`
}

func (f Finding) String() string {
	return fmt.Sprintf("%s %s: %s", f.Severity, f.Path, f.Message)
}

// Audit reports sidebar prefixes that no nav or content link falls under, and
// sidebar links that are also selected by a longer prefix. A sidebar's own
// items do not count as references to it. contentLinks are root-relative
// routes and links found in the pages.
func (c *SiteConfig) Audit(contentLinks []string) []Finding {
	var referenced []string
	for _, ref := range collectNavLinks(nil, "themeConfig.nav", c.Theme.Nav) {
		if IsRootRelative(ref.Link) {
			referenced = append(referenced, ref.Link)
		}
	}
	referenced = append(referenced, contentLinks...)

	var findings []Finding
	for _, prefix := range c.Theme.Sidebar.Prefixes() {
		used := false
		for _, link := range referenced {
			if strings.HasPrefix(link, prefix) || link+"/" == prefix {
				used = true
				break
			}
		}
		if !used {
			findings = append(findings, Finding{
				Severity: SeverityWarning,
				Path:     keyPath("themeConfig.sidebar", prefix),
				Message:  fmt.Sprintf("sidebar prefix '%s' is not referenced by any page or link", prefix),
			})
		}
	}

	for _, prefix := range c.Theme.Sidebar.Prefixes() {
		sp := keyPath("themeConfig.sidebar", prefix)
		for i, section := range c.Theme.Sidebar[prefix] {
			for _, ref := range collectNavLinks(nil, fieldPath(indexPath(sp, i), "items"), section.Items) {
				if !IsRootRelative(ref.Link) {
					continue
				}
				if owner, ok := c.Theme.Sidebar.Match(ref.Link); ok && owner != prefix {
					findings = append(findings, Finding{
						Severity: SeverityWarning,
						Path:     ref.Path,
						Message:  fmt.Sprintf("page %s is listed under '%s' but shows the '%s' sidebar", ref.Link, prefix, owner),
					})
				}
			}
		}
	}

	for _, f := range findings {
		log.Logger.Warn().Str("config", f.Path).Msg(f.Message)
	}
	return findings
}
