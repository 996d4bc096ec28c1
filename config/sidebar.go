package config

import (
	"fmt"
	"reflect"
	"sort"
	"strings"
)

// SidebarSection is one titled group of sidebar links. A nil Collapsed means
// the section cannot be folded; false means foldable and open.
type SidebarSection struct {
	Text      string    `json:"text" yaml:"text" msgpack:"text"`
	Collapsed *bool     `json:"collapsed,omitempty" yaml:"collapsed,omitempty" msgpack:"collapsed"`
	Items     []NavItem `json:"items" yaml:"items" msgpack:"items"`
}

// SidebarMap selects the sidebar tree for a page by URL path prefix.
type SidebarMap map[string][]SidebarSection

type SidebarEntry struct {
	Prefix   string
	Sections []SidebarSection
}

func Sidebar(prefix string, sections ...SidebarSection) SidebarEntry {
	return SidebarEntry{Prefix: prefix, Sections: sections}
}

func Section(text string, items ...NavItem) SidebarSection {
	return SidebarSection{Text: text, Items: items}
}

// Collapsible makes the section foldable, initially folded when collapsed.
func (s SidebarSection) Collapsible(collapsed bool) SidebarSection {
	s.Collapsed = &collapsed
	return s
}

// NewSidebarMap builds a map from entries. Repeating a prefix is accepted only
// when both entries declare identical sections.
func NewSidebarMap(entries ...SidebarEntry) (SidebarMap, error) {
	m := make(SidebarMap, len(entries))
	for _, e := range entries {
		if existing, ok := m[e.Prefix]; ok {
			if !reflect.DeepEqual(existing, e.Sections) {
				return nil, &ValidationError{
					Path:   keyPath("themeConfig.sidebar", e.Prefix),
					Reason: fmt.Sprintf("sidebar prefix '%s' declared twice with conflicting sections", e.Prefix),
				}
			}
			continue
		}
		m[e.Prefix] = e.Sections
	}
	return m, nil
}

// Prefixes returns the map keys in lexical order.
func (m SidebarMap) Prefixes() []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Match returns the longest prefix that selects pagePath. A page path equal to
// a prefix without its trailing slash ("/guide" for "/guide/") also matches.
func (m SidebarMap) Match(pagePath string) (string, bool) {
	if !strings.HasPrefix(pagePath, "/") {
		pagePath = "/" + pagePath
	}
	best := ""
	for prefix := range m {
		if !strings.HasPrefix(pagePath, prefix) && pagePath+"/" != prefix {
			continue
		}
		if len(prefix) > len(best) {
			best = prefix
		}
	}
	return best, best != ""
}

// Resolve returns the sidebar sections shown on pagePath.
func (m SidebarMap) Resolve(pagePath string) (string, []SidebarSection, bool) {
	prefix, ok := m.Match(pagePath)
	if !ok {
		return "", nil, false
	}
	return prefix, m[prefix], true
}

func (m SidebarMap) clone() SidebarMap {
	if len(m) == 0 {
		return nil
	}
	out := make(SidebarMap, len(m))
	for prefix, sections := range m {
		cp := make([]SidebarSection, len(sections))
		for i, s := range sections {
			cp[i] = SidebarSection{Text: s.Text, Items: cloneNavItems(s.Items)}
			if s.Collapsed != nil {
				c := *s.Collapsed
				cp[i].Collapsed = &c
			}
		}
		out[prefix] = cp
	}
	return out
}
