package config

// NavItem is either a leaf carrying a Link or a group carrying Items.
type NavItem struct {
	Text        string    `json:"text" yaml:"text" msgpack:"text"`
	Link        string    `json:"link,omitempty" yaml:"link,omitempty" msgpack:"link"`
	Items       []NavItem `json:"items,omitempty" yaml:"items,omitempty" msgpack:"items"`
	ActiveMatch string    `json:"activeMatch,omitempty" yaml:"activeMatch,omitempty" msgpack:"activeMatch"`
}

func NavLink(text, link string) NavItem {
	return NavItem{Text: text, Link: link}
}

func NavGroup(text string, items ...NavItem) NavItem {
	return NavItem{Text: text, Items: items}
}

func (n NavItem) IsGroup() bool {
	return len(n.Items) > 0
}

func (n NavItem) clone() NavItem {
	out := n
	out.Items = cloneNavItems(n.Items)
	return out
}

func cloneNavItems(items []NavItem) []NavItem {
	if items == nil {
		return nil
	}
	out := make([]NavItem, len(items))
	for i, item := range items {
		out[i] = item.clone()
	}
	return out
}
