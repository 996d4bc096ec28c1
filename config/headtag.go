package config

import (
	"encoding/json"
	"fmt"
	"net"
	"net/url"
	"sort"
	"strings"

	"github.com/pkg/errors"
)

type HeadTagKind string

const (
	HeadLink HeadTagKind = "link"
	HeadMeta HeadTagKind = "meta"
)

// HeadTag is one element injected verbatim into the document head. It is
// written in the generator's tuple form: [kind, {attrs}].
type HeadTag struct {
	Kind  HeadTagKind       `msgpack:"kind"`
	Attrs map[string]string `msgpack:"attrs"`
}

func Link(attrs map[string]string) HeadTag {
	return HeadTag{Kind: HeadLink, Attrs: attrs}
}

func Meta(attrs map[string]string) HeadTag {
	return HeadTag{Kind: HeadMeta, Attrs: attrs}
}

func Preconnect(href string, crossOrigin bool) HeadTag {
	attrs := map[string]string{"rel": "preconnect", "href": href}
	if crossOrigin {
		attrs["crossorigin"] = "anonymous"
	}
	return Link(attrs)
}

func Stylesheet(href string) HeadTag {
	return Link(map[string]string{"rel": "stylesheet", "href": href})
}

func Icon(href, typ string) HeadTag {
	return Link(map[string]string{"rel": "icon", "href": href, "type": typ})
}

func OpenGraph(property, content string) HeadTag {
	return Meta(map[string]string{"property": property, "content": content})
}

func NamedMeta(name, content string) HeadTag {
	return Meta(map[string]string{"name": name, "content": content})
}

func (h HeadTag) Rel() string {
	return h.Attrs["rel"]
}

func (h HeadTag) Href() string {
	return h.Attrs["href"]
}

// Host returns the lower-cased host of an absolute href, with the scheme's
// default port dropped, or "" for relative hrefs and non-link tags.
func (h HeadTag) Host() string {
	if h.Kind != HeadLink {
		return ""
	}
	u, err := url.Parse(h.Href())
	if err != nil || !u.IsAbs() {
		return ""
	}
	host := strings.ToLower(u.Hostname())
	switch port := u.Port(); {
	case port == "":
	case u.Scheme == "https" && port == "443", u.Scheme == "http" && port == "80":
	default:
		host = net.JoinHostPort(host, port)
	}
	return host
}

// SortedAttrKeys is used by templates that need a stable attribute order.
func (h HeadTag) SortedAttrKeys() []string {
	keys := make([]string, 0, len(h.Attrs))
	for k := range h.Attrs {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func (h HeadTag) clone() HeadTag {
	if h.Attrs == nil {
		return h
	}
	attrs := make(map[string]string, len(h.Attrs))
	for k, v := range h.Attrs {
		attrs[k] = v
	}
	return HeadTag{Kind: h.Kind, Attrs: attrs}
}

func (h HeadTag) MarshalYAML() (interface{}, error) {
	return []interface{}{string(h.Kind), h.Attrs}, nil
}

func (h *HeadTag) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var raw []interface{}
	if err := unmarshal(&raw); err != nil {
		return errors.Wrap(err, "head tag must be a [kind, attributes] pair")
	}
	if len(raw) != 2 {
		return fmt.Errorf("head tag must have 2 elements, got %d", len(raw))
	}
	kind, ok := raw[0].(string)
	if !ok {
		return fmt.Errorf("head tag kind must be a string, got %T", raw[0])
	}
	if raw[1] == nil {
		h.Kind = HeadTagKind(kind)
		h.Attrs = nil
		return nil
	}
	rawAttrs, ok := raw[1].(map[interface{}]interface{})
	if !ok {
		return fmt.Errorf("head tag attributes must be a mapping, got %T", raw[1])
	}
	attrs := make(map[string]string, len(rawAttrs))
	for k, v := range rawAttrs {
		key, ok := k.(string)
		if !ok {
			return fmt.Errorf("head tag attribute name must be a string, got %T", k)
		}
		val, ok := v.(string)
		if !ok {
			return fmt.Errorf("head tag attribute %q must be a string, got %T", key, v)
		}
		attrs[key] = val
	}
	h.Kind = HeadTagKind(kind)
	h.Attrs = attrs
	return nil
}

func (h HeadTag) MarshalJSON() ([]byte, error) {
	return json.Marshal([]interface{}{string(h.Kind), h.Attrs})
}

func (h *HeadTag) UnmarshalJSON(data []byte) error {
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return errors.Wrap(err, "head tag must be a [kind, attributes] pair")
	}
	if len(raw) != 2 {
		return fmt.Errorf("head tag must have 2 elements, got %d", len(raw))
	}
	var kind string
	if err := json.Unmarshal(raw[0], &kind); err != nil {
		return errors.Wrap(err, "head tag kind")
	}
	var attrs map[string]string
	if err := json.Unmarshal(raw[1], &attrs); err != nil {
		return errors.Wrap(err, "head tag attributes")
	}
	h.Kind = HeadTagKind(kind)
	h.Attrs = attrs
	return nil
}
