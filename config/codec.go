package config

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"github.com/vmihailenco/msgpack/v5"
	"gopkg.in/yaml.v2"
)

func EncodeYAML(cfg *SiteConfig) ([]byte, error) {
	out, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	return out, nil
}

// DecodeYAML parses a snapshot strictly: unknown fields and duplicate keys,
// including duplicate sidebar prefixes, are rejected.
func DecodeYAML(data []byte) (*SiteConfig, error) {
	var cfg SiteConfig
	if err := yaml.UnmarshalStrict(data, &cfg); err != nil {
		return nil, errors.Wrap(err, "error parsing site config")
	}
	return &cfg, nil
}

func EncodeJSON(cfg *SiteConfig) ([]byte, error) {
	out, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return nil, errors.WithStack(err)
	}
	return out, nil
}

func DecodeJSON(data []byte) (*SiteConfig, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	var cfg SiteConfig
	if err := dec.Decode(&cfg); err != nil {
		return nil, errors.Wrap(err, "error parsing site config")
	}
	return &cfg, nil
}

// EncodeSnapshot is the compact form kept in the build cache.
func EncodeSnapshot(cfg *SiteConfig) ([]byte, error) {
	out, err := msgpack.Marshal(cfg)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	return out, nil
}

func DecodeSnapshot(data []byte) (*SiteConfig, error) {
	var cfg SiteConfig
	if err := msgpack.Unmarshal(data, &cfg); err != nil {
		return nil, errors.Wrap(err, "error decoding site config snapshot")
	}
	return &cfg, nil
}

// Load reads a YAML snapshot and validates it.
func Load(filename string) (*SiteConfig, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	cfg, err := DecodeYAML(data)
	if err != nil {
		return nil, errors.Wrap(err, filename)
	}
	return New(*cfg)
}

func Save(filename string, cfg *SiteConfig) error {
	data, err := EncodeYAML(cfg)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(filename), os.ModePerm); err != nil {
		return errors.WithStack(err)
	}
	return errors.WithStack(os.WriteFile(filename, data, 0644))
}
