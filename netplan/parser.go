// Copyright 2024 StorPool
// Licensed under the Apache License 2.0.
// SPDX-License-Identifier: Apache-2.0

package netplan

import (
	"fmt"
	"path/filepath"
	"sort"

	"github.com/a8m/envsubst"
	log "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v2"

	e "github.com/storpool/netplan-go/errors"
	"github.com/storpool/netplan-go/types"
	"github.com/storpool/netplan-go/utils"
)

// DefaultConfigDirs are the directories netplan configuration is read from,
// in order of increasing precedence.
var DefaultConfigDirs = []string{"/lib/netplan", "/etc/netplan", "/run/netplan"}

// metadata keys under the `network` root that do not name sections
const (
	keyVersion  = "version"
	keyRenderer = "renderer"
)

// Source is a single configuration document already decoded by the YAML
// codec. Name identifies the source in error messages and in the exclude
// list; for file-based parsing it is the file's basename.
type Source struct {
	Name string
	Doc  interface{}
}

// Parser reads netplan-style YAML documents and merges them into a NetPlan.
type Parser struct {
	dirs      []string
	excludes  []string
	expandEnv bool
	physical  []types.Section
}

type Option func(p *Parser)

// WithConfigDirs overrides the default configuration directories.
func WithConfigDirs(dirs ...string) Option {
	return func(p *Parser) {
		if len(dirs) > 0 {
			p.dirs = dirs
		}
	}
}

// WithExcludes adds source names (file basenames) to skip during load.
func WithExcludes(names ...string) Option {
	return func(p *Parser) {
		p.excludes = append(p.excludes, names...)
	}
}

// WithEnvExpansion makes the parser expand ${VAR} references in file bodies
// before decoding them.
func WithEnvExpansion() Option {
	return func(p *Parser) {
		p.expandEnv = true
	}
}

// WithPhysicalSections overrides the set of sections whose interfaces count
// as physical. The default is ethernets only.
func WithPhysicalSections(sections ...types.Section) Option {
	return func(p *Parser) {
		if len(sections) > 0 {
			p.physical = sections
		}
	}
}

// NewParser returns a Parser configured with the default netplan directories
// and the ethernets section as physical.
func NewParser(opts ...Option) *Parser {
	p := &Parser{
		dirs:     DefaultConfigDirs,
		physical: []types.Section{types.SectionEthernets},
	}
	for _, o := range opts {
		o(p)
	}
	return p
}

// FindFiles returns the configuration files present in the configured
// directories. When the same basename occurs in more than one directory the
// file from the later directory shadows the earlier ones. Directories that
// do not exist are skipped. The result is sorted by basename.
func (p *Parser) FindFiles() ([]string, error) {
	byBase := map[string]string{}
	for _, dir := range p.dirs {
		if !utils.DirExists(dir) {
			log.Debugf("config dir %s does not exist, skipping", dir)
			continue
		}
		matches, err := filepath.Glob(filepath.Join(dir, "*.yaml"))
		if err != nil {
			return nil, fmt.Errorf("failed to glob %q: %v", dir, err)
		}
		for _, m := range matches {
			byBase[filepath.Base(m)] = m
		}
	}
	bases := make([]string, 0, len(byBase))
	for base := range byBase {
		bases = append(bases, base)
	}
	sort.Strings(bases)
	files := make([]string, 0, len(bases))
	for _, base := range bases {
		files = append(files, byBase[base])
	}
	return files, nil
}

// Parse discovers the configuration files and merges them into a NetPlan.
func (p *Parser) Parse() (*NetPlan, error) {
	files, err := p.FindFiles()
	if err != nil {
		return nil, err
	}
	return p.ParseFiles(files...)
}

// ParseFiles merges the given files in order into a NetPlan. Files whose
// basename is excluded are not read at all.
func (p *Parser) ParseFiles(paths ...string) (*NetPlan, error) {
	sources := make([]Source, 0, len(paths))
	for _, path := range paths {
		name := filepath.Base(path)
		if p.isExcluded(name) {
			log.Debugf("skipping excluded config file %s", path)
			continue
		}
		data, err := utils.ReadFileContent(path)
		if err != nil {
			return nil, err
		}
		if p.expandEnv {
			data, err = envsubst.Bytes(data)
			if err != nil {
				return nil, fmt.Errorf("failed to expand env vars in %s: %v", path, err)
			}
		}
		var doc interface{}
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %v", path, err)
		}
		sources = append(sources, Source{Name: name, Doc: doc})
	}
	return p.Load(sources...)
}

// Load merges already-decoded documents into a NetPlan. Sources apply in
// order: when two sources define the same interface name the later
// definition replaces the earlier one completely. Sources whose Name is in
// the exclude list are skipped. Any shape error fails the whole load; no
// partial model is returned.
func (p *Parser) Load(sources ...Source) (*NetPlan, error) {
	np := newNetPlan(p.physical)
	for _, src := range sources {
		if p.isExcluded(src.Name) {
			log.Debugf("skipping excluded config source %q", src.Name)
			continue
		}
		log.Debugf("loading config source %q", src.Name)
		if err := applySource(np, src); err != nil {
			return nil, err
		}
	}
	np.buildReferrers()
	return np, nil
}

func (p *Parser) isExcluded(name string) bool {
	for _, ex := range p.excludes {
		if ex == name {
			return true
		}
	}
	return false
}

// applySource walks one decoded document and merges its interface
// definitions into np.
func applySource(np *NetPlan, src Source) error {
	root, ok := asStringMap(src.Doc)
	if !ok {
		return malformed(src.Name, "document root is not a mapping")
	}
	netRaw, ok := root["network"]
	if !ok {
		return malformed(src.Name, "no network element")
	}
	network, ok := asStringMap(netRaw)
	if !ok {
		return malformed(src.Name, "the network element is not a mapping")
	}
	for _, key := range sortedKeys(network) {
		value := network[key]
		switch key {
		case keyVersion:
			if v, ok := value.(int); ok {
				np.Version = v
			}
			continue
		case keyRenderer:
			if r, ok := value.(string); ok {
				np.Renderer = r
			}
			continue
		}
		if err := applySection(np, src.Name, types.Section(key), value); err != nil {
			return err
		}
	}
	return nil
}

func applySection(np *NetPlan, source string, section types.Section, value interface{}) error {
	if value == nil {
		// a section with all of its interfaces commented out
		return nil
	}
	sdef, ok := asStringMap(value)
	if !ok {
		return malformed(source, fmt.Sprintf("section %q is not a mapping", section))
	}
	for _, name := range sortedKeys(sdef) {
		body := sdef[name]
		var attrs map[string]interface{}
		if body != nil {
			attrs, ok = asStringMap(body)
			if !ok {
				return malformed(source, fmt.Sprintf("interface %q in section %q is not a mapping", name, section))
			}
		}
		if prev, ok := np.Interfaces[name]; ok {
			log.Debugf("%s: interface %q replaces the earlier definition from section %q", source, name, prev.Section)
		}
		np.Interfaces[name] = types.NewInterfaceConfig(name, section, attrs)
	}
	return nil
}

func malformed(source, msg string) error {
	return fmt.Errorf("%w: %s: %s", e.ErrMalformedConfig, source, msg)
}

// asStringMap converts a decoded YAML mapping into a map keyed by string.
// yaml.v2 decodes mappings as map[interface{}]interface{}; the rare
// non-string key is stringified.
func asStringMap(v interface{}) (map[string]interface{}, bool) {
	raw, ok := v.(map[interface{}]interface{})
	if !ok {
		return nil, false
	}
	m := make(map[string]interface{}, len(raw))
	for k, val := range raw {
		ks, ok := k.(string)
		if !ok {
			ks = fmt.Sprintf("%v", k)
		}
		m[ks] = val
	}
	return m, true
}

func sortedKeys(m map[string]interface{}) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
