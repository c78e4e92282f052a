package netplan

import (
	"fmt"
	"sort"
	"strings"

	e "github.com/storpool/netplan-go/errors"
	"github.com/storpool/netplan-go/types"
)

// NetPlan is the merged view over all parsed configuration sources: a flat
// map of interface name to interface configuration, plus the version and
// renderer metadata found under the `network` root. A NetPlan is not
// modified after the parser returns it.
type NetPlan struct {
	Version    int
	Renderer   string
	Interfaces map[string]*types.InterfaceConfig

	physical map[types.Section]struct{}
	// referrers maps an interface name to the names of the interfaces whose
	// member list or link attribute points at it
	referrers map[string][]string
}

func newNetPlan(physical []types.Section) *NetPlan {
	np := &NetPlan{
		Interfaces: map[string]*types.InterfaceConfig{},
		physical:   make(map[types.Section]struct{}, len(physical)),
	}
	for _, s := range physical {
		np.physical[s] = struct{}{}
	}
	return np
}

// buildReferrers indexes reverse references once so that relation queries do
// not rescan the whole model.
func (np *NetPlan) buildReferrers() {
	np.referrers = make(map[string][]string, len(np.Interfaces))
	for name, cfg := range np.Interfaces {
		for _, ref := range cfg.References() {
			np.referrers[ref] = append(np.referrers[ref], name)
		}
	}
}

// subset returns a new NetPlan over the given names, sharing the interface
// configurations and the physical section set with np.
func (np *NetPlan) subset(names map[string]struct{}) *NetPlan {
	sub := &NetPlan{
		Version:    np.Version,
		Renderer:   np.Renderer,
		Interfaces: make(map[string]*types.InterfaceConfig, len(names)),
		physical:   np.physical,
	}
	for name := range names {
		if cfg, ok := np.Interfaces[name]; ok {
			sub.Interfaces[name] = cfg
		}
	}
	sub.buildReferrers()
	return sub
}

// GetInterface returns the configuration of a single interface.
func (np *NetPlan) GetInterface(name string) (*types.InterfaceConfig, error) {
	cfg, ok := np.Interfaces[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", e.ErrInterfaceNotFound, name)
	}
	return cfg, nil
}

// Select returns a NetPlan restricted to exactly the named interfaces, with
// no relation traversal. All names must exist. An empty name list selects
// the whole model.
func (np *NetPlan) Select(names ...string) (*NetPlan, error) {
	selected := make(map[string]struct{}, len(np.Interfaces))
	if len(names) == 0 {
		for name := range np.Interfaces {
			selected[name] = struct{}{}
		}
		return np.subset(selected), nil
	}
	if err := np.checkExists(names); err != nil {
		return nil, err
	}
	for _, name := range names {
		selected[name] = struct{}{}
	}
	return np.subset(selected), nil
}

// Names returns the interface names sorted alphabetically.
func (np *NetPlan) Names() []string {
	names := make([]string, 0, len(np.Interfaces))
	for name := range np.Interfaces {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// BySection groups the interface names by section, sorted within each group.
func (np *NetPlan) BySection() map[types.Section][]string {
	groups := map[types.Section][]string{}
	for name, cfg := range np.Interfaces {
		groups[cfg.Section] = append(groups[cfg.Section], name)
	}
	for _, names := range groups {
		sort.Strings(names)
	}
	return groups
}

// IsPhysical reports whether cfg belongs to one of the sections configured
// as physical.
func (np *NetPlan) IsPhysical(cfg *types.InterfaceConfig) bool {
	if cfg == nil {
		return false
	}
	_, ok := np.physical[cfg.Section]
	return ok
}

// PhysicalSections returns the sections configured as physical, sorted.
func (np *NetPlan) PhysicalSections() []types.Section {
	sections := make([]types.Section, 0, len(np.physical))
	for s := range np.physical {
		sections = append(sections, s)
	}
	sort.Slice(sections, func(i, j int) bool { return sections[i] < sections[j] })
	return sections
}

func (np *NetPlan) String() string {
	groups := np.BySection()
	sections := make([]string, 0, len(groups))
	for s := range groups {
		sections = append(sections, string(s))
	}
	sort.Strings(sections)
	parts := make([]string, 0, len(sections))
	for _, s := range sections {
		parts = append(parts, fmt.Sprintf("%s: %s", s, strings.Join(groups[types.Section(s)], ", ")))
	}
	return strings.Join(parts, "; ")
}
