package types

import (
	log "github.com/sirupsen/logrus"
)

// Attribute keys with relational meaning. Everything else in an interface
// definition is carried through untouched.
const (
	AttrInterfaces = "interfaces"
	AttrLink       = "link"
)

// InterfaceConfig represents the configuration a single network interface
// has in the merged netplan documents
type InterfaceConfig struct {
	Name    string  `yaml:"name"`
	Section Section `yaml:"section"`
	// the interface definition body as decoded by the YAML codec
	Attributes map[string]interface{} `yaml:"attributes,omitempty"`
}

// NewInterfaceConfig returns an InterfaceConfig with a non-nil attribute map.
func NewInterfaceConfig(name string, section Section, attrs map[string]interface{}) *InterfaceConfig {
	if attrs == nil {
		attrs = map[string]interface{}{}
	}
	return &InterfaceConfig{
		Name:       name,
		Section:    section,
		Attributes: attrs,
	}
}

// Get returns the attribute value for key, or nil when the attribute is not
// set.
func (i *InterfaceConfig) Get(key string) interface{} {
	if i == nil {
		return nil
	}
	return i.Attributes[key]
}

// GetDefault returns the attribute value for key, or def when the attribute
// is not set.
func (i *InterfaceConfig) GetDefault(key string, def interface{}) interface{} {
	if i == nil {
		return def
	}
	if v, ok := i.Attributes[key]; ok {
		return v
	}
	return def
}

// Set stores an attribute value, allocating the attribute map if needed.
func (i *InterfaceConfig) Set(key string, value interface{}) {
	if i.Attributes == nil {
		i.Attributes = map[string]interface{}{}
	}
	i.Attributes[key] = value
}

// MemberNames returns the names listed in the `interfaces` attribute of a
// bond or bridge. Entries that are not strings are skipped.
func (i *InterfaceConfig) MemberNames() []string {
	if i == nil || !i.Section.HasMembers() {
		return nil
	}
	raw, ok := i.Attributes[AttrInterfaces].([]interface{})
	if !ok {
		return nil
	}
	names := make([]string, 0, len(raw))
	for _, m := range raw {
		name, ok := m.(string)
		if !ok {
			log.Debugf("ignoring non-string member %v of %s %q", m, i.Section, i.Name)
			continue
		}
		names = append(names, name)
	}
	return names
}

// LinkName returns the `link` attribute of a vlan, or "" when there is none.
func (i *InterfaceConfig) LinkName() string {
	if i == nil || !i.Section.HasLink() {
		return ""
	}
	link, _ := i.Attributes[AttrLink].(string)
	return link
}

// References returns the names of interfaces this interface points at: the
// members of a bond or bridge, or the link parent of a vlan.
func (i *InterfaceConfig) References() []string {
	if i == nil {
		return nil
	}
	if i.Section.HasLink() {
		if link := i.LinkName(); link != "" {
			return []string{link}
		}
		return nil
	}
	return i.MemberNames()
}
