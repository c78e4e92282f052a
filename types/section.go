package types

// Section identifies a group of interface definitions under the `network`
// root of a netplan document, e.g. `ethernets` or `bonds`. Sections that are
// not listed here are still parsed; their interfaces simply carry no
// relations.
type Section string

const (
	SectionEthernets Section = "ethernets"
	SectionWifis     Section = "wifis"
	SectionBonds     Section = "bonds"
	SectionBridges   Section = "bridges"
	SectionVLANs     Section = "vlans"
)

// HasMembers reports whether interfaces in this section aggregate other
// interfaces via an `interfaces` list attribute.
func (s Section) HasMembers() bool {
	return s == SectionBonds || s == SectionBridges
}

// HasLink reports whether interfaces in this section ride on top of a single
// parent interface named by a `link` attribute.
func (s Section) HasLink() bool {
	return s == SectionVLANs
}
