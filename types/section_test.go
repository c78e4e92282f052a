package types

import "testing"

func TestSectionRelations(t *testing.T) {
	tests := map[string]struct {
		section    Section
		hasMembers bool
		hasLink    bool
	}{
		"ethernets": {section: SectionEthernets},
		"wifis":     {section: SectionWifis},
		"bonds":     {section: SectionBonds, hasMembers: true},
		"bridges":   {section: SectionBridges, hasMembers: true},
		"vlans":     {section: SectionVLANs, hasLink: true},
		"unknown":   {section: Section("tunnels")},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			if got := tc.section.HasMembers(); got != tc.hasMembers {
				t.Fatalf("HasMembers() wanted %t got %t", tc.hasMembers, got)
			}
			if got := tc.section.HasLink(); got != tc.hasLink {
				t.Fatalf("HasLink() wanted %t got %t", tc.hasLink, got)
			}
		})
	}
}
