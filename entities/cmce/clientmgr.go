package cmce

// GroupTable tracks which GSSIs each ISSI is affiliated with, mirroring
// the BREW subscriber/group bookkeeping that CMCE consults when it
// decides whether to accept a group-call USetup (at least one ISSI must
// be affiliated with the called GSSI).
type GroupTable struct {
	// affiliations maps an ISSI to the set of GSSIs it is affiliated with.
	affiliations map[uint32]map[uint32]bool
}

// NewGroupTable constructs an empty subscriber/group table.
func NewGroupTable() *GroupTable {
	return &GroupTable{affiliations: make(map[uint32]map[uint32]bool)}
}

// Register ensures ssi has an entry, creating an empty affiliation set
// if this is the first time it is seen.
func (g *GroupTable) Register(ssi uint32) {
	if _, ok := g.affiliations[ssi]; !ok {
		g.affiliations[ssi] = make(map[uint32]bool)
	}
}

// Affiliate records that ssi is affiliated with gssi.
func (g *GroupTable) Affiliate(ssi uint32, gssi uint32) {
	g.Register(ssi)
	g.affiliations[ssi][gssi] = true
}

// Deregister removes ssi and all of its affiliations entirely.
func (g *GroupTable) Deregister(ssi uint32) {
	delete(g.affiliations, ssi)
}

// Detach removes ssi's affiliation with gssi without removing ssi itself.
func (g *GroupTable) Detach(ssi uint32, gssi uint32) {
	if groups, ok := g.affiliations[ssi]; ok {
		delete(groups, gssi)
	}
}

// IsAffiliated reports whether ssi is affiliated with gssi.
func (g *GroupTable) IsAffiliated(ssi uint32, gssi uint32) bool {
	groups, ok := g.affiliations[ssi]
	if !ok {
		return false
	}
	return groups[gssi]
}

// MembersOf returns every ISSI currently affiliated with gssi.
func (g *GroupTable) MembersOf(gssi uint32) []uint32 {
	var members []uint32
	for ssi, groups := range g.affiliations {
		if groups[gssi] {
			members = append(members, ssi)
		}
	}
	return members
}
