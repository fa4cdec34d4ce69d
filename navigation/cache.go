package navigation

import "github.com/lixenwraith/trainers/terrain"

// Fields bundles the per-profile cost fields of one map
type Fields struct {
	Hiker *CostField
	Rival *CostField
}

// FieldCache keeps the seeker fields for the current map
// Fields are rebuilt only when the map identity or reference changes, or after MarkDirty
type FieldCache struct {
	Builder Builder
	hiker   Profile
	rival   Profile

	mapID  string
	ref    terrain.Point
	fields Fields

	// PendingUpdate latches true on invalidation, cleared after compute
	PendingUpdate bool
}

// NewFieldCache creates an empty cache building in the given mode
func NewFieldCache(mode Mode) *FieldCache {
	return &FieldCache{
		Builder:       Builder{Mode: mode},
		hiker:         HikerProfile(),
		rival:         RivalProfile(),
		PendingUpdate: true, // Force initial compute
	}
}

// Update returns the fields for mapID rooted at ref
// The second result reports whether the fields were recomputed
func (c *FieldCache) Update(mapID string, g *terrain.Grid, ref terrain.Point) (Fields, bool) {
	if mapID != c.mapID || ref != c.ref {
		c.PendingUpdate = true
	}
	if !c.PendingUpdate {
		return c.fields, false
	}

	c.fields = Fields{
		Hiker: c.Builder.Build(g, ref, &c.hiker),
		Rival: c.Builder.Build(g, ref, &c.rival),
	}
	c.mapID = mapID
	c.ref = ref
	c.PendingUpdate = false
	return c.fields, true
}

// MarkDirty forces recomputation on next Update
func (c *FieldCache) MarkDirty() {
	c.PendingUpdate = true
}

// Hiker returns the hiker profile used by the cache
func (c *FieldCache) Hiker() *Profile {
	return &c.hiker
}

// Rival returns the rival profile used by the cache
func (c *FieldCache) Rival() *Profile {
	return &c.rival
}
