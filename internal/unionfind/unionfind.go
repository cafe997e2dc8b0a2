// Package unionfind implements a classical disjoint-set structure with
// path compression and union by rank, the way
// katalvlaran/lvlath/prim_kruskal.Kruskal builds one for MST edge
// selection — here indexed over dense signal ids rather than string vertex
// names, since SignalID is already a dense array index.
package unionfind

// DSU is a disjoint-set-union over the dense index range [0, n).
type DSU struct {
	parent []int
	rank   []int
}

// New returns a DSU over n singleton sets {0}, {1}, ..., {n-1}.
func New(n int) *DSU {
	d := &DSU{
		parent: make([]int, n),
		rank:   make([]int, n),
	}
	for i := range d.parent {
		d.parent[i] = i
	}
	return d
}

// Find returns the representative of x's set, compressing the path from x
// to the root as it walks up.
func (d *DSU) Find(x int) int {
	for d.parent[x] != x {
		d.parent[x] = d.parent[d.parent[x]] // path compression (halving)
		x = d.parent[x]
	}
	return x
}

// Union merges the sets containing a and b. Returns false if a and b were
// already in the same set (a no-op).
func (d *DSU) Union(a, b int) bool {
	ra, rb := d.Find(a), d.Find(b)
	if ra == rb {
		return false
	}

	switch {
	case d.rank[ra] < d.rank[rb]:
		ra, rb = rb, ra
	case d.rank[ra] == d.rank[rb]:
		d.rank[ra]++
	}
	d.parent[rb] = ra

	return true
}

// Groups returns every equivalence class as a map from representative to
// its members, in no particular order. Net Builder calls this once after
// all unions have been applied (SPEC_FULL.md §4.B, pass 2).
func (d *DSU) Groups() map[int][]int {
	groups := make(map[int][]int)
	for i := range d.parent {
		r := d.Find(i)
		groups[r] = append(groups[r], i)
	}
	return groups
}
