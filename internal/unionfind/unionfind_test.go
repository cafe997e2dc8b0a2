package unionfind_test

import (
	"testing"

	"github.com/sarchlab/rtlsim/internal/unionfind"
)

func TestUnionFindBasic(t *testing.T) {
	d := unionfind.New(5)

	d.Union(0, 1)
	d.Union(1, 2)

	if d.Find(0) != d.Find(2) {
		t.Fatal("0 and 2 should be in the same set after transitive union")
	}
	if d.Find(3) == d.Find(0) {
		t.Fatal("3 should remain disjoint from {0,1,2}")
	}
}

func TestUnionReturnsFalseWhenAlreadyMerged(t *testing.T) {
	d := unionfind.New(3)
	if !d.Union(0, 1) {
		t.Fatal("first union of disjoint sets should return true")
	}
	if d.Union(0, 1) {
		t.Fatal("union of already-merged sets should return false")
	}
}

func TestGroupsPartitionSpace(t *testing.T) {
	d := unionfind.New(6)
	d.Union(0, 1)
	d.Union(2, 3)

	groups := d.Groups()
	seen := make(map[int]bool)
	for _, members := range groups {
		for _, m := range members {
			if seen[m] {
				t.Fatalf("signal %d appeared in more than one group", m)
			}
			seen[m] = true
		}
	}
	for i := 0; i < 6; i++ {
		if !seen[i] {
			t.Fatalf("signal %d missing from partition", i)
		}
	}
}
