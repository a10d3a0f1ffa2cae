package design

import "github.com/bits-and-blooms/bitset"

// unionFind is a path-compressed disjoint-set structure over snippet
// indices, grounded on the UnionFind_Find/UnionFind_Union closures in the
// original write_verilog.
type unionFind struct {
	parent []int
}

func newUnionFind(n int) *unionFind {
	parent := make([]int, n)
	for i := range parent {
		parent[i] = i
	}
	return &unionFind{parent: parent}
}

func (u *unionFind) find(idx int) int {
	if u.parent[idx] != idx {
		u.parent[idx] = u.find(u.parent[idx])
	}
	return u.parent[idx]
}

func (u *unionFind) union(a, b int) {
	ra, rb := u.find(a), u.find(b)
	u.parent[ra] = rb
}

// groupSnippets partitions snippets into driver-set equivalence classes:
// two snippets land in the same class iff they (transitively) share a
// driven lvalue signal name. Each class becomes one "always @*" block at
// emission time. Groups are returned in the order their root index is
// first discovered while scanning snippets left to right, matching the
// original's dict-insertion-order snippet_groups traversal. A bitset
// tracks which roots have already opened a group so each is emitted once.
func groupSnippets(snippets []*Snippet) [][]*Snippet {
	n := len(snippets)
	if n == 0 {
		return nil
	}

	uf := newUnionFind(n)
	lvalueIdx := make(map[string]int)
	for idx, s := range snippets {
		for lval := range s.lvalueSignals {
			if first, ok := lvalueIdx[lval]; !ok {
				lvalueIdx[lval] = idx
			} else {
				uf.union(idx, first)
			}
		}
	}

	seenRoots := bitset.New(uint(n))
	rootOrder := make([]int, 0, n)
	members := make(map[int][]*Snippet, n)
	for idx := 0; idx < n; idx++ {
		root := uf.find(idx)
		if !seenRoots.Test(uint(root)) {
			seenRoots.Set(uint(root))
			rootOrder = append(rootOrder, root)
		}
		members[root] = append(members[root], snippets[idx])
	}

	groups := make([][]*Snippet, 0, len(rootOrder))
	for _, root := range rootOrder {
		groups = append(groups, members[root])
	}
	log.WithField("snippets", n).WithField("groups", len(groups)).Debug("grouped driver snippets")
	return groups
}
