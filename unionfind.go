package regexfa

// UnionFind is a disjoint-set forest over [0, n) with path compression and
// union by size.
type UnionFind struct {
	parent []int
	size   []int
}

func NewUnionFind(n int) *UnionFind {
	u := &UnionFind{parent: make([]int, n), size: make([]int, n)}
	for i := range u.parent {
		u.parent[i] = i
		u.size[i] = 1
	}
	return u
}

func (u *UnionFind) Find(x int) int {
	root := x
	for u.parent[root] != root {
		root = u.parent[root]
	}
	for u.parent[x] != root {
		u.parent[x], x = root, u.parent[x]
	}
	return root
}

// Union merges the sets of a and b and reports whether they were distinct.
func (u *UnionFind) Union(a, b int) bool {
	ra, rb := u.Find(a), u.Find(b)
	if ra == rb {
		return false
	}
	if u.size[ra] < u.size[rb] {
		ra, rb = rb, ra
	}
	u.parent[rb] = ra
	u.size[ra] += u.size[rb]
	return true
}

// Classes lists the sets ordered by their smallest element, members ascending.
func (u *UnionFind) Classes() [][]int {
	classOf := make(map[int]int)
	var classes [][]int
	for x := range u.parent {
		root := u.Find(x)
		c, ok := classOf[root]
		if !ok {
			c = len(classes)
			classOf[root] = c
			classes = append(classes, nil)
		}
		classes[c] = append(classes[c], x)
	}
	return classes
}
