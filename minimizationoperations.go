package regexfa

import (
	"github.com/bits-and-blooms/bitset"
)

// Reachable returns the states reachable from the start states in
// breadth-first discovery order, following only recorded transitions.
func Reachable(d *DFA) []int {
	seen := bitset.New(uint(len(d.States)))
	order := make([]int, 0, len(d.States))
	for _, s := range d.Start {
		if !seen.Test(uint(s)) {
			seen.Set(uint(s))
			order = append(order, s)
		}
	}

	for head := 0; head < len(order); head++ {
		for _, symbol := range d.Alphabet {
			to, ok := d.Step(order[head], symbol)
			if ok && !seen.Test(uint(to)) {
				seen.Set(uint(to))
				order = append(order, to)
			}
		}
	}
	return order
}

// Minimize drops unreachable states and merges Myhill-Nerode equivalent ones.
//
// Every unordered pair of reachable states starts marked when exactly one of
// them accepts; passes over the unmarked pairs then mark a pair whose
// destinations on some symbol form a marked pair, until a pass marks nothing.
// Unmarked pairs are merged. A missing transition goes to a virtual dead
// state that takes part in marking but never in the result.
//
// The result names each class by the set of labels it merged. Classes are
// ordered by their first member in reachability order. For each
// (class, symbol) the first transition of d in input order wins.
func Minimize(d *DFA, opts ...Option) (*DFA, error) {
	o := newOptions(opts...)
	if err := d.Validate(); err != nil {
		return nil, err
	}

	order := Reachable(d)
	m := len(order)
	pos := make([]int, len(d.States))
	for i := range pos {
		pos[i] = -1
	}
	for p, s := range order {
		pos[s] = p
	}

	finals := d.finalBits()
	dead := -1
	total := m
	for _, s := range order {
		for _, symbol := range d.Alphabet {
			if _, ok := d.Step(s, symbol); !ok {
				dead = m
				total = m + 1
			}
		}
	}

	accepting := func(p int) bool {
		return p < m && finals.Test(uint(order[p]))
	}
	next := func(p int, symbol rune) int {
		if p == dead {
			return dead
		}
		to, ok := d.Step(order[p], symbol)
		if !ok {
			return dead
		}
		return pos[to]
	}

	marked := newPairTable(total)
	for j := 1; j < total; j++ {
		for i := 0; i < j; i++ {
			if accepting(i) != accepting(j) {
				marked.mark(i, j)
			}
		}
	}

	passes := 0
	for changed := true; changed; {
		changed = false
		passes++
		for j := 1; j < total; j++ {
			for i := 0; i < j; i++ {
				if marked.test(i, j) {
					continue
				}
				for _, symbol := range d.Alphabet {
					a, b := next(i, symbol), next(j, symbol)
					if a != b && marked.test(a, b) {
						marked.mark(i, j)
						changed = true
						break
					}
				}
			}
		}
	}

	uf := NewUnionFind(m)
	for j := 1; j < m; j++ {
		for i := 0; i < j; i++ {
			if !marked.test(i, j) {
				uf.Union(i, j)
			}
		}
	}
	classes := uf.Classes()

	result := NewDFA(d.Alphabet)
	classOf := make([]int, m)
	for c, members := range classes {
		labels := make([]Label, len(members))
		for k, p := range members {
			labels[k] = d.States[order[p]]
			classOf[p] = c
		}
		if _, err := result.AddState(Set(labels...)); err != nil {
			return nil, err
		}
	}

	starts := NewIntSet(d.Start...)
	for c, members := range classes {
		for _, p := range members {
			if starts.Contains(order[p]) {
				result.Start = append(result.Start, c)
				break
			}
		}
		for _, p := range members {
			if finals.Test(uint(order[p])) {
				result.Final = append(result.Final, c)
				break
			}
		}
	}

	moves := NewHashMap[int](WithCapacity(len(classes) * len(d.Alphabet)))
	for _, t := range d.Transitions {
		from, to := pos[t.From], pos[t.To]
		if from < 0 || to < 0 {
			continue
		}
		k := classMove{class: classOf[from], symbol: t.Symbol}
		if _, ok := moves.Get(k); ok {
			continue
		}
		moves.Set(k, classOf[to])
	}
	for k, to := range moves.All() {
		move := k.(classMove)
		result.AddTransition(move.class, move.symbol, to)
	}

	o.logger.Debug("minimization finished",
		"states", len(d.States),
		"reachable", m,
		"classes", len(classes),
		"transitions", moves.Size(),
		"passes", passes)
	return result, nil
}

// classMove is a (class, symbol) pair of the minimized DFA. The first
// transition stored for a pair wins.
type classMove struct {
	class  int
	symbol rune
}

func (k classMove) Hash() uint64 {
	return mixInt(k.class)*31 + uint64(mix32(uint32(k.symbol)))
}

func (k classMove) Equals(other Hashable) bool {
	o, ok := other.(classMove)
	return ok && o == k
}

// pairTable marks unordered pairs of distinct states in a triangular bitset.
type pairTable struct {
	bits *bitset.BitSet
}

func newPairTable(n int) *pairTable {
	return &pairTable{bits: bitset.New(uint(n * (n - 1) / 2))}
}

func pairIndex(i, j int) uint {
	if i > j {
		i, j = j, i
	}
	return uint(j*(j-1)/2 + i)
}

func (t *pairTable) mark(i, j int) {
	t.bits.Set(pairIndex(i, j))
}

func (t *pairTable) test(i, j int) bool {
	return t.bits.Test(pairIndex(i, j))
}
