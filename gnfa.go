package regexfa

// GNFA is a generalized automaton whose edges carry regexes. States
// 0..n-1 are the DFA states, n is the synthetic start and n+1 the synthetic
// final state. Every ordered pair holds exactly one edge, EmptyLanguage
// when there is none.
type GNFA struct {
	edges [][]string
	alive []bool
	Start int
	Final int
}

// NewGNFA builds the GNFA of d. Parallel transitions between two states are
// joined with + in input order. The synthetic start moves on Epsilon to every
// start state and every final state moves on Epsilon to the synthetic final.
func NewGNFA(d *DFA) *GNFA {
	n := len(d.States)
	g := &GNFA{
		edges: make([][]string, n+2),
		alive: make([]bool, n+2),
		Start: n,
		Final: n + 1,
	}
	for i := range g.edges {
		g.edges[i] = make([]string, n+2)
		for j := range g.edges[i] {
			g.edges[i][j] = emptyLanguage
		}
		g.alive[i] = true
	}

	for _, t := range d.Transitions {
		if g.edges[t.From][t.To] == emptyLanguage {
			g.edges[t.From][t.To] = string(t.Symbol)
		} else {
			g.edges[t.From][t.To] += string(opUnion) + string(t.Symbol)
		}
	}
	for _, s := range d.Start {
		g.edges[g.Start][s] = string(Epsilon)
	}
	for _, s := range d.Final {
		g.edges[s][g.Final] = string(Epsilon)
	}
	return g
}

// Edge returns the regex on i -> j.
func (g *GNFA) Edge(i, j int) string {
	return g.edges[i][j]
}

// factor parenthesizes the regex on i -> j, or returns "" for EmptyLanguage.
func (g *GNFA) factor(i, j int) string {
	if g.edges[i][j] == emptyLanguage {
		return ""
	}
	return "(" + g.edges[i][j] + ")"
}

// Eliminate removes rip, rerouting every path i -> rip -> j through the
// edge i -> j as (i,rip)(rip,rip)*(rip,j)+(i,j). A missing self loop drops
// the starred factor and a missing (i,j) drops the union. All rewrites read
// the edges as they were before rip was removed.
func (g *GNFA) Eliminate(rip int) {
	var preds, succs []int
	for k := range g.edges {
		if k == rip || !g.alive[k] {
			continue
		}
		if g.edges[k][rip] != emptyLanguage {
			preds = append(preds, k)
		}
		if g.edges[rip][k] != emptyLanguage {
			succs = append(succs, k)
		}
	}

	type rewrite struct {
		i, j int
		re   string
	}
	rewrites := make([]rewrite, 0, len(preds)*len(succs))
	for _, i := range preds {
		for _, j := range succs {
			re := g.factor(i, rip)
			if loop := g.factor(rip, rip); loop != "" {
				re += loop + string(opStar)
			}
			re += g.factor(rip, j)
			if direct := g.factor(i, j); direct != "" {
				re += string(opUnion) + direct
			}
			rewrites = append(rewrites, rewrite{i: i, j: j, re: re})
		}
	}
	for _, r := range rewrites {
		g.edges[r.i][r.j] = r.re
	}

	g.alive[rip] = false
	for k := range g.edges {
		g.edges[k][rip] = emptyLanguage
		g.edges[rip][k] = emptyLanguage
	}
}

// Result is the regex left on the start -> final edge.
func (g *GNFA) Result() string {
	return g.edges[g.Start][g.Final]
}

// ToRegex converts d to an equivalent regex by eliminating its states one at
// a time in state order. The output uses Epsilon for the empty string and
// is EmptyLanguage when d accepts nothing.
func ToRegex(d *DFA, opts ...Option) (string, error) {
	o := newOptions(opts...)
	if err := d.Validate(); err != nil {
		return "", err
	}

	g := NewGNFA(d)
	for rip := range d.States {
		g.Eliminate(rip)
	}

	re := g.Result()
	o.logger.Debug("state elimination finished", "states", len(d.States), "regex_length", len(re))
	return re, nil
}
