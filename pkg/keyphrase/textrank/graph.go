package textrank

// Edge is one directed entry in a node's adjacency list
type Edge struct {
	To   string
	Freq int
}

// Graph is a weighted co-occurrence graph whose nodes keep the order in
// which tokens were first seen.
type Graph struct {
	nodes []string
	index map[string]int
	edges [][]Edge
}

// TokenPair is an unordered co-occurrence; T1 is the token seen first
type TokenPair struct {
	T1, T2 string
}

type pairCount struct {
	pair TokenPair
	freq int
}

// Option configures graph construction
type Option func(*buildOptions)

type buildOptions struct {
	selfLoops bool
}

// WithSelfLoops controls whether a token co-occurring with itself inside
// the window produces a self-referential edge. Enabled by default.
func WithSelfLoops(enabled bool) Option {
	return func(o *buildOptions) {
		o.selfLoops = enabled
	}
}

// MinSpan is the smallest usable co-occurrence window
const MinSpan = 2

// Build turns a token sequence into a co-occurrence graph.
//
// Every pair (tokens[i], tokens[j]) with i < j < i+span is counted as an
// unordered pair. Once the scan is done each distinct pair (A,B) with
// frequency f adds A→B and B→A, both weighted f, in the order the pairs
// were first observed. A self pair (A,A) therefore puts two A→A entries on
// A.
func Build(tokens []string, span int, opts ...Option) *Graph {
	o := buildOptions{selfLoops: true}
	for _, opt := range opts {
		opt(&o)
	}
	if span < MinSpan {
		span = MinSpan
	}

	g := newGraph()
	if len(tokens) == 0 {
		return g
	}

	var pairs []pairCount
	seen := make(map[TokenPair]int)

	for i, t1 := range tokens {
		g.addNode(t1)
		for j := i + 1; j < i+span && j < len(tokens); j++ {
			t2 := tokens[j]
			if t1 == t2 && !o.selfLoops {
				continue
			}

			key := canonical(t1, t2)
			if idx, ok := seen[key]; ok {
				pairs[idx].freq++
				continue
			}
			seen[key] = len(pairs)
			pairs = append(pairs, pairCount{pair: TokenPair{T1: t1, T2: t2}, freq: 1})
		}
	}

	for _, pc := range pairs {
		g.AddEdge(pc.pair.T1, pc.pair.T2, pc.freq)
	}

	return g
}

func newGraph() *Graph {
	return &Graph{index: make(map[string]int)}
}

func canonical(a, b string) TokenPair {
	if a > b {
		a, b = b, a
	}
	return TokenPair{T1: a, T2: b}
}

func (g *Graph) addNode(token string) int {
	if idx, ok := g.index[token]; ok {
		return idx
	}
	idx := len(g.nodes)
	g.index[token] = idx
	g.nodes = append(g.nodes, token)
	g.edges = append(g.edges, nil)
	return idx
}

// AddEdge records start→end and end→start with the same frequency
func (g *Graph) AddEdge(start, end string, freq int) {
	si := g.addNode(start)
	ei := g.addNode(end)
	g.edges[si] = append(g.edges[si], Edge{To: end, Freq: freq})
	g.edges[ei] = append(g.edges[ei], Edge{To: start, Freq: freq})
}

// Nodes returns the node tokens in first-appearance order
func (g *Graph) Nodes() []string {
	out := make([]string, len(g.nodes))
	copy(out, g.nodes)
	return out
}

// Len returns the number of nodes
func (g *Graph) Len() int {
	return len(g.nodes)
}

// Has reports whether token is a node
func (g *Graph) Has(token string) bool {
	_, ok := g.index[token]
	return ok
}

// Edges returns the adjacency list of token in insertion order
func (g *Graph) Edges(token string) []Edge {
	idx, ok := g.index[token]
	if !ok {
		return nil
	}
	out := make([]Edge, len(g.edges[idx]))
	copy(out, g.edges[idx])
	return out
}

// Freq sums the frequency of every from→to entry
func (g *Graph) Freq(from, to string) int {
	idx, ok := g.index[from]
	if !ok {
		return 0
	}
	total := 0
	for _, e := range g.edges[idx] {
		if e.To == to {
			total += e.Freq
		}
	}
	return total
}

// OutSum returns the summed frequency of every edge leaving token
func (g *Graph) OutSum(token string) int {
	idx, ok := g.index[token]
	if !ok {
		return 0
	}
	return outSum(g.edges[idx])
}

func outSum(edges []Edge) int {
	total := 0
	for _, e := range edges {
		total += e.Freq
	}
	return total
}
