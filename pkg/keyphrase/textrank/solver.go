package textrank

import "github.com/cognicore/keyphrase/pkg/keyphrase/rank"

// Damping is the share of a node's weight that comes from its neighbors
const Damping = 0.85

// WeightMap holds one weight per graph node, in node order
type WeightMap struct {
	tokens  []string
	index   map[string]int
	weights []float64
}

// Solve runs the fixed-point iteration without normalizing.
//
// Nodes are visited in first-appearance order and updated in place, so a
// neighbor already visited in the current pass contributes its new weight.
func Solve(g *Graph, iterations int) *WeightMap {
	n := g.Len()
	wm := &WeightMap{
		tokens:  g.Nodes(),
		index:   make(map[string]int, n),
		weights: make([]float64, n),
	}
	if n == 0 {
		return wm
	}

	initial := 1.0 / float64(n)
	outSums := make([]float64, n)
	for i, tok := range wm.tokens {
		wm.index[tok] = i
		wm.weights[i] = initial
		outSums[i] = float64(outSum(g.edges[i]))
	}

	adj := make([][]int, n)
	for i, edges := range g.edges {
		adj[i] = make([]int, len(edges))
		for k, e := range edges {
			adj[i][k] = g.index[e.To]
		}
	}

	for range max(iterations, 0) {
		for i := range n {
			sum := 0.0
			for k, e := range g.edges[i] {
				nb := adj[i][k]
				sum += float64(e.Freq) / outSums[nb] * wm.weights[nb]
			}
			wm.weights[i] = (1 - Damping) + Damping*sum
		}
	}

	return wm
}

// Rank solves the graph and normalizes the result.
//
// With iterations == 0 the uniform 1/N start weights come back as they are;
// call Normalize on the result to scale them.
func Rank(g *Graph, iterations int) *WeightMap {
	wm := Solve(g, iterations)
	if iterations > 0 {
		wm.Normalize()
	}
	return wm
}

// Normalize rescales every weight to (w - min/10) / (max - min/10).
//
// min and max both start at 0 before the scan, so min only moves for
// negative weights. When the denominator is zero the weights are left
// untouched and false is returned.
func (w *WeightMap) Normalize() bool {
	minRank, maxRank := 0.0, 0.0
	for _, v := range w.weights {
		if v < minRank {
			minRank = v
		}
		if v > maxRank {
			maxRank = v
		}
	}

	denom := maxRank - minRank/10.0
	if denom == 0 {
		return false
	}

	for i, v := range w.weights {
		w.weights[i] = (v - minRank/10.0) / denom
	}
	return true
}

// Len returns the number of weighted tokens
func (w *WeightMap) Len() int {
	return len(w.tokens)
}

// Tokens returns the weighted tokens in node order
func (w *WeightMap) Tokens() []string {
	out := make([]string, len(w.tokens))
	copy(out, w.tokens)
	return out
}

// Weight returns the weight of token
func (w *WeightMap) Weight(token string) (float64, bool) {
	idx, ok := w.index[token]
	if !ok {
		return 0, false
	}
	return w.weights[idx], true
}

// Scored returns the weights as rank entries in node order
func (w *WeightMap) Scored() []rank.Scored {
	out := make([]rank.Scored, len(w.tokens))
	for i, tok := range w.tokens {
		out[i] = rank.Scored{Token: tok, Score: w.weights[i]}
	}
	return out
}
