package scale

// Run produces the stepwise integer run through the given pivots: between
// consecutive pivots the run ascends when from <= to and descends
// otherwise, and each junction pivot appears exactly once. A single pivot
// degenerates to a single-element run.
func Run(pivots ...int) []int {
	if len(pivots) == 0 {
		return nil
	}
	out := []int{pivots[0]}
	for i := 1; i < len(pivots); i++ {
		out = append(out, between(pivots[i-1], pivots[i])...)
	}
	return out
}

// between steps from from (exclusive) to to (inclusive). Equal pivots
// contribute nothing: the junction value already appeared.
func between(from, to int) []int {
	if from == to {
		return nil
	}
	step := 1
	if to < from {
		step = -1
	}
	var out []int
	for v := from + step; ; v += step {
		out = append(out, v)
		if v == to {
			return out
		}
	}
}

// Accumulate is the cumulative-sum prefix of a series, one output per input
// position: Accumulate([1, 1, 2]) == [1, 2, 4]. Feeding it a duration
// series yields the running extent after each note.
func Accumulate(series []float64) []float64 {
	out := make([]float64, len(series))
	sum := 0.0
	for i, v := range series {
		sum += v
		out[i] = sum
	}
	return out
}

// Group is one run-length-encoded entry: Count copies of Value.
type Group struct {
	Count int
	Value float64
}

// Repeats expands run-length-encoded groups into a flat series:
// Repeats({3, 1}, {1, 2}) == [1, 1, 1, 2].
func Repeats(groups ...Group) []float64 {
	var out []float64
	for _, g := range groups {
		for range g.Count {
			out = append(out, g.Value)
		}
	}
	return out
}

// Runs applies Run to each pivot list and concatenates the results - a
// decoder for compact melodic-run specifications.
func Runs(seqs ...[]int) []int {
	var out []int
	for _, s := range seqs {
		out = append(out, Run(s...)...)
	}
	return out
}
