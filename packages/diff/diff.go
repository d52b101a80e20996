package diff

// Kind classifies a span of a computed difference.
type Kind int

const (
	// Equal marks tokens present in both sequences.
	Equal Kind = iota
	// Delete marks tokens present only in the first sequence.
	Delete
	// Insert marks tokens present only in the second sequence.
	Insert
)

func (k Kind) String() string {
	switch k {
	case Equal:
		return "equal"
	case Delete:
		return "delete"
	case Insert:
		return "insert"
	default:
		return "unknown"
	}
}

// Span is one aligned region of a comparison. AIndex is the start offset in
// the first sequence, BIndex the start offset in the second. For Delete spans
// only AIndex is meaningful, for Insert spans only BIndex; Equal spans carry
// both.
type Span struct {
	Kind   Kind
	AIndex int
	BIndex int
	Length int
}

// Diff computes the shortest edit script between a and b using Myers'
// O(N·D) greedy algorithm. Concatenating the resulting spans reconstructs
// both sequences. Identical inputs yield exactly one Equal span covering the
// whole input. Within a replacement block, Delete spans are emitted before
// Insert spans and adjacent spans of the same kind are merged, so the output
// is deterministic for any pair of inputs.
func Diff[T comparable](a, b []T) []Span {
	n, m := len(a), len(b)
	if n == 0 && m == 0 {
		return []Span{{Kind: Equal}}
	}

	max := n + m
	offset := max
	v := make([]int, 2*max+1)
	trace := make([][]int, 0, max+1)

	found := -1
search:
	for d := 0; d <= max; d++ {
		snapshot := make([]int, len(v))
		copy(snapshot, v)
		trace = append(trace, snapshot)

		for k := -d; k <= d; k += 2 {
			var x int
			if k == -d || (k != d && v[offset+k-1] < v[offset+k+1]) {
				x = v[offset+k+1]
			} else {
				x = v[offset+k-1] + 1
			}
			y := x - k
			for x < n && y < m && a[x] == b[y] {
				x++
				y++
			}
			v[offset+k] = x
			if x >= n && y >= m {
				found = d
				break search
			}
		}
	}

	ops := backtrack(trace, found, offset, n, m)
	return coalesce(ops)
}

// Runes performs a character-level diff of two strings. The returned rune
// slices are the token sequences the spans index into.
func Runes(a, b string) ([]rune, []rune, []Span) {
	ar := []rune(a)
	br := []rune(b)
	return ar, br, Diff(ar, br)
}

type op struct {
	kind Kind
	ai   int
	bi   int
}

// backtrack walks the saved furthest-reaching paths from (n,m) back to (0,0)
// and emits per-token operations in reverse order.
func backtrack(trace [][]int, d, offset, n, m int) []op {
	var rev []op
	x, y := n, m
	for ; d >= 0; d-- {
		v := trace[d]
		k := x - y
		var prevK int
		if k == -d || (k != d && v[offset+k-1] < v[offset+k+1]) {
			prevK = k + 1
		} else {
			prevK = k - 1
		}
		prevX := v[offset+prevK]
		prevY := prevX - prevK

		for x > prevX && y > prevY {
			rev = append(rev, op{kind: Equal, ai: x - 1, bi: y - 1})
			x--
			y--
		}
		if d > 0 {
			if x == prevX+1 && y == prevY {
				rev = append(rev, op{kind: Delete, ai: prevX, bi: prevY})
			} else {
				rev = append(rev, op{kind: Insert, ai: prevX, bi: prevY})
			}
		}
		x, y = prevX, prevY
	}

	for i, j := 0, len(rev)-1; i < j; i, j = i+1, j-1 {
		rev[i], rev[j] = rev[j], rev[i]
	}
	return rev
}

// coalesce merges runs of per-token operations into spans. Maximal runs of
// non-equal operations are regrouped so all deletions precede all insertions
// within the run, keeping replacements visually contiguous.
func coalesce(ops []op) []Span {
	var spans []Span
	i := 0
	for i < len(ops) {
		if ops[i].kind == Equal {
			j := i
			for j < len(ops) && ops[j].kind == Equal {
				j++
			}
			spans = append(spans, Span{Kind: Equal, AIndex: ops[i].ai, BIndex: ops[i].bi, Length: j - i})
			i = j
			continue
		}
		j := i
		var dels, inss []op
		for j < len(ops) && ops[j].kind != Equal {
			if ops[j].kind == Delete {
				dels = append(dels, ops[j])
			} else {
				inss = append(inss, ops[j])
			}
			j++
		}
		if len(dels) > 0 {
			spans = append(spans, Span{Kind: Delete, AIndex: dels[0].ai, BIndex: dels[0].bi, Length: len(dels)})
		}
		if len(inss) > 0 {
			spans = append(spans, Span{Kind: Insert, AIndex: inss[0].ai, BIndex: inss[0].bi, Length: len(inss)})
		}
		i = j
	}
	return spans
}
