package htmlsemdiff

// Align computes an edit script turning oldTokens into newTokens using a
// longest-common-subsequence table. Filtering out the OpDelete entries yields
// one entry per new token, filtering out the OpInsert entries one per old
// token, both in order.
//
// When several scripts are optimal, a match is only taken if it extends the
// common subsequence, and insertions are preferred over deletions. Within a
// changed block this places the inserted tokens after the deleted ones.
func Align(oldTokens, newTokens []string) []OpType {
	n, m := len(oldTokens), len(newTokens)
	width := m + 1

	// table[i*width+j] is the LCS length of oldTokens[:i] and newTokens[:j].
	table := make([]int, (n+1)*width)
	for i := 1; i <= n; i++ {
		for j := 1; j <= m; j++ {
			if oldTokens[i-1] == newTokens[j-1] {
				table[i*width+j] = table[(i-1)*width+j-1] + 1
			} else {
				table[i*width+j] = max(table[(i-1)*width+j], table[i*width+j-1])
			}
		}
	}

	ops := make([]OpType, 0, n+m)
	i, j := n, m
	for i > 0 || j > 0 {
		switch {
		case i > 0 && j > 0 && oldTokens[i-1] == newTokens[j-1] && table[i*width+j] > table[(i-1)*width+j]:
			ops = append(ops, OpEqual)
			i--
			j--
		case j > 0 && (i == 0 || table[i*width+j-1] >= table[(i-1)*width+j]):
			ops = append(ops, OpInsert)
			j--
		default:
			ops = append(ops, OpDelete)
			i--
		}
	}

	// Backtracking walks from the end.
	for l, r := 0, len(ops)-1; l < r; l, r = l+1, r-1 {
		ops[l], ops[r] = ops[r], ops[l]
	}
	return ops
}

// tableCells is the number of LCS cells Align allocates for inputs of the
// given lengths.
func tableCells(n, m int) int {
	return (n + 1) * (m + 1)
}
