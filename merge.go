package htmlsemdiff

import (
	"strings"
)

// merger replays an edit script over the new document's token stream and
// collects the annotated text of each leaf.
//
// Three cursors move forward independently: op over the edit script, old over
// the old meaningful tokens (OpEqual, OpDelete) and next over every new token,
// whitespace included (OpEqual, OpInsert and whitespace).
type merger struct {
	ops       []OpType
	newTokens []Token
	oldTokens []Token // meaningful tokens of the old document

	buffers []*strings.Builder // indexed by leaf

	op, old, next int
	lastLeaf      int // last leaf that received new-stream content
}

// mergeDiff returns one buffer per leaf of the new document, nil for leaves
// that the walk never reached.
func mergeDiff(ops []OpType, newTokens, oldTokens []Token, leafCount int) []*strings.Builder {
	m := &merger{
		ops:       ops,
		newTokens: newTokens,
		oldTokens: oldTokens,
		buffers:   make([]*strings.Builder, leafCount),
		lastLeaf:  -1,
	}
	if len(newTokens) > 0 {
		m.lastLeaf = newTokens[0].Leaf
	}
	m.run()
	return m.buffers
}

func (m *merger) buffer(leaf int) *strings.Builder {
	if m.buffers[leaf] == nil {
		m.buffers[leaf] = &strings.Builder{}
	}
	return m.buffers[leaf]
}

func (m *merger) run() {
	for m.op < len(m.ops) {
		if m.ops[m.op] == OpDelete {
			m.deleteRun()
			continue
		}

		m.copyWhitespace()
		if m.next >= len(m.newTokens) {
			// Script and stream disagree; nothing left to annotate.
			if m.ops[m.op] == OpEqual {
				m.old++
			}
			m.op++
			continue
		}

		cur := m.newTokens[m.next]
		m.lastLeaf = cur.Leaf
		switch m.ops[m.op] {
		case OpEqual:
			m.buffer(cur.Leaf).WriteString(encodeText(cur.Text))
			m.old++
			m.op++
			m.next++
		case OpInsert:
			m.insertRun(cur)
		}
	}

	// Trailing whitespace.
	for ; m.next < len(m.newTokens); m.next++ {
		t := m.newTokens[m.next]
		m.buffer(t.Leaf).WriteString(encodeText(t.Text))
	}
}

// copyWhitespace writes whitespace tokens at the cursor verbatim.
func (m *merger) copyWhitespace() {
	for m.next < len(m.newTokens) && !m.newTokens[m.next].Meaningful() {
		t := m.newTokens[m.next]
		m.buffer(t.Leaf).WriteString(encodeText(t.Text))
		m.lastLeaf = t.Leaf
		m.next++
	}
}

// insertRun groups the insertions starting at cur that stay within cur's
// leaf, together with the whitespace between them, into one span.
func (m *merger) insertRun(cur Token) {
	var group strings.Builder
	group.WriteString(cur.Text)
	m.op++
	m.next++

	for m.next < len(m.newTokens) {
		t := m.newTokens[m.next]
		if t.Leaf != cur.Leaf {
			break
		}
		if !t.Meaningful() {
			group.WriteString(t.Text)
			m.next++
			continue
		}
		if m.op < len(m.ops) && m.ops[m.op] == OpInsert {
			group.WriteString(t.Text)
			m.op++
			m.next++
			continue
		}
		break
	}
	m.buffer(cur.Leaf).WriteString(markupInserted(group.String()))
}

// deleteRun joins consecutive deletions into one span and attaches it to the
// leaf of the next new token, since deleted text has no leaf of its own.
func (m *merger) deleteRun() {
	var words []string
	for m.op < len(m.ops) && m.ops[m.op] == OpDelete {
		if m.old < len(m.oldTokens) {
			words = append(words, m.oldTokens[m.old].Text)
		}
		m.old++
		m.op++
	}

	anchor := m.anchorLeaf()
	if anchor < 0 || len(words) == 0 {
		return
	}
	following := ""
	if m.next < len(m.newTokens) {
		following = m.newTokens[m.next].Text
	}
	writeDeletion(m.buffer(anchor), strings.Join(words, " "), following)
}

// anchorLeaf picks the leaf hosting a deletion: the leaf of the next new
// token, otherwise the last leaf that received content, otherwise the last
// leaf of the stream. -1 when the new document has no tokens at all.
func (m *merger) anchorLeaf() int {
	if m.next < len(m.newTokens) {
		return m.newTokens[m.next].Leaf
	}
	if m.lastLeaf >= 0 {
		return m.lastLeaf
	}
	if len(m.newTokens) > 0 {
		return m.newTokens[len(m.newTokens)-1].Leaf
	}
	return -1
}

// writeDeletion appends a deletion span to buf, adding spaces so the deleted
// words do not run into their neighbours:
//   - before the span when buf ends in a non-space character;
//   - before the span when buf is empty and deleted starts with a letter or
//     digit, since the leaf may follow an inline element directly;
//   - after the span when deleted ends and following starts with a letter or
//     digit.
func writeDeletion(buf *strings.Builder, deleted, following string) {
	if buf.Len() > 0 {
		s := buf.String()
		if !endsWithSpace(s) {
			buf.WriteByte(' ')
		}
	} else if startsWithLetterOrDigit(deleted) {
		buf.WriteByte(' ')
	}

	buf.WriteString(markupDeleted(deleted))

	if endsWithLetterOrDigit(deleted) && startsWithLetterOrDigit(following) {
		buf.WriteByte(' ')
	}
}
