package htmlsemdiff

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAlign(t *testing.T) {
	tests := []struct {
		name string
		old  string
		new  string
		want []OpType
	}{
		{"Both empty", "", "", []OpType{}},
		{"All inserted", "", "x y", []OpType{OpInsert, OpInsert}},
		{"All deleted", "x", "", []OpType{OpDelete}},
		{"Identical", "a b", "a b", []OpType{OpEqual, OpEqual}},
		{"Delete middle", "a b c", "a c", []OpType{OpEqual, OpDelete, OpEqual}},
		{"Insert middle", "a c", "a b c", []OpType{OpEqual, OpInsert, OpEqual}},
		{"Replacement deletes first", "cat", "dog", []OpType{OpDelete, OpInsert}},
		{"Replace in context", "The cat sat .", "The dog sat .", []OpType{OpEqual, OpDelete, OpInsert, OpEqual, OpEqual}},
		{"Swap", "a b", "b a", []OpType{OpDelete, OpEqual, OpInsert}},
		{"Duplicate deleted at tail", "the the", "the", []OpType{OpEqual, OpDelete}},
		{"Duplicate inserted at head", "the", "the the", []OpType{OpInsert, OpEqual}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Align(strings.Fields(tt.old), strings.Fields(tt.new)))
		})
	}
}

func TestAlignIsEditScript(t *testing.T) {
	oldTokens := strings.Fields("the quick brown fox jumps over the lazy dog")
	newTokens := strings.Fields("a quick red fox jumped over the very lazy dog today")

	ops := Align(oldTokens, newTokens)

	var fromOld, fromNew []string
	i, j, equal := 0, 0, 0
	for _, op := range ops {
		switch op {
		case OpEqual:
			assert.Equal(t, oldTokens[i], newTokens[j])
			fromOld = append(fromOld, oldTokens[i])
			fromNew = append(fromNew, newTokens[j])
			i++
			j++
			equal++
		case OpDelete:
			fromOld = append(fromOld, oldTokens[i])
			i++
		case OpInsert:
			fromNew = append(fromNew, newTokens[j])
			j++
		}
	}
	assert.Equal(t, oldTokens, fromOld)
	assert.Equal(t, newTokens, fromNew)
	// quick fox over the lazy dog
	assert.Equal(t, 6, equal)
}

func TestTableCells(t *testing.T) {
	assert.Equal(t, 1, tableCells(0, 0))
	assert.Equal(t, 12, tableCells(2, 3))
}
