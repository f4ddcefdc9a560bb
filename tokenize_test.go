package htmlsemdiff

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitText(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []string
	}{
		{"Empty", "", nil},
		{"Words and punctuation", "Hello, world!", []string{"Hello", ",", " ", "world", "!"}},
		{"Whitespace run", "a \n\t b", []string{"a", " \n\t ", "b"}},
		{"Apostrophe", "don't", []string{"don", "'", "t"}},
		{"Number", "3.14", []string{"3", ".", "14"}},
		{"Underscore is a word character", "snake_case x", []string{"snake_case", " ", "x"}},
		{"Accented letters", "café—naïve", []string{"café", "—", "naïve"}},
		{"Combining mark", "e\u0301te\u0301", []string{"e\u0301te\u0301"}},
		{"No-break space", "a\u00a0b", []string{"a", "\u00a0", "b"}},
		{"Repeated punctuation", "?!", []string{"?", "!"}},
		{"CJK", "你好 世界", []string{"你好", " ", "世界"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SplitText(tt.in))
		})
	}
}

func TestTokenize(t *testing.T) {
	doc, err := ParseHTML(`<p>Hi <b>there</b>!</p><script>alert("x")</script>`)
	require.NoError(t, err)

	tokens := Tokenize(doc)
	assert.Equal(t, []Token{
		{Text: "Hi", Leaf: 0},
		{Text: " ", Leaf: 0},
		{Text: "there", Leaf: 1},
		{Text: "!", Leaf: 2},
	}, tokens)

	m := meaningful(tokens)
	require.Len(t, m, 3)
	assert.False(t, tokens[1].Meaningful())
}

func TestTokenizeDecodesEntities(t *testing.T) {
	doc, err := ParseHTML(`<p>Fish &amp; chips&nbsp;&mdash;</p>`)
	require.NoError(t, err)

	var texts []string
	for _, tok := range Tokenize(doc) {
		texts = append(texts, tok.Text)
	}
	assert.Equal(t, []string{"Fish", " ", "&", " ", "chips", "\u00a0", "—"}, texts)
}

func TestLetterOrDigitHelpers(t *testing.T) {
	assert.True(t, startsWithLetterOrDigit("é!"))
	assert.True(t, startsWithLetterOrDigit("7x"))
	assert.False(t, startsWithLetterOrDigit(",x"))
	assert.False(t, startsWithLetterOrDigit(""))
	assert.True(t, endsWithLetterOrDigit("x9"))
	assert.False(t, endsWithLetterOrDigit("x."))
	assert.True(t, endsWithSpace("x "))
	assert.False(t, endsWithSpace(""))
}
