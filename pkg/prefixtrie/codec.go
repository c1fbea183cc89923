package prefixtrie

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// The serialized form is a JSON array of strings covering every complete
// entry: double quoted, backslash escaped, whitespace tolerant between
// tokens, non-ASCII representable as \uXXXX. FromJSON(ToJSON()) restores the
// same contents, though not necessarily the same internal node layout.
//
// The two trie widths read the escapes differently. RuneTrie strings are
// Unicode text, one symbol per code point. StringTrie entries are raw byte
// sequences, so its codec maps one code point to one byte: bytes outside
// printable ASCII are written as \u00XX, and decoding rejects code points
// above U+00FF since they do not fit a byte symbol. json.Marshal cannot
// serve the byte side, it silently rewrites invalid UTF-8 to U+FFFD and
// distinct byte strings would collapse into one entry.

// ToJSON encodes every complete byte string in Match("") order.
func (t *StringTrie) ToJSON() string {
	var b strings.Builder
	b.WriteByte('[')
	first := true
	t.MatchWithCallback("", func(word string) {
		if !first {
			b.WriteByte(',')
		}
		first = false
		encodeByteString(&b, word)
	})
	b.WriteByte(']')
	return b.String()
}

// FromJSON clears the trie and loads it from the serialized form. Malformed
// input (missing brackets, unterminated literals, invalid escapes, anything
// not shaped as an array of strings, entries holding the reserved NUL symbol
// or code points above U+00FF) is rejected with an error; in that case the
// trie stays cleared, never partially loaded.
func (t *StringTrie) FromJSON(data string) error {
	t.Clear()
	words, err := decodeWords(data)
	if err != nil {
		return err
	}
	for _, word := range words {
		bytes, err := byteStringFromRunes(word)
		if err != nil {
			return err
		}
		t.Insert(bytes)
	}
	return nil
}

// ToJSON encodes every complete string in Match("") order.
func (t *RuneTrie) ToJSON() string {
	return encodeWords(t.Match(""))
}

// FromJSON clears the trie and loads it from the serialized form, with the
// same rejection rules as StringTrie.FromJSON except that any code point
// other than NUL is storable.
func (t *RuneTrie) FromJSON(data string) error {
	t.Clear()
	words, err := decodeWords(data)
	if err != nil {
		return err
	}
	for _, word := range words {
		t.Insert(word)
	}
	return nil
}

func encodeWords(words []string) string {
	data, err := json.Marshal(words)
	if err != nil {
		// Marshalling a string slice cannot fail.
		panic(fmt.Sprintf("[BUG] encodeWords: %v", err))
	}
	return string(data)
}

// encodeByteString writes one byte sequence as a JSON string literal, one
// escaped code point per byte so arbitrary bytes survive the trip.
func encodeByteString(b *strings.Builder, word string) {
	b.WriteByte('"')
	for i := 0; i < len(word); i++ {
		switch c := word[i]; {
		case c == '"':
			b.WriteString(`\"`)
		case c == '\\':
			b.WriteString(`\\`)
		case c == '\n':
			b.WriteString(`\n`)
		case c == '\r':
			b.WriteString(`\r`)
		case c == '\t':
			b.WriteString(`\t`)
		case c < 0x20 || c >= 0x7f:
			fmt.Fprintf(b, `\u%04x`, c)
		default:
			b.WriteByte(c)
		}
	}
	b.WriteByte('"')
}

// byteStringFromRunes reverses encodeByteString: every decoded code point
// stands for one byte. Code points above U+00FF cannot fit a byte symbol.
func byteStringFromRunes(word string) (string, error) {
	out := make([]byte, 0, len(word))
	for _, r := range word {
		if r > 0xff {
			return "", fmt.Errorf("malformed trie encoding: %q holds code points beyond byte width", word)
		}
		out = append(out, byte(r))
	}
	return string(out), nil
}

func decodeWords(data string) ([]string, error) {
	// Unmarshal alone would let a top-level null through as an empty list.
	if !strings.HasPrefix(strings.TrimSpace(data), "[") {
		return nil, errors.New("malformed trie encoding: expected an array of strings")
	}
	var words []string
	if err := json.Unmarshal([]byte(data), &words); err != nil {
		return nil, fmt.Errorf("malformed trie encoding: %w", err)
	}
	for _, word := range words {
		// The zero symbol is the completion sentinel; letting it through
		// would make the entry unreachable and its prefix read as complete.
		if strings.ContainsRune(word, 0) {
			return nil, fmt.Errorf("malformed trie encoding: %q contains the reserved NUL symbol", word)
		}
	}
	return words, nil
}
