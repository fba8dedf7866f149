// Package strops provides the string vocabulary, including charset encode
// and decode ops backed by golang.org/x/text.
package strops

import (
	"fmt"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"

	"github.com/wofl/woflang"
)

// Register adds the string ops to an interpreter.
func Register(it *woflang.Interp) {
	it.Register("concat", concat)
	it.Register("upper", mapText(strings.ToUpper))
	it.Register("lower", mapText(strings.ToLower))
	it.Register("length", length)
	it.Register("reverse", reverse)
	it.Register("str.encode", codec("str.encode", func(e encoding.Encoding, s string) (string, error) {
		return e.NewEncoder().String(s)
	}))
	it.Register("str.decode", codec("str.decode", func(e encoding.Encoding, s string) (string, error) {
		return e.NewDecoder().String(s)
	}))
}

// charsets names the encodings the codec ops accept as their Symbol
// argument.
var charsets = map[string]encoding.Encoding{
	"latin1":  charmap.ISO8859_1,
	"utf16be": unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM),
	"utf16le": unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM),
}

// concat joins the top two values as text: "a" "b" concat -- "ab".
func concat(it *woflang.Interp) error {
	if !it.StackHas(2) {
		return fmt.Errorf("concat: %w", woflang.ErrStackUnderflow)
	}
	b, _ := it.PopString()
	a, _ := it.PopString()
	it.Push(woflang.MakeString(a + b))
	return nil
}

// mapText lifts a text transform into an op.
func mapText(f func(string) string) woflang.Op {
	return func(it *woflang.Interp) error {
		s, err := it.PopString()
		if err != nil {
			return err
		}
		it.Push(woflang.MakeString(f(s)))
		return nil
	}
}

// length pushes the byte length of the popped text as an Integer.
func length(it *woflang.Interp) error {
	s, err := it.PopString()
	if err != nil {
		return fmt.Errorf("length: %w", err)
	}
	it.Push(woflang.MakeInteger(int64(len(s))))
	return nil
}

// reverse reverses the popped text by rune.
func reverse(it *woflang.Interp) error {
	s, err := it.PopString()
	if err != nil {
		return fmt.Errorf("reverse: %w", err)
	}
	r := []rune(s)
	for i, j := 0, len(r)-1; i < j; i, j = i+1, j-1 {
		r[i], r[j] = r[j], r[i]
	}
	it.Push(woflang.MakeString(string(r)))
	return nil
}

// codec builds the encode and decode ops. Both pop a charset Symbol and
// then the text to transform: "héllo" latin1 str.encode.
func codec(name string, transform func(encoding.Encoding, string) (string, error)) woflang.Op {
	return func(it *woflang.Interp) error {
		cs, err := it.PopSymbol()
		if err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
		enc, ok := charsets[cs]
		if !ok {
			return fmt.Errorf("%s: unknown charset %s: %w", name, cs, woflang.ErrTypeMismatch)
		}
		s, err := it.PopString()
		if err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
		out, err := transform(enc, s)
		if err != nil {
			return fmt.Errorf("%s: %v: %w", name, err, woflang.ErrTypeMismatch)
		}
		it.Push(woflang.MakeString(out))
		return nil
	}
}
