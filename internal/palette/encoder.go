package palette

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"math/big"
	"strconv"
	"strings"
	"unicode"
)

// Encoding selects how characters become hex digits.
type Encoding string

const (
	// CodePoint writes each character's Unicode code point in hex, unpadded.
	// Words are split on any whitespace.
	CodePoint Encoding = "unicode"

	// ByteEncoded writes the UTF-8 bytes of each word, two digits per byte.
	// Words are split on the single space character only.
	ByteEncoded Encoding = "utf-8"
)

// joiner glues several words into one encoding unit and is never encoded.
const joiner = "_"

// ParseEncoding maps user-facing names onto an Encoding.
func ParseEncoding(s string) (Encoding, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "unicode", "codepoint", "code-point", "code_point":
		return CodePoint, nil
	case "utf-8", "utf8", "bytes", "byte":
		return ByteEncoded, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidEncoding, s)
	}
}

// Valid reports whether e is one of the two supported modes.
func (e Encoding) Valid() bool {
	return e == CodePoint || e == ByteEncoded
}

// Label returns the display name of the mode.
func (e Encoding) Label() string {
	switch e {
	case CodePoint:
		return "Unicode"
	case ByteEncoded:
		return "UTF-8"
	default:
		return string(e)
	}
}

// Encoded is the hex form of an input, one string per word.
type Encoded struct {
	// Words holds one lowercase hex string per word. In ByteEncoded mode a
	// run of spaces produces empty entries, which carry no colour.
	Words []string
	// Seed is derived from all of Words; see Seed.
	Seed *big.Int
}

// Encode splits input into words, strips joiners and renders each word as hex.
func Encode(input string, mode Encoding) (*Encoded, error) {
	var words []string
	switch mode {
	case CodePoint:
		words = strings.FieldsFunc(input, isSpace)
	case ByteEncoded:
		words = strings.Split(input, " ")
	default:
		return nil, fmt.Errorf("%w: %q", ErrInvalidEncoding, string(mode))
	}

	hexWords := make([]string, len(words))
	encodable := false
	for i, w := range words {
		w = strings.ReplaceAll(w, joiner, "")
		if mode == CodePoint {
			hexWords[i] = codePointHex(w)
		} else {
			hexWords[i] = hex.EncodeToString([]byte(w))
		}
		if hexWords[i] != "" {
			encodable = true
		}
	}

	if !encodable {
		return nil, ErrEmptyInput
	}

	return &Encoded{
		Words: hexWords,
		Seed:  Seed(hexWords),
	}, nil
}

// Seed hashes the concatenated word hex with SHA-256 and reads the digest as
// a big-endian integer.
func Seed(words []string) *big.Int {
	sum := sha256.Sum256([]byte(strings.Join(words, "")))
	return new(big.Int).SetBytes(sum[:])
}

func codePointHex(word string) string {
	var b strings.Builder
	for _, r := range word {
		b.WriteString(strconv.FormatInt(int64(r), 16))
	}
	return b.String()
}

// isSpace matches the whitespace set used for CodePoint splitting. It adds the
// ASCII information separators (U+001C..U+001F) to unicode.IsSpace.
func isSpace(r rune) bool {
	return unicode.IsSpace(r) || (r >= 0x1c && r <= 0x1f)
}
