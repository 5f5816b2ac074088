package palette

import "fmt"

// Chunk splits s into consecutive pieces of size; the last may be shorter.
// An empty string has no chunks.
func Chunk(s string, size int) []string {
	if size <= 0 || s == "" {
		return nil
	}

	chunks := make([]string, 0, (len(s)+size-1)/size)
	for i := 0; i < len(s); i += size {
		end := min(i+size, len(s))
		chunks = append(chunks, s[i:end])
	}
	return chunks
}

// ChunkAndPad cuts every word into colour blocks and completes a short final
// block with filler. Words without hex yield an empty block list.
func ChunkAndPad(words []string, filler string) ([][]Color, error) {
	out := make([][]Color, len(words))
	for i, word := range words {
		chunks := Chunk(word, BlockSize)
		blocks := make([]Color, len(chunks))
		for j, c := range chunks {
			if len(c) < BlockSize {
				c += filler
				if len(c) > BlockSize {
					c = c[:BlockSize]
				}
			}

			block := Color(c)
			if !block.Valid() {
				return nil, fmt.Errorf("%w: word %d chunk %d is %q", ErrMalformedColor, i, j, c)
			}
			blocks[j] = block
		}
		out[i] = blocks
	}
	return out, nil
}
