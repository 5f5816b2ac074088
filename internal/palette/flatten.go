package palette

// Flatten concatenates per-word blocks in word order. Empty words vanish.
func Flatten(perWord [][]Color) Palette {
	total := 0
	for _, blocks := range perWord {
		total += len(blocks)
	}

	flat := make(Palette, 0, total)
	for _, blocks := range perWord {
		flat = append(flat, blocks...)
	}
	return flat
}
