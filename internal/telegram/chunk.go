package telegram

// ChunkMessage splits text into ordered slices of at most maxLen runes.
// Boundaries are purely positional: every chunk except possibly the last has
// exactly maxLen runes, and concatenating the chunks reproduces the input.
func ChunkMessage(text string, maxLen int) []string {
	runes := []rune(text)
	if len(runes) <= maxLen {
		return []string{text}
	}

	parts := make([]string, 0, (len(runes)+maxLen-1)/maxLen)
	for start := 0; start < len(runes); start += maxLen {
		end := start + maxLen
		if end > len(runes) {
			end = len(runes)
		}
		parts = append(parts, string(runes[start:end]))
	}
	return parts
}
