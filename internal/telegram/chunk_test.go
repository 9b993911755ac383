package telegram

import (
	"strings"
	"testing"
	"unicode/utf8"
)

func TestChunkMessage_RoundTrip(t *testing.T) {
	cases := []struct {
		name   string
		text   string
		maxLen int
	}{
		{"empty", "", 10},
		{"short", "hello", 10},
		{"exact", strings.Repeat("a", 10), 10},
		{"one over", strings.Repeat("a", 11), 10},
		{"long", strings.Repeat("b", 105), 10},
		{"cyrillic", strings.Repeat("привет ", 30), 16},
		{"limit one", "abcdef", 1},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			parts := ChunkMessage(tc.text, tc.maxLen)

			if strings.Join(parts, "") != tc.text {
				t.Fatalf("concatenated chunks do not reproduce input")
			}
			for i, p := range parts {
				n := utf8.RuneCountInString(p)
				if i < len(parts)-1 && n != tc.maxLen {
					t.Fatalf("chunk %d has %d runes, expected exactly %d", i, n, tc.maxLen)
				}
				if n > tc.maxLen {
					t.Fatalf("chunk %d has %d runes, over the limit %d", i, n, tc.maxLen)
				}
			}
		})
	}
}

func TestChunkMessage_TelegramLimit(t *testing.T) {
	limit := 4096

	parts := ChunkMessage(strings.Repeat("x", 4096), limit)
	if len(parts) != 1 {
		t.Fatalf("expected 1 chunk for a limit-sized message, got %d", len(parts))
	}

	parts = ChunkMessage(strings.Repeat("x", 4100), limit)
	if len(parts) != 2 {
		t.Fatalf("expected 2 chunks, got %d", len(parts))
	}
	if utf8.RuneCountInString(parts[0]) != 4096 {
		t.Fatalf("expected first chunk of 4096 runes, got %d", utf8.RuneCountInString(parts[0]))
	}
	if utf8.RuneCountInString(parts[1]) != 4 {
		t.Fatalf("expected second chunk of 4 runes, got %d", utf8.RuneCountInString(parts[1]))
	}
}

func TestFixMarkdown(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"plain text", "plain text"},
		{"closed `code`", "closed `code`"},
		{"dangling `code", "dangling `code`"},
		{"```go\nfmt.Println()\n```", "```go\nfmt.Println()\n```"},
		{"```go\nfmt.Println()", "```go\nfmt.Println()\n```"},
	}
	for _, tc := range cases {
		if got := FixMarkdown(tc.in); got != tc.want {
			t.Errorf("FixMarkdown(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
