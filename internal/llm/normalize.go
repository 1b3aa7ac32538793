package llm

import (
	"strings"
	"unicode"
)

const fence = "```"

// Clean trims the model output and removes code-fence markers, including the
// info string of an opening fence ("```json"). Clean is idempotent.
func Clean(raw string) string {
	s := strings.TrimSpace(raw)
	if !strings.Contains(s, fence) {
		return s
	}
	if rest, ok := strings.CutPrefix(s, fence); ok {
		s = dropInfoString(rest)
	}
	s = strings.ReplaceAll(s, fence, "")
	return strings.TrimSpace(s)
}

func dropInfoString(s string) string {
	if line, tail, found := strings.Cut(s, "\n"); found && isInfoString(strings.TrimSpace(line)) {
		return tail
	}
	// "```json{...}" with no newline after the tag
	if len(s) >= 4 && strings.EqualFold(s[:4], "json") {
		rest := strings.TrimLeftFunc(s[4:], unicode.IsSpace)
		if strings.HasPrefix(rest, "{") || strings.HasPrefix(rest, "[") {
			return rest
		}
	}
	return s
}

// infoStrings are the fence tags the model puts on its answers. Anything else
// on the opening line is treated as content.
var infoStrings = map[string]bool{
	"json":      true,
	"text":      true,
	"txt":       true,
	"plaintext": true,
	"markdown":  true,
	"md":        true,
}

func isInfoString(s string) bool {
	return infoStrings[strings.ToLower(s)]
}
