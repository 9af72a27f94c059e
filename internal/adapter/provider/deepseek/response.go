package deepseek

import (
	"encoding/json"
	"strings"

	"github.com/wordmemo/wordmemo-backend/internal/domain"
	"github.com/wordmemo/wordmemo-backend/internal/provider"
)

// chatRequest is the chat-completions request body.
type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
	MaxTokens   int           `json:"max_tokens"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// chatResponse is the subset of the chat-completions response we read.
type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

func (r chatResponse) content() string {
	if len(r.Choices) == 0 {
		return ""
	}
	return strings.TrimSpace(r.Choices[0].Message.Content)
}

// wordInfoPayload is the JSON object the model is asked to emit.
// Syllables arrive as a single space-separated string.
type wordInfoPayload struct {
	Phonetic         string `json:"phonetic"`
	Translation      string `json:"translation"`
	Syllables        string `json:"syllables"`
	PhoneticAnalysis string `json:"phonetic_analysis"`
	RootAffix        string `json:"root_affix"`
}

// parseWordInfo extracts the JSON object from the model output and validates
// it into an EnrichmentResult. Returns nil when no usable object is present.
func parseWordInfo(word, content string) *provider.EnrichmentResult {
	raw := extractJSONObject(content)
	if raw == "" {
		return nil
	}

	var p wordInfoPayload
	if err := json.Unmarshal([]byte(raw), &p); err != nil {
		return nil
	}

	syllables := domain.NormalizeSyllables(strings.Fields(p.Syllables))

	result := &provider.EnrichmentResult{
		Word:             domain.NormalizeText(word),
		Translation:      strings.TrimSpace(p.Translation),
		Phonetic:         strings.TrimSpace(p.Phonetic),
		PhoneticAnalysis: strings.TrimSpace(p.PhoneticAnalysis),
		RootAffix:        strings.TrimSpace(p.RootAffix),
		Syllables:        syllables,
	}

	if !result.Usable() {
		return nil
	}
	return result
}

// extractJSONObject returns the first balanced {...} block in s, or "".
// Models occasionally wrap the object in prose or a markdown fence.
func extractJSONObject(s string) string {
	start := strings.IndexByte(s, '{')
	if start < 0 {
		return ""
	}

	depth := 0
	inString := false
	escaped := false
	for i := start; i < len(s); i++ {
		c := s[i]
		if inString {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}
		switch c {
		case '"':
			inString = true
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return s[start : i+1]
			}
		}
	}
	return ""
}
