package respond

import (
	"regexp"
)

var (
	// anthropic first: the OpenAI pattern would otherwise eat its prefix
	anthropicKeyPattern = regexp.MustCompile(`sk-ant-[a-zA-Z0-9-_]+`)
	// does not match an already masked key (contains '*')
	openaiKeyPattern = regexp.MustCompile(`sk-[a-zA-Z0-9]{10,}`)
	// Google API keys as used by Gemini
	googleKeyPattern = regexp.MustCompile(`AIza[0-9A-Za-z_-]{20,}`)

	// password inside a DSN
	dbPasswordPattern = regexp.MustCompile(`://([^:/@]+):([^@]+)@`)
)

// SanitizeError returns err's message with API keys and DSN passwords masked.
func SanitizeError(err error) string {
	if err == nil {
		return ""
	}

	msg := err.Error()

	msg = anthropicKeyPattern.ReplaceAllString(msg, "sk-ant-****")
	msg = openaiKeyPattern.ReplaceAllString(msg, "sk-****")
	msg = googleKeyPattern.ReplaceAllString(msg, "AIza****")

	msg = dbPasswordPattern.ReplaceAllString(msg, "://$1:****@")

	return msg
}
