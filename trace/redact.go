package trace

import (
	"regexp"

	"github.com/kinkinyang/zhmclog/core"
)

// secretPatterns cover the credential shapes that appear in HMC request
// and response payloads: JSON members ("password":"...") and key-value
// pairs (password=...). Matched values are replaced by core.SecretMask,
// the same mask that secret log fields render as.
var secretPatterns = []struct {
	re   *regexp.Regexp
	repl string
}{
	{
		re:   regexp.MustCompile(`(?i)("(?:password|passwd|pwd|session-?id|api-session|token)"\s*:\s*")[^"]*(")`),
		repl: "${1}" + core.SecretMask + "${2}",
	},
	{
		re:   regexp.MustCompile(`(?i)\b((?:password|passwd|pwd|session-?id|token)\s*[:=]\s*)[^\s,()&"'\]}]+`),
		repl: "${1}" + core.SecretMask,
	},
}

// Redact masks password and session credential values embedded in s. The
// call-logging wrapper applies it to every argument and result
// representation; the transport layer can reuse it for request and
// response bodies.
func Redact(s string) string {
	for _, p := range secretPatterns {
		s = p.re.ReplaceAllString(s, p.repl)
	}
	return s
}
