package respond

import (
	"regexp"
)

var (
	// Google API keys always start with AIza.
	googleKeyPattern = regexp.MustCompile(`AIza[0-9A-Za-z_\-]{20,}`)

	// key=... query parameters inside upstream URLs that leak into errors.
	keyParamPattern = regexp.MustCompile(`([?&]key=)[^&\s"]+`)

	// Credentials embedded in URLs (user:password@host).
	urlCredsPattern = regexp.MustCompile(`://([^:/\s]+):([^@/\s]+)@`)
)

// SanitizeError masks credentials in an error message before it is logged.
func SanitizeError(err error) string {
	if err == nil {
		return ""
	}

	msg := err.Error()
	msg = googleKeyPattern.ReplaceAllString(msg, "AIza****")
	msg = keyParamPattern.ReplaceAllString(msg, "${1}****")
	msg = urlCredsPattern.ReplaceAllString(msg, "://$1:****@")

	return msg
}
