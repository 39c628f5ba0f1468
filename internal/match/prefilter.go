package match

import (
	"regexp"
	"strings"
)

// significantToken matches the tokens that make a name recognizable: version
// numbers like "4" or "2.1", and alphabetic runs of two or more characters.
var significantToken = regexp.MustCompile(`\d+(\.\d+)?|[a-z]{2,}`)

func tokenize(s string) []string {
	return significantToken.FindAllString(strings.ToLower(s), -1)
}

// Prefilter shrinks the identifier universe down to the candidates worth
// showing the language model, keeping prompts bounded. An identifier is kept
// when any of its tokens appears in any display name, and unconditionally
// when it carries the "-free" suffix: free variants systematically lack a
// matching token in the display name and would otherwise be dropped. The
// result may be empty; callers fall through to the deterministic path.
func Prefilter(identifiers, names []string) []string {
	nameTokens := map[string]struct{}{}
	for _, name := range names {
		for _, tok := range tokenize(name) {
			nameTokens[tok] = struct{}{}
		}
	}

	rs := newResultSet()
	for _, id := range identifiers {
		if strings.HasSuffix(strings.ToLower(id), "-"+freeSuffix) {
			rs.add(id)
			continue
		}
		for _, tok := range tokenize(id) {
			if _, ok := nameTokens[tok]; ok {
				rs.add(id)
				break
			}
		}
	}
	return rs.ids()
}
