package convert

import "regexp"

// detectPatterns is the sniffing set for pasted text: one hit on any
// construct is enough to treat the paste as markdown.
var detectPatterns = []*regexp.Regexp{
	anyHeadingPattern,
	anyListPattern,
	anyRulePattern,
	boldPattern,
	italicPattern,
	codePattern,
	linkPattern,
}

// LooksLikeMarkdown reports whether pasted text should be run through
// ToDocument rather than inserted as plain text. It is a heuristic over
// the same pattern set the parser uses.
func LooksLikeMarkdown(text string) bool {
	for _, p := range detectPatterns {
		if p.MatchString(text) {
			return true
		}
	}
	return false
}
