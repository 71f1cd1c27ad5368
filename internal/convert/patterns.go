package convert

import "regexp"

// One compiled pattern per construct. The inline patterns are declared in
// their scanning precedence order: bold > italic > code > link (§ inline
// scanning in the converter doc comment). Keeping them named here makes
// that order auditable in one place.
var (
	// Block-level patterns, matched against a single line.
	headingPattern  = regexp.MustCompile(`^(#{1,3}) `)
	bulletPattern   = regexp.MustCompile(`^(\s*)[-*] `)
	checkboxPattern = regexp.MustCompile(`^(\s*)\[( |x|X)\] `)

	// Inline patterns, in precedence order.
	boldPattern   = regexp.MustCompile(`\*\*([^*]+)\*\*`)
	italicPattern = regexp.MustCompile(`\*([^*]+)\*`)
	codePattern   = regexp.MustCompile("`[^`]+`")
	linkPattern   = regexp.MustCompile(`\[[^\]]+\]\([^)]+\)`)
)

// Patterns used only by LooksLikeMarkdown; multiline so a marker on any
// line of a pasted block counts.
var (
	anyHeadingPattern = regexp.MustCompile(`(?m)^#{1,3} `)
	anyListPattern    = regexp.MustCompile(`(?m)^\s*([-*+]|\d+\.|\[( |x|X)\]) `)
	anyRulePattern    = regexp.MustCompile(`(?m)^\s*(-{3}|\*{3})\s*$`)
)
