package document

import "strings"

// Display glyphs substituted for markdown markers in the editable text.
// Serialization maps each glyph back to its marker.
const (
	BulletGlyph    = "•"
	UncheckedGlyph = "☐"
	CheckedGlyph   = "☑"
)

// RuleGlyph is the fixed-width line rendered in place of a horizontal rule.
var RuleGlyph = strings.Repeat("─", 19)

// MonoFamily is the font family name used for code spans styled by a
// formatting command. Serialization treats any family containing "Mono"
// as code.
const MonoFamily = "JetBrains Mono"

// DefaultBaseSize is the fallback base font size in points.
const DefaultBaseSize = 14
