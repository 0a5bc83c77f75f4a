// Package content holds the per-subject configuration tables the parsers
// trust: which categories exist, their display names, and the source-document
// number range each one covers. A markdown heading that names no category
// listed here is ignored by the parsers.
package content

// Format selects which grammar a subject's markdown file is authored in.
type Format string

const (
	// FormatCloze: problems section + answer-key section, bold-span blanks.
	FormatCloze Format = "cloze"
	// FormatBlocks: rule-delimited blocks with TYPE/OPTIONS/ANSWER fields.
	FormatBlocks Format = "blocks"
)

type SubjectConfig struct {
	ID          string
	Name        string
	Description string
}

type CategoryConfig struct {
	ID          string
	Name        string
	NameEn      string
	Description string
	Start       int
	End         int
}

// SubjectPack is one subject's full configuration. Categories is keyed by
// exact display name; Order preserves the table's declaration order for
// deterministic output.
type SubjectPack struct {
	Subject    SubjectConfig
	Format     Format
	Categories map[string]CategoryConfig
	Order      []string
}

// CategoryNames returns the configured display names in declaration order.
func (p SubjectPack) CategoryNames() []string {
	return append([]string(nil), p.Order...)
}

var registry []SubjectPack

// Register adds a subject pack; each subject file calls this from init.
func Register(p SubjectPack) {
	registry = append(registry, p)
}

// Subjects returns all registered subject packs in registration order.
func Subjects() []SubjectPack {
	return append([]SubjectPack(nil), registry...)
}

func pack(subject SubjectConfig, format Format, categories []CategoryConfig) SubjectPack {
	p := SubjectPack{
		Subject:    subject,
		Format:     format,
		Categories: make(map[string]CategoryConfig, len(categories)),
		Order:      make([]string, 0, len(categories)),
	}
	for _, c := range categories {
		p.Categories[c.Name] = c
		p.Order = append(p.Order, c.Name)
	}
	return p
}
