package extract

import (
	"html"
	"regexp"
	"strings"
)

// Mode decides what happens when no pattern of a field matches.
type Mode int

const (
	// Required fields fail the extraction with a FieldNotFoundError.
	Required Mode = iota
	// Optional fields are silently absent.
	Optional
	// Advisory fields are absent, but the miss is reported through Field.OnMiss.
	Advisory
)

// Pattern is one candidate markup shape for a field.
// Group names the capture to return; empty means the first participating group.
type Pattern struct {
	Expr  *regexp.Regexp
	Group string
}

// P builds a Pattern capturing the first participating group of expr.
func P(expr string) Pattern {
	return Pattern{Expr: regexp.MustCompile(expr)}
}

// capture returns the pattern's value in text. A match in which no capture
// group participated is treated the same as no match.
func (p Pattern) capture(text string) (string, bool) {
	loc := p.Expr.FindStringSubmatchIndex(text)
	if loc == nil {
		return "", false
	}

	if p.Group != "" {
		idx := p.Expr.SubexpIndex(p.Group)
		if idx < 0 || loc[2*idx] < 0 {
			return "", false
		}
		return text[loc[2*idx]:loc[2*idx+1]], true
	}

	if p.Expr.NumSubexp() == 0 {
		return text[loc[0]:loc[1]], true
	}
	for i := 1; i <= p.Expr.NumSubexp(); i++ {
		if loc[2*i] >= 0 {
			return text[loc[2*i]:loc[2*i+1]], true
		}
	}
	return "", false
}

// TryPatterns returns the capture of the first pattern that matches text.
// Patterns are tried strictly in order; later patterns are never consulted
// once one succeeds.
func TryPatterns(text string, patterns []Pattern) (string, bool) {
	for _, p := range patterns {
		if v, ok := p.capture(text); ok {
			return v, true
		}
	}
	return "", false
}

// Field is an ordered pattern chain for one named value.
type Field struct {
	Name     string
	Patterns []Pattern
	Mode     Mode
	// Clean strips markup and entities from the captured value.
	Clean bool
	// OnMiss is called with the field name when an Advisory field is absent.
	OnMiss func(field string)
}

// Find runs the field's chain against text. The boolean reports presence;
// the error is non-nil only for a Required field that matched nothing or
// whose value is empty once cleaned.
func (f Field) Find(text string) (string, bool, error) {
	v, ok := TryPatterns(text, f.Patterns)
	if !ok {
		switch f.Mode {
		case Required:
			return "", false, &FieldNotFoundError{Field: f.Name}
		case Advisory:
			if f.OnMiss != nil {
				f.OnMiss(f.Name)
			}
		}
		return "", false, nil
	}
	if f.Clean {
		v = CleanHTML(v)
	}
	if v == "" && f.Mode == Required {
		return "", false, &FieldNotFoundError{Field: f.Name}
	}
	return v, true, nil
}

// FindAll returns the capture of every occurrence of expr in text, in order.
func FindAll(text string, expr *regexp.Regexp) []string {
	var out []string
	for _, m := range expr.FindAllStringSubmatch(text, -1) {
		if len(m) > 1 {
			out = append(out, m[1])
		}
	}
	return out
}

var (
	brTagRe    = regexp.MustCompile(`\s*<\s*br\s*/?\s*>\s*`)
	paraJoinRe = regexp.MustCompile(`<\s*/\s*p\s*>\s*<\s*p[^>]*>`)
	anyTagRe   = regexp.MustCompile(`<[^>]*>`)
)

// CleanHTML turns a markup snippet into plain text: line breaks and paragraph
// boundaries become newlines, other tags are dropped, entities are decoded.
func CleanHTML(s string) string {
	s = strings.ReplaceAll(s, "\n", " ")
	s = brTagRe.ReplaceAllString(s, "\n")
	s = paraJoinRe.ReplaceAllString(s, "\n")
	s = anyTagRe.ReplaceAllString(s, "")
	s = html.UnescapeString(s)
	return strings.TrimSpace(s)
}
