package common

import (
	"fmt"
	"strings"
)

// TemplateVariables are the only placeholders a level-up message may use.
var TemplateVariables = []string{"user_mention", "level"}

// Template is a level-up message with {variable} placeholders, parsed and
// variable-checked at construction so rendering can never fail.
type Template struct {
	raw   string
	parts []templatePart
}

type templatePart struct {
	text     string
	variable bool
}

// CompileTemplate parses a level-up message template. It returns an error for
// unbalanced braces or placeholders outside TemplateVariables.
func CompileTemplate(raw string) (*Template, error) {
	var parts []templatePart
	rest := raw
	for len(rest) > 0 {
		open := strings.IndexByte(rest, '{')
		if open < 0 {
			if strings.IndexByte(rest, '}') >= 0 {
				return nil, fmt.Errorf("template %q: unmatched '}'", raw)
			}
			parts = append(parts, templatePart{text: rest})
			break
		}
		if open > 0 {
			if strings.IndexByte(rest[:open], '}') >= 0 {
				return nil, fmt.Errorf("template %q: unmatched '}'", raw)
			}
			parts = append(parts, templatePart{text: rest[:open]})
		}
		rest = rest[open+1:]
		end := strings.IndexByte(rest, '}')
		if end < 0 {
			return nil, fmt.Errorf("template %q: unmatched '{'", raw)
		}
		name := rest[:end]
		if !isTemplateVariable(name) {
			return nil, fmt.Errorf("template %q: unknown variable %q", raw, name)
		}
		parts = append(parts, templatePart{text: name, variable: true})
		rest = rest[end+1:]
	}
	return &Template{raw: raw, parts: parts}, nil
}

func isTemplateVariable(name string) bool {
	for _, v := range TemplateVariables {
		if name == v {
			return true
		}
	}
	return false
}

// Render substitutes the given variable values. Variables missing from the
// map render as empty strings.
func (t *Template) Render(vars map[string]string) string {
	var b strings.Builder
	for _, p := range t.parts {
		if p.variable {
			b.WriteString(vars[p.text])
		} else {
			b.WriteString(p.text)
		}
	}
	return b.String()
}

// Input returns the raw template string the template was compiled from.
func (t *Template) Input() string {
	return t.raw
}
