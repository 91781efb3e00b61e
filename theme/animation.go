package theme

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"unicode"

	"github.com/samber/lo"
)

// Animation is a parsed animation shorthand such as "fadeIn 0.8s ease-in-out".
// Raw is kept verbatim and is what gets serialized.
type Animation struct {
	Raw            string
	Keyframes      string
	Duration       string
	Delay          string
	TimingFunction string
	IterationCount string
	// Modifiers holds direction, fill-mode and play-state keywords in source order.
	Modifiers []string
}

var (
	timeRe       = regexp.MustCompile(`^[0-9]*\.?[0-9]+m?s$`)
	countRe      = regexp.MustCompile(`^[0-9]*\.?[0-9]+$`)
	identifierRe = regexp.MustCompile(`^-?[_a-zA-Z][_a-zA-Z0-9-]*$`)

	timingKeywords = []string{"ease", "ease-in", "ease-out", "ease-in-out", "linear", "step-start", "step-end"}
	timingFuncs    = []string{"cubic-bezier(", "steps(", "linear("}
	modifierWords  = []string{
		"normal", "reverse", "alternate", "alternate-reverse",
		"forwards", "backwards", "both",
		"running", "paused",
	}
)

// ParseAnimation parses a single animation shorthand.
func ParseAnimation(raw string) (Animation, error) {
	fields, err := splitShorthand(raw)
	if err != nil {
		return Animation{}, err
	}
	if len(fields) == 0 {
		return Animation{}, errors.New("empty animation shorthand")
	}

	a := Animation{Raw: strings.TrimSpace(raw)}
	if len(fields) == 1 && fields[0] == "none" {
		a.Keyframes = "none"
		return a, nil
	}

	for _, field := range fields {
		switch {
		case timeRe.MatchString(field):
			if a.Duration == "" {
				a.Duration = field
			} else if a.Delay == "" {
				a.Delay = field
			} else {
				return Animation{}, fmt.Errorf("unexpected third time value %q", field)
			}
		case isTimingFunction(field):
			if a.TimingFunction != "" {
				return Animation{}, fmt.Errorf("duplicate timing function %q", field)
			}
			a.TimingFunction = field
		case field == "infinite" || countRe.MatchString(field):
			if a.IterationCount != "" {
				return Animation{}, fmt.Errorf("duplicate iteration count %q", field)
			}
			a.IterationCount = field
		case lo.Contains(modifierWords, field):
			a.Modifiers = append(a.Modifiers, field)
		case a.Keyframes == "" && identifierRe.MatchString(field):
			a.Keyframes = field
		default:
			return Animation{}, fmt.Errorf("unexpected token %q", field)
		}
	}

	if a.Keyframes == "" {
		return Animation{}, errors.New("missing keyframes name")
	}
	return a, nil
}

func isTimingFunction(field string) bool {
	if lo.Contains(timingKeywords, field) {
		return true
	}
	return lo.SomeBy(timingFuncs, func(prefix string) bool {
		return strings.HasPrefix(field, prefix) && strings.HasSuffix(field, ")")
	})
}

// splitShorthand splits on whitespace outside of parentheses.
func splitShorthand(s string) ([]string, error) {
	var (
		fields  []string
		current strings.Builder
		depth   int
	)
	flush := func() {
		if current.Len() > 0 {
			fields = append(fields, current.String())
			current.Reset()
		}
	}

	for _, r := range s {
		switch {
		case r == '(':
			depth++
			current.WriteRune(r)
		case r == ')':
			depth--
			if depth < 0 {
				return nil, errors.New("unbalanced parenthesis")
			}
			current.WriteRune(r)
		case unicode.IsSpace(r) && depth == 0:
			flush()
		case r == ',' && depth == 0:
			return nil, errors.New("multiple animations in one shorthand are not supported")
		default:
			current.WriteRune(r)
		}
	}
	if depth != 0 {
		return nil, errors.New("unbalanced parenthesis")
	}
	flush()
	return fields, nil
}
