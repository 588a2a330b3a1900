package template

import (
	"fmt"
	"strings"
)

// Lookup resolves a variable name to its value. The boolean reports whether
// the variable is set at all, mirroring os.LookupEnv.
type Lookup func(name string) (string, bool)

// FromMap adapts a plain map to a Lookup.
func FromMap(vars map[string]string) Lookup {
	return func(name string) (string, bool) {
		v, ok := vars[name]
		return v, ok
	}
}

// Chain tries each lookup in order and returns the first hit.
func Chain(lookups ...Lookup) Lookup {
	return func(name string) (string, bool) {
		for _, l := range lookups {
			if v, ok := l(name); ok {
				return v, true
			}
		}
		return "", false
	}
}

// Substitute performs Compose-style variable substitution on input using the
// provided lookup. Supported forms, matching the Compose specification:
//
//	${VAR}          value, or empty string when unset
//	${VAR:-default} default when VAR is unset or empty
//	${VAR-default}  default only when VAR is unset
//	${VAR:?message} error when VAR is unset or empty
//	${VAR?message}  error when VAR is unset
//
// Unset variables without a default substitute to the empty string rather
// than failing: a reference to a resource another app has not published yet
// must degrade to "no value", not to an error.
func Substitute(input string, lookup Lookup) (string, error) {
	start := strings.Index(input, "${")
	if start == -1 {
		return input, nil
	}

	var b strings.Builder
	b.Grow(len(input))

	for start != -1 {
		b.WriteString(input[:start])
		rest := input[start+2:]

		end := strings.IndexByte(rest, '}')
		if end == -1 {
			// Unterminated expression: keep the remainder verbatim.
			b.WriteString(input[start:])
			return b.String(), nil
		}

		value, err := evaluate(rest[:end], lookup)
		if err != nil {
			return "", err
		}
		b.WriteString(value)

		input = rest[end+1:]
		start = strings.Index(input, "${")
	}
	b.WriteString(input)

	return b.String(), nil
}

// evaluate resolves a single expression without the surrounding ${}.
func evaluate(expr string, lookup Lookup) (string, error) {
	name, op, operand := splitExpr(expr)
	if name == "" {
		return "", fmt.Errorf("invalid variable expression: ${%s}", expr)
	}

	value, set := lookup(name)

	switch op {
	case "":
		if set {
			return value, nil
		}
		return "", nil
	case "-":
		if set {
			return value, nil
		}
		return operand, nil
	case ":-":
		if set && value != "" {
			return value, nil
		}
		return operand, nil
	case "?":
		if set {
			return value, nil
		}
		return "", fmt.Errorf("required variable %s is not set: %s", name, operand)
	case ":?":
		if set && value != "" {
			return value, nil
		}
		return "", fmt.Errorf("required variable %s is not set or empty: %s", name, operand)
	default:
		return "", fmt.Errorf("invalid variable expression: ${%s}", expr)
	}
}

// splitExpr separates the variable name from the operator and its operand.
// The name ends at the first character that cannot be part of an
// environment variable name, so operands containing "-" or "?" are safe.
func splitExpr(expr string) (name, op, operand string) {
	i := 0
	for i < len(expr) && isNameChar(expr[i]) {
		i++
	}
	name = expr[:i]
	if i == len(expr) {
		return name, "", ""
	}

	rest := expr[i:]
	for _, candidate := range []string{":-", ":?", "-", "?"} {
		if strings.HasPrefix(rest, candidate) {
			return name, candidate, rest[len(candidate):]
		}
	}
	return "", "", ""
}

func isNameChar(c byte) bool {
	return c == '_' ||
		(c >= 'a' && c <= 'z') ||
		(c >= 'A' && c <= 'Z') ||
		(c >= '0' && c <= '9')
}
