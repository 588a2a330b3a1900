package template

import (
	"strings"
	"testing"
)

func TestSubstitute(t *testing.T) {
	vars := FromMap(map[string]string{
		"APP_BITCOIN_IP":       "10.21.21.8",
		"APP_BITCOIN_RPC_PORT": "8332",
		"EMPTY":                "",
	})

	cases := []struct {
		name  string
		input string
		want  string
	}{
		{"no expressions", "plain text", "plain text"},
		{"simple", "${APP_BITCOIN_IP}", "10.21.21.8"},
		{"embedded", "http://${APP_BITCOIN_IP}:${APP_BITCOIN_RPC_PORT}", "http://10.21.21.8:8332"},
		{"unset becomes empty", "host=${APP_MISSING_IP}", "host="},
		{"default when unset", "${APP_MISSING_IP:-0.0.0.0}", "0.0.0.0"},
		{"default when empty", "${EMPTY:-fallback}", "fallback"},
		{"dash keeps empty value", "${EMPTY-fallback}", ""},
		{"operand with dash", "${APP_MISSING_IP:-some-default}", "some-default"},
		{"unterminated left verbatim", "${APP_BITCOIN_IP", "${APP_BITCOIN_IP"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Substitute(tc.input, vars)
			if err != nil {
				t.Fatalf("Substitute failed: %v", err)
			}
			if got != tc.want {
				t.Errorf("expected %q, got %q", tc.want, got)
			}
		})
	}
}

func TestSubstituteRequiredErrors(t *testing.T) {
	vars := FromMap(map[string]string{"EMPTY": ""})

	if _, err := Substitute("${MISSING:?must be set}", vars); err == nil {
		t.Error("expected error for unset required variable")
	} else if !strings.Contains(err.Error(), "must be set") {
		t.Errorf("error must carry the message, got %v", err)
	}

	if _, err := Substitute("${EMPTY:?none}", vars); err == nil {
		t.Error("expected error for empty required variable with :?")
	}
	if _, err := Substitute("${EMPTY?none}", vars); err != nil {
		t.Errorf("set-but-empty must satisfy ?, got %v", err)
	}
}

func TestChainPrecedence(t *testing.T) {
	first := FromMap(map[string]string{"NAME": "first"})
	second := FromMap(map[string]string{"NAME": "second", "ONLY": "second"})

	lookup := Chain(first, second)
	got, err := Substitute("${NAME}/${ONLY}", lookup)
	if err != nil {
		t.Fatalf("Substitute failed: %v", err)
	}
	if got != "first/second" {
		t.Errorf("expected first lookup to win, got %q", got)
	}
}
