package generator

import (
	"strings"

	"github.com/klauern/taskgen/internal/stub"
)

// substitution replaces one placeholder token with a request value.
type substitution struct {
	token string
	value func(Request) string
}

// substitutions run in this order.
var substitutions = []substitution{
	{stub.TokenFrequency, func(r Request) string { return trimCall(r.Frequency) }},
	{stub.TokenConstraint, func(r Request) string { return trimCall(r.Constraint) }},
	{stub.TokenCommand, func(r Request) string { return r.Command }},
	{stub.TokenPath, func(r Request) string { return r.Path }},
	{stub.TokenDescription, func(r Request) string { return r.Description }},
}

// Substitute replaces every occurrence of each placeholder token in tmpl
// with the matching request value.
func Substitute(tmpl string, req Request) string {
	text := tmpl
	for _, s := range substitutions {
		text = strings.ReplaceAll(text, s.token, s.value(req))
	}
	return text
}

// trimCall strips trailing parentheses so "daily()" and "daily" both render
// as a method name the stub calls itself.
func trimCall(v string) string {
	return strings.TrimRight(v, "()")
}
