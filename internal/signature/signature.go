// Package signature splits raw declaration strings into styled tokens for
// rendering. It understands one shape: a name, a parenthesized parameter
// list, and an optional arrow return type. Anything else passes through
// as a single verbatim token, so malformed input degrades instead of
// failing a build.
package signature

import (
	"regexp"
	"strings"
)

// Kind selects the style class a token is rendered with.
type Kind string

const (
	KindName  Kind = "fn"   // function or method name, also used for verbatim text
	KindText  Kind = "text" // parameter names and parentheses
	KindOp    Kind = "op"   // colons, separators, the return arrow
	KindType  Kind = "typ"  // parameter and return types
	KindPlain Kind = ""     // spacing emitted without a style class
)

// Token is one styled fragment of a signature, in display order.
type Token struct {
	Kind Kind
	Text string
}

// shape matches name(params) with an optional "-> ret" tail. The parameter
// group is non-greedy: it stops at the first ')' that still lets the tail
// match, which keeps parenthesized return types intact but splits wrongly
// when a parameter type itself contains parentheses.
var shape = regexp.MustCompile(`(?s)^([\w:.]+)\s*\((.*?)\)\s*(->\s*(.+))?$`)

// Tokenize renders a raw signature as an ordered token list. Inputs that
// do not match the declaration shape come back as one verbatim name-styled
// token carrying the original text. Tokenize never fails.
func Tokenize(sig string) []Token {
	sig = strings.TrimSpace(sig)

	m := shape.FindStringSubmatch(sig)
	if m == nil {
		return []Token{{Kind: KindName, Text: sig}}
	}
	name, params, ret := m[1], m[2], m[4]

	tokens := []Token{
		{Kind: KindName, Text: name},
		{Kind: KindText, Text: "("},
	}
	for i, param := range splitParams(params) {
		if i > 0 {
			tokens = append(tokens, Token{Kind: KindOp, Text: ", "})
		}
		tokens = append(tokens, paramTokens(param)...)
	}
	tokens = append(tokens, Token{Kind: KindText, Text: ")"})

	if ret != "" {
		tokens = append(tokens,
			Token{Kind: KindPlain, Text: " "},
			Token{Kind: KindOp, Text: "->"},
			Token{Kind: KindPlain, Text: " "},
			Token{Kind: KindType, Text: strings.TrimSpace(ret)},
		)
	}
	return tokens
}

// splitParams cuts the raw parameter text on every comma. Commas nested in
// generic or function types are split too; entries are written flat enough
// in practice that this has not mattered.
func splitParams(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		out = append(out, strings.TrimSpace(p))
	}
	return out
}

// paramTokens styles one parameter. A "name: Type" pair gets three styled
// fragments; anything without a colon stays plain parameter text.
func paramTokens(param string) []Token {
	name, typ, ok := strings.Cut(param, ":")
	if !ok {
		return []Token{{Kind: KindText, Text: param}}
	}
	return []Token{
		{Kind: KindText, Text: strings.TrimSpace(name)},
		{Kind: KindOp, Text: ":"},
		{Kind: KindPlain, Text: " "},
		{Kind: KindType, Text: strings.TrimSpace(typ)},
	}
}
