// Package expr recognizes relation-forming calls in a member body.
//
// It understands a deliberately small grammar:
//
//	call    = [recv "."] verb "(" [target] {"," arg} ")" ["." through "(" target ")"]
//	verb    = belongsTo | belongsToMany | hasOne | hasMany | morphOne | morphTo | morphMany
//	target  = ["&"] ident {"." ident} ["{" "}"] | string
//	arg     = list | string | object
//	list    = "[" string "]" | "[" "]" ident "{" string "}"
//	object  = "{" {ident ":" value [","]} "}"
//
// Verbs match with either case of their first letter, so Go-style method
// names (BelongsTo) are recognized too. Anything else in the body is ignored.
package expr

import (
	"strings"
	"text/scanner"
	"unicode"
	"unicode/utf8"
)

// Verbs lists the relation-forming verbs in canonical form.
var Verbs = []string{
	"belongsTo",
	"belongsToMany",
	"hasOne",
	"hasMany",
	"morphOne",
	"morphTo",
	"morphMany",
}

// TokenKind classifies a target or through argument.
type TokenKind int

const (
	// TokenNone means the argument was not given.
	TokenNone TokenKind = iota
	// TokenIdent is a bare or qualified identifier (a model reference).
	TokenIdent
	// TokenString is a quoted string literal.
	TokenString
	// TokenUnresolved is an argument that is neither, e.g. a call.
	TokenUnresolved
)

// Token is a target or through argument.
type Token struct {
	Kind TokenKind
	Text string // identifier or unquoted literal; empty unless Kind is TokenIdent or TokenString
}

// Call is the recognized relation-forming call.
type Call struct {
	Verb    string // canonical verb, one of Verbs
	Target  Token
	Through Token
	Key     string // explicit key literal, if any
}

// Parse returns the first relation-forming call found in body.
func Parse(body string) (Call, bool) {
	toks := tokenize(body)
	for i := 0; i+1 < len(toks); i++ {
		if toks[i].tok != scanner.Ident || toks[i+1].tok != '(' {
			continue
		}
		verb, ok := canonicalVerb(toks[i].text)
		if !ok {
			continue
		}
		p := &parser{toks: toks, pos: i + 1}
		return p.call(verb), true
	}
	return Call{}, false
}

func canonicalVerb(name string) (string, bool) {
	r, size := utf8.DecodeRuneInString(name)
	if r == utf8.RuneError {
		return "", false
	}
	name = string(unicode.ToLower(r)) + name[size:]
	for _, v := range Verbs {
		if v == name {
			return v, true
		}
	}
	return "", false
}

type token struct {
	tok  rune
	text string
}

func tokenize(body string) []token {
	var s scanner.Scanner
	s.Init(strings.NewReader(body))
	s.Mode = scanner.ScanIdents | scanner.ScanInts | scanner.ScanFloats |
		scanner.ScanChars | scanner.ScanStrings | scanner.ScanRawStrings |
		scanner.ScanComments | scanner.SkipComments
	// Single-quoted strings scan as malformed char literals; keep going.
	s.Error = func(*scanner.Scanner, string) {}

	var toks []token
	for tok := s.Scan(); tok != scanner.EOF; tok = s.Scan() {
		toks = append(toks, token{tok: tok, text: s.TokenText()})
	}
	return toks
}

type parser struct {
	toks []token
	pos  int
}

func (p *parser) peek() token {
	if p.pos >= len(p.toks) {
		return token{tok: scanner.EOF}
	}
	return p.toks[p.pos]
}

func (p *parser) next() token {
	t := p.peek()
	if p.pos < len(p.toks) {
		p.pos++
	}
	return t
}

// call parses the argument list at p.pos (an opening paren) and any
// chained through qualifier.
func (p *parser) call(verb string) Call {
	c := Call{Verb: verb}

	args := p.args()
	if len(args) > 0 {
		c.Target = target(args[0])
	}
	// Only the argument right after the target is the key; later literals
	// name the other side's column.
	var optKey string
	for i, arg := range args[min(1, len(args)):] {
		if key, ok := keyLiteral(arg); ok {
			if i == 0 {
				c.Key = key
			}
			continue
		}
		if opts, ok := object(arg); ok {
			if v, ok := opts["through"]; ok {
				c.Through = target(v)
			}
			if v, ok := opts["foreignKey"]; ok {
				if key, ok := keyLiteral(v); ok && optKey == "" {
					optKey = key
				}
			}
		}
	}
	if c.Key == "" {
		c.Key = optKey
	}

	for p.peek().tok == '.' {
		p.next()
		name := p.next()
		if p.peek().tok != '(' {
			continue
		}
		chained := p.args()
		if name.tok == scanner.Ident && strings.EqualFold(name.text, "through") && len(chained) > 0 {
			c.Through = target(chained[0])
		}
	}
	return c
}

// args consumes a parenthesized, comma separated list and returns the
// tokens of each top-level argument.
func (p *parser) args() [][]token {
	if p.next().tok != '(' {
		return nil
	}
	var (
		out   [][]token
		cur   []token
		depth int
	)
	for {
		t := p.next()
		switch t.tok {
		case scanner.EOF:
			return appendArg(out, cur)
		case '(', '[', '{':
			depth++
		case ')', ']', '}':
			if depth == 0 {
				return appendArg(out, cur)
			}
			depth--
		case ',':
			if depth == 0 {
				out = appendArg(out, cur)
				cur = nil
				continue
			}
		}
		cur = append(cur, t)
	}
}

func appendArg(out [][]token, arg []token) [][]token {
	if len(arg) == 0 {
		return out
	}
	return append(out, arg)
}

// target interprets a target or through argument.
func target(arg []token) Token {
	if len(arg) == 0 {
		return Token{}
	}
	if len(arg) == 1 && isString(arg[0]) {
		return Token{Kind: TokenString, Text: unquote(arg[0].text)}
	}
	// Go composite literals name their type: &Post{} and Post{}.
	if arg[0].tok == '&' {
		arg = arg[1:]
	}
	if n := len(arg); n >= 3 && arg[n-2].tok == '{' && arg[n-1].tok == '}' {
		arg = arg[:n-2]
	}
	// ident {"." ident}: a qualified reference keeps its last element.
	if len(arg)%2 == 1 && len(arg) > 0 {
		for i, t := range arg {
			if (i%2 == 0 && t.tok != scanner.Ident) || (i%2 == 1 && t.tok != '.') {
				return Token{Kind: TokenUnresolved}
			}
		}
		return Token{Kind: TokenIdent, Text: arg[len(arg)-1].text}
	}
	return Token{Kind: TokenUnresolved}
}

// keyLiteral accepts "k", ["k"] and []string{"k"}.
func keyLiteral(arg []token) (string, bool) {
	switch {
	case len(arg) == 1 && isString(arg[0]):
		return unquote(arg[0].text), true
	case len(arg) == 3 && arg[0].tok == '[' && isString(arg[1]) && arg[2].tok == ']':
		return unquote(arg[1].text), true
	case len(arg) == 6 && arg[0].tok == '[' && arg[1].tok == ']' && arg[2].tok == scanner.Ident &&
		arg[3].tok == '{' && isString(arg[4]) && arg[5].tok == '}':
		return unquote(arg[4].text), true
	}
	return "", false
}

// object parses {name: value, ...} into its top-level entries.
func object(arg []token) (map[string][]token, bool) {
	if len(arg) < 2 || arg[0].tok != '{' || arg[len(arg)-1].tok != '}' {
		return nil, false
	}
	inner := arg[1 : len(arg)-1]
	out := make(map[string][]token)
	for len(inner) > 0 {
		if len(inner) < 2 || inner[1].tok != ':' {
			return out, true
		}
		name := inner[0].text
		if isString(inner[0]) {
			name = unquote(name)
		}
		inner = inner[2:]

		var (
			value []token
			depth int
		)
		for len(inner) > 0 {
			t := inner[0]
			if t.tok == ',' && depth == 0 {
				inner = inner[1:]
				break
			}
			switch t.tok {
			case '(', '[', '{':
				depth++
			case ')', ']', '}':
				depth--
			}
			value = append(value, t)
			inner = inner[1:]
		}
		out[name] = value
	}
	return out, true
}

func isString(t token) bool {
	return t.tok == scanner.String || t.tok == scanner.RawString || t.tok == scanner.Char
}

func unquote(s string) string {
	if len(s) >= 2 {
		return s[1 : len(s)-1]
	}
	return s
}
