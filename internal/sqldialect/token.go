// Package sqldialect provides the dialect profiles, the tolerant SQL parser
// and the oracle that decides whether a function call diverges across the
// configured dialects.
package sqldialect

import (
	"errors"
	"fmt"
)

type tokenKind int

const (
	tokenWord tokenKind = iota
	tokenString
	tokenNumber
	tokenLParen
	tokenRParen
	tokenComma
	tokenStar
	tokenSymbol
)

type token struct {
	kind tokenKind
	text string
}

var errUnterminatedString = errors.New("unterminated string literal")

// multiSymbols are matched longest-first before falling back to single
// characters.
var multiSymbols = []string{"<>", "<=", ">=", "!=", "||", "::", "->>", "->"}

// tokenize splits masked SQL into tokens. Comments are dropped, everything
// else is preserved verbatim in token text so renderings can be located in
// the original source again.
func tokenize(sql string) ([]token, error) {
	var toks []token

	i := 0

	for i < len(sql) {
		c := sql[i]

		switch {
		case c == ' ' || c == '\t' || c == '\n' || c == '\r':
			i++
		case c == '-' && i+1 < len(sql) && sql[i+1] == '-':
			for i < len(sql) && sql[i] != '\n' {
				i++
			}
		case c == '/' && i+1 < len(sql) && sql[i+1] == '*':
			i = skipBlockComment(sql, i+2)
		case c == '\'':
			end, err := scanQuoted(sql, i, '\'')
			if err != nil {
				return nil, err
			}

			toks = append(toks, token{kind: tokenString, text: sql[i:end]})
			i = end
		case c == '"' || c == '`':
			end, err := scanQuoted(sql, i, c)
			if err != nil {
				return nil, err
			}

			toks = append(toks, token{kind: tokenWord, text: sql[i:end]})
			i = end
		case isDigit(c):
			j := i
			for j < len(sql) && (isDigit(sql[j]) || sql[j] == '.') {
				j++
			}

			toks = append(toks, token{kind: tokenNumber, text: sql[i:j]})
			i = j
		case isWordStart(c):
			j := i
			for j < len(sql) && isWordPart(sql[j]) {
				j++
			}

			toks = append(toks, token{kind: tokenWord, text: sql[i:j]})
			i = j
		case c == '(':
			toks = append(toks, token{kind: tokenLParen, text: "("})
			i++
		case c == ')':
			toks = append(toks, token{kind: tokenRParen, text: ")"})
			i++
		case c == ',':
			toks = append(toks, token{kind: tokenComma, text: ","})
			i++
		case c == '*':
			toks = append(toks, token{kind: tokenStar, text: "*"})
			i++
		default:
			if sym := matchMultiSymbol(sql, i); sym != "" {
				toks = append(toks, token{kind: tokenSymbol, text: sym})
				i += len(sym)

				continue
			}

			toks = append(toks, token{kind: tokenSymbol, text: sql[i : i+1]})
			i++
		}
	}

	return toks, nil
}

// scanQuoted returns the offset past the quoted run starting at i. A doubled
// quote is the escape sequence; backslash escapes are honored inside single
// quotes as several dialects allow them.
func scanQuoted(sql string, i int, quote byte) (int, error) {
	j := i + 1

	for j < len(sql) {
		switch sql[j] {
		case '\\':
			if quote == '\'' {
				j++
			}
		case quote:
			if j+1 < len(sql) && sql[j+1] == quote {
				j++
				break
			}

			return j + 1, nil
		}

		j++
	}

	return 0, fmt.Errorf("%w: %s", errUnterminatedString, sql[i:min(i+16, len(sql))])
}

func skipBlockComment(sql string, i int) int {
	for i+1 < len(sql) {
		if sql[i] == '*' && sql[i+1] == '/' {
			return i + 2
		}

		i++
	}

	return len(sql)
}

func matchMultiSymbol(sql string, i int) string {
	for _, sym := range multiSymbols {
		if len(sql)-i >= len(sym) && sql[i:i+len(sym)] == sym {
			return sym
		}
	}

	return ""
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isWordStart(c byte) bool {
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isWordPart(c byte) bool {
	return isWordStart(c) || isDigit(c) || c == '$'
}
