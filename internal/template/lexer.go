// Package template partitions templated SQL source into typed regions and
// builds the masked projection handed to the SQL parser.
package template

import (
	"errors"
	"strings"
)

type pieceKind int

const (
	pieceData pieceKind = iota
	pieceExpression
	pieceBlock
	pieceComment
)

// piece is a lexed slice of the source: either plain data or one complete
// template unit including its delimiters. Content always reproduces the
// original bytes for [start, end).
type piece struct {
	kind    pieceKind
	start   int
	end     int
	content string
}

var errUnterminated = errors.New("unterminated template construct")

type opener struct {
	token  string
	closer string
	kind   pieceKind
}

var openers = []opener{
	{token: "{{", closer: "}}", kind: pieceExpression},
	{token: "{%", closer: "%}", kind: pieceBlock},
	{token: "{#", closer: "#}", kind: pieceComment},
}

// lex splits source into data pieces and complete template units. It fails
// on an unterminated unit or an unterminated string literal inside one; the
// caller degrades to a whole-file unsafe region in that case.
func lex(source string) ([]piece, error) {
	var pieces []piece

	pos := 0

	for pos < len(source) {
		op, openAt := nextOpener(source, pos)
		if openAt < 0 {
			pieces = append(pieces, piece{
				kind:    pieceData,
				start:   pos,
				end:     len(source),
				content: source[pos:],
			})

			break
		}

		if openAt > pos {
			pieces = append(pieces, piece{
				kind:    pieceData,
				start:   pos,
				end:     openAt,
				content: source[pos:openAt],
			})
		}

		end, err := scanUnit(source, openAt, op)
		if err != nil {
			return nil, err
		}

		pieces = append(pieces, piece{
			kind:    op.kind,
			start:   openAt,
			end:     end,
			content: source[openAt:end],
		})

		pos = end
	}

	return pieces, nil
}

// nextOpener locates the earliest template opener at or after pos.
func nextOpener(source string, pos int) (opener, int) {
	best := -1

	var bestOp opener

	for _, op := range openers {
		at := strings.Index(source[pos:], op.token)
		if at < 0 {
			continue
		}

		if best < 0 || pos+at < best {
			best = pos + at
			bestOp = op
		}
	}

	return bestOp, best
}

// scanUnit finds the end offset (exclusive) of the unit opened at start.
// Expression and block units honor string literals and nested braces so a
// dict literal inside an expression does not terminate it early.
func scanUnit(source string, start int, op opener) (int, error) {
	i := start + len(op.token)

	if op.kind == pieceComment {
		at := strings.Index(source[i:], op.closer)
		if at < 0 {
			return 0, errUnterminated
		}

		return i + at + len(op.closer), nil
	}

	depth := 0

	for i < len(source) {
		c := source[i]

		switch {
		case c == '\'' || c == '"':
			end, err := scanString(source, i)
			if err != nil {
				return 0, err
			}

			i = end
		case c == '{':
			depth++
			i++
		case c == '}' && depth > 0:
			depth--
			i++
		case depth == 0 && strings.HasPrefix(source[i:], op.closer):
			return i + len(op.closer), nil
		default:
			i++
		}
	}

	return 0, errUnterminated
}

// scanString returns the offset just past the string literal starting at i.
func scanString(source string, i int) (int, error) {
	quote := source[i]

	for j := i + 1; j < len(source); j++ {
		switch source[j] {
		case '\\':
			j++
		case quote:
			return j + 1, nil
		}
	}

	return 0, errUnterminated
}

// firstName extracts the first bare identifier from a unit's interior,
// skipping string literals so names inside quotes are not mistaken for the
// construct keyword.
func firstName(content string) string {
	i := 0

	for i < len(content) {
		c := content[i]

		switch {
		case c == '\'' || c == '"':
			end, err := scanString(content, i)
			if err != nil {
				return ""
			}

			i = end
		case isNameStart(c):
			j := i
			for j < len(content) && isNamePart(content[j]) {
				j++
			}

			return content[i:j]
		default:
			i++
		}
	}

	return ""
}

func isNameStart(c byte) bool {
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isNamePart(c byte) bool {
	return isNameStart(c) || (c >= '0' && c <= '9')
}
