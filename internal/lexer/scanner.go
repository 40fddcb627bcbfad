package lexer

import (
	"strconv"
	"unicode/utf8"
)

// Reporter receives lexical errors. The scanner never stops on an error; it
// reports the problem and keeps going so every bad lexeme in a pass is seen.
type Reporter interface {
	Error(line int, message string)
}

type Scanner struct {
	source   string
	tokens   []Token
	start    int
	current  int
	line     int
	reporter Reporter
}

func NewScanner(source string, reporter Reporter) *Scanner {
	return &Scanner{
		source:   source,
		line:     1,
		reporter: reporter,
	}
}

// ScanTokens scans the whole source. The result always ends with an EOF token.
func (s *Scanner) ScanTokens() []Token {
	for !s.isAtEnd() {
		s.start = s.current
		s.scanToken()
	}
	s.tokens = append(s.tokens, Token{Type: TokenEOF, Lexeme: "", Line: s.line})
	return s.tokens
}

func (s *Scanner) scanToken() {
	c := s.advance()
	switch c {
	case '(':
		s.addToken(TokenLeftParen)
	case ')':
		s.addToken(TokenRightParen)
	case '{':
		s.addToken(TokenLeftBrace)
	case '}':
		s.addToken(TokenRightBrace)
	case ',':
		s.addToken(TokenComma)
	case '.':
		s.addToken(TokenDot)
	case '-':
		s.addToken(TokenMinus)
	case '+':
		s.addToken(TokenPlus)
	case ';':
		s.addToken(TokenSemicolon)
	case '*':
		s.addToken(TokenStar)
	case '!':
		s.addToken(s.pick('=', TokenBangEqual, TokenBang))
	case '=':
		s.addToken(s.pick('=', TokenEqualEqual, TokenEqual))
	case '<':
		s.addToken(s.pick('=', TokenLessEqual, TokenLess))
	case '>':
		s.addToken(s.pick('=', TokenGreaterEqual, TokenGreater))
	case '/':
		if s.match('/') {
			for s.peek() != '\n' && !s.isAtEnd() {
				s.advance()
			}
		} else {
			s.addToken(TokenSlash)
		}
	case ' ', '\r', '\t':
	case '\n':
		s.line++
	case '"':
		s.string()
	default:
		if isDigit(c) {
			s.number()
		} else if isAlpha(c) {
			s.identifier()
		} else {
			s.skipRune()
			s.error("Unexpected character.")
		}
	}
}

// pick consumes expected if present and returns the two-character type,
// otherwise the single-character one.
func (s *Scanner) pick(expected byte, double, single TokenType) TokenType {
	if s.match(expected) {
		return double
	}
	return single
}

func (s *Scanner) match(expected byte) bool {
	if s.isAtEnd() || s.source[s.current] != expected {
		return false
	}
	s.current++
	return true
}

func (s *Scanner) identifier() {
	for isAlphaNumeric(s.peek()) {
		s.advance()
	}
	text := s.source[s.start:s.current]
	if t, ok := LookupKeyword(text); ok {
		s.addToken(t)
		return
	}
	s.addToken(TokenIdentifier)
}

func (s *Scanner) number() {
	for isDigit(s.peek()) {
		s.advance()
	}
	// A fractional part needs at least one digit after the dot.
	if s.peek() == '.' && isDigit(s.peekNext()) {
		s.advance()
		for isDigit(s.peek()) {
			s.advance()
		}
	}
	// Literals beyond float64 range come back as +Inf with ErrRange and
	// are kept. The lexeme is digits and at most one dot, so no other
	// error is possible.
	value, _ := strconv.ParseFloat(s.source[s.start:s.current], 64)
	s.addLiteral(TokenNumber, value)
}

func (s *Scanner) string() {
	for s.peek() != '"' && !s.isAtEnd() {
		if s.peek() == '\n' {
			s.line++
		}
		s.advance()
	}
	if s.isAtEnd() {
		s.error("Unterminated string.")
		return
	}
	s.advance()
	s.addLiteral(TokenString, s.source[s.start+1:s.current-1])
}

// skipRune consumes the remaining bytes of a multi-byte character so that it
// is reported once rather than once per byte.
func (s *Scanner) skipRune() {
	_, size := utf8.DecodeRuneInString(s.source[s.start:])
	s.current = s.start + size
}

func (s *Scanner) error(message string) {
	if s.reporter != nil {
		s.reporter.Error(s.line, message)
	}
}

func (s *Scanner) addToken(t TokenType) {
	s.addLiteral(t, nil)
}

func (s *Scanner) addLiteral(t TokenType, literal any) {
	text := s.source[s.start:s.current]
	s.tokens = append(s.tokens, Token{Type: t, Lexeme: text, Literal: literal, Line: s.line})
}

func (s *Scanner) advance() byte {
	s.current++
	return s.source[s.current-1]
}

func (s *Scanner) peek() byte {
	if s.isAtEnd() {
		return '\000'
	}
	return s.source[s.current]
}

func (s *Scanner) peekNext() byte {
	if s.current+1 >= len(s.source) {
		return '\000'
	}
	return s.source[s.current+1]
}

func (s *Scanner) isAtEnd() bool {
	return s.current >= len(s.source)
}

func isAlpha(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || c == '_'
}

func isAlphaNumeric(c byte) bool {
	return isAlpha(c) || isDigit(c)
}

func isDigit(c byte) bool {
	return '0' <= c && c <= '9'
}
