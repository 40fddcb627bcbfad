package parser

import (
	"plox/internal/lexer"
)

// Reporter receives syntax errors anchored at a token.
type Reporter interface {
	ErrorAt(token lexer.Token, message string)
}

// parseError unwinds the parser to the enclosing declaration. It never
// escapes Parse.
type parseError struct{}

// Grammar:
//
//	program     -> declaration* EOF ;
//	declaration -> varDecl | statement ;
//	varDecl     -> "var" IDENTIFIER ( "=" expression )? ";" ;
//	statement   -> exprStmt | printStmt | block ;
//	block       -> "{" declaration* "}" ;
//	expression  -> assignment ;
//	assignment  -> IDENTIFIER "=" assignment | equality ;
//	equality    -> comparison ( ( "!=" | "==" ) comparison )* ;
//	comparison  -> term ( ( ">" | ">=" | "<" | "<=" ) term )* ;
//	term        -> factor ( ( "-" | "+" ) factor )* ;
//	factor      -> unary ( ( "/" | "*" ) unary )* ;
//	unary       -> ( "!" | "-" ) unary | primary ;
//	primary     -> NUMBER | STRING | "true" | "false" | "nil"
//	             | "(" expression ")" | IDENTIFIER ;
type Parser struct {
	tokens   []lexer.Token
	current  int
	reporter Reporter
}

func NewParser(tokens []lexer.Token, reporter Reporter) *Parser {
	if len(tokens) == 0 || tokens[len(tokens)-1].Type != lexer.TokenEOF {
		line := 1
		if len(tokens) > 0 {
			line = tokens[len(tokens)-1].Line
		}
		tokens = append(tokens, lexer.Token{Type: lexer.TokenEOF, Line: line})
	}
	return &Parser{
		tokens:   tokens,
		reporter: reporter,
	}
}

// Parse returns every declaration that parsed cleanly. Malformed declarations
// are reported and skipped.
func (p *Parser) Parse() []Stmt {
	var stmts []Stmt
	for !p.isAtEnd() {
		if stmt := p.declaration(); stmt != nil {
			stmts = append(stmts, stmt)
		}
	}
	return stmts
}

func (p *Parser) declaration() (stmt Stmt) {
	defer func() {
		if r := recover(); r != nil {
			if _, ok := r.(parseError); !ok {
				panic(r)
			}
			p.synchronize()
			stmt = nil
		}
	}()
	if p.match(lexer.TokenVar) {
		return p.varDeclaration()
	}
	return p.statement()
}

func (p *Parser) varDeclaration() Stmt {
	name := p.consume(lexer.TokenIdentifier, "Expect variable name.")
	var initializer Expr
	if p.match(lexer.TokenEqual) {
		initializer = p.expression()
	}
	p.consume(lexer.TokenSemicolon, "Expect ';' after variable declaration.")
	return &VarStmt{Name: name, Initializer: initializer}
}

func (p *Parser) statement() Stmt {
	if p.match(lexer.TokenPrint) {
		value := p.expression()
		p.consume(lexer.TokenSemicolon, "Expect ';' after value.")
		return &PrintStmt{Expr: value}
	}
	if p.match(lexer.TokenLeftBrace) {
		return &BlockStmt{Stmts: p.block()}
	}
	expr := p.expression()
	p.consume(lexer.TokenSemicolon, "Expect ';' after expression.")
	return &ExpressionStmt{Expr: expr}
}

func (p *Parser) block() []Stmt {
	stmts := []Stmt{}
	for !p.check(lexer.TokenRightBrace) && !p.isAtEnd() {
		if stmt := p.declaration(); stmt != nil {
			stmts = append(stmts, stmt)
		}
	}
	p.consume(lexer.TokenRightBrace, "Expect '}' after block.")
	return stmts
}

// --- Expressions, lowest precedence first ---

func (p *Parser) expression() Expr {
	return p.assignment()
}

func (p *Parser) assignment() Expr {
	expr := p.equality()
	if p.match(lexer.TokenEqual) {
		equals := p.previous()
		value := p.assignment()
		if v, ok := expr.(*Variable); ok {
			return &Assign{Name: v.Name, Value: value}
		}
		// Reported but not raised: the parser is not confused, so no
		// synchronization is needed. The right-hand side stands in for the
		// whole expression.
		p.error(equals, "Invalid assignment target.")
		return value
	}
	return expr
}

func (p *Parser) equality() Expr {
	return p.leftAssoc(p.comparison, lexer.TokenBangEqual, lexer.TokenEqualEqual)
}

func (p *Parser) comparison() Expr {
	return p.leftAssoc(p.term,
		lexer.TokenGreater, lexer.TokenGreaterEqual, lexer.TokenLess, lexer.TokenLessEqual)
}

func (p *Parser) term() Expr {
	return p.leftAssoc(p.factor, lexer.TokenMinus, lexer.TokenPlus)
}

func (p *Parser) factor() Expr {
	return p.leftAssoc(p.unary, lexer.TokenSlash, lexer.TokenStar)
}

// leftAssoc folds operand (op operand)* into a left-leaning Binary chain.
func (p *Parser) leftAssoc(operand func() Expr, ops ...lexer.TokenType) Expr {
	expr := operand()
	for p.match(ops...) {
		operator := p.previous()
		right := operand()
		expr = &Binary{Left: expr, Operator: operator, Right: right}
	}
	return expr
}

func (p *Parser) unary() Expr {
	if p.match(lexer.TokenBang, lexer.TokenMinus) {
		operator := p.previous()
		return &Unary{Operator: operator, Operand: p.unary()}
	}
	return p.primary()
}

func (p *Parser) primary() Expr {
	switch {
	case p.match(lexer.TokenFalse):
		return &Literal{Value: false}
	case p.match(lexer.TokenTrue):
		return &Literal{Value: true}
	case p.match(lexer.TokenNil):
		return &Literal{Value: nil}
	case p.match(lexer.TokenNumber, lexer.TokenString):
		return &Literal{Value: p.previous().Literal}
	case p.match(lexer.TokenIdentifier):
		return &Variable{Name: p.previous()}
	case p.match(lexer.TokenLeftParen):
		expr := p.expression()
		p.consume(lexer.TokenRightParen, "Expect ')' after expression.")
		return &Grouping{Expr: expr}
	}
	panic(p.error(p.peek(), "Expect expression."))
}

// synchronize discards tokens until the start of the next statement.
func (p *Parser) synchronize() {
	p.advance()
	for !p.isAtEnd() {
		if p.previous().Type == lexer.TokenSemicolon {
			return
		}
		switch p.peek().Type {
		case lexer.TokenClass, lexer.TokenFor, lexer.TokenFun, lexer.TokenIf,
			lexer.TokenPrint, lexer.TokenReturn, lexer.TokenVar, lexer.TokenWhile:
			return
		}
		p.advance()
	}
}

// --- Utility methods ---

func (p *Parser) match(types ...lexer.TokenType) bool {
	for _, t := range types {
		if p.check(t) {
			p.advance()
			return true
		}
	}
	return false
}

func (p *Parser) consume(t lexer.TokenType, msg string) lexer.Token {
	if p.check(t) {
		return p.advance()
	}
	panic(p.error(p.peek(), msg))
}

func (p *Parser) error(tok lexer.Token, msg string) parseError {
	if p.reporter != nil {
		p.reporter.ErrorAt(tok, msg)
	}
	return parseError{}
}

func (p *Parser) check(t lexer.TokenType) bool {
	if p.isAtEnd() {
		return false
	}
	return p.peek().Type == t
}

func (p *Parser) advance() lexer.Token {
	if !p.isAtEnd() {
		p.current++
	}
	return p.previous()
}

func (p *Parser) previous() lexer.Token {
	return p.tokens[p.current-1]
}

func (p *Parser) peek() lexer.Token {
	return p.tokens[p.current]
}

func (p *Parser) isAtEnd() bool {
	return p.peek().Type == lexer.TokenEOF
}
