// Copyright 2024 The cypherparser Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package token defines the closed set of lexical token kinds the lexer
// produces and the case-insensitive keyword table it matches identifiers
// against.
package token

// Kind identifies the lexical category of a Token.
type Kind int

const (
	Illegal Kind = iota
	EOF

	Identifier
	BackquotedIdentifier
	Integer
	Float
	SignedInteger // never produced by the lexer: a leading sign is parsed as a unary operator
	String
	Parameter // $name, {name}, or {number}

	LineComment
	BlockComment
	Whitespace

	// Punctuation and operator symbols. Multi-rune operators are single
	// tokens; multi-word keywords (ORDER BY, IS NULL, STARTS WITH) are one
	// Keyword token per word, composed into a phrase by the parser.
	LParen
	RParen
	LBracket
	RBracket
	LBrace
	RBrace
	Comma
	Dot
	DotDot
	Colon
	SemiColon
	Pipe
	Plus
	Minus
	Star
	Slash
	Percent
	Caret
	Eq
	Neq
	Lt
	Gt
	Lte
	Gte
	PlusEq
	Regex // =~
	Dollar
	Backtick

	Keyword

	// Keyword is overloaded by KeywordID in Token; individual keyword
	// identities live in keyword.go as KeywordID, not as separate Kinds,
	// so the lexer/parser can test "is this a keyword" without a giant
	// switch while still discriminating which keyword with KeywordID.
)

func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return "unknown"
}

var kindNames = map[Kind]string{
	Illegal:              "illegal",
	EOF:                  "EOF",
	Identifier:           "identifier",
	BackquotedIdentifier: "backquoted identifier",
	Integer:              "integer",
	Float:                "float",
	SignedInteger:        "signed integer",
	String:               "string",
	Parameter:            "parameter",
	LineComment:          "line comment",
	BlockComment:         "block comment",
	Whitespace:           "whitespace",
	LParen:               "'('",
	RParen:               "')'",
	LBracket:             "'['",
	RBracket:             "']'",
	LBrace:               "'{'",
	RBrace:               "'}'",
	Comma:                "','",
	Dot:                  "'.'",
	DotDot:               "'..'",
	Colon:                "':'",
	SemiColon:            "';'",
	Pipe:                 "'|'",
	Plus:                 "'+'",
	Minus:                "'-'",
	Star:                 "'*'",
	Slash:                "'/'",
	Percent:              "'%'",
	Caret:                "'^'",
	Eq:                   "'='",
	Neq:                  "'<>'",
	Lt:                   "'<'",
	Gt:                   "'>'",
	Lte:                  "'<='",
	Gte:                  "'>='",
	PlusEq:               "'+='",
	Regex:                "'=~'",
	Dollar:               "'$'",
	Backtick:             "'`'",
	Keyword:              "keyword",
}
