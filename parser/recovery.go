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

package parser

import (
	"github.com/cypher-lang/cypherparser/ast"
	"github.com/cypher-lang/cypherparser/token"
)

// clauseStartKeywords is consulted by synchronize to find the next plausible
// resumption point after a clause's grammar breaks down mid-parse.
var clauseStartKeywords = map[token.KeywordID]bool{
	token.KwMatch: true, token.KwOptional: true, token.KwCreate: true,
	token.KwMerge: true, token.KwSet: true, token.KwDelete: true,
	token.KwDetach: true, token.KwRemove: true, token.KwForeach: true,
	token.KwUnwind: true, token.KwCall: true, token.KwWith: true,
	token.KwReturn: true, token.KwUnion: true, token.KwStart: true,
	token.KwLoadCsv: true, token.KwWhere: true,
}

// synchronize skips tokens until it finds a clause-initial keyword, a ';',
// a ')', or EOF, recording the skipped span as a single Error node (spec §4.3.2's
// panic-mode recovery: resume parsing at the next clause boundary rather
// than aborting the whole directive).
func (p *Parser) synchronize() *ast.Node {
	start := p.cur().Range.Start
	skippedAny := false
	for {
		t := p.cur()
		if t.Kind == token.EOF || t.Kind == token.SemiColon || t.Kind == token.RParen {
			break
		}
		if t.Kind == token.Keyword && clauseStartKeywords[t.KeywordID] {
			break
		}
		p.advance()
		skippedAny = true
	}
	if !skippedAny {
		return nil
	}
	rng := p.rangeSince(start)
	n, _ := p.arena.NewErrorNode(rng, string(sliceSource(p.source, rng)))
	return n
}

// parseClauseList parses clauses until parseClause stops recognizing the
// current token, synchronizing and retrying whenever a recognized clause
// fails to make forward progress (guards against an infinite loop when a
// clause's own grammar is badly malformed).
func (p *Parser) parseClauseList() []*ast.Node {
	var clauses []*ast.Node
	for {
		before := p.stream.pos
		c := p.parseClause()
		if c == nil {
			break
		}
		clauses = append(clauses, c)
		if p.stream.pos == before {
			if rec := p.synchronize(); rec != nil {
				clauses = append(clauses, rec)
			} else {
				break
			}
		}
	}
	return clauses
}
