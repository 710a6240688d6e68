package token

import "strings"

// KeywordID identifies which specific keyword a Keyword token spells,
// independent of the case the source used. The lexer emits one keyword
// token per word; multi-word keywords (ORDER BY, IS NULL, IS NOT NULL,
// STARTS WITH) are composed by the parser (Parser.matchPhrase), which
// commits only once every word is present (§4.2). The first word of such
// a phrase maps to the phrase's ID where one exists ("STARTS" is
// KwStartsWith, "ENDS" is KwEndsWith).
type KeywordID int

const (
	NoKeyword KeywordID = iota

	KwAnd
	KwOr
	KwXor
	KwNot
	KwIn
	KwIs
	KwNull
	KwIsNull
	KwIsNotNull
	KwTrue
	KwFalse
	KwStartsWith
	KwEndsWith
	KwContains
	KwDistinct
	KwAs
	KwCase
	KwWhen
	KwThen
	KwElse
	KwEnd
	KwAll
	KwAny
	KwSingle
	KwNone
	KwFilter
	KwExtract
	KwReduce

	KwMatch
	KwOptional
	KwUsing
	KwIndex
	KwJoin
	KwOn
	KwScan
	KwMerge
	KwCreate
	KwSet
	KwDelete
	KwDetach
	KwRemove
	KwForeach
	KwWith
	KwUnwind
	KwCall
	KwYield
	KwReturn
	KwUnion
	KwOrderBy
	KwOrder
	KwBy
	KwAsc
	KwAscending
	KwDesc
	KwDescending
	KwSkip
	KwLimit
	KwWhere
	KwStart
	KwLoadCsv
	KwCsv
	KwFrom
	KwHeaders
	KwFieldTerminator
	KwPeriodic
	KwCommit
	KwExplain
	KwProfile
	KwCypher
	KwConstraint
	KwAssert
	KwUnique
	KwDrop
	KwNode
	KwRelationship

	KwShortestPath
)

var keywords = map[string]KeywordID{
	"AND": KwAnd, "OR": KwOr, "XOR": KwXor, "NOT": KwNot, "IN": KwIn, "IS": KwIs,
	"NULL": KwNull, "TRUE": KwTrue, "FALSE": KwFalse,
	"STARTS": KwStartsWith, "ENDS": KwEndsWith, "CONTAINS": KwContains,
	"DISTINCT": KwDistinct, "AS": KwAs,
	"CASE": KwCase, "WHEN": KwWhen, "THEN": KwThen, "ELSE": KwElse, "END": KwEnd,
	"ALL": KwAll, "ANY": KwAny, "SINGLE": KwSingle, "NONE": KwNone,
	"FILTER": KwFilter, "EXTRACT": KwExtract, "REDUCE": KwReduce,
	"MATCH": KwMatch, "OPTIONAL": KwOptional, "USING": KwUsing, "INDEX": KwIndex,
	"JOIN": KwJoin, "ON": KwOn, "SCAN": KwScan,
	"MERGE": KwMerge, "CREATE": KwCreate, "SET": KwSet, "DELETE": KwDelete,
	"DETACH": KwDetach, "REMOVE": KwRemove, "FOREACH": KwForeach, "WITH": KwWith,
	"UNWIND": KwUnwind, "CALL": KwCall, "YIELD": KwYield, "RETURN": KwReturn,
	"UNION": KwUnion, "ORDER": KwOrder, "BY": KwBy,
	"ASC": KwAsc, "ASCENDING": KwAscending, "DESC": KwDesc, "DESCENDING": KwDescending,
	"SKIP": KwSkip, "LIMIT": KwLimit, "WHERE": KwWhere, "START": KwStart,
	"LOAD": KwLoadCsv, "CSV": KwCsv, "FROM": KwFrom, "HEADERS": KwHeaders,
	"FIELDTERMINATOR": KwFieldTerminator, "PERIODIC": KwPeriodic, "COMMIT": KwCommit,
	"EXPLAIN": KwExplain, "PROFILE": KwProfile, "CYPHER": KwCypher,
	"CONSTRAINT": KwConstraint, "ASSERT": KwAssert, "UNIQUE": KwUnique,
	"DROP": KwDrop, "NODE": KwNode, "RELATIONSHIP": KwRelationship,
	"SHORTESTPATH": KwShortestPath,
}

// Lookup resolves the keyword identity for raw, which is matched
// case-insensitively against the closed keyword set (§4.2). It returns
// NoKeyword, false when raw is not a keyword at all (an ordinary
// identifier).
func Lookup(raw string) (KeywordID, bool) {
	id, ok := keywords[strings.ToUpper(raw)]
	return id, ok
}

// Canonical returns the canonical uppercased spelling of a single-word
// keyword, used as Token.Text for keyword tokens so callers never need to
// case-fold it themselves.
func Canonical(raw string) string {
	return strings.ToUpper(raw)
}
