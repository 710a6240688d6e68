package ast

// Role slot identities, shared across the Kind-specific constructor/
// accessor files. A single role constant may be reused by unrelated kinds
// (e.g. roleIdentifier is a NodePattern's variable and also a
// Projection's alias) since roles are only ever interpreted relative to a
// node's own Kind.
const (
	roleBody role = iota
	rolePredicate
	rolePattern
	roleHints
	roleIdentifier
	roleExpression
	roleLeft
	roleRight
	roleArgs
	roleElseDefault
	roleAlternatives
	roleProjections
	roleOrderBy
	roleSkip
	roleLimit
	roleLabels
	roleProperties
	roleReltypes
	roleVariableLength
	roleOnMatch
	roleOnCreate
	roleSetItems
	roleRemoveItems
	roleStartPoints
	roleClauses
	roleQuery
	roleUnionParts
	roleFuncName
	roleProcName
	roleIndexName
	rolePropName
	roleVersion
	roleOptionParams
	roleOptions
	roleYieldItems
	roleWhere
	roleRangeMin
	roleRangeMax
	roleLhsPattern
	rolePatternPaths
	roleElements
	roleComments
	roleMergeActions
	roleFieldTerminator
)
