package ast

// Kind is the primary type tag of an AST node: one of the closed set
// described in spec §3.3, supplemented per SPEC_FULL.md with the node
// kinds recovered from the original library's cypher_astnode_type_t table
// (projection, order-by, sort-item, label, reltype, the *-name leaves,
// pattern, node-pattern, rel-pattern, range, command, error).
type Kind int

const (
	KindInvalid Kind = iota

	// Statement and options.
	KindStatement
	KindCypherOption
	KindCypherOptionParam
	KindExplainOption
	KindProfileOption

	// Schema commands.
	KindCreateNodePropIndex
	KindDropNodePropIndex
	KindCreateNodePropConstraint
	KindDropNodePropConstraint
	KindCreateRelPropConstraint
	KindDropRelPropConstraint

	// Query and query options.
	KindQuery
	KindUsingPeriodicCommit

	// Query clauses.
	KindLoadCSV
	KindStart
	KindMatch
	KindMerge
	KindCreate
	KindSet
	KindDelete
	KindRemove
	KindForeach
	KindWith
	KindUnwind
	KindCall
	KindReturn
	KindUnion

	// Start points (legacy START clause).
	KindNodeIndexLookup
	KindNodeIndexQuery
	KindNodeIDLookup
	KindAllNodesScan
	KindRelIndexLookup
	KindRelIndexQuery
	KindRelIDLookup
	KindAllRelsScan

	// Match hints.
	KindUsingIndex
	KindUsingJoin
	KindUsingScan

	// Merge actions.
	KindOnMatch
	KindOnCreate

	// Set items.
	KindSetProperty
	KindSetAllProperties
	KindMergeProperties
	KindSetLabels

	// Remove items.
	KindRemoveLabels
	KindRemoveProperty

	// Projection / ordering (supplemented).
	KindProjection
	KindOrderBy
	KindSortItem

	// Expressions.
	KindUnaryOperator
	KindBinaryOperator
	KindComparison
	KindApplyOperator
	KindApplyAllOperator
	KindPropertyOperator
	KindSubscriptOperator
	KindSliceOperator
	KindLabelsOperator
	KindListComprehension
	KindFilter
	KindExtract
	KindReduce
	KindAll
	KindAny
	KindSingle
	KindNone
	KindCase
	KindCollection
	KindMap
	KindIdentifier
	KindParameter
	KindString
	KindInteger
	KindFloat
	KindTrue
	KindFalse
	KindNull
	KindShortestPath

	// Leaf names (supplemented: promoted from bare strings to ranged nodes).
	KindLabel
	KindRelType
	KindPropName
	KindFunctionName
	KindIndexName
	KindProcName

	// Patterns.
	KindPattern
	KindNamedPath
	KindPatternPath
	KindNodePattern
	KindRelPattern
	KindRange

	// Client commands and comments.
	KindCommand
	KindLineComment
	KindBlockComment

	// Error recovery placeholder.
	KindError

	numKinds
)

var kindNames = [...]string{
	KindInvalid:                  "invalid",
	KindStatement:                "statement",
	KindCypherOption:             "cypher-option",
	KindCypherOptionParam:        "cypher-option-param",
	KindExplainOption:            "explain-option",
	KindProfileOption:            "profile-option",
	KindCreateNodePropIndex:      "create-node-prop-index",
	KindDropNodePropIndex:        "drop-node-prop-index",
	KindCreateNodePropConstraint: "create-node-prop-constraint",
	KindDropNodePropConstraint:   "drop-node-prop-constraint",
	KindCreateRelPropConstraint:  "create-rel-prop-constraint",
	KindDropRelPropConstraint:    "drop-rel-prop-constraint",
	KindQuery:                    "query",
	KindUsingPeriodicCommit:      "using-periodic-commit",
	KindLoadCSV:                  "load-csv",
	KindStart:                    "start",
	KindMatch:                    "match",
	KindMerge:                    "merge",
	KindCreate:                   "create",
	KindSet:                      "set",
	KindDelete:                   "delete",
	KindRemove:                   "remove",
	KindForeach:                  "foreach",
	KindWith:                     "with",
	KindUnwind:                   "unwind",
	KindCall:                     "call",
	KindReturn:                   "return",
	KindUnion:                    "union",
	KindNodeIndexLookup:          "node-index-lookup",
	KindNodeIndexQuery:           "node-index-query",
	KindNodeIDLookup:             "node-id-lookup",
	KindAllNodesScan:             "all-nodes-scan",
	KindRelIndexLookup:           "rel-index-lookup",
	KindRelIndexQuery:            "rel-index-query",
	KindRelIDLookup:              "rel-id-lookup",
	KindAllRelsScan:              "all-rels-scan",
	KindUsingIndex:               "using-index",
	KindUsingJoin:                "using-join",
	KindUsingScan:                "using-scan",
	KindOnMatch:                  "on-match",
	KindOnCreate:                 "on-create",
	KindSetProperty:              "set-property",
	KindSetAllProperties:         "set-all-properties",
	KindMergeProperties:          "merge-properties",
	KindSetLabels:                "set-labels",
	KindRemoveLabels:             "remove-labels",
	KindRemoveProperty:           "remove-property",
	KindProjection:               "projection",
	KindOrderBy:                  "order-by",
	KindSortItem:                 "sort-item",
	KindUnaryOperator:            "unary-operator",
	KindBinaryOperator:           "binary-operator",
	KindComparison:               "comparison",
	KindApplyOperator:            "apply",
	KindApplyAllOperator:         "apply-all",
	KindPropertyOperator:         "property-operator",
	KindSubscriptOperator:        "subscript-operator",
	KindSliceOperator:            "slice-operator",
	KindLabelsOperator:           "labels-operator",
	KindListComprehension:        "list-comprehension",
	KindFilter:                   "filter",
	KindExtract:                  "extract",
	KindReduce:                   "reduce",
	KindAll:                      "all",
	KindAny:                      "any",
	KindSingle:                   "single",
	KindNone:                     "none",
	KindCase:                     "case",
	KindCollection:               "collection",
	KindMap:                      "map",
	KindIdentifier:               "identifier",
	KindParameter:                "parameter",
	KindString:                   "string",
	KindInteger:                  "integer",
	KindFloat:                    "float",
	KindTrue:                     "true",
	KindFalse:                    "false",
	KindNull:                     "null",
	KindShortestPath:             "shortest-path",
	KindLabel:                    "label",
	KindRelType:                  "reltype",
	KindPropName:                 "prop-name",
	KindFunctionName:             "function-name",
	KindIndexName:                "index-name",
	KindProcName:                 "proc-name",
	KindPattern:                  "pattern",
	KindNamedPath:                "named-path",
	KindPatternPath:              "pattern-path",
	KindNodePattern:              "node-pattern",
	KindRelPattern:               "rel-pattern",
	KindRange:                    "range",
	KindCommand:                  "command",
	KindLineComment:              "line-comment",
	KindBlockComment:             "block-comment",
	KindError:                    "error",
}

func (k Kind) String() string {
	if int(k) >= 0 && int(k) < len(kindNames) && kindNames[k] != "" {
		return kindNames[k]
	}
	return "unknown"
}

// categoryTable is the registration-time category set per Kind, per design
// note §9. instanceOf is a constant-time bitmask test against it.
var categoryTable = [numKinds]Category{
	KindCypherOption:  CategoryStatementOption,
	KindExplainOption: CategoryStatementOption,
	KindProfileOption: CategoryStatementOption,

	KindCreateNodePropIndex:      CategorySchemaCommand,
	KindDropNodePropIndex:        CategorySchemaCommand,
	KindCreateNodePropConstraint: CategorySchemaCommand,
	KindDropNodePropConstraint:   CategorySchemaCommand,
	KindCreateRelPropConstraint:  CategorySchemaCommand,
	KindDropRelPropConstraint:    CategorySchemaCommand,

	KindUsingPeriodicCommit: CategoryQueryOption,

	KindLoadCSV: CategoryQueryClause,
	KindStart:   CategoryQueryClause,
	KindMatch:   CategoryQueryClause,
	KindMerge:   CategoryQueryClause,
	KindCreate:  CategoryQueryClause,
	KindSet:     CategoryQueryClause,
	KindDelete:  CategoryQueryClause,
	KindRemove:  CategoryQueryClause,
	KindForeach: CategoryQueryClause,
	KindWith:    CategoryQueryClause,
	KindUnwind:  CategoryQueryClause,
	KindCall:    CategoryQueryClause,
	KindReturn:  CategoryQueryClause,
	KindUnion:   CategoryQueryClause,

	KindNodeIndexLookup: CategoryStartPoint,
	KindNodeIndexQuery:  CategoryStartPoint,
	KindNodeIDLookup:    CategoryStartPoint,
	KindAllNodesScan:    CategoryStartPoint,
	KindRelIndexLookup:  CategoryStartPoint,
	KindRelIndexQuery:   CategoryStartPoint,
	KindRelIDLookup:     CategoryStartPoint,
	KindAllRelsScan:     CategoryStartPoint,

	KindUsingIndex: CategoryMatchHint,
	KindUsingJoin:  CategoryMatchHint,
	KindUsingScan:  CategoryMatchHint,

	KindOnMatch:  CategoryMergeAction,
	KindOnCreate: CategoryMergeAction,

	KindSetProperty:      CategorySetItem,
	KindSetAllProperties: CategorySetItem,
	KindMergeProperties:  CategorySetItem,
	KindSetLabels:        CategorySetItem,

	KindRemoveLabels:   CategoryRemoveItem,
	KindRemoveProperty: CategoryRemoveItem,

	KindUnaryOperator:     CategoryExpression,
	KindBinaryOperator:    CategoryExpression,
	KindComparison:        CategoryExpression,
	KindApplyOperator:     CategoryExpression,
	KindApplyAllOperator:  CategoryExpression,
	KindPropertyOperator:  CategoryExpression,
	KindSubscriptOperator: CategoryExpression,
	KindSliceOperator:     CategoryExpression,
	KindLabelsOperator:    CategoryExpression,
	KindListComprehension: CategoryExpression | CategoryListComprehension,
	KindFilter:            CategoryExpression | CategoryListComprehension,
	KindExtract:           CategoryExpression | CategoryListComprehension,
	KindReduce:            CategoryExpression,
	KindAll:               CategoryExpression | CategoryListComprehension,
	KindAny:               CategoryExpression | CategoryListComprehension,
	KindSingle:            CategoryExpression | CategoryListComprehension,
	KindNone:              CategoryExpression | CategoryListComprehension,
	KindCase:              CategoryExpression,
	KindCollection:        CategoryExpression,
	KindMap:               CategoryExpression,
	KindIdentifier:        CategoryExpression,
	KindParameter:         CategoryExpression,
	KindString:            CategoryExpression,
	KindInteger:           CategoryExpression,
	KindFloat:             CategoryExpression,
	KindTrue:              CategoryExpression | CategoryBoolean,
	KindFalse:             CategoryExpression | CategoryBoolean,
	KindNull:              CategoryExpression,
	KindShortestPath:      CategoryExpression | CategoryPatternPath,

	KindNamedPath:   CategoryPatternPath,
	KindPatternPath: CategoryPatternPath,

	KindCommand: CategoryDirective,

	KindLineComment:  CategoryComment,
	KindBlockComment: CategoryComment,
}

// CategoriesOf returns the declared category bitmask for k.
func CategoriesOf(k Kind) Category {
	if int(k) < 0 || int(k) >= len(categoryTable) {
		return 0
	}
	return categoryTable[k]
}
