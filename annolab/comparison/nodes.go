// Package comparison holds the immutable predicate tree used to express
// query filters: Comparison leaves combined by LogicalExpression nodes.
// The tree is pure data; rendering it into wire text is the query
// package's job, done through the Visitor interface.
package comparison

// Op is a comparison operator on a single attribute.
type Op string

const (
	OpEq Op = "="
	OpNe Op = "!="
	OpLt Op = "<"
	OpGt Op = ">"
	OpLe Op = "<="
	OpGe Op = ">="
)

// LogicalOp combines predicate subtrees. Values match the wire spelling.
type LogicalOp string

const (
	LogicalAnd LogicalOp = "AND"
	LogicalOr  LogicalOp = "OR"
	LogicalNot LogicalOp = "NOT"
)

// Attribute is the queryable attribute a Comparison leaf refers to.
// Implemented by schema.Field and schema.Relationship.
type Attribute interface {
	GraphQLName() string
}

type Visitable interface {
	Accept(Visitor) error
}

type Visitor interface {
	VisitComparison(Comparison) error
	VisitLogical(LogicalExpression) error
}

// NewComparison builds a leaf predicate comparing attr against value.
func NewComparison(attr Attribute, op Op, value any) Comparison {
	return Comparison{
		attr:  attr,
		op:    op,
		value: value,
	}
}

type Comparison struct {
	attr  Attribute
	op    Op
	value any
}

func (c Comparison) Attribute() Attribute {
	return c.attr
}

func (c Comparison) Op() Op {
	return c.op
}

func (c Comparison) Value() any {
	return c.value
}

func (c Comparison) Accept(v Visitor) error {
	return v.VisitComparison(c)
}

// And combines two or more predicates, folding extra operands into a
// left-deep tree.
func And(left, right Visitable, rest ...Visitable) LogicalExpression {
	left, right = foldRights(And, left, right, rest...)
	return LogicalExpression{
		op:     LogicalAnd,
		first:  left,
		second: right,
	}
}

// Or combines two or more predicates, folding extra operands into a
// left-deep tree.
func Or(left, right Visitable, rest ...Visitable) LogicalExpression {
	left, right = foldRights(Or, left, right, rest...)
	return LogicalExpression{
		op:     LogicalOr,
		first:  left,
		second: right,
	}
}

// Not negates a single predicate.
func Not(operand Visitable) LogicalExpression {
	return LogicalExpression{
		op:    LogicalNot,
		first: operand,
	}
}

func foldRights(
	combine func(Visitable, Visitable, ...Visitable) LogicalExpression,
	left, right Visitable,
	rest ...Visitable,
) (Visitable, Visitable) {
	for len(rest) > 0 {
		left = combine(left, right)
		right = rest[0]
		rest = rest[1:]
	}
	return left, right
}

// LogicalExpression is an interior predicate node. NOT holds exactly one
// operand (Second is nil); AND and OR hold two.
type LogicalExpression struct {
	op     LogicalOp
	first  Visitable
	second Visitable
}

func (e LogicalExpression) Op() LogicalOp {
	return e.op
}

func (e LogicalExpression) First() Visitable {
	return e.first
}

func (e LogicalExpression) Second() Visitable {
	return e.second
}

func (e LogicalExpression) Accept(v Visitor) error {
	return v.VisitLogical(e)
}
