package comparison

// Fields enumerates the attributes referenced by every Comparison leaf of
// the tree, depth-first. A nil tree yields nothing.
func Fields(node Visitable) []Attribute {
	if node == nil {
		return nil
	}
	c := &fieldCollector{}
	_ = node.Accept(c)
	return c.attrs
}

// Operators enumerates the logical operators present in the tree,
// depth-first. Comparison leaves contribute nothing.
func Operators(node Visitable) []LogicalOp {
	if node == nil {
		return nil
	}
	c := &operatorCollector{}
	_ = node.Accept(c)
	return c.ops
}

type fieldCollector struct {
	attrs []Attribute
}

func (c *fieldCollector) VisitComparison(n Comparison) error {
	c.attrs = append(c.attrs, n.Attribute())
	return nil
}

func (c *fieldCollector) VisitLogical(n LogicalExpression) error {
	return visitChildren(c, n)
}

type operatorCollector struct {
	ops []LogicalOp
}

func (c *operatorCollector) VisitComparison(Comparison) error {
	return nil
}

func (c *operatorCollector) VisitLogical(n LogicalExpression) error {
	c.ops = append(c.ops, n.Op())
	return visitChildren(c, n)
}

func visitChildren(v Visitor, n LogicalExpression) error {
	if err := n.First().Accept(v); err != nil {
		return err
	}
	if n.Second() != nil {
		return n.Second().Accept(v)
	}
	return nil
}
