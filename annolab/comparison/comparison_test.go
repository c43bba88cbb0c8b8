package comparison

import "testing"

type attr string

func (a attr) GraphQLName() string { return string(a) }

func TestComparisonAccessors(t *testing.T) {
	c := NewComparison(attr("name"), OpEq, "alpha")

	if c.Attribute().GraphQLName() != "name" {
		t.Errorf("Expected attribute name, got %s", c.Attribute().GraphQLName())
	}
	if c.Op() != OpEq {
		t.Errorf("Expected =, got %s", c.Op())
	}
	if c.Value() != "alpha" {
		t.Errorf("Expected value alpha, got %v", c.Value())
	}
}

func TestAndFoldsLeftDeep(t *testing.T) {
	a := NewComparison(attr("a"), OpEq, 1)
	b := NewComparison(attr("b"), OpEq, 2)
	c := NewComparison(attr("c"), OpEq, 3)

	expr := And(a, b, c)

	if expr.Op() != LogicalAnd {
		t.Fatalf("Expected AND, got %s", expr.Op())
	}
	left, ok := expr.First().(LogicalExpression)
	if !ok {
		t.Fatalf("Expected left child to be a LogicalExpression, got %T", expr.First())
	}
	if left.Op() != LogicalAnd {
		t.Errorf("Expected nested AND, got %s", left.Op())
	}
	right, ok := expr.Second().(Comparison)
	if !ok {
		t.Fatalf("Expected right child to be a Comparison, got %T", expr.Second())
	}
	if right.Attribute().GraphQLName() != "c" {
		t.Errorf("Expected rightmost leaf c, got %s", right.Attribute().GraphQLName())
	}
}

func TestNotHasSingleChild(t *testing.T) {
	expr := Not(NewComparison(attr("a"), OpEq, 1))

	if expr.Op() != LogicalNot {
		t.Errorf("Expected NOT, got %s", expr.Op())
	}
	if expr.Second() != nil {
		t.Errorf("Expected nil second child, got %v", expr.Second())
	}
}

func TestFieldsDepthFirst(t *testing.T) {
	expr := Or(
		And(
			NewComparison(attr("a"), OpEq, 1),
			NewComparison(attr("b"), OpGt, 2),
		),
		NewComparison(attr("c"), OpNe, 3),
	)

	attrs := Fields(expr)
	if len(attrs) != 3 {
		t.Fatalf("Expected 3 attributes, got %d", len(attrs))
	}
	for i, want := range []string{"a", "b", "c"} {
		if attrs[i].GraphQLName() != want {
			t.Errorf("Expected attribute %s at %d, got %s", want, i, attrs[i].GraphQLName())
		}
	}
}

func TestOperatorsIncludesNot(t *testing.T) {
	expr := Not(Or(
		NewComparison(attr("a"), OpEq, 1),
		NewComparison(attr("b"), OpEq, 2),
	))

	ops := Operators(expr)
	if len(ops) != 2 {
		t.Fatalf("Expected 2 operators, got %d", len(ops))
	}
	if ops[0] != LogicalNot || ops[1] != LogicalOr {
		t.Errorf("Expected [NOT OR], got %v", ops)
	}
}

func TestCollectorsOnNilTree(t *testing.T) {
	if got := Fields(nil); got != nil {
		t.Errorf("Expected no attributes, got %v", got)
	}
	if got := Operators(nil); got != nil {
		t.Errorf("Expected no operators, got %v", got)
	}
}

func TestOperatorsOnBareComparison(t *testing.T) {
	if got := Operators(NewComparison(attr("a"), OpEq, 1)); len(got) != 0 {
		t.Errorf("Expected no operators, got %v", got)
	}
}
