package sqldialect

import (
	"fmt"
	"strings"
)

// Render serializes a parsed node under this dialect's surface syntax.
// Known functions are spelled the way this dialect spells them; a function
// whose implementation has no spelling here fails, which the oracle treats
// as evidence of non-portability.
func (d *profile) Render(n Node) (string, error) {
	switch node := n.(type) {
	case *Seq:
		return d.renderSeq(node)
	case *Call:
		return d.renderCall(node)
	case *Group:
		inner, err := d.renderSeq(node.Inner)
		if err != nil {
			return "", err
		}

		return "(" + inner + ")", nil
	case *Leaf:
		return node.Text, nil
	}

	return "", fmt.Errorf("unknown node type %T", n)
}

func (d *profile) renderCall(call *Call) (string, error) {
	name := strings.ToUpper(call.Name)

	if call.Impl != "" {
		spelling, ok := d.renders[call.Impl]
		if !ok {
			return "", fmt.Errorf("no %s rendering for %s", d.name, name)
		}

		name = spelling
	}

	args := make([]string, 0, len(call.Args))

	for _, arg := range call.Args {
		rendered, err := d.renderSeq(arg)
		if err != nil {
			return "", err
		}

		args = append(args, rendered)
	}

	return name + "(" + strings.Join(args, ", ") + ")", nil
}

func (d *profile) renderSeq(seq *Seq) (string, error) {
	var sb strings.Builder

	var prev Node

	for _, item := range seq.Items {
		rendered, err := d.Render(item)
		if err != nil {
			return "", err
		}

		if prev != nil && !tightLeft(item) && !tightRight(prev) {
			sb.WriteByte(' ')
		}

		sb.WriteString(rendered)
		prev = item
	}

	return sb.String(), nil
}

// tightLeft reports whether no space precedes this item.
func tightLeft(n Node) bool {
	leaf, ok := n.(*Leaf)
	if !ok {
		return false
	}

	switch leaf.Text {
	case ",", ".", "::":
		return true
	}

	return false
}

// tightRight reports whether no space follows this item.
func tightRight(n Node) bool {
	leaf, ok := n.(*Leaf)
	if !ok {
		return false
	}

	switch leaf.Text {
	case ".", "::":
		return true
	}

	return false
}
