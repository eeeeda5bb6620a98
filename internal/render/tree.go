package render

import (
	"strings"

	"github.com/goccy/go-json"

	"github.com/agiangrant/zeroai-ui/tokens"
)

// node is one level of the nested token table. Leaves carry a value;
// font-family leaves also carry the fallback list.
type node struct {
	key      string
	value    string
	list     []string
	children []*node
}

func (n *node) child(key string) *node {
	for _, c := range n.children {
		if c.key == key {
			return c
		}
	}
	c := &node{key: key}
	n.children = append(n.children, c)
	return c
}

// tokenTree nests the theme's entries by category path, keeping
// declaration order at every level.
func tokenTree(t tokens.Theme) *node {
	root := &node{}
	for _, e := range t.Entries() {
		n := root
		for _, part := range strings.Split(e.Category, ".") {
			n = n.child(part)
		}
		leaf := n.child(e.Name)
		leaf.value = e.Value
		leaf.list = e.List
	}
	return root
}

// Tree is the nested token table of a theme. It marshals to a JSON object
// in declaration order; categories without tokens are left out.
type Tree struct {
	root *node
}

func NewTree(t tokens.Theme) Tree {
	return Tree{root: tokenTree(t)}
}

func (t Tree) MarshalJSON() ([]byte, error) {
	if t.root == nil || len(t.root.children) == 0 {
		return []byte("{}"), nil
	}
	return t.root.appendJSON(nil)
}

func (n *node) appendJSON(b []byte) ([]byte, error) {
	if len(n.children) == 0 {
		var v any = n.value
		if n.list != nil {
			v = n.list
		}
		enc, err := json.Marshal(v)
		if err != nil {
			return nil, err
		}
		return append(b, enc...), nil
	}

	b = append(b, '{')
	for i, c := range n.children {
		if i > 0 {
			b = append(b, ',')
		}
		key, err := json.Marshal(c.key)
		if err != nil {
			return nil, err
		}
		b = append(b, key...)
		b = append(b, ':')
		if b, err = c.appendJSON(b); err != nil {
			return nil, err
		}
	}
	return append(b, '}'), nil
}
