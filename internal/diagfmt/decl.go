package diagfmt

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"cppfqn/internal/decl"
)

// FormatDeclaratorPretty prints one declarator as an indented listing.
func FormatDeclaratorPretty(w io.Writer, d *decl.Declarator) error {
	root := buildDeclNode(d)
	var b strings.Builder
	b.WriteString(root.label)
	b.WriteByte('\n')
	writeListing(&b, root.children, "")
	_, err := io.WriteString(w, b.String())
	return err
}

func writeListing(b *strings.Builder, nodes []*treeNode, prefix string) {
	for i, n := range nodes {
		last := i == len(nodes)-1
		branch, next := "├─ ", "│  "
		if last {
			branch, next = "└─ ", "   "
		}
		b.WriteString(prefix)
		b.WriteString(branch)
		b.WriteString(n.label)
		b.WriteByte('\n')
		writeListing(b, n.children, prefix+next)
	}
}

// FormatDeclaratorTree prints the declarator as a top-down ASCII tree.
func FormatDeclaratorTree(w io.Writer, d *decl.Declarator) error {
	block := renderTree(buildDeclNode(d))
	for _, line := range block.lines {
		if _, err := fmt.Fprintln(w, strings.TrimRight(line, " ")); err != nil {
			return err
		}
	}
	return nil
}

// FormatDeclaratorsJSON writes declarators in their record form.
func FormatDeclaratorsJSON(w io.Writer, ds []*decl.Declarator) error {
	out := make([]map[string]any, 0, len(ds))
	for _, d := range ds {
		out = append(out, d.ToMap())
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

func buildDeclNode(d *decl.Declarator) *treeNode {
	root := &treeNode{label: fmt.Sprintf("Declarator %q", d.FullText)}
	add := func(label string, children ...*treeNode) {
		root.children = append(root.children, &treeNode{label: label, children: children})
	}

	add("Name: " + d.Name)
	if d.Template != nil {
		add("Template: " + *d.Template)
	}
	if d.Scopes != nil {
		scopes := make([]*treeNode, 0, len(d.Scopes))
		for _, s := range d.Scopes {
			scopes = append(scopes, &treeNode{label: s.String()})
		}
		add("Scopes", scopes...)
	}
	switch d.Call {
	case decl.NoCall:
		add("Call: none")
	case decl.EmptyCall:
		add("Call: ()")
	case decl.ArgsCall:
		params := make([]*treeNode, 0, len(d.Parameters))
		for i, p := range d.Parameters {
			params = append(params, &treeNode{label: fmt.Sprintf("[%d] %s", i, p)})
		}
		add("Params", params...)
	}
	if d.ReturnType != nil {
		add("Return: " + *d.ReturnType)
	}
	if d.Const || d.Volatile {
		var quals []string
		if d.Const {
			quals = append(quals, "const")
		}
		if d.Volatile {
			quals = append(quals, "volatile")
		}
		add("Qualifiers: " + strings.Join(quals, " "))
	}
	return root
}
