package sprite

import (
	"bytes"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/goosestudio/acficons/pkg/errors"
)

const (
	svgNamespace   = "http://www.w3.org/2000/svg"
	xlinkNamespace = "http://www.w3.org/1999/xlink"
)

// extractable lists the element names that may be promoted to a root <svg>.
var extractable = map[string]bool{
	"symbol": true,
	"svg":    true,
	"g":      true,
}

// FindByID returns the first element in the tree whose id attribute equals
// id, or nil.
func FindByID(root *html.Node, id string) *html.Node {
	if root == nil {
		return nil
	}
	if root.Type == html.ElementNode {
		if v, ok := attr(root, "", "id"); ok && v == id {
			return root
		}
	}
	for c := root.FirstChild; c != nil; c = c.NextSibling {
		if n := FindByID(c, id); n != nil {
			return n
		}
	}
	return nil
}

// Standalone renders a symbol element as a self-contained SVG document.
// The source tree is not modified.
func Standalone(sym *html.Node) ([]byte, error) {
	if sym == nil || sym.Type != html.ElementNode {
		return nil, errors.New(errors.ErrCodeSymbolNotFound, "no symbol element")
	}
	if !extractable[sym.Data] {
		return nil, errors.New(errors.ErrCodeSymbolNotFound, "element <%s> cannot be extracted as an icon", sym.Data)
	}

	root := cloneTree(sym)
	root.Data = "svg"
	root.DataAtom = atom.Svg
	root.Namespace = "svg"

	attrs := make([]html.Attribute, 0, len(root.Attr)+2)
	if _, ok := attr(sym, "", "xmlns"); !ok {
		attrs = append(attrs, html.Attribute{Key: "xmlns", Val: svgNamespace})
	}
	if _, ok := attr(sym, "xmlns", "xlink"); !ok && usesXlink(sym) {
		attrs = append(attrs, html.Attribute{Namespace: "xmlns", Key: "xlink", Val: xlinkNamespace})
	}
	for _, a := range root.Attr {
		if a.Namespace == "" && a.Key == "id" {
			continue
		}
		attrs = append(attrs, a)
	}
	root.Attr = attrs

	var buf bytes.Buffer
	if err := html.Render(&buf, root); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "render icon")
	}
	buf.WriteByte('\n')
	return buf.Bytes(), nil
}

func cloneTree(n *html.Node) *html.Node {
	c := &html.Node{
		Type:      n.Type,
		DataAtom:  n.DataAtom,
		Data:      n.Data,
		Namespace: n.Namespace,
		Attr:      append([]html.Attribute(nil), n.Attr...),
	}
	for ch := n.FirstChild; ch != nil; ch = ch.NextSibling {
		c.AppendChild(cloneTree(ch))
	}
	return c
}

func attr(n *html.Node, namespace, key string) (string, bool) {
	for _, a := range n.Attr {
		if a.Namespace == namespace && a.Key == key {
			return a.Val, true
		}
	}
	return "", false
}

func usesXlink(n *html.Node) bool {
	for _, a := range n.Attr {
		if a.Namespace == "xlink" {
			return true
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if usesXlink(c) {
			return true
		}
	}
	return false
}

func findElement(n *html.Node, name string) *html.Node {
	if n.Type == html.ElementNode && n.Data == name {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := findElement(c, name); found != nil {
			return found
		}
	}
	return nil
}
