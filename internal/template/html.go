package template

import (
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/sigmundgranaas/petty/internal/idf"
	"github.com/sigmundgranaas/petty/internal/perr"
)

// loadHTMLFragment reads an HTML include, joining a relative src onto
// basePath. An absolute src is read as given, and no check keeps the
// resolved path inside basePath.
func loadHTMLFragment(basePath, src string) (string, error) {
	p := src
	if basePath != "" && !filepath.IsAbs(src) {
		p = filepath.Join(basePath, src)
	}
	data, err := os.ReadFile(p)
	if err != nil {
		return "", perr.Wrap(perr.Resource, "load HTML fragment "+src, err)
	}
	return string(data), nil
}

// liftHTML parses an HTML fragment with golang.org/x/net/html and
// walks it into IDF nodes, the same recursive-descent idiom the
// teacher's internal/parser/html and internal/layout/engine.go use to
// turn a DOM into a box tree. Only the element vocabulary spec.md's
// IDF understands is lifted; anything else degrades to its children.
func liftHTML(source string) ([]*idf.Node, error) {
	nodes, err := html.ParseFragment(strings.NewReader(source), &html.Node{
		Type:     html.ElementNode,
		Data:     "body",
		DataAtom: atom.Body,
	})
	if err != nil {
		return nil, perr.Wrap(perr.Parse, "parse HTML fragment", err)
	}
	var out []*idf.Node
	for _, n := range nodes {
		out = append(out, liftBlockNodes(n)...)
	}
	return out, nil
}

func liftBlockChildren(n *html.Node) []*idf.Node {
	var out []*idf.Node
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		out = append(out, liftBlockNodes(c)...)
	}
	return out
}

// liftBlockNodes converts one DOM node (and, where it doesn't map
// directly to an IDF kind, its subtree) into zero or more block IDF
// nodes.
func liftBlockNodes(n *html.Node) []*idf.Node {
	if n.Type == html.TextNode {
		if strings.TrimSpace(n.Data) == "" {
			return nil
		}
		return []*idf.Node{idf.NewParagraph(idf.Metadata{}, idf.Text(n.Data))}
	}
	if n.Type != html.ElementNode {
		return nil
	}

	switch n.DataAtom {
	case atom.P:
		return []*idf.Node{idf.NewParagraph(attrMeta(n), liftInlineChildren(n)...)}

	case atom.H1, atom.H2, atom.H3, atom.H4, atom.H5, atom.H6:
		level := int(n.Data[1] - '0')
		return []*idf.Node{{Kind: idf.KindHeading, Meta: attrMeta(n), Level: level, Inlines: liftInlineChildren(n)}}

	case atom.Div, atom.Section, atom.Article, atom.Header, atom.Footer, atom.Main:
		return []*idf.Node{idf.NewBlock(attrMeta(n), liftBlockChildren(n)...)}

	case atom.Ul, atom.Ol:
		var items []*idf.Node
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if c.DataAtom != atom.Li {
				continue
			}
			items = append(items, &idf.Node{Kind: idf.KindListItem, Meta: attrMeta(c), Children: liftBlockChildren(c)})
		}
		return []*idf.Node{{Kind: idf.KindList, Meta: attrMeta(n), Children: items}}

	case atom.Img:
		return []*idf.Node{{Kind: idf.KindImage, Meta: attrMeta(n), Src: attr(n, "src")}}

	case atom.Table:
		return []*idf.Node{liftTable(n)}

	case atom.Br:
		return nil

	default:
		// Unknown element: fall through to its children so content
		// inside e.g. <span> at block position isn't lost.
		return liftBlockChildren(n)
	}
}

func liftInlineChildren(n *html.Node) []idf.InlineNode {
	var out []idf.InlineNode
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if in, ok := liftInlineNode(c); ok {
			out = append(out, in)
		}
	}
	return out
}

func liftInlineNode(n *html.Node) (idf.InlineNode, bool) {
	if n.Type == html.TextNode {
		if n.Data == "" {
			return idf.InlineNode{}, false
		}
		return idf.Text(n.Data), true
	}
	if n.Type != html.ElementNode {
		return idf.InlineNode{}, false
	}
	switch n.DataAtom {
	case atom.B, atom.Strong, atom.I, atom.Em, atom.Span, atom.Small, atom.Mark:
		return idf.InlineNode{IK: idf.InlineStyledSpan, Meta: attrInlineMeta(n), Children: liftInlineChildren(n)}, true
	case atom.A:
		return idf.InlineNode{IK: idf.InlineHyperlink, Meta: attrInlineMeta(n), Href: attr(n, "href"), Children: liftInlineChildren(n)}, true
	case atom.Img:
		return idf.InlineNode{IK: idf.InlineImage, Meta: attrInlineMeta(n), Src: attr(n, "src")}, true
	case atom.Br:
		return idf.InlineNode{IK: idf.InlineLineBreak}, true
	default:
		// Unknown inline element: flatten to its text content by
		// wrapping children as an unstyled span.
		return idf.InlineNode{IK: idf.InlineStyledSpan, Children: liftInlineChildren(n)}, true
	}
}

func liftTable(n *html.Node) *idf.Node {
	var header, body []idf.TableRow
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		switch c.DataAtom {
		case atom.Thead:
			header = append(header, liftTableRows(c)...)
		case atom.Tbody:
			body = append(body, liftTableRows(c)...)
		case atom.Tr:
			body = append(body, liftTableRow(c))
		}
	}
	return &idf.Node{
		Kind:   idf.KindTable,
		Meta:   attrMeta(n),
		Header: &idf.TableHeader{Rows: header},
		Body:   &idf.TableBody{Rows: body},
	}
}

func liftTableRows(n *html.Node) []idf.TableRow {
	var rows []idf.TableRow
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.DataAtom == atom.Tr {
			rows = append(rows, liftTableRow(c))
		}
	}
	return rows
}

func liftTableRow(n *html.Node) idf.TableRow {
	var cells []idf.TableCell
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.DataAtom != atom.Td && c.DataAtom != atom.Th {
			continue
		}
		cells = append(cells, idf.TableCell{Children: liftBlockChildren(c), ColSpan: 1, RowSpan: 1})
	}
	return idf.TableRow{Cells: cells}
}

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

func attrMeta(n *html.Node) idf.Metadata {
	return idf.Metadata{ID: attr(n, "id")}
}

func attrInlineMeta(n *html.Node) idf.InlineMetadata {
	return idf.InlineMetadata{}
}
