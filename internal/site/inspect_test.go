package site

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"
)

// pageShape is the structure of a generated page as seen by an HTML parser.
type pageShape struct {
	Title        string
	Heading      string
	ImageSrc     string
	SidebarHrefs []string
	SidebarNames []string
	Tables       [][][]string // table -> body row -> cell text
}

func inspectPage(t *testing.T, page string) pageShape {
	t.Helper()
	doc, err := html.Parse(strings.NewReader(page))
	require.NoError(t, err)

	var shape pageShape
	var walk func(n *html.Node, inNav bool)
	walk = func(n *html.Node, inNav bool) {
		if n.Type == html.ElementNode {
			switch n.Data {
			case "nav":
				inNav = true
			case "title":
				shape.Title = textOf(n)
			case "h1":
				shape.Heading = textOf(n)
			case "img":
				shape.ImageSrc = attr(n, "src")
			case "a":
				if inNav {
					shape.SidebarHrefs = append(shape.SidebarHrefs, attr(n, "href"))
					shape.SidebarNames = append(shape.SidebarNames, textOf(n))
				}
			case "tbody":
				shape.Tables = append(shape.Tables, tableRows(n))
				return
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c, inNav)
		}
	}
	walk(doc, false)
	return shape
}

func tableRows(tbody *html.Node) [][]string {
	rows := [][]string{}
	for tr := tbody.FirstChild; tr != nil; tr = tr.NextSibling {
		if tr.Type != html.ElementNode || tr.Data != "tr" {
			continue
		}
		var cells []string
		for td := tr.FirstChild; td != nil; td = td.NextSibling {
			if td.Type == html.ElementNode && td.Data == "td" {
				cells = append(cells, textOf(td))
			}
		}
		rows = append(rows, cells)
	}
	return rows
}

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

func textOf(n *html.Node) string {
	var b strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return b.String()
}
