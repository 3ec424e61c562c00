package site

import (
	"strings"

	"golang.org/x/net/html"

	"git.home.luguber.info/inful/nodedocs/internal/nodes"
)

// Layout holds the page-level references shared by every generated page.
// Neither path is checked for existence.
type Layout struct {
	Stylesheet string // href of the stylesheet link
	ImageDir   string // prefix joined with each node's image file name
}

// DefaultLayout matches the directory layout of the published docs.
var DefaultLayout = Layout{Stylesheet: "./style.css", ImageDir: "./svg"}

// ImageSrc returns the image source for an image file name.
func (l Layout) ImageSrc(image string) string {
	return strings.TrimSuffix(l.ImageDir, "/") + "/" + image
}

// Sidebar renders one list item link per node, in input order, joined by
// newlines. The same markup is embedded in every page.
func Sidebar(list []nodes.NodeDescription) string {
	entries := nodes.SidebarEntries(list)
	items := make([]string, 0, len(entries))
	for _, e := range entries {
		items = append(items, `<li><a href="`+html.EscapeString(e.FileName)+`">`+html.EscapeString(e.Name)+`</a></li>`)
	}
	return strings.Join(items, "\n")
}

// PortRows renders one table row per port, preserving order, with the
// name, description and type cells in that order.
func PortRows(ports []nodes.PortSpec) string {
	var b strings.Builder
	for _, p := range ports {
		b.WriteString("        <tr><td>")
		b.WriteString(html.EscapeString(p.Name))
		b.WriteString("</td><td>")
		b.WriteString(html.EscapeString(p.Description))
		b.WriteString("</td><td>")
		b.WriteString(html.EscapeString(p.Type))
		b.WriteString("</td></tr>\n")
	}
	return b.String()
}

// ParagraphDescriber renders a description as a single escaped paragraph.
func ParagraphDescriber(description string) (string, error) {
	return "    <p>" + html.EscapeString(description) + "</p>\n", nil
}

// Describer turns a node description into the HTML block placed under the image.
type Describer func(description string) (string, error)

// RenderPage assembles the full HTML document for one node.
func RenderPage(n nodes.NodeDescription, sidebar string, layout Layout, describe Describer) (string, error) {
	if describe == nil {
		describe = ParagraphDescriber
	}
	desc, err := describe(n.Description)
	if err != nil {
		return "", err
	}

	name := html.EscapeString(n.Name)

	var b strings.Builder
	b.WriteString("<!DOCTYPE html>\n")
	b.WriteString("<html lang=\"en\">\n")
	b.WriteString("<head>\n")
	b.WriteString("  <meta charset=\"UTF-8\">\n")
	b.WriteString("  <title>" + name + "</title>\n")
	b.WriteString("  <link rel=\"stylesheet\" href=\"" + html.EscapeString(layout.Stylesheet) + "\">\n")
	b.WriteString("</head>\n")
	b.WriteString("<body>\n")
	b.WriteString("  <nav class=\"sidebar\">\n")
	b.WriteString("    <ul>\n")
	b.WriteString(sidebar)
	b.WriteString("\n    </ul>\n")
	b.WriteString("  </nav>\n")
	b.WriteString("  <main>\n")
	b.WriteString("    <h1>" + name + "</h1>\n")
	b.WriteString("    <img src=\"" + html.EscapeString(layout.ImageSrc(n.Image)) + "\">\n")
	b.WriteString(desc)
	writePortTable(&b, "Inputs", n.Inputs)
	b.WriteString("\n")
	writePortTable(&b, "Outputs", n.Outputs)
	b.WriteString("  </main>\n")
	b.WriteString("</body>\n")
	b.WriteString("</html>\n")
	return b.String(), nil
}

func writePortTable(b *strings.Builder, heading string, ports []nodes.PortSpec) {
	b.WriteString("    <h2>" + heading + "</h2>\n")
	b.WriteString("    <table>\n")
	b.WriteString("      <thead>\n")
	b.WriteString("        <tr><th>Name</th><th>Description</th><th>Type</th></tr>\n")
	b.WriteString("      </thead>\n")
	b.WriteString("      <tbody>\n")
	b.WriteString(PortRows(ports))
	b.WriteString("      </tbody>\n")
	b.WriteString("    </table>\n")
}
