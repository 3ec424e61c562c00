package site

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"git.home.luguber.info/inful/nodedocs/internal/nodes"
)

func addNode() nodes.NodeDescription {
	return nodes.NodeDescription{
		Name:        "Add Node",
		Description: "Adds two numbers",
		Image:       "add.svg",
		Inputs:      []nodes.PortSpec{{Name: "a", Description: "first operand", Type: "number"}},
		Outputs:     []nodes.PortSpec{{Name: "sum", Description: "result", Type: "number"}},
	}
}

func TestRenderPageExample(t *testing.T) {
	n := addNode()
	page, err := RenderPage(n, Sidebar([]nodes.NodeDescription{n}), DefaultLayout, nil)
	require.NoError(t, err)

	assert.Contains(t, page, "<h1>Add Node</h1>")
	assert.Contains(t, page, `<img src="./svg/add.svg">`)
	assert.Contains(t, page, "<td>a</td><td>first operand</td><td>number</td>")
	assert.Contains(t, page, "<td>sum</td><td>result</td><td>number</td>")
	assert.Contains(t, page, `<link rel="stylesheet" href="./style.css">`)
	assert.Contains(t, page, `<li><a href="AddNode.html">Add Node</a></li>`)
	assert.Contains(t, page, "<p>Adds two numbers</p>")
}

func TestRenderPageGolden(t *testing.T) {
	n := addNode()
	sidebar := Sidebar([]nodes.NodeDescription{n, {Name: "Slew"}})
	page, err := RenderPage(n, sidebar, DefaultLayout, nil)
	require.NoError(t, err)

	want := `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8">
  <title>Add Node</title>
  <link rel="stylesheet" href="./style.css">
</head>
<body>
  <nav class="sidebar">
    <ul>
<li><a href="AddNode.html">Add Node</a></li>
<li><a href="Slew.html">Slew</a></li>
    </ul>
  </nav>
  <main>
    <h1>Add Node</h1>
    <img src="./svg/add.svg">
    <p>Adds two numbers</p>
    <h2>Inputs</h2>
    <table>
      <thead>
        <tr><th>Name</th><th>Description</th><th>Type</th></tr>
      </thead>
      <tbody>
        <tr><td>a</td><td>first operand</td><td>number</td></tr>
      </tbody>
    </table>

    <h2>Outputs</h2>
    <table>
      <thead>
        <tr><th>Name</th><th>Description</th><th>Type</th></tr>
      </thead>
      <tbody>
        <tr><td>sum</td><td>result</td><td>number</td></tr>
      </tbody>
    </table>
  </main>
</body>
</html>
`
	if diff := cmp.Diff(want, page); diff != "" {
		t.Fatalf("page mismatch (-want +got):\n%s", diff)
	}
}

func TestSidebar(t *testing.T) {
	list := []nodes.NodeDescription{{Name: "Array Sum"}, {Name: "Dust"}, {Name: "Trigger On Next Frame"}}
	want := strings.Join([]string{
		`<li><a href="ArraySum.html">Array Sum</a></li>`,
		`<li><a href="Dust.html">Dust</a></li>`,
		`<li><a href="TriggerOnNextFrame.html">Trigger On Next Frame</a></li>`,
	}, "\n")
	assert.Equal(t, want, Sidebar(list))
	assert.Empty(t, Sidebar(nil))
}

func TestPortRowsOrder(t *testing.T) {
	rows := PortRows([]nodes.PortSpec{
		{Name: "In", Description: "audio in", Type: "Audio"},
		{Name: "Width", Description: "stereo width", Type: "Float"},
	})
	want := "        <tr><td>In</td><td>audio in</td><td>Audio</td></tr>\n" +
		"        <tr><td>Width</td><td>stereo width</td><td>Float</td></tr>\n"
	assert.Equal(t, want, rows)
	assert.Empty(t, PortRows(nil))
}

func TestRenderPageEscapesText(t *testing.T) {
	n := nodes.NodeDescription{
		Name:        "A<B> & \"C\"",
		Description: "x < y",
		Image:       `we"ird.svg`,
		Inputs:      []nodes.PortSpec{{Name: "<in>", Description: "a&b", Type: "Array<Int32>"}},
	}
	page, err := RenderPage(n, Sidebar([]nodes.NodeDescription{n}), DefaultLayout, nil)
	require.NoError(t, err)

	assert.Contains(t, page, "<h1>A&lt;B&gt; &amp; &#34;C&#34;</h1>")
	assert.Contains(t, page, "<p>x &lt; y</p>")
	assert.Contains(t, page, `<img src="./svg/we&#34;ird.svg">`)
	assert.Contains(t, page, "<td>&lt;in&gt;</td><td>a&amp;b</td><td>Array&lt;Int32&gt;</td>")
	assert.Contains(t, page, `<a href="A&lt;B&gt;&amp;&#34;C&#34;.html">`)
}

func TestRenderPageCustomLayout(t *testing.T) {
	layout := Layout{Stylesheet: "/assets/docs.css", ImageDir: "/assets/svg/"}
	page, err := RenderPage(addNode(), "", layout, nil)
	require.NoError(t, err)
	assert.Contains(t, page, `href="/assets/docs.css"`)
	assert.Contains(t, page, `<img src="/assets/svg/add.svg">`)
}

func TestRenderPageMarkdownDescription(t *testing.T) {
	n := addNode()
	n.Description = "Adds **two** numbers.\n\n- wraps on overflow\n- <script>alert(1)</script>"

	page, err := RenderPage(n, "", DefaultLayout, MarkdownDescriber())
	require.NoError(t, err)
	assert.Contains(t, page, "<p>Adds <strong>two</strong> numbers.</p>")
	assert.Contains(t, page, "<li>wraps on overflow</li>")
	assert.NotContains(t, page, "<script>")
}

func TestRenderPageDescriberError(t *testing.T) {
	boom := func(string) (string, error) { return "", assert.AnError }
	_, err := RenderPage(addNode(), "", DefaultLayout, boom)
	require.ErrorIs(t, err, assert.AnError)
}
