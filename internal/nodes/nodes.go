// Package nodes holds the node description model read from the JSON node
// document, and the file name derivation shared by every generated page.
package nodes

import (
	"strings"
	"unicode"
)

// PageExt is appended to every derived page file name.
const PageExt = ".html"

// PortSpec describes one input or output port of a node.
type PortSpec struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description"`
	Type        string `json:"type"`
}

// NodeDescription is one documented node. Records are read-only once loaded.
type NodeDescription struct {
	Name        string     `json:"name" validate:"required"`
	Description string     `json:"description"`
	Image       string     `json:"image"`
	Inputs      []PortSpec `json:"inputs" validate:"dive"`
	Outputs     []PortSpec `json:"outputs" validate:"dive"`
}

// FileName returns the page file name derived from the node name.
func (n NodeDescription) FileName() string {
	return FileName(n.Name)
}

// SidebarEntry pairs a page file name with the display name linking to it.
type SidebarEntry struct {
	FileName string
	Name     string
}

// SidebarEntries derives one entry per node, in input order.
func SidebarEntries(list []NodeDescription) []SidebarEntry {
	entries := make([]SidebarEntry, 0, len(list))
	for _, n := range list {
		entries = append(entries, SidebarEntry{FileName: n.FileName(), Name: n.Name})
	}
	return entries
}

// FileName removes every whitespace rune from name and appends PageExt.
// Whitespace follows the ECMAScript \s class: Unicode White_Space plus
// U+FEFF, without U+0085.
func FileName(name string) string {
	return strings.Map(func(r rune) rune {
		if isSpace(r) {
			return -1
		}
		return r
	}, name) + PageExt
}

func isSpace(r rune) bool {
	if r == '\uFEFF' {
		return true
	}
	return r != '\u0085' && unicode.IsSpace(r)
}
