package smosidebar

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html"
)

// Markup is the structure of a rendered sidebar fragment.
type Markup struct {
	ActivePage string
	Logo       string
	Version    string
	Links      []Link
}

type Link struct {
	Page            string
	Label           string
	HRef            string
	Active          bool
	SeparatorBefore bool `json:",omitempty"`
}

// Active returns the links that are marked as active.
func (m Markup) Active() []Link {
	var l []Link

	for _, link := range m.Links {
		if link.Active {
			l = append(l, link)
		}
	}

	return l
}

// ParseMarkup reads a rendered sidebar fragment back. Links count as active
// when they carry activeClass, "active" is used if activeClass is empty.
func ParseMarkup(r io.Reader, activeClass string) (Markup, error) {
	if activeClass == "" {
		activeClass = DefaultConfig().ActiveClass
	}

	nodes, err := html.ParseFragment(r, bodyContext)
	if err != nil {
		return Markup{}, fmt.Errorf("parse HTML: %w", err)
	}

	var (
		m         Markup
		separator bool
	)

	for _, root := range nodes {
		for n := range withDescendants(root) {
			if n.Type != html.ElementNode {
				continue
			}

			switch {
			case n.Data == "smo-sidebar":
				m.ActivePage = attr(n, "active-page")
			case n.Data == "div" && hasClass(n, "logo"):
				m.Logo = ownText(n)
			case n.Data == "div" && hasClass(n, "version"):
				m.Version = ownText(n)
			case n.Data == "hr" && hasClass(n, "separator") && inMenu(n):
				separator = true
			case n.Data == "a" && attr(n, "data-page") != "":
				m.Links = append(m.Links, Link{
					Page:            attr(n, "data-page"),
					Label:           textContent(n),
					HRef:            attr(n, "href"),
					Active:          hasClass(n, activeClass),
					SeparatorBefore: separator,
				})

				separator = false
			}
		}
	}

	return m, nil
}

// inMenu reports whether the node sits inside the sidebar menu nav.
func inMenu(n *html.Node) bool {
	for a := range n.Ancestors() {
		if a.Type == html.ElementNode && a.Data == "nav" &&
			hasClass(a, "sidebar-menu") {
			return true
		}
	}

	return false
}

// ownText collects the text of the direct children of a node.
func ownText(n *html.Node) string {
	var b strings.Builder

	for c := range n.ChildNodes() {
		if c.Type == html.TextNode {
			b.WriteString(c.Data)
		}
	}

	return strings.TrimSpace(b.String())
}

func textContent(n *html.Node) string {
	var b strings.Builder

	for d := range n.Descendants() {
		if d.Type == html.TextNode {
			b.WriteString(d.Data)
		}
	}

	return strings.TrimSpace(b.String())
}
