package smosidebar

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io"
	"iter"
	"slices"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

//go:embed templates
var templateFS embed.FS

//go:embed assets
var assetFS embed.FS

const sidebarTemplate = "sidebar.html"

// Renderer renders the sidebar fragment. It's safe for concurrent use.
type Renderer struct {
	conf Config
	tpl  *template.Template
}

type sidebarView struct {
	Sidebar     Sidebar
	ActiveClass string
}

func NewRenderer(conf Config) (*Renderer, error) {
	conf = conf.withDefaults()

	err := conf.Validate()
	if err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	tpl, err := template.New("templates").ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}

	return &Renderer{
		conf: conf,
		tpl:  tpl,
	}, nil
}

// Config returns the effective configuration of the renderer.
func (r *Renderer) Config() Config {
	return r.conf
}

func (r *Renderer) Sidebar(activePage string) Sidebar {
	return NewSidebar(activePage, r.conf)
}

// Render writes the sidebar with the given page highlighted. Pages that
// aren't part of the menu are ignored and nothing gets highlighted.
func (r *Renderer) Render(w io.Writer, activePage string) error {
	return r.RenderSidebar(w, r.Sidebar(activePage))
}

func (r *Renderer) RenderSidebar(w io.Writer, s Sidebar) error {
	view := sidebarView{
		Sidebar:     s,
		ActiveClass: r.conf.ActiveClass,
	}

	if len(r.conf.Classes) == 0 {
		err := r.tpl.ExecuteTemplate(w, sidebarTemplate, view)
		if err != nil {
			return fmt.Errorf("render sidebar: %w", err)
		}

		return nil
	}

	var buf bytes.Buffer

	err := r.tpl.ExecuteTemplate(&buf, sidebarTemplate, view)
	if err != nil {
		return fmt.Errorf("render sidebar: %w", err)
	}

	err = decorate(w, &buf, r.conf.Classes, r.conf.ActiveClass)
	if err != nil {
		return fmt.Errorf("add configured classes: %w", err)
	}

	return nil
}

func (r *Renderer) RenderHTML(activePage string) (template.HTML, error) {
	var buf bytes.Buffer

	err := r.Render(&buf, activePage)
	if err != nil {
		return "", err
	}

	return template.HTML(buf.String()), nil
}

// ActivePageForPath resolves the active page for a request path that
// includes the configured base path.
func (r *Renderer) ActivePageForPath(path string) string {
	p, ok := stripBasePath(r.conf.BasePath, path)
	if !ok {
		return ""
	}

	return ActivePageForPath(p)
}

// RenderPath writes the sidebar for the page that owns the request path.
// Nothing is highlighted when no page owns the path.
func (r *Renderer) RenderPath(w io.Writer, path string) error {
	page := r.ActivePageForPath(path)
	if page == "" {
		return r.RenderSidebar(w, r.Sidebar(DefaultActivePage).withoutActive())
	}

	return r.Render(w, page)
}

var bodyContext = &html.Node{
	Type:     html.ElementNode,
	Data:     "body",
	DataAtom: atom.Body,
}

// decorate appends the configured classes to the elements of a rendered
// fragment. The active class is never added, it's reserved for the
// highlighted entry.
func decorate(
	w io.Writer, src io.Reader, classes map[string]string, activeClass string,
) error {
	nodes, err := html.ParseFragment(src, bodyContext)
	if err != nil {
		return fmt.Errorf("parse HTML: %w", err)
	}

	for _, root := range nodes {
		for n := range withDescendants(root) {
			if n.Type != html.ElementNode {
				continue
			}

			class, ok := classes[n.Data]
			if !ok {
				continue
			}

			addClass(n, class, activeClass)
		}

		err := html.Render(w, root)
		if err != nil {
			return fmt.Errorf("render modified HTML: %w", err)
		}
	}

	return nil
}

func withDescendants(n *html.Node) iter.Seq[*html.Node] {
	return func(yield func(*html.Node) bool) {
		if !yield(n) {
			return
		}

		for d := range n.Descendants() {
			if !yield(d) {
				return
			}
		}
	}
}

func addClass(n *html.Node, class string, reserved string) {
	add := slices.DeleteFunc(strings.Fields(class), func(c string) bool {
		return c == reserved
	})
	if len(add) == 0 {
		return
	}

	for i := range n.Attr {
		if n.Attr[i].Key != "class" {
			continue
		}

		current := strings.Fields(n.Attr[i].Val)

		for _, c := range add {
			if !slices.Contains(current, c) {
				current = append(current, c)
			}
		}

		n.Attr[i].Val = strings.Join(current, " ")

		return
	}

	n.Attr = append(n.Attr, html.Attribute{
		Key: "class",
		Val: strings.Join(add, " "),
	})
}

func hasClass(n *html.Node, class string) bool {
	return slices.Contains(strings.Fields(attr(n, "class")), class)
}

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}

	return ""
}
