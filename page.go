package smosidebar

import (
	"net/url"
	"slices"
	"strings"
)

// Sidebar is the data the sidebar template is rendered from.
type Sidebar struct {
	ActivePage string
	Logo       string
	Version    string
	Prerelease bool
	Menu       []MenuItem
}

type MenuItem struct {
	Page      string
	Title     string
	HRef      string
	Active    bool
	Separator bool `json:",omitempty"`
}

// NewSidebar builds the menu for the given active page. An empty page means
// the dashboard, an unknown page leaves every item inactive.
func NewSidebar(activePage string, conf Config) Sidebar {
	if activePage == "" {
		activePage = DefaultActivePage
	}

	conf = conf.withDefaults()

	version, pre := conf.version()

	s := Sidebar{
		ActivePage: activePage,
		Logo:       conf.Logo,
		Version:    version,
		Prerelease: pre,
		Menu:       make([]MenuItem, len(navigation)),
	}

	for i, e := range navigation {
		s.Menu[i] = MenuItem{
			Page:      e.ID,
			Title:     e.Label,
			HRef:      joinBasePath(conf.BasePath, e.Path),
			Separator: e.SeparatorBefore,
		}
	}

	for i := range s.Menu {
		if s.Menu[i].Page == activePage {
			s.Menu[i].Active = true

			break
		}
	}

	return s
}

func (s Sidebar) ActiveItem() (MenuItem, bool) {
	for _, item := range s.Menu {
		if item.Active {
			return item, true
		}
	}

	return MenuItem{}, false
}

func (s Sidebar) withoutActive() Sidebar {
	s.ActivePage = ""
	s.Menu = slices.Clone(s.Menu)

	for i := range s.Menu {
		s.Menu[i].Active = false
	}

	return s
}

func joinBasePath(basePath string, target string) string {
	basePath = strings.TrimSuffix(basePath, "/")
	if basePath == "" {
		return target
	}

	if !strings.HasPrefix(basePath, "/") {
		basePath = "/" + basePath
	}

	joined, err := url.JoinPath(basePath, target)
	if err != nil {
		return basePath + target
	}

	// JoinPath drops the trailing slash of the root entry.
	if target == "/" && !strings.HasSuffix(joined, "/") {
		joined += "/"
	}

	return joined
}

// stripBasePath removes the base path from a request path. The second return
// value is false if the path is outside of the base path.
func stripBasePath(basePath string, path string) (string, bool) {
	basePath = strings.TrimSuffix(basePath, "/")
	if basePath == "" {
		return path, true
	}

	if !strings.HasPrefix(basePath, "/") {
		basePath = "/" + basePath
	}

	if !strings.HasPrefix(path, basePath) {
		return "", false
	}

	rest := path[len(basePath):]

	switch {
	case rest == "":
		return "/", true
	case strings.HasPrefix(rest, "/"):
		return rest, true
	default:
		return "", false
	}
}
