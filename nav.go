package smosidebar

import (
	"slices"
	"strings"
)

// DefaultActivePage is used when no active page has been given.
const DefaultActivePage = "dashboard"

// NavigationEntry is a single link in the sidebar menu.
type NavigationEntry struct {
	ID    string
	Label string
	Path  string
	// SeparatorBefore renders a divider above the entry.
	SeparatorBefore bool
}

var navigation = []NavigationEntry{
	{ID: "dashboard", Label: "Dashboard", Path: "/"},
	{ID: "graphs", Label: "Graphs", Path: "/graphs"},
	{ID: "projects", Label: "Projects", Path: "/projects"},
	{ID: "clusters", Label: "Clusters", Path: "/clusters"},
	{ID: "marketplace", Label: "Marketplace", Path: "/marketplace"},
	{ID: "events", Label: "Events", Path: "/events"},
	{ID: "docs", Label: "API Documentation", Path: "/docs", SeparatorBefore: true},
	{ID: "settings", Label: "Settings", Path: "/settings"},
}

// Entries returns the navigation entries in menu order.
func Entries() []NavigationEntry {
	return slices.Clone(navigation)
}

func LookupEntry(id string) (NavigationEntry, bool) {
	idx := slices.IndexFunc(navigation, func(e NavigationEntry) bool {
		return e.ID == id
	})
	if idx == -1 {
		return NavigationEntry{}, false
	}

	return navigation[idx], true
}

// ActivePageForPath returns the identifier of the entry that owns the request
// path, or an empty string if no entry does. Entries own their path and
// everything below it, the longest match wins.
func ActivePageForPath(path string) string {
	if path == "" {
		path = "/"
	}

	var (
		match  string
		length = -1
	)

	for _, e := range navigation {
		if !ownsPath(e.Path, path) || len(e.Path) <= length {
			continue
		}

		match = e.ID
		length = len(e.Path)
	}

	return match
}

func ownsPath(prefix string, path string) bool {
	// The dashboard lives at the root and only owns the root itself.
	if prefix == "/" {
		return path == "/"
	}

	if !strings.HasPrefix(path, prefix) {
		return false
	}

	rest := path[len(prefix):]

	return rest == "" || strings.HasPrefix(rest, "/")
}
