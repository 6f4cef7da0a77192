package smosidebar_test

import (
	"testing"

	smosidebar "github.com/eu-nephele/smo-sidebar"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

var wantEntries = []smosidebar.NavigationEntry{
	{ID: "dashboard", Label: "Dashboard", Path: "/"},
	{ID: "graphs", Label: "Graphs", Path: "/graphs"},
	{ID: "projects", Label: "Projects", Path: "/projects"},
	{ID: "clusters", Label: "Clusters", Path: "/clusters"},
	{ID: "marketplace", Label: "Marketplace", Path: "/marketplace"},
	{ID: "events", Label: "Events", Path: "/events"},
	{ID: "docs", Label: "API Documentation", Path: "/docs", SeparatorBefore: true},
	{ID: "settings", Label: "Settings", Path: "/settings"},
}

func TestEntries(t *testing.T) {
	got := smosidebar.Entries()

	if diff := cmp.Diff(wantEntries, got); diff != "" {
		t.Fatalf("entries mismatch (-want +got):\n%s", diff)
	}

	got[0].Label = "Mutated"

	require.Equal(t, "Dashboard", smosidebar.Entries()[0].Label,
		"callers must not be able to change the menu")
}

func TestLookupEntry(t *testing.T) {
	e, ok := smosidebar.LookupEntry("marketplace")
	require.True(t, ok)
	require.Equal(t, "/marketplace", e.Path)

	_, ok = smosidebar.LookupEntry("unknown")
	require.False(t, ok)

	_, ok = smosidebar.LookupEntry("")
	require.False(t, ok)
}

func TestActivePageForPath(t *testing.T) {
	cases := map[string]string{
		"":                  "dashboard",
		"/":                 "dashboard",
		"/graphs":           "graphs",
		"/graphs/":          "graphs",
		"/graphs/42/deploy": "graphs",
		"/graphsx":          "",
		"/projects/demo":    "projects",
		"/clusters":         "clusters",
		"/marketplace":      "marketplace",
		"/events":           "events",
		"/docs/api":         "docs",
		"/settings":         "settings",
		"/unknown":          "",
		"/index.html":       "",
	}

	for path, want := range cases {
		t.Run(path, func(t *testing.T) {
			require.Equal(t, want, smosidebar.ActivePageForPath(path))
		})
	}
}
