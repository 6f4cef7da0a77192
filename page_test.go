package smosidebar_test

import (
	"testing"

	smosidebar "github.com/eu-nephele/smo-sidebar"
	"github.com/stretchr/testify/require"
)

func activePages(s smosidebar.Sidebar) []string {
	var pages []string

	for _, item := range s.Menu {
		if item.Active {
			pages = append(pages, item.Page)
		}
	}

	return pages
}

func TestNewSidebarHighlightsKnownPages(t *testing.T) {
	for _, e := range smosidebar.Entries() {
		t.Run(e.ID, func(t *testing.T) {
			s := smosidebar.NewSidebar(e.ID, smosidebar.DefaultConfig())

			require.Len(t, s.Menu, 8)
			require.Equal(t, []string{e.ID}, activePages(s))

			item, ok := s.ActiveItem()
			require.True(t, ok)
			require.Equal(t, e.Label, item.Title)
			require.Equal(t, e.Path, item.HRef)
		})
	}
}

func TestNewSidebarDefaultsToDashboard(t *testing.T) {
	s := smosidebar.NewSidebar("", smosidebar.DefaultConfig())

	require.Equal(t, "dashboard", s.ActivePage)
	require.Equal(t, []string{"dashboard"}, activePages(s))
}

func TestNewSidebarUnknownPage(t *testing.T) {
	s := smosidebar.NewSidebar("unknown", smosidebar.DefaultConfig())

	require.Equal(t, "unknown", s.ActivePage)
	require.Empty(t, activePages(s))
	require.Len(t, s.Menu, 8)

	_, ok := s.ActiveItem()
	require.False(t, ok)
}

func TestNewSidebarFixedOrder(t *testing.T) {
	s := smosidebar.NewSidebar("events", smosidebar.Config{})

	require.Equal(t, "SMO", s.Logo, "empty config should use the default logo")

	for i, e := range wantEntries {
		require.Equal(t, e.ID, s.Menu[i].Page)
		require.Equal(t, e.Label, s.Menu[i].Title)
		require.Equal(t, e.Path, s.Menu[i].HRef)
		require.Equal(t, e.SeparatorBefore, s.Menu[i].Separator)
	}
}

func TestNewSidebarBasePath(t *testing.T) {
	for _, base := range []string{"/smo", "/smo/", "smo"} {
		t.Run(base, func(t *testing.T) {
			s := smosidebar.NewSidebar("", smosidebar.Config{BasePath: base})

			require.Equal(t, "/smo/", s.Menu[0].HRef)
			require.Equal(t, "/smo/graphs", s.Menu[1].HRef)
			require.Equal(t, "/smo/settings", s.Menu[7].HRef)
		})
	}
}

func TestNewSidebarVersion(t *testing.T) {
	s := smosidebar.NewSidebar("", smosidebar.Config{Version: "1.4.0"})

	require.Equal(t, "v1.4.0", s.Version)
	require.False(t, s.Prerelease)

	s = smosidebar.NewSidebar("", smosidebar.Config{Version: "v2.0.0-rc.1"})

	require.Equal(t, "v2.0.0-rc.1", s.Version)
	require.True(t, s.Prerelease)
}
