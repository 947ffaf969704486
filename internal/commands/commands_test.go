// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package commands

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// =============================================================================
// REGISTRY TESTS
// =============================================================================

var builtinOrder = []string{
	"nav-home", "nav-work", "nav-about", "nav-contact", "nav-evidence", "arch-explorer",
	"case-sne-os", "case-radar", "case-vault",
	"ext-demo", "ext-github", "ext-linkedin", "ext-email",
}

func TestBuild(t *testing.T) {
	r, err := Build(DefaultLinks())
	require.NoError(t, err)

	assert.Equal(t, 13, r.Len())
	assert.Equal(t, builtinOrder, r.IDs())

	counts := map[Category]int{}
	for _, c := range r.All() {
		counts[c.Category]++
	}
	assert.Equal(t, map[Category]int{
		CategoryNavigation: 6,
		CategoryCaseStudy:  3,
		CategoryExternal:   4,
	}, counts)
}

func TestBuild_Actions(t *testing.T) {
	r := MustBuild(DefaultLinks())

	tests := []struct {
		id   string
		want Action
	}{
		{"nav-home", Navigate("home")},
		{"nav-work", Navigate("work")},
		{"nav-evidence", Navigate("evidence")},
		{"arch-explorer", Navigate("architecture")},
		{"case-sne-os", OpenCaseStudy("sne-os")},
		{"case-radar", OpenCaseStudy("sne-radar")},
		{"case-vault", OpenCaseStudy("sne-vault")},
		{"ext-demo", OpenExternal("https://snelabs.space")},
		{"ext-github", OpenExternal("https://github.com/SNE-Labs")},
		{"ext-linkedin", OpenExternal("https://linkedin.com/in/renan-melo-connexions")},
		{"ext-email", OpenExternal("mailto:byrenanmelo@gmail.com")},
	}
	for _, tc := range tests {
		cmd, ok := r.Get(tc.id)
		if !ok {
			t.Errorf("Get(%q) missing", tc.id)
			continue
		}
		if cmd.Action != tc.want {
			t.Errorf("%s action = %v, want %v", tc.id, cmd.Action, tc.want)
		}
	}

	demo, _ := r.Get("ext-demo")
	assert.Equal(t, "Open Demo (snelabs.space)", demo.Label)
	email, _ := r.Get("ext-email")
	assert.Equal(t, "byrenanmelo@gmail.com", email.Description)
}

func TestBuild_CustomLinks(t *testing.T) {
	r := MustBuild(Links{Demo: "https://example.org/", Email: "mailto:me@example.org"})

	demo, _ := r.Get("ext-demo")
	assert.Equal(t, "Open Demo (example.org)", demo.Label)
	assert.Equal(t, "https://example.org/", demo.Action.Target)

	email, _ := r.Get("ext-email")
	assert.Equal(t, "mailto:me@example.org", email.Action.Target)
	assert.Equal(t, "me@example.org", email.Description)

	gh, _ := r.Get("ext-github")
	assert.Equal(t, DefaultLinks().GitHub, gh.Action.Target, "empty links fall back to defaults")
}

func TestNewRegistry_Rejects(t *testing.T) {
	_, err := NewRegistry([]Command{
		{ID: "a", Category: CategoryNavigation},
		{ID: "a", Category: CategoryExternal},
	})
	assert.ErrorIs(t, err, ErrDuplicateCommand)

	_, err = NewRegistry([]Command{{ID: "a", Category: "misc"}})
	assert.ErrorIs(t, err, ErrUnknownCategory)

	_, err = NewRegistry([]Command{{ID: " ", Category: CategoryNavigation}})
	assert.Error(t, err)
}

func TestRegistry_AllIsCopy(t *testing.T) {
	r := MustBuild(DefaultLinks())
	all := r.All()
	all[0].Label = "mutated"

	first, _ := r.Get("nav-home")
	assert.Equal(t, "Go to Home", first.Label)
}

func TestGet_Missing(t *testing.T) {
	r := MustBuild(DefaultLinks())
	_, ok := r.Get("nope")
	assert.False(t, ok)
}

// =============================================================================
// FILTER TESTS
// =============================================================================

func TestFilter(t *testing.T) {
	r := MustBuild(DefaultLinks())

	tests := []struct {
		query string
		want  []string
	}{
		{"", builtinOrder},
		{"   ", nil},
		{"\t", nil},
		{"home ", nil},
		{"go to home", []string{"nav-home"}},
		{"radar", []string{"case-radar"}},
		{"RADAR", []string{"case-radar"}},
		{"case study", []string{"case-sne-os", "case-radar", "case-vault"}},
		{"linkedin", []string{"ext-linkedin"}},
		{"gmail", []string{"ext-email"}},
		{"artifacts", []string{"nav-evidence"}},
		{"zzzz", nil},
	}
	for _, tc := range tests {
		got := r.Filter(tc.query)
		ids := make([]string, 0, len(got))
		for _, c := range got {
			ids = append(ids, c.ID)
		}
		if len(tc.want) == 0 {
			assert.Empty(t, ids, "query %q", tc.query)
			continue
		}
		assert.Equal(t, tc.want, ids, "query %q", tc.query)
	}
}

func TestFilter_IsSubsequenceOfRegistry(t *testing.T) {
	r := MustBuild(DefaultLinks())
	pos := map[string]int{}
	for i, id := range r.IDs() {
		pos[id] = i
	}

	for _, q := range []string{"go", "o", "open", "e", "sne"} {
		got := r.Filter(q)
		for i := 1; i < len(got); i++ {
			if pos[got[i-1].ID] >= pos[got[i].ID] {
				t.Errorf("Filter(%q) out of registry order at %d", q, i)
			}
		}
	}
}

// Scenario: open palette, type "radar", one command in one group.
func TestGroupByCategory_Radar(t *testing.T) {
	r := MustBuild(DefaultLinks())
	groups := GroupByCategory(r.Filter("radar"))

	require.Len(t, groups, 1)
	assert.Equal(t, CategoryCaseStudy, groups[0].Category)
	assert.Equal(t, "CASE STUDIES", groups[0].Category.Label())
	require.Len(t, groups[0].Commands, 1)
	assert.Equal(t, "case-radar", groups[0].Commands[0].ID)
}

func TestGroupByCategory_Order(t *testing.T) {
	cmds := []Command{
		{ID: "x1", Category: CategoryExternal},
		{ID: "n1", Category: CategoryNavigation},
		{ID: "x2", Category: CategoryExternal},
		{ID: "n2", Category: CategoryNavigation},
	}
	groups := GroupByCategory(cmds)

	require.Len(t, groups, 2)
	assert.Equal(t, CategoryNavigation, groups[0].Category)
	assert.Equal(t, "n1", groups[0].Commands[0].ID)
	assert.Equal(t, "n2", groups[0].Commands[1].ID)
	assert.Equal(t, CategoryExternal, groups[1].Category)
	assert.Equal(t, "x1", groups[1].Commands[0].ID)

	assert.Empty(t, GroupByCategory(nil))
}

func TestCategoryLabels(t *testing.T) {
	assert.Equal(t, "NAVIGATION", CategoryNavigation.Label())
	assert.Equal(t, "EXTERNAL LINKS", CategoryExternal.Label())
	assert.Equal(t, "palette.category.case-study", CategoryCaseStudy.MessageKey())
	assert.False(t, Category("misc").Valid())
}

func TestActionString(t *testing.T) {
	assert.Equal(t, "navigate(work)", Navigate("work").String())
	assert.Equal(t, "open-case-study(sne-os)", OpenCaseStudy("sne-os").String())
	assert.Equal(t, "action(0)", Action{}.Kind.String())
}

// =============================================================================
// DISPATCH TESTS
// =============================================================================

type recordingNav struct {
	calls []string
}

func (n *recordingNav) GoHome()                { n.calls = append(n.calls, "home") }
func (n *recordingNav) GoToSection(s string)   { n.calls = append(n.calls, "section:"+s) }
func (n *recordingNav) OpenCaseStudy(p string) { n.calls = append(n.calls, "case:"+p) }
func (n *recordingNav) OpenArchitecture()      { n.calls = append(n.calls, "architecture") }

type recordingOpener struct {
	urls []string
}

func (o *recordingOpener) Open(url string) { o.urls = append(o.urls, url) }

func TestDispatcher(t *testing.T) {
	r := MustBuild(DefaultLinks())

	tests := []struct {
		id       string
		wantNav  []string
		wantOpen []string
	}{
		{"nav-home", []string{"home"}, nil},
		{"nav-contact", []string{"section:contact"}, nil},
		{"arch-explorer", []string{"architecture"}, nil},
		{"case-vault", []string{"case:sne-vault"}, nil},
		{"ext-github", nil, []string{"https://github.com/SNE-Labs"}},
	}
	for _, tc := range tests {
		t.Run(tc.id, func(t *testing.T) {
			nav := &recordingNav{}
			op := &recordingOpener{}
			closed := 0
			cmd, ok := r.Get(tc.id)
			require.True(t, ok)

			NewDispatcher(nav, op).Dispatch(cmd, CloserFunc(func() { closed++ }))

			assert.Equal(t, tc.wantNav, nav.calls)
			assert.Equal(t, tc.wantOpen, op.urls)
			assert.Equal(t, 1, closed, "every dispatch closes")
		})
	}
}

func TestDispatcher_NilOpener(t *testing.T) {
	nav := &recordingNav{}
	cmd, _ := MustBuild(DefaultLinks()).Get("ext-demo")

	assert.NotPanics(t, func() {
		NewDispatcher(nav, nil).Dispatch(cmd, nil)
	})
	assert.Empty(t, nav.calls)
}
