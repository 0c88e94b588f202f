package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const (
	PaneSingle = "single"
	PaneBatch  = "batch"
)

// Tab is a tab button tagged with the id of the pane it shows.
type Tab struct {
	Target string
	Label  string
	Active bool
}

// Pane is a content block shown or hidden as a unit.
type Pane struct {
	ID     string
	Active bool
}

// TabSet switches visibility between panes. Before the first Activate
// whatever was marked active at construction stands.
type TabSet struct {
	Tabs  []Tab
	Panes []Pane
}

func NewTabSet(tabs []Tab, panes []Pane) TabSet {
	return TabSet{Tabs: tabs, Panes: panes}
}

func defaultTabSet() TabSet {
	return NewTabSet(
		[]Tab{
			{Target: PaneSingle, Label: "Single Validation", Active: true},
			{Target: PaneBatch, Label: "Batch Upload"},
		},
		[]Pane{
			{ID: PaneSingle, Active: true},
			{ID: PaneBatch},
		},
	)
}

// Activate deactivates every tab and pane, then activates the tab whose
// target is given and the matching pane. Unknown targets change nothing.
func (ts *TabSet) Activate(target string) bool {
	if ts.tabIndex(target) < 0 {
		return false
	}

	for i := range ts.Tabs {
		ts.Tabs[i].Active = false
	}
	for i := range ts.Panes {
		ts.Panes[i].Active = false
	}

	ts.Tabs[ts.tabIndex(target)].Active = true
	for i := range ts.Panes {
		if ts.Panes[i].ID == target {
			ts.Panes[i].Active = true
		}
	}
	return true
}

// Next activates the tab after the current one, wrapping around.
func (ts *TabSet) Next() {
	if len(ts.Tabs) == 0 {
		return
	}
	current := 0
	for i, t := range ts.Tabs {
		if t.Active {
			current = i
			break
		}
	}
	ts.Activate(ts.Tabs[(current+1)%len(ts.Tabs)].Target)
}

// ActivePane returns the id of the first visible pane.
func (ts TabSet) ActivePane() string {
	for _, p := range ts.Panes {
		if p.Active {
			return p.ID
		}
	}
	return ""
}

func (ts TabSet) IsActive(pane string) bool {
	for _, p := range ts.Panes {
		if p.ID == pane {
			return p.Active
		}
	}
	return false
}

func (ts TabSet) tabIndex(target string) int {
	for i, t := range ts.Tabs {
		if t.Target == target {
			return i
		}
	}
	return -1
}

// Render draws the tab bar on one line.
func (ts TabSet) Render() string {
	parts := make([]string, 0, len(ts.Tabs))
	for _, t := range ts.Tabs {
		parts = append(parts, renderTab(t))
	}
	return strings.Join(parts, tabGap)
}

// HitTest maps a column inside the rendered tab bar to a tab target.
func (ts TabSet) HitTest(x int) (string, bool) {
	if x < 0 {
		return "", false
	}
	start := 0
	for _, t := range ts.Tabs {
		w := lipgloss.Width(renderTab(t))
		if x >= start && x < start+w {
			return t.Target, true
		}
		start += w + lipgloss.Width(tabGap)
	}
	return "", false
}

const tabGap = " "

func renderTab(t Tab) string {
	if t.Active {
		return activeTabStyle.Render(t.Label)
	}
	return tabStyle.Render(t.Label)
}
