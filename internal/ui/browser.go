// Package ui is the interactive menu browser: a bubbletea program that
// renders the current screen's items in a table with a breadcrumb strip on
// top and the navigation bar and key hints below. All trail bookkeeping
// lives behind the engine; the browser only consumes its banner output and
// navigation results.
package ui

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"charm.land/bubbles/v2/table"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/oakwood-commons/wayfind/pkg/engine"
	"github.com/oakwood-commons/wayfind/pkg/menu"
)

const (
	defaultWidth  = 92
	defaultHeight = 24
)

// Browser is the root bubbletea model.
type Browser struct {
	eng   *engine.Engine
	block *menu.Block

	// itemStack holds the nested item lists opened inside the current
	// screen (submenus, dashboard panel sets). The top of the stack is
	// what the table shows; an empty stack shows the block's own items.
	itemStack [][]menu.Item

	table    table.Model
	styles   styles
	status   string
	width    int
	height   int
	quitting bool
}

// NewBrowser creates a browser positioned at the given start block.
func NewBrowser(eng *engine.Engine, start *menu.Block, noColor bool) *Browser {
	t := table.New(
		table.WithColumns(itemColumns(defaultWidth)),
		table.WithFocused(true),
		table.WithHeight(defaultHeight-8),
	)
	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderBottom(true).
		BorderTop(false).
		BorderLeft(false).
		BorderRight(false).
		Bold(true)
	t.SetStyles(s)

	b := &Browser{
		eng:    eng,
		block:  start,
		table:  t,
		styles: newStyles(noColor),
		width:  defaultWidth,
		height: defaultHeight,
	}
	b.reloadRows("")
	return b
}

func itemColumns(width int) []table.Column {
	keyWidth := width / 3
	return []table.Column{
		{Title: "KEY", Width: keyWidth},
		{Title: "KIND", Width: 10},
		{Title: "TARGET", Width: width - keyWidth - 12},
	}
}

// currentItems returns the item list the table is showing.
func (b *Browser) currentItems() []menu.Item {
	if len(b.itemStack) > 0 {
		return b.itemStack[len(b.itemStack)-1]
	}
	if b.block == nil {
		return nil
	}
	return b.block.Items
}

// reloadRows rebuilds the table from the current items and positions the
// cursor on the row matching key, if any.
func (b *Browser) reloadRows(key string) {
	items := b.currentItems()
	rows := make([]table.Row, len(items))
	cursor := 0
	for i, item := range items {
		target := ""
		switch item.EffectiveKind() {
		case menu.KindDelta:
			target = item.Block
		case menu.KindZLink:
			target = item.File + "/" + item.Block
		case menu.KindItem:
			target = item.Exec
		}
		rows[i] = table.Row{item.Key, item.EffectiveKind(), target}
		if item.Key == key {
			cursor = i
		}
	}
	b.table.SetRows(rows)
	b.table.SetCursor(cursor)
}

// Init implements tea.Model.
func (b *Browser) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (b *Browser) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		b.width = msg.Width
		b.height = msg.Height
		b.table.SetColumns(itemColumns(b.width))
		b.table.SetHeight(max(3, b.height-8))
		return b, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			b.quitting = true
			return b, tea.Quit
		case "enter", "right":
			b.activateSelected()
			return b, nil
		case "backspace", "left", "esc":
			b.goBack()
			return b, nil
		default:
			if item, ok := b.navBarItemFor(msg.String()); ok {
				b.jumpNavBar(item)
				return b, nil
			}
		}
	}

	var cmd tea.Cmd
	b.table, cmd = b.table.Update(msg)
	return b, cmd
}

// activateSelected runs the engine activation for the highlighted item and
// updates the view from the result.
func (b *Browser) activateSelected() {
	row := b.table.SelectedRow()
	if len(row) == 0 {
		return
	}
	items := b.currentItems()
	var item *menu.Item
	for i := range items {
		if items[i].Key == row[0] {
			item = &items[i]
			break
		}
	}
	if item == nil {
		return
	}

	res, err := b.eng.Activate(context.Background(), *item)
	if err != nil {
		if errors.Is(err, engine.ErrAccessDenied) {
			b.status = b.styles.Denied.Render("access denied: " + item.Key)
		} else {
			b.status = fmt.Sprintf("error: %v", err)
		}
		return
	}
	b.status = ""

	switch {
	case res.Block != nil:
		// Link activation landed on a new screen.
		b.block = res.Block
		b.itemStack = nil
		b.reloadRows("")
	case len(item.Items) > 0:
		// Submenu, dashboard, or panel opened in place.
		b.itemStack = append(b.itemStack, item.Items)
		b.reloadRows("")
	default:
		b.status = "selected " + item.Key
	}
}

// goBack performs one back-navigation step through the engine.
func (b *Browser) goBack() {
	if len(b.itemStack) > 0 {
		// Unwind the in-screen item stack in lockstep with the trail.
		b.itemStack = b.itemStack[:len(b.itemStack)-1]
	}
	res, err := b.eng.HandleBack(context.Background())
	if err != nil {
		b.status = fmt.Sprintf("error: %v", err)
		return
	}
	if res.AtRoot {
		b.status = "at top level"
		b.reloadRows("")
		return
	}
	b.status = ""
	b.block = res.Block
	b.reloadRows(res.Cursor)
}

// navBarItemFor maps a pressed digit to a navigation-bar item.
func (b *Browser) navBarItemFor(key string) (menu.NavBarItem, bool) {
	idx, err := strconv.Atoi(key)
	if err != nil || idx < 1 {
		return menu.NavBarItem{}, false
	}
	items := b.eng.NavBarItems(b.block)
	if idx > len(items) {
		return menu.NavBarItem{}, false
	}
	return items[idx-1], true
}

// jumpNavBar performs a full-reset navigation-bar jump.
func (b *Browser) jumpNavBar(item menu.NavBarItem) {
	blk, err := b.eng.HandleNavBarClick(context.Background(), item)
	if err != nil {
		b.status = fmt.Sprintf("error: %v", err)
		return
	}
	b.status = ""
	b.block = blk
	b.itemStack = nil
	b.reloadRows("")
}

// View implements tea.Model.
func (b *Browser) View() tea.View {
	if b.quitting {
		return tea.NewView("")
	}

	title := ""
	if b.block != nil {
		title = b.block.Title
	}

	lines := []string{
		b.styles.Title.Render(title),
		b.styles.Breadcrumb.Render(b.eng.Strip(b.width)),
		b.table.View(),
	}
	if bar := b.navBarLine(); bar != "" {
		lines = append(lines, bar)
	}
	lines = append(lines, b.styles.Footer.Render(" enter open  backspace back  1-9 navbar  q quit "))
	if b.status != "" {
		lines = append(lines, b.styles.Status.Render(b.status))
	}

	out := ""
	for i, l := range lines {
		if i > 0 {
			out += "\n"
		}
		out += l
	}
	v := tea.NewView(out)
	v.AltScreen = true
	return v
}

// navBarLine renders the resolved navigation bar, or empty when the bar is
// disabled for the current screen.
func (b *Browser) navBarLine() string {
	items := b.eng.NavBarItems(b.block)
	if len(items) == 0 {
		return ""
	}
	out := ""
	for i, item := range items {
		if i > 0 {
			out += " "
		}
		out += b.styles.NavBarKey.Render(fmt.Sprintf(" %d ", i+1)) + b.styles.NavBar.Render(" "+item.Label+" ")
	}
	return out
}
