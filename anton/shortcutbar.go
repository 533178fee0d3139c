package anton

import "context"

// barHints are the navigation keys the views consume directly; they
// never reach the shortcut set but still deserve a slot on the bar.
var barHints = [][2]string{
	{"←→", "Byte"},
	{"↑↓", "Row"},
	{"PgUp/Dn", "Page"},
	{"G", "Goto"},
}

type ShortcutBar struct {
	BaseVisualComponent
	set     *ShortcutSet
	lastTab ViewTab
}

func NewShortcutBar(window *Window, set *ShortcutSet) *ShortcutBar {
	return &ShortcutBar{
		BaseVisualComponent: NewBaseVisualComponent(window),
		set:                 set,
	}
}

func (s *ShortcutBar) Update(_ctx context.Context) (bool, error) {
	tab := State().ActiveTab
	if s.lastTab == tab {
		return false, nil
	}
	s.lastTab = tab
	return true, nil
}

func (s *ShortcutBar) Render(_force bool) {
	w := s.Window()
	w.Cursor(0, 0)
	for _, hint := range barHints {
		s.printSlot(hint[0], hint[1])
	}
	for _, sh := range s.set.List() {
		s.printSlot(sh.KeyAsText(), sh.Label)
	}
	w.FillToEOL(' ', ColorText.Attr())
}

func (s *ShortcutBar) printSlot(key, label string) {
	w := s.Window()
	w.Print(" "+key+" ", ColorShortcut.Attr(), false)
	w.Print(" "+label+"  ", ColorText.Attr(), false)
}
