package anton

import (
	"context"
	"fmt"
)

type Shortcut struct {
	Key      int
	Label    string
	Callback func()
}

func NewShortcut(key int, label string, callback func()) Shortcut {
	return Shortcut{Key: normalizeShortcutKey(key), Label: label, Callback: callback}
}

func (s Shortcut) KeyAsText() string {
	if s.Key == 27 {
		return "Esc"
	}
	if s.Key == 9 {
		return "Tab"
	}
	if s.Key < 32 {
		return "^" + string(rune(s.Key+64))
	}
	if s.Key > 126 {
		return fmt.Sprintf("%d", s.Key)
	}
	if s.Key >= int('a') && s.Key <= int('z') {
		return string(rune(s.Key - 32))
	}
	return string(rune(s.Key))
}

type ShortcutSet struct {
	shortcuts map[int]Shortcut
	order     []int
}

func NewShortcutSet() *ShortcutSet {
	return &ShortcutSet{shortcuts: map[int]Shortcut{}, order: []int{}}
}

func (s *ShortcutSet) Add(shortcut Shortcut) error {
	key := normalizeShortcutKey(shortcut.Key)
	shortcut.Key = key
	if _, ok := s.shortcuts[key]; ok {
		return fmt.Errorf("shortcut already registered: %d", key)
	}
	s.shortcuts[key] = shortcut
	s.order = append(s.order, key)
	return nil
}

func (s *ShortcutSet) Get(key int) (Shortcut, bool) {
	sc, ok := s.shortcuts[normalizeShortcutKey(key)]
	return sc, ok
}

func (s *ShortcutSet) List() []Shortcut {
	out := make([]Shortcut, 0, len(s.order))
	for _, key := range s.order {
		out = append(out, s.shortcuts[key])
	}
	return out
}

func normalizeShortcutKey(key int) int {
	if key >= int('A') && key <= int('Z') {
		return key + 32
	}
	return key
}

// ShortcutInput routes global keys that no view consumed. It sits after
// the views in the component list so view-local keys win.
type ShortcutInput struct {
	set *ShortcutSet
}

func NewShortcutInput(set *ShortcutSet) *ShortcutInput {
	return &ShortcutInput{set: set}
}

func (s *ShortcutInput) Update(ctx context.Context) (bool, error) { return false, nil }
func (s *ShortcutInput) PostRender(ctx context.Context) error     { return nil }

func (s *ShortcutInput) HandleInput(ch int) bool {
	if State().InputFocus {
		return false
	}
	shortcut, ok := s.set.Get(ch)
	if !ok {
		return false
	}
	if shortcut.Callback != nil {
		shortcut.Callback()
	}
	return true
}
