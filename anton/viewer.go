package anton

import (
	"context"

	"github.com/vxpm/anton/internal/addrspace"
	"github.com/vxpm/anton/internal/source"
	"github.com/vxpm/anton/internal/view"
)

const viewerInputTimeoutMS = 500

// TabWindowUpdater swaps the memory and instruction windows when the
// active tab changes.
type TabWindowUpdater struct {
	app          *App
	screen       *Screen
	memory       *Window
	instructions *Window
	lastTab      ViewTab
}

func NewTabWindowUpdater(app *App, screen *Screen, memory, instructions *Window) *TabWindowUpdater {
	return &TabWindowUpdater{
		app:          app,
		screen:       screen,
		memory:       memory,
		instructions: instructions,
		lastTab:      State().ActiveTab,
	}
}

func (u *TabWindowUpdater) Update(ctx context.Context) (bool, error) {
	tab := State().ActiveTab
	if tab == u.lastTab {
		return false, nil
	}
	u.lastTab = tab
	showMemory := tab == TabMemory
	u.memory.SetVisible(showMemory)
	u.instructions.SetVisible(!showMemory)
	if showMemory {
		u.screen.Focus(u.memory)
	} else {
		u.screen.Focus(u.instructions)
	}
	u.app.RebuildScreen()
	return true, nil
}

func (u *TabWindowUpdater) HandleInput(ch int) bool              { return false }
func (u *TabWindowUpdater) PostRender(ctx context.Context) error { return nil }

// SourceHealthUpdater surfaces transport failures of a live source in
// the top bar. Sources without a health signal never report.
type SourceHealthUpdater struct {
	src      source.Provider
	lastText string
}

func NewSourceHealthUpdater(src source.Provider) *SourceHealthUpdater {
	return &SourceHealthUpdater{src: src}
}

func (u *SourceHealthUpdater) Update(ctx context.Context) (bool, error) {
	h, ok := u.src.(interface{ LastError() string })
	if !ok {
		return false, nil
	}
	text := h.LastError()
	if text == u.lastText {
		return false, nil
	}
	u.lastText = text
	store.setLastSourceError(text)
	return true, nil
}

func (u *SourceHealthUpdater) HandleInput(ch int) bool              { return false }
func (u *SourceHealthUpdater) PostRender(ctx context.Context) error { return nil }

// RunViewer runs the interactive viewer until quit or cancellation.
func RunViewer(ctx context.Context, src source.Provider, instructions view.InstructionProvider, start addrspace.Addr) error {
	wmem := NewWindow("Memory", true)
	wmem.AddTag("LE", "le", true)
	winst := NewWindow("Instructions", true)
	winst.AddTag("6502", "cpu", true)
	winst.SetVisible(false)
	winfo := NewWindow("Info", true)
	top := NewWindow("", false)
	bottom := NewWindow("", false)

	layout := func(scr *Screen) {
		w, h := scr.Size()
		top.Reshape(0, 0, w, 1)
		bottom.Reshape(0, h-1, w, 1)
		infoH := 5
		bodyH := h - 2 - infoH
		if bodyH < 3 {
			bodyH = 3
		}
		wmem.Reshape(0, 1, w, bodyH)
		winst.Reshape(0, 1, w, bodyH)
		winfo.Reshape(0, 1+bodyH, w, infoH)
	}

	screen := NewScreen(layout)
	screen.Initialize()
	defer screen.End()

	nav := view.NewNavigator(start)
	dispatcher := NewActionDispatcher(nav)
	store.setPointer(start)
	store.setSourceName(source.Describe(src))

	memView := NewMemoryViewer(src, nav, wmem)
	memView.BindInput(screen, dispatcher)
	instView := NewInstructionViewer(instructions, nav, winst)
	instView.BindInput(screen, dispatcher)
	infoBar := NewInfoBar(winfo)
	topbar := NewTopBar(top)

	set := NewShortcutSet()
	_ = set.Add(NewShortcut(9, "Memory/Asm", func() {
		_ = dispatcher.Dispatch(ActionSwitchTab, nil)
	}))
	_ = set.Add(NewShortcut(int('q'), "Quit", func() {
		_ = dispatcher.Dispatch(ActionQuit, nil)
	}))
	shortcutbar := NewShortcutBar(bottom, set)
	inputProcessor := NewShortcutInput(set)

	app := NewApp(screen, viewerInputTimeoutMS)
	tabUpdater := NewTabWindowUpdater(app, screen, wmem, winst)
	healthUpdater := NewSourceHealthUpdater(src)
	screen.Focus(wmem)

	app.AddComponent(dispatcher)
	app.AddComponent(memView)
	app.AddComponent(instView)
	app.AddComponent(inputProcessor)
	app.AddComponent(infoBar)
	app.AddComponent(topbar)
	app.AddComponent(shortcutbar)
	app.AddComponent(tabUpdater)
	app.AddComponent(healthUpdater)

	return app.Loop(ctx)
}
