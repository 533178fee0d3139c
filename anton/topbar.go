package anton

import (
	"context"
	"fmt"
)

const (
	topbarTitle      = "anton"
	topbarRightWidth = 30
)

type TopBar struct {
	BaseVisualComponent
	lastSnapshot string
}

func NewTopBar(window *Window) *TopBar {
	return &TopBar{BaseVisualComponent: NewBaseVisualComponent(window)}
}

func (t *TopBar) Update(_ctx context.Context) (bool, error) {
	st := State()
	snap := fmt.Sprintf("%s|%s|%08X|%d|%d", st.SourceName, st.LastSourceError,
		uint32(st.Pointer), st.ActiveTab, st.ViewerFrameTimeMS)
	if t.lastSnapshot == snap {
		return false, nil
	}
	t.lastSnapshot = snap
	return true, nil
}

func (t *TopBar) Render(_force bool) {
	st := State()
	w := t.Window()
	w.Cursor(0, 0)
	if st.LastSourceError != "" {
		w.Print(topbarTitle+" ", ColorTopbar.Attr(), false)
		w.Print(" "+st.LastSourceError+" ", ColorError.Attr(), false)
		w.FillToEOL(' ', ColorError.Attr())
	} else {
		w.Print(topbarTitle+"     "+st.SourceName, ColorTopbar.Attr(), false)
		w.FillToEOL(' ', ColorTopbar.Attr())
	}
	start := w.Width() - topbarRightWidth
	if start < 0 {
		start = 0
	}
	w.Cursor(start, 0)
	segments := [][2]any{
		{" " + tabLabel(st.ActiveTab) + " ", ColorText},
		{" " + st.Pointer.Hex() + " ", ColorTopbar},
		{fmt.Sprintf(" %3d ms ", st.ViewerFrameTimeMS), ColorText},
	}
	for _, segment := range segments {
		text := segment[0].(string)
		color := segment[1].(Color)
		w.Print(text, color.Attr(), false)
	}
}

func tabLabel(tab ViewTab) string {
	if tab == TabInstructions {
		return "ASM"
	}
	return "MEM"
}
