package anton

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vxpm/anton/internal/addrspace"
	"github.com/vxpm/anton/internal/source"
	"github.com/vxpm/anton/internal/style"
)

const (
	visualWindowTitle = "anton memory map"
	visualTPS         = 10
)

// memoryMap renders a window of the address space as a bitmap, one
// pixel per byte, colored with the value gradient. Unreadable bytes
// stay black.
type memoryMap struct {
	src    source.Provider
	base   addrspace.Addr
	mark   addrspace.Addr
	width  int
	height int
	buf    []source.Byte
	rgba   []byte
	image  *ebiten.Image
}

func newMemoryMap(src source.Provider, base addrspace.Addr, width, height int) *memoryMap {
	return &memoryMap{
		src:    src,
		base:   base,
		mark:   base,
		width:  width,
		height: height,
		buf:    make([]source.Byte, width*height),
		rgba:   make([]byte, width*height*4),
	}
}

func (m *memoryMap) handleInput() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}
	row := addrspace.Addr(m.width)
	page := row.SatMul(addrspace.Addr(m.height))
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowDown):
		m.base = m.base.SatAdd(row)
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowUp):
		m.base = m.base.SatSub(row)
	case inpututil.IsKeyJustPressed(ebiten.KeyPageDown):
		m.base = m.base.SatAdd(page)
	case inpututil.IsKeyJustPressed(ebiten.KeyPageUp):
		m.base = m.base.SatSub(page)
	case inpututil.IsKeyJustPressed(ebiten.KeyHome):
		m.base = 0
	case inpututil.IsKeyJustPressed(ebiten.KeyEnd):
		m.base = addrspace.Max.SatSub(page)
	}
	return nil
}

func (m *memoryMap) Update() error {
	if err := m.handleInput(); err != nil {
		return err
	}
	m.src.ReadInto(m.base, m.buf)
	for i, b := range m.buf {
		dst := i * 4
		if !b.Valid {
			m.rgba[dst] = 0
			m.rgba[dst+1] = 0
			m.rgba[dst+2] = 0
			m.rgba[dst+3] = 0xFF
			continue
		}
		c := style.Gradient(b.Value)
		m.rgba[dst] = c.R
		m.rgba[dst+1] = c.G
		m.rgba[dst+2] = c.B
		m.rgba[dst+3] = 0xFF
	}
	// white marker on the starting address, when scrolled into view
	if off := m.mark.Diff(m.base); m.mark >= m.base && int(off) < len(m.buf) {
		dst := int(off) * 4
		m.rgba[dst] = 0xFF
		m.rgba[dst+1] = 0xFF
		m.rgba[dst+2] = 0xFF
	}
	if m.image == nil {
		m.image = ebiten.NewImage(m.width, m.height)
	}
	m.image.ReplacePixels(m.rgba)
	ebiten.SetWindowTitle(visualWindowTitle + " - " + m.base.Hex())
	return nil
}

func (m *memoryMap) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)
	if m.image == nil {
		return
	}
	sw, sh := screen.Size()
	if sw < 1 || sh < 1 {
		return
	}
	scaleX := float64(sw) / float64(m.width)
	scaleY := float64(sh) / float64(m.height)
	scale := scaleX
	if scaleY < scale {
		scale = scaleY
	}
	newW := int(float64(m.width) * scale)
	newH := int(float64(m.height) * scale)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(float64((sw-newW)/2), float64((sh-newH)/2))
	screen.DrawImage(m.image, op)
}

func (m *memoryMap) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth < 1 {
		outsideWidth = m.width
	}
	if outsideHeight < 1 {
		outsideHeight = m.height
	}
	return outsideWidth, outsideHeight
}

func RunVisual(src source.Provider, base addrspace.Addr, width, height, scale int) error {
	if width < 1 {
		width = 256
	}
	if height < 1 {
		height = 256
	}
	if scale < 1 {
		scale = 1
	}
	ebiten.SetTPS(visualTPS)
	ebiten.SetWindowTitle(visualWindowTitle)
	ebiten.SetWindowResizable(true)
	ebiten.SetWindowSize(width*scale, height*scale)
	return ebiten.RunGame(newMemoryMap(src, base, width, height))
}
