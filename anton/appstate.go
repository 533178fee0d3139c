package anton

import (
	"sync"

	"github.com/vxpm/anton/internal/addrspace"
	"github.com/vxpm/anton/internal/decode"
	"github.com/vxpm/anton/internal/view"
)

type ViewTab int

const (
	TabMemory ViewTab = iota + 1
	TabInstructions
)

type AppStateData struct {
	Pointer          addrspace.Addr
	ActiveTab        ViewTab
	SourceName       string
	ViewerFrameTimeMS int
	InputFocus       bool
	InputBuffer      string
	LastSourceError  string
	MemoryGrid       view.Grid
	MemoryViewport   view.Viewport
	Decoded          decode.Decoded
	InstructionRows  []view.UnitRow
	InstructionVP    view.UnitViewport
}

type StateStore struct {
	mu sync.RWMutex
	s  AppStateData
}

var store = newStateStore()

func newStateStore() *StateStore {
	return &StateStore{
		s: AppStateData{
			ActiveTab: TabMemory,
		},
	}
}

func State() AppStateData {
	store.mu.RLock()
	defer store.mu.RUnlock()
	return store.snapshotLocked()
}

func (s *StateStore) snapshotLocked() AppStateData {
	st := s.s
	if st.MemoryGrid.Rows != nil {
		rows := make([]view.Row, len(st.MemoryGrid.Rows))
		copy(rows, st.MemoryGrid.Rows)
		st.MemoryGrid.Rows = rows
	}
	if st.InstructionRows != nil {
		rows := make([]view.UnitRow, len(st.InstructionRows))
		copy(rows, st.InstructionRows)
		st.InstructionRows = rows
	}
	return st
}

func (s *StateStore) setPointer(addr addrspace.Addr) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.s.Pointer = addr
}

func (s *StateStore) setActiveTab(tab ViewTab) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.s.ActiveTab = tab
}

func (s *StateStore) setSourceName(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.s.SourceName = name
}

func (s *StateStore) setMemoryFrame(grid view.Grid, vp view.Viewport, dec decode.Decoded) {
	s.mu.Lock()
	defer s.mu.Unlock()
	rows := make([]view.Row, len(grid.Rows))
	copy(rows, grid.Rows)
	s.s.MemoryGrid = view.Grid{Rows: rows}
	s.s.MemoryViewport = vp
	s.s.Decoded = dec
}

func (s *StateStore) setInstructionFrame(rows []view.UnitRow, vp view.UnitViewport) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]view.UnitRow, len(rows))
	copy(out, rows)
	s.s.InstructionRows = out
	s.s.InstructionVP = vp
}

func (s *StateStore) setFrameTimeMS(ms int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.s.ViewerFrameTimeMS = ms
}

func (s *StateStore) setInputFocus(enabled bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.s.InputFocus = enabled
	if !enabled {
		s.s.InputBuffer = ""
	}
}

func (s *StateStore) setInputBuffer(text string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.s.InputBuffer = text
}

func (s *StateStore) setLastSourceError(text string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.s.LastSourceError = text
}
