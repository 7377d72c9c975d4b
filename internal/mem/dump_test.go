package mem

// CellsDump exposes page layout for testing.
type CellsDump struct {
	Bases []uint
	Sizes []uint
	Pages [][]int32
}

// Dump page layout for testing.
func (m *Cells) Dump() CellsDump {
	return CellsDump{m.bases, m.sizes, m.pages}
}
