package mem

// DefaultPageSize provides a default for Cells.PageSize.
const DefaultPageSize = 256

// Cells is a sparse, paged memory of 32-bit cells. Addresses never stored to
// read as zero, and cost no space.
type Cells struct {
	pager
	pages [][]int32
}

// Size returns an address one past the end of the last allocated page.
func (m *Cells) Size() uint {
	if i := len(m.bases) - 1; i >= 0 {
		return m.bases[i] + uint(len(m.pages[i]))
	}
	return 0
}

// Load returns the value stored at addr.
// Returns an error if addr exceeds any Limit.
func (m *Cells) Load(addr uint) (int32, error) {
	var buf [1]int32
	err := m.LoadInto(addr, buf[:])
	return buf[0], err
}

// LoadInto reads len(buf) values starting at addr, zeroing any part of buf
// that falls outside of allocated pages.
// Returns an error if Limit would be exceeded; no partial load is done.
func (m *Cells) LoadInto(addr uint, buf []int32) error {
	if len(buf) == 0 {
		return nil
	}
	end := addr + uint(len(buf))
	if err := m.checkLimit(end, "load"); err != nil {
		return err
	}
	for i := range buf {
		buf[i] = 0
	}
	for pageID := m.findPage(addr); pageID < len(m.bases); pageID++ {
		base, page := m.bases[pageID], m.pages[pageID]
		if base >= end {
			break
		}
		lo, hi := maxAddr(addr, base), minAddr(end, base+uint(len(page)))
		if lo < hi {
			copy(buf[lo-addr:hi-addr], page[lo-base:hi-base])
		}
	}
	return nil
}

// Stor stores values starting at addr, allocating pages as needed.
// Returns an error if Limit would be exceeded; no partial store is done.
func (m *Cells) Stor(addr uint, values ...int32) error {
	if len(values) == 0 {
		return nil
	}
	if err := m.checkLimit(addr+uint(len(values)), "stor"); err != nil {
		return err
	}
	if m.PageSize == 0 {
		m.PageSize = DefaultPageSize
	}
	for pageID := m.findPage(addr); len(values) > 0; pageID++ {
		base, page := m.page(pageID, addr)
		if skip := addr - base; addr >= base && skip < uint(len(page)) {
			n := copy(page[skip:], values)
			values = values[n:]
			addr += uint(n)
		}
	}
	return nil
}

func (m *Cells) page(pageID int, addr uint) (base uint, page []int32) {
	base, size, isNew := m.allocPage(pageID, addr)
	if !isNew {
		return base, m.pages[pageID]
	}
	page = make([]int32, size)
	m.pages = append(m.pages, nil)
	copy(m.pages[pageID+1:], m.pages[pageID:])
	m.pages[pageID] = page
	return base, page
}

func minAddr(a, b uint) uint {
	if a < b {
		return a
	}
	return b
}

func maxAddr(a, b uint) uint {
	if a > b {
		return a
	}
	return b
}
