package mem

import "fmt"

// pager tracks the address ranges of allocated pages, kept in address order.
type pager struct {
	// PageSize specifies the length for newly allocated pages.
	PageSize uint

	// Limit specifies a limit, past which any store or load should result in an error.
	Limit uint

	bases []uint
	sizes []uint
}

// LimitError indicates that a load or store exceeded the memory limit.
type LimitError struct {
	Addr uint
	Op   string
}

func (lim LimitError) Error() string {
	return fmt.Sprintf("memory limit exceeded by %v @%v", lim.Op, lim.Addr)
}

// findPage returns the index of the last page whose base is not above addr,
// or 0 if there is none.
func (pg *pager) findPage(addr uint) int {
	i, j := 0, len(pg.bases)
	for i < j {
		h := int(uint(i+j)>>1) + 1
		if h < len(pg.bases) && pg.bases[h] <= addr {
			i = h
		} else {
			j = h - 1
		}
	}
	return i
}

// allocPage returns the range of page pageID, first allocating one to hold
// addr if pageID is past the end, or starts after addr.
func (pg *pager) allocPage(pageID int, addr uint) (base, size uint, isNew bool) {
	if pageID == len(pg.bases) {
		base = addr / pg.PageSize * pg.PageSize
		size = pg.PageSize
		if i := len(pg.bases) - 1; i >= 0 {
			if lastEnd := pg.bases[i] + pg.sizes[i]; base < lastEnd {
				size -= lastEnd - base
				base = lastEnd
			}
		}
		pg.bases = append(pg.bases, base)
		pg.sizes = append(pg.sizes, size)
		return base, size, true
	}

	base = pg.bases[pageID]
	if addr >= base {
		return base, pg.sizes[pageID], false
	}

	nextBase := base
	base = addr / pg.PageSize * pg.PageSize
	size = pg.PageSize
	if gap := nextBase - base; size > gap {
		size = gap
	}
	pg.bases = append(pg.bases, 0)
	pg.sizes = append(pg.sizes, 0)
	copy(pg.bases[pageID+1:], pg.bases[pageID:])
	copy(pg.sizes[pageID+1:], pg.sizes[pageID:])
	pg.bases[pageID] = base
	pg.sizes[pageID] = size
	return base, size, true
}

func (pg *pager) checkLimit(addr uint, op string) error {
	if max := pg.Limit; max != 0 && addr > max {
		return LimitError{addr, op}
	}
	return nil
}
