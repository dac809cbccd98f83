package scan

import "github.com/striderio/strider/vec"

// CountNewlines returns the number of line-terminator events in buf. An
// event is a lone "\n", a lone "\r", or a "\r\n" pair; the pair counts
// exactly once.
func CountNewlines(buf []byte) int {
	if wide {
		return countNewlinesKernel(buf, vec.Width256, vec.Load256Aligned, vec.Broadcast256)
	}
	return countNewlinesKernel(buf, vec.Width128, vec.Load128Aligned, vec.Broadcast128)
}

// NewlinePositions returns the total number of line-terminator events in
// buf and stores the byte offsets of the first min(total, len(dst)) events
// into dst. A "\r\n" pair is one event at the offset of the "\r". The total
// is always the true count: when dst is too small the surplus offsets are
// dropped, never the count.
func NewlinePositions(buf []byte, dst []int) int {
	if wide {
		return newlinePositionsKernel(buf, dst, vec.Width256, vec.Load256Aligned, vec.Broadcast256)
	}
	return newlinePositionsKernel(buf, dst, vec.Width128, vec.Load128Aligned, vec.Broadcast128)
}

// countNewlinesRef is the scalar reference for CountNewlines: it consumes
// both bytes of a "\r\n" pair so the "\n" is not double-counted.
func countNewlinesRef(buf []byte) int {
	count := 0
	for i := 0; i < len(buf); i++ {
		switch buf[i] {
		case '\n':
			count++
		case '\r':
			if i+1 < len(buf) && buf[i+1] == '\n' {
				i++
			}
			count++
		}
	}
	return count
}

// newlinePositionsRef is the scalar reference for NewlinePositions.
func newlinePositionsRef(buf []byte, dst []int) int {
	count := 0
	for i := 0; i < len(buf); i++ {
		switch buf[i] {
		case '\n':
			if count < len(dst) {
				dst[count] = i
			}
			count++
		case '\r':
			if count < len(dst) {
				dst[count] = i
			}
			count++
			if i+1 < len(buf) && buf[i+1] == '\n' {
				i++
			}
		}
	}
	return count
}

// countSegment counts events that start in buf[start:end], with carriage
// returns looking ahead into the full buffer: a line feed always counts
// here, a carriage return only when the byte after it (wherever it lives)
// is not a line feed. Attributing a pair to its line feed makes the tally
// decompose exactly across any segmentation of buf, which is what lets the
// prefix, the vector body, and the tail be counted independently.
func countSegment(buf []byte, start, end int) int {
	count := 0
	for i := start; i < end; i++ {
		switch buf[i] {
		case '\n':
			count++
		case '\r':
			if i+1 < len(buf) && buf[i+1] == '\n' {
				continue
			}
			count++
		}
	}
	return count
}

// countNewlinesKernel tallies line feeds per chunk with a population count
// and adds unpaired carriage returns by walking the CR mask. A carriage
// return in the chunk's last lane cannot consult the line-feed mask for its
// follower, so the next byte is read from buf directly; the read is bounds
// checked against len(buf) and never deferred to the next iteration.
func countNewlinesKernel[V lanes[V]](buf []byte, width int, load func([]byte) V, broadcast func(byte) V) int {
	n := len(buf)
	prefix := alignPrefix(buf, width)
	count := countSegment(buf, 0, prefix)

	lfv := broadcast('\n')
	crv := broadcast('\r')
	i := prefix
	for ; i+width <= n; i += width {
		data := load(buf[i : i+width])
		lfm := data.CmpEq(lfv).Movemask()
		crm := data.CmpEq(crv).Movemask()

		count += lfm.Count()
		for m := crm; m != 0; m &= m - 1 {
			k := m.FirstSet()
			if k+1 < width {
				if lfm&(1<<(k+1)) != 0 {
					continue // pair, absorbed into the line-feed tally
				}
			} else if i+width < n && buf[i+width] == '\n' {
				continue // pair straddling the chunk edge
			}
			count++
		}
	}

	return count + countSegment(buf, i, n)
}

// newlinePositionsKernel emits event offsets in ascending order from the
// combined line-feed and carriage-return masks. A pair is emitted at its
// carriage return; the paired line feed is cleared from the walk when it
// shares the chunk, or suppressed via skipLF when it opens the next
// segment.
func newlinePositionsKernel[V lanes[V]](buf []byte, dst []int, width int, load func([]byte) V, broadcast func(byte) V) int {
	n := len(buf)
	count := 0
	emit := func(pos int) {
		if count < len(dst) {
			dst[count] = pos
		}
		count++
	}

	// skipLF marks that the first byte of the next segment is the line
	// feed of a pair already emitted.
	skipLF := false
	scanSegment := func(start, end int) {
		for i := start; i < end; i++ {
			switch buf[i] {
			case '\n':
				if skipLF && i == start {
					skipLF = false
					continue
				}
				emit(i)
			case '\r':
				emit(i)
				if i+1 < len(buf) && buf[i+1] == '\n' {
					if i+1 < end {
						i++
					} else {
						skipLF = true
					}
				}
			}
		}
	}

	prefix := alignPrefix(buf, width)
	scanSegment(0, prefix)

	lfv := broadcast('\n')
	crv := broadcast('\r')
	i := prefix
	for ; i+width <= n; i += width {
		data := load(buf[i : i+width])
		lfm := data.CmpEq(lfv).Movemask()
		crm := data.CmpEq(crv).Movemask()
		if skipLF {
			lfm &^= 1
			skipLF = false
		}

		for m := lfm | crm; m != 0; m &= m - 1 {
			k := m.FirstSet()
			emit(i + k)
			if crm&(1<<k) != 0 {
				if k+1 < width {
					m &^= lfm & (1 << (k + 1))
				} else if i+width < n && buf[i+width] == '\n' {
					skipLF = true
				}
			}
		}
	}

	scanSegment(i, n)
	return count
}
