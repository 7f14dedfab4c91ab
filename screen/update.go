package screen

// Update pushes stale cells to the panel without blocking and reports whether
// a transfer is in flight.
//
// While a transfer is in flight each call advances it. Otherwise Update walks
// the grid in row-major order, wrapping around, and sends the first stale cell
// it finds; it gives up after ScanLimit cells with nothing to send so the
// caller keeps control. A transfer that completes during the call lets the
// scan continue right away.
func (s *Screen) Update() bool {
	switch s.state {
	case stateSend:
		if s.eng.Step() {
			return true
		}
		s.state = stateScan
	case stateScan:
	default:
		s.state = stateScan
	}

	for idle := 0; idle < ScanLimit; {
		i := s.cursor
		s.cursor++
		if s.cursor == len(s.cells) {
			s.cursor = 0
		}

		c := s.cells[i]
		if !c.Dirty() {
			idle++
			continue
		}
		s.cells[i] = c.Clean()
		if !s.send(i, c) {
			// Transparent: nothing to draw.
			idle++
			continue
		}
		s.state = stateSend
		return true
	}
	return false
}

// send registers the transfer of cell i.
func (s *Screen) send(i int, c Cell) bool {
	color, solid, ok := s.encode(c)
	if !ok {
		return false
	}
	row := i / s.cols * CellHeight
	col := i % s.cols * CellWidth
	if solid {
		return s.eng.RegisterSolid(row, col, CellHeight, CellWidth, color) != 0
	}
	return s.eng.RegisterColorMap(row, col, CellHeight, CellWidth, s.pix.Pix) != 0
}
