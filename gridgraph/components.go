package gridgraph

// Regions partitions the grid into maximal regions of orthogonally
// connected cells sharing the same symbol.
// Regions are returned in the row-major order of their first cell;
// each region's Cells are in BFS discovery order.
// Every cell belongs to exactly one region.
//
// Time:   O(W·H·4).
// Memory: O(W·H) for visited flags and output.
func (gg *GridGraph) Regions() []Region {
	seen := make([]bool, gg.Width*gg.Height)
	var regions []Region
	offsets := gg.NeighborOffsets()

	for y := 0; y < gg.Height; y++ {
		for x := 0; x < gg.Width; x++ {
			i0 := gg.index(x, y)
			if seen[i0] {
				continue
			}
			symbol := gg.Cells[y][x]
			// BFS to collect region
			queue := []int{i0}
			seen[i0] = true
			bounds := Bounds{MinX: x, MinY: y, MaxX: x, MaxY: y}
			var cells []Point

			for qi := 0; qi < len(queue); qi++ {
				ux, uy := gg.Coordinate(queue[qi])
				u := Point{X: ux, Y: uy}
				cells = append(cells, u)
				bounds.extend(u)
				for _, d := range offsets {
					v := u.Add(d)
					if !gg.InBounds(v.X, v.Y) || gg.Cells[v.Y][v.X] != symbol {
						continue
					}
					vi := gg.index(v.X, v.Y)
					if !seen[vi] {
						seen[vi] = true
						queue = append(queue, vi)
					}
				}
			}
			regions = append(regions, newRegion(symbol, cells, bounds))
		}
	}
	return regions
}

// newRegion builds the membership mask of cells over bounds.
func newRegion(symbol rune, cells []Point, bounds Bounds) Region {
	w := bounds.Width()
	mask := make([]bool, w*bounds.Height())
	for _, c := range cells {
		mask[(c.Y-bounds.MinY)*w+(c.X-bounds.MinX)] = true
	}
	return Region{Symbol: symbol, Cells: cells, Bounds: bounds, mask: mask}
}
