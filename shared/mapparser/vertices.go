package mapparser

// Simplify returns the outline of region: the left chain top to bottom, then
// the right chain bottom to top. Each chain holds the top corner of every
// row plus the bottom corner of the last row; interior corners on a straight
// stretch (equal column step before and after) are dropped.
func Simplify(region Region) Polygon {
	if len(region) == 0 {
		return nil
	}

	los := make([]Point, 0, len(region)+1)
	his := make([]Point, 0, len(region)+1)
	for _, iv := range region {
		los = append(los, Point{Row: iv.Row, Col: iv.Lo})
		his = append(his, Point{Row: iv.Row, Col: iv.Hi})
	}
	last := region[len(region)-1]
	los = append(los, Point{Row: last.Row + 1, Col: last.Lo})
	his = append(his, Point{Row: last.Row + 1, Col: last.Hi})

	poly := compactChain(los)
	his = compactChain(his)
	for i := len(his) - 1; i >= 0; i-- {
		poly = append(poly, his[i])
	}
	return poly
}

// compactChain keeps the endpoints of chain and every interior point where
// the column step changes. Rows in chain advance by one per point.
func compactChain(chain []Point) []Point {
	kept := make([]Point, 0, len(chain))
	kept = append(kept, chain[0])
	for i := 1; i < len(chain)-1; i++ {
		if chain[i].Col-chain[i-1].Col != chain[i+1].Col-chain[i].Col {
			kept = append(kept, chain[i])
		}
	}
	return append(kept, chain[len(chain)-1])
}
