package mines

// Every placement gets this many random draws per cell before falling back to
// picking from the remaining free cells.
const placementAttemptFactor = 64

// shuffleMines places exactly MineCount mines, none of them at the excluded
// cell.
func (g *Game) shuffleMines(excludeRow, excludeCol int) {
	height, length, mineCount := g.params.Unpack()
	g.minefield.Clear()

	placed, attempts := 0, 0
	maxAttempts := placementAttemptFactor * height * length
	for placed < mineCount && attempts < maxAttempts {
		attempts++
		row, col := g.rand.IntN(height), g.rand.IntN(length)
		if g.minefield.MineAt(row, col) || row == excludeRow && col == excludeCol {
			continue
		}
		g.minefield.place(row, col)
		placed++
	}

	if placed < mineCount {
		g.log().WithField("placed", placed).
			Warn("mine placement ran out of attempts, picking from free cells")

		candidates := make([]int, 0, height*length-placed)
		for row := range height {
			for col := range length {
				if !g.minefield.MineAt(row, col) &&
					!(row == excludeRow && col == excludeCol) {
					candidates = append(candidates, row*length+col)
				}
			}
		}

		/*
		 * Now pick the rest off the list at random.
		 */
		k := len(candidates)
		for ; placed < mineCount; placed++ {
			i := g.rand.IntN(k)
			g.minefield.place(candidates[i]/length, candidates[i]%length)
			k--
			candidates[i] = candidates[k]
		}
	}
}
