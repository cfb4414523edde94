package viz

import (
	"fmt"

	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/rollrec/internal/game"
)

// FrequencyChart plots both players' counts for sums 2..12 on a shared axis.
func FrequencyChart(res *game.Result) string {
	a := res.Profile(game.PlayerA).Values()
	b := res.Profile(game.PlayerB).Values()

	upper := float64(res.Threshold)
	if upper < 1 {
		upper = 1
	}

	return asciigraph.PlotMany([][]float64{a, b},
		asciigraph.Height(10),
		asciigraph.Width(66),
		asciigraph.LowerBound(0),
		asciigraph.UpperBound(upper),
		asciigraph.Precision(0),
		asciigraph.SeriesColors(asciigraph.Red, asciigraph.Blue),
		asciigraph.SeriesLegends(
			fmt.Sprintf("%s (%d rolls)", res.Names[game.PlayerA], len(res.Rolls(game.PlayerA))),
			fmt.Sprintf("%s (%d rolls)", res.Names[game.PlayerB], len(res.Rolls(game.PlayerB))),
		),
		asciigraph.Caption(fmt.Sprintf("sum of dice 2..12 - %s wins", res.WinnerName())),
	)
}
