package viz

import (
	"fmt"
	"sort"
	"strings"

	"github.com/san-kum/rollrec/internal/game"
)

// Summary renders the winner line, per-player roll counts and metrics.
// The two plain "rolled N times" lines stay free of markup apart from the name.
func Summary(res *game.Result, st Styles) string {
	var sb strings.Builder

	sb.WriteString(st.Header.Render(fmt.Sprintf("Roll and Record (threshold %d)", res.Threshold)))
	sb.WriteString("\n\n")
	sb.WriteString(st.Winner.Render(fmt.Sprintf("%s wins the game!", res.WinnerName())))
	sb.WriteString("\n")

	for _, p := range []game.Player{game.PlayerA, game.PlayerB} {
		name := st.Player[p].Render(res.Names[p])
		fmt.Fprintf(&sb, "%s rolled %d times.\n", name, len(res.Rolls(p)))
	}

	sb.WriteString("\n")
	for _, p := range []game.Player{game.PlayerA, game.PlayerB} {
		sb.WriteString(playerPanel(res, p, st))
		sb.WriteString("\n")
	}

	fmt.Fprintf(&sb, "%s\n", st.Subtle.Render(fmt.Sprintf("%d turns played", res.Turns)))
	return sb.String()
}

func playerPanel(res *game.Result, p game.Player, st Styles) string {
	profile := res.Profile(p)
	metrics := game.Summarize(res.Rolls(p))

	names := make([]string, 0, len(metrics))
	for name := range metrics {
		names = append(names, name)
	}
	sort.Strings(names)

	var sb strings.Builder
	sb.WriteString(st.Player[p].Render(res.Names[p]))
	if p == res.Winner {
		sb.WriteString(" " + st.Winner.Render("★"))
	}
	sb.WriteString("\n")
	for _, name := range names {
		fmt.Fprintf(&sb, "%s %s\n",
			st.MetricLabel.Render(fmt.Sprintf("%-10s", name)),
			st.MetricValue.Render(formatMetric(metrics[name])))
	}
	fmt.Fprintf(&sb, "%s %s",
		st.MetricLabel.Render(fmt.Sprintf("%-10s", "profile")),
		st.Player[p].Render("["+Sparkline(profile.Values(), float64(res.Threshold))+"]"))

	return st.Panel.Render(sb.String())
}

func formatMetric(v float64) string {
	if v == float64(int64(v)) {
		return fmt.Sprintf("%d", int64(v))
	}
	return fmt.Sprintf("%.2f", v)
}
