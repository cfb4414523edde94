// Package viz renders a finished game to the terminal.
//
// Two outputs are provided:
//
//   - [Summary]: winner and per-player roll counts, styled with lipgloss
//   - [FrequencyChart]: both players' frequency profiles as asciigraph series
//
// Colors come from a [Theme]; [ThemeClassic] mirrors the red/blue split of
// the exported image.
package viz
