package export

import (
	"encoding/json"
	"io"

	"github.com/san-kum/rollrec/internal/game"
)

type PlayerData struct {
	Name    string             `json:"name"`
	Rolls   []int              `json:"rolls"`
	Profile map[int]int        `json:"profile"`
	Metrics map[string]float64 `json:"metrics"`
}

type ExportData struct {
	Winner    string       `json:"winner"`
	Threshold int          `json:"threshold"`
	Turns     int          `json:"turns"`
	Players   []PlayerData `json:"players"`
}

func NewExportData(res *game.Result) ExportData {
	data := ExportData{
		Winner:    res.WinnerName(),
		Threshold: res.Threshold,
		Turns:     res.Turns,
		Players:   make([]PlayerData, 0, len(res.Histories)),
	}

	for _, p := range []game.Player{game.PlayerA, game.PlayerB} {
		profile := res.Profile(p)
		counts := make(map[int]int)
		for v, n := range profile {
			if n > 0 {
				counts[v] = n
			}
		}
		rolls := res.Rolls(p).Clone()
		data.Players = append(data.Players, PlayerData{
			Name:    res.Names[p],
			Rolls:   rolls,
			Profile: counts,
			Metrics: game.Summarize(rolls),
		})
	}
	return data
}

func WriteJSON(w io.Writer, res *game.Result) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(NewExportData(res))
}
