// Package export writes a finished game as an image or JSON.
package export

import (
	"fmt"
	"image/color"
	"io"
	"os"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/text"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
	"gonum.org/v1/plot/vg/vgsvg"

	"github.com/san-kum/rollrec/internal/dice"
	"github.com/san-kum/rollrec/internal/game"
)

const (
	FormatPNG = "png"
	FormatSVG = "svg"

	figureWidth  = 16 * vg.Inch
	figureHeight = 6 * vg.Inch
	titleHeight  = 0.6 * vg.Inch
	pngDPI       = 150
)

var (
	playerColors = [2]color.Color{
		color.RGBA{R: 0xdd, G: 0x22, B: 0x22, A: 0xff},
		color.RGBA{R: 0x22, G: 0x44, B: 0xdd, A: 0xff},
	}
	thresholdColor = color.RGBA{G: 0x99, B: 0x33, A: 0xff}
	panelColor     = color.RGBA{R: 0xf0, G: 0xf0, B: 0xf0, A: 0xff}
)

// Save writes the figure to path in the given format.
func Save(path, format string, res *game.Result) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := Write(f, format, res); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func Write(w io.Writer, format string, res *game.Result) error {
	switch format {
	case FormatPNG:
		return WritePNG(w, res)
	case FormatSVG:
		return WriteSVG(w, res)
	default:
		return fmt.Errorf("unsupported image format %q", format)
	}
}

func WritePNG(w io.Writer, res *game.Result) error {
	c := vgimg.NewWith(vgimg.UseWH(figureWidth, figureHeight), vgimg.UseDPI(pngDPI))
	if err := drawFigure(draw.New(c), res); err != nil {
		return err
	}
	if _, err := (vgimg.PngCanvas{Canvas: c}).WriteTo(w); err != nil {
		return fmt.Errorf("encode png: %w", err)
	}
	return nil
}

func WriteSVG(w io.Writer, res *game.Result) error {
	c := vgsvg.New(figureWidth, figureHeight)
	if err := drawFigure(draw.New(c), res); err != nil {
		return err
	}
	if _, err := c.WriteTo(w); err != nil {
		return fmt.Errorf("encode svg: %w", err)
	}
	return nil
}

// drawFigure lays out one histogram per player under a shared title.
func drawFigure(dc draw.Canvas, res *game.Result) error {
	plots := [][]*plot.Plot{make([]*plot.Plot, 2)}
	for _, p := range []game.Player{game.PlayerA, game.PlayerB} {
		pl, err := histogram(res, p)
		if err != nil {
			return fmt.Errorf("player %s histogram: %w", p, err)
		}
		plots[0][p] = pl
	}

	dc.SetColor(color.White)
	dc.Fill(dc.Rectangle.Path())

	style := plots[0][0].Title.TextStyle
	style.Font.Size = vg.Points(18)
	style.XAlign = text.XCenter
	style.YAlign = text.YTop
	dc.FillText(style, vg.Point{
		X: (dc.Min.X + dc.Max.X) / 2,
		Y: dc.Max.Y - vg.Points(8),
	}, fmt.Sprintf("Awesome Dice Game - %s Wins!", res.WinnerName()))

	body := draw.Crop(dc, 0, 0, 0, -titleHeight)
	tiles := draw.Tiles{
		Rows:      1,
		Cols:      2,
		PadX:      vg.Inch / 2,
		PadLeft:   vg.Inch / 4,
		PadRight:  vg.Inch / 4,
		PadBottom: vg.Inch / 8,
	}

	canvases := plot.Align(plots, tiles, body)
	for i, pl := range plots[0] {
		pl.Draw(canvases[0][i])
	}
	return nil
}

func histogram(res *game.Result, p game.Player) (*plot.Plot, error) {
	pl := plot.New()
	pl.Title.Text = fmt.Sprintf("%s (%d rolls)", res.Names[p], len(res.Rolls(p)))
	pl.Title.TextStyle.Font.Size = vg.Points(16)
	pl.X.Label.Text = "Sum of Dice"
	pl.Y.Label.Text = "Frequency"
	pl.BackgroundColor = panelColor
	pl.Y.Min = 0
	pl.Y.Max = float64(max(10, res.Threshold+2))

	grid := plotter.NewGrid()
	grid.Vertical.Color = nil
	grid.Horizontal.Dashes = []vg.Length{vg.Points(3), vg.Points(3)}
	pl.Add(grid)

	bars, err := plotter.NewBarChart(plotter.Values(res.Profile(p).Values()), vg.Points(28))
	if err != nil {
		return nil, err
	}
	bars.Color = playerColors[p]
	bars.LineStyle.Color = color.Black
	bars.LineStyle.Width = vg.Points(1)
	pl.Add(bars)

	limit := float64(res.Threshold) - 0.2
	line := plotter.NewFunction(func(float64) float64 { return limit })
	line.XMin = -0.5
	line.XMax = float64(dice.MaxSum-dice.MinSum) + 0.5
	line.Color = thresholdColor
	line.Width = vg.Points(2)
	line.Dashes = []vg.Length{vg.Points(6), vg.Points(4)}
	pl.Add(line)

	labels := make([]string, 0, dice.MaxSum-dice.MinSum+1)
	for v := dice.MinSum; v <= dice.MaxSum; v++ {
		labels = append(labels, fmt.Sprint(v))
	}
	pl.NominalX(labels...)

	return pl, nil
}
