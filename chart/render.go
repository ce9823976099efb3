package chart

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"strconv"

	"github.com/nfnt/resize"
	"github.com/streambinder/spotilink/util"
	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

const (
	// Scale is the factor the chart gets upscaled with, to keep text readable
	Scale = 2

	width     = 480
	margin    = 12
	rowHeight = 20
	barHeight = 14
	labelMax  = 22 // characters
	header    = 40
	footer    = 36
	fontSize  = 12 // points, at 72 DPI
)

var (
	typeface   = mustParse(goregular.TTF)
	background = color.White
	foreground = color.Black
	axis       = color.Gray{Y: 0x80}
	bar        = color.RGBA{R: 0x1f, G: 0x77, B: 0xb4, A: 0xff}
)

// Render draws the chart and writes it as PNG to path
func Render(path string, chart Chart) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()
	if err := png.Encode(file, Draw(chart)); err != nil {
		return err
	}
	return file.Close()
}

// Draw lays out the chart as horizontal bars, top ranked entry first:
// an empty chart still gets its title and axes
func Draw(chart Chart) image.Image {
	face := newFace()
	defer face.Close()

	rows := len(chart.Entries)
	if rows == 0 {
		rows = 1
	}

	var (
		height = header + rows*rowHeight + footer
		canvas = image.NewRGBA(image.Rect(0, 0, width, height))
		left   = margin + labelWidth(face, chart)
		right  = width - margin - text(face, "0000")
		bottom = header + rows*rowHeight
	)
	draw.Draw(canvas, canvas.Bounds(), image.NewUniform(background), image.Point{}, draw.Src)

	write(canvas, face, chart.Title, (width-text(face, chart.Title))/2, margin+13)
	write(canvas, face, chart.YLabel, margin, header-6)
	write(canvas, face, chart.XLabel, left+(right-left-text(face, chart.XLabel))/2, height-margin)
	fill(canvas, image.Rect(left, header, left+1, bottom), axis)
	fill(canvas, image.Rect(left, bottom, right, bottom+1), axis)

	if len(chart.Entries) == 0 {
		write(canvas, face, "no data", left+margin, header+rowHeight-6)
	}

	peak := 1
	for _, entry := range chart.Entries {
		if entry.Count > peak {
			peak = entry.Count
		}
	}
	for index, entry := range chart.Entries {
		var (
			top    = header + index*rowHeight + (rowHeight-barHeight)/2
			length = (right - left - margin) * entry.Count / peak
			label  = util.Excerpt(entry.Label, labelMax)
		)
		write(canvas, face, label, left-margin/2-text(face, label), top+barHeight-3)
		fill(canvas, image.Rect(left+1, top, left+1+length, top+barHeight), bar)
		write(canvas, face, strconv.Itoa(entry.Count), left+length+margin/2, top+barHeight-3)
	}

	return resize.Resize(uint(width*Scale), 0, canvas, resize.NearestNeighbor)
}

func mustParse(ttf []byte) *opentype.Font {
	parsed, err := opentype.Parse(ttf)
	if err != nil {
		panic(err)
	}
	return parsed
}

// newFace hands every drawing a face of its own,
// as faces are not safe for concurrent use
func newFace() font.Face {
	face, err := opentype.NewFace(typeface, &opentype.FaceOptions{
		Size:    fontSize,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		panic(err)
	}
	return face
}

func labelWidth(face font.Face, chart Chart) int {
	widest := text(face, chart.YLabel)
	for _, entry := range chart.Entries {
		if w := text(face, util.Excerpt(entry.Label, labelMax)); w > widest {
			widest = w
		}
	}
	return widest + margin
}

func text(face font.Face, s string) int {
	return font.MeasureString(face, s).Ceil()
}

func write(canvas draw.Image, face font.Face, s string, x, y int) {
	drawer := &font.Drawer{
		Dst:  canvas,
		Src:  image.NewUniform(foreground),
		Face: face,
		Dot:  fixed.P(x, y),
	}
	drawer.DrawString(s)
}

func fill(canvas draw.Image, rect image.Rectangle, c color.Color) {
	draw.Draw(canvas, rect, image.NewUniform(c), image.Point{}, draw.Src)
}
