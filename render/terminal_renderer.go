package render

import (
	"image/color"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/pong/asset"
	"github.com/lixenwraith/pong/constant"
	"github.com/lixenwraith/pong/vmath"
)

// halfBlock draws the upper subpixel as foreground over the lower as background
const halfBlock = '▀'

type textOp struct {
	text string
	col  int
	row  int
}

// TerminalRenderer maps the playfield onto a tcell screen
type TerminalRenderer struct {
	screen tcell.Screen
	canvas *Canvas
	texts  []textOp
	cols   int
	rows   int
	sx, sy float32
}

// NewTerminalRenderer creates a renderer sized to the screen
func NewTerminalRenderer(screen tcell.Screen) *TerminalRenderer {
	cols, rows := screen.Size()
	r := &TerminalRenderer{
		screen: screen,
		canvas: NewCanvas(cols, rows),
		texts:  make([]textOp, 0, 4),
	}
	r.Resize(cols, rows)
	return r
}

// Resize rescales the playfield to a new terminal size
func (r *TerminalRenderer) Resize(cols, rows int) {
	r.cols = cols
	r.rows = rows
	r.canvas.Resize(cols, rows)
	r.sx = float32(cols) / constant.WindowWidth
	r.sy = float32(rows*2) / constant.WindowHeight
}

// Size returns the terminal dimensions in cells
func (r *TerminalRenderer) Size() (cols, rows int) {
	return r.cols, r.rows
}

// Begin drops queued text from the previous frame
func (r *TerminalRenderer) Begin() {
	r.texts = r.texts[:0]
}

func (r *TerminalRenderer) Clear(c color.RGBA) {
	r.canvas.Fill(c)
}

func (r *TerminalRenderer) DrawSprite(tex *asset.Texture, pos vmath.Vec2) {
	r.canvas.Blit(tex, pos, r.sx, r.sy)
}

// DrawText queues text at the cell containing pos, glyphs come from the terminal font
func (r *TerminalRenderer) DrawText(txt *Text, pos vmath.Vec2) {
	r.texts = append(r.texts, textOp{
		text: txt.Content(),
		col:  int(pos.X * r.sx),
		row:  int(pos.Y * r.sy / 2),
	})
}

// Present writes the canvas and queued text to the screen and shows it
func (r *TerminalRenderer) Present() {
	for y := 0; y < r.rows; y++ {
		for x := 0; x < r.cols; x++ {
			top, bottom := r.canvas.Cell(x, y)
			style := tcell.StyleDefault.Foreground(toTcell(top)).Background(toTcell(bottom))
			r.screen.SetContent(x, y, halfBlock, nil, style)
		}
	}

	fg := toTcell(constant.ColorText)
	for _, op := range r.texts {
		if op.row < 0 || op.row >= r.rows {
			continue
		}
		x := op.col
		for _, ch := range op.text {
			if x >= r.cols {
				break
			}
			if x >= 0 {
				top, _ := r.canvas.Cell(x, op.row)
				style := tcell.StyleDefault.Foreground(fg).Background(toTcell(top)).Bold(true)
				r.screen.SetContent(x, op.row, ch, nil, style)
			}
			x++
		}
	}

	r.screen.Show()
}

func toTcell(c color.RGBA) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}
