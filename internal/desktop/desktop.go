package desktop

import (
	"context"
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/sirupsen/logrus"
	"github.com/vancomm/minesweeper/internal/clock"
	"github.com/vancomm/minesweeper/internal/mines"
	"github.com/vancomm/minesweeper/internal/session"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

const (
	headerHeight = 32
	padding      = 8
	maxBoardSide = 900
	minCellSize  = 8
	maxCellSize  = 32
)

var (
	background  = color.RGBA{0xc0, 0xc0, 0xc0, 0xff}
	hiddenFill  = color.RGBA{0x9a, 0x9a, 0x9a, 0xff}
	openFill    = color.RGBA{0xe0, 0xe0, 0xe0, 0xff}
	gridLine    = color.RGBA{0x70, 0x70, 0x70, 0xff}
	hoverFill   = color.RGBA{0xb4, 0xb4, 0xb4, 0xff}
	mineFill    = color.RGBA{0xd2, 0x28, 0x28, 0xff}
	flagColor   = color.RGBA{0xe0, 0x60, 0x00, 0xff}
	headerColor = color.Black

	countColors = [...]color.Color{
		color.Black,
		color.RGBA{0x00, 0x00, 0xff, 0xff},
		color.RGBA{0x00, 0x80, 0x00, 0xff},
		color.RGBA{0xff, 0x00, 0x00, 0xff},
		color.RGBA{0x00, 0x00, 0x80, 0xff},
		color.RGBA{0x80, 0x00, 0x00, 0xff},
		color.RGBA{0x00, 0x80, 0x80, 0xff},
		color.Black,
		color.RGBA{0x80, 0x80, 0x80, 0xff},
	}
)

// cellSize fits the longer side of the board into maxBoardSide pixels.
func cellSize(height, length int) int {
	side := maxBoardSide / max(height, length, 1)
	return min(max(side, minCellSize), maxCellSize)
}

type Game struct {
	ctx     context.Context
	session *session.Session
	log     logrus.FieldLogger
	face    font.Face
	cell    int
}

func New(ctx context.Context, s *session.Session, log logrus.FieldLogger) *Game {
	g := &Game{
		ctx:     ctx,
		session: s,
		log:     log,
		face:    basicfont.Face7x13,
	}
	g.resize()
	return g
}

// Run opens the window and blocks until it is closed or ctx is done.
func Run(ctx context.Context, s *session.Session, log logrus.FieldLogger) error {
	g := New(ctx, s, log)
	ebiten.SetWindowTitle("Minesweeper")
	if err := ebiten.RunGame(g); err != nil {
		return fmt.Errorf("desktop ui failed: %w", err)
	}
	return nil
}

func (g *Game) resize() {
	height, length := g.session.Game().Dimensions()
	g.cell = cellSize(height, length)
	ebiten.SetWindowSize(g.Layout(0, 0))
}

// cellAt maps a cursor position to a board cell. ok is false when the cursor
// is not over the board.
func (g *Game) cellAt(x, y int) (row, col int, ok bool) {
	x -= padding
	y -= headerHeight + padding
	if x < 0 || y < 0 {
		return 0, 0, false
	}
	row, col = y/g.cell, x/g.cell
	return row, col, g.session.Game().Check(row, col) == nil
}

func (g *Game) Update() error {
	select {
	case <-g.ctx.Done():
		return ebiten.Termination
	default:
	}

	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyQ), inpututil.IsKeyJustPressed(ebiten.KeyEscape):
		return ebiten.Termination
	case inpututil.IsKeyJustPressed(ebiten.KeyEnter), inpututil.IsKeyJustPressed(ebiten.KeyN):
		g.session.NewGame()
		return nil
	case inpututil.IsKeyJustPressed(ebiten.Key1):
		g.changePreset(mines.Beginner)
		return nil
	case inpututil.IsKeyJustPressed(ebiten.Key2):
		g.changePreset(mines.Intermediate)
		return nil
	case inpututil.IsKeyJustPressed(ebiten.Key3):
		g.changePreset(mines.Expert)
		return nil
	}

	row, col, ok := g.cellAt(ebiten.CursorPosition())
	if !ok {
		return nil
	}
	switch {
	case inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft):
		g.session.Reveal(row, col)
	case inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight),
		inpututil.IsKeyJustPressed(ebiten.KeyF):
		g.session.Flag(row, col)
	}
	return nil
}

func (g *Game) changePreset(p mines.Preset) {
	if err := g.session.ChangePreset(p); err != nil {
		g.log.WithError(err).Error("unable to change preset")
		return
	}
	g.resize()
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(background)

	header := fmt.Sprintf("%s  %s", g.session.Message(), clock.Format(g.session.Elapsed()))
	text.Draw(screen, header, g.face, padding, headerHeight-12, headerColor)

	hoverRow, hoverCol, hover := g.cellAt(ebiten.CursorPosition())
	game := g.session.Game()
	height, length := game.Dimensions()
	for row := range height {
		for col := range length {
			hovered := hover && row == hoverRow && col == hoverCol
			g.drawCell(screen, row, col, game.Tile(row, col), hovered)
		}
	}
}

func (g *Game) drawCell(screen *ebiten.Image, row, col int, t mines.Tile, hovered bool) {
	x := float32(padding + col*g.cell)
	y := float32(headerHeight + padding + row*g.cell)
	size := float32(g.cell)

	fill := openFill
	switch {
	case t == mines.Mine:
		fill = mineFill
	case !t.Revealed() && hovered:
		fill = hoverFill
	case !t.Revealed():
		fill = hiddenFill
	}
	vector.DrawFilledRect(screen, x, y, size, size, fill, false)
	vector.StrokeRect(screen, x, y, size, size, 1, gridLine, false)

	if g.cell < 12 {
		// too small for glyphs
		if t == mines.Flagged {
			vector.DrawFilledRect(screen, x+size/4, y+size/4, size/2, size/2, flagColor, false)
		}
		return
	}

	var (
		label string
		clr   color.Color = headerColor
	)
	switch t {
	case mines.Flagged:
		label, clr = "F", flagColor
	case mines.Mine:
		label = "*"
	default:
		if n, ok := t.Count(); ok && n > 0 {
			label, clr = t.String(), countColors[n]
		}
	}
	if label == "" {
		return
	}
	// basicfont glyphs are 7x13
	tx := int(x) + (g.cell-7)/2
	ty := int(y) + (g.cell+10)/2
	text.Draw(screen, label, g.face, tx, ty, clr)
}

func (g *Game) Layout(_, _ int) (int, int) {
	height, length := g.session.Game().Dimensions()
	return length*g.cell + 2*padding, height*g.cell + headerHeight + 2*padding
}
