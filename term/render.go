package term

import (
	"fmt"

	"github.com/battlesnakeio/arcade/model"
	termbox "github.com/nsf/termbox-go"
	log "github.com/sirupsen/logrus"
)

const (
	defaultColor = termbox.ColorDefault
	bgColor      = termbox.ColorDefault
	snakeColor   = termbox.ColorGreen
	headColor    = termbox.ColorYellow
	foodColor    = termbox.ColorRed
	bestColor    = termbox.ColorGreen | termbox.AttrBold
)

const (
	horizontalWall = '─'
	verticalWall   = '│'
	snakeHead      = '■'
	snakeBody      = '●'
	snakeTail      = '-'
	empty          = ' '
)

var foodGlyphs = map[model.FoodKind]rune{
	model.Asterisk: '¤',
	model.Star:     '★',
	model.Sun:      '☀',
}

// Renderer draws the game with termbox. Every call flushes.
type Renderer struct {
	screen screen

	canvasWidth, canvasHeight int
	wallWidth, wallHeight     int
}

// NewRenderer returns a renderer drawing on s.
func NewRenderer(s screen) *Renderer {
	return &Renderer{screen: s}
}

// PrepareCanvas clears the terminal.
func (r *Renderer) PrepareCanvas(width, height int) {
	r.canvasWidth, r.canvasHeight = width, height
	if err := r.screen.Clear(defaultColor, bgColor); err != nil {
		log.WithError(err).Error("failed to clear terminal")
	}
	r.screen.HideCursor()
	r.flush()
}

// RenderWalls draws the wall rectangle from (0, 0).
func (r *Renderer) RenderWalls(width, height int) {
	r.wallWidth, r.wallHeight = width, height
	fill(r.screen, 0, 0, width, 1, horizontalWall)
	fill(r.screen, 0, height-1, width, 1, horizontalWall)
	fill(r.screen, 0, 0, 1, height, verticalWall)
	fill(r.screen, width-1, 0, 1, height, verticalWall)

	r.screen.SetCell(0, 0, '┌', defaultColor, bgColor)
	r.screen.SetCell(width-1, 0, '┐', defaultColor, bgColor)
	r.screen.SetCell(0, height-1, '└', defaultColor, bgColor)
	r.screen.SetCell(width-1, height-1, '┘', defaultColor, bgColor)
	r.flush()
}

// RenderSnake erases clear, if set, and draws the body.
func (r *Renderer) RenderSnake(snake *model.Snake, clear *model.Point) {
	if clear != nil {
		r.setCell(*clear, empty, defaultColor)
	}

	body := snake.Body()
	for i, b := range body {
		switch {
		case i == len(body)-1:
			r.setCell(b, snakeHead, headColor)
		case i == 0:
			r.setCell(b, snakeTail, snakeColor)
		default:
			r.setCell(b, snakeBody, snakeColor)
		}
	}
	r.flush()
}

// RenderFood draws the food glyph for its kind.
func (r *Renderer) RenderFood(food model.Food) {
	glyph, ok := foodGlyphs[food.Kind]
	if !ok {
		glyph = '?'
	}
	r.setCell(food.Position, glyph, foodColor)
	r.flush()
}

// RenderScore prints the score in the side panel.
func (r *Renderer) RenderScore(score int) {
	r.printPanel(3, defaultColor, fmt.Sprintf("Score: %-6d", score))
}

// RenderHighScore prints the best score in the side panel.
func (r *Renderer) RenderHighScore(score int, highlighted bool) {
	if highlighted {
		r.printPanel(2, bestColor, fmt.Sprintf("Your personal best: %d!", score))
		return
	}
	r.printPanel(2, defaultColor, fmt.Sprintf("Your high score: %-6d   ", score))
}

// RenderGameOver prints the banner and the restart and quit keys.
func (r *Renderer) RenderGameOver() {
	midX, midY := r.wallWidth/2, r.wallHeight/2
	tbprint(r.screen, midX-5, midY-2, termbox.ColorRed|termbox.AttrBold, bgColor, "GAME OVER!")
	tbprint(r.screen, midX-13, midY, defaultColor, bgColor, `Press "ENTER" to restart...`)
	tbprint(r.screen, r.wallWidth+4, r.canvasHeight-2, defaultColor, bgColor, `Press "SPACE" to quit`)
	r.flush()
}

func (r *Renderer) printPanel(y int, fg termbox.Attribute, msg string) {
	tbprint(r.screen, r.wallWidth+5, y, fg, bgColor, msg)
	r.flush()
}

func (r *Renderer) setCell(p model.Point, ch rune, fg termbox.Attribute) {
	r.screen.SetCell(p.Right, p.Up, ch, fg, bgColor)
}

func (r *Renderer) flush() {
	if err := r.screen.Flush(); err != nil {
		log.WithError(err).Error("failed to flush terminal")
	}
}

func fill(s screen, x, y, w, h int, ch rune) {
	for ly := 0; ly < h; ly++ {
		for lx := 0; lx < w; lx++ {
			s.SetCell(x+lx, y+ly, ch, defaultColor, bgColor)
		}
	}
}
