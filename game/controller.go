package game

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
	"github.com/sirupsen/logrus"

	"github.com/dimaq12/minesweeper/models"
)

// TerminalHost is the HostState of the terminal front end: always active,
// paused on demand.
type TerminalHost struct {
	paused bool
}

func (h *TerminalHost) Active() bool { return true }
func (h *TerminalHost) Paused() bool { return h.paused }

func (h *TerminalHost) TogglePause() {
	h.paused = !h.paused
}

// GameController feeds terminal input to the service and keeps the renderer
// in sync with it. All of its methods run on the tview event goroutine.
type GameController struct {
	service  *MinesweeperService
	renderer *Renderer
	host     *TerminalHost
	app      *tview.Application
	log      logrus.FieldLogger

	selected models.Coordinate
	width    int
	height   int
}

func NewGameController(service *MinesweeperService, renderer *Renderer, host *TerminalHost, log logrus.FieldLogger) *GameController {
	c := &GameController{service: service, renderer: renderer, host: host, log: log}
	box := renderer.BoardView()
	box.SetDrawFunc(c.draw)
	box.SetInputCapture(c.HandleKey)
	box.SetMouseCapture(c.HandleMouse)
	c.refreshStatus()
	return c
}

// StartGame runs the terminal application until the player quits.
func (c *GameController) StartGame() error {
	c.app = tview.NewApplication()
	c.app.EnableMouse(true)
	c.app.SetRoot(c.renderer.Root(), true)
	return c.app.Run()
}

func (c *GameController) TerminateGame() {
	c.log.Info("terminating the game")
	if c.app != nil {
		c.app.Stop()
	}
}

// Sync tells the service about the board area and builds the first board
// once its size is known.
func (c *GameController) Sync(width, height int) {
	if width != c.width || height != c.height {
		c.width, c.height = width, height
		c.service.Resize(models.Vec2{X: float32(width), Y: float32(height)})
	}
	if c.service.Phase() == PhaseNewGame {
		c.turn()
	}
}

func (c *GameController) draw(screen tcell.Screen, x, y, width, height int) (int, int, int, int) {
	ix, iy, iw, ih := x+1, y+1, width-2, height-2
	if iw <= 0 || ih <= 0 {
		return ix, iy, iw, ih
	}
	c.Sync(iw, ih)
	sel := &c.selected
	if c.service.Outcome() != Ongoing {
		sel = nil
	}
	c.renderer.DrawBoard(screen, c.service.Board(), ix, iy, iw, ih, sel)
	switch c.service.Outcome() {
	case Won:
		c.renderer.DrawBanner(screen, "Congratulations! You won the game! Press r to play again.", ix, iy, iw)
	case Lost:
		c.renderer.DrawBanner(screen, "Game Over! You hit a mine. Press r to play again.", ix, iy, iw)
	}
	return ix, iy, iw, ih
}

// HandleKey implements the keyboard grammar: arrows move the selection,
// Enter uncovers, f flags, p pauses, r resets and q quits.
func (c *GameController) HandleKey(event *tcell.EventKey) *tcell.EventKey {
	if c.host.Paused() && event.Key() != tcell.KeyEscape &&
		!(event.Key() == tcell.KeyRune && (event.Rune() == 'p' || event.Rune() == 'q')) {
		return nil
	}
	switch event.Key() {
	case tcell.KeyUp:
		c.moveSelection(0, 1)
	case tcell.KeyDown:
		c.moveSelection(0, -1)
	case tcell.KeyLeft:
		c.moveSelection(-1, 0)
	case tcell.KeyRight:
		c.moveSelection(1, 0)
	case tcell.KeyEnter:
		c.service.QueueUncover(c.selected)
		c.turn()
	case tcell.KeyEscape:
		c.TerminateGame()
	case tcell.KeyRune:
		switch event.Rune() {
		case 'f', 'F':
			c.service.QueueFlag(c.selected)
			c.turn()
		case 'r', 'R':
			c.service.Reset()
			c.turn()
		case 'p':
			c.host.TogglePause()
			c.log.WithField("paused", c.host.Paused()).Info("pause toggled")
			c.turn()
		case 'q', 'Q':
			c.TerminateGame()
		default:
			return event
		}
	default:
		return event
	}
	return nil
}

// HandleMouse uncovers on left click and flags on right click.
func (c *GameController) HandleMouse(action tview.MouseAction, event *tcell.EventMouse) (tview.MouseAction, *tcell.EventMouse) {
	if c.host.Paused() || (action != tview.MouseLeftClick && action != tview.MouseRightClick) {
		return action, event
	}
	bx, by, _, _ := c.renderer.BoardView().GetInnerRect()
	mx, my := event.Position()
	cursor := cellCenter(mx-bx, my-by)

	var hit bool
	if action == tview.MouseLeftClick {
		hit = c.service.QueueUncoverAt(cursor)
	} else {
		hit = c.service.QueueFlagAt(cursor)
	}
	if !hit {
		return action, event
	}
	if b := c.service.Board(); b != nil {
		if coord, ok := b.CursorPosition(c.service.Viewport(), cursor); ok {
			c.selected = coord
		}
	}
	c.turn()
	return action, nil
}

func (c *GameController) moveSelection(dx, dy int8) {
	b := c.service.Board()
	if b == nil {
		return
	}
	if next, ok := c.selected.Translate(models.Offset{DX: dx, DY: dy}, b.TileMap.Width(), b.TileMap.Height()); ok {
		c.selected = next
	}
}

func (c *GameController) turn() {
	if err := c.service.Update(); err != nil {
		c.log.WithError(err).Error("turn failed")
	}
	c.refreshStatus()
}

func (c *GameController) refreshStatus() {
	status := fmt.Sprintf("Bombs left: %d", c.service.BombsLeft())
	switch {
	case c.host.Paused():
		status += " | paused"
	case c.service.Outcome() == Won:
		status += " | won"
	case c.service.Outcome() == Lost:
		status += " | lost"
	}
	c.renderer.SetStatus(status + " | arrows/enter/f/mouse, p pause, r reset, q quit")
}
