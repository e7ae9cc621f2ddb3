package game

import (
	"fmt"
	"io"
	"math/rand/v2"

	"github.com/sirupsen/logrus"

	"github.com/dimaq12/minesweeper/models"
)

type TaskType int

const (
	ShowTaskType TaskType = iota
	FlagTaskType
)

func (t TaskType) String() string {
	if t == FlagTaskType {
		return "flag"
	}
	return "show"
}

// Task is one queued player request.
type Task struct {
	Type  TaskType
	Coord models.Coordinate
}

func NewTask(taskType TaskType, c models.Coordinate) *Task {
	return &Task{Type: taskType, Coord: c}
}

// Option customizes a MinesweeperService.
type Option func(*MinesweeperService)

func WithObserver(o Observer) Option {
	return func(s *MinesweeperService) { s.observer = o }
}

func WithHost(h HostState) Option {
	return func(s *MinesweeperService) { s.host = h }
}

func WithLogger(l logrus.FieldLogger) Option {
	return func(s *MinesweeperService) { s.log = l }
}

// WithRand fixes the generator used for bomb placement.
func WithRand(r *rand.Rand) Option {
	return func(s *MinesweeperService) { s.rng = r }
}

// MinesweeperService owns the board and runs the game one turn at a time.
// It is not safe for concurrent use; every call must come from the goroutine
// driving the game.
type MinesweeperService struct {
	options   models.BoardOptions
	presenter Presenter
	observer  Observer
	host      HostState
	log       logrus.FieldLogger
	rng       *rand.Rand

	phase    PhaseMachine
	board    *models.Board
	viewport models.Vec2
	tasks    []*Task
	outcome  Outcome
}

func NewMinesweeperService(opts models.BoardOptions, presenter Presenter, options ...Option) (*MinesweeperService, error) {
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("board options: %w", err)
	}
	s := &MinesweeperService{
		options:   opts,
		presenter: presenter,
		observer:  ObserverFuncs{},
		host:      AlwaysActive{},
	}
	for _, o := range options {
		o(s)
	}
	if s.log == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		s.log = l
	}
	return s, nil
}

// Board returns the current board, or nil before the first one is built.
func (s *MinesweeperService) Board() *models.Board {
	return s.board
}

func (s *MinesweeperService) Phase() Phase {
	return s.phase.Current()
}

func (s *MinesweeperService) Outcome() Outcome {
	return s.outcome
}

func (s *MinesweeperService) Options() models.BoardOptions {
	return s.options
}

func (s *MinesweeperService) Viewport() models.Vec2 {
	return s.viewport
}

// BombsLeft is the bomb count minus the flags placed.
func (s *MinesweeperService) BombsLeft() int {
	if s.board == nil {
		return int(s.options.BombCount)
	}
	return int(s.board.TileMap.BombCount()) - int(s.board.FlagCount)
}

// QueueUncover queues an uncover request for c. Requests are ignored until a
// board is running.
func (s *MinesweeperService) QueueUncover(c models.Coordinate) {
	s.queue(ShowTaskType, c)
}

// QueueFlag queues a flag toggle for c.
func (s *MinesweeperService) QueueFlag(c models.Coordinate) {
	s.queue(FlagTaskType, c)
}

// QueueUncoverAt queues an uncover request for the tile under the cursor and
// reports whether the cursor was over the board.
func (s *MinesweeperService) QueueUncoverAt(cursor models.Vec2) bool {
	return s.queueAt(ShowTaskType, cursor)
}

// QueueFlagAt queues a flag toggle for the tile under the cursor.
func (s *MinesweeperService) QueueFlagAt(cursor models.Vec2) bool {
	return s.queueAt(FlagTaskType, cursor)
}

func (s *MinesweeperService) queueAt(t TaskType, cursor models.Vec2) bool {
	if s.board == nil || !s.phase.AcceptsInput() {
		return false
	}
	c, ok := s.board.CursorPosition(s.viewport, cursor)
	if !ok {
		return false
	}
	s.queue(t, c)
	return true
}

func (s *MinesweeperService) queue(t TaskType, c models.Coordinate) {
	if s.board == nil || !s.phase.AcceptsInput() {
		return
	}
	if !s.board.TileMap.Contains(c) {
		panic(fmt.Sprintf("minesweeper: %s request for %s outside the board", t, c))
	}
	s.log.WithFields(logrus.Fields{"task": t.String(), "coord": c.String()}).Debug("queued request")
	s.tasks = append(s.tasks, NewTask(t, c))
}

// Reset drops the pending requests and schedules a fresh board for the next
// Update.
func (s *MinesweeperService) Reset() {
	s.log.WithField("phase", s.phase.Current().String()).Info("reset requested")
	s.phase.Reset()
	s.tasks = nil
}

// Resize records the viewport size and, when a board exists, recomputes the
// tile size and board bounds and lays every cell out again.
func (s *MinesweeperService) Resize(viewport models.Vec2) {
	s.viewport = viewport
	if s.board == nil {
		return
	}
	m := s.board.TileMap
	tileSize, bounds := s.options.Layout(viewport, m.Width(), m.Height())
	s.board.Relayout(tileSize, bounds)
	for i := 0; i < m.Len(); i++ {
		c := m.CoordinateAt(i)
		e, _ := s.board.Entry(c)
		s.presenter.Layout(e.Tile, s.board.View(c, s.options.TilePadding))
	}
	s.log.WithFields(logrus.Fields{
		"tile_size": tileSize,
		"origin":    fmt.Sprintf("%.1f,%.1f", bounds.Origin.X, bounds.Origin.Y),
	}).Debug("board rescaled")
}

// Update runs one turn: it builds a board when a new game is due, then
// applies every queued request in order and evaluates the result once.
func (s *MinesweeperService) Update() error {
	if !s.host.Active() {
		return nil
	}
	if s.phase.CanBuild() {
		if err := s.build(); err != nil {
			return err
		}
	}
	if !s.phase.AcceptsInput() || s.host.Paused() {
		return nil
	}

	tasks := s.tasks
	s.tasks = nil
	if len(tasks) == 0 || s.outcome != Ongoing {
		return nil
	}

	lost := false
	for _, task := range tasks {
		switch task.Type {
		case ShowTaskType:
			if s.uncover(task.Coord) {
				lost = true
			}
		case FlagTaskType:
			s.toggleFlag(task.Coord)
		}
	}

	s.outcome = Evaluate(s.board, lost)
	switch s.outcome {
	case Won:
		s.log.WithField("flags", s.board.FlagCount).Info("game won")
		s.observer.GameWon()
	case Lost:
		s.log.WithField("covered", s.board.CoveredCount()).Info("game lost")
		s.observer.GameLost()
	}
	return nil
}

func (s *MinesweeperService) build() error {
	opts := s.options
	m, err := models.NewTileMap(opts.MapWidth, opts.MapHeight, opts.BombCount, s.rng)
	if err != nil {
		return fmt.Errorf("generate tile map: %w", err)
	}
	s.log.Debug(m.String())

	tileSize, bounds := opts.Layout(s.viewport, m.Width(), m.Height())
	s.presenter.Clear()
	board := models.NewBoard(m, bounds, tileSize)
	for i := 0; i < m.Len(); i++ {
		c := m.CoordinateAt(i)
		view := board.View(c, opts.TilePadding)
		view.Top = models.Cover
		tile, cover := s.presenter.SpawnTile(view)
		board.Place(c, tile, cover)
	}

	s.board = board
	s.outcome = Ongoing
	if err := s.phase.Start(); err != nil {
		return err
	}
	s.log.WithFields(logrus.Fields{
		"width":     m.Width(),
		"height":    m.Height(),
		"bombs":     m.BombCount(),
		"tile_size": tileSize,
	}).Info("board built")
	s.observer.BoardRebuilt(m.Width(), m.Height(), m.BombCount())
	return nil
}

// uncover runs a cascade from c and reports whether a bomb was hit.
func (s *MinesweeperService) uncover(c models.Coordinate) bool {
	res := Cascade(s.board, c)
	for _, r := range res.Revealed {
		s.presenter.Reveal(r.Tile)
		if r.Unflagged {
			s.observer.FlagToggled(r.Coord, false)
		}
		s.observer.TileRevealed(r.Coord, r.Count, r.Bomb)
	}
	if len(res.Revealed) > 0 {
		s.log.WithFields(logrus.Fields{
			"coord":    c.String(),
			"revealed": len(res.Revealed),
			"bomb":     res.Lost,
		}).Debug("uncovered")
	}
	return res.Lost
}

// toggleFlag flips the flag on a covered tile. Uncovered tiles cannot carry
// a flag, so the request is dropped for them.
func (s *MinesweeperService) toggleFlag(c models.Coordinate) {
	if !s.board.IsCovered(c) {
		return
	}
	e, ok := s.board.TryToggleFlag(c)
	if !ok {
		panic(fmt.Sprintf("minesweeper: no flag entry for %s", c))
	}
	if e.Flagged {
		s.board.FlagCount++
	} else {
		s.board.FlagCount--
	}
	s.presenter.SetFlag(e.Cover, e.Flagged)
	s.observer.FlagToggled(c, e.Flagged)
	s.log.WithFields(logrus.Fields{"coord": c.String(), "flagged": e.Flagged}).Debug("flag toggled")
}
