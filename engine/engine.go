package engine

import (
	"time"

	"github.com/battlesnakeio/arcade/highscore"
	"github.com/battlesnakeio/arcade/model"
	"github.com/battlesnakeio/arcade/rules"
	"github.com/pkg/errors"
	uuid "github.com/satori/go.uuid"
	log "github.com/sirupsen/logrus"
)

// Engine runs snake sessions against its collaborators until the player quits.
type Engine struct {
	Renderer Renderer
	Input    InputSource
	Random   rules.RandomSource
	Scores   highscore.Keeper

	// MinTickInterval is the floor the pace never drops below.
	MinTickInterval time.Duration
	// Sleep pauses between ticks. It is the only thing pacing the game.
	Sleep func(time.Duration)
}

// New returns an engine keeping its high score in the default data directory.
func New(renderer Renderer, input InputSource, random rules.RandomSource, clock highscore.Clock) *Engine {
	return &Engine{
		Renderer:        renderer,
		Input:           input,
		Random:          random,
		Scores:          highscore.New("", clock),
		MinTickInterval: rules.DefaultMinTickInterval,
		Sleep:           time.Sleep,
	}
}

// Result describes a finished session.
type Result struct {
	SessionID        string
	Score            int
	Length           int
	Ticks            int
	TickInterval     time.Duration
	Cause            string
	HighScoreUpdated bool
}

type session struct {
	id       string
	score    int
	interval time.Duration
	ticks    int
	snake    *model.Snake
	food     model.Food
	spawner  *rules.FoodSpawner
	log      *log.Entry
}

// Run plays sessions back to back, asking after each one whether to go again.
// It returns nil when the player quits and an error only when a session hit a
// broken invariant.
func (e *Engine) Run() error {
	for {
		if _, err := e.Play(); err != nil {
			return err
		}
		if !e.Input.WaitForRestartChoice() {
			return nil
		}
	}
}

// Play runs one session from a fresh board until the snake dies.
func (e *Engine) Play() (Result, error) {
	s, err := e.initialize()
	if err != nil {
		return Result{}, err
	}

	for {
		e.sleep(s.interval)
		s.ticks++

		removed := s.snake.Move()

		if d, ok := e.Input.PollDirection(); ok {
			s.snake.ChangeDirection(d)
		}

		if cause := rules.CheckCollision(s.snake.Body(), s.snake.Head()); cause != "" {
			return e.gameOver(s, cause), nil
		}

		if err := e.checkForFood(s); err != nil {
			if errors.Cause(err) == rules.ErrBoardFull {
				return e.gameOver(s, rules.DeathCauseBoardFull), nil
			}
			s.log.WithError(err).Error("ending session due to fatal error")
			return Result{}, err
		}

		e.Renderer.RenderSnake(s.snake, &removed)
	}
}

func (e *Engine) initialize() (*session, error) {
	id := uuid.NewV4().String()
	s := &session{
		id:       id,
		interval: rules.InitialTickInterval,
		snake:    model.NewSnake(rules.SnakeStartUp, rules.SnakeStartRight, rules.SnakeLength),
		spawner:  rules.NewFoodSpawner(e.Random),
		log:      log.WithField("session", id),
	}

	e.Renderer.PrepareCanvas(rules.CanvasWidth, rules.CanvasHeight)
	e.Renderer.RenderWalls(rules.WallWidth, rules.WallHeight)
	e.Renderer.RenderSnake(s.snake, nil)
	e.Renderer.RenderScore(s.score)
	e.Renderer.RenderHighScore(e.Scores.Load(), false)

	if err := e.spawnFood(s); err != nil {
		return nil, err
	}

	sessionsStarted.Inc()
	currentScore.Set(0)
	tickInterval.Set(float64(s.interval / time.Millisecond))
	s.log.WithField("food", s.food.Position.String()).Info("session started")
	return s, nil
}

// checkForFood grows the snake, scores and speeds up when the head is on the
// food, then places the next one.
func (e *Engine) checkForFood(s *session) error {
	if !s.snake.Head().Equals(s.food.Position) {
		return nil
	}

	points, err := s.food.Kind.Points()
	if err != nil {
		return errors.Wrapf(err, "scoring food at %s", s.food.Position)
	}

	s.snake.IncreaseLength(points)
	s.score += points
	s.interval = rules.NextTickInterval(s.interval, e.minTickInterval())

	foodEaten.WithLabelValues(s.food.Kind.String()).Inc()
	currentScore.Set(float64(s.score))
	tickInterval.Set(float64(s.interval / time.Millisecond))
	s.log.WithFields(log.Fields{
		"food":     s.food.Kind.String(),
		"score":    s.score,
		"interval": s.interval,
	}).Info("food eaten")

	e.Renderer.RenderScore(s.score)
	return e.spawnFood(s)
}

func (e *Engine) spawnFood(s *session) error {
	food, err := s.spawner.Spawn(s.snake.Body())
	if err != nil {
		return err
	}
	s.food = food
	e.Renderer.RenderFood(food)
	return nil
}

func (e *Engine) gameOver(s *session, cause string) Result {
	updated := e.Scores.UpdateIfHigher(s.score)
	e.Renderer.RenderHighScore(e.Scores.Load(), updated)
	e.Renderer.RenderGameOver()

	gameOvers.WithLabelValues(cause).Inc()
	s.log.WithFields(log.Fields{
		"cause":   cause,
		"score":   s.score,
		"ticks":   s.ticks,
		"updated": updated,
	}).Info("game over")

	return Result{
		SessionID:        s.id,
		Score:            s.score,
		Length:           s.snake.Len(),
		Ticks:            s.ticks,
		TickInterval:     s.interval,
		Cause:            cause,
		HighScoreUpdated: updated,
	}
}

func (e *Engine) minTickInterval() time.Duration {
	if e.MinTickInterval <= 0 {
		return rules.DefaultMinTickInterval
	}
	return e.MinTickInterval
}

func (e *Engine) sleep(d time.Duration) {
	if e.Sleep == nil {
		time.Sleep(d)
		return
	}
	e.Sleep(d)
}
