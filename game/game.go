package game

import (
	"time"

	"snake-levels/game/entity"
	"snake-levels/game/manager"
	"snake-levels/game/types"

	"github.com/google/uuid"
	"golang.org/x/exp/rand"
)

// Cause tells why a run ended.
type Cause int

const (
	CauseNone Cause = iota
	CauseWall
	CauseObstacle
	CauseSelf
	CauseBoardFull
)

func (c Cause) String() string {
	switch c {
	case CauseNone:
		return "none"
	case CauseWall:
		return "hit the wall"
	case CauseObstacle:
		return "hit an obstacle"
	case CauseSelf:
		return "bit itself"
	case CauseBoardFull:
		return "board full"
	}
	return "unknown"
}

func causeFor(c manager.CollisionType) Cause {
	switch c {
	case manager.WallCollision:
		return CauseWall
	case manager.ObstacleCollision:
		return CauseObstacle
	case manager.SelfCollision:
		return CauseSelf
	}
	return CauseNone
}

// TickResult reports what a single tick did.
type TickResult struct {
	Moved     bool
	Ate       bool
	LeveledUp bool
	Died      bool
	Cause     Cause
}

// Game is the whole simulation state. It is owned by a single goroutine;
// nothing in it is safe for concurrent use.
type Game struct {
	Grid types.Grid

	cfg          Config
	store        HighScoreStore
	snake        *entity.Snake
	collisionMgr *manager.CollisionManager
	foodMgr      *manager.FoodManager
	obstacleMgr  *manager.ObstacleManager

	score     int
	level     int
	speed     int
	highScore int
	gameOver  bool
	cause     Cause

	runID     string
	startTime time.Time
	endTime   time.Time
	now       func() time.Time
}

// NewGame builds a game from cfg and starts the first run. cfg is expected
// to be valid.
func NewGame(cfg Config, store HighScoreStore) *Game {
	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	rng := rand.New(rand.NewSource(seed))

	grid := types.Grid{
		Width:  cfg.GridSize,
		Height: cfg.GridSize,
	}
	foodMgr := manager.NewFoodManager(grid, rng)

	g := &Game{
		Grid:         grid,
		cfg:          cfg,
		store:        store,
		collisionMgr: manager.NewCollisionManager(grid),
		foodMgr:      foodMgr,
		obstacleMgr:  manager.NewObstacleManager(cfg.ObstaclesPerLevel, foodMgr),
		now:          time.Now,
	}
	g.Reset()
	return g
}

// Reset starts a fresh run and reloads the high score from the store.
func (g *Game) Reset() {
	g.snake = entity.NewSnake(g.Grid.Center(), types.Up)
	g.score = 0
	g.level = 1
	g.speed = g.cfg.BaseSpeed
	g.gameOver = false
	g.cause = CauseNone

	g.obstacleMgr.Generate(g.level, g.snake.Occupies)
	g.foodMgr.Respawn(g.blockedForFood)
	g.highScore = g.store.Load()

	g.runID = uuid.NewString()
	g.startTime = g.now()
	g.endTime = time.Time{}
}

// SetDirection changes the heading unless d reverses it. Only the last
// accepted call before a tick matters.
func (g *Game) SetDirection(d types.Direction) bool {
	return g.snake.SetDirection(d)
}

// Tick advances the simulation one step. It does nothing once the game is
// over.
func (g *Game) Tick() TickResult {
	if g.gameOver {
		return TickResult{}
	}

	newHead := g.snake.NextHead()
	if hit := g.collisionMgr.CheckCollision(newHead, g.snake, g.obstacleMgr); hit != manager.NoCollision {
		g.endGame(causeFor(hit))
		return TickResult{Died: true, Cause: g.cause}
	}

	ate := g.collisionMgr.IsFoodCollision(newHead, g.foodMgr.GetFood())
	g.snake.Advance(newHead, ate)
	res := TickResult{Moved: true, Ate: ate}
	if !ate {
		return res
	}

	g.score++
	if g.score > g.highScore {
		g.highScore = g.score
	}
	if !g.foodMgr.Respawn(g.blockedForFood) {
		g.endGame(CauseBoardFull)
		res.Died, res.Cause = true, g.cause
		return res
	}
	if g.score%g.cfg.LevelUpScore == 0 {
		g.levelUp()
		res.LeveledUp = true
	}
	return res
}

func (g *Game) levelUp() {
	g.level++
	g.speed += g.cfg.SpeedIncrement
	food := g.foodMgr.GetFood()
	g.obstacleMgr.Generate(g.level, func(c types.Cell) bool {
		return c == food || g.snake.Occupies(c)
	})
}

func (g *Game) endGame(cause Cause) {
	g.gameOver = true
	g.cause = cause
	g.endTime = g.now()
	g.store.Save(g.highScore)
}

// Close flushes the high score. Call it on every exit path.
func (g *Game) Close() {
	g.store.Save(g.highScore)
}

func (g *Game) blockedForFood(c types.Cell) bool {
	return g.snake.Occupies(c) || g.obstacleMgr.Contains(c)
}

func (g *Game) Score() int                 { return g.score }
func (g *Game) Level() int                 { return g.level }
func (g *Game) Speed() int                 { return g.speed }
func (g *Game) HighScore() int             { return g.highScore }
func (g *Game) IsOver() bool               { return g.gameOver }
func (g *Game) Cause() Cause               { return g.cause }
func (g *Game) RunID() string              { return g.runID }
func (g *Game) Direction() types.Direction { return g.snake.Direction }
func (g *Game) Config() Config             { return g.cfg }

// TickInterval is the time between ticks at the current speed.
func (g *Game) TickInterval() time.Duration {
	return time.Second / time.Duration(g.speed)
}

// Result describes the current run. EndTime is zero while playing.
func (g *Game) Result() Result {
	return Result{
		RunID:     g.runID,
		Score:     g.score,
		Level:     g.level,
		Cause:     g.cause,
		StartTime: g.startTime,
		EndTime:   g.endTime,
	}
}
