package main

import (
	"fmt"
	"math"

	"github.com/sirupsen/logrus"

	"maze3d/engine"
	"maze3d/logger"
	"maze3d/model"
)

// collisionFraction is the player's collision half-extent in blocks.
const collisionFraction = 0.2

// world is one play session: the maze, the renderer and the player. It does
// not touch the display.
type world struct {
	level     *Level
	grid      *engine.Grid
	goal      engine.Goal
	caster    *engine.Caster
	projector *engine.Projector
	player    *model.Player
	fov       float64
	moveSpeed float64

	frame  *engine.Image
	result engine.SweepResult
	won    bool
}

func newWorld(s *Settings, level *Level, textures *TextureStore) (*world, error) {
	grid, goal, err := level.Build(s.Map.BlockSize, textures.Goal)
	if err != nil {
		return nil, err
	}
	casterCfg, err := s.CasterConfig()
	if err != nil {
		return nil, err
	}
	projectorCfg, err := s.ProjectorConfig()
	if err != nil {
		return nil, err
	}

	caster := engine.NewCaster(grid, &goal, casterCfg)
	w := &world{
		level:     level,
		grid:      grid,
		goal:      goal,
		caster:    caster,
		projector: engine.NewProjector(caster, textures.Walls, projectorCfg),
		fov:       s.FOV(),
		moveSpeed: s.Player.MoveSpeed * float64(grid.BlockSize()),
		frame:     engine.NewImage(s.Window.Width, s.Window.Height),
	}
	w.respawn()

	logger.Log.WithFields(logrus.Fields{
		"level": level.Name,
		"size":  fmt.Sprintf("%dx%d", grid.Width(), grid.Height()),
		"goal":  fmt.Sprintf("(%d, %d)", goal.Col, goal.Row),
		"step":  caster.Step(),
	}).Info("level loaded")
	return w, nil
}

// respawn puts the player back on the center of the spawn cell.
func (w *world) respawn() {
	x, y := w.grid.CellCenter(w.level.SpawnCol, w.level.SpawnRow)
	w.player = model.NewPlayer(x, y, math.Pi/3, collisionFraction*float64(w.grid.BlockSize()))
	w.result = engine.SweepResult{}
	w.won = false
}

// step applies one tick of movement. forward and strafe are in -1..1.
func (w *world) step(forward, strafe, turn, modifier float64) {
	if forward != 0 && strafe != 0 {
		forward, strafe = forward/math.Sqrt2, strafe/math.Sqrt2
	}
	w.player.Rotate(turn)
	w.player.Move(forward*w.moveSpeed*modifier, strafe*w.moveSpeed*modifier, w.grid)
	w.checkGoalCell()
}

// checkGoalCell wins when the player stands inside the goal cell.
func (w *world) checkGoalCell() {
	if w.won {
		return
	}
	if w.grid.IsGoal(w.grid.CellAt(w.player.Position.X, w.player.Position.Y)) {
		w.win("goal cell")
	}
}

// render draws the first-person frame and applies the win signal.
func (w *world) render() error {
	res, err := w.projector.Render(w.frame, w.viewer())
	if err != nil {
		return fmt.Errorf("rendering frame: %w", err)
	}
	w.result = res
	if res.WinTriggered {
		w.win("goal in reach")
	}
	return nil
}

// traceMap plots a fan of rays and the player onto the top-down view dst.
// The first-person result no longer applies while the map is shown, so it is
// cleared.
func (w *world) traceMap(dst *engine.Image, rays int) error {
	w.result = engine.SweepResult{}

	v := w.viewer()
	for i := 0; i < rays; i++ {
		if _, err := w.caster.Cast(v, engine.ColumnAngle(v, i, rays), dst); err != nil {
			return fmt.Errorf("tracing map view: %w", err)
		}
	}

	r := int(w.player.CollisionRadius)
	dst.FillRect(int(v.X)-r, int(v.Y)-r, 2*r, 2*r, w.player.MapColor)
	return nil
}

func (w *world) viewer() engine.Viewer {
	return w.player.Viewer(w.fov)
}

func (w *world) win(reason string) {
	if w.won {
		return
	}
	w.won = true
	logger.Log.WithFields(logrus.Fields{
		"reason": reason,
		"x":      w.player.Position.X,
		"y":      w.player.Position.Y,
	}).Info("goal reached")
}

// goalDistance is the straight-line distance to the goal center.
func (w *world) goalDistance() float64 {
	return math.Hypot(w.goal.X-w.player.Position.X, w.goal.Y-w.player.Position.Y)
}
