package main

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/gridpath/antenna"
	"github.com/katalvlaran/gridpath/internal/config"
	"github.com/katalvlaran/gridpath/maze"
	"github.com/katalvlaran/gridpath/memspace"
	"github.com/katalvlaran/gridpath/patrol"
	"github.com/katalvlaran/gridpath/region"
	"github.com/katalvlaran/gridpath/trail"
	"github.com/katalvlaran/gridpath/warehouse"
)

// job is one solver invocation.
type job struct {
	cfg  config.Config
	part int
	text string
	log  logrus.FieldLogger
}

// solver answers one puzzle part.
type solver func(ctx context.Context, j job) (any, error)

var solvers = map[int]solver{
	6:  guardPatrol,
	8:  resonantCollinearity,
	10: hoofIt,
	12: gardenGroups,
	15: warehouseWoes,
	16: reindeerMaze,
	18: ramRun,
}

func guardPatrol(ctx context.Context, j job) (any, error) {
	lab, err := patrol.Parse(j.text)
	if err != nil {
		return nil, err
	}
	if j.part == 1 {
		tr, err := patrol.Walk(lab)
		if err != nil {
			return nil, err
		}
		return tr.Visited.Size(), nil
	}
	return patrol.CountLoopObstructions(ctx, lab,
		patrol.WithWorkers(j.cfg.Patrol.Workers),
		patrol.WithLogger(j.log),
	)
}

func resonantCollinearity(_ context.Context, j job) (any, error) {
	g, err := antenna.Parse(j.text)
	if err != nil {
		return nil, err
	}
	mode := antenna.Adjacent
	if j.part == 2 {
		mode = antenna.Resonant
	}
	j.log.WithFields(logrus.Fields{
		"frequencies": len(antenna.Frequencies(g)),
		"mode":        mode,
	}).Debug("placing antinodes")
	return antenna.Impact(g, mode), nil
}

func hoofIt(_ context.Context, j job) (any, error) {
	g, err := trail.ParseMap(j.text)
	if err != nil {
		return nil, err
	}
	if j.part == 1 {
		return trail.Score(g)
	}
	return trail.Rating(g)
}

func gardenGroups(_ context.Context, j job) (any, error) {
	g, err := region.ParseGarden(j.text)
	if err != nil {
		return nil, err
	}
	regions := region.Regions(g)
	j.log.WithField("regions", len(regions)).Debug("garden partitioned")
	if j.part == 1 {
		return region.Price(regions), nil
	}
	return region.BulkPrice(regions), nil
}

func warehouseWoes(_ context.Context, j job) (any, error) {
	w, moves, err := warehouse.Parse(j.text, j.part == 2)
	if err != nil {
		return nil, err
	}
	moved := w.Run(moves)
	j.log.WithFields(logrus.Fields{
		"moves":   len(moves),
		"blocked": len(moves) - moved,
	}).Debug("robot finished")
	return w.GPS(), nil
}

func reindeerMaze(_ context.Context, j job) (any, error) {
	m, err := maze.Parse(j.text)
	if err != nil {
		return nil, err
	}
	route, err := maze.ShortestPath(m, j.cfg.Maze.Func())
	if err != nil {
		return nil, err
	}
	if !route.Reachable {
		return "no path", nil
	}
	j.log.WithFields(logrus.Fields{
		"cost":  route.Cost,
		"tiles": route.Tiles(),
		"ends":  len(route.Ends),
	}).Debug("maze solved")
	if j.part == 1 {
		return route.Cost, nil
	}
	return route.Tiles(), nil
}

func ramRun(_ context.Context, j job) (any, error) {
	bytes, err := memspace.ParseBytes(j.text)
	if err != nil {
		return nil, err
	}
	size := j.cfg.Memspace.Size
	if j.part == 1 {
		n := min(j.cfg.Memspace.Bytes, len(bytes))
		steps, ok, err := memspace.MinSteps(size, bytes[:n])
		if err != nil {
			return nil, err
		}
		if !ok {
			return "no path", nil
		}
		return steps, nil
	}
	b, index, ok, err := memspace.FirstBlocking(size, bytes)
	if err != nil {
		return nil, err
	}
	if !ok {
		return "never blocked", nil
	}
	j.log.WithField("index", index).Debug("first blocking byte")
	return fmt.Sprintf("%d,%d", b.Col, b.Row), nil
}
