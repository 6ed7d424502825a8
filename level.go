package main

import (
	"bufio"
	"embed"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"maze3d/engine"
)

//go:embed maps/*.txt
var maps embed.FS

const (
	defaultLevel = "maps/level1.txt"
	spawnSymbol  = 'p'
)

var errNoSpawn = errors.New("level has no spawn cell")

// Level is a parsed text map. The spawn marker has already been replaced by
// an open cell.
type Level struct {
	Name     string
	Rows     []string
	SpawnCol int
	SpawnRow int
}

// ParseLevel reads one map row per line. Trailing blank lines are dropped.
func ParseLevel(name string, r io.Reader) (*Level, error) {
	var rows []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		rows = append(rows, strings.TrimRight(scanner.Text(), "\r"))
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading %s: %w", name, err)
	}
	for len(rows) > 0 && rows[len(rows)-1] == "" {
		rows = rows[:len(rows)-1]
	}

	l := &Level{Name: name, Rows: rows, SpawnCol: -1, SpawnRow: -1}
	for y, row := range rows {
		if x := strings.IndexRune(row, spawnSymbol); x >= 0 {
			l.SpawnCol, l.SpawnRow = len([]rune(row[:x])), y
			l.Rows[y] = strings.Replace(row, string(spawnSymbol), string(engine.OpenSymbol), 1)
			break
		}
	}
	if l.SpawnRow < 0 {
		return nil, fmt.Errorf("%s: %w", name, errNoSpawn)
	}
	return l, nil
}

func LoadLevel(fsys fs.FS, path string) (*Level, error) {
	f, err := fsys.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening level: %w", err)
	}
	defer f.Close()
	return ParseLevel(path, f)
}

// OpenLevel loads file from disk, or the embedded default level when file
// is empty.
func OpenLevel(file string) (*Level, error) {
	if file == "" {
		return LoadLevel(maps, defaultLevel)
	}
	return LoadLevel(os.DirFS(filepath.Dir(file)), filepath.Base(file))
}

// Build validates the rows into a grid and finds the goal.
func (l *Level) Build(blockSize int, goalSprite *engine.Texture) (*engine.Grid, engine.Goal, error) {
	grid, err := engine.NewGrid(l.Rows, blockSize)
	if err != nil {
		return nil, engine.Goal{}, fmt.Errorf("%s: %w", l.Name, err)
	}
	goal, err := grid.LocateGoal(goalSprite)
	if err != nil {
		return nil, engine.Goal{}, fmt.Errorf("%s: %w", l.Name, err)
	}
	return grid, goal, nil
}
