package main

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/tomiconicgit/TerrainCreator/internal/editor"
	"github.com/tomiconicgit/TerrainCreator/internal/sculpt"
	"github.com/tomiconicgit/TerrainCreator/pkg/math"
)

// runScript executes a line-oriented stroke script against the session so a
// full sculpt/paint/scatter run is reproducible headlessly. Blank lines and
// lines starting with # are skipped. Commands:
//
//	raise   <x> <z> <radiusTiles> <step>
//	lower   <x> <z> <radiusTiles> <step>
//	smooth  <x> <z> <radiusTiles>
//	paint   <tileI> <tileJ> <material> <radiusTiles>
//	disc    <x> <z> <material> <radiusTiles>
//	marker  <tileI> <tileJ>
//	scatter <count>
func runScript(s *editor.Session, r io.Reader) error {
	scanner := bufio.NewScanner(r)
	lineNo := 0

	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		fields := strings.Fields(line)
		if err := runCommand(s, fields[0], fields[1:]); err != nil {
			return fmt.Errorf("script line %d: %w", lineNo, err)
		}
	}
	return scanner.Err()
}

func runCommand(s *editor.Session, cmd string, args []string) error {
	switch cmd {
	case "raise", "lower":
		if len(args) != 4 {
			return fmt.Errorf("%s wants 4 args, got %d", cmd, len(args))
		}
		x, z, radius, step, err := parseFloats4(args)
		if err != nil {
			return err
		}
		mode := sculpt.ModeRaise
		if cmd == "lower" {
			mode = sculpt.ModeLower
		}
		return s.ApplyBrush(math.Vec2{X: x, Y: z}, mode, radius, step)

	case "smooth":
		if len(args) != 3 {
			return fmt.Errorf("smooth wants 3 args, got %d", len(args))
		}
		x, err := parseFloat(args[0])
		if err != nil {
			return err
		}
		z, err := parseFloat(args[1])
		if err != nil {
			return err
		}
		radius, err := parseFloat(args[2])
		if err != nil {
			return err
		}
		return s.ApplyBrush(math.Vec2{X: x, Y: z}, sculpt.ModeSmooth, radius, 0)

	case "paint":
		if len(args) != 4 {
			return fmt.Errorf("paint wants 4 args, got %d", len(args))
		}
		i, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("bad tile index %q", args[0])
		}
		j, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("bad tile index %q", args[1])
		}
		mat, err := strconv.Atoi(args[2])
		if err != nil {
			return fmt.Errorf("bad material %q", args[2])
		}
		radius, err := parseFloat(args[3])
		if err != nil {
			return err
		}
		s.PaintTile(i, j, mat, radius)
		return nil

	case "disc":
		if len(args) != 4 {
			return fmt.Errorf("disc wants 4 args, got %d", len(args))
		}
		x, err := parseFloat(args[0])
		if err != nil {
			return err
		}
		z, err := parseFloat(args[1])
		if err != nil {
			return err
		}
		mat, err := strconv.Atoi(args[2])
		if err != nil {
			return fmt.Errorf("bad material %q", args[2])
		}
		radius, err := parseFloat(args[3])
		if err != nil {
			return err
		}
		s.PaintDisc(x, z, mat, radius)
		return nil

	case "marker":
		if len(args) != 2 {
			return fmt.Errorf("marker wants 2 args, got %d", len(args))
		}
		i, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("bad tile index %q", args[0])
		}
		j, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("bad tile index %q", args[1])
		}
		s.PlaceMarker(i, j)
		return nil

	case "scatter":
		if len(args) != 1 {
			return fmt.Errorf("scatter wants 1 arg, got %d", len(args))
		}
		n, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("bad count %q", args[0])
		}
		s.Scatter(n)
		return nil

	default:
		return fmt.Errorf("unknown command %q", cmd)
	}
}

func parseFloat(s string) (float32, error) {
	v, err := strconv.ParseFloat(s, 32)
	if err != nil {
		return 0, fmt.Errorf("bad number %q", s)
	}
	return float32(v), nil
}

func parseFloats4(args []string) (a, b, c, d float32, err error) {
	if a, err = parseFloat(args[0]); err != nil {
		return
	}
	if b, err = parseFloat(args[1]); err != nil {
		return
	}
	if c, err = parseFloat(args[2]); err != nil {
		return
	}
	d, err = parseFloat(args[3])
	return
}
