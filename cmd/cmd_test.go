package cmd

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/rybkr/keymaze/internal/generator"
	"github.com/rybkr/keymaze/internal/grid"
)

const quadrants = `#######
#a.#Cd#
##@#@##
#######
##@#@##
#cB#Ab#
#######
`

const corridors = `###############
#d.ABC.#.....a#
######@#@######
###############
######@#@######
#b.....#.....c#
###############
`

// resetFlags restores flag variables, which persist between executions of rootCmd.
func resetFlags() {
	solveAgents = grid.DefaultAgents
	solveTimeout = 0
	solveAll = false
	verbose = false

	numMazes = 1
	mazeWidth = generator.DefaultSize
	mazeHeight = generator.DefaultSize
	keyCount = "6"
	doorCount = 3
	genAgents = grid.DefaultAgents
	braid = 4
	seed = 0
	outputFile = ""
	timeout = 10 * time.Second
}

func execute(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	resetFlags()
	var stdout, stderr bytes.Buffer
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&stderr)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestSolveFromStdin(t *testing.T) {
	out, _, err := execute(t, quadrants, "solve")
	if err != nil {
		t.Fatalf("solve: %v", err)
	}
	if out != "8\n" {
		t.Errorf("output = %q, want %q", out, "8\n")
	}
}

func TestSolveReadsOnlyFirstMaze(t *testing.T) {
	out, _, err := execute(t, quadrants+"\n"+corridors, "solve")
	if err != nil {
		t.Fatalf("solve: %v", err)
	}
	if out != "8\n" {
		t.Errorf("output = %q, want %q", out, "8\n")
	}
}

func TestSolveAllFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "vaults.txt")
	if err := os.WriteFile(path, []byte(quadrants+"\n"+corridors), 0o644); err != nil {
		t.Fatal(err)
	}
	out, _, err := execute(t, "", "solve", "--all", path)
	if err != nil {
		t.Fatalf("solve: %v", err)
	}
	if out != "8\n24\n" {
		t.Errorf("output = %q, want %q", out, "8\n24\n")
	}
}

func TestSolveNoSolution(t *testing.T) {
	out, _, err := execute(t, "#######\n#@.@#a#\n#@.@###\n#######\n", "solve")
	if err != nil {
		t.Fatalf("solve: %v", err)
	}
	if out != noSolution+"\n" {
		t.Errorf("output = %q, want %q", out, noSolution+"\n")
	}
}

func TestSolveInvalidMaze(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  error
	}{
		{"wrong start count", "#####\n#@.a#\n#####\n", grid.ErrStartCount},
		{"bad character", "#####\n#@*a#\n#####\n", grid.ErrInvalidCell},
		{"empty input", "", grid.ErrEmptyGrid},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			out, _, err := execute(t, test.input, "solve")
			if !errors.Is(err, test.want) {
				t.Errorf("got %v, want %v", err, test.want)
			}
			if out != "" {
				t.Errorf("unexpected output %q", out)
			}
		})
	}
}

func TestSolveAgentsFlag(t *testing.T) {
	out, _, err := execute(t, "#########\n#b.A.@.a#\n#########\n", "solve", "--agents", "1")
	if err != nil {
		t.Fatalf("solve: %v", err)
	}
	if out != "8\n" {
		t.Errorf("output = %q, want %q", out, "8\n")
	}
}

func TestSolveVerbose(t *testing.T) {
	_, stderr, err := execute(t, quadrants, "solve", "-v")
	if err != nil {
		t.Fatalf("solve: %v", err)
	}
	if !strings.Contains(stderr, "built graph") {
		t.Errorf("stderr %q has no graph statistics", stderr)
	}
}

func TestGenToConsole(t *testing.T) {
	out, _, err := execute(t, "", "gen", "--seed", "11", "--width", "11", "--height", "11", "--keys", "3", "--doors", "1")
	if err != nil {
		t.Fatalf("gen: %v", err)
	}
	for _, want := range []string{"Maze #1 (Keys: 3, Doors: 1):", "Shortest: "} {
		if !strings.Contains(out, want) {
			t.Errorf("output %q does not contain %q", out, want)
		}
	}
	if strings.Contains(out, noSolution) {
		t.Errorf("generated maze is unsolvable:\n%s", out)
	}
}

func TestGenRoundTripsThroughSolve(t *testing.T) {
	path := filepath.Join(t.TempDir(), "vaults.txt")
	_, _, err := execute(t, "", "gen", "-n", "3", "--seed", "21", "--keys", "2:5", "-o", path)
	if err != nil {
		t.Fatalf("gen: %v", err)
	}

	out, _, err := execute(t, "", "solve", "--all", path)
	if err != nil {
		t.Fatalf("solve: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 3 {
		t.Fatalf("solved %d mazes, want 3: %q", len(lines), out)
	}
	for _, line := range lines {
		if _, err := strconv.Atoi(line); err != nil {
			t.Errorf("result %q is not a distance", line)
		}
	}
}

func TestGenRejectsBadKeyCount(t *testing.T) {
	for _, keys := range []string{"x", "5:2", "1:2:3", "30"} {
		if _, _, err := execute(t, "", "gen", "--keys", keys); err == nil {
			t.Errorf("gen --keys %s succeeded", keys)
		}
	}
}

func TestParseKeyCountRange(t *testing.T) {
	tests := []struct {
		in       string
		min, max int
	}{
		{"6", 6, 6},
		{" 4 : 8 ", 4, 8},
		{"0:0", 0, 0},
	}
	for _, test := range tests {
		min, max, err := parseKeyCountRange(test.in)
		if err != nil {
			t.Errorf("parseKeyCountRange(%q): %v", test.in, err)
			continue
		}
		if min != test.min || max != test.max {
			t.Errorf("parseKeyCountRange(%q) = %d, %d, want %d, %d", test.in, min, max, test.min, test.max)
		}
	}
}
