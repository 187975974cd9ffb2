package cmd

import (
	"errors"
	"fmt"
	"math/rand"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/rybkr/keymaze/internal/generator"
	"github.com/rybkr/keymaze/internal/grid"
	"github.com/rybkr/keymaze/internal/solver"
	"github.com/spf13/cobra"
)

var (
	numMazes   int
	mazeWidth  int
	mazeHeight int
	keyCount   string
	doorCount  int
	genAgents  int
	braid      int
	seed       int64
	outputFile string
	timeout    time.Duration
)

func init() {
	genCmd := &cobra.Command{
		Use:   "gen",
		Short: "Generate vault mazes",
		Long: `Generate one or more solvable vault mazes and print each with its
shortest total distance.

Examples:
  keymaze gen --keys 8
  keymaze gen -n 5 --keys 4:8 --doors 2
  keymaze gen --width 41 --height 41 --keys 12 --timeout 30s -o vaults.txt`,
		RunE: runGen,
	}

	genCmd.Flags().IntVarP(&numMazes, "number", "n", 1, "Number of mazes to generate")
	genCmd.Flags().IntVar(&mazeWidth, "width", generator.DefaultSize, "Maze width in cells")
	genCmd.Flags().IntVar(&mazeHeight, "height", generator.DefaultSize, "Maze height in cells")
	genCmd.Flags().StringVarP(&keyCount, "keys", "k", "6", "Number of keys 0-26 or range like 4:8")
	genCmd.Flags().IntVarP(&doorCount, "doors", "d", 3, "Number of doors (capped at the key count)")
	genCmd.Flags().IntVarP(&genAgents, "agents", "a", grid.DefaultAgents, "Number of robots")
	genCmd.Flags().IntVar(&braid, "braid", 4, "Extra walls to remove, creating loops")
	genCmd.Flags().Int64Var(&seed, "seed", 0, "Seed for reproducible mazes (0 = random)")
	genCmd.Flags().StringVarP(&outputFile, "output", "o", "", "Output file; mazes are separated by blank lines")
	genCmd.Flags().DurationVar(&timeout, "timeout", 10*time.Second, "Generation timeout per maze")

	rootCmd.AddCommand(genCmd)
}

// parseKeyCountRange parses a key count string which can be:
// - A single number: "6"
// - A range: "4:8"
// Returns min, max, and an error
func parseKeyCountRange(s string) (min, max int, err error) {
	parts := strings.Split(s, ":")
	if len(parts) == 1 {
		val, err := strconv.Atoi(strings.TrimSpace(parts[0]))
		if err != nil {
			return 0, 0, fmt.Errorf("invalid key count: %w", err)
		}
		return val, val, nil
	} else if len(parts) == 2 {
		minVal, err := strconv.Atoi(strings.TrimSpace(parts[0]))
		if err != nil {
			return 0, 0, fmt.Errorf("invalid key count min: %w", err)
		}
		maxVal, err := strconv.Atoi(strings.TrimSpace(parts[1]))
		if err != nil {
			return 0, 0, fmt.Errorf("invalid key count max: %w", err)
		}
		if minVal > maxVal {
			return 0, 0, fmt.Errorf("key count min (%d) cannot be greater than max (%d)", minVal, maxVal)
		}
		return minVal, maxVal, nil
	}
	return 0, 0, fmt.Errorf("invalid key count format: %s (use format like '6' or '4:8')", s)
}

// writeMazes writes mazes to filename separated by blank lines, the layout solve --all reads.
func writeMazes(filename string, mazes []*grid.Grid) error {
	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create maze file: %w", err)
	}
	defer file.Close()

	for i, m := range mazes {
		if i > 0 {
			if _, err := fmt.Fprintln(file); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintln(file, m); err != nil {
			return err
		}
	}

	return file.Close()
}

func runGen(cmd *cobra.Command, args []string) error {
	minKeys, maxKeys, err := parseKeyCountRange(keyCount)
	if err != nil {
		return err
	}
	if minKeys < 0 || maxKeys > generator.MaxKeys {
		return fmt.Errorf("key count must be between 0 and %d, got %s", generator.MaxKeys, keyCount)
	}

	var mazes []*grid.Grid
	out := cmd.OutOrStdout()

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	if seed != 0 {
		rng = rand.New(rand.NewSource(seed))
	}
	for i := 0; i < numMazes; i++ {
		// Randomly select key count from range if it's a range
		selectedKeys := minKeys
		if maxKeys > minKeys {
			selectedKeys = minKeys + rng.Intn(maxKeys-minKeys+1)
		}

		opts := generator.DefaultOptions()
		opts.Width = mazeWidth
		opts.Height = mazeHeight
		opts.Agents = genAgents
		opts.Keys = selectedKeys
		opts.Doors = min(doorCount, selectedKeys)
		opts.Braid = braid
		opts.Timeout = timeout
		opts.Seed = rng.Int63()

		m, err := generator.New(opts).Generate()
		if err != nil {
			return fmt.Errorf("generation failed: %w", err)
		}

		if outputFile != "" {
			mazes = append(mazes, m)
			continue
		}

		dist, err := solver.New(m, &solver.Options{Agents: genAgents}).Solve()
		if err != nil && !errors.Is(err, solver.ErrNoSolution) {
			return fmt.Errorf("solving generated maze: %w", err)
		}
		fmt.Fprintf(out, "Maze #%d (Keys: %d, Doors: %d):\n", i+1, opts.Keys, opts.Doors)
		fmt.Fprintln(out, m)
		if err != nil {
			fmt.Fprintf(out, "Shortest: %s\n\n", noSolution)
		} else {
			fmt.Fprintf(out, "Shortest: %d\n\n", dist)
		}
	}

	if outputFile != "" {
		if err := writeMazes(outputFile, mazes); err != nil {
			return fmt.Errorf("failed to write maze file: %w", err)
		}
		fmt.Fprintf(out, "Generated %d maze(s) in %s\n", numMazes, outputFile)
	}

	return nil
}
