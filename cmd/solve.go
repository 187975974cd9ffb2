package cmd

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/rybkr/keymaze/internal/grid"
	"github.com/rybkr/keymaze/internal/solver"
	"github.com/spf13/cobra"
)

// noSolution is printed when some key can never be collected.
const noSolution = "no solution"

var (
	solveAgents  int
	solveTimeout time.Duration
	solveAll     bool
	verbose      bool
)

func init() {
	solveCmd := &cobra.Command{
		Use:   "solve [file]",
		Short: "Find the fewest total moves to collect every key",
		Long: `Read a maze from a file, or from standard input when no file is given, and
print the fewest total moves needed to collect every key, or "no solution".

The maze ends at the first empty line or at end of input. With --all, every
maze in the input is solved and one result is printed per maze.

Examples:
  keymaze solve vault.txt
  keymaze solve --agents 1 < vault.txt
  keymaze gen -n 5 -o vaults.txt && keymaze solve --all vaults.txt`,
		Args: cobra.MaximumNArgs(1),
		RunE: runSolve,
	}

	solveCmd.Flags().IntVarP(&solveAgents, "agents", "a", grid.DefaultAgents, "Number of robots (start markers) in the maze")
	solveCmd.Flags().DurationVar(&solveTimeout, "timeout", 0, "Search timeout per maze (0 = none)")
	solveCmd.Flags().BoolVar(&solveAll, "all", false, "Solve every blank-line-separated maze in the input")
	solveCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Log graph and search statistics to stderr")

	rootCmd.AddCommand(solveCmd)
}

func runSolve(cmd *cobra.Command, args []string) error {
	var in io.Reader = cmd.InOrStdin()
	if len(args) == 1 {
		f, err := os.Open(args[0])
		if err != nil {
			return fmt.Errorf("failed to open maze: %w", err)
		}
		defer f.Close()
		in = f
	}

	grids, err := readGrids(in, solveAll)
	if err != nil {
		return err
	}

	opts := solver.DefaultOptions()
	opts.Agents = solveAgents
	opts.Timeout = solveTimeout
	opts.Logger = newLogger(cmd)

	out := cmd.OutOrStdout()
	for i, g := range grids {
		dist, err := solver.New(g, opts).Solve()
		switch {
		case errors.Is(err, solver.ErrNoSolution):
			fmt.Fprintln(out, noSolution)
		case err != nil:
			if solveAll {
				return fmt.Errorf("maze #%d: %w", i+1, err)
			}
			return err
		default:
			fmt.Fprintln(out, dist)
		}
	}

	return nil
}

// readGrids reads one maze, or every maze when all is set.
func readGrids(r io.Reader, all bool) ([]*grid.Grid, error) {
	if all {
		return grid.ParseAll(r)
	}
	g, err := grid.Parse(r)
	if err != nil {
		return nil, err
	}
	return []*grid.Grid{g}, nil
}

// newLogger returns a stderr logger under --verbose, and nil otherwise.
func newLogger(cmd *cobra.Command) *log.Logger {
	if !verbose {
		return nil
	}
	return log.New(cmd.ErrOrStderr(), "keymaze: ", log.Ltime|log.Lmicroseconds)
}
