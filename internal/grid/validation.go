package grid

import (
	"errors"
	"fmt"
)

var (
	ErrEmptyGrid       = errors.New("grid is empty")
	ErrInvalidCell     = errors.New("invalid grid character")
	ErrInvalidPosition = errors.New("position out of bounds")
	ErrStartCount      = errors.New("wrong number of start markers")
	ErrAgentCount      = errors.New("agent count out of range")
	ErrDuplicateKey    = errors.New("key appears more than once")
)

// validateAgents checks that the agent count fits the search state.
func validateAgents(agents int) error {
	if agents < 1 || agents > MaxAgents {
		return fmt.Errorf("%w: got %d, must be between 1 and %d", ErrAgentCount, agents, MaxAgents)
	}
	return nil
}

// validateStarts checks that the grid holds one start marker per agent.
func validateStarts(starts, agents int) error {
	if starts != agents {
		return fmt.Errorf("%w: found %d, need exactly %d", ErrStartCount, starts, agents)
	}
	return nil
}
