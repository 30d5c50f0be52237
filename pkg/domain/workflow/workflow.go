// Package workflow implements the table-driven state machine shared by the
// procurement entities. A workflow is an immutable set of transitions keyed
// by (source, target) status pair. Executing a transition runs its optional
// guard and post-action but never writes the entity's status field; the
// status write stays with the caller so it can sit next to any ledger effect
// belonging to the same command.
package workflow

import "github.com/pkg/errors"

// ErrInvalidTransition is returned for any (source, target) pair the
// transition table does not define.
var ErrInvalidTransition = errors.New("invalid status transition")

// Transition is one valid edge between two statuses. Guard may veto the
// transition before anything happens; PostAction applies a side effect such
// as stamping a timestamp. Both are optional.
type Transition[S comparable, E any] struct {
	Source     S
	Target     S
	Guard      func(entity E) error
	PostAction func(entity E)
}

type edge[S comparable] struct {
	source S
	target S
}

// Workflow is the transition table for one entity kind.
type Workflow[S comparable, E any] struct {
	transitions map[edge[S]]Transition[S, E]
}

// New builds a workflow from the given transitions. A later transition for an
// already present (source, target) pair replaces the earlier one.
func New[S comparable, E any](transitions ...Transition[S, E]) *Workflow[S, E] {
	table := make(map[edge[S]]Transition[S, E], len(transitions))
	for _, transition := range transitions {
		table[edge[S]{source: transition.Source, target: transition.Target}] = transition
	}
	return &Workflow[S, E]{transitions: table}
}

// Transition executes the edge from source to target against entity. The
// guard runs first and aborts the transition by returning an error; the
// post-action runs last. The entity's status field is left untouched.
func (w *Workflow[S, E]) Transition(entity E, source, target S) error {
	transition, ok := w.transitions[edge[S]{source: source, target: target}]
	if !ok {
		return errors.Wrapf(ErrInvalidTransition, "%v -> %v", source, target)
	}
	if transition.Guard != nil {
		if err := transition.Guard(entity); err != nil {
			return err
		}
	}
	if transition.PostAction != nil {
		transition.PostAction(entity)
	}
	return nil
}
