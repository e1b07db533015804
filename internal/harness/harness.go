package harness

import (
	"context"
	"fmt"
	"time"

	"tasknest/internal/slot"
	"tasknest/internal/store"
	"tasknest/internal/task"
	"tasknest/internal/testutil"
)

// baseTime anchors the deterministic scenario clock.
var baseTime = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

// TaskState is the serialized form of a task in scenario results,
// matching the snapshot wire format.
type TaskState struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Priority  string `json:"priority"`
	Completed bool   `json:"completed"`
	CreatedAt string `json:"createdAt"`
}

// ViewSet captures all three filtered views of the final store state.
type ViewSet struct {
	All       []TaskState `json:"all"`
	Active    []TaskState `json:"active"`
	Completed []TaskState `json:"completed"`
}

// Result holds the outcome of a scenario run.
type Result struct {
	// Final is the filtered view set of the store after the last step.
	Final ViewSet
}

// Run executes a scenario against a fresh in-memory store.
//
// Determinism: IDs are task-001, task-002, ... in add order, and each add is
// stamped one second after the previous one starting at a fixed base time.
// Running the same scenario twice yields byte-identical results.
func Run(scenario *Scenario) (*Result, error) {
	if err := scenario.Validate(); err != nil {
		return nil, err
	}

	ctx := context.Background()
	st := store.New(slot.NewMemorySlot(),
		store.WithIDFunc(testutil.SequentialIDs()),
		store.WithClock(testutil.SteppingClock(baseTime, time.Second)),
	)

	// IDs of created tasks in add order; Ref indexes into this.
	var created []string

	for i, step := range scenario.Steps {
		if err := runStep(ctx, st, step, &created); err != nil {
			return nil, fmt.Errorf("step %d (%s): %w", i+1, step.Op, err)
		}
	}

	tasks, err := st.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("final state: %w", err)
	}

	return &Result{Final: ViewSet{
		All:       statesOf(task.Filter(tasks, task.FilterAll)),
		Active:    statesOf(task.Filter(tasks, task.FilterActive)),
		Completed: statesOf(task.Filter(tasks, task.FilterCompleted)),
	}}, nil
}

func runStep(ctx context.Context, st *store.Store, step Step, created *[]string) error {
	switch step.Op {
	case OpAdd:
		priority := task.PriorityMedium
		if step.Priority != "" {
			p, err := task.ParsePriority(step.Priority)
			if err != nil {
				return err
			}
			priority = p
		}
		t, err := st.Add(ctx, step.Title, priority)
		if err != nil {
			return err
		}
		*created = append(*created, t.ID)
		return nil

	case OpToggle:
		_, err := st.ToggleCompletion(ctx, (*created)[step.Ref-1])
		return err

	case OpSet:
		patch := store.Patch{
			Title:     step.Set.Title,
			Completed: step.Set.Completed,
		}
		if step.Set.Priority != nil {
			p, err := task.ParsePriority(*step.Set.Priority)
			if err != nil {
				return err
			}
			patch.Priority = &p
		}
		_, err := st.Update(ctx, (*created)[step.Ref-1], patch)
		return err

	case OpDelete:
		_, err := st.Delete(ctx, (*created)[step.Ref-1])
		return err

	default:
		return fmt.Errorf("unknown op %q", step.Op)
	}
}

func statesOf(tasks []task.Task) []TaskState {
	states := make([]TaskState, 0, len(tasks))
	for _, t := range tasks {
		states = append(states, TaskState{
			ID:        t.ID,
			Title:     t.Title,
			Priority:  string(t.Priority),
			Completed: t.Completed,
			CreatedAt: t.CreatedAt.UTC().Format(time.RFC3339Nano),
		})
	}
	return states
}
