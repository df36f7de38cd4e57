package store

import (
	"context"
	"fmt"
)

func (r *eventRepo) AppendSolve(ctx context.Context, data SolveEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.SolveEvent.Create().
		SetSequence(seqNum).
		SetProblem(data.Problem).
		SetHasImage(data.HasImage).
		SetFinalAnswer(data.FinalAnswer).
		SetStepCount(data.StepCount).
		SetModel(data.Model).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save solve event: %w", err)
	}

	return nil
}

func (r *eventRepo) CountSolves(ctx context.Context) (int, error) {
	n, err := r.client.SolveEvent.Query().Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("count solves: %w", err)
	}
	return n, nil
}
