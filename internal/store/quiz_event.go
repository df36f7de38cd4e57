package store

import (
	"context"
	"fmt"

	"github.com/abhisek/mathpal/ent"
	"github.com/abhisek/mathpal/ent/quizevent"
)

func (r *eventRepo) AppendQuizResult(ctx context.Context, data QuizEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.QuizEvent.Create().
		SetSequence(seqNum).
		SetTopic(data.Topic).
		SetTotal(data.Total).
		SetScore(data.Score).
		SetModel(data.Model).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save quiz event: %w", err)
	}

	return nil
}

func (r *eventRepo) QuizHistory(ctx context.Context, opts QueryOpts) ([]QuizRecord, error) {
	q := r.client.QuizEvent.Query().
		Order(ent.Desc(quizevent.FieldSequence))

	if !opts.From.IsZero() {
		q = q.Where(quizevent.TimestampGTE(opts.From))
	}
	if !opts.To.IsZero() {
		q = q.Where(quizevent.TimestampLTE(opts.To))
	}
	if opts.Limit > 0 {
		q = q.Limit(opts.Limit)
	}

	rows, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query quiz history: %w", err)
	}

	out := make([]QuizRecord, len(rows))
	for i, e := range rows {
		out[i] = QuizRecord{
			ID:        e.ID,
			Timestamp: e.Timestamp,
			QuizEventData: QuizEventData{
				Topic: e.Topic,
				Total: e.Total,
				Score: e.Score,
				Model: e.Model,
			},
		}
	}
	return out, nil
}

func (r *eventRepo) QuizStatsByTopic(ctx context.Context) ([]TopicStats, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT topic,
		       COUNT(*),
		       AVG(CAST(score AS REAL)),
		       MAX(score),
		       MAX(total)
		FROM quiz_events
		GROUP BY topic
		ORDER BY topic`)
	if err != nil {
		return nil, fmt.Errorf("aggregate quiz stats: %w", err)
	}
	defer rows.Close()

	var out []TopicStats
	for rows.Next() {
		var s TopicStats
		if err := rows.Scan(&s.Topic, &s.Attempts, &s.AvgScore, &s.BestScore, &s.Total); err != nil {
			return nil, fmt.Errorf("scan topic stats: %w", err)
		}
		out = append(out, s)
	}
	return out, rows.Err()
}
