package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// QuizEvent records a finished quiz attempt.
type QuizEvent struct {
	ent.Schema
}

func (QuizEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (QuizEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("topic").
			NotEmpty().
			Comment("Topic the quiz was generated for"),
		field.Int("total").
			Positive().
			Comment("Number of questions in the quiz"),
		field.Int("score").
			Min(0).
			Comment("Questions answered correctly on first try"),
		field.String("model").
			Default("").
			Comment("Model that generated the questions"),
	}
}

func (QuizEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("topic"),
	}
}
