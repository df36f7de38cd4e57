package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// SolveEvent records a completed problem solve.
type SolveEvent struct {
	ent.Schema
}

func (SolveEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (SolveEvent) Fields() []ent.Field {
	return []ent.Field{
		field.Text("problem").
			Default("").
			Comment("The problem as typed; empty for image-only solves"),
		field.Bool("has_image").
			Default(false).
			Comment("Whether a problem photo was attached"),
		field.Text("final_answer").
			Default("").
			Comment("The final answer returned"),
		field.Int("step_count").
			Default(0).
			Comment("Number of solution steps returned"),
		field.String("model").
			Default("").
			Comment("Model that produced the solution"),
	}
}

func (SolveEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("has_image"),
	}
}
