package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

// Appointment is one persisted session: a standalone booking or a
// materialized occurrence of an AppointmentSeries. Once created it is
// authoritative over any computed occurrence near its start instant.
type Appointment struct {
	ent.Schema
}

func (Appointment) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		TimeStampedMixin{},
	}
}

func (Appointment) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("practice_id", uuid.UUID{}).
			Comment("FK → practices.id"),

		field.UUID("staff_id", uuid.UUID{}).
			Comment("FK → staff_members.id"),

		field.UUID("client_id", uuid.UUID{}).
			Comment("FK → client_profiles.id"),

		field.UUID("series_id", uuid.UUID{}).
			Optional().
			Nillable().
			Comment("Owning series for materialized occurrences; nil for standalone"),

		field.String("title").
			MaxLen(255).
			NotEmpty(),

		field.Time("start_time").
			Comment("UTC"),

		field.Time("end_time").
			Comment("UTC"),

		field.Enum("status").
			Values("scheduled", "completed", "cancelled", "no_show").
			Default("scheduled"),

		field.Int64("cost").
			Default(0).
			Comment("Snapshotted cost in cents"),

		field.Text("notes").
			Optional().
			Nillable(),

		field.Text("cancellation_reason").
			Optional().
			Nillable(),

		field.Time("cancelled_at").
			Optional().
			Nillable(),

		field.Time("completed_at").
			Optional().
			Nillable(),
	}
}

func (Appointment) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("practice_id", "start_time"),
		index.Fields("staff_id", "status", "start_time"),
		index.Fields("client_id", "status"),
		// Materialization upsert key: two concurrent attempts for the same
		// occurrence converge on one row.
		index.Fields("series_id", "start_time").Unique(),
	}
}
