package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

// AppointmentSeries is the recurring template a family of appointments is
// generated from. Occurrence instants are computed in the series' own
// timezone and only become UTC when persisted or returned. Once any
// occurrence exists the series is deactivated (is_active=false) rather than
// deleted, so materialized rows keep a valid back-reference.
type AppointmentSeries struct {
	ent.Schema
}

func (AppointmentSeries) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		TimeStampedMixin{},
	}
}

func (AppointmentSeries) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("practice_id", uuid.UUID{}).
			Comment("FK → practices.id"),

		field.UUID("staff_id", uuid.UUID{}).
			Comment("FK → staff_members.id"),

		field.UUID("client_id", uuid.UUID{}).
			Comment("FK → client_profiles.id"),

		field.String("title").
			MaxLen(255).
			NotEmpty(),

		field.String("rrule").
			NotEmpty().
			Comment(`Recurrence rule, e.g. "FREQ=WEEKLY;INTERVAL=1"`),

		field.Time("series_start_date").
			Comment("First day the series exists; local date in the series timezone"),

		field.Int8("start_hour").
			Comment("Local time-of-day of each occurrence"),

		field.Int8("start_minute"),

		field.Int("duration_minutes").
			Default(50),

		field.String("timezone").
			MaxLen(64).
			NotEmpty().
			Comment("IANA zone the recurrence is evaluated in"),

		field.Time("until_date").
			Optional().
			Nillable().
			Comment("Hard stop; no occurrences after this date. Nil = open-ended"),

		field.Int("generation_cap_days").
			Optional().
			Nillable().
			Comment("Occurrences are never generated beyond now + this many days"),

		field.Time("last_generated_until").
			Optional().
			Nillable().
			Comment("UTC watermark up to which rows are known to be materialized"),

		field.Int64("cost_estimate").
			Optional().
			Nillable().
			Comment("Copied onto generated occurrences, in cents"),

		field.Bool("is_active").Default(true),
	}
}

func (AppointmentSeries) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("practice_id", "is_active"),
		index.Fields("staff_id"),
		index.Fields("client_id"),
	}
}
