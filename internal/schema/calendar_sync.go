package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

// ---------------------------------------------------------------------------
// CalendarConnection — a staff member's link to an external provider
// ---------------------------------------------------------------------------

type CalendarConnection struct {
	ent.Schema
}

func (CalendarConnection) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		TimeStampedMixin{},
	}
}

func (CalendarConnection) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("practice_id", uuid.UUID{}).
			Comment("FK → practices.id"),

		field.UUID("staff_id", uuid.UUID{}).
			Comment("FK → staff_members.id"),

		field.Enum("provider").
			Values("google"),

		field.String("account_email").
			MaxLen(255).
			NotEmpty(),

		field.String("refresh_token_enc").
			Sensitive().
			Comment("AES-256-GCM encrypted provider refresh token"),

		field.Enum("status").
			Values("active", "needs_reconnect").
			Default("active"),

		field.Bool("is_active").Default(true),
	}
}

func (CalendarConnection) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("staff_id", "provider").Unique(),
		index.Fields("practice_id"),
	}
}

// ---------------------------------------------------------------------------
// CalendarWatchChannel — a provider push subscription with its sync cursor
// ---------------------------------------------------------------------------

type CalendarWatchChannel struct {
	ent.Schema
}

func (CalendarWatchChannel) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		TimeStampedMixin{},
	}
}

func (CalendarWatchChannel) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("practice_id", uuid.UUID{}).
			Comment("FK → practices.id"),

		field.UUID("staff_id", uuid.UUID{}).
			Comment("FK → staff_members.id"),

		field.Enum("provider").
			Values("google"),

		field.String("channel_id").
			MaxLen(255).
			NotEmpty().
			Unique().
			Comment("Identifier we handed the provider at watch time"),

		field.String("resource_id").
			MaxLen(255).
			Optional().
			Nillable().
			Comment("Provider-assigned resource identifier"),

		field.String("provider_calendar_id").
			MaxLen(255).
			NotEmpty(),

		field.String("sync_token").
			Optional().
			Nillable().
			Comment("Incremental fetch cursor; cleared when the provider reports it expired"),

		field.Time("expires_at").
			Optional().
			Nillable(),
	}
}

func (CalendarWatchChannel) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("channel_id"),
		index.Fields("staff_id", "provider"),
	}
}

// ---------------------------------------------------------------------------
// StaffCalendarBlock — an opaque busy interval mirrored from the provider
// ---------------------------------------------------------------------------

type StaffCalendarBlock struct {
	ent.Schema
}

func (StaffCalendarBlock) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		TimeStampedMixin{},
	}
}

func (StaffCalendarBlock) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("practice_id", uuid.UUID{}).
			Comment("FK → practices.id"),

		field.UUID("staff_id", uuid.UUID{}).
			Comment("FK → staff_members.id"),

		field.Enum("source").
			Values("google"),

		field.String("external_event_id").
			MaxLen(255).
			NotEmpty().
			Comment("Provider event id; the idempotency key for upsert/delete"),

		field.Time("start_time").
			Comment("UTC"),

		field.Time("end_time").
			Comment("UTC"),

		field.String("label").
			Default("Busy").
			MaxLen(50).
			Comment("Never carries event content; always the literal Busy"),
	}
}

func (StaffCalendarBlock) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("staff_id", "source", "external_event_id").Unique(),
		index.Fields("staff_id", "start_time"),
	}
}
