package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

// ---------------------------------------------------------------------------
// Practice — the tenant
// ---------------------------------------------------------------------------

type Practice struct {
	ent.Schema
}

func (Practice) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		TimeStampedMixin{},
		SoftDeleteMixin{},
	}
}

func (Practice) Fields() []ent.Field {
	return []ent.Field{
		field.String("name").
			MaxLen(255).
			NotEmpty(),

		field.String("slug").
			MaxLen(100).
			NotEmpty().
			Unique().
			Comment("URL-friendly identifier for the practice"),

		field.String("timezone").
			Default("UTC").
			MaxLen(64).
			Comment("IANA zone used when a caller supplies none"),

		field.String("phone").
			Optional().
			Nillable().
			MaxLen(20),

		field.String("address").
			Optional().
			Nillable(),

		field.Bool("is_active").Default(true),
	}
}

func (Practice) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("slug"),
	}
}

func (Practice) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("staff", StaffMember.Type),
	}
}

// ---------------------------------------------------------------------------
// StaffMember — a clinician within a practice
// ---------------------------------------------------------------------------

type StaffMember struct {
	ent.Schema
}

func (StaffMember) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		TimeStampedMixin{},
	}
}

func (StaffMember) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("practice_id", uuid.UUID{}).
			Comment("FK → practices.id"),

		field.String("first_name").
			MaxLen(100).
			NotEmpty(),

		field.String("last_name").
			MaxLen(100).
			NotEmpty(),

		field.String("email").
			MaxLen(255).
			NotEmpty(),

		field.String("password_hash").
			Sensitive(),

		field.Enum("role").
			Values("owner", "admin", "clinician").
			Default("clinician"),

		field.String("license_number").
			Optional().
			Nillable().
			MaxLen(100),

		field.Bool("is_active").Default(true),
	}
}

func (StaffMember) Indexes() []ent.Index {
	return []ent.Index{
		// An email logs into one practice once
		index.Fields("practice_id", "email").Unique(),
		index.Fields("practice_id"),
	}
}

func (StaffMember) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("practice", Practice.Type).
			Ref("staff").
			Unique().
			Required().
			Field("practice_id"),
	}
}
