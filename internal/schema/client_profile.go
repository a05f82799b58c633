package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

// ClientProfile is a person receiving care at a practice. ("Client" itself
// is reserved by the generated ent package.)
type ClientProfile struct {
	ent.Schema
}

func (ClientProfile) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		TimeStampedMixin{},
		SoftDeleteMixin{},
	}
}

func (ClientProfile) Fields() []ent.Field {
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
			Optional().
			Nillable().
			MaxLen(255),

		field.String("phone").
			Optional().
			Nillable().
			MaxLen(20),

		field.Bool("is_active").Default(true),
	}
}

func (ClientProfile) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("practice_id"),
		index.Fields("practice_id", "last_name"),
	}
}
