// Code generated by ent, DO NOT EDIT.

package repo

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/juniperhealth/juniper_backend/internal/repo/calendarconnection"
)

// CalendarConnection is the model entity for the CalendarConnection schema.
type CalendarConnection struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// FK → practices.id
	PracticeID uuid.UUID `json:"practice_id,omitempty"`
	// FK → staff_members.id
	StaffID uuid.UUID `json:"staff_id,omitempty"`
	// Provider holds the value of the "provider" field.
	Provider calendarconnection.Provider `json:"provider,omitempty"`
	// AccountEmail holds the value of the "account_email" field.
	AccountEmail string `json:"account_email,omitempty"`
	// AES-256-GCM encrypted provider refresh token
	RefreshTokenEnc string `json:"-"`
	// Status holds the value of the "status" field.
	Status calendarconnection.Status `json:"status,omitempty"`
	// IsActive holds the value of the "is_active" field.
	IsActive     bool `json:"is_active,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*CalendarConnection) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case calendarconnection.FieldIsActive:
			values[i] = new(sql.NullBool)
		case calendarconnection.FieldProvider, calendarconnection.FieldAccountEmail, calendarconnection.FieldRefreshTokenEnc, calendarconnection.FieldStatus:
			values[i] = new(sql.NullString)
		case calendarconnection.FieldCreatedAt, calendarconnection.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		case calendarconnection.FieldID, calendarconnection.FieldPracticeID, calendarconnection.FieldStaffID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the CalendarConnection fields.
func (_m *CalendarConnection) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case calendarconnection.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case calendarconnection.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case calendarconnection.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		case calendarconnection.FieldPracticeID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field practice_id", values[i])
			} else if value != nil {
				_m.PracticeID = *value
			}
		case calendarconnection.FieldStaffID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field staff_id", values[i])
			} else if value != nil {
				_m.StaffID = *value
			}
		case calendarconnection.FieldProvider:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field provider", values[i])
			} else if value.Valid {
				_m.Provider = calendarconnection.Provider(value.String)
			}
		case calendarconnection.FieldAccountEmail:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field account_email", values[i])
			} else if value.Valid {
				_m.AccountEmail = value.String
			}
		case calendarconnection.FieldRefreshTokenEnc:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field refresh_token_enc", values[i])
			} else if value.Valid {
				_m.RefreshTokenEnc = value.String
			}
		case calendarconnection.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = calendarconnection.Status(value.String)
			}
		case calendarconnection.FieldIsActive:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field is_active", values[i])
			} else if value.Valid {
				_m.IsActive = value.Bool
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the CalendarConnection.
// This includes values selected through modifiers, order, etc.
func (_m *CalendarConnection) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this CalendarConnection.
// Note that you need to call CalendarConnection.Unwrap() before calling this method if this CalendarConnection
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *CalendarConnection) Update() *CalendarConnectionUpdateOne {
	return NewCalendarConnectionClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the CalendarConnection entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *CalendarConnection) Unwrap() *CalendarConnection {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("repo: CalendarConnection is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *CalendarConnection) String() string {
	var builder strings.Builder
	builder.WriteString("CalendarConnection(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("practice_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.PracticeID))
	builder.WriteString(", ")
	builder.WriteString("staff_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.StaffID))
	builder.WriteString(", ")
	builder.WriteString("provider=")
	builder.WriteString(fmt.Sprintf("%v", _m.Provider))
	builder.WriteString(", ")
	builder.WriteString("account_email=")
	builder.WriteString(_m.AccountEmail)
	builder.WriteString(", ")
	builder.WriteString("refresh_token_enc=<sensitive>")
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	builder.WriteString("is_active=")
	builder.WriteString(fmt.Sprintf("%v", _m.IsActive))
	builder.WriteByte(')')
	return builder.String()
}

// CalendarConnections is a parsable slice of CalendarConnection.
type CalendarConnections []*CalendarConnection
