// Code generated by ent, DO NOT EDIT.

package repo

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/juniperhealth/juniper_backend/internal/repo/calendarwatchchannel"
)

// CalendarWatchChannel is the model entity for the CalendarWatchChannel schema.
type CalendarWatchChannel struct {
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
	Provider calendarwatchchannel.Provider `json:"provider,omitempty"`
	// Identifier we handed the provider at watch time
	ChannelID string `json:"channel_id,omitempty"`
	// Provider-assigned resource identifier
	ResourceID *string `json:"resource_id,omitempty"`
	// ProviderCalendarID holds the value of the "provider_calendar_id" field.
	ProviderCalendarID string `json:"provider_calendar_id,omitempty"`
	// Incremental fetch cursor; cleared when the provider reports it expired
	SyncToken *string `json:"sync_token,omitempty"`
	// ExpiresAt holds the value of the "expires_at" field.
	ExpiresAt    *time.Time `json:"expires_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*CalendarWatchChannel) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case calendarwatchchannel.FieldProvider, calendarwatchchannel.FieldChannelID, calendarwatchchannel.FieldResourceID, calendarwatchchannel.FieldProviderCalendarID, calendarwatchchannel.FieldSyncToken:
			values[i] = new(sql.NullString)
		case calendarwatchchannel.FieldCreatedAt, calendarwatchchannel.FieldUpdatedAt, calendarwatchchannel.FieldExpiresAt:
			values[i] = new(sql.NullTime)
		case calendarwatchchannel.FieldID, calendarwatchchannel.FieldPracticeID, calendarwatchchannel.FieldStaffID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the CalendarWatchChannel fields.
func (_m *CalendarWatchChannel) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case calendarwatchchannel.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case calendarwatchchannel.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case calendarwatchchannel.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		case calendarwatchchannel.FieldPracticeID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field practice_id", values[i])
			} else if value != nil {
				_m.PracticeID = *value
			}
		case calendarwatchchannel.FieldStaffID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field staff_id", values[i])
			} else if value != nil {
				_m.StaffID = *value
			}
		case calendarwatchchannel.FieldProvider:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field provider", values[i])
			} else if value.Valid {
				_m.Provider = calendarwatchchannel.Provider(value.String)
			}
		case calendarwatchchannel.FieldChannelID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field channel_id", values[i])
			} else if value.Valid {
				_m.ChannelID = value.String
			}
		case calendarwatchchannel.FieldResourceID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field resource_id", values[i])
			} else if value.Valid {
				_m.ResourceID = new(string)
				*_m.ResourceID = value.String
			}
		case calendarwatchchannel.FieldProviderCalendarID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field provider_calendar_id", values[i])
			} else if value.Valid {
				_m.ProviderCalendarID = value.String
			}
		case calendarwatchchannel.FieldSyncToken:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field sync_token", values[i])
			} else if value.Valid {
				_m.SyncToken = new(string)
				*_m.SyncToken = value.String
			}
		case calendarwatchchannel.FieldExpiresAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field expires_at", values[i])
			} else if value.Valid {
				_m.ExpiresAt = new(time.Time)
				*_m.ExpiresAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the CalendarWatchChannel.
// This includes values selected through modifiers, order, etc.
func (_m *CalendarWatchChannel) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this CalendarWatchChannel.
// Note that you need to call CalendarWatchChannel.Unwrap() before calling this method if this CalendarWatchChannel
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *CalendarWatchChannel) Update() *CalendarWatchChannelUpdateOne {
	return NewCalendarWatchChannelClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the CalendarWatchChannel entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *CalendarWatchChannel) Unwrap() *CalendarWatchChannel {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("repo: CalendarWatchChannel is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *CalendarWatchChannel) String() string {
	var builder strings.Builder
	builder.WriteString("CalendarWatchChannel(")
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
	builder.WriteString("channel_id=")
	builder.WriteString(_m.ChannelID)
	builder.WriteString(", ")
	if v := _m.ResourceID; v != nil {
		builder.WriteString("resource_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("provider_calendar_id=")
	builder.WriteString(_m.ProviderCalendarID)
	builder.WriteString(", ")
	if v := _m.SyncToken; v != nil {
		builder.WriteString("sync_token=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.ExpiresAt; v != nil {
		builder.WriteString("expires_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteByte(')')
	return builder.String()
}

// CalendarWatchChannels is a parsable slice of CalendarWatchChannel.
type CalendarWatchChannels []*CalendarWatchChannel
