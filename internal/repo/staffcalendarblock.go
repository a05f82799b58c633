// Code generated by ent, DO NOT EDIT.

package repo

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/juniperhealth/juniper_backend/internal/repo/staffcalendarblock"
)

// StaffCalendarBlock is the model entity for the StaffCalendarBlock schema.
type StaffCalendarBlock struct {
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
	// Source holds the value of the "source" field.
	Source staffcalendarblock.Source `json:"source,omitempty"`
	// Provider event id; the idempotency key for upsert/delete
	ExternalEventID string `json:"external_event_id,omitempty"`
	// UTC
	StartTime time.Time `json:"start_time,omitempty"`
	// UTC
	EndTime time.Time `json:"end_time,omitempty"`
	// Never carries event content; always the literal Busy
	Label        string `json:"label,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*StaffCalendarBlock) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case staffcalendarblock.FieldSource, staffcalendarblock.FieldExternalEventID, staffcalendarblock.FieldLabel:
			values[i] = new(sql.NullString)
		case staffcalendarblock.FieldCreatedAt, staffcalendarblock.FieldUpdatedAt, staffcalendarblock.FieldStartTime, staffcalendarblock.FieldEndTime:
			values[i] = new(sql.NullTime)
		case staffcalendarblock.FieldID, staffcalendarblock.FieldPracticeID, staffcalendarblock.FieldStaffID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the StaffCalendarBlock fields.
func (_m *StaffCalendarBlock) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case staffcalendarblock.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case staffcalendarblock.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case staffcalendarblock.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		case staffcalendarblock.FieldPracticeID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field practice_id", values[i])
			} else if value != nil {
				_m.PracticeID = *value
			}
		case staffcalendarblock.FieldStaffID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field staff_id", values[i])
			} else if value != nil {
				_m.StaffID = *value
			}
		case staffcalendarblock.FieldSource:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field source", values[i])
			} else if value.Valid {
				_m.Source = staffcalendarblock.Source(value.String)
			}
		case staffcalendarblock.FieldExternalEventID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field external_event_id", values[i])
			} else if value.Valid {
				_m.ExternalEventID = value.String
			}
		case staffcalendarblock.FieldStartTime:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field start_time", values[i])
			} else if value.Valid {
				_m.StartTime = value.Time
			}
		case staffcalendarblock.FieldEndTime:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field end_time", values[i])
			} else if value.Valid {
				_m.EndTime = value.Time
			}
		case staffcalendarblock.FieldLabel:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field label", values[i])
			} else if value.Valid {
				_m.Label = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the StaffCalendarBlock.
// This includes values selected through modifiers, order, etc.
func (_m *StaffCalendarBlock) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this StaffCalendarBlock.
// Note that you need to call StaffCalendarBlock.Unwrap() before calling this method if this StaffCalendarBlock
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *StaffCalendarBlock) Update() *StaffCalendarBlockUpdateOne {
	return NewStaffCalendarBlockClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the StaffCalendarBlock entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *StaffCalendarBlock) Unwrap() *StaffCalendarBlock {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("repo: StaffCalendarBlock is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *StaffCalendarBlock) String() string {
	var builder strings.Builder
	builder.WriteString("StaffCalendarBlock(")
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
	builder.WriteString("source=")
	builder.WriteString(fmt.Sprintf("%v", _m.Source))
	builder.WriteString(", ")
	builder.WriteString("external_event_id=")
	builder.WriteString(_m.ExternalEventID)
	builder.WriteString(", ")
	builder.WriteString("start_time=")
	builder.WriteString(_m.StartTime.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("end_time=")
	builder.WriteString(_m.EndTime.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("label=")
	builder.WriteString(_m.Label)
	builder.WriteByte(')')
	return builder.String()
}

// StaffCalendarBlocks is a parsable slice of StaffCalendarBlock.
type StaffCalendarBlocks []*StaffCalendarBlock
