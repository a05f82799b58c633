// Code generated by ent, DO NOT EDIT.

package repo

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/juniperhealth/juniper_backend/internal/repo/appointmentseries"
)

// AppointmentSeries is the model entity for the AppointmentSeries schema.
type AppointmentSeries struct {
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
	// FK → client_profiles.id
	ClientID uuid.UUID `json:"client_id,omitempty"`
	// Title holds the value of the "title" field.
	Title string `json:"title,omitempty"`
	// Recurrence rule, e.g. "FREQ=WEEKLY;INTERVAL=1"
	Rrule string `json:"rrule,omitempty"`
	// First day the series exists; local date in the series timezone
	SeriesStartDate time.Time `json:"series_start_date,omitempty"`
	// Local time-of-day of each occurrence
	StartHour int8 `json:"start_hour,omitempty"`
	// StartMinute holds the value of the "start_minute" field.
	StartMinute int8 `json:"start_minute,omitempty"`
	// DurationMinutes holds the value of the "duration_minutes" field.
	DurationMinutes int `json:"duration_minutes,omitempty"`
	// IANA zone the recurrence is evaluated in
	Timezone string `json:"timezone,omitempty"`
	// Hard stop; no occurrences after this date. Nil = open-ended
	UntilDate *time.Time `json:"until_date,omitempty"`
	// Occurrences are never generated beyond now + this many days
	GenerationCapDays *int `json:"generation_cap_days,omitempty"`
	// UTC watermark up to which rows are known to be materialized
	LastGeneratedUntil *time.Time `json:"last_generated_until,omitempty"`
	// Copied onto generated occurrences, in cents
	CostEstimate *int64 `json:"cost_estimate,omitempty"`
	// IsActive holds the value of the "is_active" field.
	IsActive     bool `json:"is_active,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*AppointmentSeries) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case appointmentseries.FieldIsActive:
			values[i] = new(sql.NullBool)
		case appointmentseries.FieldStartHour, appointmentseries.FieldStartMinute, appointmentseries.FieldDurationMinutes, appointmentseries.FieldGenerationCapDays, appointmentseries.FieldCostEstimate:
			values[i] = new(sql.NullInt64)
		case appointmentseries.FieldTitle, appointmentseries.FieldRrule, appointmentseries.FieldTimezone:
			values[i] = new(sql.NullString)
		case appointmentseries.FieldCreatedAt, appointmentseries.FieldUpdatedAt, appointmentseries.FieldSeriesStartDate, appointmentseries.FieldUntilDate, appointmentseries.FieldLastGeneratedUntil:
			values[i] = new(sql.NullTime)
		case appointmentseries.FieldID, appointmentseries.FieldPracticeID, appointmentseries.FieldStaffID, appointmentseries.FieldClientID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the AppointmentSeries fields.
func (_m *AppointmentSeries) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case appointmentseries.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case appointmentseries.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case appointmentseries.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		case appointmentseries.FieldPracticeID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field practice_id", values[i])
			} else if value != nil {
				_m.PracticeID = *value
			}
		case appointmentseries.FieldStaffID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field staff_id", values[i])
			} else if value != nil {
				_m.StaffID = *value
			}
		case appointmentseries.FieldClientID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field client_id", values[i])
			} else if value != nil {
				_m.ClientID = *value
			}
		case appointmentseries.FieldTitle:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field title", values[i])
			} else if value.Valid {
				_m.Title = value.String
			}
		case appointmentseries.FieldRrule:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field rrule", values[i])
			} else if value.Valid {
				_m.Rrule = value.String
			}
		case appointmentseries.FieldSeriesStartDate:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field series_start_date", values[i])
			} else if value.Valid {
				_m.SeriesStartDate = value.Time
			}
		case appointmentseries.FieldStartHour:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field start_hour", values[i])
			} else if value.Valid {
				_m.StartHour = int8(value.Int64)
			}
		case appointmentseries.FieldStartMinute:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field start_minute", values[i])
			} else if value.Valid {
				_m.StartMinute = int8(value.Int64)
			}
		case appointmentseries.FieldDurationMinutes:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field duration_minutes", values[i])
			} else if value.Valid {
				_m.DurationMinutes = int(value.Int64)
			}
		case appointmentseries.FieldTimezone:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field timezone", values[i])
			} else if value.Valid {
				_m.Timezone = value.String
			}
		case appointmentseries.FieldUntilDate:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field until_date", values[i])
			} else if value.Valid {
				_m.UntilDate = new(time.Time)
				*_m.UntilDate = value.Time
			}
		case appointmentseries.FieldGenerationCapDays:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field generation_cap_days", values[i])
			} else if value.Valid {
				_m.GenerationCapDays = new(int)
				*_m.GenerationCapDays = int(value.Int64)
			}
		case appointmentseries.FieldLastGeneratedUntil:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field last_generated_until", values[i])
			} else if value.Valid {
				_m.LastGeneratedUntil = new(time.Time)
				*_m.LastGeneratedUntil = value.Time
			}
		case appointmentseries.FieldCostEstimate:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field cost_estimate", values[i])
			} else if value.Valid {
				_m.CostEstimate = new(int64)
				*_m.CostEstimate = value.Int64
			}
		case appointmentseries.FieldIsActive:
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

// Value returns the ent.Value that was dynamically selected and assigned to the AppointmentSeries.
// This includes values selected through modifiers, order, etc.
func (_m *AppointmentSeries) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this AppointmentSeries.
// Note that you need to call AppointmentSeries.Unwrap() before calling this method if this AppointmentSeries
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *AppointmentSeries) Update() *AppointmentSeriesUpdateOne {
	return NewAppointmentSeriesClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the AppointmentSeries entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *AppointmentSeries) Unwrap() *AppointmentSeries {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("repo: AppointmentSeries is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *AppointmentSeries) String() string {
	var builder strings.Builder
	builder.WriteString("AppointmentSeries(")
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
	builder.WriteString("client_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.ClientID))
	builder.WriteString(", ")
	builder.WriteString("title=")
	builder.WriteString(_m.Title)
	builder.WriteString(", ")
	builder.WriteString("rrule=")
	builder.WriteString(_m.Rrule)
	builder.WriteString(", ")
	builder.WriteString("series_start_date=")
	builder.WriteString(_m.SeriesStartDate.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("start_hour=")
	builder.WriteString(fmt.Sprintf("%v", _m.StartHour))
	builder.WriteString(", ")
	builder.WriteString("start_minute=")
	builder.WriteString(fmt.Sprintf("%v", _m.StartMinute))
	builder.WriteString(", ")
	builder.WriteString("duration_minutes=")
	builder.WriteString(fmt.Sprintf("%v", _m.DurationMinutes))
	builder.WriteString(", ")
	builder.WriteString("timezone=")
	builder.WriteString(_m.Timezone)
	builder.WriteString(", ")
	if v := _m.UntilDate; v != nil {
		builder.WriteString("until_date=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.GenerationCapDays; v != nil {
		builder.WriteString("generation_cap_days=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.LastGeneratedUntil; v != nil {
		builder.WriteString("last_generated_until=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.CostEstimate; v != nil {
		builder.WriteString("cost_estimate=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("is_active=")
	builder.WriteString(fmt.Sprintf("%v", _m.IsActive))
	builder.WriteByte(')')
	return builder.String()
}

// AppointmentSeriesSlice is a parsable slice of AppointmentSeries.
type AppointmentSeriesSlice []*AppointmentSeries
