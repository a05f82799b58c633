// Code generated by ent, DO NOT EDIT.

package appointmentseries

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the appointmentseries type in the database.
	Label = "appointment_series"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// FieldPracticeID holds the string denoting the practice_id field in the database.
	FieldPracticeID = "practice_id"
	// FieldStaffID holds the string denoting the staff_id field in the database.
	FieldStaffID = "staff_id"
	// FieldClientID holds the string denoting the client_id field in the database.
	FieldClientID = "client_id"
	// FieldTitle holds the string denoting the title field in the database.
	FieldTitle = "title"
	// FieldRrule holds the string denoting the rrule field in the database.
	FieldRrule = "rrule"
	// FieldSeriesStartDate holds the string denoting the series_start_date field in the database.
	FieldSeriesStartDate = "series_start_date"
	// FieldStartHour holds the string denoting the start_hour field in the database.
	FieldStartHour = "start_hour"
	// FieldStartMinute holds the string denoting the start_minute field in the database.
	FieldStartMinute = "start_minute"
	// FieldDurationMinutes holds the string denoting the duration_minutes field in the database.
	FieldDurationMinutes = "duration_minutes"
	// FieldTimezone holds the string denoting the timezone field in the database.
	FieldTimezone = "timezone"
	// FieldUntilDate holds the string denoting the until_date field in the database.
	FieldUntilDate = "until_date"
	// FieldGenerationCapDays holds the string denoting the generation_cap_days field in the database.
	FieldGenerationCapDays = "generation_cap_days"
	// FieldLastGeneratedUntil holds the string denoting the last_generated_until field in the database.
	FieldLastGeneratedUntil = "last_generated_until"
	// FieldCostEstimate holds the string denoting the cost_estimate field in the database.
	FieldCostEstimate = "cost_estimate"
	// FieldIsActive holds the string denoting the is_active field in the database.
	FieldIsActive = "is_active"
	// Table holds the table name of the appointmentseries in the database.
	Table = "appointment_series"
)

// Columns holds all SQL columns for appointmentseries fields.
var Columns = []string{
	FieldID,
	FieldCreatedAt,
	FieldUpdatedAt,
	FieldPracticeID,
	FieldStaffID,
	FieldClientID,
	FieldTitle,
	FieldRrule,
	FieldSeriesStartDate,
	FieldStartHour,
	FieldStartMinute,
	FieldDurationMinutes,
	FieldTimezone,
	FieldUntilDate,
	FieldGenerationCapDays,
	FieldLastGeneratedUntil,
	FieldCostEstimate,
	FieldIsActive,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
	// TitleValidator is a validator for the "title" field. It is called by the builders before save.
	TitleValidator func(string) error
	// RruleValidator is a validator for the "rrule" field. It is called by the builders before save.
	RruleValidator func(string) error
	// DefaultDurationMinutes holds the default value on creation for the "duration_minutes" field.
	DefaultDurationMinutes int
	// TimezoneValidator is a validator for the "timezone" field. It is called by the builders before save.
	TimezoneValidator func(string) error
	// DefaultIsActive holds the default value on creation for the "is_active" field.
	DefaultIsActive bool
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the AppointmentSeries queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByPracticeID orders the results by the practice_id field.
func ByPracticeID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPracticeID, opts...).ToFunc()
}

// ByStaffID orders the results by the staff_id field.
func ByStaffID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStaffID, opts...).ToFunc()
}

// ByClientID orders the results by the client_id field.
func ByClientID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldClientID, opts...).ToFunc()
}

// ByTitle orders the results by the title field.
func ByTitle(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTitle, opts...).ToFunc()
}

// ByRrule orders the results by the rrule field.
func ByRrule(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRrule, opts...).ToFunc()
}

// BySeriesStartDate orders the results by the series_start_date field.
func BySeriesStartDate(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSeriesStartDate, opts...).ToFunc()
}

// ByStartHour orders the results by the start_hour field.
func ByStartHour(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStartHour, opts...).ToFunc()
}

// ByStartMinute orders the results by the start_minute field.
func ByStartMinute(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStartMinute, opts...).ToFunc()
}

// ByDurationMinutes orders the results by the duration_minutes field.
func ByDurationMinutes(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDurationMinutes, opts...).ToFunc()
}

// ByTimezone orders the results by the timezone field.
func ByTimezone(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTimezone, opts...).ToFunc()
}

// ByUntilDate orders the results by the until_date field.
func ByUntilDate(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUntilDate, opts...).ToFunc()
}

// ByGenerationCapDays orders the results by the generation_cap_days field.
func ByGenerationCapDays(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldGenerationCapDays, opts...).ToFunc()
}

// ByLastGeneratedUntil orders the results by the last_generated_until field.
func ByLastGeneratedUntil(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastGeneratedUntil, opts...).ToFunc()
}

// ByCostEstimate orders the results by the cost_estimate field.
func ByCostEstimate(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCostEstimate, opts...).ToFunc()
}

// ByIsActive orders the results by the is_active field.
func ByIsActive(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIsActive, opts...).ToFunc()
}
