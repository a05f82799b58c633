// Code generated by ent, DO NOT EDIT.

package appointmentseries

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/juniperhealth/juniper_backend/internal/repo/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.AppointmentSeries {
	return predicate.AppointmentSeries(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.AppointmentSeries {
	return predicate.AppointmentSeries(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.AppointmentSeries {
	return predicate.AppointmentSeries(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.AppointmentSeries {
	return predicate.AppointmentSeries(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.AppointmentSeries {
	return predicate.AppointmentSeries(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.AppointmentSeries {
	return predicate.AppointmentSeries(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.AppointmentSeries {
	return predicate.AppointmentSeries(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.AppointmentSeries {
	return predicate.AppointmentSeries(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.AppointmentSeries {
	return predicate.AppointmentSeries(sql.FieldLTE(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.AppointmentSeries {
	return predicate.AppointmentSeries(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.AppointmentSeries {
	return predicate.AppointmentSeries(sql.FieldEQ(FieldUpdatedAt, v))
}

// PracticeID applies equality check predicate on the "practice_id" field. It's identical to PracticeIDEQ.
func PracticeID(v uuid.UUID) predicate.AppointmentSeries {
	return predicate.AppointmentSeries(sql.FieldEQ(FieldPracticeID, v))
}

// StaffID applies equality check predicate on the "staff_id" field. It's identical to StaffIDEQ.
func StaffID(v uuid.UUID) predicate.AppointmentSeries {
	return predicate.AppointmentSeries(sql.FieldEQ(FieldStaffID, v))
}

// ClientID applies equality check predicate on the "client_id" field. It's identical to ClientIDEQ.
func ClientID(v uuid.UUID) predicate.AppointmentSeries {
	return predicate.AppointmentSeries(sql.FieldEQ(FieldClientID, v))
}

// Title applies equality check predicate on the "title" field. It's identical to TitleEQ.
func Title(v string) predicate.AppointmentSeries {
	return predicate.AppointmentSeries(sql.FieldEQ(FieldTitle, v))
}

// Rrule applies equality check predicate on the "rrule" field. It's identical to RruleEQ.
func Rrule(v string) predicate.AppointmentSeries {
	return predicate.AppointmentSeries(sql.FieldEQ(FieldRrule, v))
}

// SeriesStartDate applies equality check predicate on the "series_start_date" field. It's identical to SeriesStartDateEQ.
func SeriesStartDate(v time.Time) predicate.AppointmentSeries {
	return predicate.AppointmentSeries(sql.FieldEQ(FieldSeriesStartDate, v))
}

// StartHour applies equality check predicate on the "start_hour" field. It's identical to StartHourEQ.
func StartHour(v int8) predicate.AppointmentSeries {
	return predicate.AppointmentSeries(sql.FieldEQ(FieldStartHour, v))
}

// StartMinute applies equality check predicate on the "start_minute" field. It's identical to StartMinuteEQ.
func StartMinute(v int8) predicate.AppointmentSeries {
	return predicate.AppointmentSeries(sql.FieldEQ(FieldStartMinute, v))
}

// DurationMinutes applies equality check predicate on the "duration_minutes" field. It's identical to DurationMinutesEQ.
func DurationMinutes(v int) predicate.AppointmentSeries {
	return predicate.AppointmentSeries(sql.FieldEQ(FieldDurationMinutes, v))
}

// Timezone applies equality check predicate on the "timezone" field. It's identical to TimezoneEQ.
func Timezone(v string) predicate.AppointmentSeries {
	return predicate.AppointmentSeries(sql.FieldEQ(FieldTimezone, v))
}

// UntilDate applies equality check predicate on the "until_date" field. It's identical to UntilDateEQ.
func UntilDate(v time.Time) predicate.AppointmentSeries {
	return predicate.AppointmentSeries(sql.FieldEQ(FieldUntilDate, v))
}

// GenerationCapDays applies equality check predicate on the "generation_cap_days" field. It's identical to GenerationCapDaysEQ.
func GenerationCapDays(v int) predicate.AppointmentSeries {
	return predicate.AppointmentSeries(sql.FieldEQ(FieldGenerationCapDays, v))
}

// LastGeneratedUntil applies equality check predicate on the "last_generated_until" field. It's identical to LastGeneratedUntilEQ.
func LastGeneratedUntil(v time.Time) predicate.AppointmentSeries {
	return predicate.AppointmentSeries(sql.FieldEQ(FieldLastGeneratedUntil, v))
}

// CostEstimate applies equality check predicate on the "cost_estimate" field. It's identical to CostEstimateEQ.
func CostEstimate(v int64) predicate.AppointmentSeries {
	return predicate.AppointmentSeries(sql.FieldEQ(FieldCostEstimate, v))
}

// IsActive applies equality check predicate on the "is_active" field. It's identical to IsActiveEQ.
func IsActive(v bool) predicate.AppointmentSeries {
	return predicate.AppointmentSeries(sql.FieldEQ(FieldIsActive, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.AppointmentSeries {
	return predicate.AppointmentSeries(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.AppointmentSeries {
	return predicate.AppointmentSeries(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.AppointmentSeries {
	return predicate.AppointmentSeries(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.AppointmentSeries {
	return predicate.AppointmentSeries(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.AppointmentSeries {
	return predicate.AppointmentSeries(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.AppointmentSeries {
	return predicate.AppointmentSeries(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.AppointmentSeries {
	return predicate.AppointmentSeries(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.AppointmentSeries {
	return predicate.AppointmentSeries(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.AppointmentSeries {
	return predicate.AppointmentSeries(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.AppointmentSeries {
	return predicate.AppointmentSeries(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.AppointmentSeries {
	return predicate.AppointmentSeries(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.AppointmentSeries {
	return predicate.AppointmentSeries(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.AppointmentSeries {
	return predicate.AppointmentSeries(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.AppointmentSeries {
	return predicate.AppointmentSeries(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.AppointmentSeries {
	return predicate.AppointmentSeries(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.AppointmentSeries {
	return predicate.AppointmentSeries(sql.FieldLTE(FieldUpdatedAt, v))
}

// PracticeIDEQ applies the EQ predicate on the "practice_id" field.
func PracticeIDEQ(v uuid.UUID) predicate.AppointmentSeries {
	return predicate.AppointmentSeries(sql.FieldEQ(FieldPracticeID, v))
}

// PracticeIDNEQ applies the NEQ predicate on the "practice_id" field.
func PracticeIDNEQ(v uuid.UUID) predicate.AppointmentSeries {
	return predicate.AppointmentSeries(sql.FieldNEQ(FieldPracticeID, v))
}

// PracticeIDIn applies the In predicate on the "practice_id" field.
func PracticeIDIn(vs ...uuid.UUID) predicate.AppointmentSeries {
	return predicate.AppointmentSeries(sql.FieldIn(FieldPracticeID, vs...))
}

// PracticeIDNotIn applies the NotIn predicate on the "practice_id" field.
func PracticeIDNotIn(vs ...uuid.UUID) predicate.AppointmentSeries {
	return predicate.AppointmentSeries(sql.FieldNotIn(FieldPracticeID, vs...))
}

// PracticeIDGT applies the GT predicate on the "practice_id" field.
func PracticeIDGT(v uuid.UUID) predicate.AppointmentSeries {
	return predicate.AppointmentSeries(sql.FieldGT(FieldPracticeID, v))
}

// PracticeIDGTE applies the GTE predicate on the "practice_id" field.
func PracticeIDGTE(v uuid.UUID) predicate.AppointmentSeries {
	return predicate.AppointmentSeries(sql.FieldGTE(FieldPracticeID, v))
}

// PracticeIDLT applies the LT predicate on the "practice_id" field.
func PracticeIDLT(v uuid.UUID) predicate.AppointmentSeries {
	return predicate.AppointmentSeries(sql.FieldLT(FieldPracticeID, v))
}

// PracticeIDLTE applies the LTE predicate on the "practice_id" field.
func PracticeIDLTE(v uuid.UUID) predicate.AppointmentSeries {
	return predicate.AppointmentSeries(sql.FieldLTE(FieldPracticeID, v))
}

// StaffIDEQ applies the EQ predicate on the "staff_id" field.
func StaffIDEQ(v uuid.UUID) predicate.AppointmentSeries {
	return predicate.AppointmentSeries(sql.FieldEQ(FieldStaffID, v))
}

// StaffIDNEQ applies the NEQ predicate on the "staff_id" field.
func StaffIDNEQ(v uuid.UUID) predicate.AppointmentSeries {
	return predicate.AppointmentSeries(sql.FieldNEQ(FieldStaffID, v))
}

// StaffIDIn applies the In predicate on the "staff_id" field.
func StaffIDIn(vs ...uuid.UUID) predicate.AppointmentSeries {
	return predicate.AppointmentSeries(sql.FieldIn(FieldStaffID, vs...))
}

// StaffIDNotIn applies the NotIn predicate on the "staff_id" field.
func StaffIDNotIn(vs ...uuid.UUID) predicate.AppointmentSeries {
	return predicate.AppointmentSeries(sql.FieldNotIn(FieldStaffID, vs...))
}

// StaffIDGT applies the GT predicate on the "staff_id" field.
func StaffIDGT(v uuid.UUID) predicate.AppointmentSeries {
	return predicate.AppointmentSeries(sql.FieldGT(FieldStaffID, v))
}

// StaffIDGTE applies the GTE predicate on the "staff_id" field.
func StaffIDGTE(v uuid.UUID) predicate.AppointmentSeries {
	return predicate.AppointmentSeries(sql.FieldGTE(FieldStaffID, v))
}

// StaffIDLT applies the LT predicate on the "staff_id" field.
func StaffIDLT(v uuid.UUID) predicate.AppointmentSeries {
	return predicate.AppointmentSeries(sql.FieldLT(FieldStaffID, v))
}

// StaffIDLTE applies the LTE predicate on the "staff_id" field.
func StaffIDLTE(v uuid.UUID) predicate.AppointmentSeries {
	return predicate.AppointmentSeries(sql.FieldLTE(FieldStaffID, v))
}

// ClientIDEQ applies the EQ predicate on the "client_id" field.
func ClientIDEQ(v uuid.UUID) predicate.AppointmentSeries {
	return predicate.AppointmentSeries(sql.FieldEQ(FieldClientID, v))
}

// ClientIDNEQ applies the NEQ predicate on the "client_id" field.
func ClientIDNEQ(v uuid.UUID) predicate.AppointmentSeries {
	return predicate.AppointmentSeries(sql.FieldNEQ(FieldClientID, v))
}

// ClientIDIn applies the In predicate on the "client_id" field.
func ClientIDIn(vs ...uuid.UUID) predicate.AppointmentSeries {
	return predicate.AppointmentSeries(sql.FieldIn(FieldClientID, vs...))
}

// ClientIDNotIn applies the NotIn predicate on the "client_id" field.
func ClientIDNotIn(vs ...uuid.UUID) predicate.AppointmentSeries {
	return predicate.AppointmentSeries(sql.FieldNotIn(FieldClientID, vs...))
}

// ClientIDGT applies the GT predicate on the "client_id" field.
func ClientIDGT(v uuid.UUID) predicate.AppointmentSeries {
	return predicate.AppointmentSeries(sql.FieldGT(FieldClientID, v))
}

// ClientIDGTE applies the GTE predicate on the "client_id" field.
func ClientIDGTE(v uuid.UUID) predicate.AppointmentSeries {
	return predicate.AppointmentSeries(sql.FieldGTE(FieldClientID, v))
}

// ClientIDLT applies the LT predicate on the "client_id" field.
func ClientIDLT(v uuid.UUID) predicate.AppointmentSeries {
	return predicate.AppointmentSeries(sql.FieldLT(FieldClientID, v))
}

// ClientIDLTE applies the LTE predicate on the "client_id" field.
func ClientIDLTE(v uuid.UUID) predicate.AppointmentSeries {
	return predicate.AppointmentSeries(sql.FieldLTE(FieldClientID, v))
}

// TitleEQ applies the EQ predicate on the "title" field.
func TitleEQ(v string) predicate.AppointmentSeries {
	return predicate.AppointmentSeries(sql.FieldEQ(FieldTitle, v))
}

// TitleNEQ applies the NEQ predicate on the "title" field.
func TitleNEQ(v string) predicate.AppointmentSeries {
	return predicate.AppointmentSeries(sql.FieldNEQ(FieldTitle, v))
}

// TitleIn applies the In predicate on the "title" field.
func TitleIn(vs ...string) predicate.AppointmentSeries {
	return predicate.AppointmentSeries(sql.FieldIn(FieldTitle, vs...))
}

// TitleNotIn applies the NotIn predicate on the "title" field.
func TitleNotIn(vs ...string) predicate.AppointmentSeries {
	return predicate.AppointmentSeries(sql.FieldNotIn(FieldTitle, vs...))
}

// TitleGT applies the GT predicate on the "title" field.
func TitleGT(v string) predicate.AppointmentSeries {
	return predicate.AppointmentSeries(sql.FieldGT(FieldTitle, v))
}

// TitleGTE applies the GTE predicate on the "title" field.
func TitleGTE(v string) predicate.AppointmentSeries {
	return predicate.AppointmentSeries(sql.FieldGTE(FieldTitle, v))
}

// TitleLT applies the LT predicate on the "title" field.
func TitleLT(v string) predicate.AppointmentSeries {
	return predicate.AppointmentSeries(sql.FieldLT(FieldTitle, v))
}

// TitleLTE applies the LTE predicate on the "title" field.
func TitleLTE(v string) predicate.AppointmentSeries {
	return predicate.AppointmentSeries(sql.FieldLTE(FieldTitle, v))
}

// TitleContains applies the Contains predicate on the "title" field.
func TitleContains(v string) predicate.AppointmentSeries {
	return predicate.AppointmentSeries(sql.FieldContains(FieldTitle, v))
}

// TitleHasPrefix applies the HasPrefix predicate on the "title" field.
func TitleHasPrefix(v string) predicate.AppointmentSeries {
	return predicate.AppointmentSeries(sql.FieldHasPrefix(FieldTitle, v))
}

// TitleHasSuffix applies the HasSuffix predicate on the "title" field.
func TitleHasSuffix(v string) predicate.AppointmentSeries {
	return predicate.AppointmentSeries(sql.FieldHasSuffix(FieldTitle, v))
}

// TitleEqualFold applies the EqualFold predicate on the "title" field.
func TitleEqualFold(v string) predicate.AppointmentSeries {
	return predicate.AppointmentSeries(sql.FieldEqualFold(FieldTitle, v))
}

// TitleContainsFold applies the ContainsFold predicate on the "title" field.
func TitleContainsFold(v string) predicate.AppointmentSeries {
	return predicate.AppointmentSeries(sql.FieldContainsFold(FieldTitle, v))
}

// RruleEQ applies the EQ predicate on the "rrule" field.
func RruleEQ(v string) predicate.AppointmentSeries {
	return predicate.AppointmentSeries(sql.FieldEQ(FieldRrule, v))
}

// RruleNEQ applies the NEQ predicate on the "rrule" field.
func RruleNEQ(v string) predicate.AppointmentSeries {
	return predicate.AppointmentSeries(sql.FieldNEQ(FieldRrule, v))
}

// RruleIn applies the In predicate on the "rrule" field.
func RruleIn(vs ...string) predicate.AppointmentSeries {
	return predicate.AppointmentSeries(sql.FieldIn(FieldRrule, vs...))
}

// RruleNotIn applies the NotIn predicate on the "rrule" field.
func RruleNotIn(vs ...string) predicate.AppointmentSeries {
	return predicate.AppointmentSeries(sql.FieldNotIn(FieldRrule, vs...))
}

// RruleGT applies the GT predicate on the "rrule" field.
func RruleGT(v string) predicate.AppointmentSeries {
	return predicate.AppointmentSeries(sql.FieldGT(FieldRrule, v))
}

// RruleGTE applies the GTE predicate on the "rrule" field.
func RruleGTE(v string) predicate.AppointmentSeries {
	return predicate.AppointmentSeries(sql.FieldGTE(FieldRrule, v))
}

// RruleLT applies the LT predicate on the "rrule" field.
func RruleLT(v string) predicate.AppointmentSeries {
	return predicate.AppointmentSeries(sql.FieldLT(FieldRrule, v))
}

// RruleLTE applies the LTE predicate on the "rrule" field.
func RruleLTE(v string) predicate.AppointmentSeries {
	return predicate.AppointmentSeries(sql.FieldLTE(FieldRrule, v))
}

// RruleContains applies the Contains predicate on the "rrule" field.
func RruleContains(v string) predicate.AppointmentSeries {
	return predicate.AppointmentSeries(sql.FieldContains(FieldRrule, v))
}

// RruleHasPrefix applies the HasPrefix predicate on the "rrule" field.
func RruleHasPrefix(v string) predicate.AppointmentSeries {
	return predicate.AppointmentSeries(sql.FieldHasPrefix(FieldRrule, v))
}

// RruleHasSuffix applies the HasSuffix predicate on the "rrule" field.
func RruleHasSuffix(v string) predicate.AppointmentSeries {
	return predicate.AppointmentSeries(sql.FieldHasSuffix(FieldRrule, v))
}

// RruleEqualFold applies the EqualFold predicate on the "rrule" field.
func RruleEqualFold(v string) predicate.AppointmentSeries {
	return predicate.AppointmentSeries(sql.FieldEqualFold(FieldRrule, v))
}

// RruleContainsFold applies the ContainsFold predicate on the "rrule" field.
func RruleContainsFold(v string) predicate.AppointmentSeries {
	return predicate.AppointmentSeries(sql.FieldContainsFold(FieldRrule, v))
}

// SeriesStartDateEQ applies the EQ predicate on the "series_start_date" field.
func SeriesStartDateEQ(v time.Time) predicate.AppointmentSeries {
	return predicate.AppointmentSeries(sql.FieldEQ(FieldSeriesStartDate, v))
}

// SeriesStartDateNEQ applies the NEQ predicate on the "series_start_date" field.
func SeriesStartDateNEQ(v time.Time) predicate.AppointmentSeries {
	return predicate.AppointmentSeries(sql.FieldNEQ(FieldSeriesStartDate, v))
}

// SeriesStartDateIn applies the In predicate on the "series_start_date" field.
func SeriesStartDateIn(vs ...time.Time) predicate.AppointmentSeries {
	return predicate.AppointmentSeries(sql.FieldIn(FieldSeriesStartDate, vs...))
}

// SeriesStartDateNotIn applies the NotIn predicate on the "series_start_date" field.
func SeriesStartDateNotIn(vs ...time.Time) predicate.AppointmentSeries {
	return predicate.AppointmentSeries(sql.FieldNotIn(FieldSeriesStartDate, vs...))
}

// SeriesStartDateGT applies the GT predicate on the "series_start_date" field.
func SeriesStartDateGT(v time.Time) predicate.AppointmentSeries {
	return predicate.AppointmentSeries(sql.FieldGT(FieldSeriesStartDate, v))
}

// SeriesStartDateGTE applies the GTE predicate on the "series_start_date" field.
func SeriesStartDateGTE(v time.Time) predicate.AppointmentSeries {
	return predicate.AppointmentSeries(sql.FieldGTE(FieldSeriesStartDate, v))
}

// SeriesStartDateLT applies the LT predicate on the "series_start_date" field.
func SeriesStartDateLT(v time.Time) predicate.AppointmentSeries {
	return predicate.AppointmentSeries(sql.FieldLT(FieldSeriesStartDate, v))
}

// SeriesStartDateLTE applies the LTE predicate on the "series_start_date" field.
func SeriesStartDateLTE(v time.Time) predicate.AppointmentSeries {
	return predicate.AppointmentSeries(sql.FieldLTE(FieldSeriesStartDate, v))
}

// StartHourEQ applies the EQ predicate on the "start_hour" field.
func StartHourEQ(v int8) predicate.AppointmentSeries {
	return predicate.AppointmentSeries(sql.FieldEQ(FieldStartHour, v))
}

// StartHourNEQ applies the NEQ predicate on the "start_hour" field.
func StartHourNEQ(v int8) predicate.AppointmentSeries {
	return predicate.AppointmentSeries(sql.FieldNEQ(FieldStartHour, v))
}

// StartHourIn applies the In predicate on the "start_hour" field.
func StartHourIn(vs ...int8) predicate.AppointmentSeries {
	return predicate.AppointmentSeries(sql.FieldIn(FieldStartHour, vs...))
}

// StartHourNotIn applies the NotIn predicate on the "start_hour" field.
func StartHourNotIn(vs ...int8) predicate.AppointmentSeries {
	return predicate.AppointmentSeries(sql.FieldNotIn(FieldStartHour, vs...))
}

// StartHourGT applies the GT predicate on the "start_hour" field.
func StartHourGT(v int8) predicate.AppointmentSeries {
	return predicate.AppointmentSeries(sql.FieldGT(FieldStartHour, v))
}

// StartHourGTE applies the GTE predicate on the "start_hour" field.
func StartHourGTE(v int8) predicate.AppointmentSeries {
	return predicate.AppointmentSeries(sql.FieldGTE(FieldStartHour, v))
}

// StartHourLT applies the LT predicate on the "start_hour" field.
func StartHourLT(v int8) predicate.AppointmentSeries {
	return predicate.AppointmentSeries(sql.FieldLT(FieldStartHour, v))
}

// StartHourLTE applies the LTE predicate on the "start_hour" field.
func StartHourLTE(v int8) predicate.AppointmentSeries {
	return predicate.AppointmentSeries(sql.FieldLTE(FieldStartHour, v))
}

// StartMinuteEQ applies the EQ predicate on the "start_minute" field.
func StartMinuteEQ(v int8) predicate.AppointmentSeries {
	return predicate.AppointmentSeries(sql.FieldEQ(FieldStartMinute, v))
}

// StartMinuteNEQ applies the NEQ predicate on the "start_minute" field.
func StartMinuteNEQ(v int8) predicate.AppointmentSeries {
	return predicate.AppointmentSeries(sql.FieldNEQ(FieldStartMinute, v))
}

// StartMinuteIn applies the In predicate on the "start_minute" field.
func StartMinuteIn(vs ...int8) predicate.AppointmentSeries {
	return predicate.AppointmentSeries(sql.FieldIn(FieldStartMinute, vs...))
}

// StartMinuteNotIn applies the NotIn predicate on the "start_minute" field.
func StartMinuteNotIn(vs ...int8) predicate.AppointmentSeries {
	return predicate.AppointmentSeries(sql.FieldNotIn(FieldStartMinute, vs...))
}

// StartMinuteGT applies the GT predicate on the "start_minute" field.
func StartMinuteGT(v int8) predicate.AppointmentSeries {
	return predicate.AppointmentSeries(sql.FieldGT(FieldStartMinute, v))
}

// StartMinuteGTE applies the GTE predicate on the "start_minute" field.
func StartMinuteGTE(v int8) predicate.AppointmentSeries {
	return predicate.AppointmentSeries(sql.FieldGTE(FieldStartMinute, v))
}

// StartMinuteLT applies the LT predicate on the "start_minute" field.
func StartMinuteLT(v int8) predicate.AppointmentSeries {
	return predicate.AppointmentSeries(sql.FieldLT(FieldStartMinute, v))
}

// StartMinuteLTE applies the LTE predicate on the "start_minute" field.
func StartMinuteLTE(v int8) predicate.AppointmentSeries {
	return predicate.AppointmentSeries(sql.FieldLTE(FieldStartMinute, v))
}

// DurationMinutesEQ applies the EQ predicate on the "duration_minutes" field.
func DurationMinutesEQ(v int) predicate.AppointmentSeries {
	return predicate.AppointmentSeries(sql.FieldEQ(FieldDurationMinutes, v))
}

// DurationMinutesNEQ applies the NEQ predicate on the "duration_minutes" field.
func DurationMinutesNEQ(v int) predicate.AppointmentSeries {
	return predicate.AppointmentSeries(sql.FieldNEQ(FieldDurationMinutes, v))
}

// DurationMinutesIn applies the In predicate on the "duration_minutes" field.
func DurationMinutesIn(vs ...int) predicate.AppointmentSeries {
	return predicate.AppointmentSeries(sql.FieldIn(FieldDurationMinutes, vs...))
}

// DurationMinutesNotIn applies the NotIn predicate on the "duration_minutes" field.
func DurationMinutesNotIn(vs ...int) predicate.AppointmentSeries {
	return predicate.AppointmentSeries(sql.FieldNotIn(FieldDurationMinutes, vs...))
}

// DurationMinutesGT applies the GT predicate on the "duration_minutes" field.
func DurationMinutesGT(v int) predicate.AppointmentSeries {
	return predicate.AppointmentSeries(sql.FieldGT(FieldDurationMinutes, v))
}

// DurationMinutesGTE applies the GTE predicate on the "duration_minutes" field.
func DurationMinutesGTE(v int) predicate.AppointmentSeries {
	return predicate.AppointmentSeries(sql.FieldGTE(FieldDurationMinutes, v))
}

// DurationMinutesLT applies the LT predicate on the "duration_minutes" field.
func DurationMinutesLT(v int) predicate.AppointmentSeries {
	return predicate.AppointmentSeries(sql.FieldLT(FieldDurationMinutes, v))
}

// DurationMinutesLTE applies the LTE predicate on the "duration_minutes" field.
func DurationMinutesLTE(v int) predicate.AppointmentSeries {
	return predicate.AppointmentSeries(sql.FieldLTE(FieldDurationMinutes, v))
}

// TimezoneEQ applies the EQ predicate on the "timezone" field.
func TimezoneEQ(v string) predicate.AppointmentSeries {
	return predicate.AppointmentSeries(sql.FieldEQ(FieldTimezone, v))
}

// TimezoneNEQ applies the NEQ predicate on the "timezone" field.
func TimezoneNEQ(v string) predicate.AppointmentSeries {
	return predicate.AppointmentSeries(sql.FieldNEQ(FieldTimezone, v))
}

// TimezoneIn applies the In predicate on the "timezone" field.
func TimezoneIn(vs ...string) predicate.AppointmentSeries {
	return predicate.AppointmentSeries(sql.FieldIn(FieldTimezone, vs...))
}

// TimezoneNotIn applies the NotIn predicate on the "timezone" field.
func TimezoneNotIn(vs ...string) predicate.AppointmentSeries {
	return predicate.AppointmentSeries(sql.FieldNotIn(FieldTimezone, vs...))
}

// TimezoneGT applies the GT predicate on the "timezone" field.
func TimezoneGT(v string) predicate.AppointmentSeries {
	return predicate.AppointmentSeries(sql.FieldGT(FieldTimezone, v))
}

// TimezoneGTE applies the GTE predicate on the "timezone" field.
func TimezoneGTE(v string) predicate.AppointmentSeries {
	return predicate.AppointmentSeries(sql.FieldGTE(FieldTimezone, v))
}

// TimezoneLT applies the LT predicate on the "timezone" field.
func TimezoneLT(v string) predicate.AppointmentSeries {
	return predicate.AppointmentSeries(sql.FieldLT(FieldTimezone, v))
}

// TimezoneLTE applies the LTE predicate on the "timezone" field.
func TimezoneLTE(v string) predicate.AppointmentSeries {
	return predicate.AppointmentSeries(sql.FieldLTE(FieldTimezone, v))
}

// TimezoneContains applies the Contains predicate on the "timezone" field.
func TimezoneContains(v string) predicate.AppointmentSeries {
	return predicate.AppointmentSeries(sql.FieldContains(FieldTimezone, v))
}

// TimezoneHasPrefix applies the HasPrefix predicate on the "timezone" field.
func TimezoneHasPrefix(v string) predicate.AppointmentSeries {
	return predicate.AppointmentSeries(sql.FieldHasPrefix(FieldTimezone, v))
}

// TimezoneHasSuffix applies the HasSuffix predicate on the "timezone" field.
func TimezoneHasSuffix(v string) predicate.AppointmentSeries {
	return predicate.AppointmentSeries(sql.FieldHasSuffix(FieldTimezone, v))
}

// TimezoneEqualFold applies the EqualFold predicate on the "timezone" field.
func TimezoneEqualFold(v string) predicate.AppointmentSeries {
	return predicate.AppointmentSeries(sql.FieldEqualFold(FieldTimezone, v))
}

// TimezoneContainsFold applies the ContainsFold predicate on the "timezone" field.
func TimezoneContainsFold(v string) predicate.AppointmentSeries {
	return predicate.AppointmentSeries(sql.FieldContainsFold(FieldTimezone, v))
}

// UntilDateEQ applies the EQ predicate on the "until_date" field.
func UntilDateEQ(v time.Time) predicate.AppointmentSeries {
	return predicate.AppointmentSeries(sql.FieldEQ(FieldUntilDate, v))
}

// UntilDateNEQ applies the NEQ predicate on the "until_date" field.
func UntilDateNEQ(v time.Time) predicate.AppointmentSeries {
	return predicate.AppointmentSeries(sql.FieldNEQ(FieldUntilDate, v))
}

// UntilDateIn applies the In predicate on the "until_date" field.
func UntilDateIn(vs ...time.Time) predicate.AppointmentSeries {
	return predicate.AppointmentSeries(sql.FieldIn(FieldUntilDate, vs...))
}

// UntilDateNotIn applies the NotIn predicate on the "until_date" field.
func UntilDateNotIn(vs ...time.Time) predicate.AppointmentSeries {
	return predicate.AppointmentSeries(sql.FieldNotIn(FieldUntilDate, vs...))
}

// UntilDateGT applies the GT predicate on the "until_date" field.
func UntilDateGT(v time.Time) predicate.AppointmentSeries {
	return predicate.AppointmentSeries(sql.FieldGT(FieldUntilDate, v))
}

// UntilDateGTE applies the GTE predicate on the "until_date" field.
func UntilDateGTE(v time.Time) predicate.AppointmentSeries {
	return predicate.AppointmentSeries(sql.FieldGTE(FieldUntilDate, v))
}

// UntilDateLT applies the LT predicate on the "until_date" field.
func UntilDateLT(v time.Time) predicate.AppointmentSeries {
	return predicate.AppointmentSeries(sql.FieldLT(FieldUntilDate, v))
}

// UntilDateLTE applies the LTE predicate on the "until_date" field.
func UntilDateLTE(v time.Time) predicate.AppointmentSeries {
	return predicate.AppointmentSeries(sql.FieldLTE(FieldUntilDate, v))
}

// UntilDateIsNil applies the IsNil predicate on the "until_date" field.
func UntilDateIsNil() predicate.AppointmentSeries {
	return predicate.AppointmentSeries(sql.FieldIsNull(FieldUntilDate))
}

// UntilDateNotNil applies the NotNil predicate on the "until_date" field.
func UntilDateNotNil() predicate.AppointmentSeries {
	return predicate.AppointmentSeries(sql.FieldNotNull(FieldUntilDate))
}

// GenerationCapDaysEQ applies the EQ predicate on the "generation_cap_days" field.
func GenerationCapDaysEQ(v int) predicate.AppointmentSeries {
	return predicate.AppointmentSeries(sql.FieldEQ(FieldGenerationCapDays, v))
}

// GenerationCapDaysNEQ applies the NEQ predicate on the "generation_cap_days" field.
func GenerationCapDaysNEQ(v int) predicate.AppointmentSeries {
	return predicate.AppointmentSeries(sql.FieldNEQ(FieldGenerationCapDays, v))
}

// GenerationCapDaysIn applies the In predicate on the "generation_cap_days" field.
func GenerationCapDaysIn(vs ...int) predicate.AppointmentSeries {
	return predicate.AppointmentSeries(sql.FieldIn(FieldGenerationCapDays, vs...))
}

// GenerationCapDaysNotIn applies the NotIn predicate on the "generation_cap_days" field.
func GenerationCapDaysNotIn(vs ...int) predicate.AppointmentSeries {
	return predicate.AppointmentSeries(sql.FieldNotIn(FieldGenerationCapDays, vs...))
}

// GenerationCapDaysGT applies the GT predicate on the "generation_cap_days" field.
func GenerationCapDaysGT(v int) predicate.AppointmentSeries {
	return predicate.AppointmentSeries(sql.FieldGT(FieldGenerationCapDays, v))
}

// GenerationCapDaysGTE applies the GTE predicate on the "generation_cap_days" field.
func GenerationCapDaysGTE(v int) predicate.AppointmentSeries {
	return predicate.AppointmentSeries(sql.FieldGTE(FieldGenerationCapDays, v))
}

// GenerationCapDaysLT applies the LT predicate on the "generation_cap_days" field.
func GenerationCapDaysLT(v int) predicate.AppointmentSeries {
	return predicate.AppointmentSeries(sql.FieldLT(FieldGenerationCapDays, v))
}

// GenerationCapDaysLTE applies the LTE predicate on the "generation_cap_days" field.
func GenerationCapDaysLTE(v int) predicate.AppointmentSeries {
	return predicate.AppointmentSeries(sql.FieldLTE(FieldGenerationCapDays, v))
}

// GenerationCapDaysIsNil applies the IsNil predicate on the "generation_cap_days" field.
func GenerationCapDaysIsNil() predicate.AppointmentSeries {
	return predicate.AppointmentSeries(sql.FieldIsNull(FieldGenerationCapDays))
}

// GenerationCapDaysNotNil applies the NotNil predicate on the "generation_cap_days" field.
func GenerationCapDaysNotNil() predicate.AppointmentSeries {
	return predicate.AppointmentSeries(sql.FieldNotNull(FieldGenerationCapDays))
}

// LastGeneratedUntilEQ applies the EQ predicate on the "last_generated_until" field.
func LastGeneratedUntilEQ(v time.Time) predicate.AppointmentSeries {
	return predicate.AppointmentSeries(sql.FieldEQ(FieldLastGeneratedUntil, v))
}

// LastGeneratedUntilNEQ applies the NEQ predicate on the "last_generated_until" field.
func LastGeneratedUntilNEQ(v time.Time) predicate.AppointmentSeries {
	return predicate.AppointmentSeries(sql.FieldNEQ(FieldLastGeneratedUntil, v))
}

// LastGeneratedUntilIn applies the In predicate on the "last_generated_until" field.
func LastGeneratedUntilIn(vs ...time.Time) predicate.AppointmentSeries {
	return predicate.AppointmentSeries(sql.FieldIn(FieldLastGeneratedUntil, vs...))
}

// LastGeneratedUntilNotIn applies the NotIn predicate on the "last_generated_until" field.
func LastGeneratedUntilNotIn(vs ...time.Time) predicate.AppointmentSeries {
	return predicate.AppointmentSeries(sql.FieldNotIn(FieldLastGeneratedUntil, vs...))
}

// LastGeneratedUntilGT applies the GT predicate on the "last_generated_until" field.
func LastGeneratedUntilGT(v time.Time) predicate.AppointmentSeries {
	return predicate.AppointmentSeries(sql.FieldGT(FieldLastGeneratedUntil, v))
}

// LastGeneratedUntilGTE applies the GTE predicate on the "last_generated_until" field.
func LastGeneratedUntilGTE(v time.Time) predicate.AppointmentSeries {
	return predicate.AppointmentSeries(sql.FieldGTE(FieldLastGeneratedUntil, v))
}

// LastGeneratedUntilLT applies the LT predicate on the "last_generated_until" field.
func LastGeneratedUntilLT(v time.Time) predicate.AppointmentSeries {
	return predicate.AppointmentSeries(sql.FieldLT(FieldLastGeneratedUntil, v))
}

// LastGeneratedUntilLTE applies the LTE predicate on the "last_generated_until" field.
func LastGeneratedUntilLTE(v time.Time) predicate.AppointmentSeries {
	return predicate.AppointmentSeries(sql.FieldLTE(FieldLastGeneratedUntil, v))
}

// LastGeneratedUntilIsNil applies the IsNil predicate on the "last_generated_until" field.
func LastGeneratedUntilIsNil() predicate.AppointmentSeries {
	return predicate.AppointmentSeries(sql.FieldIsNull(FieldLastGeneratedUntil))
}

// LastGeneratedUntilNotNil applies the NotNil predicate on the "last_generated_until" field.
func LastGeneratedUntilNotNil() predicate.AppointmentSeries {
	return predicate.AppointmentSeries(sql.FieldNotNull(FieldLastGeneratedUntil))
}

// CostEstimateEQ applies the EQ predicate on the "cost_estimate" field.
func CostEstimateEQ(v int64) predicate.AppointmentSeries {
	return predicate.AppointmentSeries(sql.FieldEQ(FieldCostEstimate, v))
}

// CostEstimateNEQ applies the NEQ predicate on the "cost_estimate" field.
func CostEstimateNEQ(v int64) predicate.AppointmentSeries {
	return predicate.AppointmentSeries(sql.FieldNEQ(FieldCostEstimate, v))
}

// CostEstimateIn applies the In predicate on the "cost_estimate" field.
func CostEstimateIn(vs ...int64) predicate.AppointmentSeries {
	return predicate.AppointmentSeries(sql.FieldIn(FieldCostEstimate, vs...))
}

// CostEstimateNotIn applies the NotIn predicate on the "cost_estimate" field.
func CostEstimateNotIn(vs ...int64) predicate.AppointmentSeries {
	return predicate.AppointmentSeries(sql.FieldNotIn(FieldCostEstimate, vs...))
}

// CostEstimateGT applies the GT predicate on the "cost_estimate" field.
func CostEstimateGT(v int64) predicate.AppointmentSeries {
	return predicate.AppointmentSeries(sql.FieldGT(FieldCostEstimate, v))
}

// CostEstimateGTE applies the GTE predicate on the "cost_estimate" field.
func CostEstimateGTE(v int64) predicate.AppointmentSeries {
	return predicate.AppointmentSeries(sql.FieldGTE(FieldCostEstimate, v))
}

// CostEstimateLT applies the LT predicate on the "cost_estimate" field.
func CostEstimateLT(v int64) predicate.AppointmentSeries {
	return predicate.AppointmentSeries(sql.FieldLT(FieldCostEstimate, v))
}

// CostEstimateLTE applies the LTE predicate on the "cost_estimate" field.
func CostEstimateLTE(v int64) predicate.AppointmentSeries {
	return predicate.AppointmentSeries(sql.FieldLTE(FieldCostEstimate, v))
}

// CostEstimateIsNil applies the IsNil predicate on the "cost_estimate" field.
func CostEstimateIsNil() predicate.AppointmentSeries {
	return predicate.AppointmentSeries(sql.FieldIsNull(FieldCostEstimate))
}

// CostEstimateNotNil applies the NotNil predicate on the "cost_estimate" field.
func CostEstimateNotNil() predicate.AppointmentSeries {
	return predicate.AppointmentSeries(sql.FieldNotNull(FieldCostEstimate))
}

// IsActiveEQ applies the EQ predicate on the "is_active" field.
func IsActiveEQ(v bool) predicate.AppointmentSeries {
	return predicate.AppointmentSeries(sql.FieldEQ(FieldIsActive, v))
}

// IsActiveNEQ applies the NEQ predicate on the "is_active" field.
func IsActiveNEQ(v bool) predicate.AppointmentSeries {
	return predicate.AppointmentSeries(sql.FieldNEQ(FieldIsActive, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.AppointmentSeries) predicate.AppointmentSeries {
	return predicate.AppointmentSeries(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.AppointmentSeries) predicate.AppointmentSeries {
	return predicate.AppointmentSeries(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.AppointmentSeries) predicate.AppointmentSeries {
	return predicate.AppointmentSeries(sql.NotPredicates(p))
}
