// Code generated by ent, DO NOT EDIT.

package staffcalendarblock

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/juniperhealth/juniper_backend/internal/repo/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.StaffCalendarBlock {
	return predicate.StaffCalendarBlock(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.StaffCalendarBlock {
	return predicate.StaffCalendarBlock(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.StaffCalendarBlock {
	return predicate.StaffCalendarBlock(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.StaffCalendarBlock {
	return predicate.StaffCalendarBlock(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.StaffCalendarBlock {
	return predicate.StaffCalendarBlock(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.StaffCalendarBlock {
	return predicate.StaffCalendarBlock(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.StaffCalendarBlock {
	return predicate.StaffCalendarBlock(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.StaffCalendarBlock {
	return predicate.StaffCalendarBlock(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.StaffCalendarBlock {
	return predicate.StaffCalendarBlock(sql.FieldLTE(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.StaffCalendarBlock {
	return predicate.StaffCalendarBlock(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.StaffCalendarBlock {
	return predicate.StaffCalendarBlock(sql.FieldEQ(FieldUpdatedAt, v))
}

// PracticeID applies equality check predicate on the "practice_id" field. It's identical to PracticeIDEQ.
func PracticeID(v uuid.UUID) predicate.StaffCalendarBlock {
	return predicate.StaffCalendarBlock(sql.FieldEQ(FieldPracticeID, v))
}

// StaffID applies equality check predicate on the "staff_id" field. It's identical to StaffIDEQ.
func StaffID(v uuid.UUID) predicate.StaffCalendarBlock {
	return predicate.StaffCalendarBlock(sql.FieldEQ(FieldStaffID, v))
}

// ExternalEventID applies equality check predicate on the "external_event_id" field. It's identical to ExternalEventIDEQ.
func ExternalEventID(v string) predicate.StaffCalendarBlock {
	return predicate.StaffCalendarBlock(sql.FieldEQ(FieldExternalEventID, v))
}

// StartTime applies equality check predicate on the "start_time" field. It's identical to StartTimeEQ.
func StartTime(v time.Time) predicate.StaffCalendarBlock {
	return predicate.StaffCalendarBlock(sql.FieldEQ(FieldStartTime, v))
}

// EndTime applies equality check predicate on the "end_time" field. It's identical to EndTimeEQ.
func EndTime(v time.Time) predicate.StaffCalendarBlock {
	return predicate.StaffCalendarBlock(sql.FieldEQ(FieldEndTime, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.StaffCalendarBlock {
	return predicate.StaffCalendarBlock(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.StaffCalendarBlock {
	return predicate.StaffCalendarBlock(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.StaffCalendarBlock {
	return predicate.StaffCalendarBlock(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.StaffCalendarBlock {
	return predicate.StaffCalendarBlock(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.StaffCalendarBlock {
	return predicate.StaffCalendarBlock(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.StaffCalendarBlock {
	return predicate.StaffCalendarBlock(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.StaffCalendarBlock {
	return predicate.StaffCalendarBlock(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.StaffCalendarBlock {
	return predicate.StaffCalendarBlock(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.StaffCalendarBlock {
	return predicate.StaffCalendarBlock(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.StaffCalendarBlock {
	return predicate.StaffCalendarBlock(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.StaffCalendarBlock {
	return predicate.StaffCalendarBlock(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.StaffCalendarBlock {
	return predicate.StaffCalendarBlock(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.StaffCalendarBlock {
	return predicate.StaffCalendarBlock(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.StaffCalendarBlock {
	return predicate.StaffCalendarBlock(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.StaffCalendarBlock {
	return predicate.StaffCalendarBlock(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.StaffCalendarBlock {
	return predicate.StaffCalendarBlock(sql.FieldLTE(FieldUpdatedAt, v))
}

// PracticeIDEQ applies the EQ predicate on the "practice_id" field.
func PracticeIDEQ(v uuid.UUID) predicate.StaffCalendarBlock {
	return predicate.StaffCalendarBlock(sql.FieldEQ(FieldPracticeID, v))
}

// PracticeIDNEQ applies the NEQ predicate on the "practice_id" field.
func PracticeIDNEQ(v uuid.UUID) predicate.StaffCalendarBlock {
	return predicate.StaffCalendarBlock(sql.FieldNEQ(FieldPracticeID, v))
}

// PracticeIDIn applies the In predicate on the "practice_id" field.
func PracticeIDIn(vs ...uuid.UUID) predicate.StaffCalendarBlock {
	return predicate.StaffCalendarBlock(sql.FieldIn(FieldPracticeID, vs...))
}

// PracticeIDNotIn applies the NotIn predicate on the "practice_id" field.
func PracticeIDNotIn(vs ...uuid.UUID) predicate.StaffCalendarBlock {
	return predicate.StaffCalendarBlock(sql.FieldNotIn(FieldPracticeID, vs...))
}

// PracticeIDGT applies the GT predicate on the "practice_id" field.
func PracticeIDGT(v uuid.UUID) predicate.StaffCalendarBlock {
	return predicate.StaffCalendarBlock(sql.FieldGT(FieldPracticeID, v))
}

// PracticeIDGTE applies the GTE predicate on the "practice_id" field.
func PracticeIDGTE(v uuid.UUID) predicate.StaffCalendarBlock {
	return predicate.StaffCalendarBlock(sql.FieldGTE(FieldPracticeID, v))
}

// PracticeIDLT applies the LT predicate on the "practice_id" field.
func PracticeIDLT(v uuid.UUID) predicate.StaffCalendarBlock {
	return predicate.StaffCalendarBlock(sql.FieldLT(FieldPracticeID, v))
}

// PracticeIDLTE applies the LTE predicate on the "practice_id" field.
func PracticeIDLTE(v uuid.UUID) predicate.StaffCalendarBlock {
	return predicate.StaffCalendarBlock(sql.FieldLTE(FieldPracticeID, v))
}

// StaffIDEQ applies the EQ predicate on the "staff_id" field.
func StaffIDEQ(v uuid.UUID) predicate.StaffCalendarBlock {
	return predicate.StaffCalendarBlock(sql.FieldEQ(FieldStaffID, v))
}

// StaffIDNEQ applies the NEQ predicate on the "staff_id" field.
func StaffIDNEQ(v uuid.UUID) predicate.StaffCalendarBlock {
	return predicate.StaffCalendarBlock(sql.FieldNEQ(FieldStaffID, v))
}

// StaffIDIn applies the In predicate on the "staff_id" field.
func StaffIDIn(vs ...uuid.UUID) predicate.StaffCalendarBlock {
	return predicate.StaffCalendarBlock(sql.FieldIn(FieldStaffID, vs...))
}

// StaffIDNotIn applies the NotIn predicate on the "staff_id" field.
func StaffIDNotIn(vs ...uuid.UUID) predicate.StaffCalendarBlock {
	return predicate.StaffCalendarBlock(sql.FieldNotIn(FieldStaffID, vs...))
}

// StaffIDGT applies the GT predicate on the "staff_id" field.
func StaffIDGT(v uuid.UUID) predicate.StaffCalendarBlock {
	return predicate.StaffCalendarBlock(sql.FieldGT(FieldStaffID, v))
}

// StaffIDGTE applies the GTE predicate on the "staff_id" field.
func StaffIDGTE(v uuid.UUID) predicate.StaffCalendarBlock {
	return predicate.StaffCalendarBlock(sql.FieldGTE(FieldStaffID, v))
}

// StaffIDLT applies the LT predicate on the "staff_id" field.
func StaffIDLT(v uuid.UUID) predicate.StaffCalendarBlock {
	return predicate.StaffCalendarBlock(sql.FieldLT(FieldStaffID, v))
}

// StaffIDLTE applies the LTE predicate on the "staff_id" field.
func StaffIDLTE(v uuid.UUID) predicate.StaffCalendarBlock {
	return predicate.StaffCalendarBlock(sql.FieldLTE(FieldStaffID, v))
}

// SourceEQ applies the EQ predicate on the "source" field.
func SourceEQ(v Source) predicate.StaffCalendarBlock {
	return predicate.StaffCalendarBlock(sql.FieldEQ(FieldSource, v))
}

// SourceNEQ applies the NEQ predicate on the "source" field.
func SourceNEQ(v Source) predicate.StaffCalendarBlock {
	return predicate.StaffCalendarBlock(sql.FieldNEQ(FieldSource, v))
}

// SourceIn applies the In predicate on the "source" field.
func SourceIn(vs ...Source) predicate.StaffCalendarBlock {
	return predicate.StaffCalendarBlock(sql.FieldIn(FieldSource, vs...))
}

// SourceNotIn applies the NotIn predicate on the "source" field.
func SourceNotIn(vs ...Source) predicate.StaffCalendarBlock {
	return predicate.StaffCalendarBlock(sql.FieldNotIn(FieldSource, vs...))
}

// ExternalEventIDEQ applies the EQ predicate on the "external_event_id" field.
func ExternalEventIDEQ(v string) predicate.StaffCalendarBlock {
	return predicate.StaffCalendarBlock(sql.FieldEQ(FieldExternalEventID, v))
}

// ExternalEventIDNEQ applies the NEQ predicate on the "external_event_id" field.
func ExternalEventIDNEQ(v string) predicate.StaffCalendarBlock {
	return predicate.StaffCalendarBlock(sql.FieldNEQ(FieldExternalEventID, v))
}

// ExternalEventIDIn applies the In predicate on the "external_event_id" field.
func ExternalEventIDIn(vs ...string) predicate.StaffCalendarBlock {
	return predicate.StaffCalendarBlock(sql.FieldIn(FieldExternalEventID, vs...))
}

// ExternalEventIDNotIn applies the NotIn predicate on the "external_event_id" field.
func ExternalEventIDNotIn(vs ...string) predicate.StaffCalendarBlock {
	return predicate.StaffCalendarBlock(sql.FieldNotIn(FieldExternalEventID, vs...))
}

// ExternalEventIDGT applies the GT predicate on the "external_event_id" field.
func ExternalEventIDGT(v string) predicate.StaffCalendarBlock {
	return predicate.StaffCalendarBlock(sql.FieldGT(FieldExternalEventID, v))
}

// ExternalEventIDGTE applies the GTE predicate on the "external_event_id" field.
func ExternalEventIDGTE(v string) predicate.StaffCalendarBlock {
	return predicate.StaffCalendarBlock(sql.FieldGTE(FieldExternalEventID, v))
}

// ExternalEventIDLT applies the LT predicate on the "external_event_id" field.
func ExternalEventIDLT(v string) predicate.StaffCalendarBlock {
	return predicate.StaffCalendarBlock(sql.FieldLT(FieldExternalEventID, v))
}

// ExternalEventIDLTE applies the LTE predicate on the "external_event_id" field.
func ExternalEventIDLTE(v string) predicate.StaffCalendarBlock {
	return predicate.StaffCalendarBlock(sql.FieldLTE(FieldExternalEventID, v))
}

// ExternalEventIDContains applies the Contains predicate on the "external_event_id" field.
func ExternalEventIDContains(v string) predicate.StaffCalendarBlock {
	return predicate.StaffCalendarBlock(sql.FieldContains(FieldExternalEventID, v))
}

// ExternalEventIDHasPrefix applies the HasPrefix predicate on the "external_event_id" field.
func ExternalEventIDHasPrefix(v string) predicate.StaffCalendarBlock {
	return predicate.StaffCalendarBlock(sql.FieldHasPrefix(FieldExternalEventID, v))
}

// ExternalEventIDHasSuffix applies the HasSuffix predicate on the "external_event_id" field.
func ExternalEventIDHasSuffix(v string) predicate.StaffCalendarBlock {
	return predicate.StaffCalendarBlock(sql.FieldHasSuffix(FieldExternalEventID, v))
}

// ExternalEventIDEqualFold applies the EqualFold predicate on the "external_event_id" field.
func ExternalEventIDEqualFold(v string) predicate.StaffCalendarBlock {
	return predicate.StaffCalendarBlock(sql.FieldEqualFold(FieldExternalEventID, v))
}

// ExternalEventIDContainsFold applies the ContainsFold predicate on the "external_event_id" field.
func ExternalEventIDContainsFold(v string) predicate.StaffCalendarBlock {
	return predicate.StaffCalendarBlock(sql.FieldContainsFold(FieldExternalEventID, v))
}

// StartTimeEQ applies the EQ predicate on the "start_time" field.
func StartTimeEQ(v time.Time) predicate.StaffCalendarBlock {
	return predicate.StaffCalendarBlock(sql.FieldEQ(FieldStartTime, v))
}

// StartTimeNEQ applies the NEQ predicate on the "start_time" field.
func StartTimeNEQ(v time.Time) predicate.StaffCalendarBlock {
	return predicate.StaffCalendarBlock(sql.FieldNEQ(FieldStartTime, v))
}

// StartTimeIn applies the In predicate on the "start_time" field.
func StartTimeIn(vs ...time.Time) predicate.StaffCalendarBlock {
	return predicate.StaffCalendarBlock(sql.FieldIn(FieldStartTime, vs...))
}

// StartTimeNotIn applies the NotIn predicate on the "start_time" field.
func StartTimeNotIn(vs ...time.Time) predicate.StaffCalendarBlock {
	return predicate.StaffCalendarBlock(sql.FieldNotIn(FieldStartTime, vs...))
}

// StartTimeGT applies the GT predicate on the "start_time" field.
func StartTimeGT(v time.Time) predicate.StaffCalendarBlock {
	return predicate.StaffCalendarBlock(sql.FieldGT(FieldStartTime, v))
}

// StartTimeGTE applies the GTE predicate on the "start_time" field.
func StartTimeGTE(v time.Time) predicate.StaffCalendarBlock {
	return predicate.StaffCalendarBlock(sql.FieldGTE(FieldStartTime, v))
}

// StartTimeLT applies the LT predicate on the "start_time" field.
func StartTimeLT(v time.Time) predicate.StaffCalendarBlock {
	return predicate.StaffCalendarBlock(sql.FieldLT(FieldStartTime, v))
}

// StartTimeLTE applies the LTE predicate on the "start_time" field.
func StartTimeLTE(v time.Time) predicate.StaffCalendarBlock {
	return predicate.StaffCalendarBlock(sql.FieldLTE(FieldStartTime, v))
}

// EndTimeEQ applies the EQ predicate on the "end_time" field.
func EndTimeEQ(v time.Time) predicate.StaffCalendarBlock {
	return predicate.StaffCalendarBlock(sql.FieldEQ(FieldEndTime, v))
}

// EndTimeNEQ applies the NEQ predicate on the "end_time" field.
func EndTimeNEQ(v time.Time) predicate.StaffCalendarBlock {
	return predicate.StaffCalendarBlock(sql.FieldNEQ(FieldEndTime, v))
}

// EndTimeIn applies the In predicate on the "end_time" field.
func EndTimeIn(vs ...time.Time) predicate.StaffCalendarBlock {
	return predicate.StaffCalendarBlock(sql.FieldIn(FieldEndTime, vs...))
}

// EndTimeNotIn applies the NotIn predicate on the "end_time" field.
func EndTimeNotIn(vs ...time.Time) predicate.StaffCalendarBlock {
	return predicate.StaffCalendarBlock(sql.FieldNotIn(FieldEndTime, vs...))
}

// EndTimeGT applies the GT predicate on the "end_time" field.
func EndTimeGT(v time.Time) predicate.StaffCalendarBlock {
	return predicate.StaffCalendarBlock(sql.FieldGT(FieldEndTime, v))
}

// EndTimeGTE applies the GTE predicate on the "end_time" field.
func EndTimeGTE(v time.Time) predicate.StaffCalendarBlock {
	return predicate.StaffCalendarBlock(sql.FieldGTE(FieldEndTime, v))
}

// EndTimeLT applies the LT predicate on the "end_time" field.
func EndTimeLT(v time.Time) predicate.StaffCalendarBlock {
	return predicate.StaffCalendarBlock(sql.FieldLT(FieldEndTime, v))
}

// EndTimeLTE applies the LTE predicate on the "end_time" field.
func EndTimeLTE(v time.Time) predicate.StaffCalendarBlock {
	return predicate.StaffCalendarBlock(sql.FieldLTE(FieldEndTime, v))
}

// LabelEQ applies the EQ predicate on the "label" field.
func LabelEQ(v string) predicate.StaffCalendarBlock {
	return predicate.StaffCalendarBlock(sql.FieldEQ(FieldLabel, v))
}

// LabelNEQ applies the NEQ predicate on the "label" field.
func LabelNEQ(v string) predicate.StaffCalendarBlock {
	return predicate.StaffCalendarBlock(sql.FieldNEQ(FieldLabel, v))
}

// LabelIn applies the In predicate on the "label" field.
func LabelIn(vs ...string) predicate.StaffCalendarBlock {
	return predicate.StaffCalendarBlock(sql.FieldIn(FieldLabel, vs...))
}

// LabelNotIn applies the NotIn predicate on the "label" field.
func LabelNotIn(vs ...string) predicate.StaffCalendarBlock {
	return predicate.StaffCalendarBlock(sql.FieldNotIn(FieldLabel, vs...))
}

// LabelGT applies the GT predicate on the "label" field.
func LabelGT(v string) predicate.StaffCalendarBlock {
	return predicate.StaffCalendarBlock(sql.FieldGT(FieldLabel, v))
}

// LabelGTE applies the GTE predicate on the "label" field.
func LabelGTE(v string) predicate.StaffCalendarBlock {
	return predicate.StaffCalendarBlock(sql.FieldGTE(FieldLabel, v))
}

// LabelLT applies the LT predicate on the "label" field.
func LabelLT(v string) predicate.StaffCalendarBlock {
	return predicate.StaffCalendarBlock(sql.FieldLT(FieldLabel, v))
}

// LabelLTE applies the LTE predicate on the "label" field.
func LabelLTE(v string) predicate.StaffCalendarBlock {
	return predicate.StaffCalendarBlock(sql.FieldLTE(FieldLabel, v))
}

// LabelContains applies the Contains predicate on the "label" field.
func LabelContains(v string) predicate.StaffCalendarBlock {
	return predicate.StaffCalendarBlock(sql.FieldContains(FieldLabel, v))
}

// LabelHasPrefix applies the HasPrefix predicate on the "label" field.
func LabelHasPrefix(v string) predicate.StaffCalendarBlock {
	return predicate.StaffCalendarBlock(sql.FieldHasPrefix(FieldLabel, v))
}

// LabelHasSuffix applies the HasSuffix predicate on the "label" field.
func LabelHasSuffix(v string) predicate.StaffCalendarBlock {
	return predicate.StaffCalendarBlock(sql.FieldHasSuffix(FieldLabel, v))
}

// LabelEqualFold applies the EqualFold predicate on the "label" field.
func LabelEqualFold(v string) predicate.StaffCalendarBlock {
	return predicate.StaffCalendarBlock(sql.FieldEqualFold(FieldLabel, v))
}

// LabelContainsFold applies the ContainsFold predicate on the "label" field.
func LabelContainsFold(v string) predicate.StaffCalendarBlock {
	return predicate.StaffCalendarBlock(sql.FieldContainsFold(FieldLabel, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.StaffCalendarBlock) predicate.StaffCalendarBlock {
	return predicate.StaffCalendarBlock(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.StaffCalendarBlock) predicate.StaffCalendarBlock {
	return predicate.StaffCalendarBlock(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.StaffCalendarBlock) predicate.StaffCalendarBlock {
	return predicate.StaffCalendarBlock(sql.NotPredicates(p))
}
