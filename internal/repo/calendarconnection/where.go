// Code generated by ent, DO NOT EDIT.

package calendarconnection

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/juniperhealth/juniper_backend/internal/repo/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.CalendarConnection {
	return predicate.CalendarConnection(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.CalendarConnection {
	return predicate.CalendarConnection(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.CalendarConnection {
	return predicate.CalendarConnection(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.CalendarConnection {
	return predicate.CalendarConnection(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.CalendarConnection {
	return predicate.CalendarConnection(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.CalendarConnection {
	return predicate.CalendarConnection(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.CalendarConnection {
	return predicate.CalendarConnection(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.CalendarConnection {
	return predicate.CalendarConnection(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.CalendarConnection {
	return predicate.CalendarConnection(sql.FieldLTE(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.CalendarConnection {
	return predicate.CalendarConnection(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.CalendarConnection {
	return predicate.CalendarConnection(sql.FieldEQ(FieldUpdatedAt, v))
}

// PracticeID applies equality check predicate on the "practice_id" field. It's identical to PracticeIDEQ.
func PracticeID(v uuid.UUID) predicate.CalendarConnection {
	return predicate.CalendarConnection(sql.FieldEQ(FieldPracticeID, v))
}

// StaffID applies equality check predicate on the "staff_id" field. It's identical to StaffIDEQ.
func StaffID(v uuid.UUID) predicate.CalendarConnection {
	return predicate.CalendarConnection(sql.FieldEQ(FieldStaffID, v))
}

// AccountEmail applies equality check predicate on the "account_email" field. It's identical to AccountEmailEQ.
func AccountEmail(v string) predicate.CalendarConnection {
	return predicate.CalendarConnection(sql.FieldEQ(FieldAccountEmail, v))
}

// RefreshTokenEnc applies equality check predicate on the "refresh_token_enc" field. It's identical to RefreshTokenEncEQ.
func RefreshTokenEnc(v string) predicate.CalendarConnection {
	return predicate.CalendarConnection(sql.FieldEQ(FieldRefreshTokenEnc, v))
}

// IsActive applies equality check predicate on the "is_active" field. It's identical to IsActiveEQ.
func IsActive(v bool) predicate.CalendarConnection {
	return predicate.CalendarConnection(sql.FieldEQ(FieldIsActive, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.CalendarConnection {
	return predicate.CalendarConnection(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.CalendarConnection {
	return predicate.CalendarConnection(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.CalendarConnection {
	return predicate.CalendarConnection(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.CalendarConnection {
	return predicate.CalendarConnection(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.CalendarConnection {
	return predicate.CalendarConnection(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.CalendarConnection {
	return predicate.CalendarConnection(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.CalendarConnection {
	return predicate.CalendarConnection(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.CalendarConnection {
	return predicate.CalendarConnection(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.CalendarConnection {
	return predicate.CalendarConnection(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.CalendarConnection {
	return predicate.CalendarConnection(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.CalendarConnection {
	return predicate.CalendarConnection(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.CalendarConnection {
	return predicate.CalendarConnection(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.CalendarConnection {
	return predicate.CalendarConnection(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.CalendarConnection {
	return predicate.CalendarConnection(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.CalendarConnection {
	return predicate.CalendarConnection(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.CalendarConnection {
	return predicate.CalendarConnection(sql.FieldLTE(FieldUpdatedAt, v))
}

// PracticeIDEQ applies the EQ predicate on the "practice_id" field.
func PracticeIDEQ(v uuid.UUID) predicate.CalendarConnection {
	return predicate.CalendarConnection(sql.FieldEQ(FieldPracticeID, v))
}

// PracticeIDNEQ applies the NEQ predicate on the "practice_id" field.
func PracticeIDNEQ(v uuid.UUID) predicate.CalendarConnection {
	return predicate.CalendarConnection(sql.FieldNEQ(FieldPracticeID, v))
}

// PracticeIDIn applies the In predicate on the "practice_id" field.
func PracticeIDIn(vs ...uuid.UUID) predicate.CalendarConnection {
	return predicate.CalendarConnection(sql.FieldIn(FieldPracticeID, vs...))
}

// PracticeIDNotIn applies the NotIn predicate on the "practice_id" field.
func PracticeIDNotIn(vs ...uuid.UUID) predicate.CalendarConnection {
	return predicate.CalendarConnection(sql.FieldNotIn(FieldPracticeID, vs...))
}

// PracticeIDGT applies the GT predicate on the "practice_id" field.
func PracticeIDGT(v uuid.UUID) predicate.CalendarConnection {
	return predicate.CalendarConnection(sql.FieldGT(FieldPracticeID, v))
}

// PracticeIDGTE applies the GTE predicate on the "practice_id" field.
func PracticeIDGTE(v uuid.UUID) predicate.CalendarConnection {
	return predicate.CalendarConnection(sql.FieldGTE(FieldPracticeID, v))
}

// PracticeIDLT applies the LT predicate on the "practice_id" field.
func PracticeIDLT(v uuid.UUID) predicate.CalendarConnection {
	return predicate.CalendarConnection(sql.FieldLT(FieldPracticeID, v))
}

// PracticeIDLTE applies the LTE predicate on the "practice_id" field.
func PracticeIDLTE(v uuid.UUID) predicate.CalendarConnection {
	return predicate.CalendarConnection(sql.FieldLTE(FieldPracticeID, v))
}

// StaffIDEQ applies the EQ predicate on the "staff_id" field.
func StaffIDEQ(v uuid.UUID) predicate.CalendarConnection {
	return predicate.CalendarConnection(sql.FieldEQ(FieldStaffID, v))
}

// StaffIDNEQ applies the NEQ predicate on the "staff_id" field.
func StaffIDNEQ(v uuid.UUID) predicate.CalendarConnection {
	return predicate.CalendarConnection(sql.FieldNEQ(FieldStaffID, v))
}

// StaffIDIn applies the In predicate on the "staff_id" field.
func StaffIDIn(vs ...uuid.UUID) predicate.CalendarConnection {
	return predicate.CalendarConnection(sql.FieldIn(FieldStaffID, vs...))
}

// StaffIDNotIn applies the NotIn predicate on the "staff_id" field.
func StaffIDNotIn(vs ...uuid.UUID) predicate.CalendarConnection {
	return predicate.CalendarConnection(sql.FieldNotIn(FieldStaffID, vs...))
}

// StaffIDGT applies the GT predicate on the "staff_id" field.
func StaffIDGT(v uuid.UUID) predicate.CalendarConnection {
	return predicate.CalendarConnection(sql.FieldGT(FieldStaffID, v))
}

// StaffIDGTE applies the GTE predicate on the "staff_id" field.
func StaffIDGTE(v uuid.UUID) predicate.CalendarConnection {
	return predicate.CalendarConnection(sql.FieldGTE(FieldStaffID, v))
}

// StaffIDLT applies the LT predicate on the "staff_id" field.
func StaffIDLT(v uuid.UUID) predicate.CalendarConnection {
	return predicate.CalendarConnection(sql.FieldLT(FieldStaffID, v))
}

// StaffIDLTE applies the LTE predicate on the "staff_id" field.
func StaffIDLTE(v uuid.UUID) predicate.CalendarConnection {
	return predicate.CalendarConnection(sql.FieldLTE(FieldStaffID, v))
}

// ProviderEQ applies the EQ predicate on the "provider" field.
func ProviderEQ(v Provider) predicate.CalendarConnection {
	return predicate.CalendarConnection(sql.FieldEQ(FieldProvider, v))
}

// ProviderNEQ applies the NEQ predicate on the "provider" field.
func ProviderNEQ(v Provider) predicate.CalendarConnection {
	return predicate.CalendarConnection(sql.FieldNEQ(FieldProvider, v))
}

// ProviderIn applies the In predicate on the "provider" field.
func ProviderIn(vs ...Provider) predicate.CalendarConnection {
	return predicate.CalendarConnection(sql.FieldIn(FieldProvider, vs...))
}

// ProviderNotIn applies the NotIn predicate on the "provider" field.
func ProviderNotIn(vs ...Provider) predicate.CalendarConnection {
	return predicate.CalendarConnection(sql.FieldNotIn(FieldProvider, vs...))
}

// AccountEmailEQ applies the EQ predicate on the "account_email" field.
func AccountEmailEQ(v string) predicate.CalendarConnection {
	return predicate.CalendarConnection(sql.FieldEQ(FieldAccountEmail, v))
}

// AccountEmailNEQ applies the NEQ predicate on the "account_email" field.
func AccountEmailNEQ(v string) predicate.CalendarConnection {
	return predicate.CalendarConnection(sql.FieldNEQ(FieldAccountEmail, v))
}

// AccountEmailIn applies the In predicate on the "account_email" field.
func AccountEmailIn(vs ...string) predicate.CalendarConnection {
	return predicate.CalendarConnection(sql.FieldIn(FieldAccountEmail, vs...))
}

// AccountEmailNotIn applies the NotIn predicate on the "account_email" field.
func AccountEmailNotIn(vs ...string) predicate.CalendarConnection {
	return predicate.CalendarConnection(sql.FieldNotIn(FieldAccountEmail, vs...))
}

// AccountEmailGT applies the GT predicate on the "account_email" field.
func AccountEmailGT(v string) predicate.CalendarConnection {
	return predicate.CalendarConnection(sql.FieldGT(FieldAccountEmail, v))
}

// AccountEmailGTE applies the GTE predicate on the "account_email" field.
func AccountEmailGTE(v string) predicate.CalendarConnection {
	return predicate.CalendarConnection(sql.FieldGTE(FieldAccountEmail, v))
}

// AccountEmailLT applies the LT predicate on the "account_email" field.
func AccountEmailLT(v string) predicate.CalendarConnection {
	return predicate.CalendarConnection(sql.FieldLT(FieldAccountEmail, v))
}

// AccountEmailLTE applies the LTE predicate on the "account_email" field.
func AccountEmailLTE(v string) predicate.CalendarConnection {
	return predicate.CalendarConnection(sql.FieldLTE(FieldAccountEmail, v))
}

// AccountEmailContains applies the Contains predicate on the "account_email" field.
func AccountEmailContains(v string) predicate.CalendarConnection {
	return predicate.CalendarConnection(sql.FieldContains(FieldAccountEmail, v))
}

// AccountEmailHasPrefix applies the HasPrefix predicate on the "account_email" field.
func AccountEmailHasPrefix(v string) predicate.CalendarConnection {
	return predicate.CalendarConnection(sql.FieldHasPrefix(FieldAccountEmail, v))
}

// AccountEmailHasSuffix applies the HasSuffix predicate on the "account_email" field.
func AccountEmailHasSuffix(v string) predicate.CalendarConnection {
	return predicate.CalendarConnection(sql.FieldHasSuffix(FieldAccountEmail, v))
}

// AccountEmailEqualFold applies the EqualFold predicate on the "account_email" field.
func AccountEmailEqualFold(v string) predicate.CalendarConnection {
	return predicate.CalendarConnection(sql.FieldEqualFold(FieldAccountEmail, v))
}

// AccountEmailContainsFold applies the ContainsFold predicate on the "account_email" field.
func AccountEmailContainsFold(v string) predicate.CalendarConnection {
	return predicate.CalendarConnection(sql.FieldContainsFold(FieldAccountEmail, v))
}

// RefreshTokenEncEQ applies the EQ predicate on the "refresh_token_enc" field.
func RefreshTokenEncEQ(v string) predicate.CalendarConnection {
	return predicate.CalendarConnection(sql.FieldEQ(FieldRefreshTokenEnc, v))
}

// RefreshTokenEncNEQ applies the NEQ predicate on the "refresh_token_enc" field.
func RefreshTokenEncNEQ(v string) predicate.CalendarConnection {
	return predicate.CalendarConnection(sql.FieldNEQ(FieldRefreshTokenEnc, v))
}

// RefreshTokenEncIn applies the In predicate on the "refresh_token_enc" field.
func RefreshTokenEncIn(vs ...string) predicate.CalendarConnection {
	return predicate.CalendarConnection(sql.FieldIn(FieldRefreshTokenEnc, vs...))
}

// RefreshTokenEncNotIn applies the NotIn predicate on the "refresh_token_enc" field.
func RefreshTokenEncNotIn(vs ...string) predicate.CalendarConnection {
	return predicate.CalendarConnection(sql.FieldNotIn(FieldRefreshTokenEnc, vs...))
}

// RefreshTokenEncGT applies the GT predicate on the "refresh_token_enc" field.
func RefreshTokenEncGT(v string) predicate.CalendarConnection {
	return predicate.CalendarConnection(sql.FieldGT(FieldRefreshTokenEnc, v))
}

// RefreshTokenEncGTE applies the GTE predicate on the "refresh_token_enc" field.
func RefreshTokenEncGTE(v string) predicate.CalendarConnection {
	return predicate.CalendarConnection(sql.FieldGTE(FieldRefreshTokenEnc, v))
}

// RefreshTokenEncLT applies the LT predicate on the "refresh_token_enc" field.
func RefreshTokenEncLT(v string) predicate.CalendarConnection {
	return predicate.CalendarConnection(sql.FieldLT(FieldRefreshTokenEnc, v))
}

// RefreshTokenEncLTE applies the LTE predicate on the "refresh_token_enc" field.
func RefreshTokenEncLTE(v string) predicate.CalendarConnection {
	return predicate.CalendarConnection(sql.FieldLTE(FieldRefreshTokenEnc, v))
}

// RefreshTokenEncContains applies the Contains predicate on the "refresh_token_enc" field.
func RefreshTokenEncContains(v string) predicate.CalendarConnection {
	return predicate.CalendarConnection(sql.FieldContains(FieldRefreshTokenEnc, v))
}

// RefreshTokenEncHasPrefix applies the HasPrefix predicate on the "refresh_token_enc" field.
func RefreshTokenEncHasPrefix(v string) predicate.CalendarConnection {
	return predicate.CalendarConnection(sql.FieldHasPrefix(FieldRefreshTokenEnc, v))
}

// RefreshTokenEncHasSuffix applies the HasSuffix predicate on the "refresh_token_enc" field.
func RefreshTokenEncHasSuffix(v string) predicate.CalendarConnection {
	return predicate.CalendarConnection(sql.FieldHasSuffix(FieldRefreshTokenEnc, v))
}

// RefreshTokenEncEqualFold applies the EqualFold predicate on the "refresh_token_enc" field.
func RefreshTokenEncEqualFold(v string) predicate.CalendarConnection {
	return predicate.CalendarConnection(sql.FieldEqualFold(FieldRefreshTokenEnc, v))
}

// RefreshTokenEncContainsFold applies the ContainsFold predicate on the "refresh_token_enc" field.
func RefreshTokenEncContainsFold(v string) predicate.CalendarConnection {
	return predicate.CalendarConnection(sql.FieldContainsFold(FieldRefreshTokenEnc, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.CalendarConnection {
	return predicate.CalendarConnection(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.CalendarConnection {
	return predicate.CalendarConnection(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.CalendarConnection {
	return predicate.CalendarConnection(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.CalendarConnection {
	return predicate.CalendarConnection(sql.FieldNotIn(FieldStatus, vs...))
}

// IsActiveEQ applies the EQ predicate on the "is_active" field.
func IsActiveEQ(v bool) predicate.CalendarConnection {
	return predicate.CalendarConnection(sql.FieldEQ(FieldIsActive, v))
}

// IsActiveNEQ applies the NEQ predicate on the "is_active" field.
func IsActiveNEQ(v bool) predicate.CalendarConnection {
	return predicate.CalendarConnection(sql.FieldNEQ(FieldIsActive, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.CalendarConnection) predicate.CalendarConnection {
	return predicate.CalendarConnection(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.CalendarConnection) predicate.CalendarConnection {
	return predicate.CalendarConnection(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.CalendarConnection) predicate.CalendarConnection {
	return predicate.CalendarConnection(sql.NotPredicates(p))
}
