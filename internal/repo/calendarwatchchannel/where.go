// Code generated by ent, DO NOT EDIT.

package calendarwatchchannel

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/juniperhealth/juniper_backend/internal/repo/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.CalendarWatchChannel {
	return predicate.CalendarWatchChannel(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.CalendarWatchChannel {
	return predicate.CalendarWatchChannel(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.CalendarWatchChannel {
	return predicate.CalendarWatchChannel(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.CalendarWatchChannel {
	return predicate.CalendarWatchChannel(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.CalendarWatchChannel {
	return predicate.CalendarWatchChannel(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.CalendarWatchChannel {
	return predicate.CalendarWatchChannel(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.CalendarWatchChannel {
	return predicate.CalendarWatchChannel(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.CalendarWatchChannel {
	return predicate.CalendarWatchChannel(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.CalendarWatchChannel {
	return predicate.CalendarWatchChannel(sql.FieldLTE(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.CalendarWatchChannel {
	return predicate.CalendarWatchChannel(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.CalendarWatchChannel {
	return predicate.CalendarWatchChannel(sql.FieldEQ(FieldUpdatedAt, v))
}

// PracticeID applies equality check predicate on the "practice_id" field. It's identical to PracticeIDEQ.
func PracticeID(v uuid.UUID) predicate.CalendarWatchChannel {
	return predicate.CalendarWatchChannel(sql.FieldEQ(FieldPracticeID, v))
}

// StaffID applies equality check predicate on the "staff_id" field. It's identical to StaffIDEQ.
func StaffID(v uuid.UUID) predicate.CalendarWatchChannel {
	return predicate.CalendarWatchChannel(sql.FieldEQ(FieldStaffID, v))
}

// ChannelID applies equality check predicate on the "channel_id" field. It's identical to ChannelIDEQ.
func ChannelID(v string) predicate.CalendarWatchChannel {
	return predicate.CalendarWatchChannel(sql.FieldEQ(FieldChannelID, v))
}

// ResourceID applies equality check predicate on the "resource_id" field. It's identical to ResourceIDEQ.
func ResourceID(v string) predicate.CalendarWatchChannel {
	return predicate.CalendarWatchChannel(sql.FieldEQ(FieldResourceID, v))
}

// ProviderCalendarID applies equality check predicate on the "provider_calendar_id" field. It's identical to ProviderCalendarIDEQ.
func ProviderCalendarID(v string) predicate.CalendarWatchChannel {
	return predicate.CalendarWatchChannel(sql.FieldEQ(FieldProviderCalendarID, v))
}

// SyncToken applies equality check predicate on the "sync_token" field. It's identical to SyncTokenEQ.
func SyncToken(v string) predicate.CalendarWatchChannel {
	return predicate.CalendarWatchChannel(sql.FieldEQ(FieldSyncToken, v))
}

// ExpiresAt applies equality check predicate on the "expires_at" field. It's identical to ExpiresAtEQ.
func ExpiresAt(v time.Time) predicate.CalendarWatchChannel {
	return predicate.CalendarWatchChannel(sql.FieldEQ(FieldExpiresAt, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.CalendarWatchChannel {
	return predicate.CalendarWatchChannel(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.CalendarWatchChannel {
	return predicate.CalendarWatchChannel(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.CalendarWatchChannel {
	return predicate.CalendarWatchChannel(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.CalendarWatchChannel {
	return predicate.CalendarWatchChannel(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.CalendarWatchChannel {
	return predicate.CalendarWatchChannel(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.CalendarWatchChannel {
	return predicate.CalendarWatchChannel(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.CalendarWatchChannel {
	return predicate.CalendarWatchChannel(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.CalendarWatchChannel {
	return predicate.CalendarWatchChannel(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.CalendarWatchChannel {
	return predicate.CalendarWatchChannel(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.CalendarWatchChannel {
	return predicate.CalendarWatchChannel(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.CalendarWatchChannel {
	return predicate.CalendarWatchChannel(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.CalendarWatchChannel {
	return predicate.CalendarWatchChannel(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.CalendarWatchChannel {
	return predicate.CalendarWatchChannel(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.CalendarWatchChannel {
	return predicate.CalendarWatchChannel(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.CalendarWatchChannel {
	return predicate.CalendarWatchChannel(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.CalendarWatchChannel {
	return predicate.CalendarWatchChannel(sql.FieldLTE(FieldUpdatedAt, v))
}

// PracticeIDEQ applies the EQ predicate on the "practice_id" field.
func PracticeIDEQ(v uuid.UUID) predicate.CalendarWatchChannel {
	return predicate.CalendarWatchChannel(sql.FieldEQ(FieldPracticeID, v))
}

// PracticeIDNEQ applies the NEQ predicate on the "practice_id" field.
func PracticeIDNEQ(v uuid.UUID) predicate.CalendarWatchChannel {
	return predicate.CalendarWatchChannel(sql.FieldNEQ(FieldPracticeID, v))
}

// PracticeIDIn applies the In predicate on the "practice_id" field.
func PracticeIDIn(vs ...uuid.UUID) predicate.CalendarWatchChannel {
	return predicate.CalendarWatchChannel(sql.FieldIn(FieldPracticeID, vs...))
}

// PracticeIDNotIn applies the NotIn predicate on the "practice_id" field.
func PracticeIDNotIn(vs ...uuid.UUID) predicate.CalendarWatchChannel {
	return predicate.CalendarWatchChannel(sql.FieldNotIn(FieldPracticeID, vs...))
}

// PracticeIDGT applies the GT predicate on the "practice_id" field.
func PracticeIDGT(v uuid.UUID) predicate.CalendarWatchChannel {
	return predicate.CalendarWatchChannel(sql.FieldGT(FieldPracticeID, v))
}

// PracticeIDGTE applies the GTE predicate on the "practice_id" field.
func PracticeIDGTE(v uuid.UUID) predicate.CalendarWatchChannel {
	return predicate.CalendarWatchChannel(sql.FieldGTE(FieldPracticeID, v))
}

// PracticeIDLT applies the LT predicate on the "practice_id" field.
func PracticeIDLT(v uuid.UUID) predicate.CalendarWatchChannel {
	return predicate.CalendarWatchChannel(sql.FieldLT(FieldPracticeID, v))
}

// PracticeIDLTE applies the LTE predicate on the "practice_id" field.
func PracticeIDLTE(v uuid.UUID) predicate.CalendarWatchChannel {
	return predicate.CalendarWatchChannel(sql.FieldLTE(FieldPracticeID, v))
}

// StaffIDEQ applies the EQ predicate on the "staff_id" field.
func StaffIDEQ(v uuid.UUID) predicate.CalendarWatchChannel {
	return predicate.CalendarWatchChannel(sql.FieldEQ(FieldStaffID, v))
}

// StaffIDNEQ applies the NEQ predicate on the "staff_id" field.
func StaffIDNEQ(v uuid.UUID) predicate.CalendarWatchChannel {
	return predicate.CalendarWatchChannel(sql.FieldNEQ(FieldStaffID, v))
}

// StaffIDIn applies the In predicate on the "staff_id" field.
func StaffIDIn(vs ...uuid.UUID) predicate.CalendarWatchChannel {
	return predicate.CalendarWatchChannel(sql.FieldIn(FieldStaffID, vs...))
}

// StaffIDNotIn applies the NotIn predicate on the "staff_id" field.
func StaffIDNotIn(vs ...uuid.UUID) predicate.CalendarWatchChannel {
	return predicate.CalendarWatchChannel(sql.FieldNotIn(FieldStaffID, vs...))
}

// StaffIDGT applies the GT predicate on the "staff_id" field.
func StaffIDGT(v uuid.UUID) predicate.CalendarWatchChannel {
	return predicate.CalendarWatchChannel(sql.FieldGT(FieldStaffID, v))
}

// StaffIDGTE applies the GTE predicate on the "staff_id" field.
func StaffIDGTE(v uuid.UUID) predicate.CalendarWatchChannel {
	return predicate.CalendarWatchChannel(sql.FieldGTE(FieldStaffID, v))
}

// StaffIDLT applies the LT predicate on the "staff_id" field.
func StaffIDLT(v uuid.UUID) predicate.CalendarWatchChannel {
	return predicate.CalendarWatchChannel(sql.FieldLT(FieldStaffID, v))
}

// StaffIDLTE applies the LTE predicate on the "staff_id" field.
func StaffIDLTE(v uuid.UUID) predicate.CalendarWatchChannel {
	return predicate.CalendarWatchChannel(sql.FieldLTE(FieldStaffID, v))
}

// ProviderEQ applies the EQ predicate on the "provider" field.
func ProviderEQ(v Provider) predicate.CalendarWatchChannel {
	return predicate.CalendarWatchChannel(sql.FieldEQ(FieldProvider, v))
}

// ProviderNEQ applies the NEQ predicate on the "provider" field.
func ProviderNEQ(v Provider) predicate.CalendarWatchChannel {
	return predicate.CalendarWatchChannel(sql.FieldNEQ(FieldProvider, v))
}

// ProviderIn applies the In predicate on the "provider" field.
func ProviderIn(vs ...Provider) predicate.CalendarWatchChannel {
	return predicate.CalendarWatchChannel(sql.FieldIn(FieldProvider, vs...))
}

// ProviderNotIn applies the NotIn predicate on the "provider" field.
func ProviderNotIn(vs ...Provider) predicate.CalendarWatchChannel {
	return predicate.CalendarWatchChannel(sql.FieldNotIn(FieldProvider, vs...))
}

// ChannelIDEQ applies the EQ predicate on the "channel_id" field.
func ChannelIDEQ(v string) predicate.CalendarWatchChannel {
	return predicate.CalendarWatchChannel(sql.FieldEQ(FieldChannelID, v))
}

// ChannelIDNEQ applies the NEQ predicate on the "channel_id" field.
func ChannelIDNEQ(v string) predicate.CalendarWatchChannel {
	return predicate.CalendarWatchChannel(sql.FieldNEQ(FieldChannelID, v))
}

// ChannelIDIn applies the In predicate on the "channel_id" field.
func ChannelIDIn(vs ...string) predicate.CalendarWatchChannel {
	return predicate.CalendarWatchChannel(sql.FieldIn(FieldChannelID, vs...))
}

// ChannelIDNotIn applies the NotIn predicate on the "channel_id" field.
func ChannelIDNotIn(vs ...string) predicate.CalendarWatchChannel {
	return predicate.CalendarWatchChannel(sql.FieldNotIn(FieldChannelID, vs...))
}

// ChannelIDGT applies the GT predicate on the "channel_id" field.
func ChannelIDGT(v string) predicate.CalendarWatchChannel {
	return predicate.CalendarWatchChannel(sql.FieldGT(FieldChannelID, v))
}

// ChannelIDGTE applies the GTE predicate on the "channel_id" field.
func ChannelIDGTE(v string) predicate.CalendarWatchChannel {
	return predicate.CalendarWatchChannel(sql.FieldGTE(FieldChannelID, v))
}

// ChannelIDLT applies the LT predicate on the "channel_id" field.
func ChannelIDLT(v string) predicate.CalendarWatchChannel {
	return predicate.CalendarWatchChannel(sql.FieldLT(FieldChannelID, v))
}

// ChannelIDLTE applies the LTE predicate on the "channel_id" field.
func ChannelIDLTE(v string) predicate.CalendarWatchChannel {
	return predicate.CalendarWatchChannel(sql.FieldLTE(FieldChannelID, v))
}

// ChannelIDContains applies the Contains predicate on the "channel_id" field.
func ChannelIDContains(v string) predicate.CalendarWatchChannel {
	return predicate.CalendarWatchChannel(sql.FieldContains(FieldChannelID, v))
}

// ChannelIDHasPrefix applies the HasPrefix predicate on the "channel_id" field.
func ChannelIDHasPrefix(v string) predicate.CalendarWatchChannel {
	return predicate.CalendarWatchChannel(sql.FieldHasPrefix(FieldChannelID, v))
}

// ChannelIDHasSuffix applies the HasSuffix predicate on the "channel_id" field.
func ChannelIDHasSuffix(v string) predicate.CalendarWatchChannel {
	return predicate.CalendarWatchChannel(sql.FieldHasSuffix(FieldChannelID, v))
}

// ChannelIDEqualFold applies the EqualFold predicate on the "channel_id" field.
func ChannelIDEqualFold(v string) predicate.CalendarWatchChannel {
	return predicate.CalendarWatchChannel(sql.FieldEqualFold(FieldChannelID, v))
}

// ChannelIDContainsFold applies the ContainsFold predicate on the "channel_id" field.
func ChannelIDContainsFold(v string) predicate.CalendarWatchChannel {
	return predicate.CalendarWatchChannel(sql.FieldContainsFold(FieldChannelID, v))
}

// ResourceIDEQ applies the EQ predicate on the "resource_id" field.
func ResourceIDEQ(v string) predicate.CalendarWatchChannel {
	return predicate.CalendarWatchChannel(sql.FieldEQ(FieldResourceID, v))
}

// ResourceIDNEQ applies the NEQ predicate on the "resource_id" field.
func ResourceIDNEQ(v string) predicate.CalendarWatchChannel {
	return predicate.CalendarWatchChannel(sql.FieldNEQ(FieldResourceID, v))
}

// ResourceIDIn applies the In predicate on the "resource_id" field.
func ResourceIDIn(vs ...string) predicate.CalendarWatchChannel {
	return predicate.CalendarWatchChannel(sql.FieldIn(FieldResourceID, vs...))
}

// ResourceIDNotIn applies the NotIn predicate on the "resource_id" field.
func ResourceIDNotIn(vs ...string) predicate.CalendarWatchChannel {
	return predicate.CalendarWatchChannel(sql.FieldNotIn(FieldResourceID, vs...))
}

// ResourceIDGT applies the GT predicate on the "resource_id" field.
func ResourceIDGT(v string) predicate.CalendarWatchChannel {
	return predicate.CalendarWatchChannel(sql.FieldGT(FieldResourceID, v))
}

// ResourceIDGTE applies the GTE predicate on the "resource_id" field.
func ResourceIDGTE(v string) predicate.CalendarWatchChannel {
	return predicate.CalendarWatchChannel(sql.FieldGTE(FieldResourceID, v))
}

// ResourceIDLT applies the LT predicate on the "resource_id" field.
func ResourceIDLT(v string) predicate.CalendarWatchChannel {
	return predicate.CalendarWatchChannel(sql.FieldLT(FieldResourceID, v))
}

// ResourceIDLTE applies the LTE predicate on the "resource_id" field.
func ResourceIDLTE(v string) predicate.CalendarWatchChannel {
	return predicate.CalendarWatchChannel(sql.FieldLTE(FieldResourceID, v))
}

// ResourceIDContains applies the Contains predicate on the "resource_id" field.
func ResourceIDContains(v string) predicate.CalendarWatchChannel {
	return predicate.CalendarWatchChannel(sql.FieldContains(FieldResourceID, v))
}

// ResourceIDHasPrefix applies the HasPrefix predicate on the "resource_id" field.
func ResourceIDHasPrefix(v string) predicate.CalendarWatchChannel {
	return predicate.CalendarWatchChannel(sql.FieldHasPrefix(FieldResourceID, v))
}

// ResourceIDHasSuffix applies the HasSuffix predicate on the "resource_id" field.
func ResourceIDHasSuffix(v string) predicate.CalendarWatchChannel {
	return predicate.CalendarWatchChannel(sql.FieldHasSuffix(FieldResourceID, v))
}

// ResourceIDIsNil applies the IsNil predicate on the "resource_id" field.
func ResourceIDIsNil() predicate.CalendarWatchChannel {
	return predicate.CalendarWatchChannel(sql.FieldIsNull(FieldResourceID))
}

// ResourceIDNotNil applies the NotNil predicate on the "resource_id" field.
func ResourceIDNotNil() predicate.CalendarWatchChannel {
	return predicate.CalendarWatchChannel(sql.FieldNotNull(FieldResourceID))
}

// ResourceIDEqualFold applies the EqualFold predicate on the "resource_id" field.
func ResourceIDEqualFold(v string) predicate.CalendarWatchChannel {
	return predicate.CalendarWatchChannel(sql.FieldEqualFold(FieldResourceID, v))
}

// ResourceIDContainsFold applies the ContainsFold predicate on the "resource_id" field.
func ResourceIDContainsFold(v string) predicate.CalendarWatchChannel {
	return predicate.CalendarWatchChannel(sql.FieldContainsFold(FieldResourceID, v))
}

// ProviderCalendarIDEQ applies the EQ predicate on the "provider_calendar_id" field.
func ProviderCalendarIDEQ(v string) predicate.CalendarWatchChannel {
	return predicate.CalendarWatchChannel(sql.FieldEQ(FieldProviderCalendarID, v))
}

// ProviderCalendarIDNEQ applies the NEQ predicate on the "provider_calendar_id" field.
func ProviderCalendarIDNEQ(v string) predicate.CalendarWatchChannel {
	return predicate.CalendarWatchChannel(sql.FieldNEQ(FieldProviderCalendarID, v))
}

// ProviderCalendarIDIn applies the In predicate on the "provider_calendar_id" field.
func ProviderCalendarIDIn(vs ...string) predicate.CalendarWatchChannel {
	return predicate.CalendarWatchChannel(sql.FieldIn(FieldProviderCalendarID, vs...))
}

// ProviderCalendarIDNotIn applies the NotIn predicate on the "provider_calendar_id" field.
func ProviderCalendarIDNotIn(vs ...string) predicate.CalendarWatchChannel {
	return predicate.CalendarWatchChannel(sql.FieldNotIn(FieldProviderCalendarID, vs...))
}

// ProviderCalendarIDGT applies the GT predicate on the "provider_calendar_id" field.
func ProviderCalendarIDGT(v string) predicate.CalendarWatchChannel {
	return predicate.CalendarWatchChannel(sql.FieldGT(FieldProviderCalendarID, v))
}

// ProviderCalendarIDGTE applies the GTE predicate on the "provider_calendar_id" field.
func ProviderCalendarIDGTE(v string) predicate.CalendarWatchChannel {
	return predicate.CalendarWatchChannel(sql.FieldGTE(FieldProviderCalendarID, v))
}

// ProviderCalendarIDLT applies the LT predicate on the "provider_calendar_id" field.
func ProviderCalendarIDLT(v string) predicate.CalendarWatchChannel {
	return predicate.CalendarWatchChannel(sql.FieldLT(FieldProviderCalendarID, v))
}

// ProviderCalendarIDLTE applies the LTE predicate on the "provider_calendar_id" field.
func ProviderCalendarIDLTE(v string) predicate.CalendarWatchChannel {
	return predicate.CalendarWatchChannel(sql.FieldLTE(FieldProviderCalendarID, v))
}

// ProviderCalendarIDContains applies the Contains predicate on the "provider_calendar_id" field.
func ProviderCalendarIDContains(v string) predicate.CalendarWatchChannel {
	return predicate.CalendarWatchChannel(sql.FieldContains(FieldProviderCalendarID, v))
}

// ProviderCalendarIDHasPrefix applies the HasPrefix predicate on the "provider_calendar_id" field.
func ProviderCalendarIDHasPrefix(v string) predicate.CalendarWatchChannel {
	return predicate.CalendarWatchChannel(sql.FieldHasPrefix(FieldProviderCalendarID, v))
}

// ProviderCalendarIDHasSuffix applies the HasSuffix predicate on the "provider_calendar_id" field.
func ProviderCalendarIDHasSuffix(v string) predicate.CalendarWatchChannel {
	return predicate.CalendarWatchChannel(sql.FieldHasSuffix(FieldProviderCalendarID, v))
}

// ProviderCalendarIDEqualFold applies the EqualFold predicate on the "provider_calendar_id" field.
func ProviderCalendarIDEqualFold(v string) predicate.CalendarWatchChannel {
	return predicate.CalendarWatchChannel(sql.FieldEqualFold(FieldProviderCalendarID, v))
}

// ProviderCalendarIDContainsFold applies the ContainsFold predicate on the "provider_calendar_id" field.
func ProviderCalendarIDContainsFold(v string) predicate.CalendarWatchChannel {
	return predicate.CalendarWatchChannel(sql.FieldContainsFold(FieldProviderCalendarID, v))
}

// SyncTokenEQ applies the EQ predicate on the "sync_token" field.
func SyncTokenEQ(v string) predicate.CalendarWatchChannel {
	return predicate.CalendarWatchChannel(sql.FieldEQ(FieldSyncToken, v))
}

// SyncTokenNEQ applies the NEQ predicate on the "sync_token" field.
func SyncTokenNEQ(v string) predicate.CalendarWatchChannel {
	return predicate.CalendarWatchChannel(sql.FieldNEQ(FieldSyncToken, v))
}

// SyncTokenIn applies the In predicate on the "sync_token" field.
func SyncTokenIn(vs ...string) predicate.CalendarWatchChannel {
	return predicate.CalendarWatchChannel(sql.FieldIn(FieldSyncToken, vs...))
}

// SyncTokenNotIn applies the NotIn predicate on the "sync_token" field.
func SyncTokenNotIn(vs ...string) predicate.CalendarWatchChannel {
	return predicate.CalendarWatchChannel(sql.FieldNotIn(FieldSyncToken, vs...))
}

// SyncTokenGT applies the GT predicate on the "sync_token" field.
func SyncTokenGT(v string) predicate.CalendarWatchChannel {
	return predicate.CalendarWatchChannel(sql.FieldGT(FieldSyncToken, v))
}

// SyncTokenGTE applies the GTE predicate on the "sync_token" field.
func SyncTokenGTE(v string) predicate.CalendarWatchChannel {
	return predicate.CalendarWatchChannel(sql.FieldGTE(FieldSyncToken, v))
}

// SyncTokenLT applies the LT predicate on the "sync_token" field.
func SyncTokenLT(v string) predicate.CalendarWatchChannel {
	return predicate.CalendarWatchChannel(sql.FieldLT(FieldSyncToken, v))
}

// SyncTokenLTE applies the LTE predicate on the "sync_token" field.
func SyncTokenLTE(v string) predicate.CalendarWatchChannel {
	return predicate.CalendarWatchChannel(sql.FieldLTE(FieldSyncToken, v))
}

// SyncTokenContains applies the Contains predicate on the "sync_token" field.
func SyncTokenContains(v string) predicate.CalendarWatchChannel {
	return predicate.CalendarWatchChannel(sql.FieldContains(FieldSyncToken, v))
}

// SyncTokenHasPrefix applies the HasPrefix predicate on the "sync_token" field.
func SyncTokenHasPrefix(v string) predicate.CalendarWatchChannel {
	return predicate.CalendarWatchChannel(sql.FieldHasPrefix(FieldSyncToken, v))
}

// SyncTokenHasSuffix applies the HasSuffix predicate on the "sync_token" field.
func SyncTokenHasSuffix(v string) predicate.CalendarWatchChannel {
	return predicate.CalendarWatchChannel(sql.FieldHasSuffix(FieldSyncToken, v))
}

// SyncTokenIsNil applies the IsNil predicate on the "sync_token" field.
func SyncTokenIsNil() predicate.CalendarWatchChannel {
	return predicate.CalendarWatchChannel(sql.FieldIsNull(FieldSyncToken))
}

// SyncTokenNotNil applies the NotNil predicate on the "sync_token" field.
func SyncTokenNotNil() predicate.CalendarWatchChannel {
	return predicate.CalendarWatchChannel(sql.FieldNotNull(FieldSyncToken))
}

// SyncTokenEqualFold applies the EqualFold predicate on the "sync_token" field.
func SyncTokenEqualFold(v string) predicate.CalendarWatchChannel {
	return predicate.CalendarWatchChannel(sql.FieldEqualFold(FieldSyncToken, v))
}

// SyncTokenContainsFold applies the ContainsFold predicate on the "sync_token" field.
func SyncTokenContainsFold(v string) predicate.CalendarWatchChannel {
	return predicate.CalendarWatchChannel(sql.FieldContainsFold(FieldSyncToken, v))
}

// ExpiresAtEQ applies the EQ predicate on the "expires_at" field.
func ExpiresAtEQ(v time.Time) predicate.CalendarWatchChannel {
	return predicate.CalendarWatchChannel(sql.FieldEQ(FieldExpiresAt, v))
}

// ExpiresAtNEQ applies the NEQ predicate on the "expires_at" field.
func ExpiresAtNEQ(v time.Time) predicate.CalendarWatchChannel {
	return predicate.CalendarWatchChannel(sql.FieldNEQ(FieldExpiresAt, v))
}

// ExpiresAtIn applies the In predicate on the "expires_at" field.
func ExpiresAtIn(vs ...time.Time) predicate.CalendarWatchChannel {
	return predicate.CalendarWatchChannel(sql.FieldIn(FieldExpiresAt, vs...))
}

// ExpiresAtNotIn applies the NotIn predicate on the "expires_at" field.
func ExpiresAtNotIn(vs ...time.Time) predicate.CalendarWatchChannel {
	return predicate.CalendarWatchChannel(sql.FieldNotIn(FieldExpiresAt, vs...))
}

// ExpiresAtGT applies the GT predicate on the "expires_at" field.
func ExpiresAtGT(v time.Time) predicate.CalendarWatchChannel {
	return predicate.CalendarWatchChannel(sql.FieldGT(FieldExpiresAt, v))
}

// ExpiresAtGTE applies the GTE predicate on the "expires_at" field.
func ExpiresAtGTE(v time.Time) predicate.CalendarWatchChannel {
	return predicate.CalendarWatchChannel(sql.FieldGTE(FieldExpiresAt, v))
}

// ExpiresAtLT applies the LT predicate on the "expires_at" field.
func ExpiresAtLT(v time.Time) predicate.CalendarWatchChannel {
	return predicate.CalendarWatchChannel(sql.FieldLT(FieldExpiresAt, v))
}

// ExpiresAtLTE applies the LTE predicate on the "expires_at" field.
func ExpiresAtLTE(v time.Time) predicate.CalendarWatchChannel {
	return predicate.CalendarWatchChannel(sql.FieldLTE(FieldExpiresAt, v))
}

// ExpiresAtIsNil applies the IsNil predicate on the "expires_at" field.
func ExpiresAtIsNil() predicate.CalendarWatchChannel {
	return predicate.CalendarWatchChannel(sql.FieldIsNull(FieldExpiresAt))
}

// ExpiresAtNotNil applies the NotNil predicate on the "expires_at" field.
func ExpiresAtNotNil() predicate.CalendarWatchChannel {
	return predicate.CalendarWatchChannel(sql.FieldNotNull(FieldExpiresAt))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.CalendarWatchChannel) predicate.CalendarWatchChannel {
	return predicate.CalendarWatchChannel(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.CalendarWatchChannel) predicate.CalendarWatchChannel {
	return predicate.CalendarWatchChannel(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.CalendarWatchChannel) predicate.CalendarWatchChannel {
	return predicate.CalendarWatchChannel(sql.NotPredicates(p))
}
