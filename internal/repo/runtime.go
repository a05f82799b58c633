// Code generated by ent, DO NOT EDIT.

package repo

import (
	"time"

	"github.com/google/uuid"
	"github.com/juniperhealth/juniper_backend/internal/repo/appointment"
	"github.com/juniperhealth/juniper_backend/internal/repo/appointmentseries"
	"github.com/juniperhealth/juniper_backend/internal/repo/calendarconnection"
	"github.com/juniperhealth/juniper_backend/internal/repo/calendarwatchchannel"
	"github.com/juniperhealth/juniper_backend/internal/repo/clientprofile"
	"github.com/juniperhealth/juniper_backend/internal/repo/practice"
	"github.com/juniperhealth/juniper_backend/internal/repo/staffcalendarblock"
	"github.com/juniperhealth/juniper_backend/internal/repo/staffmember"
	"github.com/juniperhealth/juniper_backend/internal/schema"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	appointmentMixin := schema.Appointment{}.Mixin()
	appointmentMixinFields0 := appointmentMixin[0].Fields()
	_ = appointmentMixinFields0
	appointmentMixinFields1 := appointmentMixin[1].Fields()
	_ = appointmentMixinFields1
	appointmentFields := schema.Appointment{}.Fields()
	_ = appointmentFields
	// appointmentDescCreatedAt is the schema descriptor for created_at field.
	appointmentDescCreatedAt := appointmentMixinFields1[0].Descriptor()
	// appointment.DefaultCreatedAt holds the default value on creation for the created_at field.
	appointment.DefaultCreatedAt = appointmentDescCreatedAt.Default.(func() time.Time)
	// appointmentDescUpdatedAt is the schema descriptor for updated_at field.
	appointmentDescUpdatedAt := appointmentMixinFields1[1].Descriptor()
	// appointment.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	appointment.DefaultUpdatedAt = appointmentDescUpdatedAt.Default.(func() time.Time)
	// appointment.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	appointment.UpdateDefaultUpdatedAt = appointmentDescUpdatedAt.UpdateDefault.(func() time.Time)
	// appointmentDescTitle is the schema descriptor for title field.
	appointmentDescTitle := appointmentFields[4].Descriptor()
	// appointment.TitleValidator is a validator for the "title" field. It is called by the builders before save.
	appointment.TitleValidator = func() func(string) error {
		validators := appointmentDescTitle.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(title string) error {
			for _, fn := range fns {
				if err := fn(title); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// appointmentDescCost is the schema descriptor for cost field.
	appointmentDescCost := appointmentFields[8].Descriptor()
	// appointment.DefaultCost holds the default value on creation for the cost field.
	appointment.DefaultCost = appointmentDescCost.Default.(int64)
	// appointmentDescID is the schema descriptor for id field.
	appointmentDescID := appointmentMixinFields0[0].Descriptor()
	// appointment.DefaultID holds the default value on creation for the id field.
	appointment.DefaultID = appointmentDescID.Default.(func() uuid.UUID)
	appointmentseriesMixin := schema.AppointmentSeries{}.Mixin()
	appointmentseriesMixinFields0 := appointmentseriesMixin[0].Fields()
	_ = appointmentseriesMixinFields0
	appointmentseriesMixinFields1 := appointmentseriesMixin[1].Fields()
	_ = appointmentseriesMixinFields1
	appointmentseriesFields := schema.AppointmentSeries{}.Fields()
	_ = appointmentseriesFields
	// appointmentseriesDescCreatedAt is the schema descriptor for created_at field.
	appointmentseriesDescCreatedAt := appointmentseriesMixinFields1[0].Descriptor()
	// appointmentseries.DefaultCreatedAt holds the default value on creation for the created_at field.
	appointmentseries.DefaultCreatedAt = appointmentseriesDescCreatedAt.Default.(func() time.Time)
	// appointmentseriesDescUpdatedAt is the schema descriptor for updated_at field.
	appointmentseriesDescUpdatedAt := appointmentseriesMixinFields1[1].Descriptor()
	// appointmentseries.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	appointmentseries.DefaultUpdatedAt = appointmentseriesDescUpdatedAt.Default.(func() time.Time)
	// appointmentseries.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	appointmentseries.UpdateDefaultUpdatedAt = appointmentseriesDescUpdatedAt.UpdateDefault.(func() time.Time)
	// appointmentseriesDescTitle is the schema descriptor for title field.
	appointmentseriesDescTitle := appointmentseriesFields[3].Descriptor()
	// appointmentseries.TitleValidator is a validator for the "title" field. It is called by the builders before save.
	appointmentseries.TitleValidator = func() func(string) error {
		validators := appointmentseriesDescTitle.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(title string) error {
			for _, fn := range fns {
				if err := fn(title); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// appointmentseriesDescRrule is the schema descriptor for rrule field.
	appointmentseriesDescRrule := appointmentseriesFields[4].Descriptor()
	// appointmentseries.RruleValidator is a validator for the "rrule" field. It is called by the builders before save.
	appointmentseries.RruleValidator = appointmentseriesDescRrule.Validators[0].(func(string) error)
	// appointmentseriesDescDurationMinutes is the schema descriptor for duration_minutes field.
	appointmentseriesDescDurationMinutes := appointmentseriesFields[8].Descriptor()
	// appointmentseries.DefaultDurationMinutes holds the default value on creation for the duration_minutes field.
	appointmentseries.DefaultDurationMinutes = appointmentseriesDescDurationMinutes.Default.(int)
	// appointmentseriesDescTimezone is the schema descriptor for timezone field.
	appointmentseriesDescTimezone := appointmentseriesFields[9].Descriptor()
	// appointmentseries.TimezoneValidator is a validator for the "timezone" field. It is called by the builders before save.
	appointmentseries.TimezoneValidator = func() func(string) error {
		validators := appointmentseriesDescTimezone.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(timezone string) error {
			for _, fn := range fns {
				if err := fn(timezone); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// appointmentseriesDescIsActive is the schema descriptor for is_active field.
	appointmentseriesDescIsActive := appointmentseriesFields[14].Descriptor()
	// appointmentseries.DefaultIsActive holds the default value on creation for the is_active field.
	appointmentseries.DefaultIsActive = appointmentseriesDescIsActive.Default.(bool)
	// appointmentseriesDescID is the schema descriptor for id field.
	appointmentseriesDescID := appointmentseriesMixinFields0[0].Descriptor()
	// appointmentseries.DefaultID holds the default value on creation for the id field.
	appointmentseries.DefaultID = appointmentseriesDescID.Default.(func() uuid.UUID)
	calendarconnectionMixin := schema.CalendarConnection{}.Mixin()
	calendarconnectionMixinFields0 := calendarconnectionMixin[0].Fields()
	_ = calendarconnectionMixinFields0
	calendarconnectionMixinFields1 := calendarconnectionMixin[1].Fields()
	_ = calendarconnectionMixinFields1
	calendarconnectionFields := schema.CalendarConnection{}.Fields()
	_ = calendarconnectionFields
	// calendarconnectionDescCreatedAt is the schema descriptor for created_at field.
	calendarconnectionDescCreatedAt := calendarconnectionMixinFields1[0].Descriptor()
	// calendarconnection.DefaultCreatedAt holds the default value on creation for the created_at field.
	calendarconnection.DefaultCreatedAt = calendarconnectionDescCreatedAt.Default.(func() time.Time)
	// calendarconnectionDescUpdatedAt is the schema descriptor for updated_at field.
	calendarconnectionDescUpdatedAt := calendarconnectionMixinFields1[1].Descriptor()
	// calendarconnection.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	calendarconnection.DefaultUpdatedAt = calendarconnectionDescUpdatedAt.Default.(func() time.Time)
	// calendarconnection.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	calendarconnection.UpdateDefaultUpdatedAt = calendarconnectionDescUpdatedAt.UpdateDefault.(func() time.Time)
	// calendarconnectionDescAccountEmail is the schema descriptor for account_email field.
	calendarconnectionDescAccountEmail := calendarconnectionFields[3].Descriptor()
	// calendarconnection.AccountEmailValidator is a validator for the "account_email" field. It is called by the builders before save.
	calendarconnection.AccountEmailValidator = func() func(string) error {
		validators := calendarconnectionDescAccountEmail.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(account_email string) error {
			for _, fn := range fns {
				if err := fn(account_email); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// calendarconnectionDescIsActive is the schema descriptor for is_active field.
	calendarconnectionDescIsActive := calendarconnectionFields[6].Descriptor()
	// calendarconnection.DefaultIsActive holds the default value on creation for the is_active field.
	calendarconnection.DefaultIsActive = calendarconnectionDescIsActive.Default.(bool)
	// calendarconnectionDescID is the schema descriptor for id field.
	calendarconnectionDescID := calendarconnectionMixinFields0[0].Descriptor()
	// calendarconnection.DefaultID holds the default value on creation for the id field.
	calendarconnection.DefaultID = calendarconnectionDescID.Default.(func() uuid.UUID)
	calendarwatchchannelMixin := schema.CalendarWatchChannel{}.Mixin()
	calendarwatchchannelMixinFields0 := calendarwatchchannelMixin[0].Fields()
	_ = calendarwatchchannelMixinFields0
	calendarwatchchannelMixinFields1 := calendarwatchchannelMixin[1].Fields()
	_ = calendarwatchchannelMixinFields1
	calendarwatchchannelFields := schema.CalendarWatchChannel{}.Fields()
	_ = calendarwatchchannelFields
	// calendarwatchchannelDescCreatedAt is the schema descriptor for created_at field.
	calendarwatchchannelDescCreatedAt := calendarwatchchannelMixinFields1[0].Descriptor()
	// calendarwatchchannel.DefaultCreatedAt holds the default value on creation for the created_at field.
	calendarwatchchannel.DefaultCreatedAt = calendarwatchchannelDescCreatedAt.Default.(func() time.Time)
	// calendarwatchchannelDescUpdatedAt is the schema descriptor for updated_at field.
	calendarwatchchannelDescUpdatedAt := calendarwatchchannelMixinFields1[1].Descriptor()
	// calendarwatchchannel.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	calendarwatchchannel.DefaultUpdatedAt = calendarwatchchannelDescUpdatedAt.Default.(func() time.Time)
	// calendarwatchchannel.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	calendarwatchchannel.UpdateDefaultUpdatedAt = calendarwatchchannelDescUpdatedAt.UpdateDefault.(func() time.Time)
	// calendarwatchchannelDescChannelID is the schema descriptor for channel_id field.
	calendarwatchchannelDescChannelID := calendarwatchchannelFields[3].Descriptor()
	// calendarwatchchannel.ChannelIDValidator is a validator for the "channel_id" field. It is called by the builders before save.
	calendarwatchchannel.ChannelIDValidator = func() func(string) error {
		validators := calendarwatchchannelDescChannelID.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(channel_id string) error {
			for _, fn := range fns {
				if err := fn(channel_id); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// calendarwatchchannelDescResourceID is the schema descriptor for resource_id field.
	calendarwatchchannelDescResourceID := calendarwatchchannelFields[4].Descriptor()
	// calendarwatchchannel.ResourceIDValidator is a validator for the "resource_id" field. It is called by the builders before save.
	calendarwatchchannel.ResourceIDValidator = calendarwatchchannelDescResourceID.Validators[0].(func(string) error)
	// calendarwatchchannelDescProviderCalendarID is the schema descriptor for provider_calendar_id field.
	calendarwatchchannelDescProviderCalendarID := calendarwatchchannelFields[5].Descriptor()
	// calendarwatchchannel.ProviderCalendarIDValidator is a validator for the "provider_calendar_id" field. It is called by the builders before save.
	calendarwatchchannel.ProviderCalendarIDValidator = func() func(string) error {
		validators := calendarwatchchannelDescProviderCalendarID.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(provider_calendar_id string) error {
			for _, fn := range fns {
				if err := fn(provider_calendar_id); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// calendarwatchchannelDescID is the schema descriptor for id field.
	calendarwatchchannelDescID := calendarwatchchannelMixinFields0[0].Descriptor()
	// calendarwatchchannel.DefaultID holds the default value on creation for the id field.
	calendarwatchchannel.DefaultID = calendarwatchchannelDescID.Default.(func() uuid.UUID)
	clientprofileMixin := schema.ClientProfile{}.Mixin()
	clientprofileMixinFields0 := clientprofileMixin[0].Fields()
	_ = clientprofileMixinFields0
	clientprofileMixinFields1 := clientprofileMixin[1].Fields()
	_ = clientprofileMixinFields1
	clientprofileFields := schema.ClientProfile{}.Fields()
	_ = clientprofileFields
	// clientprofileDescCreatedAt is the schema descriptor for created_at field.
	clientprofileDescCreatedAt := clientprofileMixinFields1[0].Descriptor()
	// clientprofile.DefaultCreatedAt holds the default value on creation for the created_at field.
	clientprofile.DefaultCreatedAt = clientprofileDescCreatedAt.Default.(func() time.Time)
	// clientprofileDescUpdatedAt is the schema descriptor for updated_at field.
	clientprofileDescUpdatedAt := clientprofileMixinFields1[1].Descriptor()
	// clientprofile.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	clientprofile.DefaultUpdatedAt = clientprofileDescUpdatedAt.Default.(func() time.Time)
	// clientprofile.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	clientprofile.UpdateDefaultUpdatedAt = clientprofileDescUpdatedAt.UpdateDefault.(func() time.Time)
	// clientprofileDescFirstName is the schema descriptor for first_name field.
	clientprofileDescFirstName := clientprofileFields[1].Descriptor()
	// clientprofile.FirstNameValidator is a validator for the "first_name" field. It is called by the builders before save.
	clientprofile.FirstNameValidator = func() func(string) error {
		validators := clientprofileDescFirstName.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(first_name string) error {
			for _, fn := range fns {
				if err := fn(first_name); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// clientprofileDescLastName is the schema descriptor for last_name field.
	clientprofileDescLastName := clientprofileFields[2].Descriptor()
	// clientprofile.LastNameValidator is a validator for the "last_name" field. It is called by the builders before save.
	clientprofile.LastNameValidator = func() func(string) error {
		validators := clientprofileDescLastName.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(last_name string) error {
			for _, fn := range fns {
				if err := fn(last_name); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// clientprofileDescEmail is the schema descriptor for email field.
	clientprofileDescEmail := clientprofileFields[3].Descriptor()
	// clientprofile.EmailValidator is a validator for the "email" field. It is called by the builders before save.
	clientprofile.EmailValidator = clientprofileDescEmail.Validators[0].(func(string) error)
	// clientprofileDescPhone is the schema descriptor for phone field.
	clientprofileDescPhone := clientprofileFields[4].Descriptor()
	// clientprofile.PhoneValidator is a validator for the "phone" field. It is called by the builders before save.
	clientprofile.PhoneValidator = clientprofileDescPhone.Validators[0].(func(string) error)
	// clientprofileDescIsActive is the schema descriptor for is_active field.
	clientprofileDescIsActive := clientprofileFields[5].Descriptor()
	// clientprofile.DefaultIsActive holds the default value on creation for the is_active field.
	clientprofile.DefaultIsActive = clientprofileDescIsActive.Default.(bool)
	// clientprofileDescID is the schema descriptor for id field.
	clientprofileDescID := clientprofileMixinFields0[0].Descriptor()
	// clientprofile.DefaultID holds the default value on creation for the id field.
	clientprofile.DefaultID = clientprofileDescID.Default.(func() uuid.UUID)
	practiceMixin := schema.Practice{}.Mixin()
	practiceMixinFields0 := practiceMixin[0].Fields()
	_ = practiceMixinFields0
	practiceMixinFields1 := practiceMixin[1].Fields()
	_ = practiceMixinFields1
	practiceFields := schema.Practice{}.Fields()
	_ = practiceFields
	// practiceDescCreatedAt is the schema descriptor for created_at field.
	practiceDescCreatedAt := practiceMixinFields1[0].Descriptor()
	// practice.DefaultCreatedAt holds the default value on creation for the created_at field.
	practice.DefaultCreatedAt = practiceDescCreatedAt.Default.(func() time.Time)
	// practiceDescUpdatedAt is the schema descriptor for updated_at field.
	practiceDescUpdatedAt := practiceMixinFields1[1].Descriptor()
	// practice.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	practice.DefaultUpdatedAt = practiceDescUpdatedAt.Default.(func() time.Time)
	// practice.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	practice.UpdateDefaultUpdatedAt = practiceDescUpdatedAt.UpdateDefault.(func() time.Time)
	// practiceDescName is the schema descriptor for name field.
	practiceDescName := practiceFields[0].Descriptor()
	// practice.NameValidator is a validator for the "name" field. It is called by the builders before save.
	practice.NameValidator = func() func(string) error {
		validators := practiceDescName.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(name string) error {
			for _, fn := range fns {
				if err := fn(name); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// practiceDescSlug is the schema descriptor for slug field.
	practiceDescSlug := practiceFields[1].Descriptor()
	// practice.SlugValidator is a validator for the "slug" field. It is called by the builders before save.
	practice.SlugValidator = func() func(string) error {
		validators := practiceDescSlug.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(slug string) error {
			for _, fn := range fns {
				if err := fn(slug); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// practiceDescTimezone is the schema descriptor for timezone field.
	practiceDescTimezone := practiceFields[2].Descriptor()
	// practice.DefaultTimezone holds the default value on creation for the timezone field.
	practice.DefaultTimezone = practiceDescTimezone.Default.(string)
	// practice.TimezoneValidator is a validator for the "timezone" field. It is called by the builders before save.
	practice.TimezoneValidator = practiceDescTimezone.Validators[0].(func(string) error)
	// practiceDescPhone is the schema descriptor for phone field.
	practiceDescPhone := practiceFields[3].Descriptor()
	// practice.PhoneValidator is a validator for the "phone" field. It is called by the builders before save.
	practice.PhoneValidator = practiceDescPhone.Validators[0].(func(string) error)
	// practiceDescIsActive is the schema descriptor for is_active field.
	practiceDescIsActive := practiceFields[5].Descriptor()
	// practice.DefaultIsActive holds the default value on creation for the is_active field.
	practice.DefaultIsActive = practiceDescIsActive.Default.(bool)
	// practiceDescID is the schema descriptor for id field.
	practiceDescID := practiceMixinFields0[0].Descriptor()
	// practice.DefaultID holds the default value on creation for the id field.
	practice.DefaultID = practiceDescID.Default.(func() uuid.UUID)
	staffcalendarblockMixin := schema.StaffCalendarBlock{}.Mixin()
	staffcalendarblockMixinFields0 := staffcalendarblockMixin[0].Fields()
	_ = staffcalendarblockMixinFields0
	staffcalendarblockMixinFields1 := staffcalendarblockMixin[1].Fields()
	_ = staffcalendarblockMixinFields1
	staffcalendarblockFields := schema.StaffCalendarBlock{}.Fields()
	_ = staffcalendarblockFields
	// staffcalendarblockDescCreatedAt is the schema descriptor for created_at field.
	staffcalendarblockDescCreatedAt := staffcalendarblockMixinFields1[0].Descriptor()
	// staffcalendarblock.DefaultCreatedAt holds the default value on creation for the created_at field.
	staffcalendarblock.DefaultCreatedAt = staffcalendarblockDescCreatedAt.Default.(func() time.Time)
	// staffcalendarblockDescUpdatedAt is the schema descriptor for updated_at field.
	staffcalendarblockDescUpdatedAt := staffcalendarblockMixinFields1[1].Descriptor()
	// staffcalendarblock.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	staffcalendarblock.DefaultUpdatedAt = staffcalendarblockDescUpdatedAt.Default.(func() time.Time)
	// staffcalendarblock.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	staffcalendarblock.UpdateDefaultUpdatedAt = staffcalendarblockDescUpdatedAt.UpdateDefault.(func() time.Time)
	// staffcalendarblockDescExternalEventID is the schema descriptor for external_event_id field.
	staffcalendarblockDescExternalEventID := staffcalendarblockFields[3].Descriptor()
	// staffcalendarblock.ExternalEventIDValidator is a validator for the "external_event_id" field. It is called by the builders before save.
	staffcalendarblock.ExternalEventIDValidator = func() func(string) error {
		validators := staffcalendarblockDescExternalEventID.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(external_event_id string) error {
			for _, fn := range fns {
				if err := fn(external_event_id); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// staffcalendarblockDescLabel is the schema descriptor for label field.
	staffcalendarblockDescLabel := staffcalendarblockFields[6].Descriptor()
	// staffcalendarblock.DefaultLabel holds the default value on creation for the label field.
	staffcalendarblock.DefaultLabel = staffcalendarblockDescLabel.Default.(string)
	// staffcalendarblock.LabelValidator is a validator for the "label" field. It is called by the builders before save.
	staffcalendarblock.LabelValidator = staffcalendarblockDescLabel.Validators[0].(func(string) error)
	// staffcalendarblockDescID is the schema descriptor for id field.
	staffcalendarblockDescID := staffcalendarblockMixinFields0[0].Descriptor()
	// staffcalendarblock.DefaultID holds the default value on creation for the id field.
	staffcalendarblock.DefaultID = staffcalendarblockDescID.Default.(func() uuid.UUID)
	staffmemberMixin := schema.StaffMember{}.Mixin()
	staffmemberMixinFields0 := staffmemberMixin[0].Fields()
	_ = staffmemberMixinFields0
	staffmemberMixinFields1 := staffmemberMixin[1].Fields()
	_ = staffmemberMixinFields1
	staffmemberFields := schema.StaffMember{}.Fields()
	_ = staffmemberFields
	// staffmemberDescCreatedAt is the schema descriptor for created_at field.
	staffmemberDescCreatedAt := staffmemberMixinFields1[0].Descriptor()
	// staffmember.DefaultCreatedAt holds the default value on creation for the created_at field.
	staffmember.DefaultCreatedAt = staffmemberDescCreatedAt.Default.(func() time.Time)
	// staffmemberDescUpdatedAt is the schema descriptor for updated_at field.
	staffmemberDescUpdatedAt := staffmemberMixinFields1[1].Descriptor()
	// staffmember.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	staffmember.DefaultUpdatedAt = staffmemberDescUpdatedAt.Default.(func() time.Time)
	// staffmember.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	staffmember.UpdateDefaultUpdatedAt = staffmemberDescUpdatedAt.UpdateDefault.(func() time.Time)
	// staffmemberDescFirstName is the schema descriptor for first_name field.
	staffmemberDescFirstName := staffmemberFields[1].Descriptor()
	// staffmember.FirstNameValidator is a validator for the "first_name" field. It is called by the builders before save.
	staffmember.FirstNameValidator = func() func(string) error {
		validators := staffmemberDescFirstName.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(first_name string) error {
			for _, fn := range fns {
				if err := fn(first_name); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// staffmemberDescLastName is the schema descriptor for last_name field.
	staffmemberDescLastName := staffmemberFields[2].Descriptor()
	// staffmember.LastNameValidator is a validator for the "last_name" field. It is called by the builders before save.
	staffmember.LastNameValidator = func() func(string) error {
		validators := staffmemberDescLastName.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(last_name string) error {
			for _, fn := range fns {
				if err := fn(last_name); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// staffmemberDescEmail is the schema descriptor for email field.
	staffmemberDescEmail := staffmemberFields[3].Descriptor()
	// staffmember.EmailValidator is a validator for the "email" field. It is called by the builders before save.
	staffmember.EmailValidator = func() func(string) error {
		validators := staffmemberDescEmail.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(email string) error {
			for _, fn := range fns {
				if err := fn(email); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// staffmemberDescLicenseNumber is the schema descriptor for license_number field.
	staffmemberDescLicenseNumber := staffmemberFields[6].Descriptor()
	// staffmember.LicenseNumberValidator is a validator for the "license_number" field. It is called by the builders before save.
	staffmember.LicenseNumberValidator = staffmemberDescLicenseNumber.Validators[0].(func(string) error)
	// staffmemberDescIsActive is the schema descriptor for is_active field.
	staffmemberDescIsActive := staffmemberFields[7].Descriptor()
	// staffmember.DefaultIsActive holds the default value on creation for the is_active field.
	staffmember.DefaultIsActive = staffmemberDescIsActive.Default.(bool)
	// staffmemberDescID is the schema descriptor for id field.
	staffmemberDescID := staffmemberMixinFields0[0].Descriptor()
	// staffmember.DefaultID holds the default value on creation for the id field.
	staffmember.DefaultID = staffmemberDescID.Default.(func() uuid.UUID)
}
