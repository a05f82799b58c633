// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AppointmentsColumns holds the columns for the "appointments" table.
	AppointmentsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "practice_id", Type: field.TypeUUID},
		{Name: "staff_id", Type: field.TypeUUID},
		{Name: "client_id", Type: field.TypeUUID},
		{Name: "series_id", Type: field.TypeUUID, Nullable: true},
		{Name: "title", Type: field.TypeString, Size: 255},
		{Name: "start_time", Type: field.TypeTime},
		{Name: "end_time", Type: field.TypeTime},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"scheduled", "completed", "cancelled", "no_show"}, Default: "scheduled"},
		{Name: "cost", Type: field.TypeInt64, Default: 0},
		{Name: "notes", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "cancellation_reason", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "cancelled_at", Type: field.TypeTime, Nullable: true},
		{Name: "completed_at", Type: field.TypeTime, Nullable: true},
	}
	// AppointmentsTable holds the schema information for the "appointments" table.
	AppointmentsTable = &schema.Table{
		Name:       "appointments",
		Columns:    AppointmentsColumns,
		PrimaryKey: []*schema.Column{AppointmentsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "appointment_practice_id_start_time",
				Unique:  false,
				Columns: []*schema.Column{AppointmentsColumns[3], AppointmentsColumns[8]},
			},
			{
				Name:    "appointment_staff_id_status_start_time",
				Unique:  false,
				Columns: []*schema.Column{AppointmentsColumns[4], AppointmentsColumns[10], AppointmentsColumns[8]},
			},
			{
				Name:    "appointment_client_id_status",
				Unique:  false,
				Columns: []*schema.Column{AppointmentsColumns[5], AppointmentsColumns[10]},
			},
			{
				Name:    "appointment_series_id_start_time",
				Unique:  true,
				Columns: []*schema.Column{AppointmentsColumns[6], AppointmentsColumns[8]},
			},
		},
	}
	// AppointmentSeriesColumns holds the columns for the "appointment_series" table.
	AppointmentSeriesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "practice_id", Type: field.TypeUUID},
		{Name: "staff_id", Type: field.TypeUUID},
		{Name: "client_id", Type: field.TypeUUID},
		{Name: "title", Type: field.TypeString, Size: 255},
		{Name: "rrule", Type: field.TypeString},
		{Name: "series_start_date", Type: field.TypeTime},
		{Name: "start_hour", Type: field.TypeInt8},
		{Name: "start_minute", Type: field.TypeInt8},
		{Name: "duration_minutes", Type: field.TypeInt, Default: 50},
		{Name: "timezone", Type: field.TypeString, Size: 64},
		{Name: "until_date", Type: field.TypeTime, Nullable: true},
		{Name: "generation_cap_days", Type: field.TypeInt, Nullable: true},
		{Name: "last_generated_until", Type: field.TypeTime, Nullable: true},
		{Name: "cost_estimate", Type: field.TypeInt64, Nullable: true},
		{Name: "is_active", Type: field.TypeBool, Default: true},
	}
	// AppointmentSeriesTable holds the schema information for the "appointment_series" table.
	AppointmentSeriesTable = &schema.Table{
		Name:       "appointment_series",
		Columns:    AppointmentSeriesColumns,
		PrimaryKey: []*schema.Column{AppointmentSeriesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "appointmentseries_practice_id_is_active",
				Unique:  false,
				Columns: []*schema.Column{AppointmentSeriesColumns[3], AppointmentSeriesColumns[17]},
			},
			{
				Name:    "appointmentseries_staff_id",
				Unique:  false,
				Columns: []*schema.Column{AppointmentSeriesColumns[4]},
			},
			{
				Name:    "appointmentseries_client_id",
				Unique:  false,
				Columns: []*schema.Column{AppointmentSeriesColumns[5]},
			},
		},
	}
	// CalendarConnectionsColumns holds the columns for the "calendar_connections" table.
	CalendarConnectionsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "practice_id", Type: field.TypeUUID},
		{Name: "staff_id", Type: field.TypeUUID},
		{Name: "provider", Type: field.TypeEnum, Enums: []string{"google"}},
		{Name: "account_email", Type: field.TypeString, Size: 255},
		{Name: "refresh_token_enc", Type: field.TypeString},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"active", "needs_reconnect"}, Default: "active"},
		{Name: "is_active", Type: field.TypeBool, Default: true},
	}
	// CalendarConnectionsTable holds the schema information for the "calendar_connections" table.
	CalendarConnectionsTable = &schema.Table{
		Name:       "calendar_connections",
		Columns:    CalendarConnectionsColumns,
		PrimaryKey: []*schema.Column{CalendarConnectionsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "calendarconnection_staff_id_provider",
				Unique:  true,
				Columns: []*schema.Column{CalendarConnectionsColumns[4], CalendarConnectionsColumns[5]},
			},
			{
				Name:    "calendarconnection_practice_id",
				Unique:  false,
				Columns: []*schema.Column{CalendarConnectionsColumns[3]},
			},
		},
	}
	// CalendarWatchChannelsColumns holds the columns for the "calendar_watch_channels" table.
	CalendarWatchChannelsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "practice_id", Type: field.TypeUUID},
		{Name: "staff_id", Type: field.TypeUUID},
		{Name: "provider", Type: field.TypeEnum, Enums: []string{"google"}},
		{Name: "channel_id", Type: field.TypeString, Unique: true, Size: 255},
		{Name: "resource_id", Type: field.TypeString, Nullable: true, Size: 255},
		{Name: "provider_calendar_id", Type: field.TypeString, Size: 255},
		{Name: "sync_token", Type: field.TypeString, Nullable: true},
		{Name: "expires_at", Type: field.TypeTime, Nullable: true},
	}
	// CalendarWatchChannelsTable holds the schema information for the "calendar_watch_channels" table.
	CalendarWatchChannelsTable = &schema.Table{
		Name:       "calendar_watch_channels",
		Columns:    CalendarWatchChannelsColumns,
		PrimaryKey: []*schema.Column{CalendarWatchChannelsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "calendarwatchchannel_channel_id",
				Unique:  false,
				Columns: []*schema.Column{CalendarWatchChannelsColumns[6]},
			},
			{
				Name:    "calendarwatchchannel_staff_id_provider",
				Unique:  false,
				Columns: []*schema.Column{CalendarWatchChannelsColumns[4], CalendarWatchChannelsColumns[5]},
			},
		},
	}
	// ClientProfilesColumns holds the columns for the "client_profiles" table.
	ClientProfilesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "deleted_at", Type: field.TypeTime, Nullable: true},
		{Name: "practice_id", Type: field.TypeUUID},
		{Name: "first_name", Type: field.TypeString, Size: 100},
		{Name: "last_name", Type: field.TypeString, Size: 100},
		{Name: "email", Type: field.TypeString, Nullable: true, Size: 255},
		{Name: "phone", Type: field.TypeString, Nullable: true, Size: 20},
		{Name: "is_active", Type: field.TypeBool, Default: true},
	}
	// ClientProfilesTable holds the schema information for the "client_profiles" table.
	ClientProfilesTable = &schema.Table{
		Name:       "client_profiles",
		Columns:    ClientProfilesColumns,
		PrimaryKey: []*schema.Column{ClientProfilesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "clientprofile_practice_id",
				Unique:  false,
				Columns: []*schema.Column{ClientProfilesColumns[4]},
			},
			{
				Name:    "clientprofile_practice_id_last_name",
				Unique:  false,
				Columns: []*schema.Column{ClientProfilesColumns[4], ClientProfilesColumns[6]},
			},
		},
	}
	// PracticesColumns holds the columns for the "practices" table.
	PracticesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "deleted_at", Type: field.TypeTime, Nullable: true},
		{Name: "name", Type: field.TypeString, Size: 255},
		{Name: "slug", Type: field.TypeString, Unique: true, Size: 100},
		{Name: "timezone", Type: field.TypeString, Size: 64, Default: "UTC"},
		{Name: "phone", Type: field.TypeString, Nullable: true, Size: 20},
		{Name: "address", Type: field.TypeString, Nullable: true},
		{Name: "is_active", Type: field.TypeBool, Default: true},
	}
	// PracticesTable holds the schema information for the "practices" table.
	PracticesTable = &schema.Table{
		Name:       "practices",
		Columns:    PracticesColumns,
		PrimaryKey: []*schema.Column{PracticesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "practice_slug",
				Unique:  false,
				Columns: []*schema.Column{PracticesColumns[5]},
			},
		},
	}
	// StaffCalendarBlocksColumns holds the columns for the "staff_calendar_blocks" table.
	StaffCalendarBlocksColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "practice_id", Type: field.TypeUUID},
		{Name: "staff_id", Type: field.TypeUUID},
		{Name: "source", Type: field.TypeEnum, Enums: []string{"google"}},
		{Name: "external_event_id", Type: field.TypeString, Size: 255},
		{Name: "start_time", Type: field.TypeTime},
		{Name: "end_time", Type: field.TypeTime},
		{Name: "label", Type: field.TypeString, Size: 50, Default: "Busy"},
	}
	// StaffCalendarBlocksTable holds the schema information for the "staff_calendar_blocks" table.
	StaffCalendarBlocksTable = &schema.Table{
		Name:       "staff_calendar_blocks",
		Columns:    StaffCalendarBlocksColumns,
		PrimaryKey: []*schema.Column{StaffCalendarBlocksColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "staffcalendarblock_staff_id_source_external_event_id",
				Unique:  true,
				Columns: []*schema.Column{StaffCalendarBlocksColumns[4], StaffCalendarBlocksColumns[5], StaffCalendarBlocksColumns[6]},
			},
			{
				Name:    "staffcalendarblock_staff_id_start_time",
				Unique:  false,
				Columns: []*schema.Column{StaffCalendarBlocksColumns[4], StaffCalendarBlocksColumns[7]},
			},
		},
	}
	// StaffMembersColumns holds the columns for the "staff_members" table.
	StaffMembersColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "first_name", Type: field.TypeString, Size: 100},
		{Name: "last_name", Type: field.TypeString, Size: 100},
		{Name: "email", Type: field.TypeString, Size: 255},
		{Name: "password_hash", Type: field.TypeString},
		{Name: "role", Type: field.TypeEnum, Enums: []string{"owner", "admin", "clinician"}, Default: "clinician"},
		{Name: "license_number", Type: field.TypeString, Nullable: true, Size: 100},
		{Name: "is_active", Type: field.TypeBool, Default: true},
		{Name: "practice_id", Type: field.TypeUUID},
	}
	// StaffMembersTable holds the schema information for the "staff_members" table.
	StaffMembersTable = &schema.Table{
		Name:       "staff_members",
		Columns:    StaffMembersColumns,
		PrimaryKey: []*schema.Column{StaffMembersColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "staff_members_practices_staff",
				Columns:    []*schema.Column{StaffMembersColumns[10]},
				RefColumns: []*schema.Column{PracticesColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "staffmember_practice_id_email",
				Unique:  true,
				Columns: []*schema.Column{StaffMembersColumns[10], StaffMembersColumns[5]},
			},
			{
				Name:    "staffmember_practice_id",
				Unique:  false,
				Columns: []*schema.Column{StaffMembersColumns[10]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AppointmentsTable,
		AppointmentSeriesTable,
		CalendarConnectionsTable,
		CalendarWatchChannelsTable,
		ClientProfilesTable,
		PracticesTable,
		StaffCalendarBlocksTable,
		StaffMembersTable,
	}
)

func init() {
	StaffMembersTable.ForeignKeys[0].RefTable = PracticesTable
}
