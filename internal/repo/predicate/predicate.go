// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Appointment is the predicate function for appointment builders.
type Appointment func(*sql.Selector)

// AppointmentSeries is the predicate function for appointmentseries builders.
type AppointmentSeries func(*sql.Selector)

// CalendarConnection is the predicate function for calendarconnection builders.
type CalendarConnection func(*sql.Selector)

// CalendarWatchChannel is the predicate function for calendarwatchchannel builders.
type CalendarWatchChannel func(*sql.Selector)

// ClientProfile is the predicate function for clientprofile builders.
type ClientProfile func(*sql.Selector)

// Practice is the predicate function for practice builders.
type Practice func(*sql.Selector)

// StaffCalendarBlock is the predicate function for staffcalendarblock builders.
type StaffCalendarBlock func(*sql.Selector)

// StaffMember is the predicate function for staffmember builders.
type StaffMember func(*sql.Selector)
