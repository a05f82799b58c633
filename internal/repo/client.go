// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/google/uuid"
	"github.com/juniperhealth/juniper_backend/internal/repo/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/juniperhealth/juniper_backend/internal/repo/appointment"
	"github.com/juniperhealth/juniper_backend/internal/repo/appointmentseries"
	"github.com/juniperhealth/juniper_backend/internal/repo/calendarconnection"
	"github.com/juniperhealth/juniper_backend/internal/repo/calendarwatchchannel"
	"github.com/juniperhealth/juniper_backend/internal/repo/clientprofile"
	"github.com/juniperhealth/juniper_backend/internal/repo/practice"
	"github.com/juniperhealth/juniper_backend/internal/repo/staffcalendarblock"
	"github.com/juniperhealth/juniper_backend/internal/repo/staffmember"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// Appointment is the client for interacting with the Appointment builders.
	Appointment *AppointmentClient
	// AppointmentSeries is the client for interacting with the AppointmentSeries builders.
	AppointmentSeries *AppointmentSeriesClient
	// CalendarConnection is the client for interacting with the CalendarConnection builders.
	CalendarConnection *CalendarConnectionClient
	// CalendarWatchChannel is the client for interacting with the CalendarWatchChannel builders.
	CalendarWatchChannel *CalendarWatchChannelClient
	// ClientProfile is the client for interacting with the ClientProfile builders.
	ClientProfile *ClientProfileClient
	// Practice is the client for interacting with the Practice builders.
	Practice *PracticeClient
	// StaffCalendarBlock is the client for interacting with the StaffCalendarBlock builders.
	StaffCalendarBlock *StaffCalendarBlockClient
	// StaffMember is the client for interacting with the StaffMember builders.
	StaffMember *StaffMemberClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.Appointment = NewAppointmentClient(c.config)
	c.AppointmentSeries = NewAppointmentSeriesClient(c.config)
	c.CalendarConnection = NewCalendarConnectionClient(c.config)
	c.CalendarWatchChannel = NewCalendarWatchChannelClient(c.config)
	c.ClientProfile = NewClientProfileClient(c.config)
	c.Practice = NewPracticeClient(c.config)
	c.StaffCalendarBlock = NewStaffCalendarBlockClient(c.config)
	c.StaffMember = NewStaffMemberClient(c.config)
}

type (
	// config is the configuration for the client and its builder.
	config struct {
		// driver used for executing database requests.
		driver dialect.Driver
		// debug enable a debug logging.
		debug bool
		// log used for logging on debug mode.
		log func(...any)
		// hooks to execute on mutations.
		hooks *hooks
		// interceptors to execute on queries.
		inters *inters
	}
	// Option function to configure the client.
	Option func(*config)
)

// newConfig creates a new config for the client.
func newConfig(opts ...Option) config {
	cfg := config{log: log.Println, hooks: &hooks{}, inters: &inters{}}
	cfg.options(opts...)
	return cfg
}

// options applies the options on the config object.
func (c *config) options(opts ...Option) {
	for _, opt := range opts {
		opt(c)
	}
	if c.debug {
		c.driver = dialect.Debug(c.driver, c.log)
	}
}

// Debug enables debug logging on the ent.Driver.
func Debug() Option {
	return func(c *config) {
		c.debug = true
	}
}

// Log sets the logging function for debug mode.
func Log(fn func(...any)) Option {
	return func(c *config) {
		c.log = fn
	}
}

// Driver configures the client driver.
func Driver(driver dialect.Driver) Option {
	return func(c *config) {
		c.driver = driver
	}
}

// Open opens a database/sql.DB specified by the driver name and
// the data source name, and returns a new client attached to it.
// Optional parameters can be added for configuring the client.
func Open(driverName, dataSourceName string, options ...Option) (*Client, error) {
	switch driverName {
	case dialect.MySQL, dialect.Postgres, dialect.SQLite:
		drv, err := sql.Open(driverName, dataSourceName)
		if err != nil {
			return nil, err
		}
		return NewClient(append(options, Driver(drv))...), nil
	default:
		return nil, fmt.Errorf("unsupported driver: %q", driverName)
	}
}

// ErrTxStarted is returned when trying to start a new transaction from a transactional client.
var ErrTxStarted = errors.New("repo: cannot start a transaction within a transaction")

// Tx returns a new transactional client. The provided context
// is used until the transaction is committed or rolled back.
func (c *Client) Tx(ctx context.Context) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, ErrTxStarted
	}
	tx, err := newTx(ctx, c.driver)
	if err != nil {
		return nil, fmt.Errorf("repo: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = tx
	return &Tx{
		ctx:                  ctx,
		config:               cfg,
		Appointment:          NewAppointmentClient(cfg),
		AppointmentSeries:    NewAppointmentSeriesClient(cfg),
		CalendarConnection:   NewCalendarConnectionClient(cfg),
		CalendarWatchChannel: NewCalendarWatchChannelClient(cfg),
		ClientProfile:        NewClientProfileClient(cfg),
		Practice:             NewPracticeClient(cfg),
		StaffCalendarBlock:   NewStaffCalendarBlockClient(cfg),
		StaffMember:          NewStaffMemberClient(cfg),
	}, nil
}

// BeginTx returns a transactional client with specified options.
func (c *Client) BeginTx(ctx context.Context, opts *sql.TxOptions) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, errors.New("ent: cannot start a transaction within a transaction")
	}
	tx, err := c.driver.(interface {
		BeginTx(context.Context, *sql.TxOptions) (dialect.Tx, error)
	}).BeginTx(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("ent: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = &txDriver{tx: tx, drv: c.driver}
	return &Tx{
		ctx:                  ctx,
		config:               cfg,
		Appointment:          NewAppointmentClient(cfg),
		AppointmentSeries:    NewAppointmentSeriesClient(cfg),
		CalendarConnection:   NewCalendarConnectionClient(cfg),
		CalendarWatchChannel: NewCalendarWatchChannelClient(cfg),
		ClientProfile:        NewClientProfileClient(cfg),
		Practice:             NewPracticeClient(cfg),
		StaffCalendarBlock:   NewStaffCalendarBlockClient(cfg),
		StaffMember:          NewStaffMemberClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		Appointment.
//		Query().
//		Count(ctx)
func (c *Client) Debug() *Client {
	if c.debug {
		return c
	}
	cfg := c.config
	cfg.driver = dialect.Debug(c.driver, c.log)
	client := &Client{config: cfg}
	client.init()
	return client
}

// Close closes the database connection and prevents new queries from starting.
func (c *Client) Close() error {
	return c.driver.Close()
}

// Use adds the mutation hooks to all the entity clients.
// In order to add hooks to a specific client, call: `client.Node.Use(...)`.
func (c *Client) Use(hooks ...Hook) {
	for _, n := range []interface{ Use(...Hook) }{
		c.Appointment, c.AppointmentSeries, c.CalendarConnection,
		c.CalendarWatchChannel, c.ClientProfile, c.Practice, c.StaffCalendarBlock,
		c.StaffMember,
	} {
		n.Use(hooks...)
	}
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	for _, n := range []interface{ Intercept(...Interceptor) }{
		c.Appointment, c.AppointmentSeries, c.CalendarConnection,
		c.CalendarWatchChannel, c.ClientProfile, c.Practice, c.StaffCalendarBlock,
		c.StaffMember,
	} {
		n.Intercept(interceptors...)
	}
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *AppointmentMutation:
		return c.Appointment.mutate(ctx, m)
	case *AppointmentSeriesMutation:
		return c.AppointmentSeries.mutate(ctx, m)
	case *CalendarConnectionMutation:
		return c.CalendarConnection.mutate(ctx, m)
	case *CalendarWatchChannelMutation:
		return c.CalendarWatchChannel.mutate(ctx, m)
	case *ClientProfileMutation:
		return c.ClientProfile.mutate(ctx, m)
	case *PracticeMutation:
		return c.Practice.mutate(ctx, m)
	case *StaffCalendarBlockMutation:
		return c.StaffCalendarBlock.mutate(ctx, m)
	case *StaffMemberMutation:
		return c.StaffMember.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("repo: unknown mutation type %T", m)
	}
}

// AppointmentClient is a client for the Appointment schema.
type AppointmentClient struct {
	config
}

// NewAppointmentClient returns a client for the Appointment from the given config.
func NewAppointmentClient(c config) *AppointmentClient {
	return &AppointmentClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `appointment.Hooks(f(g(h())))`.
func (c *AppointmentClient) Use(hooks ...Hook) {
	c.hooks.Appointment = append(c.hooks.Appointment, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `appointment.Intercept(f(g(h())))`.
func (c *AppointmentClient) Intercept(interceptors ...Interceptor) {
	c.inters.Appointment = append(c.inters.Appointment, interceptors...)
}

// Create returns a builder for creating a Appointment entity.
func (c *AppointmentClient) Create() *AppointmentCreate {
	mutation := newAppointmentMutation(c.config, OpCreate)
	return &AppointmentCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Appointment entities.
func (c *AppointmentClient) CreateBulk(builders ...*AppointmentCreate) *AppointmentCreateBulk {
	return &AppointmentCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *AppointmentClient) MapCreateBulk(slice any, setFunc func(*AppointmentCreate, int)) *AppointmentCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &AppointmentCreateBulk{err: fmt.Errorf("calling to AppointmentClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*AppointmentCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &AppointmentCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Appointment.
func (c *AppointmentClient) Update() *AppointmentUpdate {
	mutation := newAppointmentMutation(c.config, OpUpdate)
	return &AppointmentUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *AppointmentClient) UpdateOne(_m *Appointment) *AppointmentUpdateOne {
	mutation := newAppointmentMutation(c.config, OpUpdateOne, withAppointment(_m))
	return &AppointmentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *AppointmentClient) UpdateOneID(id uuid.UUID) *AppointmentUpdateOne {
	mutation := newAppointmentMutation(c.config, OpUpdateOne, withAppointmentID(id))
	return &AppointmentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Appointment.
func (c *AppointmentClient) Delete() *AppointmentDelete {
	mutation := newAppointmentMutation(c.config, OpDelete)
	return &AppointmentDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *AppointmentClient) DeleteOne(_m *Appointment) *AppointmentDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *AppointmentClient) DeleteOneID(id uuid.UUID) *AppointmentDeleteOne {
	builder := c.Delete().Where(appointment.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &AppointmentDeleteOne{builder}
}

// Query returns a query builder for Appointment.
func (c *AppointmentClient) Query() *AppointmentQuery {
	return &AppointmentQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeAppointment},
		inters: c.Interceptors(),
	}
}

// Get returns a Appointment entity by its id.
func (c *AppointmentClient) Get(ctx context.Context, id uuid.UUID) (*Appointment, error) {
	return c.Query().Where(appointment.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *AppointmentClient) GetX(ctx context.Context, id uuid.UUID) *Appointment {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *AppointmentClient) Hooks() []Hook {
	return c.hooks.Appointment
}

// Interceptors returns the client interceptors.
func (c *AppointmentClient) Interceptors() []Interceptor {
	return c.inters.Appointment
}

func (c *AppointmentClient) mutate(ctx context.Context, m *AppointmentMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&AppointmentCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&AppointmentUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&AppointmentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&AppointmentDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("repo: unknown Appointment mutation op: %q", m.Op())
	}
}

// AppointmentSeriesClient is a client for the AppointmentSeries schema.
type AppointmentSeriesClient struct {
	config
}

// NewAppointmentSeriesClient returns a client for the AppointmentSeries from the given config.
func NewAppointmentSeriesClient(c config) *AppointmentSeriesClient {
	return &AppointmentSeriesClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `appointmentseries.Hooks(f(g(h())))`.
func (c *AppointmentSeriesClient) Use(hooks ...Hook) {
	c.hooks.AppointmentSeries = append(c.hooks.AppointmentSeries, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `appointmentseries.Intercept(f(g(h())))`.
func (c *AppointmentSeriesClient) Intercept(interceptors ...Interceptor) {
	c.inters.AppointmentSeries = append(c.inters.AppointmentSeries, interceptors...)
}

// Create returns a builder for creating a AppointmentSeries entity.
func (c *AppointmentSeriesClient) Create() *AppointmentSeriesCreate {
	mutation := newAppointmentSeriesMutation(c.config, OpCreate)
	return &AppointmentSeriesCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of AppointmentSeries entities.
func (c *AppointmentSeriesClient) CreateBulk(builders ...*AppointmentSeriesCreate) *AppointmentSeriesCreateBulk {
	return &AppointmentSeriesCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *AppointmentSeriesClient) MapCreateBulk(slice any, setFunc func(*AppointmentSeriesCreate, int)) *AppointmentSeriesCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &AppointmentSeriesCreateBulk{err: fmt.Errorf("calling to AppointmentSeriesClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*AppointmentSeriesCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &AppointmentSeriesCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for AppointmentSeries.
func (c *AppointmentSeriesClient) Update() *AppointmentSeriesUpdate {
	mutation := newAppointmentSeriesMutation(c.config, OpUpdate)
	return &AppointmentSeriesUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *AppointmentSeriesClient) UpdateOne(_m *AppointmentSeries) *AppointmentSeriesUpdateOne {
	mutation := newAppointmentSeriesMutation(c.config, OpUpdateOne, withAppointmentSeries(_m))
	return &AppointmentSeriesUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *AppointmentSeriesClient) UpdateOneID(id uuid.UUID) *AppointmentSeriesUpdateOne {
	mutation := newAppointmentSeriesMutation(c.config, OpUpdateOne, withAppointmentSeriesID(id))
	return &AppointmentSeriesUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for AppointmentSeries.
func (c *AppointmentSeriesClient) Delete() *AppointmentSeriesDelete {
	mutation := newAppointmentSeriesMutation(c.config, OpDelete)
	return &AppointmentSeriesDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *AppointmentSeriesClient) DeleteOne(_m *AppointmentSeries) *AppointmentSeriesDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *AppointmentSeriesClient) DeleteOneID(id uuid.UUID) *AppointmentSeriesDeleteOne {
	builder := c.Delete().Where(appointmentseries.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &AppointmentSeriesDeleteOne{builder}
}

// Query returns a query builder for AppointmentSeries.
func (c *AppointmentSeriesClient) Query() *AppointmentSeriesQuery {
	return &AppointmentSeriesQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeAppointmentSeries},
		inters: c.Interceptors(),
	}
}

// Get returns a AppointmentSeries entity by its id.
func (c *AppointmentSeriesClient) Get(ctx context.Context, id uuid.UUID) (*AppointmentSeries, error) {
	return c.Query().Where(appointmentseries.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *AppointmentSeriesClient) GetX(ctx context.Context, id uuid.UUID) *AppointmentSeries {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *AppointmentSeriesClient) Hooks() []Hook {
	return c.hooks.AppointmentSeries
}

// Interceptors returns the client interceptors.
func (c *AppointmentSeriesClient) Interceptors() []Interceptor {
	return c.inters.AppointmentSeries
}

func (c *AppointmentSeriesClient) mutate(ctx context.Context, m *AppointmentSeriesMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&AppointmentSeriesCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&AppointmentSeriesUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&AppointmentSeriesUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&AppointmentSeriesDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("repo: unknown AppointmentSeries mutation op: %q", m.Op())
	}
}

// CalendarConnectionClient is a client for the CalendarConnection schema.
type CalendarConnectionClient struct {
	config
}

// NewCalendarConnectionClient returns a client for the CalendarConnection from the given config.
func NewCalendarConnectionClient(c config) *CalendarConnectionClient {
	return &CalendarConnectionClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `calendarconnection.Hooks(f(g(h())))`.
func (c *CalendarConnectionClient) Use(hooks ...Hook) {
	c.hooks.CalendarConnection = append(c.hooks.CalendarConnection, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `calendarconnection.Intercept(f(g(h())))`.
func (c *CalendarConnectionClient) Intercept(interceptors ...Interceptor) {
	c.inters.CalendarConnection = append(c.inters.CalendarConnection, interceptors...)
}

// Create returns a builder for creating a CalendarConnection entity.
func (c *CalendarConnectionClient) Create() *CalendarConnectionCreate {
	mutation := newCalendarConnectionMutation(c.config, OpCreate)
	return &CalendarConnectionCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of CalendarConnection entities.
func (c *CalendarConnectionClient) CreateBulk(builders ...*CalendarConnectionCreate) *CalendarConnectionCreateBulk {
	return &CalendarConnectionCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *CalendarConnectionClient) MapCreateBulk(slice any, setFunc func(*CalendarConnectionCreate, int)) *CalendarConnectionCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &CalendarConnectionCreateBulk{err: fmt.Errorf("calling to CalendarConnectionClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*CalendarConnectionCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &CalendarConnectionCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for CalendarConnection.
func (c *CalendarConnectionClient) Update() *CalendarConnectionUpdate {
	mutation := newCalendarConnectionMutation(c.config, OpUpdate)
	return &CalendarConnectionUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *CalendarConnectionClient) UpdateOne(_m *CalendarConnection) *CalendarConnectionUpdateOne {
	mutation := newCalendarConnectionMutation(c.config, OpUpdateOne, withCalendarConnection(_m))
	return &CalendarConnectionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *CalendarConnectionClient) UpdateOneID(id uuid.UUID) *CalendarConnectionUpdateOne {
	mutation := newCalendarConnectionMutation(c.config, OpUpdateOne, withCalendarConnectionID(id))
	return &CalendarConnectionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for CalendarConnection.
func (c *CalendarConnectionClient) Delete() *CalendarConnectionDelete {
	mutation := newCalendarConnectionMutation(c.config, OpDelete)
	return &CalendarConnectionDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *CalendarConnectionClient) DeleteOne(_m *CalendarConnection) *CalendarConnectionDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *CalendarConnectionClient) DeleteOneID(id uuid.UUID) *CalendarConnectionDeleteOne {
	builder := c.Delete().Where(calendarconnection.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &CalendarConnectionDeleteOne{builder}
}

// Query returns a query builder for CalendarConnection.
func (c *CalendarConnectionClient) Query() *CalendarConnectionQuery {
	return &CalendarConnectionQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeCalendarConnection},
		inters: c.Interceptors(),
	}
}

// Get returns a CalendarConnection entity by its id.
func (c *CalendarConnectionClient) Get(ctx context.Context, id uuid.UUID) (*CalendarConnection, error) {
	return c.Query().Where(calendarconnection.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *CalendarConnectionClient) GetX(ctx context.Context, id uuid.UUID) *CalendarConnection {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *CalendarConnectionClient) Hooks() []Hook {
	return c.hooks.CalendarConnection
}

// Interceptors returns the client interceptors.
func (c *CalendarConnectionClient) Interceptors() []Interceptor {
	return c.inters.CalendarConnection
}

func (c *CalendarConnectionClient) mutate(ctx context.Context, m *CalendarConnectionMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&CalendarConnectionCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&CalendarConnectionUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&CalendarConnectionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&CalendarConnectionDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("repo: unknown CalendarConnection mutation op: %q", m.Op())
	}
}

// CalendarWatchChannelClient is a client for the CalendarWatchChannel schema.
type CalendarWatchChannelClient struct {
	config
}

// NewCalendarWatchChannelClient returns a client for the CalendarWatchChannel from the given config.
func NewCalendarWatchChannelClient(c config) *CalendarWatchChannelClient {
	return &CalendarWatchChannelClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `calendarwatchchannel.Hooks(f(g(h())))`.
func (c *CalendarWatchChannelClient) Use(hooks ...Hook) {
	c.hooks.CalendarWatchChannel = append(c.hooks.CalendarWatchChannel, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `calendarwatchchannel.Intercept(f(g(h())))`.
func (c *CalendarWatchChannelClient) Intercept(interceptors ...Interceptor) {
	c.inters.CalendarWatchChannel = append(c.inters.CalendarWatchChannel, interceptors...)
}

// Create returns a builder for creating a CalendarWatchChannel entity.
func (c *CalendarWatchChannelClient) Create() *CalendarWatchChannelCreate {
	mutation := newCalendarWatchChannelMutation(c.config, OpCreate)
	return &CalendarWatchChannelCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of CalendarWatchChannel entities.
func (c *CalendarWatchChannelClient) CreateBulk(builders ...*CalendarWatchChannelCreate) *CalendarWatchChannelCreateBulk {
	return &CalendarWatchChannelCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *CalendarWatchChannelClient) MapCreateBulk(slice any, setFunc func(*CalendarWatchChannelCreate, int)) *CalendarWatchChannelCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &CalendarWatchChannelCreateBulk{err: fmt.Errorf("calling to CalendarWatchChannelClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*CalendarWatchChannelCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &CalendarWatchChannelCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for CalendarWatchChannel.
func (c *CalendarWatchChannelClient) Update() *CalendarWatchChannelUpdate {
	mutation := newCalendarWatchChannelMutation(c.config, OpUpdate)
	return &CalendarWatchChannelUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *CalendarWatchChannelClient) UpdateOne(_m *CalendarWatchChannel) *CalendarWatchChannelUpdateOne {
	mutation := newCalendarWatchChannelMutation(c.config, OpUpdateOne, withCalendarWatchChannel(_m))
	return &CalendarWatchChannelUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *CalendarWatchChannelClient) UpdateOneID(id uuid.UUID) *CalendarWatchChannelUpdateOne {
	mutation := newCalendarWatchChannelMutation(c.config, OpUpdateOne, withCalendarWatchChannelID(id))
	return &CalendarWatchChannelUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for CalendarWatchChannel.
func (c *CalendarWatchChannelClient) Delete() *CalendarWatchChannelDelete {
	mutation := newCalendarWatchChannelMutation(c.config, OpDelete)
	return &CalendarWatchChannelDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *CalendarWatchChannelClient) DeleteOne(_m *CalendarWatchChannel) *CalendarWatchChannelDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *CalendarWatchChannelClient) DeleteOneID(id uuid.UUID) *CalendarWatchChannelDeleteOne {
	builder := c.Delete().Where(calendarwatchchannel.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &CalendarWatchChannelDeleteOne{builder}
}

// Query returns a query builder for CalendarWatchChannel.
func (c *CalendarWatchChannelClient) Query() *CalendarWatchChannelQuery {
	return &CalendarWatchChannelQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeCalendarWatchChannel},
		inters: c.Interceptors(),
	}
}

// Get returns a CalendarWatchChannel entity by its id.
func (c *CalendarWatchChannelClient) Get(ctx context.Context, id uuid.UUID) (*CalendarWatchChannel, error) {
	return c.Query().Where(calendarwatchchannel.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *CalendarWatchChannelClient) GetX(ctx context.Context, id uuid.UUID) *CalendarWatchChannel {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *CalendarWatchChannelClient) Hooks() []Hook {
	return c.hooks.CalendarWatchChannel
}

// Interceptors returns the client interceptors.
func (c *CalendarWatchChannelClient) Interceptors() []Interceptor {
	return c.inters.CalendarWatchChannel
}

func (c *CalendarWatchChannelClient) mutate(ctx context.Context, m *CalendarWatchChannelMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&CalendarWatchChannelCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&CalendarWatchChannelUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&CalendarWatchChannelUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&CalendarWatchChannelDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("repo: unknown CalendarWatchChannel mutation op: %q", m.Op())
	}
}

// ClientProfileClient is a client for the ClientProfile schema.
type ClientProfileClient struct {
	config
}

// NewClientProfileClient returns a client for the ClientProfile from the given config.
func NewClientProfileClient(c config) *ClientProfileClient {
	return &ClientProfileClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `clientprofile.Hooks(f(g(h())))`.
func (c *ClientProfileClient) Use(hooks ...Hook) {
	c.hooks.ClientProfile = append(c.hooks.ClientProfile, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `clientprofile.Intercept(f(g(h())))`.
func (c *ClientProfileClient) Intercept(interceptors ...Interceptor) {
	c.inters.ClientProfile = append(c.inters.ClientProfile, interceptors...)
}

// Create returns a builder for creating a ClientProfile entity.
func (c *ClientProfileClient) Create() *ClientProfileCreate {
	mutation := newClientProfileMutation(c.config, OpCreate)
	return &ClientProfileCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ClientProfile entities.
func (c *ClientProfileClient) CreateBulk(builders ...*ClientProfileCreate) *ClientProfileCreateBulk {
	return &ClientProfileCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ClientProfileClient) MapCreateBulk(slice any, setFunc func(*ClientProfileCreate, int)) *ClientProfileCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ClientProfileCreateBulk{err: fmt.Errorf("calling to ClientProfileClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ClientProfileCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ClientProfileCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ClientProfile.
func (c *ClientProfileClient) Update() *ClientProfileUpdate {
	mutation := newClientProfileMutation(c.config, OpUpdate)
	return &ClientProfileUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ClientProfileClient) UpdateOne(_m *ClientProfile) *ClientProfileUpdateOne {
	mutation := newClientProfileMutation(c.config, OpUpdateOne, withClientProfile(_m))
	return &ClientProfileUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ClientProfileClient) UpdateOneID(id uuid.UUID) *ClientProfileUpdateOne {
	mutation := newClientProfileMutation(c.config, OpUpdateOne, withClientProfileID(id))
	return &ClientProfileUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ClientProfile.
func (c *ClientProfileClient) Delete() *ClientProfileDelete {
	mutation := newClientProfileMutation(c.config, OpDelete)
	return &ClientProfileDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ClientProfileClient) DeleteOne(_m *ClientProfile) *ClientProfileDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ClientProfileClient) DeleteOneID(id uuid.UUID) *ClientProfileDeleteOne {
	builder := c.Delete().Where(clientprofile.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ClientProfileDeleteOne{builder}
}

// Query returns a query builder for ClientProfile.
func (c *ClientProfileClient) Query() *ClientProfileQuery {
	return &ClientProfileQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeClientProfile},
		inters: c.Interceptors(),
	}
}

// Get returns a ClientProfile entity by its id.
func (c *ClientProfileClient) Get(ctx context.Context, id uuid.UUID) (*ClientProfile, error) {
	return c.Query().Where(clientprofile.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ClientProfileClient) GetX(ctx context.Context, id uuid.UUID) *ClientProfile {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *ClientProfileClient) Hooks() []Hook {
	return c.hooks.ClientProfile
}

// Interceptors returns the client interceptors.
func (c *ClientProfileClient) Interceptors() []Interceptor {
	return c.inters.ClientProfile
}

func (c *ClientProfileClient) mutate(ctx context.Context, m *ClientProfileMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ClientProfileCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ClientProfileUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ClientProfileUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ClientProfileDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("repo: unknown ClientProfile mutation op: %q", m.Op())
	}
}

// PracticeClient is a client for the Practice schema.
type PracticeClient struct {
	config
}

// NewPracticeClient returns a client for the Practice from the given config.
func NewPracticeClient(c config) *PracticeClient {
	return &PracticeClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `practice.Hooks(f(g(h())))`.
func (c *PracticeClient) Use(hooks ...Hook) {
	c.hooks.Practice = append(c.hooks.Practice, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `practice.Intercept(f(g(h())))`.
func (c *PracticeClient) Intercept(interceptors ...Interceptor) {
	c.inters.Practice = append(c.inters.Practice, interceptors...)
}

// Create returns a builder for creating a Practice entity.
func (c *PracticeClient) Create() *PracticeCreate {
	mutation := newPracticeMutation(c.config, OpCreate)
	return &PracticeCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Practice entities.
func (c *PracticeClient) CreateBulk(builders ...*PracticeCreate) *PracticeCreateBulk {
	return &PracticeCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *PracticeClient) MapCreateBulk(slice any, setFunc func(*PracticeCreate, int)) *PracticeCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &PracticeCreateBulk{err: fmt.Errorf("calling to PracticeClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*PracticeCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &PracticeCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Practice.
func (c *PracticeClient) Update() *PracticeUpdate {
	mutation := newPracticeMutation(c.config, OpUpdate)
	return &PracticeUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *PracticeClient) UpdateOne(_m *Practice) *PracticeUpdateOne {
	mutation := newPracticeMutation(c.config, OpUpdateOne, withPractice(_m))
	return &PracticeUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *PracticeClient) UpdateOneID(id uuid.UUID) *PracticeUpdateOne {
	mutation := newPracticeMutation(c.config, OpUpdateOne, withPracticeID(id))
	return &PracticeUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Practice.
func (c *PracticeClient) Delete() *PracticeDelete {
	mutation := newPracticeMutation(c.config, OpDelete)
	return &PracticeDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *PracticeClient) DeleteOne(_m *Practice) *PracticeDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *PracticeClient) DeleteOneID(id uuid.UUID) *PracticeDeleteOne {
	builder := c.Delete().Where(practice.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &PracticeDeleteOne{builder}
}

// Query returns a query builder for Practice.
func (c *PracticeClient) Query() *PracticeQuery {
	return &PracticeQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypePractice},
		inters: c.Interceptors(),
	}
}

// Get returns a Practice entity by its id.
func (c *PracticeClient) Get(ctx context.Context, id uuid.UUID) (*Practice, error) {
	return c.Query().Where(practice.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *PracticeClient) GetX(ctx context.Context, id uuid.UUID) *Practice {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryStaff queries the staff edge of a Practice.
func (c *PracticeClient) QueryStaff(_m *Practice) *StaffMemberQuery {
	query := (&StaffMemberClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(practice.Table, practice.FieldID, id),
			sqlgraph.To(staffmember.Table, staffmember.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, practice.StaffTable, practice.StaffColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *PracticeClient) Hooks() []Hook {
	return c.hooks.Practice
}

// Interceptors returns the client interceptors.
func (c *PracticeClient) Interceptors() []Interceptor {
	return c.inters.Practice
}

func (c *PracticeClient) mutate(ctx context.Context, m *PracticeMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&PracticeCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&PracticeUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&PracticeUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&PracticeDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("repo: unknown Practice mutation op: %q", m.Op())
	}
}

// StaffCalendarBlockClient is a client for the StaffCalendarBlock schema.
type StaffCalendarBlockClient struct {
	config
}

// NewStaffCalendarBlockClient returns a client for the StaffCalendarBlock from the given config.
func NewStaffCalendarBlockClient(c config) *StaffCalendarBlockClient {
	return &StaffCalendarBlockClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `staffcalendarblock.Hooks(f(g(h())))`.
func (c *StaffCalendarBlockClient) Use(hooks ...Hook) {
	c.hooks.StaffCalendarBlock = append(c.hooks.StaffCalendarBlock, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `staffcalendarblock.Intercept(f(g(h())))`.
func (c *StaffCalendarBlockClient) Intercept(interceptors ...Interceptor) {
	c.inters.StaffCalendarBlock = append(c.inters.StaffCalendarBlock, interceptors...)
}

// Create returns a builder for creating a StaffCalendarBlock entity.
func (c *StaffCalendarBlockClient) Create() *StaffCalendarBlockCreate {
	mutation := newStaffCalendarBlockMutation(c.config, OpCreate)
	return &StaffCalendarBlockCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of StaffCalendarBlock entities.
func (c *StaffCalendarBlockClient) CreateBulk(builders ...*StaffCalendarBlockCreate) *StaffCalendarBlockCreateBulk {
	return &StaffCalendarBlockCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *StaffCalendarBlockClient) MapCreateBulk(slice any, setFunc func(*StaffCalendarBlockCreate, int)) *StaffCalendarBlockCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &StaffCalendarBlockCreateBulk{err: fmt.Errorf("calling to StaffCalendarBlockClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*StaffCalendarBlockCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &StaffCalendarBlockCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for StaffCalendarBlock.
func (c *StaffCalendarBlockClient) Update() *StaffCalendarBlockUpdate {
	mutation := newStaffCalendarBlockMutation(c.config, OpUpdate)
	return &StaffCalendarBlockUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *StaffCalendarBlockClient) UpdateOne(_m *StaffCalendarBlock) *StaffCalendarBlockUpdateOne {
	mutation := newStaffCalendarBlockMutation(c.config, OpUpdateOne, withStaffCalendarBlock(_m))
	return &StaffCalendarBlockUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *StaffCalendarBlockClient) UpdateOneID(id uuid.UUID) *StaffCalendarBlockUpdateOne {
	mutation := newStaffCalendarBlockMutation(c.config, OpUpdateOne, withStaffCalendarBlockID(id))
	return &StaffCalendarBlockUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for StaffCalendarBlock.
func (c *StaffCalendarBlockClient) Delete() *StaffCalendarBlockDelete {
	mutation := newStaffCalendarBlockMutation(c.config, OpDelete)
	return &StaffCalendarBlockDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *StaffCalendarBlockClient) DeleteOne(_m *StaffCalendarBlock) *StaffCalendarBlockDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *StaffCalendarBlockClient) DeleteOneID(id uuid.UUID) *StaffCalendarBlockDeleteOne {
	builder := c.Delete().Where(staffcalendarblock.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &StaffCalendarBlockDeleteOne{builder}
}

// Query returns a query builder for StaffCalendarBlock.
func (c *StaffCalendarBlockClient) Query() *StaffCalendarBlockQuery {
	return &StaffCalendarBlockQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeStaffCalendarBlock},
		inters: c.Interceptors(),
	}
}

// Get returns a StaffCalendarBlock entity by its id.
func (c *StaffCalendarBlockClient) Get(ctx context.Context, id uuid.UUID) (*StaffCalendarBlock, error) {
	return c.Query().Where(staffcalendarblock.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *StaffCalendarBlockClient) GetX(ctx context.Context, id uuid.UUID) *StaffCalendarBlock {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *StaffCalendarBlockClient) Hooks() []Hook {
	return c.hooks.StaffCalendarBlock
}

// Interceptors returns the client interceptors.
func (c *StaffCalendarBlockClient) Interceptors() []Interceptor {
	return c.inters.StaffCalendarBlock
}

func (c *StaffCalendarBlockClient) mutate(ctx context.Context, m *StaffCalendarBlockMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&StaffCalendarBlockCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&StaffCalendarBlockUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&StaffCalendarBlockUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&StaffCalendarBlockDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("repo: unknown StaffCalendarBlock mutation op: %q", m.Op())
	}
}

// StaffMemberClient is a client for the StaffMember schema.
type StaffMemberClient struct {
	config
}

// NewStaffMemberClient returns a client for the StaffMember from the given config.
func NewStaffMemberClient(c config) *StaffMemberClient {
	return &StaffMemberClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `staffmember.Hooks(f(g(h())))`.
func (c *StaffMemberClient) Use(hooks ...Hook) {
	c.hooks.StaffMember = append(c.hooks.StaffMember, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `staffmember.Intercept(f(g(h())))`.
func (c *StaffMemberClient) Intercept(interceptors ...Interceptor) {
	c.inters.StaffMember = append(c.inters.StaffMember, interceptors...)
}

// Create returns a builder for creating a StaffMember entity.
func (c *StaffMemberClient) Create() *StaffMemberCreate {
	mutation := newStaffMemberMutation(c.config, OpCreate)
	return &StaffMemberCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of StaffMember entities.
func (c *StaffMemberClient) CreateBulk(builders ...*StaffMemberCreate) *StaffMemberCreateBulk {
	return &StaffMemberCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *StaffMemberClient) MapCreateBulk(slice any, setFunc func(*StaffMemberCreate, int)) *StaffMemberCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &StaffMemberCreateBulk{err: fmt.Errorf("calling to StaffMemberClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*StaffMemberCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &StaffMemberCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for StaffMember.
func (c *StaffMemberClient) Update() *StaffMemberUpdate {
	mutation := newStaffMemberMutation(c.config, OpUpdate)
	return &StaffMemberUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *StaffMemberClient) UpdateOne(_m *StaffMember) *StaffMemberUpdateOne {
	mutation := newStaffMemberMutation(c.config, OpUpdateOne, withStaffMember(_m))
	return &StaffMemberUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *StaffMemberClient) UpdateOneID(id uuid.UUID) *StaffMemberUpdateOne {
	mutation := newStaffMemberMutation(c.config, OpUpdateOne, withStaffMemberID(id))
	return &StaffMemberUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for StaffMember.
func (c *StaffMemberClient) Delete() *StaffMemberDelete {
	mutation := newStaffMemberMutation(c.config, OpDelete)
	return &StaffMemberDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *StaffMemberClient) DeleteOne(_m *StaffMember) *StaffMemberDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *StaffMemberClient) DeleteOneID(id uuid.UUID) *StaffMemberDeleteOne {
	builder := c.Delete().Where(staffmember.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &StaffMemberDeleteOne{builder}
}

// Query returns a query builder for StaffMember.
func (c *StaffMemberClient) Query() *StaffMemberQuery {
	return &StaffMemberQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeStaffMember},
		inters: c.Interceptors(),
	}
}

// Get returns a StaffMember entity by its id.
func (c *StaffMemberClient) Get(ctx context.Context, id uuid.UUID) (*StaffMember, error) {
	return c.Query().Where(staffmember.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *StaffMemberClient) GetX(ctx context.Context, id uuid.UUID) *StaffMember {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryPractice queries the practice edge of a StaffMember.
func (c *StaffMemberClient) QueryPractice(_m *StaffMember) *PracticeQuery {
	query := (&PracticeClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(staffmember.Table, staffmember.FieldID, id),
			sqlgraph.To(practice.Table, practice.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, staffmember.PracticeTable, staffmember.PracticeColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *StaffMemberClient) Hooks() []Hook {
	return c.hooks.StaffMember
}

// Interceptors returns the client interceptors.
func (c *StaffMemberClient) Interceptors() []Interceptor {
	return c.inters.StaffMember
}

func (c *StaffMemberClient) mutate(ctx context.Context, m *StaffMemberMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&StaffMemberCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&StaffMemberUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&StaffMemberUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&StaffMemberDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("repo: unknown StaffMember mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		Appointment, AppointmentSeries, CalendarConnection, CalendarWatchChannel,
		ClientProfile, Practice, StaffCalendarBlock, StaffMember []ent.Hook
	}
	inters struct {
		Appointment, AppointmentSeries, CalendarConnection, CalendarWatchChannel,
		ClientProfile, Practice, StaffCalendarBlock, StaffMember []ent.Interceptor
	}
)
