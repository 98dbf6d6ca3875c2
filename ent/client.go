// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/forgewatch/forgewatch/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"github.com/forgewatch/forgewatch/ent/anomalyrecord"
	"github.com/forgewatch/forgewatch/ent/githubevent"
	"github.com/forgewatch/forgewatch/ent/repositoryprofile"
	"github.com/forgewatch/forgewatch/ent/streamevent"
	"github.com/forgewatch/forgewatch/ent/temporalpattern"
	"github.com/forgewatch/forgewatch/ent/userprofile"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// AnomalyRecord is the client for interacting with the AnomalyRecord builders.
	AnomalyRecord *AnomalyRecordClient
	// GitHubEvent is the client for interacting with the GitHubEvent builders.
	GitHubEvent *GitHubEventClient
	// RepositoryProfile is the client for interacting with the RepositoryProfile builders.
	RepositoryProfile *RepositoryProfileClient
	// StreamEvent is the client for interacting with the StreamEvent builders.
	StreamEvent *StreamEventClient
	// TemporalPattern is the client for interacting with the TemporalPattern builders.
	TemporalPattern *TemporalPatternClient
	// UserProfile is the client for interacting with the UserProfile builders.
	UserProfile *UserProfileClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.AnomalyRecord = NewAnomalyRecordClient(c.config)
	c.GitHubEvent = NewGitHubEventClient(c.config)
	c.RepositoryProfile = NewRepositoryProfileClient(c.config)
	c.StreamEvent = NewStreamEventClient(c.config)
	c.TemporalPattern = NewTemporalPatternClient(c.config)
	c.UserProfile = NewUserProfileClient(c.config)
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
var ErrTxStarted = errors.New("ent: cannot start a transaction within a transaction")

// Tx returns a new transactional client. The provided context
// is used until the transaction is committed or rolled back.
func (c *Client) Tx(ctx context.Context) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, ErrTxStarted
	}
	tx, err := newTx(ctx, c.driver)
	if err != nil {
		return nil, fmt.Errorf("ent: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = tx
	return &Tx{
		ctx:               ctx,
		config:            cfg,
		AnomalyRecord:     NewAnomalyRecordClient(cfg),
		GitHubEvent:       NewGitHubEventClient(cfg),
		RepositoryProfile: NewRepositoryProfileClient(cfg),
		StreamEvent:       NewStreamEventClient(cfg),
		TemporalPattern:   NewTemporalPatternClient(cfg),
		UserProfile:       NewUserProfileClient(cfg),
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
		ctx:               ctx,
		config:            cfg,
		AnomalyRecord:     NewAnomalyRecordClient(cfg),
		GitHubEvent:       NewGitHubEventClient(cfg),
		RepositoryProfile: NewRepositoryProfileClient(cfg),
		StreamEvent:       NewStreamEventClient(cfg),
		TemporalPattern:   NewTemporalPatternClient(cfg),
		UserProfile:       NewUserProfileClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		AnomalyRecord.
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
		c.AnomalyRecord, c.GitHubEvent, c.RepositoryProfile, c.StreamEvent,
		c.TemporalPattern, c.UserProfile,
	} {
		n.Use(hooks...)
	}
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	for _, n := range []interface{ Intercept(...Interceptor) }{
		c.AnomalyRecord, c.GitHubEvent, c.RepositoryProfile, c.StreamEvent,
		c.TemporalPattern, c.UserProfile,
	} {
		n.Intercept(interceptors...)
	}
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *AnomalyRecordMutation:
		return c.AnomalyRecord.mutate(ctx, m)
	case *GitHubEventMutation:
		return c.GitHubEvent.mutate(ctx, m)
	case *RepositoryProfileMutation:
		return c.RepositoryProfile.mutate(ctx, m)
	case *StreamEventMutation:
		return c.StreamEvent.mutate(ctx, m)
	case *TemporalPatternMutation:
		return c.TemporalPattern.mutate(ctx, m)
	case *UserProfileMutation:
		return c.UserProfile.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// AnomalyRecordClient is a client for the AnomalyRecord schema.
type AnomalyRecordClient struct {
	config
}

// NewAnomalyRecordClient returns a client for the AnomalyRecord from the given config.
func NewAnomalyRecordClient(c config) *AnomalyRecordClient {
	return &AnomalyRecordClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `anomalyrecord.Hooks(f(g(h())))`.
func (c *AnomalyRecordClient) Use(hooks ...Hook) {
	c.hooks.AnomalyRecord = append(c.hooks.AnomalyRecord, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `anomalyrecord.Intercept(f(g(h())))`.
func (c *AnomalyRecordClient) Intercept(interceptors ...Interceptor) {
	c.inters.AnomalyRecord = append(c.inters.AnomalyRecord, interceptors...)
}

// Create returns a builder for creating a AnomalyRecord entity.
func (c *AnomalyRecordClient) Create() *AnomalyRecordCreate {
	mutation := newAnomalyRecordMutation(c.config, OpCreate)
	return &AnomalyRecordCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of AnomalyRecord entities.
func (c *AnomalyRecordClient) CreateBulk(builders ...*AnomalyRecordCreate) *AnomalyRecordCreateBulk {
	return &AnomalyRecordCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *AnomalyRecordClient) MapCreateBulk(slice any, setFunc func(*AnomalyRecordCreate, int)) *AnomalyRecordCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &AnomalyRecordCreateBulk{err: fmt.Errorf("calling to AnomalyRecordClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*AnomalyRecordCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &AnomalyRecordCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for AnomalyRecord.
func (c *AnomalyRecordClient) Update() *AnomalyRecordUpdate {
	mutation := newAnomalyRecordMutation(c.config, OpUpdate)
	return &AnomalyRecordUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *AnomalyRecordClient) UpdateOne(_m *AnomalyRecord) *AnomalyRecordUpdateOne {
	mutation := newAnomalyRecordMutation(c.config, OpUpdateOne, withAnomalyRecord(_m))
	return &AnomalyRecordUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *AnomalyRecordClient) UpdateOneID(id int) *AnomalyRecordUpdateOne {
	mutation := newAnomalyRecordMutation(c.config, OpUpdateOne, withAnomalyRecordID(id))
	return &AnomalyRecordUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for AnomalyRecord.
func (c *AnomalyRecordClient) Delete() *AnomalyRecordDelete {
	mutation := newAnomalyRecordMutation(c.config, OpDelete)
	return &AnomalyRecordDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *AnomalyRecordClient) DeleteOne(_m *AnomalyRecord) *AnomalyRecordDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *AnomalyRecordClient) DeleteOneID(id int) *AnomalyRecordDeleteOne {
	builder := c.Delete().Where(anomalyrecord.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &AnomalyRecordDeleteOne{builder}
}

// Query returns a query builder for AnomalyRecord.
func (c *AnomalyRecordClient) Query() *AnomalyRecordQuery {
	return &AnomalyRecordQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeAnomalyRecord},
		inters: c.Interceptors(),
	}
}

// Get returns a AnomalyRecord entity by its id.
func (c *AnomalyRecordClient) Get(ctx context.Context, id int) (*AnomalyRecord, error) {
	return c.Query().Where(anomalyrecord.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *AnomalyRecordClient) GetX(ctx context.Context, id int) *AnomalyRecord {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *AnomalyRecordClient) Hooks() []Hook {
	return c.hooks.AnomalyRecord
}

// Interceptors returns the client interceptors.
func (c *AnomalyRecordClient) Interceptors() []Interceptor {
	return c.inters.AnomalyRecord
}

func (c *AnomalyRecordClient) mutate(ctx context.Context, m *AnomalyRecordMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&AnomalyRecordCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&AnomalyRecordUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&AnomalyRecordUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&AnomalyRecordDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown AnomalyRecord mutation op: %q", m.Op())
	}
}

// GitHubEventClient is a client for the GitHubEvent schema.
type GitHubEventClient struct {
	config
}

// NewGitHubEventClient returns a client for the GitHubEvent from the given config.
func NewGitHubEventClient(c config) *GitHubEventClient {
	return &GitHubEventClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `githubevent.Hooks(f(g(h())))`.
func (c *GitHubEventClient) Use(hooks ...Hook) {
	c.hooks.GitHubEvent = append(c.hooks.GitHubEvent, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `githubevent.Intercept(f(g(h())))`.
func (c *GitHubEventClient) Intercept(interceptors ...Interceptor) {
	c.inters.GitHubEvent = append(c.inters.GitHubEvent, interceptors...)
}

// Create returns a builder for creating a GitHubEvent entity.
func (c *GitHubEventClient) Create() *GitHubEventCreate {
	mutation := newGitHubEventMutation(c.config, OpCreate)
	return &GitHubEventCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of GitHubEvent entities.
func (c *GitHubEventClient) CreateBulk(builders ...*GitHubEventCreate) *GitHubEventCreateBulk {
	return &GitHubEventCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *GitHubEventClient) MapCreateBulk(slice any, setFunc func(*GitHubEventCreate, int)) *GitHubEventCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &GitHubEventCreateBulk{err: fmt.Errorf("calling to GitHubEventClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*GitHubEventCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &GitHubEventCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for GitHubEvent.
func (c *GitHubEventClient) Update() *GitHubEventUpdate {
	mutation := newGitHubEventMutation(c.config, OpUpdate)
	return &GitHubEventUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *GitHubEventClient) UpdateOne(_m *GitHubEvent) *GitHubEventUpdateOne {
	mutation := newGitHubEventMutation(c.config, OpUpdateOne, withGitHubEvent(_m))
	return &GitHubEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *GitHubEventClient) UpdateOneID(id string) *GitHubEventUpdateOne {
	mutation := newGitHubEventMutation(c.config, OpUpdateOne, withGitHubEventID(id))
	return &GitHubEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for GitHubEvent.
func (c *GitHubEventClient) Delete() *GitHubEventDelete {
	mutation := newGitHubEventMutation(c.config, OpDelete)
	return &GitHubEventDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *GitHubEventClient) DeleteOne(_m *GitHubEvent) *GitHubEventDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *GitHubEventClient) DeleteOneID(id string) *GitHubEventDeleteOne {
	builder := c.Delete().Where(githubevent.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &GitHubEventDeleteOne{builder}
}

// Query returns a query builder for GitHubEvent.
func (c *GitHubEventClient) Query() *GitHubEventQuery {
	return &GitHubEventQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeGitHubEvent},
		inters: c.Interceptors(),
	}
}

// Get returns a GitHubEvent entity by its id.
func (c *GitHubEventClient) Get(ctx context.Context, id string) (*GitHubEvent, error) {
	return c.Query().Where(githubevent.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *GitHubEventClient) GetX(ctx context.Context, id string) *GitHubEvent {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *GitHubEventClient) Hooks() []Hook {
	return c.hooks.GitHubEvent
}

// Interceptors returns the client interceptors.
func (c *GitHubEventClient) Interceptors() []Interceptor {
	return c.inters.GitHubEvent
}

func (c *GitHubEventClient) mutate(ctx context.Context, m *GitHubEventMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&GitHubEventCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&GitHubEventUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&GitHubEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&GitHubEventDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown GitHubEvent mutation op: %q", m.Op())
	}
}

// RepositoryProfileClient is a client for the RepositoryProfile schema.
type RepositoryProfileClient struct {
	config
}

// NewRepositoryProfileClient returns a client for the RepositoryProfile from the given config.
func NewRepositoryProfileClient(c config) *RepositoryProfileClient {
	return &RepositoryProfileClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `repositoryprofile.Hooks(f(g(h())))`.
func (c *RepositoryProfileClient) Use(hooks ...Hook) {
	c.hooks.RepositoryProfile = append(c.hooks.RepositoryProfile, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `repositoryprofile.Intercept(f(g(h())))`.
func (c *RepositoryProfileClient) Intercept(interceptors ...Interceptor) {
	c.inters.RepositoryProfile = append(c.inters.RepositoryProfile, interceptors...)
}

// Create returns a builder for creating a RepositoryProfile entity.
func (c *RepositoryProfileClient) Create() *RepositoryProfileCreate {
	mutation := newRepositoryProfileMutation(c.config, OpCreate)
	return &RepositoryProfileCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of RepositoryProfile entities.
func (c *RepositoryProfileClient) CreateBulk(builders ...*RepositoryProfileCreate) *RepositoryProfileCreateBulk {
	return &RepositoryProfileCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *RepositoryProfileClient) MapCreateBulk(slice any, setFunc func(*RepositoryProfileCreate, int)) *RepositoryProfileCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &RepositoryProfileCreateBulk{err: fmt.Errorf("calling to RepositoryProfileClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*RepositoryProfileCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &RepositoryProfileCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for RepositoryProfile.
func (c *RepositoryProfileClient) Update() *RepositoryProfileUpdate {
	mutation := newRepositoryProfileMutation(c.config, OpUpdate)
	return &RepositoryProfileUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *RepositoryProfileClient) UpdateOne(_m *RepositoryProfile) *RepositoryProfileUpdateOne {
	mutation := newRepositoryProfileMutation(c.config, OpUpdateOne, withRepositoryProfile(_m))
	return &RepositoryProfileUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *RepositoryProfileClient) UpdateOneID(id string) *RepositoryProfileUpdateOne {
	mutation := newRepositoryProfileMutation(c.config, OpUpdateOne, withRepositoryProfileID(id))
	return &RepositoryProfileUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for RepositoryProfile.
func (c *RepositoryProfileClient) Delete() *RepositoryProfileDelete {
	mutation := newRepositoryProfileMutation(c.config, OpDelete)
	return &RepositoryProfileDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *RepositoryProfileClient) DeleteOne(_m *RepositoryProfile) *RepositoryProfileDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *RepositoryProfileClient) DeleteOneID(id string) *RepositoryProfileDeleteOne {
	builder := c.Delete().Where(repositoryprofile.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &RepositoryProfileDeleteOne{builder}
}

// Query returns a query builder for RepositoryProfile.
func (c *RepositoryProfileClient) Query() *RepositoryProfileQuery {
	return &RepositoryProfileQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeRepositoryProfile},
		inters: c.Interceptors(),
	}
}

// Get returns a RepositoryProfile entity by its id.
func (c *RepositoryProfileClient) Get(ctx context.Context, id string) (*RepositoryProfile, error) {
	return c.Query().Where(repositoryprofile.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *RepositoryProfileClient) GetX(ctx context.Context, id string) *RepositoryProfile {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *RepositoryProfileClient) Hooks() []Hook {
	return c.hooks.RepositoryProfile
}

// Interceptors returns the client interceptors.
func (c *RepositoryProfileClient) Interceptors() []Interceptor {
	return c.inters.RepositoryProfile
}

func (c *RepositoryProfileClient) mutate(ctx context.Context, m *RepositoryProfileMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&RepositoryProfileCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&RepositoryProfileUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&RepositoryProfileUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&RepositoryProfileDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown RepositoryProfile mutation op: %q", m.Op())
	}
}

// StreamEventClient is a client for the StreamEvent schema.
type StreamEventClient struct {
	config
}

// NewStreamEventClient returns a client for the StreamEvent from the given config.
func NewStreamEventClient(c config) *StreamEventClient {
	return &StreamEventClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `streamevent.Hooks(f(g(h())))`.
func (c *StreamEventClient) Use(hooks ...Hook) {
	c.hooks.StreamEvent = append(c.hooks.StreamEvent, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `streamevent.Intercept(f(g(h())))`.
func (c *StreamEventClient) Intercept(interceptors ...Interceptor) {
	c.inters.StreamEvent = append(c.inters.StreamEvent, interceptors...)
}

// Create returns a builder for creating a StreamEvent entity.
func (c *StreamEventClient) Create() *StreamEventCreate {
	mutation := newStreamEventMutation(c.config, OpCreate)
	return &StreamEventCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of StreamEvent entities.
func (c *StreamEventClient) CreateBulk(builders ...*StreamEventCreate) *StreamEventCreateBulk {
	return &StreamEventCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *StreamEventClient) MapCreateBulk(slice any, setFunc func(*StreamEventCreate, int)) *StreamEventCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &StreamEventCreateBulk{err: fmt.Errorf("calling to StreamEventClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*StreamEventCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &StreamEventCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for StreamEvent.
func (c *StreamEventClient) Update() *StreamEventUpdate {
	mutation := newStreamEventMutation(c.config, OpUpdate)
	return &StreamEventUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *StreamEventClient) UpdateOne(_m *StreamEvent) *StreamEventUpdateOne {
	mutation := newStreamEventMutation(c.config, OpUpdateOne, withStreamEvent(_m))
	return &StreamEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *StreamEventClient) UpdateOneID(id int) *StreamEventUpdateOne {
	mutation := newStreamEventMutation(c.config, OpUpdateOne, withStreamEventID(id))
	return &StreamEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for StreamEvent.
func (c *StreamEventClient) Delete() *StreamEventDelete {
	mutation := newStreamEventMutation(c.config, OpDelete)
	return &StreamEventDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *StreamEventClient) DeleteOne(_m *StreamEvent) *StreamEventDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *StreamEventClient) DeleteOneID(id int) *StreamEventDeleteOne {
	builder := c.Delete().Where(streamevent.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &StreamEventDeleteOne{builder}
}

// Query returns a query builder for StreamEvent.
func (c *StreamEventClient) Query() *StreamEventQuery {
	return &StreamEventQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeStreamEvent},
		inters: c.Interceptors(),
	}
}

// Get returns a StreamEvent entity by its id.
func (c *StreamEventClient) Get(ctx context.Context, id int) (*StreamEvent, error) {
	return c.Query().Where(streamevent.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *StreamEventClient) GetX(ctx context.Context, id int) *StreamEvent {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *StreamEventClient) Hooks() []Hook {
	return c.hooks.StreamEvent
}

// Interceptors returns the client interceptors.
func (c *StreamEventClient) Interceptors() []Interceptor {
	return c.inters.StreamEvent
}

func (c *StreamEventClient) mutate(ctx context.Context, m *StreamEventMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&StreamEventCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&StreamEventUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&StreamEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&StreamEventDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown StreamEvent mutation op: %q", m.Op())
	}
}

// TemporalPatternClient is a client for the TemporalPattern schema.
type TemporalPatternClient struct {
	config
}

// NewTemporalPatternClient returns a client for the TemporalPattern from the given config.
func NewTemporalPatternClient(c config) *TemporalPatternClient {
	return &TemporalPatternClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `temporalpattern.Hooks(f(g(h())))`.
func (c *TemporalPatternClient) Use(hooks ...Hook) {
	c.hooks.TemporalPattern = append(c.hooks.TemporalPattern, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `temporalpattern.Intercept(f(g(h())))`.
func (c *TemporalPatternClient) Intercept(interceptors ...Interceptor) {
	c.inters.TemporalPattern = append(c.inters.TemporalPattern, interceptors...)
}

// Create returns a builder for creating a TemporalPattern entity.
func (c *TemporalPatternClient) Create() *TemporalPatternCreate {
	mutation := newTemporalPatternMutation(c.config, OpCreate)
	return &TemporalPatternCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of TemporalPattern entities.
func (c *TemporalPatternClient) CreateBulk(builders ...*TemporalPatternCreate) *TemporalPatternCreateBulk {
	return &TemporalPatternCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *TemporalPatternClient) MapCreateBulk(slice any, setFunc func(*TemporalPatternCreate, int)) *TemporalPatternCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &TemporalPatternCreateBulk{err: fmt.Errorf("calling to TemporalPatternClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*TemporalPatternCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &TemporalPatternCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for TemporalPattern.
func (c *TemporalPatternClient) Update() *TemporalPatternUpdate {
	mutation := newTemporalPatternMutation(c.config, OpUpdate)
	return &TemporalPatternUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *TemporalPatternClient) UpdateOne(_m *TemporalPattern) *TemporalPatternUpdateOne {
	mutation := newTemporalPatternMutation(c.config, OpUpdateOne, withTemporalPattern(_m))
	return &TemporalPatternUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *TemporalPatternClient) UpdateOneID(id int) *TemporalPatternUpdateOne {
	mutation := newTemporalPatternMutation(c.config, OpUpdateOne, withTemporalPatternID(id))
	return &TemporalPatternUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for TemporalPattern.
func (c *TemporalPatternClient) Delete() *TemporalPatternDelete {
	mutation := newTemporalPatternMutation(c.config, OpDelete)
	return &TemporalPatternDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *TemporalPatternClient) DeleteOne(_m *TemporalPattern) *TemporalPatternDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *TemporalPatternClient) DeleteOneID(id int) *TemporalPatternDeleteOne {
	builder := c.Delete().Where(temporalpattern.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &TemporalPatternDeleteOne{builder}
}

// Query returns a query builder for TemporalPattern.
func (c *TemporalPatternClient) Query() *TemporalPatternQuery {
	return &TemporalPatternQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeTemporalPattern},
		inters: c.Interceptors(),
	}
}

// Get returns a TemporalPattern entity by its id.
func (c *TemporalPatternClient) Get(ctx context.Context, id int) (*TemporalPattern, error) {
	return c.Query().Where(temporalpattern.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *TemporalPatternClient) GetX(ctx context.Context, id int) *TemporalPattern {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *TemporalPatternClient) Hooks() []Hook {
	return c.hooks.TemporalPattern
}

// Interceptors returns the client interceptors.
func (c *TemporalPatternClient) Interceptors() []Interceptor {
	return c.inters.TemporalPattern
}

func (c *TemporalPatternClient) mutate(ctx context.Context, m *TemporalPatternMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&TemporalPatternCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&TemporalPatternUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&TemporalPatternUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&TemporalPatternDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown TemporalPattern mutation op: %q", m.Op())
	}
}

// UserProfileClient is a client for the UserProfile schema.
type UserProfileClient struct {
	config
}

// NewUserProfileClient returns a client for the UserProfile from the given config.
func NewUserProfileClient(c config) *UserProfileClient {
	return &UserProfileClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `userprofile.Hooks(f(g(h())))`.
func (c *UserProfileClient) Use(hooks ...Hook) {
	c.hooks.UserProfile = append(c.hooks.UserProfile, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `userprofile.Intercept(f(g(h())))`.
func (c *UserProfileClient) Intercept(interceptors ...Interceptor) {
	c.inters.UserProfile = append(c.inters.UserProfile, interceptors...)
}

// Create returns a builder for creating a UserProfile entity.
func (c *UserProfileClient) Create() *UserProfileCreate {
	mutation := newUserProfileMutation(c.config, OpCreate)
	return &UserProfileCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of UserProfile entities.
func (c *UserProfileClient) CreateBulk(builders ...*UserProfileCreate) *UserProfileCreateBulk {
	return &UserProfileCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *UserProfileClient) MapCreateBulk(slice any, setFunc func(*UserProfileCreate, int)) *UserProfileCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &UserProfileCreateBulk{err: fmt.Errorf("calling to UserProfileClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*UserProfileCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &UserProfileCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for UserProfile.
func (c *UserProfileClient) Update() *UserProfileUpdate {
	mutation := newUserProfileMutation(c.config, OpUpdate)
	return &UserProfileUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *UserProfileClient) UpdateOne(_m *UserProfile) *UserProfileUpdateOne {
	mutation := newUserProfileMutation(c.config, OpUpdateOne, withUserProfile(_m))
	return &UserProfileUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *UserProfileClient) UpdateOneID(id string) *UserProfileUpdateOne {
	mutation := newUserProfileMutation(c.config, OpUpdateOne, withUserProfileID(id))
	return &UserProfileUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for UserProfile.
func (c *UserProfileClient) Delete() *UserProfileDelete {
	mutation := newUserProfileMutation(c.config, OpDelete)
	return &UserProfileDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *UserProfileClient) DeleteOne(_m *UserProfile) *UserProfileDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *UserProfileClient) DeleteOneID(id string) *UserProfileDeleteOne {
	builder := c.Delete().Where(userprofile.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &UserProfileDeleteOne{builder}
}

// Query returns a query builder for UserProfile.
func (c *UserProfileClient) Query() *UserProfileQuery {
	return &UserProfileQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeUserProfile},
		inters: c.Interceptors(),
	}
}

// Get returns a UserProfile entity by its id.
func (c *UserProfileClient) Get(ctx context.Context, id string) (*UserProfile, error) {
	return c.Query().Where(userprofile.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *UserProfileClient) GetX(ctx context.Context, id string) *UserProfile {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *UserProfileClient) Hooks() []Hook {
	return c.hooks.UserProfile
}

// Interceptors returns the client interceptors.
func (c *UserProfileClient) Interceptors() []Interceptor {
	return c.inters.UserProfile
}

func (c *UserProfileClient) mutate(ctx context.Context, m *UserProfileMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&UserProfileCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&UserProfileUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&UserProfileUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&UserProfileDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown UserProfile mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		AnomalyRecord, GitHubEvent, RepositoryProfile, StreamEvent, TemporalPattern,
		UserProfile []ent.Hook
	}
	inters struct {
		AnomalyRecord, GitHubEvent, RepositoryProfile, StreamEvent, TemporalPattern,
		UserProfile []ent.Interceptor
	}
)
