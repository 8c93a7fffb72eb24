// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/meridianhealth/intake/ent/adminuser"
	"github.com/meridianhealth/intake/ent/auditlog"
	"github.com/meridianhealth/intake/ent/intakereport"
	"github.com/meridianhealth/intake/ent/intakesession"
	"github.com/meridianhealth/intake/ent/notification"
	"github.com/meridianhealth/intake/ent/predicate"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeAdminUser     = "AdminUser"
	TypeAuditLog      = "AuditLog"
	TypeIntakeReport  = "IntakeReport"
	TypeIntakeSession = "IntakeSession"
	TypeNotification  = "Notification"
)

// AdminUserMutation represents an operation that mutates the AdminUser nodes in the graph.
type AdminUserMutation struct {
	config
	op            Op
	typ           string
	id            *string
	email         *string
	active        *bool
	created_at    *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*AdminUser, error)
	predicates    []predicate.AdminUser
}

var _ ent.Mutation = (*AdminUserMutation)(nil)

// adminuserOption allows management of the mutation configuration using functional options.
type adminuserOption func(*AdminUserMutation)

// newAdminUserMutation creates new mutation for the AdminUser entity.
func newAdminUserMutation(c config, op Op, opts ...adminuserOption) *AdminUserMutation {
	m := &AdminUserMutation{
		config:        c,
		op:            op,
		typ:           TypeAdminUser,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withAdminUserID sets the ID field of the mutation.
func withAdminUserID(id string) adminuserOption {
	return func(m *AdminUserMutation) {
		var (
			err   error
			once  sync.Once
			value *AdminUser
		)
		m.oldValue = func(ctx context.Context) (*AdminUser, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().AdminUser.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withAdminUser sets the old AdminUser of the mutation.
func withAdminUser(node *AdminUser) adminuserOption {
	return func(m *AdminUserMutation) {
		m.oldValue = func(context.Context) (*AdminUser, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m AdminUserMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m AdminUserMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of AdminUser entities.
func (m *AdminUserMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *AdminUserMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *AdminUserMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().AdminUser.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetEmail sets the "email" field.
func (m *AdminUserMutation) SetEmail(s string) {
	m.email = &s
}

// Email returns the value of the "email" field in the mutation.
func (m *AdminUserMutation) Email() (r string, exists bool) {
	v := m.email
	if v == nil {
		return
	}
	return *v, true
}

// OldEmail returns the old "email" field's value of the AdminUser entity.
// If the AdminUser object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AdminUserMutation) OldEmail(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEmail is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEmail requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEmail: %w", err)
	}
	return oldValue.Email, nil
}

// ResetEmail resets all changes to the "email" field.
func (m *AdminUserMutation) ResetEmail() {
	m.email = nil
}

// SetActive sets the "active" field.
func (m *AdminUserMutation) SetActive(b bool) {
	m.active = &b
}

// Active returns the value of the "active" field in the mutation.
func (m *AdminUserMutation) Active() (r bool, exists bool) {
	v := m.active
	if v == nil {
		return
	}
	return *v, true
}

// OldActive returns the old "active" field's value of the AdminUser entity.
// If the AdminUser object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AdminUserMutation) OldActive(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldActive is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldActive requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldActive: %w", err)
	}
	return oldValue.Active, nil
}

// ResetActive resets all changes to the "active" field.
func (m *AdminUserMutation) ResetActive() {
	m.active = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *AdminUserMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *AdminUserMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the AdminUser entity.
// If the AdminUser object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AdminUserMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *AdminUserMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the AdminUserMutation builder.
func (m *AdminUserMutation) Where(ps ...predicate.AdminUser) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the AdminUserMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *AdminUserMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.AdminUser, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *AdminUserMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *AdminUserMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (AdminUser).
func (m *AdminUserMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *AdminUserMutation) Fields() []string {
	fields := make([]string, 0, 3)
	if m.email != nil {
		fields = append(fields, adminuser.FieldEmail)
	}
	if m.active != nil {
		fields = append(fields, adminuser.FieldActive)
	}
	if m.created_at != nil {
		fields = append(fields, adminuser.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *AdminUserMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case adminuser.FieldEmail:
		return m.Email()
	case adminuser.FieldActive:
		return m.Active()
	case adminuser.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *AdminUserMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case adminuser.FieldEmail:
		return m.OldEmail(ctx)
	case adminuser.FieldActive:
		return m.OldActive(ctx)
	case adminuser.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown AdminUser field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AdminUserMutation) SetField(name string, value ent.Value) error {
	switch name {
	case adminuser.FieldEmail:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEmail(v)
		return nil
	case adminuser.FieldActive:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetActive(v)
		return nil
	case adminuser.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown AdminUser field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *AdminUserMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *AdminUserMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AdminUserMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown AdminUser numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *AdminUserMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *AdminUserMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *AdminUserMutation) ClearField(name string) error {
	return fmt.Errorf("unknown AdminUser nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *AdminUserMutation) ResetField(name string) error {
	switch name {
	case adminuser.FieldEmail:
		m.ResetEmail()
		return nil
	case adminuser.FieldActive:
		m.ResetActive()
		return nil
	case adminuser.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown AdminUser field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *AdminUserMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *AdminUserMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *AdminUserMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *AdminUserMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *AdminUserMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *AdminUserMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *AdminUserMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown AdminUser unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *AdminUserMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown AdminUser edge %s", name)
}

// AuditLogMutation represents an operation that mutates the AuditLog nodes in the graph.
type AuditLogMutation struct {
	config
	op             Op
	typ            string
	id             *string
	event_type     *string
	detail         *map[string]interface{}
	created_at     *time.Time
	clearedFields  map[string]struct{}
	session        *string
	clearedsession bool
	done           bool
	oldValue       func(context.Context) (*AuditLog, error)
	predicates     []predicate.AuditLog
}

var _ ent.Mutation = (*AuditLogMutation)(nil)

// auditlogOption allows management of the mutation configuration using functional options.
type auditlogOption func(*AuditLogMutation)

// newAuditLogMutation creates new mutation for the AuditLog entity.
func newAuditLogMutation(c config, op Op, opts ...auditlogOption) *AuditLogMutation {
	m := &AuditLogMutation{
		config:        c,
		op:            op,
		typ:           TypeAuditLog,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withAuditLogID sets the ID field of the mutation.
func withAuditLogID(id string) auditlogOption {
	return func(m *AuditLogMutation) {
		var (
			err   error
			once  sync.Once
			value *AuditLog
		)
		m.oldValue = func(ctx context.Context) (*AuditLog, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().AuditLog.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withAuditLog sets the old AuditLog of the mutation.
func withAuditLog(node *AuditLog) auditlogOption {
	return func(m *AuditLogMutation) {
		m.oldValue = func(context.Context) (*AuditLog, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m AuditLogMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m AuditLogMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of AuditLog entities.
func (m *AuditLogMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *AuditLogMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *AuditLogMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().AuditLog.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSessionToken sets the "session_token" field.
func (m *AuditLogMutation) SetSessionToken(s string) {
	m.session = &s
}

// SessionToken returns the value of the "session_token" field in the mutation.
func (m *AuditLogMutation) SessionToken() (r string, exists bool) {
	v := m.session
	if v == nil {
		return
	}
	return *v, true
}

// OldSessionToken returns the old "session_token" field's value of the AuditLog entity.
// If the AuditLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditLogMutation) OldSessionToken(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSessionToken is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSessionToken requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSessionToken: %w", err)
	}
	return oldValue.SessionToken, nil
}

// ResetSessionToken resets all changes to the "session_token" field.
func (m *AuditLogMutation) ResetSessionToken() {
	m.session = nil
}

// SetEventType sets the "event_type" field.
func (m *AuditLogMutation) SetEventType(s string) {
	m.event_type = &s
}

// EventType returns the value of the "event_type" field in the mutation.
func (m *AuditLogMutation) EventType() (r string, exists bool) {
	v := m.event_type
	if v == nil {
		return
	}
	return *v, true
}

// OldEventType returns the old "event_type" field's value of the AuditLog entity.
// If the AuditLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditLogMutation) OldEventType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEventType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEventType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEventType: %w", err)
	}
	return oldValue.EventType, nil
}

// ResetEventType resets all changes to the "event_type" field.
func (m *AuditLogMutation) ResetEventType() {
	m.event_type = nil
}

// SetDetail sets the "detail" field.
func (m *AuditLogMutation) SetDetail(value map[string]interface{}) {
	m.detail = &value
}

// Detail returns the value of the "detail" field in the mutation.
func (m *AuditLogMutation) Detail() (r map[string]interface{}, exists bool) {
	v := m.detail
	if v == nil {
		return
	}
	return *v, true
}

// OldDetail returns the old "detail" field's value of the AuditLog entity.
// If the AuditLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditLogMutation) OldDetail(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDetail is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDetail requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDetail: %w", err)
	}
	return oldValue.Detail, nil
}

// ClearDetail clears the value of the "detail" field.
func (m *AuditLogMutation) ClearDetail() {
	m.detail = nil
	m.clearedFields[auditlog.FieldDetail] = struct{}{}
}

// DetailCleared returns if the "detail" field was cleared in this mutation.
func (m *AuditLogMutation) DetailCleared() bool {
	_, ok := m.clearedFields[auditlog.FieldDetail]
	return ok
}

// ResetDetail resets all changes to the "detail" field.
func (m *AuditLogMutation) ResetDetail() {
	m.detail = nil
	delete(m.clearedFields, auditlog.FieldDetail)
}

// SetCreatedAt sets the "created_at" field.
func (m *AuditLogMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *AuditLogMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the AuditLog entity.
// If the AuditLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditLogMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *AuditLogMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetSessionID sets the "session" edge to the IntakeSession entity by id.
func (m *AuditLogMutation) SetSessionID(id string) {
	m.session = &id
}

// ClearSession clears the "session" edge to the IntakeSession entity.
func (m *AuditLogMutation) ClearSession() {
	m.clearedsession = true
	m.clearedFields[auditlog.FieldSessionToken] = struct{}{}
}

// SessionCleared reports if the "session" edge to the IntakeSession entity was cleared.
func (m *AuditLogMutation) SessionCleared() bool {
	return m.clearedsession
}

// SessionID returns the "session" edge ID in the mutation.
func (m *AuditLogMutation) SessionID() (id string, exists bool) {
	if m.session != nil {
		return *m.session, true
	}
	return
}

// SessionIDs returns the "session" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// SessionID instead. It exists only for internal usage by the builders.
func (m *AuditLogMutation) SessionIDs() (ids []string) {
	if id := m.session; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetSession resets all changes to the "session" edge.
func (m *AuditLogMutation) ResetSession() {
	m.session = nil
	m.clearedsession = false
}

// Where appends a list predicates to the AuditLogMutation builder.
func (m *AuditLogMutation) Where(ps ...predicate.AuditLog) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the AuditLogMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *AuditLogMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.AuditLog, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *AuditLogMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *AuditLogMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (AuditLog).
func (m *AuditLogMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *AuditLogMutation) Fields() []string {
	fields := make([]string, 0, 4)
	if m.session != nil {
		fields = append(fields, auditlog.FieldSessionToken)
	}
	if m.event_type != nil {
		fields = append(fields, auditlog.FieldEventType)
	}
	if m.detail != nil {
		fields = append(fields, auditlog.FieldDetail)
	}
	if m.created_at != nil {
		fields = append(fields, auditlog.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *AuditLogMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case auditlog.FieldSessionToken:
		return m.SessionToken()
	case auditlog.FieldEventType:
		return m.EventType()
	case auditlog.FieldDetail:
		return m.Detail()
	case auditlog.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *AuditLogMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case auditlog.FieldSessionToken:
		return m.OldSessionToken(ctx)
	case auditlog.FieldEventType:
		return m.OldEventType(ctx)
	case auditlog.FieldDetail:
		return m.OldDetail(ctx)
	case auditlog.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown AuditLog field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AuditLogMutation) SetField(name string, value ent.Value) error {
	switch name {
	case auditlog.FieldSessionToken:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSessionToken(v)
		return nil
	case auditlog.FieldEventType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEventType(v)
		return nil
	case auditlog.FieldDetail:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDetail(v)
		return nil
	case auditlog.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown AuditLog field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *AuditLogMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *AuditLogMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AuditLogMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown AuditLog numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *AuditLogMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(auditlog.FieldDetail) {
		fields = append(fields, auditlog.FieldDetail)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *AuditLogMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *AuditLogMutation) ClearField(name string) error {
	switch name {
	case auditlog.FieldDetail:
		m.ClearDetail()
		return nil
	}
	return fmt.Errorf("unknown AuditLog nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *AuditLogMutation) ResetField(name string) error {
	switch name {
	case auditlog.FieldSessionToken:
		m.ResetSessionToken()
		return nil
	case auditlog.FieldEventType:
		m.ResetEventType()
		return nil
	case auditlog.FieldDetail:
		m.ResetDetail()
		return nil
	case auditlog.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown AuditLog field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *AuditLogMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.session != nil {
		edges = append(edges, auditlog.EdgeSession)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *AuditLogMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case auditlog.EdgeSession:
		if id := m.session; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *AuditLogMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *AuditLogMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *AuditLogMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedsession {
		edges = append(edges, auditlog.EdgeSession)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *AuditLogMutation) EdgeCleared(name string) bool {
	switch name {
	case auditlog.EdgeSession:
		return m.clearedsession
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *AuditLogMutation) ClearEdge(name string) error {
	switch name {
	case auditlog.EdgeSession:
		m.ClearSession()
		return nil
	}
	return fmt.Errorf("unknown AuditLog unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *AuditLogMutation) ResetEdge(name string) error {
	switch name {
	case auditlog.EdgeSession:
		m.ResetSession()
		return nil
	}
	return fmt.Errorf("unknown AuditLog edge %s", name)
}

// IntakeReportMutation represents an operation that mutates the IntakeReport nodes in the graph.
type IntakeReportMutation struct {
	config
	op             Op
	typ            string
	id             *string
	report         *map[string]interface{}
	generated_at   *time.Time
	clearedFields  map[string]struct{}
	session        *string
	clearedsession bool
	done           bool
	oldValue       func(context.Context) (*IntakeReport, error)
	predicates     []predicate.IntakeReport
}

var _ ent.Mutation = (*IntakeReportMutation)(nil)

// intakereportOption allows management of the mutation configuration using functional options.
type intakereportOption func(*IntakeReportMutation)

// newIntakeReportMutation creates new mutation for the IntakeReport entity.
func newIntakeReportMutation(c config, op Op, opts ...intakereportOption) *IntakeReportMutation {
	m := &IntakeReportMutation{
		config:        c,
		op:            op,
		typ:           TypeIntakeReport,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withIntakeReportID sets the ID field of the mutation.
func withIntakeReportID(id string) intakereportOption {
	return func(m *IntakeReportMutation) {
		var (
			err   error
			once  sync.Once
			value *IntakeReport
		)
		m.oldValue = func(ctx context.Context) (*IntakeReport, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().IntakeReport.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withIntakeReport sets the old IntakeReport of the mutation.
func withIntakeReport(node *IntakeReport) intakereportOption {
	return func(m *IntakeReportMutation) {
		m.oldValue = func(context.Context) (*IntakeReport, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m IntakeReportMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m IntakeReportMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of IntakeReport entities.
func (m *IntakeReportMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *IntakeReportMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *IntakeReportMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().IntakeReport.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSessionToken sets the "session_token" field.
func (m *IntakeReportMutation) SetSessionToken(s string) {
	m.session = &s
}

// SessionToken returns the value of the "session_token" field in the mutation.
func (m *IntakeReportMutation) SessionToken() (r string, exists bool) {
	v := m.session
	if v == nil {
		return
	}
	return *v, true
}

// OldSessionToken returns the old "session_token" field's value of the IntakeReport entity.
// If the IntakeReport object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IntakeReportMutation) OldSessionToken(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSessionToken is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSessionToken requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSessionToken: %w", err)
	}
	return oldValue.SessionToken, nil
}

// ResetSessionToken resets all changes to the "session_token" field.
func (m *IntakeReportMutation) ResetSessionToken() {
	m.session = nil
}

// SetReport sets the "report" field.
func (m *IntakeReportMutation) SetReport(value map[string]interface{}) {
	m.report = &value
}

// Report returns the value of the "report" field in the mutation.
func (m *IntakeReportMutation) Report() (r map[string]interface{}, exists bool) {
	v := m.report
	if v == nil {
		return
	}
	return *v, true
}

// OldReport returns the old "report" field's value of the IntakeReport entity.
// If the IntakeReport object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IntakeReportMutation) OldReport(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReport is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReport requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReport: %w", err)
	}
	return oldValue.Report, nil
}

// ResetReport resets all changes to the "report" field.
func (m *IntakeReportMutation) ResetReport() {
	m.report = nil
}

// SetGeneratedAt sets the "generated_at" field.
func (m *IntakeReportMutation) SetGeneratedAt(t time.Time) {
	m.generated_at = &t
}

// GeneratedAt returns the value of the "generated_at" field in the mutation.
func (m *IntakeReportMutation) GeneratedAt() (r time.Time, exists bool) {
	v := m.generated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldGeneratedAt returns the old "generated_at" field's value of the IntakeReport entity.
// If the IntakeReport object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IntakeReportMutation) OldGeneratedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldGeneratedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldGeneratedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldGeneratedAt: %w", err)
	}
	return oldValue.GeneratedAt, nil
}

// ResetGeneratedAt resets all changes to the "generated_at" field.
func (m *IntakeReportMutation) ResetGeneratedAt() {
	m.generated_at = nil
}

// SetSessionID sets the "session" edge to the IntakeSession entity by id.
func (m *IntakeReportMutation) SetSessionID(id string) {
	m.session = &id
}

// ClearSession clears the "session" edge to the IntakeSession entity.
func (m *IntakeReportMutation) ClearSession() {
	m.clearedsession = true
	m.clearedFields[intakereport.FieldSessionToken] = struct{}{}
}

// SessionCleared reports if the "session" edge to the IntakeSession entity was cleared.
func (m *IntakeReportMutation) SessionCleared() bool {
	return m.clearedsession
}

// SessionID returns the "session" edge ID in the mutation.
func (m *IntakeReportMutation) SessionID() (id string, exists bool) {
	if m.session != nil {
		return *m.session, true
	}
	return
}

// SessionIDs returns the "session" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// SessionID instead. It exists only for internal usage by the builders.
func (m *IntakeReportMutation) SessionIDs() (ids []string) {
	if id := m.session; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetSession resets all changes to the "session" edge.
func (m *IntakeReportMutation) ResetSession() {
	m.session = nil
	m.clearedsession = false
}

// Where appends a list predicates to the IntakeReportMutation builder.
func (m *IntakeReportMutation) Where(ps ...predicate.IntakeReport) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the IntakeReportMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *IntakeReportMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.IntakeReport, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *IntakeReportMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *IntakeReportMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (IntakeReport).
func (m *IntakeReportMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *IntakeReportMutation) Fields() []string {
	fields := make([]string, 0, 3)
	if m.session != nil {
		fields = append(fields, intakereport.FieldSessionToken)
	}
	if m.report != nil {
		fields = append(fields, intakereport.FieldReport)
	}
	if m.generated_at != nil {
		fields = append(fields, intakereport.FieldGeneratedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *IntakeReportMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case intakereport.FieldSessionToken:
		return m.SessionToken()
	case intakereport.FieldReport:
		return m.Report()
	case intakereport.FieldGeneratedAt:
		return m.GeneratedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *IntakeReportMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case intakereport.FieldSessionToken:
		return m.OldSessionToken(ctx)
	case intakereport.FieldReport:
		return m.OldReport(ctx)
	case intakereport.FieldGeneratedAt:
		return m.OldGeneratedAt(ctx)
	}
	return nil, fmt.Errorf("unknown IntakeReport field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *IntakeReportMutation) SetField(name string, value ent.Value) error {
	switch name {
	case intakereport.FieldSessionToken:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSessionToken(v)
		return nil
	case intakereport.FieldReport:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReport(v)
		return nil
	case intakereport.FieldGeneratedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetGeneratedAt(v)
		return nil
	}
	return fmt.Errorf("unknown IntakeReport field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *IntakeReportMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *IntakeReportMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *IntakeReportMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown IntakeReport numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *IntakeReportMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *IntakeReportMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *IntakeReportMutation) ClearField(name string) error {
	return fmt.Errorf("unknown IntakeReport nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *IntakeReportMutation) ResetField(name string) error {
	switch name {
	case intakereport.FieldSessionToken:
		m.ResetSessionToken()
		return nil
	case intakereport.FieldReport:
		m.ResetReport()
		return nil
	case intakereport.FieldGeneratedAt:
		m.ResetGeneratedAt()
		return nil
	}
	return fmt.Errorf("unknown IntakeReport field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *IntakeReportMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.session != nil {
		edges = append(edges, intakereport.EdgeSession)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *IntakeReportMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case intakereport.EdgeSession:
		if id := m.session; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *IntakeReportMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *IntakeReportMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *IntakeReportMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedsession {
		edges = append(edges, intakereport.EdgeSession)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *IntakeReportMutation) EdgeCleared(name string) bool {
	switch name {
	case intakereport.EdgeSession:
		return m.clearedsession
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *IntakeReportMutation) ClearEdge(name string) error {
	switch name {
	case intakereport.EdgeSession:
		m.ClearSession()
		return nil
	}
	return fmt.Errorf("unknown IntakeReport unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *IntakeReportMutation) ResetEdge(name string) error {
	switch name {
	case intakereport.EdgeSession:
		m.ResetSession()
		return nil
	}
	return fmt.Errorf("unknown IntakeReport edge %s", name)
}

// IntakeSessionMutation represents an operation that mutates the IntakeSession nodes in the graph.
type IntakeSessionMutation struct {
	config
	op                         Op
	typ                        string
	id                         *string
	patient_id                 *string
	user_name                  *string
	current_phase              *string
	status                     *intakesession.Status
	conversation_history       *[]map[string]interface{}
	appendconversation_history []map[string]interface{}
	extracted_data             *map[string]interface{}
	symptoms_detected          *map[string]bool
	completed_phases           *[]string
	appendcompleted_phases     []string
	completed_screeners        *[]string
	appendcompleted_screeners  []string
	screener_scores            *map[string]interface{}
	current_screener           *string
	screener_progress          *[]int
	appendscreener_progress    []int
	risk_flags                 *[]map[string]interface{}
	appendrisk_flags           []map[string]interface{}
	turns_since_extract        *int
	addturns_since_extract     *int
	paused_at                  *time.Time
	expires_at                 *time.Time
	resume_token               *string
	version                    *int64
	addversion                 *int64
	created_at                 *time.Time
	updated_at                 *time.Time
	completed_at               *time.Time
	clearedFields              map[string]struct{}
	report                     *string
	clearedreport              bool
	notifications              map[string]struct{}
	removednotifications       map[string]struct{}
	clearednotifications       bool
	audit_logs                 map[string]struct{}
	removedaudit_logs          map[string]struct{}
	clearedaudit_logs          bool
	done                       bool
	oldValue                   func(context.Context) (*IntakeSession, error)
	predicates                 []predicate.IntakeSession
}

var _ ent.Mutation = (*IntakeSessionMutation)(nil)

// intakesessionOption allows management of the mutation configuration using functional options.
type intakesessionOption func(*IntakeSessionMutation)

// newIntakeSessionMutation creates new mutation for the IntakeSession entity.
func newIntakeSessionMutation(c config, op Op, opts ...intakesessionOption) *IntakeSessionMutation {
	m := &IntakeSessionMutation{
		config:        c,
		op:            op,
		typ:           TypeIntakeSession,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withIntakeSessionID sets the ID field of the mutation.
func withIntakeSessionID(id string) intakesessionOption {
	return func(m *IntakeSessionMutation) {
		var (
			err   error
			once  sync.Once
			value *IntakeSession
		)
		m.oldValue = func(ctx context.Context) (*IntakeSession, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().IntakeSession.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withIntakeSession sets the old IntakeSession of the mutation.
func withIntakeSession(node *IntakeSession) intakesessionOption {
	return func(m *IntakeSessionMutation) {
		m.oldValue = func(context.Context) (*IntakeSession, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m IntakeSessionMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m IntakeSessionMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of IntakeSession entities.
func (m *IntakeSessionMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *IntakeSessionMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *IntakeSessionMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().IntakeSession.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetPatientID sets the "patient_id" field.
func (m *IntakeSessionMutation) SetPatientID(s string) {
	m.patient_id = &s
}

// PatientID returns the value of the "patient_id" field in the mutation.
func (m *IntakeSessionMutation) PatientID() (r string, exists bool) {
	v := m.patient_id
	if v == nil {
		return
	}
	return *v, true
}

// OldPatientID returns the old "patient_id" field's value of the IntakeSession entity.
// If the IntakeSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IntakeSessionMutation) OldPatientID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPatientID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPatientID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPatientID: %w", err)
	}
	return oldValue.PatientID, nil
}

// ClearPatientID clears the value of the "patient_id" field.
func (m *IntakeSessionMutation) ClearPatientID() {
	m.patient_id = nil
	m.clearedFields[intakesession.FieldPatientID] = struct{}{}
}

// PatientIDCleared returns if the "patient_id" field was cleared in this mutation.
func (m *IntakeSessionMutation) PatientIDCleared() bool {
	_, ok := m.clearedFields[intakesession.FieldPatientID]
	return ok
}

// ResetPatientID resets all changes to the "patient_id" field.
func (m *IntakeSessionMutation) ResetPatientID() {
	m.patient_id = nil
	delete(m.clearedFields, intakesession.FieldPatientID)
}

// SetUserName sets the "user_name" field.
func (m *IntakeSessionMutation) SetUserName(s string) {
	m.user_name = &s
}

// UserName returns the value of the "user_name" field in the mutation.
func (m *IntakeSessionMutation) UserName() (r string, exists bool) {
	v := m.user_name
	if v == nil {
		return
	}
	return *v, true
}

// OldUserName returns the old "user_name" field's value of the IntakeSession entity.
// If the IntakeSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IntakeSessionMutation) OldUserName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserName: %w", err)
	}
	return oldValue.UserName, nil
}

// ClearUserName clears the value of the "user_name" field.
func (m *IntakeSessionMutation) ClearUserName() {
	m.user_name = nil
	m.clearedFields[intakesession.FieldUserName] = struct{}{}
}

// UserNameCleared returns if the "user_name" field was cleared in this mutation.
func (m *IntakeSessionMutation) UserNameCleared() bool {
	_, ok := m.clearedFields[intakesession.FieldUserName]
	return ok
}

// ResetUserName resets all changes to the "user_name" field.
func (m *IntakeSessionMutation) ResetUserName() {
	m.user_name = nil
	delete(m.clearedFields, intakesession.FieldUserName)
}

// SetCurrentPhase sets the "current_phase" field.
func (m *IntakeSessionMutation) SetCurrentPhase(s string) {
	m.current_phase = &s
}

// CurrentPhase returns the value of the "current_phase" field in the mutation.
func (m *IntakeSessionMutation) CurrentPhase() (r string, exists bool) {
	v := m.current_phase
	if v == nil {
		return
	}
	return *v, true
}

// OldCurrentPhase returns the old "current_phase" field's value of the IntakeSession entity.
// If the IntakeSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IntakeSessionMutation) OldCurrentPhase(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCurrentPhase is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCurrentPhase requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCurrentPhase: %w", err)
	}
	return oldValue.CurrentPhase, nil
}

// ResetCurrentPhase resets all changes to the "current_phase" field.
func (m *IntakeSessionMutation) ResetCurrentPhase() {
	m.current_phase = nil
}

// SetStatus sets the "status" field.
func (m *IntakeSessionMutation) SetStatus(i intakesession.Status) {
	m.status = &i
}

// Status returns the value of the "status" field in the mutation.
func (m *IntakeSessionMutation) Status() (r intakesession.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the IntakeSession entity.
// If the IntakeSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IntakeSessionMutation) OldStatus(ctx context.Context) (v intakesession.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *IntakeSessionMutation) ResetStatus() {
	m.status = nil
}

// SetConversationHistory sets the "conversation_history" field.
func (m *IntakeSessionMutation) SetConversationHistory(value []map[string]interface{}) {
	m.conversation_history = &value
	m.appendconversation_history = nil
}

// ConversationHistory returns the value of the "conversation_history" field in the mutation.
func (m *IntakeSessionMutation) ConversationHistory() (r []map[string]interface{}, exists bool) {
	v := m.conversation_history
	if v == nil {
		return
	}
	return *v, true
}

// OldConversationHistory returns the old "conversation_history" field's value of the IntakeSession entity.
// If the IntakeSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IntakeSessionMutation) OldConversationHistory(ctx context.Context) (v []map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConversationHistory is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConversationHistory requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConversationHistory: %w", err)
	}
	return oldValue.ConversationHistory, nil
}

// AppendConversationHistory adds value to the "conversation_history" field.
func (m *IntakeSessionMutation) AppendConversationHistory(value []map[string]interface{}) {
	m.appendconversation_history = append(m.appendconversation_history, value...)
}

// AppendedConversationHistory returns the list of values that were appended to the "conversation_history" field in this mutation.
func (m *IntakeSessionMutation) AppendedConversationHistory() ([]map[string]interface{}, bool) {
	if len(m.appendconversation_history) == 0 {
		return nil, false
	}
	return m.appendconversation_history, true
}

// ClearConversationHistory clears the value of the "conversation_history" field.
func (m *IntakeSessionMutation) ClearConversationHistory() {
	m.conversation_history = nil
	m.appendconversation_history = nil
	m.clearedFields[intakesession.FieldConversationHistory] = struct{}{}
}

// ConversationHistoryCleared returns if the "conversation_history" field was cleared in this mutation.
func (m *IntakeSessionMutation) ConversationHistoryCleared() bool {
	_, ok := m.clearedFields[intakesession.FieldConversationHistory]
	return ok
}

// ResetConversationHistory resets all changes to the "conversation_history" field.
func (m *IntakeSessionMutation) ResetConversationHistory() {
	m.conversation_history = nil
	m.appendconversation_history = nil
	delete(m.clearedFields, intakesession.FieldConversationHistory)
}

// SetExtractedData sets the "extracted_data" field.
func (m *IntakeSessionMutation) SetExtractedData(value map[string]interface{}) {
	m.extracted_data = &value
}

// ExtractedData returns the value of the "extracted_data" field in the mutation.
func (m *IntakeSessionMutation) ExtractedData() (r map[string]interface{}, exists bool) {
	v := m.extracted_data
	if v == nil {
		return
	}
	return *v, true
}

// OldExtractedData returns the old "extracted_data" field's value of the IntakeSession entity.
// If the IntakeSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IntakeSessionMutation) OldExtractedData(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExtractedData is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExtractedData requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExtractedData: %w", err)
	}
	return oldValue.ExtractedData, nil
}

// ClearExtractedData clears the value of the "extracted_data" field.
func (m *IntakeSessionMutation) ClearExtractedData() {
	m.extracted_data = nil
	m.clearedFields[intakesession.FieldExtractedData] = struct{}{}
}

// ExtractedDataCleared returns if the "extracted_data" field was cleared in this mutation.
func (m *IntakeSessionMutation) ExtractedDataCleared() bool {
	_, ok := m.clearedFields[intakesession.FieldExtractedData]
	return ok
}

// ResetExtractedData resets all changes to the "extracted_data" field.
func (m *IntakeSessionMutation) ResetExtractedData() {
	m.extracted_data = nil
	delete(m.clearedFields, intakesession.FieldExtractedData)
}

// SetSymptomsDetected sets the "symptoms_detected" field.
func (m *IntakeSessionMutation) SetSymptomsDetected(value map[string]bool) {
	m.symptoms_detected = &value
}

// SymptomsDetected returns the value of the "symptoms_detected" field in the mutation.
func (m *IntakeSessionMutation) SymptomsDetected() (r map[string]bool, exists bool) {
	v := m.symptoms_detected
	if v == nil {
		return
	}
	return *v, true
}

// OldSymptomsDetected returns the old "symptoms_detected" field's value of the IntakeSession entity.
// If the IntakeSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IntakeSessionMutation) OldSymptomsDetected(ctx context.Context) (v map[string]bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSymptomsDetected is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSymptomsDetected requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSymptomsDetected: %w", err)
	}
	return oldValue.SymptomsDetected, nil
}

// ClearSymptomsDetected clears the value of the "symptoms_detected" field.
func (m *IntakeSessionMutation) ClearSymptomsDetected() {
	m.symptoms_detected = nil
	m.clearedFields[intakesession.FieldSymptomsDetected] = struct{}{}
}

// SymptomsDetectedCleared returns if the "symptoms_detected" field was cleared in this mutation.
func (m *IntakeSessionMutation) SymptomsDetectedCleared() bool {
	_, ok := m.clearedFields[intakesession.FieldSymptomsDetected]
	return ok
}

// ResetSymptomsDetected resets all changes to the "symptoms_detected" field.
func (m *IntakeSessionMutation) ResetSymptomsDetected() {
	m.symptoms_detected = nil
	delete(m.clearedFields, intakesession.FieldSymptomsDetected)
}

// SetCompletedPhases sets the "completed_phases" field.
func (m *IntakeSessionMutation) SetCompletedPhases(s []string) {
	m.completed_phases = &s
	m.appendcompleted_phases = nil
}

// CompletedPhases returns the value of the "completed_phases" field in the mutation.
func (m *IntakeSessionMutation) CompletedPhases() (r []string, exists bool) {
	v := m.completed_phases
	if v == nil {
		return
	}
	return *v, true
}

// OldCompletedPhases returns the old "completed_phases" field's value of the IntakeSession entity.
// If the IntakeSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IntakeSessionMutation) OldCompletedPhases(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompletedPhases is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompletedPhases requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompletedPhases: %w", err)
	}
	return oldValue.CompletedPhases, nil
}

// AppendCompletedPhases adds s to the "completed_phases" field.
func (m *IntakeSessionMutation) AppendCompletedPhases(s []string) {
	m.appendcompleted_phases = append(m.appendcompleted_phases, s...)
}

// AppendedCompletedPhases returns the list of values that were appended to the "completed_phases" field in this mutation.
func (m *IntakeSessionMutation) AppendedCompletedPhases() ([]string, bool) {
	if len(m.appendcompleted_phases) == 0 {
		return nil, false
	}
	return m.appendcompleted_phases, true
}

// ClearCompletedPhases clears the value of the "completed_phases" field.
func (m *IntakeSessionMutation) ClearCompletedPhases() {
	m.completed_phases = nil
	m.appendcompleted_phases = nil
	m.clearedFields[intakesession.FieldCompletedPhases] = struct{}{}
}

// CompletedPhasesCleared returns if the "completed_phases" field was cleared in this mutation.
func (m *IntakeSessionMutation) CompletedPhasesCleared() bool {
	_, ok := m.clearedFields[intakesession.FieldCompletedPhases]
	return ok
}

// ResetCompletedPhases resets all changes to the "completed_phases" field.
func (m *IntakeSessionMutation) ResetCompletedPhases() {
	m.completed_phases = nil
	m.appendcompleted_phases = nil
	delete(m.clearedFields, intakesession.FieldCompletedPhases)
}

// SetCompletedScreeners sets the "completed_screeners" field.
func (m *IntakeSessionMutation) SetCompletedScreeners(s []string) {
	m.completed_screeners = &s
	m.appendcompleted_screeners = nil
}

// CompletedScreeners returns the value of the "completed_screeners" field in the mutation.
func (m *IntakeSessionMutation) CompletedScreeners() (r []string, exists bool) {
	v := m.completed_screeners
	if v == nil {
		return
	}
	return *v, true
}

// OldCompletedScreeners returns the old "completed_screeners" field's value of the IntakeSession entity.
// If the IntakeSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IntakeSessionMutation) OldCompletedScreeners(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompletedScreeners is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompletedScreeners requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompletedScreeners: %w", err)
	}
	return oldValue.CompletedScreeners, nil
}

// AppendCompletedScreeners adds s to the "completed_screeners" field.
func (m *IntakeSessionMutation) AppendCompletedScreeners(s []string) {
	m.appendcompleted_screeners = append(m.appendcompleted_screeners, s...)
}

// AppendedCompletedScreeners returns the list of values that were appended to the "completed_screeners" field in this mutation.
func (m *IntakeSessionMutation) AppendedCompletedScreeners() ([]string, bool) {
	if len(m.appendcompleted_screeners) == 0 {
		return nil, false
	}
	return m.appendcompleted_screeners, true
}

// ClearCompletedScreeners clears the value of the "completed_screeners" field.
func (m *IntakeSessionMutation) ClearCompletedScreeners() {
	m.completed_screeners = nil
	m.appendcompleted_screeners = nil
	m.clearedFields[intakesession.FieldCompletedScreeners] = struct{}{}
}

// CompletedScreenersCleared returns if the "completed_screeners" field was cleared in this mutation.
func (m *IntakeSessionMutation) CompletedScreenersCleared() bool {
	_, ok := m.clearedFields[intakesession.FieldCompletedScreeners]
	return ok
}

// ResetCompletedScreeners resets all changes to the "completed_screeners" field.
func (m *IntakeSessionMutation) ResetCompletedScreeners() {
	m.completed_screeners = nil
	m.appendcompleted_screeners = nil
	delete(m.clearedFields, intakesession.FieldCompletedScreeners)
}

// SetScreenerScores sets the "screener_scores" field.
func (m *IntakeSessionMutation) SetScreenerScores(value map[string]interface{}) {
	m.screener_scores = &value
}

// ScreenerScores returns the value of the "screener_scores" field in the mutation.
func (m *IntakeSessionMutation) ScreenerScores() (r map[string]interface{}, exists bool) {
	v := m.screener_scores
	if v == nil {
		return
	}
	return *v, true
}

// OldScreenerScores returns the old "screener_scores" field's value of the IntakeSession entity.
// If the IntakeSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IntakeSessionMutation) OldScreenerScores(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldScreenerScores is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldScreenerScores requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldScreenerScores: %w", err)
	}
	return oldValue.ScreenerScores, nil
}

// ClearScreenerScores clears the value of the "screener_scores" field.
func (m *IntakeSessionMutation) ClearScreenerScores() {
	m.screener_scores = nil
	m.clearedFields[intakesession.FieldScreenerScores] = struct{}{}
}

// ScreenerScoresCleared returns if the "screener_scores" field was cleared in this mutation.
func (m *IntakeSessionMutation) ScreenerScoresCleared() bool {
	_, ok := m.clearedFields[intakesession.FieldScreenerScores]
	return ok
}

// ResetScreenerScores resets all changes to the "screener_scores" field.
func (m *IntakeSessionMutation) ResetScreenerScores() {
	m.screener_scores = nil
	delete(m.clearedFields, intakesession.FieldScreenerScores)
}

// SetCurrentScreener sets the "current_screener" field.
func (m *IntakeSessionMutation) SetCurrentScreener(s string) {
	m.current_screener = &s
}

// CurrentScreener returns the value of the "current_screener" field in the mutation.
func (m *IntakeSessionMutation) CurrentScreener() (r string, exists bool) {
	v := m.current_screener
	if v == nil {
		return
	}
	return *v, true
}

// OldCurrentScreener returns the old "current_screener" field's value of the IntakeSession entity.
// If the IntakeSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IntakeSessionMutation) OldCurrentScreener(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCurrentScreener is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCurrentScreener requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCurrentScreener: %w", err)
	}
	return oldValue.CurrentScreener, nil
}

// ClearCurrentScreener clears the value of the "current_screener" field.
func (m *IntakeSessionMutation) ClearCurrentScreener() {
	m.current_screener = nil
	m.clearedFields[intakesession.FieldCurrentScreener] = struct{}{}
}

// CurrentScreenerCleared returns if the "current_screener" field was cleared in this mutation.
func (m *IntakeSessionMutation) CurrentScreenerCleared() bool {
	_, ok := m.clearedFields[intakesession.FieldCurrentScreener]
	return ok
}

// ResetCurrentScreener resets all changes to the "current_screener" field.
func (m *IntakeSessionMutation) ResetCurrentScreener() {
	m.current_screener = nil
	delete(m.clearedFields, intakesession.FieldCurrentScreener)
}

// SetScreenerProgress sets the "screener_progress" field.
func (m *IntakeSessionMutation) SetScreenerProgress(i []int) {
	m.screener_progress = &i
	m.appendscreener_progress = nil
}

// ScreenerProgress returns the value of the "screener_progress" field in the mutation.
func (m *IntakeSessionMutation) ScreenerProgress() (r []int, exists bool) {
	v := m.screener_progress
	if v == nil {
		return
	}
	return *v, true
}

// OldScreenerProgress returns the old "screener_progress" field's value of the IntakeSession entity.
// If the IntakeSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IntakeSessionMutation) OldScreenerProgress(ctx context.Context) (v []int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldScreenerProgress is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldScreenerProgress requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldScreenerProgress: %w", err)
	}
	return oldValue.ScreenerProgress, nil
}

// AppendScreenerProgress adds i to the "screener_progress" field.
func (m *IntakeSessionMutation) AppendScreenerProgress(i []int) {
	m.appendscreener_progress = append(m.appendscreener_progress, i...)
}

// AppendedScreenerProgress returns the list of values that were appended to the "screener_progress" field in this mutation.
func (m *IntakeSessionMutation) AppendedScreenerProgress() ([]int, bool) {
	if len(m.appendscreener_progress) == 0 {
		return nil, false
	}
	return m.appendscreener_progress, true
}

// ClearScreenerProgress clears the value of the "screener_progress" field.
func (m *IntakeSessionMutation) ClearScreenerProgress() {
	m.screener_progress = nil
	m.appendscreener_progress = nil
	m.clearedFields[intakesession.FieldScreenerProgress] = struct{}{}
}

// ScreenerProgressCleared returns if the "screener_progress" field was cleared in this mutation.
func (m *IntakeSessionMutation) ScreenerProgressCleared() bool {
	_, ok := m.clearedFields[intakesession.FieldScreenerProgress]
	return ok
}

// ResetScreenerProgress resets all changes to the "screener_progress" field.
func (m *IntakeSessionMutation) ResetScreenerProgress() {
	m.screener_progress = nil
	m.appendscreener_progress = nil
	delete(m.clearedFields, intakesession.FieldScreenerProgress)
}

// SetRiskFlags sets the "risk_flags" field.
func (m *IntakeSessionMutation) SetRiskFlags(value []map[string]interface{}) {
	m.risk_flags = &value
	m.appendrisk_flags = nil
}

// RiskFlags returns the value of the "risk_flags" field in the mutation.
func (m *IntakeSessionMutation) RiskFlags() (r []map[string]interface{}, exists bool) {
	v := m.risk_flags
	if v == nil {
		return
	}
	return *v, true
}

// OldRiskFlags returns the old "risk_flags" field's value of the IntakeSession entity.
// If the IntakeSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IntakeSessionMutation) OldRiskFlags(ctx context.Context) (v []map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRiskFlags is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRiskFlags requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRiskFlags: %w", err)
	}
	return oldValue.RiskFlags, nil
}

// AppendRiskFlags adds value to the "risk_flags" field.
func (m *IntakeSessionMutation) AppendRiskFlags(value []map[string]interface{}) {
	m.appendrisk_flags = append(m.appendrisk_flags, value...)
}

// AppendedRiskFlags returns the list of values that were appended to the "risk_flags" field in this mutation.
func (m *IntakeSessionMutation) AppendedRiskFlags() ([]map[string]interface{}, bool) {
	if len(m.appendrisk_flags) == 0 {
		return nil, false
	}
	return m.appendrisk_flags, true
}

// ClearRiskFlags clears the value of the "risk_flags" field.
func (m *IntakeSessionMutation) ClearRiskFlags() {
	m.risk_flags = nil
	m.appendrisk_flags = nil
	m.clearedFields[intakesession.FieldRiskFlags] = struct{}{}
}

// RiskFlagsCleared returns if the "risk_flags" field was cleared in this mutation.
func (m *IntakeSessionMutation) RiskFlagsCleared() bool {
	_, ok := m.clearedFields[intakesession.FieldRiskFlags]
	return ok
}

// ResetRiskFlags resets all changes to the "risk_flags" field.
func (m *IntakeSessionMutation) ResetRiskFlags() {
	m.risk_flags = nil
	m.appendrisk_flags = nil
	delete(m.clearedFields, intakesession.FieldRiskFlags)
}

// SetTurnsSinceExtract sets the "turns_since_extract" field.
func (m *IntakeSessionMutation) SetTurnsSinceExtract(i int) {
	m.turns_since_extract = &i
	m.addturns_since_extract = nil
}

// TurnsSinceExtract returns the value of the "turns_since_extract" field in the mutation.
func (m *IntakeSessionMutation) TurnsSinceExtract() (r int, exists bool) {
	v := m.turns_since_extract
	if v == nil {
		return
	}
	return *v, true
}

// OldTurnsSinceExtract returns the old "turns_since_extract" field's value of the IntakeSession entity.
// If the IntakeSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IntakeSessionMutation) OldTurnsSinceExtract(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTurnsSinceExtract is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTurnsSinceExtract requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTurnsSinceExtract: %w", err)
	}
	return oldValue.TurnsSinceExtract, nil
}

// AddTurnsSinceExtract adds i to the "turns_since_extract" field.
func (m *IntakeSessionMutation) AddTurnsSinceExtract(i int) {
	if m.addturns_since_extract != nil {
		*m.addturns_since_extract += i
	} else {
		m.addturns_since_extract = &i
	}
}

// AddedTurnsSinceExtract returns the value that was added to the "turns_since_extract" field in this mutation.
func (m *IntakeSessionMutation) AddedTurnsSinceExtract() (r int, exists bool) {
	v := m.addturns_since_extract
	if v == nil {
		return
	}
	return *v, true
}

// ResetTurnsSinceExtract resets all changes to the "turns_since_extract" field.
func (m *IntakeSessionMutation) ResetTurnsSinceExtract() {
	m.turns_since_extract = nil
	m.addturns_since_extract = nil
}

// SetPausedAt sets the "paused_at" field.
func (m *IntakeSessionMutation) SetPausedAt(t time.Time) {
	m.paused_at = &t
}

// PausedAt returns the value of the "paused_at" field in the mutation.
func (m *IntakeSessionMutation) PausedAt() (r time.Time, exists bool) {
	v := m.paused_at
	if v == nil {
		return
	}
	return *v, true
}

// OldPausedAt returns the old "paused_at" field's value of the IntakeSession entity.
// If the IntakeSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IntakeSessionMutation) OldPausedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPausedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPausedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPausedAt: %w", err)
	}
	return oldValue.PausedAt, nil
}

// ClearPausedAt clears the value of the "paused_at" field.
func (m *IntakeSessionMutation) ClearPausedAt() {
	m.paused_at = nil
	m.clearedFields[intakesession.FieldPausedAt] = struct{}{}
}

// PausedAtCleared returns if the "paused_at" field was cleared in this mutation.
func (m *IntakeSessionMutation) PausedAtCleared() bool {
	_, ok := m.clearedFields[intakesession.FieldPausedAt]
	return ok
}

// ResetPausedAt resets all changes to the "paused_at" field.
func (m *IntakeSessionMutation) ResetPausedAt() {
	m.paused_at = nil
	delete(m.clearedFields, intakesession.FieldPausedAt)
}

// SetExpiresAt sets the "expires_at" field.
func (m *IntakeSessionMutation) SetExpiresAt(t time.Time) {
	m.expires_at = &t
}

// ExpiresAt returns the value of the "expires_at" field in the mutation.
func (m *IntakeSessionMutation) ExpiresAt() (r time.Time, exists bool) {
	v := m.expires_at
	if v == nil {
		return
	}
	return *v, true
}

// OldExpiresAt returns the old "expires_at" field's value of the IntakeSession entity.
// If the IntakeSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IntakeSessionMutation) OldExpiresAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExpiresAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExpiresAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExpiresAt: %w", err)
	}
	return oldValue.ExpiresAt, nil
}

// ClearExpiresAt clears the value of the "expires_at" field.
func (m *IntakeSessionMutation) ClearExpiresAt() {
	m.expires_at = nil
	m.clearedFields[intakesession.FieldExpiresAt] = struct{}{}
}

// ExpiresAtCleared returns if the "expires_at" field was cleared in this mutation.
func (m *IntakeSessionMutation) ExpiresAtCleared() bool {
	_, ok := m.clearedFields[intakesession.FieldExpiresAt]
	return ok
}

// ResetExpiresAt resets all changes to the "expires_at" field.
func (m *IntakeSessionMutation) ResetExpiresAt() {
	m.expires_at = nil
	delete(m.clearedFields, intakesession.FieldExpiresAt)
}

// SetResumeToken sets the "resume_token" field.
func (m *IntakeSessionMutation) SetResumeToken(s string) {
	m.resume_token = &s
}

// ResumeToken returns the value of the "resume_token" field in the mutation.
func (m *IntakeSessionMutation) ResumeToken() (r string, exists bool) {
	v := m.resume_token
	if v == nil {
		return
	}
	return *v, true
}

// OldResumeToken returns the old "resume_token" field's value of the IntakeSession entity.
// If the IntakeSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IntakeSessionMutation) OldResumeToken(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldResumeToken is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldResumeToken requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldResumeToken: %w", err)
	}
	return oldValue.ResumeToken, nil
}

// ClearResumeToken clears the value of the "resume_token" field.
func (m *IntakeSessionMutation) ClearResumeToken() {
	m.resume_token = nil
	m.clearedFields[intakesession.FieldResumeToken] = struct{}{}
}

// ResumeTokenCleared returns if the "resume_token" field was cleared in this mutation.
func (m *IntakeSessionMutation) ResumeTokenCleared() bool {
	_, ok := m.clearedFields[intakesession.FieldResumeToken]
	return ok
}

// ResetResumeToken resets all changes to the "resume_token" field.
func (m *IntakeSessionMutation) ResetResumeToken() {
	m.resume_token = nil
	delete(m.clearedFields, intakesession.FieldResumeToken)
}

// SetVersion sets the "version" field.
func (m *IntakeSessionMutation) SetVersion(i int64) {
	m.version = &i
	m.addversion = nil
}

// Version returns the value of the "version" field in the mutation.
func (m *IntakeSessionMutation) Version() (r int64, exists bool) {
	v := m.version
	if v == nil {
		return
	}
	return *v, true
}

// OldVersion returns the old "version" field's value of the IntakeSession entity.
// If the IntakeSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IntakeSessionMutation) OldVersion(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVersion is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVersion requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVersion: %w", err)
	}
	return oldValue.Version, nil
}

// AddVersion adds i to the "version" field.
func (m *IntakeSessionMutation) AddVersion(i int64) {
	if m.addversion != nil {
		*m.addversion += i
	} else {
		m.addversion = &i
	}
}

// AddedVersion returns the value that was added to the "version" field in this mutation.
func (m *IntakeSessionMutation) AddedVersion() (r int64, exists bool) {
	v := m.addversion
	if v == nil {
		return
	}
	return *v, true
}

// ResetVersion resets all changes to the "version" field.
func (m *IntakeSessionMutation) ResetVersion() {
	m.version = nil
	m.addversion = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *IntakeSessionMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *IntakeSessionMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the IntakeSession entity.
// If the IntakeSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IntakeSessionMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *IntakeSessionMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *IntakeSessionMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *IntakeSessionMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the IntakeSession entity.
// If the IntakeSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IntakeSessionMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *IntakeSessionMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetCompletedAt sets the "completed_at" field.
func (m *IntakeSessionMutation) SetCompletedAt(t time.Time) {
	m.completed_at = &t
}

// CompletedAt returns the value of the "completed_at" field in the mutation.
func (m *IntakeSessionMutation) CompletedAt() (r time.Time, exists bool) {
	v := m.completed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCompletedAt returns the old "completed_at" field's value of the IntakeSession entity.
// If the IntakeSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IntakeSessionMutation) OldCompletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompletedAt: %w", err)
	}
	return oldValue.CompletedAt, nil
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (m *IntakeSessionMutation) ClearCompletedAt() {
	m.completed_at = nil
	m.clearedFields[intakesession.FieldCompletedAt] = struct{}{}
}

// CompletedAtCleared returns if the "completed_at" field was cleared in this mutation.
func (m *IntakeSessionMutation) CompletedAtCleared() bool {
	_, ok := m.clearedFields[intakesession.FieldCompletedAt]
	return ok
}

// ResetCompletedAt resets all changes to the "completed_at" field.
func (m *IntakeSessionMutation) ResetCompletedAt() {
	m.completed_at = nil
	delete(m.clearedFields, intakesession.FieldCompletedAt)
}

// SetReportID sets the "report" edge to the IntakeReport entity by id.
func (m *IntakeSessionMutation) SetReportID(id string) {
	m.report = &id
}

// ClearReport clears the "report" edge to the IntakeReport entity.
func (m *IntakeSessionMutation) ClearReport() {
	m.clearedreport = true
}

// ReportCleared reports if the "report" edge to the IntakeReport entity was cleared.
func (m *IntakeSessionMutation) ReportCleared() bool {
	return m.clearedreport
}

// ReportID returns the "report" edge ID in the mutation.
func (m *IntakeSessionMutation) ReportID() (id string, exists bool) {
	if m.report != nil {
		return *m.report, true
	}
	return
}

// ReportIDs returns the "report" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ReportID instead. It exists only for internal usage by the builders.
func (m *IntakeSessionMutation) ReportIDs() (ids []string) {
	if id := m.report; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetReport resets all changes to the "report" edge.
func (m *IntakeSessionMutation) ResetReport() {
	m.report = nil
	m.clearedreport = false
}

// AddNotificationIDs adds the "notifications" edge to the Notification entity by ids.
func (m *IntakeSessionMutation) AddNotificationIDs(ids ...string) {
	if m.notifications == nil {
		m.notifications = make(map[string]struct{})
	}
	for i := range ids {
		m.notifications[ids[i]] = struct{}{}
	}
}

// ClearNotifications clears the "notifications" edge to the Notification entity.
func (m *IntakeSessionMutation) ClearNotifications() {
	m.clearednotifications = true
}

// NotificationsCleared reports if the "notifications" edge to the Notification entity was cleared.
func (m *IntakeSessionMutation) NotificationsCleared() bool {
	return m.clearednotifications
}

// RemoveNotificationIDs removes the "notifications" edge to the Notification entity by IDs.
func (m *IntakeSessionMutation) RemoveNotificationIDs(ids ...string) {
	if m.removednotifications == nil {
		m.removednotifications = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.notifications, ids[i])
		m.removednotifications[ids[i]] = struct{}{}
	}
}

// RemovedNotifications returns the removed IDs of the "notifications" edge to the Notification entity.
func (m *IntakeSessionMutation) RemovedNotificationsIDs() (ids []string) {
	for id := range m.removednotifications {
		ids = append(ids, id)
	}
	return
}

// NotificationsIDs returns the "notifications" edge IDs in the mutation.
func (m *IntakeSessionMutation) NotificationsIDs() (ids []string) {
	for id := range m.notifications {
		ids = append(ids, id)
	}
	return
}

// ResetNotifications resets all changes to the "notifications" edge.
func (m *IntakeSessionMutation) ResetNotifications() {
	m.notifications = nil
	m.clearednotifications = false
	m.removednotifications = nil
}

// AddAuditLogIDs adds the "audit_logs" edge to the AuditLog entity by ids.
func (m *IntakeSessionMutation) AddAuditLogIDs(ids ...string) {
	if m.audit_logs == nil {
		m.audit_logs = make(map[string]struct{})
	}
	for i := range ids {
		m.audit_logs[ids[i]] = struct{}{}
	}
}

// ClearAuditLogs clears the "audit_logs" edge to the AuditLog entity.
func (m *IntakeSessionMutation) ClearAuditLogs() {
	m.clearedaudit_logs = true
}

// AuditLogsCleared reports if the "audit_logs" edge to the AuditLog entity was cleared.
func (m *IntakeSessionMutation) AuditLogsCleared() bool {
	return m.clearedaudit_logs
}

// RemoveAuditLogIDs removes the "audit_logs" edge to the AuditLog entity by IDs.
func (m *IntakeSessionMutation) RemoveAuditLogIDs(ids ...string) {
	if m.removedaudit_logs == nil {
		m.removedaudit_logs = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.audit_logs, ids[i])
		m.removedaudit_logs[ids[i]] = struct{}{}
	}
}

// RemovedAuditLogs returns the removed IDs of the "audit_logs" edge to the AuditLog entity.
func (m *IntakeSessionMutation) RemovedAuditLogsIDs() (ids []string) {
	for id := range m.removedaudit_logs {
		ids = append(ids, id)
	}
	return
}

// AuditLogsIDs returns the "audit_logs" edge IDs in the mutation.
func (m *IntakeSessionMutation) AuditLogsIDs() (ids []string) {
	for id := range m.audit_logs {
		ids = append(ids, id)
	}
	return
}

// ResetAuditLogs resets all changes to the "audit_logs" edge.
func (m *IntakeSessionMutation) ResetAuditLogs() {
	m.audit_logs = nil
	m.clearedaudit_logs = false
	m.removedaudit_logs = nil
}

// Where appends a list predicates to the IntakeSessionMutation builder.
func (m *IntakeSessionMutation) Where(ps ...predicate.IntakeSession) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the IntakeSessionMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *IntakeSessionMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.IntakeSession, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *IntakeSessionMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *IntakeSessionMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (IntakeSession).
func (m *IntakeSessionMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *IntakeSessionMutation) Fields() []string {
	fields := make([]string, 0, 21)
	if m.patient_id != nil {
		fields = append(fields, intakesession.FieldPatientID)
	}
	if m.user_name != nil {
		fields = append(fields, intakesession.FieldUserName)
	}
	if m.current_phase != nil {
		fields = append(fields, intakesession.FieldCurrentPhase)
	}
	if m.status != nil {
		fields = append(fields, intakesession.FieldStatus)
	}
	if m.conversation_history != nil {
		fields = append(fields, intakesession.FieldConversationHistory)
	}
	if m.extracted_data != nil {
		fields = append(fields, intakesession.FieldExtractedData)
	}
	if m.symptoms_detected != nil {
		fields = append(fields, intakesession.FieldSymptomsDetected)
	}
	if m.completed_phases != nil {
		fields = append(fields, intakesession.FieldCompletedPhases)
	}
	if m.completed_screeners != nil {
		fields = append(fields, intakesession.FieldCompletedScreeners)
	}
	if m.screener_scores != nil {
		fields = append(fields, intakesession.FieldScreenerScores)
	}
	if m.current_screener != nil {
		fields = append(fields, intakesession.FieldCurrentScreener)
	}
	if m.screener_progress != nil {
		fields = append(fields, intakesession.FieldScreenerProgress)
	}
	if m.risk_flags != nil {
		fields = append(fields, intakesession.FieldRiskFlags)
	}
	if m.turns_since_extract != nil {
		fields = append(fields, intakesession.FieldTurnsSinceExtract)
	}
	if m.paused_at != nil {
		fields = append(fields, intakesession.FieldPausedAt)
	}
	if m.expires_at != nil {
		fields = append(fields, intakesession.FieldExpiresAt)
	}
	if m.resume_token != nil {
		fields = append(fields, intakesession.FieldResumeToken)
	}
	if m.version != nil {
		fields = append(fields, intakesession.FieldVersion)
	}
	if m.created_at != nil {
		fields = append(fields, intakesession.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, intakesession.FieldUpdatedAt)
	}
	if m.completed_at != nil {
		fields = append(fields, intakesession.FieldCompletedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *IntakeSessionMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case intakesession.FieldPatientID:
		return m.PatientID()
	case intakesession.FieldUserName:
		return m.UserName()
	case intakesession.FieldCurrentPhase:
		return m.CurrentPhase()
	case intakesession.FieldStatus:
		return m.Status()
	case intakesession.FieldConversationHistory:
		return m.ConversationHistory()
	case intakesession.FieldExtractedData:
		return m.ExtractedData()
	case intakesession.FieldSymptomsDetected:
		return m.SymptomsDetected()
	case intakesession.FieldCompletedPhases:
		return m.CompletedPhases()
	case intakesession.FieldCompletedScreeners:
		return m.CompletedScreeners()
	case intakesession.FieldScreenerScores:
		return m.ScreenerScores()
	case intakesession.FieldCurrentScreener:
		return m.CurrentScreener()
	case intakesession.FieldScreenerProgress:
		return m.ScreenerProgress()
	case intakesession.FieldRiskFlags:
		return m.RiskFlags()
	case intakesession.FieldTurnsSinceExtract:
		return m.TurnsSinceExtract()
	case intakesession.FieldPausedAt:
		return m.PausedAt()
	case intakesession.FieldExpiresAt:
		return m.ExpiresAt()
	case intakesession.FieldResumeToken:
		return m.ResumeToken()
	case intakesession.FieldVersion:
		return m.Version()
	case intakesession.FieldCreatedAt:
		return m.CreatedAt()
	case intakesession.FieldUpdatedAt:
		return m.UpdatedAt()
	case intakesession.FieldCompletedAt:
		return m.CompletedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *IntakeSessionMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case intakesession.FieldPatientID:
		return m.OldPatientID(ctx)
	case intakesession.FieldUserName:
		return m.OldUserName(ctx)
	case intakesession.FieldCurrentPhase:
		return m.OldCurrentPhase(ctx)
	case intakesession.FieldStatus:
		return m.OldStatus(ctx)
	case intakesession.FieldConversationHistory:
		return m.OldConversationHistory(ctx)
	case intakesession.FieldExtractedData:
		return m.OldExtractedData(ctx)
	case intakesession.FieldSymptomsDetected:
		return m.OldSymptomsDetected(ctx)
	case intakesession.FieldCompletedPhases:
		return m.OldCompletedPhases(ctx)
	case intakesession.FieldCompletedScreeners:
		return m.OldCompletedScreeners(ctx)
	case intakesession.FieldScreenerScores:
		return m.OldScreenerScores(ctx)
	case intakesession.FieldCurrentScreener:
		return m.OldCurrentScreener(ctx)
	case intakesession.FieldScreenerProgress:
		return m.OldScreenerProgress(ctx)
	case intakesession.FieldRiskFlags:
		return m.OldRiskFlags(ctx)
	case intakesession.FieldTurnsSinceExtract:
		return m.OldTurnsSinceExtract(ctx)
	case intakesession.FieldPausedAt:
		return m.OldPausedAt(ctx)
	case intakesession.FieldExpiresAt:
		return m.OldExpiresAt(ctx)
	case intakesession.FieldResumeToken:
		return m.OldResumeToken(ctx)
	case intakesession.FieldVersion:
		return m.OldVersion(ctx)
	case intakesession.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case intakesession.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case intakesession.FieldCompletedAt:
		return m.OldCompletedAt(ctx)
	}
	return nil, fmt.Errorf("unknown IntakeSession field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *IntakeSessionMutation) SetField(name string, value ent.Value) error {
	switch name {
	case intakesession.FieldPatientID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPatientID(v)
		return nil
	case intakesession.FieldUserName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserName(v)
		return nil
	case intakesession.FieldCurrentPhase:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCurrentPhase(v)
		return nil
	case intakesession.FieldStatus:
		v, ok := value.(intakesession.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case intakesession.FieldConversationHistory:
		v, ok := value.([]map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConversationHistory(v)
		return nil
	case intakesession.FieldExtractedData:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExtractedData(v)
		return nil
	case intakesession.FieldSymptomsDetected:
		v, ok := value.(map[string]bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSymptomsDetected(v)
		return nil
	case intakesession.FieldCompletedPhases:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompletedPhases(v)
		return nil
	case intakesession.FieldCompletedScreeners:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompletedScreeners(v)
		return nil
	case intakesession.FieldScreenerScores:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetScreenerScores(v)
		return nil
	case intakesession.FieldCurrentScreener:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCurrentScreener(v)
		return nil
	case intakesession.FieldScreenerProgress:
		v, ok := value.([]int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetScreenerProgress(v)
		return nil
	case intakesession.FieldRiskFlags:
		v, ok := value.([]map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRiskFlags(v)
		return nil
	case intakesession.FieldTurnsSinceExtract:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTurnsSinceExtract(v)
		return nil
	case intakesession.FieldPausedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPausedAt(v)
		return nil
	case intakesession.FieldExpiresAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExpiresAt(v)
		return nil
	case intakesession.FieldResumeToken:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetResumeToken(v)
		return nil
	case intakesession.FieldVersion:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVersion(v)
		return nil
	case intakesession.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case intakesession.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case intakesession.FieldCompletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompletedAt(v)
		return nil
	}
	return fmt.Errorf("unknown IntakeSession field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *IntakeSessionMutation) AddedFields() []string {
	var fields []string
	if m.addturns_since_extract != nil {
		fields = append(fields, intakesession.FieldTurnsSinceExtract)
	}
	if m.addversion != nil {
		fields = append(fields, intakesession.FieldVersion)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *IntakeSessionMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case intakesession.FieldTurnsSinceExtract:
		return m.AddedTurnsSinceExtract()
	case intakesession.FieldVersion:
		return m.AddedVersion()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *IntakeSessionMutation) AddField(name string, value ent.Value) error {
	switch name {
	case intakesession.FieldTurnsSinceExtract:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTurnsSinceExtract(v)
		return nil
	case intakesession.FieldVersion:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddVersion(v)
		return nil
	}
	return fmt.Errorf("unknown IntakeSession numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *IntakeSessionMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(intakesession.FieldPatientID) {
		fields = append(fields, intakesession.FieldPatientID)
	}
	if m.FieldCleared(intakesession.FieldUserName) {
		fields = append(fields, intakesession.FieldUserName)
	}
	if m.FieldCleared(intakesession.FieldConversationHistory) {
		fields = append(fields, intakesession.FieldConversationHistory)
	}
	if m.FieldCleared(intakesession.FieldExtractedData) {
		fields = append(fields, intakesession.FieldExtractedData)
	}
	if m.FieldCleared(intakesession.FieldSymptomsDetected) {
		fields = append(fields, intakesession.FieldSymptomsDetected)
	}
	if m.FieldCleared(intakesession.FieldCompletedPhases) {
		fields = append(fields, intakesession.FieldCompletedPhases)
	}
	if m.FieldCleared(intakesession.FieldCompletedScreeners) {
		fields = append(fields, intakesession.FieldCompletedScreeners)
	}
	if m.FieldCleared(intakesession.FieldScreenerScores) {
		fields = append(fields, intakesession.FieldScreenerScores)
	}
	if m.FieldCleared(intakesession.FieldCurrentScreener) {
		fields = append(fields, intakesession.FieldCurrentScreener)
	}
	if m.FieldCleared(intakesession.FieldScreenerProgress) {
		fields = append(fields, intakesession.FieldScreenerProgress)
	}
	if m.FieldCleared(intakesession.FieldRiskFlags) {
		fields = append(fields, intakesession.FieldRiskFlags)
	}
	if m.FieldCleared(intakesession.FieldPausedAt) {
		fields = append(fields, intakesession.FieldPausedAt)
	}
	if m.FieldCleared(intakesession.FieldExpiresAt) {
		fields = append(fields, intakesession.FieldExpiresAt)
	}
	if m.FieldCleared(intakesession.FieldResumeToken) {
		fields = append(fields, intakesession.FieldResumeToken)
	}
	if m.FieldCleared(intakesession.FieldCompletedAt) {
		fields = append(fields, intakesession.FieldCompletedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *IntakeSessionMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *IntakeSessionMutation) ClearField(name string) error {
	switch name {
	case intakesession.FieldPatientID:
		m.ClearPatientID()
		return nil
	case intakesession.FieldUserName:
		m.ClearUserName()
		return nil
	case intakesession.FieldConversationHistory:
		m.ClearConversationHistory()
		return nil
	case intakesession.FieldExtractedData:
		m.ClearExtractedData()
		return nil
	case intakesession.FieldSymptomsDetected:
		m.ClearSymptomsDetected()
		return nil
	case intakesession.FieldCompletedPhases:
		m.ClearCompletedPhases()
		return nil
	case intakesession.FieldCompletedScreeners:
		m.ClearCompletedScreeners()
		return nil
	case intakesession.FieldScreenerScores:
		m.ClearScreenerScores()
		return nil
	case intakesession.FieldCurrentScreener:
		m.ClearCurrentScreener()
		return nil
	case intakesession.FieldScreenerProgress:
		m.ClearScreenerProgress()
		return nil
	case intakesession.FieldRiskFlags:
		m.ClearRiskFlags()
		return nil
	case intakesession.FieldPausedAt:
		m.ClearPausedAt()
		return nil
	case intakesession.FieldExpiresAt:
		m.ClearExpiresAt()
		return nil
	case intakesession.FieldResumeToken:
		m.ClearResumeToken()
		return nil
	case intakesession.FieldCompletedAt:
		m.ClearCompletedAt()
		return nil
	}
	return fmt.Errorf("unknown IntakeSession nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *IntakeSessionMutation) ResetField(name string) error {
	switch name {
	case intakesession.FieldPatientID:
		m.ResetPatientID()
		return nil
	case intakesession.FieldUserName:
		m.ResetUserName()
		return nil
	case intakesession.FieldCurrentPhase:
		m.ResetCurrentPhase()
		return nil
	case intakesession.FieldStatus:
		m.ResetStatus()
		return nil
	case intakesession.FieldConversationHistory:
		m.ResetConversationHistory()
		return nil
	case intakesession.FieldExtractedData:
		m.ResetExtractedData()
		return nil
	case intakesession.FieldSymptomsDetected:
		m.ResetSymptomsDetected()
		return nil
	case intakesession.FieldCompletedPhases:
		m.ResetCompletedPhases()
		return nil
	case intakesession.FieldCompletedScreeners:
		m.ResetCompletedScreeners()
		return nil
	case intakesession.FieldScreenerScores:
		m.ResetScreenerScores()
		return nil
	case intakesession.FieldCurrentScreener:
		m.ResetCurrentScreener()
		return nil
	case intakesession.FieldScreenerProgress:
		m.ResetScreenerProgress()
		return nil
	case intakesession.FieldRiskFlags:
		m.ResetRiskFlags()
		return nil
	case intakesession.FieldTurnsSinceExtract:
		m.ResetTurnsSinceExtract()
		return nil
	case intakesession.FieldPausedAt:
		m.ResetPausedAt()
		return nil
	case intakesession.FieldExpiresAt:
		m.ResetExpiresAt()
		return nil
	case intakesession.FieldResumeToken:
		m.ResetResumeToken()
		return nil
	case intakesession.FieldVersion:
		m.ResetVersion()
		return nil
	case intakesession.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case intakesession.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case intakesession.FieldCompletedAt:
		m.ResetCompletedAt()
		return nil
	}
	return fmt.Errorf("unknown IntakeSession field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *IntakeSessionMutation) AddedEdges() []string {
	edges := make([]string, 0, 3)
	if m.report != nil {
		edges = append(edges, intakesession.EdgeReport)
	}
	if m.notifications != nil {
		edges = append(edges, intakesession.EdgeNotifications)
	}
	if m.audit_logs != nil {
		edges = append(edges, intakesession.EdgeAuditLogs)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *IntakeSessionMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case intakesession.EdgeReport:
		if id := m.report; id != nil {
			return []ent.Value{*id}
		}
	case intakesession.EdgeNotifications:
		ids := make([]ent.Value, 0, len(m.notifications))
		for id := range m.notifications {
			ids = append(ids, id)
		}
		return ids
	case intakesession.EdgeAuditLogs:
		ids := make([]ent.Value, 0, len(m.audit_logs))
		for id := range m.audit_logs {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *IntakeSessionMutation) RemovedEdges() []string {
	edges := make([]string, 0, 3)
	if m.removednotifications != nil {
		edges = append(edges, intakesession.EdgeNotifications)
	}
	if m.removedaudit_logs != nil {
		edges = append(edges, intakesession.EdgeAuditLogs)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *IntakeSessionMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case intakesession.EdgeNotifications:
		ids := make([]ent.Value, 0, len(m.removednotifications))
		for id := range m.removednotifications {
			ids = append(ids, id)
		}
		return ids
	case intakesession.EdgeAuditLogs:
		ids := make([]ent.Value, 0, len(m.removedaudit_logs))
		for id := range m.removedaudit_logs {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *IntakeSessionMutation) ClearedEdges() []string {
	edges := make([]string, 0, 3)
	if m.clearedreport {
		edges = append(edges, intakesession.EdgeReport)
	}
	if m.clearednotifications {
		edges = append(edges, intakesession.EdgeNotifications)
	}
	if m.clearedaudit_logs {
		edges = append(edges, intakesession.EdgeAuditLogs)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *IntakeSessionMutation) EdgeCleared(name string) bool {
	switch name {
	case intakesession.EdgeReport:
		return m.clearedreport
	case intakesession.EdgeNotifications:
		return m.clearednotifications
	case intakesession.EdgeAuditLogs:
		return m.clearedaudit_logs
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *IntakeSessionMutation) ClearEdge(name string) error {
	switch name {
	case intakesession.EdgeReport:
		m.ClearReport()
		return nil
	}
	return fmt.Errorf("unknown IntakeSession unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *IntakeSessionMutation) ResetEdge(name string) error {
	switch name {
	case intakesession.EdgeReport:
		m.ResetReport()
		return nil
	case intakesession.EdgeNotifications:
		m.ResetNotifications()
		return nil
	case intakesession.EdgeAuditLogs:
		m.ResetAuditLogs()
		return nil
	}
	return fmt.Errorf("unknown IntakeSession edge %s", name)
}

// NotificationMutation represents an operation that mutates the Notification nodes in the graph.
type NotificationMutation struct {
	config
	op              Op
	typ             string
	id              *string
	admin_user_id   *string
	priority        *notification.Priority
	title           *string
	body            *string
	delivery_status *notification.DeliveryStatus
	created_at      *time.Time
	clearedFields   map[string]struct{}
	session         *string
	clearedsession  bool
	done            bool
	oldValue        func(context.Context) (*Notification, error)
	predicates      []predicate.Notification
}

var _ ent.Mutation = (*NotificationMutation)(nil)

// notificationOption allows management of the mutation configuration using functional options.
type notificationOption func(*NotificationMutation)

// newNotificationMutation creates new mutation for the Notification entity.
func newNotificationMutation(c config, op Op, opts ...notificationOption) *NotificationMutation {
	m := &NotificationMutation{
		config:        c,
		op:            op,
		typ:           TypeNotification,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withNotificationID sets the ID field of the mutation.
func withNotificationID(id string) notificationOption {
	return func(m *NotificationMutation) {
		var (
			err   error
			once  sync.Once
			value *Notification
		)
		m.oldValue = func(ctx context.Context) (*Notification, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Notification.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withNotification sets the old Notification of the mutation.
func withNotification(node *Notification) notificationOption {
	return func(m *NotificationMutation) {
		m.oldValue = func(context.Context) (*Notification, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m NotificationMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m NotificationMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Notification entities.
func (m *NotificationMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *NotificationMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *NotificationMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Notification.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSessionToken sets the "session_token" field.
func (m *NotificationMutation) SetSessionToken(s string) {
	m.session = &s
}

// SessionToken returns the value of the "session_token" field in the mutation.
func (m *NotificationMutation) SessionToken() (r string, exists bool) {
	v := m.session
	if v == nil {
		return
	}
	return *v, true
}

// OldSessionToken returns the old "session_token" field's value of the Notification entity.
// If the Notification object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NotificationMutation) OldSessionToken(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSessionToken is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSessionToken requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSessionToken: %w", err)
	}
	return oldValue.SessionToken, nil
}

// ResetSessionToken resets all changes to the "session_token" field.
func (m *NotificationMutation) ResetSessionToken() {
	m.session = nil
}

// SetAdminUserID sets the "admin_user_id" field.
func (m *NotificationMutation) SetAdminUserID(s string) {
	m.admin_user_id = &s
}

// AdminUserID returns the value of the "admin_user_id" field in the mutation.
func (m *NotificationMutation) AdminUserID() (r string, exists bool) {
	v := m.admin_user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldAdminUserID returns the old "admin_user_id" field's value of the Notification entity.
// If the Notification object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NotificationMutation) OldAdminUserID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAdminUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAdminUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAdminUserID: %w", err)
	}
	return oldValue.AdminUserID, nil
}

// ResetAdminUserID resets all changes to the "admin_user_id" field.
func (m *NotificationMutation) ResetAdminUserID() {
	m.admin_user_id = nil
}

// SetPriority sets the "priority" field.
func (m *NotificationMutation) SetPriority(n notification.Priority) {
	m.priority = &n
}

// Priority returns the value of the "priority" field in the mutation.
func (m *NotificationMutation) Priority() (r notification.Priority, exists bool) {
	v := m.priority
	if v == nil {
		return
	}
	return *v, true
}

// OldPriority returns the old "priority" field's value of the Notification entity.
// If the Notification object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NotificationMutation) OldPriority(ctx context.Context) (v notification.Priority, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPriority is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPriority requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPriority: %w", err)
	}
	return oldValue.Priority, nil
}

// ResetPriority resets all changes to the "priority" field.
func (m *NotificationMutation) ResetPriority() {
	m.priority = nil
}

// SetTitle sets the "title" field.
func (m *NotificationMutation) SetTitle(s string) {
	m.title = &s
}

// Title returns the value of the "title" field in the mutation.
func (m *NotificationMutation) Title() (r string, exists bool) {
	v := m.title
	if v == nil {
		return
	}
	return *v, true
}

// OldTitle returns the old "title" field's value of the Notification entity.
// If the Notification object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NotificationMutation) OldTitle(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTitle is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTitle requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTitle: %w", err)
	}
	return oldValue.Title, nil
}

// ResetTitle resets all changes to the "title" field.
func (m *NotificationMutation) ResetTitle() {
	m.title = nil
}

// SetBody sets the "body" field.
func (m *NotificationMutation) SetBody(s string) {
	m.body = &s
}

// Body returns the value of the "body" field in the mutation.
func (m *NotificationMutation) Body() (r string, exists bool) {
	v := m.body
	if v == nil {
		return
	}
	return *v, true
}

// OldBody returns the old "body" field's value of the Notification entity.
// If the Notification object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NotificationMutation) OldBody(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBody is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBody requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBody: %w", err)
	}
	return oldValue.Body, nil
}

// ResetBody resets all changes to the "body" field.
func (m *NotificationMutation) ResetBody() {
	m.body = nil
}

// SetDeliveryStatus sets the "delivery_status" field.
func (m *NotificationMutation) SetDeliveryStatus(ns notification.DeliveryStatus) {
	m.delivery_status = &ns
}

// DeliveryStatus returns the value of the "delivery_status" field in the mutation.
func (m *NotificationMutation) DeliveryStatus() (r notification.DeliveryStatus, exists bool) {
	v := m.delivery_status
	if v == nil {
		return
	}
	return *v, true
}

// OldDeliveryStatus returns the old "delivery_status" field's value of the Notification entity.
// If the Notification object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NotificationMutation) OldDeliveryStatus(ctx context.Context) (v notification.DeliveryStatus, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDeliveryStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDeliveryStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDeliveryStatus: %w", err)
	}
	return oldValue.DeliveryStatus, nil
}

// ResetDeliveryStatus resets all changes to the "delivery_status" field.
func (m *NotificationMutation) ResetDeliveryStatus() {
	m.delivery_status = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *NotificationMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *NotificationMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Notification entity.
// If the Notification object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NotificationMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *NotificationMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetSessionID sets the "session" edge to the IntakeSession entity by id.
func (m *NotificationMutation) SetSessionID(id string) {
	m.session = &id
}

// ClearSession clears the "session" edge to the IntakeSession entity.
func (m *NotificationMutation) ClearSession() {
	m.clearedsession = true
	m.clearedFields[notification.FieldSessionToken] = struct{}{}
}

// SessionCleared reports if the "session" edge to the IntakeSession entity was cleared.
func (m *NotificationMutation) SessionCleared() bool {
	return m.clearedsession
}

// SessionID returns the "session" edge ID in the mutation.
func (m *NotificationMutation) SessionID() (id string, exists bool) {
	if m.session != nil {
		return *m.session, true
	}
	return
}

// SessionIDs returns the "session" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// SessionID instead. It exists only for internal usage by the builders.
func (m *NotificationMutation) SessionIDs() (ids []string) {
	if id := m.session; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetSession resets all changes to the "session" edge.
func (m *NotificationMutation) ResetSession() {
	m.session = nil
	m.clearedsession = false
}

// Where appends a list predicates to the NotificationMutation builder.
func (m *NotificationMutation) Where(ps ...predicate.Notification) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the NotificationMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *NotificationMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Notification, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *NotificationMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *NotificationMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Notification).
func (m *NotificationMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *NotificationMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.session != nil {
		fields = append(fields, notification.FieldSessionToken)
	}
	if m.admin_user_id != nil {
		fields = append(fields, notification.FieldAdminUserID)
	}
	if m.priority != nil {
		fields = append(fields, notification.FieldPriority)
	}
	if m.title != nil {
		fields = append(fields, notification.FieldTitle)
	}
	if m.body != nil {
		fields = append(fields, notification.FieldBody)
	}
	if m.delivery_status != nil {
		fields = append(fields, notification.FieldDeliveryStatus)
	}
	if m.created_at != nil {
		fields = append(fields, notification.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *NotificationMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case notification.FieldSessionToken:
		return m.SessionToken()
	case notification.FieldAdminUserID:
		return m.AdminUserID()
	case notification.FieldPriority:
		return m.Priority()
	case notification.FieldTitle:
		return m.Title()
	case notification.FieldBody:
		return m.Body()
	case notification.FieldDeliveryStatus:
		return m.DeliveryStatus()
	case notification.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *NotificationMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case notification.FieldSessionToken:
		return m.OldSessionToken(ctx)
	case notification.FieldAdminUserID:
		return m.OldAdminUserID(ctx)
	case notification.FieldPriority:
		return m.OldPriority(ctx)
	case notification.FieldTitle:
		return m.OldTitle(ctx)
	case notification.FieldBody:
		return m.OldBody(ctx)
	case notification.FieldDeliveryStatus:
		return m.OldDeliveryStatus(ctx)
	case notification.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Notification field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *NotificationMutation) SetField(name string, value ent.Value) error {
	switch name {
	case notification.FieldSessionToken:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSessionToken(v)
		return nil
	case notification.FieldAdminUserID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAdminUserID(v)
		return nil
	case notification.FieldPriority:
		v, ok := value.(notification.Priority)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPriority(v)
		return nil
	case notification.FieldTitle:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTitle(v)
		return nil
	case notification.FieldBody:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBody(v)
		return nil
	case notification.FieldDeliveryStatus:
		v, ok := value.(notification.DeliveryStatus)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDeliveryStatus(v)
		return nil
	case notification.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Notification field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *NotificationMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *NotificationMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *NotificationMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Notification numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *NotificationMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *NotificationMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *NotificationMutation) ClearField(name string) error {
	return fmt.Errorf("unknown Notification nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *NotificationMutation) ResetField(name string) error {
	switch name {
	case notification.FieldSessionToken:
		m.ResetSessionToken()
		return nil
	case notification.FieldAdminUserID:
		m.ResetAdminUserID()
		return nil
	case notification.FieldPriority:
		m.ResetPriority()
		return nil
	case notification.FieldTitle:
		m.ResetTitle()
		return nil
	case notification.FieldBody:
		m.ResetBody()
		return nil
	case notification.FieldDeliveryStatus:
		m.ResetDeliveryStatus()
		return nil
	case notification.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Notification field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *NotificationMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.session != nil {
		edges = append(edges, notification.EdgeSession)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *NotificationMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case notification.EdgeSession:
		if id := m.session; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *NotificationMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *NotificationMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *NotificationMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedsession {
		edges = append(edges, notification.EdgeSession)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *NotificationMutation) EdgeCleared(name string) bool {
	switch name {
	case notification.EdgeSession:
		return m.clearedsession
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *NotificationMutation) ClearEdge(name string) error {
	switch name {
	case notification.EdgeSession:
		m.ClearSession()
		return nil
	}
	return fmt.Errorf("unknown Notification unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *NotificationMutation) ResetEdge(name string) error {
	switch name {
	case notification.EdgeSession:
		m.ResetSession()
		return nil
	}
	return fmt.Errorf("unknown Notification edge %s", name)
}
