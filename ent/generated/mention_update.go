// Code generated by ent, DO NOT EDIT.

package generated

import (
	"context"
	"errors"
	"fmt"
	"taskmanager/ent/generated/comment"
	"taskmanager/ent/generated/mention"
	"taskmanager/ent/generated/predicate"
	"taskmanager/ent/generated/user"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
)

// MentionUpdate is the builder for updating Mention entities.
type MentionUpdate struct {
	config
	hooks    []Hook
	mutation *MentionMutation
}

// Where appends a list predicates to the MentionUpdate builder.
func (mu *MentionUpdate) Where(ps ...predicate.Mention) *MentionUpdate {
	mu.mutation.Where(ps...)
	return mu
}

// SetCommentID sets the "comment" edge to the Comment entity by ID.
func (mu *MentionUpdate) SetCommentID(id uuid.UUID) *MentionUpdate {
	mu.mutation.SetCommentID(id)
	return mu
}

// SetComment sets the "comment" edge to the Comment entity.
func (mu *MentionUpdate) SetComment(c *Comment) *MentionUpdate {
	return mu.SetCommentID(c.ID)
}

// SetMentionedUserID sets the "mentioned_user" edge to the User entity by ID.
func (mu *MentionUpdate) SetMentionedUserID(id uuid.UUID) *MentionUpdate {
	mu.mutation.SetMentionedUserID(id)
	return mu
}

// SetMentionedUser sets the "mentioned_user" edge to the User entity.
func (mu *MentionUpdate) SetMentionedUser(u *User) *MentionUpdate {
	return mu.SetMentionedUserID(u.ID)
}

// Mutation returns the MentionMutation object of the builder.
func (mu *MentionUpdate) Mutation() *MentionMutation {
	return mu.mutation
}

// ClearComment clears the "comment" edge to the Comment entity.
func (mu *MentionUpdate) ClearComment() *MentionUpdate {
	mu.mutation.ClearComment()
	return mu
}

// ClearMentionedUser clears the "mentioned_user" edge to the User entity.
func (mu *MentionUpdate) ClearMentionedUser() *MentionUpdate {
	mu.mutation.ClearMentionedUser()
	return mu
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (mu *MentionUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, mu.sqlSave, mu.mutation, mu.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (mu *MentionUpdate) SaveX(ctx context.Context) int {
	affected, err := mu.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (mu *MentionUpdate) Exec(ctx context.Context) error {
	_, err := mu.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (mu *MentionUpdate) ExecX(ctx context.Context) {
	if err := mu.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (mu *MentionUpdate) check() error {
	if mu.mutation.CommentCleared() && len(mu.mutation.CommentIDs()) > 0 {
		return errors.New(`generated: clearing a required unique edge "Mention.comment"`)
	}
	if mu.mutation.MentionedUserCleared() && len(mu.mutation.MentionedUserIDs()) > 0 {
		return errors.New(`generated: clearing a required unique edge "Mention.mentioned_user"`)
	}
	return nil
}

func (mu *MentionUpdate) sqlSave(ctx context.Context) (n int, err error) {
	if err := mu.check(); err != nil {
		return n, err
	}
	_spec := sqlgraph.NewUpdateSpec(mention.Table, mention.Columns, sqlgraph.NewFieldSpec(mention.FieldID, field.TypeUUID))
	if ps := mu.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if mu.mutation.CommentCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   mention.CommentTable,
			Columns: []string{mention.CommentColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(comment.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := mu.mutation.CommentIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   mention.CommentTable,
			Columns: []string{mention.CommentColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(comment.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if mu.mutation.MentionedUserCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   mention.MentionedUserTable,
			Columns: []string{mention.MentionedUserColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(user.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := mu.mutation.MentionedUserIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   mention.MentionedUserTable,
			Columns: []string{mention.MentionedUserColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(user.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if n, err = sqlgraph.UpdateNodes(ctx, mu.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{mention.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	mu.mutation.done = true
	return n, nil
}

// MentionUpdateOne is the builder for updating a single Mention entity.
type MentionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *MentionMutation
}

// SetCommentID sets the "comment" edge to the Comment entity by ID.
func (muo *MentionUpdateOne) SetCommentID(id uuid.UUID) *MentionUpdateOne {
	muo.mutation.SetCommentID(id)
	return muo
}

// SetComment sets the "comment" edge to the Comment entity.
func (muo *MentionUpdateOne) SetComment(c *Comment) *MentionUpdateOne {
	return muo.SetCommentID(c.ID)
}

// SetMentionedUserID sets the "mentioned_user" edge to the User entity by ID.
func (muo *MentionUpdateOne) SetMentionedUserID(id uuid.UUID) *MentionUpdateOne {
	muo.mutation.SetMentionedUserID(id)
	return muo
}

// SetMentionedUser sets the "mentioned_user" edge to the User entity.
func (muo *MentionUpdateOne) SetMentionedUser(u *User) *MentionUpdateOne {
	return muo.SetMentionedUserID(u.ID)
}

// Mutation returns the MentionMutation object of the builder.
func (muo *MentionUpdateOne) Mutation() *MentionMutation {
	return muo.mutation
}

// ClearComment clears the "comment" edge to the Comment entity.
func (muo *MentionUpdateOne) ClearComment() *MentionUpdateOne {
	muo.mutation.ClearComment()
	return muo
}

// ClearMentionedUser clears the "mentioned_user" edge to the User entity.
func (muo *MentionUpdateOne) ClearMentionedUser() *MentionUpdateOne {
	muo.mutation.ClearMentionedUser()
	return muo
}

// Where appends a list predicates to the MentionUpdate builder.
func (muo *MentionUpdateOne) Where(ps ...predicate.Mention) *MentionUpdateOne {
	muo.mutation.Where(ps...)
	return muo
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (muo *MentionUpdateOne) Select(field string, fields ...string) *MentionUpdateOne {
	muo.fields = append([]string{field}, fields...)
	return muo
}

// Save executes the query and returns the updated Mention entity.
func (muo *MentionUpdateOne) Save(ctx context.Context) (*Mention, error) {
	return withHooks(ctx, muo.sqlSave, muo.mutation, muo.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (muo *MentionUpdateOne) SaveX(ctx context.Context) *Mention {
	node, err := muo.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (muo *MentionUpdateOne) Exec(ctx context.Context) error {
	_, err := muo.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (muo *MentionUpdateOne) ExecX(ctx context.Context) {
	if err := muo.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (muo *MentionUpdateOne) check() error {
	if muo.mutation.CommentCleared() && len(muo.mutation.CommentIDs()) > 0 {
		return errors.New(`generated: clearing a required unique edge "Mention.comment"`)
	}
	if muo.mutation.MentionedUserCleared() && len(muo.mutation.MentionedUserIDs()) > 0 {
		return errors.New(`generated: clearing a required unique edge "Mention.mentioned_user"`)
	}
	return nil
}

func (muo *MentionUpdateOne) sqlSave(ctx context.Context) (_node *Mention, err error) {
	if err := muo.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(mention.Table, mention.Columns, sqlgraph.NewFieldSpec(mention.FieldID, field.TypeUUID))
	id, ok := muo.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`generated: missing "Mention.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := muo.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, mention.FieldID)
		for _, f := range fields {
			if !mention.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("generated: invalid field %q for query", f)}
			}
			if f != mention.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := muo.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if muo.mutation.CommentCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   mention.CommentTable,
			Columns: []string{mention.CommentColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(comment.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := muo.mutation.CommentIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   mention.CommentTable,
			Columns: []string{mention.CommentColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(comment.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if muo.mutation.MentionedUserCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   mention.MentionedUserTable,
			Columns: []string{mention.MentionedUserColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(user.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := muo.mutation.MentionedUserIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   mention.MentionedUserTable,
			Columns: []string{mention.MentionedUserColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(user.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Mention{config: muo.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, muo.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{mention.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	muo.mutation.done = true
	return _node, nil
}
