// Code generated by ent, DO NOT EDIT.

package generated

import (
	"taskmanager/ent/generated/comment"
	"taskmanager/ent/generated/mention"
	"taskmanager/ent/generated/predicate"
	"taskmanager/ent/generated/profile"
	"taskmanager/ent/generated/project"
	"taskmanager/ent/generated/task"
	"taskmanager/ent/generated/user"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/entql"
	"entgo.io/ent/schema/field"
)

// schemaGraph holds a representation of ent/schema at runtime.
var schemaGraph = func() *sqlgraph.Schema {
	graph := &sqlgraph.Schema{Nodes: make([]*sqlgraph.Node, 6)}
	graph.Nodes[0] = &sqlgraph.Node{
		NodeSpec: sqlgraph.NodeSpec{
			Table:   comment.Table,
			Columns: comment.Columns,
			ID: &sqlgraph.FieldSpec{
				Type:   field.TypeUUID,
				Column: comment.FieldID,
			},
		},
		Type: "Comment",
		Fields: map[string]*sqlgraph.FieldSpec{
			comment.FieldContent:   {Type: field.TypeString, Column: comment.FieldContent},
			comment.FieldCreatedAt: {Type: field.TypeTime, Column: comment.FieldCreatedAt},
		},
	}
	graph.Nodes[1] = &sqlgraph.Node{
		NodeSpec: sqlgraph.NodeSpec{
			Table:   mention.Table,
			Columns: mention.Columns,
			ID: &sqlgraph.FieldSpec{
				Type:   field.TypeUUID,
				Column: mention.FieldID,
			},
		},
		Type: "Mention",
		Fields: map[string]*sqlgraph.FieldSpec{
			mention.FieldCreatedAt: {Type: field.TypeTime, Column: mention.FieldCreatedAt},
		},
	}
	graph.Nodes[2] = &sqlgraph.Node{
		NodeSpec: sqlgraph.NodeSpec{
			Table:   profile.Table,
			Columns: profile.Columns,
			ID: &sqlgraph.FieldSpec{
				Type:   field.TypeUUID,
				Column: profile.FieldID,
			},
		},
		Type: "Profile",
		Fields: map[string]*sqlgraph.FieldSpec{
			profile.FieldExpoPushToken: {Type: field.TypeString, Column: profile.FieldExpoPushToken},
			profile.FieldImageURL:      {Type: field.TypeString, Column: profile.FieldImageURL},
		},
	}
	graph.Nodes[3] = &sqlgraph.Node{
		NodeSpec: sqlgraph.NodeSpec{
			Table:   project.Table,
			Columns: project.Columns,
			ID: &sqlgraph.FieldSpec{
				Type:   field.TypeUUID,
				Column: project.FieldID,
			},
		},
		Type: "Project",
		Fields: map[string]*sqlgraph.FieldSpec{
			project.FieldName:        {Type: field.TypeString, Column: project.FieldName},
			project.FieldDescription: {Type: field.TypeString, Column: project.FieldDescription},
			project.FieldStartDate:   {Type: field.TypeTime, Column: project.FieldStartDate},
			project.FieldEndDate:     {Type: field.TypeTime, Column: project.FieldEndDate},
			project.FieldCreatedAt:   {Type: field.TypeTime, Column: project.FieldCreatedAt},
		},
	}
	graph.Nodes[4] = &sqlgraph.Node{
		NodeSpec: sqlgraph.NodeSpec{
			Table:   task.Table,
			Columns: task.Columns,
			ID: &sqlgraph.FieldSpec{
				Type:   field.TypeUUID,
				Column: task.FieldID,
			},
		},
		Type: "Task",
		Fields: map[string]*sqlgraph.FieldSpec{
			task.FieldName:        {Type: field.TypeString, Column: task.FieldName},
			task.FieldDescription: {Type: field.TypeString, Column: task.FieldDescription},
			task.FieldStartDate:   {Type: field.TypeTime, Column: task.FieldStartDate},
			task.FieldEndDate:     {Type: field.TypeTime, Column: task.FieldEndDate},
			task.FieldPriority:    {Type: field.TypeEnum, Column: task.FieldPriority},
			task.FieldStatus:      {Type: field.TypeEnum, Column: task.FieldStatus},
			task.FieldCreatedAt:   {Type: field.TypeTime, Column: task.FieldCreatedAt},
		},
	}
	graph.Nodes[5] = &sqlgraph.Node{
		NodeSpec: sqlgraph.NodeSpec{
			Table:   user.Table,
			Columns: user.Columns,
			ID: &sqlgraph.FieldSpec{
				Type:   field.TypeUUID,
				Column: user.FieldID,
			},
		},
		Type: "User",
		Fields: map[string]*sqlgraph.FieldSpec{
			user.FieldUsername:  {Type: field.TypeString, Column: user.FieldUsername},
			user.FieldEmail:     {Type: field.TypeString, Column: user.FieldEmail},
			user.FieldFirstName: {Type: field.TypeString, Column: user.FieldFirstName},
			user.FieldLastName:  {Type: field.TypeString, Column: user.FieldLastName},
			user.FieldCreatedAt: {Type: field.TypeTime, Column: user.FieldCreatedAt},
		},
	}
	graph.MustAddE(
		"task",
		&sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   comment.TaskTable,
			Columns: []string{comment.TaskColumn},
			Bidi:    false,
		},
		"Comment",
		"Task",
	)
	graph.MustAddE(
		"creator",
		&sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   comment.CreatorTable,
			Columns: []string{comment.CreatorColumn},
			Bidi:    false,
		},
		"Comment",
		"User",
	)
	graph.MustAddE(
		"mentions",
		&sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   comment.MentionsTable,
			Columns: []string{comment.MentionsColumn},
			Bidi:    false,
		},
		"Comment",
		"Mention",
	)
	graph.MustAddE(
		"comment",
		&sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   mention.CommentTable,
			Columns: []string{mention.CommentColumn},
			Bidi:    false,
		},
		"Mention",
		"Comment",
	)
	graph.MustAddE(
		"mentioned_user",
		&sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   mention.MentionedUserTable,
			Columns: []string{mention.MentionedUserColumn},
			Bidi:    false,
		},
		"Mention",
		"User",
	)
	graph.MustAddE(
		"user",
		&sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: true,
			Table:   profile.UserTable,
			Columns: []string{profile.UserColumn},
			Bidi:    false,
		},
		"Profile",
		"User",
	)
	graph.MustAddE(
		"owner",
		&sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   project.OwnerTable,
			Columns: []string{project.OwnerColumn},
			Bidi:    false,
		},
		"Project",
		"User",
	)
	graph.MustAddE(
		"users",
		&sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2M,
			Inverse: false,
			Table:   project.UsersTable,
			Columns: project.UsersPrimaryKey,
			Bidi:    false,
		},
		"Project",
		"User",
	)
	graph.MustAddE(
		"tasks",
		&sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   project.TasksTable,
			Columns: []string{project.TasksColumn},
			Bidi:    false,
		},
		"Project",
		"Task",
	)
	graph.MustAddE(
		"project",
		&sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   task.ProjectTable,
			Columns: []string{task.ProjectColumn},
			Bidi:    false,
		},
		"Task",
		"Project",
	)
	graph.MustAddE(
		"creator",
		&sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   task.CreatorTable,
			Columns: []string{task.CreatorColumn},
			Bidi:    false,
		},
		"Task",
		"User",
	)
	graph.MustAddE(
		"assigned",
		&sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2M,
			Inverse: false,
			Table:   task.AssignedTable,
			Columns: task.AssignedPrimaryKey,
			Bidi:    false,
		},
		"Task",
		"User",
	)
	graph.MustAddE(
		"comments",
		&sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   task.CommentsTable,
			Columns: []string{task.CommentsColumn},
			Bidi:    false,
		},
		"Task",
		"Comment",
	)
	graph.MustAddE(
		"profile",
		&sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: false,
			Table:   user.ProfileTable,
			Columns: []string{user.ProfileColumn},
			Bidi:    false,
		},
		"User",
		"Profile",
	)
	graph.MustAddE(
		"owned_projects",
		&sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   user.OwnedProjectsTable,
			Columns: []string{user.OwnedProjectsColumn},
			Bidi:    false,
		},
		"User",
		"Project",
	)
	graph.MustAddE(
		"projects",
		&sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2M,
			Inverse: true,
			Table:   user.ProjectsTable,
			Columns: user.ProjectsPrimaryKey,
			Bidi:    false,
		},
		"User",
		"Project",
	)
	graph.MustAddE(
		"created_tasks",
		&sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   user.CreatedTasksTable,
			Columns: []string{user.CreatedTasksColumn},
			Bidi:    false,
		},
		"User",
		"Task",
	)
	graph.MustAddE(
		"assigned_tasks",
		&sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2M,
			Inverse: true,
			Table:   user.AssignedTasksTable,
			Columns: user.AssignedTasksPrimaryKey,
			Bidi:    false,
		},
		"User",
		"Task",
	)
	graph.MustAddE(
		"comments",
		&sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   user.CommentsTable,
			Columns: []string{user.CommentsColumn},
			Bidi:    false,
		},
		"User",
		"Comment",
	)
	graph.MustAddE(
		"mentions",
		&sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   user.MentionsTable,
			Columns: []string{user.MentionsColumn},
			Bidi:    false,
		},
		"User",
		"Mention",
	)
	return graph
}()

// predicateAdder wraps the addPredicate method.
// All update, update-one and query builders implement this interface.
type predicateAdder interface {
	addPredicate(func(s *sql.Selector))
}

// addPredicate implements the predicateAdder interface.
func (cq *CommentQuery) addPredicate(pred func(s *sql.Selector)) {
	cq.predicates = append(cq.predicates, pred)
}

// Filter returns a Filter implementation to apply filters on the CommentQuery builder.
func (cq *CommentQuery) Filter() *CommentFilter {
	return &CommentFilter{config: cq.config, predicateAdder: cq}
}

// addPredicate implements the predicateAdder interface.
func (m *CommentMutation) addPredicate(pred func(s *sql.Selector)) {
	m.predicates = append(m.predicates, pred)
}

// Filter returns an entql.Where implementation to apply filters on the CommentMutation builder.
func (m *CommentMutation) Filter() *CommentFilter {
	return &CommentFilter{config: m.config, predicateAdder: m}
}

// CommentFilter provides a generic filtering capability at runtime for CommentQuery.
type CommentFilter struct {
	predicateAdder
	config
}

// Where applies the entql predicate on the query filter.
func (f *CommentFilter) Where(p entql.P) {
	f.addPredicate(func(s *sql.Selector) {
		if err := schemaGraph.EvalP(schemaGraph.Nodes[0].Type, p, s); err != nil {
			s.AddError(err)
		}
	})
}

// WhereID applies the entql [16]byte predicate on the id field.
func (f *CommentFilter) WhereID(p entql.ValueP) {
	f.Where(p.Field(comment.FieldID))
}

// WhereContent applies the entql string predicate on the content field.
func (f *CommentFilter) WhereContent(p entql.StringP) {
	f.Where(p.Field(comment.FieldContent))
}

// WhereCreatedAt applies the entql time.Time predicate on the created_at field.
func (f *CommentFilter) WhereCreatedAt(p entql.TimeP) {
	f.Where(p.Field(comment.FieldCreatedAt))
}

// WhereHasTask applies a predicate to check if query has an edge task.
func (f *CommentFilter) WhereHasTask() {
	f.Where(entql.HasEdge("task"))
}

// WhereHasTaskWith applies a predicate to check if query has an edge task with a given conditions (other predicates).
func (f *CommentFilter) WhereHasTaskWith(preds ...predicate.Task) {
	f.Where(entql.HasEdgeWith("task", sqlgraph.WrapFunc(func(s *sql.Selector) {
		for _, p := range preds {
			p(s)
		}
	})))
}

// WhereHasCreator applies a predicate to check if query has an edge creator.
func (f *CommentFilter) WhereHasCreator() {
	f.Where(entql.HasEdge("creator"))
}

// WhereHasCreatorWith applies a predicate to check if query has an edge creator with a given conditions (other predicates).
func (f *CommentFilter) WhereHasCreatorWith(preds ...predicate.User) {
	f.Where(entql.HasEdgeWith("creator", sqlgraph.WrapFunc(func(s *sql.Selector) {
		for _, p := range preds {
			p(s)
		}
	})))
}

// WhereHasMentions applies a predicate to check if query has an edge mentions.
func (f *CommentFilter) WhereHasMentions() {
	f.Where(entql.HasEdge("mentions"))
}

// WhereHasMentionsWith applies a predicate to check if query has an edge mentions with a given conditions (other predicates).
func (f *CommentFilter) WhereHasMentionsWith(preds ...predicate.Mention) {
	f.Where(entql.HasEdgeWith("mentions", sqlgraph.WrapFunc(func(s *sql.Selector) {
		for _, p := range preds {
			p(s)
		}
	})))
}

// addPredicate implements the predicateAdder interface.
func (mq *MentionQuery) addPredicate(pred func(s *sql.Selector)) {
	mq.predicates = append(mq.predicates, pred)
}

// Filter returns a Filter implementation to apply filters on the MentionQuery builder.
func (mq *MentionQuery) Filter() *MentionFilter {
	return &MentionFilter{config: mq.config, predicateAdder: mq}
}

// addPredicate implements the predicateAdder interface.
func (m *MentionMutation) addPredicate(pred func(s *sql.Selector)) {
	m.predicates = append(m.predicates, pred)
}

// Filter returns an entql.Where implementation to apply filters on the MentionMutation builder.
func (m *MentionMutation) Filter() *MentionFilter {
	return &MentionFilter{config: m.config, predicateAdder: m}
}

// MentionFilter provides a generic filtering capability at runtime for MentionQuery.
type MentionFilter struct {
	predicateAdder
	config
}

// Where applies the entql predicate on the query filter.
func (f *MentionFilter) Where(p entql.P) {
	f.addPredicate(func(s *sql.Selector) {
		if err := schemaGraph.EvalP(schemaGraph.Nodes[1].Type, p, s); err != nil {
			s.AddError(err)
		}
	})
}

// WhereID applies the entql [16]byte predicate on the id field.
func (f *MentionFilter) WhereID(p entql.ValueP) {
	f.Where(p.Field(mention.FieldID))
}

// WhereCreatedAt applies the entql time.Time predicate on the created_at field.
func (f *MentionFilter) WhereCreatedAt(p entql.TimeP) {
	f.Where(p.Field(mention.FieldCreatedAt))
}

// WhereHasComment applies a predicate to check if query has an edge comment.
func (f *MentionFilter) WhereHasComment() {
	f.Where(entql.HasEdge("comment"))
}

// WhereHasCommentWith applies a predicate to check if query has an edge comment with a given conditions (other predicates).
func (f *MentionFilter) WhereHasCommentWith(preds ...predicate.Comment) {
	f.Where(entql.HasEdgeWith("comment", sqlgraph.WrapFunc(func(s *sql.Selector) {
		for _, p := range preds {
			p(s)
		}
	})))
}

// WhereHasMentionedUser applies a predicate to check if query has an edge mentioned_user.
func (f *MentionFilter) WhereHasMentionedUser() {
	f.Where(entql.HasEdge("mentioned_user"))
}

// WhereHasMentionedUserWith applies a predicate to check if query has an edge mentioned_user with a given conditions (other predicates).
func (f *MentionFilter) WhereHasMentionedUserWith(preds ...predicate.User) {
	f.Where(entql.HasEdgeWith("mentioned_user", sqlgraph.WrapFunc(func(s *sql.Selector) {
		for _, p := range preds {
			p(s)
		}
	})))
}

// addPredicate implements the predicateAdder interface.
func (pq *ProfileQuery) addPredicate(pred func(s *sql.Selector)) {
	pq.predicates = append(pq.predicates, pred)
}

// Filter returns a Filter implementation to apply filters on the ProfileQuery builder.
func (pq *ProfileQuery) Filter() *ProfileFilter {
	return &ProfileFilter{config: pq.config, predicateAdder: pq}
}

// addPredicate implements the predicateAdder interface.
func (m *ProfileMutation) addPredicate(pred func(s *sql.Selector)) {
	m.predicates = append(m.predicates, pred)
}

// Filter returns an entql.Where implementation to apply filters on the ProfileMutation builder.
func (m *ProfileMutation) Filter() *ProfileFilter {
	return &ProfileFilter{config: m.config, predicateAdder: m}
}

// ProfileFilter provides a generic filtering capability at runtime for ProfileQuery.
type ProfileFilter struct {
	predicateAdder
	config
}

// Where applies the entql predicate on the query filter.
func (f *ProfileFilter) Where(p entql.P) {
	f.addPredicate(func(s *sql.Selector) {
		if err := schemaGraph.EvalP(schemaGraph.Nodes[2].Type, p, s); err != nil {
			s.AddError(err)
		}
	})
}

// WhereID applies the entql [16]byte predicate on the id field.
func (f *ProfileFilter) WhereID(p entql.ValueP) {
	f.Where(p.Field(profile.FieldID))
}

// WhereExpoPushToken applies the entql string predicate on the expo_push_token field.
func (f *ProfileFilter) WhereExpoPushToken(p entql.StringP) {
	f.Where(p.Field(profile.FieldExpoPushToken))
}

// WhereImageURL applies the entql string predicate on the image_url field.
func (f *ProfileFilter) WhereImageURL(p entql.StringP) {
	f.Where(p.Field(profile.FieldImageURL))
}

// WhereHasUser applies a predicate to check if query has an edge user.
func (f *ProfileFilter) WhereHasUser() {
	f.Where(entql.HasEdge("user"))
}

// WhereHasUserWith applies a predicate to check if query has an edge user with a given conditions (other predicates).
func (f *ProfileFilter) WhereHasUserWith(preds ...predicate.User) {
	f.Where(entql.HasEdgeWith("user", sqlgraph.WrapFunc(func(s *sql.Selector) {
		for _, p := range preds {
			p(s)
		}
	})))
}

// addPredicate implements the predicateAdder interface.
func (pq *ProjectQuery) addPredicate(pred func(s *sql.Selector)) {
	pq.predicates = append(pq.predicates, pred)
}

// Filter returns a Filter implementation to apply filters on the ProjectQuery builder.
func (pq *ProjectQuery) Filter() *ProjectFilter {
	return &ProjectFilter{config: pq.config, predicateAdder: pq}
}

// addPredicate implements the predicateAdder interface.
func (m *ProjectMutation) addPredicate(pred func(s *sql.Selector)) {
	m.predicates = append(m.predicates, pred)
}

// Filter returns an entql.Where implementation to apply filters on the ProjectMutation builder.
func (m *ProjectMutation) Filter() *ProjectFilter {
	return &ProjectFilter{config: m.config, predicateAdder: m}
}

// ProjectFilter provides a generic filtering capability at runtime for ProjectQuery.
type ProjectFilter struct {
	predicateAdder
	config
}

// Where applies the entql predicate on the query filter.
func (f *ProjectFilter) Where(p entql.P) {
	f.addPredicate(func(s *sql.Selector) {
		if err := schemaGraph.EvalP(schemaGraph.Nodes[3].Type, p, s); err != nil {
			s.AddError(err)
		}
	})
}

// WhereID applies the entql [16]byte predicate on the id field.
func (f *ProjectFilter) WhereID(p entql.ValueP) {
	f.Where(p.Field(project.FieldID))
}

// WhereName applies the entql string predicate on the name field.
func (f *ProjectFilter) WhereName(p entql.StringP) {
	f.Where(p.Field(project.FieldName))
}

// WhereDescription applies the entql string predicate on the description field.
func (f *ProjectFilter) WhereDescription(p entql.StringP) {
	f.Where(p.Field(project.FieldDescription))
}

// WhereStartDate applies the entql time.Time predicate on the start_date field.
func (f *ProjectFilter) WhereStartDate(p entql.TimeP) {
	f.Where(p.Field(project.FieldStartDate))
}

// WhereEndDate applies the entql time.Time predicate on the end_date field.
func (f *ProjectFilter) WhereEndDate(p entql.TimeP) {
	f.Where(p.Field(project.FieldEndDate))
}

// WhereCreatedAt applies the entql time.Time predicate on the created_at field.
func (f *ProjectFilter) WhereCreatedAt(p entql.TimeP) {
	f.Where(p.Field(project.FieldCreatedAt))
}

// WhereHasOwner applies a predicate to check if query has an edge owner.
func (f *ProjectFilter) WhereHasOwner() {
	f.Where(entql.HasEdge("owner"))
}

// WhereHasOwnerWith applies a predicate to check if query has an edge owner with a given conditions (other predicates).
func (f *ProjectFilter) WhereHasOwnerWith(preds ...predicate.User) {
	f.Where(entql.HasEdgeWith("owner", sqlgraph.WrapFunc(func(s *sql.Selector) {
		for _, p := range preds {
			p(s)
		}
	})))
}

// WhereHasUsers applies a predicate to check if query has an edge users.
func (f *ProjectFilter) WhereHasUsers() {
	f.Where(entql.HasEdge("users"))
}

// WhereHasUsersWith applies a predicate to check if query has an edge users with a given conditions (other predicates).
func (f *ProjectFilter) WhereHasUsersWith(preds ...predicate.User) {
	f.Where(entql.HasEdgeWith("users", sqlgraph.WrapFunc(func(s *sql.Selector) {
		for _, p := range preds {
			p(s)
		}
	})))
}

// WhereHasTasks applies a predicate to check if query has an edge tasks.
func (f *ProjectFilter) WhereHasTasks() {
	f.Where(entql.HasEdge("tasks"))
}

// WhereHasTasksWith applies a predicate to check if query has an edge tasks with a given conditions (other predicates).
func (f *ProjectFilter) WhereHasTasksWith(preds ...predicate.Task) {
	f.Where(entql.HasEdgeWith("tasks", sqlgraph.WrapFunc(func(s *sql.Selector) {
		for _, p := range preds {
			p(s)
		}
	})))
}

// addPredicate implements the predicateAdder interface.
func (tq *TaskQuery) addPredicate(pred func(s *sql.Selector)) {
	tq.predicates = append(tq.predicates, pred)
}

// Filter returns a Filter implementation to apply filters on the TaskQuery builder.
func (tq *TaskQuery) Filter() *TaskFilter {
	return &TaskFilter{config: tq.config, predicateAdder: tq}
}

// addPredicate implements the predicateAdder interface.
func (m *TaskMutation) addPredicate(pred func(s *sql.Selector)) {
	m.predicates = append(m.predicates, pred)
}

// Filter returns an entql.Where implementation to apply filters on the TaskMutation builder.
func (m *TaskMutation) Filter() *TaskFilter {
	return &TaskFilter{config: m.config, predicateAdder: m}
}

// TaskFilter provides a generic filtering capability at runtime for TaskQuery.
type TaskFilter struct {
	predicateAdder
	config
}

// Where applies the entql predicate on the query filter.
func (f *TaskFilter) Where(p entql.P) {
	f.addPredicate(func(s *sql.Selector) {
		if err := schemaGraph.EvalP(schemaGraph.Nodes[4].Type, p, s); err != nil {
			s.AddError(err)
		}
	})
}

// WhereID applies the entql [16]byte predicate on the id field.
func (f *TaskFilter) WhereID(p entql.ValueP) {
	f.Where(p.Field(task.FieldID))
}

// WhereName applies the entql string predicate on the name field.
func (f *TaskFilter) WhereName(p entql.StringP) {
	f.Where(p.Field(task.FieldName))
}

// WhereDescription applies the entql string predicate on the description field.
func (f *TaskFilter) WhereDescription(p entql.StringP) {
	f.Where(p.Field(task.FieldDescription))
}

// WhereStartDate applies the entql time.Time predicate on the start_date field.
func (f *TaskFilter) WhereStartDate(p entql.TimeP) {
	f.Where(p.Field(task.FieldStartDate))
}

// WhereEndDate applies the entql time.Time predicate on the end_date field.
func (f *TaskFilter) WhereEndDate(p entql.TimeP) {
	f.Where(p.Field(task.FieldEndDate))
}

// WherePriority applies the entql string predicate on the priority field.
func (f *TaskFilter) WherePriority(p entql.StringP) {
	f.Where(p.Field(task.FieldPriority))
}

// WhereStatus applies the entql string predicate on the status field.
func (f *TaskFilter) WhereStatus(p entql.StringP) {
	f.Where(p.Field(task.FieldStatus))
}

// WhereCreatedAt applies the entql time.Time predicate on the created_at field.
func (f *TaskFilter) WhereCreatedAt(p entql.TimeP) {
	f.Where(p.Field(task.FieldCreatedAt))
}

// WhereHasProject applies a predicate to check if query has an edge project.
func (f *TaskFilter) WhereHasProject() {
	f.Where(entql.HasEdge("project"))
}

// WhereHasProjectWith applies a predicate to check if query has an edge project with a given conditions (other predicates).
func (f *TaskFilter) WhereHasProjectWith(preds ...predicate.Project) {
	f.Where(entql.HasEdgeWith("project", sqlgraph.WrapFunc(func(s *sql.Selector) {
		for _, p := range preds {
			p(s)
		}
	})))
}

// WhereHasCreator applies a predicate to check if query has an edge creator.
func (f *TaskFilter) WhereHasCreator() {
	f.Where(entql.HasEdge("creator"))
}

// WhereHasCreatorWith applies a predicate to check if query has an edge creator with a given conditions (other predicates).
func (f *TaskFilter) WhereHasCreatorWith(preds ...predicate.User) {
	f.Where(entql.HasEdgeWith("creator", sqlgraph.WrapFunc(func(s *sql.Selector) {
		for _, p := range preds {
			p(s)
		}
	})))
}

// WhereHasAssigned applies a predicate to check if query has an edge assigned.
func (f *TaskFilter) WhereHasAssigned() {
	f.Where(entql.HasEdge("assigned"))
}

// WhereHasAssignedWith applies a predicate to check if query has an edge assigned with a given conditions (other predicates).
func (f *TaskFilter) WhereHasAssignedWith(preds ...predicate.User) {
	f.Where(entql.HasEdgeWith("assigned", sqlgraph.WrapFunc(func(s *sql.Selector) {
		for _, p := range preds {
			p(s)
		}
	})))
}

// WhereHasComments applies a predicate to check if query has an edge comments.
func (f *TaskFilter) WhereHasComments() {
	f.Where(entql.HasEdge("comments"))
}

// WhereHasCommentsWith applies a predicate to check if query has an edge comments with a given conditions (other predicates).
func (f *TaskFilter) WhereHasCommentsWith(preds ...predicate.Comment) {
	f.Where(entql.HasEdgeWith("comments", sqlgraph.WrapFunc(func(s *sql.Selector) {
		for _, p := range preds {
			p(s)
		}
	})))
}

// addPredicate implements the predicateAdder interface.
func (uq *UserQuery) addPredicate(pred func(s *sql.Selector)) {
	uq.predicates = append(uq.predicates, pred)
}

// Filter returns a Filter implementation to apply filters on the UserQuery builder.
func (uq *UserQuery) Filter() *UserFilter {
	return &UserFilter{config: uq.config, predicateAdder: uq}
}

// addPredicate implements the predicateAdder interface.
func (m *UserMutation) addPredicate(pred func(s *sql.Selector)) {
	m.predicates = append(m.predicates, pred)
}

// Filter returns an entql.Where implementation to apply filters on the UserMutation builder.
func (m *UserMutation) Filter() *UserFilter {
	return &UserFilter{config: m.config, predicateAdder: m}
}

// UserFilter provides a generic filtering capability at runtime for UserQuery.
type UserFilter struct {
	predicateAdder
	config
}

// Where applies the entql predicate on the query filter.
func (f *UserFilter) Where(p entql.P) {
	f.addPredicate(func(s *sql.Selector) {
		if err := schemaGraph.EvalP(schemaGraph.Nodes[5].Type, p, s); err != nil {
			s.AddError(err)
		}
	})
}

// WhereID applies the entql [16]byte predicate on the id field.
func (f *UserFilter) WhereID(p entql.ValueP) {
	f.Where(p.Field(user.FieldID))
}

// WhereUsername applies the entql string predicate on the username field.
func (f *UserFilter) WhereUsername(p entql.StringP) {
	f.Where(p.Field(user.FieldUsername))
}

// WhereEmail applies the entql string predicate on the email field.
func (f *UserFilter) WhereEmail(p entql.StringP) {
	f.Where(p.Field(user.FieldEmail))
}

// WhereFirstName applies the entql string predicate on the first_name field.
func (f *UserFilter) WhereFirstName(p entql.StringP) {
	f.Where(p.Field(user.FieldFirstName))
}

// WhereLastName applies the entql string predicate on the last_name field.
func (f *UserFilter) WhereLastName(p entql.StringP) {
	f.Where(p.Field(user.FieldLastName))
}

// WhereCreatedAt applies the entql time.Time predicate on the created_at field.
func (f *UserFilter) WhereCreatedAt(p entql.TimeP) {
	f.Where(p.Field(user.FieldCreatedAt))
}

// WhereHasProfile applies a predicate to check if query has an edge profile.
func (f *UserFilter) WhereHasProfile() {
	f.Where(entql.HasEdge("profile"))
}

// WhereHasProfileWith applies a predicate to check if query has an edge profile with a given conditions (other predicates).
func (f *UserFilter) WhereHasProfileWith(preds ...predicate.Profile) {
	f.Where(entql.HasEdgeWith("profile", sqlgraph.WrapFunc(func(s *sql.Selector) {
		for _, p := range preds {
			p(s)
		}
	})))
}

// WhereHasOwnedProjects applies a predicate to check if query has an edge owned_projects.
func (f *UserFilter) WhereHasOwnedProjects() {
	f.Where(entql.HasEdge("owned_projects"))
}

// WhereHasOwnedProjectsWith applies a predicate to check if query has an edge owned_projects with a given conditions (other predicates).
func (f *UserFilter) WhereHasOwnedProjectsWith(preds ...predicate.Project) {
	f.Where(entql.HasEdgeWith("owned_projects", sqlgraph.WrapFunc(func(s *sql.Selector) {
		for _, p := range preds {
			p(s)
		}
	})))
}

// WhereHasProjects applies a predicate to check if query has an edge projects.
func (f *UserFilter) WhereHasProjects() {
	f.Where(entql.HasEdge("projects"))
}

// WhereHasProjectsWith applies a predicate to check if query has an edge projects with a given conditions (other predicates).
func (f *UserFilter) WhereHasProjectsWith(preds ...predicate.Project) {
	f.Where(entql.HasEdgeWith("projects", sqlgraph.WrapFunc(func(s *sql.Selector) {
		for _, p := range preds {
			p(s)
		}
	})))
}

// WhereHasCreatedTasks applies a predicate to check if query has an edge created_tasks.
func (f *UserFilter) WhereHasCreatedTasks() {
	f.Where(entql.HasEdge("created_tasks"))
}

// WhereHasCreatedTasksWith applies a predicate to check if query has an edge created_tasks with a given conditions (other predicates).
func (f *UserFilter) WhereHasCreatedTasksWith(preds ...predicate.Task) {
	f.Where(entql.HasEdgeWith("created_tasks", sqlgraph.WrapFunc(func(s *sql.Selector) {
		for _, p := range preds {
			p(s)
		}
	})))
}

// WhereHasAssignedTasks applies a predicate to check if query has an edge assigned_tasks.
func (f *UserFilter) WhereHasAssignedTasks() {
	f.Where(entql.HasEdge("assigned_tasks"))
}

// WhereHasAssignedTasksWith applies a predicate to check if query has an edge assigned_tasks with a given conditions (other predicates).
func (f *UserFilter) WhereHasAssignedTasksWith(preds ...predicate.Task) {
	f.Where(entql.HasEdgeWith("assigned_tasks", sqlgraph.WrapFunc(func(s *sql.Selector) {
		for _, p := range preds {
			p(s)
		}
	})))
}

// WhereHasComments applies a predicate to check if query has an edge comments.
func (f *UserFilter) WhereHasComments() {
	f.Where(entql.HasEdge("comments"))
}

// WhereHasCommentsWith applies a predicate to check if query has an edge comments with a given conditions (other predicates).
func (f *UserFilter) WhereHasCommentsWith(preds ...predicate.Comment) {
	f.Where(entql.HasEdgeWith("comments", sqlgraph.WrapFunc(func(s *sql.Selector) {
		for _, p := range preds {
			p(s)
		}
	})))
}

// WhereHasMentions applies a predicate to check if query has an edge mentions.
func (f *UserFilter) WhereHasMentions() {
	f.Where(entql.HasEdge("mentions"))
}

// WhereHasMentionsWith applies a predicate to check if query has an edge mentions with a given conditions (other predicates).
func (f *UserFilter) WhereHasMentionsWith(preds ...predicate.Mention) {
	f.Where(entql.HasEdgeWith("mentions", sqlgraph.WrapFunc(func(s *sql.Selector) {
		for _, p := range preds {
			p(s)
		}
	})))
}
