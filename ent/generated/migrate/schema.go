// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// CommentsColumns holds the columns for the "comments" table.
	CommentsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "content", Type: field.TypeString, Size: 2147483647},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "task_comments", Type: field.TypeUUID},
		{Name: "user_comments", Type: field.TypeUUID},
	}
	// CommentsTable holds the schema information for the "comments" table.
	CommentsTable = &schema.Table{
		Name:       "comments",
		Columns:    CommentsColumns,
		PrimaryKey: []*schema.Column{CommentsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "comments_tasks_comments",
				Columns:    []*schema.Column{CommentsColumns[3]},
				RefColumns: []*schema.Column{TasksColumns[0]},
				OnDelete:   schema.NoAction,
			},
			{
				Symbol:     "comments_users_comments",
				Columns:    []*schema.Column{CommentsColumns[4]},
				RefColumns: []*schema.Column{UsersColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "comment_created_at",
				Unique:  false,
				Columns: []*schema.Column{CommentsColumns[2]},
			},
		},
	}
	// MentionsColumns holds the columns for the "mentions" table.
	MentionsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "comment_mentions", Type: field.TypeUUID},
		{Name: "user_mentions", Type: field.TypeUUID},
	}
	// MentionsTable holds the schema information for the "mentions" table.
	MentionsTable = &schema.Table{
		Name:       "mentions",
		Columns:    MentionsColumns,
		PrimaryKey: []*schema.Column{MentionsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "mentions_comments_mentions",
				Columns:    []*schema.Column{MentionsColumns[2]},
				RefColumns: []*schema.Column{CommentsColumns[0]},
				OnDelete:   schema.NoAction,
			},
			{
				Symbol:     "mentions_users_mentions",
				Columns:    []*schema.Column{MentionsColumns[3]},
				RefColumns: []*schema.Column{UsersColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "mention_comment_mentions_user_mentions",
				Unique:  true,
				Columns: []*schema.Column{MentionsColumns[2], MentionsColumns[3]},
			},
		},
	}
	// ProfilesColumns holds the columns for the "profiles" table.
	ProfilesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "expo_push_token", Type: field.TypeString, Nullable: true, Size: 200, Default: ""},
		{Name: "image_url", Type: field.TypeString, Nullable: true, Default: ""},
		{Name: "user_id", Type: field.TypeUUID, Unique: true},
	}
	// ProfilesTable holds the schema information for the "profiles" table.
	ProfilesTable = &schema.Table{
		Name:       "profiles",
		Columns:    ProfilesColumns,
		PrimaryKey: []*schema.Column{ProfilesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "profiles_users_profile",
				Columns:    []*schema.Column{ProfilesColumns[3]},
				RefColumns: []*schema.Column{UsersColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
	}
	// ProjectsColumns holds the columns for the "projects" table.
	ProjectsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "name", Type: field.TypeString, Size: 255},
		{Name: "description", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "start_date", Type: field.TypeTime, Nullable: true},
		{Name: "end_date", Type: field.TypeTime, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "user_owned_projects", Type: field.TypeUUID},
	}
	// ProjectsTable holds the schema information for the "projects" table.
	ProjectsTable = &schema.Table{
		Name:       "projects",
		Columns:    ProjectsColumns,
		PrimaryKey: []*schema.Column{ProjectsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "projects_users_owned_projects",
				Columns:    []*schema.Column{ProjectsColumns[6]},
				RefColumns: []*schema.Column{UsersColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "project_name",
				Unique:  false,
				Columns: []*schema.Column{ProjectsColumns[1]},
			},
			{
				Name:    "project_created_at",
				Unique:  false,
				Columns: []*schema.Column{ProjectsColumns[5]},
			},
		},
	}
	// TasksColumns holds the columns for the "tasks" table.
	TasksColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "name", Type: field.TypeString, Size: 255},
		{Name: "description", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "start_date", Type: field.TypeTime},
		{Name: "end_date", Type: field.TypeTime},
		{Name: "priority", Type: field.TypeEnum, Enums: []string{"ASAP", "MEDIUM", "LOW"}, Default: "LOW"},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"TODO", "INPROGRESS", "DONE"}, Default: "TODO"},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "project_tasks", Type: field.TypeUUID},
		{Name: "user_created_tasks", Type: field.TypeUUID},
	}
	// TasksTable holds the schema information for the "tasks" table.
	TasksTable = &schema.Table{
		Name:       "tasks",
		Columns:    TasksColumns,
		PrimaryKey: []*schema.Column{TasksColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "tasks_projects_tasks",
				Columns:    []*schema.Column{TasksColumns[8]},
				RefColumns: []*schema.Column{ProjectsColumns[0]},
				OnDelete:   schema.NoAction,
			},
			{
				Symbol:     "tasks_users_created_tasks",
				Columns:    []*schema.Column{TasksColumns[9]},
				RefColumns: []*schema.Column{UsersColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "task_status",
				Unique:  false,
				Columns: []*schema.Column{TasksColumns[6]},
			},
			{
				Name:    "task_priority",
				Unique:  false,
				Columns: []*schema.Column{TasksColumns[5]},
			},
			{
				Name:    "task_end_date",
				Unique:  false,
				Columns: []*schema.Column{TasksColumns[4]},
			},
			{
				Name:    "task_created_at",
				Unique:  false,
				Columns: []*schema.Column{TasksColumns[7]},
			},
		},
	}
	// UsersColumns holds the columns for the "users" table.
	UsersColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "username", Type: field.TypeString, Unique: true, Size: 150},
		{Name: "email", Type: field.TypeString, Nullable: true, Default: ""},
		{Name: "first_name", Type: field.TypeString, Nullable: true, Size: 100, Default: ""},
		{Name: "last_name", Type: field.TypeString, Nullable: true, Size: 100, Default: ""},
		{Name: "created_at", Type: field.TypeTime},
	}
	// UsersTable holds the schema information for the "users" table.
	UsersTable = &schema.Table{
		Name:       "users",
		Columns:    UsersColumns,
		PrimaryKey: []*schema.Column{UsersColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "user_username",
				Unique:  true,
				Columns: []*schema.Column{UsersColumns[1]},
			},
			{
				Name:    "user_created_at",
				Unique:  false,
				Columns: []*schema.Column{UsersColumns[5]},
			},
		},
	}
	// ProjectUsersColumns holds the columns for the "project_users" table.
	ProjectUsersColumns = []*schema.Column{
		{Name: "project_id", Type: field.TypeUUID},
		{Name: "user_id", Type: field.TypeUUID},
	}
	// ProjectUsersTable holds the schema information for the "project_users" table.
	ProjectUsersTable = &schema.Table{
		Name:       "project_users",
		Columns:    ProjectUsersColumns,
		PrimaryKey: []*schema.Column{ProjectUsersColumns[0], ProjectUsersColumns[1]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "project_users_project_id",
				Columns:    []*schema.Column{ProjectUsersColumns[0]},
				RefColumns: []*schema.Column{ProjectsColumns[0]},
				OnDelete:   schema.Cascade,
			},
			{
				Symbol:     "project_users_user_id",
				Columns:    []*schema.Column{ProjectUsersColumns[1]},
				RefColumns: []*schema.Column{UsersColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
	}
	// TaskAssignedColumns holds the columns for the "task_assigned" table.
	TaskAssignedColumns = []*schema.Column{
		{Name: "task_id", Type: field.TypeUUID},
		{Name: "user_id", Type: field.TypeUUID},
	}
	// TaskAssignedTable holds the schema information for the "task_assigned" table.
	TaskAssignedTable = &schema.Table{
		Name:       "task_assigned",
		Columns:    TaskAssignedColumns,
		PrimaryKey: []*schema.Column{TaskAssignedColumns[0], TaskAssignedColumns[1]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "task_assigned_task_id",
				Columns:    []*schema.Column{TaskAssignedColumns[0]},
				RefColumns: []*schema.Column{TasksColumns[0]},
				OnDelete:   schema.Cascade,
			},
			{
				Symbol:     "task_assigned_user_id",
				Columns:    []*schema.Column{TaskAssignedColumns[1]},
				RefColumns: []*schema.Column{UsersColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		CommentsTable,
		MentionsTable,
		ProfilesTable,
		ProjectsTable,
		TasksTable,
		UsersTable,
		ProjectUsersTable,
		TaskAssignedTable,
	}
)

func init() {
	CommentsTable.ForeignKeys[0].RefTable = TasksTable
	CommentsTable.ForeignKeys[1].RefTable = UsersTable
	MentionsTable.ForeignKeys[0].RefTable = CommentsTable
	MentionsTable.ForeignKeys[1].RefTable = UsersTable
	ProfilesTable.ForeignKeys[0].RefTable = UsersTable
	ProjectsTable.ForeignKeys[0].RefTable = UsersTable
	TasksTable.ForeignKeys[0].RefTable = ProjectsTable
	TasksTable.ForeignKeys[1].RefTable = UsersTable
	TasksTable.Annotation = &entsql.Annotation{}
	TasksTable.Annotation.Checks = map[string]string{
		"task_start_date_lte_end_date": "start_date <= end_date",
	}
	ProjectUsersTable.ForeignKeys[0].RefTable = ProjectsTable
	ProjectUsersTable.ForeignKeys[1].RefTable = UsersTable
	TaskAssignedTable.ForeignKeys[0].RefTable = TasksTable
	TaskAssignedTable.ForeignKeys[1].RefTable = UsersTable
}
