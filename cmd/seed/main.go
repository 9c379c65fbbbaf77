// cmd/seed populates a development database with sample data: a handful of
// users with push-token profiles, one project, and a task with a mention
// comment, enough to exercise the notification pipeline end to end.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"time"

	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"

	ent "taskmanager/ent/generated"
	"taskmanager/ent/generated/task"
)

const letters = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

func randomString(n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = letters[rand.Intn(len(letters))]
	}
	return string(b)
}

func main() {
	count := flag.Int("count", 5, "number of users to create")
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	dsn := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		getEnv("DB_HOST", "localhost"),
		getEnv("DB_PORT", "5432"),
		getEnv("DB_USER", "postgres"),
		getEnv("DB_PASSWORD", "postgres"),
		getEnv("DB_NAME", "taskmanager"),
		getEnv("DB_SSL_MODE", "disable"),
	)

	drv, err := sql.Open(dialect.Postgres, dsn)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer drv.Close()

	client := ent.NewClient(ent.Driver(drv))
	defer client.Close()

	ctx := context.Background()

	if err := seed(ctx, client, *count); err != nil {
		log.Fatalf("Failed to seed database: %v", err)
	}
	log.Println("✅ Successfully created sample data")
}

func seed(ctx context.Context, client *ent.Client, count int) error {
	users := make([]*ent.User, 0, count)
	for i := 0; i < count; i++ {
		u, err := client.User.Create().
			SetUsername(fmt.Sprintf("user_%s", randomString(10))).
			SetEmail(fmt.Sprintf("%s@example.com", randomString(8))).
			Save(ctx)
		if err != nil {
			return fmt.Errorf("create user: %w", err)
		}

		// Every second user gets a push token so both notification paths
		// (send and silent skip) show up in development.
		token := ""
		if i%2 == 0 {
			token = fmt.Sprintf("ExponentPushToken[%s]", randomString(22))
		}
		if _, err := client.Profile.Create().
			SetUser(u).
			SetExpoPushToken(token).
			Save(ctx); err != nil {
			return fmt.Errorf("create profile: %w", err)
		}
		users = append(users, u)
	}
	log.Printf("Created %d users", len(users))

	if len(users) < 2 {
		return nil
	}

	owner, member := users[0], users[1]
	project, err := client.Project.Create().
		SetName("Sample Project").
		SetDescription("Seeded project for local development").
		SetOwner(owner).
		AddUsers(users[1:]...).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("create project: %w", err)
	}

	now := time.Now()
	t, err := client.Task.Create().
		SetName("Sample Task").
		SetDescription("Seeded task due tomorrow").
		SetStartDate(now).
		SetEndDate(now.AddDate(0, 0, 1)).
		SetPriority(task.PriorityMEDIUM).
		SetStatus(task.StatusTODO).
		SetProject(project).
		SetCreator(owner).
		AddAssigned(member).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("create task: %w", err)
	}

	if _, err := client.Comment.Create().
		SetContent(fmt.Sprintf("Welcome aboard @%s", member.Username)).
		SetTask(t).
		SetCreator(owner).
		Save(ctx); err != nil {
		return fmt.Errorf("create comment: %w", err)
	}

	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
