package main

import (
	"context"
	"log"

	"gorm.io/gorm"

	"taskapi/internal/auth"
	"taskapi/internal/config"
	"taskapi/internal/db"
	"taskapi/internal/model"
	"taskapi/internal/repository"
	"taskapi/internal/service"
)

type seedUser struct {
	name     string
	username string
	email    string
	password string
	labels   []string
	tasks    []seedTask
}

type seedTask struct {
	title       string
	description string
	status      string
	priority    string
	labels      []string
}

var fixtures = []seedUser{
	{
		name:     "Alice Johnson",
		username: "alice",
		email:    "alice@example.com",
		password: "password123",
		labels:   []string{"urgent", "home", "work"},
		tasks: []seedTask{
			{title: "Pay utility bills", description: "Electricity and water", status: "pending", priority: "high", labels: []string{"urgent", "home"}},
			{title: "Prepare quarterly report", description: "Numbers for Q3", status: "in-progress", priority: "medium", labels: []string{"work"}},
			{title: "Clean the garage", description: "Weekend chore", status: "pending", priority: "low", labels: []string{"home"}},
		},
	},
	{
		name:     "Bob Smith",
		username: "bob",
		email:    "bob@example.com",
		password: "password123",
		labels:   []string{"urgent", "errands"},
		tasks: []seedTask{
			{title: "Renew car insurance", description: "Policy expires this month", status: "pending", priority: "high", labels: []string{"urgent", "errands"}},
			{title: "Read design proposal", description: "Feedback by Friday", status: "completed", priority: "medium", labels: nil},
		},
	},
}

func main() {
	log.Println("Starting seed script...")

	cfg := config.Load()

	gormDB, err := openDB(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	log.Println("Connected to database")

	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.UserProfile{},
		&model.Label{},
		&model.Task{},
		&model.TaskLabel{},
	); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Println("Database migrations completed")

	userRepo := repository.NewUserRepository(gormDB)
	taskRepo := repository.NewTaskRepository(gormDB)
	labelRepo := repository.NewLabelRepository(gormDB)

	authService := service.NewAuthService(userRepo, auth.NewJWTService(cfg.JWTSecret), auth.NewTokenStore(nil))
	taskService := service.NewTaskService(taskRepo, nil)
	labelService := service.NewLabelService(labelRepo)

	ctx := context.Background()
	users, tasks := 0, 0

	for _, fixture := range fixtures {
		user, err := authService.Register(ctx, service.RegisterInput{
			Name:     fixture.name,
			Username: fixture.username,
			Email:    fixture.email,
			Password: fixture.password,
		})
		if err != nil {
			log.Printf("Skipping user %s: %v", fixture.username, err)
			continue
		}
		users++

		for _, title := range fixture.labels {
			if _, err := labelService.CreateLabel(ctx, user.ID, title, ""); err != nil {
				log.Printf("Skipping label %q for %s: %v", title, fixture.username, err)
			}
		}

		for _, t := range fixture.tasks {
			if _, err := taskService.CreateTask(ctx, user.ID, service.CreateTaskInput{
				Title:       t.title,
				Description: t.description,
				Status:      t.status,
				Priority:    t.priority,
				Labels:      t.labels,
			}); err != nil {
				log.Printf("Skipping task %q for %s: %v", t.title, fixture.username, err)
				continue
			}
			tasks++
		}
	}

	log.Printf("Seed completed: %d users, %d tasks", users, tasks)
}

func openDB(cfg *config.Config) (*gorm.DB, error) {
	if cfg.DBDriver == "sqlite" {
		return db.NewSQLite(cfg.SQLiteDSN)
	}
	return db.NewMySQL(cfg.MySQLDSN)
}
