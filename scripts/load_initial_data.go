package main

import (
	"fmt"
	"log"
	"time"

	"teamflow-backend/internal/auth"
	"teamflow-backend/internal/config"
	"teamflow-backend/internal/database"
	"teamflow-backend/internal/database/models"

	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Simple structures that directly match the YAML seed files
type UserData struct {
	Username  string `yaml:"username"`
	Email     string `yaml:"email"`
	FirstName string `yaml:"first_name"`
	LastName  string `yaml:"last_name"`
	Password  string `yaml:"password"`
}

type TeamData struct {
	Title   string       `yaml:"title"`
	Members []MemberData `yaml:"members"`
}

type MemberData struct {
	Username string `yaml:"username"`
	Role     string `yaml:"role"`
}

type TaskData struct {
	TeamTitle   string `yaml:"team_title"`
	Author      string `yaml:"author"`
	Executor    string `yaml:"executor"`
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
	Deadline    string `yaml:"deadline"`
	Status      string `yaml:"status"`
}

// File structures
type UsersFile struct {
	Users []UserData `yaml:"users"`
}

type TeamsFile struct {
	Teams []TeamData `yaml:"teams"`
}

type TasksFile struct {
	Tasks []TaskData `yaml:"tasks"`
}

func main() {
	log.Println("🚀 Loading initial data from YAML files...")

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	db, err := connectWithRetry(cfg.DatabaseURL, 60, time.Second)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := loadDataFromYAMLFiles(db, "scripts/data"); err != nil {
		log.Fatalf("Failed to load data from YAML files: %v", err)
	}

	log.Println("✅ Initial data loaded successfully!")
}

// connectWithRetry attempts to initialize the DB with retries to wait for Postgres readiness.
func connectWithRetry(dsn string, maxAttempts int, delay time.Duration) (*gorm.DB, error) {
	// Suppress verbose GORM logging during data loading
	opts := &database.Options{
		LogLevel: logger.Silent,
	}

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		db, err := database.Initialize(dsn, opts)
		if err == nil {
			return db, nil
		}
		if attempt%10 == 0 || attempt == maxAttempts {
			log.Printf("Database not ready (%d/%d): %v", attempt, maxAttempts, err)
		}
		time.Sleep(delay)
	}
	return nil, fmt.Errorf("database not ready after %d attempts", maxAttempts)
}

func loadDataFromYAMLFiles(db *gorm.DB, dataDir string) error {
	var usersFile UsersFile
	if err := readYAMLFile(filepath.Join(dataDir, "users.yaml"), &usersFile); err != nil {
		return fmt.Errorf("failed to load users: %w", err)
	}

	var teamsFile TeamsFile
	if err := readYAMLFile(filepath.Join(dataDir, "teams.yaml"), &teamsFile); err != nil {
		return fmt.Errorf("failed to load teams: %w", err)
	}

	var tasksFile TasksFile
	if err := readYAMLFile(filepath.Join(dataDir, "tasks.yaml"), &tasksFile); err != nil {
		return fmt.Errorf("failed to load tasks: %w", err)
	}

	return db.Transaction(func(tx *gorm.DB) error {
		userByName, err := upsertUsers(tx, usersFile.Users)
		if err != nil {
			return err
		}

		teamByTitle, err := upsertTeams(tx, teamsFile.Teams, userByName)
		if err != nil {
			return err
		}

		return upsertTasks(tx, tasksFile.Tasks, userByName, teamByTitle)
	})
}

func readYAMLFile(path string, out interface{}) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(data, out)
}

func upsertUsers(tx *gorm.DB, users []UserData) (map[string]*models.User, error) {
	byName := make(map[string]*models.User, len(users))
	for _, data := range users {
		user := &models.User{}
		err := tx.Where("username = ?", data.Username).First(user).Error
		if err == nil {
			byName[data.Username] = user
			continue
		}
		if err != gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("failed to look up user %s: %w", data.Username, err)
		}

		hash, err := auth.HashPassword(data.Password)
		if err != nil {
			return nil, fmt.Errorf("failed to hash password for %s: %w", data.Username, err)
		}
		user = &models.User{
			Username:     data.Username,
			Email:        data.Email,
			FirstName:    data.FirstName,
			LastName:     data.LastName,
			PasswordHash: hash,
		}
		if err := tx.Create(user).Error; err != nil {
			return nil, fmt.Errorf("failed to create user %s: %w", data.Username, err)
		}
		log.Printf("Created user %s", data.Username)
		byName[data.Username] = user
	}
	return byName, nil
}

func upsertTeams(tx *gorm.DB, teams []TeamData, userByName map[string]*models.User) (map[string]*models.Team, error) {
	byTitle := make(map[string]*models.Team, len(teams))
	for _, data := range teams {
		team := &models.Team{}
		err := tx.Where("title = ?", data.Title).First(team).Error
		if err == gorm.ErrRecordNotFound {
			team = &models.Team{Title: data.Title}
			if err := tx.Create(team).Error; err != nil {
				return nil, fmt.Errorf("failed to create team %s: %w", data.Title, err)
			}
			log.Printf("Created team %s", data.Title)
		} else if err != nil {
			return nil, fmt.Errorf("failed to look up team %s: %w", data.Title, err)
		}
		byTitle[data.Title] = team

		for _, member := range data.Members {
			user, ok := userByName[member.Username]
			if !ok {
				return nil, fmt.Errorf("team %s references unknown user %s", data.Title, member.Username)
			}
			role := models.TeamRole(member.Role)
			if !role.IsValid() {
				return nil, fmt.Errorf("team %s member %s has invalid role %q", data.Title, member.Username, member.Role)
			}

			membership := &models.Membership{}
			err := tx.Where("user_id = ? AND team_id = ?", user.ID, team.ID).First(membership).Error
			if err == nil {
				continue
			}
			if err != gorm.ErrRecordNotFound {
				return nil, fmt.Errorf("failed to look up membership of %s: %w", member.Username, err)
			}
			membership = &models.Membership{UserID: user.ID, TeamID: team.ID, Role: role}
			if err := tx.Create(membership).Error; err != nil {
				return nil, fmt.Errorf("failed to add %s to team %s: %w", member.Username, data.Title, err)
			}
		}
	}
	return byTitle, nil
}

func upsertTasks(tx *gorm.DB, tasks []TaskData, userByName map[string]*models.User, teamByTitle map[string]*models.Team) error {
	for _, data := range tasks {
		team, ok := teamByTitle[data.TeamTitle]
		if !ok {
			return fmt.Errorf("task %s references unknown team %s", data.Title, data.TeamTitle)
		}
		author, ok := userByName[data.Author]
		if !ok {
			return fmt.Errorf("task %s references unknown author %s", data.Title, data.Author)
		}
		executor, ok := userByName[data.Executor]
		if !ok {
			return fmt.Errorf("task %s references unknown executor %s", data.Title, data.Executor)
		}
		deadline, err := time.Parse("2006-01-02", data.Deadline)
		if err != nil {
			return fmt.Errorf("task %s has invalid deadline %q: %w", data.Title, data.Deadline, err)
		}
		status := models.TaskStatusOpen
		if data.Status != "" {
			status = models.TaskStatus(data.Status)
			if !status.IsValid() {
				return fmt.Errorf("task %s has invalid status %q", data.Title, data.Status)
			}
		}

		task := &models.Task{}
		err = tx.Where("team_id = ? AND title = ?", team.ID, data.Title).First(task).Error
		if err == nil {
			continue
		}
		if err != gorm.ErrRecordNotFound {
			return fmt.Errorf("failed to look up task %s: %w", data.Title, err)
		}
		task = &models.Task{
			TeamID:      team.ID,
			AuthorID:    author.ID,
			ExecutorID:  executor.ID,
			Title:       data.Title,
			Description: data.Description,
			Deadline:    deadline,
			Status:      status,
		}
		if err := tx.Create(task).Error; err != nil {
			return fmt.Errorf("failed to create task %s: %w", data.Title, err)
		}
		log.Printf("Created task %s in team %s", data.Title, data.TeamTitle)
	}
	return nil
}
