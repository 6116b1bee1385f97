package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"writing-tracker-backend/internal/config"
	"writing-tracker-backend/internal/database"
	"writing-tracker-backend/internal/database/models"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Seed structures matching the YAML layout in scripts/data/seed.yaml.
type WorkData struct {
	Title           string         `yaml:"title"`
	Description     string         `yaml:"description"`
	Phase           string         `yaml:"phase"`
	StartingBalance map[string]int `yaml:"starting_balance,omitempty"`
}

type TagData struct {
	Name  string `yaml:"name"`
	Color string `yaml:"color"`
}

type TeamData struct {
	Name  string `yaml:"name"`
	Color string `yaml:"color"`
}

type LeaderboardData struct {
	Title              string         `yaml:"title"`
	Description        string         `yaml:"description"`
	Measures           []string       `yaml:"measures"`
	StartDate          string         `yaml:"start_date,omitempty"`
	EndDate            string         `yaml:"end_date,omitempty"`
	Goal               map[string]int `yaml:"goal,omitempty"`
	IndividualGoalMode bool           `yaml:"individual_goal_mode"`
	EnableTeams        bool           `yaml:"enable_teams"`
	IsJoinable         bool           `yaml:"is_joinable"`
	IsPublic           bool           `yaml:"is_public"`
	JoinCode           string         `yaml:"join_code"`
	Teams              []TeamData     `yaml:"teams,omitempty"`
}

type SeedFile struct {
	Works        []WorkData        `yaml:"works"`
	Tags         []TagData         `yaml:"tags"`
	Leaderboards []LeaderboardData `yaml:"leaderboards"`
}

func main() {
	seedPath := flag.String("seed", "scripts/data/seed.yaml", "path to the seed YAML file")
	flag.Parse()

	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	db, err := database.Initialize(cfg.DatabaseURL, &database.Options{LogLevel: logger.Warn})
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	ownerID, err := seedOwnerID()
	if err != nil {
		log.Fatalf("invalid SEED_OWNER_ID: %v", err)
	}

	if err := loadSeedFile(db, ownerID, *seedPath); err != nil {
		log.Fatalf("failed to load seed data: %v", err)
	}
	log.Printf("seed data from %s loaded for owner %s", *seedPath, ownerID)
}

// seedOwnerID resolves the owner every seeded entity belongs to. Defaults to
// a fresh id so repeated runs against a scratch database stay independent.
func seedOwnerID() (uuid.UUID, error) {
	if raw := os.Getenv("SEED_OWNER_ID"); raw != "" {
		return uuid.Parse(raw)
	}
	return uuid.New(), nil
}

func loadSeedFile(db *gorm.DB, ownerID uuid.UUID, path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}

	var seed SeedFile
	if err := yaml.Unmarshal(raw, &seed); err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}

	return db.Transaction(func(tx *gorm.DB) error {
		for _, w := range seed.Works {
			if err := seedWork(tx, ownerID, w); err != nil {
				return err
			}
		}
		for _, t := range seed.Tags {
			if err := seedTag(tx, ownerID, t); err != nil {
				return err
			}
		}
		for _, l := range seed.Leaderboards {
			if err := seedLeaderboard(tx, ownerID, l); err != nil {
				return err
			}
		}
		return nil
	})
}

func seedWork(tx *gorm.DB, ownerID uuid.UUID, data WorkData) error {
	phase := models.WorkPhase(data.Phase)
	if phase == "" {
		phase = models.WorkPhaseDrafting
	}
	if !phase.IsValid() {
		return fmt.Errorf("work %q: unknown phase %q", data.Title, data.Phase)
	}

	work := &models.Work{
		OwnerID:         ownerID,
		Title:           data.Title,
		Description:     data.Description,
		Phase:           phase,
		StartingBalance: toMeasureMap(data.StartingBalance),
	}
	if err := tx.Where("owner_id = ? AND title = ?", ownerID, data.Title).
		FirstOrCreate(work).Error; err != nil {
		return fmt.Errorf("work %q: %w", data.Title, err)
	}
	return nil
}

func seedTag(tx *gorm.DB, ownerID uuid.UUID, data TagData) error {
	tag := &models.Tag{OwnerID: ownerID, Name: data.Name, Color: data.Color}
	if err := tx.Where("owner_id = ? AND name = ?", ownerID, data.Name).
		FirstOrCreate(tag).Error; err != nil {
		return fmt.Errorf("tag %q: %w", data.Name, err)
	}
	return nil
}

func seedLeaderboard(tx *gorm.DB, ownerID uuid.UUID, data LeaderboardData) error {
	measures := make(models.MeasureList, 0, len(data.Measures))
	for _, m := range data.Measures {
		measure := models.Measure(m)
		if !measure.IsValid() {
			return fmt.Errorf("leaderboard %q: unknown measure %q", data.Title, m)
		}
		measures = append(measures, measure)
	}

	board := &models.Leaderboard{
		OwnerID:            ownerID,
		Title:              data.Title,
		Description:        data.Description,
		Measures:           measures,
		StartDate:          data.StartDate,
		EndDate:            data.EndDate,
		Goal:               toMeasureMap(data.Goal),
		IndividualGoalMode: data.IndividualGoalMode,
		EnableTeams:        data.EnableTeams,
		IsJoinable:         data.IsJoinable,
		IsPublic:           data.IsPublic,
		JoinCode:           data.JoinCode,
	}
	if err := tx.Where("join_code = ?", data.JoinCode).FirstOrCreate(board).Error; err != nil {
		return fmt.Errorf("leaderboard %q: %w", data.Title, err)
	}

	owner := &models.LeaderboardMember{
		LeaderboardID: board.ID,
		UserID:        ownerID,
		IsOwner:       true,
		IsParticipant: true,
	}
	if err := tx.Where("leaderboard_id = ? AND user_id = ?", board.ID, ownerID).
		FirstOrCreate(owner).Error; err != nil {
		return fmt.Errorf("leaderboard %q owner membership: %w", data.Title, err)
	}

	for _, t := range data.Teams {
		team := &models.LeaderboardTeam{
			LeaderboardID: board.ID,
			Name:          t.Name,
			Color:         t.Color,
		}
		if err := tx.Where("leaderboard_id = ? AND name = ?", board.ID, t.Name).
			FirstOrCreate(team).Error; err != nil {
			return fmt.Errorf("leaderboard %q team %q: %w", data.Title, t.Name, err)
		}
	}
	return nil
}

func toMeasureMap(raw map[string]int) models.MeasureMap {
	m := models.MeasureMap{}
	for k, v := range raw {
		m[models.Measure(k)] = v
	}
	return m
}
