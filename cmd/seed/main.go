package main

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"

	"maturitymap/internal/config"
	"maturitymap/internal/engine"
	"maturitymap/internal/logger"
	"maturitymap/internal/model"
	"maturitymap/internal/repository"
)

// standardOptions is the common 0/33/66/100 maturity ladder plus the
// "don't know" sentinel.
func standardOptions() []model.Option {
	return []model.Option{
		{Value: 0, Label: "Not started"},
		{Value: 33, Label: "Ad hoc"},
		{Value: 66, Label: "Established"},
		{Value: 100, Label: "Optimized"},
		{Value: model.UnknownValue, Label: "Don't know"},
	}
}

func demoQuestions() []model.Question {
	return []model.Question{
		{
			ID:             "q-inventory",
			Category:       "governance",
			Weight:         2,
			MaturityLevel:  model.LevelBeginner,
			Importance:     model.ImportanceHigh,
			AssessmentType: "full",
			ImpactArea:     "visibility",
			Options:        standardOptions(),
			Prompt:         "Do you maintain an inventory of your systems and data assets?",
			ActionLabel:    "Build a system inventory",
			ActionDescription: "Catalog systems and data assets so every later " +
				"practice has a known scope to operate on.",
		},
		{
			ID:             "q-ownership",
			Category:       "governance",
			Weight:         1,
			MaturityLevel:  model.LevelIntermediate,
			Importance:     model.ImportanceMedium,
			AssessmentType: "full",
			ImpactArea:     "accountability",
			Dependencies:   []model.Dependency{{QuestionID: "q-inventory", MinValue: 33}},
			Options:        standardOptions(),
			Prompt:         "Does every inventoried asset have a named owner?",
			ActionLabel:    "Assign asset owners",
			ActionDescription: "Give each asset a named owner who is accountable " +
				"for its lifecycle and access decisions.",
		},
		{
			ID:             "q-reviews",
			Category:       "governance",
			Weight:         1,
			MaturityLevel:  model.LevelAdvanced,
			Importance:     model.ImportanceMedium,
			AssessmentType: "full",
			ImpactArea:     "accountability",
			Dependencies:   []model.Dependency{{QuestionID: "q-ownership", MinValue: 66}},
			Options:        standardOptions(),
			Prompt:         "Are ownership and access reviewed on a fixed cadence?",
			ActionLabel:    "Schedule periodic reviews",
			ActionDescription: "Run recurring ownership and access reviews instead " +
				"of one-off cleanups.",
		},
		{
			ID:             "q-backups",
			Category:       "resilience",
			Weight:         2,
			MaturityLevel:  model.LevelBeginner,
			Importance:     model.ImportanceHigh,
			AssessmentType: "full",
			ImpactArea:     "continuity",
			Options:        standardOptions(),
			Prompt:         "Are critical systems backed up automatically?",
			ActionLabel:    "Automate backups",
			ActionDescription: "Automate backups for critical systems and store " +
				"them separately from production.",
		},
		{
			ID:             "q-restore-drills",
			Category:       "resilience",
			Weight:         1.5,
			MaturityLevel:  model.LevelIntermediate,
			Importance:     model.ImportanceHigh,
			AssessmentType: "full",
			ImpactArea:     "continuity",
			Dependencies:   []model.Dependency{{QuestionID: "q-backups", MinValue: 66}},
			Options:        standardOptions(),
			Prompt:         "Do you regularly rehearse restoring from backup?",
			ActionLabel:    "Run restore drills",
			ActionDescription: "Verify backups by restoring them on a schedule; an " +
				"untested backup is a hope, not a plan.",
		},
		{
			ID:             "q-monitoring",
			Category:       "operations",
			Weight:         1,
			MaturityLevel:  model.LevelIntermediate,
			Importance:     model.ImportanceMedium,
			AssessmentType: "quick",
			ImpactArea:     "visibility",
			Options:        standardOptions(),
			Prompt:         "Is system health monitored with alerting on failures?",
			ActionLabel:    "Set up monitoring and alerting",
			ActionDescription: "Monitor service health and alert on failure before " +
				"users report it.",
		},
	}
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	log := logger.New(cfg.Logging.Level, "console")
	defer log.Sync()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.Mongo.URI))
	if err != nil {
		log.Fatal("failed to connect to MongoDB", zap.Error(err))
	}
	defer client.Disconnect(ctx)

	questions := demoQuestions()
	version := uuid.NewString()

	// Validate before writing so a broken catalog never reaches storage
	if _, err := engine.NewCatalog(version, questions); err != nil {
		log.Fatal("seed catalog failed validation", zap.Error(err))
	}

	repo := repository.NewCatalogRepo(client.Database(cfg.Mongo.Database))
	if err := repo.ReplaceAll(ctx, version, questions); err != nil {
		log.Fatal("failed to seed catalog", zap.Error(err))
	}

	log.Info("catalog seeded",
		zap.String("version", version),
		zap.Int("questions", len(questions)),
	)
}
