package migration

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type indexStep struct {
	Name       string
	Collection string
	Model      mongo.IndexModel
}

var steps = []indexStep{
	{
		Name:       "unique_index_api_users_username",
		Collection: "api_users",
		Model: mongo.IndexModel{
			Keys:    bson.D{{Key: "username", Value: 1}},
			Options: options.Index().SetName("idx_api_users_username").SetUnique(true),
		},
	},
	{
		Name:       "index_sensor_outputs_plant_id",
		Collection: "sensor_outputs",
		Model: mongo.IndexModel{
			Keys:    bson.D{{Key: "plant_id", Value: 1}},
			Options: options.Index().SetName("idx_sensor_outputs_plant_id"),
		},
	},
	{
		Name:       "index_devices_plant_id",
		Collection: "devices",
		Model: mongo.IndexModel{
			Keys:    bson.D{{Key: "plant_id", Value: 1}},
			Options: options.Index().SetName("idx_devices_plant_id"),
		},
	},
}

// EnsureIndexes creates the indexes the query paths rely on. Index creation
// is idempotent as long as names and key specs stay stable, so this runs
// unconditionally at startup.
func EnsureIndexes(ctx context.Context, db *mongo.Database, loc *time.Location) error {
	start := time.Now()

	logJSON(loc, map[string]any{
		"component": "database",
		"event":     "db_index_check",
		"status":    "starting",
		"database":  db.Name(),
	})

	for _, step := range steps {
		stepStart := time.Now()
		_, err := db.Collection(step.Collection).Indexes().CreateOne(ctx, step.Model)
		if err != nil {
			logJSON(loc, map[string]any{
				"component":        "database",
				"event":            "db_index_failed",
				"status":           "error",
				"index_step":       step.Name,
				"error_message":    err.Error(),
				"database":         db.Name(),
				"duration_ms":      time.Since(start).Milliseconds(),
				"step_duration_ms": time.Since(stepStart).Milliseconds(),
			})
			return fmt.Errorf("index step %s failed: %w", step.Name, err)
		}

		logJSON(loc, map[string]any{
			"component":        "database",
			"event":            "db_index_step",
			"status":           "success",
			"index_step":       step.Name,
			"database":         db.Name(),
			"step_duration_ms": time.Since(stepStart).Milliseconds(),
		})
	}

	logJSON(loc, map[string]any{
		"component":   "database",
		"event":       "db_index_success",
		"status":      "success",
		"database":    db.Name(),
		"duration_ms": time.Since(start).Milliseconds(),
	})

	return nil
}

func logJSON(loc *time.Location, data map[string]any) {
	data["ts"] = time.Now().In(loc).Format(time.RFC3339Nano)
	if _, ok := data["level"]; !ok {
		if data["status"] == "error" {
			data["level"] = "error"
		} else {
			data["level"] = "info"
		}
	}

	b, err := json.Marshal(data)
	if err != nil {
		log.Printf("failed to marshal index log: %v", err)
		return
	}
	log.SetFlags(0)
	log.Println(string(b))
}
