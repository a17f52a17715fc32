package database

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.opentelemetry.io/contrib/instrumentation/go.mongodb.org/mongo-driver/mongo/otelmongo"

	"plantmon/internal/config"
)

var mongoConnect = mongo.Connect

// BuildClientOptions validates the Mongo configuration and assembles driver
// options from it, including the OpenTelemetry command monitor and pool
// settings.
func BuildClientOptions(c config.MongoConfig) (*options.ClientOptions, error) {
	if c.URI == "" {
		return nil, fmt.Errorf("invalid mongo config: uri is required")
	}
	if !strings.HasPrefix(c.URI, "mongodb://") && !strings.HasPrefix(c.URI, "mongodb+srv://") {
		return nil, fmt.Errorf("invalid mongo config: uri must use the mongodb:// or mongodb+srv:// scheme")
	}

	opts := options.Client().
		ApplyURI(c.URI).
		SetMonitor(otelmongo.NewMonitor())

	if c.MaxPoolSize > 0 {
		opts.SetMaxPoolSize(uint64(c.MaxPoolSize))
	}
	if c.ConnectTimeout > 0 {
		opts.SetConnectTimeout(time.Duration(c.ConnectTimeout) * time.Second)
	}

	return opts, nil
}

// NewMongo connects a MongoDB client and verifies connectivity with a short
// ping against the primary.
func NewMongo(c config.MongoConfig) (*mongo.Client, error) {
	opts, err := BuildClientOptions(c)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongoConnect(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("mongo connect: %w", err)
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("mongo ping: %w", err)
	}

	return client, nil
}
