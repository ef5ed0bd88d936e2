package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/writeconcern"
)

const (
	defaultConnectTimeout = 30 * time.Second
	defaultWTimeout       = 2500 * time.Millisecond
	defaultOpTimeout      = 10 * time.Second
)

// Config captures the settings required to establish a MongoDB connection.
// Timeout and write-concern values are explicit rather than left to driver
// defaults; zero values fall back to the stated defaults.
type Config struct {
	URI      string
	Database string
	// ConnectTimeout bounds the initial connect + ping. Default 30s.
	ConnectTimeout time.Duration
	// WTimeout is the wtimeout applied to the majority write concern all
	// writes run under. Default 2.5s.
	WTimeout time.Duration
	// OpTimeout bounds a single repository operation. Default 10s.
	OpTimeout time.Duration
}

// Connect establishes a MongoDB client, verifies connectivity with a ping,
// and returns both the client and the selected database. The client is a
// single long-lived handle meant to be shared by every repository for the
// process lifetime; the driver manages pooling internally.
func Connect(ctx context.Context, cfg Config) (*mongo.Client, *mongo.Database, error) {
	connectTimeout := cfg.ConnectTimeout
	if connectTimeout <= 0 {
		connectTimeout = defaultConnectTimeout
	}
	wtimeout := cfg.WTimeout
	if wtimeout <= 0 {
		wtimeout = defaultWTimeout
	}

	wc := writeconcern.Majority()
	wc.WTimeout = wtimeout

	opts := options.Client().
		ApplyURI(cfg.URI).
		SetConnectTimeout(connectTimeout).
		SetWriteConcern(wc)

	connectCtx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()

	client, err := mongo.Connect(connectCtx, opts)
	if err != nil {
		return nil, nil, fmt.Errorf("mongo connect: %w", err)
	}

	if err := client.Ping(connectCtx, nil); err != nil {
		_ = client.Disconnect(connectCtx)
		return nil, nil, fmt.Errorf("mongo ping: %w", err)
	}

	db := client.Database(cfg.Database)
	return client, db, nil
}

func opTimeout(d time.Duration) time.Duration {
	if d <= 0 {
		return defaultOpTimeout
	}
	return d
}
