package database

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"repobulletin.shikanime.studio/internal/bulletin"
	"repobulletin.shikanime.studio/internal/config"
	dbpgx "repobulletin.shikanime.studio/internal/database/pgx"
)

// Database is the Postgres bulletin store. It implements bulletin.Store.
type Database struct {
	pg *pgxpool.Pool
}

// NewForConfig constructs a Database using the provided config.
func NewForConfig(cfg *config.Config) (*Database, error) {
	pg, err := dbpgx.NewClientForConfig(cfg)
	if err != nil {
		return nil, err
	}
	return NewClient(pg), nil
}

// NewClient constructs a Database using the provided pgx pool.
func NewClient(pg *pgxpool.Pool) *Database { return &Database{pg: pg} }

// Ping verifies the provided database connection is available
func (db *Database) Ping(ctx context.Context) error {
	tracer := otel.Tracer("repobulletin/database")
	ctx, span := tracer.Start(ctx, "Database.Ping")
	defer span.End()
	if db.pg == nil {
		return fmt.Errorf("database connection not available")
	}
	return db.pg.Ping(ctx)
}

func (db *Database) Close() error {
	if db.pg == nil {
		return nil
	}
	db.pg.Close()
	return nil
}

// GetBulletin returns the encoded bulletin of userID, or bulletin.ErrNoBulletin.
func (db *Database) GetBulletin(ctx context.Context, userID int64) ([]byte, error) {
	tracer := otel.Tracer("repobulletin/database")
	ctx, span := tracer.Start(ctx, "Database.GetBulletin")
	span.SetAttributes(attribute.Int64("user_id", userID))
	defer span.End()
	if db.pg == nil {
		return nil, fmt.Errorf("database connection not available")
	}
	var data []byte
	if err := db.pg.QueryRow(ctx, BulletinByUserIDQuery, userID).Scan(&data); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, bulletin.ErrNoBulletin
		}
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, fmt.Errorf("query bulletin failed: %w", err)
	}
	return data, nil
}

// PutBulletin upserts the owner's account row and replaces their bulletin.
// Both statements are sent as one batch, which pgx runs in an implicit
// transaction.
func (db *Database) PutBulletin(ctx context.Context, owner bulletin.Identity, data []byte) error {
	tracer := otel.Tracer("repobulletin/database")
	ctx, span := tracer.Start(ctx, "Database.PutBulletin")
	span.SetAttributes(attribute.Int64("user_id", owner.ID), attribute.Int("data_len", len(data)))
	defer span.End()
	if db.pg == nil {
		return fmt.Errorf("database connection not available")
	}
	user := UpsertUserArgs{ID: owner.ID, Login: owner.Login, AvatarURL: owner.AvatarURL}
	doc := UpsertBulletinArgs{UserID: owner.ID, Data: data}
	b := &pgx.Batch{}
	b.Queue(UpsertUserQuery, user.ID, user.Login, user.AvatarURL)
	b.Queue(UpsertBulletinQuery, doc.UserID, string(doc.Data))
	br := db.pg.SendBatch(ctx, b)
	defer br.Close()
	for _, what := range []string{"user", "bulletin"} {
		if _, err := br.Exec(); err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
			return fmt.Errorf("upsert %s failed: %w", what, err)
		}
	}
	slog.DebugContext(ctx, "bulletin upserted", "user_id", owner.ID, "login", owner.Login, "bytes", len(data))
	return nil
}

// DeleteAccount removes the user and, by cascade, their bulletin. Deleting an
// unknown user is not an error.
func (db *Database) DeleteAccount(ctx context.Context, userID int64) error {
	tracer := otel.Tracer("repobulletin/database")
	ctx, span := tracer.Start(ctx, "Database.DeleteAccount")
	span.SetAttributes(attribute.Int64("user_id", userID))
	defer span.End()
	if db.pg == nil {
		return fmt.Errorf("database connection not available")
	}
	tag, err := db.pg.Exec(ctx, DeleteUserQuery, userID)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return fmt.Errorf("delete user failed: %w", err)
	}
	slog.DebugContext(ctx, "user deleted", "user_id", userID, "rows", tag.RowsAffected())
	return nil
}
