package bulletin

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	bulletinv1 "repobulletin.shikanime.studio/pkgs/bulletin/v1"
)

// Store persists encoded bulletins keyed by the owner's numeric GitHub id.
type Store interface {
	// GetBulletin returns ErrNoBulletin when the user has none.
	GetBulletin(ctx context.Context, userID int64) ([]byte, error)
	// PutBulletin replaces the owner's bulletin wholesale.
	PutBulletin(ctx context.Context, owner Identity, data []byte) error
	DeleteAccount(ctx context.Context, userID int64) error
}

// Bridge translates documents to and from the persisted wire format.
type Bridge struct {
	store Store
}

func NewBridge(store Store) *Bridge { return &Bridge{store: store} }

// Load returns the owner's persisted document, or nil when none exists.
func (b *Bridge) Load(ctx context.Context, owner Identity) (*Document, error) {
	tracer := otel.Tracer("repobulletin/bulletin")
	ctx, span := tracer.Start(ctx, "Bridge.Load")
	span.SetAttributes(attribute.Int64("user_id", owner.ID))
	defer span.End()
	data, err := b.store.GetBulletin(ctx, owner.ID)
	if errors.Is(err, ErrNoBulletin) {
		slog.DebugContext(ctx, "no bulletin stored", "user_id", owner.ID, "login", owner.Login)
		return nil, nil
	}
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, fmt.Errorf("load bulletin failed: %w", err)
	}
	doc, err := DecodeDocument(data)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	return doc, nil
}

// Save validates doc and stores it as the owner's bulletin. owned, when not
// nil, must resolve every referenced repository.
func (b *Bridge) Save(ctx context.Context, owner Identity, doc *Document, owned RepoLookup) error {
	tracer := otel.Tracer("repobulletin/bulletin")
	ctx, span := tracer.Start(ctx, "Bridge.Save")
	span.SetAttributes(attribute.Int64("user_id", owner.ID))
	defer span.End()
	data, err := EncodeDocument(doc, owned)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}
	if err := b.store.PutBulletin(ctx, owner, data); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return fmt.Errorf("save bulletin failed: %w", err)
	}
	slog.InfoContext(ctx, "bulletin saved", "user_id", owner.ID, "login", owner.Login, "sections", len(doc.Sections))
	return nil
}

// DeleteAccount removes the owner's account and bulletin.
func (b *Bridge) DeleteAccount(ctx context.Context, owner Identity) error {
	if err := b.store.DeleteAccount(ctx, owner.ID); err != nil {
		return fmt.Errorf("delete account failed: %w", err)
	}
	slog.InfoContext(ctx, "account deleted", "user_id", owner.ID, "login", owner.Login)
	return nil
}

// EncodeDocument validates doc and returns its JSON wire form.
func EncodeDocument(doc *Document, owned RepoLookup) ([]byte, error) {
	wire := ToWire(doc)
	if err := ValidateWire(wire, owned); err != nil {
		return nil, err
	}
	return json.Marshal(wire)
}

// DecodeDocument parses the JSON wire form. A JSON null decodes to nil.
func DecodeDocument(data []byte) (*Document, error) {
	var wire *bulletinv1.Bulletin
	if err := json.Unmarshal(data, &wire); err != nil {
		return nil, fmt.Errorf("decode bulletin failed: %w", err)
	}
	return FromWire(wire), nil
}
