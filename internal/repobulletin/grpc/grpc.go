// Package grpc implements the Connect bulletin service: public reads of a
// bulletin and the RPCs driving an owner's edit session.
package grpc

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"connectrpc.com/connect"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"repobulletin.shikanime.studio/internal/auth"
	"repobulletin.shikanime.studio/internal/bulletin"
	"repobulletin.shikanime.studio/internal/encoding"
	"repobulletin.shikanime.studio/internal/repobulletin"
	bulletinv1 "repobulletin.shikanime.studio/pkgs/bulletin/v1"
	"repobulletin.shikanime.studio/pkgs/bulletin/v1/bulletinv1connect"
)

var _ bulletinv1connect.BulletinServiceHandler = (*BulletinService)(nil)

var errNothingImported = errors.New("no heading of the document lists a repository of the owner")

// BulletinService implements the bulletin RPC service.
type BulletinService struct {
	clients *repobulletin.RepoBulletin
}

// NewBulletinService constructs a BulletinService with the given clients.
func NewBulletinService(clients *repobulletin.RepoBulletin) *BulletinService {
	return &BulletinService{clients: clients}
}

func fail(ctx context.Context, span trace.Span, err error, cerr error) error {
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
	if connect.CodeOf(cerr) == connect.CodeInternal || connect.CodeOf(cerr) == connect.CodeUnavailable {
		slog.ErrorContext(ctx, "bulletin rpc failed", "error", err)
	}
	return cerr
}

func viewerOf(ctx context.Context) (*auth.Viewer, error) {
	viewer := auth.ViewerFromContext(ctx)
	if viewer == nil {
		return nil, errUnauthenticated
	}
	return viewer, nil
}

func (s *BulletinService) session(ctx context.Context, id string) (*bulletin.Session, error) {
	viewer, err := viewerOf(ctx)
	if err != nil {
		return nil, err
	}
	return s.clients.Sessions().Get(*viewer, id)
}

// edit runs fn on a session of the caller and answers with the resulting state.
func (s *BulletinService) edit(
	ctx context.Context,
	method, sessionID string,
	fn func(context.Context, *bulletin.Session) error,
) (*connect.Response[bulletinv1.EditStateResponse], error) {
	tracer := otel.Tracer("repobulletin/grpc")
	ctx, span := tracer.Start(ctx, "BulletinService."+method)
	span.SetAttributes(attribute.String("session_id", sessionID))
	defer span.End()
	sess, err := s.session(ctx, sessionID)
	if err != nil {
		return nil, fail(ctx, span, err, toConnectError(err))
	}
	if err := fn(ctx, sess); err != nil {
		return nil, fail(ctx, span, err, toConnectError(err))
	}
	return connect.NewResponse(&bulletinv1.EditStateResponse{State: stateToWire(sess.State())}), nil
}

// pick runs fn on the open membership editor of a session of the caller.
func (s *BulletinService) pick(
	ctx context.Context,
	method, sessionID string,
	fn func(*bulletin.Session) error,
) (*connect.Response[bulletinv1.PickerResponse], error) {
	tracer := otel.Tracer("repobulletin/grpc")
	ctx, span := tracer.Start(ctx, "BulletinService."+method)
	span.SetAttributes(attribute.String("session_id", sessionID))
	defer span.End()
	sess, err := s.session(ctx, sessionID)
	if err != nil {
		return nil, fail(ctx, span, err, toConnectError(err))
	}
	if err := fn(sess); err != nil {
		return nil, fail(ctx, span, err, toConnectError(err))
	}
	return connect.NewResponse(&bulletinv1.PickerResponse{Picker: pickerToWire(sess.State().Picker)}), nil
}

// GetBulletin returns the persisted bulletin of a user with the repositories
// it references. Referenced repositories missing from the owner's catalog are
// listed as unresolved.
func (s *BulletinService) GetBulletin(
	ctx context.Context,
	req *connect.Request[bulletinv1.GetBulletinRequest],
) (
	*connect.Response[bulletinv1.GetBulletinResponse],
	error,
) {
	tracer := otel.Tracer("repobulletin/grpc")
	ctx, span := tracer.Start(ctx, "BulletinService.GetBulletin")
	span.SetAttributes(attribute.String("user", req.Msg.GetUser()))
	defer span.End()
	if req.Msg.GetUser() == "" {
		return nil, connect.NewError(connect.CodeInvalidArgument, errors.New("user is required"))
	}
	page, err := s.clients.Loader().Load(ctx, req.Msg.GetUser())
	if err != nil {
		return nil, fail(ctx, span, err, upstreamError(err))
	}
	return connect.NewResponse(&bulletinv1.GetBulletinResponse{
		Owner:        identityToWire(page.Owner),
		Bulletin:     bulletin.ToWire(page.Persisted),
		Repositories: referencedToWire(page.Persisted, page.Catalog),
		Unresolved:   bulletin.Unresolved(page.Persisted, page.Catalog),
	}), nil
}

// ExportBulletin renders the persisted bulletin of a user as markdown.
func (s *BulletinService) ExportBulletin(
	ctx context.Context,
	req *connect.Request[bulletinv1.ExportBulletinRequest],
) (
	*connect.Response[bulletinv1.ExportBulletinResponse],
	error,
) {
	tracer := otel.Tracer("repobulletin/grpc")
	ctx, span := tracer.Start(ctx, "BulletinService.ExportBulletin")
	span.SetAttributes(attribute.String("user", req.Msg.GetUser()))
	defer span.End()
	if req.Msg.GetUser() == "" {
		return nil, connect.NewError(connect.CodeInvalidArgument, errors.New("user is required"))
	}
	page, err := s.clients.Loader().Load(ctx, req.Msg.GetUser())
	if err != nil {
		return nil, fail(ctx, span, err, upstreamError(err))
	}
	md := encoding.MarshalMarkdown(page.Owner, page.Persisted, page.Catalog)
	return connect.NewResponse(&bulletinv1.ExportBulletinResponse{Markdown: string(md)}), nil
}

// OpenEditSession loads a user's page and starts editing it. Only the owner
// asking for edit mode may open a session.
func (s *BulletinService) OpenEditSession(
	ctx context.Context,
	req *connect.Request[bulletinv1.OpenEditSessionRequest],
) (
	*connect.Response[bulletinv1.EditStateResponse],
	error,
) {
	tracer := otel.Tracer("repobulletin/grpc")
	ctx, span := tracer.Start(ctx, "BulletinService.OpenEditSession")
	span.SetAttributes(
		attribute.String("user", req.Msg.GetUser()),
		attribute.Bool("edit", req.Msg.GetEdit()),
	)
	defer span.End()
	viewer, err := viewerOf(ctx)
	if err != nil {
		return nil, fail(ctx, span, err, toConnectError(err))
	}
	if !auth.CanEdit(viewer, req.Msg.GetUser(), req.Msg.GetEdit()) {
		err := fmt.Errorf("%w: %s", repobulletin.ErrPermissionDenied, req.Msg.GetUser())
		return nil, fail(ctx, span, err, toConnectError(err))
	}
	page, err := s.clients.Loader().Load(ctx, req.Msg.GetUser())
	if err != nil {
		return nil, fail(ctx, span, err, upstreamError(err))
	}
	if page.Owner.ID != viewer.ID {
		err := fmt.Errorf("%w: %s is not account %d", repobulletin.ErrPermissionDenied, viewer.Login, page.Owner.ID)
		return nil, fail(ctx, span, err, toConnectError(err))
	}
	sess := s.clients.Sessions().Open(*viewer, page, s.clients.Bridge())
	slog.InfoContext(ctx, "edit session started", "session_id", sess.ID(), "user_id", page.Owner.ID, "login", page.Owner.Login)
	return connect.NewResponse(&bulletinv1.EditStateResponse{State: stateToWire(sess.State())}), nil
}

func (s *BulletinService) GetEditState(
	ctx context.Context,
	req *connect.Request[bulletinv1.GetEditStateRequest],
) (*connect.Response[bulletinv1.EditStateResponse], error) {
	return s.edit(ctx, "GetEditState", req.Msg.GetSessionId(), func(context.Context, *bulletin.Session) error {
		return nil
	})
}

func (s *BulletinService) DragStart(
	ctx context.Context,
	req *connect.Request[bulletinv1.DragStartRequest],
) (*connect.Response[bulletinv1.EditStateResponse], error) {
	return s.edit(ctx, "DragStart", req.Msg.GetSessionId(), func(_ context.Context, sess *bulletin.Session) error {
		return sess.DragStart(handleFromWire(req.Msg.GetHandle()))
	})
}

// DragOver hovers the dragged item over a target. A nil target, or one that
// does not resolve, leaves the bulletin unchanged.
func (s *BulletinService) DragOver(
	ctx context.Context,
	req *connect.Request[bulletinv1.DragOverRequest],
) (*connect.Response[bulletinv1.EditStateResponse], error) {
	return s.edit(ctx, "DragOver", req.Msg.GetSessionId(), func(_ context.Context, sess *bulletin.Session) error {
		var target *bulletin.Handle
		if t := req.Msg.GetTarget(); t != nil {
			h := handleFromWire(t)
			target = &h
		}
		_, err := sess.DragOver(target)
		return err
	})
}

func (s *BulletinService) DragEnd(
	ctx context.Context,
	req *connect.Request[bulletinv1.DragEndRequest],
) (*connect.Response[bulletinv1.EditStateResponse], error) {
	return s.edit(ctx, "DragEnd", req.Msg.GetSessionId(), func(_ context.Context, sess *bulletin.Session) error {
		sess.DragEnd()
		return nil
	})
}

func (s *BulletinService) AddSection(
	ctx context.Context,
	req *connect.Request[bulletinv1.AddSectionRequest],
) (*connect.Response[bulletinv1.EditStateResponse], error) {
	return s.edit(ctx, "AddSection", req.Msg.GetSessionId(), func(_ context.Context, sess *bulletin.Session) error {
		_, err := sess.AddSection()
		return err
	})
}

func (s *BulletinService) RenameSection(
	ctx context.Context,
	req *connect.Request[bulletinv1.RenameSectionRequest],
) (*connect.Response[bulletinv1.EditStateResponse], error) {
	return s.edit(ctx, "RenameSection", req.Msg.GetSessionId(), func(_ context.Context, sess *bulletin.Session) error {
		return sess.RenameSection(req.Msg.SectionId, req.Msg.Name)
	})
}

// RemoveSection deletes a section. When the removal needs a confirmation the
// call succeeds with ConfirmationRequired set and the bulletin unchanged.
func (s *BulletinService) RemoveSection(
	ctx context.Context,
	req *connect.Request[bulletinv1.RemoveSectionRequest],
) (
	*connect.Response[bulletinv1.RemoveSectionResponse],
	error,
) {
	tracer := otel.Tracer("repobulletin/grpc")
	ctx, span := tracer.Start(ctx, "BulletinService.RemoveSection")
	span.SetAttributes(
		attribute.String("session_id", req.Msg.GetSessionId()),
		attribute.String("section_id", req.Msg.SectionId),
		attribute.Bool("confirm", req.Msg.Confirm),
	)
	defer span.End()
	sess, err := s.session(ctx, req.Msg.GetSessionId())
	if err != nil {
		return nil, fail(ctx, span, err, toConnectError(err))
	}
	resp := &bulletinv1.RemoveSectionResponse{}
	if err := sess.RemoveSection(req.Msg.SectionId, req.Msg.Confirm); err != nil {
		if !errors.Is(err, bulletin.ErrConfirmationRequired) {
			return nil, fail(ctx, span, err, toConnectError(err))
		}
		resp.ConfirmationRequired = true
	}
	resp.State = stateToWire(sess.State())
	return connect.NewResponse(resp), nil
}

func (s *BulletinService) RemoveRepo(
	ctx context.Context,
	req *connect.Request[bulletinv1.RemoveRepoRequest],
) (*connect.Response[bulletinv1.EditStateResponse], error) {
	return s.edit(ctx, "RemoveRepo", req.Msg.GetSessionId(), func(_ context.Context, sess *bulletin.Session) error {
		return sess.RemoveRepo(req.Msg.SectionId, req.Msg.RefId)
	})
}

func (s *BulletinService) OpenRepoPicker(
	ctx context.Context,
	req *connect.Request[bulletinv1.OpenRepoPickerRequest],
) (*connect.Response[bulletinv1.PickerResponse], error) {
	return s.pick(ctx, "OpenRepoPicker", req.Msg.GetSessionId(), func(sess *bulletin.Session) error {
		return sess.OpenPicker(req.Msg.SectionId)
	})
}

func (s *BulletinService) ToggleRepo(
	ctx context.Context,
	req *connect.Request[bulletinv1.ToggleRepoRequest],
) (*connect.Response[bulletinv1.PickerResponse], error) {
	return s.pick(ctx, "ToggleRepo", req.Msg.GetSessionId(), func(sess *bulletin.Session) error {
		return sess.TogglePicker(req.Msg.RepoId)
	})
}

func (s *BulletinService) SearchRepos(
	ctx context.Context,
	req *connect.Request[bulletinv1.SearchReposRequest],
) (*connect.Response[bulletinv1.PickerResponse], error) {
	return s.pick(ctx, "SearchRepos", req.Msg.GetSessionId(), func(sess *bulletin.Session) error {
		return sess.SearchPicker(req.Msg.Query)
	})
}

func (s *BulletinService) ApplyRepoPicker(
	ctx context.Context,
	req *connect.Request[bulletinv1.ApplyRepoPickerRequest],
) (*connect.Response[bulletinv1.EditStateResponse], error) {
	return s.edit(ctx, "ApplyRepoPicker", req.Msg.GetSessionId(), func(_ context.Context, sess *bulletin.Session) error {
		return sess.ApplyPicker()
	})
}

func (s *BulletinService) CloseRepoPicker(
	ctx context.Context,
	req *connect.Request[bulletinv1.CloseRepoPickerRequest],
) (*connect.Response[bulletinv1.EditStateResponse], error) {
	return s.edit(ctx, "CloseRepoPicker", req.Msg.GetSessionId(), func(_ context.Context, sess *bulletin.Session) error {
		sess.ClosePicker()
		return nil
	})
}

// ImportMarkdown replaces the sections of the working copy with the ones of an
// awesome-list style document, keeping only the owner's repositories.
func (s *BulletinService) ImportMarkdown(
	ctx context.Context,
	req *connect.Request[bulletinv1.ImportMarkdownRequest],
) (*connect.Response[bulletinv1.EditStateResponse], error) {
	return s.edit(ctx, "ImportMarkdown", req.Msg.GetSessionId(), func(ctx context.Context, sess *bulletin.Session) error {
		var opts []encoding.Option
		if req.Msg.StartSection != "" {
			opts = append(opts, encoding.WithStartSection(req.Msg.StartSection))
		}
		if req.Msg.EndSection != "" {
			opts = append(opts, encoding.WithEndSection(req.Msg.EndSection))
		}
		if req.Msg.SubsectionAsCategory {
			opts = append(opts, encoding.WithSubsectionAsCategory())
		}
		doc, err := encoding.UnmarshalMarkdown([]byte(req.Msg.Markdown), sess.State().Catalog, opts...)
		if err != nil {
			return connect.NewError(connect.CodeInvalidArgument, err)
		}
		if len(doc.Sections) == 0 {
			return connect.NewError(connect.CodeInvalidArgument, errNothingImported)
		}
		slog.DebugContext(ctx, "markdown imported", "session_id", sess.ID(), "sections", len(doc.Sections))
		return sess.ReplaceSections(doc)
	})
}

// SaveBulletin persists the working copy and ends the session. A failed save
// keeps the edits and may be retried.
func (s *BulletinService) SaveBulletin(
	ctx context.Context,
	req *connect.Request[bulletinv1.SaveBulletinRequest],
) (*connect.Response[bulletinv1.EditStateResponse], error) {
	return s.edit(ctx, "SaveBulletin", req.Msg.GetSessionId(), func(ctx context.Context, sess *bulletin.Session) error {
		err := sess.Save(ctx)
		if err == nil {
			s.clients.Sessions().Drop(sess.ID())
			return nil
		}
		if codeOf(err) != connect.CodeInternal {
			return err
		}
		return connect.NewError(connect.CodeUnavailable, err)
	})
}

// CancelEdit discards the working copy and ends the session.
func (s *BulletinService) CancelEdit(
	ctx context.Context,
	req *connect.Request[bulletinv1.CancelEditRequest],
) (*connect.Response[bulletinv1.EditStateResponse], error) {
	return s.edit(ctx, "CancelEdit", req.Msg.GetSessionId(), func(_ context.Context, sess *bulletin.Session) error {
		if err := sess.Cancel(); err != nil {
			return err
		}
		s.clients.Sessions().Drop(sess.ID())
		return nil
	})
}

// PutBulletin replaces the caller's bulletin wholesale, bypassing any edit
// session.
func (s *BulletinService) PutBulletin(
	ctx context.Context,
	req *connect.Request[bulletinv1.PutBulletinRequest],
) (
	*connect.Response[bulletinv1.PutBulletinResponse],
	error,
) {
	tracer := otel.Tracer("repobulletin/grpc")
	ctx, span := tracer.Start(ctx, "BulletinService.PutBulletin")
	span.SetAttributes(attribute.Int("sections_len", len(req.Msg.GetBulletin().GetSections())))
	defer span.End()
	viewer, err := viewerOf(ctx)
	if err != nil {
		return nil, fail(ctx, span, err, toConnectError(err))
	}
	if err := bulletin.ValidateWire(req.Msg.GetBulletin(), nil); err != nil {
		return nil, fail(ctx, span, err, toConnectError(err))
	}
	page, err := s.clients.Loader().Load(ctx, viewer.Login)
	if err != nil {
		return nil, fail(ctx, span, err, upstreamError(err))
	}
	if page.Owner.ID != viewer.ID {
		err := fmt.Errorf("%w: %s is not account %d", repobulletin.ErrPermissionDenied, viewer.Login, page.Owner.ID)
		return nil, fail(ctx, span, err, toConnectError(err))
	}
	if err := s.clients.Bridge().Save(ctx, page.Owner, bulletin.FromWire(req.Msg.GetBulletin()), page.Catalog); err != nil {
		cerr := toConnectError(err)
		if connect.CodeOf(cerr) == connect.CodeInternal {
			cerr = connect.NewError(connect.CodeUnavailable, err)
		}
		return nil, fail(ctx, span, err, cerr)
	}
	return connect.NewResponse(&bulletinv1.PutBulletinResponse{}), nil
}

// DeleteAccount removes the caller's account and bulletin and closes their
// edit sessions.
func (s *BulletinService) DeleteAccount(
	ctx context.Context,
	req *connect.Request[bulletinv1.DeleteAccountRequest],
) (
	*connect.Response[bulletinv1.DeleteAccountResponse],
	error,
) {
	tracer := otel.Tracer("repobulletin/grpc")
	ctx, span := tracer.Start(ctx, "BulletinService.DeleteAccount")
	defer span.End()
	viewer, err := viewerOf(ctx)
	if err != nil {
		return nil, fail(ctx, span, err, toConnectError(err))
	}
	span.SetAttributes(attribute.Int64("user_id", viewer.ID))
	owner := bulletin.Identity{ID: viewer.ID, Login: viewer.Login}
	if err := s.clients.Bridge().DeleteAccount(ctx, owner); err != nil {
		return nil, fail(ctx, span, err, upstreamError(err))
	}
	s.clients.Sessions().DropViewer(viewer.ID)
	s.clients.Catalog().Invalidate(viewer.Login)
	return connect.NewResponse(&bulletinv1.DeleteAccountResponse{}), nil
}
