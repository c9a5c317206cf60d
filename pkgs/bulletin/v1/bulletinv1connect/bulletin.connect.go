// Package bulletinv1connect binds the bulletin service to Connect.
package bulletinv1connect

import (
	"context"
	"net/http"
	"strings"

	"connectrpc.com/connect"
	v1 "repobulletin.shikanime.studio/pkgs/bulletin/v1"
)

// BulletinServiceName is the fully-qualified name of the BulletinService service.
const BulletinServiceName = "repobulletin.v1.BulletinService"

// Procedure names of the BulletinService RPCs.
const (
	BulletinServiceGetBulletinProcedure     = "/repobulletin.v1.BulletinService/GetBulletin"
	BulletinServiceExportBulletinProcedure  = "/repobulletin.v1.BulletinService/ExportBulletin"
	BulletinServiceOpenEditSessionProcedure = "/repobulletin.v1.BulletinService/OpenEditSession"
	BulletinServiceGetEditStateProcedure    = "/repobulletin.v1.BulletinService/GetEditState"
	BulletinServiceDragStartProcedure       = "/repobulletin.v1.BulletinService/DragStart"
	BulletinServiceDragOverProcedure        = "/repobulletin.v1.BulletinService/DragOver"
	BulletinServiceDragEndProcedure         = "/repobulletin.v1.BulletinService/DragEnd"
	BulletinServiceAddSectionProcedure      = "/repobulletin.v1.BulletinService/AddSection"
	BulletinServiceRenameSectionProcedure   = "/repobulletin.v1.BulletinService/RenameSection"
	BulletinServiceRemoveSectionProcedure   = "/repobulletin.v1.BulletinService/RemoveSection"
	BulletinServiceRemoveRepoProcedure      = "/repobulletin.v1.BulletinService/RemoveRepo"
	BulletinServiceOpenRepoPickerProcedure  = "/repobulletin.v1.BulletinService/OpenRepoPicker"
	BulletinServiceToggleRepoProcedure      = "/repobulletin.v1.BulletinService/ToggleRepo"
	BulletinServiceSearchReposProcedure     = "/repobulletin.v1.BulletinService/SearchRepos"
	BulletinServiceApplyRepoPickerProcedure = "/repobulletin.v1.BulletinService/ApplyRepoPicker"
	BulletinServiceCloseRepoPickerProcedure = "/repobulletin.v1.BulletinService/CloseRepoPicker"
	BulletinServiceImportMarkdownProcedure  = "/repobulletin.v1.BulletinService/ImportMarkdown"
	BulletinServiceSaveBulletinProcedure    = "/repobulletin.v1.BulletinService/SaveBulletin"
	BulletinServiceCancelEditProcedure      = "/repobulletin.v1.BulletinService/CancelEdit"
	BulletinServicePutBulletinProcedure     = "/repobulletin.v1.BulletinService/PutBulletin"
	BulletinServiceDeleteAccountProcedure   = "/repobulletin.v1.BulletinService/DeleteAccount"
)

// BulletinServiceClient is a client for the repobulletin.v1.BulletinService service.
type BulletinServiceClient interface {
	GetBulletin(context.Context, *connect.Request[v1.GetBulletinRequest]) (*connect.Response[v1.GetBulletinResponse], error)
	ExportBulletin(context.Context, *connect.Request[v1.ExportBulletinRequest]) (*connect.Response[v1.ExportBulletinResponse], error)
	OpenEditSession(context.Context, *connect.Request[v1.OpenEditSessionRequest]) (*connect.Response[v1.EditStateResponse], error)
	GetEditState(context.Context, *connect.Request[v1.GetEditStateRequest]) (*connect.Response[v1.EditStateResponse], error)
	DragStart(context.Context, *connect.Request[v1.DragStartRequest]) (*connect.Response[v1.EditStateResponse], error)
	DragOver(context.Context, *connect.Request[v1.DragOverRequest]) (*connect.Response[v1.EditStateResponse], error)
	DragEnd(context.Context, *connect.Request[v1.DragEndRequest]) (*connect.Response[v1.EditStateResponse], error)
	AddSection(context.Context, *connect.Request[v1.AddSectionRequest]) (*connect.Response[v1.EditStateResponse], error)
	RenameSection(context.Context, *connect.Request[v1.RenameSectionRequest]) (*connect.Response[v1.EditStateResponse], error)
	RemoveSection(context.Context, *connect.Request[v1.RemoveSectionRequest]) (*connect.Response[v1.RemoveSectionResponse], error)
	RemoveRepo(context.Context, *connect.Request[v1.RemoveRepoRequest]) (*connect.Response[v1.EditStateResponse], error)
	OpenRepoPicker(context.Context, *connect.Request[v1.OpenRepoPickerRequest]) (*connect.Response[v1.PickerResponse], error)
	ToggleRepo(context.Context, *connect.Request[v1.ToggleRepoRequest]) (*connect.Response[v1.PickerResponse], error)
	SearchRepos(context.Context, *connect.Request[v1.SearchReposRequest]) (*connect.Response[v1.PickerResponse], error)
	ApplyRepoPicker(context.Context, *connect.Request[v1.ApplyRepoPickerRequest]) (*connect.Response[v1.EditStateResponse], error)
	CloseRepoPicker(context.Context, *connect.Request[v1.CloseRepoPickerRequest]) (*connect.Response[v1.EditStateResponse], error)
	ImportMarkdown(context.Context, *connect.Request[v1.ImportMarkdownRequest]) (*connect.Response[v1.EditStateResponse], error)
	SaveBulletin(context.Context, *connect.Request[v1.SaveBulletinRequest]) (*connect.Response[v1.EditStateResponse], error)
	CancelEdit(context.Context, *connect.Request[v1.CancelEditRequest]) (*connect.Response[v1.EditStateResponse], error)
	PutBulletin(context.Context, *connect.Request[v1.PutBulletinRequest]) (*connect.Response[v1.PutBulletinResponse], error)
	DeleteAccount(context.Context, *connect.Request[v1.DeleteAccountRequest]) (*connect.Response[v1.DeleteAccountResponse], error)
}

// NewBulletinServiceClient constructs a client for the repobulletin.v1.BulletinService service.
// Messages are always sent with the JSON codec.
func NewBulletinServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) BulletinServiceClient {
	baseURL = strings.TrimRight(baseURL, "/")
	opts = append([]connect.ClientOption{connect.WithCodec(Codec{})}, opts...)
	return &bulletinServiceClient{
		getBulletin:     connect.NewClient[v1.GetBulletinRequest, v1.GetBulletinResponse](httpClient, baseURL+BulletinServiceGetBulletinProcedure, opts...),
		exportBulletin:  connect.NewClient[v1.ExportBulletinRequest, v1.ExportBulletinResponse](httpClient, baseURL+BulletinServiceExportBulletinProcedure, opts...),
		openEditSession: connect.NewClient[v1.OpenEditSessionRequest, v1.EditStateResponse](httpClient, baseURL+BulletinServiceOpenEditSessionProcedure, opts...),
		getEditState:    connect.NewClient[v1.GetEditStateRequest, v1.EditStateResponse](httpClient, baseURL+BulletinServiceGetEditStateProcedure, opts...),
		dragStart:       connect.NewClient[v1.DragStartRequest, v1.EditStateResponse](httpClient, baseURL+BulletinServiceDragStartProcedure, opts...),
		dragOver:        connect.NewClient[v1.DragOverRequest, v1.EditStateResponse](httpClient, baseURL+BulletinServiceDragOverProcedure, opts...),
		dragEnd:         connect.NewClient[v1.DragEndRequest, v1.EditStateResponse](httpClient, baseURL+BulletinServiceDragEndProcedure, opts...),
		addSection:      connect.NewClient[v1.AddSectionRequest, v1.EditStateResponse](httpClient, baseURL+BulletinServiceAddSectionProcedure, opts...),
		renameSection:   connect.NewClient[v1.RenameSectionRequest, v1.EditStateResponse](httpClient, baseURL+BulletinServiceRenameSectionProcedure, opts...),
		removeSection:   connect.NewClient[v1.RemoveSectionRequest, v1.RemoveSectionResponse](httpClient, baseURL+BulletinServiceRemoveSectionProcedure, opts...),
		removeRepo:      connect.NewClient[v1.RemoveRepoRequest, v1.EditStateResponse](httpClient, baseURL+BulletinServiceRemoveRepoProcedure, opts...),
		openRepoPicker:  connect.NewClient[v1.OpenRepoPickerRequest, v1.PickerResponse](httpClient, baseURL+BulletinServiceOpenRepoPickerProcedure, opts...),
		toggleRepo:      connect.NewClient[v1.ToggleRepoRequest, v1.PickerResponse](httpClient, baseURL+BulletinServiceToggleRepoProcedure, opts...),
		searchRepos:     connect.NewClient[v1.SearchReposRequest, v1.PickerResponse](httpClient, baseURL+BulletinServiceSearchReposProcedure, opts...),
		applyRepoPicker: connect.NewClient[v1.ApplyRepoPickerRequest, v1.EditStateResponse](httpClient, baseURL+BulletinServiceApplyRepoPickerProcedure, opts...),
		closeRepoPicker: connect.NewClient[v1.CloseRepoPickerRequest, v1.EditStateResponse](httpClient, baseURL+BulletinServiceCloseRepoPickerProcedure, opts...),
		importMarkdown:  connect.NewClient[v1.ImportMarkdownRequest, v1.EditStateResponse](httpClient, baseURL+BulletinServiceImportMarkdownProcedure, opts...),
		saveBulletin:    connect.NewClient[v1.SaveBulletinRequest, v1.EditStateResponse](httpClient, baseURL+BulletinServiceSaveBulletinProcedure, opts...),
		cancelEdit:      connect.NewClient[v1.CancelEditRequest, v1.EditStateResponse](httpClient, baseURL+BulletinServiceCancelEditProcedure, opts...),
		putBulletin:     connect.NewClient[v1.PutBulletinRequest, v1.PutBulletinResponse](httpClient, baseURL+BulletinServicePutBulletinProcedure, opts...),
		deleteAccount:   connect.NewClient[v1.DeleteAccountRequest, v1.DeleteAccountResponse](httpClient, baseURL+BulletinServiceDeleteAccountProcedure, opts...),
	}
}

type bulletinServiceClient struct {
	getBulletin     *connect.Client[v1.GetBulletinRequest, v1.GetBulletinResponse]
	exportBulletin  *connect.Client[v1.ExportBulletinRequest, v1.ExportBulletinResponse]
	openEditSession *connect.Client[v1.OpenEditSessionRequest, v1.EditStateResponse]
	getEditState    *connect.Client[v1.GetEditStateRequest, v1.EditStateResponse]
	dragStart       *connect.Client[v1.DragStartRequest, v1.EditStateResponse]
	dragOver        *connect.Client[v1.DragOverRequest, v1.EditStateResponse]
	dragEnd         *connect.Client[v1.DragEndRequest, v1.EditStateResponse]
	addSection      *connect.Client[v1.AddSectionRequest, v1.EditStateResponse]
	renameSection   *connect.Client[v1.RenameSectionRequest, v1.EditStateResponse]
	removeSection   *connect.Client[v1.RemoveSectionRequest, v1.RemoveSectionResponse]
	removeRepo      *connect.Client[v1.RemoveRepoRequest, v1.EditStateResponse]
	openRepoPicker  *connect.Client[v1.OpenRepoPickerRequest, v1.PickerResponse]
	toggleRepo      *connect.Client[v1.ToggleRepoRequest, v1.PickerResponse]
	searchRepos     *connect.Client[v1.SearchReposRequest, v1.PickerResponse]
	applyRepoPicker *connect.Client[v1.ApplyRepoPickerRequest, v1.EditStateResponse]
	closeRepoPicker *connect.Client[v1.CloseRepoPickerRequest, v1.EditStateResponse]
	importMarkdown  *connect.Client[v1.ImportMarkdownRequest, v1.EditStateResponse]
	saveBulletin    *connect.Client[v1.SaveBulletinRequest, v1.EditStateResponse]
	cancelEdit      *connect.Client[v1.CancelEditRequest, v1.EditStateResponse]
	putBulletin     *connect.Client[v1.PutBulletinRequest, v1.PutBulletinResponse]
	deleteAccount   *connect.Client[v1.DeleteAccountRequest, v1.DeleteAccountResponse]
}

func (c *bulletinServiceClient) GetBulletin(ctx context.Context, req *connect.Request[v1.GetBulletinRequest]) (*connect.Response[v1.GetBulletinResponse], error) {
	return c.getBulletin.CallUnary(ctx, req)
}

func (c *bulletinServiceClient) ExportBulletin(ctx context.Context, req *connect.Request[v1.ExportBulletinRequest]) (*connect.Response[v1.ExportBulletinResponse], error) {
	return c.exportBulletin.CallUnary(ctx, req)
}

func (c *bulletinServiceClient) OpenEditSession(ctx context.Context, req *connect.Request[v1.OpenEditSessionRequest]) (*connect.Response[v1.EditStateResponse], error) {
	return c.openEditSession.CallUnary(ctx, req)
}

func (c *bulletinServiceClient) GetEditState(ctx context.Context, req *connect.Request[v1.GetEditStateRequest]) (*connect.Response[v1.EditStateResponse], error) {
	return c.getEditState.CallUnary(ctx, req)
}

func (c *bulletinServiceClient) DragStart(ctx context.Context, req *connect.Request[v1.DragStartRequest]) (*connect.Response[v1.EditStateResponse], error) {
	return c.dragStart.CallUnary(ctx, req)
}

func (c *bulletinServiceClient) DragOver(ctx context.Context, req *connect.Request[v1.DragOverRequest]) (*connect.Response[v1.EditStateResponse], error) {
	return c.dragOver.CallUnary(ctx, req)
}

func (c *bulletinServiceClient) DragEnd(ctx context.Context, req *connect.Request[v1.DragEndRequest]) (*connect.Response[v1.EditStateResponse], error) {
	return c.dragEnd.CallUnary(ctx, req)
}

func (c *bulletinServiceClient) AddSection(ctx context.Context, req *connect.Request[v1.AddSectionRequest]) (*connect.Response[v1.EditStateResponse], error) {
	return c.addSection.CallUnary(ctx, req)
}

func (c *bulletinServiceClient) RenameSection(ctx context.Context, req *connect.Request[v1.RenameSectionRequest]) (*connect.Response[v1.EditStateResponse], error) {
	return c.renameSection.CallUnary(ctx, req)
}

func (c *bulletinServiceClient) RemoveSection(ctx context.Context, req *connect.Request[v1.RemoveSectionRequest]) (*connect.Response[v1.RemoveSectionResponse], error) {
	return c.removeSection.CallUnary(ctx, req)
}

func (c *bulletinServiceClient) RemoveRepo(ctx context.Context, req *connect.Request[v1.RemoveRepoRequest]) (*connect.Response[v1.EditStateResponse], error) {
	return c.removeRepo.CallUnary(ctx, req)
}

func (c *bulletinServiceClient) OpenRepoPicker(ctx context.Context, req *connect.Request[v1.OpenRepoPickerRequest]) (*connect.Response[v1.PickerResponse], error) {
	return c.openRepoPicker.CallUnary(ctx, req)
}

func (c *bulletinServiceClient) ToggleRepo(ctx context.Context, req *connect.Request[v1.ToggleRepoRequest]) (*connect.Response[v1.PickerResponse], error) {
	return c.toggleRepo.CallUnary(ctx, req)
}

func (c *bulletinServiceClient) SearchRepos(ctx context.Context, req *connect.Request[v1.SearchReposRequest]) (*connect.Response[v1.PickerResponse], error) {
	return c.searchRepos.CallUnary(ctx, req)
}

func (c *bulletinServiceClient) ApplyRepoPicker(ctx context.Context, req *connect.Request[v1.ApplyRepoPickerRequest]) (*connect.Response[v1.EditStateResponse], error) {
	return c.applyRepoPicker.CallUnary(ctx, req)
}

func (c *bulletinServiceClient) CloseRepoPicker(ctx context.Context, req *connect.Request[v1.CloseRepoPickerRequest]) (*connect.Response[v1.EditStateResponse], error) {
	return c.closeRepoPicker.CallUnary(ctx, req)
}

func (c *bulletinServiceClient) ImportMarkdown(ctx context.Context, req *connect.Request[v1.ImportMarkdownRequest]) (*connect.Response[v1.EditStateResponse], error) {
	return c.importMarkdown.CallUnary(ctx, req)
}

func (c *bulletinServiceClient) SaveBulletin(ctx context.Context, req *connect.Request[v1.SaveBulletinRequest]) (*connect.Response[v1.EditStateResponse], error) {
	return c.saveBulletin.CallUnary(ctx, req)
}

func (c *bulletinServiceClient) CancelEdit(ctx context.Context, req *connect.Request[v1.CancelEditRequest]) (*connect.Response[v1.EditStateResponse], error) {
	return c.cancelEdit.CallUnary(ctx, req)
}

func (c *bulletinServiceClient) PutBulletin(ctx context.Context, req *connect.Request[v1.PutBulletinRequest]) (*connect.Response[v1.PutBulletinResponse], error) {
	return c.putBulletin.CallUnary(ctx, req)
}

func (c *bulletinServiceClient) DeleteAccount(ctx context.Context, req *connect.Request[v1.DeleteAccountRequest]) (*connect.Response[v1.DeleteAccountResponse], error) {
	return c.deleteAccount.CallUnary(ctx, req)
}

// BulletinServiceHandler is an implementation of the repobulletin.v1.BulletinService service.
type BulletinServiceHandler interface {
	GetBulletin(context.Context, *connect.Request[v1.GetBulletinRequest]) (*connect.Response[v1.GetBulletinResponse], error)
	ExportBulletin(context.Context, *connect.Request[v1.ExportBulletinRequest]) (*connect.Response[v1.ExportBulletinResponse], error)
	OpenEditSession(context.Context, *connect.Request[v1.OpenEditSessionRequest]) (*connect.Response[v1.EditStateResponse], error)
	GetEditState(context.Context, *connect.Request[v1.GetEditStateRequest]) (*connect.Response[v1.EditStateResponse], error)
	DragStart(context.Context, *connect.Request[v1.DragStartRequest]) (*connect.Response[v1.EditStateResponse], error)
	DragOver(context.Context, *connect.Request[v1.DragOverRequest]) (*connect.Response[v1.EditStateResponse], error)
	DragEnd(context.Context, *connect.Request[v1.DragEndRequest]) (*connect.Response[v1.EditStateResponse], error)
	AddSection(context.Context, *connect.Request[v1.AddSectionRequest]) (*connect.Response[v1.EditStateResponse], error)
	RenameSection(context.Context, *connect.Request[v1.RenameSectionRequest]) (*connect.Response[v1.EditStateResponse], error)
	RemoveSection(context.Context, *connect.Request[v1.RemoveSectionRequest]) (*connect.Response[v1.RemoveSectionResponse], error)
	RemoveRepo(context.Context, *connect.Request[v1.RemoveRepoRequest]) (*connect.Response[v1.EditStateResponse], error)
	OpenRepoPicker(context.Context, *connect.Request[v1.OpenRepoPickerRequest]) (*connect.Response[v1.PickerResponse], error)
	ToggleRepo(context.Context, *connect.Request[v1.ToggleRepoRequest]) (*connect.Response[v1.PickerResponse], error)
	SearchRepos(context.Context, *connect.Request[v1.SearchReposRequest]) (*connect.Response[v1.PickerResponse], error)
	ApplyRepoPicker(context.Context, *connect.Request[v1.ApplyRepoPickerRequest]) (*connect.Response[v1.EditStateResponse], error)
	CloseRepoPicker(context.Context, *connect.Request[v1.CloseRepoPickerRequest]) (*connect.Response[v1.EditStateResponse], error)
	ImportMarkdown(context.Context, *connect.Request[v1.ImportMarkdownRequest]) (*connect.Response[v1.EditStateResponse], error)
	SaveBulletin(context.Context, *connect.Request[v1.SaveBulletinRequest]) (*connect.Response[v1.EditStateResponse], error)
	CancelEdit(context.Context, *connect.Request[v1.CancelEditRequest]) (*connect.Response[v1.EditStateResponse], error)
	PutBulletin(context.Context, *connect.Request[v1.PutBulletinRequest]) (*connect.Response[v1.PutBulletinResponse], error)
	DeleteAccount(context.Context, *connect.Request[v1.DeleteAccountRequest]) (*connect.Response[v1.DeleteAccountResponse], error)
}

// NewBulletinServiceHandler builds an HTTP handler from the service implementation. It returns the
// path on which to mount the handler and the handler itself.
func NewBulletinServiceHandler(svc BulletinServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = append([]connect.HandlerOption{connect.WithCodec(Codec{})}, opts...)
	handlers := map[string]http.Handler{
		BulletinServiceGetBulletinProcedure:     connect.NewUnaryHandler(BulletinServiceGetBulletinProcedure, svc.GetBulletin, opts...),
		BulletinServiceExportBulletinProcedure:  connect.NewUnaryHandler(BulletinServiceExportBulletinProcedure, svc.ExportBulletin, opts...),
		BulletinServiceOpenEditSessionProcedure: connect.NewUnaryHandler(BulletinServiceOpenEditSessionProcedure, svc.OpenEditSession, opts...),
		BulletinServiceGetEditStateProcedure:    connect.NewUnaryHandler(BulletinServiceGetEditStateProcedure, svc.GetEditState, opts...),
		BulletinServiceDragStartProcedure:       connect.NewUnaryHandler(BulletinServiceDragStartProcedure, svc.DragStart, opts...),
		BulletinServiceDragOverProcedure:        connect.NewUnaryHandler(BulletinServiceDragOverProcedure, svc.DragOver, opts...),
		BulletinServiceDragEndProcedure:         connect.NewUnaryHandler(BulletinServiceDragEndProcedure, svc.DragEnd, opts...),
		BulletinServiceAddSectionProcedure:      connect.NewUnaryHandler(BulletinServiceAddSectionProcedure, svc.AddSection, opts...),
		BulletinServiceRenameSectionProcedure:   connect.NewUnaryHandler(BulletinServiceRenameSectionProcedure, svc.RenameSection, opts...),
		BulletinServiceRemoveSectionProcedure:   connect.NewUnaryHandler(BulletinServiceRemoveSectionProcedure, svc.RemoveSection, opts...),
		BulletinServiceRemoveRepoProcedure:      connect.NewUnaryHandler(BulletinServiceRemoveRepoProcedure, svc.RemoveRepo, opts...),
		BulletinServiceOpenRepoPickerProcedure:  connect.NewUnaryHandler(BulletinServiceOpenRepoPickerProcedure, svc.OpenRepoPicker, opts...),
		BulletinServiceToggleRepoProcedure:      connect.NewUnaryHandler(BulletinServiceToggleRepoProcedure, svc.ToggleRepo, opts...),
		BulletinServiceSearchReposProcedure:     connect.NewUnaryHandler(BulletinServiceSearchReposProcedure, svc.SearchRepos, opts...),
		BulletinServiceApplyRepoPickerProcedure: connect.NewUnaryHandler(BulletinServiceApplyRepoPickerProcedure, svc.ApplyRepoPicker, opts...),
		BulletinServiceCloseRepoPickerProcedure: connect.NewUnaryHandler(BulletinServiceCloseRepoPickerProcedure, svc.CloseRepoPicker, opts...),
		BulletinServiceImportMarkdownProcedure:  connect.NewUnaryHandler(BulletinServiceImportMarkdownProcedure, svc.ImportMarkdown, opts...),
		BulletinServiceSaveBulletinProcedure:    connect.NewUnaryHandler(BulletinServiceSaveBulletinProcedure, svc.SaveBulletin, opts...),
		BulletinServiceCancelEditProcedure:      connect.NewUnaryHandler(BulletinServiceCancelEditProcedure, svc.CancelEdit, opts...),
		BulletinServicePutBulletinProcedure:     connect.NewUnaryHandler(BulletinServicePutBulletinProcedure, svc.PutBulletin, opts...),
		BulletinServiceDeleteAccountProcedure:   connect.NewUnaryHandler(BulletinServiceDeleteAccountProcedure, svc.DeleteAccount, opts...),
	}
	return "/repobulletin.v1.BulletinService/", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if h, ok := handlers[r.URL.Path]; ok {
			h.ServeHTTP(w, r)
			return
		}
		http.NotFound(w, r)
	})
}

// UnimplementedBulletinServiceHandler returns CodeUnimplemented from all methods.
type UnimplementedBulletinServiceHandler struct{}

func (UnimplementedBulletinServiceHandler) GetBulletin(context.Context, *connect.Request[v1.GetBulletinRequest]) (*connect.Response[v1.GetBulletinResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errUnimplemented("GetBulletin"))
}

func (UnimplementedBulletinServiceHandler) ExportBulletin(context.Context, *connect.Request[v1.ExportBulletinRequest]) (*connect.Response[v1.ExportBulletinResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errUnimplemented("ExportBulletin"))
}

func (UnimplementedBulletinServiceHandler) OpenEditSession(context.Context, *connect.Request[v1.OpenEditSessionRequest]) (*connect.Response[v1.EditStateResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errUnimplemented("OpenEditSession"))
}

func (UnimplementedBulletinServiceHandler) GetEditState(context.Context, *connect.Request[v1.GetEditStateRequest]) (*connect.Response[v1.EditStateResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errUnimplemented("GetEditState"))
}

func (UnimplementedBulletinServiceHandler) DragStart(context.Context, *connect.Request[v1.DragStartRequest]) (*connect.Response[v1.EditStateResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errUnimplemented("DragStart"))
}

func (UnimplementedBulletinServiceHandler) DragOver(context.Context, *connect.Request[v1.DragOverRequest]) (*connect.Response[v1.EditStateResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errUnimplemented("DragOver"))
}

func (UnimplementedBulletinServiceHandler) DragEnd(context.Context, *connect.Request[v1.DragEndRequest]) (*connect.Response[v1.EditStateResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errUnimplemented("DragEnd"))
}

func (UnimplementedBulletinServiceHandler) AddSection(context.Context, *connect.Request[v1.AddSectionRequest]) (*connect.Response[v1.EditStateResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errUnimplemented("AddSection"))
}

func (UnimplementedBulletinServiceHandler) RenameSection(context.Context, *connect.Request[v1.RenameSectionRequest]) (*connect.Response[v1.EditStateResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errUnimplemented("RenameSection"))
}

func (UnimplementedBulletinServiceHandler) RemoveSection(context.Context, *connect.Request[v1.RemoveSectionRequest]) (*connect.Response[v1.RemoveSectionResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errUnimplemented("RemoveSection"))
}

func (UnimplementedBulletinServiceHandler) RemoveRepo(context.Context, *connect.Request[v1.RemoveRepoRequest]) (*connect.Response[v1.EditStateResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errUnimplemented("RemoveRepo"))
}

func (UnimplementedBulletinServiceHandler) OpenRepoPicker(context.Context, *connect.Request[v1.OpenRepoPickerRequest]) (*connect.Response[v1.PickerResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errUnimplemented("OpenRepoPicker"))
}

func (UnimplementedBulletinServiceHandler) ToggleRepo(context.Context, *connect.Request[v1.ToggleRepoRequest]) (*connect.Response[v1.PickerResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errUnimplemented("ToggleRepo"))
}

func (UnimplementedBulletinServiceHandler) SearchRepos(context.Context, *connect.Request[v1.SearchReposRequest]) (*connect.Response[v1.PickerResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errUnimplemented("SearchRepos"))
}

func (UnimplementedBulletinServiceHandler) ApplyRepoPicker(context.Context, *connect.Request[v1.ApplyRepoPickerRequest]) (*connect.Response[v1.EditStateResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errUnimplemented("ApplyRepoPicker"))
}

func (UnimplementedBulletinServiceHandler) CloseRepoPicker(context.Context, *connect.Request[v1.CloseRepoPickerRequest]) (*connect.Response[v1.EditStateResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errUnimplemented("CloseRepoPicker"))
}

func (UnimplementedBulletinServiceHandler) ImportMarkdown(context.Context, *connect.Request[v1.ImportMarkdownRequest]) (*connect.Response[v1.EditStateResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errUnimplemented("ImportMarkdown"))
}

func (UnimplementedBulletinServiceHandler) SaveBulletin(context.Context, *connect.Request[v1.SaveBulletinRequest]) (*connect.Response[v1.EditStateResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errUnimplemented("SaveBulletin"))
}

func (UnimplementedBulletinServiceHandler) CancelEdit(context.Context, *connect.Request[v1.CancelEditRequest]) (*connect.Response[v1.EditStateResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errUnimplemented("CancelEdit"))
}

func (UnimplementedBulletinServiceHandler) PutBulletin(context.Context, *connect.Request[v1.PutBulletinRequest]) (*connect.Response[v1.PutBulletinResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errUnimplemented("PutBulletin"))
}

func (UnimplementedBulletinServiceHandler) DeleteAccount(context.Context, *connect.Request[v1.DeleteAccountRequest]) (*connect.Response[v1.DeleteAccountResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errUnimplemented("DeleteAccount"))
}
