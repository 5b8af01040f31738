package handler

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"intake/internal/analysis"
	app "intake/internal/application/models"
	"intake/internal/application/paths"
	"intake/internal/wizard/models"
	dErrors "intake/pkg/domain-errors"
	"intake/pkg/platform/httputil"
	"intake/pkg/requestcontext"
)

// Service defines the wizard operations exposed over HTTP.
type Service interface {
	Start(ctx context.Context) (*models.SessionView, error)
	Get(ctx context.Context, id uuid.UUID) (*models.SessionView, error)
	Merge(ctx context.Context, id uuid.UUID, section app.Section) (*models.SessionView, error)
	UpdateField(ctx context.Context, id uuid.UUID, path string, value any) (*models.SessionView, error)
	AddChild(ctx context.Context, id uuid.UUID) (*app.Child, error)
	UpdateChild(ctx context.Context, id uuid.UUID, childID, field string, value any) error
	RemoveChild(ctx context.Context, id uuid.UUID, childID string) error
	AddPreviousAddress(ctx context.Context, id uuid.UUID) (*app.PreviousAddress, error)
	UpdatePreviousAddress(ctx context.Context, id uuid.UUID, addressID, field string, value any) error
	RemovePreviousAddress(ctx context.Context, id uuid.UUID, addressID string) error
	StepView(ctx context.Context, id uuid.UUID, step app.Step) (*models.StepView, error)
	Submit(ctx context.Context, id uuid.UUID, step app.Step) (*models.SubmitResult, error)
	Analyze(ctx context.Context, id uuid.UUID, doc analysis.Document) (*models.AnalysisResult, error)
}

// Handler serves the wizard session API.
type Handler struct {
	wizard         Service
	logger         *slog.Logger
	maxUploadBytes int64
}

// New creates a wizard Handler. maxUploadBytes bounds document uploads.
func New(wizard Service, logger *slog.Logger, maxUploadBytes int64) *Handler {
	return &Handler{wizard: wizard, logger: logger, maxUploadBytes: maxUploadBytes}
}

// Register registers the wizard routes with the chi router.
func (h *Handler) Register(r chi.Router) {
	r.Get("/fields", h.handleListFields)
	r.Route("/sessions", func(r chi.Router) {
		r.Post("/", h.handleStart)
		r.Route("/{sessionID}", func(r chi.Router) {
			r.Get("/", h.handleGet)
			r.Patch("/record", h.handleMerge)
			r.Put("/fields/{path}", h.handleUpdateField)

			r.Post("/children", h.handleAddChild)
			r.Patch("/children/{childID}", h.handleUpdateChild)
			r.Delete("/children/{childID}", h.handleRemoveChild)

			r.Post("/previous-addresses", h.handleAddPreviousAddress)
			r.Patch("/previous-addresses/{addressID}", h.handleUpdatePreviousAddress)
			r.Delete("/previous-addresses/{addressID}", h.handleRemovePreviousAddress)

			r.Get("/steps/{step}", h.handleStepView)
			r.Post("/steps/{step}/submit", h.handleSubmit)
			r.Post("/documents/{kind}/analyze", h.handleAnalyze)
		})
	})
}

// handleListFields lists every dotted path accepted by PUT .../fields/{path}.
func (h *Handler) handleListFields(w http.ResponseWriter, _ *http.Request) {
	httputil.WriteJSON(w, http.StatusOK, FieldsResponse{Paths: paths.All()})
}

func (h *Handler) handleStart(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	view, err := h.wizard.Start(ctx)
	if err != nil {
		h.writeError(ctx, w, err, "failed to start session")
		return
	}
	httputil.WriteJSON(w, http.StatusCreated, toSessionResponse(view))
}

func (h *Handler) handleGet(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id, ok := h.sessionID(w, r)
	if !ok {
		return
	}
	view, err := h.wizard.Get(ctx, id)
	if err != nil {
		h.writeError(ctx, w, err, "failed to load session")
		return
	}
	httputil.WriteJSON(w, http.StatusOK, toSessionResponse(view))
}

func (h *Handler) handleMerge(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id, ok := h.sessionID(w, r)
	if !ok {
		return
	}
	req, ok := httputil.DecodeAndPrepare[MergeRequest](w, r, h.logger, ctx, requestcontext.RequestID(ctx))
	if !ok {
		return
	}
	view, err := h.wizard.Merge(ctx, id, req.Section)
	if err != nil {
		h.writeError(ctx, w, err, "failed to merge sections")
		return
	}
	httputil.WriteJSON(w, http.StatusOK, toSessionResponse(view))
}

func (h *Handler) handleUpdateField(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id, ok := h.sessionID(w, r)
	if !ok {
		return
	}
	req, ok := httputil.DecodeAndPrepare[UpdateFieldRequest](w, r, h.logger, ctx, requestcontext.RequestID(ctx))
	if !ok {
		return
	}
	value, err := decodeValue(req.Value)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	view, err := h.wizard.UpdateField(ctx, id, chi.URLParam(r, "path"), value)
	if err != nil {
		h.writeError(ctx, w, err, "failed to update field")
		return
	}
	httputil.WriteJSON(w, http.StatusOK, toSessionResponse(view))
}

func (h *Handler) handleAddChild(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id, ok := h.sessionID(w, r)
	if !ok {
		return
	}
	child, err := h.wizard.AddChild(ctx, id)
	if err != nil {
		h.writeError(ctx, w, err, "failed to add child")
		return
	}
	httputil.WriteJSON(w, http.StatusCreated, child)
}

func (h *Handler) handleUpdateChild(w http.ResponseWriter, r *http.Request) {
	h.updateListEntry(w, r, "childID", h.wizard.UpdateChild)
}

func (h *Handler) handleRemoveChild(w http.ResponseWriter, r *http.Request) {
	h.removeListEntry(w, r, "childID", h.wizard.RemoveChild)
}

func (h *Handler) handleAddPreviousAddress(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id, ok := h.sessionID(w, r)
	if !ok {
		return
	}
	address, err := h.wizard.AddPreviousAddress(ctx, id)
	if err != nil {
		h.writeError(ctx, w, err, "failed to add previous address")
		return
	}
	httputil.WriteJSON(w, http.StatusCreated, address)
}

func (h *Handler) handleUpdatePreviousAddress(w http.ResponseWriter, r *http.Request) {
	h.updateListEntry(w, r, "addressID", h.wizard.UpdatePreviousAddress)
}

func (h *Handler) handleRemovePreviousAddress(w http.ResponseWriter, r *http.Request) {
	h.removeListEntry(w, r, "addressID", h.wizard.RemovePreviousAddress)
}

type updateEntryFunc func(ctx context.Context, id uuid.UUID, entryID, field string, value any) error

type removeEntryFunc func(ctx context.Context, id uuid.UUID, entryID string) error

func (h *Handler) updateListEntry(w http.ResponseWriter, r *http.Request, param string, update updateEntryFunc) {
	ctx := r.Context()
	id, ok := h.sessionID(w, r)
	if !ok {
		return
	}
	req, ok := httputil.DecodeAndPrepare[ListFieldRequest](w, r, h.logger, ctx, requestcontext.RequestID(ctx))
	if !ok {
		return
	}
	value, err := decodeValue(req.Value)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	if err := update(ctx, id, chi.URLParam(r, param), req.Field, value); err != nil {
		h.writeError(ctx, w, err, "failed to update list entry")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) removeListEntry(w http.ResponseWriter, r *http.Request, param string, remove removeEntryFunc) {
	ctx := r.Context()
	id, ok := h.sessionID(w, r)
	if !ok {
		return
	}
	if err := remove(ctx, id, chi.URLParam(r, param)); err != nil {
		h.writeError(ctx, w, err, "failed to remove list entry")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) handleStepView(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id, ok := h.sessionID(w, r)
	if !ok {
		return
	}
	step, ok := h.step(w, r)
	if !ok {
		return
	}
	view, err := h.wizard.StepView(ctx, id, step)
	if err != nil {
		h.writeError(ctx, w, err, "failed to load step")
		return
	}
	httputil.WriteJSON(w, http.StatusOK, toStepResponse(view))
}

// handleSubmit answers 200 when the step advanced and 422 with field
// messages when it did not.
func (h *Handler) handleSubmit(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id, ok := h.sessionID(w, r)
	if !ok {
		return
	}
	step, ok := h.step(w, r)
	if !ok {
		return
	}
	res, err := h.wizard.Submit(ctx, id, step)
	if err != nil {
		h.writeError(ctx, w, err, "failed to submit step")
		return
	}
	status := http.StatusOK
	if !res.Advanced {
		status = http.StatusUnprocessableEntity
	}
	httputil.WriteJSON(w, status, toSubmitResponse(res))
}

func (h *Handler) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)
	id, ok := h.sessionID(w, r)
	if !ok {
		return
	}
	kind, err := analysis.ParseDocumentKind(chi.URLParam(r, "kind"))
	if err != nil {
		httputil.WriteError(w, dErrors.Wrap(err, dErrors.CodeBadRequest, "unknown document kind"))
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadBytes)
	if err := r.ParseMultipartForm(h.maxUploadBytes); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			httputil.WriteError(w, dErrors.New(dErrors.CodePayloadTooLarge, "document is too large"))
			return
		}
		h.logger.WarnContext(ctx, "invalid document upload",
			"request_id", requestID,
			"error", err,
		)
		httputil.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "expected a multipart upload with a file field"))
		return
	}
	file, header, err := r.FormFile("file")
	if err != nil {
		httputil.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "file is required"))
		return
	}
	defer file.Close()
	data, err := io.ReadAll(file)
	if err != nil {
		h.writeError(ctx, w, dErrors.Wrap(err, dErrors.CodeInternal, "failed to read upload"), "failed to read upload")
		return
	}

	res, err := h.wizard.Analyze(ctx, id, analysis.Document{
		Kind:        kind,
		Filename:    header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Data:        data,
	})
	if err != nil {
		h.writeError(ctx, w, err, "failed to analyze document")
		return
	}
	httputil.WriteJSON(w, http.StatusOK, AnalysisResponse{
		Kind:     res.Kind,
		Applied:  res.Applied,
		Advisory: res.Advisory,
	})
}

func (h *Handler) sessionID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "sessionID"))
	if err != nil {
		httputil.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "invalid session id"))
		return uuid.Nil, false
	}
	return id, true
}

func (h *Handler) step(w http.ResponseWriter, r *http.Request) (app.Step, bool) {
	step, err := app.ParseStep(chi.URLParam(r, "step"))
	if err != nil {
		httputil.WriteError(w, dErrors.Wrap(err, dErrors.CodeBadRequest, "unknown step"))
		return "", false
	}
	return step, true
}

// writeError logs at a level matching the error class and writes the
// envelope.
func (h *Handler) writeError(ctx context.Context, w http.ResponseWriter, err error, msg string) {
	if dErrors.HasCode(err, dErrors.CodeInternal) || !isDomainError(err) {
		h.logger.ErrorContext(ctx, msg,
			"request_id", requestcontext.RequestID(ctx),
			"error", err,
		)
	} else {
		h.logger.WarnContext(ctx, msg,
			"request_id", requestcontext.RequestID(ctx),
			"error", err,
		)
	}
	httputil.WriteError(w, err)
}

func isDomainError(err error) bool {
	var de *dErrors.Error
	return errors.As(err, &de)
}
