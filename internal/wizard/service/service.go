package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"intake/internal/analysis"
	app "intake/internal/application/models"
	"intake/internal/application/paths"
	"intake/internal/application/validation"
	"intake/internal/application/visibility"
	"intake/internal/wizard"
	"intake/internal/wizard/metrics"
	"intake/internal/wizard/models"
	"intake/internal/wizard/session"
	dErrors "intake/pkg/domain-errors"
	"intake/pkg/platform/sentinel"
	"intake/pkg/requestcontext"
)

type SessionStore interface {
	Save(ctx context.Context, s *session.Session) error
	Find(ctx context.Context, id uuid.UUID) (*session.Session, error)
}

// Service orchestrates wizard sessions: record edits, step submission and
// document analysis.
type Service struct {
	sessions  SessionStore
	validator *validation.Validator
	analyzer  analysis.Analyzer
	logger    *slog.Logger
	metrics   *metrics.Metrics
	tracer    trace.Tracer
}

type Option func(s *Service)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Service) {
		s.metrics = m
	}
}

func WithTracer(t trace.Tracer) Option {
	return func(s *Service) {
		s.tracer = t
	}
}

// New constructs a Service. Spans go to the global tracer provider unless
// WithTracer is given.
func New(sessions SessionStore, analyzer analysis.Analyzer, opts ...Option) *Service {
	s := &Service{
		sessions:  sessions,
		validator: validation.New(),
		analyzer:  analyzer,
		logger:    slog.Default(),
		tracer:    otel.Tracer("intake/wizard"),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Start creates a session positioned at the first step.
func (s *Service) Start(ctx context.Context) (*models.SessionView, error) {
	ctx, span := s.tracer.Start(ctx, "wizard.Start")
	defer span.End()

	sess := session.New(requestcontext.Now(ctx), s.validator)
	if err := s.sessions.Save(ctx, sess); err != nil {
		return nil, s.fail(span, dErrors.Wrap(err, dErrors.CodeInternal, "failed to create session"))
	}
	span.SetAttributes(attribute.String("session_id", sess.ID.String()))
	s.logger.InfoContext(ctx, "wizard session started",
		"request_id", requestcontext.RequestID(ctx),
		"session_id", sess.ID,
	)
	if s.metrics != nil {
		s.metrics.IncrementSessionsStarted()
		sess.Wizard.Store.Subscribe(s.metrics.ObserveRecordWrite)
	}
	return view(sess), nil
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*models.SessionView, error) {
	sess, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}
	return view(sess), nil
}

// Merge replaces the top-level keys present in section.
func (s *Service) Merge(ctx context.Context, id uuid.UUID, section app.Section) (*models.SessionView, error) {
	ctx, span := s.tracer.Start(ctx, "wizard.Merge", trace.WithAttributes(
		attribute.StringSlice("keys", section.Keys()),
	))
	defer span.End()

	sess, err := s.find(ctx, id)
	if err != nil {
		return nil, s.fail(span, err)
	}
	sess.Wizard.Store.MergeSection(section)
	return view(sess), nil
}

// UpdateField writes one leaf addressed by a dotted path.
func (s *Service) UpdateField(ctx context.Context, id uuid.UUID, path string, value any) (*models.SessionView, error) {
	ctx, span := s.tracer.Start(ctx, "wizard.UpdateField", trace.WithAttributes(
		attribute.String("path", path),
	))
	defer span.End()

	sess, err := s.find(ctx, id)
	if err != nil {
		return nil, s.fail(span, err)
	}
	if err := sess.Wizard.Store.UpdateAtPath(path, value); err != nil {
		return nil, s.fail(span, translateWriteError(err))
	}
	return view(sess), nil
}

// StepView reports the sections a step currently shows.
func (s *Service) StepView(ctx context.Context, id uuid.UUID, step app.Step) (*models.StepView, error) {
	sess, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}
	record := sess.Wizard.Store.Snapshot()
	sv := &models.StepView{
		Step:    step,
		Route:   step.Route(),
		Current: sess.Wizard.Navigator.Current() == step,
		Visible: visibility.ForStep(step, &record),
	}
	if step == app.StepAddressHistory {
		sv.PreviousAddressesMissing = visibility.PreviousAddressesMissing(&record)
	}
	return sv, nil
}

// Submit validates step and advances the wizard when it passes. A step that
// fails validation is not an error; the result carries the field messages.
func (s *Service) Submit(ctx context.Context, id uuid.UUID, step app.Step) (*models.SubmitResult, error) {
	start := time.Now()
	ctx, span := s.tracer.Start(ctx, "wizard.Submit", trace.WithAttributes(
		attribute.String("step", step.String()),
	))
	defer span.End()
	defer s.observeSubmit(start)

	sess, err := s.find(ctx, id)
	if err != nil {
		return nil, s.fail(span, err)
	}

	out, err := sess.Wizard.Submit(step)
	switch {
	case errors.Is(err, wizard.ErrStepOutOfOrder):
		s.recordSubmission(step, metrics.OutcomeOutOfOrder, 0)
		s.logger.WarnContext(ctx, "step submitted out of order",
			"request_id", requestcontext.RequestID(ctx),
			"session_id", id,
			"step", step,
			"current_step", sess.Wizard.Navigator.Current(),
		)
		return nil, s.fail(span, dErrors.Wrap(err, dErrors.CodeStepOutOfOrder, "step "+step.String()+" is not the current step"))
	case errors.Is(err, wizard.ErrCompleted):
		return nil, s.fail(span, dErrors.Wrap(err, dErrors.CodeConflict, "application already completed"))
	case err != nil:
		return nil, s.fail(span, dErrors.Wrap(err, dErrors.CodeInternal, "failed to submit step"))
	}

	result := &models.SubmitResult{
		Step:     step,
		Advanced: out.Advanced(),
		Fields:   out.Validation.Fields,
		Banner:   out.Validation.Banner,
	}
	if !out.Advanced() {
		s.recordSubmission(step, metrics.OutcomeInvalid, len(out.Validation.Fields))
		span.SetAttributes(attribute.Int("field_errors", len(out.Validation.Fields)))
		s.logger.InfoContext(ctx, "step validation failed",
			"request_id", requestcontext.RequestID(ctx),
			"session_id", id,
			"step", step,
			"field_errors", len(out.Validation.Fields),
			"banner", out.Validation.Banner != "",
		)
		return result, nil
	}

	result.Next = out.Next
	result.Route = sess.Location.Path()
	s.recordSubmission(step, metrics.OutcomeAdvanced, 0)
	s.logger.InfoContext(ctx, "step advanced",
		"request_id", requestcontext.RequestID(ctx),
		"session_id", id,
		"step", step,
		"next_step", out.Next,
	)
	return result, nil
}

// Analyze hands an uploaded document to the analyzer. Extracted values are
// written into the matching document section; a failed analysis comes back
// as an advisory and never blocks the wizard.
func (s *Service) Analyze(ctx context.Context, id uuid.UUID, doc analysis.Document) (*models.AnalysisResult, error) {
	ctx, span := s.tracer.Start(ctx, "wizard.Analyze", trace.WithAttributes(
		attribute.String("kind", string(doc.Kind)),
		attribute.Int("bytes", len(doc.Data)),
	))
	defer span.End()

	sess, err := s.find(ctx, id)
	if err != nil {
		return nil, s.fail(span, err)
	}

	out := &models.AnalysisResult{Kind: string(doc.Kind), Applied: []string{}}
	res, err := s.analyzer.Analyze(ctx, doc)
	var failure *analysis.Failure
	switch {
	case errors.As(err, &failure):
		s.recordAnalysis(doc.Kind, "advisory")
		s.logger.InfoContext(ctx, "document analysis unavailable",
			"request_id", requestcontext.RequestID(ctx),
			"session_id", id,
			"kind", doc.Kind,
		)
		out.Advisory = failure.Advisory
		return out, nil
	case err != nil:
		s.recordAnalysis(doc.Kind, "error")
		return nil, s.fail(span, dErrors.Wrap(err, dErrors.CodeInternal, "document analysis failed"))
	}

	for field, value := range res.Fields {
		path := string(doc.Kind) + "." + field
		if err := sess.Wizard.Store.UpdateAtPath(path, value); err != nil {
			s.logger.WarnContext(ctx, "analysis returned unusable field",
				"request_id", requestcontext.RequestID(ctx),
				"path", path,
				"error", err,
			)
			continue
		}
		out.Applied = append(out.Applied, path)
	}
	s.recordAnalysis(doc.Kind, "applied")
	return out, nil
}

func (s *Service) find(ctx context.Context, id uuid.UUID) (*session.Session, error) {
	sess, err := s.sessions.Find(ctx, id)
	if err != nil {
		if errors.Is(err, sentinel.ErrExpired) && s.metrics != nil {
			s.metrics.RecordExpired(1)
		}
		if errors.Is(err, sentinel.ErrNotFound) {
			return nil, dErrors.Wrap(err, dErrors.CodeNotFound, "session not found")
		}
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to load session")
	}
	return sess, nil
}

func (s *Service) fail(span trace.Span, err error) error {
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
	return err
}

func (s *Service) observeSubmit(start time.Time) {
	if s.metrics != nil {
		s.metrics.ObserveSubmitStep(start)
	}
}

func (s *Service) recordSubmission(step app.Step, outcome string, fieldErrors int) {
	if s.metrics != nil {
		s.metrics.RecordSubmission(step.String(), outcome, fieldErrors)
	}
}

func (s *Service) recordAnalysis(kind analysis.DocumentKind, result string) {
	if s.metrics != nil {
		s.metrics.RecordAnalysis(string(kind), result)
	}
}

// translateWriteError maps store write failures onto domain errors.
func translateWriteError(err error) error {
	switch {
	case errors.Is(err, paths.ErrUnknownPath):
		return dErrors.Wrap(err, dErrors.CodeUnknownField, "unknown field")
	case errors.Is(err, paths.ErrValueType):
		return dErrors.Wrap(err, dErrors.CodeBadRequest, "value has the wrong type for this field")
	case errors.Is(err, sentinel.ErrNotFound):
		return dErrors.Wrap(err, dErrors.CodeNotFound, "list entry not found")
	default:
		return dErrors.Wrap(err, dErrors.CodeInternal, "failed to update record")
	}
}

func view(sess *session.Session) *models.SessionView {
	record := sess.Wizard.Store.Snapshot()
	current := sess.Wizard.Navigator.Current()
	return &models.SessionView{
		ID:          sess.ID,
		CurrentStep: current,
		Route:       sess.Location.Path(),
		Version:     sess.Wizard.Store.Version(),
		Record:      record,
		Visible:     visibility.ForStep(current, &record),
	}
}
