package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"detailing_crm/internal/domain/entities"
	"detailing_crm/internal/infrastructure/metrics"
	"detailing_crm/internal/usecase/interfaces"

	"go.uber.org/zap"
)

const (
	DefaultSignaturePollInterval    = 3 * time.Second
	DefaultSignatureCompletionDelay = 2 * time.Second
)

var (
	ErrSignatureRequestFailed   = errors.New("signature request failed")
	ErrSignatureStatusFailed    = errors.New("signature status check failed")
	ErrSignatureCancelFailed    = errors.New("signature cancel failed")
	ErrSignatureDownloadFailed  = errors.New("signed document download failed")
	ErrNoActiveSignature        = errors.New("no active signature session")
	ErrSignatureSessionTerminal = errors.New("signature session already finished")
)

// User-facing fallbacks when the service gives no message of its own.
const (
	msgRequestFailed  = "Could not send the document to the tablet."
	msgStatusFailed   = "Could not check the signature status."
	msgCancelFailed   = "Could not cancel the signature on the tablet."
	msgDownloadFailed = "Could not download the signed document."
)

type SignatureCoordinatorConfig struct {
	PollInterval    time.Duration
	CompletionDelay time.Duration
	// OnChange receives every session state the coordinator accepts, one call
	// at a time and in order. It must not call back into the coordinator.
	OnChange func(entities.SignatureSession)
}

// SignatureCoordinator drives a single signature session on one tablet.
//
// The remote service owns the state machine: the coordinator only applies
// what polls report. Each poll loop belongs to a generation; stopping the
// loop bumps the generation, so responses that arrive after a cancel or a
// new request are dropped instead of overwriting newer state.
//
// A COMPLETED session is past that point: its completion callback is keyed by
// session ID and still fires when a new request comes in during the display
// delay. Only cancelling that session or Close withdraws it.
type SignatureCoordinator struct {
	service interfaces.ISignatureService
	cfg     SignatureCoordinatorConfig
	logger  *zap.Logger
	metrics *metrics.Signature

	notifyMu sync.Mutex

	mu         sync.Mutex
	current    *entities.SignatureSession
	lastError  string
	generation uint64
	polling    bool
	stop       context.CancelFunc
	done       chan struct{}

	// completions holds COMPLETED sessions waiting out the display delay.
	completions map[string]pendingCompletion
}

type pendingCompletion struct {
	ctx    context.Context
	cancel context.CancelFunc
}

func NewSignatureCoordinator(service interfaces.ISignatureService, cfg SignatureCoordinatorConfig, logger *zap.Logger, m *metrics.Signature) *SignatureCoordinator {
	if cfg.PollInterval <= 0 {
		cfg.PollInterval = DefaultSignaturePollInterval
	}
	if cfg.CompletionDelay < 0 {
		cfg.CompletionDelay = DefaultSignatureCompletionDelay
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SignatureCoordinator{
		service:     service,
		cfg:         cfg,
		logger:      logger.Named("signature-coordinator"),
		metrics:     m,
		completions: make(map[string]pendingCompletion),
	}
}

// RequestSignature asks the service to show the protocol on the tablet. A
// previous session held by the coordinator is dropped. Nothing is retried.
func (c *SignatureCoordinator) RequestSignature(ctx context.Context, req entities.SignatureRequest) (string, error) {
	if err := req.Validate(); err != nil {
		c.setLastError(err.Error())
		return "", err
	}

	res, err := c.service.RequestSignature(ctx, req)
	if err != nil {
		msg := remoteMessage(err, msgRequestFailed)
		c.logger.Warn("signature request failed", zap.Int64("protocol_id", req.ProtocolID), zap.String("tablet_id", req.TabletID), zap.Error(err))
		c.setLastError(msg)
		c.metrics.Request(false)
		return "", fmt.Errorf("%w: %w", ErrSignatureRequestFailed, err)
	}
	if !res.Success || strings.TrimSpace(res.SessionID) == "" {
		msg := messageOr(res.Message, msgRequestFailed)
		c.logger.Warn("signature request rejected", zap.Int64("protocol_id", req.ProtocolID), zap.String("tablet_id", req.TabletID), zap.String("message", res.Message))
		c.setLastError(msg)
		c.metrics.Request(false)
		return "", fmt.Errorf("%w: %s", ErrSignatureRequestFailed, msg)
	}

	protocolID := res.ProtocolID
	if protocolID == 0 {
		protocolID = req.ProtocolID
	}
	session := entities.SignatureSession{
		SessionID:  res.SessionID,
		ProtocolID: protocolID,
		TabletID:   req.TabletID,
		Status:     entities.SignatureStatusPending,
		ExpiresAt:  res.ExpiresAt,
		UpdatedAt:  time.Now().UTC(),
	}

	c.mu.Lock()
	c.stopLocked()
	c.current = &session
	c.lastError = ""
	c.mu.Unlock()

	c.metrics.Request(true)
	c.logger.Info("signature requested",
		zap.String("session_id", session.SessionID),
		zap.Int64("protocol_id", session.ProtocolID),
		zap.String("tablet_id", session.TabletID),
	)
	c.notify(session)
	return session.SessionID, nil
}

// StartPolling polls the current session every PollInterval until it reaches
// a terminal status or is stopped. On COMPLETED, onComplete is called once with
// the signed document URL after CompletionDelay, unless that session is
// cancelled or the coordinator closed in the meantime. Starting again restarts
// the loop.
func (c *SignatureCoordinator) StartPolling(onComplete func(signedDocumentURL string)) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.current == nil {
		return ErrNoActiveSignature
	}
	if c.current.Status.Terminal() {
		return ErrSignatureSessionTerminal
	}

	c.stopLocked()
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	c.stop = cancel
	c.done = done
	c.polling = true

	go c.pollLoop(ctx, c.generation, c.current.SessionID, onComplete, done)
	return nil
}

func (c *SignatureCoordinator) pollLoop(ctx context.Context, gen uint64, sessionID string, onComplete func(string), done chan struct{}) {
	defer func() {
		c.mu.Lock()
		if c.generation == gen {
			c.polling = false
			if c.stop != nil {
				c.stop()
				c.stop = nil
			}
		}
		c.mu.Unlock()
		close(done)
	}()

	ticker := time.NewTicker(c.cfg.PollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}

		res, err := c.service.GetSessionStatus(ctx, sessionID)
		if ctx.Err() != nil {
			c.metrics.Poll(metrics.PollStale)
			return
		}

		session, ok := c.applyStatus(gen, sessionID, res, err)
		if !ok || !session.Status.Terminal() {
			continue
		}

		c.mu.Lock()
		if c.generation == gen {
			c.polling = false
		}
		c.mu.Unlock()

		if session.Status != entities.SignatureStatusCompleted {
			return
		}
		c.complete(sessionID, session.SignedDocumentURL, onComplete)
		return
	}
}

func (c *SignatureCoordinator) complete(sessionID, url string, onComplete func(string)) {
	c.mu.Lock()
	pending, ok := c.completions[sessionID]
	c.mu.Unlock()
	if !ok {
		return
	}
	defer c.withdrawCompletion(sessionID)

	timer := time.NewTimer(c.cfg.CompletionDelay)
	defer timer.Stop()

	select {
	case <-pending.ctx.Done():
		return
	case <-timer.C:
	}
	if pending.ctx.Err() != nil {
		return
	}

	c.metrics.Completed()
	c.logger.Info("signature completed", zap.String("session_id", sessionID), zap.String("signed_document_url", url))
	if onComplete != nil {
		onComplete(url)
	}
}

// applyStatus records one poll outcome. It reports false when nothing was
// applied: the response is stale, failed, or was rejected by the service.
func (c *SignatureCoordinator) applyStatus(gen uint64, sessionID string, res entities.SignatureStatusResult, err error) (entities.SignatureSession, bool) {
	c.mu.Lock()
	if c.generation != gen || c.current == nil || c.current.SessionID != sessionID {
		c.mu.Unlock()
		c.metrics.Poll(metrics.PollStale)
		return entities.SignatureSession{}, false
	}

	switch {
	case err != nil:
		c.lastError = remoteMessage(err, msgStatusFailed)
		c.mu.Unlock()
		c.metrics.Poll(metrics.PollFailed)
		c.logger.Warn("signature poll failed", zap.String("session_id", sessionID), zap.Error(err))
		return entities.SignatureSession{}, false
	case !res.Success:
		c.lastError = messageOr(res.Message, msgStatusFailed)
		c.mu.Unlock()
		c.metrics.Poll(metrics.PollRejected)
		c.logger.Warn("signature poll rejected", zap.String("session_id", sessionID), zap.String("message", res.Message))
		return entities.SignatureSession{}, false
	}

	previous := c.current.Status
	updated := c.current.Apply(res)
	c.current = &updated
	c.lastError = ""
	if updated.Status == entities.SignatureStatusCompleted && previous != updated.Status {
		ctx, cancel := context.WithCancel(context.Background())
		c.completions[sessionID] = pendingCompletion{ctx: ctx, cancel: cancel}
	}
	c.mu.Unlock()

	c.metrics.Poll(metrics.PollOK)
	if updated.Status != previous {
		c.logger.Info("signature status changed",
			zap.String("session_id", sessionID),
			zap.String("from", string(previous)),
			zap.String("to", string(updated.Status)),
		)
		if updated.Status.Terminal() {
			c.metrics.Terminal(string(updated.Status))
		}
	}
	c.notifyIfCurrent(gen, updated)
	return updated, true
}

// CancelSignature cancels the session on the service. The local session is
// cleared and polling stopped whatever the service answers. When the service
// does not confirm, observers get the session as ERROR: it is no longer
// tracked and its remote state is unknown.
func (c *SignatureCoordinator) CancelSignature(ctx context.Context, sessionID, reason string) error {
	c.mu.Lock()
	if c.current == nil || c.current.SessionID != sessionID {
		c.mu.Unlock()
		return ErrNoActiveSignature
	}
	session := *c.current
	c.stopLocked()
	c.withdrawCompletionLocked(sessionID)
	c.current = nil
	c.mu.Unlock()

	res, err := c.service.CancelSession(ctx, sessionID, reason)
	if err != nil {
		c.setLastError(remoteMessage(err, msgCancelFailed))
		c.metrics.Cancel(false)
		c.logger.Warn("signature cancel failed", zap.String("session_id", sessionID), zap.Error(err))
		c.notify(withStatus(session, entities.SignatureStatusError))
		return fmt.Errorf("%w: %w", ErrSignatureCancelFailed, err)
	}
	if !res.Success {
		msg := messageOr(res.Message, msgCancelFailed)
		c.setLastError(msg)
		c.metrics.Cancel(false)
		c.logger.Warn("signature cancel rejected", zap.String("session_id", sessionID), zap.String("message", res.Message))
		c.notify(withStatus(session, entities.SignatureStatusError))
		return fmt.Errorf("%w: %s", ErrSignatureCancelFailed, msg)
	}

	c.metrics.Cancel(true)
	c.logger.Info("signature cancelled", zap.String("session_id", sessionID), zap.String("reason", reason))
	c.notify(withStatus(session, entities.SignatureStatusCancelled))
	return nil
}

func withStatus(s entities.SignatureSession, status entities.SignatureStatus) entities.SignatureSession {
	s.Status = status
	s.UpdatedAt = time.Now().UTC()
	return s
}

// DownloadSignedDocument fetches the signed PDF of a session. The session does
// not have to be the current one.
func (c *SignatureCoordinator) DownloadSignedDocument(ctx context.Context, sessionID string, protocolID int64) (entities.SignedDocument, error) {
	content, err := c.service.DownloadSignedDocument(ctx, sessionID)
	if err != nil {
		c.setLastError(remoteMessage(err, msgDownloadFailed))
		c.logger.Warn("signed document download failed", zap.String("session_id", sessionID), zap.Error(err))
		return entities.SignedDocument{}, fmt.Errorf("%w: %w", ErrSignatureDownloadFailed, err)
	}
	return entities.SignedDocument{
		Filename:    entities.SignedDocumentFilename(protocolID),
		ContentType: "application/pdf",
		Content:     content,
	}, nil
}

// Current returns a copy of the current session, or nil.
func (c *SignatureCoordinator) Current() *entities.SignatureSession {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.current == nil {
		return nil
	}
	s := *c.current
	return &s
}

// LastError is the last user-facing failure message, empty after a success.
func (c *SignatureCoordinator) LastError() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lastError
}

func (c *SignatureCoordinator) isPolling() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.polling
}

// Wait blocks until the latest poll loop has exited.
func (c *SignatureCoordinator) Wait(ctx context.Context) error {
	c.mu.Lock()
	done := c.done
	c.mu.Unlock()
	if done == nil {
		return nil
	}
	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Close stops polling and withdraws pending completion callbacks. The current
// session is kept.
func (c *SignatureCoordinator) Close() {
	c.mu.Lock()
	c.stopLocked()
	for id := range c.completions {
		c.withdrawCompletionLocked(id)
	}
	c.mu.Unlock()
}

func (c *SignatureCoordinator) stopLocked() {
	c.generation++
	c.polling = false
	if c.stop != nil {
		c.stop()
		c.stop = nil
	}
}

func (c *SignatureCoordinator) withdrawCompletion(sessionID string) {
	c.mu.Lock()
	c.withdrawCompletionLocked(sessionID)
	c.mu.Unlock()
}

func (c *SignatureCoordinator) withdrawCompletionLocked(sessionID string) {
	if pending, ok := c.completions[sessionID]; ok {
		pending.cancel()
		delete(c.completions, sessionID)
	}
}

func (c *SignatureCoordinator) setLastError(msg string) {
	c.mu.Lock()
	c.lastError = msg
	c.mu.Unlock()
}

func (c *SignatureCoordinator) notify(s entities.SignatureSession) {
	if c.cfg.OnChange == nil {
		return
	}
	c.notifyMu.Lock()
	defer c.notifyMu.Unlock()
	c.cfg.OnChange(s)
}

// notifyIfCurrent drops the notification when a cancel or a new request got
// in between, so observers never see an older state after a newer one.
func (c *SignatureCoordinator) notifyIfCurrent(gen uint64, s entities.SignatureSession) {
	if c.cfg.OnChange == nil {
		return
	}
	c.notifyMu.Lock()
	defer c.notifyMu.Unlock()

	c.mu.Lock()
	stale := c.generation != gen
	c.mu.Unlock()
	if stale {
		return
	}
	c.cfg.OnChange(s)
}

func remoteMessage(err error, fallback string) string {
	var rm interface{ RemoteMessage() string }
	if errors.As(err, &rm) {
		return messageOr(rm.RemoteMessage(), fallback)
	}
	return fallback
}

func messageOr(msg, fallback string) string {
	if m := strings.TrimSpace(msg); m != "" {
		return m
	}
	return fallback
}
