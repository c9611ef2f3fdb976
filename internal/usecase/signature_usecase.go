package usecase

import (
	"context"
	"detailing_crm/internal/domain/entities"
	"detailing_crm/internal/infrastructure/metrics"
	"detailing_crm/internal/usecase/interfaces"
	"errors"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"
)

var (
	ErrTabletBusy                = errors.New("tablet already has an active signature session")
	ErrSignatureSessionNotFound  = errors.New("signature session not found")
	ErrInvalidSignatureSessionID = errors.New("invalid signature session id")
	ErrInvalidProtocolID         = errors.New("invalid protocol id")
	ErrSignatureNotCompleted     = errors.New("signature session not completed")
)

const sessionPersistTimeout = 5 * time.Second

// ISignatureUseCase runs tablet signature sessions for visit protocols.
//
// A tablet shows one document at a time, so each tablet gets its own
// coordinator and a second request for a busy tablet is refused.
type ISignatureUseCase interface {
	RequestSignature(ctx context.Context, req entities.SignatureRequest) (entities.SignatureSession, error)
	GetSession(ctx context.Context, sessionID string) (entities.SignatureSession, error)
	ListByProtocolID(ctx context.Context, protocolID int64) ([]entities.SignatureSession, error)
	CancelSignature(ctx context.Context, sessionID, reason string) error
	DownloadSignedDocument(ctx context.Context, sessionID string) (entities.SignedDocument, error)
	Shutdown(ctx context.Context) error
}

type SignatureUseCase struct {
	service interfaces.ISignatureService
	repo    interfaces.ISignatureSessionRepository
	cfg     SignatureCoordinatorConfig
	logger  *zap.Logger
	metrics *metrics.Signature

	mu              sync.Mutex
	byTablet        map[string]*SignatureCoordinator
	requesting      map[string]bool
	tabletBySession map[string]string
}

var _ ISignatureUseCase = (*SignatureUseCase)(nil)

// NewSignatureUseCase builds the use case. cfg.OnChange is ignored: every
// accepted session state is saved to repo instead.
func NewSignatureUseCase(service interfaces.ISignatureService, repo interfaces.ISignatureSessionRepository, cfg SignatureCoordinatorConfig, logger *zap.Logger, m *metrics.Signature) *SignatureUseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	u := &SignatureUseCase{
		service:         service,
		repo:            repo,
		logger:          logger.Named("signature"),
		metrics:         m,
		byTablet:        map[string]*SignatureCoordinator{},
		requesting:      map[string]bool{},
		tabletBySession: map[string]string{},
	}
	cfg.OnChange = u.persist
	u.cfg = cfg
	return u
}

func (u *SignatureUseCase) RequestSignature(ctx context.Context, req entities.SignatureRequest) (entities.SignatureSession, error) {
	if err := req.Validate(); err != nil {
		return entities.SignatureSession{}, err
	}
	tabletID := strings.TrimSpace(req.TabletID)
	req.TabletID = tabletID

	u.mu.Lock()
	coord := u.coordinatorLocked(tabletID)
	if u.requesting[tabletID] || active(coord) {
		u.mu.Unlock()
		return entities.SignatureSession{}, ErrTabletBusy
	}
	u.requesting[tabletID] = true
	u.mu.Unlock()

	defer func() {
		u.mu.Lock()
		delete(u.requesting, tabletID)
		u.mu.Unlock()
	}()

	sessionID, err := coord.RequestSignature(ctx, req)
	if err != nil {
		return entities.SignatureSession{}, err
	}

	u.mu.Lock()
	for id, t := range u.tabletBySession {
		if t == tabletID {
			delete(u.tabletBySession, id)
		}
	}
	u.tabletBySession[sessionID] = tabletID
	u.mu.Unlock()

	if err := coord.StartPolling(func(url string) {
		u.logger.Info("signed document ready",
			zap.String("session_id", sessionID),
			zap.Int64("protocol_id", req.ProtocolID),
			zap.String("signed_document_url", url),
		)
	}); err != nil {
		return entities.SignatureSession{}, err
	}

	if cur := coord.Current(); cur != nil && cur.SessionID == sessionID {
		return *cur, nil
	}
	return u.GetSession(ctx, sessionID)
}

// GetSession prefers the live state of a polled session over the stored one.
func (u *SignatureUseCase) GetSession(ctx context.Context, sessionID string) (entities.SignatureSession, error) {
	sessionID = strings.TrimSpace(sessionID)
	if sessionID == "" {
		return entities.SignatureSession{}, ErrInvalidSignatureSessionID
	}
	if coord := u.coordinatorFor(sessionID); coord != nil {
		if cur := coord.Current(); cur != nil && cur.SessionID == sessionID {
			return *cur, nil
		}
	}

	s, err := u.repo.GetByID(ctx, sessionID)
	if err != nil {
		return entities.SignatureSession{}, err
	}
	if s.SessionID == "" {
		return entities.SignatureSession{}, ErrSignatureSessionNotFound
	}
	return s, nil
}

func (u *SignatureUseCase) ListByProtocolID(ctx context.Context, protocolID int64) ([]entities.SignatureSession, error) {
	if protocolID <= 0 {
		return nil, ErrInvalidProtocolID
	}
	return u.repo.ListByProtocolID(ctx, protocolID)
}

func (u *SignatureUseCase) CancelSignature(ctx context.Context, sessionID, reason string) error {
	sessionID = strings.TrimSpace(sessionID)
	if sessionID == "" {
		return ErrInvalidSignatureSessionID
	}

	coord := u.coordinatorFor(sessionID)
	if coord != nil {
		if cur := coord.Current(); cur != nil && cur.SessionID == sessionID && !cur.Status.Terminal() {
			return coord.CancelSignature(ctx, sessionID, reason)
		}
	}

	s, err := u.GetSession(ctx, sessionID)
	if err != nil {
		return err
	}
	if s.Status.Terminal() {
		return ErrSignatureSessionTerminal
	}
	// Stored as active but not polled by this process.
	return ErrNoActiveSignature
}

func (u *SignatureUseCase) DownloadSignedDocument(ctx context.Context, sessionID string) (entities.SignedDocument, error) {
	s, err := u.GetSession(ctx, sessionID)
	if err != nil {
		return entities.SignedDocument{}, err
	}
	if s.Status != entities.SignatureStatusCompleted {
		return entities.SignedDocument{}, ErrSignatureNotCompleted
	}

	u.mu.Lock()
	coord := u.coordinatorLocked(s.TabletID)
	u.mu.Unlock()
	return coord.DownloadSignedDocument(ctx, s.SessionID, s.ProtocolID)
}

// Shutdown stops every poll loop and waits for them to exit.
func (u *SignatureUseCase) Shutdown(ctx context.Context) error {
	u.mu.Lock()
	coords := make([]*SignatureCoordinator, 0, len(u.byTablet))
	for _, c := range u.byTablet {
		coords = append(coords, c)
	}
	u.mu.Unlock()

	for _, c := range coords {
		c.Close()
	}
	for _, c := range coords {
		if err := c.Wait(ctx); err != nil {
			return err
		}
	}
	return nil
}

func (u *SignatureUseCase) coordinatorLocked(tabletID string) *SignatureCoordinator {
	coord, ok := u.byTablet[tabletID]
	if !ok {
		coord = NewSignatureCoordinator(u.service, u.cfg, u.logger, u.metrics)
		u.byTablet[tabletID] = coord
	}
	return coord
}

func (u *SignatureUseCase) coordinatorFor(sessionID string) *SignatureCoordinator {
	u.mu.Lock()
	defer u.mu.Unlock()
	tabletID, ok := u.tabletBySession[sessionID]
	if !ok {
		return nil
	}
	return u.byTablet[tabletID]
}

func (u *SignatureUseCase) persist(s entities.SignatureSession) {
	if u.repo == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), sessionPersistTimeout)
	defer cancel()
	if _, err := u.repo.Save(ctx, s); err != nil {
		u.logger.Error("failed saving signature session",
			zap.String("session_id", s.SessionID),
			zap.String("status", string(s.Status)),
			zap.Error(err),
		)
	}
}

func active(c *SignatureCoordinator) bool {
	cur := c.Current()
	return cur != nil && !cur.Status.Terminal()
}
