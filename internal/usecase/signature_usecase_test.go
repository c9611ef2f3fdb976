package usecase

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"detailing_crm/internal/domain/entities"
	mock_interfaces "detailing_crm/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

func newTestSignatureUseCase(t *testing.T) (*SignatureUseCase, *mock_interfaces.MockISignatureService, *mock_interfaces.MockISignatureSessionRepository) {
	t.Helper()
	ctrl := gomock.NewController(t)
	svc := mock_interfaces.NewMockISignatureService(ctrl)
	repo := mock_interfaces.NewMockISignatureSessionRepository(ctrl)
	uc := NewSignatureUseCase(svc, repo, SignatureCoordinatorConfig{
		PollInterval:    time.Hour,
		CompletionDelay: time.Millisecond,
	}, zap.NewNop(), nil)
	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		if err := uc.Shutdown(ctx); err != nil {
			t.Errorf("shutdown: %v", err)
		}
	})
	return uc, svc, repo
}

func TestSignatureUseCase_RequestSignature(t *testing.T) {
	t.Run("invalid request", func(t *testing.T) {
		uc, _, _ := newTestSignatureUseCase(t)
		_, err := uc.RequestSignature(context.Background(), entities.SignatureRequest{TabletID: "t1"})
		if !errors.Is(err, entities.ErrInvalidSignatureRequest) {
			t.Fatalf("expected ErrInvalidSignatureRequest, got %v", err)
		}
	})

	t.Run("success persists pending session", func(t *testing.T) {
		uc, svc, repo := newTestSignatureUseCase(t)
		svc.EXPECT().RequestSignature(gomock.Any(), gomock.Any()).
			Return(entities.SignatureRequestResult{Success: true, SessionID: "s-1", ProtocolID: 42}, nil)
		repo.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, s entities.SignatureSession) (entities.SignatureSession, error) {
			if s.SessionID != "s-1" || s.Status != entities.SignatureStatusPending || s.TabletID != "tablet-1" {
				t.Errorf("unexpected session saved: %+v", s)
			}
			return s, nil
		})

		got, err := uc.RequestSignature(context.Background(), validSignatureRequest())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.SessionID != "s-1" || got.Status != entities.SignatureStatusPending {
			t.Fatalf("unexpected session: %+v", got)
		}
	})

	t.Run("busy tablet", func(t *testing.T) {
		uc, svc, repo := newTestSignatureUseCase(t)
		svc.EXPECT().RequestSignature(gomock.Any(), gomock.Any()).
			Return(entities.SignatureRequestResult{Success: true, SessionID: "s-1"}, nil)
		repo.EXPECT().Save(gomock.Any(), gomock.Any()).Return(entities.SignatureSession{}, nil)

		if _, err := uc.RequestSignature(context.Background(), validSignatureRequest()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		_, err := uc.RequestSignature(context.Background(), validSignatureRequest())
		if !errors.Is(err, ErrTabletBusy) {
			t.Fatalf("expected ErrTabletBusy, got %v", err)
		}
	})

	t.Run("other tablet is not busy", func(t *testing.T) {
		uc, svc, repo := newTestSignatureUseCase(t)
		gomock.InOrder(
			svc.EXPECT().RequestSignature(gomock.Any(), gomock.Any()).
				Return(entities.SignatureRequestResult{Success: true, SessionID: "s-1"}, nil),
			svc.EXPECT().RequestSignature(gomock.Any(), gomock.Any()).
				Return(entities.SignatureRequestResult{Success: true, SessionID: "s-2"}, nil),
		)
		repo.EXPECT().Save(gomock.Any(), gomock.Any()).Return(entities.SignatureSession{}, nil).Times(2)

		if _, err := uc.RequestSignature(context.Background(), validSignatureRequest()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		req := validSignatureRequest()
		req.TabletID = "tablet-2"
		got, err := uc.RequestSignature(context.Background(), req)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.SessionID != "s-2" {
			t.Fatalf("expected s-2, got %s", got.SessionID)
		}
	})

	t.Run("rejection is not persisted", func(t *testing.T) {
		uc, svc, _ := newTestSignatureUseCase(t)
		svc.EXPECT().RequestSignature(gomock.Any(), gomock.Any()).
			Return(entities.SignatureRequestResult{Success: false, Message: "Tablet offline"}, nil)

		_, err := uc.RequestSignature(context.Background(), validSignatureRequest())
		if !errors.Is(err, ErrSignatureRequestFailed) {
			t.Fatalf("expected ErrSignatureRequestFailed, got %v", err)
		}
	})
}

func TestSignatureUseCase_GetSession(t *testing.T) {
	t.Run("invalid id", func(t *testing.T) {
		uc, _, _ := newTestSignatureUseCase(t)
		if _, err := uc.GetSession(context.Background(), " "); !errors.Is(err, ErrInvalidSignatureSessionID) {
			t.Fatalf("expected ErrInvalidSignatureSessionID, got %v", err)
		}
	})

	t.Run("falls back to repository", func(t *testing.T) {
		uc, _, repo := newTestSignatureUseCase(t)
		repo.EXPECT().GetByID(gomock.Any(), "s-9").Return(entities.SignatureSession{SessionID: "s-9", Status: entities.SignatureStatusExpired}, nil)

		got, err := uc.GetSession(context.Background(), "s-9")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Status != entities.SignatureStatusExpired {
			t.Fatalf("unexpected status %s", got.Status)
		}
	})

	t.Run("not found", func(t *testing.T) {
		uc, _, repo := newTestSignatureUseCase(t)
		repo.EXPECT().GetByID(gomock.Any(), "s-9").Return(entities.SignatureSession{}, nil)

		if _, err := uc.GetSession(context.Background(), "s-9"); !errors.Is(err, ErrSignatureSessionNotFound) {
			t.Fatalf("expected ErrSignatureSessionNotFound, got %v", err)
		}
	})
}

func TestSignatureUseCase_ListByProtocolID(t *testing.T) {
	uc, _, repo := newTestSignatureUseCase(t)
	if _, err := uc.ListByProtocolID(context.Background(), 0); !errors.Is(err, ErrInvalidProtocolID) {
		t.Fatalf("expected ErrInvalidProtocolID, got %v", err)
	}

	repo.EXPECT().ListByProtocolID(gomock.Any(), int64(42)).Return([]entities.SignatureSession{{SessionID: "a"}, {SessionID: "b"}}, nil)
	got, err := uc.ListByProtocolID(context.Background(), 42)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 sessions, got %d", len(got))
	}
}

func TestSignatureUseCase_CancelSignature(t *testing.T) {
	t.Run("active session is cancelled and tablet freed", func(t *testing.T) {
		uc, svc, repo := newTestSignatureUseCase(t)
		svc.EXPECT().RequestSignature(gomock.Any(), gomock.Any()).
			Return(entities.SignatureRequestResult{Success: true, SessionID: "s-1"}, nil).Times(2)
		svc.EXPECT().CancelSession(gomock.Any(), "s-1", "wrong document").
			Return(entities.SignatureCancelResult{Success: true}, nil)

		var saved []entities.SignatureStatus
		repo.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, s entities.SignatureSession) (entities.SignatureSession, error) {
			saved = append(saved, s.Status)
			return s, nil
		}).AnyTimes()

		if _, err := uc.RequestSignature(context.Background(), validSignatureRequest()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if err := uc.CancelSignature(context.Background(), "s-1", "wrong document"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(saved) != 2 || saved[1] != entities.SignatureStatusCancelled {
			t.Fatalf("expected PENDING then CANCELLED saved, got %v", saved)
		}
		if _, err := uc.RequestSignature(context.Background(), validSignatureRequest()); err != nil {
			t.Fatalf("tablet should be free after cancel: %v", err)
		}
	})

	t.Run("remote failure stores the session as ended", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := mock_interfaces.NewMockISignatureService(ctrl)
		repo := newMemSessionRepo()
		uc := NewSignatureUseCase(svc, repo, SignatureCoordinatorConfig{PollInterval: time.Hour}, zap.NewNop(), nil)
		defer func() { _ = uc.Shutdown(context.Background()) }()

		svc.EXPECT().RequestSignature(gomock.Any(), gomock.Any()).
			Return(entities.SignatureRequestResult{Success: true, SessionID: "s-1", ProtocolID: 42}, nil).Times(2)
		svc.EXPECT().CancelSession(gomock.Any(), "s-1", "").
			Return(entities.SignatureCancelResult{}, errors.New("500 Internal Server Error"))

		if _, err := uc.RequestSignature(context.Background(), validSignatureRequest()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if err := uc.CancelSignature(context.Background(), "s-1", ""); !errors.Is(err, ErrSignatureCancelFailed) {
			t.Fatalf("expected ErrSignatureCancelFailed, got %v", err)
		}

		got, err := uc.GetSession(context.Background(), "s-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !got.Status.Terminal() {
			t.Fatalf("expected stored session to be terminal, got %s", got.Status)
		}
		listed, err := uc.ListByProtocolID(context.Background(), 42)
		if err != nil || len(listed) != 1 || !listed[0].Status.Terminal() {
			t.Fatalf("expected one terminal session listed, got %+v err=%v", listed, err)
		}
		if err := uc.CancelSignature(context.Background(), "s-1", ""); !errors.Is(err, ErrSignatureSessionTerminal) {
			t.Fatalf("expected ErrSignatureSessionTerminal on second cancel, got %v", err)
		}
		if _, err := uc.RequestSignature(context.Background(), validSignatureRequest()); err != nil {
			t.Fatalf("tablet should be free after a failed cancel: %v", err)
		}
	})

	t.Run("terminal stored session", func(t *testing.T) {
		uc, _, repo := newTestSignatureUseCase(t)
		repo.EXPECT().GetByID(gomock.Any(), "old").Return(entities.SignatureSession{SessionID: "old", Status: entities.SignatureStatusCompleted}, nil)

		if err := uc.CancelSignature(context.Background(), "old", ""); !errors.Is(err, ErrSignatureSessionTerminal) {
			t.Fatalf("expected ErrSignatureSessionTerminal, got %v", err)
		}
	})
}

func TestSignatureUseCase_DownloadSignedDocument(t *testing.T) {
	t.Run("completed session", func(t *testing.T) {
		uc, svc, repo := newTestSignatureUseCase(t)
		repo.EXPECT().GetByID(gomock.Any(), "s-1").Return(entities.SignatureSession{
			SessionID:  "s-1",
			ProtocolID: 7,
			TabletID:   "tablet-1",
			Status:     entities.SignatureStatusCompleted,
		}, nil)
		svc.EXPECT().DownloadSignedDocument(gomock.Any(), "s-1").Return([]byte("%PDF-1.4"), nil)

		doc, err := uc.DownloadSignedDocument(context.Background(), "s-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if doc.Filename != "protokol-7-podpisany.pdf" {
			t.Fatalf("unexpected filename %q", doc.Filename)
		}
	})

	t.Run("not completed", func(t *testing.T) {
		uc, _, repo := newTestSignatureUseCase(t)
		repo.EXPECT().GetByID(gomock.Any(), "s-1").Return(entities.SignatureSession{SessionID: "s-1", Status: entities.SignatureStatusSigningInProgress}, nil)

		if _, err := uc.DownloadSignedDocument(context.Background(), "s-1"); !errors.Is(err, ErrSignatureNotCompleted) {
			t.Fatalf("expected ErrSignatureNotCompleted, got %v", err)
		}
	})
}

type memSessionRepo struct {
	mu       sync.Mutex
	sessions map[string]entities.SignatureSession
}

func newMemSessionRepo() *memSessionRepo {
	return &memSessionRepo{sessions: map[string]entities.SignatureSession{}}
}

func (r *memSessionRepo) Save(_ context.Context, s entities.SignatureSession) (entities.SignatureSession, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sessions[s.SessionID] = s
	return s, nil
}

func (r *memSessionRepo) GetByID(_ context.Context, sessionID string) (entities.SignatureSession, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.sessions[sessionID], nil
}

func (r *memSessionRepo) ListByProtocolID(_ context.Context, protocolID int64) ([]entities.SignatureSession, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []entities.SignatureSession
	for _, s := range r.sessions {
		if s.ProtocolID == protocolID {
			out = append(out, s)
		}
	}
	return out, nil
}
