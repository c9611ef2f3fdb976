// Package signature is the HTTP client of the remote tablet signature
// service.
package signature

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"detailing_crm/internal/config"
	"detailing_crm/internal/domain/entities"
	"detailing_crm/internal/usecase/interfaces"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"
)

var (
	ErrMissingBaseURL   = errors.New("signature service base url is required")
	ErrMissingSessionID = errors.New("signature session id is required")
	ErrUnauthorized     = errors.New("signature service unauthorized")
	ErrEmptyDocument    = errors.New("signature service returned an empty document")
)

// APIError is a non-2xx answer of the signature service.
type APIError struct {
	StatusCode int
	Status     string
	// Message is the message the service embedded in the body, if any.
	Message string
	Body    string
}

// RemoteMessage is the message the service embedded in the body.
func (e *APIError) RemoteMessage() string {
	return e.Message
}

func (e *APIError) Error() string {
	switch {
	case e.Message != "":
		return fmt.Sprintf("signature api error: %s: %s", e.Status, e.Message)
	case e.Body != "":
		return fmt.Sprintf("signature api error: %s: %s", e.Status, e.Body)
	default:
		return fmt.Sprintf("signature api error: %s", e.Status)
	}
}

// Client talks to the signature service. Base URL and bearer token come from
// config; nothing is retried.
type Client struct {
	http   *resty.Client
	logger *zap.Logger
}

var _ interfaces.ISignatureService = (*Client)(nil)

func NewClient(cfg config.SignatureConfig, logger *zap.Logger) (*Client, error) {
	baseURL := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if baseURL == "" {
		return nil, ErrMissingBaseURL
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	httpClient := resty.New().
		SetBaseURL(baseURL).
		SetHeader("Accept", "application/json").
		SetHeader("Content-Type", "application/json").
		SetTimeout(cfg.Timeout)

	if token := strings.TrimSpace(cfg.Token); token != "" {
		httpClient.SetAuthScheme("Bearer")
		httpClient.SetAuthToken(token)
	}

	return &Client{
		http:   httpClient,
		logger: logger.Named("signature"),
	}, nil
}

func (c *Client) RequestSignature(ctx context.Context, req entities.SignatureRequest) (entities.SignatureRequestResult, error) {
	body := requestBody{
		ProtocolID:     req.ProtocolID,
		TabletID:       req.TabletID,
		CustomerName:   req.CustomerName,
		Instructions:   req.Instructions,
		TimeoutMinutes: req.TimeoutMinutes,
	}

	var resp requestResponse
	if err := c.doPost(ctx, "/protocol-signatures/request", body, &resp); err != nil {
		return entities.SignatureRequestResult{}, err
	}
	c.logger.Debug("signature requested",
		zap.Int64("protocol_id", req.ProtocolID),
		zap.String("tablet_id", req.TabletID),
		zap.Bool("success", resp.Success),
		zap.String("session_id", resp.SessionID),
	)
	return resp.toEntity(), nil
}

func (c *Client) GetSessionStatus(ctx context.Context, sessionID string) (entities.SignatureStatusResult, error) {
	path, err := sessionPath(sessionID, "status")
	if err != nil {
		return entities.SignatureStatusResult{}, err
	}

	var resp statusResponse
	r, err := c.http.R().SetContext(ctx).SetResult(&resp).Get(path)
	if err != nil {
		return entities.SignatureStatusResult{}, fmt.Errorf("signature request: %w", err)
	}
	if r.IsError() {
		return entities.SignatureStatusResult{}, apiErrorFromResponse(r)
	}
	return resp.toEntity(), nil
}

func (c *Client) CancelSession(ctx context.Context, sessionID, reason string) (entities.SignatureCancelResult, error) {
	path, err := sessionPath(sessionID, "cancel")
	if err != nil {
		return entities.SignatureCancelResult{}, err
	}

	var resp cancelResponse
	if err := c.doPost(ctx, path, cancelBody{Reason: strings.TrimSpace(reason)}, &resp); err != nil {
		return entities.SignatureCancelResult{}, err
	}
	return entities.SignatureCancelResult{Success: resp.Success, Message: resp.Message}, nil
}

func (c *Client) DownloadSignedDocument(ctx context.Context, sessionID string) ([]byte, error) {
	path, err := sessionPath(sessionID, "signed-document")
	if err != nil {
		return nil, err
	}

	r, err := c.http.R().
		SetContext(ctx).
		SetHeader("Accept", "application/pdf").
		Get(path)
	if err != nil {
		return nil, fmt.Errorf("signature request: %w", err)
	}
	if r.IsError() {
		return nil, apiErrorFromResponse(r)
	}
	if len(r.Body()) == 0 {
		return nil, ErrEmptyDocument
	}
	return r.Body(), nil
}

func (c *Client) doPost(ctx context.Context, path string, body, result any) error {
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(body).
		SetResult(result).
		Post(path)
	if err != nil {
		return fmt.Errorf("signature request: %w", err)
	}
	if resp.IsError() {
		return apiErrorFromResponse(resp)
	}
	return nil
}

func sessionPath(sessionID, action string) (string, error) {
	sessionID = strings.TrimSpace(sessionID)
	if sessionID == "" {
		return "", ErrMissingSessionID
	}
	return fmt.Sprintf("/protocol-signatures/sessions/%s/%s", url.PathEscape(sessionID), action), nil
}

func apiErrorFromResponse(resp *resty.Response) error {
	body := strings.TrimSpace(resp.String())
	apiErr := &APIError{
		StatusCode: resp.StatusCode(),
		Status:     resp.Status(),
		Body:       body,
	}

	var eb errorBody
	if json.Unmarshal(resp.Body(), &eb) == nil {
		apiErr.Message = strings.TrimSpace(eb.Message)
		if apiErr.Message == "" {
			apiErr.Message = strings.TrimSpace(eb.Error)
		}
	}

	switch resp.StatusCode() {
	case http.StatusUnauthorized, http.StatusForbidden:
		return fmt.Errorf("%w: %w", ErrUnauthorized, apiErr)
	default:
		return apiErr
	}
}

