package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/url"
	"strconv"
	"strings"
	"sync"

	"github.com/go-resty/resty/v2"
	"github.com/herrerafreebnoapriv-debug/mop-ios/internal/config"
	"github.com/herrerafreebnoapriv-debug/mop-ios/internal/logger"
	"github.com/herrerafreebnoapriv-debug/mop-ios/internal/utils"
	"github.com/herrerafreebnoapriv-debug/mop-ios/models"
)

type httpServerAdapter struct {
	client *utils.HTTPClient
	upload *utils.HTTPClient

	baseURL string
	origin  string

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs an HTTP/REST implementation of [ServerAdapter].
// It normalises and validates the API root from adapterCfg.HTTPAddress and
// configures two HTTP clients: one bounded by RequestTimeout for ordinary
// calls and one bounded by UploadTimeout for multipart uploads.
//
// Returns an error if adapterCfg.HTTPAddress is empty or cannot be parsed as a
// valid URL.
func NewHTTPServerAdapter(adapterCfg config.ClientAdapter, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	u, _ := url.Parse(baseURL)
	uploadTimeout := adapterCfg.UploadTimeout
	if uploadTimeout <= 0 {
		uploadTimeout = adapterCfg.RequestTimeout
	}

	return &httpServerAdapter{
		client:  utils.NewHTTPClient(baseURL, adapterCfg.RequestTimeout),
		upload:  utils.NewHTTPClient(baseURL, uploadTimeout),
		baseURL: baseURL,
		origin:  u.Scheme + "://" + u.Host,
		logger:  logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// SetToken implements [ServerAdapter]. It stores token (whitespace-trimmed) for
// use in the Authorization header of all subsequent authenticated requests.
func (h *httpServerAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

// Token implements [ServerAdapter].
func (h *httpServerAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

// Login implements [ServerAdapter]. It POSTs an OAuth2 password form to
// POST /auth/login. The returned access token is NOT stored; the session
// layer decides when to install it.
func (h *httpServerAdapter) Login(ctx context.Context, username, password string) (models.TokenResponse, error) {
	var tokens models.TokenResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetFormData(map[string]string{
			"username": username,
			"password": password,
		}).
		SetResult(&tokens).
		Post("/auth/login")
	if err != nil {
		return models.TokenResponse{}, fmt.Errorf("login request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.TokenResponse{}, err
	}

	return tokens, nil
}

// Refresh implements [ServerAdapter].
func (h *httpServerAdapter) Refresh(ctx context.Context, refreshToken string) (models.TokenResponse, error) {
	var tokens models.TokenResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(models.RefreshRequest{RefreshToken: refreshToken}).
		SetResult(&tokens).
		Post("/auth/refresh")
	if err != nil {
		return models.TokenResponse{}, fmt.Errorf("refresh request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.TokenResponse{}, err
	}
	if tokens.AccessToken == "" {
		return models.TokenResponse{}, fmt.Errorf("refresh response: empty access token")
	}

	return tokens, nil
}

// Me implements [ServerAdapter]. It GETs /auth/me with the stored token.
func (h *httpServerAdapter) Me(ctx context.Context) (models.User, error) {
	var user models.User

	resp, err := h.authedRequest(ctx).
		SetResult(&user).
		Get("/auth/me")
	if err != nil {
		return models.User{}, fmt.Errorf("me request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.User{}, err
	}

	return user, nil
}

// Conversations implements [ServerAdapter].
func (h *httpServerAdapter) Conversations(ctx context.Context) ([]models.Conversation, error) {
	resp, err := h.authedRequest(ctx).Get("/chat/conversations")
	if err != nil {
		return nil, fmt.Errorf("conversations request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var list models.ConversationListResponse
	if err = json.Unmarshal(resp.Body(), &list); err != nil {
		return nil, fmt.Errorf("decode conversations response: %w", err)
	}
	return list.Conversations, nil
}

// Messages implements [ServerAdapter]. It GETs /chat/messages addressed by
// user_id or room_id.
func (h *httpServerAdapter) Messages(ctx context.Context, page models.MessagePage) ([]models.Message, error) {
	params := pageParams(page)
	if page.Page > 0 {
		params["page"] = strconv.Itoa(page.Page)
	}

	resp, err := h.authedRequest(ctx).
		SetQueryParams(params).
		Get("/chat/messages")
	if err != nil {
		return nil, fmt.Errorf("messages request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var list models.MessageListResponse
	if err = json.Unmarshal(resp.Body(), &list); err != nil {
		return nil, fmt.Errorf("decode messages response: %w", err)
	}
	return list.Messages, nil
}

// MessagesSince implements [ServerAdapter]. It GETs /chat/messages/since.
func (h *httpServerAdapter) MessagesSince(ctx context.Context, page models.MessagePage, lastMessageID int64) (models.MessageSinceResponse, error) {
	params := pageParams(page)
	params["last_message_id"] = strconv.FormatInt(lastMessageID, 10)

	resp, err := h.authedRequest(ctx).
		SetQueryParams(params).
		Get("/chat/messages/since")
	if err != nil {
		return models.MessageSinceResponse{}, fmt.Errorf("messages since request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.MessageSinceResponse{}, err
	}

	var since models.MessageSinceResponse
	if err = json.Unmarshal(resp.Body(), &since); err != nil {
		return models.MessageSinceResponse{}, fmt.Errorf("decode messages since response: %w", err)
	}
	return since, nil
}

// MarkRead implements [ServerAdapter]. It PUTs the ids to
// /chat/messages/mark-read.
func (h *httpServerAdapter) MarkRead(ctx context.Context, ids []int64) (int, error) {
	var ack models.MarkReadResponse

	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(models.MarkReadRequest{MessageIDs: ids}).
		SetResult(&ack).
		Put("/chat/messages/mark-read")
	if err != nil {
		return 0, fmt.Errorf("mark read request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return 0, err
	}

	return ack.UpdatedCount, nil
}

// UploadFile implements [ServerAdapter].
func (h *httpServerAdapter) UploadFile(ctx context.Context, fileName string, r io.Reader) (models.UploadResponse, error) {
	var uploaded models.UploadResponse

	resp, err := h.uploadRequest(ctx).
		SetFileReader("file", fileName, r).
		SetResult(&uploaded).
		Post("/files/upload")
	if err != nil {
		return models.UploadResponse{}, fmt.Errorf("upload request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.UploadResponse{}, err
	}
	if uploaded.FileURL == "" {
		return models.UploadResponse{}, fmt.Errorf("upload response: empty file_url")
	}

	return uploaded, nil
}

// UploadPhoto implements [ServerAdapter].
func (h *httpServerAdapter) UploadPhoto(ctx context.Context, fileName string, r io.Reader) (models.PhotoUploadResponse, error) {
	var uploaded models.PhotoUploadResponse

	resp, err := h.uploadRequest(ctx).
		SetFileReader("file", fileName, r).
		SetResult(&uploaded).
		Post("/files/upload-photo")
	if err != nil {
		return models.PhotoUploadResponse{}, fmt.Errorf("upload photo request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.PhotoUploadResponse{}, err
	}

	return uploaded, nil
}

// FetchResource implements [ServerAdapter]. The reference is resolved with
// ResourceURL, so the token travels both as a header and as a query
// parameter.
func (h *httpServerAdapter) FetchResource(ctx context.Context, ref string) ([]byte, string, error) {
	target := h.ResourceURL(ref)

	resp, err := h.authedRequest(ctx).Get(target)
	if err != nil {
		return nil, "", fmt.Errorf("fetch resource request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, "", err
	}

	h.logger.Debug().
		Str("ref", ref).
		Int("bytes", len(resp.Body())).
		Msg("resource fetched")

	return resp.Body(), resp.Header().Get("Content-Type"), nil
}

// Friends implements [ServerAdapter].
func (h *httpServerAdapter) Friends(ctx context.Context) ([]models.Friend, error) {
	var list models.FriendListResponse

	resp, err := h.authedRequest(ctx).
		SetResult(&list).
		Get("/friends/list")
	if err != nil {
		return nil, fmt.Errorf("friends request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return list.Friends, nil
}

func (h *httpServerAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetAuthToken(token)
	}
	return req
}

func (h *httpServerAdapter) uploadRequest(ctx context.Context) *resty.Request {
	req := h.upload.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetAuthToken(token)
	}
	return req
}

func pageParams(page models.MessagePage) map[string]string {
	params := make(map[string]string, 3)
	if page.RoomID != 0 {
		params["room_id"] = strconv.FormatInt(page.RoomID, 10)
	} else {
		params["user_id"] = strconv.FormatInt(page.UserID, 10)
	}
	if page.Limit > 0 {
		params["limit"] = strconv.Itoa(page.Limit)
	}
	return params
}
