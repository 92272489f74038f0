package trailapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"Trail-App/internal/domain/model"
	"Trail-App/internal/domain/repository"
	"Trail-App/internal/infrastructure/payload"
	"Trail-App/internal/requestctx"
)

const (
	trailsPath       = "/api/trails"
	trailPath        = "/api/trail"
	citiesPath       = "/api/cities"
	trailDetailsPath = "/api/detail"
)

// TrailAPIClient はトレイルREST APIを使用したTrailsRepositoryの実装
type TrailAPIClient struct {
	baseURL    string
	httpClient *http.Client
}

// NewTrailAPIClient は新しいクライアントを生成する
// timeout が0の場合はタイムアウトなし（contextのキャンセルのみ）
func NewTrailAPIClient(baseURL string, timeout time.Duration) *TrailAPIClient {
	return &TrailAPIClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
	}
}

var _ repository.TrailsRepository = (*TrailAPIClient)(nil)

// ListCities GET /api/cities
func (c *TrailAPIClient) ListCities(ctx context.Context) ([]model.City, error) {
	body, err := c.do(ctx, http.MethodGet, citiesPath, nil)
	if err != nil {
		return nil, err
	}
	return payload.DecodeList[model.City](body)
}

// ListTrails GET /api/trails/{cityCode}
func (c *TrailAPIClient) ListTrails(ctx context.Context, cityCode string) ([]model.Trail, error) {
	body, err := c.do(ctx, http.MethodGet, trailsPath+"/"+url.PathEscape(cityCode), nil)
	if err != nil {
		return nil, err
	}
	return payload.DecodeList[model.Trail](body)
}

// FindTrailsByID GET /api/trails/?id={id}
func (c *TrailAPIClient) FindTrailsByID(ctx context.Context, id int) ([]model.Trail, error) {
	params := url.Values{}
	params.Set("id", strconv.Itoa(id))

	body, err := c.do(ctx, http.MethodGet, trailsPath+"/?"+params.Encode(), nil)
	if err != nil {
		return nil, err
	}
	return payload.DecodeList[model.Trail](body)
}

// GetTrailByCode GET /api/trail/{code}
func (c *TrailAPIClient) GetTrailByCode(ctx context.Context, code string) (*model.Trail, error) {
	body, err := c.do(ctx, http.MethodGet, trailPath+"/"+url.PathEscape(code), nil)
	if err != nil {
		return nil, err
	}
	return payload.DecodeOne[model.Trail](body)
}

// SearchTrails GET /api/trails/?name={term}
func (c *TrailAPIClient) SearchTrails(ctx context.Context, term string) ([]model.Trail, error) {
	params := url.Values{}
	params.Set("name", term)

	body, err := c.do(ctx, http.MethodGet, trailsPath+"/?"+params.Encode(), nil)
	if err != nil {
		return nil, err
	}
	return payload.DecodeList[model.Trail](body)
}

// Create POST /api/trails
func (c *TrailAPIClient) Create(ctx context.Context, trail *model.Trail) (*model.Trail, error) {
	body, err := c.do(ctx, http.MethodPost, trailsPath, trail)
	if err != nil {
		return nil, err
	}
	return payload.DecodeOne[model.Trail](body)
}

// Update PUT /api/trails
// ボディなし（204など）の場合は送信したトレイルを返す
func (c *TrailAPIClient) Update(ctx context.Context, trail *model.Trail) (*model.Trail, error) {
	body, err := c.do(ctx, http.MethodPut, trailsPath, trail)
	if err != nil {
		return nil, err
	}
	if payload.IsEmpty(body) {
		updated := *trail
		return &updated, nil
	}
	return payload.DecodeOne[model.Trail](body)
}

// Delete DELETE /api/trails/{id}
func (c *TrailAPIClient) Delete(ctx context.Context, id int) (*model.Trail, error) {
	body, err := c.do(ctx, http.MethodDelete, trailsPath+"/"+strconv.Itoa(id), nil)
	if err != nil {
		return nil, err
	}
	if payload.IsEmpty(body) {
		return nil, nil
	}
	return payload.DecodeOne[model.Trail](body)
}

// GetTrailDetail GET /api/detail/{code}
func (c *TrailAPIClient) GetTrailDetail(ctx context.Context, code string) (*model.TrailDetail, error) {
	body, err := c.do(ctx, http.MethodGet, trailDetailsPath+"/"+url.PathEscape(code), nil)
	if err != nil {
		return nil, err
	}
	return payload.DecodeOne[model.TrailDetail](body)
}

// do はJSONリクエストを送信し、2xxの場合にレスポンスボディを返す
func (c *TrailAPIClient) do(ctx context.Context, method, path string, in any) ([]byte, error) {
	var reqBody io.Reader
	if in != nil {
		data, err := json.Marshal(in)
		if err != nil {
			return nil, fmt.Errorf("failed to encode request body: %w", err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to build request: %v", repository.ErrTransport, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set(requestctx.HeaderRequestID, requestctx.RequestID(ctx))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %s %s: %v", repository.ErrTransport, method, path, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read response: %v", repository.ErrTransport, err)
	}

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return nil, fmt.Errorf("%w: %s %s", repository.ErrNotFound, method, path)
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		return nil, fmt.Errorf("%w: %s %s returned %s", repository.ErrTransport, method, path, resp.Status)
	}

	return body, nil
}
