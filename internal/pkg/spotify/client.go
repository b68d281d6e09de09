package spotify

import (
	"Encore/internal/api/config"
	"Encore/internal/pkg/consts"
	"context"
	"encoding/base64"
	"strings"
	"sync"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/pkg/errors"
)

const (
	defaultTokenURL   = "https://accounts.spotify.com/api/token"
	defaultAPIBaseURL = "https://api.spotify.com/v1"
)

// Artist Spotify 批量艺人接口返回的条目
type Artist struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Popularity int    `json:"popularity"`
	Followers  struct {
		Total int64 `json:"total"`
	} `json:"followers"`
	Images []struct {
		URL string `json:"url"`
	} `json:"images"`
}

// tokenCache 进程内共享的访问令牌，懒刷新
type tokenCache struct {
	mu        sync.Mutex
	token     string
	expiresAt time.Time
}

// Client Spotify 开放接口客户端，client-credentials 授权
type Client struct {
	http  *resty.Client
	cfg   config.SpotifyConfig
	cache tokenCache
}

func NewClient(cfg config.SpotifyConfig) *Client {
	if cfg.TokenURL == "" {
		cfg.TokenURL = defaultTokenURL
	}
	if cfg.APIBaseURL == "" {
		cfg.APIBaseURL = defaultAPIBaseURL
	}

	client := resty.New().
		SetTimeout(15 * time.Second).
		SetRetryCount(2).
		SetRetryWaitTime(500 * time.Millisecond)

	return &Client{
		http: client,
		cfg:  cfg,
	}
}

// accessToken 返回缓存的令牌，过期时重新换取
func (s *Client) accessToken(ctx context.Context) (string, error) {
	s.cache.mu.Lock()
	defer s.cache.mu.Unlock()

	if s.cache.token != "" && time.Now().Before(s.cache.expiresAt) {
		return s.cache.token, nil
	}

	if s.cfg.ClientID == "" || s.cfg.ClientSecret == "" {
		return "", errors.New("missing spotify credentials")
	}

	basic := base64.StdEncoding.EncodeToString([]byte(s.cfg.ClientID + ":" + s.cfg.ClientSecret))

	var body struct {
		AccessToken string `json:"access_token"`
		ExpiresIn   int    `json:"expires_in"`
	}

	resp, err := s.http.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/x-www-form-urlencoded").
		SetHeader("Authorization", "Basic "+basic).
		SetFormData(map[string]string{"grant_type": "client_credentials"}).
		SetResult(&body).
		Post(s.cfg.TokenURL)
	if err != nil {
		return "", errors.Wrap(err, "spotify token exchange failed")
	}
	if resp.IsError() {
		return "", errors.Errorf("spotify token exchange failed: status %d", resp.StatusCode())
	}

	s.cache.token = body.AccessToken
	// 提前 30 秒过期，避免边界上的 401
	s.cache.expiresAt = time.Now().Add(time.Duration(body.ExpiresIn)*time.Second - 30*time.Second)

	return s.cache.token, nil
}

// GetSeveralArtists 批量获取艺人指标，单次最多 50 个 id
func (s *Client) GetSeveralArtists(ctx context.Context, ids []string) ([]Artist, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	if len(ids) > consts.SpotifyBatchLimit {
		return nil, errors.Errorf("spotify allows at most %d artist ids per request", consts.SpotifyBatchLimit)
	}

	token, err := s.accessToken(ctx)
	if err != nil {
		return nil, err
	}

	var body struct {
		Artists []Artist `json:"artists"`
	}

	resp, err := s.http.R().
		SetContext(ctx).
		SetAuthToken(token).
		SetQueryParam("ids", strings.Join(ids, ",")).
		SetResult(&body).
		Get(s.cfg.APIBaseURL + "/artists")
	if err != nil {
		return nil, errors.Wrap(err, "spotify get artists failed")
	}
	if resp.IsError() {
		return nil, errors.Errorf("spotify get artists failed: status %d", resp.StatusCode())
	}

	return body.Artists, nil
}
