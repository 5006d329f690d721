package wechatmp

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sync"
	"time"
)

// PublishResult 发布成功后的远端标识
type PublishResult struct {
	ArticleID   string    `json:"article_id"`
	URL         string    `json:"url"`
	PublishedAt time.Time `json:"published_at"`
}

// AccountInfo 公众号概要信息
type AccountInfo struct {
	AppID             string `json:"app_id"`
	AccountStatus     string `json:"account_status"`
	SubscriptionType  string `json:"subscription_type"`
	FollowersCount    int    `json:"followers_count"`
	ArticlesPublished int    `json:"articles_published"`
}

// ArticleDraft 投递到公众号的稿件
type ArticleDraft struct {
	Title   string
	Content string
	Author  string
}

// Client 对接微信公众号的草稿/发布接口。access_token 按微信的过期时间缓存，
// 过期前 60 秒刷新。
type Client struct {
	appID     string
	appSecret string
	baseURL   string
	http      *http.Client

	mu          sync.Mutex
	accessToken string
	tokenExpiry time.Time
}

func NewClient(appID, appSecret, baseURL string) *Client {
	return &Client{
		appID:     appID,
		appSecret: appSecret,
		baseURL:   baseURL,
		http:      &http.Client{Timeout: 30 * time.Second},
	}
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	ExpiresIn   int    `json:"expires_in"`
	ErrCode     int    `json:"errcode"`
	ErrMsg      string `json:"errmsg"`
}

func (c *Client) getAccessToken(ctx context.Context) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.accessToken != "" && time.Now().Before(c.tokenExpiry) {
		return c.accessToken, nil
	}

	q := url.Values{}
	q.Set("grant_type", "client_credential")
	q.Set("appid", c.appID)
	q.Set("secret", c.appSecret)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/cgi-bin/token?"+q.Encode(), nil)
	if err != nil {
		return "", err
	}

	var tok tokenResponse
	if err := c.doJSON(req, &tok); err != nil {
		return "", fmt.Errorf("wechat token: %w", err)
	}
	if tok.ErrCode != 0 || tok.AccessToken == "" {
		return "", fmt.Errorf("wechat token error %d: %s", tok.ErrCode, tok.ErrMsg)
	}

	c.accessToken = tok.AccessToken
	c.tokenExpiry = time.Now().Add(time.Duration(tok.ExpiresIn-60) * time.Second)
	return c.accessToken, nil
}

type draftAddResponse struct {
	MediaID string `json:"media_id"`
	ErrCode int    `json:"errcode"`
	ErrMsg  string `json:"errmsg"`
}

type publishResponse struct {
	PublishID string `json:"publish_id"`
	ArticleID string `json:"article_id"`
	URL       string `json:"article_url"`
	ErrCode   int    `json:"errcode"`
	ErrMsg    string `json:"errmsg"`
}

// Publish 先建草稿再提交发布，返回远端文章标识。
func (c *Client) Publish(ctx context.Context, draft ArticleDraft) (*PublishResult, error) {
	token, err := c.getAccessToken(ctx)
	if err != nil {
		return nil, err
	}

	// 1. 新建草稿
	addBody := map[string]interface{}{
		"articles": []map[string]interface{}{{
			"title":   draft.Title,
			"author":  draft.Author,
			"content": draft.Content,
		}},
	}
	var added draftAddResponse
	if err := c.postJSON(ctx, "/cgi-bin/draft/add?access_token="+token, addBody, &added); err != nil {
		return nil, fmt.Errorf("wechat draft add: %w", err)
	}
	if added.ErrCode != 0 || added.MediaID == "" {
		return nil, fmt.Errorf("wechat draft add error %d: %s", added.ErrCode, added.ErrMsg)
	}

	// 2. 提交发布
	var published publishResponse
	pubBody := map[string]string{"media_id": added.MediaID}
	if err := c.postJSON(ctx, "/cgi-bin/freepublish/submit?access_token="+token, pubBody, &published); err != nil {
		return nil, fmt.Errorf("wechat publish: %w", err)
	}
	if published.ErrCode != 0 {
		return nil, fmt.Errorf("wechat publish error %d: %s", published.ErrCode, published.ErrMsg)
	}

	remoteID := published.ArticleID
	if remoteID == "" {
		// 异步发布场景下先拿到 publish_id
		remoteID = published.PublishID
	}
	return &PublishResult{
		ArticleID:   remoteID,
		URL:         published.URL,
		PublishedAt: time.Now(),
	}, nil
}

// GetAccountInfo 拉取公众号概要。
func (c *Client) GetAccountInfo(ctx context.Context) (*AccountInfo, error) {
	token, err := c.getAccessToken(ctx)
	if err != nil {
		return nil, err
	}

	var cumulate struct {
		List []struct {
			CumulateUser int `json:"cumulate_user"`
		} `json:"list"`
		ErrCode int    `json:"errcode"`
		ErrMsg  string `json:"errmsg"`
	}
	body := map[string]string{
		"begin_date": time.Now().AddDate(0, 0, -2).Format("2006-01-02"),
		"end_date":   time.Now().AddDate(0, 0, -1).Format("2006-01-02"),
	}
	if err := c.postJSON(ctx, "/datacube/getusercumulate?access_token="+token, body, &cumulate); err != nil {
		return nil, fmt.Errorf("wechat account info: %w", err)
	}
	if cumulate.ErrCode != 0 {
		return nil, fmt.Errorf("wechat account info error %d: %s", cumulate.ErrCode, cumulate.ErrMsg)
	}

	info := &AccountInfo{
		AppID:            c.appID,
		AccountStatus:    "active",
		SubscriptionType: "service_account",
	}
	if len(cumulate.List) > 0 {
		info.FollowersCount = cumulate.List[len(cumulate.List)-1].CumulateUser
	}
	return info, nil
}

func (c *Client) postJSON(ctx context.Context, path string, body interface{}, out interface{}) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	return c.doJSON(req, out)
}

func (c *Client) doJSON(req *http.Request, out interface{}) error {
	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("status %d: %s", resp.StatusCode, data)
	}
	return json.Unmarshal(data, out)
}
