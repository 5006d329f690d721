package wechatmp

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T, tokenCalls *int) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/cgi-bin/token", func(w http.ResponseWriter, r *http.Request) {
		*tokenCalls++
		assert.Equal(t, "client_credential", r.URL.Query().Get("grant_type"))
		assert.Equal(t, "app-id", r.URL.Query().Get("appid"))
		_ = json.NewEncoder(w).Encode(map[string]interface{}{"access_token": "tok-1", "expires_in": 7200})
	})
	mux.HandleFunc("/cgi-bin/draft/add", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "tok-1", r.URL.Query().Get("access_token"))
		_ = json.NewEncoder(w).Encode(map[string]interface{}{"media_id": "media-1"})
	})
	mux.HandleFunc("/cgi-bin/freepublish/submit", func(w http.ResponseWriter, r *http.Request) {
		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "media-1", body["media_id"])
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"publish_id":  "pub-1",
			"article_id":  "wx-article-1",
			"article_url": "https://mp.weixin.qq.com/s/wx-article-1",
		})
	})
	return httptest.NewServer(mux)
}

func TestPublish(t *testing.T) {
	tokenCalls := 0
	srv := newTestServer(t, &tokenCalls)
	defer srv.Close()

	client := NewClient("app-id", "app-secret", srv.URL)
	result, err := client.Publish(context.Background(), ArticleDraft{Title: "t", Content: "c", Author: "a"})
	require.NoError(t, err)
	assert.Equal(t, "wx-article-1", result.ArticleID)
	assert.Equal(t, "https://mp.weixin.qq.com/s/wx-article-1", result.URL)
	assert.False(t, result.PublishedAt.IsZero())

	// access_token 被缓存，第二次发布不再取 token
	_, err = client.Publish(context.Background(), ArticleDraft{Title: "t2", Content: "c2"})
	require.NoError(t, err)
	assert.Equal(t, 1, tokenCalls)
}

func TestPublishTokenError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]interface{}{"errcode": 40013, "errmsg": "invalid appid"})
	}))
	defer srv.Close()

	client := NewClient("bad-app", "secret", srv.URL)
	_, err := client.Publish(context.Background(), ArticleDraft{Title: "t"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid appid")
}

func TestPublishRejected(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/cgi-bin/token", func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]interface{}{"access_token": "tok", "expires_in": 7200})
	})
	mux.HandleFunc("/cgi-bin/draft/add", func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]interface{}{"errcode": 45009, "errmsg": "reach max api daily quota limit"})
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	client := NewClient("app-id", "secret", srv.URL)
	_, err := client.Publish(context.Background(), ArticleDraft{Title: "t"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "45009")
}
