package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func serveClassified(c *BotClassifier, path, ua string, inner http.Handler) *httptest.ResponseRecorder {
	req := httptest.NewRequest("GET", path, nil)
	if ua != "" {
		req.Header.Set("User-Agent", ua)
	}
	rec := httptest.NewRecorder()
	c.Middleware(inner).ServeHTTP(rec, req)
	return rec
}

var okHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
	_, _ = w.Write([]byte("page"))
})

func TestBotClassifier_EveryKnownAgentAnyCase(t *testing.T) {
	c := NewBotClassifier("/blog", nil)

	for _, agent := range defaultBotAgents {
		for _, ua := range []string{
			"Mozilla/5.0 (compatible; " + agent + "/2.1)",
			"Mozilla/5.0 (compatible; " + strings.ToUpper(agent) + "/2.1)",
			"Mozilla/5.0 (compatible; " + mixedCase(agent) + ")",
		} {
			rec := serveClassified(c, "/blog/what-is-an-rta", ua, okHandler)
			if got := rec.Header().Get("X-Is-Bot"); got != "true" {
				t.Errorf("%q: expected X-Is-Bot=true, got %q", ua, got)
			}
			cc := rec.Header().Get("Cache-Control")
			if !strings.Contains(cc, "max-age=3600") || !strings.Contains(cc, "stale-while-revalidate=86400") {
				t.Errorf("%q: unexpected Cache-Control %q", ua, cc)
			}
		}
	}
}

func mixedCase(s string) string {
	b := []byte(s)
	for i := range b {
		if i%2 == 0 && b[i] >= 'a' && b[i] <= 'z' {
			b[i] -= 'a' - 'A'
		}
	}
	return string(b)
}

func TestBotClassifier_HumanGetsMarkerOnly(t *testing.T) {
	c := NewBotClassifier("/blog", nil)

	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if w.Header().Get("Cache-Control") != "" {
			t.Error("Cache-Control must not be set for humans")
		}
		_, _ = w.Write([]byte("page"))
	})

	rec := serveClassified(c, "/blog", "Mozilla/5.0 (Windows NT 10.0; Win64; x64) Chrome/126.0", inner)
	if got := rec.Header().Get("X-Is-Bot"); got != "false" {
		t.Errorf("expected X-Is-Bot=false, got %q", got)
	}
	if got := rec.Header().Get("Cache-Control"); got != "" {
		t.Errorf("expected no Cache-Control override, got %q", got)
	}
}

func TestBotClassifier_HumanKeepsDownstreamCacheControl(t *testing.T) {
	c := NewBotClassifier("/blog", nil)
	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Cache-Control", "no-store")
	})

	rec := serveClassified(c, "/blog/x", "curl-like-browser", inner)
	if got := rec.Header().Get("Cache-Control"); got != "no-store" {
		t.Errorf("expected downstream Cache-Control to survive, got %q", got)
	}
}

func TestBotClassifier_NonBlogPathUntouched(t *testing.T) {
	c := NewBotClassifier("/blog", nil)

	for _, path := range []string{"/", "/api/faqs", "/blogger", "/about/blog", "/api/blog-posts"} {
		rec := serveClassified(c, path, "Googlebot/2.1", okHandler)
		if got := rec.Header().Values("X-Is-Bot"); len(got) != 0 {
			t.Errorf("%s: expected no X-Is-Bot header, got %v", path, got)
		}
		if got := rec.Header().Get("Cache-Control"); got != "" {
			t.Errorf("%s: expected no Cache-Control, got %q", path, got)
		}
	}
}

func TestBotClassifier_BodyUnchanged(t *testing.T) {
	c := NewBotClassifier("/blog", nil)
	rec := serveClassified(c, "/blog", "GPTBot/1.0", okHandler)
	if rec.Body.String() != "page" {
		t.Errorf("body altered: %q", rec.Body.String())
	}
}

func TestBotClassifier_EmptyUserAgentIsHuman(t *testing.T) {
	c := NewBotClassifier("/blog", nil)
	rec := serveClassified(c, "/blog", "", okHandler)
	if got := rec.Header().Get("X-Is-Bot"); got != "false" {
		t.Errorf("expected false, got %q", got)
	}
}

func TestBotClassifier_ExtraAgentsAndPrefix(t *testing.T) {
	c := NewBotClassifier("insights/", []string{"  InternalCrawler ", ""})

	rec := serveClassified(c, "/insights/q3-update", "internalcrawler/0.1", okHandler)
	if got := rec.Header().Get("X-Is-Bot"); got != "true" {
		t.Errorf("expected extra agent to match, got %q", got)
	}
	rec = serveClassified(c, "/blog/q3-update", "internalcrawler/0.1", okHandler)
	if got := rec.Header().Get("X-Is-Bot"); got != "" {
		t.Errorf("old prefix must not be classified, got %q", got)
	}
}
