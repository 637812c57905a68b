package handler

import (
	"net/http"
	"strings"

	"github.com/rtaweb/backend/internal/metrics"
)

const (
	isBotHeader = "X-Is-Bot"
	// 1 時間は新鮮、その後 24 時間は古いキャッシュを返してよい
	botCacheControl = "public, max-age=3600, s-maxage=3600, stale-while-revalidate=86400"
)

// defaultBotAgents are lower-case User-Agent fragments of search crawlers,
// link-preview fetchers and AI assistant fetchers.
var defaultBotAgents = []string{
	// search
	"googlebot",
	"bingbot",
	"slurp",
	"duckduckbot",
	"baiduspider",
	"yandexbot",
	"applebot",
	"amazonbot",
	// social previews
	"facebookexternalhit",
	"twitterbot",
	"linkedinbot",
	"whatsapp",
	"telegrambot",
	"slackbot",
	"discordbot",
	// AI fetchers
	"gptbot",
	"chatgpt-user",
	"oai-searchbot",
	"claudebot",
	"claude-web",
	"anthropic-ai",
	"perplexitybot",
	"google-extended",
	"ccbot",
	"bytespider",
}

// BotClassifier marks responses under the blog prefix as bot or human and
// gives bots a long-lived, stale-tolerant Cache-Control. Other paths pass
// through untouched. It never reads or alters the body.
type BotClassifier struct {
	prefix string
	agents []string
}

// NewBotClassifier creates a classifier for paths under prefix. extra adds
// User-Agent fragments to the built-in list; matching is case-insensitive.
func NewBotClassifier(prefix string, extra []string) *BotClassifier {
	prefix = "/" + strings.Trim(prefix, "/")
	agents := make([]string, 0, len(defaultBotAgents)+len(extra))
	agents = append(agents, defaultBotAgents...)
	for _, e := range extra {
		if e = strings.ToLower(strings.TrimSpace(e)); e != "" {
			agents = append(agents, e)
		}
	}
	return &BotClassifier{prefix: prefix, agents: agents}
}

// Applies reports whether path is under the classifier's prefix.
func (c *BotClassifier) Applies(path string) bool {
	return path == c.prefix || strings.HasPrefix(path, c.prefix+"/")
}

// IsBot reports whether userAgent contains a known bot fragment.
func (c *BotClassifier) IsBot(userAgent string) bool {
	ua := strings.ToLower(userAgent)
	if ua == "" {
		return false
	}
	for _, a := range c.agents {
		if strings.Contains(ua, a) {
			return true
		}
	}
	return false
}

func (c *BotClassifier) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !c.Applies(r.URL.Path) {
			next.ServeHTTP(w, r)
			return
		}
		bot := c.IsBot(r.UserAgent())
		metrics.ObserveClassification(bot)
		if bot {
			w.Header().Set(isBotHeader, "true")
			w.Header().Set("Cache-Control", botCacheControl)
		} else {
			w.Header().Set(isBotHeader, "false")
		}
		next.ServeHTTP(w, r)
	})
}
