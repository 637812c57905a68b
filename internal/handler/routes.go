package handler

import (
	"net/http"
)

// Router groups every handler the API serves.
type Router struct {
	Base       *Handler
	Auth       *AuthHandler
	Clients    *ClientHandler
	Contacts   *ContactHandler
	FAQs       *FAQHandler
	Images     *ImageHandler
	Logos      *LogoHandler
	Newsletter *NewsletterHandler
	Blog       *BlogHandler
	Bots       *BotClassifier

	// RequireAuth guards admin routes.
	RequireAuth func(http.Handler) http.Handler
	// RateLimit guards public form posts. nil disables limiting.
	RateLimit *RateLimiter
	// Extra routes such as /metrics and /uploads/, keyed by pattern.
	Extra map[string]http.Handler
}

// Handler registers all routes and wraps them in the global middleware chain:
// recover → request logger → metrics → security headers → CORS → bot classifier → mux.
func (rt *Router) Handler(metricsMiddleware func(http.Handler) http.Handler) http.Handler {
	mux := http.NewServeMux()
	admin := func(f http.HandlerFunc) http.Handler { return rt.RequireAuth(f) }
	limited := func(f http.HandlerFunc) http.Handler {
		if rt.RateLimit == nil {
			return f
		}
		return rt.RateLimit.Wrap(f)
	}

	mux.HandleFunc("GET /api/health", rt.Base.Health)

	// 管理者認証
	mux.HandleFunc("POST /api/auth/login", rt.Auth.Login)
	mux.HandleFunc("POST /api/auth/logout", rt.Auth.Logout)
	mux.Handle("GET /api/auth/session", admin(rt.Auth.Session))

	// 問い合わせ（投稿は公開、管理は認証必須）
	mux.Handle("POST /api/contacts", limited(rt.Contacts.Submit))
	mux.Handle("GET /api/contacts", admin(rt.Contacts.List))
	mux.Handle("PUT /api/contacts", admin(rt.Contacts.Update))
	mux.Handle("DELETE /api/contacts", admin(rt.Contacts.Delete))

	mux.Handle("GET /api/clients", admin(rt.Clients.List))
	mux.Handle("POST /api/clients", admin(rt.Clients.Create))
	mux.Handle("PUT /api/clients", admin(rt.Clients.Update))
	mux.Handle("DELETE /api/clients", admin(rt.Clients.Delete))

	mux.HandleFunc("GET /api/faqs", rt.FAQs.List)
	mux.Handle("POST /api/faqs", admin(rt.FAQs.Create))
	mux.Handle("PUT /api/faqs", admin(rt.FAQs.Update))
	mux.Handle("DELETE /api/faqs", admin(rt.FAQs.Delete))

	mux.HandleFunc("GET /api/images", rt.Images.List)
	mux.Handle("POST /api/images", admin(rt.Images.Upload))
	mux.Handle("PUT /api/images", admin(rt.Images.Update))
	mux.Handle("DELETE /api/images", admin(rt.Images.Delete))

	mux.Handle("POST /api/upload", admin(rt.Logos.Upload))
	mux.HandleFunc("GET /api/logos", rt.Logos.List)
	mux.Handle("POST /api/logos", admin(rt.Logos.Create))
	mux.Handle("PUT /api/logos", admin(rt.Logos.Update))
	mux.Handle("DELETE /api/logos", admin(rt.Logos.Delete))

	mux.Handle("POST /api/newsletter", limited(rt.Newsletter.Subscribe))
	mux.Handle("GET /api/newsletter", admin(rt.Newsletter.List))

	// 公開ブログ（ボット判定の対象）
	mux.HandleFunc("GET "+rt.Bots.prefix, rt.Blog.ListPublished)
	mux.HandleFunc("GET "+rt.Bots.prefix+"/{slug}", rt.Blog.GetPublished)
	mux.Handle("GET /api/blog-posts", admin(rt.Blog.List))
	mux.Handle("POST /api/blog-posts", admin(rt.Blog.Create))
	mux.Handle("PUT /api/blog-posts", admin(rt.Blog.Update))
	mux.Handle("DELETE /api/blog-posts", admin(rt.Blog.Delete))

	for pattern, h := range rt.Extra {
		mux.Handle(pattern, h)
	}

	var h http.Handler = mux
	h = rt.Bots.Middleware(h)
	h = rt.Base.CORS(h)
	h = SecurityHeaders(h)
	if metricsMiddleware != nil {
		h = metricsMiddleware(h)
	}
	h = RequestLogger(h)
	return Recoverer(h)
}
