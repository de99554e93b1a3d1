// Package server Hyumane
//
// Local view API of the hyumane client daemon: session resolution, the feed,
// chats, events and the verification callbacks.
//
//	Schemes: http
//	BasePath: /v1
//	Version: 1.0.0
//
//	Produces:
//	- application/json
//	Consumes:
//	- application/json
package server

import (
	"time"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/cors"

	"github.com/hyumane/hyumane/internal/chat"
	"github.com/hyumane/hyumane/internal/events"
	"github.com/hyumane/hyumane/internal/feed"
	mm "github.com/hyumane/hyumane/internal/middleware"
	"github.com/hyumane/hyumane/internal/session"
	"github.com/hyumane/hyumane/internal/verification"
)

const eventsCacheTTL = time.Minute

type server struct {
	gate     *session.Gate
	verifier *verification.Handler

	feed   *feed.Controller
	chat   *chat.Controller
	events *events.Controller
}

// SetupRouter setups handlers to chi router. The page controllers are nil
// until the gate resolves to ready; their routes answer with the gate status
// meanwhile.
func SetupRouter(r chi.Router, timeout time.Duration,
	gate *session.Gate, verifier *verification.Handler,
	f *feed.Controller, c *chat.Controller, e *events.Controller,
) {
	r.Use(
		middleware.RequestID,
		middleware.Logger,
		middleware.StripSlashes,
		cors.AllowAll().Handler,
		middleware.Recoverer,
		middleware.Timeout(timeout),
	)

	srv := server{
		gate:     gate,
		verifier: verifier,
		feed:     f,
		chat:     c,
		events:   e,
	}

	r.Get("/health", srv.health)

	r.Route("/v1", func(r chi.Router) {
		r.Get("/session", srv.getSession)

		r.Post("/verification/success", srv.verificationSuccess)
		r.Post("/verification/error", srv.verificationError)

		r.Post("/profiles", srv.createProfile)

		r.Get("/events", mm.Cached(eventsCacheTTL, srv.listEvents))

		r.Group(func(r chi.Router) {
			r.Use(srv.requireReady)

			r.Get("/feed", srv.listPosts)
			r.Post("/feed/posts", srv.createPost)
			r.Post("/feed/posts/{postID}/like", srv.toggleLike)
			r.Get("/feed/posts/{postID}/replies", srv.listReplies)
			r.Post("/feed/posts/{postID}/replies", srv.createReply)

			r.Get("/profiles/{actorID}/follow", srv.getFollow)
			r.Post("/profiles/{actorID}/follow", srv.toggleFollow)

			r.Get("/chats", srv.listChats)
			r.Get("/chats/{chatID}/messages", srv.listMessages)
			r.Post("/chats/{chatID}/messages", srv.sendMessage)
		})
	})
}
