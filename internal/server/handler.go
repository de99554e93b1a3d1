package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi"
	"github.com/sirupsen/logrus"

	"github.com/hyumane/hyumane/internal/backend"
	"github.com/hyumane/hyumane/internal/engine"
	"github.com/hyumane/hyumane/internal/entities"
	"github.com/hyumane/hyumane/internal/feed"
	"github.com/hyumane/hyumane/internal/session"
)

var log = logrus.WithField("package", "server")

func writeOK(w http.ResponseWriter, status int, v interface{}) {
	body, _ := json.Marshal(v)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(body)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeOK(w, status, Error{Error: message})
}

func writeInternalError(w http.ResponseWriter, err error) {
	log.WithError(err).Error("internal error")
	writeError(w, http.StatusInternalServerError, "internal error")
}

// writeMutationError maps the mutation outcome onto the wire.
func writeMutationError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, engine.ErrMutationInFlight):
		writeError(w, http.StatusConflict, err.Error())
	case errors.Is(err, feed.ErrUnknownPost), errors.Is(err, backend.ErrNotFound):
		writeError(w, http.StatusNotFound, err.Error())
	default:
		writeInternalError(w, err)
	}
}

// requireReady answers feed and chat routes with the gate status while the
// daemon has no resolved actor.
func (s server) requireReady(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if s.feed == nil || s.chat == nil {
			res := s.gate.Resolve(r.Context())
			writeError(w, http.StatusUnauthorized, string(res.Status))
			return
		}

		next.ServeHTTP(w, r)
	})
}

func (s server) health(w http.ResponseWriter, _ *http.Request) {
	writeOK(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s server) getSession(w http.ResponseWriter, r *http.Request) {
	// swagger:operation GET /session Session GetSession
	//
	// Resolve the current actor.
	//
	// ---
	// responses:
	//   '200':
	//     description: Session
	//     schema:
	//       "$ref": "#/definitions/SessionResponse"

	res := s.gate.Resolve(r.Context())

	writeOK(w, http.StatusOK, SessionResponse{
		Status: res.Status,
		Actor:  toAPIProfile(res.Actor),
	})
}

func (s server) verificationSuccess(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Token string `json:"token"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Token == "" {
		writeError(w, http.StatusBadRequest, "token is required")
		return
	}

	if err := s.verifier.OnSuccess(r.Context(), req.Token); err != nil {
		log.WithError(err).Debug("verification rejected")
		writeError(w, http.StatusBadRequest, "invalid token")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (s server) verificationError(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Details string `json:"details"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request")
		return
	}

	s.verifier.OnError(req.Details)

	w.WriteHeader(http.StatusNoContent)
}

func (s server) createProfile(w http.ResponseWriter, r *http.Request) {
	var req struct {
		DisplayName string `json:"displayName"`
		Bio         string `json:"bio"`
		Interests   string `json:"interests"`
		Avatar      string `json:"avatar"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.DisplayName == "" {
		writeError(w, http.StatusBadRequest, "displayName is required")
		return
	}

	if err := s.gate.CreateProfile(r.Context(), &entities.ActorProfile{
		DisplayName: req.DisplayName,
		Bio:         req.Bio,
		Interests:   req.Interests,
		Avatar:      req.Avatar,
	}); err != nil {
		switch {
		case errors.Is(err, session.ErrUnauthenticated):
			writeError(w, http.StatusUnauthorized, err.Error())
		case errors.Is(err, backend.ErrAlreadyExists):
			writeError(w, http.StatusConflict, "profile already exists")
		default:
			writeInternalError(w, err)
		}
		return
	}

	res := s.gate.Resolve(r.Context())

	writeOK(w, http.StatusOK, SessionResponse{
		Status: res.Status,
		Actor:  toAPIProfile(res.Actor),
	})
}

func (s server) listEvents(w http.ResponseWriter, r *http.Request) {
	writeOK(w, http.StatusOK, toAPISchedule(s.events.Load(r.Context())))
}

func (s server) listPosts(w http.ResponseWriter, r *http.Request) {
	s.feed.Load(r.Context())
	writeOK(w, http.StatusOK, toAPIPosts(s.feed.State().Posts()))
}

func (s server) createPost(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Body string `json:"body"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Body == "" {
		writeError(w, http.StatusBadRequest, "body is required")
		return
	}

	if err := s.feed.CreatePost(r.Context(), req.Body); err != nil {
		writeMutationError(w, err)
		return
	}

	writeOK(w, http.StatusOK, toAPIPosts(s.feed.State().Posts()))
}

func (s server) toggleLike(w http.ResponseWriter, r *http.Request) {
	if err := s.feed.ToggleLike(r.Context(), chi.URLParam(r, "postID")); err != nil {
		writeMutationError(w, err)
		return
	}

	writeOK(w, http.StatusOK, toAPIPosts(s.feed.State().Posts()))
}

func (s server) listReplies(w http.ResponseWriter, r *http.Request) {
	postID := chi.URLParam(r, "postID")

	s.feed.LoadReplies(r.Context(), postID)
	writeOK(w, http.StatusOK, toAPIReplies(s.feed.State().Replies(postID)))
}

func (s server) createReply(w http.ResponseWriter, r *http.Request) {
	postID := chi.URLParam(r, "postID")

	var req struct {
		Body string `json:"body"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Body == "" {
		writeError(w, http.StatusBadRequest, "body is required")
		return
	}

	if err := s.feed.CreateReply(r.Context(), postID, req.Body); err != nil {
		writeMutationError(w, err)
		return
	}

	writeOK(w, http.StatusOK, toAPIReplies(s.feed.State().Replies(postID)))
}

func (s server) getFollow(w http.ResponseWriter, r *http.Request) {
	actorID := chi.URLParam(r, "actorID")

	s.feed.LoadFollowing(r.Context(), actorID)
	writeOK(w, http.StatusOK, FollowResponse{Following: s.feed.State().Following(actorID)})
}

func (s server) toggleFollow(w http.ResponseWriter, r *http.Request) {
	actorID := chi.URLParam(r, "actorID")

	if err := s.feed.ToggleFollow(r.Context(), actorID); err != nil {
		writeMutationError(w, err)
		return
	}

	writeOK(w, http.StatusOK, FollowResponse{Following: s.feed.State().Following(actorID)})
}

func (s server) listChats(w http.ResponseWriter, r *http.Request) {
	s.chat.LoadChats(r.Context())
	writeOK(w, http.StatusOK, toAPIChats(s.chat.State().Chats()))
}

func (s server) listMessages(w http.ResponseWriter, r *http.Request) {
	chatID := chi.URLParam(r, "chatID")

	s.chat.LoadMessages(r.Context(), chatID)
	writeOK(w, http.StatusOK, toAPIMessages(s.chat.State().Messages(chatID)))
}

func (s server) sendMessage(w http.ResponseWriter, r *http.Request) {
	chatID := chi.URLParam(r, "chatID")

	var req struct {
		Body string `json:"body"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Body == "" {
		writeError(w, http.StatusBadRequest, "body is required")
		return
	}

	if err := s.chat.SendMessage(r.Context(), chatID, req.Body); err != nil {
		writeMutationError(w, err)
		return
	}

	writeOK(w, http.StatusOK, toAPIMessages(s.chat.State().Messages(chatID)))
}
