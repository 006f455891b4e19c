package main

import (
	"encoding/json"
	"errors"
	"net/http"

	"inkwell/internal/config"
	"inkwell/internal/repository"
	"inkwell/internal/service"
)

// postInput is the only shape callers may send. Unknown fields are rejected
// at this boundary rather than silently dropped.
type postInput struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

func decodePostInput(r *http.Request) (postInput, error) {
	var in postInput
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&in); err != nil {
		return postInput{}, err
	}
	return in, nil
}

func handlePosts(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		serveListPosts(w, r)
	case http.MethodPost:
		serveCreatePost(w, r)
	default:
		writeMessage(w, http.StatusMethodNotAllowed, config.MsgMethodNotAllowed)
	}
}

func handlePostBySlug(w http.ResponseWriter, r *http.Request) {
	postSlug := r.PathValue("slug")
	if postSlug == "" {
		writeMessage(w, http.StatusNotFound, config.MsgPostNotFound)
		return
	}

	switch r.Method {
	case http.MethodGet:
		serveGetPost(w, r, postSlug)
	case http.MethodPut:
		serveUpdatePost(w, r, postSlug)
	case http.MethodDelete:
		serveDeletePost(w, r, postSlug)
	default:
		writeMessage(w, http.StatusMethodNotAllowed, config.MsgMethodNotAllowed)
	}
}

func serveListPosts(w http.ResponseWriter, r *http.Request) {
	posts, err := postService.ListPosts(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, listResponse{Success: true, Posts: posts})
}

func serveCreatePost(w http.ResponseWriter, r *http.Request) {
	in, err := decodePostInput(r)
	if err != nil {
		writeMessage(w, http.StatusBadRequest, config.MsgInvalidBody)
		return
	}

	post, err := postService.CreatePost(r.Context(), in.Title, in.Content)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, postResponse{
		Success: true,
		Message: "Post created successfully",
		Post: createdPost{
			ID:        post.ID,
			Title:     post.Title,
			Slug:      post.Slug,
			CreatedAt: post.CreatedAt,
		},
	})
}

func serveGetPost(w http.ResponseWriter, r *http.Request, postSlug string) {
	post, err := postService.GetPost(r.Context(), postSlug)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	if post.ContentHash != "" {
		w.Header().Set(config.HCacheControl, "no-cache")
		w.Header().Set(config.HETag, post.ContentHash)
	}
	writeJSON(w, http.StatusOK, postResponse{Success: true, Post: post})
}

func serveUpdatePost(w http.ResponseWriter, r *http.Request, postSlug string) {
	in, err := decodePostInput(r)
	if err != nil {
		writeMessage(w, http.StatusBadRequest, config.MsgInvalidBody)
		return
	}

	post, err := postService.UpdatePost(r.Context(), postSlug, in.Title, in.Content)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, postResponse{
		Success: true,
		Message: "Post updated successfully",
		Post: updatedPost{
			ID:        post.ID,
			Title:     post.Title,
			Content:   post.Content,
			Slug:      post.Slug,
			UpdatedAt: post.UpdatedAt,
		},
	})
}

func serveDeletePost(w http.ResponseWriter, r *http.Request, postSlug string) {
	if err := postService.DeletePost(r.Context(), postSlug); err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, deleteResponse{Success: true, Message: "Post deleted successfully"})
}

func serveHealth(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeMessage(w, http.StatusMethodNotAllowed, config.MsgMethodNotAllowed)
		return
	}

	if database != nil {
		if err := database.Get().Ping(); err != nil {
			logger.Error().Err(err).Msg("Health check failed")
			writeMessage(w, http.StatusInternalServerError, config.MsgInternalError)
			return
		}
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// writeServiceError maps typed core errors onto the response contract.
// Anything unrecognized is an unexpected storage failure: logged, 500.
func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrValidation):
		writeMessage(w, http.StatusBadRequest, config.MsgTitleContentNeeded)
	case errors.Is(err, service.ErrDuplicateTitle):
		writeMessage(w, http.StatusBadRequest, config.MsgDuplicateTitle)
	case errors.Is(err, repository.ErrNotFound):
		writeMessage(w, http.StatusNotFound, config.MsgPostNotFound)
	default:
		logger.Error().Stack().Err(err).Msg("Unexpected error")
		writeMessage(w, http.StatusInternalServerError, config.MsgInternalError)
	}
}
