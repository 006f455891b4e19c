package main

import (
	"encoding/json"
	"net/http"
	"time"

	"inkwell/internal/config"
	"inkwell/internal/model"
)

type errorResponse struct {
	Message string `json:"message"`
}

type listResponse struct {
	Success bool                `json:"success"`
	Posts   []model.PostSummary `json:"posts"`
}

type postResponse struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Post    interface{} `json:"post"`
}

type deleteResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// createdPost is the create-response projection: content is not echoed back.
type createdPost struct {
	ID        model.PostID `json:"id"`
	Title     string       `json:"title"`
	Slug      string       `json:"slug"`
	CreatedAt time.Time    `json:"createdAt"`
}

// updatedPost is the update-response projection: createdAt is untouched by
// updates and therefore omitted.
type updatedPost struct {
	ID        model.PostID `json:"id"`
	Title     string       `json:"title"`
	Content   string       `json:"content"`
	Slug      string       `json:"slug"`
	UpdatedAt time.Time    `json:"updatedAt"`
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set(config.HCType, config.CTypeJSON)
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logger.Error().Err(err).Msg("Error encoding response")
	}
}

func writeMessage(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorResponse{Message: message})
}
