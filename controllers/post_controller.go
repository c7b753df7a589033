package controllers

import (
	"encoding/json"
	"log"
	"net/http"

	"whisperchat_server/helpers"
	"whisperchat_server/models"
	"whisperchat_server/services"
)

// PostController handles the post composer
type PostController struct {
	PostService *services.PostService
}

func NewPostController(service *services.PostService) *PostController {
	return &PostController{PostService: service}
}

// HandleCreatePost publishes a composer draft
func (c *PostController) HandleCreatePost(w http.ResponseWriter, r *http.Request) {
	var draft models.PostDraft
	if err := json.NewDecoder(r.Body).Decode(&draft); err != nil {
		log.Printf("❌ Invalid post payload: %v", err)
		helpers.WriteJSONError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	post, err := c.PostService.Publish(r.Context(), draft)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	helpers.WriteJSONResponse(w, http.StatusCreated, post)
}
