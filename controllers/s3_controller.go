package controllers

import (
	"encoding/json"
	"log"
	"net/http"

	"whisperchat_server/helpers"
	"whisperchat_server/services"
)

// MediaController hands out presigned S3 URLs for composer images
type MediaController struct {
	MediaService *services.MediaService
}

func NewMediaController(service *services.MediaService) *MediaController {
	return &MediaController{MediaService: service}
}

// GeneratePresignedURL generates a presigned URL for S3 uploads
func (c *MediaController) GeneratePresignedURL(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		FileName string `json:"fileName"`
		FileType string `json:"fileType"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		log.Printf("Error decoding request body: %v", err)
		helpers.WriteJSONError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	if payload.FileName == "" || payload.FileType == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, "Missing required fields")
		return
	}

	log.Printf("GeneratePresignedURL: FileName: %s, FileType: %s", payload.FileName, payload.FileType)

	url, key, err := c.MediaService.GenerateUploadURL(r.Context(), payload.FileName, payload.FileType)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	helpers.WriteJSONResponse(w, http.StatusOK, map[string]string{"url": url, "fileName": key})
}

// GetPresignedReadURL generates a presigned URL for reading S3 objects
func (c *MediaController) GetPresignedReadURL(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Key string `json:"key"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil || payload.Key == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	url, err := c.MediaService.GenerateReadURL(r.Context(), payload.Key)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	helpers.WriteJSONResponse(w, http.StatusOK, map[string]string{"url": url})
}
