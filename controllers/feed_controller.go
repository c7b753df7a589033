package controllers

import (
	"net/http"

	"whisperchat_server/helpers"
	"whisperchat_server/models"
	"whisperchat_server/services"

	"github.com/gorilla/mux"
)

// FeedController handles the reel feed
type FeedController struct {
	FeedService *services.FeedService
}

func NewFeedController(service *services.FeedService) *FeedController {
	return &FeedController{FeedService: service}
}

// HandleGetFeed returns all reels with their counter labels
func (c *FeedController) HandleGetFeed(w http.ResponseWriter, r *http.Request) {
	items := c.FeedService.ListFeed(r.Context())
	helpers.WriteJSONResponse(w, http.StatusOK, map[string]interface{}{
		"reels": services.FeedViews(items),
	})
}

// HandleLikeReel toggles the liked flag of a reel
func (c *FeedController) HandleLikeReel(w http.ResponseWriter, r *http.Request) {
	c.toggle(w, r, models.FlagLiked)
}

// HandleSaveReel toggles the saved flag of a reel
func (c *FeedController) HandleSaveReel(w http.ResponseWriter, r *http.Request) {
	c.toggle(w, r, models.FlagSaved)
}

func (c *FeedController) toggle(w http.ResponseWriter, r *http.Request, flag models.FeedFlag) {
	id := mux.Vars(r)["id"]

	item, err := c.FeedService.Toggle(r.Context(), id, flag)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	helpers.WriteJSONResponse(w, http.StatusOK, services.FeedViewOf(item))
}
