package controllers

import (
	"net/http"

	"whisperchat_server/helpers"
	"whisperchat_server/services"

	"github.com/gorilla/mux"
)

// UserProfileController handles requests related to the profile screen
type UserProfileController struct {
	ProfileService *services.ProfileService
}

// NewUserProfileController creates a new instance of UserProfileController
func NewUserProfileController(service *services.ProfileService) *UserProfileController {
	return &UserProfileController{ProfileService: service}
}

func (c *UserProfileController) HandleGetProfile(w http.ResponseWriter, r *http.Request) {
	helpers.WriteJSONResponse(w, http.StatusOK, c.ProfileService.GetProfile(r.Context()))
}

// HandleGetTab returns the grid of the posts, saved or tagged tab
func (c *UserProfileController) HandleGetTab(w http.ResponseWriter, r *http.Request) {
	tab := mux.Vars(r)["tab"]

	posts, err := c.ProfileService.ListTab(r.Context(), tab)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	helpers.WriteJSONResponse(w, http.StatusOK, map[string]interface{}{
		"tab":   tab,
		"posts": posts,
	})
}
