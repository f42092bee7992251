package api

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/joestump/devguide/internal/story"
)

func registerStoryRoutes(r chi.Router) {
	r.Post("/stories/parse", parseStory)
	r.Post("/stories/format", formatStory)
}

// parseStory splits user story text into title, description and criteria.
// POST /api/v1/stories/parse
//
// @Summary      Parse a user story
// @Description  The first line is the title; lines after "Acceptance Criteria:" become criteria with list markers removed.
// @Tags         Stories
// @Accept       json
// @Produce      json
// @Param        body  body      StoryTextRequest  true  "Story text"
// @Success      200   {object}  StoryParseResponse
// @Failure      400   {object}  ErrorResponse
// @Router       /stories/parse [post]
func parseStory(w http.ResponseWriter, r *http.Request) {
	var req StoryTextRequest
	if err := decode(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", codeBadRequest)
		return
	}
	us := story.Parse(strings.ReplaceAll(req.Text, "\r\n", "\n"))
	writeJSON(w, http.StatusOK, StoryParseResponse{Story: us, Summary: story.Summary(us)})
}

// formatStory renders a structured user story in its canonical text form.
// POST /api/v1/stories/format
//
// @Summary      Format a user story
// @Tags         Stories
// @Accept       json
// @Produce      json
// @Param        body  body      story.UserStory  true  "Structured story"
// @Success      200   {object}  StoryFormatResponse
// @Failure      400   {object}  ErrorResponse
// @Router       /stories/format [post]
func formatStory(w http.ResponseWriter, r *http.Request) {
	var us story.UserStory
	if err := decode(r, &us); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", codeBadRequest)
		return
	}
	if strings.TrimSpace(us.Title) == "" {
		writeError(w, http.StatusBadRequest, "title is required", codeBadRequest)
		return
	}
	writeJSON(w, http.StatusOK, StoryFormatResponse{Text: story.Format(us)})
}
