package handlers

import (
	"log/slog"
	"net/http"

	"fieldgen-server/internal/field"
	"fieldgen-server/internal/layout"
	"fieldgen-server/internal/render"
	"fieldgen-server/internal/shared/errors"
	"fieldgen-server/internal/shared/response"
)

// FieldHandler serves freshly randomized field images on the challenge
// routes.
type FieldHandler struct {
	layouts  *layout.Service
	renderer *render.Service
}

func NewFieldHandler(layouts *layout.Service, renderer *render.Service) *FieldHandler {
	return &FieldHandler{layouts: layouts, renderer: renderer}
}

// Generate handles GET /{challenge}/{direction}: it randomizes one layout
// and responds with the rendered PNG.
func (h *FieldHandler) Generate(w http.ResponseWriter, r *http.Request) {
	logger := slog.With("handler", "generate_field")

	if r.Method != http.MethodGet {
		response.Error(w, r, logger, errors.MethodNotAllowed(r.Method))
		return
	}

	req, err := parseRequest(r.PathValue("challenge"), r.PathValue("direction"))
	if err != nil {
		response.Error(w, r, logger, err)
		return
	}

	l, err := h.layouts.Generate(req)
	if err != nil {
		response.Error(w, r, logger, err)
		return
	}

	img, err := h.renderer.PNG(l)
	if err != nil {
		response.Error(w, r, logger, err)
		return
	}

	response.ImagePNG(w, http.StatusOK, img)
}

// parseRequest maps the route vocabulary onto a generation request:
// qualification rounds use the open challenge rules, with an optional fixed
// center, and the final uses the obstacle challenge rules.
func parseRequest(challenge, direction string) (layout.Request, error) {
	var req layout.Request

	switch challenge {
	case "qualification":
		req.Challenge = field.ChallengeOpen
	case "qualification-fixed":
		req.Challenge = field.ChallengeOpen
		req.FixedCenter = true
	case "final":
		req.Challenge = field.ChallengeObstacle
	default:
		return layout.Request{}, errors.Validationf("unknown challenge %q", challenge)
	}

	switch direction {
	case "cw":
		req.Direction = field.Clockwise
	case "ccw":
		req.Direction = field.Counterclockwise
	case "random":
		// leave empty, the layout service rolls one
	default:
		return layout.Request{}, errors.Validationf("unknown direction %q", direction)
	}

	return req, nil
}
