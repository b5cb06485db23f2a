package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/nahidreza/folio/internal/errors"
	"github.com/nahidreza/folio/internal/portfolio"
	"github.com/nahidreza/folio/internal/render"
)

// ContentHandler serves the read-only content API.
type ContentHandler struct {
	site     *portfolio.Site
	renderer *render.Renderer
}

// NewContentHandler creates a handler over site.
func NewContentHandler(site *portfolio.Site, renderer *render.Renderer) *ContentHandler {
	if renderer == nil {
		renderer = render.New()
	}
	return &ContentHandler{site: site, renderer: renderer}
}

// detailResponse is a full entry, optionally with its rendered body.
type detailResponse struct {
	portfolio.Detail
	PageTitle string           `json:"pageTitle"`
	HTML      string           `json:"html,omitempty"`
	Outline   []render.Heading `json:"outline,omitempty"`
}

func (h *ContentHandler) section(r *http.Request) (portfolio.Section, error) {
	name := chi.URLParam(r, "kind")
	kind, ok := portfolio.ParseKind(name)
	if !ok {
		return nil, errors.Wrapf(errors.ErrUnknownKind, "%q", name)
	}
	sec, ok := h.site.Section(kind)
	if !ok {
		return nil, errors.Wrapf(errors.ErrUnknownKind, "%q", name)
	}
	return sec, nil
}

// List handles GET /api/{kind}. ?sort=year orders newest first; ?q= and
// ?tech= narrow the listing, ranking by match quality when q is set.
func (h *ContentHandler) List(w http.ResponseWriter, r *http.Request) {
	sec, err := h.section(r)
	if err != nil {
		HandleError(w, r, err)
		return
	}

	sortBy := r.URL.Query().Get("sort")
	if sortBy != "" && sortBy != "year" {
		Error(w, r, http.StatusBadRequest, "unsupported sort: "+sortBy)
		return
	}

	items, err := sec.List()
	if err != nil {
		HandleError(w, r, err)
		return
	}
	if sortBy == "year" {
		portfolio.SortByYear(items)
	}
	filter := portfolio.Filter{
		Query: r.URL.Query().Get("q"),
		Tech:  r.URL.Query().Get("tech"),
	}
	if filter != (portfolio.Filter{}) {
		items = portfolio.Search(items, filter)
	}

	Success(w, http.StatusOK, items)
}

// Slugs handles GET /api/{kind}/slugs.
func (h *ContentHandler) Slugs(w http.ResponseWriter, r *http.Request) {
	sec, err := h.section(r)
	if err != nil {
		HandleError(w, r, err)
		return
	}

	slugs, err := sec.Slugs()
	if err != nil {
		HandleError(w, r, err)
		return
	}

	Success(w, http.StatusOK, slugs)
}

// Get handles GET /api/{kind}/{slug}. ?render=html adds the rendered body
// and its outline.
func (h *ContentHandler) Get(w http.ResponseWriter, r *http.Request) {
	sec, err := h.section(r)
	if err != nil {
		HandleError(w, r, err)
		return
	}

	mode := r.URL.Query().Get("render")
	if mode != "" && mode != "html" {
		Error(w, r, http.StatusBadRequest, "unsupported render mode: "+mode)
		return
	}

	slug := chi.URLParam(r, "slug")
	detail, ok, err := sec.Get(slug)
	if err != nil {
		HandleError(w, r, err)
		return
	}
	if !ok {
		HandleError(w, r, errors.Wrapf(errors.ErrNotFound, "%s %q", sec.Kind(), slug))
		return
	}

	resp := detailResponse{
		Detail:    detail,
		PageTitle: portfolio.PageTitle(h.site.Name(), sec.Kind(), detail.Frontmatter.Base().Title),
	}
	if mode == "html" {
		doc, err := h.renderer.Render(detail.Content)
		if err != nil {
			HandleError(w, r, err)
			return
		}
		resp.HTML = doc.HTML
		resp.Outline = doc.Outline
	}

	Success(w, http.StatusOK, resp)
}

// Health handles GET /health.
func Health(w http.ResponseWriter, _ *http.Request) {
	Success(w, http.StatusOK, map[string]string{"status": "ok"})
}
