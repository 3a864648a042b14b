// internal/adapters/http_server/handlers.go
package httpserver

import (
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"mwalali_homes/internal/adapters/observability"
	"mwalali_homes/internal/app"
	"mwalali_homes/internal/domain"
	"mwalali_homes/internal/gallery"
)

const maxBody = 64 << 10

type Handlers struct {
	Listings  *app.ListingService
	Chat      *app.ChatService
	Inquiries *app.InquiryService
}

type problem struct {
	Type   string `json:"type"`
	Title  string `json:"title"`
	Status int    `json:"status"`
	Detail string `json:"detail,omitempty"`
	Field  string `json:"field,omitempty"`
}

// propertyView adds the card price label to the stored listing.
type propertyView struct {
	domain.Property
	DisplayPrice string `json:"displayPrice"`
}

func viewOf(p domain.Property) propertyView {
	return propertyView{Property: p, DisplayPrice: p.DisplayPrice()}
}

func viewsOf(ps []domain.Property) []propertyView {
	out := make([]propertyView, len(ps))
	for i, p := range ps {
		out[i] = viewOf(p)
	}
	return out
}

func (s *Server) MountHandlers(h *Handlers) {
	s.mux.Get("/healthz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200); _, _ = w.Write([]byte("ok")) })

	s.mux.Route("/v1", func(r chi.Router) {
		r.Get("/properties", h.listProperties)
		r.Get("/properties/{id}", h.getProperty)
		r.Get("/properties/{id}/gallery", h.listSlides)
		r.Get("/properties/{id}/gallery/{index}", h.getSlide)
		r.Get("/properties/{id}/payment-plan", h.paymentPlan)
		r.Get("/chat/greeting", h.greeting)
		r.Post("/inquiries", h.contact)
		r.Get("/views/{view}", h.navigate)

		s.limited(r).Post("/search", h.search)
		s.limited(r).Post("/chat", h.chat)
	})

	s.mux.Get("/assets/*", s.serveAsset)
}

func writeProblem(w http.ResponseWriter, status int, title, detail string) {
	writeProblemJSON(w, problem{Type: "about:blank", Title: title, Status: status, Detail: detail})
}

func writeProblemJSON(w http.ResponseWriter, p problem) {
	w.Header().Set("Content-Type", "application/problem+json")
	w.WriteHeader(p.Status)
	if err := json.NewEncoder(w).Encode(p); err != nil {
		log.Error().Err(err).Msg("write JSON problem response failed")
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error().Err(err).Msg("write JSON response failed")
	}
}

func decode(w http.ResponseWriter, r *http.Request, dst any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxBody)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		writeProblem(w, http.StatusBadRequest, "Invalid body", "request body must be a JSON object")
		return false
	}
	return true
}

// calcETagAndBody marshals once and hashes once, returning both ETag and body.
func calcETagAndBody(v any) (string, []byte) {
	body, err := json.Marshal(v)
	if err != nil {
		log.Error().Err(err).Msg("failed to marshal object for ETag/body")
		return "", nil
	}
	sum := sha1.Sum(body)
	etag := `W/"` + hex.EncodeToString(sum[:]) + `"`
	return etag, body
}

func (h *Handlers) listProperties(w http.ResponseWriter, r *http.Request) {
	cat, err := app.ParseCategory(r.URL.Query().Get("category"))
	if err != nil {
		writeProblem(w, http.StatusBadRequest, "Invalid category", err.Error())
		return
	}
	q := r.URL.Query().Get("q")
	items := h.Listings.List(domain.ListingQuery{Category: cat, Q: q})
	writeJSON(w, http.StatusOK, map[string]any{
		"category": cat,
		"query":    q,
		"count":    len(items),
		"items":    viewsOf(items),
	})
}

func (h *Handlers) property(w http.ResponseWriter, r *http.Request) (domain.Property, bool) {
	p, err := h.Listings.Get(chi.URLParam(r, "id"))
	if err != nil {
		writeProblem(w, http.StatusNotFound, "Not Found", "property not found")
		return domain.Property{}, false
	}
	return p, true
}

func (h *Handlers) getProperty(w http.ResponseWriter, r *http.Request) {
	p, ok := h.property(w, r)
	if !ok {
		return
	}

	etag, body := calcETagAndBody(viewOf(p))
	if inm := r.Header.Get("If-None-Match"); inm != "" && inm == etag {
		w.Header().Set("ETag", etag)
		w.WriteHeader(http.StatusNotModified)
		return
	}

	w.Header().Set("ETag", etag)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(body); err != nil {
		log.Error().Err(err).Msg("failed to write getProperty body")
	}
}

func (h *Handlers) listSlides(w http.ResponseWriter, r *http.Request) {
	p, ok := h.property(w, r)
	if !ok {
		return
	}
	slides := gallery.Slides(p)
	writeJSON(w, http.StatusOK, map[string]any{"propertyId": p.ID, "count": len(slides), "slides": slides})
}

type slideResponse struct {
	PropertyID string         `json:"propertyId"`
	Open       bool           `json:"open"`
	Count      int            `json:"count"`
	Index      int            `json:"index"`
	Prev       int            `json:"prev"`
	Next       int            `json:"next"`
	Slide      *gallery.Slide `json:"slide,omitempty"`
}

// getSlide opens the lightbox at {index} and optionally applies one input:
// ?key=ArrowRight or a swipe given as ?sx=&sy=&ex=&ey=.
func (h *Handlers) getSlide(w http.ResponseWriter, r *http.Request) {
	p, ok := h.property(w, r)
	if !ok {
		return
	}
	idx, err := strconv.Atoi(chi.URLParam(r, "index"))
	if err != nil {
		writeProblem(w, http.StatusBadRequest, "Invalid index", "index must be an integer")
		return
	}
	slides := gallery.Slides(p)
	if len(slides) == 0 {
		writeProblem(w, http.StatusNotFound, "Not Found", "property has no images")
		return
	}

	lb := gallery.NewLightbox(slides)
	lb.Open(gallery.Wrap(idx, len(slides)))
	a, err := inputAction(r)
	if err != nil {
		writeProblem(w, http.StatusBadRequest, "Invalid gesture", err.Error())
		return
	}
	lb.Apply(a)

	resp := slideResponse{PropertyID: p.ID, Open: lb.IsOpen(), Count: lb.Len(), Index: lb.Index()}
	resp.Prev = gallery.Wrap(resp.Index-1, resp.Count)
	resp.Next = gallery.Wrap(resp.Index+1, resp.Count)
	if cur, ok := lb.Current(); ok {
		resp.Slide = &cur
	}
	writeJSON(w, http.StatusOK, resp)
}

func inputAction(r *http.Request) (gallery.Action, error) {
	q := r.URL.Query()
	if k := q.Get("key"); k != "" {
		return gallery.KeyAction(k), nil
	}
	if q.Get("sx") == "" {
		return gallery.None, nil
	}
	var pts [4]float64
	for i, name := range []string{"sx", "sy", "ex", "ey"} {
		v, err := strconv.ParseFloat(q.Get(name), 64)
		if err != nil {
			return gallery.None, errors.New("swipe needs numeric sx, sy, ex and ey")
		}
		pts[i] = v
	}
	return gallery.SwipeAction(pts[0], pts[1], pts[2], pts[3]), nil
}

func (h *Handlers) paymentPlan(w http.ResponseWriter, r *http.Request) {
	inq, err := h.Inquiries.PaymentPlan(chi.URLParam(r, "id"))
	if err != nil {
		writeProblem(w, http.StatusNotFound, "Not Found", "property not found")
		return
	}
	observability.ObserveInquiry("payment_plan")
	writeJSON(w, http.StatusOK, inq)
}

type searchRequest struct {
	Query string `json:"query"`
}

func (h *Handlers) search(w http.ResponseWriter, r *http.Request) {
	var req searchRequest
	if !decode(w, r, &req) {
		return
	}
	res := h.Listings.Search(r.Context(), req.Query)
	if res.Source == app.SourceFallback {
		observability.ObserveFallback("search")
	}
	items := viewsOf(res.Items)
	writeJSON(w, http.StatusOK, map[string]any{
		"query":      res.Query,
		"source":     res.Source,
		"matchedIds": res.MatchedIDs,
		"items":      items,
	})
}

type chatRequest struct {
	History []domain.ChatMessage `json:"history"`
	Message string               `json:"message"`
}

func (h *Handlers) chat(w http.ResponseWriter, r *http.Request) {
	var req chatRequest
	if !decode(w, r, &req) {
		return
	}
	msg, err := h.Chat.Reply(r.Context(), req.History, req.Message)
	if errors.Is(err, app.ErrEmptyMessage) {
		writeProblem(w, http.StatusBadRequest, "Empty message", err.Error())
		return
	}
	if msg.IsError {
		observability.ObserveFallback("chat")
	}
	writeJSON(w, http.StatusOK, msg)
}

func (h *Handlers) greeting(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.Chat.Greeting())
}

func (h *Handlers) contact(w http.ResponseWriter, r *http.Request) {
	var form app.ContactForm
	if !decode(w, r, &form) {
		return
	}
	inq, err := h.Inquiries.Contact(form)
	var verr *app.ValidationError
	if errors.As(err, &verr) {
		writeProblemJSON(w, problem{
			Type: "about:blank", Title: "Invalid form", Status: http.StatusUnprocessableEntity,
			Detail: verr.Error(), Field: verr.Field,
		})
		return
	}
	if err != nil {
		writeProblem(w, http.StatusInternalServerError, "Internal Error", "could not build inquiry")
		return
	}
	observability.ObserveInquiry("contact")
	writeJSON(w, http.StatusCreated, inq)
}

func (h *Handlers) navigate(w http.ResponseWriter, r *http.Request) {
	page, err := h.Listings.Navigate(chi.URLParam(r, "view"))
	if errors.Is(err, domain.ErrNotFound) {
		writeProblem(w, http.StatusNotFound, "Not Found", "unknown view")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"view":       page.View,
		"title":      page.Title,
		"scrollTop":  page.ScrollTop,
		"query":      page.Query,
		"properties": viewsOf(page.Properties),
	})
}
