package api

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/eventboard/eventboard-api/internal/api/shared"
	"github.com/eventboard/eventboard-api/internal/domain"
	"github.com/eventboard/eventboard-api/internal/platform/logger"
	"github.com/eventboard/eventboard-api/internal/store"
)

// EventHandler handles event-related API requests.
type EventHandler struct {
	eventStore store.EventStore
	userStore  store.UserStore
	logger     *slog.Logger
}

// NewEventHandler creates a new EventHandler with the given dependencies.
// The user store is consulted at event creation to denormalize the
// owner's stored profile name onto the event.
func NewEventHandler(
	eventStore store.EventStore,
	userStore store.UserStore,
	log *slog.Logger,
) *EventHandler {
	if log == nil {
		log = slog.Default()
	}
	return &EventHandler{
		eventStore: eventStore,
		userStore:  userStore,
		logger:     log.With("component", "event_handler"),
	}
}

// List handles GET /events. Public.
func (h *EventHandler) List(w http.ResponseWriter, r *http.Request) {
	limit := parseLimit(r)

	events, err := h.eventStore.List(r.Context(), limit)
	if err != nil {
		shared.RespondWithError(w, r, MapErrorToStatusCode(err), err.Error())
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, EventListResponse{
		Count:  len(events),
		Events: events,
		Limit:  limit,
	})
}

// Mine handles GET /events/mine. Requires the authentication gate.
func (h *EventHandler) Mine(w http.ResponseWriter, r *http.Request) {
	identity, ok := requireIdentity(w, r)
	if !ok {
		return
	}

	limit := parseLimit(r)

	events, err := h.eventStore.ListByOwner(r.Context(), identity.UID, limit)
	if err != nil {
		shared.RespondWithError(w, r, MapErrorToStatusCode(err), err.Error())
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, EventListResponse{
		Count:  len(events),
		Events: events,
		Limit:  limit,
	})
}

// Get handles GET /events/{id}. Public.
func (h *EventHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := getPathUUID(r, "id")
	if err != nil {
		// An unparseable id cannot address any stored event.
		shared.RespondWithError(w, r, http.StatusNotFound, store.ErrEventNotFound.Error())
		return
	}

	event, err := h.eventStore.GetByID(r.Context(), id)
	if err != nil {
		shared.RespondWithError(w, r, MapErrorToStatusCode(err), err.Error())
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, event)
}

// Create handles POST /events. Requires the authentication gate.
func (h *EventHandler) Create(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	identity, ok := requireIdentity(w, r)
	if !ok {
		return
	}

	var req CreateEventRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if !domain.IsNonEmptyString(req.Title) {
		shared.RespondWithError(w, r, http.StatusBadRequest, domain.ErrInvalidTitle.Error())
		return
	}

	// Owner name and email are captured at creation time and never
	// refreshed. The stored profile is preferred; a missing profile
	// falls back to the token's claims.
	profileName := ""
	ownerEmail := identity.Email
	if owner, err := h.userStore.GetByID(r.Context(), identity.UID); err == nil {
		profileName = owner.Name
		ownerEmail = owner.Email
	} else if !store.IsNotFoundError(err) {
		log.Warn("failed to load owner profile", "error", err, "user_id", identity.UID)
	}
	ownerName := domain.OwnerDisplayName(profileName, identity.Name, ownerEmail)

	event, err := domain.NewEvent(req.Title, identity.UID, ownerName, ownerEmail)
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, err.Error())
		return
	}
	event.Location = domain.OptionalText(req.Location)
	event.Description = domain.OptionalText(req.Description)
	event.ImageURL = domain.OptionalText(req.ImageURL)
	event.ImageDeleteURL = domain.OptionalText(req.ImageDeleteURL)

	if err := h.eventStore.Create(r.Context(), event); err != nil {
		log.Error("failed to create event", "error", err, "owner_uid", identity.UID)
		shared.RespondWithError(w, r, MapErrorToStatusCode(err), err.Error())
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, CreateEventResponse{
		OK: true,
		ID: event.ID,
	})
}

// Update handles PUT /events/{id}. Requires the authentication gate.
// Optional fields omitted from the request are reset to null rather
// than preserved from the stored event.
func (h *EventHandler) Update(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	identity, ok := requireIdentity(w, r)
	if !ok {
		return
	}

	id, err := getPathUUID(r, "id")
	if err != nil {
		shared.RespondWithError(w, r, http.StatusNotFound, store.ErrEventNotFound.Error())
		return
	}

	var req UpdateEventRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if !domain.IsNonEmptyString(req.Title) {
		shared.RespondWithError(w, r, http.StatusBadRequest, domain.ErrInvalidTitle.Error())
		return
	}

	event, err := h.eventStore.GetByID(r.Context(), id)
	if err != nil {
		shared.RespondWithError(w, r, MapErrorToStatusCode(err), err.Error())
		return
	}

	if !event.IsOwnedBy(identity.UID) {
		shared.RespondWithError(w, r, http.StatusForbidden, ErrNotEventOwner.Error())
		return
	}

	update := store.EventUpdate{
		Title:          strings.TrimSpace(req.Title),
		Location:       domain.OptionalText(req.Location),
		ImageURL:       domain.OptionalText(req.ImageURL),
		ImageDeleteURL: domain.OptionalText(req.ImageDeleteURL),
	}
	if err := h.eventStore.Update(r.Context(), id, update); err != nil {
		if !store.IsNotFoundError(err) {
			log.Error("failed to update event", "error", err, "event_id", id)
		}
		shared.RespondWithError(w, r, MapErrorToStatusCode(err), err.Error())
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, StatusResponse{
		OK:  true,
		Msg: "event updated",
	})
}

// Delete handles DELETE /events/{id}. Requires the authentication gate.
func (h *EventHandler) Delete(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	identity, ok := requireIdentity(w, r)
	if !ok {
		return
	}

	id, err := getPathUUID(r, "id")
	if err != nil {
		shared.RespondWithError(w, r, http.StatusNotFound, store.ErrEventNotFound.Error())
		return
	}

	event, err := h.eventStore.GetByID(r.Context(), id)
	if err != nil {
		shared.RespondWithError(w, r, MapErrorToStatusCode(err), err.Error())
		return
	}

	if !event.IsOwnedBy(identity.UID) {
		shared.RespondWithError(w, r, http.StatusForbidden, ErrNotEventOwner.Error())
		return
	}

	if err := h.eventStore.Delete(r.Context(), id); err != nil {
		if !store.IsNotFoundError(err) {
			log.Error("failed to delete event", "error", err, "event_id", id)
		}
		shared.RespondWithError(w, r, MapErrorToStatusCode(err), err.Error())
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, StatusResponse{
		OK:  true,
		Msg: "event deleted",
	})
}
