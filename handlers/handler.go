package handlers

import (
	"context"
	"errors"
	"log"
	"net/http"
	"sync"
	"time"

	"delivery-app/auth"
	"delivery-app/models"
	"delivery-app/session"
	"delivery-app/statemachine"
	"delivery-app/store"

	"github.com/gin-gonic/gin"
)

// persistTimeout bounds each background session write.
const persistTimeout = 5 * time.Second

// persistQueue is how many session writes may wait for the writer.
const persistQueue = 64

type persistJob struct {
	what string
	fn   func(ctx context.Context) error
}

// Handler serves every route group. Dependencies are injected by main.
type Handler struct {
	store     *store.Store
	directory *auth.Directory
	sessions  *session.Manager
	jwtSecret []byte

	jobs      chan persistJob
	done      chan struct{}
	closeOnce sync.Once
}

// New starts the session writer; call Close to drain it.
func New(s *store.Store, dir *auth.Directory, sessions *session.Manager, jwtSecret []byte) *Handler {
	h := &Handler{
		store:     s,
		directory: dir,
		sessions:  sessions,
		jwtSecret: jwtSecret,
		jobs:      make(chan persistJob, persistQueue),
		done:      make(chan struct{}),
	}
	go h.writeSessions()
	return h
}

// writeSessions applies queued writes one at a time, in request order.
func (h *Handler) writeSessions() {
	defer close(h.done)
	for job := range h.jobs {
		ctx, cancel := context.WithTimeout(context.Background(), persistTimeout)
		if err := job.fn(ctx); err != nil {
			log.Printf("session: %s: %v", job.what, err)
		}
		cancel()
	}
}

// persist queues a session write off the request path. Failures are only logged.
func (h *Handler) persist(what string, fn func(ctx context.Context) error) {
	h.jobs <- persistJob{what: what, fn: fn}
}

// Close waits for queued session writes. No handler may run afterwards.
func (h *Handler) Close() {
	h.closeOnce.Do(func() { close(h.jobs) })
	<-h.done
}

// respondError maps domain errors to status codes.
func respondError(c *gin.Context, err error) {
	var terr *statemachine.TransitionError
	var perr *store.IncompleteProfileError

	switch {
	case errors.As(err, &terr):
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error":             "Invalid state transition",
			"current_status":    terr.From,
			"requested":         terr.To,
			"reason":            err.Error(),
			"valid_next_states": statemachine.ValidTransitionsFrom(terr.From),
		})
	case errors.As(err, &perr):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "missing_fields": perr.Fields})
	case errors.Is(err, store.ErrRestaurantNotFound),
		errors.Is(err, store.ErrMenuItemNotFound),
		errors.Is(err, store.ErrOrderNotFound),
		errors.Is(err, store.ErrCartLineNotFound),
		errors.Is(err, store.ErrDispatcherNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, store.ErrOrderAlreadyTaken),
		errors.Is(err, store.ErrDuplicateMenuItem),
		errors.Is(err, store.ErrDuplicateRestaurant):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, store.ErrNotAssignedDispatcher),
		errors.Is(err, store.ErrDispatcherInactive):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	case errors.Is(err, store.ErrRestaurantInactive),
		errors.Is(err, store.ErrInvalidPrice),
		errors.Is(err, store.ErrInvalidQuantity),
		errors.Is(err, store.ErrEmptyCart),
		errors.Is(err, store.ErrUnknownStatus):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, auth.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
	default:
		log.Printf("unhandled error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}

// requireConfirm enforces ?confirm=true on destructive requests.
func requireConfirm(c *gin.Context) bool {
	if c.Query("confirm") == "true" {
		return true
	}
	c.JSON(http.StatusPreconditionFailed, gin.H{"error": "Add ?confirm=true to confirm this deletion"})
	return false
}

// parseStatuses reads the optional ?status= filter.
func parseStatuses(c *gin.Context) ([]models.OrderStatus, bool) {
	raw := c.Query("status")
	if raw == "" {
		return nil, true
	}
	st := models.OrderStatus(raw)
	if !st.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown status filter", "valid_statuses": models.AllStatuses})
		return nil, false
	}
	return []models.OrderStatus{st}, true
}

type UpdateOrderStatusRequest struct {
	Status models.OrderStatus `json:"status" binding:"required"`
}
