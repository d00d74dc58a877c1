package middleware

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/sangkips/hospitality-pos/internal/domain/entity"
	"github.com/sangkips/hospitality-pos/internal/domain/repository"
	"github.com/sangkips/hospitality-pos/internal/presentation/http/dto/response"
)

const (
	// IdempotencyKeyHeader is the HTTP header for idempotency keys
	IdempotencyKeyHeader = "Idempotency-Key"
	// IdempotencyKeyTTL is how long keys are valid
	IdempotencyKeyTTL = 24 * time.Hour
	// IdempotencyPendingTTL bounds how long a crashed request can hold its key
	IdempotencyPendingTTL = 2 * time.Minute
)

// IdempotencyConfig holds configuration for the idempotency middleware
type IdempotencyConfig struct {
	Repo repository.IdempotencyRepository
	// Required rejects POST requests without a key
	Required bool
	Now      func() time.Time
}

// responseWriter wraps gin.ResponseWriter to capture the response body
type responseWriter struct {
	gin.ResponseWriter
	body *bytes.Buffer
}

func (w responseWriter) Write(b []byte) (int, error) {
	w.body.Write(b)
	return w.ResponseWriter.Write(b)
}

// Idempotency replays the stored response of a write that was already
// processed under the same key at the same outlet. The key is reserved before
// the handler runs, so a concurrent duplicate gets 409 instead of a second
// write. Only 2xx responses are kept; a failed request releases its key.
func Idempotency(config IdempotencyConfig) gin.HandlerFunc {
	now := config.Now
	if now == nil {
		now = time.Now
	}

	return func(c *gin.Context) {
		if c.Request.Method != http.MethodPost && c.Request.Method != http.MethodPut && c.Request.Method != http.MethodPatch {
			c.Next()
			return
		}

		idempotencyKey := c.GetHeader(IdempotencyKeyHeader)
		if idempotencyKey == "" {
			if config.Required && c.Request.Method == http.MethodPost {
				response.BadRequest(c, "Idempotency-Key header is required for this request")
				c.Abort()
				return
			}
			c.Next()
			return
		}

		outletID := GetOutletID(c)
		userID, _ := c.Get("user_id")
		uid, _ := userID.(uuid.UUID)
		if outletID == uuid.Nil || uid == uuid.Nil {
			response.Unauthorized(c, "User not authenticated")
			c.Abort()
			return
		}

		body, err := io.ReadAll(c.Request.Body)
		if err != nil {
			response.BadRequest(c, "Invalid request body")
			c.Abort()
			return
		}
		c.Request.Body = io.NopCloser(bytes.NewReader(body))
		sum := sha256.Sum256(body)
		requestHash := hex.EncodeToString(sum[:])

		ctx := c.Request.Context()
		existing, err := config.Repo.GetByKey(ctx, outletID, idempotencyKey)
		if err != nil {
			response.InternalServerError(c, "Failed to check idempotency key")
			c.Abort()
			return
		}
		if existing != nil && existing.IsExpiredAt(now()) {
			if err := config.Repo.Delete(ctx, existing.ID); err != nil {
				response.InternalServerError(c, "Failed to check idempotency key")
				c.Abort()
				return
			}
			existing = nil
		}
		if existing != nil {
			respondExisting(c, existing, requestHash)
			return
		}

		reservation := &entity.IdempotencyKey{
			ID:          uuid.New(),
			Key:         idempotencyKey,
			OutletID:    outletID,
			UserID:      uid,
			Endpoint:    c.Request.Method + " " + c.FullPath(),
			RequestHash: requestHash,
			ExpiresAt:   now().Add(IdempotencyPendingTTL),
		}
		if err := config.Repo.Reserve(ctx, reservation); err != nil {
			if !errors.Is(err, repository.ErrIdempotencyKeyExists) {
				response.InternalServerError(c, "Failed to reserve idempotency key")
				c.Abort()
				return
			}
			// another request took the key between the lookup and the insert
			winner, err := config.Repo.GetByKey(ctx, outletID, idempotencyKey)
			if err != nil || winner == nil {
				respondInProgress(c)
				return
			}
			respondExisting(c, winner, requestHash)
			return
		}

		blw := &responseWriter{body: bytes.NewBufferString(""), ResponseWriter: c.Writer}
		c.Writer = blw

		c.Next()

		// the handler's context may be cancelled by now
		storeCtx := context.WithoutCancel(ctx)
		status := c.Writer.Status()
		if status < 200 || status >= 300 {
			if err := config.Repo.Delete(storeCtx, reservation.ID); err != nil {
				log.Warn().Err(err).
					Str("key", idempotencyKey).
					Str("outlet_id", outletID.String()).
					Msg("Failed to release idempotency key")
			}
			return
		}

		if err := config.Repo.Complete(storeCtx, reservation.ID, status, blw.body.String(), now().Add(IdempotencyKeyTTL)); err != nil {
			log.Warn().Err(err).
				Str("key", idempotencyKey).
				Str("outlet_id", outletID.String()).
				Msg("Failed to store idempotency key")
		}
	}
}

// respondExisting answers a request whose key is already held: a different
// body is rejected, an unfinished request is reported, a finished one replayed
func respondExisting(c *gin.Context, existing *entity.IdempotencyKey, requestHash string) {
	if existing.RequestHash != "" && existing.RequestHash != requestHash {
		c.JSON(http.StatusUnprocessableEntity, response.APIResponse{
			Success: false,
			Message: "Idempotency-Key was already used with a different request",
		})
		c.Abort()
		return
	}
	if existing.IsPending() {
		respondInProgress(c)
		return
	}
	c.Header("X-Idempotency-Replayed", "true")
	c.Data(existing.ResponseCode, "application/json; charset=utf-8", []byte(existing.ResponseBody))
	c.Abort()
}

func respondInProgress(c *gin.Context) {
	c.Header("Retry-After", "1")
	response.ErrorWithCode(c, http.StatusConflict, "A request with this Idempotency-Key is still being processed")
	c.Abort()
}

// PurgeIdempotencyKeys deletes expired keys every interval until ctx is done
func PurgeIdempotencyKeys(ctx context.Context, repo repository.IdempotencyRepository, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			n, err := repo.DeleteExpired(ctx, time.Now())
			if err != nil {
				log.Error().Err(err).Msg("Failed to purge idempotency keys")
				continue
			}
			if n > 0 {
				log.Info().Int64("deleted", n).Msg("Purged expired idempotency keys")
			}
		}
	}
}
