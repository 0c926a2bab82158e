package http

import (
	"bytes"
	"io"
	"net/http"
)

const (
	signatureHeader = "X-Signature"

	// maxCallbackBodySize caps the callback body read for signing.
	maxCallbackBodySize = 1 << 20
)

// callbackSignature verifies that the callback body was signed with the
// orchestration API key. The signature is the hex HMAC-SHA256 of the raw
// body, sent in the X-Signature header. The body is restored for the next
// handler.
func (h *Handler) callbackSignature(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h.logger.Debug().Str("func", "*Handler.callbackSignature").Msg("checking callback signature begins")

		body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxCallbackBodySize))
		if err != nil {
			h.logger.Err(err).Str("func", "*Handler.callbackSignature").Msg("failed to read request body")
			http.Error(w, "failed to read request body", http.StatusRequestEntityTooLarge)
			return
		}
		// restore request body
		r.Body = io.NopCloser(bytes.NewReader(body))

		signature := r.Header.Get(signatureHeader)
		if !h.services.OrchestrationService.VerifyCallbackSignature(body, signature) {
			h.logger.Error().Str("func", "*Handler.callbackSignature").
				Str("signature from request", signature).
				Msg("callback signature mismatch")
			http.Error(w, "invalid callback signature", http.StatusUnauthorized)
			return
		}

		next.ServeHTTP(w, r)
	})
}
