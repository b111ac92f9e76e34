package middleware

import (
	"bytes"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/slack-go/slack"
	"go.uber.org/zap"

	"github.com/AssemblyAI-Community/assemblyai-slack-bot/internal/api/errors"
)

// maxSlackBody bounds the request body read for signature checks
const maxSlackBody = 1 << 20

// SlackSignature rejects requests not signed with the app's signing secret.
// The body is restored so handlers can read it again.
func SlackSignature(signingSecret string, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		verifier, err := slack.NewSecretsVerifier(c.Request.Header, signingSecret)
		if err != nil {
			logger.Warn("rejected unsigned slack request",
				zap.String("request_id", GetRequestID(c)),
				zap.Error(err))
			HandleError(c, errors.NewUnauthorizedError("invalid slack signature"))
			return
		}

		body, err := ReadBody(c.Request)
		if err != nil {
			HandleError(c, errors.NewBadRequestError("unreadable request body"))
			return
		}

		if _, err := verifier.Write(body); err != nil {
			HandleError(c, errors.NewInternalError("Internal server error"))
			return
		}
		if err := verifier.Ensure(); err != nil {
			logger.Warn("rejected slack request with bad signature",
				zap.String("request_id", GetRequestID(c)),
				zap.Error(err))
			HandleError(c, errors.NewUnauthorizedError("invalid slack signature"))
			return
		}

		c.Next()
	}
}

// ReadBody returns the request body and restores it for later readers.
func ReadBody(r *http.Request) ([]byte, error) {
	body, err := io.ReadAll(io.LimitReader(r.Body, maxSlackBody))
	if err != nil {
		return nil, err
	}
	r.Body = io.NopCloser(bytes.NewReader(body))
	return body, nil
}
