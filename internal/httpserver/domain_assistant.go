package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	assistantHTTP "smartmeet/internal/assistant/delivery/http"
	assistantRepo "smartmeet/internal/assistant/repository/postgre"
	assistantUC "smartmeet/internal/assistant/usecase"
	"smartmeet/internal/meeting"
	"smartmeet/internal/middleware"
)

// setupAssistantDomain initializes the voice assistant domain and registers
// its routes. The LLM, TTS, and calendar integrations may be nil; the
// UseCase degrades to date-hint classification without them.
func (srv HTTPServer) setupAssistantDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware, meetings meeting.UseCase) {
	repo := assistantRepo.New(srv.postgresDB, srv.l)

	uc := assistantUC.New(srv.l, repo, meetings, srv.dates, srv.intent, srv.speech, srv.calendar, srv.cfg.Google.Timezone)

	h := assistantHTTP.New(srv.l, uc)

	assistantHTTP.RegisterRoutes(api, h, mw)

	srv.l.Infof(ctx, "Assistant domain registered")
}
