package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	"smartmeet/internal/meeting"
	meetingHTTP "smartmeet/internal/meeting/delivery/http"
	meetingRepo "smartmeet/internal/meeting/repository/postgre"
	meetingUC "smartmeet/internal/meeting/usecase"
	"smartmeet/internal/middleware"
)

// setupMeetingDomain initializes the meeting domain and registers its routes.
// The UseCase is returned so the assistant domain can schedule through it.
func (srv HTTPServer) setupMeetingDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) meeting.UseCase {
	repo := meetingRepo.New(srv.postgresDB, srv.l)

	uc := meetingUC.New(srv.l, repo, srv.calendar, srv.cfg.Google.CalendarID, srv.cfg.Google.Timezone)

	h := meetingHTTP.New(srv.l, uc)

	meetingHTTP.RegisterRoutes(api, h, mw)

	srv.l.Infof(ctx, "Meeting domain registered")
	return uc
}
