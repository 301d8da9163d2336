package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	authHTTP "smartmeet/internal/auth/delivery/http"
	authRepo "smartmeet/internal/auth/repository/postgre"
	authUC "smartmeet/internal/auth/usecase"
	"smartmeet/internal/middleware"
)

// setupAuthDomain initializes the auth domain and registers its routes.
//
// Pattern to follow when adding a new domain:
//  1. Create Repository:   repo := mydomainRepo.New(srv.postgresDB, srv.l)
//  2. Create UseCase:      uc := mydomainUC.New(srv.l, repo, ...)
//  3. Create HTTP Handler: h := mydomainHTTP.New(srv.l, uc)
//  4. Register Routes:     mydomainHTTP.RegisterRoutes(api, h, mw)
func (srv HTTPServer) setupAuthDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) {
	repo := authRepo.New(srv.postgresDB, srv.l)

	uc := authUC.New(srv.l, repo, srv.jwtManager, srv.encrypter, srv.verifier)

	h := authHTTP.New(srv.l, uc)

	authHTTP.RegisterRoutes(api, h, mw)

	srv.l.Infof(ctx, "Auth domain registered")
}
