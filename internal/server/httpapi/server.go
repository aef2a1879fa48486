// Package httpapi exposes the governance API over HTTP. It carries the
// public auth endpoints, the bearer-token gate, and the record endpoints
// for the seven governance collections.
package httpapi

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/dmitrijs2005/auditkeeper/internal/logging"
	"github.com/dmitrijs2005/auditkeeper/internal/server/models"
	"github.com/dmitrijs2005/auditkeeper/internal/server/services"
)

const shutdownTimeout = 5 * time.Second

type userService interface {
	Register(ctx context.Context, email, password, name string) (string, error)
	Login(ctx context.Context, email, password string) (string, error)
}

type accessGate interface {
	Authenticate(ctx context.Context, header string) (*models.User, *services.AccessError)
}

type recordService interface {
	Ping(ctx context.Context) error
	Collections() []string

	CreateProject(ctx context.Context, caller *models.User, p models.Project) (models.Project, error)
	ListProjects(ctx context.Context, caller *models.User) ([]models.Project, error)

	CreateMetric(ctx context.Context, m models.ScorecardMetric) (models.ScorecardMetric, error)
	ListMetrics(ctx context.Context, projectID string) ([]models.ScorecardMetric, error)

	CreateAction(ctx context.Context, a models.ActionPlanItem) (models.ActionPlanItem, error)
	ListActions(ctx context.Context, projectID string) ([]models.ActionPlanItem, error)

	CreateTimelineItem(ctx context.Context, ti models.TimelineItem) (models.TimelineItem, error)
	ListTimeline(ctx context.Context, projectID string) ([]models.TimelineItem, error)

	CreateTask(ctx context.Context, t models.Task) (models.Task, error)
	ListTasks(ctx context.Context, timelineItemID string) ([]models.Task, error)

	CreateComment(ctx context.Context, caller *models.User, c models.Comment) (models.Comment, error)
	ListComments(ctx context.Context, projectID string) ([]models.Comment, error)

	CreateDocument(ctx context.Context, caller *models.User, d models.Document) (models.Document, error)
	ListDocuments(ctx context.Context, projectID string) ([]models.Document, error)
}

type documentService interface {
	PresignUpload(ctx context.Context) (string, string, error)
	PresignDownload(ctx context.Context, key string) (string, error)
}

type HTTPServer struct {
	address   string
	logger    logging.Logger
	users     userService
	access    accessGate
	records   recordService
	documents documentService
}

func NewHTTPServer(a string, l logging.Logger, us userService, as accessGate, rs recordService, ds documentService) (*HTTPServer, error) {
	return &HTTPServer{
		address:   a,
		logger:    l.With("module", "http_server"),
		users:     us,
		access:    as,
		records:   rs,
		documents: ds,
	}, nil
}

func (s *HTTPServer) router() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	r.GET("/", s.root)
	r.GET("/test", s.healthCheck)

	r.POST("/auth/register", s.register)
	r.POST("/auth/login", s.login)

	secured := r.Group("")
	secured.Use(s.authRequired())
	{
		secured.POST("/projects", s.createProject)
		secured.GET("/projects", s.listProjects)

		secured.POST("/metrics", s.createMetric)
		secured.GET("/metrics/:project_id", s.listMetrics)

		secured.POST("/actions", s.createAction)
		secured.GET("/actions/:project_id", s.listActions)

		secured.POST("/timeline", s.createTimelineItem)
		secured.GET("/timeline/:project_id", s.listTimeline)

		secured.POST("/tasks", s.createTask)
		secured.GET("/tasks/:timeline_item_id", s.listTasks)

		secured.POST("/comments", s.createComment)
		secured.GET("/comments/:project_id", s.listComments)

		secured.POST("/documents", s.createDocument)
		secured.GET("/documents/:project_id", s.listDocuments)

		// Object storage passthrough. The download key is a query parameter
		// because storage keys contain slashes.
		secured.POST("/storage/upload-url", s.presignUpload)
		secured.GET("/storage/download-url", s.presignDownload)
	}

	return r
}

func (s *HTTPServer) Run(ctx context.Context) error {

	srv := &http.Server{
		Addr:    s.address,
		Handler: s.router(),
	}

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			s.logger.Error(ctx, err.Error())
		}
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", s.address)

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}
