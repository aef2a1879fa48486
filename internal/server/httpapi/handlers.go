package httpapi

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dmitrijs2005/auditkeeper/internal/common"
	"github.com/dmitrijs2005/auditkeeper/internal/server/models"
)

type credentialsRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
	Name     string `json:"name"`
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

func newTokenResponse(token string) tokenResponse {
	return tokenResponse{AccessToken: token, TokenType: "bearer"}
}

// internalError hides store and service internals from the client while the
// real cause goes to the log.
func (s *HTTPServer) internalError(c *gin.Context, err error) {
	s.logger.Error(c.Request.Context(), err.Error())
	c.JSON(http.StatusInternalServerError, gin.H{"detail": "internal error"})
}

func (s *HTTPServer) root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Governance & Internal Audit API running"})
}

// healthCheck always answers 200. A failing store shows up in the db field
// instead of the status code.
func (s *HTTPServer) healthCheck(c *gin.Context) {
	db := "ok"
	if err := s.records.Ping(c.Request.Context()); err != nil {
		db = "error: " + err.Error()
	}
	c.JSON(http.StatusOK, gin.H{
		"backend":     "ok",
		"db":          db,
		"collections": s.records.Collections(),
	})
}

func (s *HTTPServer) register(c *gin.Context) {
	var req credentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
		return
	}

	token, err := s.users.Register(c.Request.Context(), req.Email, req.Password, req.Name)
	if err != nil {
		if errors.Is(err, common.ErrorAlreadyExists) {
			c.JSON(http.StatusBadRequest, gin.H{"detail": "Email already registered"})
			return
		}
		s.internalError(c, err)
		return
	}

	s.logger.Info(c.Request.Context(), "Registered", "email", req.Email)
	c.JSON(http.StatusOK, newTokenResponse(token))
}

func (s *HTTPServer) login(c *gin.Context) {
	var req credentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
		return
	}

	token, err := s.users.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, common.ErrorInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{"detail": "Invalid credentials"})
			return
		}
		s.internalError(c, err)
		return
	}

	c.JSON(http.StatusOK, newTokenResponse(token))
}

func (s *HTTPServer) createProject(c *gin.Context) {
	var in models.Project
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
		return
	}

	out, err := s.records.CreateProject(c.Request.Context(), currentUser(c), in)
	if err != nil {
		s.internalError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

func (s *HTTPServer) listProjects(c *gin.Context) {
	out, err := s.records.ListProjects(c.Request.Context(), currentUser(c))
	if err != nil {
		s.internalError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

func (s *HTTPServer) createMetric(c *gin.Context) {
	var in models.ScorecardMetric
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
		return
	}

	out, err := s.records.CreateMetric(c.Request.Context(), in)
	if err != nil {
		s.internalError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

func (s *HTTPServer) listMetrics(c *gin.Context) {
	out, err := s.records.ListMetrics(c.Request.Context(), c.Param("project_id"))
	if err != nil {
		s.internalError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

func (s *HTTPServer) createAction(c *gin.Context) {
	var in models.ActionPlanItem
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
		return
	}

	out, err := s.records.CreateAction(c.Request.Context(), in)
	if err != nil {
		s.internalError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

func (s *HTTPServer) listActions(c *gin.Context) {
	out, err := s.records.ListActions(c.Request.Context(), c.Param("project_id"))
	if err != nil {
		s.internalError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

func (s *HTTPServer) createTimelineItem(c *gin.Context) {
	var in models.TimelineItem
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
		return
	}

	out, err := s.records.CreateTimelineItem(c.Request.Context(), in)
	if err != nil {
		s.internalError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

func (s *HTTPServer) listTimeline(c *gin.Context) {
	out, err := s.records.ListTimeline(c.Request.Context(), c.Param("project_id"))
	if err != nil {
		s.internalError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

func (s *HTTPServer) createTask(c *gin.Context) {
	var in models.Task
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
		return
	}

	out, err := s.records.CreateTask(c.Request.Context(), in)
	if err != nil {
		s.internalError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

func (s *HTTPServer) listTasks(c *gin.Context) {
	out, err := s.records.ListTasks(c.Request.Context(), c.Param("timeline_item_id"))
	if err != nil {
		s.internalError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

func (s *HTTPServer) createComment(c *gin.Context) {
	var in models.Comment
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
		return
	}

	out, err := s.records.CreateComment(c.Request.Context(), currentUser(c), in)
	if err != nil {
		s.internalError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

func (s *HTTPServer) listComments(c *gin.Context) {
	out, err := s.records.ListComments(c.Request.Context(), c.Param("project_id"))
	if err != nil {
		s.internalError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

func (s *HTTPServer) createDocument(c *gin.Context) {
	var in models.Document
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
		return
	}

	out, err := s.records.CreateDocument(c.Request.Context(), currentUser(c), in)
	if err != nil {
		s.internalError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

func (s *HTTPServer) listDocuments(c *gin.Context) {
	out, err := s.records.ListDocuments(c.Request.Context(), c.Param("project_id"))
	if err != nil {
		s.internalError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

func (s *HTTPServer) presignUpload(c *gin.Context) {
	key, url, err := s.documents.PresignUpload(c.Request.Context())
	if err != nil {
		s.internalError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"key": key, "upload_url": url})
}

func (s *HTTPServer) presignDownload(c *gin.Context) {
	key := c.Query("key")
	if key == "" {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "missing key"})
		return
	}

	url, err := s.documents.PresignDownload(c.Request.Context(), key)
	if err != nil {
		s.internalError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"download_url": url})
}
