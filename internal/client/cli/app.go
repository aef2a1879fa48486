// Package cli implements the interactive AuditKeeper command-line client.
package cli

import (
	"bufio"
	"context"
	"os"

	"github.com/dmitrijs2005/auditkeeper/internal/client/api"
	"github.com/dmitrijs2005/auditkeeper/internal/client/config"
	"github.com/dmitrijs2005/auditkeeper/internal/server/models"
)

// apiClient is the surface of the backend client the commands need.
// The real api.Client satisfies it; tests can provide a stub.
type apiClient interface {
	Register(ctx context.Context, email, password, name string) error
	Login(ctx context.Context, email, password string) error
	ListProjects(ctx context.Context) ([]models.Project, error)
	CreateProject(ctx context.Context, name, description string) (models.Project, error)
	PresignUpload(ctx context.Context) (string, string, error)
	CreateDocument(ctx context.Context, d models.Document) (models.Document, error)
	Health(ctx context.Context) (map[string]any, error)
	SetToken(token string)
	HasToken() bool
}

type App struct {
	config *config.Config
	api    apiClient
	reader *bufio.Reader
}

func NewApp(c *config.Config) (*App, error) {
	return &App{
		config: c,
		api:    api.NewClient(c.ServerAddr),
		reader: bufio.NewReader(os.Stdin),
	}, nil
}

func (a *App) isLoggedIn() bool {
	return a.api.HasToken()
}

func (a *App) Run(ctx context.Context) {
	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.status, scanner)
}

func (a *App) status() string {
	if a.isLoggedIn() {
		return "logged in"
	}
	return "not logged in"
}
