package api

import (
	"context"
	"encoding/json"
	"os"

	"folio/internal/models"

	"go.uber.org/zap"
)

// Loader wraps the one-shot project fetch with the degrade-to-empty
// contract: a load failure is logged and yields an empty collection, never
// a user-facing error. The page must render with "no projects" rather than
// fail.
type Loader struct {
	client *Client
	path   string
	logger *zap.Logger
}

// NewLoader creates a loader backed by the given client. If path is
// non-empty the loader reads that local file instead of the network.
func NewLoader(client *Client, path string, logger *zap.Logger) *Loader {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Loader{client: client, path: path, logger: logger}
}

// Load returns the project collection, or an empty one on any failure.
func (l *Loader) Load(ctx context.Context) []models.Project {
	if l.path != "" {
		return l.loadFile()
	}

	projects, err := l.client.FetchProjects(ctx)
	if err != nil {
		l.logger.Warn("project fetch failed, continuing with empty collection",
			zap.String("url", l.client.BaseURL+ProjectsPath),
			zap.Error(err))
		return nil
	}

	l.logger.Info("projects loaded",
		zap.String("url", l.client.BaseURL+ProjectsPath),
		zap.Int("count", len(projects)))
	return projects
}

func (l *Loader) loadFile() []models.Project {
	data, err := os.ReadFile(l.path)
	if err != nil {
		l.logger.Warn("project file read failed, continuing with empty collection",
			zap.String("path", l.path),
			zap.Error(err))
		return nil
	}

	var projects []models.Project
	if err := json.Unmarshal(data, &projects); err != nil {
		l.logger.Warn("project file parse failed, continuing with empty collection",
			zap.String("path", l.path),
			zap.Error(err))
		return nil
	}

	l.logger.Info("projects loaded",
		zap.String("path", l.path),
		zap.Int("count", len(projects)))
	return projects
}
