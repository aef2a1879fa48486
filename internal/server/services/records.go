package services

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/dmitrijs2005/auditkeeper/internal/server/models"
	"github.com/dmitrijs2005/auditkeeper/internal/server/repositories/records"
	"github.com/dmitrijs2005/auditkeeper/internal/server/repositories/repomanager"
)

// RecordService exposes typed create/list operations for the governance
// record kinds over the generic record store.
//
// Ownership is enforced at the project level only: CreateProject stamps the
// caller as owner regardless of input, and ListProjects is scoped to the
// caller. Child-record operations trust the supplied project_id without
// re-checking ownership, matching the upstream API contract. Hardening that
// is a product decision, not one this layer takes silently.
type RecordService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

func NewRecordService(db *sql.DB, m repomanager.RepositoryManager) *RecordService {
	return &RecordService{db: db, repomanager: m}
}

// Ping reports whether the backing store is reachable.
func (s *RecordService) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// Collections lists the record collection names, for the health endpoint.
func (s *RecordService) Collections() []string {
	cols := records.Collections()
	names := make([]string, 0, len(cols))
	for _, c := range cols {
		names = append(names, string(c))
	}
	return names
}

func (s *RecordService) insert(ctx context.Context, c records.Collection, v any) (string, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("encode error: %w", err)
	}
	return s.repomanager.Records(s.db).Insert(ctx, c, data)
}

func (s *RecordService) query(ctx context.Context, c records.Collection, filter map[string]string) ([]records.Record, error) {
	return s.repomanager.Records(s.db).Query(ctx, c, filter, 0)
}

// CreateProject stores a project owned by the caller. Any client-supplied
// owner_id is overwritten.
func (s *RecordService) CreateProject(ctx context.Context, caller *models.User, p models.Project) (models.Project, error) {
	p.ID = ""
	p.OwnerID = caller.ID
	if p.Status == "" {
		p.Status = models.ProjectStatusActive
	}

	id, err := s.insert(ctx, records.CollectionProject, &p)
	if err != nil {
		return models.Project{}, err
	}
	p.ID = id
	return p, nil
}

// ListProjects returns only the caller's projects.
func (s *RecordService) ListProjects(ctx context.Context, caller *models.User) ([]models.Project, error) {
	recs, err := s.query(ctx, records.CollectionProject, map[string]string{"owner_id": caller.ID})
	if err != nil {
		return nil, err
	}

	result := make([]models.Project, 0, len(recs))
	for _, r := range recs {
		var p models.Project
		if err := json.Unmarshal(r.Data, &p); err != nil {
			return nil, fmt.Errorf("decode error: %w", err)
		}
		p.ID = r.ID
		result = append(result, p)
	}
	return result, nil
}

func (s *RecordService) CreateMetric(ctx context.Context, m models.ScorecardMetric) (models.ScorecardMetric, error) {
	m.ID = ""
	if m.Unit == "" {
		m.Unit = "%"
	}

	id, err := s.insert(ctx, records.CollectionScorecardMetric, &m)
	if err != nil {
		return models.ScorecardMetric{}, err
	}
	m.ID = id
	return m, nil
}

func (s *RecordService) ListMetrics(ctx context.Context, projectID string) ([]models.ScorecardMetric, error) {
	recs, err := s.query(ctx, records.CollectionScorecardMetric, map[string]string{"project_id": projectID})
	if err != nil {
		return nil, err
	}

	result := make([]models.ScorecardMetric, 0, len(recs))
	for _, r := range recs {
		var m models.ScorecardMetric
		if err := json.Unmarshal(r.Data, &m); err != nil {
			return nil, fmt.Errorf("decode error: %w", err)
		}
		m.ID = r.ID
		result = append(result, m)
	}
	return result, nil
}

func (s *RecordService) CreateAction(ctx context.Context, a models.ActionPlanItem) (models.ActionPlanItem, error) {
	a.ID = ""
	if a.Status == "" {
		a.Status = models.WorkStatusTodo
	}

	id, err := s.insert(ctx, records.CollectionActionPlanItem, &a)
	if err != nil {
		return models.ActionPlanItem{}, err
	}
	a.ID = id
	return a, nil
}

func (s *RecordService) ListActions(ctx context.Context, projectID string) ([]models.ActionPlanItem, error) {
	recs, err := s.query(ctx, records.CollectionActionPlanItem, map[string]string{"project_id": projectID})
	if err != nil {
		return nil, err
	}

	result := make([]models.ActionPlanItem, 0, len(recs))
	for _, r := range recs {
		var a models.ActionPlanItem
		if err := json.Unmarshal(r.Data, &a); err != nil {
			return nil, fmt.Errorf("decode error: %w", err)
		}
		a.ID = r.ID
		result = append(result, a)
	}
	return result, nil
}

func (s *RecordService) CreateTimelineItem(ctx context.Context, ti models.TimelineItem) (models.TimelineItem, error) {
	ti.ID = ""

	id, err := s.insert(ctx, records.CollectionTimelineItem, &ti)
	if err != nil {
		return models.TimelineItem{}, err
	}
	ti.ID = id
	return ti, nil
}

func (s *RecordService) ListTimeline(ctx context.Context, projectID string) ([]models.TimelineItem, error) {
	recs, err := s.query(ctx, records.CollectionTimelineItem, map[string]string{"project_id": projectID})
	if err != nil {
		return nil, err
	}

	result := make([]models.TimelineItem, 0, len(recs))
	for _, r := range recs {
		var ti models.TimelineItem
		if err := json.Unmarshal(r.Data, &ti); err != nil {
			return nil, fmt.Errorf("decode error: %w", err)
		}
		ti.ID = r.ID
		result = append(result, ti)
	}
	return result, nil
}

func (s *RecordService) CreateTask(ctx context.Context, task models.Task) (models.Task, error) {
	task.ID = ""
	if task.Status == "" {
		task.Status = models.WorkStatusTodo
	}

	id, err := s.insert(ctx, records.CollectionTask, &task)
	if err != nil {
		return models.Task{}, err
	}
	task.ID = id
	return task, nil
}

// ListTasks is keyed by the parent timeline item, not the project.
func (s *RecordService) ListTasks(ctx context.Context, timelineItemID string) ([]models.Task, error) {
	recs, err := s.query(ctx, records.CollectionTask, map[string]string{"timeline_item_id": timelineItemID})
	if err != nil {
		return nil, err
	}

	result := make([]models.Task, 0, len(recs))
	for _, r := range recs {
		var task models.Task
		if err := json.Unmarshal(r.Data, &task); err != nil {
			return nil, fmt.Errorf("decode error: %w", err)
		}
		task.ID = r.ID
		result = append(result, task)
	}
	return result, nil
}

// CreateComment stamps the caller as author.
func (s *RecordService) CreateComment(ctx context.Context, caller *models.User, c models.Comment) (models.Comment, error) {
	c.ID = ""
	c.AuthorID = caller.ID

	id, err := s.insert(ctx, records.CollectionComment, &c)
	if err != nil {
		return models.Comment{}, err
	}
	c.ID = id
	return c, nil
}

func (s *RecordService) ListComments(ctx context.Context, projectID string) ([]models.Comment, error) {
	recs, err := s.query(ctx, records.CollectionComment, map[string]string{"project_id": projectID})
	if err != nil {
		return nil, err
	}

	result := make([]models.Comment, 0, len(recs))
	for _, r := range recs {
		var c models.Comment
		if err := json.Unmarshal(r.Data, &c); err != nil {
			return nil, fmt.Errorf("decode error: %w", err)
		}
		c.ID = r.ID
		result = append(result, c)
	}
	return result, nil
}

// CreateDocument stamps the caller as uploader.
func (s *RecordService) CreateDocument(ctx context.Context, caller *models.User, d models.Document) (models.Document, error) {
	d.ID = ""
	d.UploadedBy = caller.ID

	id, err := s.insert(ctx, records.CollectionDocument, &d)
	if err != nil {
		return models.Document{}, err
	}
	d.ID = id
	return d, nil
}

func (s *RecordService) ListDocuments(ctx context.Context, projectID string) ([]models.Document, error) {
	recs, err := s.query(ctx, records.CollectionDocument, map[string]string{"project_id": projectID})
	if err != nil {
		return nil, err
	}

	result := make([]models.Document, 0, len(recs))
	for _, r := range recs {
		var d models.Document
		if err := json.Unmarshal(r.Data, &d); err != nil {
			return nil, fmt.Errorf("decode error: %w", err)
		}
		d.ID = r.ID
		result = append(result, d)
	}
	return result, nil
}
