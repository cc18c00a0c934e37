// Package services contains server-side business logic. This file implements
// TaskService, which handles reporting snow-clearing tasks, browsing them,
// and completing them with reward computation.
package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/snowsquad/engine/internal/common"
	"github.com/snowsquad/engine/internal/discovery"
	"github.com/snowsquad/engine/internal/geo"
	"github.com/snowsquad/engine/internal/logging"
	"github.com/snowsquad/engine/internal/server/models"
	"github.com/snowsquad/engine/internal/server/photos"
	"github.com/snowsquad/engine/internal/server/repositories/repomanager"
)

// PhotoScorer turns a stored photo into a point value.
type PhotoScorer interface {
	ScorePhoto(ctx context.Context, photoURL string) (int, error)
}

// Completion records the outcome of completing a task. PointsAwarded is the
// declared task value minus the residual-snow score of the after-photo; a
// zero or negative award means the job was barely (or not) done and is
// accepted as-is.
type Completion struct {
	TaskID        string
	CompleterID   string
	TaskPoints    int
	NewScore      int
	PointsAwarded int
}

// TaskService provides the task lifecycle:
// - Create: report a chore with a photo and location
// - Complete / CompleteWithPhoto: claim a task and settle the reward
// - List / Discover: browse open tasks
type TaskService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	scorer      PhotoScorer
	store       photos.Store
	log         logging.Logger
}

// NewTaskService constructs a TaskService from its collaborators.
func NewTaskService(db *sql.DB, m repomanager.RepositoryManager, scorer PhotoScorer, store photos.Store, log logging.Logger) *TaskService {
	return &TaskService{
		db:          db,
		repomanager: m,
		scorer:      scorer,
		store:       store,
		log:         log,
	}
}

// Create uploads the before-photo, scores it, and persists the task. Upload
// failures abort the operation; scoring never blocks creation (classifier
// trouble degrades to the floor value inside the scorer).
func (s *TaskService) Create(ctx context.Context, creatorID string, image []byte, location geo.Point) (*models.Task, error) {

	url, err := s.store.Upload(ctx, image, "image/jpeg")
	if err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrUploadFailed, err)
	}

	points, err := s.scorer.ScorePhoto(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("error scoring photo: %v", err)
	}

	task := &models.Task{
		ID:        uuid.New().String(),
		PhotoURL:  url,
		Location:  location,
		Points:    points,
		Completed: false,
		CreatedAt: time.Now().UTC(),
	}

	repo := s.repomanager.Tasks(s.db)
	if err := repo.Create(ctx, task); err != nil {
		return nil, fmt.Errorf("error creating task: %v", err)
	}

	s.log.Info(ctx, "task created",
		"task_id", task.ID, "creator_id", creatorID, "points", task.Points)

	return task, nil
}

// Complete settles a task against its completer. The task is claimed with a
// conditional completed write before any ledger mutation, so two concurrent
// completers cannot both be credited. If the ledger increment fails after
// the claim succeeded the divergence is surfaced, never swallowed.
func (s *TaskService) Complete(ctx context.Context, taskID, completerID, clearedPhotoURL string) (*Completion, error) {

	taskRepo := s.repomanager.Tasks(s.db)
	userRepo := s.repomanager.Users(s.db)

	task, err := taskRepo.GetByID(ctx, taskID)
	if err != nil {
		return nil, err
	}
	if task.Completed {
		return nil, common.ErrAlreadyCompleted
	}

	newScore, err := s.scorer.ScorePhoto(ctx, clearedPhotoURL)
	if err != nil {
		return nil, fmt.Errorf("error scoring photo: %v", err)
	}

	awarded := task.Points - newScore

	if _, err := userRepo.GetByID(ctx, completerID); err != nil {
		return nil, err
	}

	if err := taskRepo.MarkCompleted(ctx, taskID); err != nil {
		return nil, err
	}

	if err := userRepo.ApplyCompletion(ctx, completerID, awarded); err != nil {
		s.log.Error(ctx, "ledger increment failed after task claim",
			"task_id", taskID, "user_id", completerID, "error", err)
		return nil, fmt.Errorf("%w: task %s, user %s", common.ErrLedgerDiverged, taskID, completerID)
	}

	s.log.Info(ctx, "task completed",
		"task_id", taskID, "user_id", completerID,
		"new_score", newScore, "points_awarded", awarded)

	return &Completion{
		TaskID:        taskID,
		CompleterID:   completerID,
		TaskPoints:    task.Points,
		NewScore:      newScore,
		PointsAwarded: awarded,
	}, nil
}

// CompleteWithPhoto uploads the after-photo first, then settles the task
// against it.
func (s *TaskService) CompleteWithPhoto(ctx context.Context, taskID, completerID string, image []byte) (*Completion, error) {
	url, err := s.store.Upload(ctx, image, "image/jpeg")
	if err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrUploadFailed, err)
	}
	return s.Complete(ctx, taskID, completerID, url)
}

// List returns all open tasks, newest first.
func (s *TaskService) List(ctx context.Context) ([]*models.Task, error) {
	repo := s.repomanager.Tasks(s.db)
	tasks, err := repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing tasks: %v", err)
	}
	return tasks, nil
}

// Discover returns open tasks annotated for browsing: coarse age labels,
// distance from the viewer, and the requested ordering.
func (s *TaskService) Discover(ctx context.Context, viewer *geo.Point, sortKey discovery.SortKey) ([]discovery.AnnotatedTask, error) {
	tasks, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	return discovery.List(tasks, viewer, sortKey, time.Now()), nil
}

// Get returns a single task by id.
func (s *TaskService) Get(ctx context.Context, taskID string) (*models.Task, error) {
	repo := s.repomanager.Tasks(s.db)
	task, err := repo.GetByID(ctx, taskID)
	if err != nil {
		if errors.Is(err, common.ErrTaskNotFound) {
			return nil, err
		}
		return nil, common.ErrorInternal
	}
	return task, nil
}
