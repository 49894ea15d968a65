package services

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taskloom/taskloom-backend/internal/repository"
)

type fakeProjectRepo struct {
	saved   map[uuid.UUID]repository.Project
	creates int
}

func newFakeProjectRepo() *fakeProjectRepo {
	return &fakeProjectRepo{saved: map[uuid.UUID]repository.Project{}}
}

func (f *fakeProjectRepo) Create(ctx context.Context, project repository.Project) (uuid.UUID, error) {
	f.creates++
	project.ID = uuid.New()
	f.saved[project.ID] = project
	return project.ID, nil
}

func (f *fakeProjectRepo) Get(ctx context.Context, id uuid.UUID) (*repository.Project, error) {
	project, ok := f.saved[id]
	if !ok {
		return nil, errors.New("project not found")
	}
	return &project, nil
}

func (f *fakeProjectRepo) ListByOrganization(ctx context.Context, orgID uuid.UUID) ([]repository.Project, error) {
	var out []repository.Project
	for _, project := range f.saved {
		if project.OrganizationID != nil && *project.OrganizationID == orgID {
			out = append(out, project)
		}
	}
	return out, nil
}

func TestCreateProject_RequiresOrganization(t *testing.T) {
	repo := newFakeProjectRepo()
	svc := NewProjectService(repo, newFakeTaskRepo(), &fakeUserRepo{})

	creator := &repository.User{ID: uuid.New(), Email: "solo@example.com"}

	_, err := svc.CreateProject(context.Background(), creator, "Orphan", "", nil)
	assert.ErrorIs(t, err, ErrNoOrganization)
	assert.Equal(t, 0, repo.creates, "nothing persisted for a rejected create")
}

func TestCreateProject_CreatorCanReadBack(t *testing.T) {
	repo := newFakeProjectRepo()
	svc := NewProjectService(repo, newFakeTaskRepo(), &fakeUserRepo{})

	orgID := uuid.New()
	creator := &repository.User{ID: uuid.New(), OrganizationID: &orgID}

	created, err := svc.CreateProject(context.Background(), creator, "Launch plan", "Q2 launch", nil)
	require.NoError(t, err)

	got, err := svc.GetProject(context.Background(), &orgID, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)
}

func TestGetProject_ForeignOrganizationDenied(t *testing.T) {
	repo := newFakeProjectRepo()
	svc := NewProjectService(repo, newFakeTaskRepo(), &fakeUserRepo{})

	orgA := uuid.New()
	orgB := uuid.New()
	creator := &repository.User{ID: uuid.New(), OrganizationID: &orgA}

	created, err := svc.CreateProject(context.Background(), creator, "Internal", "", nil)
	require.NoError(t, err)

	_, err = svc.GetProject(context.Background(), &orgB, created.ID)
	assert.Error(t, err)

	_, err = svc.GetProject(context.Background(), nil, created.ID)
	assert.Error(t, err, "a caller without an organization has no project access")
}
