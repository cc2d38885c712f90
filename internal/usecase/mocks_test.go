package usecase

import (
	"context"
	"time"

	"portfolio-api/internal/notifier"
	"portfolio-api/internal/repository"

	"github.com/google/uuid"
)

type mockSectionRepo struct {
	sections  map[string]map[string]any
	getErr    error
	upsertErr error

	upserted map[string]map[string]any
}

func (m *mockSectionRepo) Get(_ context.Context, name string) (repository.Section, bool, error) {
	if m.getErr != nil {
		return repository.Section{}, false, m.getErr
	}
	data, ok := m.sections[name]
	if !ok {
		return repository.Section{}, false, nil
	}
	return repository.Section{Section: name, Data: data, Version: 1}, true, nil
}

func (m *mockSectionRepo) Upsert(_ context.Context, name string, data map[string]any) error {
	if m.upsertErr != nil {
		return m.upsertErr
	}
	if m.upserted == nil {
		m.upserted = make(map[string]map[string]any)
	}
	m.upserted[name] = data
	return nil
}

type mockProjectRepo struct {
	items      []repository.Project
	total      int
	listErr    error
	countErr   error
	replaceErr error

	lastFilter repository.ProjectFilter
	replaced   []repository.Project
}

func (m *mockProjectRepo) List(_ context.Context, f repository.ProjectFilter) ([]repository.Project, error) {
	m.lastFilter = f
	if m.listErr != nil {
		return nil, m.listErr
	}
	return m.items, nil
}

func (m *mockProjectRepo) Count(context.Context) (int, error) {
	if m.countErr != nil {
		return 0, m.countErr
	}
	return m.total, nil
}

func (m *mockProjectRepo) Create(context.Context, repository.Project) error { return nil }

func (m *mockProjectRepo) ReplaceAll(_ context.Context, projects []repository.Project) error {
	if m.replaceErr != nil {
		return m.replaceErr
	}
	m.replaced = projects
	return nil
}

type mockExperienceRepo struct {
	items      []repository.Experience
	listErr    error
	replaceErr error

	replaced []repository.Experience
}

func (m *mockExperienceRepo) List(context.Context) ([]repository.Experience, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	return m.items, nil
}

func (m *mockExperienceRepo) ReplaceAll(_ context.Context, entries []repository.Experience) error {
	if m.replaceErr != nil {
		return m.replaceErr
	}
	m.replaced = entries
	return nil
}

type mockMessageRepo struct {
	items     []repository.ContactMessage
	total     int
	byStatus  map[string]int
	recent    int
	matched   bool
	deleted   bool
	createErr error
	listErr   error
	countErr  error
	updateErr error
	deleteErr error

	created      []repository.ContactMessage
	lastStatusID uuid.UUID
	lastStatus   string
}

func (m *mockMessageRepo) Create(_ context.Context, msg repository.ContactMessage) error {
	if m.createErr != nil {
		return m.createErr
	}
	m.created = append(m.created, msg)
	return nil
}

func (m *mockMessageRepo) List(_ context.Context, _ string) ([]repository.ContactMessage, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	return m.items, nil
}

func (m *mockMessageRepo) ListPage(_ context.Context, _ string, limit, skip int) ([]repository.ContactMessage, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	if skip >= len(m.items) {
		return []repository.ContactMessage{}, nil
	}
	end := skip + limit
	if end > len(m.items) {
		end = len(m.items)
	}
	return m.items[skip:end], nil
}

func (m *mockMessageRepo) Count(context.Context, string) (int, error) {
	if m.countErr != nil {
		return 0, m.countErr
	}
	return m.total, nil
}

func (m *mockMessageRepo) UpdateStatus(_ context.Context, id uuid.UUID, status string) (bool, error) {
	if m.updateErr != nil {
		return false, m.updateErr
	}
	m.lastStatusID = id
	m.lastStatus = status
	return m.matched, nil
}

func (m *mockMessageRepo) Delete(context.Context, uuid.UUID) (bool, error) {
	if m.deleteErr != nil {
		return false, m.deleteErr
	}
	was := m.deleted
	m.deleted = false
	return was, nil
}

func (m *mockMessageRepo) CountByStatus(context.Context) (map[string]int, error) {
	if m.countErr != nil {
		return nil, m.countErr
	}
	return m.byStatus, nil
}

func (m *mockMessageRepo) CountSince(context.Context, time.Time) (int, error) {
	if m.countErr != nil {
		return 0, m.countErr
	}
	return m.recent, nil
}

type mockStatusCheckRepo struct {
	items     []repository.StatusCheck
	createErr error
	listErr   error

	created []repository.StatusCheck
}

func (m *mockStatusCheckRepo) Create(_ context.Context, s repository.StatusCheck) error {
	if m.createErr != nil {
		return m.createErr
	}
	m.created = append(m.created, s)
	return nil
}

func (m *mockStatusCheckRepo) List(context.Context, int) ([]repository.StatusCheck, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	return m.items, nil
}

type mockNotifier struct {
	err error

	payloads []notifier.Payload
}

func (m *mockNotifier) Notify(_ context.Context, p notifier.Payload) error {
	if m.err != nil {
		return m.err
	}
	m.payloads = append(m.payloads, p)
	return nil
}
