package v1

import (
	"context"
	"errors"
	"sort"
	"sync"

	"github.com/adanyl0v/go-tarefas/internal/models"
	"github.com/adanyl0v/go-tarefas/internal/services"
	"github.com/adanyl0v/go-tarefas/internal/store"
)

var (
	errStoreDown = &store.Error{Op: "query", Kind: store.KindTransport, Err: errors.New("connection refused")}
	errNotNull   = &store.Error{Op: "query", Kind: store.KindConstraint, Err: errors.New("null value violates not-null constraint")}
)

type memoryTasks struct {
	mu     sync.Mutex
	nextID int64
	tasks  map[int64]models.Task
	err    error
}

func newMemoryTasks() *memoryTasks {
	return &memoryTasks{tasks: make(map[int64]models.Task)}
}

func (m *memoryTasks) ListTasks(context.Context) ([]*models.Task, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}

	out := make([]*models.Task, 0, len(m.tasks))
	for _, task := range m.tasks {
		task := task
		out = append(out, &task)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (m *memoryTasks) CreateTask(_ context.Context, p services.CreateTaskParams) (*models.Task, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}

	m.nextID++
	task := models.Task{
		ID:          m.nextID,
		Title:       p.Title,
		Description: p.Description,
		Status:      p.Status,
		UserID:      p.UserID,
	}
	m.tasks[task.ID] = task
	return &task, nil
}

func (m *memoryTasks) UpdateTask(_ context.Context, p services.UpdateTaskParams) (*models.Task, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	if _, ok := m.tasks[p.ID]; !ok {
		return nil, services.ErrTaskNotFound
	}
	if p.Title == nil {
		return nil, errNotNull
	}

	task := models.Task{
		ID:          p.ID,
		Title:       *p.Title,
		Description: p.Description,
		Status:      p.Status,
		UserID:      p.UserID,
	}
	m.tasks[p.ID] = task
	return &task, nil
}

func (m *memoryTasks) DeleteTask(_ context.Context, id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	if _, ok := m.tasks[id]; !ok {
		return services.ErrTaskNotFound
	}
	delete(m.tasks, id)
	return nil
}

type memoryUsers struct {
	mu     sync.Mutex
	nextID int64
	users  map[int64]models.User
	err    error
}

func newMemoryUsers() *memoryUsers {
	return &memoryUsers{users: make(map[int64]models.User)}
}

func (m *memoryUsers) ListUsers(context.Context) ([]*models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}

	out := make([]*models.User, 0, len(m.users))
	for _, user := range m.users {
		user := user
		out = append(out, &user)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (m *memoryUsers) CreateUser(_ context.Context, p services.CreateUserParams) (*models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}

	m.nextID++
	user := models.User{ID: m.nextID, Name: p.Name, Email: p.Email}
	m.users[user.ID] = user
	return &user, nil
}

func (m *memoryUsers) UpdateUser(_ context.Context, p services.UpdateUserParams) (*models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	if _, ok := m.users[p.ID]; !ok {
		return nil, services.ErrUserNotFound
	}
	if p.Name == nil || p.Email == nil {
		return nil, errNotNull
	}

	user := models.User{ID: p.ID, Name: *p.Name, Email: *p.Email}
	m.users[p.ID] = user
	return &user, nil
}

func (m *memoryUsers) DeleteUser(_ context.Context, id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	if _, ok := m.users[id]; !ok {
		return services.ErrUserNotFound
	}
	delete(m.users, id)
	return nil
}

type pingStore struct {
	err error
}

func (s pingStore) Execute(context.Context, string, ...any) (*store.Result, error) {
	return nil, errors.New("not used")
}

func (s pingStore) Ping(context.Context) error { return s.err }
