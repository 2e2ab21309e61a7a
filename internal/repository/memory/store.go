// Package memory хранит данные в памяти процесса и реализует интерфейсы
// repository. Повторяет поведение PostgreSQL-реализации: порядок выборок,
// каскадное удаление проектов, ограничения уникальности и внешних ключей.
// Поддерживает транзакции и внедрение ошибок по имени операции.
package memory

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/DB3NJ4/StackFlow/internal/domain/entity"
	domainErrors "github.com/DB3NJ4/StackFlow/internal/domain/errors"
	"github.com/DB3NJ4/StackFlow/internal/repository"
)

var (
	_ repository.ProjectRepository     = (*ProjectRepository)(nil)
	_ repository.TeamRepository        = (*TeamRepository)(nil)
	_ repository.TeamMemberRepository  = (*TeamMemberRepository)(nil)
	_ repository.ProjectTeamRepository = (*ProjectTeamRepository)(nil)
	_ repository.IssueRepository       = (*IssueRepository)(nil)
	_ repository.ProfileRepository     = (*ProfileRepository)(nil)
	_ repository.StatisticsRepository  = (*StatisticsRepository)(nil)
	_ repository.TransactionManager    = (*TransactionManager)(nil)
)

type state struct {
	projects []entity.Project
	teams    []entity.Team
	members  []entity.TeamMember
	shares   []entity.ProjectTeam
	issues   []entity.Issue
	profiles []entity.Profile
}

func (st state) clone() state {
	return state{
		projects: append([]entity.Project(nil), st.projects...),
		teams:    append([]entity.Team(nil), st.teams...),
		members:  append([]entity.TeamMember(nil), st.members...),
		shares:   append([]entity.ProjectTeam(nil), st.shares...),
		issues:   append([]entity.Issue(nil), st.issues...),
		profiles: append([]entity.Profile(nil), st.profiles...),
	}
}

// Store общее состояние всех репозиториев
type Store struct {
	mu       sync.Mutex
	st       state
	failures map[string]error
	calls    []string
	// Now источник серверного времени
	Now func() time.Time
}

// NewStore создает пустое хранилище
func NewStore() *Store {
	return &Store{
		failures: make(map[string]error),
		Now:      time.Now,
	}
}

// Fail заставляет операцию op (например "teams.Delete") возвращать err.
// nil снимает ошибку.
func (s *Store) Fail(op string, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err == nil {
		delete(s.failures, op)
		return
	}
	s.failures[op] = err
}

// Calls возвращает выполненные операции в порядке вызова
func (s *Store) Calls() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.calls...)
}

// AddProfile добавляет профиль пользователя
func (s *Store) AddProfile(profile entity.Profile) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.st.profiles = append(s.st.profiles, profile)
}

func (s *Store) Projects() *ProjectRepository         { return &ProjectRepository{s: s} }
func (s *Store) Teams() *TeamRepository               { return &TeamRepository{s: s} }
func (s *Store) Members() *TeamMemberRepository       { return &TeamMemberRepository{s: s} }
func (s *Store) ProjectTeams() *ProjectTeamRepository { return &ProjectTeamRepository{s: s} }
func (s *Store) Issues() *IssueRepository             { return &IssueRepository{s: s} }
func (s *Store) Profiles() *ProfileRepository         { return &ProfileRepository{s: s} }
func (s *Store) Statistics() *StatisticsRepository    { return &StatisticsRepository{s: s} }
func (s *Store) TxManager() *TransactionManager       { return &TransactionManager{s: s} }

// begin захватывает блокировку и проверяет внедренную ошибку операции.
// При ошибке блокировка уже снята.
func (s *Store) begin(op string) error {
	s.mu.Lock()
	s.calls = append(s.calls, op)
	if err, ok := s.failures[op]; ok {
		s.mu.Unlock()
		return err
	}
	return nil
}

func (s *Store) end() {
	s.mu.Unlock()
}

func newID() string {
	return uuid.NewString()
}

func notFound(what string) error {
	return fmt.Errorf("%s: %w", what, domainErrors.ErrNotFound)
}

func conflict(what string) error {
	return fmt.Errorf("%s: %w", what, domainErrors.ErrConflict)
}

func violation(what string) error {
	return fmt.Errorf("%s: %w", what, domainErrors.ErrInvalidInput)
}

func (st *state) project(id string) (int, bool) {
	for i := range st.projects {
		if st.projects[i].ID == id {
			return i, true
		}
	}
	return -1, false
}

func (st *state) team(id string) (int, bool) {
	for i := range st.teams {
		if st.teams[i].ID == id {
			return i, true
		}
	}
	return -1, false
}

func (st *state) profileEmail(userID string) string {
	for _, p := range st.profiles {
		if p.ID == userID {
			return p.Email
		}
	}
	return ""
}

func contains(ids []string, id string) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}

type txKey struct{}

// TransactionManager восстанавливает снимок состояния, если fn вернула ошибку
type TransactionManager struct {
	s *Store
}

func (tm *TransactionManager) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	if ctx.Value(txKey{}) != nil {
		return fn(ctx)
	}

	tm.s.mu.Lock()
	snapshot := tm.s.st.clone()
	tm.s.mu.Unlock()

	if err := fn(context.WithValue(ctx, txKey{}, true)); err != nil {
		tm.s.mu.Lock()
		tm.s.st = snapshot
		tm.s.mu.Unlock()
		return err
	}
	return nil
}

// ProfileRepository профили пользователей
type ProfileRepository struct {
	s *Store
}

func (r *ProfileRepository) GetByEmail(ctx context.Context, email string) (*entity.Profile, error) {
	if err := r.s.begin("profiles.GetByEmail"); err != nil {
		return nil, err
	}
	defer r.s.end()

	for _, p := range r.s.st.profiles {
		if strings.EqualFold(p.Email, email) {
			profile := p
			return &profile, nil
		}
	}
	return nil, notFound("profile")
}

// StatisticsRepository счетчики задач
type StatisticsRepository struct {
	s *Store
}

func (r *StatisticsRepository) GetIssueStatistics(ctx context.Context, projectIDs []string) (*entity.IssueStatistics, error) {
	if err := r.s.begin("statistics.GetIssueStatistics"); err != nil {
		return nil, err
	}
	defer r.s.end()

	var issues []entity.Issue
	for _, issue := range r.s.st.issues {
		if contains(projectIDs, issue.ProjectID) {
			issues = append(issues, issue)
		}
	}
	stats := entity.NewIssueStatistics(issues)
	return &stats, nil
}
