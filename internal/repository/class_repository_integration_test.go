package repository

import (
	"context"
	"log"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/pressly/goose/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/merajfaizan/gym-management-backend/internal/model"
	_ "github.com/merajfaizan/gym-management-backend/migrations"
)

type ClassRepositoryIntegrationTestSuite struct {
	suite.Suite
	db   *sqlx.DB
	repo ClassRepository
	pgc  *postgres.PostgresContainer
	ctx  context.Context
}

func (s *ClassRepositoryIntegrationTestSuite) SetupSuite() {
	s.ctx = context.Background()

	pgc, err := postgres.Run(s.ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("test-db"),
		postgres.WithUsername("user"),
		postgres.WithPassword("password"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(5*time.Second),
		),
	)
	if err != nil {
		log.Fatalf("could not start postgres container: %s", err)
	}
	s.pgc = pgc

	connStr, err := pgc.ConnectionString(s.ctx, "sslmode=disable")
	assert.NoError(s.T(), err)

	db, err := sqlx.Connect("pgx", connStr)
	assert.NoError(s.T(), err)
	s.db = db

	err = goose.Up(db.DB, "../../migrations")
	assert.NoError(s.T(), err)

	s.repo = NewPostgresClassRepository(s.db)
}

func (s *ClassRepositoryIntegrationTestSuite) TearDownSuite() {
	s.db.Close()
	if err := s.pgc.Terminate(s.ctx); err != nil {
		log.Fatalf("failed to terminate pg container: %s", err)
	}
}

func (s *ClassRepositoryIntegrationTestSuite) createClass(name string) *model.Class {
	class, err := s.repo.Create(s.ctx, &model.Class{
		Name:      name,
		Time:      "10:00 AM",
		Day:       "Monday",
		TrainerID: uuid.New(),
	})
	assert.NoError(s.T(), err)
	assert.NotEqual(s.T(), uuid.Nil, class.ID)
	return class
}

func (s *ClassRepositoryIntegrationTestSuite) TestClassRepository_CreateStartsEmpty() {
	class := s.createClass("Morning Yoga")
	assert.Empty(s.T(), class.BookedTrainees)

	found, err := s.repo.FindByID(s.ctx, class.ID)
	assert.NoError(s.T(), err)
	assert.NotNil(s.T(), found)
	assert.Equal(s.T(), "Morning Yoga", found.Name)
	assert.Empty(s.T(), found.BookedTrainees)
}

func (s *ClassRepositoryIntegrationTestSuite) TestClassRepository_FindByID_Missing() {
	found, err := s.repo.FindByID(s.ctx, uuid.New())
	assert.NoError(s.T(), err)
	assert.Nil(s.T(), found)
}

func (s *ClassRepositoryIntegrationTestSuite) TestClassRepository_AddTrainee_Idempotent() {
	class := s.createClass("Spin")
	userID := uuid.New()

	updated, err := s.repo.AddTrainee(s.ctx, class.ID, userID, 10)
	assert.NoError(s.T(), err)
	assert.True(s.T(), updated)

	// the same user again must be refused without touching the roster
	updated, err = s.repo.AddTrainee(s.ctx, class.ID, userID, 10)
	assert.NoError(s.T(), err)
	assert.False(s.T(), updated)

	found, err := s.repo.FindByID(s.ctx, class.ID)
	assert.NoError(s.T(), err)
	assert.Len(s.T(), found.BookedTrainees, 1)
}

func (s *ClassRepositoryIntegrationTestSuite) TestClassRepository_AddTrainee_CapacityCap() {
	class := s.createClass("HIIT")
	for i := 0; i < 10; i++ {
		updated, err := s.repo.AddTrainee(s.ctx, class.ID, uuid.New(), 10)
		assert.NoError(s.T(), err)
		assert.True(s.T(), updated)
	}

	updated, err := s.repo.AddTrainee(s.ctx, class.ID, uuid.New(), 10)
	assert.NoError(s.T(), err)
	assert.False(s.T(), updated)

	found, err := s.repo.FindByID(s.ctx, class.ID)
	assert.NoError(s.T(), err)
	assert.Len(s.T(), found.BookedTrainees, 10)
}

func (s *ClassRepositoryIntegrationTestSuite) TestClassRepository_AddTrainee_ConcurrentLastSeat() {
	class := s.createClass("Boxing")
	for i := 0; i < 9; i++ {
		updated, err := s.repo.AddTrainee(s.ctx, class.ID, uuid.New(), 10)
		assert.NoError(s.T(), err)
		assert.True(s.T(), updated)
	}

	// two writers race for the last seat; exactly one may win
	results := make([]bool, 2)
	var wg sync.WaitGroup
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			updated, err := s.repo.AddTrainee(s.ctx, class.ID, uuid.New(), 10)
			assert.NoError(s.T(), err)
			results[i] = updated
		}(i)
	}
	wg.Wait()

	wins := 0
	for _, won := range results {
		if won {
			wins++
		}
	}
	assert.Equal(s.T(), 1, wins)

	found, err := s.repo.FindByID(s.ctx, class.ID)
	assert.NoError(s.T(), err)
	assert.Len(s.T(), found.BookedTrainees, 10)
}

func (s *ClassRepositoryIntegrationTestSuite) TestClassRepository_ListByTrainee() {
	booked := s.createClass("Pilates")
	s.createClass("Crossfit")
	userID := uuid.New()

	updated, err := s.repo.AddTrainee(s.ctx, booked.ID, userID, 10)
	assert.NoError(s.T(), err)
	assert.True(s.T(), updated)

	classes, err := s.repo.ListByTrainee(s.ctx, userID)
	assert.NoError(s.T(), err)
	assert.Len(s.T(), classes, 1)
	assert.Equal(s.T(), booked.ID, classes[0].ID)
}

func TestClassRepositoryIntegration(t *testing.T) {
	if os.Getenv("DOCKER_HOST") == "" {
		t.Skip("Docker is not available, skipping integration test.")
	}
	suite.Run(t, new(ClassRepositoryIntegrationTestSuite))
}
