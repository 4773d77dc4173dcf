//go:build integration

package changelog_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"sitedoctor/internal/changelog"
	"sitedoctor/pkg/platform/sentinel"
	"sitedoctor/pkg/testutil/containers"
)

type PostgresCounterSuite struct {
	suite.Suite
	postgres *containers.PostgresContainer
	counter  *changelog.PostgresCounter
}

func TestPostgresCounterSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(PostgresCounterSuite))
}

func (s *PostgresCounterSuite) SetupSuite() {
	mgr := containers.GetManager()
	s.postgres = mgr.GetPostgres(s.T())
	s.Require().NoError(s.postgres.ApplySchema(context.Background(), changelog.Schema))
	s.counter = changelog.NewPostgresCounter(s.postgres.Pool)
}

func (s *PostgresCounterSuite) SetupTest() {
	ctx := context.Background()
	err := s.postgres.TruncateTables(ctx, "content_changelog", "system_log")
	s.Require().NoError(err)
}

func (s *PostgresCounterSuite) TestCountEmpty() {
	ctx := context.Background()

	n, err := s.counter.Count(ctx, "changelog")
	s.Require().NoError(err)
	s.Zero(n)
}

func (s *PostgresCounterSuite) TestCountReflectsInserts() {
	ctx := context.Background()

	for i := 0; i < 25; i++ {
		_, err := s.postgres.Pool.Exec(ctx,
			"INSERT INTO content_changelog (content_id, mutation) VALUES ($1, 'update')", i)
		s.Require().NoError(err)
	}
	_, err := s.postgres.Pool.Exec(ctx,
		"INSERT INTO system_log (level, message) VALUES ('info', 'boot')")
	s.Require().NoError(err)

	n, err := s.counter.Count(ctx, "changelog")
	s.Require().NoError(err)
	s.Equal(int64(25), n)

	n, err = s.counter.Count(ctx, "systemlog")
	s.Require().NoError(err)
	s.Equal(int64(1), n)
}

func (s *PostgresCounterSuite) TestUnknownKind() {
	_, err := s.counter.Count(context.Background(), "auditlog")
	s.Require().Error(err)
	s.ErrorIs(err, sentinel.ErrNotFound)
}
