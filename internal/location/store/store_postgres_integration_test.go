//go:build integration

package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"dsld/internal/filter"
	"dsld/internal/location/models"
	"dsld/pkg/platform/sentinel"
	"dsld/pkg/testutil/containers"
)

type PostgresStoreSuite struct {
	suite.Suite
	postgres *containers.PostgresContainer
	store    *PostgresStore
}

func TestPostgresStoreSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(PostgresStoreSuite))
}

func (s *PostgresStoreSuite) SetupSuite() {
	mgr := containers.GetManager()
	s.postgres = mgr.GetPostgres(s.T())
	s.store = NewPostgres(s.postgres.DB)
}

func (s *PostgresStoreSuite) SetupTest() {
	ctx := context.Background()
	s.Require().NoError(s.postgres.TruncateTables(ctx, "ubigeo"))
	s.postgres.Exec(s.T(), `INSERT INTO ubigeo (ubigeo, nombre) VALUES
		('000000', 'Perú'),
		('080000', 'Cusco'), ('080100', 'Cusco'), ('080200', 'Acomayo'),
		('080101', 'Cusco'), ('080102', 'Ccorca'),
		('150000', 'Lima'), ('150100', 'Lima'), ('150200', 'Barranca'), ('150800', 'Huaura'),
		('150101', 'Lima'), ('150132', 'San Juan de Lurigancho')`)
}

func (s *PostgresStoreSuite) list(level filter.Level, parent string) []models.Option {
	got, err := s.store.List(context.Background(), models.ScopeFor(level, parent))
	s.Require().NoError(err)
	return got
}

func (s *PostgresStoreSuite) TestDepartments() {
	s.Equal([]models.Option{
		{Label: "Cusco", Value: "080000"},
		{Label: "Lima", Value: "150000"},
	}, s.list(filter.LevelDepartment, ""))
}

func (s *PostgresStoreSuite) TestLimaMetropolitanaHasOnlyLimaProvince() {
	s.Equal([]models.Option{{Label: "Lima", Value: "150100"}}, s.list(filter.LevelProvince, "150000"))
}

func (s *PostgresStoreSuite) TestLimaProvinciaExcludesLimaProvince() {
	s.Equal([]models.Option{
		{Label: "Barranca", Value: "150200"},
		{Label: "Huaura", Value: "150800"},
	}, s.list(filter.LevelProvince, "260000"))
}

func (s *PostgresStoreSuite) TestProvincesOfDepartment() {
	s.Equal([]models.Option{
		{Label: "Acomayo", Value: "080200"},
		{Label: "Cusco", Value: "080100"},
	}, s.list(filter.LevelProvince, "080000"))
}

func (s *PostgresStoreSuite) TestDistrictsOfProvince() {
	s.Equal([]models.Option{
		{Label: "Lima", Value: "150101"},
		{Label: "San Juan de Lurigancho", Value: "150132"},
	}, s.list(filter.LevelDistrict, "150100"))
}

func (s *PostgresStoreSuite) TestMissingParentSelectsNothing() {
	s.Empty(s.list(filter.LevelDistrict, ""))
}

func (s *PostgresStoreSuite) TestName() {
	name, err := s.store.Name(context.Background(), "080102")
	s.Require().NoError(err)
	s.Equal("Ccorca", name)

	_, err = s.store.Name(context.Background(), "999999")
	s.ErrorIs(err, sentinel.ErrNotFound)
}
