//go:build integration

package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"dsld/internal/filter"
	"dsld/internal/query"
	"dsld/internal/training/models"
	"dsld/internal/views"
	"dsld/pkg/testutil/containers"
)

type PostgresStoreSuite struct {
	suite.Suite
	postgres *containers.PostgresContainer
	store    *PostgresStore
	ctx      context.Context
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
	s.ctx = context.Background()
}

func (s *PostgresStoreSuite) SetupTest() {
	s.Require().NoError(s.postgres.TruncateTables(s.ctx, "capacitaciones"))
	s.postgres.Exec(s.T(), `INSERT INTO capacitaciones
		("AÑO", "CURSO", "DEPARTAMENTO", "PROVINCIA", "DISTRITO", "SEDE DE CAPACITACIÓN",
		 "FECHA INICIO CURSO", "FECHA CULMINA CURSO", "NOTA OBTENIDA", "CONDICIÓN", "DNI")
		VALUES
		(2023, 'Buen trato', 'CUSCO', 'CUSCO', 'CUSCO', 'Sede Cusco', '10/04/2023', '20/04/2023', '16', 'APROBADO', '12345678'),
		(2023, 'Buen trato', 'CUSCO', 'CUSCO', 'CUSCO', 'Sede Cusco', '10/04/2023', '20/04/2023', '12', 'DESAPROBADO', '87654321'),
		(2024, 'Prevención', 'CUSCO', 'ACOMAYO', 'ACOS', 'Sede Acomayo', '05/02/2024', '09/02/2024', '18', 'APROBADO', '12345678'),
		(2022, 'Buen trato', 'PUNO', 'PUNO', 'PUNO', 'Sede Puno', '2022', NULL, NULL, NULL, '11112222')`)
}

func (s *PostgresStoreSuite) TestLocationNamesCascade() {
	names, err := s.store.LocationNames(s.ctx, filter.LevelDepartment, filter.Location{})
	s.Require().NoError(err)
	s.Equal([]string{"CUSCO", "PUNO"}, names)

	names, err = s.store.LocationNames(s.ctx, filter.LevelProvince, filter.Location{Department: "CUSCO"})
	s.Require().NoError(err)
	s.Equal([]string{"ACOMAYO", "CUSCO"}, names)

	names, err = s.store.LocationNames(s.ctx, filter.LevelDistrict, filter.Location{Department: "CUSCO", Province: "ACOMAYO"})
	s.Require().NoError(err)
	s.Equal([]string{"ACOS"}, names)
}

func (s *PostgresStoreSuite) TestCourses() {
	courses, err := s.store.Courses(s.ctx)
	s.Require().NoError(err)
	s.Equal([]string{"Buen trato", "Prevención"}, courses)
}

func (s *PostgresStoreSuite) TestSummaryGroupsByProvinceWithinDepartment() {
	groups, err := s.store.Summary(s.ctx, models.Filter{Location: filter.Location{Department: "CUSCO"}})
	s.Require().NoError(err)
	s.ElementsMatch([]views.Group{
		{Location: "CUSCO", Categories: []string{"Buen trato"}, Count: 2},
		{Location: "ACOMAYO", Categories: []string{"Prevención"}, Count: 1},
	}, groups)
}

func (s *PostgresStoreSuite) TestSummaryFiltersCourses() {
	groups, err := s.store.Summary(s.ctx, models.Filter{Courses: []string{"Prevención"}})
	s.Require().NoError(err)
	s.Equal([]views.Group{{Location: "CUSCO", Categories: []string{"Prevención"}, Count: 1}}, groups)
}

func (s *PostgresStoreSuite) TestSessionsPaginate() {
	rows, total, err := s.store.Sessions(s.ctx, models.Filter{}, query.Page{Number: 0, Size: 2})
	s.Require().NoError(err)
	s.Equal(3, total)
	s.Require().Len(rows, 2)
	s.Equal(2024, *rows[0].Year)
	s.Equal(int64(2), rows[1].Participants)
}

func (s *PostgresStoreSuite) TestExportSessionsLimit() {
	rows, err := s.store.ExportSessions(s.ctx, models.Filter{}, 1)
	s.Require().NoError(err)
	s.Len(rows, 1)
}

func (s *PostgresStoreSuite) TestStartDates() {
	dates, err := s.store.StartDates(s.ctx, models.Filter{Location: filter.Location{Department: "CUSCO"}})
	s.Require().NoError(err)
	s.ElementsMatch([]views.DateCount{{Raw: "10/04/2023", Count: 2}, {Raw: "05/02/2024", Count: 1}}, dates)
}

func (s *PostgresStoreSuite) TestByDNIOrdersNewestFirst() {
	rows, err := s.store.ByDNI(s.ctx, "12345678")
	s.Require().NoError(err)
	s.Require().Len(rows, 2)
	s.Equal("Prevención", rows[0].Course)
	s.Equal("Buen trato", rows[1].Course)

	rows, err = s.store.ByDNI(s.ctx, "00000000")
	s.Require().NoError(err)
	s.Empty(rows)
}
