package repository

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupMockRepo(t *testing.T) (NurseRepository, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() {
		sqlDB.Close()
	})

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	return NewNurseRepository(db), mock
}

func nurseRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{"employee_id", "first_name", "last_name", "email", "ward_id"}).
		AddRow(1, "Anna", "Smith", "anna@x.com", 1)
}

func wardRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "ward_name", "ward_color"}).
		AddRow(1, "ICU", "Red")
}

func TestGormNurseRepository_FilterByFullName(t *testing.T) {
	repo, mock := setupMockRepo(t)

	// Both name columns are matched case-insensitively.
	mock.ExpectQuery(`SELECT count\(\*\) FROM "nurses" WHERE.*LOWER\(nurses\.first_name\) LIKE .* OR LOWER\(nurses\.last_name\) LIKE`).
		WithArgs("%ann%", "%ann%").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectQuery(`SELECT .* FROM "nurses" WHERE.*LIKE.*ORDER BY nurses\.employee_id ASC`).
		WillReturnRows(nurseRows())
	mock.ExpectQuery(`SELECT .* FROM "wards"`).
		WillReturnRows(wardRows())

	nurses, total, err := repo.Filter(NurseFilter{FullName: "Ann", Page: 1, Limit: 10})
	require.NoError(t, err)
	require.EqualValues(t, 1, total)
	require.Len(t, nurses, 1)
	require.NotNil(t, nurses[0].Ward)
	require.Equal(t, "ICU", nurses[0].Ward.WardName)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGormNurseRepository_FilterByWardNameUsesInnerJoin(t *testing.T) {
	repo, mock := setupMockRepo(t)

	// Supplying a ward name makes the ward join mandatory.
	mock.ExpectQuery(`SELECT count\(\*\) FROM "nurses" JOIN wards ON wards\.id = nurses\.ward_id WHERE LOWER\(wards\.ward_name\) LIKE`).
		WithArgs("%icu%").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectQuery(`SELECT .* FROM "nurses" JOIN wards ON wards\.id = nurses\.ward_id WHERE.*ORDER BY nurses\.employee_id ASC`).
		WillReturnRows(nurseRows())
	mock.ExpectQuery(`SELECT .* FROM "wards"`).
		WillReturnRows(wardRows())

	_, total, err := repo.Filter(NurseFilter{WardName: "ICU", Page: 1, Limit: 10})
	require.NoError(t, err)
	require.EqualValues(t, 1, total)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGormNurseRepository_FilterWithoutWardNameSkipsJoin(t *testing.T) {
	repo, mock := setupMockRepo(t)

	mock.ExpectQuery(`SELECT count\(\*\) FROM "nurses"`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectQuery(`SELECT \* FROM "nurses" ORDER BY nurses\.employee_id ASC`).
		WillReturnRows(nurseRows())
	mock.ExpectQuery(`SELECT .* FROM "wards"`).
		WillReturnRows(wardRows())

	_, total, err := repo.Filter(NurseFilter{Page: 1, Limit: 10})
	require.NoError(t, err)
	require.EqualValues(t, 1, total)

	require.NoError(t, mock.ExpectationsWereMet())
}
