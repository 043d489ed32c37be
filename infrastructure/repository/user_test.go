package repository

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserRepository_ListByIDs(t *testing.T) {
	t.Run("Lista vazia não consulta o banco", func(t *testing.T) {
		conn, mock := newMockConnection(t)

		users, err := NewUserRepository(conn).ListByIDs(context.Background(), nil)

		require.NoError(t, err)
		assert.Empty(t, users)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Busca os usuários pelos ids", func(t *testing.T) {
		conn, mock := newMockConnection(t)
		mock.ExpectQuery(`SELECT u.id, u.name FROM users u WHERE u.id IN \(\$1,\$2\)`).
			WithArgs(4, 9).
			WillReturnRows(sqlmock.NewRows([]string{"id", "name"}).
				AddRow(4, "Asha").
				AddRow(9, "Ravi"))

		users, err := NewUserRepository(conn).ListByIDs(context.Background(), []int{4, 9})

		require.NoError(t, err)
		require.Len(t, users, 2)
		assert.Equal(t, "Ravi", users[1].Name)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestServiceZoneRepository_List(t *testing.T) {
	conn, mock := newMockConnection(t)
	mock.ExpectQuery(`SELECT sz.id, sz.name, COALESCE\(sz.short_form, ''\) FROM service_zones sz ORDER BY sz.id ASC`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "short_form"}).
			AddRow(1, "NORTH", "N").
			AddRow(2, "WEST", ""))

	zones, err := NewServiceZoneRepository(conn).List(context.Background())

	require.NoError(t, err)
	require.Len(t, zones, 2)
	assert.Equal(t, "N", zones[0].ShortForm)
	assert.Equal(t, "WEST", zones[1].Name)
	assert.NoError(t, mock.ExpectationsWereMet())
}
