package repositories

import (
	"io"
	"log"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{
		Conn:       sqlDB,
		DriverName: "postgres",
	}), &gorm.Config{
		Logger: logger.New(log.New(io.Discard, "", 0), logger.Config{LogLevel: logger.Silent}),
	})
	require.NoError(t, err)
	return db, mock
}

func TestGetCommentsByBlogID(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewPostgresCommentRepository(db)

	now := time.Now()
	mock.ExpectQuery(`SELECT (.+) FROM "comments" WHERE blog_id = \$1`).
		WithArgs("66f0c2b7e4a1d93f5b8a1c01").
		WillReturnRows(sqlmock.NewRows([]string{"id", "blog_id", "user_id", "author", "parent_id", "content", "created_at", "updated_at"}).
			AddRow(1, "66f0c2b7e4a1d93f5b8a1c01", 1, "uid-1", nil, "root", now, now).
			AddRow(2, "66f0c2b7e4a1d93f5b8a1c01", 2, "uid-2", 1, "reply", now, now))

	comments, err := repo.GetCommentsByBlogID("66f0c2b7e4a1d93f5b8a1c01")
	require.NoError(t, err)
	require.Len(t, comments, 2)
	assert.Nil(t, comments[0].ParentID)
	require.NotNil(t, comments[1].ParentID)
	assert.Equal(t, uint(1), *comments[1].ParentID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetCommentByIDNotFound(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewPostgresCommentRepository(db)

	mock.ExpectQuery(`SELECT (.+) FROM "comments" WHERE "comments"\."id" = \$1`).
		WithArgs(99, 1).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := repo.GetCommentByID(99)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteComment(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewPostgresCommentRepository(db)

	// No cascade: only the comment row itself is touched.
	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM "comments" WHERE "comments"\."id" = \$1`).
		WithArgs(5).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	require.NoError(t, repo.DeleteComment(5))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteCommentsByBlogID(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewPostgresCommentRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM "comments" WHERE blog_id = \$1`).
		WithArgs("66f0c2b7e4a1d93f5b8a1c01").
		WillReturnResult(sqlmock.NewResult(0, 3))
	mock.ExpectCommit()

	require.NoError(t, repo.DeleteCommentsByBlogID("66f0c2b7e4a1d93f5b8a1c01"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAddLikeInsertsOnce(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewPostgresCommentLikeRepository(db)

	mock.ExpectQuery(`SELECT count\(\*\) FROM "comment_likes" WHERE comment_id = \$1 AND user_id = \$2`).
		WithArgs(1, 2).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "comment_likes"`).
		WithArgs(1, 2, sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))
	mock.ExpectCommit()

	added, err := repo.AddLike(1, 2)
	require.NoError(t, err)
	assert.True(t, added)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAddLikeAlreadyLiked(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewPostgresCommentLikeRepository(db)

	mock.ExpectQuery(`SELECT count\(\*\) FROM "comment_likes" WHERE comment_id = \$1 AND user_id = \$2`).
		WithArgs(1, 2).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

	added, err := repo.AddLike(1, 2)
	require.NoError(t, err)
	assert.False(t, added)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRemoveLikeReportsMissing(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewPostgresCommentLikeRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM "comment_likes" WHERE comment_id = \$1 AND user_id = \$2`).
		WithArgs(1, 2).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	removed, err := repo.RemoveLike(1, 2)
	require.NoError(t, err)
	assert.False(t, removed)
	assert.NoError(t, mock.ExpectationsWereMet())
}
