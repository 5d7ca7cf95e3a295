package repository

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	gomysql "github.com/go-sql-driver/mysql"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"surveywallet/internal/model"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	gdb, err := gorm.Open(mysql.New(mysql.Config{
		Conn:                      sqlDB,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	return gdb, mock
}

func duplicateKeyErr() error {
	return &gomysql.MySQLError{Number: 1062, Message: "Duplicate entry"}
}

func TestSurveyRepository_AddVote_DuplicateRollsBackCounter(t *testing.T) {
	gdb, mock := newMockDB(t)
	repo := NewSurveyRepository(gdb)
	surveyID := uuid.New()

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE `surveys` SET").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("INSERT INTO `survey_votes`").
		WillReturnError(duplicateKeyErr())
	mock.ExpectRollback()

	err := repo.AddVote(context.Background(), &model.SurveyVote{
		SurveyID:   surveyID,
		VoterEmail: "a@x.com",
		Choice:     "A",
	})

	assert.ErrorIs(t, err, gorm.ErrDuplicatedKey)
	assert.NoError(t, mock.ExpectationsWereMet(),
		"counter bump must be rolled back, not committed")
}

func TestSurveyRepository_AddVote_MissingSurveyInsertsNothing(t *testing.T) {
	gdb, mock := newMockDB(t)
	repo := NewSurveyRepository(gdb)

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE `surveys` SET").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()

	err := repo.AddVote(context.Background(), &model.SurveyVote{
		SurveyID:   uuid.New(),
		VoterEmail: "a@x.com",
		Choice:     "A",
	})

	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSurveyRepository_AddReaction_DuplicateRollsBackCounter(t *testing.T) {
	gdb, mock := newMockDB(t)
	repo := NewSurveyRepository(gdb)

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE `surveys` SET").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("INSERT INTO `survey_reactions`").
		WillReturnError(duplicateKeyErr())
	mock.ExpectRollback()

	err := repo.AddReaction(context.Background(), &model.SurveyReaction{
		SurveyID:     uuid.New(),
		SubjectEmail: "a@x.com",
		Kind:         model.ReactionLike,
	})

	assert.ErrorIs(t, err, gorm.ErrDuplicatedKey)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSurveyRepository_FindByID_EmptyCollectionsNotNil(t *testing.T) {
	gdb, mock := newMockDB(t)
	repo := NewSurveyRepository(gdb)
	surveyID := uuid.New()

	mock.ExpectQuery("SELECT (.+) FROM `surveys`").
		WillReturnRows(sqlmock.NewRows(
			[]string{"id", "owner_email", "title", "question", "options", "status"}).
			AddRow(surveyID.String(), "owner@example.com", "Q", "Q", `["A","B"]`, "active"))
	// Preloads run in name order: Comments before Votes.
	mock.ExpectQuery("SELECT (.+) FROM `comments`").
		WillReturnRows(sqlmock.NewRows([]string{"id", "survey_id", "author_email", "body"}))
	mock.ExpectQuery("SELECT (.+) FROM `survey_votes`").
		WillReturnRows(sqlmock.NewRows([]string{"id", "survey_id", "voter_email", "choice"}))

	survey, err := repo.FindByID(context.Background(), surveyID)

	assert.NoError(t, err)
	assert.NotNil(t, survey.Votes)
	assert.NotNil(t, survey.Comments)
	assert.Empty(t, survey.Votes)
	assert.Empty(t, survey.Comments)
	assert.NoError(t, mock.ExpectationsWereMet())
}
