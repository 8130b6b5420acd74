// file: repository/token_repository.go

package repository

import (
	"database/sql"
	"go-auth-api/logger"
	"go-auth-api/model"

	"github.com/google/uuid"
)

// ITokenRepository defines the contract for refresh record storage. A record
// is keyed by its user: the schema holds at most one row per user, and
// rotation replaces the row wholesale.
type ITokenRepository interface {
	Create(userID int) (*model.RefreshRecord, error)
	DeleteByUserID(userID int) (int64, error)
	// GetByUserID returns (nil, nil) when no record exists for the user.
	GetByUserID(userID int) (*model.RefreshRecord, error)
}

// TokenRepository implements ITokenRepository on Postgres.
type TokenRepository struct {
	DB *sql.DB
}

func NewTokenRepository(db *sql.DB) *TokenRepository {
	return &TokenRepository{DB: db}
}

// Create inserts a fresh refresh record with an app-generated UUID id.
func (r *TokenRepository) Create(userID int) (*model.RefreshRecord, error) {
	record := &model.RefreshRecord{
		ID:     uuid.NewString(),
		UserID: userID,
	}

	query := `INSERT INTO refresh_tokens (id, user_id) VALUES ($1, $2) RETURNING created_at`
	err := r.DB.QueryRow(query, record.ID, record.UserID).Scan(&record.CreatedAt)
	if err != nil {
		logger.Log.WithError(err).WithField("user_id", userID).Error("Failed to execute create refresh record query")
		return nil, err
	}
	return record, nil
}

// DeleteByUserID removes the user's refresh record, if any, and reports how
// many rows were affected.
func (r *TokenRepository) DeleteByUserID(userID int) (int64, error) {
	query := `DELETE FROM refresh_tokens WHERE user_id = $1`
	result, err := r.DB.Exec(query, userID)
	if err != nil {
		logger.Log.WithError(err).WithField("user_id", userID).Error("Failed to execute delete refresh record query")
		return 0, err
	}
	return result.RowsAffected()
}

func (r *TokenRepository) GetByUserID(userID int) (*model.RefreshRecord, error) {
	record := &model.RefreshRecord{}
	query := `SELECT id, user_id, created_at FROM refresh_tokens WHERE user_id = $1`
	err := r.DB.QueryRow(query, userID).Scan(&record.ID, &record.UserID, &record.CreatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		logger.Log.WithError(err).WithField("user_id", userID).Error("Failed to execute get refresh record query")
		return nil, err
	}
	return record, nil
}
