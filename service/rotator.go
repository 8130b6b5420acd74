// file: service/rotator.go

package service

import (
	"go-auth-api/logger"
	"go-auth-api/repository"

	"github.com/sirupsen/logrus"
)

// RefreshTokenRotator owns the single-active-refresh-token invariant. Rotate
// is the only path that mutates refresh records; AssertKnown is read-only.
type RefreshTokenRotator struct {
	tokenRepo repository.ITokenRepository
}

func NewRefreshTokenRotator(tokenRepo repository.ITokenRepository) *RefreshTokenRotator {
	return &RefreshTokenRotator{tokenRepo: tokenRepo}
}

// Rotate deletes any existing refresh record for the subject and creates a
// fresh one, returning its id. Two concurrent rotations for the same subject
// may race; the last write wins and the loser's token simply becomes
// unusable, which is the intended behavior.
func (r *RefreshTokenRotator) Rotate(subjectID int) (string, error) {
	deleted, err := r.tokenRepo.DeleteByUserID(subjectID)
	if err != nil {
		return "", err
	}
	if deleted > 0 {
		logger.Log.WithFields(logrus.Fields{
			"subject_id": subjectID,
			"deleted":    deleted,
		}).Info("Rotated out existing refresh record")
	}

	record, err := r.tokenRepo.Create(subjectID)
	if err != nil {
		return "", err
	}
	return record.ID, nil
}

// AssertKnown verifies that the subject's currently stored refresh record
// matches the presented record id. A missing record and a stale id are
// indistinguishable to the caller.
func (r *RefreshTokenRotator) AssertKnown(subjectID int, refreshRecordID string) error {
	record, err := r.tokenRepo.GetByUserID(subjectID)
	if err != nil {
		return err
	}
	if record == nil || record.ID != refreshRecordID {
		return &RefreshTokenUnknownError{SubjectID: subjectID}
	}
	return nil
}
