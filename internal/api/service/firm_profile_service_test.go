package service

import (
	"context"
	"testing"

	"github.com/MEMAtest/horizon-scanner-backend/internal/api/dto"
	"github.com/MEMAtest/horizon-scanner-backend/internal/entity"
	"github.com/MEMAtest/horizon-scanner-backend/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type recordingProfileRepo struct {
	created          []*entity.FirmProfile
	deactivatedUsers []string
}

func (r *recordingProfileRepo) Create(ctx context.Context, profile *entity.FirmProfile) error {
	r.created = append(r.created, profile)
	return nil
}

func (r *recordingProfileRepo) FindByID(ctx context.Context, id uint) (*entity.FirmProfile, error) {
	return nil, nil
}

func (r *recordingProfileRepo) FindActiveByUserID(ctx context.Context, userID string) (*entity.FirmProfile, error) {
	return nil, nil
}

func (r *recordingProfileRepo) Update(ctx context.Context, profile *entity.FirmProfile) error {
	return nil
}

func (r *recordingProfileRepo) Deactivate(ctx context.Context, id uint) error {
	return nil
}

func (r *recordingProfileRepo) DeactivateByUserID(ctx context.Context, userID string) error {
	r.deactivatedUsers = append(r.deactivatedUsers, userID)
	return nil
}

func TestCreateProfileRetiresPreviousActiveProfile(t *testing.T) {
	repo := &recordingProfileRepo{}
	svc := NewFirmProfileService(repo, &logger.Logger{Logger: zap.NewNop()})

	resp, err := svc.CreateProfile(context.Background(), &dto.CreateFirmProfileRequest{
		UserID:       "user-42",
		Name:         "Acme Capital",
		FirmType:     string(entity.FirmTypeBank),
		Size:         string(entity.FirmSizeMedium),
		RiskAppetite: string(entity.RiskAppetiteModerate),
	})
	require.NoError(t, err)

	// the old active profile is retired before the new one is saved
	require.Equal(t, []string{"user-42"}, repo.deactivatedUsers)
	require.Len(t, repo.created, 1)
	assert.True(t, repo.created[0].IsActive)
	assert.True(t, resp.IsActive)
	assert.Equal(t, "user-42", resp.UserID)
}
