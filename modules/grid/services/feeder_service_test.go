package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/blumenos/gridadmin/modules/grid/domain/entities/feeder"
	"github.com/blumenos/gridadmin/modules/grid/services"
)

type staticFeederRepo struct {
	feeders []feeder.Feeder
}

func (r *staticFeederRepo) GetAll(context.Context) ([]feeder.Feeder, error) {
	return r.feeders, nil
}

func (r *staticFeederRepo) GetByID(_ context.Context, id uint) (feeder.Feeder, error) {
	for _, f := range r.feeders {
		if f.ID == id {
			return f, nil
		}
	}
	return feeder.Feeder{}, nil
}

func TestFeederService_Search(t *testing.T) {
	repo := &staticFeederRepo{feeders: []feeder.Feeder{
		{ID: 1, Code: "FD-AJAH-01", Name: "Ajah Industrial"},
		{ID: 2, Code: "FD-IKEJA-02", Name: "Ikeja Township"},
		{ID: 3, Code: "FD-LEKKI-03", Name: "Lekki Phase 1"},
	}}
	svc := services.NewFeederService(repo)

	t.Run("empty query returns all", func(t *testing.T) {
		got, err := svc.Search(context.Background(), "  ")
		require.NoError(t, err)
		assert.Len(t, got, 3)
	})

	t.Run("matches by code", func(t *testing.T) {
		got, err := svc.Search(context.Background(), "ikeja")
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, uint(2), got[0].ID)
	})

	t.Run("matches by name", func(t *testing.T) {
		got, err := svc.Search(context.Background(), "township")
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, uint(2), got[0].ID)
	})

	t.Run("no match returns empty", func(t *testing.T) {
		got, err := svc.Search(context.Background(), "zzz")
		require.NoError(t, err)
		assert.Empty(t, got)
	})
}
