package ngo

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"GiveBridge-Backend/domain"
	"GiveBridge-Backend/entities"
)

type stubNGORepository struct {
	ngos []*entities.NGO
}

func (s *stubNGORepository) GetNGOs(_ context.Context) ([]*entities.NGO, error) {
	return s.ngos, nil
}

func (s *stubNGORepository) GetNGOByID(_ context.Context, id string) (*entities.NGO, error) {
	for _, n := range s.ngos {
		if n.ID.String() == id {
			return n, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (s *stubNGORepository) UpdateRating(_ context.Context, _ string, _ float64, _ int) error {
	return nil
}

func TestGetNGOs(t *testing.T) {
	repo := &stubNGORepository{ngos: []*entities.NGO{
		{
			ID:                 uuid.New(),
			Name:               "Helping Hands",
			AcceptedCategories: []string{"Clothes", "Books"},
			Rating:             4.5,
			RatingCount:        12,
		},
		{
			ID:   uuid.New(),
			Name: "Second Chance",
		},
	}}
	service := NewNGOService(repo)

	listed, err := service.GetNGOs(context.Background())
	require.NoError(t, err)
	require.Len(t, listed, 2)
	assert.Equal(t, "Helping Hands", listed[0].Name)
	assert.Equal(t, []string{"Clothes", "Books"}, listed[0].AcceptedCategories)
	assert.Equal(t, 4.5, listed[0].Rating)
	assert.Equal(t, 12, listed[0].RatingCount)
}

func TestGetNGOByID(t *testing.T) {
	target := &entities.NGO{ID: uuid.New(), Name: "Helping Hands"}
	service := NewNGOService(&stubNGORepository{ngos: []*entities.NGO{target}})

	found, err := service.GetNGOByID(context.Background(), target.ID.String())
	require.NoError(t, err)
	assert.Equal(t, target.Name, found.Name)

	_, err = service.GetNGOByID(context.Background(), uuid.NewString())
	assert.ErrorIs(t, err, domain.ErrNGONotFound)
}
