package service

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"charityflow/internal/domain"
)

func newNGO() *domain.NGO {
	return &domain.NGO{
		Name:     " Hope Foundation ",
		Country:  "Lebanon",
		Category: domain.CategoryHealth,
	}
}

func TestNGOCreate_Normalizes(t *testing.T) {
	repo := &fakeNGORepo{}
	svc := NewNGOService(repo, zerolog.Nop())

	created, err := svc.Create(context.Background(), newNGO())
	require.NoError(t, err)
	assert.Equal(t, "hope foundation", created.Name)
	assert.NotEmpty(t, created.ID)
	require.Len(t, repo.items, 1)
}

func TestNGOCreate_VerifiedWithoutEmailRejected(t *testing.T) {
	svc := NewNGOService(&fakeNGORepo{}, zerolog.Nop())

	n := newNGO()
	n.IsVerified = true
	_, err := svc.Create(context.Background(), n)
	var verrs domain.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.Equal(t, "contact.email", verrs[0].Field)
}

func TestNGOUpdate_VerifyFlagRevalidatesEmail(t *testing.T) {
	repo := &fakeNGORepo{}
	svc := NewNGOService(repo, zerolog.Nop())
	created, err := svc.Create(context.Background(), newNGO())
	require.NoError(t, err)

	verified := true
	_, err = svc.Update(context.Background(), created.ID, domain.NGOPatch{IsVerified: &verified})
	var verrs domain.ValidationErrors
	require.ErrorAs(t, err, &verrs)

	updated, err := svc.Update(context.Background(), created.ID, domain.NGOPatch{
		IsVerified: &verified,
		Contact:    &domain.Contact{Email: "info@hope.org"},
	})
	require.NoError(t, err)
	assert.True(t, updated.IsVerified)
}

func TestNGODelete_NoCascade(t *testing.T) {
	repo := &fakeNGORepo{}
	svc := NewNGOService(repo, zerolog.Nop())
	created, err := svc.Create(context.Background(), newNGO())
	require.NoError(t, err)

	require.NoError(t, svc.Delete(context.Background(), created.ID))
	assert.ErrorIs(t, svc.Delete(context.Background(), created.ID), domain.ErrNotFound)
	assert.ErrorIs(t, svc.Delete(context.Background(), "bogus"), domain.ErrMalformedID)
}
