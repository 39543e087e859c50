package session

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/funfight/challenge-tracker/internal/domain"
)

func TestStore_CreateGetDelete(t *testing.T) {
	store := NewStore()

	id, err := store.Create(&domain.Session{Mode: domain.ModeDamage})
	require.NoError(t, err)
	require.NotEmpty(t, id)
	require.Equal(t, 1, store.Len())

	sess, err := store.Get(id)
	require.NoError(t, err)
	require.Equal(t, id, sess.ID)
	require.Equal(t, domain.ModeDamage, sess.Mode)

	store.Delete(id)
	_, err = store.Get(id)
	require.ErrorIs(t, err, ErrNotFound)
	require.Zero(t, store.Len())

	// repeated delete is a no-op
	store.Delete(id)
}

func TestStore_GetReturnsCopy(t *testing.T) {
	store := NewStore()
	id, err := store.Create(&domain.Session{Mode: domain.ModeGold})
	require.NoError(t, err)

	sess, err := store.Get(id)
	require.NoError(t, err)
	sess.Mode = domain.ModeKDA

	stored, err := store.Get(id)
	require.NoError(t, err)
	require.Equal(t, domain.ModeGold, stored.Mode)
}

func TestStore_GetIsolatedFromInPlaceShifts(t *testing.T) {
	store := NewStore()
	id, err := store.Create(&domain.Session{
		Summoners:      []domain.Summoner{{Name: "faker"}, {Name: "chovy"}},
		InvalidMatches: []string{"m1", "m2", "m3"},
	})
	require.NoError(t, err)

	snap, err := store.Get(id)
	require.NoError(t, err)

	// shift elements in place the way un-invalidating a match and removing
	// a summoner do
	err = store.Update(id, func(s *domain.Session) error {
		s.InvalidMatches = append(s.InvalidMatches[:0], s.InvalidMatches[1:]...)
		s.Summoners = append(s.Summoners[:0], s.Summoners[1:]...)
		return nil
	})
	require.NoError(t, err)

	require.Equal(t, []string{"m1", "m2", "m3"}, snap.InvalidMatches)
	require.Equal(t, "faker", snap.Summoners[0].Name)
}

func TestStore_ConcurrentReadsDuringShifts(t *testing.T) {
	store := NewStore()
	id, err := store.Create(&domain.Session{InvalidMatches: []string{"m1", "m2"}})
	require.NoError(t, err)

	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := 0; i < 1000; i++ {
			_ = store.Update(id, func(s *domain.Session) error {
				if len(s.InvalidMatches) > 1 {
					s.InvalidMatches = append(s.InvalidMatches[:0], s.InvalidMatches[1:]...)
				} else {
					s.InvalidMatches = append(s.InvalidMatches, "m2")
				}
				return nil
			})
		}
	}()

	for i := 0; i < 1000; i++ {
		snap, err := store.Get(id)
		require.NoError(t, err)
		for _, matchID := range snap.InvalidMatches {
			require.NotEmpty(t, matchID)
		}
	}
	<-done
}

func TestStore_Update(t *testing.T) {
	store := NewStore()
	id, err := store.Create(&domain.Session{Mode: domain.ModeDamage})
	require.NoError(t, err)

	err = store.Update(id, func(s *domain.Session) error {
		s.Summoners = append(s.Summoners, domain.Summoner{Name: "faker"})
		return nil
	})
	require.NoError(t, err)

	sess, err := store.Get(id)
	require.NoError(t, err)
	require.Len(t, sess.Summoners, 1)

	wantErr := errors.New("boom")
	err = store.Update(id, func(s *domain.Session) error { return wantErr })
	require.ErrorIs(t, err, wantErr)

	err = store.Update("missing", func(s *domain.Session) error { return nil })
	require.ErrorIs(t, err, ErrNotFound)
}
