package usecase

import (
	"context"
	"sort"

	"movie-catalog/internal/data/entity"
	"movie-catalog/internal/data/repository"

	"github.com/google/uuid"
)

// fakeUserRepo is an in-memory UserRepository keyed by username. A user set
// in stale is visible to lookups but absent from the store, simulating a
// record deleted by a concurrent request.
type fakeUserRepo struct {
	users map[string]*entity.User
	stale *entity.User
	err   error
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*entity.User)}
}

func (f *fakeUserRepo) Create(ctx context.Context, user *entity.User) error {
	if f.err != nil {
		return f.err
	}
	stored := *user
	f.users[user.Username] = &stored
	return nil
}

func (f *fakeUserRepo) FindByUsername(ctx context.Context, username string) (*entity.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	user, ok := f.users[username]
	if !ok {
		if f.stale != nil && f.stale.Username == username {
			copied := *f.stale
			return &copied, nil
		}
		return nil, nil
	}
	copied := *user
	return &copied, nil
}

func (f *fakeUserRepo) FindAll(ctx context.Context) ([]*entity.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	names := make([]string, 0, len(f.users))
	for name := range f.users {
		names = append(names, name)
	}
	sort.Strings(names)

	users := make([]*entity.User, 0, len(names))
	for _, name := range names {
		copied := *f.users[name]
		users = append(users, &copied)
	}
	return users, nil
}

func (f *fakeUserRepo) Update(ctx context.Context, user *entity.User) (bool, error) {
	if f.err != nil {
		return false, f.err
	}
	for name, stored := range f.users {
		if stored.ID == user.ID {
			delete(f.users, name)
			copied := *user
			f.users[user.Username] = &copied
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeUserRepo) Delete(ctx context.Context, username string) (bool, error) {
	if f.err != nil {
		return false, f.err
	}
	if _, ok := f.users[username]; !ok {
		return false, nil
	}
	delete(f.users, username)
	return true, nil
}

// fakeFavoriteRepo is an in-memory FavoriteRepository preserving insertion
// order and deduplicating adds, matching the SQL semantics.
type fakeFavoriteRepo struct {
	favorites map[uuid.UUID][]uuid.UUID
	err       error
}

func newFakeFavoriteRepo() *fakeFavoriteRepo {
	return &fakeFavoriteRepo{favorites: make(map[uuid.UUID][]uuid.UUID)}
}

func (f *fakeFavoriteRepo) Add(ctx context.Context, userID, movieID uuid.UUID) error {
	if f.err != nil {
		return f.err
	}
	for _, existing := range f.favorites[userID] {
		if existing == movieID {
			return nil
		}
	}
	f.favorites[userID] = append(f.favorites[userID], movieID)
	return nil
}

func (f *fakeFavoriteRepo) Remove(ctx context.Context, userID, movieID uuid.UUID) error {
	if f.err != nil {
		return f.err
	}
	kept := f.favorites[userID][:0]
	for _, existing := range f.favorites[userID] {
		if existing != movieID {
			kept = append(kept, existing)
		}
	}
	f.favorites[userID] = kept
	return nil
}

func (f *fakeFavoriteRepo) ListByUser(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error) {
	if f.err != nil {
		return nil, f.err
	}
	return append([]uuid.UUID(nil), f.favorites[userID]...), nil
}

func newTestRepository(users *fakeUserRepo, favorites *fakeFavoriteRepo) *repository.Repository {
	return &repository.Repository{
		User:     users,
		Favorite: favorites,
	}
}
