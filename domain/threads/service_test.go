package threads_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vander-supa3/academia-nutricional/domain/threads"
	"github.com/vander-supa3/academia-nutricional/internal/testutil"
	"github.com/vander-supa3/academia-nutricional/pkg/assistant"
)

// fakeProvider counts thread creations; the other Provider methods are not
// used by the thread service.
type fakeProvider struct {
	assistant.Provider

	created   int
	createErr error
}

func (f *fakeProvider) CreateThread(ctx context.Context) (string, error) {
	if f.createErr != nil {
		return "", f.createErr
	}
	f.created++
	return "thread_" + string(rune('a'+f.created-1)), nil
}

func TestResolveCreatesBindingOnce(t *testing.T) {
	db := testutil.NewDB(t)
	repo := threads.NewRepository(db, testutil.Logger())
	provider := &fakeProvider{}
	svc := threads.NewService(repo, provider, testutil.Logger())
	ctx := context.Background()

	first, err := svc.Resolve(ctx, "user-1")
	require.NoError(t, err)
	assert.Equal(t, "thread_a", first)

	// Second call reuses the binding, no new remote thread.
	second, err := svc.Resolve(ctx, "user-1")
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Equal(t, 1, provider.created)
}

func TestResolveIsPerUser(t *testing.T) {
	db := testutil.NewDB(t)
	repo := threads.NewRepository(db, testutil.Logger())
	provider := &fakeProvider{}
	svc := threads.NewService(repo, provider, testutil.Logger())
	ctx := context.Background()

	a, err := svc.Resolve(ctx, "user-1")
	require.NoError(t, err)
	b, err := svc.Resolve(ctx, "user-2")
	require.NoError(t, err)

	assert.NotEqual(t, a, b)
	assert.Equal(t, 2, provider.created)
}

func TestResolveProviderFailure(t *testing.T) {
	db := testutil.NewDB(t)
	repo := threads.NewRepository(db, testutil.Logger())
	provider := &fakeProvider{createErr: errors.New("provider down")}
	svc := threads.NewService(repo, provider, testutil.Logger())

	_, err := svc.Resolve(context.Background(), "user-1")
	require.Error(t, err)

	// Nothing persisted.
	binding, err := repo.Get(context.Background(), "user-1")
	require.NoError(t, err)
	assert.Nil(t, binding)
}

func TestUpsertLastWriterWins(t *testing.T) {
	db := testutil.NewDB(t)
	repo := threads.NewRepository(db, testutil.Logger())
	ctx := context.Background()

	require.NoError(t, repo.Upsert(ctx, "user-1", "thread_old"))
	require.NoError(t, repo.Upsert(ctx, "user-1", "thread_new"))

	binding, err := repo.Get(ctx, "user-1")
	require.NoError(t, err)
	require.NotNil(t, binding)
	assert.Equal(t, "thread_new", binding.ThreadID)
}
