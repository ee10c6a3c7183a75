package authz

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/helpdesk-service/internal/domain"
)

type countingRoleRepo struct {
	grants  map[string]bool
	lookups int
}

func (r *countingRoleRepo) Grant(_ context.Context, userID string, _ domain.Role) error {
	r.grants[userID] = true
	return nil
}

func (r *countingRoleRepo) HasRole(_ context.Context, userID string, _ domain.Role) (bool, error) {
	r.lookups++
	return r.grants[userID], nil
}

func newTestChecker(t *testing.T, repo *countingRoleRepo) (*Checker, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	return NewChecker(repo, client, time.Minute, nil), mr
}

func TestHasRoleCachesStoreResult(t *testing.T) {
	repo := &countingRoleRepo{grants: map[string]bool{"u-1": true}}
	checker, _ := newTestChecker(t, repo)
	ctx := context.Background()

	has, err := checker.HasRole(ctx, "u-1", domain.RoleTicketAdmin)
	require.NoError(t, err)
	assert.True(t, has)
	assert.Equal(t, 1, repo.lookups)

	// second call answers from the cache
	has, err = checker.HasRole(ctx, "u-1", domain.RoleTicketAdmin)
	require.NoError(t, err)
	assert.True(t, has)
	assert.Equal(t, 1, repo.lookups)
}

func TestHasRoleCachesNegativeResult(t *testing.T) {
	repo := &countingRoleRepo{grants: map[string]bool{}}
	checker, _ := newTestChecker(t, repo)
	ctx := context.Background()

	has, err := checker.HasRole(ctx, "u-2", domain.RoleTicketAdmin)
	require.NoError(t, err)
	assert.False(t, has)

	has, err = checker.HasRole(ctx, "u-2", domain.RoleTicketAdmin)
	require.NoError(t, err)
	assert.False(t, has)
	assert.Equal(t, 1, repo.lookups)
}

func TestInvalidateDropsCachedEntry(t *testing.T) {
	repo := &countingRoleRepo{grants: map[string]bool{}}
	checker, _ := newTestChecker(t, repo)
	ctx := context.Background()

	has, err := checker.HasRole(ctx, "u-3", domain.RoleTicketAdmin)
	require.NoError(t, err)
	assert.False(t, has)

	require.NoError(t, repo.Grant(ctx, "u-3", domain.RoleTicketAdmin))
	checker.Invalidate(ctx, "u-3", domain.RoleTicketAdmin)

	has, err = checker.HasRole(ctx, "u-3", domain.RoleTicketAdmin)
	require.NoError(t, err)
	assert.True(t, has)
	assert.Equal(t, 2, repo.lookups)
}

func TestHasRoleWithoutCacheClient(t *testing.T) {
	repo := &countingRoleRepo{grants: map[string]bool{"u-4": true}}
	checker := NewChecker(repo, nil, time.Minute, nil)

	has, err := checker.HasRole(context.Background(), "u-4", domain.RoleTicketAdmin)
	require.NoError(t, err)
	assert.True(t, has)
}

func TestHasRoleCacheOutageFallsBack(t *testing.T) {
	repo := &countingRoleRepo{grants: map[string]bool{"u-5": true}}
	checker, mr := newTestChecker(t, repo)
	mr.Close()

	has, err := checker.HasRole(context.Background(), "u-5", domain.RoleTicketAdmin)
	require.NoError(t, err)
	assert.True(t, has)
	assert.Equal(t, 1, repo.lookups)
}
