package service

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"employee-service/internal/domains/employee"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeRepo is an in-memory employee.Repository keyed by internal id.
type fakeRepo struct {
	records  map[uuid.UUID]*employee.Employee
	findAlls int
	saves    int
	deletes  int
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{records: make(map[uuid.UUID]*employee.Employee)}
}

func (r *fakeRepo) FindAll(ctx context.Context) ([]*employee.Employee, error) {
	r.findAlls++
	out := make([]*employee.Employee, 0, len(r.records))
	for _, emp := range r.records {
		cp := *emp
		out = append(out, &cp)
	}
	return out, nil
}

func (r *fakeRepo) FindByCode(ctx context.Context, code string) (*employee.Employee, error) {
	for _, emp := range r.records {
		if emp.EmployeeCode == code {
			cp := *emp
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeRepo) Save(ctx context.Context, emp *employee.Employee) (*employee.Employee, error) {
	r.saves++
	if emp.ID == uuid.Nil {
		emp.ID = uuid.New()
	}
	for id, existing := range r.records {
		if id == emp.ID {
			continue
		}
		if existing.EmployeeCode == emp.EmployeeCode {
			return nil, employee.ErrDuplicateCode
		}
		if existing.Email == emp.Email {
			return nil, employee.ErrDuplicateEmail
		}
	}
	cp := *emp
	r.records[emp.ID] = &cp
	return emp, nil
}

func (r *fakeRepo) Delete(ctx context.Context, emp *employee.Employee) error {
	r.deletes++
	if _, ok := r.records[emp.ID]; !ok {
		return employee.ErrEmployeeNotFound
	}
	delete(r.records, emp.ID)
	return nil
}

// spyCache records cache traffic so invalidation can be asserted.
type spyCache struct {
	entries map[string][]byte
	sets    int
	deletes int
}

func newSpyCache() *spyCache {
	return &spyCache{entries: make(map[string][]byte)}
}

func (c *spyCache) Get(ctx context.Context, key string, dest interface{}) (bool, error) {
	data, ok := c.entries[key]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(data, dest)
}

func (c *spyCache) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	c.sets++
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	c.entries[key] = data
	return nil
}

func (c *spyCache) Delete(ctx context.Context, keys ...string) error {
	c.deletes++
	for _, key := range keys {
		delete(c.entries, key)
	}
	return nil
}

func (c *spyCache) Ping(ctx context.Context) error { return nil }

func newRequest(code, email string) *employee.EmployeeRequest {
	return &employee.EmployeeRequest{
		EmployeeCode:  code,
		FirstName:     "Ana",
		DateOfBirth:   "1990-01-01",
		DateOfJoining: "2020-01-01",
		Email:         email,
		Status:        employee.StatusActive,
	}
}

func TestCreateThenListAllContainsRecord(t *testing.T) {
	repo := newFakeRepo()
	svc := NewEmployeeService(repo, nil)
	ctx := context.Background()

	ok, err := svc.Create(ctx, newRequest("E100", "ana@x.com"))
	require.NoError(t, err)
	assert.True(t, ok)

	all, err := svc.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)

	assert.Equal(t, "E100", all[0].EmployeeCode)
	assert.Equal(t, "Ana", all[0].FirstName)
	assert.Equal(t, "1990-01-01", all[0].DateOfBirth)
	assert.NotEqual(t, uuid.Nil, all[0].ID)
}

func TestCreateDuplicateCodePropagatesConflict(t *testing.T) {
	repo := newFakeRepo()
	svc := NewEmployeeService(repo, nil)
	ctx := context.Background()

	_, err := svc.Create(ctx, newRequest("E100", "ana@x.com"))
	require.NoError(t, err)

	ok, err := svc.Create(ctx, newRequest("E100", "other@x.com"))
	assert.False(t, ok)
	assert.ErrorIs(t, err, employee.ErrDuplicateCode)
}

func TestUpdateUnknownCodeReturnsFalseWithoutWrite(t *testing.T) {
	repo := newFakeRepo()
	svc := NewEmployeeService(repo, nil)

	ok, err := svc.Update(context.Background(), newRequest("E404", "ghost@x.com"))
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Zero(t, repo.saves)
}

func TestUpdateReplacesAllFieldsKeepingID(t *testing.T) {
	repo := newFakeRepo()
	svc := NewEmployeeService(repo, nil)
	ctx := context.Background()

	req := newRequest("E100", "ana@x.com")
	req.Department = "Engineering"
	_, err := svc.Create(ctx, req)
	require.NoError(t, err)

	before, err := repo.FindByCode(ctx, "E100")
	require.NoError(t, err)

	// Full replace: the omitted department must not survive from the old record.
	updated := newRequest("E100", "ana.silva@x.com")
	updated.FirstName = "Anabel"

	ok, err := svc.Update(ctx, updated)
	require.NoError(t, err)
	assert.True(t, ok)

	after, err := repo.FindByCode(ctx, "E100")
	require.NoError(t, err)
	require.NotNil(t, after)

	assert.Equal(t, before.ID, after.ID)
	assert.Equal(t, "Anabel", after.FirstName)
	assert.Equal(t, "ana.silva@x.com", after.Email)
	assert.Empty(t, after.Department)
}

func TestDeleteUnknownCodeReturnsFalseWithoutSideEffect(t *testing.T) {
	repo := newFakeRepo()
	svc := NewEmployeeService(repo, nil)

	ok, err := svc.Delete(context.Background(), "E404")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Zero(t, repo.deletes)
}

func TestDeleteTwiceSecondReturnsFalse(t *testing.T) {
	repo := newFakeRepo()
	svc := NewEmployeeService(repo, nil)
	ctx := context.Background()

	_, err := svc.Create(ctx, newRequest("E100", "ana@x.com"))
	require.NoError(t, err)

	ok, err := svc.Delete(ctx, "E100")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = svc.Delete(ctx, "E100")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestListAllServesFromCacheWhenWarm(t *testing.T) {
	repo := newFakeRepo()
	cache := newSpyCache()
	svc := NewEmployeeService(repo, cache)
	ctx := context.Background()

	_, err := svc.Create(ctx, newRequest("E100", "ana@x.com"))
	require.NoError(t, err)

	_, err = svc.ListAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, repo.findAlls)
	assert.Equal(t, 1, cache.sets)

	// Second read hits the cache, not the repository.
	all, err := svc.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, 1, repo.findAlls)
}

func TestMutationsInvalidateListCache(t *testing.T) {
	repo := newFakeRepo()
	cache := newSpyCache()
	svc := NewEmployeeService(repo, cache)
	ctx := context.Background()

	_, err := svc.Create(ctx, newRequest("E100", "ana@x.com"))
	require.NoError(t, err)

	_, err = svc.ListAll(ctx)
	require.NoError(t, err)
	require.Contains(t, cache.entries, "employees:all")

	ok, err := svc.Delete(ctx, "E100")
	require.NoError(t, err)
	require.True(t, ok)

	assert.NotContains(t, cache.entries, "employees:all")

	all, err := svc.ListAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)
}
