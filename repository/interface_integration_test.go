package repository

import (
	"context"
	"errors"
	"github.com/QuangTung97/mailing-scheduler/model"
	"github.com/QuangTung97/mailing-scheduler/pkg/integration"
	"github.com/stretchr/testify/assert"
	"testing"
)

func TestProvider_Readonly__GetReadonly(t *testing.T) {
	tc := integration.NewTestCase()

	p := NewProvider(tc.DB)
	ctx := p.Readonly(newContext())

	db := GetReadonly(ctx)

	var version string
	err := db.GetContext(ctx, &version, "SELECT VERSION()")
	assert.Equal(t, nil, err)
	assert.NotEqual(t, "", version)
}

func TestProvider_Transact__GetTransaction(t *testing.T) {
	tc := integration.NewTestCase()

	var version string

	p := NewProvider(tc.DB)
	err := p.Transact(newContext(), func(ctx context.Context) error {
		tx := GetTx(ctx)

		err := tx.GetContext(ctx, &version, "SELECT VERSION()")
		assert.Equal(t, nil, err)

		return nil
	})
	assert.Equal(t, nil, err)
	assert.NotEqual(t, "", version)
}

func TestProvider_Transact__GetReadonly(t *testing.T) {
	tc := integration.NewTestCase()

	var version string

	p := NewProvider(tc.DB)
	err := p.Transact(newContext(), func(ctx context.Context) error {
		db := GetReadonly(ctx)

		err := db.GetContext(ctx, &version, "SELECT VERSION()")
		assert.Equal(t, nil, err)

		return nil
	})
	assert.Equal(t, nil, err)
	assert.NotEqual(t, "", version)
}

func TestProvider_Transact__Multi_Calls_Multi_Levels(t *testing.T) {
	tc := integration.NewTestCase()

	var version string

	p := NewProvider(tc.DB)
	err := p.Transact(newContext(), func(ctx context.Context) error {
		return p.Transact(ctx, func(ctx context.Context) error {
			tx := GetTx(ctx)

			err := tx.GetContext(ctx, &version, "SELECT VERSION()")
			assert.Equal(t, nil, err)

			return nil
		})
	})
	assert.Equal(t, nil, err)
	assert.NotEqual(t, "", version)
}

func TestProvider_Transact__Rollback_On_Error(t *testing.T) {
	tc := integration.NewTestCase()
	tc.Truncate("company")

	p := NewProvider(tc.DB)
	repo := NewTarget()

	err := p.Transact(newContext(), func(ctx context.Context) error {
		_, err := repo.InsertCompany(ctx, model.Company{Name: "company 01"})
		assert.Equal(t, nil, err)
		return errors.New("some error")
	})
	assert.Equal(t, errors.New("some error"), err)

	company, err := repo.GetCompany(p.Readonly(newContext()), 1)
	assert.Equal(t, nil, err)
	assert.Equal(t, false, company.Valid)
}

func TestProvider_Transact__Nested_Error_Rollback_Outer(t *testing.T) {
	tc := integration.NewTestCase()
	tc.Truncate("company")

	p := NewProvider(tc.DB)
	repo := NewTarget()

	err := p.Transact(newContext(), func(ctx context.Context) error {
		_, err := repo.InsertCompany(ctx, model.Company{Name: "company 01"})
		assert.Equal(t, nil, err)

		return p.Transact(ctx, func(ctx context.Context) error {
			company, err := repo.GetCompany(ctx, 1)
			assert.Equal(t, nil, err)
			assert.Equal(t, true, company.Valid)

			return errors.New("nested error")
		})
	})
	assert.Equal(t, errors.New("nested error"), err)

	var count int
	err = tc.DB.Get(&count, "SELECT COUNT(*) FROM company")
	assert.Equal(t, nil, err)
	assert.Equal(t, 0, count)
}
