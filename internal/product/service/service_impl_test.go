package service

import (
	"context"
	"testing"

	"github.com/billfold/billfold/internal/product/domain"
	"github.com/billfold/billfold/pkg/kv"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func newTestService(t *testing.T) *Service {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	kvStore, err := kv.New(db)
	require.NoError(t, err)

	svc := New(ServiceParam{KV: kvStore, Log: zap.NewNop()}).(*Service)
	require.NoError(t, svc.Load(context.Background()))
	return svc
}

func TestService_CreateGeneratesIDWhenBlank(t *testing.T) {
	svc := newTestService(t)
	defer svc.Close()

	product, err := svc.Create(context.Background(), domain.CreateProductRequest{
		Name:   "Consulting hour",
		Amount: 120,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, product.ID)
	assert.Equal(t, "Consulting hour", product.Name)
	assert.Equal(t, 120.0, product.Amount)
}

func TestService_CreateKeepsCallerID(t *testing.T) {
	svc := newTestService(t)
	defer svc.Close()

	product, err := svc.Create(context.Background(), domain.CreateProductRequest{
		ID:     "sku-001",
		Name:   "Retainer",
		Amount: 900,
	})
	require.NoError(t, err)
	assert.Equal(t, "sku-001", product.ID)
}

func TestService_UpdatePatchesAmount(t *testing.T) {
	svc := newTestService(t)
	defer svc.Close()

	ctx := context.Background()
	created, err := svc.Create(ctx, domain.CreateProductRequest{Name: "Logo design", Amount: 450})
	require.NoError(t, err)

	amount := 500.0
	require.NoError(t, svc.Update(ctx, created.ID, domain.UpdateProductRequest{Amount: &amount}))

	products, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, "Logo design", products[0].Name)
	assert.Equal(t, 500.0, products[0].Amount)
}

func TestService_DeleteRemovesProduct(t *testing.T) {
	svc := newTestService(t)
	defer svc.Close()

	ctx := context.Background()
	created, err := svc.Create(ctx, domain.CreateProductRequest{Name: "Logo design", Amount: 450})
	require.NoError(t, err)
	kept, err := svc.Create(ctx, domain.CreateProductRequest{Name: "Hosting", Amount: 30})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, created.ID))

	products, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, kept.ID, products[0].ID)
}
