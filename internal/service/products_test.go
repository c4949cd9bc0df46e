package service

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"

	"demo/ecommerce/internal/model"
	"demo/ecommerce/internal/store/storemock"
)

func TestProductService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := storemock.NewMockRepository(ctrl)
	svc := NewProductService(mockRepo)

	mockRepo.EXPECT().SaveProduct(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, p model.Product) (model.Product, error) {
			return p, nil
		})

	got, err := svc.Create(context.Background(), "Laptop", "High-performance laptop", 120000)
	require.NoError(t, err)
	require.Equal(t, "Laptop", got.Name)
	require.Equal(t, int64(120000), got.PriceCents)
	require.NotEmpty(t, got.ID)
}

func TestProductService_GetByID_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := storemock.NewMockRepository(ctrl)
	svc := NewProductService(mockRepo)

	mockRepo.EXPECT().FindProduct(gomock.Any(), "nope").Return(model.Product{}, false, nil)

	_, err := svc.GetByID(context.Background(), "nope")
	var nf *model.NotFoundError
	require.ErrorAs(t, err, &nf)
	require.Equal(t, model.KindProduct, nf.Kind)
	require.Equal(t, "nope", nf.ID)
}

func TestProductService_ListAll(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := storemock.NewMockRepository(ctrl)
	svc := NewProductService(mockRepo)

	products := []model.Product{{ID: "p1", Name: "Mouse", PriceCents: 5000}}
	mockRepo.EXPECT().ListProducts(gomock.Any()).Return(products, nil)

	got, err := svc.ListAll(context.Background())
	require.NoError(t, err)
	require.Equal(t, products, got)
}
