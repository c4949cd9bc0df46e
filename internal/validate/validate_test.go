// internal/validate/validate_test.go
package validate_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"demo/ecommerce/internal/model"
	"demo/ecommerce/internal/validate"
)

func TestCreateDetail_Valid(t *testing.T) {
	err := validate.CreateDetail(uuid.NewString(), uuid.NewString(), 1)
	require.NoError(t, err)
}

func TestCreateDetail_Invalid(t *testing.T) {
	err := validate.CreateDetail("not-a-uuid", uuid.NewString(), 0)
	require.Error(t, err)
	require.Contains(t, err.Error(), "order_id")
	require.Contains(t, err.Error(), "quantity")
}

func TestUpdateStatus_Valid(t *testing.T) {
	err := validate.UpdateStatus(uuid.NewString(), model.StatusShipped)
	require.NoError(t, err)
}

func TestUpdateStatus_UnknownStatus(t *testing.T) {
	err := validate.UpdateStatus(uuid.NewString(), model.OrderStatus("LOST"))
	require.Error(t, err)
	require.Contains(t, err.Error(), "status")
}

func TestCreateUser(t *testing.T) {
	require.NoError(t, validate.CreateUser("a@b.cl", "Admin123!"))
	require.Error(t, validate.CreateUser("not-an-email", "Admin123!"))
	require.Error(t, validate.CreateUser("a@b.cl", "short"))
}

func TestCreateProduct(t *testing.T) {
	require.NoError(t, validate.CreateProduct("Laptop", 120000))
	require.Error(t, validate.CreateProduct("", 120000))
	require.Error(t, validate.CreateProduct("Laptop", -1))
}

func TestID(t *testing.T) {
	require.NoError(t, validate.ID("order_id", uuid.NewString()))
	require.Error(t, validate.ID("order_id", ""))
}
