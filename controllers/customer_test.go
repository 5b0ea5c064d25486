package controllers_test

import (
	"net/http"
	"testing"

	"movesched-backend/config"
	"movesched-backend/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateCustomer(t *testing.T) {
	r, token := setupAPI(t)

	w := doRequest(t, r, http.MethodPost, "/api/customers", token, map[string]interface{}{
		"name":    "John Smith",
		"phone":   "555-0101",
		"email":   "john.smith@email.com",
		"address": "123 Main St",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	body := decodeBody(t, w)
	assert.Equal(t, "John Smith", body["name"])
	assert.Equal(t, "555-0101", body["phone"])
	assert.NotEmpty(t, body["id"])

	var count int64
	require.NoError(t, config.DB.Model(&models.Customer{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestCreateCustomerMissingPhone(t *testing.T) {
	r, token := setupAPI(t)

	w := doRequest(t, r, http.MethodPost, "/api/customers", token, map[string]interface{}{
		"name": "John Smith",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateCustomerDuplicatePhone(t *testing.T) {
	r, token := setupAPI(t)
	createCustomer(t, "John Smith", "555-0101")

	w := doRequest(t, r, http.MethodPost, "/api/customers", token, map[string]interface{}{
		"name":  "Jane Doe",
		"phone": "555-0101",
	})
	assert.Equal(t, http.StatusConflict, w.Code)

	var count int64
	require.NoError(t, config.DB.Model(&models.Customer{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestGetCustomerNotFound(t *testing.T) {
	r, token := setupAPI(t)

	w := doRequest(t, r, http.MethodGet, "/api/customers/"+uuid.NewString(), token, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestUpdateCustomerPartial(t *testing.T) {
	r, token := setupAPI(t)
	customer := createCustomer(t, "John Smith", "555-0101")

	w := doRequest(t, r, http.MethodPut, "/api/customers/"+customer.ID.String(), token, map[string]interface{}{
		"address": "999 New Address Rd",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var updated models.Customer
	require.NoError(t, config.DB.First(&updated, "id = ?", customer.ID).Error)
	assert.Equal(t, "999 New Address Rd", updated.Address)
	assert.Equal(t, "John Smith", updated.Name)
	assert.Equal(t, "555-0101", updated.Phone)
}

func TestDeleteCustomer(t *testing.T) {
	r, token := setupAPI(t)
	customer := createCustomer(t, "John Smith", "555-0101")

	w := doRequest(t, r, http.MethodDelete, "/api/customers/"+customer.ID.String(), token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = doRequest(t, r, http.MethodGet, "/api/customers/"+customer.ID.String(), token, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCustomersRequireAuth(t *testing.T) {
	r, _ := setupAPI(t)

	w := doRequest(t, r, http.MethodGet, "/api/customers", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
