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

func TestCreateAppointmentEmbedsRelations(t *testing.T) {
	r, token := setupAPI(t)
	customer := createCustomer(t, "John Smith", "555-0101")
	crew := createCrew(t, "Alpha Team")

	w := doRequest(t, r, http.MethodPost, "/api/appointments", token, map[string]interface{}{
		"customer_id":         customer.ID.String(),
		"crew_id":             crew.ID.String(),
		"appointment_date":    "2026-09-15",
		"appointment_time":    "09:30",
		"origin_address":      "100 Source St",
		"destination_address": "200 Dest Ave",
		"estimated_duration":  120,
		"estimated_cost":      350.0,
	})
	require.Equal(t, http.StatusCreated, w.Code)

	body := decodeBody(t, w)
	assert.Equal(t, "scheduled", body["status"])
	assert.Equal(t, "2026-09-15", body["appointment_date"])
	assert.Equal(t, "09:30:00", body["appointment_time"])

	embedded, ok := body["customer"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, body["customer_id"], embedded["id"])
	assert.Equal(t, "John Smith", embedded["name"])

	embeddedCrew, ok := body["crew"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, crew.ID.String(), embeddedCrew["id"])
}

func TestCreateAppointmentMissingOrigin(t *testing.T) {
	r, token := setupAPI(t)
	customer := createCustomer(t, "John Smith", "555-0101")

	w := doRequest(t, r, http.MethodPost, "/api/appointments", token, map[string]interface{}{
		"customer_id":         customer.ID.String(),
		"appointment_date":    "2026-09-15",
		"appointment_time":    "09:30",
		"destination_address": "200 Dest Ave",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Nothing persisted
	var count int64
	require.NoError(t, config.DB.Model(&models.Appointment{}).Count(&count).Error)
	assert.EqualValues(t, 0, count)
}

func TestCreateAppointmentUnknownCustomer(t *testing.T) {
	r, token := setupAPI(t)

	w := doRequest(t, r, http.MethodPost, "/api/appointments", token, map[string]interface{}{
		"customer_id":         uuid.NewString(),
		"appointment_date":    "2026-09-15",
		"appointment_time":    "09:30",
		"origin_address":      "100 Source St",
		"destination_address": "200 Dest Ave",
	})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCreateAppointmentUnknownCrew(t *testing.T) {
	r, token := setupAPI(t)
	customer := createCustomer(t, "John Smith", "555-0101")

	w := doRequest(t, r, http.MethodPost, "/api/appointments", token, map[string]interface{}{
		"customer_id":         customer.ID.String(),
		"crew_id":             uuid.NewString(),
		"appointment_date":    "2026-09-15",
		"appointment_time":    "09:30",
		"origin_address":      "100 Source St",
		"destination_address": "200 Dest Ave",
	})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCreateAppointmentBadDateFormat(t *testing.T) {
	r, token := setupAPI(t)
	customer := createCustomer(t, "John Smith", "555-0101")

	w := doRequest(t, r, http.MethodPost, "/api/appointments", token, map[string]interface{}{
		"customer_id":         customer.ID.String(),
		"appointment_date":    "15/09/2026",
		"appointment_time":    "09:30",
		"origin_address":      "100 Source St",
		"destination_address": "200 Dest Ave",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid date or time format")
}

func newAppointment(t *testing.T, customerID uuid.UUID, date, timeOfDay, status string) models.Appointment {
	t.Helper()
	parsedDate, err := models.ParseDate(date)
	require.NoError(t, err)
	parsedTime, err := models.ParseTime(timeOfDay)
	require.NoError(t, err)
	appointment := models.Appointment{
		CustomerID:         customerID,
		AppointmentDate:    parsedDate,
		AppointmentTime:    parsedTime,
		OriginAddress:      "100 Source St",
		DestinationAddress: "200 Dest Ave",
		Status:             status,
	}
	require.NoError(t, config.DB.Create(&appointment).Error)
	return appointment
}

func TestUpdateAppointmentStatusOnly(t *testing.T) {
	r, token := setupAPI(t)
	customer := createCustomer(t, "John Smith", "555-0101")
	appointment := newAppointment(t, customer.ID, "2026-09-15", "09:30", "scheduled")

	w := doRequest(t, r, http.MethodPut, "/api/appointments/"+appointment.ID.String()+"/status", token,
		map[string]interface{}{"status": "in_progress"})
	require.Equal(t, http.StatusOK, w.Code)

	var updated models.Appointment
	require.NoError(t, config.DB.First(&updated, "id = ?", appointment.ID).Error)
	assert.Equal(t, "in_progress", updated.Status)
	// All other fields are untouched
	assert.Equal(t, appointment.AppointmentDate.String(), updated.AppointmentDate.String())
	assert.Equal(t, appointment.AppointmentTime.String(), updated.AppointmentTime.String())
	assert.Equal(t, appointment.OriginAddress, updated.OriginAddress)
	assert.Equal(t, appointment.DestinationAddress, updated.DestinationAddress)
	assert.Equal(t, appointment.CustomerID, updated.CustomerID)
}

func TestUpdateAppointmentStatusRejectsInvalid(t *testing.T) {
	r, token := setupAPI(t)
	customer := createCustomer(t, "John Smith", "555-0101")
	appointment := newAppointment(t, customer.ID, "2026-09-15", "09:30", "scheduled")

	for _, status := range []string{"confirmed", "done", ""} {
		w := doRequest(t, r, http.MethodPut, "/api/appointments/"+appointment.ID.String()+"/status", token,
			map[string]interface{}{"status": status})
		assert.Equal(t, http.StatusBadRequest, w.Code, "status %q should be rejected", status)
	}

	var updated models.Appointment
	require.NoError(t, config.DB.First(&updated, "id = ?", appointment.ID).Error)
	assert.Equal(t, "scheduled", updated.Status)
}

func TestUpdateAppointmentPartialMerge(t *testing.T) {
	r, token := setupAPI(t)
	customer := createCustomer(t, "John Smith", "555-0101")
	appointment := newAppointment(t, customer.ID, "2026-09-15", "09:30", "scheduled")

	w := doRequest(t, r, http.MethodPut, "/api/appointments/"+appointment.ID.String(), token,
		map[string]interface{}{"notes": "Piano on the third floor", "actual_cost": 420.0})
	require.Equal(t, http.StatusOK, w.Code)

	var updated models.Appointment
	require.NoError(t, config.DB.First(&updated, "id = ?", appointment.ID).Error)
	assert.Equal(t, "Piano on the third floor", updated.Notes)
	require.NotNil(t, updated.ActualCost)
	assert.Equal(t, 420.0, *updated.ActualCost)
	assert.Equal(t, "100 Source St", updated.OriginAddress)
}

func TestListAppointmentsFiltersAndOrder(t *testing.T) {
	r, token := setupAPI(t)
	customer := createCustomer(t, "John Smith", "555-0101")

	newAppointment(t, customer.ID, "2026-09-20", "14:00", "scheduled")
	newAppointment(t, customer.ID, "2026-09-18", "10:00", "completed")
	newAppointment(t, customer.ID, "2026-09-18", "08:00", "scheduled")
	newAppointment(t, customer.ID, "2026-10-01", "09:00", "scheduled")

	w := doRequest(t, r, http.MethodGet, "/api/appointments?start_date=2026-09-18&end_date=2026-09-30", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	list := decodeList(t, w)
	require.Len(t, list, 3)
	assert.Equal(t, "08:00:00", list[0]["appointment_time"])
	assert.Equal(t, "10:00:00", list[1]["appointment_time"])
	assert.Equal(t, "2026-09-20", list[2]["appointment_date"])

	w = doRequest(t, r, http.MethodGet, "/api/appointments?status=completed", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	list = decodeList(t, w)
	require.Len(t, list, 1)
	assert.Equal(t, "2026-09-18", list[0]["appointment_date"])
}

func TestListAppointmentsBadDateFilter(t *testing.T) {
	r, token := setupAPI(t)

	w := doRequest(t, r, http.MethodGet, "/api/appointments?start_date=not-a-date", token, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDeleteAppointment(t *testing.T) {
	r, token := setupAPI(t)
	customer := createCustomer(t, "John Smith", "555-0101")
	appointment := newAppointment(t, customer.ID, "2026-09-15", "09:30", "scheduled")

	w := doRequest(t, r, http.MethodDelete, "/api/appointments/"+appointment.ID.String(), token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = doRequest(t, r, http.MethodGet, "/api/appointments/"+appointment.ID.String(), token, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
