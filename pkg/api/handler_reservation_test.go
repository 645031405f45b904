package api

import (
	"context"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vendrahq/vendra/pkg/database"
	"github.com/vendrahq/vendra/pkg/models"
	"github.com/vendrahq/vendra/pkg/services"
)

type reservationJSON struct {
	ID              string `json:"id"`
	BusinessUserID  string `json:"business_user_id"`
	OwnerUserID     string `json:"owner_user_id"`
	ReservationDate string `json:"reservation_date"`
	ReservationTime string `json:"reservation_time"`
	Status          string `json:"status"`
	TableID         *string `json:"table_id,omitempty"`
}

func seedAPITable(t *testing.T, client *database.Client, businessID string, number, maxSeats int) {
	t.Helper()
	_, err := services.NewCatalogService(client.Client).CreateTable(context.Background(), models.CreateTableRequest{
		BusinessID:  businessID,
		OwnerUserID: businessID,
		TableNumber: number,
		MaxSeats:    maxSeats,
	})
	require.NoError(t, err)
}

func TestReservationBooking(t *testing.T) {
	env := newTestEnv(t)
	biz := seedAPIBusiness(t, env.client, "Osteria Pia")
	seedAPITable(t, env.client, biz.ID, 1, 2)
	seedAPITable(t, env.client, biz.ID, 2, 4)
	token := mintToken(t, biz.ID, roleBusiness)

	body := gin.H{
		"customer_phone":   "+4915700009001",
		"customer_name":    "Jonas",
		"reservation_date": "2026-10-02",
		"reservation_time": "19:00",
		"number_of_guests": 2,
	}

	var first reservationJSON
	t.Run("create picks a table", func(t *testing.T) {
		rec := env.do(t, http.MethodPost, "/api/v1/reservations", token, body)
		require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
		decodeData(t, rec, &first)
		assert.Equal(t, biz.ID, first.BusinessUserID)
		assert.Equal(t, biz.ID, first.OwnerUserID)
		assert.Equal(t, "confirmed", first.Status)
		require.NotNil(t, first.TableID)
	})

	t.Run("availability shrinks", func(t *testing.T) {
		rec := env.do(t, http.MethodGet,
			"/api/v1/reservations/availability?date=2026-10-02&time=19:00&guests=2", token, nil)
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		var got struct {
			Tables []struct {
				ID string `json:"id"`
			} `json:"tables"`
		}
		decodeData(t, rec, &got)
		require.Len(t, got.Tables, 1)
		assert.NotEqual(t, *first.TableID, got.Tables[0].ID)
	})

	t.Run("full slot conflicts", func(t *testing.T) {
		second := gin.H{
			"customer_phone":   "+4915700009002",
			"customer_name":    "Leyla",
			"reservation_date": "2026-10-02",
			"reservation_time": "19:00",
			"number_of_guests": 2,
		}
		rec := env.do(t, http.MethodPost, "/api/v1/reservations", token, second)
		require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

		third := gin.H{
			"customer_phone":   "+4915700009003",
			"customer_name":    "Omar",
			"reservation_date": "2026-10-02",
			"reservation_time": "19:00",
			"number_of_guests": 2,
		}
		rec = env.do(t, http.MethodPost, "/api/v1/reservations", token, third)
		require.Equal(t, http.StatusConflict, rec.Code, rec.Body.String())
		assert.Equal(t, codeSlotTaken, errorCode(t, rec))
	})

	t.Run("oversized party has no table", func(t *testing.T) {
		rec := env.do(t, http.MethodPost, "/api/v1/reservations", token, gin.H{
			"customer_phone":   "+4915700009004",
			"customer_name":    "Greta",
			"reservation_date": "2026-10-02",
			"reservation_time": "21:00",
			"number_of_guests": 9,
		})
		require.Equal(t, http.StatusConflict, rec.Code, rec.Body.String())
		assert.Equal(t, codeNoTablesAvailable, errorCode(t, rec))
	})

	t.Run("bad date format", func(t *testing.T) {
		rec := env.do(t, http.MethodPost, "/api/v1/reservations", token, gin.H{
			"customer_phone":   "+4915700009005",
			"customer_name":    "Ib",
			"reservation_date": "02.10.2026",
			"reservation_time": "19:00",
		})
		require.Equal(t, http.StatusBadRequest, rec.Code, rec.Body.String())
		assert.Equal(t, codeInvalidRequest, errorCode(t, rec))
	})
}

func TestReservationStatusAndItems(t *testing.T) {
	env := newTestEnv(t)
	biz := seedAPIBusiness(t, env.client, "Hanok Grill")
	other := seedAPIBusiness(t, env.client, "Seoul Street")
	seedAPITable(t, env.client, biz.ID, 1, 4)
	item := seedAPIItem(t, env.client, biz.ID, "Bulgogi Set", "24.00")
	token := mintToken(t, biz.ID, roleBusiness)

	guests := 3
	res, err := services.NewReservationService(env.client.Client).Create(context.Background(), models.CreateReservationRequest{
		BusinessID:      biz.ID,
		OwnerUserID:     biz.ID,
		CustomerPhone:   "+4915700010001",
		CustomerName:    "Hana",
		ReservationDate: "2026-10-05",
		ReservationTime: "18:00",
		NumberOfGuests:  &guests,
	})
	require.NoError(t, err)

	var lineID string
	t.Run("pre-order an item", func(t *testing.T) {
		rec := env.do(t, http.MethodPost, "/api/v1/reservations/"+res.ID+"/items", token,
			gin.H{"item_id": item.ID, "quantity": 2})
		require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
		var line struct {
			ID       string `json:"id"`
			Quantity int    `json:"quantity"`
		}
		decodeData(t, rec, &line)
		assert.Equal(t, 2, line.Quantity)
		lineID = line.ID
	})

	t.Run("list and remove the line", func(t *testing.T) {
		rec := env.do(t, http.MethodGet, "/api/v1/reservations/"+res.ID+"/items", token, nil)
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		var lines []struct {
			ID string `json:"id"`
		}
		decodeData(t, rec, &lines)
		require.Len(t, lines, 1)

		rec = env.do(t, http.MethodDelete, "/api/v1/reservations/"+res.ID+"/items/"+lineID, token, nil)
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

		rec = env.do(t, http.MethodGet, "/api/v1/reservations/"+res.ID+"/items", token, nil)
		decodeData(t, rec, &lines)
		assert.Empty(t, lines)
	})

	t.Run("foreign tenant is walled off", func(t *testing.T) {
		otherToken := mintToken(t, other.ID, roleBusiness)
		rec := env.do(t, http.MethodGet, "/api/v1/reservations/"+res.ID, otherToken, nil)
		require.Equal(t, http.StatusNotFound, rec.Code, rec.Body.String())

		rec = env.do(t, http.MethodPatch, "/api/v1/reservations/"+res.ID+"/status", otherToken,
			gin.H{"status": "cancelled"})
		require.Equal(t, http.StatusNotFound, rec.Code, rec.Body.String())
	})

	t.Run("cancel then terminal", func(t *testing.T) {
		rec := env.do(t, http.MethodPatch, "/api/v1/reservations/"+res.ID+"/status", token,
			gin.H{"status": "cancelled"})
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		var got reservationJSON
		decodeData(t, rec, &got)
		assert.Equal(t, "cancelled", got.Status)

		rec = env.do(t, http.MethodPatch, "/api/v1/reservations/"+res.ID+"/status", token,
			gin.H{"status": "completed"})
		require.Equal(t, http.StatusConflict, rec.Code, rec.Body.String())
		assert.Equal(t, codeInvalidTransition, errorCode(t, rec))
	})
}
