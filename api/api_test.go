package api

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	api_types "pmsdesk/api-types"
	desk_errors "pmsdesk/internal"
	"pmsdesk/internal/category"
	"pmsdesk/internal/resolver"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
)

func newTestRouter(t *testing.T) (*gin.Engine, *resolver.MockResolver) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	r := resolver.NewMockResolver(ctrl)

	logger := logrus.New()
	logger.SetOutput(io.Discard)

	router, err := NewRouter(r, logger)
	require.NoError(t, err)
	return router, r
}

func multipartBody(t *testing.T, fields map[string]string, files map[string]string) (*bytes.Buffer, string) {
	body := &bytes.Buffer{}
	w := multipart.NewWriter(body)
	for k, v := range fields {
		require.NoError(t, w.WriteField(k, v))
	}
	for field, name := range files {
		part, err := w.CreateFormFile(field, name)
		require.NoError(t, err)
		_, err = part.Write([]byte("Date,System Tag\n2024-03-01,SYS\n"))
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())
	return body, w.FormDataContentType()
}

func do(router *gin.Engine, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) api_types.ErrorResponse {
	out := api_types.ErrorResponse{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return out
}

func TestUpload(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		router, r := newTestRouter(t)
		r.EXPECT().
			Upload(gomock.Any(), category.MasterSheet, api_types.UploadRequest{Qcode: "QAC00001"}, gomock.Any()).
			DoAndReturn(func(_ any, _ category.Category, _ api_types.UploadRequest, file resolver.UploadedFile) (*api_types.UploadResponse, error) {
				require.Equal(t, "nav.csv", file.Name)
				data, err := io.ReadAll(file.Reader)
				require.NoError(t, err)
				require.Contains(t, string(data), "System Tag")
				return &api_types.UploadResponse{Message: "Successfully uploaded 1 rows to master_sheet_test", InsertedRows: 1}, nil
			})

		body, contentType := multipartBody(t, map[string]string{"qcode": "QAC00001"}, map[string]string{"file": "nav.csv"})
		req := httptest.NewRequest(http.MethodPost, "/api/upload/master-sheet", body)
		req.Header.Set("Content-Type", contentType)

		rec := do(router, req)
		require.Equal(t, http.StatusOK, rec.Code)

		resp := api_types.UploadResponse{}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		require.Equal(t, 1, resp.InsertedRows)
	})

	t.Run("unknown category", func(t *testing.T) {
		router, _ := newTestRouter(t)
		body, contentType := multipartBody(t, map[string]string{"qcode": "QAC00001"}, map[string]string{"file": "nav.csv"})
		req := httptest.NewRequest(http.MethodPost, "/api/upload/trades", body)
		req.Header.Set("Content-Type", contentType)

		rec := do(router, req)
		require.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("missing qcode", func(t *testing.T) {
		router, _ := newTestRouter(t)
		body, contentType := multipartBody(t, nil, map[string]string{"file": "nav.csv"})
		req := httptest.NewRequest(http.MethodPost, "/api/upload/master-sheet", body)
		req.Header.Set("Content-Type", contentType)

		rec := do(router, req)
		require.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("malformed qcode", func(t *testing.T) {
		router, _ := newTestRouter(t)
		body, contentType := multipartBody(t, map[string]string{"qcode": "QAC-1; drop"}, map[string]string{"file": "nav.csv"})
		req := httptest.NewRequest(http.MethodPost, "/api/upload/master-sheet", body)
		req.Header.Set("Content-Type", contentType)

		rec := do(router, req)
		require.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("missing file", func(t *testing.T) {
		router, _ := newTestRouter(t)
		body, contentType := multipartBody(t, map[string]string{"qcode": "QAC00001"}, nil)
		req := httptest.NewRequest(http.MethodPost, "/api/upload/equity-holding", body)
		req.Header.Set("Content-Type", contentType)

		rec := do(router, req)
		require.Equal(t, http.StatusBadRequest, rec.Code)
		require.Equal(t, "file is required", decodeError(t, rec).Error)
	})

	t.Run("missing columns", func(t *testing.T) {
		router, r := newTestRouter(t)
		r.EXPECT().
			Upload(gomock.Any(), category.EquityHolding, gomock.Any(), gomock.Any()).
			Return(nil, desk_errors.ErrMissingColumns{Missing: []string{"Quantity"}, ColumnNames: []string{"Symbol"}})

		body, contentType := multipartBody(t, map[string]string{"qcode": "QAC00001", "date": "2024-03-31"}, map[string]string{"file": "h.csv"})
		req := httptest.NewRequest(http.MethodPost, "/api/upload/equity-holding", body)
		req.Header.Set("Content-Type", contentType)

		rec := do(router, req)
		require.Equal(t, http.StatusBadRequest, rec.Code)
		out := decodeError(t, rec)
		require.Equal(t, "Missing required columns: Quantity", out.Error)
		require.Equal(t, []string{"Symbol"}, out.ColumnNames)
	})

	t.Run("unexpected failure", func(t *testing.T) {
		router, r := newTestRouter(t)
		r.EXPECT().
			Upload(gomock.Any(), category.MasterSheet, gomock.Any(), gomock.Any()).
			Return(nil, errors.New("connection refused"))

		body, contentType := multipartBody(t, map[string]string{"qcode": "QAC00001"}, map[string]string{"file": "nav.csv"})
		req := httptest.NewRequest(http.MethodPost, "/api/upload/master-sheet", body)
		req.Header.Set("Content-Type", contentType)

		rec := do(router, req)
		require.Equal(t, http.StatusInternalServerError, rec.Code)
		require.Equal(t, "connection refused", decodeError(t, rec).Error)
	})
}

func TestSync(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		router, r := newTestRouter(t)
		r.EXPECT().
			Sync(gomock.Any(), category.MutualFundHolding, api_types.SyncRequest{Qcodes: []string{"QAC00001", "QAC00002"}}).
			Return(&api_types.SyncResponse{
				Success: true,
				Summary: api_types.SyncSummary{Total: 2, Successful: 1, Failed: 1},
			}, nil)

		req := httptest.NewRequest(http.MethodPost, "/api/sync/mutual-fund-holding", strings.NewReader(`{"qcodes":["QAC00001","QAC00002"]}`))
		req.Header.Set("Content-Type", "application/json")

		rec := do(router, req)
		require.Equal(t, http.StatusOK, rec.Code)
		resp := api_types.SyncResponse{}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		require.Equal(t, 1, resp.Summary.Failed)
	})

	t.Run("empty qcodes", func(t *testing.T) {
		router, r := newTestRouter(t)
		r.EXPECT().
			Sync(gomock.Any(), category.MasterSheet, gomock.Any()).
			Return(nil, desk_errors.ErrInvalidInput{Message: "qcodes must be a non-empty array"})

		req := httptest.NewRequest(http.MethodPost, "/api/sync/master-sheet", strings.NewReader(`{"qcodes":[]}`))
		req.Header.Set("Content-Type", "application/json")

		rec := do(router, req)
		require.Equal(t, http.StatusBadRequest, rec.Code)
		require.Equal(t, "qcodes must be a non-empty array", decodeError(t, rec).Error)
	})

	t.Run("malformed body", func(t *testing.T) {
		router, _ := newTestRouter(t)
		req := httptest.NewRequest(http.MethodPost, "/api/sync/master-sheet", strings.NewReader(`{"qcodes":`))
		req.Header.Set("Content-Type", "application/json")

		rec := do(router, req)
		require.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestSyncHistory(t *testing.T) {
	router, r := newTestRouter(t)
	r.EXPECT().
		SyncHistory(gomock.Any(), category.EquityHolding, api_types.SyncHistoryRequest{Qcode: "QAC00001", Limit: 5}).
		Return(&api_types.SyncHistoryResponse{StatusCounts: map[string]int{"success": 3}}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/sync-history/equity-holding?qcode=QAC00001&limit=5", nil)
	rec := do(router, req)
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestDeleteRecords(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		router, r := newTestRouter(t)
		r.EXPECT().
			DeleteRecords(gomock.Any(), category.MasterSheet, api_types.DeleteRecordsRequest{
				Qcode:     "QAC00001",
				StartDate: "2024-01-01",
				EndDate:   "2024-01-31",
				Stage:     "production",
			}).
			Return(&api_types.DeleteRecordsResponse{DeletedCount: 21}, nil)

		req := httptest.NewRequest(http.MethodPost, "/api/delete-records/master-sheet", strings.NewReader(
			`{"qcode":"QAC00001","startDate":"2024-01-01","endDate":"2024-01-31","stage":"production"}`,
		))
		req.Header.Set("Content-Type", "application/json")

		rec := do(router, req)
		require.Equal(t, http.StatusOK, rec.Code)
		resp := api_types.DeleteRecordsResponse{}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		require.Equal(t, int64(21), resp.DeletedCount)
	})

	t.Run("unknown stage", func(t *testing.T) {
		router, _ := newTestRouter(t)
		req := httptest.NewRequest(http.MethodPost, "/api/delete-records/master-sheet", strings.NewReader(
			`{"qcode":"QAC00001","startDate":"2024-01-01","endDate":"2024-01-31","stage":"archive"}`,
		))
		req.Header.Set("Content-Type", "application/json")

		rec := do(router, req)
		require.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestTwrr(t *testing.T) {
	t.Run("no data", func(t *testing.T) {
		router, r := newTestRouter(t)
		r.EXPECT().
			Twrr(gomock.Any(), gomock.Any()).
			Return(nil, desk_errors.ErrNoData{AccountCode: "ACC9"})

		req := httptest.NewRequest(http.MethodPost, "/api/twrr", strings.NewReader(
			`{"transactionData":[],"aumData":[{"ACCOUNTCODE":"ACC1","AUM":100}],"accountCode":"ACC9"}`,
		))
		req.Header.Set("Content-Type", "application/json")

		rec := do(router, req)
		require.Equal(t, http.StatusNotFound, rec.Code)
		require.Equal(t, "No data found for account code: ACC9", decodeError(t, rec).Error)
	})

	t.Run("missing fields", func(t *testing.T) {
		router, _ := newTestRouter(t)
		req := httptest.NewRequest(http.MethodPost, "/api/twrr", strings.NewReader(`{"aumData":[]}`))
		req.Header.Set("Content-Type", "application/json")

		rec := do(router, req)
		require.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("upload", func(t *testing.T) {
		router, r := newTestRouter(t)
		r.EXPECT().
			TwrrUpload(gomock.Any(), api_types.TwrrUploadRequest{AccountCode: "ACC1"}, gomock.Any(), gomock.Any()).
			Return(&api_types.TwrrResponse{Success: true, AccountCode: "ACC1"}, nil)

		body, contentType := multipartBody(
			t,
			map[string]string{"accountCode": "ACC1"},
			map[string]string{"transactionFile": "txns.csv", "aumFile": "aum.csv"},
		)
		req := httptest.NewRequest(http.MethodPost, "/api/twrr/upload", body)
		req.Header.Set("Content-Type", contentType)

		rec := do(router, req)
		require.Equal(t, http.StatusOK, rec.Code)
	})
}

func TestBlockedIPs(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	logger := logrus.New()
	logger.SetOutput(io.Discard)

	router, err := NewRouter(resolver.NewMockResolver(ctrl), logger, "192.0.2.1")
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	require.Equal(t, "192.0.2.1:1234", req.RemoteAddr)
	require.Equal(t, http.StatusForbidden, do(router, req).Code)

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "198.51.100.7:1234"
	require.Equal(t, http.StatusOK, do(router, req).Code)
}
