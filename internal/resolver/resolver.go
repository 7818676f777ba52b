package resolver

import (
	"context"
	"io"
	api_types "pmsdesk/api-types"
	"pmsdesk/internal/category"
	"pmsdesk/internal/service"

	"github.com/sirupsen/logrus"
)

type UploadedFile struct {
	Name   string
	Reader io.Reader
}

type Resolver interface {
	// ingestion endpoints
	Upload(ctx context.Context, c category.Category, req api_types.UploadRequest, file UploadedFile) (*api_types.UploadResponse, error)
	Sync(ctx context.Context, c category.Category, req api_types.SyncRequest) (*api_types.SyncResponse, error)
	SyncHistory(ctx context.Context, c category.Category, req api_types.SyncHistoryRequest) (*api_types.SyncHistoryResponse, error)
	DeleteRecords(ctx context.Context, c category.Category, req api_types.DeleteRecordsRequest) (*api_types.DeleteRecordsResponse, error)

	// performance endpoints
	Twrr(ctx context.Context, req api_types.TwrrRequest) (*api_types.TwrrResponse, error)
	TwrrUpload(ctx context.Context, req api_types.TwrrUploadRequest, transactions, aum UploadedFile) (*api_types.TwrrResponse, error)
}

type resolverHandler struct {
	IngestionService service.IngestionService
	SyncService      service.SyncService
	HistoryService   service.HistoryService
	Logger           logrus.FieldLogger
}

func NewResolver(
	ingestionService service.IngestionService,
	syncService service.SyncService,
	historyService service.HistoryService,
	logger logrus.FieldLogger,
) Resolver {
	return resolverHandler{
		IngestionService: ingestionService,
		SyncService:      syncService,
		HistoryService:   historyService,
		Logger:           logger,
	}
}
