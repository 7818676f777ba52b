package types

type ErrorResponse struct {
	Error       string   `json:"error"`
	ColumnNames []string `json:"columnNames,omitempty"`
}

// UploadRequest is bound from the multipart form. The file itself is read
// separately.
type UploadRequest struct {
	Qcode     string `form:"qcode" binding:"required,qcode"`
	Date      string `form:"date"`
	StartDate string `form:"startDate"`
	EndDate   string `form:"endDate"`
}

type FailedRow struct {
	RowIndex int               `json:"rowIndex"`
	Error    string            `json:"error"`
	Row      map[string]string `json:"row"`
}

type UploadResponse struct {
	Message      string      `json:"message"`
	Table        string      `json:"table"`
	TotalRows    int         `json:"totalRows"`
	InsertedRows int         `json:"insertedRows"`
	SkippedRows  int         `json:"skippedRows"`
	DeletedRows  int64       `json:"deletedRows"`
	FailedCount  int         `json:"failedCount"`
	FailedRows   []FailedRow `json:"failedRows,omitempty"`
	FirstError   *string     `json:"firstError,omitempty"`
	ColumnNames  []string    `json:"columnNames"`
}

type SyncRequest struct {
	Qcodes []string `json:"qcodes"`
}

type SyncResult struct {
	Qcode            string `json:"qcode"`
	Status           string `json:"status"`
	Message          string `json:"message"`
	RecordsDeleted   *int64 `json:"recordsDeleted,omitempty"`
	RecordsInserted  *int64 `json:"recordsInserted,omitempty"`
	RecordsProcessed int64  `json:"recordsProcessed"`
}

type SyncSummary struct {
	Total      int `json:"total"`
	Successful int `json:"successful"`
	Failed     int `json:"failed"`
	Skipped    int `json:"skipped"`
}

type SyncResponse struct {
	Success       bool         `json:"success"`
	SyncTimestamp string       `json:"syncTimestamp"`
	Results       []SyncResult `json:"results"`
	Summary       SyncSummary  `json:"summary"`
}

type SyncHistoryRequest struct {
	Qcode string `form:"qcode" binding:"omitempty,qcode"`
	Limit int    `form:"limit" binding:"omitempty,min=1"`
}

type SyncLog struct {
	Qcode            string  `json:"qcode"`
	ClientName       string  `json:"clientName"`
	SyncType         *string `json:"syncType,omitempty"`
	Status           string  `json:"status"`
	RecordsDeleted   int64   `json:"recordsDeleted"`
	RecordsInserted  int64   `json:"recordsInserted"`
	RecordsProcessed int64   `json:"recordsProcessed"`
	ErrorMessage     *string `json:"errorMessage"`
	SyncTimestamp    string  `json:"syncTimestamp"`
	CreatedAt        string  `json:"createdAt"`
}

type SyncHistoryResponse struct {
	Logs          []SyncLog      `json:"logs"`
	LatestByQcode []SyncLog      `json:"latestByQcode"`
	StatusCounts  map[string]int `json:"statusCounts"`
}

type DeleteRecordsRequest struct {
	Qcode     string `json:"qcode" binding:"required,qcode"`
	StartDate string `json:"startDate" binding:"required"`
	EndDate   string `json:"endDate" binding:"required"`
	// staging (default) or production
	Stage string `json:"stage" binding:"omitempty,oneof=staging production"`
}

type DeleteRecordsResponse struct {
	Message      string `json:"message"`
	DeletedCount int64  `json:"deletedCount"`
}

type TwrrRequest struct {
	TransactionData []map[string]any `json:"transactionData" binding:"required"`
	AumData         []map[string]any `json:"aumData" binding:"required"`
	AccountCode     string           `json:"accountCode" binding:"required"`
}

type TwrrUploadRequest struct {
	AccountCode string `form:"accountCode" binding:"required"`
}

type TwrrPeriod struct {
	ClientName         string  `json:"clientName"`
	AccountCode        string  `json:"accountCode"`
	Date               string  `json:"date"`
	PortfolioValue     float64 `json:"portfolioValue"`
	CashInOut          float64 `json:"cashInOut"`
	Nav                float64 `json:"nav"`
	PrevNav            float64 `json:"prevNav"`
	Pnl                float64 `json:"pnl"`
	PnlPercent         float64 `json:"pnlPercent"`
	ExposureValue      float64 `json:"exposureValue"`
	PrevPortfolioValue float64 `json:"prevPortfolioValue"`
	PrevExposureValue  float64 `json:"prevExposureValue"`
	PrevPnl            float64 `json:"prevPnl"`
	DrawdownPercent    float64 `json:"drawdownPercent"`
	SystemTag          string  `json:"systemTag"`
	PeriodReturn       float64 `json:"periodReturn"`
	CumulativeReturn   float64 `json:"cumulativeReturn"`
}

type TwrrData struct {
	Nav              float64      `json:"nav"`
	TotalPnl         float64      `json:"totalPnl"`
	RealizedPnl      float64      `json:"realizedPnl"`
	UnrealizedPnl    float64      `json:"unrealizedPnl"`
	Consolidated     []TwrrPeriod `json:"consolidated"`
	CumulativeReturn float64      `json:"cumulativeReturn"`
	AnnualizedReturn float64      `json:"annualizedReturn"`
}

type RecordsProcessed struct {
	Transactions int `json:"transactions"`
	Aum          int `json:"aum"`
}

type TwrrResponse struct {
	Success          bool             `json:"success"`
	Data             TwrrData         `json:"data"`
	ClientName       string           `json:"clientName"`
	AccountCode      string           `json:"accountCode"`
	RecordsProcessed RecordsProcessed `json:"recordsProcessed"`
}
