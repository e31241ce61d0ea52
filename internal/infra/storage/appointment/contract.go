package appointment

import (
	"github.com/shampooches/GroomingBookingService/pkg/dbmetrics"
)

// Reuse the dbmetrics interfaces so repositories accept *sql.DB,
// *dbmetrics.DB or an open transaction.
type DBExecutor = dbmetrics.DBExecutor
type TxExecutor = dbmetrics.TxExecutor
