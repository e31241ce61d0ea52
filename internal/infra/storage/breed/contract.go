package breed

import (
	"github.com/shampooches/GroomingBookingService/pkg/dbmetrics"
)

type DBExecutor = dbmetrics.DBExecutor
type TxExecutor = dbmetrics.TxExecutor
