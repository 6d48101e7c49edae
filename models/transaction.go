package models

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// FlexibleString accepts a JSON string or number and keeps the raw text.
// Payment callers send amounts and scores in both forms.
type FlexibleString string

func (fs *FlexibleString) UnmarshalJSON(data []byte) error {
	var s string
	var i int64
	var f float64

	if err := json.Unmarshal(data, &s); err == nil {
		*fs = FlexibleString(s)
		return nil
	}

	if err := json.Unmarshal(data, &i); err == nil {
		*fs = FlexibleString(fmt.Sprintf("%d", i))
		return nil
	}

	if err := json.Unmarshal(data, &f); err == nil {
		*fs = FlexibleString(strconv.FormatFloat(f, 'f', -1, 64))
		return nil
	}

	return fmt.Errorf("unable to parse %s as FlexibleString", string(data))
}

func (fs FlexibleString) ToFloat64() (float64, error) {
	return strconv.ParseFloat(string(fs), 64)
}

func (fs FlexibleString) ToDecimal() (decimal.Decimal, error) {
	return decimal.NewFromString(string(fs))
}

// Transaction is the append-only payment log. Rows are never updated or
// deleted. Hash is the externally supplied payment hash; uniqueness is
// assumed, not enforced.
type Transaction struct {
	gorm.Model

	WalletID string          `gorm:"index;size:64" json:"walletid"`
	Hash     string          `gorm:"size:128" json:"hash"`
	Paid     decimal.Decimal `gorm:"type:decimal(30,8)" json:"paid"`
	TrxType  string          `gorm:"size:32;index" json:"trx_type"`
	Note     string          `gorm:"size:255" json:"note"`
	RefID    string          `gorm:"size:64;index" json:"ref_id"`
	Payload  datatypes.JSON  `json:"payload,omitempty"`
}
