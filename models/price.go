package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"
)

// Price is an amount in a specific currency. Product price fields and invoice
// line prices are stored as JSON text columns; the struct only serializes at
// the storage boundary.
type Price struct {
	Amount   decimal.Decimal `json:"amount"`
	Currency Currency        `json:"currency"`
}

func (p Price) Value() (driver.Value, error) {
	b, err := json.Marshal(p)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func (p *Price) Scan(value interface{}) error {
	switch v := value.(type) {
	case nil:
		*p = Price{}
		return nil
	case []byte:
		return json.Unmarshal(v, p)
	case string:
		return json.Unmarshal([]byte(v), p)
	default:
		return fmt.Errorf("cannot scan %T into Price", value)
	}
}

func (Price) GormDataType() string {
	return "text"
}
