package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"
)

// BalanceMap is a signed running balance per currency. Parties and cash
// registers each carry one; the map is stored as a JSON text column.
type BalanceMap map[Currency]decimal.Decimal

// ZeroBalances returns a map with an explicit zero entry for every supported
// currency, matching the seed shape of the balances columns.
func ZeroBalances() BalanceMap {
	b := make(BalanceMap, len(AllCurrencies))
	for _, c := range AllCurrencies {
		b[c] = decimal.Zero
	}
	return b
}

func (b BalanceMap) Get(c Currency) decimal.Decimal {
	if v, ok := b[c]; ok {
		return v
	}
	return decimal.Zero
}

func (b BalanceMap) Add(c Currency, amount decimal.Decimal) {
	b[c] = b.Get(c).Add(amount)
}

func (b BalanceMap) Sub(c Currency, amount decimal.Decimal) {
	b[c] = b.Get(c).Sub(amount)
}

// Normalized returns a copy with every supported currency present. Missing
// entries read as zero; unknown keys are dropped.
func (b BalanceMap) Normalized() BalanceMap {
	out := ZeroBalances()
	for c, v := range b {
		if c.Valid() {
			out[c] = v
		}
	}
	return out
}

func (b BalanceMap) Value() (driver.Value, error) {
	if b == nil {
		b = ZeroBalances()
	}
	data, err := json.Marshal(b)
	if err != nil {
		return nil, err
	}
	return string(data), nil
}

func (b *BalanceMap) Scan(value interface{}) error {
	var raw []byte
	switch v := value.(type) {
	case nil:
		*b = ZeroBalances()
		return nil
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return fmt.Errorf("cannot scan %T into BalanceMap", value)
	}
	var m map[Currency]decimal.Decimal
	if err := json.Unmarshal(raw, &m); err != nil {
		return err
	}
	*b = BalanceMap(m).Normalized()
	return nil
}

func (BalanceMap) GormDataType() string {
	return "text"
}
