package enum

import (
	"database/sql/driver"
	"encoding/json"
)

// EstablishmentType distinguishes restaurants from hotels for GST purposes
type EstablishmentType string

const (
	EstablishmentStandalone EstablishmentType = "standalone"
	EstablishmentHotel      EstablishmentType = "hotel"
)

func (t EstablishmentType) IsValid() bool {
	return t == EstablishmentStandalone || t == EstablishmentHotel
}

func (t EstablishmentType) MarshalJSON() ([]byte, error) {
	return json.Marshal(string(t))
}

func (t *EstablishmentType) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return err
	}
	*t = EstablishmentType(str)
	return nil
}

func (t EstablishmentType) Value() (driver.Value, error) {
	return string(t), nil
}

func (t *EstablishmentType) Scan(value interface{}) error {
	if value == nil {
		*t = EstablishmentStandalone
		return nil
	}
	switch v := value.(type) {
	case string:
		*t = EstablishmentType(v)
	case []byte:
		*t = EstablishmentType(string(v))
	}
	return nil
}

// TariffBracket is the room-rate threshold a hotel declares
type TariffBracket string

const (
	TariffBelow7500 TariffBracket = "below_7500"
	TariffAbove7500 TariffBracket = "above_7500"
)

func (b TariffBracket) IsValid() bool {
	return b == TariffBelow7500 || b == TariffAbove7500
}

func (b TariffBracket) MarshalJSON() ([]byte, error) {
	return json.Marshal(string(b))
}

func (b *TariffBracket) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return err
	}
	*b = TariffBracket(str)
	return nil
}

func (b TariffBracket) Value() (driver.Value, error) {
	return string(b), nil
}

func (b *TariffBracket) Scan(value interface{}) error {
	if value == nil {
		*b = TariffBelow7500
		return nil
	}
	switch v := value.(type) {
	case string:
		*b = TariffBracket(v)
	case []byte:
		*b = TariffBracket(string(v))
	}
	return nil
}
