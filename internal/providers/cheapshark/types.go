package cheapshark

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// gameResponse is one element of the /games?title= array.
type gameResponse struct {
	GameID         string      `json:"gameID"`
	SteamAppID     *string     `json:"steamAppID"`
	Cheapest       *flexString `json:"cheapest"`
	CheapestDealID *string     `json:"cheapestDealID"`
	External       string      `json:"external"`
	InternalName   string      `json:"internalName"`
	Thumb          string      `json:"thumb"`
}

// flexString accepts a JSON string or number. CheapShark sends prices as strings,
// but a bare number carries the same information.
type flexString string

func (f *flexString) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return fmt.Errorf("cheapshark: empty value")
	}
	switch data[0] {
	case '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*f = flexString(s)
		return nil
	case 'n':
		return nil
	default:
		var n json.Number
		if err := json.Unmarshal(data, &n); err != nil {
			return fmt.Errorf("cheapshark: price is neither string nor number: %s", data)
		}
		*f = flexString(n.String())
		return nil
	}
}
