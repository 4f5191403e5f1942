package customer

import "encoding/json"

type addressJSON struct {
	Street string `json:"street"`
	Number int    `json:"number"`
	Zip    string `json:"zip"`
	City   string `json:"city"`
}

type customerJSON struct {
	ID           string       `json:"id"`
	Name         string       `json:"name"`
	Address      *addressJSON `json:"address,omitempty"`
	Active       bool         `json:"active"`
	RewardPoints float64      `json:"reward_points"`
}

func (a Address) MarshalJSON() ([]byte, error) {
	return json.Marshal(addressJSON{
		Street: a.street,
		Number: a.number,
		Zip:    a.zip,
		City:   a.city,
	})
}

func (c Customer) MarshalJSON() ([]byte, error) {
	out := customerJSON{
		ID:           c.id,
		Name:         c.name,
		Active:       c.active,
		RewardPoints: c.rewardPoints,
	}

	if !c.address.IsZero() {
		out.Address = &addressJSON{
			Street: c.address.street,
			Number: c.address.number,
			Zip:    c.address.zip,
			City:   c.address.city,
		}
	}

	return json.Marshal(out)
}
