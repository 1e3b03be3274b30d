package domain

import "encoding/json"

// Early deployments smuggled delivery details into the item list as a
// fake product line with category "meta". DecodeItems reads stored item
// JSON tolerantly: real lines are returned as items, a legacy meta line
// is lifted into a CustomerInfo and dropped from the list. New writes
// never produce meta lines.
func DecodeItems(data []byte) ([]CartItem, *CustomerInfo, error) {
	var raws []json.RawMessage
	if err := json.Unmarshal(data, &raws); err != nil {
		return nil, nil, err
	}

	items := []CartItem{}
	var customer *CustomerInfo
	for _, raw := range raws {
		var probe struct {
			Product struct {
				Category string `json:"category"`
			} `json:"product"`
			Customer *CustomerInfo `json:"customerInfo"`
		}
		if err := json.Unmarshal(raw, &probe); err == nil && probe.Product.Category == "meta" {
			if probe.Customer != nil {
				customer = probe.Customer
			}
			continue
		}

		var item CartItem
		if err := json.Unmarshal(raw, &item); err != nil {
			continue
		}
		items = append(items, item)
	}

	return items, customer, nil
}

// EncodeItems is the write-side counterpart of DecodeItems.
func EncodeItems(items []CartItem) ([]byte, error) {
	if items == nil {
		items = []CartItem{}
	}
	return json.Marshal(items)
}
