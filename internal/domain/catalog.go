package domain

// ClothingItem is a catalog default. Studios override price and active state per sub-service.
type ClothingItem struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	Category      string  `json:"category"`
	StandardPrice float64 `json:"standardPrice"`
	ExpressPrice  float64 `json:"expressPrice"`
	Active        bool    `json:"active"`
}

type ItemOverride struct {
	Active        *bool    `json:"active,omitempty"`
	StandardPrice *float64 `json:"standardPrice,omitempty"`
	ExpressPrice  *float64 `json:"expressPrice,omitempty"`
}

type SubService struct {
	ID                   string                  `json:"id"`
	Name                 string                  `json:"name"`
	Active               bool                    `json:"active"`
	PricePerUnitStandard float64                 `json:"pricePerUnitStandard"`
	PricePerUnitExpress  float64                 `json:"pricePerUnitExpress"`
	PricePerItemStandard float64                 `json:"pricePerItemStandard"`
	PricePerItemExpress  float64                 `json:"pricePerItemExpress"`
	Items                map[string]ItemOverride `json:"items,omitempty"`
}

type Service struct {
	ID          string       `json:"id"`
	Name        string       `json:"name"`
	Active      bool         `json:"active"`
	SubServices []SubService `json:"subServices"`
}

// StudioCatalog is the service menu of one studio, keyed by the studio's numeric id.
type StudioCatalog struct {
	StudioID int64     `json:"studioId"`
	Services []Service `json:"services"`
}

func (c StudioCatalog) EntityID() int64 { return c.StudioID }

// EffectiveItem is a clothing item with studio overrides applied.
type EffectiveItem struct {
	ClothingItem
	Overridden bool `json:"overridden"`
}

// Resolve applies the sub-service override for item, falling back to catalog defaults.
func (s SubService) Resolve(item ClothingItem) EffectiveItem {
	out := EffectiveItem{ClothingItem: item}
	o, ok := s.Items[item.ID]
	if !ok {
		return out
	}
	if o.Active != nil {
		out.Active = *o.Active
		out.Overridden = true
	}
	if o.StandardPrice != nil {
		out.StandardPrice = *o.StandardPrice
		out.Overridden = true
	}
	if o.ExpressPrice != nil {
		out.ExpressPrice = *o.ExpressPrice
		out.Overridden = true
	}
	return out
}

func (c StudioCatalog) ActiveServices() int {
	n := 0
	for _, s := range c.Services {
		if s.Active {
			n++
		}
	}
	return n
}
