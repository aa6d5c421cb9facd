package model

// Category classifies products. The slug ID is stable — products reference
// it via CatID.
type Category struct {
	ID     string
	Name   string
	Order  int
	Active bool
}

func (c Category) Doc() map[string]interface{} {
	return map[string]interface{}{
		"id":     c.ID,
		"name":   c.Name,
		"order":  c.Order,
		"active": c.Active,
	}
}
