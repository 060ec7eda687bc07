package models

// All lists every table the engine reads or writes, in dependency order.
func All() []interface{} {
	return []interface{}{
		&User{},
		&Category{},
		&Product{},
		&HealthProfile{},
		&Order{},
		&OrderItem{},
	}
}
