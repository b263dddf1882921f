package repository

// Models lists every gorm model, in foreign-key-safe creation order, for
// schema migration.
func Models() []interface{} {
	return []interface{}{
		&profileModel{},
		&serviceModel{},
		&appointmentModel{},
		&requestModel{},
	}
}
