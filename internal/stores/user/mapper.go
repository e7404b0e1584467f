package user

// EntityToItem copies a stored user into its transport shape
func EntityToItem(source *User) Item {
	return Item{
		ID:        source.ID,
		UserID:    source.UserID,
		Name:      source.Name,
		CreatedAt: source.CreatedAt,
		UpdatedAt: source.UpdatedAt,
	}
}

// ItemToEntity copies a transport item into a storable user
func ItemToEntity(source Item) *User {
	return &User{
		ID:     source.ID,
		UserID: source.UserID,
		Name:   source.Name,
	}
}
