package models

// Item is a catalog entry: a thing to bring. Items are created on first
// reference by name and never updated afterwards.
type Item struct {
	ID        int64
	Name      string
	Icon      string
	CreatedAt string
}
