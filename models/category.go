package models

// Category represents a browsable product category.
// Slug is the external lookup key; DisplayOrder defines the default listing order.
type Category struct {
	ID           uint    `gorm:"primaryKey"`
	Slug         string  `gorm:"uniqueIndex;not null"`
	Name         string  `gorm:"not null"`
	Description  *string `gorm:"column:description"`
	IconName     string  `gorm:"column:icon_name;not null;default:''"`
	DisplayOrder int     `gorm:"column:display_order;not null;default:0;index"`
}

func (c *Category) TableName() string {
	return "categories"
}

// DescriptionText returns the description, or "" when the category has none.
func (c Category) DescriptionText() string {
	if c.Description == nil {
		return ""
	}
	return *c.Description
}
